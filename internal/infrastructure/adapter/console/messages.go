package console

import (
	"errors"

	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
)

const (
	mainMenu     = "1. Create an account\n2. Log into account\n0. Exit"
	loggedInMenu = "1. Balance\n2. Add income\n3. Do transfer\n4. Close account\n5. Log out\n0. Exit"

	msgCardCreated    = "Your card has been created"
	msgCardNumber     = "Your card number:"
	msgCardPIN        = "Your card PIN:"
	msgEnterNumber    = "Enter your card number:"
	msgEnterPIN       = "Enter your PIN:"
	msgLoggedIn       = "You have successfully logged in!"
	msgWrongLogin     = "Wrong card number or PIN!"
	msgBalance        = "Balance: %d"
	msgEnterIncome    = "Enter income:"
	msgIncomeAdded    = "Income was added!"
	msgNegativeIncome = "Income cannot be negative."
	msgTransferTarget = "Transfer\nEnter card number:"
	msgBadChecksum    = "Probably you made a mistake in the card number. Please try again!"
	msgSameAccount    = "You can't transfer money to the same account!"
	msgNoSuchCard     = "Such a card does not exist."
	msgEnterTransfer  = "Enter how much money you want to transfer:"
	msgNotEnoughMoney = "Not enough money!"
	msgSuccess        = "Success!"
	msgAccountClosed  = "The account has been closed!"
	msgLoggedOut      = "You have successfully logged out!"
	msgUnknownOption  = "Unknown option!"
	msgBye            = "Bye!"

	msgNegativeAmount = "Amount cannot be negative."
	msgBadAmount      = "Please enter a whole number."
	msgAmountTooLarge = "The amount is too large."
	msgCardGone       = "Your card no longer exists. You have been logged out."
	msgStorageFailure = "The bank is unavailable right now. Please try again later."
)

// amountMessage renders a rejected amount for the prompt it came from
func amountMessage(err error, negative string) string {
	switch {
	case errors.Is(err, errs.ErrNegativeAmount):
		return negative
	case errors.Is(err, errs.ErrAmountOverflow):
		return msgAmountTooLarge
	case errors.Is(err, errs.ErrInvalidAmount):
		return msgBadAmount
	default:
		return msgStorageFailure
	}
}

// transferMessage renders a transfer rejection
func transferMessage(err error) string {
	switch {
	case errors.Is(err, errs.ErrInvalidTargetNumber):
		return msgBadChecksum
	case errors.Is(err, errs.ErrSameAccount):
		return msgSameAccount
	case errors.Is(err, errs.ErrTargetNotFound):
		return msgNoSuchCard
	case errors.Is(err, errs.ErrInsufficientBalance):
		return msgNotEnoughMoney
	case errors.Is(err, errs.ErrInvalidAmount):
		return amountMessage(err, msgNegativeAmount)
	default:
		return msgStorageFailure
	}
}
