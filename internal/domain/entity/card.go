package entity

import (
	"fmt"
	"regexp"

	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/luhn"
)

// CardNumberLength is the length of every issued card number
const CardNumberLength = 16

// PINLength is the length of every issued PIN
const PINLength = 4

var (
	cardNumberPattern = regexp.MustCompile(`^[0-9]{16}$`)
	pinPattern        = regexp.MustCompile(`^[0-9]{4}$`)
)

// Card represents an issued bank card and its account balance
type Card struct {
	ID      uint64 // Assigned by the store on creation
	Number  string // 16 digits, Luhn-valid, immutable
	PIN     string // 4 digits, stored and compared in clear text
	balance int64  // Minor currency units, never negative
}

// NewCard creates a freshly issued card with a zero balance
func NewCard(number, pin string) (*Card, error) {
	if err := ValidateCardNumber(number); err != nil {
		return nil, err
	}
	if !pinPattern.MatchString(pin) {
		return nil, fmt.Errorf("%w: PIN must be %d digits", errs.ErrInvalidInput, PINLength)
	}

	return &Card{
		Number: number,
		PIN:    pin,
	}, nil
}

// RestoreCard rebuilds a card from persisted state
func RestoreCard(id uint64, number, pin string, balance int64) *Card {
	return &Card{
		ID:      id,
		Number:  number,
		PIN:     pin,
		balance: balance,
	}
}

// ValidateCardNumber checks length, digits and checksum of a card number
func ValidateCardNumber(number string) error {
	if !cardNumberPattern.MatchString(number) {
		return fmt.Errorf("%w: card number must be %d digits", errs.ErrInvalidInput, CardNumberLength)
	}
	if !luhn.IsValid(number) {
		return fmt.Errorf("%w: card number checksum mismatch", errs.ErrInvalidInput)
	}
	return nil
}

// Balance returns the current balance in minor units
func (c *Card) Balance() int64 {
	return c.balance
}

// CanDebit checks if the card has enough balance for a deduction
func (c *Card) CanDebit(amount int64) bool {
	return amount >= 0 && c.balance >= amount
}
