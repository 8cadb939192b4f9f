package card

import (
	"context"

	"github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
)

// ReadBalance returns the current balance of the card
func (u *CardUseCase) ReadBalance(ctx context.Context, number string) (int64, error) {
	card, err := u.cardRepo.GetByNumber(ctx, number)
	if err != nil {
		u.logFailure("Failed to read balance", number, err)
		return 0, err
	}

	u.logger.Debug("Balance retrieved", map[string]any{
		"card_number": errs.MaskNumber(number),
		"balance":     card.Balance(),
	})
	return card.Balance(), nil
}

// Credit adds income to the card and returns the new balance
func (u *CardUseCase) Credit(ctx context.Context, number string, amount int64) (int64, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		u.logFailure("Income rejected", number, err)
		return 0, err
	}

	balance, err := u.cardRepo.Credit(ctx, number, amount)
	if err != nil {
		u.logFailure("Failed to add income", number, err)
		return 0, err
	}

	u.logger.Info("Income added", map[string]any{
		"card_number": errs.MaskNumber(number),
		"amount":      amount,
		"new_balance": balance,
	})
	return balance, nil
}
