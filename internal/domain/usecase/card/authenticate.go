package card

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
)

// Authenticate returns the card number when a card matches number and PIN exactly.
// PINs are compared in clear text by the store.
func (u *CardUseCase) Authenticate(ctx context.Context, number, pin string) (string, error) {
	card, err := u.cardRepo.GetByNumberAndPIN(ctx, number, pin)
	if err != nil {
		if errors.Is(err, errs.ErrCardNotFound) {
			u.logger.Warn("Login rejected", map[string]any{
				"card_number": errs.MaskNumber(number),
			})
			return "", errs.ErrAuthFailed
		}
		u.logFailure("Failed to authenticate card", number, err)
		return "", err
	}

	u.logger.Info("Card logged in", map[string]any{
		"card_id":     card.ID,
		"card_number": errs.MaskNumber(card.Number),
	})
	return card.Number, nil
}
