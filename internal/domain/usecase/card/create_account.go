package card

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
)

// CreateAccount issues a new card with a zero balance.
// A number collision regenerates number and PIN; the loop is bounded by maxAttempts.
func (u *CardUseCase) CreateAccount(ctx context.Context) (*entity.Card, error) {
	for attempt := 1; attempt <= u.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		number, err := u.issuer.GenerateCardNumber()
		if err != nil {
			return nil, err
		}
		pin, err := u.issuer.GeneratePIN()
		if err != nil {
			return nil, err
		}

		card, err := entity.NewCard(number, pin)
		if err != nil {
			return nil, err
		}

		err = u.cardRepo.Create(ctx, card)
		if err == nil {
			u.logger.Info("Card issued", map[string]any{
				"card_id":     card.ID,
				"card_number": errs.MaskNumber(card.Number),
				"attempt":     attempt,
			})
			return card, nil
		}

		if !errors.Is(err, errs.ErrDuplicateCard) {
			u.logFailure("Failed to issue card", number, err)
			return nil, err
		}

		u.logger.Warn("Card number collision, regenerating", map[string]any{
			"card_number":  errs.MaskNumber(number),
			"attempt":      attempt,
			"max_attempts": u.maxAttempts,
		})
	}

	err := fmt.Errorf("%w: no unique card number after %d attempts", errs.ErrStorage, u.maxAttempts)
	u.logger.Error("Card issuance exhausted", map[string]any{
		"max_attempts": u.maxAttempts,
		"error":        err.Error(),
	})
	return nil, err
}
