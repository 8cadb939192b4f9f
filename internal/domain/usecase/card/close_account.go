package card

import (
	"context"

	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
)

// CloseAccount deletes the card permanently
func (u *CardUseCase) CloseAccount(ctx context.Context, number string) error {
	if err := u.cardRepo.Delete(ctx, number); err != nil {
		u.logFailure("Failed to close account", number, err)
		return err
	}

	u.logger.Info("Account closed", map[string]any{
		"card_number": errs.MaskNumber(number),
	})
	return nil
}
