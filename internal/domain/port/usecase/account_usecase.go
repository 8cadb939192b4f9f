package usecase

import (
	"context"

	"github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
)

// AccountUseCase defines card issuance and single-card ledger operations
type AccountUseCase interface {
	// CreateAccount issues a new card with a random number and PIN and a zero balance
	CreateAccount(ctx context.Context) (*entity.Card, error)

	// Authenticate returns the card number when number and PIN match a card
	Authenticate(ctx context.Context, number, pin string) (string, error)

	// ReadBalance returns the current balance of the card
	ReadBalance(ctx context.Context, number string) (int64, error)

	// Credit adds a non-negative amount to the card and returns the new balance
	Credit(ctx context.Context, number string, amount int64) (int64, error)

	// CloseAccount deletes the card permanently
	CloseAccount(ctx context.Context, number string) error
}
