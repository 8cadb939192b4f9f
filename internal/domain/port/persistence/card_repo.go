package persistence

import (
	"context"

	"github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
)

// CardRepository defines the ledger operations on the card table
type CardRepository interface {
	// Create inserts a new card and sets its ID
	//
	// Possible errors:
	// - ErrDuplicateCard: If a card with the same number already exists
	// - ErrStorage: If the insert fails for any other reason
	Create(ctx context.Context, card *entity.Card) error

	// GetByNumber retrieves a card by its number
	//
	// Possible errors:
	// - ErrCardNotFound: If no card has this number
	// - ErrStorage: If the query fails
	GetByNumber(ctx context.Context, number string) (*entity.Card, error)

	// GetByNumberAndPIN retrieves a card whose number and PIN both match exactly
	//
	// Possible errors:
	// - ErrCardNotFound: If no card matches
	// - ErrStorage: If the query fails
	GetByNumberAndPIN(ctx context.Context, number, pin string) (*entity.Card, error)

	// Credit adds amount to the balance and returns the new balance
	//
	// Possible errors:
	// - ErrCardNotFound: If no card has this number
	// - ErrStorage: If the update fails
	Credit(ctx context.Context, number string, amount int64) (int64, error)

	// Debit subtracts amount from the balance and returns the new balance.
	// The sufficiency check and the update are a single conditional statement.
	//
	// Possible errors:
	// - ErrCardNotFound: If no card has this number
	// - ErrInsufficientBalance: If the balance is lower than amount
	// - ErrStorage: If the update fails
	Debit(ctx context.Context, number string, amount int64) (int64, error)

	// Delete removes the card permanently
	//
	// Possible errors:
	// - ErrCardNotFound: If no card has this number
	// - ErrStorage: If the delete fails
	Delete(ctx context.Context, number string) error
}
