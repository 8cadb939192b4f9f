package usecase

import (
	"context"
)

// TransferReceipt describes a completed transfer
type TransferReceipt struct {
	Source        string
	Target        string
	Amount        int64
	SourceBalance int64
	TargetBalance int64
}

// TransferUseCase defines card-to-card transfers
type TransferUseCase interface {
	// ValidateTarget runs the checks that do not depend on the amount:
	// checksum, same account, target existence
	ValidateTarget(ctx context.Context, source, target string) error

	// Transfer moves amount from source to target atomically
	Transfer(ctx context.Context, source, target string, amount int64) (*TransferReceipt, error)
}
