package transfer

import (
	"github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/luhn"
)

// TransferValidator provides the store-free checks of a transfer request
type TransferValidator struct{}

// NewTransferValidator creates a new TransferValidator
func NewTransferValidator() *TransferValidator {
	return &TransferValidator{}
}

// ValidateTarget rejects a target that fails the checksum or equals the source.
// The checksum is checked first so a mistyped number never reaches the store.
func (v *TransferValidator) ValidateTarget(source, target string) error {
	if !luhn.IsValid(target) {
		return errs.ErrInvalidTargetNumber
	}
	if source == target {
		return errs.ErrSameAccount
	}
	return nil
}

// ValidateAmount checks the amount of a transfer
func (v *TransferValidator) ValidateAmount(amount int64) error {
	return entity.ValidateAmount(amount)
}
