package card

import (
	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/simple-banking/internal/domain/port/core"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/port/usecase"
)

// DefaultMaxIssueAttempts bounds the number of inserts CreateAccount tries
// when freshly generated numbers collide with existing cards
const DefaultMaxIssueAttempts = 5

// CardUseCase implements the card business logic
type CardUseCase struct {
	cardRepo    persistence.CardRepository
	issuer      *Issuer
	maxAttempts int
	logger      coreport.Logger
}

// NewCardUseCase creates a new card use case instance
func NewCardUseCase(
	cardRepo persistence.CardRepository,
	issuer *Issuer,
	maxAttempts int,
	logger coreport.Logger,
) usecase.AccountUseCase {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxIssueAttempts
	}

	return &CardUseCase{
		cardRepo:    cardRepo,
		issuer:      issuer,
		maxAttempts: maxAttempts,
		logger:      logger,
	}
}

// logFailure logs err at warn level for expected outcomes and at error level otherwise
func (u *CardUseCase) logFailure(message string, number string, err error) {
	fields := map[string]any{
		"card_number": errs.MaskNumber(number),
		"error":       err.Error(),
		"error_code":  errs.ErrorCode(err),
	}
	if errs.IsStorageError(err) {
		u.logger.Error(message, fields)
		return
	}
	u.logger.Warn(message, fields)
}
