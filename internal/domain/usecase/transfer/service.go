package transfer

import (
	"context"
	"errors"

	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/simple-banking/internal/domain/port/core"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/port/persistence"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/port/usecase"
)

// Transfer stages reported in TransferError
const (
	StageLookupTarget = "lookup_target"
	StageLookupSource = "lookup_source"
	StageDebit        = "debit"
	StageCredit       = "credit"
)

// Service moves money between two cards inside a single unit of work
type Service struct {
	uow       persistence.UnitOfWork
	validator *TransferValidator
	logger    coreport.Logger
}

// NewTransferService creates a new transfer service
func NewTransferService(uow persistence.UnitOfWork, logger coreport.Logger) usecase.TransferUseCase {
	return &Service{
		uow:       uow,
		validator: NewTransferValidator(),
		logger:    logger,
	}
}

// ValidateTarget checks checksum, distinctness and existence of the target card
func (s *Service) ValidateTarget(ctx context.Context, source, target string) error {
	if err := s.validator.ValidateTarget(source, target); err != nil {
		s.logRejected(source, target, 0, err)
		return err
	}

	if err := s.lookupTarget(ctx, s.uow.GetCardRepository(ctx), source, target, 0); err != nil {
		s.logRejected(source, target, 0, err)
		return err
	}
	return nil
}

// Transfer debits source and credits target atomically.
// Either both balances change or neither does.
func (s *Service) Transfer(ctx context.Context, source, target string, amount int64) (*usecase.TransferReceipt, error) {
	if err := s.validator.ValidateTarget(source, target); err != nil {
		s.logRejected(source, target, amount, err)
		return nil, err
	}

	var receipt *usecase.TransferReceipt
	err := s.uow.WithinTransaction(ctx, func(txCtx context.Context) error {
		cardRepo := s.uow.GetCardRepository(txCtx)

		if err := s.lookupTarget(txCtx, cardRepo, source, target, amount); err != nil {
			return err
		}
		if err := s.validator.ValidateAmount(amount); err != nil {
			return err
		}

		sourceCard, err := cardRepo.GetByNumber(txCtx, source)
		if err != nil {
			if errors.Is(err, errs.ErrCardNotFound) {
				return err
			}
			return errs.NewTransferError(source, target, amount, StageLookupSource, err)
		}
		if !sourceCard.CanDebit(amount) {
			return errs.NewInsufficientBalanceError(source, amount, sourceCard.Balance())
		}

		// The debit re-checks the balance in the same statement
		sourceBalance, err := cardRepo.Debit(txCtx, source, amount)
		if err != nil {
			if errs.IsInsufficientBalanceError(err) || errors.Is(err, errs.ErrCardNotFound) {
				return err
			}
			return errs.NewTransferError(source, target, amount, StageDebit, err)
		}

		targetBalance, err := cardRepo.Credit(txCtx, target, amount)
		if err != nil {
			return errs.NewTransferError(source, target, amount, StageCredit, err)
		}

		receipt = &usecase.TransferReceipt{
			Source:        source,
			Target:        target,
			Amount:        amount,
			SourceBalance: sourceBalance,
			TargetBalance: targetBalance,
		}
		return nil
	})
	if err != nil {
		s.logRejected(source, target, amount, err)
		return nil, err
	}

	s.logger.Info("Transfer completed", map[string]any{
		"source":         errs.MaskNumber(source),
		"target":         errs.MaskNumber(target),
		"amount":         amount,
		"source_balance": receipt.SourceBalance,
		"target_balance": receipt.TargetBalance,
	})
	return receipt, nil
}

// lookupTarget maps a missing target card to ErrTargetNotFound
func (s *Service) lookupTarget(
	ctx context.Context,
	cardRepo persistence.CardRepository,
	source, target string,
	amount int64,
) error {
	if _, err := cardRepo.GetByNumber(ctx, target); err != nil {
		if errs.IsNotFoundError(err) {
			return errs.ErrTargetNotFound
		}
		return errs.NewTransferError(source, target, amount, StageLookupTarget, err)
	}
	return nil
}

// logRejected logs a failed transfer, using the detailed fields when available
func (s *Service) logRejected(source, target string, amount int64, err error) {
	fields := map[string]any{
		"source":     errs.MaskNumber(source),
		"target":     errs.MaskNumber(target),
		"amount":     amount,
		"error":      err.Error(),
		"error_code": errs.ErrorCode(err),
	}

	var transferErr *errs.TransferError
	var balanceErr *errs.InsufficientBalanceError
	switch {
	case errors.As(err, &transferErr):
		fields = transferErr.LogFields()
	case errors.As(err, &balanceErr):
		fields = balanceErr.LogFields()
		fields["target"] = errs.MaskNumber(target)
	}

	if errs.ErrorCode(err) == errs.CodeStorage {
		s.logger.Error("Transfer failed", fields)
		return
	}
	s.logger.Warn("Transfer rejected", fields)
}
