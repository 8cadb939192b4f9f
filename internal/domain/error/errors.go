package error

import (
	"errors"
	"fmt"
)

// Error codes used in structured logs
const (
	// 4xxx - Operator errors
	CodeInvalidInput        = 4000
	CodeInsufficientBalance = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidTarget       = 4003
	CodeSameAccount         = 4004
	CodeAuthFailed          = 4010
	CodeCardNotFound        = 4040
	CodeTargetNotFound      = 4041
	CodeDuplicateCard       = 4090

	// 5xxx - Storage errors
	CodeStorage = 5000
)

// Base error types
var (
	// ErrInvalidInput is returned when checksum input contains non-digit characters
	ErrInvalidInput = errors.New("invalid input: digits expected")

	// ErrAuthFailed is returned when no card matches the supplied number and PIN
	ErrAuthFailed = errors.New("wrong card number or PIN")

	// ErrCardNotFound is returned when the card does not exist (or was closed)
	ErrCardNotFound = errors.New("card not found")

	// ErrInvalidAmount is returned when an amount is malformed or negative
	ErrInvalidAmount = errors.New("invalid amount")

	// ErrNegativeAmount is returned when the amount is negative
	ErrNegativeAmount = fmt.Errorf("%w: amount cannot be negative", ErrInvalidAmount)

	// ErrAmountOverflow is returned when the amount does not fit into the balance column
	ErrAmountOverflow = fmt.Errorf("%w: amount is too large", ErrInvalidAmount)

	// ErrInvalidTargetNumber is returned when the transfer target fails the Luhn check
	ErrInvalidTargetNumber = errors.New("target card number failed checksum validation")

	// ErrSameAccount is returned when source and target of a transfer are the same card
	ErrSameAccount = errors.New("cannot transfer to the same account")

	// ErrTargetNotFound is returned when the transfer target card does not exist
	ErrTargetNotFound = errors.New("target card does not exist")

	// ErrInsufficientBalance is returned when the source card cannot cover the debit
	ErrInsufficientBalance = errors.New("insufficient balance")

	// ErrDuplicateCard is returned when a card number is already taken
	ErrDuplicateCard = errors.New("card number already exists")

	// ErrStorage is returned for connectivity, IO and transaction failures
	ErrStorage = errors.New("storage error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInsufficientBalance):
		return CodeInsufficientBalance
	case errors.Is(err, ErrInvalidAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidTargetNumber):
		return CodeInvalidTarget
	case errors.Is(err, ErrSameAccount):
		return CodeSameAccount
	case errors.Is(err, ErrAuthFailed):
		return CodeAuthFailed
	case errors.Is(err, ErrTargetNotFound):
		return CodeTargetNotFound
	case errors.Is(err, ErrCardNotFound):
		return CodeCardNotFound
	case errors.Is(err, ErrDuplicateCard):
		return CodeDuplicateCard
	case errors.Is(err, ErrInvalidInput):
		return CodeInvalidInput
	default:
		return CodeStorage
	}
}

// InsufficientBalanceError provides detailed error information for insufficient balance
type InsufficientBalanceError struct {
	CardNumber string
	Amount     int64
	Balance    int64
}

// Error implements the error interface
func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("insufficient balance on card %s: required %d, available %d",
		MaskNumber(e.CardNumber), e.Amount, e.Balance)
}

// Is checks if the target error is an ErrInsufficientBalance
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientBalanceError) LogFields() map[string]any {
	return map[string]any{
		"error_type":  "insufficient_balance",
		"card_number": MaskNumber(e.CardNumber),
		"amount":      e.Amount,
		"balance":     e.Balance,
		"error_code":  CodeInsufficientBalance,
	}
}

// NewInsufficientBalanceError creates a new detailed insufficient balance error
func NewInsufficientBalanceError(cardNumber string, amount, balance int64) error {
	return &InsufficientBalanceError{
		CardNumber: cardNumber,
		Amount:     amount,
		Balance:    balance,
	}
}

// TransferError wraps a failure of a card-to-card transfer
type TransferError struct {
	Source string
	Target string
	Amount int64
	Stage  string
	Err    error
}

// Error implements the error interface for TransferError
func (e *TransferError) Error() string {
	return fmt.Sprintf("transfer of %d from %s to %s failed at %s: %v",
		e.Amount, MaskNumber(e.Source), MaskNumber(e.Target), e.Stage, e.Err)
}

// Unwrap returns the underlying error
func (e *TransferError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *TransferError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "transfer_error",
		"source":     MaskNumber(e.Source),
		"target":     MaskNumber(e.Target),
		"amount":     e.Amount,
		"stage":      e.Stage,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewTransferError creates a detailed transfer error
func NewTransferError(source, target string, amount int64, stage string, err error) error {
	return &TransferError{
		Source: source,
		Target: target,
		Amount: amount,
		Stage:  stage,
		Err:    err,
	}
}

// MaskNumber hides all but the last four digits of a card number for logs
func MaskNumber(number string) string {
	if len(number) <= 4 {
		return number
	}
	masked := make([]byte, len(number))
	for i := range masked {
		if i < len(number)-4 {
			masked[i] = '*'
		} else {
			masked[i] = number[i]
		}
	}
	return string(masked)
}

// IsInsufficientBalanceError checks if the error is related to insufficient balance
func IsInsufficientBalanceError(err error) bool {
	return errors.Is(err, ErrInsufficientBalance)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrCardNotFound) || errors.Is(err, ErrTargetNotFound)
}

// IsStorageError checks if the error originated in the storage layer
func IsStorageError(err error) bool {
	return errors.Is(err, ErrStorage)
}
