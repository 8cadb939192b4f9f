package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/simple-banking/internal/domain/port/core"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// CardRepository implements the CardRepository port using GORM
type CardRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewCardRepository creates a new CardRepository instance
func NewCardRepository(db *gorm.DB, logger coreport.Logger) *CardRepository {
	return &CardRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func modelToEntity(cardModel *model.Card) *entity.Card {
	return entity.RestoreCard(cardModel.ID, cardModel.Number, cardModel.PIN, cardModel.Balance)
}

// handleDatabaseError standardizes database error handling
func (r *CardRepository) handleDatabaseError(operation string, err error, number string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrCardNotFound
	}

	if r.errorClassifier.IsDuplicateKeyError(err) {
		r.logger.Warn("Duplicate card number", map[string]any{
			"card_number": errs.MaskNumber(number),
		})
		return errs.ErrDuplicateCard
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"card_number": errs.MaskNumber(number),
		"error":       err.Error(),
		"error_type":  string(r.errorClassifier.Classify(err)),
	})
	return fmt.Errorf("%w: %s: %s", errs.ErrStorage, operation, err.Error())
}

// Create inserts a new card and assigns its ID
func (r *CardRepository) Create(ctx context.Context, card *entity.Card) error {
	cardModel := model.Card{
		Number:  card.Number,
		PIN:     card.PIN,
		Balance: card.Balance(),
	}

	if err := r.db.WithContext(ctx).Create(&cardModel).Error; err != nil {
		return r.handleDatabaseError("creating card", err, card.Number)
	}

	card.ID = cardModel.ID

	r.logger.Debug("Card created", map[string]any{
		"card_id":     card.ID,
		"card_number": errs.MaskNumber(card.Number),
	})
	return nil
}

// GetByNumber retrieves a card by number
func (r *CardRepository) GetByNumber(ctx context.Context, number string) (*entity.Card, error) {
	var cardModel model.Card
	result := r.db.WithContext(ctx).Where("number = ?", number).First(&cardModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("getting card", result.Error, number)
	}

	return modelToEntity(&cardModel), nil
}

// GetByNumberAndPIN retrieves a card matching both number and PIN
func (r *CardRepository) GetByNumberAndPIN(ctx context.Context, number, pin string) (*entity.Card, error) {
	var cardModel model.Card
	result := r.db.WithContext(ctx).Where("number = ? AND pin = ?", number, pin).First(&cardModel)
	if result.Error != nil {
		return nil, r.handleDatabaseError("authenticating card", result.Error, number)
	}

	return modelToEntity(&cardModel), nil
}

// Credit adds amount to the balance and returns the new balance
func (r *CardRepository) Credit(ctx context.Context, number string, amount int64) (int64, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		return 0, err
	}

	var balance int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Card{}).
			Where("number = ? AND balance <= ?", number, entity.MaxAmount-amount).
			UpdateColumn("balance", gorm.Expr("balance + ?", amount))
		if result.Error != nil {
			return result.Error
		}

		current, err := r.currentBalance(tx, number)
		if err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return errs.ErrAmountOverflow
		}
		balance = current
		return nil
	})
	if err != nil {
		if errors.Is(err, errs.ErrAmountOverflow) {
			return 0, err
		}
		return 0, r.handleDatabaseError("crediting card", err, number)
	}

	r.logger.Debug("Card credited", map[string]any{
		"card_number": errs.MaskNumber(number),
		"amount":      amount,
		"new_balance": balance,
	})
	return balance, nil
}

// Debit subtracts amount from the balance and returns the new balance.
// The update only matches while balance >= amount, so the balance never
// goes negative even if it changed since the caller last read it.
func (r *CardRepository) Debit(ctx context.Context, number string, amount int64) (int64, error) {
	if err := entity.ValidateAmount(amount); err != nil {
		return 0, err
	}

	var balance int64
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		result := tx.Model(&model.Card{}).
			Where("number = ? AND balance >= ?", number, amount).
			UpdateColumn("balance", gorm.Expr("balance - ?", amount))
		if result.Error != nil {
			return result.Error
		}

		current, err := r.currentBalance(tx, number)
		if err != nil {
			return err
		}
		if result.RowsAffected == 0 {
			return errs.NewInsufficientBalanceError(number, amount, current)
		}
		balance = current
		return nil
	})
	if err != nil {
		if errs.IsInsufficientBalanceError(err) {
			return 0, err
		}
		return 0, r.handleDatabaseError("debiting card", err, number)
	}

	r.logger.Debug("Card debited", map[string]any{
		"card_number": errs.MaskNumber(number),
		"amount":      amount,
		"new_balance": balance,
	})
	return balance, nil
}

// Delete removes the card permanently
func (r *CardRepository) Delete(ctx context.Context, number string) error {
	result := r.db.WithContext(ctx).Where("number = ?", number).Delete(&model.Card{})
	if result.Error != nil {
		return r.handleDatabaseError("deleting card", result.Error, number)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCardNotFound
	}

	r.logger.Debug("Card deleted", map[string]any{
		"card_number": errs.MaskNumber(number),
	})
	return nil
}

// currentBalance reads the balance column of a card
func (r *CardRepository) currentBalance(tx *gorm.DB, number string) (int64, error) {
	var cardModel model.Card
	if err := tx.Select("balance").Where("number = ?", number).First(&cardModel).Error; err != nil {
		return 0, err
	}
	return cardModel.Balance, nil
}
