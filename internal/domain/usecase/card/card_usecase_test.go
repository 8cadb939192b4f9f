package card

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/luhn"
	coremocks "github.com/amirhossein-jamali/simple-banking/mocks/port/core"
	persistencemocks "github.com/amirhossein-jamali/simple-banking/mocks/port/persistence"
)

const (
	testNumber = "4000001234567899"
	testPIN    = "1234"
)

func newTestUseCase(t *testing.T) (*CardUseCase, *persistencemocks.MockCardRepository, *coremocks.MockLogger) {
	t.Helper()

	mockRepo := persistencemocks.NewMockCardRepository(t)
	mockLogger := coremocks.NewMockLogger(t)

	issuer, err := NewIssuer(DefaultIssuerPrefix, nil)
	require.NoError(t, err)

	useCase := NewCardUseCase(mockRepo, issuer, 3, mockLogger).(*CardUseCase)
	return useCase, mockRepo, mockLogger
}

func TestNewCardUseCase_DefaultAttempts(t *testing.T) {
	issuer, err := NewIssuer("", nil)
	require.NoError(t, err)

	useCase := NewCardUseCase(persistencemocks.NewMockCardRepository(t), issuer, 0, coremocks.NewMockLogger(t)).(*CardUseCase)
	assert.Equal(t, DefaultMaxIssueAttempts, useCase.maxAttempts)
}

func TestCardUseCase_CreateAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Successful issuance", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		mockRepo.On("Create", ctx, mock.MatchedBy(func(card *entity.Card) bool {
			return luhn.IsValid(card.Number) && len(card.PIN) == 4 && card.Balance() == 0
		})).Return(nil).Once()
		mockLogger.On("Info", "Card issued", mock.Anything).Once()

		card, err := useCase.CreateAccount(ctx)

		require.NoError(t, err)
		assert.Len(t, card.Number, entity.CardNumberLength)
		assert.Equal(t, int64(0), card.Balance())
	})

	t.Run("Collision regenerates number", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		var attempted []string
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Card")).
			Run(func(args mock.Arguments) {
				attempted = append(attempted, args.Get(1).(*entity.Card).Number)
			}).
			Return(errs.ErrDuplicateCard).Once()
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Card")).Return(nil).Once()
		mockLogger.On("Warn", "Card number collision, regenerating", mock.Anything).Once()
		mockLogger.On("Info", "Card issued", mock.Anything).Once()

		card, err := useCase.CreateAccount(ctx)

		require.NoError(t, err)
		require.Len(t, attempted, 1)
		assert.True(t, luhn.IsValid(card.Number))
	})

	t.Run("Gives up after max attempts", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Card")).Return(errs.ErrDuplicateCard).Times(3)
		mockLogger.On("Warn", "Card number collision, regenerating", mock.Anything).Times(3)
		mockLogger.On("Error", "Card issuance exhausted", mock.Anything).Once()

		card, err := useCase.CreateAccount(ctx)

		assert.Nil(t, card)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})

	t.Run("Storage failure is not retried", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		storageErr := fmt.Errorf("%w: disk I/O error", errs.ErrStorage)
		mockRepo.On("Create", ctx, mock.AnythingOfType("*entity.Card")).Return(storageErr).Once()
		mockLogger.On("Error", "Failed to issue card", mock.Anything).Once()

		card, err := useCase.CreateAccount(ctx)

		assert.Nil(t, card)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})

	t.Run("Cancelled context", func(t *testing.T) {
		useCase, _, _ := newTestUseCase(t)

		cancelled, cancel := context.WithCancel(ctx)
		cancel()

		card, err := useCase.CreateAccount(cancelled)

		assert.Nil(t, card)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestCardUseCase_Authenticate(t *testing.T) {
	ctx := context.Background()

	t.Run("Matching credentials", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		mockRepo.On("GetByNumberAndPIN", ctx, testNumber, testPIN).
			Return(entity.RestoreCard(1, testNumber, testPIN, 0), nil).Once()
		mockLogger.On("Info", "Card logged in", mock.Anything).Once()

		number, err := useCase.Authenticate(ctx, testNumber, testPIN)

		require.NoError(t, err)
		assert.Equal(t, testNumber, number)
	})

	t.Run("Wrong PIN maps to auth failure", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		mockRepo.On("GetByNumberAndPIN", ctx, testNumber, "0000").Return(nil, errs.ErrCardNotFound).Once()
		mockLogger.On("Warn", "Login rejected", mock.Anything).Once()

		number, err := useCase.Authenticate(ctx, testNumber, "0000")

		assert.Empty(t, number)
		assert.ErrorIs(t, err, errs.ErrAuthFailed)
		assert.NotErrorIs(t, err, errs.ErrCardNotFound)
	})

	t.Run("Storage failure is propagated", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		mockRepo.On("GetByNumberAndPIN", ctx, testNumber, testPIN).Return(nil, errs.ErrStorage).Once()
		mockLogger.On("Error", "Failed to authenticate card", mock.Anything).Once()

		_, err := useCase.Authenticate(ctx, testNumber, testPIN)

		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}

func TestCardUseCase_ReadBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Existing card", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		mockRepo.On("GetByNumber", ctx, testNumber).Return(entity.RestoreCard(1, testNumber, testPIN, 150), nil).Once()
		mockLogger.On("Debug", "Balance retrieved", mock.Anything).Once()

		balance, err := useCase.ReadBalance(ctx, testNumber)

		require.NoError(t, err)
		assert.Equal(t, int64(150), balance)
	})

	t.Run("Closed card", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		mockRepo.On("GetByNumber", ctx, testNumber).Return(nil, errs.ErrCardNotFound).Once()
		mockLogger.On("Warn", "Failed to read balance", mock.Anything).Once()

		_, err := useCase.ReadBalance(ctx, testNumber)

		assert.ErrorIs(t, err, errs.ErrCardNotFound)
	})
}

func TestCardUseCase_Credit(t *testing.T) {
	ctx := context.Background()

	testCases := []struct {
		name        string
		amount      int64
		setupMocks  func(*persistencemocks.MockCardRepository, *coremocks.MockLogger)
		wantBalance int64
		wantErr     error
	}{
		{
			name:   "Positive income",
			amount: 100,
			setupMocks: func(repo *persistencemocks.MockCardRepository, logger *coremocks.MockLogger) {
				repo.On("Credit", ctx, testNumber, int64(100)).Return(int64(250), nil).Once()
				logger.On("Info", "Income added", mock.Anything).Once()
			},
			wantBalance: 250,
		},
		{
			name:   "Zero income",
			amount: 0,
			setupMocks: func(repo *persistencemocks.MockCardRepository, logger *coremocks.MockLogger) {
				repo.On("Credit", ctx, testNumber, int64(0)).Return(int64(150), nil).Once()
				logger.On("Info", "Income added", mock.Anything).Once()
			},
			wantBalance: 150,
		},
		{
			name:   "Negative income never reaches the store",
			amount: -5,
			setupMocks: func(_ *persistencemocks.MockCardRepository, logger *coremocks.MockLogger) {
				logger.On("Warn", "Income rejected", mock.Anything).Once()
			},
			wantErr: errs.ErrInvalidAmount,
		},
		{
			name:   "Card closed in the meantime",
			amount: 10,
			setupMocks: func(repo *persistencemocks.MockCardRepository, logger *coremocks.MockLogger) {
				repo.On("Credit", ctx, testNumber, int64(10)).Return(int64(0), errs.ErrCardNotFound).Once()
				logger.On("Warn", "Failed to add income", mock.Anything).Once()
			},
			wantErr: errs.ErrCardNotFound,
		},
		{
			name:   "Overflow",
			amount: 10,
			setupMocks: func(repo *persistencemocks.MockCardRepository, logger *coremocks.MockLogger) {
				repo.On("Credit", ctx, testNumber, int64(10)).Return(int64(0), errs.ErrAmountOverflow).Once()
				logger.On("Warn", "Failed to add income", mock.Anything).Once()
			},
			wantErr: errs.ErrAmountOverflow,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			useCase, mockRepo, mockLogger := newTestUseCase(t)
			tc.setupMocks(mockRepo, mockLogger)

			balance, err := useCase.Credit(ctx, testNumber, tc.amount)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantBalance, balance)
		})
	}
}

func TestCardUseCase_CloseAccount(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes card", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		mockRepo.On("Delete", ctx, testNumber).Return(nil).Once()
		mockLogger.On("Info", "Account closed", mock.Anything).Once()

		assert.NoError(t, useCase.CloseAccount(ctx, testNumber))
	})

	t.Run("Storage failure", func(t *testing.T) {
		useCase, mockRepo, mockLogger := newTestUseCase(t)

		mockRepo.On("Delete", ctx, testNumber).Return(errors.Join(errs.ErrStorage, errors.New("database is locked"))).Once()
		mockLogger.On("Error", "Failed to close account", mock.Anything).Once()

		err := useCase.CloseAccount(ctx, testNumber)
		assert.ErrorIs(t, err, errs.ErrStorage)
	})
}
