package console_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"testing/iotest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/port/usecase"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/console"
	"github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/logger"
	timeprovider "github.com/amirhossein-jamali/simple-banking/internal/infrastructure/adapter/time"
	usecasemocks "github.com/amirhossein-jamali/simple-banking/mocks/port/usecase"
)

const (
	mainMenu     = "1. Create an account\n2. Log into account\n0. Exit"
	loggedInMenu = "1. Balance\n2. Add income\n3. Do transfer\n4. Close account\n5. Log out\n0. Exit"

	cardA = "4000001234567899"
	cardB = "4000009876543219"
	pinA  = "1234"
)

type consoleFixture struct {
	accounts  *usecasemocks.MockAccountUseCase
	transfers *usecasemocks.MockTransferUseCase
}

func newConsoleFixture(t *testing.T) *consoleFixture {
	return &consoleFixture{
		accounts:  usecasemocks.NewMockAccountUseCase(t),
		transfers: usecasemocks.NewMockTransferUseCase(t),
	}
}

// run feeds input to a fresh controller and returns everything it printed
func (f *consoleFixture) run(t *testing.T, input string) string {
	t.Helper()

	var out bytes.Buffer
	controller := console.NewController(
		f.accounts,
		f.transfers,
		logger.NewNoopLogger(),
		timeprovider.NewRealTimeProvider(),
		time.Second,
		strings.NewReader(input),
		&out,
	)

	require.NoError(t, controller.Run(context.Background()))
	return out.String()
}

// loggedIn prepares a successful login of card A
func (f *consoleFixture) loggedIn() {
	f.accounts.On("Authenticate", mock.Anything, cardA, pinA).Return(cardA, nil).Once()
}

func transcript(lines ...string) string {
	return strings.Join(lines, "\n") + "\n"
}

func TestController_MainMenu(t *testing.T) {
	t.Run("Exit", func(t *testing.T) {
		f := newConsoleFixture(t)
		assert.Equal(t, transcript(mainMenu, "Bye!"), f.run(t, "0\n"))
	})

	t.Run("End of input exits", func(t *testing.T) {
		f := newConsoleFixture(t)
		assert.Equal(t, transcript(mainMenu, "Bye!"), f.run(t, ""))
	})

	t.Run("Unknown options", func(t *testing.T) {
		f := newConsoleFixture(t)
		out := f.run(t, "7\nabc\n0\n")
		assert.Equal(t, transcript(
			mainMenu, "Unknown option!",
			mainMenu, "Unknown option!",
			mainMenu, "Bye!",
		), out)
	})

	t.Run("Create account", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.accounts.On("CreateAccount", mock.Anything).
			Return(entity.RestoreCard(1, cardA, pinA, 0), nil).Once()

		out := f.run(t, "1\n0\n")
		assert.Equal(t, transcript(
			mainMenu,
			"Your card has been created",
			"Your card number:",
			cardA,
			"Your card PIN:",
			pinA,
			mainMenu, "Bye!",
		), out)
	})

	t.Run("Create account storage failure", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.accounts.On("CreateAccount", mock.Anything).Return(nil, errs.ErrStorage).Once()

		out := f.run(t, "1\n0\n")
		assert.Contains(t, out, "The bank is unavailable right now. Please try again later.")
		assert.NotContains(t, out, "Your card has been created")
	})
}

func TestController_Login(t *testing.T) {
	t.Run("Wrong PIN", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.accounts.On("Authenticate", mock.Anything, cardA, "0000").Return("", errs.ErrAuthFailed).Once()

		out := f.run(t, "2\n"+cardA+"\n0000\n0\n")
		assert.Equal(t, transcript(
			mainMenu,
			"Enter your card number:",
			"Enter your PIN:",
			"Wrong card number or PIN!",
			mainMenu, "Bye!",
		), out)
	})

	t.Run("Number and PIN on one line", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()

		out := f.run(t, "2\n"+cardA+" "+pinA+"\n5\n0\n")
		assert.Equal(t, transcript(
			mainMenu,
			"Enter your card number:",
			"Enter your PIN:",
			"You have successfully logged in!",
			loggedInMenu,
			"You have successfully logged out!",
			mainMenu, "Bye!",
		), out)
	})

	t.Run("Input ends during login", func(t *testing.T) {
		f := newConsoleFixture(t)

		out := f.run(t, "2\n"+cardA+"\n")
		assert.Equal(t, transcript(
			mainMenu,
			"Enter your card number:",
			"Enter your PIN:",
			"Bye!",
		), out)
	})
}

func TestController_Session(t *testing.T) {
	login := "2\n" + cardA + "\n" + pinA + "\n"
	loginLines := []string{mainMenu, "Enter your card number:", "Enter your PIN:", "You have successfully logged in!"}

	expect := func(lines ...string) string {
		return transcript(append(append([]string{}, loginLines...), lines...)...)
	}

	t.Run("Balance then exit", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()
		f.accounts.On("ReadBalance", mock.Anything, cardA).Return(int64(0), nil).Once()

		out := f.run(t, login+"1\n0\n")
		assert.Equal(t, expect(loggedInMenu, "Balance: 0", loggedInMenu, "Bye!"), out)
	})

	t.Run("Add income", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()
		f.accounts.On("Credit", mock.Anything, cardA, int64(100)).Return(int64(100), nil).Once()

		out := f.run(t, login+"2\n100\n0\n")
		assert.Equal(t, expect(loggedInMenu, "Enter income:", "Income was added!", loggedInMenu, "Bye!"), out)
	})

	t.Run("Negative income", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()

		out := f.run(t, login+"2\n-5\n0\n")
		assert.Equal(t, expect(loggedInMenu, "Enter income:", "Income cannot be negative.", loggedInMenu, "Bye!"), out)
	})

	t.Run("Malformed income", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()

		out := f.run(t, login+"2\n12.5\n0\n")
		assert.Equal(t, expect(loggedInMenu, "Enter income:", "Please enter a whole number.", loggedInMenu, "Bye!"), out)
	})

	t.Run("Unknown option stays logged in", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()

		out := f.run(t, login+"9\n0\n")
		assert.Equal(t, expect(loggedInMenu, "Unknown option!", loggedInMenu, "Bye!"), out)
	})

	t.Run("Close account logs out", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()
		f.accounts.On("CloseAccount", mock.Anything, cardA).Return(nil).Once()

		out := f.run(t, login+"4\n0\n")
		assert.Equal(t, expect(loggedInMenu, "The account has been closed!", mainMenu, "Bye!"), out)
	})

	t.Run("Card removed during session", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()
		f.accounts.On("ReadBalance", mock.Anything, cardA).Return(int64(0), errs.ErrCardNotFound).Once()

		out := f.run(t, login+"1\n0\n")
		assert.Equal(t, expect(
			loggedInMenu,
			"Your card no longer exists. You have been logged out.",
			mainMenu, "Bye!",
		), out)
	})

	t.Run("Storage failure keeps session", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()
		f.accounts.On("ReadBalance", mock.Anything, cardA).Return(int64(0), errs.ErrStorage).Once()
		f.accounts.On("ReadBalance", mock.Anything, cardA).Return(int64(7), nil).Once()

		out := f.run(t, login+"1\n1\n0\n")
		assert.Equal(t, expect(
			loggedInMenu,
			"The bank is unavailable right now. Please try again later.",
			loggedInMenu,
			"Balance: 7",
			loggedInMenu, "Bye!",
		), out)
	})

	t.Run("End of input inside session", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()

		out := f.run(t, login+"2\n")
		assert.Equal(t, expect(loggedInMenu, "Enter income:", "Bye!"), out)
	})
}

func TestController_Transfer(t *testing.T) {
	login := "2\n" + cardA + "\n" + pinA + "\n"
	loginLines := []string{mainMenu, "Enter your card number:", "Enter your PIN:", "You have successfully logged in!", loggedInMenu}

	expect := func(lines ...string) string {
		all := append(append([]string{}, loginLines...), lines...)
		return transcript(append(all, loggedInMenu, "Bye!")...)
	}

	t.Run("Success", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()
		f.transfers.On("ValidateTarget", mock.Anything, cardA, cardB).Return(nil).Once()
		f.transfers.On("Transfer", mock.Anything, cardA, cardB, int64(50)).
			Return(&usecase.TransferReceipt{Source: cardA, Target: cardB, Amount: 50, SourceBalance: 50, TargetBalance: 50}, nil).Once()

		out := f.run(t, login+"3\n"+cardB+"\n50\n0\n")
		assert.Equal(t, expect(
			"Transfer\nEnter card number:",
			"Enter how much money you want to transfer:",
			"Success!",
		), out)
	})

	targetRejections := []struct {
		name    string
		err     error
		message string
	}{
		{"Bad checksum", errs.ErrInvalidTargetNumber, "Probably you made a mistake in the card number. Please try again!"},
		{"Same account", errs.ErrSameAccount, "You can't transfer money to the same account!"},
		{"Unknown target", errs.ErrTargetNotFound, "Such a card does not exist."},
	}
	for _, tc := range targetRejections {
		t.Run(tc.name, func(t *testing.T) {
			f := newConsoleFixture(t)
			f.loggedIn()
			f.transfers.On("ValidateTarget", mock.Anything, cardA, cardB).Return(tc.err).Once()

			out := f.run(t, login+"3\n"+cardB+"\n0\n")
			assert.Equal(t, expect("Transfer\nEnter card number:", tc.message), out)
			f.transfers.AssertNotCalled(t, "Transfer", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("Not enough money", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()
		f.transfers.On("ValidateTarget", mock.Anything, cardA, cardB).Return(nil).Once()
		f.transfers.On("Transfer", mock.Anything, cardA, cardB, int64(500)).
			Return(nil, errs.NewInsufficientBalanceError(cardA, 500, 100)).Once()

		out := f.run(t, login+"3\n"+cardB+"\n500\n0\n")
		assert.Equal(t, expect(
			"Transfer\nEnter card number:",
			"Enter how much money you want to transfer:",
			"Not enough money!",
		), out)
	})

	t.Run("Negative amount", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()
		f.transfers.On("ValidateTarget", mock.Anything, cardA, cardB).Return(nil).Once()

		out := f.run(t, login+"3\n"+cardB+"\n-1\n0\n")
		assert.Equal(t, expect(
			"Transfer\nEnter card number:",
			"Enter how much money you want to transfer:",
			"Amount cannot be negative.",
		), out)
	})

	t.Run("Storage failure", func(t *testing.T) {
		f := newConsoleFixture(t)
		f.loggedIn()
		f.transfers.On("ValidateTarget", mock.Anything, cardA, cardB).Return(nil).Once()
		f.transfers.On("Transfer", mock.Anything, cardA, cardB, int64(5)).
			Return(nil, errs.NewTransferError(cardA, cardB, 5, "credit", errs.ErrStorage)).Once()

		out := f.run(t, login+"3\n"+cardB+"\n5\n0\n")
		assert.Equal(t, expect(
			"Transfer\nEnter card number:",
			"Enter how much money you want to transfer:",
			"The bank is unavailable right now. Please try again later.",
		), out)
	})
}

func TestController_ReadFailure(t *testing.T) {
	f := newConsoleFixture(t)
	readErr := errors.New("terminal detached")

	var out bytes.Buffer
	controller := console.NewController(
		f.accounts,
		f.transfers,
		logger.NewNoopLogger(),
		timeprovider.NewRealTimeProvider(),
		time.Second,
		iotest.ErrReader(readErr),
		&out,
	)

	err := controller.Run(context.Background())
	assert.ErrorIs(t, err, readErr)
	assert.Equal(t, transcript(mainMenu, "Bye!"), out.String())
}
