package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	coreport "github.com/amirhossein-jamali/simple-banking/internal/domain/port/core"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/port/usecase"
)

// Controller drives the menu-based operator dialogue over a reader and a writer
type Controller struct {
	accounts     usecase.AccountUseCase
	transfers    usecase.TransferUseCase
	logger       coreport.Logger
	timeProvider coreport.TimeProvider
	timeout      time.Duration

	scanner *bufio.Scanner
	out     io.Writer
	closed  bool
}

// NewController creates a console controller. Input is read as
// whitespace-separated tokens, so a number and PIN may share a line.
func NewController(
	accounts usecase.AccountUseCase,
	transfers usecase.TransferUseCase,
	logger coreport.Logger,
	timeProvider coreport.TimeProvider,
	timeout time.Duration,
	in io.Reader,
	out io.Writer,
) *Controller {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)

	return &Controller{
		accounts:     accounts,
		transfers:    transfers,
		logger:       logger,
		timeProvider: timeProvider,
		timeout:      timeout,
		scanner:      scanner,
		out:          out,
	}
}

// Run shows the main menu until the operator exits or input ends.
// It returns an error only when reading input fails.
func (c *Controller) Run(ctx context.Context) error {
	c.logger.Debug("Console session started", nil)

	for {
		c.println(mainMenu)
		choice, ok := c.readChoice()
		if !ok {
			c.println(msgBye)
			return c.inputError()
		}

		switch choice {
		case 1:
			c.createAccount(ctx)
		case 2:
			session, ok := c.login(ctx)
			if !ok {
				if c.closed {
					c.println(msgBye)
					return c.inputError()
				}
				continue
			}
			if c.runSession(ctx, session) == sessionExit {
				c.println(msgBye)
				return c.inputError()
			}
		case 0:
			c.println(msgBye)
			return nil
		default:
			c.println(msgUnknownOption)
		}
	}
}

// runSession shows the logged-in menu until logout, exit or end of input
func (c *Controller) runSession(ctx context.Context, session Session) sessionResult {
	log := c.logger.With(map[string]any{
		"card_number": errs.MaskNumber(session.CardNumber),
	})

	for {
		c.println(loggedInMenu)
		choice, ok := c.readChoice()
		if !ok {
			return sessionExit
		}

		var active bool
		switch choice {
		case 1:
			active = c.showBalance(ctx, session)
		case 2:
			active = c.addIncome(ctx, session)
		case 3:
			active = c.doTransfer(ctx, session)
		case 4:
			active = c.closeAccount(ctx, session)
		case 5:
			c.println(msgLoggedOut)
			active = false
		case 0:
			return sessionExit
		default:
			c.println(msgUnknownOption)
			active = true
		}

		if c.closed {
			return sessionExit
		}
		if !active {
			log.Debug("Session ended", nil)
			return sessionLoggedOut
		}
	}
}

func (c *Controller) createAccount(ctx context.Context) {
	opCtx, cancel := c.timeProvider.WithTimeout(ctx, c.timeout)
	defer cancel()

	card, err := c.accounts.CreateAccount(opCtx)
	if err != nil {
		c.println(msgStorageFailure)
		return
	}

	c.println(msgCardCreated)
	c.println(msgCardNumber)
	c.println(card.Number)
	c.println(msgCardPIN)
	c.println(card.PIN)
}

func (c *Controller) login(ctx context.Context) (Session, bool) {
	c.println(msgEnterNumber)
	number, ok := c.readToken()
	if !ok {
		return Session{}, false
	}
	c.println(msgEnterPIN)
	pin, ok := c.readToken()
	if !ok {
		return Session{}, false
	}

	opCtx, cancel := c.timeProvider.WithTimeout(ctx, c.timeout)
	defer cancel()

	cardNumber, err := c.accounts.Authenticate(opCtx, number, pin)
	if err != nil {
		if errors.Is(err, errs.ErrAuthFailed) {
			c.println(msgWrongLogin)
		} else {
			c.println(msgStorageFailure)
		}
		return Session{}, false
	}

	c.println(msgLoggedIn)
	return Session{CardNumber: cardNumber}, true
}

func (c *Controller) showBalance(ctx context.Context, session Session) bool {
	opCtx, cancel := c.timeProvider.WithTimeout(ctx, c.timeout)
	defer cancel()

	balance, err := c.accounts.ReadBalance(opCtx, session.CardNumber)
	if err != nil {
		return c.reportSessionError(err)
	}

	c.printf(msgBalance, balance)
	return true
}

func (c *Controller) addIncome(ctx context.Context, session Session) bool {
	c.println(msgEnterIncome)
	input, ok := c.readToken()
	if !ok {
		return false
	}

	amount, err := entity.ParseAmount(input)
	if err != nil {
		c.println(amountMessage(err, msgNegativeIncome))
		return true
	}

	opCtx, cancel := c.timeProvider.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.accounts.Credit(opCtx, session.CardNumber, amount); err != nil {
		if errors.Is(err, errs.ErrInvalidAmount) {
			c.println(amountMessage(err, msgNegativeIncome))
			return true
		}
		return c.reportSessionError(err)
	}

	c.println(msgIncomeAdded)
	return true
}

func (c *Controller) doTransfer(ctx context.Context, session Session) bool {
	c.println(msgTransferTarget)
	target, ok := c.readToken()
	if !ok {
		return false
	}

	validateCtx, cancelValidate := c.timeProvider.WithTimeout(ctx, c.timeout)
	err := c.transfers.ValidateTarget(validateCtx, session.CardNumber, target)
	cancelValidate()
	if err != nil {
		c.println(transferMessage(err))
		return true
	}

	c.println(msgEnterTransfer)
	input, ok := c.readToken()
	if !ok {
		return false
	}

	amount, err := entity.ParseAmount(input)
	if err != nil {
		c.println(amountMessage(err, msgNegativeAmount))
		return true
	}

	opCtx, cancel := c.timeProvider.WithTimeout(ctx, c.timeout)
	defer cancel()

	if _, err := c.transfers.Transfer(opCtx, session.CardNumber, target, amount); err != nil {
		if errors.Is(err, errs.ErrCardNotFound) {
			return c.reportSessionError(err)
		}
		c.println(transferMessage(err))
		return true
	}

	c.println(msgSuccess)
	return true
}

// closeAccount deletes the session card; the session ends unless storage failed
func (c *Controller) closeAccount(ctx context.Context, session Session) bool {
	opCtx, cancel := c.timeProvider.WithTimeout(ctx, c.timeout)
	defer cancel()

	if err := c.accounts.CloseAccount(opCtx, session.CardNumber); err != nil {
		return c.reportSessionError(err)
	}

	c.println(msgAccountClosed)
	return false
}

// reportSessionError prints a failure of a logged-in operation and reports
// whether the session can continue. A card that no longer exists ends it.
func (c *Controller) reportSessionError(err error) bool {
	if errors.Is(err, errs.ErrCardNotFound) {
		c.println(msgCardGone)
		return false
	}

	c.println(msgStorageFailure)
	return true
}

// readChoice reads a menu option; anything that is not a number maps to -1
func (c *Controller) readChoice() (int, bool) {
	token, ok := c.readToken()
	if !ok {
		return 0, false
	}

	choice, err := strconv.Atoi(token)
	if err != nil {
		c.logger.Debug("Non-numeric menu choice", map[string]any{
			"input": token,
		})
		return -1, true
	}
	return choice, true
}

func (c *Controller) readToken() (string, bool) {
	if c.closed || !c.scanner.Scan() {
		c.closed = true
		return "", false
	}
	return c.scanner.Text(), true
}

// inputError returns the read failure, if any; end of input is not an error
func (c *Controller) inputError() error {
	if err := c.scanner.Err(); err != nil {
		c.logger.Error("Failed to read operator input", map[string]any{
			"error": err.Error(),
		})
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

func (c *Controller) println(message string) {
	fmt.Fprintln(c.out, message)
}

func (c *Controller) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format+"\n", args...)
}
