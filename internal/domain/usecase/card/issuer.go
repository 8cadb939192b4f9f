package card

import (
	"crypto/rand"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/amirhossein-jamali/simple-banking/internal/domain/entity"
	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/luhn"
)

// DefaultIssuerPrefix is the issuer identification number of every card
const DefaultIssuerPrefix = "400000"

// Issuer mints card numbers and PINs
type Issuer struct {
	prefix string
	random io.Reader
}

// NewIssuer creates an issuer for the given prefix.
// A nil random reader falls back to crypto/rand.
func NewIssuer(prefix string, random io.Reader) (*Issuer, error) {
	if prefix == "" {
		prefix = DefaultIssuerPrefix
	}
	if len(prefix) >= entity.CardNumberLength-1 || strings.Trim(prefix, "0123456789") != "" {
		return nil, fmt.Errorf("%w: issuer prefix %q must be 1-%d digits",
			errs.ErrInvalidInput, prefix, entity.CardNumberLength-2)
	}
	if random == nil {
		random = rand.Reader
	}

	return &Issuer{
		prefix: prefix,
		random: random,
	}, nil
}

// Prefix returns the issuer prefix
func (i *Issuer) Prefix() string {
	return i.prefix
}

// GenerateCardNumber returns prefix + random account digits + Luhn check digit
func (i *Issuer) GenerateCardNumber() (string, error) {
	width := entity.CardNumberLength - 1 - len(i.prefix)

	account, err := i.randomDigits(width)
	if err != nil {
		return "", fmt.Errorf("failed to generate card number: %w", err)
	}

	return luhn.Append(i.prefix + account)
}

// GeneratePIN returns a random zero-padded PIN
func (i *Issuer) GeneratePIN() (string, error) {
	pin, err := i.randomDigits(entity.PINLength)
	if err != nil {
		return "", fmt.Errorf("failed to generate PIN: %w", err)
	}
	return pin, nil
}

// randomDigits returns a uniformly random zero-padded decimal string of the given width
func (i *Issuer) randomDigits(width int) (string, error) {
	limit := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(width)), nil)

	n, err := rand.Int(i.random, limit)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*s", width, n.String()), nil
}
