package card

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
	"github.com/amirhossein-jamali/simple-banking/internal/domain/luhn"
)

type zeroReader struct{}

func (zeroReader) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	return len(p), nil
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) {
	return 0, errors.New("entropy exhausted")
}

func TestNewIssuer(t *testing.T) {
	t.Run("Defaults prefix and random source", func(t *testing.T) {
		issuer, err := NewIssuer("", nil)
		require.NoError(t, err)
		assert.Equal(t, DefaultIssuerPrefix, issuer.Prefix())
	})

	t.Run("Rejects non-digit prefix", func(t *testing.T) {
		_, err := NewIssuer("40a000", nil)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})

	t.Run("Rejects prefix leaving no room for account digits", func(t *testing.T) {
		_, err := NewIssuer(strings.Repeat("4", 15), nil)
		assert.ErrorIs(t, err, errs.ErrInvalidInput)
	})
}

func TestIssuer_GenerateCardNumber(t *testing.T) {
	t.Run("Deterministic source yields known number", func(t *testing.T) {
		issuer, err := NewIssuer(DefaultIssuerPrefix, zeroReader{})
		require.NoError(t, err)

		number, err := issuer.GenerateCardNumber()
		require.NoError(t, err)
		assert.Equal(t, "4000000000000002", number)
	})

	t.Run("Random numbers are well formed", func(t *testing.T) {
		issuer, err := NewIssuer(DefaultIssuerPrefix, nil)
		require.NoError(t, err)

		for i := 0; i < 200; i++ {
			number, err := issuer.GenerateCardNumber()
			require.NoError(t, err)
			assert.Len(t, number, 16)
			assert.True(t, strings.HasPrefix(number, DefaultIssuerPrefix))
			assert.True(t, luhn.IsValid(number), "number %s should pass checksum", number)
		}
	})

	t.Run("Custom prefix", func(t *testing.T) {
		issuer, err := NewIssuer("5", zeroReader{})
		require.NoError(t, err)

		number, err := issuer.GenerateCardNumber()
		require.NoError(t, err)
		assert.Len(t, number, 16)
		assert.True(t, strings.HasPrefix(number, "5"))
		assert.True(t, luhn.IsValid(number))
	})

	t.Run("Random source failure", func(t *testing.T) {
		issuer, err := NewIssuer(DefaultIssuerPrefix, failingReader{})
		require.NoError(t, err)

		_, err = issuer.GenerateCardNumber()
		assert.Error(t, err)
	})
}

func TestIssuer_GeneratePIN(t *testing.T) {
	t.Run("Zero padded", func(t *testing.T) {
		issuer, err := NewIssuer(DefaultIssuerPrefix, zeroReader{})
		require.NoError(t, err)

		pin, err := issuer.GeneratePIN()
		require.NoError(t, err)
		assert.Equal(t, "0000", pin)
	})

	t.Run("Always four digits", func(t *testing.T) {
		issuer, err := NewIssuer(DefaultIssuerPrefix, nil)
		require.NoError(t, err)

		for i := 0; i < 200; i++ {
			pin, err := issuer.GeneratePIN()
			require.NoError(t, err)
			assert.Regexp(t, `^[0-9]{4}$`, pin)
		}
	})

	t.Run("Random source failure", func(t *testing.T) {
		issuer, err := NewIssuer(DefaultIssuerPrefix, io.LimitReader(zeroReader{}, 0))
		require.NoError(t, err)

		_, err = issuer.GeneratePIN()
		assert.Error(t, err)
	})
}
