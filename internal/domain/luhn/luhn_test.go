package luhn

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
)

func TestCheckDigit(t *testing.T) {
	tests := []struct {
		name     string
		digits   string
		expected int
	}{
		{"Issuer prefix with zeros", "400000000000000", 2},
		{"Known card payload", "400000844943340", 3},
		{"Another known payload", "400000493832089", 6},
		{"Single zero", "0", 0},
		{"Single digit doubled", "5", 9},
		{"Doubling above nine", "9", 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckDigit(tt.digits)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestCheckDigit_InvalidInput(t *testing.T) {
	for _, input := range []string{"", "40000a", "4000 00", "-1"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := CheckDigit(input)
			assert.ErrorIs(t, err, errs.ErrInvalidInput)
		})
	}
}

func TestAppend(t *testing.T) {
	number, err := Append("400000844943340")
	require.NoError(t, err)
	assert.Equal(t, "4000008449433403", number)

	_, err = Append("abc")
	assert.ErrorIs(t, err, errs.ErrInvalidInput)
}

func TestIsValid(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{"4000008449433403", true},
		{"4000008449433400", false},
		{"4000004938320896", true},
		{"4000004938320894", false},
		{"4000001234567890", false},
		{"4000000000000002", true},
		{"", false},
		{"4", false},
		{"400000844943340x", false},
		{"40000084494334a3", false},
	}

	for _, tt := range tests {
		t.Run(tt.number, func(t *testing.T) {
			assert.Equal(t, tt.valid, IsValid(tt.number))
		})
	}
}

func TestIsValid_RoundTripForRandomPayloads(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for i := 0; i < 1000; i++ {
		payload := fmt.Sprintf("%015d", rng.Int63n(1_000_000_000_000_000))

		check, err := CheckDigit(payload)
		require.NoError(t, err)
		assert.True(t, IsValid(fmt.Sprintf("%s%d", payload, check)), "payload %s", payload)

		wrong := (check + 1 + rng.Intn(9)) % 10
		assert.False(t, IsValid(fmt.Sprintf("%s%d", payload, wrong)), "payload %s with digit %d", payload, wrong)
	}
}
