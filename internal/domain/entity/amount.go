package entity

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
)

// MaxAmount is the largest balance or amount the ledger accepts.
// SQLite INTEGER and PostgreSQL bigint are both signed 64-bit.
const MaxAmount = int64(1<<63 - 1)

// ParseAmount converts operator input into a non-negative amount in minor units.
// Only whole numbers are accepted; a leading "+" and leading zeros are tolerated.
func ParseAmount(input string) (int64, error) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return 0, fmt.Errorf("%w: empty value", errs.ErrInvalidAmount)
	}

	value, err := strconv.ParseInt(input, 10, 64)
	if err != nil {
		if errors.Is(err, strconv.ErrRange) {
			if strings.HasPrefix(input, "-") {
				return 0, errs.ErrNegativeAmount
			}
			return 0, errs.ErrAmountOverflow
		}
		return 0, fmt.Errorf("%w: %q is not a whole number", errs.ErrInvalidAmount, input)
	}

	if err := ValidateAmount(value); err != nil {
		return 0, err
	}
	return value, nil
}

// ValidateAmount checks an already parsed amount
func ValidateAmount(amount int64) error {
	if amount < 0 {
		return errs.ErrNegativeAmount
	}
	return nil
}
