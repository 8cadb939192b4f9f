// Package luhn computes and validates Luhn check digits for card numbers.
//
// Doubling starts at the leftmost digit (index 0) and applies to every digit
// at an even index. That matches the standard algorithm for payloads of odd
// length, which is what a 16-digit card number carries (15 digits + check).
package luhn

import (
	"fmt"

	errs "github.com/amirhossein-jamali/simple-banking/internal/domain/error"
)

// CheckDigit returns the digit that makes digits+CheckDigit(digits) valid.
func CheckDigit(digits string) (int, error) {
	if digits == "" {
		return 0, fmt.Errorf("%w: empty payload", errs.ErrInvalidInput)
	}

	sum := 0
	for i := 0; i < len(digits); i++ {
		c := digits[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q at position %d", errs.ErrInvalidInput, c, i)
		}
		d := int(c - '0')
		if i%2 == 0 {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
	}

	return (10 - sum%10) % 10, nil
}

// Append returns digits followed by their check digit.
func Append(digits string) (string, error) {
	check, err := CheckDigit(digits)
	if err != nil {
		return "", err
	}
	return digits + string(rune('0'+check)), nil
}

// IsValid reports whether the last digit of number is the check digit of the rest.
// Malformed input is never valid.
func IsValid(number string) bool {
	if len(number) < 2 {
		return false
	}

	last := number[len(number)-1]
	if last < '0' || last > '9' {
		return false
	}

	check, err := CheckDigit(number[:len(number)-1])
	if err != nil {
		return false
	}
	return check == int(last-'0')
}
