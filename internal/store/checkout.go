package store

import (
	"errors"
	"fmt"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode"
)

var ErrInvalidCheckout = errors.New("invalid checkout details")

type CheckoutRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Address    string `json:"address"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVV        string `json:"cvv"`
}

// Normalize trims fields and strips spaces and dashes from the card number.
func (r *CheckoutRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Address = strings.TrimSpace(r.Address)
	r.Expiry = strings.TrimSpace(r.Expiry)
	r.CVV = strings.TrimSpace(r.CVV)
	r.CardNumber = strings.Map(func(c rune) rune {
		if c == ' ' || c == '-' {
			return -1
		}
		return c
	}, r.CardNumber)
}

func (r *CheckoutRequest) Validate(now time.Time) error {
	switch {
	case r.Name == "":
		return fmt.Errorf("%w: name required", ErrInvalidCheckout)
	case r.Address == "":
		return fmt.Errorf("%w: address required", ErrInvalidCheckout)
	}
	if _, err := mail.ParseAddress(r.Email); err != nil {
		return fmt.Errorf("%w: invalid email", ErrInvalidCheckout)
	}
	if len(r.CardNumber) != 16 || !allDigits(r.CardNumber) || !LuhnValid(r.CardNumber) {
		return fmt.Errorf("%w: invalid card number", ErrInvalidCheckout)
	}
	if err := validateExpiry(r.Expiry, now); err != nil {
		return err
	}
	if l := len(r.CVV); l < 3 || l > 4 || !allDigits(r.CVV) {
		return fmt.Errorf("%w: invalid cvv", ErrInvalidCheckout)
	}
	return nil
}

func allDigits(s string) bool {
	for _, c := range s {
		if !unicode.IsDigit(c) {
			return false
		}
	}
	return s != ""
}

// LuhnValid runs the mod 10 checksum over a digit string.
func LuhnValid(number string) bool {
	sum := 0
	double := false
	for i := len(number) - 1; i >= 0; i-- {
		d := int(number[i] - '0')
		if d < 0 || d > 9 {
			return false
		}
		if double {
			d *= 2
			if d > 9 {
				d -= 9
			}
		}
		sum += d
		double = !double
	}
	return sum%10 == 0
}

// validateExpiry accepts MM/YY. A card is valid through the last day of its month.
func validateExpiry(expiry string, now time.Time) error {
	parts := strings.Split(expiry, "/")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return fmt.Errorf("%w: expiry must be MM/YY", ErrInvalidCheckout)
	}
	month, err := strconv.Atoi(parts[0])
	if err != nil || month < 1 || month > 12 {
		return fmt.Errorf("%w: invalid expiry month", ErrInvalidCheckout)
	}
	year, err := strconv.Atoi(parts[1])
	if err != nil {
		return fmt.Errorf("%w: invalid expiry year", ErrInvalidCheckout)
	}

	now = now.UTC()
	firstOfNextMonth := time.Date(2000+year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)
	if !now.Before(firstOfNextMonth) {
		return fmt.Errorf("%w: card expired", ErrInvalidCheckout)
	}
	return nil
}

// MaskCard keeps only the last four digits.
func MaskCard(number string) string {
	if len(number) < 4 {
		return number
	}
	return number[len(number)-4:]
}
