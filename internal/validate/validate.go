package validate

import (
	"regexp"
	"strconv"
	"strings"

	"pixlumia/internal/domain"
)

var (
	// French postal code: 5 digits
	reZIP   = regexp.MustCompile(`^[0-9]{5}$`)
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reID    = regexp.MustCompile(`^[A-Za-z0-9_.:-]{1,64}$`)
)

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 80 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

func ZipCode(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, reZIP.MatchString(s)
}

// ID validates a product or relay identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Title validates a displayable product title.
func Title(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Name validates a person name field; empty is allowed since login
// synthesizes defaults.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, len(s) <= 40
}

func Category(s string) (domain.Category, bool) {
	c := domain.Category(strings.TrimSpace(s))
	return c, c.Valid()
}

func Format(s string) (domain.PosterFormat, bool) {
	f := domain.PosterFormat(strings.TrimSpace(s))
	return f, f.Valid()
}

// Delta parses a quantity delta, clamped to a sane window.
func Delta(n int) int {
	if n > 99 {
		return 99
	}
	if n < -99 {
		return -99
	}
	return n
}

// Discount normalizes a discount multiplier; zero or negative means none.
func Discount(d float64) float64 {
	if d <= 0 {
		return 1
	}
	return d
}

// Price parses a non-negative surcharge.
func Price(s string) float64 {
	n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || n < 0 {
		return 0
	}
	return n
}

// Prompt trims and clamps a free-text assistant prompt.
func Prompt(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", false
	}
	if len(s) > 300 {
		s = s[:300]
	}
	return s, true
}
