package validation

import (
	"net/mail"
	"net/url"
	"strings"
)

// Violations collects field -> error-code pairs accumulated by the rule
// functions below. An empty map means the record may be persisted.
type Violations map[string]string

func (v Violations) Empty() bool { return len(v) == 0 }

// Merge copies entries from other, keeping existing codes on conflict.
func (v Violations) Merge(other Violations) {
	for field, code := range other {
		if _, ok := v[field]; !ok {
			v[field] = code
		}
	}
}

// Basic validators

func Required(field, value string, v Violations) {
	if strings.TrimSpace(value) == "" {
		v[field] = "required"
	}
}

func MaxLen(field, value string, maxLen int, v Violations) {
	if len([]rune(value)) > maxLen {
		v[field] = "too_long"
	}
}

func IntRange(field string, val, minVal, maxVal int, v Violations) {
	if val < minVal || val > maxVal {
		v[field] = "out_of_range"
	}
}

// PositiveAmount rejects zero/negative monetary values.
func PositiveAmount(field string, val float64, v Violations) {
	if val <= 0 {
		v[field] = "must_be_positive"
	}
}

func Email(field, value string, v Violations) {
	if value == "" {
		return
	}
	if _, err := mail.ParseAddress(value); err != nil {
		v[field] = "invalid_email"
	}
}

func URL(field, value string, v Violations) {
	if value == "" {
		return
	}
	u, err := url.Parse(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		v[field] = "invalid_url"
	}
}
