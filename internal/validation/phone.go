package validation

import "github.com/nyaruka/phonenumbers"

// DefaultRegion is the region phone numbers are parsed against when they
// carry no international prefix. The site targets Ecuadorian profiles.
const DefaultRegion = "EC"

// Phone validates an optional phone field against the default region.
func Phone(field, value string, v Violations) {
	if value == "" {
		return
	}
	num, err := phonenumbers.Parse(value, DefaultRegion)
	if err != nil || !phonenumbers.IsValidNumber(num) {
		v[field] = "invalid_phone"
	}
}

// FormatPhone renders a stored number in international format for display.
// Unparseable values come back verbatim so older rows still render.
func FormatPhone(value string) string {
	if value == "" {
		return ""
	}
	num, err := phonenumbers.Parse(value, DefaultRegion)
	if err != nil {
		return value
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}
