package validation

import "time"

// Date rules shared by every record carrying calendar fields. All of them
// compare against a caller-supplied "today" so records stay verifiable across
// calendar days; handlers pass time.Now().

// NotFuture flags a date strictly after today. Zero dates are skipped so
// optional fields validate only when present.
func NotFuture(field string, date time.Time, today time.Time, v Violations) {
	if date.IsZero() {
		return
	}
	if dateOnly(date).After(dateOnly(today)) {
		v[field] = "future_date"
	}
}

// MinimumAge enforces the publishable age window: the subject must be between
// 15 and 75 years old. The year difference is adjusted by one when the
// birthday has not yet occurred this year.
func MinimumAge(field string, birthDate time.Time, today time.Time, v Violations) {
	if birthDate.IsZero() {
		v[field] = "required"
		return
	}
	age := YearsBetween(birthDate, today)
	if age < 15 {
		v[field] = "under_minimum_age"
	} else if age > 75 {
		v[field] = "over_maximum_age"
	}
}

// DateOrder flags an end date earlier than its start date. Equal dates are
// accepted. Either side being zero skips the check.
func DateOrder(field string, start, end time.Time, v Violations) {
	if start.IsZero() || end.IsZero() {
		return
	}
	if dateOnly(end).Before(dateOnly(start)) {
		v[field] = "end_before_start"
	}
}

// YearsBetween returns whole years elapsed from 'from' to 'to', counting a
// year only once its month/day anniversary has passed.
func YearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()
	if to.Month() < from.Month() || (to.Month() == from.Month() && to.Day() < from.Day()) {
		years--
	}
	return years
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
