package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Form field helpers shared by the admin CRUD handlers. Dates arrive as
// ISO "2006-01-02" from both the JSON and the HTML form paths.

func parseDate(s string) time.Time {
	t, err := time.Parse("2006-01-02", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}
	}
	return t
}

func parseDatePtr(s string) *time.Time {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	t := parseDate(s)
	if t.IsZero() {
		return nil
	}
	return &t
}

// recordID reads the id from query string or form body for the ?id=N
// update/delete endpoints.
func recordID(r *http.Request) int {
	idStr := r.URL.Query().Get("id")
	if idStr == "" {
		idStr = r.FormValue("id")
	}
	id, _ := strconv.Atoi(idStr)
	return id
}

func profileIDParam(r *http.Request) uint {
	s := r.URL.Query().Get("profile_id")
	if s == "" {
		s = r.FormValue("profile_id")
	}
	n, _ := strconv.Atoi(s)
	if n < 0 {
		return 0
	}
	return uint(n)
}

func formBool(r *http.Request, field string) bool {
	v := strings.ToLower(r.FormValue(field))
	return v == "1" || v == "true" || v == "on" || v == "yes"
}

func isDuplicateErr(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique")
}
