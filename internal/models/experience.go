package models

import (
	"fmt"
	"time"

	"github.com/dvalarezo/hojavida/internal/validation"
)

// WorkExperience is one employment entry. A nil EndDate means the position is
// ongoing and renders as "Actualidad".
type WorkExperience struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	ProfileID uint    `gorm:"not null;index"`
	Profile   Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`

	Role     string `gorm:"size:100;not null"`
	Company  string `gorm:"size:50;not null"`
	Location string `gorm:"size:50;not null"`

	CompanyEmail   string `gorm:"size:255"`
	CompanyWebsite string `gorm:"size:200"`
	ContactName    string `gorm:"size:100"`
	ContactPhone   string `gorm:"size:20"`

	StartDate time.Time `gorm:"not null;index"`
	EndDate   *time.Time

	Duties          string `gorm:"size:500;not null"`
	Visible         bool   `gorm:"default:true;not null"`
	CertificatePath string `gorm:"size:255"`
}

// TenureAt returns whole years and leftover months worked as of today (or as
// of the end date when the position finished). Recomputed on read.
// Value receiver so templates can call it while ranging over slices.
func (e WorkExperience) TenureAt(today time.Time) (years, months int) {
	end := today
	if e.EndDate != nil {
		end = *e.EndDate
	}
	days := int(end.Sub(e.StartDate).Hours() / 24)
	if days < 0 {
		return 0, 0
	}
	return days / 365, (days % 365) / 30
}

// TenureLabel formats the tenure in Spanish, e.g. "2 años 3 meses".
func (e WorkExperience) TenureLabel(today time.Time) string {
	years, months := e.TenureAt(today)
	switch {
	case years > 0 && months > 0:
		return fmt.Sprintf("%s %s", plural(years, "año", "años"), plural(months, "mes", "meses"))
	case years > 0:
		return plural(years, "año", "años")
	default:
		return plural(months, "mes", "meses")
	}
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}

func (e *WorkExperience) Validate(today time.Time) validation.Violations {
	v := validation.Violations{}
	validation.Required("role", e.Role, v)
	validation.Required("company", e.Company, v)
	validation.Required("location", e.Location, v)
	validation.Required("duties", e.Duties, v)
	validation.MaxLen("duties", e.Duties, 500, v)
	if e.StartDate.IsZero() {
		v["start_date"] = "required"
	}
	validation.NotFuture("start_date", e.StartDate, today, v)
	if e.EndDate != nil {
		validation.NotFuture("end_date", *e.EndDate, today, v)
		validation.DateOrder("end_date", e.StartDate, *e.EndDate, v)
	}
	validation.Email("company_email", e.CompanyEmail, v)
	validation.URL("company_website", e.CompanyWebsite, v)
	validation.Phone("contact_phone", e.ContactPhone, v)
	return v
}
