package models

import (
	"time"

	"github.com/dvalarezo/hojavida/internal/validation"
)

// Course is a completed training, always with a closed date range.
type Course struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	ProfileID uint    `gorm:"not null;index"`
	Profile   Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`

	Name        string    `gorm:"size:100;not null"`
	StartDate   time.Time `gorm:"not null;index"`
	EndDate     time.Time `gorm:"not null"`
	TotalHours  int       `gorm:"not null"` // 1..10000
	Description string    `gorm:"size:300;not null"`
	Institution string    `gorm:"size:100;not null"`

	ContactName      string `gorm:"size:100"`
	ContactPhone     string `gorm:"size:20"`
	InstitutionEmail string `gorm:"size:255"`

	Visible         bool   `gorm:"default:true;not null"`
	CertificatePath string `gorm:"size:255"`
}

func (c *Course) Validate(today time.Time) validation.Violations {
	v := validation.Violations{}
	validation.Required("name", c.Name, v)
	validation.Required("institution", c.Institution, v)
	validation.Required("description", c.Description, v)
	validation.MaxLen("description", c.Description, 300, v)
	validation.IntRange("total_hours", c.TotalHours, 1, 10000, v)
	if c.StartDate.IsZero() {
		v["start_date"] = "required"
	}
	if c.EndDate.IsZero() {
		v["end_date"] = "required"
	}
	validation.NotFuture("start_date", c.StartDate, today, v)
	validation.NotFuture("end_date", c.EndDate, today, v)
	validation.DateOrder("end_date", c.StartDate, c.EndDate, v)
	validation.Phone("contact_phone", c.ContactPhone, v)
	validation.Email("institution_email", c.InstitutionEmail, v)
	return v
}
