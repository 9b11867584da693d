package models

import (
	"time"

	"github.com/dvalarezo/hojavida/internal/validation"
)

type AwardType string

const (
	AwardAcademic AwardType = "Académico"
	AwardPublic   AwardType = "Público"
	AwardPrivate  AwardType = "Privado"
)

func (t AwardType) Valid() bool {
	return t == AwardAcademic || t == AwardPublic || t == AwardPrivate
}

// Award is a recognition granted by some entity.
type Award struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	ProfileID uint    `gorm:"not null;index"`
	Profile   Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`

	Type        AwardType `gorm:"size:20;not null"`
	Date        time.Time `gorm:"not null;index"`
	Description string    `gorm:"size:300;not null"`
	Entity      string    `gorm:"size:100;not null"` // who granted it

	ContactName  string `gorm:"size:100"`
	ContactPhone string `gorm:"size:20"`

	Visible         bool   `gorm:"default:true;not null"`
	CertificatePath string `gorm:"size:255"`
}

func (a *Award) Validate(today time.Time) validation.Violations {
	v := validation.Violations{}
	if !a.Type.Valid() {
		v["type"] = "invalid_choice"
	}
	validation.Required("entity", a.Entity, v)
	validation.Required("description", a.Description, v)
	validation.MaxLen("description", a.Description, 300, v)
	if a.Date.IsZero() {
		v["date"] = "required"
	}
	validation.NotFuture("date", a.Date, today, v)
	validation.Phone("contact_phone", a.ContactPhone, v)
	return v
}
