package models

import (
	"time"

	"github.com/dvalarezo/hojavida/internal/validation"
)

// Sex choices stored as their display value, like the marital statuses.
type Sex string

const (
	SexWoman Sex = "Mujer"
	SexMan   Sex = "Hombre"
)

func (s Sex) Valid() bool { return s == SexWoman || s == SexMan }

type MaritalStatus string

const (
	MaritalSingle    MaritalStatus = "Soltero/a"
	MaritalMarried   MaritalStatus = "Casado/a"
	MaritalDivorced  MaritalStatus = "Divorciado/a"
	MaritalWidowed   MaritalStatus = "Viudo/a"
	MaritalFreeUnion MaritalStatus = "Unión libre"
)

func (m MaritalStatus) Valid() bool {
	switch m {
	case MaritalSingle, MaritalMarried, MaritalDivorced, MaritalWidowed, MaritalFreeUnion:
		return true
	}
	return false
}

// Profile is the résumé subject. Several may exist; only profiles with Active
// set are publicly resolvable, and the most recently updated active one is the
// default for the front page. The cédula is unique at the storage layer so
// concurrent admin edits cannot race a duplicate in.
type Profile struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Tagline string `gorm:"size:100;not null"` // e.g. "Desarrollador Web"
	Active  bool   `gorm:"default:true;not null"`

	GivenNames  string `gorm:"size:60;not null"`
	FamilyNames string `gorm:"size:60;not null"`
	Nationality string `gorm:"size:20;not null;default:'Ecuatoriana'"`
	BirthDate   time.Time
	Cedula      string        `gorm:"size:10;uniqueIndex;not null"`
	Sex         Sex           `gorm:"size:10;not null"`
	Marital     MaritalStatus `gorm:"size:50;not null"`

	DriverLicense string `gorm:"size:6"` // category only (B, C, D...)
	Landline      string `gorm:"size:20"`
	Mobile        string `gorm:"size:20"`
	HomeAddress   string `gorm:"size:100;not null"`
	WorkAddress   string `gorm:"size:100"`
	Website       string `gorm:"size:200"`
	PhotoPath     string `gorm:"size:255"` // relative to the media dir

	Experiences      []WorkExperience  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Courses          []Course          `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	Awards           []Award           `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	AcademicProducts []AcademicProduct `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	WorkProducts     []WorkProduct     `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
	GarageItems      []GarageSaleItem  `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`
}

// Display helpers use value receivers so templates can call them while
// ranging over profile slices.

func (p Profile) FullName() string { return p.GivenNames + " " + p.FamilyNames }

// AgeAt computes whole years of age as of the given day. Never stored, so it
// stays correct across calendar days.
func (p Profile) AgeAt(today time.Time) int {
	return validation.YearsBetween(p.BirthDate, today)
}

func (p Profile) Age() int { return p.AgeAt(time.Now()) }

// ContactPhone prefers the mobile number, then the landline.
func (p Profile) ContactPhone() string {
	if p.Mobile != "" {
		return validation.FormatPhone(p.Mobile)
	}
	if p.Landline != "" {
		return validation.FormatPhone(p.Landline)
	}
	return ""
}

// Validate runs the whole-record rules against the given day. Handlers call
// this right before persisting; a non-empty result must abort the write.
func (p *Profile) Validate(today time.Time) validation.Violations {
	v := validation.Violations{}
	validation.Required("tagline", p.Tagline, v)
	validation.MaxLen("tagline", p.Tagline, 100, v)
	validation.Required("given_names", p.GivenNames, v)
	validation.Required("family_names", p.FamilyNames, v)
	validation.Required("cedula", p.Cedula, v)
	validation.MaxLen("cedula", p.Cedula, 10, v)
	validation.Required("home_address", p.HomeAddress, v)
	if !p.Sex.Valid() {
		v["sex"] = "invalid_choice"
	}
	if !p.Marital.Valid() {
		v["marital_status"] = "invalid_choice"
	}
	validation.NotFuture("birth_date", p.BirthDate, today, v)
	validation.MinimumAge("birth_date", p.BirthDate, today, v)
	validation.Phone("landline", p.Landline, v)
	validation.Phone("mobile", p.Mobile, v)
	validation.URL("website", p.Website, v)
	return v
}
