package models

import (
	"time"

	"github.com/dvalarezo/hojavida/internal/validation"
)

type AcademicClassifier string

const (
	ClassifierAcademicProject AcademicClassifier = "Proyecto Académico"
	ClassifierElectronics     AcademicClassifier = "Electrónica"
	ClassifierWebDevelopment  AcademicClassifier = "Desarrollo Web"
	ClassifierResearch        AcademicClassifier = "Investigación"
	ClassifierOther           AcademicClassifier = "Otro"
)

func (c AcademicClassifier) Valid() bool {
	switch c {
	case ClassifierAcademicProject, ClassifierElectronics, ClassifierWebDevelopment,
		ClassifierResearch, ClassifierOther:
		return true
	}
	return false
}

// AcademicProduct is a study-related deliverable (thesis project, prototype,
// site...). It carries no own date; listings order by creation time.
type AcademicProduct struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	ProfileID uint    `gorm:"not null;index"`
	Profile   Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`

	Name        string             `gorm:"size:100;not null"`
	Classifier  AcademicClassifier `gorm:"size:50;not null"`
	Description string             `gorm:"size:500;not null"`
	ImagePath   string             `gorm:"size:255"`
	Visible     bool               `gorm:"default:true;not null"`
}

func (p *AcademicProduct) Validate(_ time.Time) validation.Violations {
	v := validation.Violations{}
	validation.Required("name", p.Name, v)
	validation.Required("description", p.Description, v)
	validation.MaxLen("description", p.Description, 500, v)
	if !p.Classifier.Valid() {
		v["classifier"] = "invalid_choice"
	}
	return v
}

// WorkProduct is a professional deliverable tied to a date.
type WorkProduct struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	ProfileID uint    `gorm:"not null;index"`
	Profile   Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`

	Name        string    `gorm:"size:100;not null"`
	Date        time.Time `gorm:"not null;index"`
	Description string    `gorm:"size:500;not null"`
	Link        string    `gorm:"size:200"`
	Visible     bool      `gorm:"default:true;not null"`
}

func (p *WorkProduct) Validate(today time.Time) validation.Violations {
	v := validation.Violations{}
	validation.Required("name", p.Name, v)
	validation.Required("description", p.Description, v)
	validation.MaxLen("description", p.Description, 500, v)
	if p.Date.IsZero() {
		v["date"] = "required"
	}
	validation.NotFuture("date", p.Date, today, v)
	validation.URL("link", p.Link, v)
	return v
}
