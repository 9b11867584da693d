package models

import (
	"math"
	"time"

	"github.com/dvalarezo/hojavida/internal/validation"
)

type ItemCondition string

const (
	ConditionGood ItemCondition = "Bueno"
	ConditionFair ItemCondition = "Regular"
)

func (c ItemCondition) Valid() bool { return c == ConditionGood || c == ConditionFair }

// GarageSaleItem is a second-hand item published alongside the profile.
// PublishedOn is fixed at creation and never updated afterwards.
type GarageSaleItem struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time
	ProfileID uint    `gorm:"not null;index"`
	Profile   Profile `gorm:"foreignKey:ProfileID;constraint:OnDelete:CASCADE"`

	Name        string        `gorm:"size:100;not null"`
	Condition   ItemCondition `gorm:"size:20;not null"`
	Description string        `gorm:"size:500;not null"`
	Price       float64       `gorm:"not null"` // USD, two decimals
	ImagePath   string        `gorm:"size:255"`
	PublishedOn time.Time     `gorm:"<-:create;not null"`
	Visible     bool          `gorm:"default:true;not null"`
}

// RoundPrice normalizes the price to two decimals before saving.
func (g *GarageSaleItem) RoundPrice() {
	g.Price = math.Round(g.Price*100) / 100
}

func (g *GarageSaleItem) Validate(_ time.Time) validation.Violations {
	v := validation.Violations{}
	validation.Required("name", g.Name, v)
	validation.Required("description", g.Description, v)
	validation.MaxLen("description", g.Description, 500, v)
	if !g.Condition.Valid() {
		v["condition"] = "invalid_choice"
	}
	validation.PositiveAmount("price", g.Price, v)
	return v
}
