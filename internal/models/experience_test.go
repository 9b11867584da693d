package models

import (
	"testing"
	"time"
)

func TestTenureLabel(t *testing.T) {
	today := day(2025, 8, 31)
	cases := []struct {
		name  string
		start time.Time
		end   *time.Time
		want  string
	}{
		{"exactly one year", day(2024, 8, 31), nil, "1 año"},
		{"years and months", day(2023, 5, 1), nil, "2 años 4 meses"},
		{"under a year", day(2025, 6, 1), nil, "3 meses"},
		{"one month", day(2025, 7, 25), nil, "1 mes"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			e := WorkExperience{StartDate: c.start, EndDate: c.end}
			if got := e.TenureLabel(today); got != c.want {
				t.Fatalf("TenureLabel = %q, want %q", got, c.want)
			}
		})
	}
}

func TestTenureUsesEndDateWhenFinished(t *testing.T) {
	end := day(2020, 3, 1)
	e := WorkExperience{StartDate: day(2018, 3, 1), EndDate: &end}
	years, _ := e.TenureAt(day(2025, 8, 31))
	if years != 2 {
		t.Fatalf("finished position must measure to its end date, got %d years", years)
	}
}

func TestExperienceValidate(t *testing.T) {
	today := day(2025, 8, 31)

	valid := WorkExperience{
		ProfileID: 1,
		Role:      "Desarrollador",
		Company:   "ACME",
		Location:  "Cuenca",
		StartDate: day(2020, 1, 1),
		Duties:    "Desarrollo de aplicaciones web",
	}
	if v := valid.Validate(today); !v.Empty() {
		t.Fatalf("valid ongoing experience rejected: %v", v)
	}

	e := valid
	end := day(2019, 12, 31)
	e.EndDate = &end
	if v := e.Validate(today); v["end_date"] != "end_before_start" {
		t.Fatalf("end before start should be rejected, got %v", v)
	}

	e = valid
	sameDay := e.StartDate
	e.EndDate = &sameDay
	if v := e.Validate(today); !v.Empty() {
		t.Fatalf("one-day engagement should be accepted, got %v", v)
	}

	e = valid
	e.StartDate = day(2026, 1, 1)
	if v := e.Validate(today); v["start_date"] != "future_date" {
		t.Fatalf("future start should be rejected, got %v", v)
	}
}

func TestGarageItemRoundPrice(t *testing.T) {
	g := GarageSaleItem{Price: 19.999}
	g.RoundPrice()
	if g.Price != 20.00 {
		t.Fatalf("price should round to cents, got %v", g.Price)
	}
	g.Price = 10.004
	g.RoundPrice()
	if g.Price != 10.00 {
		t.Fatalf("price should round down, got %v", g.Price)
	}
}

func TestGarageItemValidate(t *testing.T) {
	g := GarageSaleItem{
		ProfileID:   1,
		Name:        "Bicicleta",
		Condition:   ConditionGood,
		Description: "Bicicleta montañera aro 26",
		Price:       80,
	}
	if v := g.Validate(day(2025, 8, 31)); !v.Empty() {
		t.Fatalf("valid item rejected: %v", v)
	}
	g.Price = 0
	if v := g.Validate(day(2025, 8, 31)); v["price"] != "must_be_positive" {
		t.Fatalf("zero price should be rejected, got %v", v)
	}
	g.Price = 10
	g.Condition = "Malo"
	if v := g.Validate(day(2025, 8, 31)); v["condition"] != "invalid_choice" {
		t.Fatalf("unknown condition should be rejected, got %v", v)
	}
}
