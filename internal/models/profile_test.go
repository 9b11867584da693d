package models

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func validProfile() Profile {
	return Profile{
		Tagline:     "Ingeniero en Sistemas",
		Active:      true,
		GivenNames:  "Diego Vinicio",
		FamilyNames: "Valarezo Córdova",
		Nationality: "Ecuatoriana",
		BirthDate:   day(1985, 4, 12),
		Cedula:      "0102030405",
		Sex:         SexMan,
		Marital:     MaritalMarried,
		HomeAddress: "Cuenca, Ecuador",
	}
}

func TestProfileAgeChangesOnBirthday(t *testing.T) {
	p := validProfile()
	before := p.AgeAt(day(2025, 4, 11))
	on := p.AgeAt(day(2025, 4, 12))
	if on != before+1 {
		t.Fatalf("age should grow by one on the birthday: before=%d on=%d", before, on)
	}
	if on != 40 {
		t.Fatalf("expected 40 on the 2025 birthday, got %d", on)
	}
}

func TestProfileFullName(t *testing.T) {
	p := validProfile()
	if got := p.FullName(); got != "Diego Vinicio Valarezo Córdova" {
		t.Fatalf("unexpected full name %q", got)
	}
}

func TestProfileContactPhonePrefersMobile(t *testing.T) {
	p := validProfile()
	p.Landline = "072820000"
	p.Mobile = "0991234567"
	if got := p.ContactPhone(); got == "" || got == "072820000" {
		t.Fatalf("mobile should win, got %q", got)
	}
	p.Mobile = ""
	if got := p.ContactPhone(); got == "" {
		t.Fatal("landline should be used when mobile is empty")
	}
	p.Landline = ""
	if got := p.ContactPhone(); got != "" {
		t.Fatalf("no phones should render empty, got %q", got)
	}
}

func TestProfileValidate(t *testing.T) {
	today := day(2025, 8, 31)

	p := validProfile()
	if v := p.Validate(today); !v.Empty() {
		t.Fatalf("valid profile rejected: %v", v)
	}

	p = validProfile()
	p.BirthDate = day(2020, 1, 1)
	if v := p.Validate(today); v["birth_date"] != "under_minimum_age" {
		t.Fatalf("child profile should be rejected, got %v", v)
	}

	p = validProfile()
	p.Sex = "Otro"
	if v := p.Validate(today); v["sex"] != "invalid_choice" {
		t.Fatalf("unknown sex value should be rejected, got %v", v)
	}

	p = validProfile()
	p.Tagline = ""
	if v := p.Validate(today); v["tagline"] != "required" {
		t.Fatalf("empty tagline should be rejected, got %v", v)
	}

	p = validProfile()
	p.Website = "ftp://example.com"
	if v := p.Validate(today); v["website"] != "invalid_url" {
		t.Fatalf("non-http website should be rejected, got %v", v)
	}
}
