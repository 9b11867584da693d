package services_test

import (
	"testing"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/dvalarezo/hojavida/internal/db"
	"github.com/dvalarezo/hojavida/internal/models"
	"github.com/dvalarezo/hojavida/internal/services"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(conn); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return conn
}

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func seedProfile(t *testing.T, conn *gorm.DB, cedula string, active bool) *models.Profile {
	t.Helper()
	p := &models.Profile{
		Tagline:     "Desarrollador Web",
		Active:      active,
		GivenNames:  "Diego",
		FamilyNames: "Valarezo",
		Nationality: "Ecuatoriana",
		BirthDate:   day(1985, 4, 12),
		Cedula:      cedula,
		Sex:         models.SexMan,
		Marital:     models.MaritalMarried,
		HomeAddress: "Cuenca",
	}
	if err := conn.Create(p).Error; err != nil {
		t.Fatalf("seed profile: %v", err)
	}
	return p
}

func TestActiveProfileByCedula(t *testing.T) {
	conn := setupTestDB(t)
	svc := services.NewResume(conn)

	seedProfile(t, conn, "0102030405", true)
	inactive := seedProfile(t, conn, "0605040302", false)

	p, err := svc.ActiveProfileByCedula("0102030405")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if p.Cedula != "0102030405" {
		t.Fatalf("wrong profile: %s", p.Cedula)
	}

	if _, err := svc.ActiveProfileByCedula(inactive.Cedula); err != services.ErrProfileNotFound {
		t.Fatalf("inactive profile must read as not found, got %v", err)
	}
	if _, err := svc.ActiveProfileByCedula("9999999999"); err != services.ErrProfileNotFound {
		t.Fatalf("unknown cedula must be not found, got %v", err)
	}
}

func TestDefaultActiveProfilePrefersLatestUpdate(t *testing.T) {
	conn := setupTestDB(t)
	svc := services.NewResume(conn)

	if _, err := svc.DefaultActiveProfile(); err != services.ErrNoActiveProfile {
		t.Fatalf("empty database must report no active profile, got %v", err)
	}

	seedProfile(t, conn, "0102030405", true)
	second := seedProfile(t, conn, "0605040302", true)

	second.Tagline = "Ingeniero"
	if err := conn.Save(second).Error; err != nil {
		t.Fatalf("update: %v", err)
	}

	p, err := svc.DefaultActiveProfile()
	if err != nil {
		t.Fatalf("default lookup failed: %v", err)
	}
	if p.Cedula != second.Cedula {
		t.Fatalf("most recently updated active profile should win, got %s", p.Cedula)
	}
}

func TestVisibleExperiencesFilterAndOrder(t *testing.T) {
	conn := setupTestDB(t)
	svc := services.NewResume(conn)
	p := seedProfile(t, conn, "0102030405", true)

	mk := func(start time.Time, visible bool) {
		e := models.WorkExperience{
			ProfileID: p.ID,
			Role:      "Rol",
			Company:   "Empresa",
			Location:  "Cuenca",
			StartDate: start,
			Duties:    "Tareas varias",
			Visible:   visible,
		}
		if err := conn.Create(&e).Error; err != nil {
			t.Fatalf("seed experience: %v", err)
		}
	}
	mk(day(2020, 1, 1), true)
	mk(day(2021, 6, 1), true)
	mk(day(2019, 3, 1), true)
	mk(day(2022, 1, 1), false) // hidden

	items, err := svc.VisibleExperiences(p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 3 {
		t.Fatalf("hidden entries must be filtered, got %d items", len(items))
	}
	want := []time.Time{day(2021, 6, 1), day(2020, 1, 1), day(2019, 3, 1)}
	for i, w := range want {
		if !items[i].StartDate.Equal(w) {
			t.Fatalf("order mismatch at %d: got %v want %v", i, items[i].StartDate, w)
		}
	}
}

func TestViewLoadsAllSections(t *testing.T) {
	conn := setupTestDB(t)
	svc := services.NewResume(conn)
	p := seedProfile(t, conn, "0102030405", true)

	if err := conn.Create(&models.Course{
		ProfileID: p.ID, Name: "Curso Go", StartDate: day(2023, 1, 9), EndDate: day(2023, 1, 13),
		TotalHours: 40, Description: "Taller intensivo", Visible: true,
	}).Error; err != nil {
		t.Fatalf("seed course: %v", err)
	}
	if err := conn.Create(&models.Award{
		ProfileID: p.ID, Type: models.AwardAcademic, Entity: "Universidad de Cuenca",
		Date: day(2010, 7, 20), Description: "Mejor egresado de la promoción", Visible: true,
	}).Error; err != nil {
		t.Fatalf("seed award: %v", err)
	}
	if err := conn.Create(&models.AcademicProduct{
		ProfileID: p.ID, Name: "Tesis", Classifier: models.ClassifierResearch,
		Description: "Trabajo de titulación", Visible: true,
	}).Error; err != nil {
		t.Fatalf("seed academic product: %v", err)
	}
	if err := conn.Create(&models.WorkProduct{
		ProfileID: p.ID, Name: "Sistema de facturación", Date: day(2022, 3, 1),
		Description: "Aplicación web", Visible: true,
	}).Error; err != nil {
		t.Fatalf("seed work product: %v", err)
	}

	v, err := svc.View(p)
	if err != nil {
		t.Fatalf("view: %v", err)
	}
	if len(v.Courses) != 1 || len(v.Awards) != 1 || len(v.AcademicProducts) != 1 || len(v.WorkProducts) != 1 {
		t.Fatalf("view should carry every visible section: %+v", v)
	}
}

func TestVisibleGarageItems(t *testing.T) {
	conn := setupTestDB(t)
	svc := services.NewResume(conn)
	p := seedProfile(t, conn, "0102030405", true)

	mk := func(name string, visible bool) {
		g := models.GarageSaleItem{
			ProfileID: p.ID, Name: name, Condition: models.ConditionGood,
			Description: "Artículo usado", Price: 10, PublishedOn: day(2025, 1, 1), Visible: visible,
		}
		if err := conn.Create(&g).Error; err != nil {
			t.Fatalf("seed item: %v", err)
		}
	}
	mk("Bicicleta", true)
	mk("Televisor", false)

	items, err := svc.VisibleGarageItems(p.ID)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 || items[0].Name != "Bicicleta" {
		t.Fatalf("hidden items must be filtered, got %+v", items)
	}
}
