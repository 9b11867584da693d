package pdf

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/johnfercher/go-tree/node"
	"github.com/johnfercher/maroto/v2/pkg/core"

	"github.com/dvalarezo/hojavida/internal/models"
	"github.com/dvalarezo/hojavida/internal/services"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func sampleView() *services.View {
	return &services.View{
		Profile: &models.Profile{
			Tagline:     "Desarrollador Web",
			GivenNames:  "Diego",
			FamilyNames: "Valarezo",
			Nationality: "Ecuatoriana",
			BirthDate:   day(1985, 4, 12),
			Cedula:      "0102030405",
			Sex:         models.SexMan,
			Marital:     models.MaritalMarried,
			HomeAddress: "Cuenca, Ecuador",
		},
	}
}

// documentText flattens every text component of the assembled page tree into
// one string, so tests can assert on section headings and entry lines without
// decoding PDF bytes.
func documentText(v *services.View) string {
	var parts []string
	var walk func(n *node.Node[core.Structure])
	walk = func(n *node.Node[core.Structure]) {
		if s, ok := n.GetData().Value.(string); ok {
			parts = append(parts, s)
		}
		for _, child := range n.GetNexts() {
			walk(child)
		}
	}
	walk(document(v, day(2025, 8, 31)).GetStructure())
	return strings.Join(parts, "\n")
}

func TestFilename(t *testing.T) {
	if got := Filename("Diego", "Valarezo"); got != "CV_Diego_Valarezo.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
}

func TestResumeMinimalProfile(t *testing.T) {
	data, err := Resume(sampleView(), day(2025, 8, 31))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(data) == 0 {
		t.Fatal("empty document")
	}
	if !bytes.HasPrefix(data, []byte("%PDF")) {
		t.Fatalf("not a PDF, starts with %q", data[:8])
	}
}

func TestResumeOmitsEmptySections(t *testing.T) {
	txt := documentText(sampleView())
	if !strings.Contains(txt, "DATOS PERSONALES") {
		t.Fatal("personal data section missing")
	}
	for _, heading := range []string{"EXPERIENCIA LABORAL", "CURSOS Y CAPACITACIONES", "RECONOCIMIENTOS", "PRODUCTOS ACADÉMICOS"} {
		if strings.Contains(txt, heading) {
			t.Fatalf("empty section %q should be omitted", heading)
		}
	}
}

func TestResumeAwardsSection(t *testing.T) {
	v := sampleView()
	v.Awards = []models.Award{
		{Type: models.AwardAcademic, Entity: "Universidad de Cuenca", Date: day(2010, 7, 20), Description: "Mejor egresado"},
	}
	txt := documentText(v)
	if !strings.Contains(txt, "RECONOCIMIENTOS") {
		t.Fatal("awards heading missing")
	}
	if !strings.Contains(txt, "Académico - Universidad de Cuenca") {
		t.Fatalf("award entry missing from document:\n%s", txt)
	}
	if !strings.Contains(txt, "07/2010 - Mejor egresado") {
		t.Fatalf("award date line missing from document:\n%s", txt)
	}
}

func TestResumeExperienceEntries(t *testing.T) {
	v := sampleView()
	end := day(2020, 3, 1)
	v.Experiences = []models.WorkExperience{
		{Role: "Desarrollador", Company: "ACME", Location: "Cuenca", StartDate: day(2018, 3, 1), EndDate: &end, Duties: "Desarrollo de aplicaciones"},
		{Role: "Líder técnico", Company: "Beta", Location: "Quito", StartDate: day(2020, 4, 1), Duties: "Coordinación del equipo"},
	}
	txt := documentText(v)
	if !strings.Contains(txt, "EXPERIENCIA LABORAL") {
		t.Fatal("experience heading missing")
	}
	if !strings.Contains(txt, "Desarrollador - ACME") {
		t.Fatalf("role and company missing from document:\n%s", txt)
	}
	if !strings.Contains(txt, "03/2018 - 03/2020 | Cuenca") {
		t.Fatalf("closed date range missing from document:\n%s", txt)
	}
	if !strings.Contains(txt, "04/2020 - Actualidad | Quito") {
		t.Fatalf("ongoing entry should read Actualidad:\n%s", txt)
	}
}

func TestResumeLeavesWorkProductsOut(t *testing.T) {
	v := sampleView()
	v.WorkProducts = []models.WorkProduct{
		{Name: "Sistema de facturación", Date: day(2022, 3, 1), Description: "Aplicación web", Link: "https://example.com"},
	}
	txt := documentText(v)
	if strings.Contains(txt, "Sistema de facturación") {
		t.Fatal("work products belong to the public page, not the CV document")
	}
	base, err := Resume(sampleView(), day(2025, 8, 31))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	withProducts, err := Resume(v, day(2025, 8, 31))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(withProducts) != len(base) {
		t.Fatalf("work products changed the document: %d vs %d bytes", len(withProducts), len(base))
	}
}

func TestResumeWithAllSections(t *testing.T) {
	v := sampleView()
	v.Experiences = []models.WorkExperience{
		{Role: "Desarrollador", Company: "ACME", Location: "Cuenca", StartDate: day(2018, 3, 1), Duties: "Desarrollo de aplicaciones"},
	}
	v.Courses = []models.Course{
		{Name: "Curso Go", Institution: "UDA", StartDate: day(2023, 1, 9), EndDate: day(2023, 1, 13), TotalHours: 40},
	}
	v.Awards = []models.Award{
		{Type: models.AwardAcademic, Entity: "Universidad de Cuenca", Date: day(2010, 7, 20), Description: "Mejor egresado"},
	}
	v.AcademicProducts = []models.AcademicProduct{
		{Name: "Tesis", Classifier: models.ClassifierResearch, Description: "Trabajo de titulación"},
	}
	txt := documentText(v)
	for _, want := range []string{
		"Diego Valarezo",
		"EXPERIENCIA LABORAL",
		"CURSOS Y CAPACITACIONES",
		"Curso Go - UDA",
		"01/2023 - 01/2023 | 40 horas",
		"RECONOCIMIENTOS",
		"PRODUCTOS ACADÉMICOS",
		"Tesis (Investigación)",
	} {
		if !strings.Contains(txt, want) {
			t.Fatalf("missing %q in document:\n%s", want, txt)
		}
	}
	full, err := Resume(v, day(2025, 8, 31))
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if !bytes.HasPrefix(full, []byte("%PDF")) {
		t.Fatal("not a PDF")
	}
}
