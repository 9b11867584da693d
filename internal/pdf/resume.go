// Package pdf renders a profile's résumé as a paginated Letter document. It
// consumes the same view-model the public page renders. The document carries
// the classic CV sections only: work products and garage items stay web-only.
package pdf

import (
	"fmt"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/dvalarezo/hojavida/internal/services"
)

var (
	titleColor   = props.Color{Red: 44, Green: 62, Blue: 80}
	headingColor = props.Color{Red: 52, Green: 73, Blue: 94}
)

// Filename derives the suggested download name from the profile's names.
func Filename(given, family string) string {
	return fmt.Sprintf("CV_%s_%s.pdf", given, family)
}

// Resume builds the CV document. The profile is assumed already validated and
// resolved by the caller; sections with zero visible records are omitted
// entirely rather than shown empty.
func Resume(v *services.View, today time.Time) ([]byte, error) {
	doc, err := document(v, today).Generate()
	if err != nil {
		return nil, err
	}
	return doc.GetBytes(), nil
}

// document assembles the maroto page tree. Split from Resume so tests can
// inspect the structure without decoding PDF bytes.
func document(v *services.View, today time.Time) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.Letter).
		WithLeftMargin(18).
		WithRightMargin(18).
		WithTopMargin(15).
		Build()
	m := maroto.New(cfg)

	p := v.Profile
	m.AddRow(12, text.NewCol(12, p.FullName(), props.Text{
		Size: 20, Style: fontstyle.Bold, Align: align.Center, Color: &titleColor,
	}))
	m.AddRow(7, text.NewCol(12, p.Tagline, props.Text{Size: 11, Align: align.Center}))
	m.AddRows(row.New(4).Add(col.New(12)))

	addHeading(m, "DATOS PERSONALES")
	phone := p.ContactPhone()
	if phone == "" {
		phone = "N/A"
	}
	addField(m, "Cédula:", p.Cedula)
	addField(m, "Fecha de Nacimiento:", p.BirthDate.Format("02/01/2006"))
	addField(m, "Edad:", fmt.Sprintf("%d años", p.AgeAt(today)))
	addField(m, "Nacionalidad:", p.Nationality)
	addField(m, "Estado Civil:", string(p.Marital))
	addField(m, "Teléfono:", phone)
	addField(m, "Dirección:", p.HomeAddress)
	if p.Website != "" {
		addField(m, "Sitio Web:", p.Website)
	}

	if len(v.Experiences) > 0 {
		addHeading(m, "EXPERIENCIA LABORAL")
		for _, e := range v.Experiences {
			end := "Actualidad"
			if e.EndDate != nil {
				end = e.EndDate.Format("01/2006")
			}
			m.AddRow(5.5, text.NewCol(12, e.Role+" - "+e.Company, props.Text{
				Size: 10, Style: fontstyle.Bold,
			}))
			m.AddRow(5, text.NewCol(12, fmt.Sprintf("%s - %s | %s", e.StartDate.Format("01/2006"), end, e.Location), props.Text{Size: 9}))
			m.AddRow(textHeight(e.Duties), text.NewCol(12, e.Duties, props.Text{Size: 9}))
			m.AddRows(row.New(2).Add(col.New(12)))
		}
	}

	if len(v.Courses) > 0 {
		addHeading(m, "CURSOS Y CAPACITACIONES")
		for _, c := range v.Courses {
			m.AddRow(5.5, text.NewCol(12, c.Name+" - "+c.Institution, props.Text{
				Size: 10, Style: fontstyle.Bold,
			}))
			m.AddRow(5, text.NewCol(12, fmt.Sprintf("%s - %s | %d horas",
				c.StartDate.Format("01/2006"), c.EndDate.Format("01/2006"), c.TotalHours), props.Text{Size: 9}))
			m.AddRows(row.New(2).Add(col.New(12)))
		}
	}

	if len(v.Awards) > 0 {
		addHeading(m, "RECONOCIMIENTOS")
		for _, a := range v.Awards {
			m.AddRow(5.5, text.NewCol(12, string(a.Type)+" - "+a.Entity, props.Text{
				Size: 10, Style: fontstyle.Bold,
			}))
			m.AddRow(textHeight(a.Description), text.NewCol(12, a.Date.Format("01/2006")+" - "+a.Description, props.Text{Size: 9}))
			m.AddRows(row.New(2).Add(col.New(12)))
		}
	}

	if len(v.AcademicProducts) > 0 {
		addHeading(m, "PRODUCTOS ACADÉMICOS")
		for _, ap := range v.AcademicProducts {
			m.AddRow(5.5, text.NewCol(12, fmt.Sprintf("%s (%s)", ap.Name, ap.Classifier), props.Text{
				Size: 10, Style: fontstyle.Bold,
			}))
			m.AddRow(textHeight(ap.Description), text.NewCol(12, ap.Description, props.Text{Size: 9}))
			m.AddRows(row.New(2).Add(col.New(12)))
		}
	}

	return m
}

func addHeading(m core.Maroto, title string) {
	m.AddRows(row.New(3).Add(col.New(12)))
	m.AddRow(8, text.NewCol(12, title, props.Text{
		Size: 13, Style: fontstyle.Bold, Color: &headingColor,
	}))
	m.AddRow(1, line.NewCol(12))
}

func addField(m core.Maroto, label, value string) {
	m.AddRow(5.5,
		text.NewCol(4, label, props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(8, value, props.Text{Size: 10}),
	)
}

// textHeight gives long paragraphs enough row height to wrap without
// overlapping the next row. Roughly 95 chars per line at size 9.
func textHeight(s string) float64 {
	lines := len([]rune(s))/95 + 1
	return float64(lines)*4 + 1.5
}
