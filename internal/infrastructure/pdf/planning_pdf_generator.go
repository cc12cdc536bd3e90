// Package pdf implémente l'export imprimable du planning hebdomadaire, affiché
// en boutique à côté de la borne.
//
// Mise en page A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Planning + fenêtre de dates                        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLE: Jour | Employé | Boutique | Début | Fin             │
//	│  ...                                                        │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
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

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/application/usecase"
)

// ── Palette ───────────────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 30, Green: 64, Blue: 120}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

var _ usecase.PlanningPDFGenerator = (*MarotoPlanningGenerator)(nil)

// MarotoPlanningGenerator implémente usecase.PlanningPDFGenerator avec Maroto v2.
type MarotoPlanningGenerator struct{}

// NewMarotoPlanningGenerator construit le générateur.
func NewMarotoPlanningGenerator() *MarotoPlanningGenerator { return &MarotoPlanningGenerator{} }

// GeneratePlanningPDF génère le PDF et retourne ses bytes. Les lignes arrivent
// déjà triées par start_at (ordre du repo).
func (g *MarotoPlanningGenerator) GeneratePlanningPDF(
	_ context.Context,
	from, to time.Time,
	lignes []dto.ShiftResponse,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Planning hebdomadaire", true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(from, to))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, l := range lignes {
		m.AddRows(shiftRow(l))
	}
	if len(lignes) == 0 {
		m.AddRows(row.New(8).Add(
			col.New(12).Add(text.New("Aucun shift sur la période.", props.Text{
				Size: 9, Color: colorGray, Align: align.Center, Top: 2,
			})),
		))
	}

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: générer le document: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Sections ──────────────────────────────────────────────────────────────────

func headerRow(from, to time.Time) core.Row {
	periode := fmt.Sprintf("du %s au %s", from.Format("02/01/2006"), to.AddDate(0, 0, -1).Format("02/01/2006"))
	return row.New(14).Add(
		col.New(8).Add(
			text.New("Planning hebdomadaire", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
		),
		col.New(4).Add(
			text.New(periode, props.Text{
				Size: 9, Top: 4, Color: colorGray, Align: align.Right,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	style := props.Text{Style: fontstyle.Bold, Size: 8, Color: colorPrimary, Top: 1}
	return row.New(7).Add(
		col.New(2).Add(text.New("Jour", style)),
		col.New(4).Add(text.New("Employé", style)),
		col.New(2).Add(text.New("Boutique", style)),
		col.New(2).Add(text.New("Début", style)),
		col.New(2).Add(text.New("Fin", style)),
	)
}

func shiftRow(l dto.ShiftResponse) core.Row {
	cell := props.Text{Size: 8, Top: 1}
	boutique := l.Boutique
	if boutique == "" {
		boutique = "—"
	}
	return row.New(6).Add(
		col.New(2).Add(text.New(jourLabel(l.StartAt), cell)),
		col.New(4).Add(text.New(l.Employe.Nom, cell)),
		col.New(2).Add(text.New(boutique, cell)),
		col.New(2).Add(text.New(l.StartAt.Format("15:04"), cell)),
		col.New(2).Add(text.New(l.EndAt.Format("15:04"), cell)),
	)
}

// jourLabel retourne une étiquette lisible du jour, ex: "Lun. 09/03".
func jourLabel(t time.Time) string {
	jours := [...]string{"Dim.", "Lun.", "Mar.", "Mer.", "Jeu.", "Ven.", "Sam."}
	return fmt.Sprintf("%s %s", jours[t.Weekday()], t.Format("02/01"))
}
