package presence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/presence"
)

// Shift de référence 09:00–17:00.
func shiftJour() *entity.Shift {
	return &entity.Shift{
		ID:        "sh-1",
		EmployeID: "emp-1",
		StartAt:   debutShift,
		EndAt:     debutShift.Add(8 * time.Hour),
	}
}

func pointage(typ string, at time.Time) *entity.Pointage {
	return &entity.Pointage{ID: "pt-" + typ, EmployeID: "emp-1", Type: typ, Horodatage: at}
}

// ──────────────────────────────────────────────────────────────────────────────
// Shift fermé (now > end_at)
// ──────────────────────────────────────────────────────────────────────────────

func TestClassifierShift_Fini_AvecEntree_Termine(t *testing.T) {
	pts := []*entity.Pointage{
		pointage(entity.PointageEntree, debutShift.Add(2*time.Minute)),
		pointage(entity.PointageSortie, debutShift.Add(8*time.Hour+5*time.Minute)),
	}
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(9*time.Hour), pts, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutTermine, c.Statut)
}

// Scénario D: shift 09:00–17:00, now 18:00, une SORTIE à 17:05 mais aucune
// ENTREE de la journée → ABSENT, pas TERMINE.
func TestClassifierShift_ScenarioD_SortieSeule_Absent(t *testing.T) {
	pts := []*entity.Pointage{
		pointage(entity.PointageSortie, debutShift.Add(8*time.Hour+5*time.Minute)),
	}
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(9*time.Hour), pts, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutAbsent, c.Statut,
		"sans ENTREE vue dans la journée, une SORTIE isolée ne fait pas un TERMINE")
}

func TestClassifierShift_Fini_SansPointage_Absent(t *testing.T) {
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(10*time.Hour), nil, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutAbsent, c.Statut)
	assert.Nil(t, c.DernierPointage)
}

// Un shift entièrement dans le passé se classe sans erreur (ici il l'est déjà),
// de même qu'un shift entièrement dans le futur: voir scénario E.

// ──────────────────────────────────────────────────────────────────────────────
// Shift en cours ou à venir
// ──────────────────────────────────────────────────────────────────────────────

// Scénario E: now = 08:30, aucun pointage → A_LHEURE (rien à signaler).
func TestClassifierShift_ScenarioE_PasCommence_ALHeure(t *testing.T) {
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(-30*time.Minute), nil, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutALHeure, c.Statut)
}

func TestClassifierShift_Commence_SansEntree_Absent(t *testing.T) {
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(20*time.Minute), nil, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutAbsent, c.Statut,
		"shift commencé sans ENTREE vue: absent")
}

// now == start_at exactement: le shift a commencé, toujours pas d'ENTREE → ABSENT.
func TestClassifierShift_PileAuDebut_SansEntree_Absent(t *testing.T) {
	c, err := presence.ClassifierShift(shiftJour(), debutShift, nil, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutAbsent, c.Statut)
}

// now == end_at exactement: la fenêtre n'est pas encore fermée (règle 1 stricte).
func TestClassifierShift_PileALaFin_EntreeALHeure_Present(t *testing.T) {
	pts := []*entity.Pointage{pointage(entity.PointageEntree, debutShift.Add(1*time.Minute))}
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(8*time.Hour), pts, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutPresent, c.Statut)
}

func TestClassifierShift_EntreeALHeure_Present(t *testing.T) {
	pts := []*entity.Pointage{pointage(entity.PointageEntree, debutShift.Add(4*time.Minute))}
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(1*time.Hour), pts, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutPresent, c.Statut)
	assert.Equal(t, 0, c.MinutesRetard)
}

// Une entrée en avance se classe PRESENT, pas en retard.
func TestClassifierShift_EntreeEnAvance_Present(t *testing.T) {
	pts := []*entity.Pointage{pointage(entity.PointageEntree, debutShift.Add(-15*time.Minute))}
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(1*time.Hour), pts, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutPresent, c.Statut)
}

func TestClassifierShift_EntreeEnRetard_MinutesAttachees(t *testing.T) {
	pts := []*entity.Pointage{pointage(entity.PointageEntree, debutShift.Add(6*time.Minute))}
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(1*time.Hour), pts, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutEnRetard, c.Statut)
	assert.Equal(t, 6, c.MinutesRetard, "le statut EN_RETARD doit porter les minutes de retard")
}

// Dernier pointage = SORTIE en cours de shift: plus considéré présent.
func TestClassifierShift_DernierEstSortie_Absent(t *testing.T) {
	pts := []*entity.Pointage{
		pointage(entity.PointageEntree, debutShift.Add(2*time.Minute)),
		pointage(entity.PointageSortie, debutShift.Add(3*time.Hour)),
	}
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(4*time.Hour), pts, 5)
	require.NoError(t, err)
	assert.Equal(t, presence.StatutAbsent, c.Statut,
		"après une SORTIE, l'employé n'est plus pointé présent")
}

// Plusieurs pointages: seul le dernier détermine la présence courante.
func TestClassifierShift_PlusieursPointages_DernierGagne(t *testing.T) {
	pts := []*entity.Pointage{
		pointage(entity.PointageEntree, debutShift.Add(2*time.Minute)),
		pointage(entity.PointageSortie, debutShift.Add(3*time.Hour)),
		pointage(entity.PointageEntree, debutShift.Add(4*time.Hour)),
	}
	c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(5*time.Hour), pts, 5)
	require.NoError(t, err)
	// La dernière ENTREE est très au-delà du seuil: le tableau l'affiche en retard.
	assert.Equal(t, presence.StatutEnRetard, c.Statut)
	require.NotNil(t, c.DernierPointage)
	assert.Equal(t, entity.PointageEntree, c.DernierPointage.Type)
}

func TestClassifierShift_SeuilNegatif(t *testing.T) {
	_, err := presence.ClassifierShift(shiftJour(), debutShift, nil, -3)
	assert.ErrorIs(t, err, domain.ErrSeuilInvalide)
}

// ──────────────────────────────────────────────────────────────────────────────
// Cohérence classificateur ↔ évaluateur
// ──────────────────────────────────────────────────────────────────────────────

// Les deux chemins (pointage synchrone et tableau de bord) doivent toujours
// être d'accord sur ce qui compte comme "en retard".
func TestClassifierShift_AccordAvecEvaluerRetard(t *testing.T) {
	const seuil = 5
	for d := -5; d <= 20; d++ {
		p := pointage(entity.PointageEntree, debutShift.Add(time.Duration(d)*time.Minute))
		r, err := presence.EvaluerRetard(shiftJour(), p, seuil)
		require.NoError(t, err)

		c, err := presence.ClassifierShift(shiftJour(), debutShift.Add(time.Hour), []*entity.Pointage{p}, seuil)
		require.NoError(t, err)

		if r.EnRetard {
			assert.Equal(t, presence.StatutEnRetard, c.Statut, "d=%d", d)
			assert.Equal(t, r.Minutes, c.MinutesRetard, "d=%d", d)
		} else {
			assert.Equal(t, presence.StatutPresent, c.Statut, "d=%d", d)
		}
	}
}
