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

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

var debutShift = time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC) // lundi 09:00

func shiftA(id string) *entity.Shift {
	return &entity.Shift{
		ID:        id,
		EmployeID: "emp-1",
		Boutique:  "Marais",
		StartAt:   debutShift,
		EndAt:     debutShift.Add(8 * time.Hour),
	}
}

func entreeA(offset time.Duration) *entity.Pointage {
	return &entity.Pointage{
		ID:         "pt-1",
		EmployeID:  "emp-1",
		Type:       entity.PointageEntree,
		Horodatage: debutShift.Add(offset),
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// MinutesEcart — arrondi à la minute, demi-minutes vers +inf
// ──────────────────────────────────────────────────────────────────────────────

func TestMinutesEcart_Arrondi(t *testing.T) {
	cas := []struct {
		nom    string
		offset time.Duration
		want   int
	}{
		{"pile à l'heure", 0, 0},
		{"6 minutes", 6 * time.Minute, 6},
		{"89 secondes arrondies à 1", 89 * time.Second, 1},
		{"90 secondes arrondies à 2 (demi vers +inf)", 90 * time.Second, 2},
		{"29 secondes restent 0", 29 * time.Second, 0},
		{"30 secondes arrondies à 1", 30 * time.Second, 1},
		{"en avance de 2 minutes", -2 * time.Minute, -2},
		{"en avance de 2m30 (demi vers +inf)", -150 * time.Second, -2},
		{"en avance de 2m31", -151 * time.Second, -3},
		{"en avance de 30 secondes", -30 * time.Second, 0},
	}
	for _, c := range cas {
		t.Run(c.nom, func(t *testing.T) {
			got := presence.MinutesEcart(debutShift, debutShift.Add(c.offset))
			assert.Equal(t, c.want, got, "écart pour offset %v", c.offset)
		})
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// EvaluerRetard — classification contre le seuil
// ──────────────────────────────────────────────────────────────────────────────

// Scénario A: seuil 5, entrée à 09:04 → à l'heure, pas d'alerte.
func TestEvaluerRetard_ScenarioA_AlHeure(t *testing.T) {
	r, err := presence.EvaluerRetard(shiftA("sh-1"), entreeA(4*time.Minute), 5)
	require.NoError(t, err)
	assert.True(t, r.Evalue, "une ENTREE doit être évaluée")
	assert.False(t, r.EnRetard, "4 min avec un seuil de 5 reste à l'heure")
	assert.Equal(t, 4, r.Minutes)
}

// Scénario B: seuil 5, entrée à 09:06 → en retard, 6 minutes.
func TestEvaluerRetard_ScenarioB_EnRetard(t *testing.T) {
	r, err := presence.EvaluerRetard(shiftA("sh-1"), entreeA(6*time.Minute), 5)
	require.NoError(t, err)
	assert.True(t, r.EnRetard, "6 min avec un seuil de 5 est un retard")
	assert.Equal(t, 6, r.Minutes, "le retard rapporté doit être l'écart arrondi")
}

// Limite: écart == seuil exactement → à l'heure (strictement supérieur).
func TestEvaluerRetard_EcartEgalSeuil_ResteALHeure(t *testing.T) {
	r, err := presence.EvaluerRetard(shiftA("sh-1"), entreeA(5*time.Minute), 5)
	require.NoError(t, err)
	assert.False(t, r.EnRetard, "écart == seuil doit rester à l'heure, le retard est strict")
	assert.Equal(t, 5, r.Minutes)
}

// Entrée en avance: écart négatif légal, jamais en retard.
func TestEvaluerRetard_EnAvance(t *testing.T) {
	r, err := presence.EvaluerRetard(shiftA("sh-1"), entreeA(-12*time.Minute), 5)
	require.NoError(t, err)
	assert.False(t, r.EnRetard)
	assert.Equal(t, -12, r.Minutes, "une arrivée en avance rapporte un écart négatif")
}

// Seuil zéro: la moindre minute entière de retard déclenche.
func TestEvaluerRetard_SeuilZero(t *testing.T) {
	r, err := presence.EvaluerRetard(shiftA("sh-1"), entreeA(1*time.Minute), 0)
	require.NoError(t, err)
	assert.True(t, r.EnRetard)

	r, err = presence.EvaluerRetard(shiftA("sh-1"), entreeA(0), 0)
	require.NoError(t, err)
	assert.False(t, r.EnRetard, "écart 0 avec seuil 0 reste à l'heure")
}

// Une SORTIE ne participe jamais à l'évaluation (no-op).
func TestEvaluerRetard_SortieIgnoree(t *testing.T) {
	sortie := &entity.Pointage{
		ID:         "pt-2",
		EmployeID:  "emp-1",
		Type:       entity.PointageSortie,
		Horodatage: debutShift.Add(3 * time.Hour),
	}
	r, err := presence.EvaluerRetard(shiftA("sh-1"), sortie, 5)
	require.NoError(t, err)
	assert.False(t, r.Evalue, "une SORTIE ne doit pas être évaluée")
	assert.False(t, r.EnRetard)
}

// Seuil négatif: erreur de configuration typée, rejetée avant toute évaluation.
func TestEvaluerRetard_SeuilNegatif(t *testing.T) {
	_, err := presence.EvaluerRetard(shiftA("sh-1"), entreeA(0), -1)
	assert.ErrorIs(t, err, domain.ErrSeuilInvalide)
}

// Déterminisme: même triplet {shift, pointage, seuil} ⇒ même résultat à chaque appel.
func TestEvaluerRetard_Deterministe(t *testing.T) {
	s := shiftA("sh-1")
	p := entreeA(7*time.Minute + 29*time.Second)
	r1, err1 := presence.EvaluerRetard(s, p, 5)
	r2, err2 := presence.EvaluerRetard(s, p, 5)
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.Equal(t, r1, r2, "le même input doit toujours produire le même verdict")
}

// Propriété: pour P.at = start + d, late == (d > seuil), pour tout seuil ≥ 0.
func TestEvaluerRetard_ProprieteSeuilStrict(t *testing.T) {
	for seuil := 0; seuil <= 15; seuil++ {
		for d := -10; d <= 30; d++ {
			r, err := presence.EvaluerRetard(shiftA("sh-1"), entreeA(time.Duration(d)*time.Minute), seuil)
			require.NoError(t, err)
			assert.Equal(t, d > seuil, r.EnRetard, "d=%d seuil=%d", d, seuil)
			assert.Equal(t, d, r.Minutes, "d=%d seuil=%d", d, seuil)
		}
	}
}
