package presence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/presence"
)

func shiftAt(id string, start time.Time) *entity.Shift {
	return &entity.Shift{
		ID:        id,
		EmployeID: "emp-1",
		StartAt:   start,
		EndAt:     start.Add(7 * time.Hour),
	}
}

func TestMatchShift_AucunShift(t *testing.T) {
	assert.Nil(t, presence.MatchShift(nil), "liste vide: aucun candidat, pas une erreur")
	assert.Nil(t, presence.MatchShift([]*entity.Shift{}))
}

func TestMatchShift_ShiftUnique(t *testing.T) {
	s := shiftAt("sh-1", debutShift)
	got := presence.MatchShift([]*entity.Shift{s})
	assert.Same(t, s, got)
}

// Le shift qui démarre le plus tôt gagne, quel que soit l'ordre de la liste.
func TestMatchShift_PlusTotGagne(t *testing.T) {
	matin := shiftAt("sh-matin", debutShift)
	soir := shiftAt("sh-soir", debutShift.Add(9*time.Hour))

	assert.Same(t, matin, presence.MatchShift([]*entity.Shift{soir, matin}))
	assert.Same(t, matin, presence.MatchShift([]*entity.Shift{matin, soir}))
}

// Egalité de début: le plus petit identifiant gagne, à chaque appel.
func TestMatchShift_EgaliteDepartageeParID(t *testing.T) {
	a := shiftAt("sh-aaa", debutShift)
	b := shiftAt("sh-bbb", debutShift)

	for i := 0; i < 10; i++ {
		assert.Same(t, a, presence.MatchShift([]*entity.Shift{b, a}),
			"le tie-break doit être déterministe sur tous les appels")
		assert.Same(t, a, presence.MatchShift([]*entity.Shift{a, b}))
	}
}

func TestMatchShift_IgnoreNil(t *testing.T) {
	s := shiftAt("sh-1", debutShift)
	got := presence.MatchShift([]*entity.Shift{nil, s, nil})
	assert.Same(t, s, got)
}
