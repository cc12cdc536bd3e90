package presence_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/presence"
)

func TestNewDayWindow_DecalageInvalide(t *testing.T) {
	_, err := presence.NewDayWindow(24 * 60)
	assert.Error(t, err, "un décalage de +24h doit être rejeté")

	_, err = presence.NewDayWindow(-24 * 60)
	assert.Error(t, err)

	_, err = presence.NewDayWindow(0)
	assert.NoError(t, err, "UTC pur est un décalage valide")
}

// UTC+1: un instant à 23:30 UTC appartient déjà au jour civil suivant.
func TestDayWindow_Bounds_UTCplus1(t *testing.T) {
	w, err := presence.NewDayWindow(60)
	require.NoError(t, err)

	// 2026-03-09 23:30 UTC = 2026-03-10 00:30 heure locale
	cible := time.Date(2026, 3, 9, 23, 30, 0, 0, time.UTC)
	debut, fin := w.Bounds(cible)

	assert.Equal(t, time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC), debut.UTC(),
		"le jour civil du 10/03 commence à 23:00 UTC la veille")
	assert.Equal(t, 24*time.Hour, fin.Sub(debut), "la fenêtre fait exactement 24h")
}

func TestDayWindow_Bounds_ContientLaCible(t *testing.T) {
	w, err := presence.NewDayWindow(60)
	require.NoError(t, err)

	cibles := []time.Time{
		time.Date(2026, 3, 9, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 9, 12, 0, 0, 0, time.UTC),
		time.Date(2026, 3, 9, 22, 59, 59, 0, time.UTC),
		time.Date(2026, 3, 9, 23, 0, 0, 0, time.UTC),
	}
	for _, cible := range cibles {
		debut, fin := w.Bounds(cible)
		assert.False(t, cible.Before(debut), "cible %v avant le début %v", cible, debut)
		assert.True(t, cible.Before(fin), "cible %v hors de la fenêtre [%v, %v)", cible, debut, fin)
	}
}

// Deux instants du même jour civil partagent exactement les mêmes bornes: la
// même fenêtre scope les shifts et les pointages des deux chemins d'appel.
func TestDayWindow_Bounds_Stables(t *testing.T) {
	w, err := presence.NewDayWindow(60)
	require.NoError(t, err)

	matin := time.Date(2026, 3, 9, 7, 15, 0, 0, time.UTC)
	soir := time.Date(2026, 3, 9, 21, 45, 0, 0, time.UTC)

	d1, f1 := w.Bounds(matin)
	d2, f2 := w.Bounds(soir)
	assert.True(t, d1.Equal(d2), "bornes de début identiques pour le même jour")
	assert.True(t, f1.Equal(f2), "bornes de fin identiques pour le même jour")
}

func TestDayWindow_Bounds_DecalageNegatif(t *testing.T) {
	w, err := presence.NewDayWindow(-5 * 60) // UTC-5
	require.NoError(t, err)

	// 2026-03-09 02:00 UTC = 2026-03-08 21:00 locale → jour civil du 08/03
	cible := time.Date(2026, 3, 9, 2, 0, 0, 0, time.UTC)
	debut, _ := w.Bounds(cible)
	assert.Equal(t, time.Date(2026, 3, 8, 5, 0, 0, 0, time.UTC), debut.UTC())
}
