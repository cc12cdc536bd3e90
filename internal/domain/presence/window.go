// Package presence contient le moteur de réconciliation des présences: bornes
// du jour civil, appariement pointage→shift, évaluation des retards et
// classification des statuts. Fonctions pures, sans I/O ni état caché: le
// chemin synchrone du pointage et le tableau de bord passent par les mêmes
// fonctions avec un seuil passé explicitement, et ne peuvent donc jamais
// diverger sur ce qui compte comme "en retard".
package presence

import (
	"fmt"
	"time"
)

// DayWindow calcule les bornes [début, fin) du jour civil contenant un instant,
// pour un fuseau à décalage fixe par rapport à UTC. L'heure d'été n'est pas
// gérée (limitation documentée, comportement historique +01:00 conservé).
type DayWindow struct {
	loc *time.Location
}

// NewDayWindow construit la fenêtre pour un décalage en minutes par rapport à
// UTC. Un décalage hors de ]-24h, +24h[ est une erreur de configuration,
// fatale au démarrage et jamais par appel.
func NewDayWindow(decalageMin int) (DayWindow, error) {
	if decalageMin <= -24*60 || decalageMin >= 24*60 {
		return DayWindow{}, fmt.Errorf("fenêtre jour: décalage horaire invalide (%d min)", decalageMin)
	}
	sign := "+"
	m := decalageMin
	if m < 0 {
		sign = "-"
		m = -m
	}
	name := fmt.Sprintf("UTC%s%02d:%02d", sign, m/60, m%60)
	return DayWindow{loc: time.FixedZone(name, decalageMin*60)}, nil
}

// Bounds retourne [début, fin) du jour civil contenant t. Fin = début + 24h
// exactement (décalage fixe, pas de changement d'heure à absorber).
func (w DayWindow) Bounds(t time.Time) (debut, fin time.Time) {
	local := t.In(w.loc)
	y, mo, d := local.Date()
	debut = time.Date(y, mo, d, 0, 0, 0, 0, w.loc)
	fin = debut.Add(24 * time.Hour)
	return debut, fin
}
