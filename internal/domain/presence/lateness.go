package presence

import (
	"time"

	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
)

// Retard résultat de l'évaluation d'un pointage contre son shift apparié.
// Evalue est false pour une SORTIE: les sorties ne participent jamais à
// l'évaluation des retards.
type Retard struct {
	Evalue   bool
	EnRetard bool
	Minutes  int // écart arrondi à la minute, négatif = arrivée en avance
}

// MinutesEcart arrondit l'écart entre le début du shift et le pointage à la
// minute la plus proche, les demi-minutes vers +inf (floor(x + 0,5), en
// arithmétique entière pour éviter tout flottant). Un écart négatif est légal
// et signifie une entrée en avance.
func MinutesEcart(debut, horodatage time.Time) int {
	d := horodatage.Sub(debut) + 30*time.Second
	m := d / time.Minute
	if d < 0 && d%time.Minute != 0 {
		m-- // la division Go tronque vers zéro; ici il faut le plancher
	}
	return int(m)
}

// EvaluerRetard classe une ENTREE contre le shift apparié et le seuil de
// tolérance (minutes, ≥ 0, toujours passé explicitement par l'appelant).
//
//   - Minutes < 0          → en avance, pas de retard
//   - 0 ≤ Minutes ≤ seuil  → à l'heure
//   - Minutes > seuil      → en retard (strictement: Minutes == seuil reste à l'heure)
//
// Même triplet {shift, pointage, seuil} ⇒ même résultat, quel que soit le
// chemin d'appel. C'est la propriété de correction centrale du moteur.
func EvaluerRetard(shift *entity.Shift, p *entity.Pointage, seuilMin int) (Retard, error) {
	if seuilMin < 0 {
		return Retard{}, domain.ErrSeuilInvalide
	}
	if shift == nil || p == nil {
		return Retard{}, domain.ErrInvalidInput
	}
	if !p.EstEntree() {
		return Retard{}, nil
	}
	minutes := MinutesEcart(shift.StartAt, p.Horodatage)
	return Retard{
		Evalue:   true,
		EnRetard: minutes > seuilMin,
		Minutes:  minutes,
	}, nil
}
