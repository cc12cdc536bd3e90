package presence

import "github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"

// MatchShift sélectionne le shift candidat d'un employé parmi les shifts dont
// le début tombe dans le jour civil du pointage: celui qui démarre le plus tôt,
// égalité départagée par le plus petit identifiant pour rester déterministe
// quel que soit l'ordre de la liste. Les shifts suivants d'une journée coupée
// ne sont pas appariés dans cette version.
//
// nil = aucun shift ce jour-là: résultat normal (pointage non apparié), pas une
// erreur.
func MatchShift(shifts []*entity.Shift) *entity.Shift {
	var candidat *entity.Shift
	for _, s := range shifts {
		if s == nil {
			continue
		}
		if candidat == nil ||
			s.StartAt.Before(candidat.StartAt) ||
			(s.StartAt.Equal(candidat.StartAt) && s.ID < candidat.ID) {
			candidat = s
		}
	}
	return candidat
}
