package usecase

import (
	"strings"
	"time"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
)

// EmployeUseCase cas d'usage CRUD des employés.
type EmployeUseCase struct {
	repo repository.EmployeRepository
}

// NewEmployeUseCase construit le cas d'usage.
func NewEmployeUseCase(repo repository.EmployeRepository) *EmployeUseCase {
	return &EmployeUseCase{repo: repo}
}

// Create crée un employé: hash bcrypt du PIN, actif par défaut.
// Retourne ErrEmailAlreadyExists si l'email est déjà pris.
func (uc *EmployeUseCase) Create(in dto.CreateEmployeRequest) (*dto.EmployeResponse, error) {
	if in.Nom == "" || in.Email == "" || in.Pin == "" {
		return nil, domain.ErrInvalidInput
	}
	existing, _ := uc.repo.GetByEmail(in.Email)
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(in.Pin), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	e := &entity.Employe{
		ID:          uuid.New().String(),
		Nom:         in.Nom,
		Email:       in.Email,
		PinHash:     string(hash),
		Actif:       true,
		TauxHoraire: in.TauxHoraire,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := uc.repo.Create(e); err != nil {
		return nil, err
	}
	return toEmployeResponse(e), nil
}

// GetByID obtient un employé par ID (nil si absent).
func (uc *EmployeUseCase) GetByID(id string) (*dto.EmployeResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	return toEmployeResponse(e), nil
}

// Update met à jour un employé (nil = champ inchangé). Un nouveau PIN est
// re-haché; le hash courant n'est jamais exposé.
func (uc *EmployeUseCase) Update(id string, in dto.UpdateEmployeRequest) (*dto.EmployeResponse, error) {
	e, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if e == nil {
		return nil, nil
	}
	if in.Nom != nil {
		e.Nom = *in.Nom
	}
	if in.Email != nil {
		e.Email = *in.Email
	}
	if in.Pin != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Pin), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		e.PinHash = string(hash)
	}
	if in.Actif != nil {
		e.Actif = *in.Actif
	}
	if in.TauxHoraire != nil {
		e.TauxHoraire = in.TauxHoraire
	}
	e.UpdatedAt = time.Now()
	if err := uc.repo.Update(e); err != nil {
		return nil, err
	}
	return toEmployeResponse(e), nil
}

// List liste les employés avec pagination, filtre optionnel sur le nom ou
// l'email, insensible à la casse et aux accents (les prénoms français en sont
// pleins). Le filtre s'applique en mémoire sur la page lue: volumes boutique.
func (uc *EmployeUseCase) List(recherche string, limit, offset int) (*dto.EmployeListResponse, error) {
	list, err := uc.repo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	requete := plierAccents(recherche)
	items := make([]dto.EmployeResponse, 0, len(list))
	for _, e := range list {
		if requete != "" &&
			!strings.Contains(plierAccents(e.Nom), requete) &&
			!strings.Contains(plierAccents(e.Email), requete) {
			continue
		}
		items = append(items, *toEmployeResponse(e))
	}
	return &dto.EmployeListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

// Delete supprime un employé par ID.
func (uc *EmployeUseCase) Delete(id string) error {
	return uc.repo.Delete(id)
}

// plierAccents abaisse la casse et retire les diacritiques (é → e) pour une
// comparaison insensible aux accents. Le transformer est construit par appel:
// les chaînes transform ne sont pas sûres en concurrence.
func plierAccents(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return strings.ToLower(s)
	}
	return strings.ToLower(out)
}

func toEmployeResponse(e *entity.Employe) *dto.EmployeResponse {
	if e == nil {
		return nil
	}
	return &dto.EmployeResponse{
		ID:          e.ID,
		Nom:         e.Nom,
		Email:       e.Email,
		Actif:       e.Actif,
		TauxHoraire: e.TauxHoraire,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   e.UpdatedAt,
	}
}
