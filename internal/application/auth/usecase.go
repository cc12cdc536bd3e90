package auth

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/frenchymerlincbd-source/pointeuse/internal/application/dto"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"
	"github.com/frenchymerlincbd-source/pointeuse/internal/domain/repository"
	"github.com/frenchymerlincbd-source/pointeuse/pkg/jwt"
)

// JWTConfig configuration pour la génération des tokens.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentification de la surface manager: email + PIN (le même
// credential que la borne), token JWT en retour.
type AuthUseCase struct {
	employes repository.EmployeRepository
	jwtCfg   JWTConfig
}

// NewAuthUseCase construit le cas d'usage.
func NewAuthUseCase(employes repository.EmployeRepository, jwtCfg JWTConfig) *AuthUseCase {
	return &AuthUseCase{employes: employes, jwtCfg: jwtCfg}
}

// Login vérifie email/PIN, génère le JWT et retourne token + employé.
func (uc *AuthUseCase) Login(in dto.LoginRequest) (*dto.LoginResponse, error) {
	employe, err := uc.employes.GetByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if employe == nil {
		return nil, domain.ErrEmployeNotFound
	}
	if err := bcrypt.CompareHashAndPassword([]byte(employe.PinHash), []byte(in.Pin)); err != nil {
		return nil, domain.ErrUnauthorized
	}
	if !employe.Actif {
		return nil, domain.ErrForbidden
	}
	token, err := jwt.Generate(uc.jwtCfg.Secret, employe.ID, employe.Email, uc.jwtCfg.Issuer, uc.jwtCfg.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:   token,
		Employe: *toEmployeResponse(employe),
	}, nil
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
