package repository

import "github.com/frenchymerlincbd-source/pointeuse/internal/domain/entity"

// EmployeRepository définit le port de persistance pour Employe.
type EmployeRepository interface {
	Create(e *entity.Employe) error
	GetByID(id string) (*entity.Employe, error)
	GetByEmail(email string) (*entity.Employe, error)
	Update(e *entity.Employe) error
	List(limit, offset int) ([]*entity.Employe, error)
	Delete(id string) error
}
