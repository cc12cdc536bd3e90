package dto

// LoginRequest authentification manager: email + PIN (le même credential que
// la borne de pointage).
type LoginRequest struct {
	Email string `json:"email"`
	Pin   string `json:"pin"`
}

// LoginResponse token JWT + employé authentifié.
type LoginResponse struct {
	Token   string          `json:"token"`
	Employe EmployeResponse `json:"employe"`
}
