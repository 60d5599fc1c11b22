package dto

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse carries the shared bearer token every other /api route expects.
type LoginResponse struct {
	Token string `json:"token"`
}
