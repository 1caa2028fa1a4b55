package auth

type LoginRequest struct {
	CPF      string `json:"cpf" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

type AuthResponse struct {
	ID       string `json:"id"`
	FullName string `json:"full_name"`
	CPF      string `json:"cpf"`
	Role     string `json:"role"`
}
