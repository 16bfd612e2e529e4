package dto

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateNameRequest struct {
	Name string `json:"name"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
