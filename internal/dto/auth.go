package dto

type RegisterRequestDTO struct {
	Email           string `json:"email" example:"user@example.com"`
	Password        string `json:"password" example:"user"`
	ConfirmPassword string `json:"confirm_password" example:"user"`
	Name            string `json:"name" example:"Demo User"`
	Role            string `json:"role" example:"client" enums:"client,technician"`
}

type RegisterResponseDTO struct {
	Message  string `json:"message"`
	HomePage string `json:"home_page" example:"Services"`
}

type LoginRequestDTO struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"user"`
	Role     string `json:"role,omitempty" example:"client" enums:"client,technician"`
}

type LoginResponseDTO struct {
	Message  string `json:"message"`
	Role     string `json:"role" example:"client"`
	HomePage string `json:"home_page" example:"Services"`
}
