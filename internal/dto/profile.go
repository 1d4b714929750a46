package dto

type ProfileResponseDTO struct {
	Email     string `json:"email" example:"user@example.com"`
	Name      string `json:"name" example:"Demo User"`
	Role      string `json:"role" example:"client"`
	CreatedAt string `json:"created_at" example:"2026-04-20T16:09:57+03:00"`
}

type ChangePasswordRequestDTO struct {
	OldPassword     string `json:"old_password"`
	NewPassword     string `json:"new_password"`
	ConfirmPassword string `json:"confirm_password"`
}

type MenuItemDTO struct {
	Title string `json:"title" example:"My Orders"`
	Path  string `json:"path" example:"/api/user/orders"`
}

type NavigationResponseDTO struct {
	Role     string        `json:"role" example:"client"`
	HomePage string        `json:"home_page" example:"Services"`
	Items    []MenuItemDTO `json:"items"`
}
