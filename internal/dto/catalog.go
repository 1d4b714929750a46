package dto

type ServiceResponseDTO struct {
	ID          int    `json:"id" example:"1"`
	Name        string `json:"name" example:"House Cleaning"`
	Category    string `json:"category" example:"Home"`
	Price       string `json:"price" example:"50.00"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

type LandingResponseDTO struct {
	Title    string               `json:"title" example:"Service Connect"`
	Tagline  string               `json:"tagline"`
	Features []string             `json:"features"`
	Featured []ServiceResponseDTO `json:"featured"`
}
