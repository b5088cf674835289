package models

type Service struct {
	ID               string  `json:"id"`
	Name             string  `json:"name"`
	Description      string  `json:"description"`
	ShortDescription string  `json:"shortDescription"`
	Price            float64 `json:"price"`
	Duration         *string `json:"duration"`
	Image            string  `json:"image"`
	Category         string  `json:"category"`
	Featured         bool    `json:"featured"`
}
