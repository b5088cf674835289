package models

type Testimonial struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Role    *string `json:"role"`
	Content string  `json:"content"`
	Rating  int     `json:"rating"`
}
