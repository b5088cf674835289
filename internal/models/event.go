package models

import "time"

type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Venue       string    `json:"venue"`
	Date        string    `json:"date"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	Category    string    `json:"category"`
	TicketPrice float64   `json:"ticketPrice"`
	Capacity    int       `json:"capacity"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}
