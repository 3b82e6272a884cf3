package dto

import "time"

type EventPayload struct {
	Title    string  `json:"title"`
	Start    string  `json:"start"`
	End      string  `json:"end"`
	AssignTo *string `json:"assign_to"`
}

// EventFilter carries the recognized listing options. Both are optional
// and combine with AND.
type EventFilter struct {
	Search   string
	AssignTo []string
}

// AssignedUser is the subset of the assigned user exposed on event listings.
type AssignedUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EventView struct {
	ID        string        `json:"id"`
	Title     string        `json:"title"`
	Start     time.Time     `json:"start"`
	End       time.Time     `json:"end"`
	AssignTo  *string       `json:"assign_to"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
	User      *AssignedUser `json:"user,omitempty"`
}
