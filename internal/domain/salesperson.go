package domain

import "time"

// Salesperson é o vendedor cadastrado. Brand nulo significa que toda venda conta como other.
type Salesperson struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Brand     *string   `json:"brand"`
	Section   string    `json:"section"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpsertSalespersonRequest struct {
	Name    string  `json:"name" validate:"required"`
	Brand   *string `json:"brand,omitempty"`
	Section string  `json:"section"`
}
