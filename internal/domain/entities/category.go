package entities

import "time"

// Category groups services in the catalog (hotel, transport, activity, ...).
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CategoryPatch carries the fields of a partial category update.
// Nil fields are left untouched.
type CategoryPatch struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
}

// Apply shallow-merges the patch into c.
func (p CategoryPatch) Apply(c *Category) {
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
}
