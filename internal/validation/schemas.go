package validation

// Request schemas. Binding plus validation runs before any handler logic,
// so handlers never observe malformed shapes.

type RegisterRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type CreateEventRequest struct {
	Title  string   `json:"title" validate:"required"`
	Date   string   `json:"date" validate:"required,eventdate"`
	TagIDs []string `json:"tagIds"`
}

// UpdateEventRequest is a partial update: only non-nil fields are applied,
// and TagIDs, when present, replaces the whole tag set.
type UpdateEventRequest struct {
	Title  *string   `json:"title" validate:"omitempty,min=1"`
	Date   *string   `json:"date" validate:"omitempty,eventdate"`
	TagIDs *[]string `json:"tagIds"`
}

type AddAttendeeRequest struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

type CreateTagRequest struct {
	Label string `json:"label" validate:"required"`
}
