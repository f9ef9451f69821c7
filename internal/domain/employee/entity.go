package employee

// Employee is reference data maintained by the seeding/admin process.
// The reporting core only reads it.
type Employee struct {
	ID       int64   `json:"id"`
	Name     string  `json:"nombre"`
	Document string  `json:"documento"`
	Position string  `json:"cargo"`
	Phone    *string `json:"telefono,omitempty"`
}
