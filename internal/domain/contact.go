package domain

import "context"

// RosterMember is one row of the contact roster, already ordered by division
// and position when listed.
type RosterMember struct {
	Name     string
	Position string
	Division string
	Phone1   string
	Phone2   string
	Email    string
}

// ContactRow is one rendered line of the contact directory. Position is empty
// when the previous row in the same division already showed the same label.
// A secondary phone line is emitted as an extra row with blank Name/Position
// and a nil Email.
// swagger:model ContactRow
type ContactRow struct {
	Name     string  `json:"name"`
	Position string  `json:"position"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email"`
	Mobile   bool    `json:"mobile"`
}

// ContactGroup groups directory rows under a division heading.
// swagger:model ContactGroup
type ContactGroup struct {
	Division string       `json:"division"`
	Rows     []ContactRow `json:"rows"`
}

// RosterRepository defines the interface for the contact roster.
type RosterRepository interface {
	List(ctx context.Context) ([]*RosterMember, error)
}

// ContactService renders the contact directory and handles the contact form.
type ContactService interface {
	Directory(ctx context.Context) ([]ContactGroup, error)
	SubmitMessage(ctx context.Context, input map[string]string) (*SubmitResult, error)
}
