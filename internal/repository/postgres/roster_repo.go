package postgres

import (
	"context"
	"database/sql"

	"communityguestbook/internal/domain"
)

type rosterRepository struct {
	DB *sql.DB
}

// NewRosterRepository returns a domain.RosterRepository implemented with Postgres.
func NewRosterRepository(db *sql.DB) domain.RosterRepository {
	return &rosterRepository{DB: db}
}

// List returns the roster ordered by division then position order, the order
// the contact directory relies on for its grouping. Positions whose division
// row was deleted keep their members and list under an empty heading.
func (r *rosterRepository) List(ctx context.Context) ([]*domain.RosterMember, error) {
	query := `
		SELECT m.name, p.position, COALESCE(d.alias, d.name, '') AS division,
		       m.phone1, m.phone2, m.email
		FROM roster_positions p
		INNER JOIN roster_members m ON p.member_id = m.id
		LEFT JOIN divisions d ON d.id = p.division_id
		ORDER BY d.sort_order, p.sort_order
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []*domain.RosterMember
	for rows.Next() {
		m := &domain.RosterMember{}
		if err := rows.Scan(&m.Name, &m.Position, &m.Division, &m.Phone1, &m.Phone2, &m.Email); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
