// README: Chat store backed by PostgreSQL (append-only history).
package chat

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	db *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{db: db}
}

// Append inserts the record and fills in its generated ID.
func (s *Store) Append(ctx context.Context, r *Record) error {
	return s.db.QueryRow(ctx, `
        INSERT INTO chats (user_id, message, response, created_at)
        VALUES ($1, $2, $3, $4)
        RETURNING id`,
		r.UserID, r.Message, r.Response, r.Timestamp,
	).Scan(&r.ID)
}

// ListByUser returns the user's records oldest first.
func (s *Store) ListByUser(ctx context.Context, userID int64) ([]Record, error) {
	rows, err := s.db.Query(ctx, `
        SELECT id, user_id, message, response, created_at
        FROM chats
        WHERE user_id = $1
        ORDER BY created_at, id`, userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var r Record
		if err := rows.Scan(&r.ID, &r.UserID, &r.Message, &r.Response, &r.Timestamp); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
