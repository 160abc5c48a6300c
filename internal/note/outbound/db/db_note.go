package db

import (
	"context"

	"github.com/shandysiswandi/gonotes/internal/note/entity"
)

const createNote = `
INSERT INTO notes (id, user_id, content, created_at)
VALUES ($1, $2, $3, $4)
`

func (s *DB) CreateNote(ctx context.Context, in entity.Note) (err error) {
	ctx, span := s.startSpan(ctx, "CreateNote")
	defer func() { s.endSpan(span, err) }()

	_, err = s.conn.Exec(ctx, createNote, in.ID, in.UserID, in.Content, in.CreatedAt)
	if err != nil {
		return s.mapError(err)
	}

	return nil
}

const listNotesByOwner = `
SELECT id, user_id, content, created_at
FROM notes
WHERE user_id = $1
ORDER BY created_at DESC, id DESC
`

func (s *DB) ListNotesByOwner(ctx context.Context, userID int64) (_ []entity.Note, err error) {
	ctx, span := s.startSpan(ctx, "ListNotesByOwner")
	defer func() { s.endSpan(span, err) }()

	rows, err := s.conn.Query(ctx, listNotesByOwner, userID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	notes := make([]entity.Note, 0)
	for rows.Next() {
		var n entity.Note
		if err = rows.Scan(&n.ID, &n.UserID, &n.Content, &n.CreatedAt); err != nil {
			return nil, s.mapError(err)
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return notes, nil
}

const deleteNoteByOwner = `
DELETE FROM notes
WHERE id = $1 AND user_id = $2
`

func (s *DB) DeleteNoteByOwner(ctx context.Context, id, userID int64) (_ bool, err error) {
	ctx, span := s.startSpan(ctx, "DeleteNoteByOwner")
	defer func() { s.endSpan(span, err) }()

	ct, err := s.conn.Exec(ctx, deleteNoteByOwner, id, userID)
	if err != nil {
		return false, s.mapError(err)
	}

	return ct.RowsAffected() == 1, nil
}
