package study

import (
	"context"
	"database/sql"
	"strings"
)

const (
	saveNoteStatement = `
	INSERT INTO video_notes (id, video_id, content, timestamp, created_at, updated_at, folder_id)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	noteColumns = `id, video_id, content, timestamp, created_at, updated_at, folder_id`

	listNotesByVideoStatement = `
	SELECT ` + noteColumns + `
	FROM video_notes
	WHERE video_id = ?
	ORDER BY rowid ASC
	`

	listAllNotesStatement = `
	SELECT ` + noteColumns + `
	FROM video_notes
	ORDER BY rowid ASC
	`

	updateNoteStatement = `
	UPDATE video_notes
	SET content = ?, updated_at = ?
	WHERE id = ?
	`

	deleteNoteStatement = `
	DELETE FROM video_notes
	WHERE id = ?
	`
)

// SaveNote assigns an id and creation/update timestamps, inserts the note,
// and returns the new id. Empty content never persists.
func (s *Store) SaveNote(ctx context.Context, req SaveNoteRequest) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	if err := s.checkRequest(req); err != nil {
		return "", err
	}

	id := newID()
	now := nowISO()

	var timestamp any
	if req.Timestamp != nil {
		timestamp = *req.Timestamp
	}

	_, err := s.db.ExecContext(
		ctx,
		saveNoteStatement,
		id,
		req.VideoID,
		req.Content,
		timestamp,
		now,
		now,
		req.FolderID,
	)
	if err != nil {
		return "", writeErr("save note", err)
	}

	return id, nil
}

// NotesByVideo returns the notes attached to the external video id.
func (s *Store) NotesByVideo(ctx context.Context, videoID string) ([]VideoNote, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.queryNotes(ctx, listNotesByVideoStatement, videoID)
}

// AllNotes returns every note in insertion order.
func (s *Store) AllNotes(ctx context.Context) ([]VideoNote, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.queryNotes(ctx, listAllNotesStatement)
}

// UpdateNote replaces the note's content and refreshes updatedAt; createdAt
// is immutable. A missing id is a no-op, not an error. Blank content is
// rejected at the boundary, matching SaveNote.
func (s *Store) UpdateNote(ctx context.Context, id, content string) error {
	if err := s.ready(); err != nil {
		return err
	}
	if strings.TrimSpace(content) == "" {
		return ErrInvalidRequest
	}

	_, err := s.db.ExecContext(ctx, updateNoteStatement, content, nowISO(), id)
	if err != nil {
		return writeErr("update note", err)
	}

	return nil
}

// DeleteNote removes one note. Returns ErrNotFound when absent.
func (s *Store) DeleteNote(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, deleteNoteStatement, id)
	if err != nil {
		return writeErr("delete note", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return writeErr("delete note", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Store) queryNotes(ctx context.Context, query string, args ...any) ([]VideoNote, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, readErr("list notes", err)
	}
	defer rows.Close()

	var notes []VideoNote
	for rows.Next() {
		var note VideoNote
		var timestamp sql.NullInt64

		err := rows.Scan(
			&note.ID,
			&note.VideoID,
			&note.Content,
			&timestamp,
			&note.CreatedAt,
			&note.UpdatedAt,
			&note.FolderID,
		)
		if err != nil {
			return nil, readErr("list notes", err)
		}

		if timestamp.Valid {
			ts := int(timestamp.Int64)
			note.Timestamp = &ts
		}

		notes = append(notes, note)
	}

	if err = rows.Err(); err != nil {
		return nil, readErr("list notes", err)
	}

	return notes, nil
}
