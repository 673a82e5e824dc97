package study

import (
	"context"
	"encoding/json"
	"fmt"
)

const (
	saveMomentStatement = `
	INSERT INTO video_moments (id, video_id, timestamp, title, note, tags, created_at, folder_id)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	momentColumns = `id, video_id, timestamp, title, note, tags, created_at, folder_id`

	listMomentsByVideoStatement = `
	SELECT ` + momentColumns + `
	FROM video_moments
	WHERE video_id = ?
	ORDER BY timestamp ASC
	`

	listAllMomentsStatement = `
	SELECT ` + momentColumns + `
	FROM video_moments
	ORDER BY rowid ASC
	`
)

// SaveMoment assigns an id and creation timestamp, inserts the moment, and
// returns the new id. The seconds timestamp is expected to come from a
// time string the caller already ran through timecode validation.
func (s *Store) SaveMoment(ctx context.Context, req SaveMomentRequest) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	if err := s.checkRequest(req); err != nil {
		return "", err
	}

	tags := req.Tags
	if tags == nil {
		tags = []string{}
	}
	tagsJSON, err := json.Marshal(tags)
	if err != nil {
		return "", fmt.Errorf("%w: encoding tags: %v", ErrInvalidRequest, err)
	}

	id := newID()

	_, err = s.db.ExecContext(
		ctx,
		saveMomentStatement,
		id,
		req.VideoID,
		req.Timestamp,
		req.Title,
		req.Note,
		string(tagsJSON),
		nowISO(),
		req.FolderID,
	)
	if err != nil {
		return "", writeErr("save moment", err)
	}

	return id, nil
}

// MomentsByVideo returns the moments recorded for the external video id,
// sorted ascending by timestamp regardless of insertion order.
func (s *Store) MomentsByVideo(ctx context.Context, videoID string) ([]VideoMoment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.queryMoments(ctx, listMomentsByVideoStatement, videoID)
}

// AllMoments returns every moment in insertion order.
func (s *Store) AllMoments(ctx context.Context) ([]VideoMoment, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.queryMoments(ctx, listAllMomentsStatement)
}

func (s *Store) queryMoments(ctx context.Context, query string, args ...any) ([]VideoMoment, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, readErr("list moments", err)
	}
	defer rows.Close()

	var moments []VideoMoment
	for rows.Next() {
		var moment VideoMoment
		var tagsJSON string

		err := rows.Scan(
			&moment.ID,
			&moment.VideoID,
			&moment.Timestamp,
			&moment.Title,
			&moment.Note,
			&tagsJSON,
			&moment.CreatedAt,
			&moment.FolderID,
		)
		if err != nil {
			return nil, readErr("list moments", err)
		}

		if err := json.Unmarshal([]byte(tagsJSON), &moment.Tags); err != nil {
			return nil, readErr("list moments", err)
		}

		moments = append(moments, moment)
	}

	if err = rows.Err(); err != nil {
		return nil, readErr("list moments", err)
	}

	return moments, nil
}
