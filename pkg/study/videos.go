package study

import (
	"context"
	"database/sql"
)

const (
	saveVideoStatement = `
	INSERT INTO saved_videos (id, video_id, title, thumbnail, channel_title, duration, url, folder_id, saved_at, view_count, published_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	savedVideoColumns = `id, video_id, title, thumbnail, channel_title, duration, url, folder_id, saved_at, last_watched, watch_progress, view_count, published_at`

	listVideosByFolderStatement = `
	SELECT ` + savedVideoColumns + `
	FROM saved_videos
	WHERE folder_id = ?
	ORDER BY rowid ASC
	`

	listAllVideosStatement = `
	SELECT ` + savedVideoColumns + `
	FROM saved_videos
	ORDER BY rowid ASC
	`

	deleteVideoStatement = `
	DELETE FROM saved_videos
	WHERE id = ?
	`

	updateVideoProgressStatement = `
	UPDATE saved_videos
	SET watch_progress = ?, last_watched = ?
	WHERE video_id = ?
	`
)

// SaveVideo assigns an id and savedAt timestamp, inserts the record, and
// returns the new id. FolderID is trusted; dangling references are the
// domain layer's problem to prevent via DeleteFolderTree.
func (s *Store) SaveVideo(ctx context.Context, req SaveVideoRequest) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	if err := s.checkRequest(req); err != nil {
		return "", err
	}

	id := newID()

	_, err := s.db.ExecContext(
		ctx,
		saveVideoStatement,
		id,
		req.VideoID,
		req.Title,
		req.Thumbnail,
		req.ChannelTitle,
		req.Duration,
		req.URL,
		req.FolderID,
		nowISO(),
		nullableString(req.ViewCount),
		nullableString(req.PublishedAt),
	)
	if err != nil {
		return "", writeErr("save video", err)
	}

	return id, nil
}

// VideosByFolder returns the videos filed under folderID via the folder_id
// index. An unknown folder yields an empty slice, not an error.
func (s *Store) VideosByFolder(ctx context.Context, folderID string) ([]SavedVideo, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.queryVideos(ctx, listVideosByFolderStatement, folderID)
}

// AllVideos returns every saved video in insertion order.
func (s *Store) AllVideos(ctx context.Context) ([]SavedVideo, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	return s.queryVideos(ctx, listAllVideosStatement)
}

// DeleteVideo removes one saved video by its primary id. Returns ErrNotFound
// when absent so cascade callers can tell absence from failure.
func (s *Store) DeleteVideo(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, deleteVideoStatement, id)
	if err != nil {
		return writeErr("delete video", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return writeErr("delete video", err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// UpdateVideoProgress stamps watch progress and lastWatched onto every saved
// copy matching the external video id (the secondary index, not the primary
// key). No matching record is a no-op. Last write wins; nothing forces the
// percentage to be monotonic.
func (s *Store) UpdateVideoProgress(ctx context.Context, videoID string, progress float64) error {
	if err := s.ready(); err != nil {
		return err
	}

	if progress < 0 {
		progress = 0
	}
	if progress > 100 {
		progress = 100
	}

	_, err := s.db.ExecContext(ctx, updateVideoProgressStatement, progress, nowISO(), videoID)
	if err != nil {
		return writeErr("update video progress", err)
	}

	return nil
}

func (s *Store) queryVideos(ctx context.Context, query string, args ...any) ([]SavedVideo, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, readErr("list videos", err)
	}
	defer rows.Close()

	var videos []SavedVideo
	for rows.Next() {
		video, err := scanVideo(rows)
		if err != nil {
			return nil, readErr("list videos", err)
		}
		videos = append(videos, video)
	}

	if err = rows.Err(); err != nil {
		return nil, readErr("list videos", err)
	}

	return videos, nil
}

func scanVideo(row rowScanner) (SavedVideo, error) {
	var video SavedVideo
	var lastWatched, viewCount, publishedAt sql.NullString
	var watchProgress sql.NullFloat64

	err := row.Scan(
		&video.ID,
		&video.VideoID,
		&video.Title,
		&video.Thumbnail,
		&video.ChannelTitle,
		&video.Duration,
		&video.URL,
		&video.FolderID,
		&video.SavedAt,
		&lastWatched,
		&watchProgress,
		&viewCount,
		&publishedAt,
	)
	if err != nil {
		return SavedVideo{}, err
	}

	video.LastWatched = lastWatched.String
	video.ViewCount = viewCount.String
	video.PublishedAt = publishedAt.String
	if watchProgress.Valid {
		p := watchProgress.Float64
		video.WatchProgress = &p
	}

	return video, nil
}
