package study

import (
	"context"
	"encoding/json"
	"fmt"
)

// BackupVersion is the export document format version.
const BackupVersion = "1.0"

// Backup is the full-state export document.
type Backup struct {
	Folders    []Folder      `json:"folders"`
	Videos     []SavedVideo  `json:"videos"`
	Notes      []VideoNote   `json:"notes"`
	Moments    []VideoMoment `json:"moments"`
	ExportedAt string        `json:"exportedAt"`
	Version    string        `json:"version"`
}

// Export serializes the whole store into a backup document. Empty
// collections export as empty arrays, not null.
func (s *Store) Export(ctx context.Context) (Backup, error) {
	if err := s.ready(); err != nil {
		return Backup{}, err
	}

	folders, err := s.Folders(ctx)
	if err != nil {
		return Backup{}, err
	}
	videos, err := s.AllVideos(ctx)
	if err != nil {
		return Backup{}, err
	}
	notes, err := s.AllNotes(ctx)
	if err != nil {
		return Backup{}, err
	}
	moments, err := s.AllMoments(ctx)
	if err != nil {
		return Backup{}, err
	}

	if folders == nil {
		folders = []Folder{}
	}
	if videos == nil {
		videos = []SavedVideo{}
	}
	if notes == nil {
		notes = []VideoNote{}
	}
	if moments == nil {
		moments = []VideoMoment{}
	}

	return Backup{
		Folders:    folders,
		Videos:     videos,
		Notes:      notes,
		Moments:    moments,
		ExportedAt: nowISO(),
		Version:    BackupVersion,
	}, nil
}

// Import rehydrates the store from a backup document, preserving record ids
// and timestamps, inside one transaction on top of the existing contents.
// Records whose id already exists are rejected by the primary key, failing
// the whole import.
func (s *Store) Import(ctx context.Context, backup Backup) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return writeErr("import backup", err)
	}

	for _, folder := range backup.Folders {
		_, err := tx.ExecContext(ctx, createFolderStatement,
			folder.ID, folder.Name, folder.Color, folder.Icon,
			nullableString(folder.ParentID), folder.CreatedAt, folder.IsSystem,
		)
		if err != nil {
			tx.Rollback()
			return writeErr("import backup", err)
		}
	}

	for _, video := range backup.Videos {
		var progress any
		if video.WatchProgress != nil {
			progress = *video.WatchProgress
		}
		_, err := tx.ExecContext(ctx,
			`INSERT INTO saved_videos (`+savedVideoColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			video.ID, video.VideoID, video.Title, video.Thumbnail,
			video.ChannelTitle, video.Duration, video.URL, video.FolderID,
			video.SavedAt, nullableString(video.LastWatched), progress,
			nullableString(video.ViewCount), nullableString(video.PublishedAt),
		)
		if err != nil {
			tx.Rollback()
			return writeErr("import backup", err)
		}
	}

	for _, note := range backup.Notes {
		var timestamp any
		if note.Timestamp != nil {
			timestamp = *note.Timestamp
		}
		_, err := tx.ExecContext(ctx, saveNoteStatement,
			note.ID, note.VideoID, note.Content, timestamp,
			note.CreatedAt, note.UpdatedAt, note.FolderID,
		)
		if err != nil {
			tx.Rollback()
			return writeErr("import backup", err)
		}
	}

	for _, moment := range backup.Moments {
		tags := moment.Tags
		if tags == nil {
			tags = []string{}
		}
		tagsJSON, err := json.Marshal(tags)
		if err != nil {
			tx.Rollback()
			return fmt.Errorf("%w: encoding tags for moment %s: %v", ErrInvalidRequest, moment.ID, err)
		}
		_, err = tx.ExecContext(ctx, saveMomentStatement,
			moment.ID, moment.VideoID, moment.Timestamp, moment.Title,
			moment.Note, string(tagsJSON), moment.CreatedAt, moment.FolderID,
		)
		if err != nil {
			tx.Rollback()
			return writeErr("import backup", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return writeErr("import backup", err)
	}

	return nil
}
