package study

import (
	"context"
	"database/sql"
	"errors"
	"strings"
)

const (
	createFolderStatement = `
	INSERT INTO folders (id, name, color, icon, parent_id, created_at, is_system)
	VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	getFolderStatement = `
	SELECT id, name, color, icon, parent_id, created_at, is_system
	FROM folders
	WHERE id = ?
	`

	listFoldersStatement = `
	SELECT id, name, color, icon, parent_id, created_at, is_system
	FROM folders
	ORDER BY rowid ASC
	`

	countFoldersStatement = `
	SELECT COUNT(*) FROM folders
	`

	deleteFolderStatement = `
	DELETE FROM folders
	WHERE id = ?
	`
)

// DefaultFolders are seeded on first run, identified afterwards only by the
// IsSystem flag.
var DefaultFolders = []CreateFolderRequest{
	{Name: "Watch Later", Icon: "⏰", Color: "Blue", IsSystem: true},
	{Name: "Favorites", Icon: "❤️", Color: "Red", IsSystem: true},
	{Name: "Research", Icon: "🔍", Color: "Purple", IsSystem: true},
	{Name: "Tutorials", Icon: "🎓", Color: "Green", IsSystem: true},
}

// CreateFolder assigns an id and creation timestamp, inserts the folder, and
// returns the new id.
func (s *Store) CreateFolder(ctx context.Context, req CreateFolderRequest) (string, error) {
	if err := s.ready(); err != nil {
		return "", err
	}
	if err := s.checkRequest(req); err != nil {
		return "", err
	}

	id := newID()

	_, err := s.db.ExecContext(
		ctx,
		createFolderStatement,
		id,
		strings.TrimSpace(req.Name),
		req.Color,
		req.Icon,
		nullableString(req.ParentID),
		nowISO(),
		req.IsSystem,
	)
	if err != nil {
		return "", writeErr("create folder", err)
	}

	return id, nil
}

// GetFolder retrieves a single folder. Returns ErrNotFound when absent.
func (s *Store) GetFolder(ctx context.Context, id string) (Folder, error) {
	if err := s.ready(); err != nil {
		return Folder{}, err
	}

	folder, err := scanFolder(s.db.QueryRowContext(ctx, getFolderStatement, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Folder{}, ErrNotFound
		}
		return Folder{}, readErr("get folder", err)
	}

	return folder, nil
}

// Folders returns every folder in insertion order.
func (s *Store) Folders(ctx context.Context) ([]Folder, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, listFoldersStatement)
	if err != nil {
		return nil, readErr("list folders", err)
	}
	defer rows.Close()

	var folders []Folder
	for rows.Next() {
		folder, err := scanFolder(rows)
		if err != nil {
			return nil, readErr("list folders", err)
		}
		folders = append(folders, folder)
	}

	if err = rows.Err(); err != nil {
		return nil, readErr("list folders", err)
	}

	return folders, nil
}

// UpdateFolder merges the non-nil fields of update into the stored record.
// A missing id is a no-op, not an error.
func (s *Store) UpdateFolder(ctx context.Context, id string, update FolderUpdate) error {
	if err := s.ready(); err != nil {
		return err
	}

	folder, err := s.GetFolder(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}

	if update.Name != nil {
		folder.Name = strings.TrimSpace(*update.Name)
	}
	if update.Color != nil {
		folder.Color = *update.Color
	}
	if update.Icon != nil {
		folder.Icon = *update.Icon
	}
	if update.ParentID != nil {
		folder.ParentID = *update.ParentID
	}

	_, err = s.db.ExecContext(ctx,
		`UPDATE folders SET name = ?, color = ?, icon = ?, parent_id = ? WHERE id = ?`,
		folder.Name, folder.Color, folder.Icon, nullableString(folder.ParentID), id,
	)
	if err != nil {
		return writeErr("update folder", err)
	}

	return nil
}

// DeleteFolder removes only the folder record. Cascading deletion of child
// videos, moments, and notes is DeleteFolderTree's job, not this one's.
// Returns ErrNotFound when the folder does not exist.
func (s *Store) DeleteFolder(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx, deleteFolderStatement, id)
	if err != nil {
		return writeErr("delete folder", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		return writeErr("delete folder", err)
	}

	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}

// DeleteFolderTree removes a folder together with every video, moment, and
// note filed under it, inside one transaction. Either the whole subtree goes
// or nothing does, so a failed child delete never leaves an orphaned folder
// with partially-cleaned children. A folder with zero children still deletes
// successfully; a missing folder reports ErrNotFound.
func (s *Store) DeleteFolderTree(ctx context.Context, id string) error {
	if err := s.ready(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return writeErr("delete folder tree", err)
	}

	for _, stmt := range []string{
		`DELETE FROM video_notes WHERE folder_id = ?`,
		`DELETE FROM video_moments WHERE folder_id = ?`,
		`DELETE FROM saved_videos WHERE folder_id = ?`,
	} {
		if _, err := tx.ExecContext(ctx, stmt, id); err != nil {
			tx.Rollback()
			return writeErr("delete folder tree", err)
		}
	}

	res, err := tx.ExecContext(ctx, deleteFolderStatement, id)
	if err != nil {
		tx.Rollback()
		return writeErr("delete folder tree", err)
	}

	rowsAffected, err := res.RowsAffected()
	if err != nil {
		tx.Rollback()
		return writeErr("delete folder tree", err)
	}
	if rowsAffected == 0 {
		tx.Rollback()
		return ErrNotFound
	}

	if err := tx.Commit(); err != nil {
		return writeErr("delete folder tree", err)
	}

	return nil
}

// SeedDefaultFolders inserts the system folders on first run. It is a no-op
// whenever the folder collection is non-empty, so calling it on every start
// is safe.
func (s *Store) SeedDefaultFolders(ctx context.Context) error {
	if err := s.ready(); err != nil {
		return err
	}

	var count int
	if err := s.db.QueryRowContext(ctx, countFoldersStatement).Scan(&count); err != nil {
		return readErr("seed default folders", err)
	}
	if count > 0 {
		return nil
	}

	for _, req := range DefaultFolders {
		if _, err := s.CreateFolder(ctx, req); err != nil {
			return err
		}
	}

	return nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanFolder(row rowScanner) (Folder, error) {
	var folder Folder
	var parentID sql.NullString

	err := row.Scan(
		&folder.ID,
		&folder.Name,
		&folder.Color,
		&folder.Icon,
		&parentID,
		&folder.CreatedAt,
		&folder.IsSystem,
	)
	if err != nil {
		return Folder{}, err
	}

	folder.ParentID = parentID.String
	return folder, nil
}

// nullableString maps "" to NULL so optional foreign keys stay out of the
// secondary indexes.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
