package study

// Folder is a user-defined grouping container for saved videos. System
// folders are seed data distinguished only by the IsSystem flag; the store
// applies no behavioral protection against deleting them.
type Folder struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color"`
	Icon      string `json:"icon"`
	ParentID  string `json:"parentId,omitempty"`
	CreatedAt string `json:"createdAt"`
	IsSystem  bool   `json:"isSystem,omitempty"`
}

// SavedVideo is an external video filed under exactly one folder. FolderID is
// not enforced referentially; the domain layer performs cascades explicitly.
type SavedVideo struct {
	ID            string   `json:"id"`
	VideoID       string   `json:"videoId"`
	Title         string   `json:"title"`
	Thumbnail     string   `json:"thumbnail"`
	ChannelTitle  string   `json:"channelTitle"`
	Duration      string   `json:"duration"`
	URL           string   `json:"url"`
	FolderID      string   `json:"folderId"`
	SavedAt       string   `json:"savedAt"`
	LastWatched   string   `json:"lastWatched,omitempty"`
	WatchProgress *float64 `json:"watchProgress,omitempty"`
	ViewCount     string   `json:"viewCount,omitempty"`
	PublishedAt   string   `json:"publishedAt,omitempty"`
}

// VideoMoment is a tagged, titled bookmark at a timestamp within a video.
// Moments are keyed by the external video id, not the SavedVideo id, so they
// are scoped by (videoId, folderId) rather than owned by one saved record.
type VideoMoment struct {
	ID        string   `json:"id"`
	VideoID   string   `json:"videoId"`
	Timestamp int      `json:"timestamp"`
	Title     string   `json:"title"`
	Note      string   `json:"note"`
	Tags      []string `json:"tags"`
	CreatedAt string   `json:"createdAt"`
	FolderID  string   `json:"folderId"`
}

// VideoNote is a free-text annotation on a video, optionally anchored to a
// seconds offset. UpdatedAt changes on every edit; CreatedAt never does.
type VideoNote struct {
	ID        string `json:"id"`
	VideoID   string `json:"videoId"`
	Content   string `json:"content"`
	Timestamp *int   `json:"timestamp,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
	FolderID  string `json:"folderId"`
}

// CreateFolderRequest carries the caller-supplied fields of a new folder.
type CreateFolderRequest struct {
	Name     string `json:"name" validate:"required"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
	ParentID string `json:"parentId,omitempty"`
	IsSystem bool   `json:"isSystem,omitempty"`
}

// FolderUpdate carries a partial folder mutation. Nil fields are left
// untouched.
type FolderUpdate struct {
	Name     *string
	Color    *string
	Icon     *string
	ParentID *string
}

// SaveVideoRequest carries the caller-supplied fields of a new saved video.
// Records built from degraded metadata (placeholder title, missing channel)
// are accepted without special-casing.
type SaveVideoRequest struct {
	VideoID      string `json:"videoId" validate:"required"`
	Title        string `json:"title" validate:"required"`
	Thumbnail    string `json:"thumbnail"`
	ChannelTitle string `json:"channelTitle"`
	Duration     string `json:"duration"`
	URL          string `json:"url" validate:"required"`
	FolderID     string `json:"folderId" validate:"required"`
	ViewCount    string `json:"viewCount,omitempty"`
	PublishedAt  string `json:"publishedAt,omitempty"`
}

// SaveMomentRequest carries the caller-supplied fields of a new moment. The
// timestamp must already be parsed from a validated time string; the store
// only checks it is non-negative.
type SaveMomentRequest struct {
	VideoID   string   `json:"videoId" validate:"required"`
	Timestamp int      `json:"timestamp" validate:"gte=0"`
	Title     string   `json:"title" validate:"required"`
	Note      string   `json:"note"`
	Tags      []string `json:"tags" validate:"dive,required"`
	FolderID  string   `json:"folderId" validate:"required"`
}

// SaveNoteRequest carries the caller-supplied fields of a new note.
type SaveNoteRequest struct {
	VideoID   string `json:"videoId" validate:"required"`
	Content   string `json:"content" validate:"required"`
	Timestamp *int   `json:"timestamp,omitempty" validate:"omitempty,gte=0"`
	FolderID  string `json:"folderId" validate:"required"`
}
