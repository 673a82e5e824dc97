package db

const (
	// SchemaV1 defines the SQL statements for version 1 of the database schema.
	// This schema pertains to the 'studydb' component.
	//
	// Timestamp columns are TEXT carrying RFC 3339 strings assigned by the
	// store code at write time, so exported records round-trip byte for byte.
	SchemaV1 = `
CREATE TABLE IF NOT EXISTS vido_versions (
    component TEXT PRIMARY KEY,
    version INTEGER NOT NULL,
    created_at REAL DEFAULT (unixepoch())
);

CREATE TABLE IF NOT EXISTS folders (
    id TEXT PRIMARY KEY,
    name VARCHAR(256) NOT NULL,
    color VARCHAR(64) NOT NULL DEFAULT 'Blue',
    icon VARCHAR(64) NOT NULL DEFAULT '',
    parent_id TEXT,
    created_at TEXT NOT NULL,
    is_system BOOLEAN NOT NULL DEFAULT FALSE
);
CREATE INDEX IF NOT EXISTS idx_folders_parent_id ON folders (parent_id);

CREATE TABLE IF NOT EXISTS saved_videos (
    id TEXT PRIMARY KEY,
    video_id TEXT NOT NULL,
    title TEXT NOT NULL,
    thumbnail TEXT NOT NULL DEFAULT '',
    channel_title TEXT NOT NULL DEFAULT '',
    duration VARCHAR(32) NOT NULL DEFAULT '0:00',
    url TEXT NOT NULL,
    folder_id TEXT NOT NULL,
    saved_at TEXT NOT NULL,
    last_watched TEXT,
    watch_progress REAL,
    view_count TEXT,
    published_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_saved_videos_folder_id ON saved_videos (folder_id);
CREATE INDEX IF NOT EXISTS idx_saved_videos_video_id ON saved_videos (video_id);

CREATE TABLE IF NOT EXISTS video_moments (
    id TEXT PRIMARY KEY,
    video_id TEXT NOT NULL,
    timestamp INTEGER NOT NULL,
    title TEXT NOT NULL,
    note TEXT NOT NULL DEFAULT '',
    tags TEXT NOT NULL DEFAULT '[]',
    created_at TEXT NOT NULL,
    folder_id TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_video_moments_video_id ON video_moments (video_id);
CREATE INDEX IF NOT EXISTS idx_video_moments_folder_id ON video_moments (folder_id);

CREATE TABLE IF NOT EXISTS video_notes (
    id TEXT PRIMARY KEY,
    video_id TEXT NOT NULL,
    content TEXT NOT NULL,
    timestamp INTEGER,
    created_at TEXT NOT NULL,
    updated_at TEXT NOT NULL,
    folder_id TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_video_notes_video_id ON video_notes (video_id);
CREATE INDEX IF NOT EXISTS idx_video_notes_folder_id ON video_notes (folder_id);
`
)
