package study

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSaveNote(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderID, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "Notes"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}

	ts := 125
	id, err := store.SaveNote(ctx, SaveNoteRequest{
		VideoID:   "vid123",
		Content:   "The proof starts here",
		Timestamp: &ts,
		FolderID:  folderID,
	})
	if err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}
	if id == "" {
		t.Fatalf("Expected a non-empty note id")
	}

	notes, err := store.NotesByVideo(ctx, "vid123")
	if err != nil {
		t.Fatalf("NotesByVideo failed: %v", err)
	}
	if len(notes) != 1 {
		t.Fatalf("Expected 1 note, got %d", len(notes))
	}

	note := notes[0]
	if note.Content != "The proof starts here" {
		t.Errorf("Stored note doesn't match request: %+v", note)
	}
	if note.Timestamp == nil || *note.Timestamp != 125 {
		t.Errorf("Expected anchored timestamp 125, got %v", note.Timestamp)
	}
	if note.CreatedAt != note.UpdatedAt {
		t.Errorf("Expected createdAt == updatedAt on a fresh note, got %s vs %s", note.CreatedAt, note.UpdatedAt)
	}
}

func TestSaveNoteWithoutTimestamp(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderID, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "Unanchored"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}

	if _, err := store.SaveNote(ctx, SaveNoteRequest{
		VideoID: "vid456", Content: "general takeaway", FolderID: folderID,
	}); err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	notes, err := store.NotesByVideo(ctx, "vid456")
	if err != nil {
		t.Fatalf("NotesByVideo failed: %v", err)
	}
	if notes[0].Timestamp != nil {
		t.Errorf("Expected unanchored note, got timestamp %d", *notes[0].Timestamp)
	}
}

func TestSaveNoteValidation(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	_, err := store.SaveNote(context.Background(), SaveNoteRequest{
		VideoID: "vid789", FolderID: "f1",
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest for empty content, got %v", err)
	}
}

func TestUpdateNote(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderID, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "Edits"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}

	id, err := store.SaveNote(ctx, SaveNoteRequest{
		VideoID: "vid123", Content: "first draft", FolderID: folderID,
	})
	if err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	notes, err := store.NotesByVideo(ctx, "vid123")
	if err != nil {
		t.Fatalf("NotesByVideo failed: %v", err)
	}
	createdAt := notes[0].CreatedAt

	// RFC 3339 has second precision, so force the clock to move.
	time.Sleep(1100 * time.Millisecond)

	if err := store.UpdateNote(ctx, id, "second draft"); err != nil {
		t.Fatalf("UpdateNote failed: %v", err)
	}

	notes, err = store.NotesByVideo(ctx, "vid123")
	if err != nil {
		t.Fatalf("NotesByVideo failed: %v", err)
	}
	note := notes[0]
	if note.Content != "second draft" {
		t.Errorf("Expected updated content, got %q", note.Content)
	}
	if note.CreatedAt != createdAt {
		t.Errorf("Expected createdAt immutable, got %s (was %s)", note.CreatedAt, createdAt)
	}
	if note.UpdatedAt == createdAt {
		t.Errorf("Expected updatedAt refreshed, still %s", note.UpdatedAt)
	}
}

func TestUpdateNoteBlankContent(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderID, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "Blank"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	id, err := store.SaveNote(ctx, SaveNoteRequest{
		VideoID: "vid123", Content: "not blank", FolderID: folderID,
	})
	if err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	if err := store.UpdateNote(ctx, id, "   "); !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest for blank content, got %v", err)
	}

	notes, err := store.NotesByVideo(ctx, "vid123")
	if err != nil {
		t.Fatalf("NotesByVideo failed: %v", err)
	}
	if notes[0].Content != "not blank" {
		t.Errorf("Expected content untouched after rejected update, got %q", notes[0].Content)
	}
}

func TestUpdateNoteMissingIsNoop(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	if err := store.UpdateNote(context.Background(), "missing-id", "content"); err != nil {
		t.Errorf("Expected updating a missing note to be a no-op, got %v", err)
	}
}

func TestDeleteNote(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderID, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "Deletions"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	id, err := store.SaveNote(ctx, SaveNoteRequest{
		VideoID: "vid123", Content: "short lived", FolderID: folderID,
	})
	if err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	if err := store.DeleteNote(ctx, id); err != nil {
		t.Fatalf("DeleteNote failed: %v", err)
	}
	if err := store.DeleteNote(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}

	notes, err := store.NotesByVideo(ctx, "vid123")
	if err != nil {
		t.Fatalf("NotesByVideo failed: %v", err)
	}
	if len(notes) != 0 {
		t.Errorf("Expected no notes left, got %d", len(notes))
	}
}
