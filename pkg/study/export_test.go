package study

import (
	"context"
	"encoding/json"
	"reflect"
	"testing"
)

func TestExportEmptyStore(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	backup, err := store.Export(context.Background())
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	if backup.Version != BackupVersion {
		t.Errorf("Expected backup version %s, got %s", BackupVersion, backup.Version)
	}
	if backup.ExportedAt == "" {
		t.Errorf("Expected exportedAt to be stamped")
	}

	// Empty collections must serialize as [] rather than null.
	data, err := json.Marshal(backup)
	if err != nil {
		t.Fatalf("Failed to marshal backup: %v", err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to unmarshal backup document: %v", err)
	}
	for _, key := range []string{"folders", "videos", "notes", "moments"} {
		if string(raw[key]) != "[]" {
			t.Errorf("Expected %s to serialize as [], got %s", key, raw[key])
		}
	}
}

func TestExportImportRoundTrip(t *testing.T) {
	source := setupTestStore(t)
	defer source.Close()

	ctx := context.Background()

	if err := source.SeedDefaultFolders(ctx); err != nil {
		t.Fatalf("SeedDefaultFolders failed: %v", err)
	}
	folders, err := source.Folders(ctx)
	if err != nil {
		t.Fatalf("Folders failed: %v", err)
	}
	folderID := folders[0].ID

	videoRecordID, err := source.SaveVideo(ctx, SaveVideoRequest{
		VideoID:      "roundtrip1",
		Title:        "Round Trip Lecture",
		ChannelTitle: "Test Channel",
		Duration:     "1:05:00",
		URL:          "https://www.youtube.com/watch?v=roundtrip1",
		FolderID:     folderID,
	})
	if err != nil {
		t.Fatalf("SaveVideo failed: %v", err)
	}
	if err := source.UpdateVideoProgress(ctx, "roundtrip1", 42); err != nil {
		t.Fatalf("UpdateVideoProgress failed: %v", err)
	}
	if _, err := source.SaveMoment(ctx, SaveMomentRequest{
		VideoID: "roundtrip1", Timestamp: 300, Title: "Definition", Tags: []string{"theory"}, FolderID: folderID,
	}); err != nil {
		t.Fatalf("SaveMoment failed: %v", err)
	}
	ts := 310
	if _, err := source.SaveNote(ctx, SaveNoteRequest{
		VideoID: "roundtrip1", Content: "follow the definition closely", Timestamp: &ts, FolderID: folderID,
	}); err != nil {
		t.Fatalf("SaveNote failed: %v", err)
	}

	backup, err := source.Export(ctx)
	if err != nil {
		t.Fatalf("Export failed: %v", err)
	}

	// Restore into a completely separate store.
	target := setupTestStore(t)
	defer target.Close()

	if err := target.Import(ctx, backup); err != nil {
		t.Fatalf("Import failed: %v", err)
	}

	restored, err := target.Export(ctx)
	if err != nil {
		t.Fatalf("Export of restored store failed: %v", err)
	}

	if !reflect.DeepEqual(backup.Folders, restored.Folders) {
		t.Errorf("Folders did not survive the round trip:\n%+v\nvs\n%+v", backup.Folders, restored.Folders)
	}
	if !reflect.DeepEqual(backup.Videos, restored.Videos) {
		t.Errorf("Videos did not survive the round trip:\n%+v\nvs\n%+v", backup.Videos, restored.Videos)
	}
	if !reflect.DeepEqual(backup.Notes, restored.Notes) {
		t.Errorf("Notes did not survive the round trip:\n%+v\nvs\n%+v", backup.Notes, restored.Notes)
	}
	if !reflect.DeepEqual(backup.Moments, restored.Moments) {
		t.Errorf("Moments did not survive the round trip:\n%+v\nvs\n%+v", backup.Moments, restored.Moments)
	}

	// Ids are preserved verbatim, not regenerated.
	found := false
	for _, video := range restored.Videos {
		if video.ID == videoRecordID {
			found = true
			if video.WatchProgress == nil || *video.WatchProgress != 42 {
				t.Errorf("Expected watch progress preserved, got %v", video.WatchProgress)
			}
		}
	}
	if !found {
		t.Errorf("Expected restored store to contain video record %s", videoRecordID)
	}
}

func TestImportDuplicateIDFailsAtomically(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderID, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "Existing"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	existing, err := store.GetFolder(ctx, folderID)
	if err != nil {
		t.Fatalf("GetFolder failed: %v", err)
	}

	backup := Backup{
		Folders: []Folder{
			{ID: "brand-new-folder", Name: "New", CreatedAt: "2025-01-01T00:00:00Z"},
			existing, // primary key collision
		},
		Version: BackupVersion,
	}

	if err := store.Import(ctx, backup); err == nil {
		t.Fatalf("Expected import with duplicate id to fail")
	}

	// The non-colliding record must have been rolled back too.
	folders, err := store.Folders(ctx)
	if err != nil {
		t.Fatalf("Folders failed: %v", err)
	}
	if len(folders) != 1 {
		t.Errorf("Expected failed import to leave the store untouched, got %d folders", len(folders))
	}
}
