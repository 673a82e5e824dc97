package study

import (
	"context"
	"errors"
	"testing"
	"time"
)

func saveTestVideo(t *testing.T, store *Store, videoID, folderID string) string {
	t.Helper()

	id, err := store.SaveVideo(context.Background(), SaveVideoRequest{
		VideoID:      videoID,
		Title:        "Test Video " + videoID,
		Thumbnail:    "https://i.ytimg.com/vi/" + videoID + "/maxresdefault.jpg",
		ChannelTitle: "Test Channel",
		Duration:     "12:34",
		URL:          "https://www.youtube.com/watch?v=" + videoID,
		FolderID:     folderID,
	})
	if err != nil {
		t.Fatalf("SaveVideo failed: %v", err)
	}
	return id
}

func TestSaveVideo(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderID, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "Lectures"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}

	id := saveTestVideo(t, store, "dQw4w9WgXcQ", folderID)
	if id == "" {
		t.Fatalf("Expected a non-empty saved video id")
	}

	videos, err := store.AllVideos(ctx)
	if err != nil {
		t.Fatalf("AllVideos failed: %v", err)
	}
	if len(videos) != 1 {
		t.Fatalf("Expected 1 video, got %d", len(videos))
	}

	video := videos[0]
	if video.ID != id || video.VideoID != "dQw4w9WgXcQ" || video.FolderID != folderID {
		t.Errorf("Stored video doesn't match request: %+v", video)
	}
	if video.WatchProgress != nil {
		t.Errorf("Expected no watch progress on a fresh video, got %v", *video.WatchProgress)
	}
	if video.LastWatched != "" {
		t.Errorf("Expected no lastWatched on a fresh video, got %q", video.LastWatched)
	}
	if _, err := time.Parse(time.RFC3339, video.SavedAt); err != nil {
		t.Errorf("Expected RFC 3339 savedAt, got %q: %v", video.SavedAt, err)
	}
}

func TestSaveVideoValidation(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	_, err := store.SaveVideo(context.Background(), SaveVideoRequest{
		Title: "No ids here",
	})
	if !errors.Is(err, ErrInvalidRequest) {
		t.Errorf("Expected ErrInvalidRequest for missing fields, got %v", err)
	}
}

func TestVideosByFolder(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderA, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "A"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	folderB, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "B"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}

	saveTestVideo(t, store, "aaa111", folderA)
	saveTestVideo(t, store, "bbb222", folderB)
	saveTestVideo(t, store, "ccc333", folderA)

	videosA, err := store.VideosByFolder(ctx, folderA)
	if err != nil {
		t.Fatalf("VideosByFolder failed: %v", err)
	}
	if len(videosA) != 2 {
		t.Fatalf("Expected 2 videos in folder A, got %d", len(videosA))
	}
	if videosA[0].VideoID != "aaa111" || videosA[1].VideoID != "ccc333" {
		t.Errorf("Expected folder A videos in insertion order, got %s then %s", videosA[0].VideoID, videosA[1].VideoID)
	}

	empty, err := store.VideosByFolder(ctx, "no-such-folder")
	if err != nil {
		t.Fatalf("VideosByFolder failed for unknown folder: %v", err)
	}
	if len(empty) != 0 {
		t.Errorf("Expected empty result for unknown folder, got %d videos", len(empty))
	}
}

func TestDeleteVideo(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderID, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "ToDelete"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	id := saveTestVideo(t, store, "gone123", folderID)

	if err := store.DeleteVideo(ctx, id); err != nil {
		t.Fatalf("DeleteVideo failed: %v", err)
	}
	if err := store.DeleteVideo(ctx, id); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound deleting twice, got %v", err)
	}
}

func TestUpdateVideoProgress(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderA, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "A"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	folderB, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "B"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}

	// The same external video saved into two folders: both copies get stamped.
	saveTestVideo(t, store, "shared42", folderA)
	saveTestVideo(t, store, "shared42", folderB)
	saveTestVideo(t, store, "other99", folderA)

	if err := store.UpdateVideoProgress(ctx, "shared42", 55.5); err != nil {
		t.Fatalf("UpdateVideoProgress failed: %v", err)
	}

	videos, err := store.AllVideos(ctx)
	if err != nil {
		t.Fatalf("AllVideos failed: %v", err)
	}
	for _, video := range videos {
		switch video.VideoID {
		case "shared42":
			if video.WatchProgress == nil || *video.WatchProgress != 55.5 {
				t.Errorf("Expected watch progress 55.5 on %s, got %v", video.ID, video.WatchProgress)
			}
			if video.LastWatched == "" {
				t.Errorf("Expected lastWatched stamped on %s", video.ID)
			} else if _, err := time.Parse(time.RFC3339, video.LastWatched); err != nil {
				t.Errorf("Expected RFC 3339 lastWatched, got %q: %v", video.LastWatched, err)
			}
		case "other99":
			if video.WatchProgress != nil {
				t.Errorf("Expected other video untouched, got progress %v", *video.WatchProgress)
			}
		}
	}
}

func TestUpdateVideoProgressClamps(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	ctx := context.Background()

	folderID, err := store.CreateFolder(ctx, CreateFolderRequest{Name: "Clamp"})
	if err != nil {
		t.Fatalf("CreateFolder failed: %v", err)
	}
	saveTestVideo(t, store, "clamped1", folderID)

	if err := store.UpdateVideoProgress(ctx, "clamped1", 150); err != nil {
		t.Fatalf("UpdateVideoProgress failed: %v", err)
	}
	videos, err := store.VideosByFolder(ctx, folderID)
	if err != nil {
		t.Fatalf("VideosByFolder failed: %v", err)
	}
	if videos[0].WatchProgress == nil || *videos[0].WatchProgress != 100 {
		t.Errorf("Expected progress clamped to 100, got %v", videos[0].WatchProgress)
	}

	if err := store.UpdateVideoProgress(ctx, "clamped1", -20); err != nil {
		t.Fatalf("UpdateVideoProgress failed: %v", err)
	}
	videos, err = store.VideosByFolder(ctx, folderID)
	if err != nil {
		t.Fatalf("VideosByFolder failed: %v", err)
	}
	if videos[0].WatchProgress == nil || *videos[0].WatchProgress != 0 {
		t.Errorf("Expected progress clamped to 0, got %v", videos[0].WatchProgress)
	}
}

func TestUpdateVideoProgressMissingIsNoop(t *testing.T) {
	store := setupTestStore(t)
	defer store.Close()

	if err := store.UpdateVideoProgress(context.Background(), "never-saved", 50); err != nil {
		t.Errorf("Expected updating an unsaved video id to be a no-op, got %v", err)
	}
}
