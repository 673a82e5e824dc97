package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vidostudy/vido/pkg/study"
	"github.com/vidostudy/vido/pkg/youtube"
)

var videosCmd = &cobra.Command{
	Use:   "videos",
	Short: "Manage saved videos",
	Long:  `Provides commands for saving, listing, and deleting videos, and for recording watch progress.`,
}

var videoAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Save a video URL into a folder",
	Long: `Extracts the video id from the given URL, looks up title and channel through the
oEmbed endpoint (falling back to placeholders when the lookup is unavailable), and files
the video under the given folder. URLs that are not recognizable video URLs are rejected.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		videoURL, _ := cmd.Flags().GetString("url")
		folderID, _ := cmd.Flags().GetString("folder-id")
		skipLookup, _ := cmd.Flags().GetBool("no-lookup")

		if videoURL == "" {
			return fmt.Errorf("url is required")
		}
		if folderID == "" {
			return fmt.Errorf("folder-id is required")
		}

		videoID, ok := youtube.ExtractVideoID(videoURL)
		if !ok {
			return fmt.Errorf("could not extract a video id from '%s'; not a supported video URL", videoURL)
		}

		meta := youtube.Metadata{
			Title:      fmt.Sprintf("YouTube Video %s", videoID),
			AuthorName: "Unknown Channel",
		}
		if !skipLookup {
			meta = youtube.NewClient().LookupOrPlaceholder(cmd.Context(), videoURL, videoID)
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.SaveVideo(cmd.Context(), study.SaveVideoRequest{
			VideoID:      videoID,
			Title:        meta.Title,
			Thumbnail:    youtube.ThumbnailURL(videoID),
			ChannelTitle: meta.AuthorName,
			Duration:     "0:00",
			URL:          videoURL,
			FolderID:     folderID,
		})
		if err != nil {
			return fmt.Errorf("failed to save video: %w", err)
		}

		fmt.Printf("Video saved with id %s (%s).\n", id, meta.Title)
		return nil
	},
}

var videoListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved videos",
	Long:  `Lists saved videos, optionally filtered by folder.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		folderID, _ := cmd.Flags().GetString("folder-id")

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		var videos []study.SavedVideo
		if folderID != "" {
			videos, err = store.VideosByFolder(cmd.Context(), folderID)
		} else {
			videos, err = store.AllVideos(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("failed to list videos: %w", err)
		}

		if len(videos) == 0 {
			fmt.Println("No videos found.")
			return nil
		}

		fmt.Println("Videos:")
		return printJSON(videos)
	},
}

var videoDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a saved video by its ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteVideo(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, study.ErrNotFound) {
				fmt.Printf("Video with ID %s not found.\n", args[0])
				return nil
			}
			return fmt.Errorf("failed to delete video: %w", err)
		}

		fmt.Printf("Video with ID %s deleted successfully.\n", args[0])
		return nil
	},
}

var videoProgressCmd = &cobra.Command{
	Use:   "progress [video-id]",
	Short: "Record watch progress for a video",
	Long:  `Stamps a watch percentage (0-100) and the current time onto every saved copy of the given external video id. A video id with no saved copies is a no-op.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		percent, _ := cmd.Flags().GetFloat64("percent")

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdateVideoProgress(cmd.Context(), args[0], percent); err != nil {
			return fmt.Errorf("failed to update watch progress: %w", err)
		}

		fmt.Printf("Watch progress for video %s recorded as %.0f%%.\n", args[0], percent)
		return nil
	},
}

func initVideoCmds() {
	videoAddCmd.Flags().StringP("url", "u", "", "The video URL (required)")
	videoAddCmd.MarkFlagRequired("url")
	videoAddCmd.Flags().StringP("folder-id", "f", "", "ID of the folder to file the video under (required)")
	videoAddCmd.MarkFlagRequired("folder-id")
	videoAddCmd.Flags().Bool("no-lookup", false, "Skip the oEmbed metadata lookup and use placeholders")

	videoListCmd.Flags().StringP("folder-id", "f", "", "ID of the folder to list videos from (optional)")

	videoProgressCmd.Flags().Float64P("percent", "p", 0, "Watch progress percentage (0-100)")
	videoProgressCmd.MarkFlagRequired("percent")

	videosCmd.AddCommand(videoAddCmd, videoListCmd, videoDeleteCmd, videoProgressCmd)
}
