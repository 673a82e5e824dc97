package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vidostudy/vido/pkg/study"
	"github.com/vidostudy/vido/pkg/timecode"
)

var momentsCmd = &cobra.Command{
	Use:   "moments",
	Short: "Manage video moments",
	Long:  `Provides commands for capturing and listing timestamped moments within videos.`,
}

var momentAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Capture a moment at a timestamp within a video",
	Long: `Records a titled, optionally tagged moment at the given timestamp. The timestamp
is a time string like "1:23" or "1:02:45" and is stored as whole seconds.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID, _ := cmd.Flags().GetString("video-id")
		timeStr, _ := cmd.Flags().GetString("time")
		title, _ := cmd.Flags().GetString("title")
		note, _ := cmd.Flags().GetString("note")
		tags, _ := cmd.Flags().GetString("tags")
		folderID, _ := cmd.Flags().GetString("folder-id")

		if !timecode.ValidateTimeFormat(timeStr) {
			return fmt.Errorf("'%s' is not a valid time; expected a format like 1:23 or 1:02:45", timeStr)
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		var tagList []string
		for _, t := range strings.Split(tags, ",") {
			if t = strings.TrimSpace(t); t != "" {
				tagList = append(tagList, t)
			}
		}

		id, err := store.SaveMoment(cmd.Context(), study.SaveMomentRequest{
			VideoID:   videoID,
			Timestamp: timecode.ParseTimeToSeconds(timeStr),
			Title:     title,
			Note:      note,
			Tags:      tagList,
			FolderID:  folderID,
		})
		if err != nil {
			return fmt.Errorf("failed to save moment: %w", err)
		}

		fmt.Printf("Moment saved with id %s at %s.\n", id, timeStr)
		return nil
	},
}

var momentListCmd = &cobra.Command{
	Use:   "list",
	Short: "List moments",
	Long:  `Lists moments, optionally filtered to one video. Moments for a video come back in timestamp order.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID, _ := cmd.Flags().GetString("video-id")

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		var moments []study.VideoMoment
		if videoID != "" {
			moments, err = store.MomentsByVideo(cmd.Context(), videoID)
		} else {
			moments, err = store.AllMoments(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("failed to list moments: %w", err)
		}

		if len(moments) == 0 {
			fmt.Println("No moments found.")
			return nil
		}

		fmt.Println("Moments:")
		return printJSON(moments)
	},
}

func initMomentCmds() {
	momentAddCmd.Flags().StringP("video-id", "v", "", "External video id the moment belongs to (required)")
	momentAddCmd.MarkFlagRequired("video-id")
	momentAddCmd.Flags().StringP("time", "t", "", "Timestamp within the video, e.g. 1:23 (required)")
	momentAddCmd.MarkFlagRequired("time")
	momentAddCmd.Flags().String("title", "", "Title for the moment (required)")
	momentAddCmd.MarkFlagRequired("title")
	momentAddCmd.Flags().String("note", "", "Optional note text")
	momentAddCmd.Flags().String("tags", "", "Comma-separated tags")
	momentAddCmd.Flags().StringP("folder-id", "f", "", "Folder the moment is scoped to (required)")
	momentAddCmd.MarkFlagRequired("folder-id")

	momentListCmd.Flags().StringP("video-id", "v", "", "External video id to list moments for (optional)")

	momentsCmd.AddCommand(momentAddCmd, momentListCmd)
}
