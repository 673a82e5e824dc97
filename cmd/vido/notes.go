package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vidostudy/vido/pkg/study"
	"github.com/vidostudy/vido/pkg/timecode"
)

var notesCmd = &cobra.Command{
	Use:   "notes",
	Short: "Manage video notes",
	Long:  `Provides commands for writing, listing, editing, and deleting notes on videos.`,
}

var noteAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Write a note on a video",
	Long: `Records a free-text note on a video, optionally anchored to a timestamp given as a
time string like "1:23".`,
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID, _ := cmd.Flags().GetString("video-id")
		content, _ := cmd.Flags().GetString("content")
		timeStr, _ := cmd.Flags().GetString("time")
		folderID, _ := cmd.Flags().GetString("folder-id")

		var timestamp *int
		if timeStr != "" {
			if !timecode.ValidateTimeFormat(timeStr) {
				return fmt.Errorf("'%s' is not a valid time; expected a format like 1:23 or 1:02:45", timeStr)
			}
			seconds := timecode.ParseTimeToSeconds(timeStr)
			timestamp = &seconds
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.SaveNote(cmd.Context(), study.SaveNoteRequest{
			VideoID:   videoID,
			Content:   content,
			Timestamp: timestamp,
			FolderID:  folderID,
		})
		if err != nil {
			return fmt.Errorf("failed to save note: %w", err)
		}

		fmt.Printf("Note saved with id %s.\n", id)
		return nil
	},
}

var noteListCmd = &cobra.Command{
	Use:   "list",
	Short: "List notes",
	Long:  `Lists notes, optionally filtered to one video.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		videoID, _ := cmd.Flags().GetString("video-id")

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		var notes []study.VideoNote
		if videoID != "" {
			notes, err = store.NotesByVideo(cmd.Context(), videoID)
		} else {
			notes, err = store.AllNotes(cmd.Context())
		}
		if err != nil {
			return fmt.Errorf("failed to list notes: %w", err)
		}

		if len(notes) == 0 {
			fmt.Println("No notes found.")
			return nil
		}

		fmt.Println("Notes:")
		return printJSON(notes)
	},
}

var noteUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Replace the content of a note",
	Long:  `Replaces the note's content and refreshes its updated time. The created time never changes. Updating a note that does not exist is a no-op.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		content, _ := cmd.Flags().GetString("content")

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdateNote(cmd.Context(), args[0], content); err != nil {
			if errors.Is(err, study.ErrInvalidRequest) {
				return fmt.Errorf("note content cannot be empty")
			}
			return fmt.Errorf("failed to update note: %w", err)
		}

		fmt.Printf("Note %s updated.\n", args[0])
		return nil
	},
}

var noteDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a note by its ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteNote(cmd.Context(), args[0]); err != nil {
			if errors.Is(err, study.ErrNotFound) {
				fmt.Printf("Note with ID %s not found.\n", args[0])
				return nil
			}
			return fmt.Errorf("failed to delete note: %w", err)
		}

		fmt.Printf("Note with ID %s deleted successfully.\n", args[0])
		return nil
	},
}

func initNoteCmds() {
	noteAddCmd.Flags().StringP("video-id", "v", "", "External video id the note belongs to (required)")
	noteAddCmd.MarkFlagRequired("video-id")
	noteAddCmd.Flags().StringP("content", "c", "", "Note text (required)")
	noteAddCmd.MarkFlagRequired("content")
	noteAddCmd.Flags().StringP("time", "t", "", "Optional timestamp to anchor the note to, e.g. 1:23")
	noteAddCmd.Flags().StringP("folder-id", "f", "", "Folder the note is scoped to (required)")
	noteAddCmd.MarkFlagRequired("folder-id")

	noteListCmd.Flags().StringP("video-id", "v", "", "External video id to list notes for (optional)")

	noteUpdateCmd.Flags().StringP("content", "c", "", "Replacement note text (required)")
	noteUpdateCmd.MarkFlagRequired("content")

	notesCmd.AddCommand(noteAddCmd, noteListCmd, noteUpdateCmd, noteDeleteCmd)
}
