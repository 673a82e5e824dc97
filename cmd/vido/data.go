package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vidostudy/vido/pkg/study"
)

var dataCmd = &cobra.Command{
	Use:   "data",
	Short: "Export, import, and wipe the study database",
	Long:  `Provides commands for backing the whole database up to a JSON document, restoring from one, and clearing all stored data.`,
}

var dataExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export all data as a JSON backup document",
	Long:  `Serializes every folder, video, note, and moment into one JSON document. Writes to the given output file, or to stdout when none is given.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		outPath, _ := cmd.Flags().GetString("output")

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		backup, err := store.Export(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to export data: %w", err)
		}

		data, err := json.MarshalIndent(backup, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode backup: %w", err)
		}

		if outPath == "" {
			fmt.Println(string(data))
			return nil
		}

		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write backup file: %w", err)
		}
		fmt.Printf("Exported %d folders, %d videos, %d notes, and %d moments to %s.\n",
			len(backup.Folders), len(backup.Videos), len(backup.Notes), len(backup.Moments), outPath)
		return nil
	},
}

var dataImportCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Restore data from a JSON backup document",
	Long: `Reads a backup document produced by 'data export' and inserts its records on top
of the existing contents, preserving record ids and timestamps. The whole import happens
in one transaction; a record whose id already exists fails the entire import.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read backup file: %w", err)
		}

		var backup study.Backup
		if err := json.Unmarshal(data, &backup); err != nil {
			return fmt.Errorf("failed to parse backup file: %w", err)
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.Import(cmd.Context(), backup); err != nil {
			return fmt.Errorf("failed to import backup: %w", err)
		}

		fmt.Printf("Imported %d folders, %d videos, %d notes, and %d moments.\n",
			len(backup.Folders), len(backup.Videos), len(backup.Notes), len(backup.Moments))
		return nil
	},
}

var dataClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all stored data",
	Long:  `Empties every collection in one transaction. Requires --yes to actually run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		confirmed, _ := cmd.Flags().GetBool("yes")
		if !confirmed {
			return fmt.Errorf("refusing to clear all data without --yes")
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ClearAllData(cmd.Context()); err != nil {
			return fmt.Errorf("failed to clear data: %w", err)
		}

		fmt.Println("All data cleared.")
		return nil
	},
}

func initDataCmds() {
	dataExportCmd.Flags().StringP("output", "o", "", "File to write the backup to (defaults to stdout)")
	dataClearCmd.Flags().Bool("yes", false, "Confirm clearing all data")

	dataCmd.AddCommand(dataExportCmd, dataImportCmd, dataClearCmd)
}
