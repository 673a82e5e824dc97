package main

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vidostudy/vido/pkg/study"
)

var foldersCmd = &cobra.Command{
	Use:   "folders",
	Short: "Manage folders",
	Long:  `Provides commands for creating, listing, updating, and deleting folders.`,
}

var folderCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a new folder",
	Long:  `Creates a new folder with the given name, optional palette color, and optional icon.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		color, _ := cmd.Flags().GetString("color")
		icon, _ := cmd.Flags().GetString("icon")

		if name == "" {
			return fmt.Errorf("folder name cannot be empty")
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		id, err := store.CreateFolder(cmd.Context(), study.CreateFolderRequest{
			Name:  name,
			Color: color,
			Icon:  icon,
		})
		if err != nil {
			return fmt.Errorf("failed to create folder: %w", err)
		}

		folder, err := store.GetFolder(cmd.Context(), id)
		if err != nil {
			return fmt.Errorf("failed to read back created folder: %w", err)
		}

		fmt.Println("Folder created successfully:")
		return printJSON(folder)
	},
}

var folderListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all folders",
	Long:  `Lists all folders currently stored in the database.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		folders, err := store.Folders(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list folders: %w", err)
		}

		if len(folders) == 0 {
			fmt.Println("No folders found.")
			return nil
		}

		fmt.Println("Folders:")
		return printJSON(folders)
	},
}

var folderUpdateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update an existing folder",
	Long:  `Updates an existing folder with the given ID. Only provided fields will be updated.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folderID := args[0]

		var update study.FolderUpdate
		if cmd.Flags().Changed("name") {
			n, _ := cmd.Flags().GetString("name")
			update.Name = &n
		}
		if cmd.Flags().Changed("color") {
			c, _ := cmd.Flags().GetString("color")
			update.Color = &c
		}
		if cmd.Flags().Changed("icon") {
			i, _ := cmd.Flags().GetString("icon")
			update.Icon = &i
		}

		if update.Name == nil && update.Color == nil && update.Icon == nil {
			fmt.Println("No update fields provided. Use --name, --color, or --icon.")
			return nil
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.UpdateFolder(cmd.Context(), folderID, update); err != nil {
			return fmt.Errorf("failed to update folder: %w", err)
		}

		folder, err := store.GetFolder(cmd.Context(), folderID)
		if err != nil {
			if errors.Is(err, study.ErrNotFound) {
				fmt.Printf("Folder with ID %s not found; nothing updated.\n", folderID)
				return nil
			}
			return fmt.Errorf("failed to read back updated folder: %w", err)
		}

		fmt.Println("Folder updated successfully:")
		return printJSON(folder)
	},
}

var folderDeleteCmd = &cobra.Command{
	Use:   "delete [id]",
	Short: "Delete a folder by its ID",
	Long:  `Deletes a folder and everything filed under it (videos, moments, notes) in a single atomic operation.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		folderID := args[0]

		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.DeleteFolderTree(cmd.Context(), folderID); err != nil {
			if errors.Is(err, study.ErrNotFound) {
				fmt.Printf("Folder with ID %s not found.\n", folderID)
				return nil
			}
			return fmt.Errorf("failed to delete folder: %w", err)
		}

		fmt.Printf("Folder with ID %s and its contents deleted successfully.\n", folderID)
		return nil
	},
}

var folderPaletteCmd = &cobra.Command{
	Use:   "palette",
	Short: "List the available folder colors and icons",
	RunE: func(cmd *cobra.Command, args []string) error {
		out := struct {
			Colors []study.FolderColor `json:"colors"`
			Icons  []study.FolderIcon  `json:"icons"`
		}{study.FolderColors, study.FolderIcons}
		return printJSON(out)
	},
}

func initFolderCmds() {
	folderCreateCmd.Flags().StringP("name", "n", "", "Name of the folder (required)")
	folderCreateCmd.MarkFlagRequired("name")
	folderCreateCmd.Flags().StringP("color", "c", "Blue", "Palette color name (unknown names fall back to the default)")
	folderCreateCmd.Flags().StringP("icon", "i", "", "Icon name or glyph")

	folderUpdateCmd.Flags().StringP("name", "n", "", "New name for the folder")
	folderUpdateCmd.Flags().StringP("color", "c", "", "New palette color name")
	folderUpdateCmd.Flags().StringP("icon", "i", "", "New icon name or glyph")

	foldersCmd.AddCommand(folderCreateCmd, folderListCmd, folderUpdateCmd, folderDeleteCmd, folderPaletteCmd)
}

// printJSON renders a record (or list) as indented JSON on stdout.
func printJSON(v any) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}
	fmt.Println(string(output))
	return nil
}
