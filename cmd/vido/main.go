package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	vido "github.com/vidostudy/vido/pkg"
	pkgdb "github.com/vidostudy/vido/pkg/db"
	"github.com/vidostudy/vido/pkg/study"
	"github.com/vidostudy/vido/pkg/utils"
)

var dbPath string

var rootCmd = &cobra.Command{
	Use:     "vido",
	Short:   "A local study organizer for saved videos: folders, timestamped moments, and notes.",
	Long:    ``,
	Version: fmt.Sprintf("v%s", vido.Version),
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

var completionShells = []string{"bash", "zsh", "fish", "powershell"}

var completionCmd = &cobra.Command{
	Use:   fmt.Sprintf("completion %s", strings.Join(completionShells, "|")),
	Short: "Generate shell completion scripts",
	Long: `Generate shell completion scripts for vido.

The command prints a completion script to stdout. You can source it in your shell
or install it to the appropriate location for your shell to enable completions permanently.`,
	DisableFlagsInUseLine: true,
	ValidArgs:             completionShells,
	Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			return rootCmd.GenBashCompletion(cmd.OutOrStdout())
		case "zsh":
			return rootCmd.GenZshCompletion(cmd.OutOrStdout())
		case "fish":
			return rootCmd.GenFishCompletion(cmd.OutOrStdout(), true)
		case "powershell":
			return rootCmd.GenPowerShellCompletion(cmd.OutOrStdout())
		default:
			return fmt.Errorf("unsupported shell: %s", args[0])
		}
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of vido",
	Long:  `All software has versions. This is vido's`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(vido.Version)
	},
}

var dbCmd = &cobra.Command{
	Use:   "db",
	Short: "Manage the vido database",
	Long:  `Provides commands for managing the vido SQLite database, including schema upgrades.`,
}

var dbUpgradeCmd = &cobra.Command{
	Use:   "upgrade",
	Short: "Upgrade the vido database schema to the latest version for the studydb component",
	Long: `Connects to the SQLite database at the specified path (via --dbpath) and applies any
necessary schema migrations to bring the studydb component up to the current application
schema version. If the database does not exist or is uninitialized for this component, it
will be created and initialized with the latest schema.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		walEnabled, _ := cmd.Flags().GetBool("wal")
		syncMode, _ := cmd.Flags().GetString("sync")

		resolvedPath, err := utils.ResolveAndEnsureDBPath(dbPath)
		if err != nil {
			return err
		}

		fmt.Printf("Attempting to upgrade studydb component in database at: %s (WAL: %t, Sync: %s)\n", resolvedPath, walEnabled, syncMode)

		dbConn, err := pkgdb.OpenDBConnection(resolvedPath, walEnabled, syncMode)
		if err != nil {
			return err
		}
		defer dbConn.Close()

		return pkgdb.UpgradeDB(dbConn, resolvedPath, pkgdb.TargetSchemaVersion)
	},
}

// openStore opens (and migrates) the store at --dbpath, seeding the default
// folders on first run. Callers own the Close.
func openStore(cmd *cobra.Command) (*study.Store, error) {
	resolvedPath, err := utils.ResolveAndEnsureDBPath(dbPath)
	if err != nil {
		return nil, err
	}

	store, err := study.Open(resolvedPath, true, "NORMAL")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := store.SeedDefaultFolders(cmd.Context()); err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to seed default folders: %w", err)
	}

	return store, nil
}

func initCmd() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "dbpath", "", "Path to the vido SQLite database file (defaults to a per-OS data directory)")

	dbUpgradeCmd.Flags().Bool("wal", true, "Enable SQLite WAL (Write-Ahead Logging) mode.")
	dbUpgradeCmd.Flags().String("sync", "NORMAL", "SQLite synchronous pragma (OFF, NORMAL, FULL, EXTRA).")
	dbCmd.AddCommand(dbUpgradeCmd)

	initFolderCmds()
	initVideoCmds()
	initMomentCmds()
	initNoteCmds()
	initDataCmds()

	rootCmd.AddCommand(completionCmd, versionCmd, dbCmd, foldersCmd, videosCmd, momentsCmd, notesCmd, dataCmd, serveCmd)
}

func main() {
	initCmd()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
