// Package cli is the command surface. It parses arguments into typed
// requests, hands them to the vault engine, and renders the results;
// nothing below this package formats text or touches the environment.
package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/tgienger/ideavault/internal/config"
	"github.com/tgienger/ideavault/internal/storage"
	"github.com/tgienger/ideavault/internal/vault"
)

var (
	verbose bool
	cfgPath string
	dataDir string
	jsonOut bool

	cfg    *config.Config
	logger zerolog.Logger

	rootCmd *cobra.Command
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "ideavault",
		Short: "IdeaVault - capture and connect ideas, projects, and tasks",
		Long: `IdeaVault is a personal productivity tool for the terminal.

It tracks three linked collections: ideas you capture, projects that grow
out of them, and the tasks that move projects forward. Everything lives in
plain local files.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: setup,
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "Config file path")
	rootCmd.PersistentFlags().StringVar(&dataDir, "data-dir", "", "Override the data directory")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of tables")
}

func setup(cmd *cobra.Command, args []string) error {
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	var err error
	cfg, err = config.Load(cfgPath)
	if err != nil {
		return err
	}
	if dataDir != "" {
		cfg.DataDir = dataDir
	}
	if jsonOut {
		cfg.Output.Format = config.FormatJSON
	}
	if !cfg.Output.Colors {
		disableColors()
	}
	logger.Debug().
		Str("data_dir", cfg.DataDir).
		Str("backend", cfg.Storage.Backend).
		Msg("configuration resolved")
	return nil
}

// openVault builds the engine on the configured backend. The returned
// closer releases backend resources.
func openVault() (*vault.Vault, func(), error) {
	switch cfg.Storage.Backend {
	case config.BackendSQLite:
		if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
			return nil, nil, err
		}
		st, err := storage.NewSQLiteStore(cfg.DatabasePath())
		if err != nil {
			return nil, nil, err
		}
		return vault.New(st), func() { st.Close() }, nil
	case config.BackendJSON, "":
		st, err := storage.NewFileStore(cfg.DataDir)
		if err != nil {
			return nil, nil, err
		}
		return vault.New(st), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.AddCommand(ideaCmd)
	rootCmd.AddCommand(projectCmd)
	rootCmd.AddCommand(taskCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(browseCmd)
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println("ideavault", version)
		},
	})

	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}
