// Root command for the registry CLI.
package main

import (
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/deeds/internal/paths"
	"github.com/mesh-intelligence/deeds/pkg/deeds"
)

// Exit codes.
const (
	exitSuccess   = 0
	exitUserError = 1
	exitSysError  = 2
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagJSON      bool
)

// configDataDir holds the data_dir value loaded from config.yaml.
// Set by PersistentPreRunE so all subcommands can use it.
var configDataDir string

var rootCmd = &cobra.Command{
	Use:     "registry",
	Short:   "Registry is an authoritative ledger for tokenized real-estate ownership",
	Version: deeds.Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		configDir, err := resolveConfigDir()
		if err != nil {
			return err
		}

		cfg, err := loadConfig(configDir)
		if err != nil {
			return err
		}

		configDataDir = cfg.GetString(cfgKeyDataDir)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: platform config dir)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory (default: $(CWD)/.deeds-db)")
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "output as JSON")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(userCmd)
	rootCmd.AddCommand(propertyCmd)
	rootCmd.AddCommand(transferCmd)
}

// resolveDataDir returns the data directory path following the precedence:
// --data-dir flag > config.yaml data_dir > DEEDS_DATA_DIR env > default.
func resolveDataDir() (string, error) {
	return paths.ResolveDataDir(flagDataDir, configDataDir)
}

// resolveConfigDir returns the configuration directory following the
// precedence: --config-dir flag > DEEDS_CONFIG_DIR env > platform default.
func resolveConfigDir() (string, error) {
	return paths.ResolveConfigDir(flagConfigDir)
}
