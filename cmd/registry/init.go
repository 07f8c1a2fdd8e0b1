// Init command for the registry CLI.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize registry storage",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Resolve config directory (flag > env > default) and ensure it
		// exists with a default config.yaml.
		configDir, err := resolveConfigDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureConfigDir(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		if err := ensureDefaultConfigFile(configDir); err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		// Attach backend (creates the data directory and seeds the
		// registry id via SQLite Attach).
		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		dataDir, err := resolveDataDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, "init:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Registry initialized successfully")
		fmt.Println("  id:    ", backend.RegistryID())
		fmt.Println("  config:", configDir)
		fmt.Println("  data:  ", dataDir)
		return nil
	},
}
