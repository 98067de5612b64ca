package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cargobug/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration that run and tui would use, after the search
order (--config, ~/.cargobug/config.yaml, ./configs/cargobug.yaml, embedded)
and validation. With --defaults, print the embedded defaults instead; they
make a good starting point for a custom file.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the embedded default config")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagDefaults {
		fmt.Print(string(config.DefaultYAML()))
		return
	}

	cfg := loadConfig()
	out, err := config.Marshal(cfg)
	if err != nil {
		fatal("%v", err)
	}
	fmt.Printf("# source: %s\n", cfg.SettingsName())
	fmt.Print(string(out))
}
