package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/cargobug/internal/action"
	"github.com/vovakirdan/cargobug/internal/entity"
	"github.com/vovakirdan/cargobug/internal/registry"
	"github.com/vovakirdan/cargobug/internal/screens/menu"
	"github.com/vovakirdan/cargobug/internal/screens/overworld"
)

var keysCmd = &cobra.Command{
	Use:   "keys",
	Short: "Show key bindings and registered screens",
	Long:  `Shows the registered screens and the key bindings from the effective configuration.`,
	Args:  cobra.NoArgs,
	Run:   runKeys,
}

func runKeys(_ *cobra.Command, _ []string) {
	cfg := loadConfig()

	fmt.Println("Screens:")
	fmt.Println()
	fmt.Printf("  %-4s  %-12s  %s\n", "Key", "Name", "Arguments")
	fmt.Printf("  %-4s  %-12s  %s\n", "---", "----", "---------")
	for _, s := range registry.List() {
		takes := "no"
		if s.TakeArgs {
			takes = "yes"
		}
		fmt.Printf("  %-4d  %-12s  %s\n", s.Key, s.Name, takes)
	}
	fmt.Println()

	printBindings("Main menu", bindings(cfg.Bindings.Menu, menu.ParseAction, menu.DefaultBindings))
	printBindings("Hero", bindings(cfg.Bindings.Hero, entity.ParseHeroAction, entity.DefaultHeroBindings))
	printBindings("Overworld", bindings(cfg.Bindings.Overworld, overworld.ParseAction, overworld.DefaultBindings))
}

// bindings builds the translator a screen would use for table.
func bindings[A comparable](table map[string][]string, parse func(string) (A, error), defaults func() *action.Builder[A]) *action.Translator[A] {
	if len(table) == 0 {
		return defaults().Build()
	}
	b, err := action.FromNames(table, parse)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	for _, o := range b.Overrides() {
		fmt.Printf("Warning: key %s bound twice; %v was replaced\n", o.Key, o.Action)
	}
	return b.Build()
}

func printBindings[A comparable](title string, t *action.Translator[A]) {
	fmt.Printf("%s (%d keys):\n", title, t.Len())
	for _, b := range t.Bindings() {
		fmt.Printf("  %-10s  %v\n", b.Key, b.Action)
	}
	fmt.Println()
}
