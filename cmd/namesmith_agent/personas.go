package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/namesmith/namesmith/internal/personas"
)

var personasPresetFile string

var personasCmd = &cobra.Command{
	Use:   "personas",
	Short: "List available persona presets",
	RunE:  runPersonas,
}

func init() {
	personasCmd.Flags().StringVar(&personasPresetFile, "preset-file", "", "Persona preset JSON file to load on top of built-ins")
	rootCmd.AddCommand(personasCmd)
}

func runPersonas(_ *cobra.Command, _ []string) error {
	registry := personas.DefaultRegistry()
	if personasPresetFile != "" {
		if err := registry.LoadPresetFile(personasPresetFile); err != nil {
			return err
		}
	}

	jsonBytes, err := json.MarshalIndent(registry.List(), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(jsonBytes))
	return nil
}
