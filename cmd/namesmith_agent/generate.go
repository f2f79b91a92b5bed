package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/namesmith/namesmith/internal/availability"
	"github.com/namesmith/namesmith/internal/config"
	"github.com/namesmith/namesmith/internal/llm"
	"github.com/namesmith/namesmith/internal/personas"
	"github.com/namesmith/namesmith/internal/pipeline"
	"github.com/namesmith/namesmith/internal/types"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate, filter, score, and rank domain name candidates",
	Long:  "Run the full pipeline from a JSON request file: expand templates over word packs, filter and dedupe candidates, score them with the oracle, and print the ranked results as JSON.",
	RunE:  runGenerate,
}

var (
	generateRequestFile string
	generateOutputFile  string
	generateConfigFile  string
	generateAPIKey      string
	generatePresetIDs   []string
	generateVerbose     bool
)

func init() {
	generateCmd.Flags().StringVarP(&generateRequestFile, "request", "r", "", "Path to JSON request file (required)")
	generateCmd.Flags().StringVarP(&generateOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to config JSON file")
	generateCmd.Flags().StringVar(&generateAPIKey, "api-key", "", "Oracle API key (overrides GEMINI_API_KEY env var)")
	generateCmd.Flags().StringSliceVar(&generatePresetIDs, "presets", nil, "Persona preset ids for multi-persona scoring (1-6)")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print detailed debug information")
	_ = generateCmd.MarkFlagRequired("request")

	rootCmd.AddCommand(generateCmd)
}

// buildStack resolves configuration and constructs the pipeline shared by
// generate and serve.
func buildStack(ctx context.Context, configFile, apiKeyFlag string) (*pipeline.Pipeline, *personas.Registry, llm.Client, error) {
	cfg := &config.Config{}
	if configFile != "" {
		loaded, err := config.LoadConfig(configFile)
		if err != nil {
			return nil, nil, nil, err
		}
		if err := loaded.Validate(); err != nil {
			return nil, nil, nil, err
		}
		cfg = loaded
	}

	apiKey := apiKeyFlag
	if apiKey == "" {
		apiKey = cfg.APIKey
	}
	if apiKey == "" {
		apiKey = os.Getenv("GEMINI_API_KEY")
	}
	if apiKey == "" {
		return nil, nil, nil, fmt.Errorf("API key is required (set GEMINI_API_KEY environment variable or use --api-key)")
	}

	llmConfig := llm.DefaultConfig()
	if cfg.Model != "" {
		llmConfig = llmConfig.WithModel(cfg.Model)
	}

	client, err := llm.NewClient(ctx, llmConfig, apiKey)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to create oracle client: %w", err)
	}

	registry := personas.DefaultRegistry()
	if cfg.PresetFile != "" {
		if err := registry.LoadPresetFile(cfg.PresetFile); err != nil {
			_ = client.Close()
			return nil, nil, nil, err
		}
	}

	pipe := pipeline.New(client, registry, availability.NewMockChecker())
	return pipe, registry, client, nil
}

func runGenerate(_ *cobra.Command, _ []string) error {
	ctx := context.Background()

	pipe, _, client, err := buildStack(ctx, generateConfigFile, generateAPIKey)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	data, err := os.ReadFile(generateRequestFile)
	if err != nil {
		return fmt.Errorf("failed to read request file: %w", err)
	}

	opts := pipeline.RunOptions{Verbose: generateVerbose}

	var payload any
	if len(generatePresetIDs) > 0 {
		var req types.MultiGenerateRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("failed to parse request file: %w", err)
		}
		req.PresetIDs = generatePresetIDs
		resp, err := pipe.RunMulti(ctx, req, opts)
		if err != nil {
			return err
		}
		payload = resp
	} else {
		var req types.GenerateRequest
		if err := json.Unmarshal(data, &req); err != nil {
			return fmt.Errorf("failed to parse request file: %w", err)
		}
		resp, err := pipe.Run(ctx, req, opts)
		if err != nil {
			return err
		}
		payload = resp
	}

	jsonBytes, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if generateOutputFile == "" {
		fmt.Println(string(jsonBytes))
		return nil
	}
	if err := os.WriteFile(generateOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Results written to %s\n", generateOutputFile)
	return nil
}
