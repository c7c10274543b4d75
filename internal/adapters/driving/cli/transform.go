package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/rephrase-cli/internal/core/domain"
	"github.com/custodia-labs/rephrase-cli/internal/core/services"
	"github.com/custodia-labs/rephrase-cli/internal/logger"
)

var (
	transformStructure  bool
	transformVocabulary bool
	transformNoise      bool
	transformAll        bool
	transformIntensity  float64
	transformSeed       uint64
	transformJSON       bool
	transformNoHistory  bool
)

var transformCmd = &cobra.Command{
	Use:   "transform [text]",
	Short: "Rewrite text through the transform pipeline",
	Long: `Rewrites the given text with the enabled transforms. When no argument
is given the text is read from stdin, so the command composes with
pipes:

  rephrase transform --all "변환할 텍스트입니다."
  cat draft.txt | rephrase transform --structure --noise -i 0.8

With no transform flags the text passes through unchanged and only the
metrics are reported.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTransform,
}

func init() {
	f := transformCmd.Flags()
	f.BoolVar(&transformStructure, "structure", false, "split, merge and reorder sentences")
	f.BoolVar(&transformVocabulary, "vocabulary", false, "vary connectors and substitute synonyms")
	f.BoolVar(&transformNoise, "noise", false, "perturb sentence lengths and insert transitions")
	f.BoolVarP(&transformAll, "all", "a", false, "enable all transforms")
	f.Float64VarP(&transformIntensity, "intensity", "i", -1, "transform intensity 0.0-1.0 (default from config)")
	f.Uint64Var(&transformSeed, "seed", 0, "random seed for reproducible output")
	f.BoolVar(&transformJSON, "json", false, "output result as JSON")
	f.BoolVar(&transformNoHistory, "no-history", false, "do not record this run in history")
	rootCmd.AddCommand(transformCmd)
}

func runTransform(cmd *cobra.Command, args []string) error {
	if transformService == nil {
		return errors.New("transform service not configured")
	}

	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	intensity := transformIntensity
	if intensity < 0 {
		intensity = 0.5
		if appConfig != nil {
			intensity = appConfig.Transform.DefaultIntensity
		}
	}

	req := domain.TransformRequest{
		Text: text,
		Options: domain.TransformOptions{
			Structure:  transformStructure || transformAll,
			Vocabulary: transformVocabulary || transformAll,
			Noise:      transformNoise || transformAll,
		},
		Intensity: intensity,
	}

	svc := transformService
	if cmd.Flags().Changed("seed") && metricsEngine != nil && transformPipeline != nil {
		svc = services.NewTransformService(metricsEngine, transformPipeline, synonymOracle,
			services.WithSeed(transformSeed))
	}

	result, err := svc.Transform(cmd.Context(), req)
	if err != nil {
		return fmt.Errorf("transform failed: %w", err)
	}

	if historyStore != nil && !transformNoHistory {
		entry := domain.HistoryEntry{
			ID:                uuid.NewString(),
			CreatedAt:         time.Now(),
			Original:          result.Original,
			Transformed:       result.Transformed,
			Intensity:         intensity,
			AppliedTransforms: result.AppliedTransforms,
			Metrics:           result.Metrics,
		}
		if err := historyStore.Save(cmd.Context(), entry); err != nil {
			logger.Warn("Recording history failed: %v", err)
		}
	}

	if transformJSON {
		return outputTransformJSON(cmd, result)
	}
	return outputTransformText(cmd, result)
}

// inputText takes the positional argument, or stdin when there is none.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if len(args) == 1 && args[0] != "-" {
		return args[0], nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func outputTransformJSON(cmd *cobra.Command, result *domain.TransformResult) error {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputTransformText(cmd *cobra.Command, result *domain.TransformResult) error {
	cmd.Println(renderText(result.Transformed))
	cmd.Println()
	cmd.Println(renderMetrics(result.Metrics))

	if len(result.AppliedTransforms) == 0 {
		cmd.Println(labelStyle.Render("Applied: none"))
	} else {
		cmd.Println(labelStyle.Render("Applied: " + strings.Join(result.AppliedTransforms, ", ")))
	}
	return nil
}
