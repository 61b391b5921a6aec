package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/srtkit/internal/subtitle"
	"github.com/mgpai22/srtkit/internal/translate"
	"github.com/spf13/cobra"
)

var translateCmd = &cobra.Command{
	Use:   "translate [subtitle_file]",
	Short: "Translate subtitle text to another language using AI",
	Long: `Translate the cue text of a SubRip file to another language using AI.

Indices and timings are kept exactly as declared; only the text changes.
The output is written in canonical form.

The --overlay flag creates bilingual subtitles with the translated text
first, followed by the original text on the next line.

Examples:
  srtkit translate video.srt --target-language japanese
  srtkit translate video.srt -t ja --overlay
  srtkit translate video.srt --provider anthropic -t spanish -o translated.srt`,
	Args: cobra.ExactArgs(1),
	RunE: runTranslate,
}

func init() {
	rootCmd.AddCommand(translateCmd)

	translateCmd.Flags().
		StringP("target-language", "t", "", "Target language for translation (required)")
	translateCmd.Flags().
		StringP("language", "l", "", "Language of the input subtitles (e.g., en, es, fr)")
	translateCmd.Flags().
		Bool("overlay", false, "Overlay translated text with original (bilingual subtitles)")
	translateCmd.Flags().
		StringP("api-key", "k", "", "API key (or set GEMINI_API_KEY/OPENAI_API_KEY/ANTHROPIC_API_KEY)")
	translateCmd.Flags().
		String("model", "", "Model to use for translation (provider-specific default when empty)")
	translateCmd.Flags().
		String("provider", "", "Translation provider (gemini, openai, anthropic); defaults to config")
	translateCmd.Flags().
		Int("concurrency", 0, "Number of parallel translation workers; defaults to config")
	translateCmd.Flags().
		Int("batch-size", 0, "Number of subtitle entries per API request; defaults to config")
	translateCmd.Flags().
		String("prompt", "", "Additional instructions for the model")

	_ = translateCmd.MarkFlagRequired("target-language")
}

// output path next to the input, tagged with the target language
func defaultTranslateOutput(subtitlePath, targetLang string, overlay bool) string {
	ext := filepath.Ext(subtitlePath)
	baseName := strings.TrimSuffix(subtitlePath, ext)
	if overlay {
		return fmt.Sprintf("%s.%s.overlay%s", baseName, targetLang, ext)
	}
	return fmt.Sprintf("%s.%s%s", baseName, targetLang, ext)
}

func resolveAPIKey(provider translate.Provider, flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if key := os.Getenv(provider.APIKeyEnv()); key != "" {
		return key, nil
	}
	return "", fmt.Errorf(
		"API key is required: use --api-key flag or set %s environment variable",
		provider.APIKeyEnv(),
	)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	subtitlePath := args[0]
	ctx := context.Background()

	targetLang, _ := cmd.Flags().GetString("target-language")
	inputLang, _ := cmd.Flags().GetString("language")
	overlay, _ := cmd.Flags().GetBool("overlay")
	apiKey, _ := cmd.Flags().GetString("api-key")
	model, _ := cmd.Flags().GetString("model")
	providerStr, _ := cmd.Flags().GetString("provider")
	concurrency, _ := cmd.Flags().GetInt("concurrency")
	batchSize, _ := cmd.Flags().GetInt("batch-size")
	prompt, _ := cmd.Flags().GetString("prompt")
	outputPath, _ := cmd.Flags().GetString("output")

	if strings.TrimSpace(targetLang) == "" {
		return fmt.Errorf("target language is required")
	}
	if inputLang != "" &&
		strings.EqualFold(
			strings.TrimSpace(inputLang),
			strings.TrimSpace(targetLang),
		) {
		return fmt.Errorf(
			"input language %q and target language %q cannot be the same",
			inputLang,
			targetLang,
		)
	}

	if providerStr == "" {
		providerStr = cfg.Provider
	}
	if model == "" {
		model = cfg.Model
	}
	if concurrency == 0 {
		concurrency = cfg.Concurrency
	}
	if batchSize == 0 {
		batchSize = cfg.BatchSize
	}
	if concurrency < 0 {
		return fmt.Errorf("concurrency must be positive, got %d", concurrency)
	}
	if batchSize < 0 {
		return fmt.Errorf("batch-size must be positive, got %d", batchSize)
	}

	provider := translate.Provider(providerStr)
	apiKey, err := resolveAPIKey(provider, apiKey)
	if err != nil {
		return err
	}

	if outputPath == "" {
		outputPath = defaultTranslateOutput(subtitlePath, targetLang, overlay)
	}

	logger.Infow("Starting subtitle translation",
		"input", subtitlePath,
		"output", outputPath,
		"provider", provider,
		"target_language", targetLang,
		"input_language", inputLang,
		"overlay", overlay,
		"model", model,
	)

	subFile, err := subtitle.Open(subtitlePath, parseOptions(cmd))
	if err != nil {
		return fmt.Errorf("%s", formatDiagnostic(subtitlePath, err, false))
	}

	items := translate.ItemsFromNodes(subFile.Nodes())
	if len(items) == 0 {
		return fmt.Errorf("subtitle file contains no text to translate")
	}

	logger.Infow("Parsed subtitle file",
		"nodes", subFile.Len(),
		"items", len(items),
		"charset", subFile.Charset,
	)

	translator, err := translate.Factory(ctx, provider, apiKey, translate.Options{
		InputLanguage:  inputLang,
		TargetLanguage: targetLang,
		Model:          model,
		Prompt:         prompt,
		BatchSize:      batchSize,
	})
	if err != nil {
		return fmt.Errorf("failed to create translator: %w", err)
	}

	logger.Infow("Translating subtitles",
		"items", len(items),
		"concurrency", concurrency,
		"batch_size", batchSize,
	)

	var results []translate.TranslationResult
	if concurrentTranslator, ok := translator.(translate.ConcurrentTranslator); ok {
		results, err = concurrentTranslator.TranslateWithConcurrency(
			ctx,
			items,
			concurrency,
		)
	} else {
		results, err = translator.Translate(ctx, items)
	}
	if err != nil {
		return fmt.Errorf("translation failed: %w", err)
	}

	skipped, err := translate.Apply(subFile, results, overlay)
	if err != nil {
		return err
	}
	for _, index := range skipped {
		logger.Warnw("Skipping invalid result index",
			"index", index,
			"max", subFile.Len()-1,
		)
	}

	logger.Infow("Writing output file", "output", outputPath)
	if err := subFile.Write(outputPath); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}

	out := cmd.OutOrStdout()
	absOutput, _ := filepath.Abs(outputPath)
	fmt.Fprintf(out, "Subtitles translated successfully: %s\n", absOutput)
	fmt.Fprintf(out, "  Entries: %d\n", len(results)-len(skipped))
	fmt.Fprintf(out, "  Target language: %s\n", targetLang)
	if overlay {
		fmt.Fprintf(out, "  Mode: bilingual overlay\n")
	}

	return nil
}
