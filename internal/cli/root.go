package cli

import (
	"github.com/mgpai22/srtkit/internal/config"
	"github.com/mgpai22/srtkit/internal/logging"
	"github.com/mgpai22/srtkit/internal/srt"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	configPath string
	logger     = logging.Nop()
	cfg        = config.Default()
)

var rootCmd = &cobra.Command{
	Use:   "srtkit",
	Short: "Parse, validate and rewrite SubRip subtitle files",
	Long: `srtkit reads SubRip (.srt) subtitle files into structured cues,
reports the exact location of malformed blocks, and writes them back
in canonical form.

It can also translate cue text with an AI provider and pull subtitle
streams out of video containers.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		loaded, err := config.Load(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		logger.Debugw("Loaded configuration",
			"provider", cfg.Provider,
			"concurrency", cfg.Concurrency,
			"batch_size", cfg.BatchSize,
			"strict", cfg.Strict,
		)
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		StringVar(&configPath, "config", "", "Config file (default $XDG_CONFIG_HOME/srtkit/config.toml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
	rootCmd.PersistentFlags().
		Bool("strict", false, "Reject interval lines with tokens after the end timestamp")
}

// parser options from config, overridden by --strict when given
func parseOptions(cmd *cobra.Command) srt.Options {
	opts := srt.Options{Strict: cfg.Strict}
	if cmd.Flags().Changed("strict") {
		opts.Strict, _ = cmd.Flags().GetBool("strict")
	}
	return opts
}
