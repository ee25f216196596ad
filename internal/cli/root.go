package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"movierec/config"
	"movierec/internal/logging"
	"movierec/internal/metrics"
)

var (
	cfgFile     string
	cfg         *config.Config
	rootDir     string
	datasetPath string
	logLevel    string
	noColor     bool
	metricsFile string
	printer     *Printer
)

var rootCmd = &cobra.Command{
	Use:   "movierec",
	Short: "Movie recommender - match free-text preferences against movie reviews",
	Long: `movierec aggregates a table of movie reviews into one record per movie and
recommends the five movies whose description and genres are most similar to a
free-text preference, using bag-of-words cosine similarity.

Example usage:
  movierec recommend -q "space adventure"    # One-shot recommendation
  movierec interactive                       # Prompt until "quit"
  movierec corpus --limit 20                 # Show aggregated movies
  movierec history                           # Show past recommendations`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error

		rootDir, err = os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get working directory: %w", err)
		}

		if cfgFile != "" {
			cfg, err = config.Load(cfgFile)
		} else {
			cfg, err = config.LoadFromDir(rootDir)
		}
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if datasetPath != "" {
			cfg.Dataset.Path = datasetPath
		}
		if logLevel != "" {
			cfg.Logging.Level = logLevel
		}
		if metricsFile != "" {
			cfg.Metrics.Textfile = metricsFile
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logging.Init(logging.Config{
			Level:   cfg.Logging.Level,
			Format:  cfg.Logging.Format,
			Output:  cmd.ErrOrStderr(),
			NoColor: noColor,
		})
		printer = NewPrinter(cmd.OutOrStdout(), cmd.ErrOrStderr(), ResolveColors(noColor, cfg.Output.Colors))

		return nil
	},
}

func Execute() {
	err := rootCmd.Execute()
	flushMetrics()
	if err != nil {
		os.Exit(1)
	}
}

// flushMetrics writes the metrics textfile when one is configured.
func flushMetrics() {
	if cfg == nil || cfg.Metrics.Textfile == "" {
		return
	}
	if err := metrics.WriteTextfile(cfg.Metrics.Textfile); err != nil {
		l := logging.Logger()
		l.Warn().Err(err).Str("path", cfg.Metrics.Textfile).Msg("failed to write metrics textfile")
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./movierec.yaml)")
	rootCmd.PersistentFlags().StringVarP(&datasetPath, "dataset", "f", "", "dataset file or glob (overrides dataset.path)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level: trace, debug, info, warn, error, disabled")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&metricsFile, "metrics-file", "", "write prometheus metrics to this file on exit")
}
