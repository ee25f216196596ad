package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"movierec/internal/usecase"
)

const (
	promptText = "Enter your movie preference (plot, genre, emotion): "
	goodbye    = "Thank you for using the Movie Recommender!"
)

var errNoPreference = errors.New("no preference entered: input ended before a line was read")

var (
	recommendQuery  string
	recommendFormat string
)

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Recommend five movies for one preference",
	Long: `Rank every movie against a free-text preference and print the top five.

Without --query the preference is read once from standard input.

Examples:
  movierec recommend -q "space adventure"
  movierec recommend -q "heist thriller" --format json
  movierec recommend -f "data/**/*.csv"`,
	RunE: runRecommend,
}

func init() {
	rootCmd.AddCommand(recommendCmd)
	recommendCmd.Flags().StringVarP(&recommendQuery, "query", "q", "", "movie preference (prompted when omitted)")
	recommendCmd.Flags().StringVar(&recommendFormat, "format", "", "output format: table, plain, json (default from config)")
}

func outputFormat(flag string) (string, error) {
	format := cfg.Output.Format
	if flag != "" {
		format = flag
	}
	switch format {
	case FormatTable, FormatPlain, FormatJSON:
		return format, nil
	default:
		return "", fmt.Errorf("invalid format %q: must be table, plain, or json", format)
	}
}

// readLine reads one line, returning io.EOF only when nothing was read.
func readLine(r *bufio.Reader) (string, error) {
	line, err := r.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	return strings.TrimRight(line, "\r\n"), err
}

func runRecommend(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(recommendFormat)
	if err != nil {
		return err
	}

	query := recommendQuery
	if query == "" {
		printer.Header("Movie Recommendation System")
		printer.Prompt("\n" + promptText)
		query, err = readLine(bufio.NewReader(cmd.InOrStdin()))
		if err == io.EOF {
			printer.Print("")
			return errNoPreference
		}
		if err != nil {
			return fmt.Errorf("failed to read preference: %w", err)
		}
	}

	if usecase.IsQuit(query) {
		printer.Info(goodbye)
		return nil
	}

	ctx := cmd.Context()
	corpus, err := loadCorpus(ctx)
	if err != nil {
		return err
	}

	history, err := openHistory(false)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	if history != nil {
		defer history.Close()
	}

	uc, err := newRecommendUseCase(history)
	if err != nil {
		return err
	}
	rec, err := uc.Recommend(ctx, corpus, query)
	if err != nil {
		return err
	}
	return printer.PrintRecommendation(rec, format)
}
