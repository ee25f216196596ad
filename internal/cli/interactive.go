package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"

	"movierec/internal/usecase"
)

const historyCommand = "history"

var interactiveFormat string

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Prompt for preferences until quit",
	Long: `Load the dataset once, then keep prompting for preferences.

Type "history" to list this session's recommendations and "quit" to exit.
Ctrl-C or end of input also ends the session.`,
	RunE: runInteractive,
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
	interactiveCmd.Flags().StringVar(&interactiveFormat, "format", "", "output format: table, plain, json (default from config)")
}

type lineResult struct {
	line string
	err  error
}

// readLines feeds lines from r until EOF, a read error or done is closed.
func readLines(r io.Reader, done <-chan struct{}) <-chan lineResult {
	ch := make(chan lineResult)
	go func() {
		defer close(ch)
		br := bufio.NewReader(r)
		for {
			line, err := readLine(br)
			select {
			case ch <- lineResult{line: line, err: err}:
			case <-done:
				return
			}
			if err != nil {
				return
			}
		}
	}()
	return ch
}

func runInteractive(cmd *cobra.Command, args []string) error {
	format, err := outputFormat(interactiveFormat)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	corpus, err := loadCorpus(ctx)
	if err != nil {
		return err
	}

	history, err := openHistory(true)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer history.Close()

	uc, err := newRecommendUseCase(history)
	if err != nil {
		return err
	}

	printer.Header("Movie Recommendation System")
	printer.Print("%s", printer.Dim(fmt.Sprintf("%d movies loaded. Type %q to exit.", len(corpus), usecase.QuitCommand)))

	done := make(chan struct{})
	defer close(done)
	lines := readLines(cmd.InOrStdin(), done)
	for {
		printer.Prompt("\n" + promptText)

		var in lineResult
		select {
		case <-ctx.Done():
			printer.Print("")
			printer.Info("Program terminated by user.")
			return nil
		case r, ok := <-lines:
			if !ok {
				return nil
			}
			in = r
		}

		if in.err == io.EOF {
			printer.Print("")
			printer.Info(goodbye)
			return nil
		}
		if in.err != nil {
			return fmt.Errorf("failed to read preference: %w", in.err)
		}

		query := in.line
		switch {
		case usecase.IsQuit(query):
			printer.Info(goodbye)
			return nil
		case strings.EqualFold(strings.TrimSpace(query), historyCommand):
			entries, err := history.List(cfg.History.Limit)
			if err != nil {
				return fmt.Errorf("failed to list history: %w", err)
			}
			if err := printer.PrintHistory(entries, format == FormatJSON); err != nil {
				return err
			}
			continue
		}

		rec, err := uc.Recommend(ctx, corpus, query)
		if err != nil {
			if ctx.Err() != nil {
				printer.Info("Program terminated by user.")
				return nil
			}
			return err
		}
		if err := printer.PrintRecommendation(rec, format); err != nil {
			return err
		}
	}
}
