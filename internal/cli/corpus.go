package cli

import (
	"github.com/spf13/cobra"
)

var (
	corpusLimit int
	corpusJSON  bool
)

var corpusCmd = &cobra.Command{
	Use:   "corpus",
	Short: "Show the aggregated movie records",
	Long: `Load the dataset and print one line per movie with its average rating,
genres and emotion tags, ordered by name.`,
	RunE: runCorpus,
}

func init() {
	rootCmd.AddCommand(corpusCmd)
	corpusCmd.Flags().IntVar(&corpusLimit, "limit", 0, "show at most this many movies (0 = all)")
	corpusCmd.Flags().BoolVar(&corpusJSON, "json", false, "output as JSON")
}

func runCorpus(cmd *cobra.Command, args []string) error {
	corpus, err := loadCorpus(cmd.Context())
	if err != nil {
		return err
	}
	if corpusLimit > 0 && corpusLimit < len(corpus) {
		corpus = corpus[:corpusLimit]
	}
	return printer.PrintCorpus(corpus, corpusJSON)
}
