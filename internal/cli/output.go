package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/goccy/go-json"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"movierec/internal/domain"
	"movierec/internal/usecase"
)

// Output formats.
const (
	FormatTable = "table"
	FormatPlain = "plain"
	FormatJSON  = "json"
)

const noRecommendations = "No recommendations found."

// Printer handles formatted output to the terminal
type Printer struct {
	out       io.Writer
	err       io.Writer
	useColors bool
}

func NewPrinter(out, errOut io.Writer, useColors bool) *Printer {
	return &Printer{out: out, err: errOut, useColors: useColors}
}

// ResolveColors decides whether to color output. --no-color, NO_COLOR and a
// dumb terminal all turn colors off; otherwise the config value wins.
func ResolveColors(noColor, configColors bool) bool {
	if noColor {
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return configColors
}

// Info prints an informational message
func (p *Printer) Info(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgCyan).Fprintf(p.out, format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, format+"\n", args...)
	}
}

func (p *Printer) Warning(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.err, format+"\n", args...)
	} else {
		fmt.Fprintf(p.err, format+"\n", args...)
	}
}

// Print prints a plain message
func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Header prints a section header
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
	} else {
		fmt.Fprintf(p.out, "\n%s\n", title)
	}
}

func (p *Printer) Bold(text string) string {
	if p.useColors {
		return color.New(color.Bold).Sprint(text)
	}
	return text
}

func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}

// Prompt writes a prompt without a trailing newline.
func (p *Printer) Prompt(text string) {
	if p.useColors {
		color.New(color.FgGreen).Fprint(p.out, text)
	} else {
		fmt.Fprint(p.out, text)
	}
}

func (p *Printer) JSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = fmt.Fprintln(p.out, string(data))
	return err
}

func newTable(w io.Writer) *tablewriter.Table {
	return tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoWrap: tw.WrapNone,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{
					AutoFormat: tw.On,
				},
				Alignment: tw.CellAlignment{
					Global: tw.AlignLeft,
				},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{
					ShowHeader: tw.Off,
				},
			},
		}),
	)
}

func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := newTable(w)
	table.Header(header)
	if err := table.Bulk(rows); err != nil {
		return err
	}
	return table.Render()
}

// resultJSON is the machine-readable form of one recommendation.
type resultJSON struct {
	Rank          int      `json:"rank"`
	Name          string   `json:"name"`
	Score         float64  `json:"score"`
	AverageRating *float64 `json:"average_rating"`
	Description   *string  `json:"description"`
	Genres        *string  `json:"genres"`
	Emotions      []string `json:"emotions"`
}

type recommendationJSON struct {
	ID      string       `json:"id"`
	Query   string       `json:"query"`
	Results []resultJSON `json:"results"`
}

func rating(item domain.ItemRecord) *float64 {
	if !item.HasRating() {
		return nil
	}
	r := item.AverageRating
	return &r
}

func formatRating(item domain.ItemRecord) string {
	if !item.HasRating() {
		return "-"
	}
	return strconv.FormatFloat(item.AverageRating, 'f', 2, 64)
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-3]) + "..."
}

// PrintRecommendation renders rec in the given format.
func (p *Printer) PrintRecommendation(rec *usecase.Recommendation, format string) error {
	if format == FormatJSON {
		out := recommendationJSON{
			ID:      rec.ID,
			Query:   rec.Query,
			Results: make([]resultJSON, len(rec.Results)),
		}
		for i, r := range rec.Results {
			emotions := r.Item.Emotions
			if emotions == nil {
				emotions = []string{}
			}
			out.Results[i] = resultJSON{
				Rank:          r.Rank,
				Name:          r.Item.Name,
				Score:         r.Score,
				AverageRating: rating(r.Item),
				Description:   r.Item.Description,
				Genres:        r.Item.Genres,
				Emotions:      emotions,
			}
		}
		return p.JSON(out)
	}

	if len(rec.Results) == 0 {
		p.Info(noRecommendations)
		return nil
	}

	p.Header(fmt.Sprintf("Top %d movie recommendations based on your query:", len(rec.Results)))

	if format == FormatTable {
		rows := make([][]string, 0, len(rec.Results))
		for _, r := range rec.Results {
			rows = append(rows, []string{
				strconv.Itoa(r.Rank),
				r.Item.Name,
				strconv.FormatFloat(r.Score, 'f', 3, 64),
				formatRating(r.Item),
				r.Item.GenresText(),
				truncate(r.Item.DescriptionText(), 60),
			})
		}
		return renderTable(p.out, []string{"Rank", "Movie", "Score", "Rating", "Genres", "Description"}, rows)
	}

	for _, r := range rec.Results {
		desc := r.Item.DescriptionText()
		if r.Item.Description == nil {
			desc = p.Dim("(none)")
		}
		p.Print("Movie: %s", p.Bold(r.Item.Name))
		p.Print("Description: %s", desc)
	}
	return nil
}

type itemJSON struct {
	Name          string   `json:"name"`
	AverageRating *float64 `json:"average_rating"`
	Description   *string  `json:"description"`
	Genres        *string  `json:"genres"`
	Emotions      []string `json:"emotions"`
}

// PrintCorpus lists aggregated items.
func (p *Printer) PrintCorpus(corpus domain.Corpus, asJSON bool) error {
	if asJSON {
		out := make([]itemJSON, len(corpus))
		for i, item := range corpus {
			emotions := item.Emotions
			if emotions == nil {
				emotions = []string{}
			}
			out[i] = itemJSON{
				Name:          item.Name,
				AverageRating: rating(item),
				Description:   item.Description,
				Genres:        item.Genres,
				Emotions:      emotions,
			}
		}
		return p.JSON(out)
	}

	if len(corpus) == 0 {
		p.Warning("No movies found.")
		return nil
	}
	rows := make([][]string, 0, len(corpus))
	for _, item := range corpus {
		rows = append(rows, []string{item.Name, formatRating(item), item.GenresText(), item.EmotionsText()})
	}
	return renderTable(p.out, []string{"Movie", "Rating", "Genres", "Emotions"}, rows)
}

// PrintHistory lists recorded recommendations, newest first.
func (p *Printer) PrintHistory(entries []domain.HistoryEntry, asJSON bool) error {
	if asJSON {
		if entries == nil {
			entries = []domain.HistoryEntry{}
		}
		return p.JSON(entries)
	}

	if len(entries) == 0 {
		p.Warning("No history recorded.")
		return nil
	}
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		names := make([]string, len(e.Results))
		for i, r := range e.Results {
			names[i] = r.Name
		}
		rows = append(rows, []string{
			e.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			e.Query,
			strings.Join(names, ", "),
		})
	}
	return renderTable(p.out, []string{"Time", "Query", "Recommendations"}, rows)
}
