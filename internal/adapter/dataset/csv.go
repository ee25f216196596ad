// Package dataset reads movie review tables from delimited text files.
package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/schollz/progressbar/v3"

	"movierec/internal/adapter/fs"
	"movierec/internal/domain"
	"movierec/internal/logging"
)

// Required column names.
const (
	ColumnName        = "movie_name"
	ColumnRating      = "Ratings"
	ColumnDescription = "Description"
	ColumnGenres      = "genres"
	ColumnEmotion     = "emotion"
)

var requiredColumns = []string{ColumnName, ColumnRating, ColumnDescription, ColumnGenres, ColumnEmotion}

// nullMarkers are cell values read as null.
var nullMarkers = map[string]struct{}{
	"": {}, "NA": {}, "N/A": {}, "n/a": {}, "NaN": {}, "nan": {}, "-NaN": {}, "-nan": {},
	"NULL": {}, "null": {}, "None": {}, "<NA>": {}, "#N/A": {}, "#NA": {}, "#N/A N/A": {},
	"1.#IND": {}, "-1.#IND": {}, "1.#QNAN": {}, "-1.#QNAN": {},
}

// CSVReader loads raw rows from one file or a glob of files.
type CSVReader struct {
	location  string
	delimiter rune
	progress  io.Writer
}

type Option func(*CSVReader)

// WithDelimiter sets the field delimiter. The default is ','.
func WithDelimiter(d rune) Option {
	return func(r *CSVReader) {
		r.delimiter = d
	}
}

// WithProgress renders a byte progress bar to w while reading.
func WithProgress(w io.Writer) Option {
	return func(r *CSVReader) {
		r.progress = w
	}
}

func NewCSVReader(location string, opts ...Option) *CSVReader {
	r := &CSVReader{
		location:  location,
		delimiter: ',',
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Load reads every matched file and concatenates their rows in path order.
func (r *CSVReader) Load(ctx context.Context) ([]domain.RawRow, error) {
	files, err := fs.Resolve(r.location)
	if err != nil {
		return nil, loadError(r.location, err)
	}
	if len(files) == 0 {
		return nil, loadError(r.location, ErrNoDatasetFiles)
	}

	var rows []domain.RawRow
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		fileRows, err := r.loadFile(file)
		if err != nil {
			return nil, err
		}
		logging.Ctx(ctx).Debug().
			Str("path", file.Path).
			Int("rows", len(fileRows)).
			Msg("dataset file read")
		rows = append(rows, fileRows...)
	}
	return rows, nil
}

func (r *CSVReader) loadFile(file fs.FileInfo) ([]domain.RawRow, error) {
	f, err := os.Open(file.Path)
	if err != nil {
		return nil, loadError(file.Path, err)
	}
	defer f.Close()

	var src io.Reader = f
	if r.progress != nil {
		bar := progressbar.NewOptions64(file.Size,
			progressbar.OptionSetWriter(r.progress),
			progressbar.OptionShowBytes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionSetDescription("Loading dataset"),
			progressbar.OptionClearOnFinish(),
		)
		defer bar.Finish()
		src = io.TeeReader(f, bar)
	}

	rows, err := Parse(src, r.delimiter)
	if err != nil {
		return nil, loadError(file.Path, err)
	}
	return rows, nil
}

// Parse reads a header row followed by data rows. Columns other than the
// required ones are ignored.
func Parse(src io.Reader, delimiter rune) ([]domain.RawRow, error) {
	cr := csv.NewReader(src)
	cr.Comma = delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty input, no header row", ErrMalformedRow)
		}
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}

	idx, err := columnIndex(header)
	if err != nil {
		return nil, err
	}

	var rows []domain.RawRow
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := cr.FieldPos(0)
		if len(record) > len(header) {
			return nil, malformedRow(line, "expected %d fields, saw %d", len(header), len(record))
		}

		row, err := toRow(record, idx, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, row)
	}
	return rows, nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(requiredColumns))
	for i, name := range header {
		if _, dup := idx[name]; !dup {
			idx[name] = i
		}
	}

	var missing []string
	for _, col := range requiredColumns {
		if _, ok := idx[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, missingColumns(missing)
	}
	return idx, nil
}

func toRow(record []string, idx map[string]int, line int) (domain.RawRow, error) {
	cell := func(col string) *string {
		i := idx[col]
		if i >= len(record) {
			return nil
		}
		if _, isNull := nullMarkers[record[i]]; isNull {
			return nil
		}
		v := record[i]
		return &v
	}

	row := domain.RawRow{
		Name:        cell(ColumnName),
		Rating:      math.NaN(),
		Description: cell(ColumnDescription),
		Genres:      cell(ColumnGenres),
		Emotion:     cell(ColumnEmotion),
	}

	if raw := cell(ColumnRating); raw != nil {
		rating, err := strconv.ParseFloat(strings.TrimSpace(*raw), 64)
		if err != nil {
			return domain.RawRow{}, malformedRow(line, "invalid %s value %q", ColumnRating, *raw)
		}
		row.Rating = rating
	}
	return row, nil
}
