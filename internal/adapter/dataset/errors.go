package dataset

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoDatasetFiles means the dataset location matched no file.
	ErrNoDatasetFiles = errors.New("no dataset files found")

	// ErrMissingColumns means a required column is absent from the header.
	ErrMissingColumns = errors.New("missing required columns")

	// ErrMalformedRow means a row could not be read as part of the table.
	ErrMalformedRow = errors.New("malformed row")
)

// DataLoadError reports a dataset that cannot be turned into rows.
// It is fatal for the invocation that triggered the load.
type DataLoadError struct {
	Path string
	Err  error
}

func (e *DataLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("load dataset: %v", e.Err)
	}
	return fmt.Sprintf("load dataset %s: %v", e.Path, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

func loadError(path string, err error) error {
	return &DataLoadError{Path: path, Err: err}
}

func missingColumns(cols []string) error {
	return fmt.Errorf("%w: %s", ErrMissingColumns, strings.Join(cols, ", "))
}

func malformedRow(line int, format string, args ...any) error {
	return fmt.Errorf("%w at line %d: %s", ErrMalformedRow, line, fmt.Sprintf(format, args...))
}
