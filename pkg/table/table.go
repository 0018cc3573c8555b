package table

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Row indices of the benchmark table.
const (
	rowMultiTimes  = 0
	rowSingleTimes = 1
	rowCellCounts  = 2

	numRows = 3
)

var ErrInvalidRange = errors.New("prefix width out of range")

// Matrix is the raw benchmark table: row 0 holds multiprocessed iteration
// times, row 1 singleprocessed iteration times, row 2 cell counts. Column 0
// of every row is a label column and is excluded from all computations.
type Matrix [][]float64

func New(rows [][]float64) (Matrix, error) {
	if len(rows) != numRows {
		return nil, fmt.Errorf("expected %d rows, got %d", numRows, len(rows))
	}

	width := len(rows[0])
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d columns, row 0 has %d", i, len(row), width)
		}
	}
	if width < 2 {
		return nil, fmt.Errorf("need at least one data column besides the label column, got %d columns", width)
	}

	return Matrix(rows), nil
}

// DataColumns returns N, the number of data columns (total minus the label column).
func (m Matrix) DataColumns() int {
	return len(m[0]) - 1
}

// Split returns the first prefixWidth data columns of each row as three
// equal-length series: multiprocessed times, singleprocessed times, cell counts.
func (m Matrix) Split(prefixWidth int) (multiTimes, singleTimes, cellCounts []float64, err error) {
	n := m.DataColumns()
	if prefixWidth < 1 || prefixWidth > n {
		return nil, nil, nil, fmt.Errorf("%w: %d not in [1, %d]", ErrInvalidRange, prefixWidth, n)
	}

	prefix := func(row int) []float64 {
		out := make([]float64, prefixWidth)
		copy(out, m[row][1:1+prefixWidth])
		return out
	}

	return prefix(rowMultiTimes), prefix(rowSingleTimes), prefix(rowCellCounts), nil
}

// Load reads a benchmark table from a text file with one row per line.
// Values may be separated by whitespace or commas, and lines may carry the
// bracket delimiters the data generator emits.
func Load(path string) (Matrix, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var rows [][]float64
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		row, err := parseRow(line)
		if err != nil {
			return nil, fmt.Errorf("line %d of %s: %w", len(rows)+1, path, err)
		}
		rows = append(rows, row)
	}

	m, err := New(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Debugf("Loaded %dx%d table from %s", numRows, len(m[0]), path)
	return m, nil
}

func parseRow(line string) ([]float64, error) {
	cleaned := strings.NewReplacer("[", " ", "]", " ", ",", " ").Replace(line)

	fields := strings.Fields(cleaned)
	row := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("cannot parse %q as a number", f)
		}
		row = append(row, v)
	}
	return row, nil
}
