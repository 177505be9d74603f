package table

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// Record is one row of the percentile trend table: the 10th/50th/90th MIC
// percentiles observed for an organism-drug pair in a given year.
type Record struct {
	Organism string
	Drug     string
	Year     int
	P10      float64
	Median   float64
	P90      float64
}

// required column names, matched case-insensitively against the header.
var requiredColumns = []string{"organism", "drug", "year", "p10", "median", "p90"}

// Load reads the percentile table from a CSV file with a header row.
// Extra columns are ignored. Rows with missing or non-numeric values in
// the required columns are reported with their 1-based row number.
func Load(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open table: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.ReuseRecord = true
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("read header: %s is empty", path)
		}
		return nil, fmt.Errorf("read header: %w", err)
	}
	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.ToLower(strings.TrimSpace(name))] = i
	}
	var missing []string
	for _, name := range requiredColumns {
		if _, ok := idx[name]; !ok {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("%s: missing required column(s): %s", path, strings.Join(missing, ", "))
	}

	var recs []Record
	row := 1 // header was row 1
	for {
		rec, err := r.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("read row %d: %w", row+1, err)
		}
		row++
		cell := func(name string) string {
			i := idx[name]
			if i >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[i])
		}
		organism := cell("organism")
		drug := cell("drug")
		if organism == "" || drug == "" {
			return nil, fmt.Errorf("row %d: empty organism or drug", row)
		}
		year, err := parseYear(cell("year"))
		if err != nil {
			return nil, fmt.Errorf("row %d: column year: %w", row, err)
		}
		p10, err := parseFloat(cell("p10"))
		if err != nil {
			return nil, fmt.Errorf("row %d: column p10: %w", row, err)
		}
		median, err := parseFloat(cell("median"))
		if err != nil {
			return nil, fmt.Errorf("row %d: column median: %w", row, err)
		}
		p90, err := parseFloat(cell("p90"))
		if err != nil {
			return nil, fmt.Errorf("row %d: column p90: %w", row, err)
		}
		recs = append(recs, Record{
			Organism: organism,
			Drug:     drug,
			Year:     year,
			P10:      p10,
			Median:   median,
			P90:      p90,
		})
	}
	return recs, nil
}

func parseFloat(s string) (float64, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", s)
	}
	return f, nil
}

// parseYear accepts plain integers and integral floats ("2010.0"), which
// upstream table exports sometimes produce for year columns.
func parseYear(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty value")
	}
	if y, err := strconv.Atoi(s); err == nil {
		return y, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) {
		return 0, fmt.Errorf("invalid year %q", s)
	}
	return int(f), nil
}
