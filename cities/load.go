package cities

import (
	"bufio"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

const (
	// CoordsSuffix and NamesSuffix complete a LoadFiles prefix.
	CoordsSuffix = "_xy.csv"
	NamesSuffix  = "_name.csv"
)

// Load reads city coordinates and names from two parallel sources.
// Row i of coords ("x,y") and row i of names form city i. Trailing blank
// lines are ignored; any other blank row is an error.
//
// Errors: every malformed input wraps ErrInputFormat; read failures of the
// underlying readers are returned wrapped as-is.
//
// Complexity: O(n) parsing + O(n²) distance matrix.
func Load(coords, names io.Reader) (*Table, error) {
	points, err := readCoords(coords)
	if err != nil {
		return nil, err
	}
	labels, err := readNames(names)
	if err != nil {
		return nil, err
	}
	if len(points) != len(labels) {
		return nil, fmt.Errorf("%d coordinate rows vs %d name rows: %w", len(points), len(labels), ErrInputFormat)
	}
	if len(points) == 0 {
		return nil, ErrEmptyTable
	}

	cs := make([]City, len(points))
	for i := range points {
		cs[i] = City{ID: i, Name: labels[i], X: points[i][0], Y: points[i][1]}
	}

	return New(cs)
}

// LoadFiles opens <prefix>_xy.csv and <prefix>_name.csv and calls Load.
func LoadFiles(prefix string) (*Table, error) {
	cf, err := os.Open(prefix + CoordsSuffix)
	if err != nil {
		return nil, fmt.Errorf("cities: %w", err)
	}
	defer cf.Close()

	nf, err := os.Open(prefix + NamesSuffix)
	if err != nil {
		return nil, fmt.Errorf("cities: %w", err)
	}
	defer nf.Close()

	return Load(cf, nf)
}

// readRows returns the trimmed lines of r. Trailing blank lines are
// dropped; a blank line before the last non-blank one breaks the
// row-to-row pairing of the two sources and is rejected with its row number.
func readRows(r io.Reader, kind string) ([]string, error) {
	var (
		out  []string
		line string
		sc   = bufio.NewScanner(r)
	)
	for sc.Scan() {
		line = strings.TrimSpace(sc.Text())
		out = append(out, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("cities: reading %s: %w", kind, err)
	}

	for len(out) > 0 && out[len(out)-1] == "" {
		out = out[:len(out)-1]
	}
	for i, l := range out {
		if l == "" {
			return nil, fmt.Errorf("%s row %d: blank: %w", kind, i+1, ErrInputFormat)
		}
	}

	return out, nil
}

// readCoords parses one "x,y" CSV record per row.
func readCoords(r io.Reader) ([][2]float64, error) {
	rows, err := readRows(r, "coordinates")
	if err != nil {
		return nil, err
	}

	var (
		out = make([][2]float64, 0, len(rows))
		rec []string
		row int
	)
	for i, line := range rows {
		row = i + 1
		cr := csv.NewReader(strings.NewReader(line))
		cr.FieldsPerRecord = 2
		cr.TrimLeadingSpace = true
		rec, err = cr.Read()
		if err != nil {
			return nil, fmt.Errorf("coordinates row %d: %v: %w", row, err, ErrInputFormat)
		}

		var p [2]float64
		for k := 0; k < 2; k++ {
			p[k], err = strconv.ParseFloat(strings.TrimSpace(rec[k]), 64)
			if err != nil {
				return nil, fmt.Errorf("coordinates row %d field %d: %q: %w", row, k+1, rec[k], ErrInputFormat)
			}
			if !finite(p[k]) {
				return nil, fmt.Errorf("coordinates row %d field %d: non-finite %q: %w", row, k+1, rec[k], ErrInputFormat)
			}
		}
		out = append(out, p)
	}

	return out, nil
}

// readNames returns one trimmed name per row.
func readNames(r io.Reader) ([]string, error) {
	return readRows(r, "names")
}
