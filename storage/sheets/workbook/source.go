package workbook

import (
	"context"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/absedu/campus/core/sheet"
)

// Source reads ranges from a local .xlsx workbook laid out like the remote spreadsheet.
// The file is reopened on every read so edits are picked up without a restart.
type Source struct {
	path string
	mu   sync.Mutex
}

var _ sheet.Source = (*Source)(nil) // interface compliance check

func New(path string) (*Source, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, errors.Wrap(err, "workbook")
	}
	return &Source{path: path}, nil
}

func (src *Source) Values(ctx context.Context, rng string) (sheet.Grid, error) {
	if err := ctx.Err(); err != nil {
		return nil, sheet.NewTransportError(rng, 0, err)
	}
	a1, err := ParseRange(rng)
	if err != nil {
		return nil, sheet.NewTransportError(rng, 0, err)
	}

	src.mu.Lock()
	defer src.mu.Unlock()

	f, err := excelize.OpenFile(src.path)
	if err != nil {
		return nil, sheet.NewTransportError(rng, 0, err)
	}
	defer f.Close()

	if idx, err := f.GetSheetIndex(a1.Sheet); err != nil || idx < 0 {
		return nil, sheet.NewTransportError(rng, 404, nil)
	}
	rows, err := f.GetRows(a1.Sheet)
	if err != nil {
		return nil, sheet.NewTransportError(rng, 0, err)
	}
	return a1.slice(rows), nil
}

// Range is a parsed A1 range such as "Lectures!A:M" or "banners!B2:F20".
// Zero column or row bounds are open.
type Range struct {
	Sheet             string
	FirstCol, LastCol int
	FirstRow, LastRow int
}

func ParseRange(rng string) (Range, error) {
	var r Range
	name, cells := rng, ""
	if i := strings.LastIndex(rng, "!"); i >= 0 {
		name, cells = rng[:i], rng[i+1:]
	}
	r.Sheet = strings.Trim(name, "'")
	if r.Sheet == "" {
		return r, errors.Errorf("range %q has no sheet name", rng)
	}
	if cells == "" {
		return r, nil
	}

	from, to := cells, cells
	if i := strings.Index(cells, ":"); i >= 0 {
		from, to = cells[:i], cells[i+1:]
	}
	var err error
	if r.FirstCol, r.FirstRow, err = parseCell(from); err != nil {
		return r, errors.Wrapf(err, "range %q", rng)
	}
	if r.LastCol, r.LastRow, err = parseCell(to); err != nil {
		return r, errors.Wrapf(err, "range %q", rng)
	}
	return r, nil
}

// parseCell splits "B12", "B" or "12" into column and row numbers.
func parseCell(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && (ref[i] < '0' || ref[i] > '9') {
		i++
	}
	if letters := ref[:i]; letters != "" {
		if col, err = excelize.ColumnNameToNumber(letters); err != nil {
			return 0, 0, err
		}
	}
	if digits := ref[i:]; digits != "" {
		if row, err = strconv.Atoi(digits); err != nil {
			return 0, 0, err
		}
	}
	return col, row, nil
}

func (r Range) slice(rows [][]string) sheet.Grid {
	if r.LastRow > 0 && r.LastRow < len(rows) {
		rows = rows[:r.LastRow]
	}
	if r.FirstRow > 1 {
		if r.FirstRow > len(rows) {
			return sheet.Grid{}
		}
		rows = rows[r.FirstRow-1:]
	}

	grid := make(sheet.Grid, 0, len(rows))
	for _, row := range rows {
		if r.FirstCol > 1 {
			if r.FirstCol > len(row) {
				row = nil
			} else {
				row = row[r.FirstCol-1:]
			}
		}
		if r.LastCol > 0 {
			if width := r.LastCol - max(r.FirstCol, 1) + 1; width < len(row) {
				row = row[:width]
			}
		}
		grid = append(grid, trimTrailing(row))
	}
	for len(grid) > 0 && len(grid[len(grid)-1]) == 0 {
		grid = grid[:len(grid)-1]
	}
	return grid
}

func trimTrailing(row []string) []string {
	for len(row) > 0 && row[len(row)-1] == "" {
		row = row[:len(row)-1]
	}
	return append([]string{}, row...)
}
