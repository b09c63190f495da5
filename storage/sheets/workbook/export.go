package workbook

import (
	"io"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"

	"github.com/absedu/campus/core/sheet"
)

// Sheet is one named table to write.
type Sheet struct {
	Name string
	Grid sheet.Grid
}

// Write renders the sheets into a new workbook, in order, and streams it to w.
func Write(w io.Writer, sheets ...Sheet) error {
	f, err := build(sheets)
	if err != nil {
		return err
	}
	defer f.Close()
	return errors.Wrap(f.Write(w), "writing workbook")
}

// Save is Write to a file path.
func Save(path string, sheets ...Sheet) error {
	f, err := build(sheets)
	if err != nil {
		return err
	}
	defer f.Close()
	return errors.Wrap(f.SaveAs(path), "saving workbook")
}

func build(sheets []Sheet) (*excelize.File, error) {
	if len(sheets) == 0 {
		return nil, errors.New("workbook: no sheets")
	}
	f := excelize.NewFile()
	const defaultSheet = "Sheet1"

	for i, sh := range sheets {
		if i == 0 && sh.Name != defaultSheet {
			if err := f.SetSheetName(defaultSheet, sh.Name); err != nil {
				f.Close()
				return nil, errors.Wrapf(err, "naming sheet %q", sh.Name)
			}
		} else if i > 0 {
			if _, err := f.NewSheet(sh.Name); err != nil {
				f.Close()
				return nil, errors.Wrapf(err, "creating sheet %q", sh.Name)
			}
		}
		for r, row := range sh.Grid {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				f.Close()
				return nil, err
			}
			vals := make([]interface{}, len(row))
			for c, v := range row {
				vals[c] = v
			}
			if err = f.SetSheetRow(sh.Name, cell, &vals); err != nil {
				f.Close()
				return nil, errors.Wrapf(err, "writing %s row %d", sh.Name, r+1)
			}
		}
	}
	f.SetActiveSheet(0)
	return f, nil
}
