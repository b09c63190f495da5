package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/absedu/campus/core/schedule"
	"github.com/absedu/campus/storage/sheets/workbook"
)

// export writes the branch's month (or today+days when days > 0) to an xlsx workbook.
func (cli *commandLine) export(branch, out string, days int) error {
	ctx := context.Background()

	var (
		sessions []schedule.Session
		err      error
	)
	if days > 0 {
		sessions, err = cli.schedSvc.BranchRolling(ctx, branch, days)
	} else {
		sessions, err = cli.schedSvc.BranchMonth(ctx, branch)
	}
	if err != nil {
		return err
	}

	if dir := filepath.Dir(out); dir != "." {
		if err = os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrap(err, "creating output directory")
		}
	}
	if err = workbook.Save(out, workbook.Sheet{Name: "Schedule", Grid: schedule.Grid(sessions)}); err != nil {
		return err
	}
	fmt.Fprintf(cli.out, "%d sessions written to %s\n", len(sessions), out)
	return nil
}
