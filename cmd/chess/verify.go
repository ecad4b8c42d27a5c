package main

import (
	"context"
	"fmt"
	"io"

	"github.com/lgbarn/chessmove-go/internal/config"
	"github.com/lgbarn/chessmove-go/internal/processing"
	"github.com/lgbarn/chessmove-go/internal/worker"
)

// runVerify checks each saved game in parallel and prints one line per
// file in argument order. The exit code is 0 when every game replays, 1
// when any is illegal or unreadable and 2 on a usage error.
func runVerify(ctx context.Context, cfg *config.Config, paths []string, out io.Writer) int {
	if len(paths) == 0 {
		fmt.Fprintln(out, "verify: no game files given")
		return 2
	}

	results, err := worker.Run(ctx, paths, verifyItem(cfg.StartFEN), worker.WithWorkers(cfg.Workers))

	code := 0
	for _, r := range results {
		switch {
		case r.Error != nil:
			fmt.Fprintf(out, "%s: %v\n", r.Path, r.Error)
			code = 1
		default:
			fmt.Fprintln(out, r.Report.(*processing.FileReport).Summary())
			if !r.Valid {
				code = 1
			}
		}
	}
	if err != nil || len(results) < len(paths) {
		fmt.Fprintf(out, "verify: stopped after %d of %d files\n", len(results), len(paths))
		code = 1
	}
	return code
}

func verifyItem(startFEN string) worker.ProcessFunc {
	return func(item worker.WorkItem) worker.ProcessResult {
		result := worker.ProcessResult{Path: item.Path, Index: item.Index}
		report, err := processing.VerifyFile(item.Path, startFEN)
		if err != nil {
			result.Error = err
			return result
		}
		result.Report = report
		result.Valid = report.Validation.Valid
		return result
	}
}
