package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/lgbarn/chess-rules-go/internal/config"
	"github.com/lgbarn/chess-rules-go/internal/game"
	"github.com/lgbarn/chess-rules-go/internal/output"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// verifyRecords replays each JSON game record and reports whether it is
// consistent with the rules. It returns the number of records that failed.
//
// Every record is read and replayed on its own board by a pool worker; the
// report is written afterwards in argument order. With failFast, records not
// yet started when the first failure is seen are reported as skipped.
func verifyRecords(cfg *config.Config, paths []string, numWorkers int, failFast bool) int {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := len(paths)
	if bufferSize > 100 {
		bufferSize = 100
	}

	opts := []worker.PoolOption{worker.WithWorkers(numWorkers), worker.WithBufferSize(bufferSize)}
	if failFast {
		opts = append(opts, worker.WithStopOnError())
	}
	pool := worker.NewPool(verifyWorker, opts...)

	items := make([]worker.WorkItem, len(paths))
	for i, path := range paths {
		items[i] = worker.WorkItem{Name: path, Index: i}
	}

	failed, skipped := 0, 0
	for _, r := range pool.Run(items) {
		switch {
		case r.Skipped:
			skipped++
			fmt.Fprintf(cfg.OutputFile, "%s: skipped\n", r.Name)
		case r.Error != nil:
			failed++
			fmt.Fprintf(cfg.OutputFile, "%s: FAIL: %v\n", r.Name, r.Error)
		default:
			fmt.Fprintf(cfg.OutputFile, "%s: ok (%d plies, %s)\n", r.Name, r.Plies, r.Result)
		}
	}
	cfg.Logf(config.Events, "%d of %d records verified\n", len(paths)-failed-skipped, len(paths))
	return failed
}

// verifyWorker reads and checks one record in a worker goroutine.
func verifyWorker(item worker.WorkItem) worker.ProcessResult {
	result := worker.ProcessResult{Name: item.Name, Index: item.Index}
	record, err := readRecord(item.Name)
	if err != nil {
		result.Error = err
		return result
	}
	outcome, err := game.Verify(record)
	result.Plies = outcome.Plies
	result.Result = outcome.Result
	result.Error = err
	return result
}

// readRecord loads one JSON game record.
func readRecord(path string) (*output.JSONGame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return output.ReadGame(file)
}
