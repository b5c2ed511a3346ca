package engine

import (
	"context"
	"log/slog"
	"sync"

	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/model"
	"github.com/werneraleeb-pixel/Beleg-Renamer/internal/service"
)

// DefaultWorkers is the batch concurrency used when none is configured.
const DefaultWorkers = 4

// Engine ties the pipeline, the learned-company overlay and the file
// renamer together for the CLI commands.
type Engine struct {
	storage  service.Storage
	pipeline *Pipeline
	renamer  *FileRenamer
	workers  int
}

// Result is the outcome for one file of a batch.
type Result struct {
	Err     error
	NewPath string
	Receipt model.Receipt
}

// New creates an engine. workers <= 0 selects DefaultWorkers.
func New(storage service.Storage, texts service.TextSource, workers int) *Engine {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Engine{
		storage:  storage,
		pipeline: NewPipeline(texts),
		renamer:  NewFileRenamer(),
		workers:  workers,
	}
}

// Classify runs the pipeline for a single document without touching the
// file.
func (e *Engine) Classify(ctx context.Context, path string) (model.Receipt, error) {
	learned, err := e.storage.ListLearnedCompanies(ctx)
	if err != nil {
		return model.Receipt{}, err
	}
	return e.pipeline.Process(ctx, path, learned)
}

// RenameFiles processes and renames the given files with the configured
// number of workers. The learned overlay is loaded once and shared
// read-only across the batch. One file's failure never aborts siblings;
// progress, when non-nil, is called once per finished file from the calling
// goroutine. Results are returned in input order.
func (e *Engine) RenameFiles(ctx context.Context, paths []string, progress func(Result)) ([]Result, error) {
	learned, err := e.storage.ListLearnedCompanies(ctx)
	if err != nil {
		return nil, err
	}

	type job struct {
		path string
		idx  int
	}

	jobs := make(chan job)
	done := make(chan struct {
		result Result
		idx    int
	})

	var wg sync.WaitGroup
	for w := 0; w < e.workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := range jobs {
				done <- struct {
					result Result
					idx    int
				}{result: e.renameOne(ctx, j.path, learned), idx: j.idx}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for i, path := range paths {
			select {
			case jobs <- job{path: path, idx: i}:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(done)
	}()

	results := make([]Result, len(paths))
	finished := 0
	for d := range done {
		results[d.idx] = d.result
		finished++
		if progress != nil {
			progress(d.result)
		}
	}

	// Files never handed to a worker because of cancellation.
	if finished < len(paths) && ctx.Err() != nil {
		for i := range results {
			if results[i].Receipt.Status == "" && results[i].Err == nil {
				results[i].Err = ctx.Err()
			}
		}
	}

	return results, ctx.Err()
}

func (e *Engine) renameOne(ctx context.Context, path string, learned []model.Company) Result {
	receipt, err := e.pipeline.Process(ctx, path, learned)
	if err != nil {
		slog.Warn("Failed to process document", "path", path, "error", err)
		return Result{Receipt: receipt, Err: err}
	}

	newPath, err := e.renamer.Rename(receipt)
	if err != nil {
		receipt.Status = model.StatusError
		receipt.Error = err.Error()
		slog.Warn("Failed to rename document", "path", path, "error", err)
		return Result{Receipt: receipt, Err: err}
	}

	slog.Debug("Renamed document", "from", path, "to", newPath)
	return Result{Receipt: receipt, NewPath: newPath}
}
