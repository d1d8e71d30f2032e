package renderer

import (
	"math/rand"
	"runtime"
	"sync"
	"sync/atomic"
)

// rowTask is one unit of work: render every pixel in a single image row.
// Rows are independent (spec.md 5), so this is the dispatch granularity;
// any finer or coarser partitioning would preserve the same invariants.
type rowTask struct {
	row int
}

// WorkerPool renders an Image in parallel over a fixed number of workers,
// each with its own independent *rand.Rand (spec.md 5 — a shared mutable
// RNG across goroutines is explicitly disallowed).
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
}

// NewWorkerPool creates a pool of numWorkers goroutines. numWorkers <= 0
// defaults to runtime.NumCPU().
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{raytracer: raytracer, numWorkers: numWorkers}
}

// ProgressFunc is invoked each time another progress step of rows has
// completed, and once more with 1.0 when the render finishes; fraction is
// the share of rows completed so far, in (0, 1].
type ProgressFunc func(fraction float64)

// Render fills img by dispatching one task per row across the pool's
// workers, reporting progress roughly every progressFraction of the image's
// rows. progressFraction <= 0 disables progress callbacks.
func (wp *WorkerPool) Render(img *Image, progressFraction float64, onProgress ProgressFunc) {
	tasks := make(chan rowTask, img.Height)
	for row := 0; row < img.Height; row++ {
		tasks <- rowTask{row: row}
	}
	close(tasks)

	var completed int64
	reportEvery := progressStep(img.Height, progressFraction)

	var wg sync.WaitGroup
	for w := 0; w < wp.numWorkers; w++ {
		wg.Add(1)
		go func(random *rand.Rand) {
			defer wg.Done()
			for task := range tasks {
				wp.renderRow(img, task.row, random)

				done := atomic.AddInt64(&completed, 1)
				if onProgress != nil && reportEvery > 0 && done%int64(reportEvery) == 0 {
					onProgress(float64(done) / float64(img.Height))
				}
			}
		}(rand.New(rand.NewSource(rand.Int63())))
	}
	wg.Wait()

	if onProgress != nil && reportEvery > 0 {
		onProgress(1.0)
	}
}

func (wp *WorkerPool) renderRow(img *Image, row int, random *rand.Rand) {
	for col := 0; col < img.Width; col++ {
		img.Set(row, col, wp.raytracer.TracePixel(row, col, random))
	}
}

// progressStep converts a progress fraction into a row count, guarding
// against a zero step for very short images (spec.md 9 open question).
func progressStep(totalRows int, progressFraction float64) int {
	if progressFraction <= 0 {
		return 0
	}
	step := int(float64(totalRows) * progressFraction)
	if step < 1 {
		step = 1
	}
	return step
}
