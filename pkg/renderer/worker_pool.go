package renderer

import (
	"runtime"
	"sync"
)

// rowTask is a band of image rows for a worker to render
type rowTask struct {
	yMin, yMax int
}

// WorkerPool renders disjoint row bands of an image in parallel. Each worker
// writes only its own rows of the framebuffer, so no locking is needed.
type WorkerPool struct {
	raytracer  *Raytracer
	numWorkers int
}

// NewWorkerPool creates a pool with the specified number of workers,
// defaulting to runtime.NumCPU() when numWorkers <= 0.
func NewWorkerPool(raytracer *Raytracer, numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{raytracer: raytracer, numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Render renders the full image across the pool and merges band statistics.
// Every pixel depends only on its own coordinates, so the output is
// bit-identical to the sequential Raytracer.Render.
func (wp *WorkerPool) Render() (*Framebuffer, RenderStats, error) {
	rt := wp.raytracer

	fb, err := NewFramebuffer(rt.width, rt.height)
	if err != nil {
		return nil, RenderStats{}, err
	}

	// One band per worker, last band may be short
	bandSize := (rt.height + wp.numWorkers - 1) / wp.numWorkers

	tasks := make(chan rowTask, wp.numWorkers)
	results := make(chan RenderStats, wp.numWorkers)

	var wg sync.WaitGroup
	for i := 0; i < wp.numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for task := range tasks {
				results <- rt.renderRows(fb, task.yMin, task.yMax)
			}
		}()
	}

	for y := 0; y < rt.height; y += bandSize {
		yMax := y + bandSize
		if yMax > rt.height {
			yMax = rt.height
		}
		tasks <- rowTask{yMin: y, yMax: yMax}
	}
	close(tasks)

	wg.Wait()
	close(results)

	var stats RenderStats
	for band := range results {
		stats.merge(band)
	}

	return fb, stats, nil
}
