package pip

import "runtime"

// Options configures engine construction.
type Options struct {
	// Workers sets the number of goroutines a batch is partitioned across.
	// If 0, defaults to runtime.NumCPU(). The value is fixed for the
	// lifetime of the engine and reused by every ClassifyBatch call.
	Workers int
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		Workers: runtime.NumCPU(),
	}
}
