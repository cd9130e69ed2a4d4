package colormatrix

// TransformerOption configures a Transformer during creation.
//
// Example:
//
//	// Sequential, one transform at a time
//	t := colormatrix.NewTransformer()
//
//	// Split large images across all CPUs
//	t := colormatrix.NewTransformer(colormatrix.WithWorkers(0))
type TransformerOption func(*transformerOptions)

// transformerOptions holds optional configuration for Transformer creation.
type transformerOptions struct {
	workers           int
	parallelThreshold int
}

// DefaultParallelThreshold is the pixel count below which a Transformer
// never splits work.
const DefaultParallelThreshold = 64 * 1024

// defaultTransformerOptions returns the default transformer options.
func defaultTransformerOptions() transformerOptions {
	return transformerOptions{
		workers:           1,
		parallelThreshold: DefaultParallelThreshold,
	}
}

// WithWorkers sets how many goroutines a Transformer splits each image
// across. 1 (the default) keeps every transform on the calling goroutine;
// 0 or a negative value means GOMAXPROCS.
func WithWorkers(n int) TransformerOption {
	return func(o *transformerOptions) {
		o.workers = n
	}
}

// WithParallelThreshold sets the minimum number of pixels per worker.
// Images smaller than this run on a single goroutine.
func WithParallelThreshold(pixels int) TransformerOption {
	return func(o *transformerOptions) {
		if pixels > 0 {
			o.parallelThreshold = pixels
		}
	}
}
