package features

import (
	"github.com/gmltools/gml"
	"github.com/gmltools/gml/ingest"
	"github.com/gmltools/gml/internal/parallel"
)

// Extractor computes feature sets for many tags in parallel, one tag per
// task. Tags are independent immutable values, so no synchronization is
// needed beyond collecting the results.
//
// Thread safety: Extractor is safe for concurrent use until Close.
type Extractor struct {
	pool *parallel.WorkerPool
	opts options
}

// NewExtractor creates an Extractor with the given number of workers
// (GOMAXPROCS when workers <= 0).
func NewExtractor(workers int, opts ...Option) *Extractor {
	return &Extractor{
		pool: parallel.NewWorkerPool(workers),
		opts: buildOptions(opts),
	}
}

// ExtractAll returns the feature set of every document, in input order.
// Each set is named after its document's path.
func (e *Extractor) ExtractAll(docs []ingest.Document) []Set {
	sets := parallel.Map(e.pool, docs, func(doc ingest.Document) Set {
		return extract(doc.Path, doc.Tag, e.opts)
	})
	gml.Logger().Info("features: extracted", "tags", len(sets), "workers", e.pool.Workers())
	return sets
}

// Workers returns the number of workers.
func (e *Extractor) Workers() int {
	return e.pool.Workers()
}

// Close stops the worker pool. Close is safe to call multiple times.
func (e *Extractor) Close() {
	e.pool.Close()
}
