package bench

import (
	"runtime"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/conway-lab/lifebench/internal/metric"
	"github.com/conway-lab/lifebench/pkg/config"
	"github.com/conway-lab/lifebench/pkg/life"
)

// Runner times Game of Life generations over a series of growing boards,
// once with the parallel stepper and once on a single goroutine per board
// size, and reports every run to the exporter.
type Runner struct {
	cfg      config.BenchConfiguration
	exporter *metric.Exporter
	workers  int
}

func NewRunner(cfg config.BenchConfiguration, exporter *metric.Exporter) *Runner {
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}
	return &Runner{cfg: cfg, exporter: exporter, workers: workers}
}

// Run executes every configured test. The board width stays fixed while the
// row count grows by RowGrowth per test, so the cell count scales linearly
// across tests.
func (r *Runner) Run() {
	for t := 1; t <= r.cfg.NumTests; t++ {
		rows := t * r.cfg.RowGrowth
		cols := r.cfg.TestWidth

		for _, mode := range []string{metric.ModeMulti, metric.ModeSingle} {
			r.exporter.ReportRun(r.timeRun(rows, cols, mode))
		}
	}
}

// timeRun seeds a fresh board and times IterationCount generations. Each
// mode gets its own board so both start from the same seed state.
func (r *Runner) timeRun(rows, cols int, mode string) metric.RunRecord {
	grid := life.NewGrid(rows, cols, r.cfg.StartCells)

	start := time.Now()
	for i := 0; i < r.cfg.IterationCount; i++ {
		if mode == metric.ModeMulti {
			grid.StepParallel(r.workers)
		} else {
			grid.StepSingle()
		}
	}
	elapsed := time.Since(start)

	record := metric.RunRecord{
		RunID:          uuid.New().String(),
		Mode:           mode,
		Rows:           rows,
		Cols:           cols,
		CellCount:      grid.CellCount(),
		Iterations:     r.cfg.IterationCount,
		AvgIterationMs: elapsed.Seconds() * 1000 / float64(r.cfg.IterationCount),
	}

	log.Debugf("Timed %s run on %dx%d board: %.4f ms/iteration",
		mode, rows, cols, record.AvgIterationMs)
	return record
}
