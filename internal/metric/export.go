package metric

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gocarina/gocsv"
	log "github.com/sirupsen/logrus"
)

// Modes of a benchmark run.
const (
	ModeMulti  = "multi"
	ModeSingle = "single"
)

// RunRecord is one timed benchmark run: IterationCount generations of one
// board size in one processing mode.
type RunRecord struct {
	RunID          string  `csv:"runID"`
	Mode           string  `csv:"mode"`
	Rows           int     `csv:"rows"`
	Cols           int     `csv:"cols"`
	CellCount      int     `csv:"cellCount"`
	Iterations     int     `csv:"iterations"`
	AvgIterationMs float64 `csv:"avgIterationMs"`
}

type Exporter struct {
	mutex      sync.Mutex
	runRecords []RunRecord
}

func NewExporter() *Exporter {
	return &Exporter{runRecords: []RunRecord{}}
}

func (ep *Exporter) ReportRun(record RunRecord) {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	ep.runRecords = append(ep.runRecords, record)
}

// WriteRunRecords exports every reported run as CSV.
func (ep *Exporter) WriteRunRecords(path string) {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	if err := gocsv.MarshalFile(&ep.runRecords, f); err != nil {
		log.Fatal(err)
	}
	log.Infof("Exported %d run records to %s", len(ep.runRecords), path)
}

// WriteTable writes the three-row benchmark table the plotter consumes:
// multiprocessed times, singleprocessed times, cell counts. Column 0 of each
// row is the row index, which the plotter treats as a label and skips.
func (ep *Exporter) WriteTable(path string) {
	ep.mutex.Lock()
	defer ep.mutex.Unlock()

	multiTimes := ep.seriesLocked(ModeMulti, func(r RunRecord) float64 { return r.AvgIterationMs })
	singleTimes := ep.seriesLocked(ModeSingle, func(r RunRecord) float64 { return r.AvgIterationMs })
	cellCounts := ep.seriesLocked(ModeMulti, func(r RunRecord) float64 { return float64(r.CellCount) })

	f, err := os.Create(path)
	if err != nil {
		log.Fatal(err)
	}
	defer f.Close()

	for i, row := range [][]float64{multiTimes, singleTimes, cellCounts} {
		fields := make([]string, 0, len(row)+1)
		fields = append(fields, fmt.Sprintf("%d", i))
		for _, v := range row {
			fields = append(fields, fmt.Sprintf("%g", v))
		}
		if _, err := fmt.Fprintln(f, strings.Join(fields, " ")); err != nil {
			log.Fatal(err)
		}
	}
	log.Infof("Wrote benchmark table with %d data columns to %s", len(cellCounts), path)
}

func (ep *Exporter) seriesLocked(mode string, value func(RunRecord) float64) []float64 {
	var out []float64
	for _, r := range ep.runRecords {
		if r.Mode == mode {
			out = append(out, value(r))
		}
	}
	return out
}
