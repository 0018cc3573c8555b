package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/conway-lab/lifebench/internal/metric"
	"github.com/conway-lab/lifebench/pkg/bench"
	"github.com/conway-lab/lifebench/pkg/config"
	"github.com/conway-lab/lifebench/pkg/life"
)

var (
	configPath = flag.String("config", "cmd/bench/config.json", "Path to benchmark configuration file")
	verbosity  = flag.String("verbosity", "info", "Logging verbosity - choose from [info, debug, trace]")
)

func init() {
	flag.Parse()

	log.SetFormatter(&log.TextFormatter{
		TimestampFormat: time.StampMilli,
		FullTimestamp:   true,
	})
	log.SetOutput(os.Stdout)

	switch *verbosity {
	case "debug":
		log.SetLevel(log.DebugLevel)
	case "trace":
		log.SetLevel(log.TraceLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

func main() {
	cfg := config.ReadConfigurationFile(*configPath)

	if cfg.Playback {
		runPlayback(cfg)
		return
	}

	if cfg.IterationCount < 1 || cfg.NumTests < 1 || cfg.TestWidth < 1 || cfg.RowGrowth < 1 {
		log.Fatal("IterationCount, NumTests, TestWidth and RowGrowth must all be at least 1.")
	}

	exporter := metric.NewExporter()
	runner := bench.NewRunner(cfg, exporter)

	log.Infof("Running %d tests of %d iterations each", cfg.NumTests, cfg.IterationCount)
	runner.Run()

	exporter.WriteRunRecords(cfg.OutputRecordsPath)
	exporter.WriteTable(cfg.OutputTablePath)
}

func runPlayback(cfg config.BenchConfiguration) {
	grid := life.NewGrid(cfg.PlaybackRows, cfg.PlaybackCols, cfg.StartCells)
	workers := cfg.Workers
	if workers < 1 {
		workers = runtime.GOMAXPROCS(0)
	}

	for i := 0; i < cfg.IterationCount; i++ {
		fmt.Println(grid)
		fmt.Println()

		switch cfg.ProcessingType {
		case "Multi":
			grid.StepParallel(workers)
		case "Single":
			grid.StepSingle()
		default:
			log.Fatalf("Unknown processing type %q, choose Multi or Single.", cfg.ProcessingType)
		}

		time.Sleep(time.Duration(cfg.PlaybackDelayMs) * time.Millisecond)
	}
}
