package main

import (
	"flag"
	"os"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/conway-lab/lifebench/pkg/figure"
	"github.com/conway-lab/lifebench/pkg/table"
)

var (
	inputPath  = flag.String("i", "data/output.txt", "Path to the benchmark table")
	outputPath = flag.String("o", "data/figure.png", "Path for the output PNG")
	count      = flag.Int("count", 0, "How many data columns to use, 0 means all")
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
	matrix, err := table.Load(*inputPath)
	if err != nil {
		log.Fatal(err)
	}

	columns := matrix.DataColumns()
	if *count != 0 {
		if *count >= 1 && *count <= columns {
			columns = *count
		} else {
			log.Warnf("Requested count %d is outside [1, %d], using all %d columns", *count, columns, columns)
		}
	}

	specs, err := figure.SelectLayout(columns)
	if err != nil {
		log.Fatal(err)
	}
	log.Infof("Rendering %d panel(s) from %d data columns", len(specs), columns)

	fig, err := figure.Compose(specs, matrix)
	if err != nil {
		log.Fatal(err)
	}

	if err := fig.Save(*outputPath); err != nil {
		log.Fatal(err)
	}
}
