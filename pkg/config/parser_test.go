package config

import (
	"os"
	"strings"
	"testing"
)

func TestConfigParser(t *testing.T) {
	var pathToConfigFile = ""
	wd, _ := os.Getwd()

	if strings.HasSuffix(wd, "pkg/config") {
		pathToConfigFile = "../../"
	}
	pathToConfigFile += "cmd/bench/config.json"

	config := ReadConfigurationFile(pathToConfigFile)

	if config.IterationCount != 1000 ||
		config.NumTests != 5 ||
		config.TestWidth != 10 ||
		config.RowGrowth != 5 ||
		config.Workers != 0 ||
		config.OutputTablePath != "data/output.txt" ||
		config.OutputRecordsPath != "data/runs.csv" ||
		config.Playback != false ||
		config.PlaybackRows != 5 ||
		config.PlaybackCols != 10 ||
		config.ProcessingType != "Multi" {

		t.Error("Unexpected configuration read.")
	}

	if len(config.StartCells) != 5 {
		t.Error("Expected the glider seed from the configuration file.")
	}
}
