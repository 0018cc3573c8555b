package config

import (
	"encoding/json"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/conway-lab/lifebench/pkg/life"
)

type BenchConfiguration struct {
	// Every test runs IterationCount generations; the board grows by
	// RowGrowth rows per test while the width stays fixed.
	IterationCount int `json:"IterationCount"`
	NumTests       int `json:"NumTests"`
	TestWidth      int `json:"TestWidth"`
	RowGrowth      int `json:"RowGrowth"`

	// Workers used by the multiprocessed variant. 0 means GOMAXPROCS.
	Workers int `json:"Workers"`

	StartCells []life.Cell `json:"StartCells"`

	OutputTablePath   string `json:"OutputTablePath"`
	OutputRecordsPath string `json:"OutputRecordsPath"`

	// Playback mode runs one board on the console instead of generating data.
	Playback        bool   `json:"Playback"`
	PlaybackRows    int    `json:"PlaybackRows"`
	PlaybackCols    int    `json:"PlaybackCols"`
	PlaybackDelayMs int    `json:"PlaybackDelayMs"`
	ProcessingType  string `json:"ProcessingType"`
}

func ReadConfigurationFile(path string) BenchConfiguration {
	byteValue, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}

	var config BenchConfiguration
	err = json.Unmarshal(byteValue, &config)
	if err != nil {
		log.Fatal(err)
	}

	if config.StartCells == nil {
		config.StartCells = life.Glider
	}

	return config
}
