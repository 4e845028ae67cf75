package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/mohorko/zeeklog/core"
)

type config struct {
	Format    string
	Output    string
	BatchSize int
	Filename  bool
	Debug     bool
	Export    string
	DSN       string
	Table     string
}

func defaultConfig() config {
	return config{
		Format:    "table",
		BatchSize: core.DefaultBatchSize,
	}
}

type fileConfig struct {
	Format    string `toml:"format"`
	Output    string `toml:"output"`
	BatchSize int    `toml:"batch_size"`
	Filename  bool   `toml:"filename"`
	Debug     bool   `toml:"debug"`
	Export    string `toml:"export"`
	DSN       string `toml:"dsn"`
	Table     string `toml:"table"`
}

// loadConfig overlays values from a TOML file onto cfg. Only keys present in
// the file are applied, so flag values parsed later still win.
func loadConfig(path string, cfg *config) error {
	var raw fileConfig
	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if meta.IsDefined("format") {
		cfg.Format = raw.Format
	}
	if meta.IsDefined("output") {
		cfg.Output = raw.Output
	}
	if meta.IsDefined("batch_size") && raw.BatchSize > 0 {
		cfg.BatchSize = raw.BatchSize
	}
	if meta.IsDefined("filename") {
		cfg.Filename = raw.Filename
	}
	if meta.IsDefined("debug") {
		cfg.Debug = raw.Debug
	}
	if meta.IsDefined("export") {
		cfg.Export = raw.Export
	}
	if meta.IsDefined("dsn") {
		cfg.DSN = raw.DSN
	}
	if meta.IsDefined("table") {
		cfg.Table = raw.Table
	}

	return nil
}
