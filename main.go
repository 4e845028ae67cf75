// Command zeeklog reads Zeek tab-separated log files as typed tables:
// it parses the self-describing header of the first file, decodes rows
// leniently across the whole file set, and either renders them (table, csv,
// json) or loads them into a database.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/mohorko/zeeklog/core"
	"github.com/mohorko/zeeklog/internal/logger"
	"github.com/mohorko/zeeklog/output"
	"github.com/mohorko/zeeklog/output/format"
	"github.com/mohorko/zeeklog/sink"
	"github.com/mohorko/zeeklog/source"
)

func main() {
	flags := flag.NewFlagSet("zeeklog", flag.ExitOnError)
	flags.Usage = func() {
		fmt.Fprintln(flags.Output(), "usage: zeeklog [flags] <glob>")
		flags.PrintDefaults()
	}

	configPath := flags.String("config", "", "path to a TOML config file")
	formatName := flags.String("format", "table", "output format: table, csv or json")
	outputPath := flags.String("output", "", "write formatted output to a file instead of stdout")
	batchSize := flags.Int("batch-size", core.DefaultBatchSize, "rows per scan batch")
	filename := flags.Bool("filename", false, "append the source file path as a trailing column")
	debug := flags.Bool("debug", false, "enable debug logging")
	export := flags.String("export", "", "load rows into a database instead of formatting ("+strings.Join(sink.Targets(), ", ")+")")
	dsn := flags.String("dsn", "", "destination database connection string")
	table := flags.String("table", "", "destination table name (defaults to the stream path)")
	_ = flags.Parse(os.Args[1:])

	cfg := defaultConfig()
	if *configPath != "" {
		if err := loadConfig(*configPath, &cfg); err != nil {
			fmt.Fprintf(os.Stderr, "zeeklog: %v\n", err)
			os.Exit(1)
		}
	}

	// explicitly set flags win over config file values
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "format":
			cfg.Format = *formatName
		case "output":
			cfg.Output = *outputPath
		case "batch-size":
			cfg.BatchSize = *batchSize
		case "filename":
			cfg.Filename = *filename
		case "debug":
			cfg.Debug = *debug
		case "export":
			cfg.Export = *export
		case "dsn":
			cfg.DSN = *dsn
		case "table":
			cfg.Table = *table
		}
	})

	if err := run(cfg, flags.Arg(0)); err != nil {
		fmt.Fprintf(os.Stderr, "zeeklog: %v\n", err)
		os.Exit(1)
	}
}

func run(cfg config, pattern string) error {
	if pattern == "" {
		return errors.New("missing glob pattern, see -h")
	}

	log := logger.New(os.Stderr, cfg.Debug)

	files, err := source.Resolve(pattern)
	if err != nil {
		return err
	}

	opts := []core.ScannerOption{
		core.WithBatchSize(cfg.BatchSize),
		core.WithLogger(log),
	}
	if cfg.Filename {
		opts = append(opts, core.WithFilenameColumn())
	}

	scanner, err := core.NewScanner(files, source.NewFS(), opts...)
	if err != nil {
		return err
	}
	defer scanner.Close()

	if cfg.Export != "" {
		return exportScan(cfg, scanner, log)
	}
	return formatScan(cfg, scanner, log)
}

func exportScan(cfg config, scanner *core.Scanner, log core.Logger) error {
	table := cfg.Table
	if table == "" {
		table = scanner.Header().Path
	}
	if table == "" {
		table = "zeek"
	}

	loader, err := sink.NewLoader(cfg.Export, cfg.DSN, table, sink.WithLogger(log))
	if err != nil {
		return err
	}
	defer loader.Close()

	_, err = loader.Load(context.Background(), scanner)
	return err
}

func formatScan(cfg config, scanner *core.Scanner, log core.Logger) error {
	var formatter output.Formatter
	switch cfg.Format {
	case "json":
		formatter = format.NewJSON()
	case "csv":
		formatter = format.NewCSV()
	case "table":
		formatter = format.NewTable()
	default:
		return fmt.Errorf("%q is not a supported format", cfg.Format)
	}

	result, err := output.Drain(core.NewResultStream(scanner))
	if err != nil {
		return err
	}

	if cfg.Output != "" {
		return output.NewFile(cfg.Output, formatter, log).Write(result)
	}
	return output.NewWriter(os.Stdout, formatter).Write(result)
}
