package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"gopkg.in/yaml.v3"

	"github.com/svgar/svgar/internal/config"
	"github.com/svgar/svgar/internal/core/observability/log"
	"github.com/svgar/svgar/internal/injector"
	"github.com/svgar/svgar/internal/scenefile"
	"github.com/svgar/svgar/pkg/concurrent"
	"github.com/svgar/svgar/pkg/sequence"
)

func main() {
	configFile := flag.String("config", "", "Path to a YAML config file")
	format := flag.String("format", "", "Output format: json or yaml (default: json)")
	level := flag.String("log-level", "", "Log level: debug, info, warn, error, none")
	workers := flag.Int("workers", 0, "Documents resolved in parallel (default: NumCPU)")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] scene.yaml...\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() == 0 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configFile != "" {
		var err error
		cfg, err = config.Load(*configFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
			os.Exit(1)
		}
	}
	cfg.Apply(config.Flags{LogLevel: *level, Format: *format, Workers: *workers})
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rt := injector.InitializeRuntime(cfg)
	defer func() { _ = rt.Logger.Sync() }()

	if err := run(ctx, cfg, rt, flag.Args(), os.Stdout); err != nil {
		rt.Logger.Error("resolve failed", log.Error(err))
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, rt injector.Runtime, paths []string, out io.Writer) error {
	reports, err := concurrent.ParallelMap(ctx, sequence.From(paths), cfg.Workers,
		func(_ context.Context, path string) (scenefile.Report, error) {
			doc, err := scenefile.Load(path)
			if err != nil {
				return scenefile.Report{}, err
			}
			report, err := scenefile.Run(doc, rt.SceneOptions...)
			if err != nil {
				return scenefile.Report{}, fmt.Errorf("%s: %w", path, err)
			}
			report.Source = path

			rt.Logger.Info("scene resolved",
				log.String("source", path),
				log.Int("elements", len(report.Elements)),
				log.String("digest", report.Digest),
			)
			return report, nil
		})
	if err != nil {
		return err
	}

	switch cfg.Output.Format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(out)
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				_ = enc.Close()
				return err
			}
		}
		return enc.Close()
	default:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		for _, r := range reports {
			if err := enc.Encode(r); err != nil {
				return err
			}
		}
	}
	return nil
}
