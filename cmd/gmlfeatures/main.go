// Command gmlfeatures extracts geometric features from GML tag files and
// writes them as CSV, one row per tag.
//
// Usage:
//
//	gmlfeatures -dir tags/ -normalize -o features.csv
//	gmlfeatures -smooth a.gml b.gml
//
// Settings are read from GMLFEATURES_* environment variables and the
// optional -env file; flags override both.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/gmltools/gml"
	"github.com/gmltools/gml/features"
	"github.com/gmltools/gml/ingest"
	"github.com/gmltools/gml/internal/config"
)

var errNoInput = errors.New("gmlfeatures: no input, use -dir or file arguments")

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	err := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	cancel()

	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Encountered error(s): %s\n", err)
		os.Exit(1)
	}
}

type flagResults struct {
	dir    string
	env    string
	debug  bool
	pretty bool
	files  []string
}

func parseFlags(args []string, stderr io.Writer) (config.Config, flagResults, error) {
	fs := flag.NewFlagSet("gmlfeatures", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		res       flagResults
		workers   = fs.Int("workers", 0, "worker count (0 = GOMAXPROCS)")
		pattern   = fs.String("pattern", ingest.DefaultPattern, "file pattern used with -dir")
		normalize = fs.Bool("normalize", false, "normalize tags to the unit square")
		smooth    = fs.Bool("smooth", false, "smooth strokes before measuring")
		dedupe    = fs.Bool("dedupe", false, "drop tags identical to an earlier one")
		output    = fs.String("o", "", "output CSV file (default stdout)")
	)
	fs.StringVar(&res.dir, "dir", "", "directory of GML files")
	fs.StringVar(&res.env, "env", "", "optional .env file")
	fs.BoolVar(&res.debug, "debug", false, "verbose logging")
	fs.BoolVar(&res.pretty, "pretty", false, "human readable logs")

	if err := fs.Parse(args); err != nil {
		return config.Config{}, res, err
	}
	res.files = fs.Args()

	cfg, err := config.Load(res.env)
	if err != nil {
		return config.Config{}, res, err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "workers":
			cfg.Workers = *workers
		case "pattern":
			cfg.Pattern = *pattern
		case "normalize":
			cfg.Normalize = *normalize
		case "smooth":
			cfg.Smooth = *smooth
		case "dedupe":
			cfg.Dedupe = *dedupe
		case "o":
			cfg.Output = *output
		}
	})
	if res.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, res, err
	}
	return cfg, res, nil
}

func newLogger(w io.Writer, cfg config.Config, res flagResults) (zerolog.Logger, error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, errors.Wrap(err, "gmlfeatures: log level")
	}
	if res.pretty {
		w = zerolog.ConsoleWriter{Out: w}
	}
	return zerolog.New(w).Level(level).With().Timestamp().Logger(), nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cfg, res, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	log, err := newLogger(stderr, cfg, res)
	if err != nil {
		return err
	}
	if res.debug {
		gml.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
		defer gml.SetLogger(nil)
	}

	paths := res.files
	if res.dir != "" {
		found, err := ingest.Discover(res.dir, cfg.Pattern)
		if err != nil {
			return err
		}
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return errNoInput
	}

	docs, err := ingest.LoadFiles(ctx, paths, cfg.Workers)
	if err != nil {
		return err
	}
	loaded := len(docs)
	if cfg.Dedupe {
		docs = ingest.Dedupe(docs)
	}

	var opts []features.Option
	if cfg.Normalize {
		opts = append(opts, features.WithNormalization())
	}
	if cfg.Smooth {
		opts = append(opts, features.WithSmoothing())
	}
	ex := features.NewExtractor(cfg.Workers, opts...)
	defer ex.Close()
	sets := ex.ExtractAll(docs)

	missing := 0
	for _, s := range sets {
		if len(s.Missing) > 0 {
			missing++
		}
	}

	out := stdout
	if cfg.Output != "" {
		f, err := os.Create(cfg.Output)
		if err != nil {
			return errors.Wrap(err, "gmlfeatures: create output")
		}
		defer f.Close()
		out = f
	}
	if err := features.WriteCSV(out, sets); err != nil {
		return err
	}

	log.Info().
		Int("files", len(paths)).
		Int("loaded", loaded).
		Int("duplicates", loaded-len(docs)).
		Int("incomplete", missing).
		Int("workers", ex.Workers()).
		Str("output", cfg.Output).
		Msg("features written")
	return nil
}
