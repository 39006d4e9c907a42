package seq_modeller

import (
	"compress/gzip"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"seq_modeller_go/config"
	"seq_modeller_go/logger"
)

const (
	envSeed   = "SEQ_MODELLER_SEED"
	envOutDir = "SEQ_MODELLER_OUT_DIR"
)

type options struct {
	configPath string
	seed       string
	outFasta   string
	outReport  string
	outConfig  string
	outPlot    string
	only       string
	logLevel   string
	gzip       bool
	overrides  config.Overrides
}

// Run is the seq_modeller entry point used by the tool dispatcher.
func Run(args []string) {
	if err := run(args, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func parseOptions(args []string) (*options, error) {
	fs := flag.NewFlagSet("seq_modeller", flag.ContinueOnError)
	opts := &options{}

	fs.StringVar(&opts.configPath, "config", "", "Run configuration (JSON)")
	fs.StringVar(&opts.seed, "seed", "", "Seed override (default: "+envSeed+", then the configured seed)")
	fs.StringVar(&opts.outFasta, "out_fasta", "", "Output FASTA file (default: stdout)")
	fs.StringVar(&opts.outReport, "out_report", "", "Output report file")
	fs.StringVar(&opts.outConfig, "out_config", "", "Output file for the resolved configuration")
	fs.StringVar(&opts.outPlot, "out_plot", "", "Output SVG with the length distribution")
	fs.StringVar(&opts.only, "only", "all", "Artifacts to produce: all, report or config")
	fs.StringVar(&opts.logLevel, "log_level", "", "Log level: debug, info, warn, error")
	fs.BoolVar(&opts.gzip, "gzip", false, "Compress the FASTA output (.gz)")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if opts.configPath == "" {
		fs.Usage()
		return nil, errors.New("-config is required")
	}
	switch opts.only {
	case "all", "report", "config":
	default:
		return nil, fmt.Errorf("unsupported -only value: %s", opts.only)
	}

	overrides, err := config.ParseArgs(fs.Args())
	if err != nil {
		return nil, fmt.Errorf("%w (use -h to view valid flags)", err)
	}
	opts.overrides = overrides
	return opts, nil
}

func run(args []string, stdout io.Writer) error {
	opts, err := parseOptions(args)
	if err != nil {
		return err
	}
	if opts.logLevel != "" {
		level, err := logger.ParseLevel(opts.logLevel)
		if err != nil {
			return err
		}
		if err := logger.InitLogger(level); err != nil {
			return err
		}
	}

	cfg, err := LoadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if err := applyOverrides(cfg, opts.overrides); err != nil {
		return err
	}
	override, err := seedOverride(opts.seed)
	if err != nil {
		return err
	}

	gen, err := NewGenerator(cfg, override)
	if err != nil {
		return err
	}
	runID := uuid.NewString()
	logger.Info("Starting generation",
		zap.String("run_id", runID),
		zap.String("config", opts.configPath),
		zap.Int64("seed", gen.Seed()),
		zap.Int("batches", len(cfg.Batches)))

	if opts.only == "config" {
		echo, err := EchoConfig(cfg, gen.Seed())
		if err != nil {
			return err
		}
		return emit(stdout, resolvePath(opts.outConfig), echo, false, runID)
	}

	res, err := gen.Run()
	if err != nil {
		return err
	}
	logger.Info("Generation finished",
		zap.String("run_id", runID),
		zap.Int("sequences", res.SequenceCount()))

	if opts.only == "report" {
		return emit(stdout, resolvePath(opts.outReport), []byte(res.ReportText()), false, runID)
	}

	if err := emit(stdout, resolvePath(opts.outFasta), []byte(res.FASTA()), opts.gzip, runID); err != nil {
		return err
	}
	if opts.outReport != "" {
		if err := emit(stdout, resolvePath(opts.outReport), []byte(res.ReportText()), false, runID); err != nil {
			return err
		}
	}
	if opts.outConfig != "" {
		echo, err := res.ConfigEcho()
		if err != nil {
			return err
		}
		if err := emit(stdout, resolvePath(opts.outConfig), echo, false, runID); err != nil {
			return err
		}
	}
	if opts.outPlot != "" {
		svg, err := LengthPlotSVG(res)
		if err != nil {
			return err
		}
		if err := emit(stdout, resolvePath(opts.outPlot), svg, false, runID); err != nil {
			return err
		}
	}
	return nil
}

// seedOverride reads -seed, falling back to the environment.
func seedOverride(flagValue string) (*int64, error) {
	v := flagValue
	if v == "" {
		v = os.Getenv(envSeed)
	}
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid seed %q: %w", v, err)
	}
	return &n, nil
}

// applyOverrides replaces id_padding, seq_wrap or seed of a loaded
// configuration and validates the result again.
func applyOverrides(cfg *Configuration, overrides config.Overrides) error {
	for key, val := range overrides {
		switch key {
		case "id_padding":
			n, err := strconv.Atoi(val)
			if err != nil {
				return configErr(key, "must be an integer, got %q", val)
			}
			cfg.IDPadding = n
		case "seq_wrap":
			if val == "false" {
				cfg.SeqWrap = 0
				continue
			}
			n, err := strconv.Atoi(val)
			if err != nil {
				return configErr(key, "must be an integer or false, got %q", val)
			}
			cfg.SeqWrap = n
		case "seed":
			if val == "false" {
				cfg.Seed = nil
				continue
			}
			n, err := strconv.ParseInt(val, 10, 64)
			if err != nil {
				return configErr(key, "must be an integer or false, got %q", val)
			}
			cfg.Seed = &n
		default:
			return configErr(key, "cannot be overridden from the command line")
		}
	}
	return cfg.Validate()
}

func resolvePath(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	if dir := os.Getenv(envOutDir); dir != "" {
		return filepath.Join(dir, path)
	}
	return path
}

// emit writes data to path, or to stdout when path is empty.
func emit(stdout io.Writer, path string, data []byte, compress bool, runID string) error {
	if path == "" {
		if compress {
			return errors.New("cannot gzip to stdout, specify -out_fasta")
		}
		_, err := stdout.Write(data)
		return err
	}

	if compress {
		path += ".gz"
		if err := writeGzip(path, data); err != nil {
			return err
		}
	} else if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}
	logger.Info("Wrote artifact", zap.String("run_id", runID), zap.String("path", path))
	return nil
}

// writeGzip compresses data into path. The file's close error is returned
// so a failed flush to disk is not lost.
func writeGzip(path string, data []byte) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	gz := gzip.NewWriter(file)
	if _, err := gz.Write(data); err != nil {
		file.Close()
		return fmt.Errorf("error writing compressed data: %w", err)
	}
	if err := gz.Close(); err != nil {
		file.Close()
		return fmt.Errorf("error writing compressed data: %w", err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("error closing file: %w", err)
	}
	return nil
}
