// Package main provides the CLI entry point for framecount.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"time"

	"github.com/alecthomas/kong"
	"github.com/ideamans/go-l10n"
	"github.com/mattn/go-isatty"

	"github.com/user/framecount/pkg/adapters/ffmpegdecoder"
	"github.com/user/framecount/pkg/adapters/logger"
	"github.com/user/framecount/pkg/adapters/mp4probe"
	"github.com/user/framecount/pkg/adapters/spinner"
	"github.com/user/framecount/pkg/analyzer"
	"github.com/user/framecount/pkg/config"
	"github.com/user/framecount/pkg/ports"
	"github.com/user/framecount/pkg/report"
)

// CLI defines the command-line interface with subcommands.
type CLI struct {
	Inspect InspectCmd `cmd:"" default:"withargs" help:"Inspect a video file and report frame-accurate duration statistics."`
	Version VersionCmd `cmd:"" help:"Show version information."`
}

// InspectCmd defines the inspect subcommand (also the default command).
type InspectCmd struct {
	Path    string `arg:"" optional:"" help:"Path to the input media file."`
	Threads string `arg:"" optional:"" help:"Decoder thread count (-1 = all logical cores, default: 1)."`

	Config    string  `short:"c" help:"YAML configuration file."`
	DrainTail bool    `help:"Also count frames still buffered in the decoder after the final packet."`
	BoxInfo   bool    `help:"Add MP4 box-level durations to the report (MP4 files only)."`
	NoColor   bool    `help:"Disable colored output."`
	LogLevel  *string `short:"l" help:"Log level (debug, info, warn, error)."`
	Quiet     bool    `short:"Q" help:"Suppress progress and log output."`
}

// VersionCmd shows version information.
type VersionCmd struct{}

var version = "dev"

func main() {
	cli := CLI{}

	ctx := kong.Parse(&cli,
		kong.Name("framecount"),
		kong.Description("Report frame-accurate duration statistics for a video file."),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}

// Run executes the inspect command.
func (cmd *InspectCmd) Run() error {
	cfg, err := cmd.buildConfig()
	if err != nil {
		return err
	}

	tty := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	var log ports.Logger
	if cfg.Quiet {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(cfg.LogLevel))
	}
	prog := newProgress(cfg.Quiet, tty, os.Stdout)

	color := !cfg.NoColor && tty

	start := time.Now()

	// A run without an input path cannot select a video stream.
	if cmd.Path == "" {
		return ffmpegdecoder.ErrNoVideoStream
	}

	var threads int
	var resolution config.ThreadResolution
	if cmd.Threads != "" {
		threads, resolution = config.ResolveThreads(cmd.Threads, runtime.NumCPU())
	} else {
		threads, resolution = config.ResolveThreadCount(cfg.Threads, runtime.NumCPU())
	}
	switch resolution {
	case config.ThreadAllCores:
		log.Info("Setting threading to the number of available cores: %d.", threads)
	case config.ThreadInvalid:
		log.Warn("invalid thread count provided. Defaulting to 1 thread.")
	}

	in, err := ffmpegdecoder.Open(cmd.Path)
	if err != nil {
		return err
	}
	defer in.Close()

	stream := in.VideoStream()
	log.Debug("selected video stream %d (%s, %dx%d)", stream.Index, stream.CodecName, stream.Width, stream.Height)

	dec, err := ffmpegdecoder.NewDecoder(in, threads)
	if err != nil {
		return err
	}
	defer dec.Close()

	stats, err := analyzer.New(log, analyzer.Options{DrainTail: cfg.DrainTail}).
		Run(in, dec, stream.Index, prog)
	if err != nil {
		return err
	}
	prog.Finish()

	rep := report.Report{
		DeclaredDuration: in.DeclaredDuration(),
		TimeBase:         stream.TimeBase,
		Stats:            stats,
		Elapsed:          time.Since(start),
	}

	if cfg.BoxInfo {
		rep.Box = probeBoxes(cmd.Path, log)
	}

	fmt.Print(rep.Text(color))
	return nil
}

// newProgress selects the progress indicator. The live spinner emits
// terminal control sequences, so quiet mode and redirected output both
// get the noop.
func newProgress(quiet, tty bool, out io.Writer) ports.Progress {
	if quiet || !tty {
		return spinner.NewNoop()
	}
	return spinner.New(out)
}

// buildConfig merges the config file (when given) with CLI overrides.
func (cmd *InspectCmd) buildConfig() (config.Config, error) {
	cfg := config.Defaults()
	if cmd.Config != "" {
		var err error
		cfg, err = config.LoadFromFile(cmd.Config)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
	}

	if cmd.DrainTail {
		cfg.DrainTail = true
	}
	if cmd.BoxInfo {
		cfg.BoxInfo = true
	}
	if cmd.NoColor {
		cfg.NoColor = true
	}
	if cmd.Quiet {
		cfg.Quiet = true
	}
	if cmd.LogLevel != nil {
		cfg.LogLevel = *cmd.LogLevel
	}

	return cfg, nil
}

// probeBoxes runs the MP4 box-level cross-check. Failures only skip
// the extra section; they never abort an otherwise successful run.
func probeBoxes(path string, log ports.Logger) *report.BoxInfo {
	info, err := mp4probe.Probe(path)
	if err != nil {
		if errors.Is(err, mp4probe.ErrNoMovieBox) {
			log.Warn("no moov box found; skipping box info")
		} else {
			log.Warn("not an MP4 file; skipping box info")
		}
		return nil
	}

	return &report.BoxInfo{
		Timescale:       info.Timescale,
		DurationTicks:   info.DurationTicks,
		DurationMs:      info.DurationMs(),
		TrackDurationMs: info.TrackDurationMs(),
	}
}

// Run executes the version command.
func (cmd *VersionCmd) Run() error {
	fmt.Println(l10n.F("framecount version %s", version))
	return nil
}
