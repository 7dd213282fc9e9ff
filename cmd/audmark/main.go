// SPDX-License-Identifier: EPL-2.0

// Command audmark embeds and extracts text watermarks in audio files.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ik5/audmark"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("audmark", flag.ContinueOnError)
	quiet := fs.Bool("quiet", false, "log errors only")
	fs.Usage = usage

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}

		return 2
	}

	rest := fs.Args()
	if len(rest) < 1 {
		usage()
		return 2
	}

	logger := newLogger(*quiet)

	var err error
	switch rest[0] {
	case "embed":
		err = cmdEmbed(logger, rest[1:])
	case "extract":
		err = cmdExtract(rest[1:])
	case "prepare":
		err = cmdPrepare(logger, rest[1:])
	case "batch":
		err = cmdBatch(logger, rest[1:])
	case "help":
		usage()
		return 0
	default:
		fmt.Fprintf(os.Stderr, "audmark: unknown command %q\n", rest[0])
		usage()
		return 2
	}

	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		logger.Error().Err(err).Msg("command failed")
		return 1
	}

	return 0
}

func usage() {
	fmt.Fprint(os.Stderr, `usage: audmark [-quiet] <command> [flags]

commands:
  embed    -in carrier.wav -message text [-out marked.wav] [-verify]
  extract  -in marked.wav
  prepare  -in input.{wav,aiff,mp3,ogg} -out carrier.wav [-rate hz] [-mono]
  batch    -config jobs.toml [-jobs n]

embed writes the marked copy to -in when -out is omitted. extract prints
the recovered message on stdout. prepare converts any decodable input
into a lossless carrier. batch runs the [[file]] jobs from a TOML file
concurrently. -quiet silences everything but errors.
`)
}

func newLogger(quiet bool) zerolog.Logger {
	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}

	logger := zerolog.New(output).With().Timestamp().Str("app", "audmark").Logger()
	if quiet {
		logger = logger.Level(zerolog.ErrorLevel)
	}

	return logger
}

func cmdEmbed(logger zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("embed", flag.ContinueOnError)
	in := fs.String("in", "", "carrier audio file")
	out := fs.String("out", "", "marked output file (defaults to -in)")
	message := fs.String("message", "", "text to embed")
	verify := fs.Bool("verify", false, "re-extract after embedding and compare")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" || *message == "" {
		fs.Usage()
		return errors.New("embed: -in and -message are required")
	}

	if *out == "" {
		*out = *in
	}

	if err := audmark.EmbedFile(*in, *out, *message); err != nil {
		return err
	}

	logger.Info().Str("in", *in).Str("out", *out).Int("bytes", len(*message)).Msg("message embedded")

	if *verify {
		got, err := audmark.ExtractFile(*out)
		if err != nil {
			return fmt.Errorf("verifying %s: %w", *out, err)
		}
		if got != *message {
			return fmt.Errorf("verifying %s: message read back as %q", *out, got)
		}

		logger.Info().Str("out", *out).Msg("message verified")
	}

	return nil
}

func cmdExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	in := fs.String("in", "", "marked audio file")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" {
		fs.Usage()
		return errors.New("extract: -in is required")
	}

	message, err := audmark.ExtractFile(*in)
	if err != nil {
		return err
	}

	// The payload goes to stdout so it can be piped; logs stay on stderr.
	fmt.Println(message)

	return nil
}

func cmdPrepare(logger zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("prepare", flag.ContinueOnError)
	in := fs.String("in", "", "input audio file")
	out := fs.String("out", "", "carrier output file")
	rate := fs.Int("rate", 0, "target sample rate (0 keeps the source rate)")
	mono := fs.Bool("mono", false, "downmix to a single channel")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" || *out == "" {
		fs.Usage()
		return errors.New("prepare: -in and -out are required")
	}

	if err := audmark.PrepareCarrierFile(*in, *out, *rate, *mono); err != nil {
		return err
	}

	logger.Info().Str("in", *in).Str("out", *out).Int("rate", *rate).Bool("mono", *mono).Msg("carrier prepared")

	return nil
}

func cmdBatch(logger zerolog.Logger, args []string) error {
	fs := flag.NewFlagSet("batch", flag.ContinueOnError)
	configPath := fs.String("config", "audmark.toml", "batch job description")
	jobs := fs.Int("jobs", 0, "concurrent jobs (0 uses the config value, then one per CPU)")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := loadBatchConfig(*configPath)
	if err != nil {
		return err
	}

	if *jobs > 0 {
		cfg.Jobs = *jobs
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return runBatch(ctx, logger, cfg)
}

// runBatch marks every configured file, keeping going when a single job
// fails. Interrupts cancel the jobs that have not started yet.
func runBatch(ctx context.Context, logger zerolog.Logger, cfg *batchConfig) error {
	limit := cfg.Jobs
	if limit < 1 {
		limit = runtime.NumCPU()
	}

	g := new(errgroup.Group)
	g.SetLimit(limit)

	var failed atomic.Int32

	for _, job := range cfg.Files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := audmark.EmbedFile(job.In, job.Out, job.Message); err != nil {
				failed.Add(1)
				logger.Error().Err(err).Str("in", job.In).Msg("job failed")

				return nil
			}

			logger.Info().Str("in", job.In).Str("out", job.Out).Msg("job done")

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fmt.Errorf("batch interrupted: %w", err)
	}

	if n := failed.Load(); n > 0 {
		return fmt.Errorf("batch: %d of %d jobs failed", n, len(cfg.Files))
	}

	logger.Info().Int("jobs", len(cfg.Files)).Msg("batch complete")

	return nil
}
