package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// fileConfig is the on-disk shape of a batch job file. Top-level values
// act as defaults for [[file]] entries that leave them out.
type fileConfig struct {
	Message   string      `toml:"message"`
	OutputDir string      `toml:"output_dir"`
	Jobs      int         `toml:"jobs"`
	Files     []fileEntry `toml:"file"`
}

type fileEntry struct {
	In      string `toml:"in"`
	Out     string `toml:"out"`
	Message string `toml:"message"`
}

type batchJob struct {
	In      string
	Out     string
	Message string
}

type batchConfig struct {
	Jobs  int
	Files []batchJob
}

// loadBatchConfig reads a TOML job file and resolves every entry into a
// runnable job. Relative paths count from the config file's directory.
// An entry without its own out lands in output_dir, or is marked in
// place when output_dir is not set either.
func loadBatchConfig(path string) (*batchConfig, error) {
	var raw fileConfig

	meta, err := toml.DecodeFile(path, &raw)
	if err != nil {
		return nil, fmt.Errorf("load batch config: %w", err)
	}

	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("load batch config: unknown key %q", undecoded[0])
	}

	if len(raw.Files) == 0 {
		return nil, errors.New("load batch config: no [[file]] entries")
	}

	base := filepath.Dir(path)
	resolve := func(p string) string {
		if p == "" || filepath.IsAbs(p) {
			return p
		}

		return filepath.Join(base, p)
	}

	outputDir := resolve(strings.TrimSpace(raw.OutputDir))

	cfg := &batchConfig{Jobs: raw.Jobs}

	for i, f := range raw.Files {
		in := resolve(strings.TrimSpace(f.In))
		if in == "" {
			return nil, fmt.Errorf("load batch config: [[file]] entry %d has no in path", i+1)
		}

		out := resolve(strings.TrimSpace(f.Out))
		if out == "" {
			if outputDir == "" {
				out = in
			} else {
				out = filepath.Join(outputDir, filepath.Base(in))
			}
		}

		// Messages are payload, not paths: taken verbatim, no trimming.
		message := f.Message
		if message == "" {
			message = raw.Message
		}
		if message == "" {
			return nil, fmt.Errorf("load batch config: [[file]] entry %d has no message and no top-level default", i+1)
		}

		cfg.Files = append(cfg.Files, batchJob{In: in, Out: out, Message: message})
	}

	return cfg, nil
}
