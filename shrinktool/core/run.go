package core

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"
	"github.com/fatih/color"

	suppose "github.com/synadia-labs/suppose.go/runtime"
)

// Options configures a minimization run.
type Options struct {
	// Command is the check command; the candidate file path is appended
	// as its last argument. A non-zero exit status means the candidate
	// still reproduces the failure.
	Command []string
	// Timeout bounds each candidate run. A candidate that times out is
	// treated as not reproducing the failure.
	Timeout time.Duration
	Verbose bool
}

// fileConfig mirrors the TOML config file for the min command.
//
//	command = ["./crashcheck", "--strict"]
//	timeout = "10s"
type fileConfig struct {
	Command []string `toml:"command"`
	Timeout string   `toml:"timeout"`
}

// LoadConfig reads min-command defaults from a TOML file.
func LoadConfig(path string) (Options, error) {
	var fc fileConfig
	if _, err := toml.DecodeFile(path, &fc); err != nil {
		return Options{}, fmt.Errorf("config %q: %w", path, err)
	}
	opts := Options{Command: fc.Command}
	if fc.Timeout != "" {
		d, err := ParseTimeout(fc.Timeout)
		if err != nil {
			return Options{}, fmt.Errorf("config %q: %w", path, err)
		}
		opts.Timeout = d
	}
	return opts, nil
}

// ParseTimeout parses a positive duration such as "10s" or "2m".
func ParseTimeout(s string) (time.Duration, error) {
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("timeout %q: must be positive", s)
	}
	return d, nil
}

// Run minimizes the bytes in inputPath as far as the check command keeps
// failing on them, then writes the result to outputPath. The original
// input must fail the check, otherwise there is nothing to shrink.
func Run(inputPath, outputPath string, opts Options) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}

	workDir, err := os.MkdirTemp("", "shrinktool-*")
	if err != nil {
		return err
	}
	defer os.RemoveAll(workDir)
	candPath := filepath.Join(workDir, "candidate")

	verbose := func(format string, args ...any) {}
	if opts.Verbose {
		note := color.New(color.FgYellow)
		verbose = func(format string, args ...any) {
			note.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	runs := 0
	pred := func(cand []byte) bool {
		runs++
		failing, err := checkFails(candPath, cand, opts)
		if err != nil {
			verbose("run %d: %d bytes: %v", runs, len(cand), err)
			return false
		}
		if failing {
			verbose("run %d: %d bytes: still failing", runs, len(cand))
		}
		return failing
	}

	if !pred(data) {
		return fmt.Errorf("%s: check command did not fail on the original input", inputPath)
	}

	min := suppose.MinimizeBytes(data, pred)
	verbose("minimized %d -> %d bytes in %d runs", len(data), len(min), runs)

	if err := os.WriteFile(outputPath, min, 0o644); err != nil {
		return err
	}
	if opts.Verbose {
		color.New(color.FgGreen).Fprintf(os.Stderr, "wrote %s (%d bytes)\n", outputPath, len(min))
	}
	return nil
}

// checkFails writes cand to candPath and runs the check command on it.
// It reports whether the command exited with a non-zero status.
func checkFails(candPath string, cand []byte, opts Options) (bool, error) {
	if err := os.WriteFile(candPath, cand, 0o644); err != nil {
		return false, err
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	args := append(append([]string{}, opts.Command[1:]...), candPath)
	cmd := exec.CommandContext(ctx, opts.Command[0], args...)
	cmd.Stdout = nil
	cmd.Stderr = nil

	err := cmd.Run()
	if err == nil {
		return false, nil
	}
	if ctx.Err() != nil {
		return false, fmt.Errorf("check timed out after %s", opts.Timeout)
	}
	if _, ok := err.(*exec.ExitError); ok {
		return true, nil
	}
	return false, err
}

// Diag prints the diagnostic rendering of a pool file to stdout.
func Diag(inputPath string) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(os.Stdout, suppose.DiagPool(suppose.PoolOf(data)))
	return err
}

// WriteRandom writes size bytes of seeded pseudo-randomness to outputPath,
// or to stdout when outputPath is empty.
func WriteRandom(outputPath string, seed uint64, size int64) error {
	n, err := safecast.Convert[int](size)
	if err != nil {
		return fmt.Errorf("size %d: %w", size, err)
	}
	if n < 0 {
		return fmt.Errorf("size %d: must not be negative", size)
	}

	data := suppose.SeededPool(seed, n).Buffer()
	if outputPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
