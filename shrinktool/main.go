package main

import (
	"errors"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/synadia-labs/suppose.go/shrinktool/core"
)

// CLI defines the shrinktool command-line interface.
//
// Two subcommands:
//   - min: shrink a failing input file against an external check command
//   - rand: emit a reproducible random byte pool
//
// Shared flags live at the top level; per-command defaults can also come
// from a TOML config file.
type CLI struct {
	Config  string `short:"c" help:"TOML config file with defaults for the min command" type:"existingfile"`
	Verbose bool   `short:"v" help:"Enable verbose diagnostics"`

	Min  MinCmd  `cmd:"" help:"Minimize a failing input file against a check command."`
	Rand RandCmd `cmd:"" help:"Write a seeded random byte pool."`
	Diag DiagCmd `cmd:"" help:"Render a pool file as a hex dump with provenance."`
}

// MinCmd shrinks the bytes in Input as far as the check command keeps
// failing on them. The check command is run once per candidate with the
// candidate file path appended to its arguments; a non-zero exit status
// means the candidate still reproduces the failure.
type MinCmd struct {
	Input   string   `arg:"" help:"File holding the failing input" type:"existingfile"`
	Command []string `short:"x" name:"cmd" help:"Check command and arguments (candidate path is appended)"`
	Output  string   `short:"o" help:"Output file (defaults to {input}.min)"`
	Timeout string   `short:"t" help:"Per-candidate timeout, e.g. 10s (default 30s)"`
}

// RandCmd writes size bytes of seeded pseudo-randomness, for seeding a
// corpus or reproducing a run by hand.
type RandCmd struct {
	Seed   uint64 `short:"s" help:"PRNG seed" default:"1"`
	Size   int64  `short:"n" help:"Number of bytes to write" default:"1024"`
	Output string `short:"o" help:"Output file (stdout when empty)"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("shrinktool"),
		kong.Description("Shrink failing test inputs the way the suppose runtime does."),
	)
	ctx.FatalIfErrorf(ctx.Run(&cli))
}

func (m *MinCmd) Run(cli *CLI) error {
	opts := core.Options{Verbose: cli.Verbose}

	if cli.Config != "" {
		fileOpts, err := core.LoadConfig(cli.Config)
		if err != nil {
			return err
		}
		opts.Command = fileOpts.Command
		opts.Timeout = fileOpts.Timeout
	}
	if len(m.Command) > 0 {
		opts.Command = m.Command
	}
	if strings.TrimSpace(m.Timeout) != "" {
		d, err := core.ParseTimeout(m.Timeout)
		if err != nil {
			return err
		}
		opts.Timeout = d
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if len(opts.Command) == 0 {
		return errors.New("no check command: pass --cmd or set command in the config file")
	}

	out := m.Output
	if strings.TrimSpace(out) == "" {
		out = m.Input + ".min"
	}
	return core.Run(m.Input, out, opts)
}

func (r *RandCmd) Run(cli *CLI) error {
	return core.WriteRandom(r.Output, r.Seed, r.Size)
}

// DiagCmd renders a pool file as a hex dump. Literal files carry no
// provenance, so the span section only shows up for recorded pools.
type DiagCmd struct {
	Input string `arg:"" help:"File holding pool bytes" type:"existingfile"`
}

func (d *DiagCmd) Run(cli *CLI) error {
	return core.Diag(d.Input)
}
