// Package cli handles command line interface logic
package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/jhbabon/johnny-eight/chip8"
)

// Frontend names accepted by the -frontend flag.
const (
	FrontendGL       = "gl"
	FrontendTerminal = "term"
	FrontendHeadless = "headless"
)

var frontends = []string{FrontendGL, FrontendTerminal, FrontendHeadless}

// Options holds the program options read from the command line.
type Options struct {
	ROM string

	ClockHz  int
	TimerHz  int
	Frontend string
	Scale    int
	Seed     int64

	Mute   bool
	Debug  bool
	Quiet  bool
	Disasm bool
}

// ParseFlags parses the command line arguments, excluding the program name.
func ParseFlags(args []string) (Options, error) {
	flags := flag.NewFlagSet("johnny-eight", flag.ContinueOnError)
	flags.SetOutput(io.Discard)

	var opts Options
	readOptionFlags(flags, &opts)

	if err := flags.Parse(args); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	rest := flags.Args()
	if len(rest) == 0 {
		return opts, &UsageError{flags: flags, msg: "no ROM file given"}
	}
	if err := validateArgs(flags, rest); err != nil {
		return opts, err
	}
	opts.ROM = rest[0]

	if err := normalizeOptions(&opts); err != nil {
		return opts, &UsageError{flags: flags, msg: err.Error()}
	}
	return opts, nil
}

// UsageError represents an error that should show usage information
type UsageError struct {
	flags *flag.FlagSet
	msg   string
}

func (e *UsageError) Error() string {
	return e.msg
}

// ShowUsage prints the usage text and all flag defaults to w.
func (e *UsageError) ShowUsage(w io.Writer) {
	fmt.Fprintf(w, "usage: johnny-eight [options] <rom file>\n\n")
	e.flags.SetOutput(w)
	e.flags.PrintDefaults()
	fmt.Fprintln(w)
}

// validateArgs checks that the ROM file is the last argument.
func validateArgs(flags *flag.FlagSet, args []string) error {
	for i, arg := range args {
		if i > 0 && strings.HasPrefix(arg, "-") {
			return &UsageError{
				flags: flags,
				msg:   fmt.Sprintf("argument %s found after the ROM file, pass the ROM file as last argument", arg),
			}
		}
	}
	if len(args) > 1 {
		return &UsageError{flags: flags, msg: "only one ROM file can be run"}
	}
	return nil
}

func normalizeOptions(opts *Options) error {
	if opts.ClockHz < 1 {
		return fmt.Errorf("clock rate must be positive, got %d", opts.ClockHz)
	}
	if opts.TimerHz < 1 {
		return fmt.Errorf("timer rate must be positive, got %d", opts.TimerHz)
	}
	if opts.Scale < 1 {
		return fmt.Errorf("scale must be positive, got %d", opts.Scale)
	}

	opts.Frontend = strings.ToLower(opts.Frontend)
	for _, valid := range frontends {
		if opts.Frontend == valid {
			return nil
		}
	}
	return fmt.Errorf("unsupported frontend: %s. Valid options: %s",
		opts.Frontend, strings.Join(frontends, ", "))
}

func readOptionFlags(flags *flag.FlagSet, opts *Options) {
	defaults := chip8.DefaultOptions()
	flags.IntVar(&opts.ClockHz, "hz", defaults.ClockHz, "instructions executed per second")
	flags.IntVar(&opts.TimerHz, "timerhz", defaults.TimerHz, "delay and sound timer rate")
	flags.StringVar(&opts.Frontend, "frontend", FrontendGL, "display and keyboard frontend (gl/term/headless)")
	flags.IntVar(&opts.Scale, "scale", 15, "window pixels per display pixel for the gl frontend")
	flags.Int64Var(&opts.Seed, "seed", 0, "random number seed, 0 seeds from the current time")
	flags.BoolVar(&opts.Mute, "mute", false, "disable the sound timer tone")
	flags.BoolVar(&opts.Disasm, "disasm", false, "print a disassembly of the ROM and exit")
	flags.BoolVar(&opts.Debug, "debug", false, "enable debugging options for extended logging")
	flags.BoolVar(&opts.Quiet, "q", false, "perform operations quietly")
}
