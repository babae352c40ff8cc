// Package main implements a Chip-8 emulator
package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"runtime"
	"syscall"
	"time"

	"github.com/jhbabon/johnny-eight/chip8"
	"github.com/jhbabon/johnny-eight/internal/beep"
	"github.com/jhbabon/johnny-eight/internal/cli"
	"github.com/jhbabon/johnny-eight/internal/config"
	"github.com/jhbabon/johnny-eight/internal/glview"
	"github.com/jhbabon/johnny-eight/internal/termview"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
	"golang.org/x/sync/errgroup"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

// GLFW calls must happen on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	opts, err := cli.ParseFlags(os.Args[1:])
	if err != nil {
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			fmt.Fprintf(os.Stderr, "%s\n\n", err)
			usageErr.ShowUsage(os.Stderr)
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts)
	if !opts.Quiet && !opts.Disasm {
		printBanner()
	}

	if err := run(opts, logger); err != nil {
		logger.Error("Emulation failed", log.Err(err))
		os.Exit(1)
	}
}

func printBanner() {
	fmt.Println("[--------------------------------]")
	fmt.Println("[ johnny-eight - Chip-8 emulator ]")
	fmt.Printf("[--------------------------------]\n\n")
	fmt.Printf("version: %s\n\n", buildinfo.Version(version, commit, date))
}

func run(opts cli.Options, logger *log.Logger) error {
	rom, err := os.ReadFile(opts.ROM)
	if err != nil {
		return fmt.Errorf("reading ROM file: %w", err)
	}
	if opts.Disasm {
		return chip8.Disassemble(os.Stdout, rom, chip8.ProgramStart)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var buzzer chip8.Buzzer
	if !opts.Mute {
		b, err := beep.New(beep.DefaultSampleRate, beep.DefaultFrequency)
		if err != nil {
			logger.Warn("Sound disabled", log.Err(err))
		} else {
			defer func() { _ = b.Close() }()
			buzzer = b
		}
	}

	clock := chip8.NewClock(opts.ClockHz, chip8.DefaultClockDepth)
	vm := chip8.New(chip8.Options{
		ClockHz: opts.ClockHz,
		TimerHz: opts.TimerHz,
		Clock:   clock.Ticks(),
		Display: chip8.NewDisplay(chip8.DefaultDisplayDepth),
		Keypad:  &chip8.Keypad{},
		Buzzer:  buzzer,
		Rand:    rand.New(rand.NewSource(seed(opts.Seed))),
		Logger:  logger,
	})
	if err := vm.LoadROM(bytes.NewReader(rom)); err != nil {
		return err
	}
	logger.Info("Starting emulation",
		log.String("rom", opts.ROM),
		log.String("frontend", opts.Frontend),
		log.Int("clock_hz", opts.ClockHz),
		log.Int("timer_hz", opts.TimerHz))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return clock.Run(gctx)
	})
	g.Go(func() error {
		return vm.Run(gctx)
	})

	frontendErr := runFrontend(gctx, opts, vm, logger)
	cancel()
	if err := g.Wait(); err != nil {
		return err
	}
	return frontendErr
}

// runFrontend blocks on the calling thread until the user quits or ctx is
// cancelled.
func runFrontend(ctx context.Context, opts cli.Options, vm *chip8.Chip8, logger *log.Logger) error {
	switch opts.Frontend {
	case cli.FrontendGL:
		return glview.Run(ctx, glview.Options{
			Title:  "Chip-8",
			Scale:  opts.Scale,
			Logger: logger,
		}, vm.Display(), vm.Keypad())

	case cli.FrontendTerminal:
		return termview.Run(ctx, termview.Options{
			Logger: logger,
		}, vm.Display(), vm.Keypad())

	default:
		var screen chip8.Screen
		for {
			select {
			case <-ctx.Done():
				return nil
			case batch := <-vm.Display().Updates():
				screen.Apply(batch)
			}
		}
	}
}

func seed(s int64) int64 {
	if s != 0 {
		return s
	}
	return time.Now().UnixNano()
}
