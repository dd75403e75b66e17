package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"sparkhal/host/config"
	"sparkhal/host/monitor"
	"sparkhal/host/serial"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	device     = flag.String("device", "", "Serial device path (overrides config)")
	baud       = flag.Int("baud", 0, "Baud rate (overrides config)")
	logFile    = flag.String("log", "", "Capture device output to this file (overrides config)")
	verbose    = flag.Bool("verbose", false, "Enable verbose output")
)

func main() {
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	applyFlags(cfg)

	logger := monitor.NewLogger(cfg.Log.Verbose)
	defer logger.Sync()

	capture := monitor.NewCaptureLogger(cfg.Log)
	defer capture.Sync()

	fmt.Println("sparkmon - Particle USB console monitor")
	fmt.Printf("Connecting to %s at %d baud...\n", cfg.Serial.Device, cfg.Serial.Baud)

	port, err := serial.Open(cfg.PortConfig())
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Println("Connected. Type :help for local commands.")
	if cfg.Log.File != "" {
		logger.Info("capturing device output", zap.String("file", cfg.Log.File))
	}

	mon := monitor.New(port, monitor.Options{
		Console:    os.Stdout,
		Capture:    capture,
		Logger:     logger,
		LineEnding: cfg.Serial.LineEnding,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	done := make(chan error, 1)
	go func() {
		done <- mon.Run(ctx)
	}()

	go readInput(ctx, mon, logger, stop)

	if err := <-done; err != nil {
		logger.Error("monitor stopped", zap.Error(err))
		os.Exit(1)
	}
	logger.Debug("monitor stopped", zap.Uint64("lines", mon.Lines()))
}

// applyFlags lets command-line flags override the config file
func applyFlags(cfg *config.Config) {
	if *device != "" {
		cfg.Serial.Device = *device
	}
	if *baud != 0 {
		cfg.Serial.Baud = *baud
	}
	if *logFile != "" {
		cfg.Log.File = *logFile
	}
	if *verbose {
		cfg.Log.Verbose = true
	}
}

// readInput forwards stdin lines until :quit or EOF, then cancels the monitor
func readInput(ctx context.Context, mon *monitor.Monitor, logger *zap.Logger, stop context.CancelFunc) {
	defer stop()

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		err := mon.HandleInput(line)
		if errors.Is(err, monitor.ErrQuit) {
			return
		}
		if err != nil {
			logger.Warn("input", zap.Error(err))
		}
	}
}
