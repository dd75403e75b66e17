// Package monitor streams a device's USB console and forwards input to it
package monitor

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"sparkhal/host/serial"
)

// maxLine bounds a single device line; longer output is split
const maxLine = 1024

// Monitor connects a serial port to a console writer
type Monitor struct {
	port    serial.Port
	console io.Writer
	capture *zap.Logger
	log     *zap.Logger

	lineEnding string
	lines      uint64
}

// Options configures a Monitor. Nil loggers default to no-op.
type Options struct {
	Console    io.Writer
	Capture    *zap.Logger
	Logger     *zap.Logger
	LineEnding string
}

// New creates a monitor on an open port
func New(port serial.Port, opts Options) *Monitor {
	m := &Monitor{
		port:       port,
		console:    opts.Console,
		capture:    opts.Capture,
		log:        opts.Logger,
		lineEnding: opts.LineEnding,
	}
	if m.console == nil {
		m.console = io.Discard
	}
	if m.capture == nil {
		m.capture = zap.NewNop()
	}
	if m.log == nil {
		m.log = zap.NewNop()
	}
	if m.lineEnding == "" {
		m.lineEnding = "\r\n"
	}
	return m
}

// Lines returns the number of complete lines received so far
func (m *Monitor) Lines() uint64 {
	return m.lines
}

// Run copies device output to the console until ctx is cancelled or the
// port fails. io.EOF is treated as an idle read timeout (tarm/serial reports
// an expired ReadTimeout that way). A trailing partial line is flushed on exit.
func (m *Monitor) Run(ctx context.Context) error {
	buf := make([]byte, 256)
	var pending []byte

	defer func() {
		if len(pending) > 0 {
			m.emit(pending)
		}
		m.capture.Sync()
	}()

	for {
		if err := ctx.Err(); err != nil {
			return nil
		}

		n, err := m.port.Read(buf)
		if n > 0 {
			pending = append(pending, buf[:n]...)
			pending = m.drainLines(pending)
		}
		if err != nil && !errors.Is(err, io.EOF) {
			return fmt.Errorf("read serial: %w", err)
		}
	}
}

// drainLines emits every complete line in data, splitting any line longer
// than maxLine, and returns the remainder
func (m *Monitor) drainLines(data []byte) []byte {
	for {
		idx := bytes.IndexByte(data, '\n')
		if idx < 0 || idx > maxLine {
			if len(data) < maxLine {
				return data
			}
			m.emit(data[:maxLine])
			data = data[maxLine:]
			continue
		}
		m.emit(data[:idx])
		data = data[idx+1:]
	}
}

func (m *Monitor) emit(raw []byte) {
	line := strings.TrimRight(string(raw), "\r")
	m.lines++
	fmt.Fprintln(m.console, line)
	m.capture.Info(line)
}

// SendLine writes text followed by the configured line ending
func (m *Monitor) SendLine(text string) error {
	return m.SendRaw([]byte(text + m.lineEnding))
}

// SendRaw writes b unchanged
func (m *Monitor) SendRaw(b []byte) error {
	if _, err := m.port.Write(b); err != nil {
		return fmt.Errorf("write serial: %w", err)
	}
	m.log.Debug("sent", zap.Int("bytes", len(b)))
	return nil
}

// Flush discards anything buffered in the port
func (m *Monitor) Flush() error {
	return m.port.Flush()
}
