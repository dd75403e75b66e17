package monitor

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// CommandPrefix marks a local command on the input line
const CommandPrefix = ":"

// ErrQuit is returned by Execute for :quit
var ErrQuit = errors.New("quit")

// Command is a parsed local command
type Command struct {
	Name string
	Args []string
}

// HelpText lists the local commands
const HelpText = `Local commands:
  :send <text...>   send the words joined by spaces, plus a line ending
  :raw <hex>        send raw bytes, e.g. :raw 0d0a
  :flush            discard buffered serial data
  :help             show this help
  :quit             exit
Any other line is sent to the device as-is.`

// IsCommand reports whether line is a local command
func IsCommand(line string) bool {
	return strings.HasPrefix(line, CommandPrefix)
}

// ParseCommand splits a ":name args..." line with shell quoting rules
func ParseCommand(line string) (Command, error) {
	if !IsCommand(line) {
		return Command{}, fmt.Errorf("not a command: %q", line)
	}

	words, err := shlex.Split(strings.TrimPrefix(line, CommandPrefix))
	if err != nil {
		return Command{}, fmt.Errorf("parse command: %w", err)
	}
	if len(words) == 0 {
		return Command{}, errors.New("empty command")
	}

	return Command{Name: strings.ToLower(words[0]), Args: words[1:]}, nil
}

// Execute runs cmd against the monitor. Help output goes to the console.
func (m *Monitor) Execute(cmd Command) error {
	switch cmd.Name {
	case "quit", "exit", "q":
		return ErrQuit
	case "help", "?":
		fmt.Fprintln(m.console, HelpText)
		return nil
	case "send":
		return m.SendLine(strings.Join(cmd.Args, " "))
	case "raw":
		data, err := hex.DecodeString(strings.Join(cmd.Args, ""))
		if err != nil {
			return fmt.Errorf("raw: %w", err)
		}
		if len(data) == 0 {
			return errors.New("raw: no bytes given")
		}
		return m.SendRaw(data)
	case "flush":
		return m.Flush()
	default:
		return fmt.Errorf("unknown command %q (try :help)", cmd.Name)
	}
}

// HandleInput sends a plain line to the device or runs a local command
func (m *Monitor) HandleInput(line string) error {
	if !IsCommand(line) {
		return m.SendLine(line)
	}
	cmd, err := ParseCommand(line)
	if err != nil {
		return err
	}
	return m.Execute(cmd)
}
