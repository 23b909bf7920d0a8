package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// stdinReader returns the invocation-wide buffered reader over the command's
// stdin. A single reader is shared by all prompts in one invocation; wrapping
// stdin per prompt would buffer ahead and drop input between reads.
func (c *commandContext) stdinReader(cmd *cobra.Command) *bufio.Reader {
	if c.stdin == nil {
		c.stdin = bufio.NewReader(cmd.InOrStdin())
	}
	return c.stdin
}

// promptPassword reads a password without echo when stdin is a terminal.
// Piped input falls back to a plain line read so scripts and tests work.
func (c *commandContext) promptPassword(cmd *cobra.Command, label string) (string, error) {
	fd := os.Stdin.Fd()
	if isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd) {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s: ", label)
		raw, err := term.ReadPassword(int(fd))
		fmt.Fprintln(cmd.ErrOrStderr())
		if err != nil {
			return "", fmt.Errorf("read password: %w", err)
		}
		return string(raw), nil
	}

	line, err := c.stdinReader(cmd).ReadString('\n')
	if err != nil && line == "" {
		return "", errors.New("password required")
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// promptNewPassword asks twice and requires both entries to match.
func (c *commandContext) promptNewPassword(cmd *cobra.Command) (string, error) {
	password, err := c.promptPassword(cmd, "Password")
	if err != nil {
		return "", err
	}
	confirm, err := c.promptPassword(cmd, "Confirm password")
	if err != nil {
		return "", err
	}
	if password != confirm {
		return "", errors.New("passwords do not match")
	}
	return password, nil
}
