package cmd

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var readPassword = term.ReadPassword

var errNoInput = errors.New("no input")

// prompter reads answers from the command's stdin and writes questions to
// its stderr, so stdout stays clean for piping.
type prompter struct {
	in     io.Reader
	reader *bufio.Reader
	out    io.Writer
}

func newPrompter(cmd *cobra.Command) *prompter {
	in := cmd.InOrStdin()
	return &prompter{in: in, reader: bufio.NewReader(in), out: cmd.ErrOrStderr()}
}

func (p *prompter) line(label string) (string, error) {
	if label != "" {
		fmt.Fprintf(p.out, "%s: ", label)
	}

	text, err := p.reader.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	if errors.Is(err, io.EOF) && text == "" {
		return "", errNoInput
	}
	return strings.TrimRight(text, "\r\n"), nil
}

// value returns current when set, otherwise asks for it.
func (p *prompter) value(current string, label string) (string, error) {
	if strings.TrimSpace(current) != "" {
		return current, nil
	}
	return p.line(label)
}

// password reads without echo from a terminal and falls back to a plain line
// for piped input.
func (p *prompter) password(label string) (string, error) {
	f, ok := p.in.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return p.line("")
	}

	fmt.Fprintf(p.out, "%s: ", label)
	raw, err := readPassword(int(f.Fd()))
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read %s: %w", strings.ToLower(label), err)
	}
	return string(raw), nil
}

// Confirm asks a yes/no question; anything but y or yes is a no.
func (p *prompter) Confirm(_ context.Context, question string) (bool, error) {
	answer, err := p.line(question + " [y/N]")
	if errors.Is(err, errNoInput) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
