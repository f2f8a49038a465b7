package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/opencode-lite/installer/internal/model"
)

// Prompter drives the interactive question flow: a fixed sequence of yes/no
// questions, each pre-seeded with the previously detected value. One line is
// read per question; the owned scanner holds no reader state between reads.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Prompter reading answers from in and writing questions to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(in), out: out}
}

// Run asks the three provider questions in fixed order and returns the
// resulting configuration. Detected values act as defaults: an empty line, a
// closed input stream, or unrecognized input all keep the seeded default.
func (p *Prompter) Run(detected model.DetectedConfig) model.CanonicalConfig {
	return model.CanonicalConfig{
		Antigravity: p.askYesNo("Enable the Antigravity provider?", detected.Antigravity),
		OpenAI:      p.askYesNo("Enable the OpenAI provider?", detected.OpenAI),
		Cerebras:    p.askYesNo("Enable the Cerebras provider?", detected.Cerebras),
	}
}

func (p *Prompter) askYesNo(question string, def bool) bool {
	hint := "[y/N]"
	if def {
		hint = "[Y/n]"
	}
	fmt.Fprintf(p.out, "%s %s ", question, hint)

	if !p.scanner.Scan() {
		// Input stream closed without data; accept the default.
		return def
	}

	switch strings.ToLower(strings.TrimSpace(p.scanner.Text())) {
	case "y", "yes":
		return true
	case "n", "no":
		return false
	default:
		// Empty and unrecognized input both fall back to the seeded
		// default. Deliberate leniency: garbage never errors.
		return def
	}
}
