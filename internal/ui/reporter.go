package ui

import (
	"fmt"
	"io"

	"github.com/opencode-lite/installer/internal/model"
)

// RemediationURL is shown when the OpenCode host is not installed.
const RemediationURL = "https://opencode.ai/docs/#install"

// Reporter renders installation progress and outcomes to a text sink. It is
// the only component that writes user-facing output; it never fails — worst
// case a write is silently short.
type Reporter struct {
	out   io.Writer
	total int
	step  int
}

// NewReporter creates a Reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// Header announces the run mode. The install-vs-update decision comes from
// the detected state and is made once, before any step runs.
func (r *Reporter) Header(detected model.DetectedConfig) {
	mode := "Installing"
	if detected.Installed {
		mode = "Updating"
	}
	title := fmt.Sprintf("%s opencode-lite", mode)
	if detected.Version != "" {
		title = fmt.Sprintf("%s (opencode %s)", title, detected.Version)
	}
	fmt.Fprintln(r.out, titleStyle.Render(title))
}

// Begin fixes the total step count for the run. The count is computed once
// by the orchestrator and never changes mid-run.
func (r *Reporter) Begin(total int) {
	r.total = total
	r.step = 0
}

// Step prints the numbered progress line for the next step.
func (r *Reporter) Step(name string) {
	r.step++
	fmt.Fprintf(r.out, "%s %s\n", stepStyle.Render(fmt.Sprintf("[%d/%d]", r.step, r.total)), name)
}

// StepSuccess marks the current step as done, noting the written location
// when the step reported one.
func (r *Reporter) StepSuccess(location string) {
	line := successStyle.Render("  ✓ done")
	if location != "" {
		line = fmt.Sprintf("%s %s", line, mutedStyle.Render(location))
	}
	fmt.Fprintln(r.out, line)
}

// StepFailure surfaces the collaborator's error text verbatim.
func (r *Reporter) StepFailure(message string) {
	fmt.Fprintf(r.out, "%s %s\n", failureStyle.Render("  ✗ failed:"), message)
}

// NotInstalled renders the fatal precondition block with a remediation link.
func (r *Reporter) NotInstalled() {
	fmt.Fprintln(r.out, failureStyle.Render("✗ OpenCode is not installed."))
	fmt.Fprintf(r.out, "  Install it first: %s\n", RemediationURL)
}

// NoProviders renders the post-condition warning: every step succeeded but
// the resulting configuration enables nothing.
func (r *Reporter) NoProviders() {
	fmt.Fprintln(r.out, warningStyle.Render("⚠ No providers configured — opencode-lite will have nothing to do."))
	fmt.Fprintln(r.out, "  Re-run with at least one provider enabled.")
}

// Summary renders the per-provider configuration table.
func (r *Reporter) Summary(cfg model.CanonicalConfig) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, titleStyle.Render("Configuration"))
	r.summaryLine("Antigravity", cfg.Antigravity)
	r.summaryLine("OpenAI", cfg.OpenAI)
	r.summaryLine("Cerebras", cfg.Cerebras)
}

func (r *Reporter) summaryLine(name string, enabled bool) {
	mark := mutedStyle.Render("[ ]")
	if enabled {
		mark = successStyle.Render("[x]")
	}
	fmt.Fprintf(r.out, "  %s %s\n", mark, name)
}

// Guidance renders the fixed next-steps block shown after a successful run.
func (r *Reporter) Guidance() {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, successStyle.Render("✓ opencode-lite is ready."))
	fmt.Fprintln(r.out, "  Start opencode and pick a lite model from the model list.")
	fmt.Fprintln(r.out, "  Re-run lite-install at any time to change providers.")
}
