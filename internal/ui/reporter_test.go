package ui

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-lite/installer/internal/model"
)

func TestHeaderInstallVersusUpdate(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	NewReporter(buf).Header(model.DetectedConfig{})
	require.Contains(t, buf.String(), "Installing opencode-lite")

	buf.Reset()
	NewReporter(buf).Header(model.DetectedConfig{Installed: true, Version: "0.5.3"})
	require.Contains(t, buf.String(), "Updating opencode-lite")
	require.Contains(t, buf.String(), "0.5.3")
}

func TestStepNumbering(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	r := NewReporter(buf)
	r.Begin(3)
	r.Step("Checking OpenCode installation")
	r.Step("Registering plugin")

	out := buf.String()
	require.Contains(t, out, "[1/3] Checking OpenCode installation")
	require.Contains(t, out, "[2/3] Registering plugin")
}

func TestStepOutcomes(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	r := NewReporter(buf)
	r.StepSuccess("/home/dev/.config/opencode/opencode.json")
	r.StepFailure("permission denied")

	out := buf.String()
	require.Contains(t, out, "✓ done")
	require.Contains(t, out, "opencode.json")
	require.Contains(t, out, "✗ failed: permission denied")
}

func TestNotInstalledIncludesRemediationLink(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	NewReporter(buf).NotInstalled()
	require.Contains(t, buf.String(), "not installed")
	require.Contains(t, buf.String(), RemediationURL)
}

func TestSummaryMarksEnabledProviders(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	NewReporter(buf).Summary(model.CanonicalConfig{Antigravity: true})

	out := buf.String()
	require.Contains(t, out, "[x] Antigravity")
	require.Contains(t, out, "[ ] OpenAI")
	require.Contains(t, out, "[ ] Cerebras")
}

func TestNoProvidersWarning(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	NewReporter(buf).NoProviders()
	require.Contains(t, buf.String(), "No providers configured")
}

func TestGuidanceBlock(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	NewReporter(buf).Guidance()
	require.Contains(t, buf.String(), "opencode-lite is ready")
	require.Contains(t, buf.String(), "Re-run lite-install")
}
