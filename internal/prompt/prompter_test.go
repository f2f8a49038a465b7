package prompt

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/opencode-lite/installer/internal/model"
)

func detectedWith(antigravity, openai, cerebras bool) model.DetectedConfig {
	return model.DetectedConfig{
		CanonicalConfig: model.CanonicalConfig{
			Antigravity: antigravity,
			OpenAI:      openai,
			Cerebras:    cerebras,
		},
	}
}

func TestRunEmptyLinesKeepDefaults(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	p := New(strings.NewReader("\n\n\n"), out)

	cfg := p.Run(detectedWith(false, true, false))
	require.False(t, cfg.Antigravity)
	require.True(t, cfg.OpenAI)
	require.False(t, cfg.Cerebras)
}

func TestRunAffirmativeOverridesFalseDefault(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
	}{
		{name: "upper Y", input: "Y\n\n\n"},
		{name: "lower y", input: "y\n\n\n"},
		{name: "full yes", input: "yes\n\n\n"},
		{name: "padded", input: "  YES  \n\n\n"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			p := New(strings.NewReader(tt.input), &bytes.Buffer{})
			cfg := p.Run(detectedWith(false, false, false))
			require.True(t, cfg.Antigravity)
			require.False(t, cfg.OpenAI)
			require.False(t, cfg.Cerebras)
		})
	}
}

func TestRunNegativeOverridesTrueDefault(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader("no\nn\nN\n"), &bytes.Buffer{})
	cfg := p.Run(detectedWith(true, true, true))
	require.False(t, cfg.Antigravity)
	require.False(t, cfg.OpenAI)
	require.False(t, cfg.Cerebras)
}

func TestRunGarbageFallsBackToDefault(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader("maybe\nsure\n42\n"), &bytes.Buffer{})
	cfg := p.Run(detectedWith(true, false, true))
	require.True(t, cfg.Antigravity)
	require.False(t, cfg.OpenAI)
	require.True(t, cfg.Cerebras)
}

func TestRunClosedStreamUsesDefaults(t *testing.T) {
	t.Parallel()

	p := New(strings.NewReader(""), &bytes.Buffer{})
	cfg := p.Run(detectedWith(true, false, true))
	require.True(t, cfg.Antigravity)
	require.False(t, cfg.OpenAI)
	require.True(t, cfg.Cerebras)
}

func TestRunShowsDefaultHints(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	p := New(strings.NewReader("\n\n\n"), out)
	p.Run(detectedWith(true, false, false))

	rendered := out.String()
	require.Contains(t, rendered, "Antigravity provider? [Y/n]")
	require.Contains(t, rendered, "OpenAI provider? [y/N]")
	require.Contains(t, rendered, "Cerebras provider? [y/N]")
}

func TestRunQuestionOrderIsFixed(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	p := New(strings.NewReader("y\nn\ny\n"), out)
	cfg := p.Run(detectedWith(false, true, false))

	require.True(t, cfg.Antigravity)
	require.False(t, cfg.OpenAI)
	require.True(t, cfg.Cerebras)

	rendered := out.String()
	antigravity := strings.Index(rendered, "Antigravity")
	openai := strings.Index(rendered, "OpenAI")
	cerebras := strings.Index(rendered, "Cerebras")
	require.Less(t, antigravity, openai)
	require.Less(t, openai, cerebras)
}
