package model

// CanonicalConfig is the fully resolved installation configuration: one
// definite boolean per supported provider. It is built once per run, either
// from validated flags or from interactive answers, and never mutated.
type CanonicalConfig struct {
	Antigravity bool
	OpenAI      bool
	Cerebras    bool
}

// HasAnyProvider reports whether at least one provider is enabled.
func (c CanonicalConfig) HasAnyProvider() bool {
	return c.Antigravity || c.OpenAI || c.Cerebras
}

// DetectedConfig is a snapshot of the host's existing configuration, read
// once at the start of a run. It seeds interactive defaults and decides
// whether the run is framed as an install or an update.
type DetectedConfig struct {
	CanonicalConfig

	// Installed reports whether a previous installation was found.
	Installed bool
	// Version is the detected host version, empty when unknown.
	Version string
}
