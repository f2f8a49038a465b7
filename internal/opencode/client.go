package opencode

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"github.com/opencode-lite/installer/internal/logger"
	"github.com/opencode-lite/installer/internal/model"
)

// Client is the collaborator surface the orchestrator delegates to for host
// detection and configuration persistence. Step methods report outcomes as
// StepResult values; their error text is opaque to the caller.
type Client interface {
	DetectCurrentConfig() model.DetectedConfig
	IsInstalled(ctx context.Context) (bool, error)
	Version(ctx context.Context) (string, bool)
	AddPlugin(ctx context.Context) model.StepResult
	AddAuthPlugins(ctx context.Context, cfg model.CanonicalConfig) model.StepResult
	AddProviderConfig(cfg model.CanonicalConfig) model.StepResult
	WriteLiteConfig(cfg model.CanonicalConfig) model.StepResult
}

type liteConfig struct {
	Antigravity bool `yaml:"antigravity"`
	OpenAI      bool `yaml:"openai"`
	Cerebras    bool `yaml:"cerebras"`
}

// FSClient implements Client against a filesystem. The host's opencode.json
// is edited as a JSON read-modify-write that preserves unknown fields; the
// plugin's own configuration is a small YAML file next to it.
type FSClient struct {
	fs  afero.Fs
	dir string
	log *logger.Logger

	lookPath    func(file string) (string, error)
	versionExec func(ctx context.Context) (string, error)
}

// NewFSClient creates an FSClient rooted at the given config directory.
func NewFSClient(fs afero.Fs, dir string, log *logger.Logger) *FSClient {
	return &FSClient{
		fs:       fs,
		dir:      dir,
		log:      log,
		lookPath: exec.LookPath,
		versionExec: func(ctx context.Context) (string, error) {
			out, err := exec.CommandContext(ctx, "opencode", "--version").Output()
			if err != nil {
				return "", err
			}
			return strings.TrimSpace(string(out)), nil
		},
	}
}

func (c *FSClient) hostConfigPath() string {
	return filepath.Join(c.dir, hostConfigFile)
}

func (c *FSClient) liteConfigPath() string {
	return filepath.Join(c.dir, liteConfigFile)
}

// DetectCurrentConfig reads the existing lite configuration, if any. It has
// no failure path: unreadable or absent state reports as not installed.
func (c *FSClient) DetectCurrentConfig() model.DetectedConfig {
	data, err := afero.ReadFile(c.fs, c.liteConfigPath())
	if err != nil {
		return model.DetectedConfig{}
	}

	var lite liteConfig
	if err := yaml.Unmarshal(data, &lite); err != nil {
		c.log.WithFields(map[string]any{"path": c.liteConfigPath()}).Warn("existing lite config is unreadable, treating as fresh install")
		return model.DetectedConfig{}
	}

	return model.DetectedConfig{
		CanonicalConfig: model.CanonicalConfig{
			Antigravity: lite.Antigravity,
			OpenAI:      lite.OpenAI,
			Cerebras:    lite.Cerebras,
		},
		Installed: true,
	}
}

// IsInstalled reports whether the opencode binary is available on PATH.
func (c *FSClient) IsInstalled(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	_, err := c.lookPath("opencode")
	return err == nil, nil
}

// Version returns the detected host version, or false when it cannot be
// determined.
func (c *FSClient) Version(ctx context.Context) (string, bool) {
	v, err := c.versionExec(ctx)
	if err != nil || v == "" {
		return "", false
	}
	return v, true
}

// AddPlugin registers the lite plugin in the host's plugin list. Re-running
// against an already-registered host is a no-op rewrite.
func (c *FSClient) AddPlugin(ctx context.Context) model.StepResult {
	if err := ctx.Err(); err != nil {
		return model.Fail(err.Error())
	}

	host, err := c.readHostConfig()
	if err != nil {
		return model.Fail(err.Error())
	}

	host["plugin"] = appendUnique(listValue(host["plugin"]), PluginName)

	if err := c.writeHostConfig(host); err != nil {
		return model.Fail(err.Error())
	}
	return model.Ok(c.hostConfigPath())
}

// AddAuthPlugins registers the auth plugin for each enabled provider that
// needs one. Currently only Antigravity requires host-side auth.
func (c *FSClient) AddAuthPlugins(ctx context.Context, cfg model.CanonicalConfig) model.StepResult {
	if err := ctx.Err(); err != nil {
		return model.Fail(err.Error())
	}

	host, err := c.readHostConfig()
	if err != nil {
		return model.Fail(err.Error())
	}

	if cfg.Antigravity {
		host["plugin"] = appendUnique(listValue(host["plugin"]), AuthPluginName)
	}

	if err := c.writeHostConfig(host); err != nil {
		return model.Fail(err.Error())
	}
	return model.Ok(c.hostConfigPath())
}

// AddProviderConfig writes the Antigravity provider block into the host
// configuration.
func (c *FSClient) AddProviderConfig(cfg model.CanonicalConfig) model.StepResult {
	host, err := c.readHostConfig()
	if err != nil {
		return model.Fail(err.Error())
	}

	providers, _ := host["provider"].(map[string]any)
	if providers == nil {
		providers = map[string]any{}
	}
	if cfg.Antigravity {
		providers["antigravity"] = map[string]any{
			"npm":  "opencode-antigravity",
			"name": "Antigravity",
		}
	}
	host["provider"] = providers

	if err := c.writeHostConfig(host); err != nil {
		return model.Fail(err.Error())
	}
	return model.Ok(c.hostConfigPath())
}

// WriteLiteConfig persists the resolved configuration at the plugin's own
// config location.
func (c *FSClient) WriteLiteConfig(cfg model.CanonicalConfig) model.StepResult {
	data, err := yaml.Marshal(liteConfig{
		Antigravity: cfg.Antigravity,
		OpenAI:      cfg.OpenAI,
		Cerebras:    cfg.Cerebras,
	})
	if err != nil {
		return model.Fail(fmt.Sprintf("encode lite config: %v", err))
	}

	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return model.Fail(fmt.Sprintf("create config dir: %v", err))
	}
	if err := afero.WriteFile(c.fs, c.liteConfigPath(), data, 0o644); err != nil {
		return model.Fail(fmt.Sprintf("write lite config: %v", err))
	}
	return model.Ok(c.liteConfigPath())
}

func (c *FSClient) readHostConfig() (map[string]any, error) {
	data, err := afero.ReadFile(c.fs, c.hostConfigPath())
	if err != nil {
		// A freshly installed host may not have written a config yet.
		return map[string]any{}, nil
	}

	host := map[string]any{}
	if err := json.Unmarshal(data, &host); err != nil {
		return nil, fmt.Errorf("parse %s: %v", c.hostConfigPath(), err)
	}
	return host, nil
}

func (c *FSClient) writeHostConfig(host map[string]any) error {
	data, err := json.MarshalIndent(host, "", "  ")
	if err != nil {
		return fmt.Errorf("encode %s: %v", c.hostConfigPath(), err)
	}

	if err := c.fs.MkdirAll(c.dir, 0o755); err != nil {
		return fmt.Errorf("create config dir: %v", err)
	}
	if err := afero.WriteFile(c.fs, c.hostConfigPath(), append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %v", c.hostConfigPath(), err)
	}
	return nil
}

func listValue(v any) []any {
	list, _ := v.([]any)
	return list
}

func appendUnique(list []any, entry string) []any {
	for _, item := range list {
		if s, ok := item.(string); ok && s == entry {
			return list
		}
	}
	return append(list, entry)
}
