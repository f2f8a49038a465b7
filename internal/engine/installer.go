package engine

import (
	"context"

	"github.com/opencode-lite/installer/internal/logger"
	"github.com/opencode-lite/installer/internal/model"
	"github.com/opencode-lite/installer/internal/opencode"
	"github.com/opencode-lite/installer/internal/ui"
	literrors "github.com/opencode-lite/installer/pkg/errors"
)

// Installer runs the ordered installation pipeline against the host. Steps
// are strictly sequential and the pipeline halts at the first failure; there
// is no rollback, a partially applied configuration is an accepted outcome.
type Installer struct {
	client   opencode.Client
	reporter *ui.Reporter
	log      *logger.Logger
}

// NewInstaller creates an Installer.
func NewInstaller(client opencode.Client, reporter *ui.Reporter, log *logger.Logger) *Installer {
	return &Installer{client: client, reporter: reporter, log: log}
}

// StepCount returns the number of steps the run will execute: 5 when the
// Antigravity branch is taken, 3 otherwise. The branch decision is fixed
// before orchestration starts and is never revisited mid-run.
func StepCount(cfg model.CanonicalConfig) int {
	if cfg.Antigravity {
		return 5
	}
	return 3
}

// Run executes the pipeline for the resolved configuration. The returned
// error is nil only on full success, including the post-condition that at
// least one provider ended up enabled. Re-running after a failure is safe;
// every write is an idempotent read-modify-write.
func (i *Installer) Run(ctx context.Context, cfg model.CanonicalConfig, detected model.DetectedConfig) error {
	i.reporter.Header(detected)
	i.reporter.Begin(StepCount(cfg))

	i.reporter.Step("Checking OpenCode installation")
	installed, err := i.client.IsInstalled(ctx)
	if err != nil {
		i.reporter.StepFailure(err.Error())
		return literrors.NewStepError("preflight", err.Error())
	}
	if !installed {
		i.reporter.NotInstalled()
		return literrors.NewNotInstalledError(ui.RemediationURL)
	}
	if version, ok := i.client.Version(ctx); ok {
		i.reporter.StepSuccess("opencode " + version)
	} else {
		i.reporter.StepSuccess("")
	}

	if err := i.runStep(ctx, "add_plugin", "Registering the opencode-lite plugin", func(ctx context.Context) model.StepResult {
		return i.client.AddPlugin(ctx)
	}); err != nil {
		return err
	}

	if cfg.Antigravity {
		// AddProviderConfig must not begin until AddAuthPlugins has fully
		// completed; sequential calls give that ordering for free.
		if err := i.runStep(ctx, "add_auth_plugins", "Registering the Antigravity auth plugin", func(ctx context.Context) model.StepResult {
			return i.client.AddAuthPlugins(ctx, cfg)
		}); err != nil {
			return err
		}
		if err := i.runStep(ctx, "add_provider_config", "Writing the Antigravity provider configuration", func(context.Context) model.StepResult {
			return i.client.AddProviderConfig(cfg)
		}); err != nil {
			return err
		}
	}

	if err := i.runStep(ctx, "write_lite_config", "Writing the lite configuration", func(context.Context) model.StepResult {
		return i.client.WriteLiteConfig(cfg)
	}); err != nil {
		return err
	}

	// Mechanical success is not enough: a configuration that enables
	// nothing is a semantic failure.
	if !cfg.HasAnyProvider() {
		i.reporter.NoProviders()
		return literrors.NewNoProvidersError()
	}

	i.reporter.Summary(cfg)
	i.reporter.Guidance()
	return nil
}

func (i *Installer) runStep(ctx context.Context, id, name string, fn func(context.Context) model.StepResult) error {
	log := i.log.WithFields(map[string]any{"step": id})
	log.Debug("starting step")

	i.reporter.Step(name)
	res := fn(ctx)
	if !res.Success {
		log.WithFields(map[string]any{"message": res.Message}).Debug("step failed")
		i.reporter.StepFailure(res.Message)
		return literrors.NewStepError(id, res.Message)
	}

	log.WithFields(map[string]any{"location": res.Location}).Debug("step complete")
	i.reporter.StepSuccess(res.Location)
	return nil
}
