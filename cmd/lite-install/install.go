package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/opencode-lite/installer/internal/engine"
	"github.com/opencode-lite/installer/internal/logger"
	"github.com/opencode-lite/installer/internal/model"
	"github.com/opencode-lite/installer/internal/opencode"
	"github.com/opencode-lite/installer/internal/prompt"
	"github.com/opencode-lite/installer/internal/resolve"
	"github.com/opencode-lite/installer/internal/ui"
	literrors "github.com/opencode-lite/installer/pkg/errors"
)

const usageHint = "usage: lite-install [--tui=false --antigravity=yes|no --openai=yes|no --cerebras=yes|no]"

var (
	installCmdRunner = runInstall

	newClient = func(log *logger.Logger) opencode.Client {
		return opencode.NewFSClient(afero.NewOsFs(), opencode.ConfigDir(), log)
	}
)

func runInstall(cmd *cobra.Command, flags *rootFlags) error {
	level := "warn"
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: true})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	client := newClient(log)

	// Detected state is re-queried fresh on every invocation; a re-run after
	// a partial failure is a new install or update, never a resume.
	detected := client.DetectCurrentConfig()

	var cfg model.CanonicalConfig
	if flags.tui {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			log.Warn("stdin is not a terminal; detected defaults answer any unread question")
		}
		cfg = prompt.New(cmd.InOrStdin(), out).Run(detected)
	} else {
		raw := resolve.RawArguments{
			Antigravity: flags.antigravity,
			OpenAI:      flags.openai,
			Cerebras:    flags.cerebras,
		}
		resolved, violations := resolve.Resolve(raw)
		if len(violations) > 0 {
			errOut := cmd.ErrOrStderr()
			for _, violation := range violations {
				fmt.Fprintln(errOut, violation)
			}
			fmt.Fprintln(errOut, usageHint)
			return literrors.NewValidationError("flags", "invalid provider flags")
		}
		cfg = resolved
	}

	installer := engine.NewInstaller(client, ui.NewReporter(out), log)
	return installer.Run(cmd.Context(), cfg, detected)
}
