package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	tui     bool
	verbose bool

	antigravity string
	openai      string
	cerebras    string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "lite-install",
		Short:         "Install and configure the opencode-lite plugin for OpenCode",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return installCmdRunner(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.tui, "tui", true, "Ask interactive questions; disable to configure via provider flags")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.Flags().StringVar(&flags.antigravity, "antigravity", "", "Enable the Antigravity provider (yes|no)")
	cmd.Flags().StringVar(&flags.openai, "openai", "", "Enable the OpenAI provider (yes|no)")
	cmd.Flags().StringVar(&flags.cerebras, "cerebras", "", "Enable the Cerebras provider (yes|no)")

	cmd.AddCommand(newVersionCmd())

	return cmd
}
