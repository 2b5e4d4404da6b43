package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
	theme      string
	mode       string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "terrafusion",
		Short:         "TerraFusion showcases its terminal design system",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the showcase
			if len(args) == 0 {
				return runShowcase(cmd, flags, showcaseOptions{page: "components"})
			}
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to configuration file")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.theme, "theme", "", "Theme variant (standard or advanced)")
	cmd.PersistentFlags().StringVar(&flags.mode, "mode", "", "Colour mode (dark or light)")

	cmd.AddCommand(newShowcaseCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
