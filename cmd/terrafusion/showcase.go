package main

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/terrafusion/internal/tui/showcase"
)

type showcaseOptions struct {
	page string
}

// isTerminal reports whether stdout is interactive. Tests replace it.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func newShowcaseCmd(root *rootFlags) *cobra.Command {
	opts := showcaseOptions{}

	cmd := &cobra.Command{
		Use:   "showcase",
		Short: "Launch the interactive showcase",
		Long: `Launch the interactive TUI with the component gallery and the live dashboard.
When stdout is not a terminal the pages are printed once instead.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShowcase(cmd, root, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.page, "page", "p", "components", "Initial page (components or advanced)")

	return cmd
}

func runShowcase(cmd *cobra.Command, root *rootFlags, opts showcaseOptions) error {
	page, ok := showcase.ParsePage(opts.page)
	if !ok {
		return fmt.Errorf("unknown page %q (expected components or advanced)", opts.page)
	}

	if !isTerminal() {
		return runRender(cmd, root, renderOptions{width: defaultRenderWidth}, []string{opts.page})
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg, root.verbose, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	session := showcase.NewSession(showcase.Options{Config: cfg, Logger: log})
	defer session.Close()
	session.Start()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	log.With("page", page.String()).Info("launching showcase")

	p := tea.NewProgram(showcase.NewModel(ctx, session, page), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		log.Error(err, "showcase execution failed")
		return fmt.Errorf("failed to run showcase: %w", err)
	}

	log.Info("showcase closed")
	return nil
}
