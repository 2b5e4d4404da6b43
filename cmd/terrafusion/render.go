package main

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/terrafusion/internal/schedule"
	"github.com/alexisbeaulieu97/terrafusion/internal/tui/showcase"
	tferrors "github.com/alexisbeaulieu97/terrafusion/pkg/errors"
)

const defaultRenderWidth = 100

type renderOptions struct {
	width   int
	refresh bool
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	opts := renderOptions{}

	cmd := &cobra.Command{
		Use:       "render [components|advanced]...",
		Short:     "Print showcase pages once",
		Long:      `Render showcase pages to stdout without starting the interactive UI. With no arguments every page is printed.`,
		ValidArgs: []string{"components", "advanced"},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, root, opts, args)
		},
	}

	cmd.Flags().IntVarP(&opts.width, "width", "w", defaultRenderWidth, "Render width in columns")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "Refresh the widgets once before rendering")

	return cmd
}

func runRender(cmd *cobra.Command, root *rootFlags, opts renderOptions, names []string) error {
	if opts.width < 20 {
		return fmt.Errorf("width must be at least 20, got %d", opts.width)
	}

	pages := showcase.Pages()
	if len(names) > 0 {
		pages = pages[:0:0]
		for _, name := range names {
			page, ok := showcase.ParsePage(name)
			if !ok {
				return tferrors.NewRenderError(name, "unknown page (expected components or advanced)", nil)
			}
			pages = append(pages, page)
		}
	}

	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	log, closeLog, err := newLogger(cfg, root.verbose, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	defer closeLog()

	session := showcase.NewSession(showcase.Options{
		Config:    cfg,
		Logger:    log,
		Scheduler: schedule.System(),
	})
	defer session.Close()

	if opts.refresh {
		ctx := cmd.Context()
		if ctx == nil {
			ctx = context.Background()
		}
		if err := session.RefreshAll(ctx); err != nil {
			log.Warn("widget refresh failed: " + err.Error())
		}
	}

	model := showcase.NewModel(context.Background(), session, showcase.PageComponents).WithSize(opts.width, 0)

	out := make([]string, 0, len(pages))
	for _, page := range pages {
		out = append(out, model.WithPage(page).Snapshot())
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.Join(out, "\n\n"))

	log.With("pages", len(pages)).Debug("rendered showcase")
	return nil
}
