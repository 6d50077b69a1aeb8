package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shelterkin/alertkit/components"
	"github.com/spf13/cobra"
)

type renderOptions struct {
	id          string
	level       string
	header      string
	hideAfter   time.Duration
	blockHeader bool
	noClose     bool
}

func newRenderCmd() *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render [flags] MESSAGE",
		Short: "Print the markup for one alert",
		Long: `Render a single alert to stdout, followed by the head markup it needs
(the dismiss script and any auto-hide timer).

Levels are matched case-insensitively: ERROR and FATAL render as errors,
WARNING as a warning, SUCCESS as success and anything else as info.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd.Context(), cmd.OutOrStdout(), opts, strings.Join(args, " "))
		},
	}

	cmd.Flags().StringVar(&opts.id, "id", "alert", "Element id of the alert")
	cmd.Flags().StringVarP(&opts.level, "level", "l", "INFO", "Alert level (ERROR, FATAL, WARNING, SUCCESS, INFO)")
	cmd.Flags().StringVar(&opts.header, "header", "", "Optional header text")
	cmd.Flags().DurationVar(&opts.hideAfter, "hide-after", 0, "Close the alert after this long (e.g. 3s)")
	cmd.Flags().BoolVar(&opts.blockHeader, "block-header", false, "Render the header on its own line")
	cmd.Flags().BoolVar(&opts.noClose, "no-close", false, "Hide the close button")

	return cmd
}

func runRender(ctx context.Context, w io.Writer, opts *renderOptions, message string) error {
	if ctx == nil {
		ctx = context.Background()
	}

	alert := components.NewAlert(opts.id, components.Text(message), components.Text(opts.header)).
		SetSeverity(components.SeverityFrom(opts.level)).
		HideAfter(opts.hideAfter).
		UseInlineHeader(!opts.blockHeader).
		SetCloseButtonVisible(!opts.noClose)

	head := components.NewHead()
	alert.Prepare(ctx, head)

	if err := alert.Render(ctx, w); err != nil {
		return fmt.Errorf("rendering alert: %w", err)
	}
	if _, err := io.WriteString(w, "\n"); err != nil {
		return err
	}
	if err := head.Render(ctx, w); err != nil {
		return fmt.Errorf("rendering head: %w", err)
	}
	_, err := io.WriteString(w, "\n")
	return err
}
