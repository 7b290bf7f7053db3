package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mchmarny/supernav/pkg/navigator"
	"github.com/mchmarny/supernav/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var (
		format     string
		currentURL string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the menu as JSON or the navigation markup as HTML",
		RunE: func(cmd *cobra.Command, _ []string) error {
			mc, err := a.loadMenu()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			switch format {
			case "json":
				b, err := mc.JSON()
				if err != nil {
					return fmt.Errorf("failed to encode menu: %w", err)
				}
				_, err = fmt.Fprintln(out, string(b))
				return err

			case "html":
				ctx := cmd.Context()
				p := render.Panel{
					Options:    a.cfg.RenderOptions(),
					Config:     mc,
					Controller: navigator.New(ctx, nil, navigator.WithMenu(mc.Nodes())),
					CurrentURL: currentURL,
				}
				if err := render.Navigation(p).Render(ctx, out); err != nil {
					return fmt.Errorf("failed to render navigation: %w", err)
				}
				if err := render.Script(mc.Nodes()).Render(ctx, out); err != nil {
					return fmt.Errorf("failed to render script: %w", err)
				}
				_, err = fmt.Fprintln(out)
				return err

			default:
				return fmt.Errorf("unsupported format %q, use json or html", format)
			}
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "json", "output format: json or html")
	cmd.Flags().StringVar(&currentURL, "url", "", "current page URL used for highlighting")

	return cmd
}
