package cli

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/lacima/plantlayout/pkg/observability"
	"github.com/lacima/plantlayout/pkg/server"
)

// serveCommand creates the serve command, which runs the HTTP dashboard.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr    string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the layout dashboard over HTTP",
		Long: `Serve starts the dashboard: one page with the area chart, placement order,
area table, floor plan, REL chart and a button that generates the written
layout study, plus the JSON API behind it.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Server.Addr = addr
			}
			s, err := c.loadStudy(cfg)
			if err != nil {
				return err
			}
			runner, err := c.newRunner(cmd.Context(), cfg, noCache, true)
			if err != nil {
				return err
			}
			defer runner.Close()

			observability.NewLogHooks(c.Logger).Register()
			defer observability.Reset()

			srv := server.New(server.Options{
				Study:          s,
				Runner:         runner,
				Logger:         c.Logger,
				AdvisorTimeout: cfg.Advisor.Timeout,
			})

			printInfo("Dashboard for %s", StyleHighlight.Render(s.Name))
			printKeyValue("Address", StyleLink.Render(dashboardURL(cfg.Server.Addr)))
			if runner.Advisor != nil {
				printKeyValue("Model", runner.Advisor.Model())
			} else {
				printKeyValue("Model", StyleDim.Render("none (set API_KEY to enable)"))
			}

			err = srv.ListenAndServe(cmd.Context(), server.ServeConfig{
				Addr:         cfg.Server.Addr,
				ReadTimeout:  cfg.Server.ReadTimeout,
				WriteTimeout: cfg.Server.WriteTimeout,
			})
			if errors.Is(err, context.Canceled) {
				printSuccess("Dashboard stopped")
				return nil
			}
			return err
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config: :8080)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

// dashboardURL turns a listen address into a browsable URL.
func dashboardURL(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "http://localhost" + addr
	}
	return "http://" + addr
}
