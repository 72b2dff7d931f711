package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lacima/plantlayout/pkg/advisor"
	"github.com/lacima/plantlayout/pkg/errors"
)

// adviseCommand creates the advise command, which asks the text-generation
// service for a written layout study.
func (c *CLI) adviseCommand() *cobra.Command {
	var (
		output   string
		language string
		noCache  bool
		refresh  bool
	)

	cmd := &cobra.Command{
		Use:   "advise",
		Short: "Generate a written layout study",
		Long: `Advise ranks the departments, builds a prompt from the study (areas, material
flow, placement order and observations) and sends it to the text-generation
service. The answer is printed, or written to --output.

The API key is read from API_KEY or GEMINI_API_KEY (a .env file in the working
directory is honored). When the service is unavailable or fails, a fallback
message is shown instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := c.loadConfig()
			if err != nil {
				return err
			}
			if language != "" {
				cfg.Advisor.Language = language
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

			ctx := cmd.Context()
			if cfg.Advisor.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, cfg.Advisor.Timeout)
				defer cancel()
			}

			spinner := newSpinnerWithContext(ctx, "Generating layout study...")
			spinner.Start()
			rec, cached, err := runner.RecommendWithCacheInfo(ctx, s, refresh)
			if err != nil {
				spinner.StopWithError("Could not generate the layout study")
				if code := errors.GetCode(err); code == errors.ErrCodeAdvisorFailed || code == errors.ErrCodeAdvisorUnavailable {
					printWarning("%s", advisor.FallbackMessage(cfg.Advisor.Language))
				}
				return err
			}
			spinner.StopWithSuccess(fmt.Sprintf("Layout study from %s", rec.Model))
			printCacheStatus(cached)

			if output != "" {
				if err := os.WriteFile(output, []byte(rec.Text+"\n"), 0644); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				printFile(output)
				return nil
			}
			printNewline()
			fmt.Fprintln(cmd.OutOrStdout(), rec.Text)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "write the study to a file")
	cmd.Flags().StringVar(&language, "language", "", "language of the generated study (default from config: Arabic)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "generate a new study even when one is cached")

	return cmd
}
