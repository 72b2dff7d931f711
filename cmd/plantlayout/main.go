package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/lacima/plantlayout/internal/cli"
	plerrors "github.com/lacima/plantlayout/pkg/errors"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		fmt.Fprintln(os.Stderr, plerrors.UserMessage(err))
		os.Exit(exitCode(err))
	}
}

func run(ctx context.Context) error {
	var verbose bool

	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()
	root.SilenceErrors = true

	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	originalPreRun := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		if originalPreRun != nil {
			return originalPreRun(cmd, args)
		}
		return nil
	}

	return root.ExecuteContext(ctx)
}

// exitCode separates bad input (2) from other failures (1).
func exitCode(err error) int {
	switch plerrors.GetCode(err) {
	case plerrors.ErrCodeInvalidInput, plerrors.ErrCodeInvalidRating, plerrors.ErrCodeInvalidStudy,
		plerrors.ErrCodeInvalidFormat, plerrors.ErrCodeInvalidChart, plerrors.ErrCodeInvalidPath,
		plerrors.ErrCodeNotFound, plerrors.ErrCodeFileNotFound:
		return 2
	}
	return 1
}
