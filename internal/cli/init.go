package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lacima/plantlayout/internal/config"
	"github.com/lacima/plantlayout/pkg/errors"
	"github.com/lacima/plantlayout/pkg/study"
)

const defaultStudyFile = "study.toml"

// initCommand creates the init command, which writes the built-in study (and
// optionally a config file) for editing.
func (c *CLI) initCommand() *cobra.Command {
	var (
		force      bool
		withConfig bool
	)

	cmd := &cobra.Command{
		Use:   "init [file]",
		Short: "Write the built-in Lacima study to a file",
		Long: `Init writes the built-in Lacima study to a file (default study.toml) so it can
be edited and passed back with --study. The format follows the extension:
.toml, .json, .yaml or .yml.

With --with-config, a config file holding the default settings is also
written to the --config path or $XDG_CONFIG_HOME/plantlayout/config.toml.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := defaultStudyFile
			if len(args) == 1 {
				path = args[0]
			}
			if err := refuseOverwrite(path, force); err != nil {
				return err
			}
			if err := study.WriteFile(path, study.Seed()); err != nil {
				return err
			}
			printSuccess("Wrote study")
			printFile(path)

			if withConfig {
				cfgPath, err := c.writeDefaultConfig(force)
				if err != nil {
					return err
				}
				printSuccess("Wrote config")
				printFile(cfgPath)
			}

			printNewline()
			printNextStep("Rank it", fmt.Sprintf("%s rank --study %s", appName, path))
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing files")
	cmd.Flags().BoolVar(&withConfig, "with-config", false, "also write a config file with the default settings")

	return cmd
}

func (c *CLI) writeDefaultConfig(force bool) (string, error) {
	path := c.configPath
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			return "", fmt.Errorf("config path: %w", err)
		}
		path = p
	}
	if err := refuseOverwrite(path, force); err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", err
	}

	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if err := config.Encode(f, config.Default()); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return path, nil
}

func refuseOverwrite(path string, force bool) error {
	if force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return errors.New(errors.ErrCodeInvalidPath, "%s already exists (use --force to overwrite)", path)
	}
	return nil
}
