package commands

import (
	"os"

	"github.com/spf13/cobra"
	"go.trai.ch/zerr"

	"github.com/hullworks/keel/internal/app"
	"github.com/hullworks/keel/internal/core/domain"
)

func (c *CLI) newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [project-root]",
		Short: "Generate the native project tree",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			} else if wd, err := os.Getwd(); err == nil {
				root = wd
			}

			force, _ := cmd.Flags().GetBool("force")
			mode, err := parseMode(cmd)
			if err != nil {
				return err
			}

			result, err := c.app.Run(cmd.Context(), root, app.RunOptions{
				Force: force,
				Mode:  mode,
			})
			if err != nil {
				return err
			}

			if result.Skipped {
				c.log.Info("project tree at " + result.ProjectPath + " is up to date")
			} else {
				c.log.Info("generated project tree at " + result.ProjectPath)
			}
			return nil
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Regenerate even when the fingerprint matches")
	cmd.Flags().String("mode", string(domain.ModeGenerate), "Invocation mode forwarded to plugins (generate, dev, build)")
	return cmd
}

// parseMode validates the --mode flag against the modes plugins are allowed
// to see.
func parseMode(cmd *cobra.Command) (domain.Mode, error) {
	raw, _ := cmd.Flags().GetString("mode")
	switch mode := domain.Mode(raw); mode {
	case domain.ModeGenerate, domain.ModeDev, domain.ModeBuild:
		return mode, nil
	default:
		return "", zerr.With(zerr.New("unknown mode, expected generate, dev, or build"), "mode", raw)
	}
}
