package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Zachkp/portfolio/internal/config"
	"github.com/Zachkp/portfolio/internal/content"
)

//nolint:gochecknoglobals // Cobra boilerplate
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate a content file",
	Long: `Validate a content file against the profile, project and skill rules:
required fields, email and URL syntax, unique project ids and skill levels
between 0 and 100.

Example:
  portfolio check --content site.toml`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

//nolint:gochecknoinits // Cobra boilerplate
func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	path := resolveContentPath(cfg)
	site, err := content.Load(path)
	if err != nil {
		return err
	}

	source := path
	if source == "" {
		source = "built-in content"
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: ok\n", source)
	fmt.Fprintf(cmd.OutOrStdout(), "  name:     %s %s\n", site.Profile.Name, site.Profile.LastName)
	fmt.Fprintf(cmd.OutOrStdout(), "  projects: %d\n", len(site.Projects))
	fmt.Fprintf(cmd.OutOrStdout(), "  skills:   %d\n", len(site.Skills))
	return nil
}
