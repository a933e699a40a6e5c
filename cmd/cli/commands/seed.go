package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/coopfed/portal/internal/api/v1/services"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
)

// seedFile is the shape of the YAML file the seed command consumes. Field
// maps pass through the same validation as API mutations, so a bad seed
// file fails before anything is written.
type seedFile struct {
	Hero       map[string]interface{}   `yaml:"hero"`
	OurRole    map[string]interface{}   `yaml:"our_role"`
	Executives []map[string]interface{} `yaml:"executives"`
}

// GetSeedCmd returns the seed command.
func GetSeedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed [file]",
		Short: "Seed site copy from a YAML file",
		Long: `Seed creates hero copy, the our-role section, and executive
profiles from a YAML file. Executive photo references must name files
already uploaded to the blob store.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			var seed seedFile
			if err := yaml.Unmarshal(raw, &seed); err != nil {
				return fmt.Errorf("invalid seed file: %w", err)
			}

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			if seed.Hero != nil {
				hero := services.NewHeroService(repos.NewContentRepository[models.HeroText](database), store)
				id, err := hero.Create(ctx, operator, seed.Hero)
				if err != nil {
					return fmt.Errorf("hero: %w", err)
				}
				fmt.Fprintf(out, "Created hero copy %d\n", id)
			}

			if seed.OurRole != nil {
				role := services.NewOurRoleService(repos.NewContentRepository[models.OurRole](database), store)
				id, err := role.Create(ctx, operator, seed.OurRole)
				if err != nil {
					return fmt.Errorf("our_role: %w", err)
				}
				fmt.Fprintf(out, "Created our-role section %d\n", id)
			}

			execs := services.NewExecutiveService(repos.NewContentRepository[models.Executive](database), store)
			for i, fields := range seed.Executives {
				id, err := execs.Create(ctx, operator, fields)
				if err != nil {
					return fmt.Errorf("executives[%d]: %w", i, err)
				}
				fmt.Fprintf(out, "Created executive %d\n", id)
			}
			return nil
		},
	}
}
