package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/coopfed/portal/internal/api/v1/services"
	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
)

// contentOps bundles the per-type operations the content command needs.
// Listing reads straight from the repository; deletion goes through the
// service so owned files are released first.
type contentOps struct {
	list func(ctx context.Context, limit int) (interface{}, error)
	del  func(ctx context.Context, id uint) error
}

func listVia[T any](repo *repos.ContentRepository[T]) func(ctx context.Context, limit int) (interface{}, error) {
	return func(ctx context.Context, limit int) (interface{}, error) {
		return repo.List(ctx, &models.ListOptions{Limit: limit})
	}
}

func buildContentOps() map[string]contentOps {
	heroRepo := repos.NewContentRepository[models.HeroText](database)
	roleRepo := repos.NewContentRepository[models.OurRole](database)
	galleryRepo := repos.NewContentRepository[models.GalleryItem](database)
	execRepo := repos.NewContentRepository[models.Executive](database)
	testimonialRepo := repos.NewContentRepository[models.Testimonial](database)
	newsRepo := repos.NewContentRepository[models.NewsPost](database)

	hero := services.NewHeroService(heroRepo, store)
	role := services.NewOurRoleService(roleRepo, store)
	gallery := services.NewGalleryService(galleryRepo, store)
	execs := services.NewExecutiveService(execRepo, store)
	testimonials := services.NewTestimonialService(testimonialRepo, store)
	news := services.NewNewsService(newsRepo, store)

	return map[string]contentOps{
		"hero": {listVia(heroRepo), func(ctx context.Context, id uint) error {
			return hero.Delete(ctx, operator, id)
		}},
		"our-role": {listVia(roleRepo), func(ctx context.Context, id uint) error {
			return role.Delete(ctx, operator, id)
		}},
		"gallery": {listVia(galleryRepo), func(ctx context.Context, id uint) error {
			return gallery.Delete(ctx, operator, id)
		}},
		"executive": {listVia(execRepo), func(ctx context.Context, id uint) error {
			return execs.Delete(ctx, operator, id)
		}},
		"testimonial": {listVia(testimonialRepo), func(ctx context.Context, id uint) error {
			return testimonials.Delete(ctx, operator, id)
		}},
		"news": {listVia(newsRepo), func(ctx context.Context, id uint) error {
			return news.Delete(ctx, operator, id)
		}},
	}
}

func contentTypeNames(ops map[string]contentOps) []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetContentCmd returns the content command and its subcommands.
func GetContentCmd() *cobra.Command {
	contentCmd := &cobra.Command{
		Use:   "content",
		Short: "Inspect and remove content records",
	}

	var limit int
	listCmd := &cobra.Command{
		Use:   "list [type]",
		Short: "List records of one content type, newest first",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := buildContentOps()
			op, ok := ops[args[0]]
			if !ok {
				return fmt.Errorf("unknown content type %q (one of %v)", args[0], contentTypeNames(ops))
			}
			records, err := op.list(cmd.Context(), limit)
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(records, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(out))
			return nil
		},
	}
	listCmd.Flags().IntVar(&limit, "limit", models.DefaultLimit, "maximum number of records to list")

	deleteCmd := &cobra.Command{
		Use:   "delete [type] [id]",
		Short: "Delete one record, releasing any files it owns",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ops := buildContentOps()
			op, ok := ops[args[0]]
			if !ok {
				return fmt.Errorf("unknown content type %q (one of %v)", args[0], contentTypeNames(ops))
			}
			id, err := strconv.ParseUint(args[1], 10, 32)
			if err != nil {
				return fmt.Errorf("invalid id %q: %w", args[1], err)
			}
			if err := op.del(cmd.Context(), uint(id)); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Deleted %s record %d\n", args[0], id)
			return nil
		},
	}

	contentCmd.AddCommand(listCmd)
	contentCmd.AddCommand(deleteCmd)
	return contentCmd
}
