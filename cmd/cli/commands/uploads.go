package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/coopfed/portal/internal/db/models"
	"github.com/coopfed/portal/internal/db/repos"
)

// refOwner matches content records that own storage references.
type refOwner interface {
	StorageRefs() map[string]string
}

// collectRefs walks every record of one content type and adds each owned
// reference to the set.
func collectRefs[T any, PT interface {
	*T
	refOwner
}](ctx context.Context, refs map[string]bool) error {
	repo := repos.NewContentRepository[T](database)
	for offset := 0; ; offset += models.MaxLimit {
		page, err := repo.List(ctx, &models.ListOptions{Limit: models.MaxLimit, Offset: offset})
		if err != nil {
			return err
		}
		for i := range page {
			for _, ref := range PT(&page[i]).StorageRefs() {
				if ref != "" {
					refs[ref] = true
				}
			}
		}
		if len(page) < models.MaxLimit {
			return nil
		}
	}
}

// GetUploadsCmd returns the uploads command and its subcommands.
func GetUploadsCmd() *cobra.Command {
	uploadsCmd := &cobra.Command{
		Use:   "uploads",
		Short: "Manage uploaded files",
	}

	var dryRun bool
	purgeCmd := &cobra.Command{
		Use:   "purge",
		Short: "Delete stored files no content record references",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			referenced := make(map[string]bool)
			if err := collectRefs[models.GalleryItem](ctx, referenced); err != nil {
				return err
			}
			if err := collectRefs[models.Executive](ctx, referenced); err != nil {
				return err
			}
			if err := collectRefs[models.Testimonial](ctx, referenced); err != nil {
				return err
			}
			if err := collectRefs[models.NewsPost](ctx, referenced); err != nil {
				return err
			}

			stored, err := store.List(ctx)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			purged := 0
			for _, ref := range stored {
				if referenced[ref] {
					continue
				}
				if dryRun {
					fmt.Fprintf(out, "Would delete %s\n", ref)
					purged++
					continue
				}
				if err := store.Delete(ctx, ref); err != nil {
					return fmt.Errorf("delete %s: %w", ref, err)
				}
				fmt.Fprintf(out, "Deleted %s\n", ref)
				purged++
			}
			fmt.Fprintf(out, "%d unreferenced file(s)\n", purged)
			return nil
		},
	}
	purgeCmd.Flags().BoolVar(&dryRun, "dry-run", false, "report unreferenced files without deleting them")

	uploadsCmd.AddCommand(purgeCmd)
	return uploadsCmd
}
