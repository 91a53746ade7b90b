package cmd

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"glomnidesigns.GO/cron/jobs"
	"glomnidesigns.GO/listing"
	"glomnidesigns.GO/service/content"
)

var (
	listSearch   string
	listCategory string
	listPage     int
	purgeTag     string
)

var designsListCmd = &cobra.Command{
	Use:   "designs:list",
	Short: "List designs with the same search, category and paging as the site",
	RunE: func(c *cobra.Command, args []string) error {
		a := newApp()
		res := a.Content.Designs(c.Context(), content.DesignQuery{
			Search:   listSearch,
			Category: listCategory,
			Page:     listPage,
		})
		if !res.Success {
			return errors.New(res.Error)
		}
		page := res.Data.Designs
		w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tNAME\tCATEGORIES\tFEATURED")
		for _, d := range page.Items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%v\n", d.Slug, d.Name, strings.Join(d.CategorySlugs(), ","), d.IsFeatured)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "page %d/%d, %d designs\n", page.CurrentPage, page.TotalPages, page.TotalItems)
		return nil
	},
}

var designsShowCmd = &cobra.Command{
	Use:   "designs:show <slug>",
	Short: "Show one design",
	Args:  cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		a := newApp()
		res := a.Content.Design(c.Context(), args[0])
		if !res.Success {
			return errors.New(res.Error)
		}
		d := res.Data
		out := c.OutOrStdout()
		fmt.Fprintf(out, "%s (%s)\n", d.Name, d.Slug)
		fmt.Fprintf(out, "Style:      %s\n", d.Style)
		fmt.Fprintf(out, "Location:   %s\n", d.Location)
		fmt.Fprintf(out, "Tags:       %s\n", d.Tags)
		fmt.Fprintf(out, "Categories: %s\n", strings.Join(d.CategorySlugs(), ", "))
		if img := d.FeaturedImage.ResolveURL(a.Client.AssetOrigin()); img != "" {
			fmt.Fprintf(out, "Image:      %s\n", img)
		}
		return nil
	},
}

var designsIndexCmd = &cobra.Command{
	Use:   "designs:index",
	Short: "Rebuild the Elasticsearch design index from the CMS",
	RunE: func(c *cobra.Command, args []string) error {
		a := newApp()
		if err := jobs.IndexDesigns(c.Context(), a); err != nil {
			return err
		}
		fmt.Fprintf(c.OutOrStdout(), "Indexed designs into %s\n", a.Index.IndexName())
		return nil
	},
}

var snapshotCmd = &cobra.Command{
	Use:   "content:snapshot",
	Short: "Mirror every CMS collection into the snapshot database",
	RunE: func(c *cobra.Command, args []string) error {
		svc, err := newApp().Snapshot()
		if err != nil {
			return err
		}
		report, syncErr := svc.Sync(c.Context())
		fmt.Fprintf(c.OutOrStdout(), `
=== Snapshot Report ===
Started:  %s
Duration: %s
`, report.StartedAt.Format(time.RFC3339), report.Duration.Round(time.Millisecond))
		w := tabwriter.NewWriter(c.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "COLLECTION\tFETCHED\tSTORED\tPRUNED\tERROR")
		for _, name := range sortedKeys(report.Collections) {
			r := report.Collections[name]
			fmt.Fprintf(w, "%s\t%d\t%d\t%d\t%s\n", name, r.Fetched, r.Stored, r.Pruned, r.Error)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		return syncErr
	},
}

var cachePurgeCmd = &cobra.Command{
	Use:   "cache:purge",
	Short: "Drop cached envelopes for a tag, or all of them",
	RunE: func(c *cobra.Command, args []string) error {
		n := newApp().Content.Purge(c.Context(), purgeTag)
		fmt.Fprintf(c.OutOrStdout(), "Purged %d cached entries\n", n)
		return nil
	},
}

var cacheWarmCmd = &cobra.Command{
	Use:   "cache:warm",
	Short: "Prefetch the default listings",
	RunE: func(c *cobra.Command, args []string) error {
		if err := jobs.WarmCache(c.Context(), newApp()); err != nil {
			return err
		}
		fmt.Fprintln(c.OutOrStdout(), "Cache warmed")
		return nil
	},
}

func init() {
	designsListCmd.Flags().StringVarP(&listSearch, "search", "s", "", "Search "+strings.Join(listing.DesignsView.SearchFields, ", "))
	designsListCmd.Flags().StringVarP(&listCategory, "category", "c", "all", "Category slug")
	designsListCmd.Flags().IntVarP(&listPage, "page", "p", 1, "Page number")
	cachePurgeCmd.Flags().StringVarP(&purgeTag, "tag", "t", "", "Cache tag (designs, categories, interiors, interior-categories, portfolios)")

	rootCmd.AddCommand(designsListCmd, designsShowCmd, designsIndexCmd, snapshotCmd, cachePurgeCmd, cacheWarmCmd)
}
