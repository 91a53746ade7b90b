// Package custom shows how a project plugs extensions into every surface:
// a GraphQL _extension resolver, a CLI command, a cron job and an HTTP route.
package custom

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/labstack/echo/v4"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"glomnidesigns.GO/api"
	"glomnidesigns.GO/app"
	"glomnidesigns.GO/cmd"
	"glomnidesigns.GO/config"
	"glomnidesigns.GO/cron"
	gqlregistry "glomnidesigns.GO/graphql/registry"
	"glomnidesigns.GO/model/entity"
)

// TagCount is how many designs carry a tag.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// CountTags tallies design tags, most used first, ties by name.
func CountTags(designs []entity.Design) []TagCount {
	counts := map[string]int{}
	for _, d := range designs {
		for _, t := range d.Tags {
			counts[t]++
		}
	}
	out := make([]TagCount, 0, len(counts))
	for t, n := range counts {
		out = append(out, TagCount{Tag: t, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Tag < out[j].Tag
	})
	return out
}

func designTags(ctx context.Context, a *app.App) ([]TagCount, error) {
	res := a.Client.GetAllDesigns(ctx)
	if !res.Success {
		return nil, errors.New(res.Error)
	}
	return CountTags(res.Data), nil
}

func init() {
	// GraphQL extension: { _extension(name: "designTags", args: "{\"limit\":5}") }
	gqlregistry.Register("designTags", func(ctx context.Context, args map[string]interface{}) (interface{}, error) {
		tags, err := designTags(ctx, app.Default())
		if err != nil {
			return nil, err
		}
		if limit := gqlregistry.IntArg(args, "limit", 0); limit > 0 && limit < len(tags) {
			tags = tags[:limit]
		}
		return tags, nil
	})

	// CLI command
	cmd.Register(&cobra.Command{
		Use:   "designs:tags",
		Short: "Count design tags",
		RunE: func(c *cobra.Command, args []string) error {
			tags, err := designTags(c.Context(), app.Default())
			if err != nil {
				return err
			}
			for _, t := range tags {
				fmt.Fprintf(c.OutOrStdout(), "%4d  %s\n", t.Count, t.Tag)
			}
			return nil
		},
	})

	// Cron job, off unless CRON_CMSPROBE is set
	cron.Register("cmsprobe", config.CronSchedule("cmsprobe"), func(ctx context.Context) error {
		a := app.Default()
		res := a.Client.GetInteriorCategories(ctx)
		if !res.Success {
			return errors.New(res.Error)
		}
		a.Log.Debug("cms reachable", zap.Int("interior_categories", len(res.Data)))
		return nil
	})

	// HTTP route
	api.RegisterGET("/custom/design-tags", func(c echo.Context) error {
		tags, err := designTags(c.Request().Context(), app.Default())
		if err != nil {
			return c.JSON(502, map[string]string{"error": err.Error()})
		}
		return c.JSON(200, tags)
	})
}
