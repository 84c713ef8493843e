package core

import (
	"context"
	"fmt"

	"botstats/internal/contract"
	"botstats/internal/outwriter"
	"botstats/schema"
)

// ExecuteStats runs the requested reports against the store and writes
// each one as a console table plus a chart image. An empty chart list
// runs every report.
func ExecuteStats(ctx context.Context, cfg *contract.Config, store contract.Store, ow *outwriter.OutWriter, charts []schema.ChartName) error {
	if len(charts) == 0 {
		charts = schema.AllCharts
	}

	for _, chart := range charts {
		switch chart {
		case schema.MonthlyChart:
			rows, err := store.MonthlyCounts(ctx)
			if err != nil {
				return err
			}
			if err := ow.WriteMonthly(rows, cfg); err != nil {
				return err
			}

		case schema.AdoptionChart:
			firsts, err := store.FirstCommitByRepo(ctx)
			if err != nil {
				return err
			}
			curve := schema.BuildAdoptionCurve(firsts)
			if err := ow.WriteAdoption(curve, cfg); err != nil {
				return err
			}

		case schema.TopChart:
			rows, err := store.TopRepos(ctx, cfg.TopLimit)
			if err != nil {
				return err
			}
			if err := ow.WriteTopRepos(rows, cfg); err != nil {
				return err
			}

		case schema.ProportionsChart:
			proportions, err := store.MarkerProportions(ctx)
			if err != nil {
				return err
			}
			if err := ow.WriteProportions(proportions, cfg); err != nil {
				return err
			}

		default:
			return fmt.Errorf("unknown chart %q. Valid charts: monthly, adoption, top, proportions", chart)
		}
	}

	return nil
}
