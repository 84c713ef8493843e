package outwriter

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"

	"botstats/internal/contract"
	"botstats/schema"
)

// markerLabel picks the plain or colored marker label per configuration.
func markerLabel(hasMarker bool, cfg *contract.Config) string {
	if cfg.UseColors {
		return contract.GetColorMarker(hasMarker)
	}
	return contract.GetPlainMarker(hasMarker)
}

// fmtPercent formats a 0..1 share as a percentage with the configured
// precision.
func fmtPercent(share float64, precision int) string {
	return fmt.Sprintf("%.*f%%", precision, share*100)
}

// printMonthlyTable writes the per-month activity table.
func printMonthlyTable(rows []schema.MonthlyCount, _ *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header([]string{"Month", "Repos", "Commits"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, r := range rows {
		data = append(data, []string{
			r.Month,
			strconv.Itoa(r.RepoCount),
			strconv.Itoa(r.CommitCount),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalCommits := 0
	for _, r := range rows {
		totalCommits += r.CommitCount
	}
	fmt.Printf("Showing %d months (total commits: %d)\n", len(rows), totalCommits)
	return nil
}

// printAdoptionTable writes the cumulative adoption curve table.
func printAdoptionTable(curve []schema.AdoptionPoint, _ *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header([]string{"Month", "With Marker", "Without Marker", "Total"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	var data [][]string
	for _, p := range curve {
		data = append(data, []string{
			p.Month,
			strconv.Itoa(p.WithMarker),
			strconv.Itoa(p.WithoutMarker),
			strconv.Itoa(p.WithMarker + p.WithoutMarker),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	if n := len(curve); n > 0 {
		last := curve[n-1]
		fmt.Printf("Adoption by %s: %d repositories with marker, %d without\n", last.Month, last.WithMarker, last.WithoutMarker)
	}
	return nil
}

// printTopReposTable writes the busiest-repositories table.
func printTopReposTable(rows []schema.RepoVolume, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header([]string{"Rank", "Repository", "Marker", "Commits"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	maxWidth := getMaxTableNameWidth(cfg)
	var data [][]string
	for i, r := range rows {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateName(r.Name, maxWidth),
			markerLabel(r.HasMarker, cfg),
			strconv.Itoa(r.CommitCount),
		})
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	totalCommits := 0
	for _, r := range rows {
		totalCommits += r.CommitCount
	}
	fmt.Printf("Showing top %d repositories (total commits: %d)\n", len(rows), totalCommits)
	return nil
}

// printProportionsTable writes the fleet-wide adoption summary table.
func printProportionsTable(p schema.MarkerProportions, cfg *contract.Config) error {
	table := tablewriter.NewWriter(os.Stdout)

	table.Header([]string{"Measure", "With Marker", "Total", "Share"})
	table.Configure(func(tc *tablewriter.Config) {
		tc.Row.Alignment.Global = tw.AlignRight
	})

	data := [][]string{
		{
			"Repositories",
			strconv.Itoa(p.MarkerRepos),
			strconv.Itoa(p.TotalRepos),
			fmtPercent(p.RepoShare(), cfg.Precision),
		},
		{
			"Commits",
			strconv.Itoa(p.MarkerCommits),
			strconv.Itoa(p.TotalCommits),
			fmtPercent(p.CommitShare(), cfg.Precision),
		},
	}

	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}
