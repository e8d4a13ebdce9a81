package main

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/JustinWhittecar/bvcalc/internal/roster"
)

func newRosterCmd(a *app) *cobra.Command {
	var (
		asJSON bool
		save   bool
		budget int
	)
	cmd := &cobra.Command{
		Use:   "roster FILE",
		Short: "Score a roster JSON file against its budget",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			cat, err := a.catalog(ctx)
			if err != nil {
				return err
			}
			r, err := roster.Load(args[0], cat)
			if err != nil {
				return err
			}
			switch {
			case cmd.Flags().Changed("budget"):
				r.Budget = budget
			case r.Budget <= 0:
				r.Budget = a.cfg.Roster.Budget
			}

			opts := []roster.Option{roster.WithLogger(a.log)}
			if save {
				store, closeStore, err := a.store(ctx)
				if err != nil {
					return err
				}
				defer closeStore()
				if store != nil {
					opts = append(opts, roster.WithStore(store))
				}
			}
			sc, err := roster.NewScorer(a.cfg.Roster.Workers, opts...)
			if err != nil {
				return err
			}
			score, err := sc.Score(ctx, r)
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(score)
			}
			return printScore(cmd, score)
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the score as JSON")
	cmd.Flags().BoolVar(&save, "save", false, "store each entry in the results database")
	cmd.Flags().IntVar(&budget, "budget", roster.DefaultBudget, "override the roster budget")
	return cmd
}

func printScore(cmd *cobra.Command, score *roster.Score) error {
	out := cmd.OutOrStdout()
	color.New(color.FgCyan, color.Bold).Fprintf(out, "%s\n", score.Name)

	table := tablewriter.NewTable(out,
		tablewriter.WithHeader([]string{"#", "Unit", "Kind", "BV", "Skill", "Adjusted"}),
	)
	for i, e := range score.Entries {
		if err := table.Append([]string{
			fmt.Sprintf("%d", i+1),
			e.Unit,
			string(e.Kind),
			fmt.Sprintf("%d", e.BV),
			fmt.Sprintf("%d/%d", e.Gunnery, e.Piloting),
			fmt.Sprintf("%d", e.AdjustedBV),
		}); err != nil {
			return err
		}
	}
	if err := table.Render(); err != nil {
		return err
	}

	summary := fmt.Sprintf("Total: %d BV (%d base) / budget %d", score.AdjustedBV, score.TotalBV, score.Budget)
	if score.OverBudget {
		color.New(color.FgRed, color.Bold).Fprintf(out, "%s, over by %d\n", summary, score.AdjustedBV-score.Budget)
	} else {
		color.New(color.FgGreen, color.Bold).Fprintf(out, "%s\n", summary)
	}
	return nil
}
