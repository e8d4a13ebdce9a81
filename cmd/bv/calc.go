package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
	"github.com/JustinWhittecar/bvcalc/internal/db"
	"github.com/JustinWhittecar/bvcalc/internal/ingestion"
	"github.com/JustinWhittecar/bvcalc/internal/models"
)

type calcOptions struct {
	report   bool
	json     bool
	save     bool
	gunnery  int
	piloting int
}

func newCalcCmd(a *app) *cobra.Command {
	opts := calcOptions{}
	cmd := &cobra.Command{
		Use:   "calc FILE...",
		Short: "Compute battle value for .mtf or .json unit files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(cmd, a, opts, args)
		},
	}
	f := cmd.Flags()
	f.BoolVar(&opts.report, "report", false, "print the calculation report")
	f.BoolVar(&opts.json, "json", false, "print results as JSON")
	f.BoolVar(&opts.save, "save", false, "store results in the results database")
	f.IntVar(&opts.gunnery, "gunnery", 4, "gunnery skill")
	f.IntVar(&opts.piloting, "piloting", 5, "piloting skill")
	return cmd
}

func runCalc(cmd *cobra.Command, a *app, opts calcOptions, files []string) error {
	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	cat, err := a.catalog(ctx)
	if err != nil {
		return err
	}
	var store db.ResultStore
	if opts.save {
		s, closeStore, err := a.store(ctx)
		if err != nil {
			return err
		}
		defer closeStore()
		store = s
	}

	var results []models.CalcResult
	var reports []bv.Report
	for _, path := range files {
		u, unknown, err := ingestion.LoadUnit(path, cat)
		if err != nil {
			return err
		}
		for _, name := range unknown {
			a.log.Warn().Str("unit", u.Name).Str("item", name).Msg("unknown equipment skipped")
		}
		res, err := bv.Compute(u)
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		rec, err := db.NewRecord(res, opts.gunnery, opts.piloting, path)
		if err != nil {
			return err
		}
		if store != nil {
			if err := store.Save(ctx, &rec); err != nil {
				return err
			}
		}
		r := models.NewCalcResult(res, rec.AdjustedBV, opts.gunnery, opts.piloting)
		r.ID = rec.ID
		r.Unknown = unknown
		results = append(results, r)
		reports = append(reports, res.Report)
	}

	if opts.json {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	if err := printResults(out, results); err != nil {
		return err
	}
	if opts.report {
		for i, rep := range reports {
			if err := printReport(out, results[i].Unit, rep); err != nil {
				return err
			}
		}
	}
	return nil
}

func printResults(w io.Writer, results []models.CalcResult) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Unit", "Kind", "BV", "Skill", "Adjusted", "Defensive", "Offensive", "Unknown"}),
	)
	for _, r := range results {
		row := []string{
			r.Unit,
			string(r.Kind),
			fmt.Sprintf("%d", r.BV),
			fmt.Sprintf("%d/%d", r.Gunnery, r.Piloting),
			fmt.Sprintf("%d", r.AdjustedBV),
			fmt.Sprintf("%.2f", r.Defensive),
			fmt.Sprintf("%.2f", r.Offensive),
			strings.Join(r.Unknown, ", "),
		}
		if err := table.Append(row); err != nil {
			return err
		}
	}
	return table.Render()
}

func printReport(w io.Writer, unit string, rep bv.Report) error {
	color.New(color.FgCyan, color.Bold).Fprintf(w, "\n%s\n", unit)
	table := tablewriter.NewTable(w,
		tablewriter.WithHeader([]string{"Step", "Calculation", "Result"}),
	)
	for _, l := range rep.Lines() {
		if err := table.Append([]string{l.Label, l.Calculation, l.Result}); err != nil {
			return err
		}
	}
	return table.Render()
}
