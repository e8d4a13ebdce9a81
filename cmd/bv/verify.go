package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
	"github.com/JustinWhittecar/bvcalc/internal/db"
	"github.com/JustinWhittecar/bvcalc/internal/equipment"
	"github.com/JustinWhittecar/bvcalc/internal/ingestion"
)

type verifyResult struct {
	variant db.PublishedBV
	calcBV  int
	diff    int
	absDiff int
	pctDiff float64
	defBR   float64
	offBR   float64
	mtfPath string
	unknown []string
	result  bv.Result
}

func newVerifyCmd(a *app) *cobra.Command {
	var (
		csvPath  string
		save     bool
		outliers int
	)
	cmd := &cobra.Command{
		Use:   "verify DB MTFROOT",
		Short: "Compare computed battle value against published values",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			a.cfg.DB.CatalogPath = args[0]
			cat, err := a.catalog(ctx)
			if err != nil {
				return err
			}
			sqlDB, err := db.ConnectSQLite(args[0])
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			variants, err := db.LoadPublishedBV(ctx, sqlDB)
			if err != nil {
				return err
			}
			mtfIndex := buildMTFIndex(args[1])
			fmt.Fprintf(out, "Loaded %d equipment entries\n", cat.Len())
			fmt.Fprintf(out, "Indexed %d MTF files\n", len(mtfIndex))
			fmt.Fprintf(out, "Loaded %d variants\n", len(variants))

			results, noMTF := verifyVariants(variants, mtfIndex, cat, a)

			summarize(out, len(variants), len(results), noMTF, results)

			sort.Slice(results, func(i, j int) bool {
				return results[i].absDiff > results[j].absDiff
			})
			if csvPath != "" {
				if err := writeCSV(csvPath, results); err != nil {
					return err
				}
				fmt.Fprintf(out, "\nCSV written to %s\n", csvPath)
			}
			printOutliers(out, results, outliers)

			if !save {
				return nil
			}
			store, closeStore, err := a.store(ctx)
			if err != nil {
				return err
			}
			defer closeStore()
			if store == nil {
				return nil
			}
			saved := 0
			for _, r := range results {
				rec, err := db.NewRecord(r.result, 4, 5, r.mtfPath)
				if err != nil {
					return err
				}
				if err := store.Save(ctx, &rec); err != nil {
					return err
				}
				saved++
			}
			fmt.Fprintf(out, "Stored %d results\n", saved)
			return nil
		},
	}
	cmd.Flags().StringVar(&csvPath, "csv", "bv-verification.csv", "CSV output path (empty to skip)")
	cmd.Flags().BoolVar(&save, "save", false, "store computed results")
	cmd.Flags().IntVar(&outliers, "outliers", 20, "number of outliers to list")
	return cmd
}

func verifyVariants(variants []db.PublishedBV, mtfIndex map[string]string, cat *equipment.Catalog, a *app) ([]verifyResult, int) {
	var results []verifyResult
	noMTF := 0
	for _, v := range variants {
		mtfPath := findMTF(v.ChassisName, v.ModelCode, mtfIndex)
		if mtfPath == "" {
			noMTF++
			continue
		}

		mtf, err := ingestion.ParseMTF(mtfPath)
		if err != nil {
			a.log.Warn().Err(err).Str("path", mtfPath).Msg("parse mtf")
			continue
		}
		u, unknown, err := ingestion.ToUnit(mtf, cat)
		if err != nil {
			a.log.Warn().Err(err).Str("path", mtfPath).Msg("convert mtf")
			continue
		}
		res, err := bv.Compute(u)
		if err != nil {
			a.log.Warn().Err(err).Str("unit", u.Name).Msg("compute")
			continue
		}

		diff := res.BV - v.BattleValue
		absDiff := int(math.Abs(float64(diff)))
		results = append(results, verifyResult{
			variant: v,
			calcBV:  res.BV,
			diff:    diff,
			absDiff: absDiff,
			pctDiff: float64(absDiff) / float64(v.BattleValue) * 100,
			defBR:   res.Defensive,
			offBR:   res.Offensive,
			mtfPath: mtfPath,
			unknown: unknown,
			result:  res,
		})
	}
	return results, noMTF
}

// buckets counts results within each absolute and percentage tolerance.
type buckets struct {
	exact, within1, within5, within10, within50, over50 int
	within1pct, within5pct, within10pct                 int
}

func bucket(results []verifyResult) buckets {
	var b buckets
	for _, r := range results {
		switch {
		case r.absDiff == 0:
			b.exact++
			fallthrough
		case r.absDiff <= 1:
			b.within1++
			fallthrough
		case r.absDiff <= 5:
			b.within5++
			fallthrough
		case r.absDiff <= 10:
			b.within10++
			fallthrough
		case r.absDiff <= 50:
			b.within50++
		default:
			b.over50++
		}
		if r.pctDiff <= 1 {
			b.within1pct++
		}
		if r.pctDiff <= 5 {
			b.within5pct++
		}
		if r.pctDiff <= 10 {
			b.within10pct++
		}
	}
	return b
}

func summarize(w io.Writer, variants, matched, noMTF int, results []verifyResult) {
	color.New(color.FgCyan, color.Bold).Fprintf(w, "\n=== BV2 Verification Results ===\n")
	fmt.Fprintf(w, "Total variants: %d\n", variants)
	fmt.Fprintf(w, "MTF matched: %d\n", matched)
	fmt.Fprintf(w, "No MTF found: %d\n", noMTF)
	fmt.Fprintln(w)

	b := bucket(results)
	total := len(results)
	fmt.Fprintf(w, "Exact match:  %d (%.1f%%)\n", b.exact, pct(b.exact, total))
	fmt.Fprintf(w, "Within ±1:    %d (%.1f%%)\n", b.within1, pct(b.within1, total))
	fmt.Fprintf(w, "Within ±5:    %d (%.1f%%)\n", b.within5, pct(b.within5, total))
	fmt.Fprintf(w, "Within ±10:   %d (%.1f%%)\n", b.within10, pct(b.within10, total))
	fmt.Fprintf(w, "Within ±50:   %d (%.1f%%)\n", b.within50, pct(b.within50, total))
	fmt.Fprintf(w, "Over ±50:     %d (%.1f%%)\n", b.over50, pct(b.over50, total))
	fmt.Fprintln(w)
	fmt.Fprintf(w, "Within 1%%:    %d (%.1f%%)\n", b.within1pct, pct(b.within1pct, total))
	fmt.Fprintf(w, "Within 5%%:    %d (%.1f%%)\n", b.within5pct, pct(b.within5pct, total))
	fmt.Fprintf(w, "Within 10%%:   %d (%.1f%%)\n", b.within10pct, pct(b.within10pct, total))
}

func printOutliers(w io.Writer, results []verifyResult, n int) {
	color.New(color.FgYellow, color.Bold).Fprintf(w, "\n=== Top %d Outliers (by absolute diff) ===\n", n)
	for i, r := range results {
		if i >= n {
			break
		}
		fmt.Fprintf(w, "%-30s %-10s pub=%4d calc=%4d diff=%+5d (%.1f%%) def=%.0f off=%.0f\n",
			r.variant.ChassisName, r.variant.ModelCode, r.variant.BattleValue, r.calcBV, r.diff, r.pctDiff, r.defBR, r.offBR)
	}
}

func writeCSV(path string, results []verifyResult) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	w.Write([]string{"Name", "Model", "Published BV", "Calculated BV", "Diff", "Abs Diff", "Pct Diff", "Defensive BR", "Offensive BR", "MTF Path", "Unknown"})
	for _, r := range results {
		w.Write([]string{
			r.variant.ChassisName,
			r.variant.ModelCode,
			fmt.Sprintf("%d", r.variant.BattleValue),
			fmt.Sprintf("%d", r.calcBV),
			fmt.Sprintf("%d", r.diff),
			fmt.Sprintf("%d", r.absDiff),
			fmt.Sprintf("%.1f", r.pctDiff),
			fmt.Sprintf("%.1f", r.defBR),
			fmt.Sprintf("%.1f", r.offBR),
			r.mtfPath,
			strings.Join(r.unknown, "; "),
		})
	}
	w.Flush()
	return w.Error()
}

func pct(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}

func buildMTFIndex(root string) map[string]string {
	index := make(map[string]string)
	filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil || info.IsDir() {
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(path), ".mtf") {
			return nil
		}
		key := strings.ToLower(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
		// First found wins
		if _, exists := index[key]; !exists {
			index[key] = path
		}
		return nil
	})
	return index
}

func findMTF(chassis, model string, index map[string]string) string {
	key := strings.ToLower(chassis + " " + model)
	if path, ok := index[key]; ok {
		return path
	}
	key = strings.ToLower(strings.ReplaceAll(chassis+" "+model, "'", ""))
	if path, ok := index[key]; ok {
		return path
	}
	// MegaMek file names use underscores for spaces
	key = strings.ReplaceAll(key, " ", "_")
	if path, ok := index[key]; ok {
		return path
	}
	return ""
}
