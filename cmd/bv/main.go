package main

import (
	"context"
	"os"

	"github.com/fatih/color"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/JustinWhittecar/bvcalc/internal/config"
	"github.com/JustinWhittecar/bvcalc/internal/db"
	"github.com/JustinWhittecar/bvcalc/internal/equipment"
	"github.com/JustinWhittecar/bvcalc/internal/logging"
)

// app carries what every subcommand needs once config is loaded.
type app struct {
	cfgFile string
	cfg     config.Config
	log     zerolog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "bv",
		Short: "BattleTech Battle Value (BV2) calculator",
		Long: `Computes Battle Value for Meks, vehicles, battle armor, infantry,
aerospace fighters, large craft and buildings from MegaMek .mtf files or
JSON unit snapshots.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := config.Load(a.cfgFile); err != nil {
				return err
			}
			cfg, err := config.Get()
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.log = logging.NewConsole(cfg.LogLevel, cmd.ErrOrStderr(), color.NoColor)
			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (JSON or YAML)")

	root.AddCommand(
		newCalcCmd(a),
		newRosterCmd(a),
		newVerifyCmd(a),
		newServeCmd(a),
	)
	return root
}

// catalog returns the built-in equipment catalog overlaid with the catalog
// database when one is configured.
func (a *app) catalog(ctx context.Context) (*equipment.Catalog, error) {
	cat := equipment.Default()
	if a.cfg.DB.CatalogPath == "" {
		return cat, nil
	}
	sqlDB, err := db.ConnectSQLite(a.cfg.DB.CatalogPath)
	if err != nil {
		return nil, err
	}
	defer sqlDB.Close()

	rows, err := db.LoadEquipmentRows(ctx, sqlDB)
	if err != nil {
		return nil, err
	}
	n := cat.Merge(rows)
	a.log.Debug().Int("rows", len(rows)).Int("added", n).Msg("merged equipment catalog")
	return cat, nil
}

// store opens the configured result store. A nil store with a nil error
// means storage is disabled.
func (a *app) store(ctx context.Context) (db.ResultStore, func(), error) {
	if dsn := a.cfg.DB.PostgresDSN; dsn != "" {
		pg, err := db.ConnectPostgres(ctx, dsn)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg.Close, nil
	}
	if a.cfg.DB.ResultsPath == "" {
		return nil, func() {}, nil
	}
	sqlDB, err := db.ConnectResultsDB(a.cfg.DB.ResultsPath)
	if err != nil {
		return nil, nil, err
	}
	return db.NewSQLiteResults(sqlDB), func() { sqlDB.Close() }, nil
}
