package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"github.com/JustinWhittecar/bvcalc/internal/handlers"
	"github.com/JustinWhittecar/bvcalc/internal/logging"
	"github.com/JustinWhittecar/bvcalc/internal/roster"
)

func newServeCmd(a *app) *cobra.Command {
	var (
		addr      string
		rateLimit int
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the battle value HTTP API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer cancel()

			// JSON logs for the server
			log := logging.New(a.cfg.LogLevel, os.Stderr)
			a.log = log

			if addr == "" {
				addr = a.cfg.Server.Addr
			}

			cat, err := a.catalog(ctx)
			if err != nil {
				return err
			}
			store, closeStore, err := a.store(ctx)
			if err != nil {
				return err
			}
			defer closeStore()

			opts := []roster.Option{roster.WithLogger(log)}
			if store != nil {
				opts = append(opts, roster.WithStore(store))
			}
			scorer, err := roster.NewScorer(a.cfg.Roster.Workers, opts...)
			if err != nil {
				return err
			}

			bvh := &handlers.BVHandler{Catalog: cat, Scorer: scorer, Store: store, Log: log}
			eqh := &handlers.EquipmentHandler{Catalog: cat}
			var limiter *handlers.RateLimiter
			if rateLimit > 0 {
				limiter = handlers.NewRateLimiter(rateLimit)
			}

			srv := &http.Server{
				Addr:              addr,
				Handler:           handlers.NewRouter(bvh, eqh, limiter, log),
				ReadHeaderTimeout: 10 * time.Second,
			}

			errc := make(chan error, 1)
			go func() {
				log.Info().Str("addr", addr).Int("workers", scorer.Workers()).Bool("store", store != nil).
					Int("catalog", cat.Len()).Msg("bv server listening")
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					errc <- err
				}
				close(errc)
			}()

			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			log.Info().Msg("shutting down")
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer shutdownCancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from config server.addr)")
	cmd.Flags().IntVar(&rateLimit, "rate-limit", 100, "calculation requests per client per minute (0 disables)")
	return cmd
}
