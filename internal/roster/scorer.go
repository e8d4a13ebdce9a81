package roster

import (
	"context"
	"fmt"
	"runtime"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"golang.org/x/sync/errgroup"

	"github.com/JustinWhittecar/bvcalc/internal/bv"
	"github.com/JustinWhittecar/bvcalc/internal/db"
)

const instrumentationName = "github.com/JustinWhittecar/bvcalc/internal/roster"

// EntryScore is the outcome for one roster entry.
type EntryScore struct {
	Unit       string    `json:"unit"`
	Kind       bv.Kind   `json:"kind"`
	BV         int       `json:"bv"`
	AdjustedBV int       `json:"adjustedBv"`
	Gunnery    int       `json:"gunnery"`
	Piloting   int       `json:"piloting"`
	Result     bv.Result `json:"-"`
}

// Score totals a roster. Entries keep roster order.
type Score struct {
	Name       string       `json:"name"`
	Budget     int          `json:"budget"`
	Entries    []EntryScore `json:"entries"`
	TotalBV    int          `json:"totalBv"`
	AdjustedBV int          `json:"adjustedBv"`
	OverBudget bool         `json:"overBudget"`
}

// Scorer computes roster entries on a bounded worker pool. Each entry is an
// independent calculation, so workers share nothing but the store.
type Scorer struct {
	workers int
	store   db.ResultStore
	log     zerolog.Logger

	calculations metric.Int64Counter
	failures     metric.Int64Counter
	duration     metric.Float64Histogram
}

// Option configures a Scorer.
type Option func(*Scorer)

// WithStore saves every scored entry.
func WithStore(s db.ResultStore) Option {
	return func(sc *Scorer) { sc.store = s }
}

// WithLogger sets the scorer's logger.
func WithLogger(l zerolog.Logger) Option {
	return func(sc *Scorer) { sc.log = l }
}

// NewScorer creates a Scorer with the given pool size; zero or less uses
// GOMAXPROCS. Metrics go to the global OTel meter (no-op if not configured).
func NewScorer(workers int, opts ...Option) (*Scorer, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	s := &Scorer{workers: workers, log: zerolog.Nop()}
	for _, opt := range opts {
		opt(s)
	}

	m := otel.Meter(instrumentationName)
	var err error
	s.calculations, err = m.Int64Counter(
		"bv.calculations",
		metric.WithDescription("Total battle value calculations"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating calculations counter: %w", err)
	}
	s.failures, err = m.Int64Counter(
		"bv.calculation.errors",
		metric.WithDescription("Battle value calculations rejected as caller misuse"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating errors counter: %w", err)
	}
	s.duration, err = m.Float64Histogram(
		"bv.calculation.duration",
		metric.WithDescription("Battle value calculation time"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating duration histogram: %w", err)
	}
	return s, nil
}

// Workers returns the pool size.
func (s *Scorer) Workers() int { return s.workers }

// Score computes every entry of r. The first failing entry cancels the rest
// and its error is returned.
func (s *Scorer) Score(ctx context.Context, r *Roster) (*Score, error) {
	out := make([]EntryScore, len(r.Entries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i, e := range r.Entries {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			es, err := s.scoreEntry(ctx, e)
			if err != nil {
				return fmt.Errorf("entry %d: %w", i, err)
			}
			out[i] = es
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	budget := r.Budget
	if budget <= 0 {
		budget = DefaultBudget
	}
	sc := &Score{Name: r.Name, Budget: budget, Entries: out}
	for _, es := range out {
		sc.TotalBV += es.BV
		sc.AdjustedBV += es.AdjustedBV
	}
	sc.OverBudget = sc.AdjustedBV > budget
	s.log.Info().Str("roster", r.Name).Int("entries", len(out)).Int("bv", sc.AdjustedBV).
		Int("budget", budget).Bool("overBudget", sc.OverBudget).Msg("scored roster")
	return sc, nil
}

func (s *Scorer) scoreEntry(ctx context.Context, e Entry) (EntryScore, error) {
	if e.Unit == nil {
		return EntryScore{}, fmt.Errorf("%w: entry has no unit", bv.ErrNoLocations)
	}
	kind := metric.WithAttributes(attribute.String("kind", string(e.Unit.Kind)))

	start := time.Now()
	res, err := bv.Compute(e.Unit)
	elapsed := time.Since(start)
	s.calculations.Add(ctx, 1, kind)
	s.duration.Record(ctx, float64(elapsed.Microseconds())/1000, kind)
	if err != nil {
		s.failures.Add(ctx, 1, kind)
		s.log.Warn().Err(err).Str("unit", e.Unit.Name).Str("kind", string(e.Unit.Kind)).Msg("calculation rejected")
		return EntryScore{}, err
	}

	rec, err := db.NewRecord(res, e.Gunnery, e.Piloting, "roster")
	if err != nil {
		return EntryScore{}, err
	}
	s.log.Debug().Str("unit", res.Unit).Str("kind", string(res.Kind)).Int("bv", res.BV).
		Dur("duration", elapsed).Msg("computed unit")

	if s.store != nil {
		if err := s.store.Save(ctx, &rec); err != nil {
			return EntryScore{}, fmt.Errorf("save %q: %w", res.Unit, err)
		}
	}

	return EntryScore{
		Unit:       res.Unit,
		Kind:       res.Kind,
		BV:         res.BV,
		AdjustedBV: rec.AdjustedBV,
		Gunnery:    e.Gunnery,
		Piloting:   e.Piloting,
		Result:     res,
	}, nil
}
