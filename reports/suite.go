package reports

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/onoma-org/onoma/dataset"
	"github.com/onoma-org/onoma/engine"
)

// ============================================================================
// SUITE — Runs Every View over One Immutable Snapshot
// ============================================================================
// The input is frozen after load and each view allocates its own intermediate
// aggregates, so the views run concurrently without locking. A view's failure
// is recorded per view and never interrupts the others.
// ============================================================================

// View names used as keys in Results.Errors and by the CLI.
const (
	ViewTopNames         = "top-names"
	ViewTrend            = "trend"
	ViewRankDelta        = "rank-delta"
	ViewTopPerYear       = "top-by-year"
	ViewTopPerDecade     = "top-by-decade"
	ViewBirthsByRegion   = "regions"
	ViewTopPerRegion     = "top-by-region"
	ViewNameLengths      = "name-lengths"
	ViewLengthPopularity = "length-popularity"
	ViewStateShare       = "state-share"
)

// TrendTarget selects one (name, gender) series for the trend view.
type TrendTarget struct {
	Name   string `json:"name"`
	Gender string `json:"gender"`
}

// Option configures a Suite via functional options.
type Option func(*config)

type config struct {
	topN        int
	lengthCount int
	trends      []TrendTarget
	deltaFirst  int
	deltaLast   int
	shareName   string
	logger      *slog.Logger
}

// WithTopN sets the per-partition limit for the top-N views.
func WithTopN(n int) Option {
	return func(c *config) { c.topN = n }
}

// WithLengthCount sets how many longest/shortest names the length view keeps.
func WithLengthCount(k int) Option {
	return func(c *config) { c.lengthCount = k }
}

// WithTrendTarget adds a (name, gender) series to the trend view.
// May be repeated. Without it the suite traces Michael (M) and Jessica (F).
func WithTrendTarget(name, gender string) Option {
	return func(c *config) { c.trends = append(c.trends, TrendTarget{Name: name, Gender: gender}) }
}

// WithDeltaYears sets the two years the rank-delta view compares.
// Without it the suite compares the earliest and latest years in the data.
func WithDeltaYears(first, last int) Option {
	return func(c *config) { c.deltaFirst, c.deltaLast = first, last }
}

// WithShareName sets the target name for the per-state percentage view.
func WithShareName(name string) Option {
	return func(c *config) { c.shareName = name }
}

// WithLogger sets the suite logger. Defaults to slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) { c.logger = logger }
}

func applyOptions(opts []Option) *config {
	cfg := &config{
		topN:        DefaultTopN,
		lengthCount: DefaultLengthCount,
		shareName:   "Marina",
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if len(cfg.trends) == 0 {
		cfg.trends = []TrendTarget{{Name: "Michael", Gender: "M"}, {Name: "Jessica", Gender: "F"}}
	}
	if cfg.logger == nil {
		cfg.logger = slog.Default()
	}
	return cfg
}

// Results collects every view's output. Trends is keyed "Name/Gender".
// A view that failed has a nil result and an entry in Errors.
type Results struct {
	TopNames         []TopName               `json:"topNames,omitempty"`
	Trends           map[string][]TrendPoint `json:"trends,omitempty"`
	RankDeltas       []DeltaRow              `json:"rankDeltas,omitempty"`
	TopPerYear       []PeriodTopName         `json:"topPerYear,omitempty"`
	TopPerDecade     []PeriodTopName         `json:"topPerDecade,omitempty"`
	BirthsByRegion   []RegionBirths          `json:"birthsByRegion,omitempty"`
	TopPerRegion     []RegionTopName         `json:"topPerRegion,omitempty"`
	NameLengths      *LengthExtremes         `json:"nameLengths,omitempty"`
	LengthPopularity []NameBirths            `json:"lengthPopularity,omitempty"`
	StateShares      []StateShare            `json:"stateShares,omitempty"`
	Errors           map[string]error        `json:"-"`
}

// Suite runs the full set of analytical views over one dataset snapshot.
type Suite struct {
	view    engine.RecordView
	mapping map[string]string
	cfg     *config
}

// NewSuite creates a suite over an immutable record view and a normalized
// region mapping.
func NewSuite(view engine.RecordView, mapping map[string]string, opts ...Option) *Suite {
	return &Suite{view: view, mapping: mapping, cfg: applyOptions(opts)}
}

// Run executes every view concurrently and returns the collected results.
// Failures are per view: a failed view leaves its Errors entry set and the
// remaining views complete normally. The context lets an embedding caller
// impose an external deadline; views check it before starting.
func (s *Suite) Run(ctx context.Context) *Results {
	results := &Results{
		Trends: make(map[string][]TrendPoint, len(s.cfg.trends)),
		Errors: make(map[string]error),
	}

	var mu sync.Mutex
	var g errgroup.Group

	run := func(name string, fn func() error) {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				mu.Lock()
				results.Errors[name] = err
				mu.Unlock()
				return nil
			}
			start := time.Now()
			if err := fn(); err != nil {
				mu.Lock()
				results.Errors[name] = err
				mu.Unlock()
				s.cfg.logger.Warn("view failed", "view", name, "error", err)
				return nil
			}
			s.cfg.logger.Debug("view complete", "view", name, "elapsed", time.Since(start))
			return nil
		})
	}

	run(ViewTopNames, func() error {
		out, err := TopNamesByGender(s.view)
		if err != nil {
			return err
		}
		mu.Lock()
		results.TopNames = out
		mu.Unlock()
		return nil
	})

	for _, target := range s.cfg.trends {
		target := target
		key := fmt.Sprintf("%s/%s", target.Name, target.Gender)
		run(ViewTrend+":"+key, func() error {
			out, err := NameTrend(s.view, target.Name, target.Gender)
			if err != nil {
				return err
			}
			mu.Lock()
			results.Trends[key] = out
			mu.Unlock()
			return nil
		})
	}

	run(ViewRankDelta, func() error {
		first, last := s.cfg.deltaFirst, s.cfg.deltaLast
		if first == 0 || last == 0 {
			first, last = yearSpan(s.view)
		}
		out, err := RankDelta(s.view, first, last)
		if err != nil {
			return err
		}
		mu.Lock()
		results.RankDeltas = out
		mu.Unlock()
		return nil
	})

	run(ViewTopPerYear, func() error {
		out, err := TopPerYear(s.view, s.cfg.topN)
		if err != nil {
			return err
		}
		mu.Lock()
		results.TopPerYear = out
		mu.Unlock()
		return nil
	})

	run(ViewTopPerDecade, func() error {
		out, err := TopPerDecade(s.view, s.cfg.topN)
		if err != nil {
			return err
		}
		mu.Lock()
		results.TopPerDecade = out
		mu.Unlock()
		return nil
	})

	run(ViewBirthsByRegion, func() error {
		out, err := BirthsByRegion(s.view, s.mapping)
		if err != nil {
			return err
		}
		mu.Lock()
		results.BirthsByRegion = out
		mu.Unlock()
		return nil
	})

	run(ViewTopPerRegion, func() error {
		out, err := TopPerRegion(s.view, s.mapping, s.cfg.topN)
		if err != nil {
			return err
		}
		mu.Lock()
		results.TopPerRegion = out
		mu.Unlock()
		return nil
	})

	run(ViewNameLengths, func() error {
		out, err := NameLengthExtremes(s.view, s.cfg.lengthCount)
		if err != nil {
			return err
		}
		mu.Lock()
		results.NameLengths = out
		mu.Unlock()
		return nil
	})

	run(ViewLengthPopularity, func() error {
		// The view recomputes its target lengths so it stays independent of
		// the name-lengths view.
		out, err := PopularityByLength(s.view, extremeLengths(s.view))
		if err != nil {
			return err
		}
		mu.Lock()
		results.LengthPopularity = out
		mu.Unlock()
		return nil
	})

	run(ViewStateShare, func() error {
		out, err := StatePercentage(s.view, s.cfg.shareName)
		if err != nil {
			return err
		}
		mu.Lock()
		results.StateShares = out
		mu.Unlock()
		return nil
	})

	_ = g.Wait() // errors are collected per view; Wait always returns nil
	return results
}

// yearSpan returns the earliest and latest year present in the view.
func yearSpan(view engine.RecordView) (first, last int) {
	for i := 0; i < view.Len(); i++ {
		year := atoi(view.Dimension(i, dataset.DimYear))
		if year == 0 {
			continue
		}
		if first == 0 || year < first {
			first = year
		}
		if year > last {
			last = year
		}
	}
	return first, last
}

// extremeLengths returns the minimum and maximum distinct-name lengths.
func extremeLengths(view engine.RecordView) []int {
	names := engine.UniqueValues(view, dataset.DimName)
	if len(names) == 0 {
		return nil
	}
	minLen, maxLen := -1, 0
	for _, name := range names {
		l := utf8.RuneCountInString(name)
		if minLen < 0 || l < minLen {
			minLen = l
		}
		if l > maxLen {
			maxLen = l
		}
	}
	if minLen == maxLen {
		return []int{minLen}
	}
	return []int{minLen, maxLen}
}
