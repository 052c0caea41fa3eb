package design

import (
	"context"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/alexiusacademia/gosteel/internal/check"
	"github.com/alexiusacademia/gosteel/internal/section"
	"github.com/alexiusacademia/gosteel/internal/steel"
)

// Outcome is the result of one screened demand. Err is set instead of
// Result when the demand could not be designed.
type Outcome struct {
	Index  int     `json:"index" yaml:"index"`
	Demand Demand  `json:"-" yaml:"-"`
	Result *Result `json:"result,omitempty" yaml:"result,omitempty"`
	Err    error   `json:"-" yaml:"-"`
}

// Screener runs many independent designs concurrently
type Screener struct {
	// Workers bounds the number of designs in flight; zero means GOMAXPROCS
	Workers int
	Log     logrus.FieldLogger
}

// Screen designs every demand with at most workers running at once
func Screen(ctx context.Context, demands []Demand, workers int) ([]Outcome, error) {
	return Screener{Workers: workers}.Screen(ctx, demands)
}

// Screen returns one outcome per demand, in input order. A failed demand
// is recorded in its outcome and does not stop the others; only context
// cancellation aborts the batch.
func (s Screener) Screen(parent context.Context, demands []Demand) ([]Outcome, error) {
	workers := s.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	log := s.Log
	if log == nil {
		log = logrus.StandardLogger()
	}

	start := time.Now()
	outcomes := make([]Outcome, len(demands))

	g, ctx := errgroup.WithContext(parent)
	g.SetLimit(workers)
	for i, d := range demands {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			r, err := Run(d)
			outcomes[i] = Outcome{Index: i, Demand: d, Result: r, Err: err}
			if err != nil {
				log.WithFields(logrus.Fields{
					"index": i,
					"grade": d.Grade.Name,
					"type":  d.SectionType.String(),
				}).WithError(err).Debug("design failed")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := parent.Err(); err != nil {
		return nil, err
	}

	log.WithFields(logrus.Fields{
		"demands":  len(demands),
		"workers":  workers,
		"duration": time.Since(start),
	}).Debug("screening complete")
	return outcomes, nil
}

// Alternatives returns the base demand once per grade and section type
// combination, grades varying slowest
func Alternatives(base Demand, grades []steel.Grade, types []section.Type) []Demand {
	out := make([]Demand, 0, len(grades)*len(types))
	for _, g := range grades {
		for _, t := range types {
			d := base
			d.Grade = g
			d.SectionType = t
			if base.Name != "" {
				d.Name = base.Name + " " + g.Name + " " + t.String()
			}
			out = append(out, d)
		}
	}
	return out
}

// Lightest returns the Safe outcome with the smallest section area.
// Ties keep the earlier outcome.
func Lightest(outcomes []Outcome) (Outcome, bool) {
	var best Outcome
	found := false
	for _, o := range outcomes {
		if o.Err != nil || o.Result == nil || o.Result.OverallStatus != check.Safe {
			continue
		}
		if !found || o.Result.SectionProperties.Area < best.Result.SectionProperties.Area {
			best = o
			found = true
		}
	}
	return best, found
}
