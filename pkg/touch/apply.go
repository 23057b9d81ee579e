package touch

import (
	"sync"

	"github.com/dansimau/coreutils/pkg/fsutil"
	"github.com/dansimau/coreutils/pkg/log"
	"github.com/sourcegraph/conc/pool"
)

type OutcomeKind int

const (
	Created OutcomeKind = iota
	TimesUpdated
	SkippedNoCreate
	Failed
)

func (k OutcomeKind) String() string {
	switch k {
	case Created:
		return "created"
	case TimesUpdated:
		return "updated"
	case SkippedNoCreate:
		return "skipped"
	default:
		return "failed"
	}
}

// Outcome is the result of touching a single file. Err is set only when Kind
// is Failed.
type Outcome struct {
	Index int
	Path  string
	Kind  OutcomeKind
	Err   error
}

type Outcomes []Outcome

// Failed reports whether any file could not be touched.
func (o Outcomes) Failed() bool {
	for _, outcome := range o {
		if outcome.Kind == Failed {
			return true
		}
	}

	return false
}

// Applier applies resolved times to files.
type Applier struct {
	// Jobs is the maximum number of files processed at once. Values below 2
	// process files sequentially, in order.
	Jobs int

	// Report, if set, is called once for each file as soon as it has been
	// processed. With Jobs > 1 calls happen in completion order, but are never
	// concurrent.
	Report func(Outcome)
}

// Apply touches paths sequentially with the given times.
func Apply(paths []string, times Times, cfg Config) Outcomes {
	return (&Applier{}).Apply(paths, times, cfg)
}

// Apply touches each of paths with times and returns one outcome per path,
// in the order of paths. A failure on one file does not stop the others.
func (a *Applier) Apply(paths []string, times Times, cfg Config) Outcomes {
	outcomes := make(Outcomes, len(paths))

	var mu sync.Mutex
	report := func(o Outcome) {
		outcomes[o.Index] = o

		if a.Report != nil {
			mu.Lock()
			defer mu.Unlock()
			a.Report(o)
		}
	}

	if a.Jobs < 2 {
		for i, path := range paths {
			report(applyOne(i, path, times, cfg))
		}

		return outcomes
	}

	p := pool.New().WithMaxGoroutines(a.Jobs)
	for i, path := range paths {
		i, path := i, path // capture for closure
		p.Go(func() {
			report(applyOne(i, path, times, cfg))
		})
	}

	p.Wait()

	return outcomes
}

func applyOne(index int, path string, times Times, cfg Config) Outcome {
	outcome := Outcome{Index: index, Path: path}
	follow := !cfg.NoDereference

	l := log.Logger()

	if _, err := fsutil.Stat(path, follow); err != nil {
		if cfg.NoCreate {
			l.Debug().Str("path", path).Msg("not creating missing file")

			outcome.Kind = SkippedNoCreate

			return outcome
		}

		if err := fsutil.Create(path); err != nil {
			outcome.Kind = Failed
			outcome.Err = err

			return outcome
		}

		outcome.Kind = Created
	} else {
		outcome.Kind = TimesUpdated
	}

	if err := fsutil.SetTimes(path, times.AccessTime(), times.ModificationTime(), follow); err != nil {
		outcome.Kind = Failed
		outcome.Err = err

		return outcome
	}

	l.Debug().Str("path", path).Stringer("outcome", outcome.Kind).Msg("touched")

	return outcome
}
