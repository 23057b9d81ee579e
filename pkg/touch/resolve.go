package touch

import (
	"fmt"
	"time"

	"github.com/dansimau/coreutils/pkg/fsutil"
	"github.com/dansimau/coreutils/pkg/log"
)

// Times is the result of resolving a Config: the times to apply to every
// file of the invocation.
type Times struct {
	Access       time.Time
	Modification time.Time
	Axis         Axis
}

// AccessTime returns the access time to set, or nil if the access time must
// be left untouched.
func (t Times) AccessTime() *time.Time {
	if t.Axis == AxisModificationOnly {
		return nil
	}

	return &t.Access
}

// ModificationTime returns the modification time to set, or nil if the
// modification time must be left untouched.
func (t Times) ModificationTime() *time.Time {
	if t.Axis == AxisAccessOnly {
		return nil
	}

	return &t.Modification
}

// Resolver computes the times for a Config.
type Resolver struct {
	// Now returns the current time. Defaults to time.Now.
	Now func() time.Time

	// DateLayouts are tried, in order, after the built-in date layouts.
	DateLayouts []string
}

// Resolve computes the times for cfg using the wall clock.
func Resolve(cfg Config) (Times, error) {
	return (&Resolver{}).Resolve(cfg)
}

// Resolve computes the times to apply for cfg. A reference file takes
// precedence over a timestamp, which takes precedence over a date string;
// with none of them the current time is used.
func (r *Resolver) Resolve(cfg Config) (Times, error) {
	times := Times{Axis: cfg.Axis}

	switch cfg.Source.Kind {
	case SourceReference:
		ref, err := fsutil.ReadTimes(cfg.Source.Value, !cfg.NoDereference)
		if err != nil {
			return Times{}, fmt.Errorf("%w '%s': %w", ErrReferenceFile, cfg.Source.Value, unwrapPathError(err))
		}

		times.Access = ref.Access
		times.Modification = ref.Modification

	case SourceTimestamp:
		t, err := parseTimestamp(cfg.Source.Value, r.now())
		if err != nil {
			return Times{}, err
		}

		times.Access, times.Modification = t, t

	case SourceDate:
		t, err := parseDate(cfg.Source.Value, r.now(), r.DateLayouts)
		if err != nil {
			return Times{}, err
		}

		times.Access, times.Modification = t, t

	default:
		now := r.now()
		times.Access, times.Modification = now, now
	}

	l := log.Logger()
	l.Debug().
		Stringer("source", cfg.Source.Kind).
		Stringer("axis", cfg.Axis).
		Time("atime", times.Access).
		Time("mtime", times.Modification).
		Msg("resolved times")

	return times, nil
}

func (r *Resolver) now() time.Time {
	if r.Now != nil {
		return r.Now()
	}

	return time.Now()
}
