// Package touch implements the timestamp logic of touch(1): deciding which
// access and modification times to apply from a set of options, and applying
// them to a list of files.
package touch

import "fmt"

// Options is the set of options recognised by touch, as parsed from the
// command line. A nil time source was not given; a given but empty one is
// still a source, and fails to resolve.
type Options struct {
	AccessOnly       bool
	ModificationOnly bool
	NoCreate         bool
	NoDereference    bool

	Date      *string
	Timestamp *string
	Reference *string
}

type SourceKind int

const (
	SourceNow SourceKind = iota
	SourceReference
	SourceTimestamp
	SourceDate
)

func (k SourceKind) String() string {
	switch k {
	case SourceReference:
		return "reference"
	case SourceTimestamp:
		return "timestamp"
	case SourceDate:
		return "date"
	default:
		return "now"
	}
}

// TimeSource is where the new times come from. Value holds the reference
// path, timestamp or date string, depending on Kind.
type TimeSource struct {
	Kind  SourceKind
	Value string
}

// Axis selects which of the two file times are changed.
type Axis int

const (
	AxisBoth Axis = iota
	AxisAccessOnly
	AxisModificationOnly
)

func (a Axis) String() string {
	switch a {
	case AxisAccessOnly:
		return "access"
	case AxisModificationOnly:
		return "modification"
	default:
		return "both"
	}
}

// Config is the validated, read-only form of Options.
type Config struct {
	Source        TimeSource
	Axis          Axis
	NoCreate      bool
	NoDereference bool
}

// NewConfig validates opts. At most one of Date, Timestamp and Reference may
// be set. Setting both AccessOnly and ModificationOnly is the same as setting
// neither.
func NewConfig(opts Options) (Config, error) {
	cfg := Config{
		NoCreate:      opts.NoCreate,
		NoDereference: opts.NoDereference,
	}

	var sources []TimeSource
	if opts.Reference != nil {
		sources = append(sources, TimeSource{Kind: SourceReference, Value: *opts.Reference})
	}

	if opts.Timestamp != nil {
		sources = append(sources, TimeSource{Kind: SourceTimestamp, Value: *opts.Timestamp})
	}

	if opts.Date != nil {
		sources = append(sources, TimeSource{Kind: SourceDate, Value: *opts.Date})
	}

	switch len(sources) {
	case 0:
		cfg.Source = TimeSource{Kind: SourceNow}
	case 1:
		cfg.Source = sources[0]
	default:
		return Config{}, fmt.Errorf("%w: %s and %s", ErrConflictingSources, sources[0].Kind, sources[1].Kind)
	}

	switch {
	case opts.AccessOnly && !opts.ModificationOnly:
		cfg.Axis = AxisAccessOnly
	case opts.ModificationOnly && !opts.AccessOnly:
		cfg.Axis = AxisModificationOnly
	default:
		cfg.Axis = AxisBoth
	}

	return cfg, nil
}
