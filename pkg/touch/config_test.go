package touch

import (
	"testing"

	"gotest.tools/v3/assert"
)

func ptr(s string) *string {
	return &s
}

func TestNewConfig_Sources(t *testing.T) {
	tests := []struct {
		name string
		opts Options
		want TimeSource
	}{
		{"default", Options{}, TimeSource{Kind: SourceNow}},
		{"reference", Options{Reference: ptr("ref")}, TimeSource{Kind: SourceReference, Value: "ref"}},
		{"timestamp", Options{Timestamp: ptr("200901030313")}, TimeSource{Kind: SourceTimestamp, Value: "200901030313"}},
		{"date", Options{Date: ptr("2009-01-03 03:13:00")}, TimeSource{Kind: SourceDate, Value: "2009-01-03 03:13:00"}},
		{"empty reference", Options{Reference: ptr("")}, TimeSource{Kind: SourceReference}},
		{"empty timestamp", Options{Timestamp: ptr("")}, TimeSource{Kind: SourceTimestamp}},
		{"empty date", Options{Date: ptr("")}, TimeSource{Kind: SourceDate}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := NewConfig(tt.opts)
			assert.NilError(t, err)
			assert.Equal(t, cfg.Source, tt.want)
		})
	}
}

func TestNewConfig_ConflictingSources(t *testing.T) {
	for _, opts := range []Options{
		{Reference: ptr("ref"), Timestamp: ptr("200901030313")},
		{Reference: ptr("ref"), Date: ptr("2009-01-03")},
		{Timestamp: ptr("200901030313"), Date: ptr("2009-01-03")},
		{Reference: ptr("ref"), Timestamp: ptr("200901030313"), Date: ptr("2009-01-03")},
		{Reference: ptr(""), Date: ptr("")},
	} {
		_, err := NewConfig(opts)
		assert.ErrorIs(t, err, ErrConflictingSources)
	}
}

func TestNewConfig_Axis(t *testing.T) {
	tests := []struct {
		accessOnly, modificationOnly bool
		want                         Axis
	}{
		{false, false, AxisBoth},
		{true, false, AxisAccessOnly},
		{false, true, AxisModificationOnly},
		{true, true, AxisBoth},
	}

	for _, tt := range tests {
		cfg, err := NewConfig(Options{AccessOnly: tt.accessOnly, ModificationOnly: tt.modificationOnly})
		assert.NilError(t, err)
		assert.Equal(t, cfg.Axis, tt.want, "-a=%v -m=%v", tt.accessOnly, tt.modificationOnly)
	}
}

func TestNewConfig_Flags(t *testing.T) {
	cfg, err := NewConfig(Options{NoCreate: true, NoDereference: true})
	assert.NilError(t, err)
	assert.Assert(t, cfg.NoCreate)
	assert.Assert(t, cfg.NoDereference)
}
