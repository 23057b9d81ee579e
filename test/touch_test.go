package test

import (
	"os"
	"testing"
	"time"

	"github.com/dansimau/coreutils/pkg/testutil"
	"github.com/dansimau/coreutils/pkg/touchcli"
	"gotest.tools/v3/assert"
	"gotest.tools/v3/assert/cmp"
)

var before = time.Date(2005, 5, 5, 5, 5, 5, 0, time.UTC)

func TestTouch_CreateEmptyFiles(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		mustTouch(t, 0, "file1.rs", "file2.rs")

		for _, name := range []string{"file1.rs", "file2.rs"} {
			fi, err := os.Stat(name)
			assert.NilError(t, err)
			assert.Equal(t, fi.Size(), int64(0))
		}
	})
}

func TestTouch_UpdateExistingFiles(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		testutil.CreateFileWithTimes(t, ".", "file3.rs", before, before)

		mustTouch(t, 0, "file3.rs", "file4.rs")

		times := mustStatTimes(t, "file3.rs")
		assert.Assert(t, times.Access.After(before))
		assert.Assert(t, times.Modification.After(before))
		assert.Assert(t, exists("file4.rs"))
	})
}

func TestTouch_UpdateOnlyAccessTime(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		testutil.CreateFileWithTimes(t, ".", "file5.rs", before, before)

		mustTouch(t, 0, "-a", "file5.rs", "file6.rs")

		times := mustStatTimes(t, "file5.rs")
		assert.Assert(t, times.Access.After(before))
		assert.Assert(t, times.Modification.Equal(before))
	})
}

func TestTouch_UpdateOnlyModificationTime(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		testutil.CreateFileWithTimes(t, ".", "file7.rs", before, before)

		mustTouch(t, 0, "-m", "file7.rs", "file8.rs")

		times := mustStatTimes(t, "file7.rs")
		assert.Assert(t, times.Access.Equal(before))
		assert.Assert(t, times.Modification.After(before))
	})
}

func TestTouch_BothAxisFlags(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		testutil.CreateFileWithTimes(t, ".", "file", before, before)

		mustTouch(t, 0, "-a", "-m", "file")

		times := mustStatTimes(t, "file")
		assert.Assert(t, times.Access.After(before))
		assert.Assert(t, times.Modification.After(before))
	})
}

func TestTouch_UpdateTimeWithDate(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		testutil.CreateFileWithTimes(t, ".", "file9.rs", before, before)

		mustTouch(t, 0, "-d=2009-01-03 03:13:00", "file9.rs", "file10.rs")

		want := time.Date(2009, 1, 3, 3, 13, 0, 0, time.UTC)
		for _, name := range []string{"file9.rs", "file10.rs"} {
			times := mustStatTimes(t, name)
			assert.Assert(t, times.Modification.Equal(want), "%s: %v", name, times.Modification)
			assert.Assert(t, times.Access.Equal(want), "%s: %v", name, times.Access)
		}
	})
}

func TestTouch_Timestamp(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		mustTouch(t, 0, "-t", "0901030313.30", "file")

		times := mustStatTimes(t, "file")
		assert.Assert(t, times.Modification.Equal(time.Date(2009, 1, 3, 3, 13, 30, 0, time.UTC)))
	})
}

func TestTouch_ReferenceFile(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		testutil.CreateFileWithTimes(t, ".", "ref", before, before.Add(time.Minute))

		mustTouch(t, 0, "-r", "ref", "a", "b")

		for _, name := range []string{"a", "b"} {
			times := mustStatTimes(t, name)
			assert.Assert(t, times.Access.Equal(before))
			assert.Assert(t, times.Modification.Equal(before.Add(time.Minute)))
		}
	})
}

func TestTouch_NoDereference(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		testutil.CreateFileWithTimes(t, ".", "target", before, before)
		testutil.ExecOrFail(t, `ln -s target link`)

		mustTouch(t, 0, "-h", "-d", "2009-01-03 03:13:00", "link")

		assert.Assert(t, mustStatTimes(t, "target").Modification.Equal(before))
		assert.Assert(t, testutil.MustReadTimes(t, "link", false).Modification.Equal(
			time.Date(2009, 1, 3, 3, 13, 0, 0, time.UTC)))
	})
}

func TestTouch_NoCreate(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		stderr := mustTouch(t, 0, "-c", "missing")
		assert.Equal(t, stderr, "")
		assert.Assert(t, !exists("missing"))
	})
}

func TestTouch_BatchWithFailure(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		testutil.ExecOrFail(t, `touch notadir`)

		stderr := mustTouch(t, touchcli.ExitFailure, "one", "notadir/two", "three")
		assert.Assert(t, cmp.Contains(stderr, "cannot touch 'notadir/two'"))
		assert.Assert(t, exists("one"))
		assert.Assert(t, exists("three"))
	})
}

func TestTouch_FatalErrorTouchesNothing(t *testing.T) {
	testutil.WithTempWorkingDir(t, func() {
		stderr := mustTouch(t, touchcli.ExitFatal, "-t", "200913030313", "one")
		assert.Assert(t, cmp.Contains(stderr, "invalid date format '200913030313'"))
		assert.Assert(t, !exists("one"))
	})
}
