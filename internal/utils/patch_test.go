package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPatchFromVersion(t *testing.T) {
	tests := []struct {
		version string
		want    string
		ok      bool
	}{
		{"15.3.512.1234", "15.3", true},
		{"14.10", "14.10", true},
		{"14.10.1", "14.10", true},
		{"15", "", false},
		{"abc.def", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			got, ok := PatchFromVersion(tt.version)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSortPatches(t *testing.T) {
	patches := []string{"15.10", "14.2", "15.9", "15.1", "16.1", "15.10"}
	SortPatches(patches)
	assert.Equal(t, []string{"14.2", "15.1", "15.9", "15.10", "15.10", "16.1"}, patches)
}

func TestComparePatches(t *testing.T) {
	assert.Equal(t, -1, ComparePatches("15.9", "15.10"))
	assert.Equal(t, 1, ComparePatches("16.1", "15.24"))
	assert.Equal(t, 0, ComparePatches("15.3", "15.3"))
	assert.Equal(t, -1, ComparePatches("15", "15.1"))
	assert.Equal(t, 1, ComparePatches("15.b", "15.a"))
}

func TestDurations(t *testing.T) {
	assert.Equal(t, "31:05", FormatDuration(1865))
	assert.Equal(t, "0:00", FormatDuration(-3))

	secs, ok := ParseDuration("31:05")
	assert.True(t, ok)
	assert.Equal(t, int64(1865), secs)

	for _, bad := range []string{"", "31", "31:5", "31:60", "x:10", ":10", "-1:10"} {
		_, ok := ParseDuration(bad)
		assert.False(t, ok, bad)
	}
}
