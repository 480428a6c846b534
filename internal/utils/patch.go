package utils

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// PatchFromVersion keeps the major.minor part of a game version such as "15.3.512.1234".
// It returns false when the version has no numeric major and minor.
func PatchFromVersion(version string) (string, bool) {
	parts := strings.Split(strings.TrimSpace(version), ".")
	if len(parts) < 2 {
		return "", false
	}
	major, err1 := strconv.Atoi(parts[0])
	minor, err2 := strconv.Atoi(parts[1])
	if err1 != nil || err2 != nil || major < 0 || minor < 0 {
		return "", false
	}
	return fmt.Sprintf("%d.%d", major, minor), true
}

// ComparePatches orders patches numerically part by part, so "15.10" follows "15.9".
// Non-numeric parts fall back to string comparison.
func ComparePatches(a, b string) int {
	pa, pb := strings.Split(a, "."), strings.Split(b, ".")
	for i := 0; i < len(pa) || i < len(pb); i++ {
		if i >= len(pa) {
			return -1
		}
		if i >= len(pb) {
			return 1
		}
		na, errA := strconv.Atoi(pa[i])
		nb, errB := strconv.Atoi(pb[i])
		if errA != nil || errB != nil {
			if c := strings.Compare(pa[i], pb[i]); c != 0 {
				return c
			}
			continue
		}
		if na != nb {
			if na < nb {
				return -1
			}
			return 1
		}
	}
	return 0
}

// SortPatches sorts in place, oldest first
func SortPatches(patches []string) {
	sort.SliceStable(patches, func(i, j int) bool { return ComparePatches(patches[i], patches[j]) < 0 })
}

// FormatDuration renders seconds as m:ss
func FormatDuration(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// ParseDuration reads an m:ss duration into seconds
func ParseDuration(s string) (int64, bool) {
	minutes, secs, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || minutes == "" || len(secs) != 2 {
		return 0, false
	}
	m, err := strconv.ParseInt(minutes, 10, 64)
	if err != nil || m < 0 {
		return 0, false
	}
	sec, err := strconv.ParseInt(secs, 10, 64)
	if err != nil || sec < 0 || sec > 59 {
		return 0, false
	}
	return m*60 + sec, true
}
