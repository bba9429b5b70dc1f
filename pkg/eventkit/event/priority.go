package event

import (
	"math"
	"strconv"
)

// Priority orders handler invocation: higher priorities run earlier.
//
// Handlers sharing a priority run in registration order. Any int32 value is
// valid; the named constants are convenience presets on a symmetric scale,
// not an enum.
type Priority int32

// Named priority presets, from first-to-run to last-to-run.
const (
	First  Priority = math.MaxInt32
	Early  Priority = math.MaxInt32 / 2
	Pre    Priority = math.MaxInt32 / 4
	Normal Priority = 0
	Post   Priority = math.MinInt32 / 4
	Late   Priority = math.MinInt32 / 2
	Last   Priority = math.MinInt32
)

// String returns the preset name for exact matches, or the numeric value.
func (p Priority) String() string {
	switch p {
	case First:
		return "first"
	case Early:
		return "early"
	case Pre:
		return "pre"
	case Normal:
		return "normal"
	case Post:
		return "post"
	case Late:
		return "late"
	case Last:
		return "last"
	default:
		return strconv.FormatInt(int64(p), 10)
	}
}
