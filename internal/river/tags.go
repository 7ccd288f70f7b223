package river

import (
	"encoding/binary"
)

// Options carries the cycle parameters parsed from the command line.
type Options struct {
	// NCycle is the number of steps to cycle. The sign is the direction:
	// positive rotates toward higher-numbered tags.
	NCycle int

	// NTags is the tag-range width, in [1, 32]. All bitmaps are masked
	// to this many bits before use.
	NTags uint

	// AllOutputs unions occupancy across every output and propagates the
	// result to all of them.
	AllOutputs bool

	// Follow moves the focused view along with the cycle.
	Follow bool

	// SkipOccupied rejects candidate tag sets overlapping an occupied tag.
	SkipOccupied bool

	// SkipEmpty rejects candidate tag sets with no occupied tag.
	SkipEmpty bool
}

// CycleFailure reports why a cycle could not advance. The algorithm falls
// back to the unmodified current tags in every failure case; none of them
// is fatal.
type CycleFailure int

const (
	CycleOK CycleFailure = iota
	// CycleAllEmpty: skip-empty was set and no candidate overlapped an
	// occupied tag.
	CycleAllEmpty
	// CycleAllOccupied: skip-occupied was set and every candidate
	// overlapped an occupied tag.
	CycleAllOccupied
	// CycleExhausted: the rotation looped over all tags without reaching
	// the requested step count.
	CycleExhausted
)

func (f CycleFailure) String() string {
	switch f {
	case CycleOK:
		return "ok"
	case CycleAllEmpty:
		return "all tags empty"
	case CycleAllOccupied:
		return "all tags occupied"
	default:
		return "looped over all tags"
	}
}

// usedTags returns the bitmap mask for an nTags-wide tag range.
func usedTags(nTags uint) uint32 {
	if nTags >= 32 {
		return ^uint32(0)
	}
	return (1 << nTags) - 1
}

// OccupiedFromViewTags folds a raw view_tags array into a single occupancy
// bitmap: the OR of every view's little-endian uint32 tag bitmap.
func OccupiedFromViewTags(viewTags []byte) uint32 {
	var occupied uint32
	for offset := 0; offset+4 <= len(viewTags); offset += 4 {
		occupied |= binary.LittleEndian.Uint32(viewTags[offset:])
	}
	return occupied
}

// OccupiedTags computes the occupancy bitmap the cycle should respect:
// the focused output's alone, or the union over all outputs when
// AllOutputs is set and more than one output exists.
func OccupiedTags(outputs []*Output, focused *Output, opts Options) uint32 {
	used := usedTags(opts.NTags)

	if !opts.AllOutputs || len(outputs) == 1 {
		return OccupiedFromViewTags(focused.ViewTags) & used
	}

	var occupied uint32
	for _, output := range outputs {
		occupied |= OccupiedFromViewTags(output.ViewTags)
	}
	return occupied & used
}

// rotate advances a tag set by one position within an nTags-wide ring.
// The whole set moves as a block: a forward rotation wraps the top bit
// back to bit zero, a backward rotation wraps bit zero to the top.
func rotate(tags uint32, nTags uint, forward bool) uint32 {
	last := uint32(1) << (nTags - 1)
	var next uint32

	if forward {
		if tags&last != 0 {
			tags ^= last
			next = 1
		}
		next |= tags << 1
	} else {
		if tags&1 != 0 {
			tags ^= 1
			next = last
		}
		next |= tags >> 1
	}
	return next
}

// NextTags computes the new focused-tags bitmap by cycling the current one
// against the occupancy bitmap under the configured skip policies. On
// failure the current (masked) bitmap is returned unchanged along with the
// cause.
func NextTags(current, occupied uint32, opts Options) (uint32, CycleFailure) {
	used := usedTags(opts.NTags)
	tags := current & used
	occupied &= used

	// Cycling is meaningless with zero steps, impossible when every tag
	// is empty and empty tags are skipped, and impossible when every tag
	// is occupied and occupied tags are skipped.
	if opts.NCycle == 0 {
		return tags, CycleOK
	}
	if opts.SkipEmpty && occupied == 0 {
		return tags, CycleAllEmpty
	}
	if opts.SkipOccupied && occupied == used {
		return tags, CycleAllOccupied
	}

	initial := tags
	forward := opts.NCycle > 0
	want := absInt(opts.NCycle) % int(opts.NTags)

	accepted := 0
	for step := uint(0); step < opts.NTags; step++ {
		tags = rotate(tags, opts.NTags, forward)

		if opts.SkipEmpty && tags&occupied == 0 {
			continue
		}
		if opts.SkipOccupied && tags&occupied != 0 {
			continue
		}

		accepted++
		if accepted == want {
			return tags, CycleOK
		}
	}

	// Looped over every tag without settling; the skip policy (or a
	// full-width cycle) made the request infeasible.
	if opts.SkipEmpty {
		return initial, CycleAllEmpty
	}
	if opts.SkipOccupied {
		return initial, CycleAllOccupied
	}
	return initial, CycleExhausted
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
