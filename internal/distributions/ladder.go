package distributions

import "datafaker/internal/rng"

// Ladder maps one uniform draw to a category index by walking ascending
// cumulative thresholds. Draws at or above the last threshold fall through to
// Residual: when Residual > 0 a second draw picks uniformly among that many
// trailing categories, otherwise the Fallback index is returned.
type Ladder struct {
	Thresholds []float64
	Residual   int
	Fallback   int
}

// Pick consumes one draw, or two when the ladder has a residual pool. The
// residual draw is consumed even when the first draw lands on a rung so the
// caller's draw count does not depend on the outcome.
func (l Ladder) Pick(s *rng.Stream) int {
	r := s.Float64()
	var extra float64
	if l.Residual > 0 {
		extra = s.Float64()
	}
	return l.index(r, extra)
}

func (l Ladder) index(r, extra float64) int {
	for i, th := range l.Thresholds {
		if r < th {
			return i
		}
	}
	if l.Residual > 0 {
		return len(l.Thresholds) + int(extra*float64(l.Residual))
	}
	return l.Fallback
}

// Draws is the fixed number of draws Pick consumes.
func (l Ladder) Draws() int {
	if l.Residual > 0 {
		return 2
	}
	return 1
}

// lengthBucket is one rung of a variable-length list distribution: draws
// below Below produce a length in [Min, Max].
type lengthBucket struct {
	Below    float64
	Min, Max int
}

// pickLength selects a bucket with one draw and a length inside it with a
// second draw that is always consumed.
func pickLength(s *rng.Stream, buckets []lengthBucket) int {
	r := s.Float64()
	span := s.Float64()
	b := buckets[len(buckets)-1]
	for _, cand := range buckets {
		if r < cand.Below {
			b = cand
			break
		}
	}
	return b.Min + int(span*float64(b.Max-b.Min+1))
}
