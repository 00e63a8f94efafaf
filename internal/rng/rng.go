// Package rng derives reproducible pseudorandom streams from a seed string and
// an entity id.
//
// A stream is keyed by a string ("<seed>-<id>" for rows, "<seed>-<id>-caption"
// for captions). The key is hashed with xxh3 and the 64-bit digest seeds a
// PCG-DXSM generator, so the sequence is a pure function of the key on every
// platform. Every draw primitive consumes exactly one 64-bit output; callers
// rely on that to keep draw positions aligned across branches.
package rng

import (
	"math"
	"math/rand/v2"
	"strconv"

	"github.com/zeebo/xxh3"
)

// streamSalt decorrelates the two PCG seed words derived from one digest.
const streamSalt = 0x9e3779b97f4a7c15

// Stream is a deterministic source of draws. It is not safe for concurrent
// use; each row owns its own Stream.
type Stream struct {
	src   *rand.PCG
	draws int
}

// NewKeyed returns a stream whose output is a pure function of key.
func NewKeyed(key string) *Stream {
	h := xxh3.HashString(key)
	return &Stream{src: rand.NewPCG(h, h^streamSalt)}
}

// New returns the row stream for (seed, id).
func New(seed string, id uint32) *Stream {
	return NewKeyed(RowKey(seed, id))
}

// NewCaption returns the caption stream for (seed, id). It is independent of
// the row stream so caption draws never shift row fields.
func NewCaption(seed string, id uint32) *Stream {
	return NewKeyed(RowKey(seed, id) + "-caption")
}

// RowKey formats the stream key for an entity.
func RowKey(seed string, id uint32) string {
	return seed + "-" + strconv.FormatUint(uint64(id), 10)
}

// Float64 returns a uniform value in [0, 1) built from the low 53 bits of
// one generator output.
func (s *Stream) Float64() float64 {
	s.draws++
	return float64(s.src.Uint64()<<11>>11) / (1 << 53)
}

// IntN returns a uniform int in [0, n). It always consumes exactly one draw,
// unlike rand.IntN which may reject and redraw. n must be > 0.
func (s *Stream) IntN(n int) int {
	if n <= 0 {
		panic("rng: IntN called with n <= 0")
	}
	return int(s.Float64() * float64(n))
}

// Range returns a uniform int in [lo, hi] using one draw.
func (s *Stream) Range(lo, hi int) int {
	return lo + s.IntN(hi-lo+1)
}

// Chance reports whether one draw falls below p.
func (s *Stream) Chance(p float64) bool {
	return s.Float64() < p
}

// Uniform returns lo + r*(hi-lo) for one draw r.
func (s *Stream) Uniform(lo, hi float64) float64 {
	return lo + s.Float64()*(hi-lo)
}

// Draws reports how many values have been consumed so far.
func (s *Stream) Draws() int { return s.draws }

// Round3 rounds x to three decimal places, half away from zero.
func Round3(x float64) float64 {
	return math.Round(x*1000) / 1000
}
