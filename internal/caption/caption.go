// Package caption builds stock-photo captions by filling word-pool
// placeholders in a fixed template set.
package caption

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"datafaker/internal/rng"
)

var placeholderRE = regexp.MustCompile(`\{(\w+)\}`)

// segment is either literal text or a pool to draw from.
type segment struct {
	text string
	pool []string
}

type template struct {
	segs []segment
}

var compiled = compileAll(templates, pools)

// Generate returns the caption for (seed, id). It draws from the caption
// stream only, so row fields are unaffected.
func Generate(seed string, id uint32) string {
	return Synthesize(rng.NewCaption(seed, id))
}

// Synthesize draws a template, then one value per placeholder left to right.
func Synthesize(s *rng.Stream) string {
	t := compiled[s.IntN(len(compiled))]
	var b strings.Builder
	for _, seg := range t.segs {
		if seg.pool == nil {
			b.WriteString(seg.text)
			continue
		}
		b.WriteString(seg.pool[s.IntN(len(seg.pool))])
	}
	return b.String()
}

// Templates reports how many templates are available.
func Templates() int { return len(compiled) }

func compileAll(raw []string, vocab map[string][]string) []template {
	upper := capitalizedPools(vocab)
	out := make([]template, 0, len(raw))
	for _, r := range raw {
		out = append(out, compile(r, vocab, upper))
	}
	return out
}

// compile splits a template into segments. A placeholder with an uppercase
// first letter, or one that opens the caption, uses the capitalized pool.
// Placeholders without a pool stay literal and consume no draw.
func compile(raw string, vocab, upper map[string][]string) template {
	var t template
	last := 0
	for _, m := range placeholderRE.FindAllStringSubmatchIndex(raw, -1) {
		if m[0] > last {
			t.segs = append(t.segs, segment{text: raw[last:m[0]]})
		}
		name := raw[m[2]:m[3]]
		key := strings.ToLower(name)
		switch {
		case vocab[key] == nil:
			t.segs = append(t.segs, segment{text: raw[m[0]:m[1]]})
		case name != key || len(t.segs) == 0:
			t.segs = append(t.segs, segment{pool: upper[key]})
		default:
			t.segs = append(t.segs, segment{pool: vocab[key]})
		}
		last = m[1]
	}
	if last < len(raw) {
		t.segs = append(t.segs, segment{text: raw[last:]})
	}
	if len(t.segs) > 0 && t.segs[0].pool == nil {
		t.segs[0].text = capitalize(t.segs[0].text)
	}
	return t
}

func capitalizedPools(vocab map[string][]string) map[string][]string {
	out := make(map[string][]string, len(vocab))
	for k, vals := range vocab {
		cv := make([]string, len(vals))
		for i, v := range vals {
			cv[i] = capitalize(v)
		}
		out[k] = cv
	}
	return out
}

// capitalize upper-cases the first rune. Callers run at init; a Caser is not
// safe for concurrent use.
func capitalize(s string) string {
	r, n := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return cases.Upper(language.Und).String(string(r)) + s[n:]
}
