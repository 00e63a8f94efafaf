// Package distributions turns rng draws into realistic field values for the
// images_analytical row.
//
// Every sampler consumes a fixed number of draws regardless of which branch
// it takes: a conditional value that ends up unused still burns its draw.
// That keeps each field at a stable offset in the row stream, so changing one
// probability never shifts unrelated fields.
package distributions

import (
	"time"

	"datafaker/internal/rng"
)

var (
	genderLadder = Ladder{Thresholds: []float64{0.66, 0.99}, Fallback: -1}
	ageLadder    = Ladder{Thresholds: []float64{0.50, 0.75, 0.85, 0.90, 0.95, 1.0}, Fallback: -1}
	siteLadder   = Ladder{Thresholds: []float64{0.40, 0.48, 0.56, 0.64, 0.69, 0.74}, Residual: 12}

	ethnicityLadder = Ladder{
		Thresholds: []float64{0.70, 0.80, 0.88, 0.93, 0.96, 0.98, 0.99, 0.995},
		Fallback:   8,
	}

	keywordBuckets = []lengthBucket{
		{Below: 0.10, Min: 0, Max: 0},
		{Below: 0.30, Min: 1, Max: 3},
		{Below: 0.60, Min: 2, Max: 7},
		{Below: 0.80, Min: 5, Max: 12},
		{Below: 0.95, Min: 10, Max: 15},
		{Below: 1.00, Min: 15, Max: 20},
	}

	detectionBuckets = []lengthBucket{
		{Below: 0.20, Min: 0, Max: 0},
		{Below: 0.50, Min: 1, Max: 1},
		{Below: 0.75, Min: 2, Max: 4},
		{Below: 0.90, Min: 3, Max: 7},
		{Below: 1.00, Min: 8, Max: 15},
	}
)

// Gender: ~66% woman, ~33% man, ~1% unknown. One draw.
func Gender(s *rng.Stream) Category {
	i := genderLadder.Pick(s)
	if i < 0 {
		return Category{}
	}
	return genders[i]
}

// Age: adult ~50%, young ~25%, teenager ~10%, child/baby/old ~5% each.
// One draw.
func Age(s *rng.Stream) Category {
	i := ageLadder.Pick(s)
	if i < 0 {
		return Category{}
	}
	return ages[i]
}

// AgeDetail returns 0 (unknown) 30% of the time, else 1..20. Two draws.
func AgeDetail(s *rng.Stream) uint8 {
	unknown := s.Chance(0.3)
	v := uint8(s.Range(1, 20))
	if unknown {
		return 0
	}
	return v
}

// Site picks a provider: Getty ~40%, then five ~5-8% providers, with the
// remaining 26% spread evenly over the twelve minor providers. Two draws.
func Site(s *rng.Stream) Category {
	return Sites[siteLadder.Pick(s)]
}

// Location returns the unknown sentinel 30% of the time, else a uniform pick
// from Countries. Two draws.
func Location(s *rng.Stream) Country {
	unknown := s.Chance(0.30)
	c := Countries[s.IntN(len(Countries))]
	if unknown {
		return Country{}
	}
	return c
}

// Ethnicity holds the id list and the indicator flags. Both come from one
// draw and always agree.
type Ethnicity struct {
	IDs             []uint8
	White           bool
	Black           bool
	Asian           bool
	Hispanic        bool
	MiddleEastern   bool
	NativeAmerican  bool
	PacificIslander bool
	Mixed           bool
	Other           bool
}

// SampleEthnicity draws a single ethnicity. One draw.
func SampleEthnicity(s *rng.Stream) Ethnicity {
	id := uint8(ethnicityLadder.Pick(s)) + 1
	e := Ethnicity{IDs: []uint8{id}}
	switch id {
	case EthnicityWhite:
		e.White = true
	case EthnicityAsian:
		e.Asian = true
	case EthnicityBlack:
		e.Black = true
	case EthnicityHispanic:
		e.Hispanic = true
	case EthnicityMiddleEastern:
		e.MiddleEastern = true
	case EthnicityNativeAmerican:
		e.NativeAmerican = true
	case EthnicityPacificIslander:
		e.PacificIslander = true
	case EthnicityMixed:
		e.Mixed = true
	default:
		e.Other = true
	}
	return e
}

// Presence is the set of correlated detection flags.
type Presence struct {
	Face        bool
	Body        bool
	Feet        bool
	Hands       bool
	LeftHand    bool
	RightHand   bool
	FaceDistant bool
	Small       bool
	FaceNoLms   bool
}

// PresenceDraws is the fixed draw count of SamplePresence.
const PresenceDraws = 9

// SamplePresence draws the flags along their dependency chain:
// face → body → hands → left/right hand, body → feet, face → distant and
// no-landmarks. Nine draws, one per flag.
func SamplePresence(s *rng.Stream) Presence {
	var p Presence
	p.Face = s.Chance(0.60)
	p.Body = conditional(s, p.Face, 0.75, 0.20)
	p.Hands = conditional(s, p.Body, 0.50, 0.10)
	p.LeftHand = gated(s, p.Hands, 0.60)
	p.RightHand = gated(s, p.Hands, 0.60)
	p.Feet = conditional(s, p.Body, 0.55, 0.05)
	p.FaceDistant = gated(s, p.Face, 0.15)
	p.Small = s.Chance(0.10)
	p.FaceNoLms = gated(s, p.Face, 0.05)
	return p
}

// conditional uses pTrue when parent is set, else pFalse. One draw.
func conditional(s *rng.Stream, parent bool, pTrue, pFalse float64) bool {
	if parent {
		return s.Chance(pTrue)
	}
	return s.Chance(pFalse)
}

// gated is false whenever parent is false. One draw either way.
func gated(s *rng.Stream, parent bool, p float64) bool {
	hit := s.Chance(p)
	return parent && hit
}

// Face holds head orientation angles and the mouth gap metric.
type Face struct {
	X, Y, Z  float64
	MouthGap float64
}

// FaceOrientation samples yaw in [-33,-27), pitch and roll in [-2,2) and the
// mouth gap in [0,0.5), rounded to 3 decimals. All zero without a face.
// Four draws.
func FaceOrientation(s *rng.Stream, hasFace bool) Face {
	f := Face{
		X:        rng.Round3(s.Uniform(-33, -27)),
		Y:        rng.Round3(s.Uniform(-2, 2)),
		Z:        rng.Round3(s.Uniform(-2, 2)),
		MouthGap: rng.Round3(s.Uniform(0, 0.5)),
	}
	if !hasFace {
		return Face{}
	}
	return f
}

// Cluster returns (value, true) with value in [1,size], or (0, false) with
// probability unclustered. Two draws.
func Cluster(s *rng.Stream, size int, unclustered float64) (uint16, bool) {
	miss := s.Chance(unclustered)
	v := uint16(s.Range(1, size))
	if miss {
		return 0, false
	}
	return v, true
}

// Keywords returns 0-20 keyword ids in [1,10000], weighted toward 2-8.
// Two draws plus one per keyword.
func Keywords(s *rng.Stream) []uint32 {
	n := pickLength(s, keywordBuckets)
	ids := make([]uint32, n)
	for i := range ids {
		ids[i] = uint32(s.Range(1, 10000))
	}
	return ids
}

// Detections summarizes object detection output.
type Detections struct {
	Count         uint8
	Classes       []uint8
	TopClassID    uint8
	TopConfidence float64
}

// SampleDetections returns 0-15 COCO class ids in [1,80], weighted toward
// 1-5. The top class is the first one. Three draws plus one per class.
func SampleDetections(s *rng.Stream) Detections {
	n := pickLength(s, detectionBuckets)
	classes := make([]uint8, n)
	for i := range classes {
		classes[i] = uint8(s.Range(1, 80))
	}
	conf := rng.Round3(s.Uniform(0.5, 1.0))

	d := Detections{Count: uint8(n), Classes: classes}
	if n > 0 {
		d.TopClassID = classes[0]
		d.TopConfidence = conf
	}
	return d
}

// Topics holds up to three topic model results. Slot k is present only when
// slot k-1 is.
type Topics struct {
	IDs    [3]uint8
	Scores [3]float64
}

type topicSlot struct {
	p, lo, span float64
}

var topicSlots = [3]topicSlot{
	{p: 0.80, lo: 0.3, span: 0.7},
	{p: 0.60, lo: 0.2, span: 0.5},
	{p: 0.40, lo: 0.1, span: 0.3},
}

// TopicsDraws is the fixed draw count of SampleTopics.
const TopicsDraws = 9

// SampleTopics draws a gate, an id and a score per slot. Nine draws.
func SampleTopics(s *rng.Stream) Topics {
	var t Topics
	present := true
	for i, slot := range topicSlots {
		hit := s.Chance(slot.p)
		id := uint8(s.Range(1, 100))
		score := rng.Round3(slot.lo + s.Float64()*slot.span)
		present = present && hit
		if present {
			t.IDs[i] = id
			t.Scores[i] = score
		}
	}
	return t
}

// UploadDate is spread over 2020-2024 with days capped at 28 so every
// month is valid. Three draws.
func UploadDate(s *rng.Stream) time.Time {
	year := 2020 + s.IntN(5)
	month := time.Month(s.IntN(12) + 1)
	day := s.Range(1, 28)
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// Author returns "First Last". Two draws.
func Author(s *rng.Stream) string {
	first := firstNames[s.IntN(len(firstNames))]
	last := lastNames[s.IntN(len(lastNames))]
	return first + " " + last
}

// Dimensions returns 0x0 (unknown) 10% of the time, else a common size with
// up to ±50px of jitter per axis and a 100px floor. Four draws.
func Dimensions(s *rng.Stream) Size {
	unknown := s.Chance(0.10)
	base := CommonSizes[s.IntN(len(CommonSizes))]
	dw := s.IntN(100) - 50
	dh := s.IntN(100) - 50
	if unknown {
		return Size{}
	}
	return Size{
		Width:  uint16(max(100, int(base.Width)+dw)),
		Height: uint16(max(100, int(base.Height)+dh)),
	}
}

// AuxSpec describes one auxiliary classifier output.
type AuxSpec struct {
	Name  string
	P     float64
	MaxID int
}

// AuxFields lists the auxiliary classifiers in draw order.
var AuxFields = []AuxSpec{
	{Name: "is_not_face", P: 0.10, MaxID: 200},
	{Name: "is_face_model", P: 0.05, MaxID: 200},
	{Name: "affect", P: 0.20, MaxID: 50},
}

// Aux returns a nil id and zero score when the classifier did not fire.
// Three draws: gate, id, score.
func Aux(s *rng.Stream, spec AuxSpec) (*uint16, float64) {
	hit := s.Chance(spec.P)
	id := uint16(s.Range(1, spec.MaxID))
	score := rng.Round3(s.Float64())
	if !hit {
		return nil, 0
	}
	return &id, score
}
