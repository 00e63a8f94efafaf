package row

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"datafaker/internal/caption"
	"datafaker/internal/distributions"
	"datafaker/internal/rng"
)

// DefaultContentBaseURL prefixes content_url when none is configured.
const DefaultContentBaseURL = "https://example.com/images"

// Assembler builds rows. The zero value is usable: Now defaults to
// time.Now and ContentBaseURL to DefaultContentBaseURL.
type Assembler struct {
	Now            func() time.Time
	ContentBaseURL string
}

// step is one entry of the draw-order table.
type step struct {
	name  string
	fill  func(s *rng.Stream, r *Row)
	draws func(r *Row) int
}

func fixed(n int) func(*Row) int { return func(*Row) int { return n } }

// steps is the row stream's draw order. Reordering, inserting or changing
// the draw count of any entry changes every row generated for a seed.
//
//	#   field group          draws
//	1   gender               1
//	2   age                  1
//	3   site                 2
//	4   location             2
//	5   ethnicity            1
//	6   presence flags       9
//	7   face orientation     4
//	8   keywords             2 + len
//	9   detections           3 + len
//	10  topics               9
//	11  dimensions           4
//	12  author               2
//	13  upload date          3
//	14  site image suffix    1
//	15  age detail           2
//	16  sampled clusters     2 each, ClusterSpecs order
//	17  aux classifiers      3 each, AuxFields order
var steps = []step{
	{"gender", fillGender, fixed(1)},
	{"age", fillAge, fixed(1)},
	{"site", fillSite, fixed(2)},
	{"location", fillLocation, fixed(2)},
	{"ethnicity", fillEthnicity, fixed(1)},
	{"presence", fillPresence, fixed(distributions.PresenceDraws)},
	{"face", fillFace, fixed(4)},
	{"keywords", fillKeywords, func(r *Row) int { return 2 + len(r.KeywordIDs) }},
	{"detections", fillDetections, func(r *Row) int { return 3 + len(r.DetectionClasses) }},
	{"topics", fillTopics, fixed(distributions.TopicsDraws)},
	{"dimensions", fillDimensions, fixed(4)},
	{"author", fillAuthor, fixed(2)},
	{"upload_date", fillUploadDate, fixed(3)},
	{"site_image_suffix", fillSiteImageID, fixed(1)},
	{"age_detail", fillAgeDetail, fixed(2)},
	{"clusters", fillClusters, fixed(2 * NumSampledClusters)},
	{"aux", fillAux, fixed(3 * len(distributions.AuxFields))},
}

// FixedDraws is the number of row-stream draws that do not depend on list
// lengths.
var FixedDraws = func() int {
	n := 0
	var zero Row
	for _, st := range steps {
		n += st.draws(&zero)
	}
	return n
}()

// Assemble builds the row for (seed, id). Everything except UpdatedAt is a
// pure function of its inputs.
func (a Assembler) Assemble(seed string, id uint32) Row {
	r := Row{ImageID: id}
	s := rng.New(seed, id)
	for _, st := range steps {
		st.fill(s, &r)
	}
	r.Caption = caption.Generate(seed, id)
	r.ContentURL = a.contentURL(id)
	r.IsDupeOf = 0
	r.UpdatedAt = a.now().UTC().Truncate(time.Second)
	return r
}

func (a Assembler) now() time.Time {
	if a.Now == nil {
		return time.Now()
	}
	return a.Now()
}

func (a Assembler) contentURL(id uint32) string {
	base := strings.TrimRight(a.ContentBaseURL, "/")
	if base == "" {
		base = DefaultContentBaseURL
	}
	return base + "/" + strconv.FormatUint(uint64(id), 10) + ".jpg"
}

func fillGender(s *rng.Stream, r *Row) {
	g := distributions.Gender(s)
	r.GenderID, r.Gender = g.ID, g.Name
}

func fillAge(s *rng.Stream, r *Row) {
	a := distributions.Age(s)
	r.AgeID, r.Age = a.ID, a.Name
}

func fillSite(s *rng.Stream, r *Row) {
	site := distributions.Site(s)
	r.SiteNameID, r.SiteName = site.ID, site.Name
}

func fillLocation(s *rng.Stream, r *Row) {
	c := distributions.Location(s)
	r.LocationID, r.CountryCode, r.Region = c.ID, c.Code, c.Region
}

func fillEthnicity(s *rng.Stream, r *Row) {
	e := distributions.SampleEthnicity(s)
	r.EthnicityIDs = e.IDs
	r.EthnicityWhite = e.White
	r.EthnicityBlack = e.Black
	r.EthnicityAsian = e.Asian
	r.EthnicityHispanic = e.Hispanic
	r.EthnicityMiddleEastern = e.MiddleEastern
	r.EthnicityNativeAmerican = e.NativeAmerican
	r.EthnicityPacificIslander = e.PacificIslander
	r.EthnicityMixed = e.Mixed
	r.EthnicityOther = e.Other
}

func fillPresence(s *rng.Stream, r *Row) {
	p := distributions.SamplePresence(s)
	r.HasFace = p.Face
	r.HasBody = p.Body
	r.HasFeet = p.Feet
	r.HasHands = p.Hands
	r.HasLeftHand = p.LeftHand
	r.HasRightHand = p.RightHand
	r.IsFaceDistant = p.FaceDistant
	r.IsSmall = p.Small
	r.IsFaceNoLms = p.FaceNoLms
}

func fillFace(s *rng.Stream, r *Row) {
	f := distributions.FaceOrientation(s, r.HasFace)
	r.FaceX, r.FaceY, r.FaceZ, r.MouthGap = f.X, f.Y, f.Z, f.MouthGap
}

func fillKeywords(s *rng.Stream, r *Row) { r.KeywordIDs = distributions.Keywords(s) }

func fillDetections(s *rng.Stream, r *Row) {
	d := distributions.SampleDetections(s)
	r.DetectionCount = uint16(d.Count)
	r.DetectionClasses = d.Classes
	r.DetectionTopClassID = d.TopClassID
	r.DetectionTopClassConfidence = d.TopConfidence
}

func fillTopics(s *rng.Stream, r *Row) {
	t := distributions.SampleTopics(s)
	for i := range t.IDs {
		r.TopicIDs[i] = uint16(t.IDs[i])
		r.TopicScores[i] = t.Scores[i]
	}
}

func fillDimensions(s *rng.Stream, r *Row) {
	d := distributions.Dimensions(s)
	r.Width, r.Height = d.Width, d.Height
}

func fillAuthor(s *rng.Stream, r *Row) { r.Author = distributions.Author(s) }

func fillUploadDate(s *rng.Stream, r *Row) { r.UploadDate = distributions.UploadDate(s) }

func fillSiteImageID(s *rng.Stream, r *Row) {
	r.SiteImageID = fmt.Sprintf("site-%d-%d-%d", r.SiteNameID, r.ImageID, s.IntN(1_000_000))
}

func fillAgeDetail(s *rng.Stream, r *Row) { r.AgeDetailID = distributions.AgeDetail(s) }

func fillClusters(s *rng.Stream, r *Row) {
	for i, spec := range ClusterSpecs {
		v, ok := distributions.Cluster(s, spec.Size, spec.Unclustered)
		r.Clusters[i] = Cluster{Value: v, Valid: ok}
	}
}

func fillAux(s *rng.Stream, r *Row) {
	ids := [...]**uint16{&r.IsNotFaceTopicID, &r.IsFaceModelTopicID, &r.AffectID}
	scores := [...]*float64{&r.IsNotFaceScore, &r.IsFaceModelScore, &r.AffectScore}
	for i, spec := range distributions.AuxFields {
		*ids[i], *scores[i] = distributions.Aux(s, spec)
	}
}
