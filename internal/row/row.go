// Package row assembles the wide images_analytical record from the
// distribution samplers and exposes it as ordered column values.
package row

import "time"

// Cluster is one cluster assignment. Valid is false when the image was not
// clustered; how that is stored depends on the field's NullPolicy.
type Cluster struct {
	Value uint16
	Valid bool
}

// Row is one synthetic analytical record. It is built once by Assemble and
// never mutated afterwards.
type Row struct {
	ImageID     uint32
	SiteNameID  uint8
	SiteName    string
	SiteImageID string

	GenderID    uint8
	Gender      string
	AgeID       uint8
	Age         string
	AgeDetailID uint8

	LocationID  uint16
	CountryCode string
	Region      string

	KeywordIDs   []uint32
	EthnicityIDs []uint8

	EthnicityWhite           bool
	EthnicityBlack           bool
	EthnicityAsian           bool
	EthnicityHispanic        bool
	EthnicityMiddleEastern   bool
	EthnicityNativeAmerican  bool
	EthnicityPacificIslander bool
	EthnicityMixed           bool
	EthnicityOther           bool

	HasFace       bool
	HasBody       bool
	HasFeet       bool
	HasHands      bool
	HasLeftHand   bool
	HasRightHand  bool
	IsFaceDistant bool
	IsSmall       bool
	IsFaceNoLms   bool

	FaceX    float64
	FaceY    float64
	FaceZ    float64
	MouthGap float64

	// Clusters is indexed by the sampled cluster constants (BodyPose256 ...).
	Clusters   [NumSampledClusters]Cluster
	ObjCluster Cluster

	IsNotFaceTopicID   *uint16
	IsNotFaceScore     float64
	IsFaceModelTopicID *uint16
	IsFaceModelScore   float64
	AffectID           *uint16
	AffectScore        float64

	TopicIDs    [3]uint16
	TopicScores [3]float64

	DetectionCount              uint16
	DetectionClasses            []uint8
	DetectionTopClassID         uint8
	DetectionTopClassConfidence float64

	UploadDate time.Time
	Author     string
	Caption    string
	ContentURL string
	Width      uint16
	Height     uint16
	IsDupeOf   uint32
	UpdatedAt  time.Time
}
