package row

import (
	"slices"

	"github.com/shopspring/decimal"

	"datafaker/internal/ddl"
)

// Table is the default destination table name.
const Table = "images_analytical"

type column struct {
	ddl.Field
	get func(r *Row) any
}

func col(name string, kind ddl.Kind, get func(r *Row) any) column {
	return column{Field: ddl.Field{Name: name, Kind: kind}, get: get}
}

func nullable(name string, kind ddl.Kind, get func(r *Row) any) column {
	return column{Field: ddl.Field{Name: name, Kind: kind, Nullable: true}, get: get}
}

// dec renders a 3-decimal measurement for Decimal(6,3) columns.
func dec(f float64) any { return decimal.NewFromFloat(f).Round(3) }

func optional(p *uint16) any {
	if p == nil {
		return nil
	}
	return *p
}

func clusterColumn(i int) column {
	spec := ClusterSpecs[i]
	return nullable(spec.Name, spec.Kind, func(r *Row) any { return clusterValue(spec, r.Clusters[i]) })
}

// columns is the insert column order. Each getter returns the exact Go type
// of its kind: uint8/uint16/uint32, float32, decimal.Decimal, string, bool,
// time.Time, []uint32, []uint8, or nil for an absent nullable value.
var columns = []column{
	col("image_id", ddl.KindUInt32, func(r *Row) any { return r.ImageID }),
	col("site_name_id", ddl.KindUInt8, func(r *Row) any { return r.SiteNameID }),
	col("site_name", ddl.KindLowCard, func(r *Row) any { return r.SiteName }),
	col("site_image_id", ddl.KindString, func(r *Row) any { return r.SiteImageID }),
	col("gender_id", ddl.KindUInt8, func(r *Row) any { return r.GenderID }),
	col("gender", ddl.KindLowCard, func(r *Row) any { return r.Gender }),
	col("age_id", ddl.KindUInt8, func(r *Row) any { return r.AgeID }),
	col("age", ddl.KindLowCard, func(r *Row) any { return r.Age }),
	col("age_detail_id", ddl.KindUInt8, func(r *Row) any { return r.AgeDetailID }),
	col("location_id", ddl.KindUInt16, func(r *Row) any { return r.LocationID }),
	col("country_code", ddl.KindLowCard, func(r *Row) any { return r.CountryCode }),
	col("region", ddl.KindLowCard, func(r *Row) any { return r.Region }),
	col("keyword_ids", ddl.KindUInt32List, func(r *Row) any { return r.KeywordIDs }),
	col("ethnicity_ids", ddl.KindUInt8List, func(r *Row) any { return r.EthnicityIDs }),
	col("ethnicity_white", ddl.KindBool, func(r *Row) any { return r.EthnicityWhite }),
	col("ethnicity_black", ddl.KindBool, func(r *Row) any { return r.EthnicityBlack }),
	col("ethnicity_asian", ddl.KindBool, func(r *Row) any { return r.EthnicityAsian }),
	col("ethnicity_hispanic", ddl.KindBool, func(r *Row) any { return r.EthnicityHispanic }),
	col("ethnicity_middle_eastern", ddl.KindBool, func(r *Row) any { return r.EthnicityMiddleEastern }),
	col("ethnicity_native_american", ddl.KindBool, func(r *Row) any { return r.EthnicityNativeAmerican }),
	col("ethnicity_pacific_islander", ddl.KindBool, func(r *Row) any { return r.EthnicityPacificIslander }),
	col("ethnicity_mixed", ddl.KindBool, func(r *Row) any { return r.EthnicityMixed }),
	col("ethnicity_other", ddl.KindBool, func(r *Row) any { return r.EthnicityOther }),
	col("has_face", ddl.KindBool, func(r *Row) any { return r.HasFace }),
	col("has_body", ddl.KindBool, func(r *Row) any { return r.HasBody }),
	col("has_feet", ddl.KindBool, func(r *Row) any { return r.HasFeet }),
	col("has_hands", ddl.KindBool, func(r *Row) any { return r.HasHands }),
	col("has_left_hand", ddl.KindBool, func(r *Row) any { return r.HasLeftHand }),
	col("has_right_hand", ddl.KindBool, func(r *Row) any { return r.HasRightHand }),
	col("is_face_distant", ddl.KindBool, func(r *Row) any { return r.IsFaceDistant }),
	col("is_small", ddl.KindBool, func(r *Row) any { return r.IsSmall }),
	col("is_face_no_lms", ddl.KindBool, func(r *Row) any { return r.IsFaceNoLms }),
	col("face_x", ddl.KindDecimal63, func(r *Row) any { return dec(r.FaceX) }),
	col("face_y", ddl.KindDecimal63, func(r *Row) any { return dec(r.FaceY) }),
	col("face_z", ddl.KindDecimal63, func(r *Row) any { return dec(r.FaceZ) }),
	col("mouth_gap", ddl.KindDecimal63, func(r *Row) any { return dec(r.MouthGap) }),
	clusterColumn(BodyPose256),
	clusterColumn(BodyPose512),
	clusterColumn(BodyPose768),
	clusterColumn(HandPoses32),
	clusterColumn(HandGesture32),
	clusterColumn(HandGesture64),
	clusterColumn(HandGesture128),
	clusterColumn(ArmsPoses3D64),
	clusterColumn(HandPosition128),
	clusterColumn(HSV),
	clusterColumn(MetaHSV),
	clusterColumn(FaceCluster),
	clusterColumn(ArmPoses3D128),
	nullable("is_not_face_topic_id", ddl.KindUInt16, func(r *Row) any { return optional(r.IsNotFaceTopicID) }),
	col("is_not_face_score", ddl.KindFloat32, func(r *Row) any { return float32(r.IsNotFaceScore) }),
	nullable("is_face_model_topic_id", ddl.KindUInt16, func(r *Row) any { return optional(r.IsFaceModelTopicID) }),
	col("is_face_model_score", ddl.KindFloat32, func(r *Row) any { return float32(r.IsFaceModelScore) }),
	nullable("affect_id", ddl.KindUInt16, func(r *Row) any { return optional(r.AffectID) }),
	col("affect_score", ddl.KindFloat32, func(r *Row) any { return float32(r.AffectScore) }),
	nullable(objCluster.Name, objCluster.Kind, func(r *Row) any { return clusterValue(objCluster, r.ObjCluster) }),
	col("topic_id_1", ddl.KindUInt16, func(r *Row) any { return r.TopicIDs[0] }),
	col("topic_score_1", ddl.KindFloat32, func(r *Row) any { return float32(r.TopicScores[0]) }),
	col("topic_id_2", ddl.KindUInt16, func(r *Row) any { return r.TopicIDs[1] }),
	col("topic_score_2", ddl.KindFloat32, func(r *Row) any { return float32(r.TopicScores[1]) }),
	col("topic_id_3", ddl.KindUInt16, func(r *Row) any { return r.TopicIDs[2] }),
	col("topic_score_3", ddl.KindFloat32, func(r *Row) any { return float32(r.TopicScores[2]) }),
	col("detection_count", ddl.KindUInt16, func(r *Row) any { return r.DetectionCount }),
	col("detection_classes", ddl.KindUInt8List, func(r *Row) any { return r.DetectionClasses }),
	col("detection_top_class_id", ddl.KindUInt8, func(r *Row) any { return r.DetectionTopClassID }),
	col("detection_top_class_confidence", ddl.KindFloat32, func(r *Row) any { return float32(r.DetectionTopClassConfidence) }),
	col("upload_date", ddl.KindDate, func(r *Row) any { return r.UploadDate }),
	col("author", ddl.KindLowCard, func(r *Row) any { return r.Author }),
	col("caption", ddl.KindString, func(r *Row) any { return r.Caption }),
	col("content_url", ddl.KindString, func(r *Row) any { return r.ContentURL }),
	col("width", ddl.KindUInt16, func(r *Row) any { return r.Width }),
	col("height", ddl.KindUInt16, func(r *Row) any { return r.Height }),
	col("is_dupe_of", ddl.KindUInt32, func(r *Row) any { return r.IsDupeOf }),
	col("updated_at", ddl.KindDateTime, func(r *Row) any { return r.UpdatedAt }),
}

var columnNames = func() []string {
	out := make([]string, len(columns))
	for i, c := range columns {
		out[i] = c.Name
	}
	return out
}()

// Columns returns the ordered column names.
func Columns() []string { return slices.Clone(columnNames) }

// Schema returns the logical column definitions in column order.
func Schema() []ddl.Field {
	out := make([]ddl.Field, len(columns))
	for i, c := range columns {
		out[i] = c.Field
	}
	return out
}

// TableSpec returns the table description for DDL with image_id as the
// primary key. Engine, OrderBy and Settings are left to the caller.
func TableSpec(table string) ddl.TableSpec {
	if table == "" {
		table = Table
	}
	return ddl.TableSpec{Table: table, Fields: Schema(), PrimaryKey: []string{"image_id"}}
}

// Values returns the row's values aligned with Columns.
func (r *Row) Values() []any {
	out := make([]any, len(columns))
	for i, c := range columns {
		out[i] = c.get(r)
	}
	return out
}
