package row

import "datafaker/internal/ddl"

// NullPolicy says how an unclustered value is stored.
type NullPolicy int

const (
	// SentinelZero stores 0.
	SentinelZero NullPolicy = iota
	// Null stores NULL.
	Null
)

// ClusterSpec describes one sampled cluster column.
type ClusterSpec struct {
	Name        string
	Kind        ddl.Kind
	Size        int
	Unclustered float64
	Policy      NullPolicy
}

// Sampled cluster indexes, in draw order.
const (
	BodyPose256 = iota
	BodyPose512
	BodyPose768
	HandPoses32
	HandGesture32
	HandGesture64
	HandGesture128
	ArmPoses3D128
	ArmsPoses3D64
	HandPosition128
	HSV
	MetaHSV
	FaceCluster
	NumSampledClusters
)

// ClusterSpecs lists the sampled clusters in draw order. Every column is
// nullable in the schema, but the generator writes 0 for unclustered images,
// so they all use SentinelZero.
var ClusterSpecs = [NumSampledClusters]ClusterSpec{
	BodyPose256:     {"body_pose_cluster_256", ddl.KindUInt16, 256, 0.30, SentinelZero},
	BodyPose512:     {"body_pose_cluster_512", ddl.KindUInt16, 512, 0.30, SentinelZero},
	BodyPose768:     {"body_pose_cluster_768", ddl.KindUInt16, 768, 0.30, SentinelZero},
	HandPoses32:     {"hand_poses_cluster_32", ddl.KindUInt8, 32, 0.50, SentinelZero},
	HandGesture32:   {"hand_gesture_cluster_32", ddl.KindUInt8, 32, 0.50, SentinelZero},
	HandGesture64:   {"hand_gesture_cluster_64", ddl.KindUInt8, 64, 0.50, SentinelZero},
	HandGesture128:  {"hand_gesture_cluster_128", ddl.KindUInt8, 128, 0.50, SentinelZero},
	ArmPoses3D128:   {"arm_poses3D_cluster_128", ddl.KindUInt8, 128, 0.60, SentinelZero},
	ArmsPoses3D64:   {"arms_poses3D_cluster_64", ddl.KindUInt8, 64, 0.60, SentinelZero},
	HandPosition128: {"hand_position_cluster_128", ddl.KindUInt8, 128, 0.40, SentinelZero},
	HSV:             {"hsv_cluster", ddl.KindUInt16, 512, 0.25, SentinelZero},
	MetaHSV:         {"meta_hsv_cluster", ddl.KindUInt16, 256, 0.25, SentinelZero},
	FaceCluster:     {"face_cluster", ddl.KindUInt16, 256, 0.20, SentinelZero},
}

// objCluster is not sampled yet; it is always NULL.
var objCluster = ClusterSpec{Name: "obj_cluster", Kind: ddl.KindUInt16, Policy: Null}

// clusterValue renders c for a column of the given spec: a typed integer,
// or nil for an unclustered Null-policy column.
func clusterValue(spec ClusterSpec, c Cluster) any {
	if !c.Valid && spec.Policy == Null {
		return nil
	}
	v := c.Value
	if !c.Valid {
		v = 0
	}
	if spec.Kind == ddl.KindUInt8 {
		return uint8(v)
	}
	return v
}
