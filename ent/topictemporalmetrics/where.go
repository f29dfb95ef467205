// Code generated by ent, DO NOT EDIT.

package topictemporalmetrics

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldID, id))
}

// TopicClusterID applies equality check predicate on the "topic_cluster_id" field. It's identical to TopicClusterIDEQ.
func TopicClusterID(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldTopicClusterID, v))
}

// WindowStart applies equality check predicate on the "window_start" field. It's identical to WindowStartEQ.
func WindowStart(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldWindowStart, v))
}

// WindowEnd applies equality check predicate on the "window_end" field. It's identical to WindowEndEQ.
func WindowEnd(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldWindowEnd, v))
}

// Volume applies equality check predicate on the "volume" field. It's identical to VolumeEQ.
func Volume(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldVolume, v))
}

// Velocity applies equality check predicate on the "velocity" field. It's identical to VelocityEQ.
func Velocity(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldVelocity, v))
}

// VelocityTrend applies equality check predicate on the "velocity_trend" field. It's identical to VelocityTrendEQ.
func VelocityTrend(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldVelocityTrend, v))
}

// FreshnessRatio applies equality check predicate on the "freshness_ratio" field. It's identical to FreshnessRatioEQ.
func FreshnessRatio(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldFreshnessRatio, v))
}

// SourceDiversity applies equality check predicate on the "source_diversity" field. It's identical to SourceDiversityEQ.
func SourceDiversity(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldSourceDiversity, v))
}

// CohesionScore applies equality check predicate on the "cohesion_score" field. It's identical to CohesionScoreEQ.
func CohesionScore(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldCohesionScore, v))
}

// PotentialScore applies equality check predicate on the "potential_score" field. It's identical to PotentialScoreEQ.
func PotentialScore(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldPotentialScore, v))
}

// DriftDetected applies equality check predicate on the "drift_detected" field. It's identical to DriftDetectedEQ.
func DriftDetected(v bool) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldDriftDetected, v))
}

// DriftDistance applies equality check predicate on the "drift_distance" field. It's identical to DriftDistanceEQ.
func DriftDistance(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldDriftDistance, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldCreatedAt, v))
}

// TopicClusterIDEQ applies the EQ predicate on the "topic_cluster_id" field.
func TopicClusterIDEQ(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldTopicClusterID, v))
}

// TopicClusterIDNEQ applies the NEQ predicate on the "topic_cluster_id" field.
func TopicClusterIDNEQ(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldTopicClusterID, v))
}

// TopicClusterIDIn applies the In predicate on the "topic_cluster_id" field.
func TopicClusterIDIn(vs ...int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldTopicClusterID, vs...))
}

// TopicClusterIDNotIn applies the NotIn predicate on the "topic_cluster_id" field.
func TopicClusterIDNotIn(vs ...int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldTopicClusterID, vs...))
}

// WindowStartEQ applies the EQ predicate on the "window_start" field.
func WindowStartEQ(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldWindowStart, v))
}

// WindowStartNEQ applies the NEQ predicate on the "window_start" field.
func WindowStartNEQ(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldWindowStart, v))
}

// WindowStartIn applies the In predicate on the "window_start" field.
func WindowStartIn(vs ...time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldWindowStart, vs...))
}

// WindowStartNotIn applies the NotIn predicate on the "window_start" field.
func WindowStartNotIn(vs ...time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldWindowStart, vs...))
}

// WindowStartGT applies the GT predicate on the "window_start" field.
func WindowStartGT(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldWindowStart, v))
}

// WindowStartGTE applies the GTE predicate on the "window_start" field.
func WindowStartGTE(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldWindowStart, v))
}

// WindowStartLT applies the LT predicate on the "window_start" field.
func WindowStartLT(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldWindowStart, v))
}

// WindowStartLTE applies the LTE predicate on the "window_start" field.
func WindowStartLTE(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldWindowStart, v))
}

// WindowEndEQ applies the EQ predicate on the "window_end" field.
func WindowEndEQ(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldWindowEnd, v))
}

// WindowEndNEQ applies the NEQ predicate on the "window_end" field.
func WindowEndNEQ(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldWindowEnd, v))
}

// WindowEndIn applies the In predicate on the "window_end" field.
func WindowEndIn(vs ...time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldWindowEnd, vs...))
}

// WindowEndNotIn applies the NotIn predicate on the "window_end" field.
func WindowEndNotIn(vs ...time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldWindowEnd, vs...))
}

// WindowEndGT applies the GT predicate on the "window_end" field.
func WindowEndGT(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldWindowEnd, v))
}

// WindowEndGTE applies the GTE predicate on the "window_end" field.
func WindowEndGTE(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldWindowEnd, v))
}

// WindowEndLT applies the LT predicate on the "window_end" field.
func WindowEndLT(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldWindowEnd, v))
}

// WindowEndLTE applies the LTE predicate on the "window_end" field.
func WindowEndLTE(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldWindowEnd, v))
}

// VolumeEQ applies the EQ predicate on the "volume" field.
func VolumeEQ(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldVolume, v))
}

// VolumeNEQ applies the NEQ predicate on the "volume" field.
func VolumeNEQ(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldVolume, v))
}

// VolumeIn applies the In predicate on the "volume" field.
func VolumeIn(vs ...int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldVolume, vs...))
}

// VolumeNotIn applies the NotIn predicate on the "volume" field.
func VolumeNotIn(vs ...int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldVolume, vs...))
}

// VolumeGT applies the GT predicate on the "volume" field.
func VolumeGT(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldVolume, v))
}

// VolumeGTE applies the GTE predicate on the "volume" field.
func VolumeGTE(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldVolume, v))
}

// VolumeLT applies the LT predicate on the "volume" field.
func VolumeLT(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldVolume, v))
}

// VolumeLTE applies the LTE predicate on the "volume" field.
func VolumeLTE(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldVolume, v))
}

// VelocityEQ applies the EQ predicate on the "velocity" field.
func VelocityEQ(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldVelocity, v))
}

// VelocityNEQ applies the NEQ predicate on the "velocity" field.
func VelocityNEQ(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldVelocity, v))
}

// VelocityIn applies the In predicate on the "velocity" field.
func VelocityIn(vs ...float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldVelocity, vs...))
}

// VelocityNotIn applies the NotIn predicate on the "velocity" field.
func VelocityNotIn(vs ...float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldVelocity, vs...))
}

// VelocityGT applies the GT predicate on the "velocity" field.
func VelocityGT(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldVelocity, v))
}

// VelocityGTE applies the GTE predicate on the "velocity" field.
func VelocityGTE(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldVelocity, v))
}

// VelocityLT applies the LT predicate on the "velocity" field.
func VelocityLT(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldVelocity, v))
}

// VelocityLTE applies the LTE predicate on the "velocity" field.
func VelocityLTE(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldVelocity, v))
}

// VelocityTrendEQ applies the EQ predicate on the "velocity_trend" field.
func VelocityTrendEQ(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldVelocityTrend, v))
}

// VelocityTrendNEQ applies the NEQ predicate on the "velocity_trend" field.
func VelocityTrendNEQ(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldVelocityTrend, v))
}

// VelocityTrendIn applies the In predicate on the "velocity_trend" field.
func VelocityTrendIn(vs ...string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldVelocityTrend, vs...))
}

// VelocityTrendNotIn applies the NotIn predicate on the "velocity_trend" field.
func VelocityTrendNotIn(vs ...string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldVelocityTrend, vs...))
}

// VelocityTrendGT applies the GT predicate on the "velocity_trend" field.
func VelocityTrendGT(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldVelocityTrend, v))
}

// VelocityTrendGTE applies the GTE predicate on the "velocity_trend" field.
func VelocityTrendGTE(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldVelocityTrend, v))
}

// VelocityTrendLT applies the LT predicate on the "velocity_trend" field.
func VelocityTrendLT(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldVelocityTrend, v))
}

// VelocityTrendLTE applies the LTE predicate on the "velocity_trend" field.
func VelocityTrendLTE(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldVelocityTrend, v))
}

// VelocityTrendContains applies the Contains predicate on the "velocity_trend" field.
func VelocityTrendContains(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldContains(FieldVelocityTrend, v))
}

// VelocityTrendHasPrefix applies the HasPrefix predicate on the "velocity_trend" field.
func VelocityTrendHasPrefix(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldHasPrefix(FieldVelocityTrend, v))
}

// VelocityTrendHasSuffix applies the HasSuffix predicate on the "velocity_trend" field.
func VelocityTrendHasSuffix(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldHasSuffix(FieldVelocityTrend, v))
}

// VelocityTrendIsNil applies the IsNil predicate on the "velocity_trend" field.
func VelocityTrendIsNil() predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIsNull(FieldVelocityTrend))
}

// VelocityTrendNotNil applies the NotNil predicate on the "velocity_trend" field.
func VelocityTrendNotNil() predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotNull(FieldVelocityTrend))
}

// VelocityTrendEqualFold applies the EqualFold predicate on the "velocity_trend" field.
func VelocityTrendEqualFold(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEqualFold(FieldVelocityTrend, v))
}

// VelocityTrendContainsFold applies the ContainsFold predicate on the "velocity_trend" field.
func VelocityTrendContainsFold(v string) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldContainsFold(FieldVelocityTrend, v))
}

// FreshnessRatioEQ applies the EQ predicate on the "freshness_ratio" field.
func FreshnessRatioEQ(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldFreshnessRatio, v))
}

// FreshnessRatioNEQ applies the NEQ predicate on the "freshness_ratio" field.
func FreshnessRatioNEQ(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldFreshnessRatio, v))
}

// FreshnessRatioIn applies the In predicate on the "freshness_ratio" field.
func FreshnessRatioIn(vs ...float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldFreshnessRatio, vs...))
}

// FreshnessRatioNotIn applies the NotIn predicate on the "freshness_ratio" field.
func FreshnessRatioNotIn(vs ...float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldFreshnessRatio, vs...))
}

// FreshnessRatioGT applies the GT predicate on the "freshness_ratio" field.
func FreshnessRatioGT(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldFreshnessRatio, v))
}

// FreshnessRatioGTE applies the GTE predicate on the "freshness_ratio" field.
func FreshnessRatioGTE(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldFreshnessRatio, v))
}

// FreshnessRatioLT applies the LT predicate on the "freshness_ratio" field.
func FreshnessRatioLT(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldFreshnessRatio, v))
}

// FreshnessRatioLTE applies the LTE predicate on the "freshness_ratio" field.
func FreshnessRatioLTE(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldFreshnessRatio, v))
}

// SourceDiversityEQ applies the EQ predicate on the "source_diversity" field.
func SourceDiversityEQ(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldSourceDiversity, v))
}

// SourceDiversityNEQ applies the NEQ predicate on the "source_diversity" field.
func SourceDiversityNEQ(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldSourceDiversity, v))
}

// SourceDiversityIn applies the In predicate on the "source_diversity" field.
func SourceDiversityIn(vs ...int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldSourceDiversity, vs...))
}

// SourceDiversityNotIn applies the NotIn predicate on the "source_diversity" field.
func SourceDiversityNotIn(vs ...int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldSourceDiversity, vs...))
}

// SourceDiversityGT applies the GT predicate on the "source_diversity" field.
func SourceDiversityGT(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldSourceDiversity, v))
}

// SourceDiversityGTE applies the GTE predicate on the "source_diversity" field.
func SourceDiversityGTE(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldSourceDiversity, v))
}

// SourceDiversityLT applies the LT predicate on the "source_diversity" field.
func SourceDiversityLT(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldSourceDiversity, v))
}

// SourceDiversityLTE applies the LTE predicate on the "source_diversity" field.
func SourceDiversityLTE(v int) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldSourceDiversity, v))
}

// CohesionScoreEQ applies the EQ predicate on the "cohesion_score" field.
func CohesionScoreEQ(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldCohesionScore, v))
}

// CohesionScoreNEQ applies the NEQ predicate on the "cohesion_score" field.
func CohesionScoreNEQ(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldCohesionScore, v))
}

// CohesionScoreIn applies the In predicate on the "cohesion_score" field.
func CohesionScoreIn(vs ...float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldCohesionScore, vs...))
}

// CohesionScoreNotIn applies the NotIn predicate on the "cohesion_score" field.
func CohesionScoreNotIn(vs ...float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldCohesionScore, vs...))
}

// CohesionScoreGT applies the GT predicate on the "cohesion_score" field.
func CohesionScoreGT(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldCohesionScore, v))
}

// CohesionScoreGTE applies the GTE predicate on the "cohesion_score" field.
func CohesionScoreGTE(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldCohesionScore, v))
}

// CohesionScoreLT applies the LT predicate on the "cohesion_score" field.
func CohesionScoreLT(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldCohesionScore, v))
}

// CohesionScoreLTE applies the LTE predicate on the "cohesion_score" field.
func CohesionScoreLTE(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldCohesionScore, v))
}

// PotentialScoreEQ applies the EQ predicate on the "potential_score" field.
func PotentialScoreEQ(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldPotentialScore, v))
}

// PotentialScoreNEQ applies the NEQ predicate on the "potential_score" field.
func PotentialScoreNEQ(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldPotentialScore, v))
}

// PotentialScoreIn applies the In predicate on the "potential_score" field.
func PotentialScoreIn(vs ...float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldPotentialScore, vs...))
}

// PotentialScoreNotIn applies the NotIn predicate on the "potential_score" field.
func PotentialScoreNotIn(vs ...float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldPotentialScore, vs...))
}

// PotentialScoreGT applies the GT predicate on the "potential_score" field.
func PotentialScoreGT(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldPotentialScore, v))
}

// PotentialScoreGTE applies the GTE predicate on the "potential_score" field.
func PotentialScoreGTE(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldPotentialScore, v))
}

// PotentialScoreLT applies the LT predicate on the "potential_score" field.
func PotentialScoreLT(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldPotentialScore, v))
}

// PotentialScoreLTE applies the LTE predicate on the "potential_score" field.
func PotentialScoreLTE(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldPotentialScore, v))
}

// DriftDetectedEQ applies the EQ predicate on the "drift_detected" field.
func DriftDetectedEQ(v bool) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldDriftDetected, v))
}

// DriftDetectedNEQ applies the NEQ predicate on the "drift_detected" field.
func DriftDetectedNEQ(v bool) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldDriftDetected, v))
}

// DriftDistanceEQ applies the EQ predicate on the "drift_distance" field.
func DriftDistanceEQ(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldDriftDistance, v))
}

// DriftDistanceNEQ applies the NEQ predicate on the "drift_distance" field.
func DriftDistanceNEQ(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldDriftDistance, v))
}

// DriftDistanceIn applies the In predicate on the "drift_distance" field.
func DriftDistanceIn(vs ...float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldDriftDistance, vs...))
}

// DriftDistanceNotIn applies the NotIn predicate on the "drift_distance" field.
func DriftDistanceNotIn(vs ...float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldDriftDistance, vs...))
}

// DriftDistanceGT applies the GT predicate on the "drift_distance" field.
func DriftDistanceGT(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldDriftDistance, v))
}

// DriftDistanceGTE applies the GTE predicate on the "drift_distance" field.
func DriftDistanceGTE(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldDriftDistance, v))
}

// DriftDistanceLT applies the LT predicate on the "drift_distance" field.
func DriftDistanceLT(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldDriftDistance, v))
}

// DriftDistanceLTE applies the LTE predicate on the "drift_distance" field.
func DriftDistanceLTE(v float64) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldDriftDistance, v))
}

// DriftDistanceIsNil applies the IsNil predicate on the "drift_distance" field.
func DriftDistanceIsNil() predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIsNull(FieldDriftDistance))
}

// DriftDistanceNotNil applies the NotNil predicate on the "drift_distance" field.
func DriftDistanceNotNil() predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotNull(FieldDriftDistance))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.FieldLTE(FieldCreatedAt, v))
}

// HasCluster applies the HasEdge predicate on the "cluster" edge.
func HasCluster() predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ClusterTable, ClusterColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasClusterWith applies the HasEdge predicate on the "cluster" edge with a given conditions (other predicates).
func HasClusterWith(preds ...predicate.TopicCluster) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(func(s *sql.Selector) {
		step := newClusterStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TopicTemporalMetrics) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TopicTemporalMetrics) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TopicTemporalMetrics) predicate.TopicTemporalMetrics {
	return predicate.TopicTemporalMetrics(sql.NotPredicates(p))
}
