// Code generated by ent, DO NOT EDIT.

package performancemetric

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/trendscope/trendscope/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldID, id))
}

// ExecutionID applies equality check predicate on the "execution_id" field. It's identical to ExecutionIDEQ.
func ExecutionID(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldExecutionID, v))
}

// AgentName applies equality check predicate on the "agent_name" field. It's identical to AgentNameEQ.
func AgentName(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldAgentName, v))
}

// MetricType applies equality check predicate on the "metric_type" field. It's identical to MetricTypeEQ.
func MetricType(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldMetricType, v))
}

// MetricValue applies equality check predicate on the "metric_value" field. It's identical to MetricValueEQ.
func MetricValue(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldMetricValue, v))
}

// MetricUnit applies equality check predicate on the "metric_unit" field. It's identical to MetricUnitEQ.
func MetricUnit(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldMetricUnit, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// ExecutionIDEQ applies the EQ predicate on the "execution_id" field.
func ExecutionIDEQ(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldExecutionID, v))
}

// ExecutionIDNEQ applies the NEQ predicate on the "execution_id" field.
func ExecutionIDNEQ(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldExecutionID, v))
}

// ExecutionIDIn applies the In predicate on the "execution_id" field.
func ExecutionIDIn(vs ...string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldExecutionID, vs...))
}

// ExecutionIDNotIn applies the NotIn predicate on the "execution_id" field.
func ExecutionIDNotIn(vs ...string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldExecutionID, vs...))
}

// ExecutionIDGT applies the GT predicate on the "execution_id" field.
func ExecutionIDGT(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldExecutionID, v))
}

// ExecutionIDGTE applies the GTE predicate on the "execution_id" field.
func ExecutionIDGTE(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldExecutionID, v))
}

// ExecutionIDLT applies the LT predicate on the "execution_id" field.
func ExecutionIDLT(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldExecutionID, v))
}

// ExecutionIDLTE applies the LTE predicate on the "execution_id" field.
func ExecutionIDLTE(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldExecutionID, v))
}

// ExecutionIDContains applies the Contains predicate on the "execution_id" field.
func ExecutionIDContains(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldContains(FieldExecutionID, v))
}

// ExecutionIDHasPrefix applies the HasPrefix predicate on the "execution_id" field.
func ExecutionIDHasPrefix(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldHasPrefix(FieldExecutionID, v))
}

// ExecutionIDHasSuffix applies the HasSuffix predicate on the "execution_id" field.
func ExecutionIDHasSuffix(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldHasSuffix(FieldExecutionID, v))
}

// ExecutionIDEqualFold applies the EqualFold predicate on the "execution_id" field.
func ExecutionIDEqualFold(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEqualFold(FieldExecutionID, v))
}

// ExecutionIDContainsFold applies the ContainsFold predicate on the "execution_id" field.
func ExecutionIDContainsFold(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldContainsFold(FieldExecutionID, v))
}

// AgentNameEQ applies the EQ predicate on the "agent_name" field.
func AgentNameEQ(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldAgentName, v))
}

// AgentNameNEQ applies the NEQ predicate on the "agent_name" field.
func AgentNameNEQ(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldAgentName, v))
}

// AgentNameIn applies the In predicate on the "agent_name" field.
func AgentNameIn(vs ...string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldAgentName, vs...))
}

// AgentNameNotIn applies the NotIn predicate on the "agent_name" field.
func AgentNameNotIn(vs ...string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldAgentName, vs...))
}

// AgentNameGT applies the GT predicate on the "agent_name" field.
func AgentNameGT(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldAgentName, v))
}

// AgentNameGTE applies the GTE predicate on the "agent_name" field.
func AgentNameGTE(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldAgentName, v))
}

// AgentNameLT applies the LT predicate on the "agent_name" field.
func AgentNameLT(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldAgentName, v))
}

// AgentNameLTE applies the LTE predicate on the "agent_name" field.
func AgentNameLTE(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldAgentName, v))
}

// AgentNameContains applies the Contains predicate on the "agent_name" field.
func AgentNameContains(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldContains(FieldAgentName, v))
}

// AgentNameHasPrefix applies the HasPrefix predicate on the "agent_name" field.
func AgentNameHasPrefix(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldHasPrefix(FieldAgentName, v))
}

// AgentNameHasSuffix applies the HasSuffix predicate on the "agent_name" field.
func AgentNameHasSuffix(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldHasSuffix(FieldAgentName, v))
}

// AgentNameIsNil applies the IsNil predicate on the "agent_name" field.
func AgentNameIsNil() predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIsNull(FieldAgentName))
}

// AgentNameNotNil applies the NotNil predicate on the "agent_name" field.
func AgentNameNotNil() predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotNull(FieldAgentName))
}

// AgentNameEqualFold applies the EqualFold predicate on the "agent_name" field.
func AgentNameEqualFold(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEqualFold(FieldAgentName, v))
}

// AgentNameContainsFold applies the ContainsFold predicate on the "agent_name" field.
func AgentNameContainsFold(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldContainsFold(FieldAgentName, v))
}

// MetricTypeEQ applies the EQ predicate on the "metric_type" field.
func MetricTypeEQ(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldMetricType, v))
}

// MetricTypeNEQ applies the NEQ predicate on the "metric_type" field.
func MetricTypeNEQ(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldMetricType, v))
}

// MetricTypeIn applies the In predicate on the "metric_type" field.
func MetricTypeIn(vs ...string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldMetricType, vs...))
}

// MetricTypeNotIn applies the NotIn predicate on the "metric_type" field.
func MetricTypeNotIn(vs ...string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldMetricType, vs...))
}

// MetricTypeGT applies the GT predicate on the "metric_type" field.
func MetricTypeGT(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldMetricType, v))
}

// MetricTypeGTE applies the GTE predicate on the "metric_type" field.
func MetricTypeGTE(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldMetricType, v))
}

// MetricTypeLT applies the LT predicate on the "metric_type" field.
func MetricTypeLT(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldMetricType, v))
}

// MetricTypeLTE applies the LTE predicate on the "metric_type" field.
func MetricTypeLTE(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldMetricType, v))
}

// MetricTypeContains applies the Contains predicate on the "metric_type" field.
func MetricTypeContains(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldContains(FieldMetricType, v))
}

// MetricTypeHasPrefix applies the HasPrefix predicate on the "metric_type" field.
func MetricTypeHasPrefix(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldHasPrefix(FieldMetricType, v))
}

// MetricTypeHasSuffix applies the HasSuffix predicate on the "metric_type" field.
func MetricTypeHasSuffix(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldHasSuffix(FieldMetricType, v))
}

// MetricTypeEqualFold applies the EqualFold predicate on the "metric_type" field.
func MetricTypeEqualFold(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEqualFold(FieldMetricType, v))
}

// MetricTypeContainsFold applies the ContainsFold predicate on the "metric_type" field.
func MetricTypeContainsFold(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldContainsFold(FieldMetricType, v))
}

// MetricValueEQ applies the EQ predicate on the "metric_value" field.
func MetricValueEQ(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldMetricValue, v))
}

// MetricValueNEQ applies the NEQ predicate on the "metric_value" field.
func MetricValueNEQ(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldMetricValue, v))
}

// MetricValueIn applies the In predicate on the "metric_value" field.
func MetricValueIn(vs ...float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldMetricValue, vs...))
}

// MetricValueNotIn applies the NotIn predicate on the "metric_value" field.
func MetricValueNotIn(vs ...float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldMetricValue, vs...))
}

// MetricValueGT applies the GT predicate on the "metric_value" field.
func MetricValueGT(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldMetricValue, v))
}

// MetricValueGTE applies the GTE predicate on the "metric_value" field.
func MetricValueGTE(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldMetricValue, v))
}

// MetricValueLT applies the LT predicate on the "metric_value" field.
func MetricValueLT(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldMetricValue, v))
}

// MetricValueLTE applies the LTE predicate on the "metric_value" field.
func MetricValueLTE(v float64) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldMetricValue, v))
}

// MetricUnitEQ applies the EQ predicate on the "metric_unit" field.
func MetricUnitEQ(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldMetricUnit, v))
}

// MetricUnitNEQ applies the NEQ predicate on the "metric_unit" field.
func MetricUnitNEQ(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldMetricUnit, v))
}

// MetricUnitIn applies the In predicate on the "metric_unit" field.
func MetricUnitIn(vs ...string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldMetricUnit, vs...))
}

// MetricUnitNotIn applies the NotIn predicate on the "metric_unit" field.
func MetricUnitNotIn(vs ...string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldMetricUnit, vs...))
}

// MetricUnitGT applies the GT predicate on the "metric_unit" field.
func MetricUnitGT(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldMetricUnit, v))
}

// MetricUnitGTE applies the GTE predicate on the "metric_unit" field.
func MetricUnitGTE(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldMetricUnit, v))
}

// MetricUnitLT applies the LT predicate on the "metric_unit" field.
func MetricUnitLT(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldMetricUnit, v))
}

// MetricUnitLTE applies the LTE predicate on the "metric_unit" field.
func MetricUnitLTE(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldMetricUnit, v))
}

// MetricUnitContains applies the Contains predicate on the "metric_unit" field.
func MetricUnitContains(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldContains(FieldMetricUnit, v))
}

// MetricUnitHasPrefix applies the HasPrefix predicate on the "metric_unit" field.
func MetricUnitHasPrefix(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldHasPrefix(FieldMetricUnit, v))
}

// MetricUnitHasSuffix applies the HasSuffix predicate on the "metric_unit" field.
func MetricUnitHasSuffix(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldHasSuffix(FieldMetricUnit, v))
}

// MetricUnitIsNil applies the IsNil predicate on the "metric_unit" field.
func MetricUnitIsNil() predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIsNull(FieldMetricUnit))
}

// MetricUnitNotNil applies the NotNil predicate on the "metric_unit" field.
func MetricUnitNotNil() predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotNull(FieldMetricUnit))
}

// MetricUnitEqualFold applies the EqualFold predicate on the "metric_unit" field.
func MetricUnitEqualFold(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEqualFold(FieldMetricUnit, v))
}

// MetricUnitContainsFold applies the ContainsFold predicate on the "metric_unit" field.
func MetricUnitContainsFold(v string) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldContainsFold(FieldMetricUnit, v))
}

// AdditionalDataIsNil applies the IsNil predicate on the "additional_data" field.
func AdditionalDataIsNil() predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIsNull(FieldAdditionalData))
}

// AdditionalDataNotNil applies the NotNil predicate on the "additional_data" field.
func AdditionalDataNotNil() predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotNull(FieldAdditionalData))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.FieldLTE(FieldCreatedAt, v))
}

// HasExecution applies the HasEdge predicate on the "execution" edge.
func HasExecution() predicate.PerformanceMetric {
	return predicate.PerformanceMetric(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ExecutionTable, ExecutionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasExecutionWith applies the HasEdge predicate on the "execution" edge with a given conditions (other predicates).
func HasExecutionWith(preds ...predicate.WorkflowExecution) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(func(s *sql.Selector) {
		step := newExecutionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PerformanceMetric) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PerformanceMetric) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PerformanceMetric) predicate.PerformanceMetric {
	return predicate.PerformanceMetric(sql.NotPredicates(p))
}
