// Code generated by ent, DO NOT EDIT.

package hook

import (
	"context"
	"fmt"

	"github.com/trendscope/trendscope/ent"
)

// The ArticleRecommendationFunc type is an adapter to allow the use of ordinary
// function as ArticleRecommendation mutator.
type ArticleRecommendationFunc func(context.Context, *ent.ArticleRecommendationMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ArticleRecommendationFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ArticleRecommendationMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ArticleRecommendationMutation", m)
}

// The AuditLogFunc type is an adapter to allow the use of ordinary
// function as AuditLog mutator.
type AuditLogFunc func(context.Context, *ent.AuditLogMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f AuditLogFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.AuditLogMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.AuditLogMutation", m)
}

// The ClientArticleFunc type is an adapter to allow the use of ordinary
// function as ClientArticle mutator.
type ClientArticleFunc func(context.Context, *ent.ClientArticleMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ClientArticleFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ClientArticleMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ClientArticleMutation", m)
}

// The ClientStrengthFunc type is an adapter to allow the use of ordinary
// function as ClientStrength mutator.
type ClientStrengthFunc func(context.Context, *ent.ClientStrengthMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ClientStrengthFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ClientStrengthMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ClientStrengthMutation", m)
}

// The CompetitorFunc type is an adapter to allow the use of ordinary
// function as Competitor mutator.
type CompetitorFunc func(context.Context, *ent.CompetitorMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CompetitorFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CompetitorMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CompetitorMutation", m)
}

// The CompetitorArticleFunc type is an adapter to allow the use of ordinary
// function as CompetitorArticle mutator.
type CompetitorArticleFunc func(context.Context, *ent.CompetitorArticleMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CompetitorArticleFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CompetitorArticleMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CompetitorArticleMutation", m)
}

// The ContentRoadmapFunc type is an adapter to allow the use of ordinary
// function as ContentRoadmap mutator.
type ContentRoadmapFunc func(context.Context, *ent.ContentRoadmapMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f ContentRoadmapFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.ContentRoadmapMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.ContentRoadmapMutation", m)
}

// The CoverageAnalysisFunc type is an adapter to allow the use of ordinary
// function as CoverageAnalysis mutator.
type CoverageAnalysisFunc func(context.Context, *ent.CoverageAnalysisMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f CoverageAnalysisFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.CoverageAnalysisMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.CoverageAnalysisMutation", m)
}

// The EditorialGapFunc type is an adapter to allow the use of ordinary
// function as EditorialGap mutator.
type EditorialGapFunc func(context.Context, *ent.EditorialGapMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f EditorialGapFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.EditorialGapMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.EditorialGapMutation", m)
}

// The EventFunc type is an adapter to allow the use of ordinary
// function as Event mutator.
type EventFunc func(context.Context, *ent.EventMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f EventFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.EventMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.EventMutation", m)
}

// The PerformanceMetricFunc type is an adapter to allow the use of ordinary
// function as PerformanceMetric mutator.
type PerformanceMetricFunc func(context.Context, *ent.PerformanceMetricMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f PerformanceMetricFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.PerformanceMetricMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.PerformanceMetricMutation", m)
}

// The SiteProfileFunc type is an adapter to allow the use of ordinary
// function as SiteProfile mutator.
type SiteProfileFunc func(context.Context, *ent.SiteProfileMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f SiteProfileFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.SiteProfileMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.SiteProfileMutation", m)
}

// The TopicClusterFunc type is an adapter to allow the use of ordinary
// function as TopicCluster mutator.
type TopicClusterFunc func(context.Context, *ent.TopicClusterMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f TopicClusterFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.TopicClusterMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.TopicClusterMutation", m)
}

// The TopicOutlierFunc type is an adapter to allow the use of ordinary
// function as TopicOutlier mutator.
type TopicOutlierFunc func(context.Context, *ent.TopicOutlierMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f TopicOutlierFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.TopicOutlierMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.TopicOutlierMutation", m)
}

// The TopicTemporalMetricsFunc type is an adapter to allow the use of ordinary
// function as TopicTemporalMetrics mutator.
type TopicTemporalMetricsFunc func(context.Context, *ent.TopicTemporalMetricsMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f TopicTemporalMetricsFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.TopicTemporalMetricsMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.TopicTemporalMetricsMutation", m)
}

// The TrendAnalysisFunc type is an adapter to allow the use of ordinary
// function as TrendAnalysis mutator.
type TrendAnalysisFunc func(context.Context, *ent.TrendAnalysisMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f TrendAnalysisFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.TrendAnalysisMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.TrendAnalysisMutation", m)
}

// The TrendPipelineExecutionFunc type is an adapter to allow the use of ordinary
// function as TrendPipelineExecution mutator.
type TrendPipelineExecutionFunc func(context.Context, *ent.TrendPipelineExecutionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f TrendPipelineExecutionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.TrendPipelineExecutionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.TrendPipelineExecutionMutation", m)
}

// The WorkflowExecutionFunc type is an adapter to allow the use of ordinary
// function as WorkflowExecution mutator.
type WorkflowExecutionFunc func(context.Context, *ent.WorkflowExecutionMutation) (ent.Value, error)

// Mutate calls f(ctx, m).
func (f WorkflowExecutionFunc) Mutate(ctx context.Context, m ent.Mutation) (ent.Value, error) {
	if mv, ok := m.(*ent.WorkflowExecutionMutation); ok {
		return f(ctx, mv)
	}
	return nil, fmt.Errorf("unexpected mutation type %T. expect *ent.WorkflowExecutionMutation", m)
}

// Condition is a hook condition function.
type Condition func(context.Context, ent.Mutation) bool

// And groups conditions with the AND operator.
func And(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if !first(ctx, m) || !second(ctx, m) {
			return false
		}
		for _, cond := range rest {
			if !cond(ctx, m) {
				return false
			}
		}
		return true
	}
}

// Or groups conditions with the OR operator.
func Or(first, second Condition, rest ...Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		if first(ctx, m) || second(ctx, m) {
			return true
		}
		for _, cond := range rest {
			if cond(ctx, m) {
				return true
			}
		}
		return false
	}
}

// Not negates a given condition.
func Not(cond Condition) Condition {
	return func(ctx context.Context, m ent.Mutation) bool {
		return !cond(ctx, m)
	}
}

// HasOp is a condition testing mutation operation.
func HasOp(op ent.Op) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		return m.Op().Is(op)
	}
}

// HasAddedFields is a condition validating `.AddedField` on fields.
func HasAddedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.AddedField(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.AddedField(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasClearedFields is a condition validating `.FieldCleared` on fields.
func HasClearedFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if exists := m.FieldCleared(field); !exists {
			return false
		}
		for _, field := range fields {
			if exists := m.FieldCleared(field); !exists {
				return false
			}
		}
		return true
	}
}

// HasFields is a condition validating `.Field` on fields.
func HasFields(field string, fields ...string) Condition {
	return func(_ context.Context, m ent.Mutation) bool {
		if _, exists := m.Field(field); !exists {
			return false
		}
		for _, field := range fields {
			if _, exists := m.Field(field); !exists {
				return false
			}
		}
		return true
	}
}

// If executes the given hook under condition.
//
//	hook.If(ComputeAverage, And(HasFields(...), HasAddedFields(...)))
func If(hk ent.Hook, cond Condition) ent.Hook {
	return func(next ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(ctx context.Context, m ent.Mutation) (ent.Value, error) {
			if cond(ctx, m) {
				return hk(next).Mutate(ctx, m)
			}
			return next.Mutate(ctx, m)
		})
	}
}

// On executes the given hook only for the given operation.
//
//	hook.On(Log, ent.Delete|ent.Create)
func On(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, HasOp(op))
}

// Unless skips the given hook only for the given operation.
//
//	hook.Unless(Log, ent.Update|ent.UpdateOne)
func Unless(hk ent.Hook, op ent.Op) ent.Hook {
	return If(hk, Not(HasOp(op)))
}

// FixedError is a hook returning a fixed error.
func FixedError(err error) ent.Hook {
	return func(ent.Mutator) ent.Mutator {
		return ent.MutateFunc(func(context.Context, ent.Mutation) (ent.Value, error) {
			return nil, err
		})
	}
}

// Reject returns a hook that rejects all operations that match op.
//
//	func (T) Hooks() []ent.Hook {
//		return []ent.Hook{
//			Reject(ent.Delete|ent.Update),
//		}
//	}
func Reject(op ent.Op) ent.Hook {
	hk := FixedError(fmt.Errorf("%s operation is not allowed", op))
	return On(hk, op)
}

// Chain acts as a list of hooks and is effectively immutable.
// Once created, it will always hold the same set of hooks in the same order.
type Chain struct {
	hooks []ent.Hook
}

// NewChain creates a new chain of hooks.
func NewChain(hooks ...ent.Hook) Chain {
	return Chain{append([]ent.Hook(nil), hooks...)}
}

// Hook chains the list of hooks and returns the final hook.
func (c Chain) Hook() ent.Hook {
	return func(mutator ent.Mutator) ent.Mutator {
		for i := len(c.hooks) - 1; i >= 0; i-- {
			mutator = c.hooks[i](mutator)
		}
		return mutator
	}
}

// Append extends a chain, adding the specified hook
// as the last ones in the mutation flow.
func (c Chain) Append(hooks ...ent.Hook) Chain {
	newHooks := make([]ent.Hook, 0, len(c.hooks)+len(hooks))
	newHooks = append(newHooks, c.hooks...)
	newHooks = append(newHooks, hooks...)
	return Chain{newHooks}
}

// Extend extends a chain, adding the specified chain
// as the last ones in the mutation flow.
func (c Chain) Extend(chain Chain) Chain {
	return c.Append(chain.hooks...)
}
