// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/trendscope/trendscope/ent/articlerecommendation"
	"github.com/trendscope/trendscope/ent/auditlog"
	"github.com/trendscope/trendscope/ent/clientarticle"
	"github.com/trendscope/trendscope/ent/clientstrength"
	"github.com/trendscope/trendscope/ent/competitor"
	"github.com/trendscope/trendscope/ent/competitorarticle"
	"github.com/trendscope/trendscope/ent/contentroadmap"
	"github.com/trendscope/trendscope/ent/coverageanalysis"
	"github.com/trendscope/trendscope/ent/editorialgap"
	"github.com/trendscope/trendscope/ent/event"
	"github.com/trendscope/trendscope/ent/performancemetric"
	"github.com/trendscope/trendscope/ent/predicate"
	"github.com/trendscope/trendscope/ent/siteprofile"
	"github.com/trendscope/trendscope/ent/topiccluster"
	"github.com/trendscope/trendscope/ent/topicoutlier"
	"github.com/trendscope/trendscope/ent/topictemporalmetrics"
	"github.com/trendscope/trendscope/ent/trendanalysis"
	"github.com/trendscope/trendscope/ent/trendpipelineexecution"
	"github.com/trendscope/trendscope/ent/workflowexecution"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeArticleRecommendation  = "ArticleRecommendation"
	TypeAuditLog               = "AuditLog"
	TypeClientArticle          = "ClientArticle"
	TypeClientStrength         = "ClientStrength"
	TypeCompetitor             = "Competitor"
	TypeCompetitorArticle      = "CompetitorArticle"
	TypeContentRoadmap         = "ContentRoadmap"
	TypeCoverageAnalysis       = "CoverageAnalysis"
	TypeEditorialGap           = "EditorialGap"
	TypeEvent                  = "Event"
	TypePerformanceMetric      = "PerformanceMetric"
	TypeSiteProfile            = "SiteProfile"
	TypeTopicCluster           = "TopicCluster"
	TypeTopicOutlier           = "TopicOutlier"
	TypeTopicTemporalMetrics   = "TopicTemporalMetrics"
	TypeTrendAnalysis          = "TrendAnalysis"
	TypeTrendPipelineExecution = "TrendPipelineExecution"
	TypeWorkflowExecution      = "WorkflowExecution"
)

// ArticleRecommendationMutation represents an operation that mutates the ArticleRecommendation nodes in the graph.
type ArticleRecommendationMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	title                    *string
	hook                     *string
	outline                  *[]string
	appendoutline            []string
	differentiation_score    *float64
	adddifferentiation_score *float64
	effort_level             *articlerecommendation.EffortLevel
	status                   *articlerecommendation.Status
	created_at               *time.Time
	clearedFields            map[string]struct{}
	cluster                  *int
	clearedcluster           bool
	roadmap_entries          map[int]struct{}
	removedroadmap_entries   map[int]struct{}
	clearedroadmap_entries   bool
	done                     bool
	oldValue                 func(context.Context) (*ArticleRecommendation, error)
	predicates               []predicate.ArticleRecommendation
}

var _ ent.Mutation = (*ArticleRecommendationMutation)(nil)

// articlerecommendationOption allows management of the mutation configuration using functional options.
type articlerecommendationOption func(*ArticleRecommendationMutation)

// newArticleRecommendationMutation creates new mutation for the ArticleRecommendation entity.
func newArticleRecommendationMutation(c config, op Op, opts ...articlerecommendationOption) *ArticleRecommendationMutation {
	m := &ArticleRecommendationMutation{
		config:        c,
		op:            op,
		typ:           TypeArticleRecommendation,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withArticleRecommendationID sets the ID field of the mutation.
func withArticleRecommendationID(id int) articlerecommendationOption {
	return func(m *ArticleRecommendationMutation) {
		var (
			err   error
			once  sync.Once
			value *ArticleRecommendation
		)
		m.oldValue = func(ctx context.Context) (*ArticleRecommendation, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ArticleRecommendation.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withArticleRecommendation sets the old ArticleRecommendation of the mutation.
func withArticleRecommendation(node *ArticleRecommendation) articlerecommendationOption {
	return func(m *ArticleRecommendationMutation) {
		m.oldValue = func(context.Context) (*ArticleRecommendation, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ArticleRecommendationMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ArticleRecommendationMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ArticleRecommendationMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ArticleRecommendationMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ArticleRecommendation.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (m *ArticleRecommendationMutation) SetTopicClusterID(i int) {
	m.cluster = &i
}

// TopicClusterID returns the value of the "topic_cluster_id" field in the mutation.
func (m *ArticleRecommendationMutation) TopicClusterID() (r int, exists bool) {
	v := m.cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicClusterID returns the old "topic_cluster_id" field's value of the ArticleRecommendation entity.
// If the ArticleRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleRecommendationMutation) OldTopicClusterID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicClusterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicClusterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicClusterID: %w", err)
	}
	return oldValue.TopicClusterID, nil
}

// ResetTopicClusterID resets all changes to the "topic_cluster_id" field.
func (m *ArticleRecommendationMutation) ResetTopicClusterID() {
	m.cluster = nil
}

// SetTitle sets the "title" field.
func (m *ArticleRecommendationMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ArticleRecommendationMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ArticleRecommendation entity.
// If the ArticleRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleRecommendationMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ResetTitle resets all changes to the "title" field.
func (m *ArticleRecommendationMutation) ResetTitle() {
	m.title = nil
}

// SetHook sets the "hook" field.
func (m *ArticleRecommendationMutation) SetHook(s string) {
	m.hook = &s
}

// Hook returns the value of the "hook" field in the mutation.
func (m *ArticleRecommendationMutation) Hook() (r string, exists bool) {
	v := m.hook
	if v == nil {
		return
	}
	return *v, true
}

// OldHook returns the old "hook" field's value of the ArticleRecommendation entity.
// If the ArticleRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleRecommendationMutation) OldHook(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldHook is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldHook requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldHook: %w", err)
	}
	return oldValue.Hook, nil
}

// ClearHook clears the value of the "hook" field.
func (m *ArticleRecommendationMutation) ClearHook() {
	m.hook = nil
	m.clearedFields[articlerecommendation.FieldHook] = struct{}{}
}

// HookCleared returns if the "hook" field was cleared in this mutation.
func (m *ArticleRecommendationMutation) HookCleared() bool {
	_, ok := m.clearedFields[articlerecommendation.FieldHook]
	return ok
}

// ResetHook resets all changes to the "hook" field.
func (m *ArticleRecommendationMutation) ResetHook() {
	m.hook = nil
	delete(m.clearedFields, articlerecommendation.FieldHook)
}

// SetOutline sets the "outline" field.
func (m *ArticleRecommendationMutation) SetOutline(s []string) {
	m.outline = &s
	m.appendoutline = nil
}

// Outline returns the value of the "outline" field in the mutation.
func (m *ArticleRecommendationMutation) Outline() (r []string, exists bool) {
	v := m.outline
	if v == nil {
		return
	}
	return *v, true
}

// OldOutline returns the old "outline" field's value of the ArticleRecommendation entity.
// If the ArticleRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleRecommendationMutation) OldOutline(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutline is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutline requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutline: %w", err)
	}
	return oldValue.Outline, nil
}

// AppendOutline adds s to the "outline" field.
func (m *ArticleRecommendationMutation) AppendOutline(s []string) {
	m.appendoutline = append(m.appendoutline, s...)
}

// AppendedOutline returns the list of values that were appended to the "outline" field in this mutation.
func (m *ArticleRecommendationMutation) AppendedOutline() ([]string, bool) {
	if len(m.appendoutline) == 0 {
		return nil, false
	}
	return m.appendoutline, true
}

// ClearOutline clears the value of the "outline" field.
func (m *ArticleRecommendationMutation) ClearOutline() {
	m.outline = nil
	m.appendoutline = nil
	m.clearedFields[articlerecommendation.FieldOutline] = struct{}{}
}

// OutlineCleared returns if the "outline" field was cleared in this mutation.
func (m *ArticleRecommendationMutation) OutlineCleared() bool {
	_, ok := m.clearedFields[articlerecommendation.FieldOutline]
	return ok
}

// ResetOutline resets all changes to the "outline" field.
func (m *ArticleRecommendationMutation) ResetOutline() {
	m.outline = nil
	m.appendoutline = nil
	delete(m.clearedFields, articlerecommendation.FieldOutline)
}

// SetDifferentiationScore sets the "differentiation_score" field.
func (m *ArticleRecommendationMutation) SetDifferentiationScore(f float64) {
	m.differentiation_score = &f
	m.adddifferentiation_score = nil
}

// DifferentiationScore returns the value of the "differentiation_score" field in the mutation.
func (m *ArticleRecommendationMutation) DifferentiationScore() (r float64, exists bool) {
	v := m.differentiation_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDifferentiationScore returns the old "differentiation_score" field's value of the ArticleRecommendation entity.
// If the ArticleRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleRecommendationMutation) OldDifferentiationScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDifferentiationScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDifferentiationScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDifferentiationScore: %w", err)
	}
	return oldValue.DifferentiationScore, nil
}

// AddDifferentiationScore adds f to the "differentiation_score" field.
func (m *ArticleRecommendationMutation) AddDifferentiationScore(f float64) {
	if m.adddifferentiation_score != nil {
		*m.adddifferentiation_score += f
	} else {
		m.adddifferentiation_score = &f
	}
}

// AddedDifferentiationScore returns the value that was added to the "differentiation_score" field in this mutation.
func (m *ArticleRecommendationMutation) AddedDifferentiationScore() (r float64, exists bool) {
	v := m.adddifferentiation_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetDifferentiationScore resets all changes to the "differentiation_score" field.
func (m *ArticleRecommendationMutation) ResetDifferentiationScore() {
	m.differentiation_score = nil
	m.adddifferentiation_score = nil
}

// SetEffortLevel sets the "effort_level" field.
func (m *ArticleRecommendationMutation) SetEffortLevel(al articlerecommendation.EffortLevel) {
	m.effort_level = &al
}

// EffortLevel returns the value of the "effort_level" field in the mutation.
func (m *ArticleRecommendationMutation) EffortLevel() (r articlerecommendation.EffortLevel, exists bool) {
	v := m.effort_level
	if v == nil {
		return
	}
	return *v, true
}

// OldEffortLevel returns the old "effort_level" field's value of the ArticleRecommendation entity.
// If the ArticleRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleRecommendationMutation) OldEffortLevel(ctx context.Context) (v articlerecommendation.EffortLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEffortLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEffortLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEffortLevel: %w", err)
	}
	return oldValue.EffortLevel, nil
}

// ResetEffortLevel resets all changes to the "effort_level" field.
func (m *ArticleRecommendationMutation) ResetEffortLevel() {
	m.effort_level = nil
}

// SetStatus sets the "status" field.
func (m *ArticleRecommendationMutation) SetStatus(a articlerecommendation.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *ArticleRecommendationMutation) Status() (r articlerecommendation.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ArticleRecommendation entity.
// If the ArticleRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleRecommendationMutation) OldStatus(ctx context.Context) (v articlerecommendation.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ArticleRecommendationMutation) ResetStatus() {
	m.status = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ArticleRecommendationMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ArticleRecommendationMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ArticleRecommendation entity.
// If the ArticleRecommendation object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ArticleRecommendationMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ArticleRecommendationMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by id.
func (m *ArticleRecommendationMutation) SetClusterID(id int) {
	m.cluster = &id
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (m *ArticleRecommendationMutation) ClearCluster() {
	m.clearedcluster = true
	m.clearedFields[articlerecommendation.FieldTopicClusterID] = struct{}{}
}

// ClusterCleared reports if the "cluster" edge to the TopicCluster entity was cleared.
func (m *ArticleRecommendationMutation) ClusterCleared() bool {
	return m.clearedcluster
}

// ClusterID returns the "cluster" edge ID in the mutation.
func (m *ArticleRecommendationMutation) ClusterID() (id int, exists bool) {
	if m.cluster != nil {
		return *m.cluster, true
	}
	return
}

// ClusterIDs returns the "cluster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClusterID instead. It exists only for internal usage by the builders.
func (m *ArticleRecommendationMutation) ClusterIDs() (ids []int) {
	if id := m.cluster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCluster resets all changes to the "cluster" edge.
func (m *ArticleRecommendationMutation) ResetCluster() {
	m.cluster = nil
	m.clearedcluster = false
}

// AddRoadmapEntryIDs adds the "roadmap_entries" edge to the ContentRoadmap entity by ids.
func (m *ArticleRecommendationMutation) AddRoadmapEntryIDs(ids ...int) {
	if m.roadmap_entries == nil {
		m.roadmap_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.roadmap_entries[ids[i]] = struct{}{}
	}
}

// ClearRoadmapEntries clears the "roadmap_entries" edge to the ContentRoadmap entity.
func (m *ArticleRecommendationMutation) ClearRoadmapEntries() {
	m.clearedroadmap_entries = true
}

// RoadmapEntriesCleared reports if the "roadmap_entries" edge to the ContentRoadmap entity was cleared.
func (m *ArticleRecommendationMutation) RoadmapEntriesCleared() bool {
	return m.clearedroadmap_entries
}

// RemoveRoadmapEntryIDs removes the "roadmap_entries" edge to the ContentRoadmap entity by IDs.
func (m *ArticleRecommendationMutation) RemoveRoadmapEntryIDs(ids ...int) {
	if m.removedroadmap_entries == nil {
		m.removedroadmap_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.roadmap_entries, ids[i])
		m.removedroadmap_entries[ids[i]] = struct{}{}
	}
}

// RemovedRoadmapEntries returns the removed IDs of the "roadmap_entries" edge to the ContentRoadmap entity.
func (m *ArticleRecommendationMutation) RemovedRoadmapEntriesIDs() (ids []int) {
	for id := range m.removedroadmap_entries {
		ids = append(ids, id)
	}
	return
}

// RoadmapEntriesIDs returns the "roadmap_entries" edge IDs in the mutation.
func (m *ArticleRecommendationMutation) RoadmapEntriesIDs() (ids []int) {
	for id := range m.roadmap_entries {
		ids = append(ids, id)
	}
	return
}

// ResetRoadmapEntries resets all changes to the "roadmap_entries" edge.
func (m *ArticleRecommendationMutation) ResetRoadmapEntries() {
	m.roadmap_entries = nil
	m.clearedroadmap_entries = false
	m.removedroadmap_entries = nil
}

// Where appends a list predicates to the ArticleRecommendationMutation builder.
func (m *ArticleRecommendationMutation) Where(ps ...predicate.ArticleRecommendation) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ArticleRecommendationMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ArticleRecommendationMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ArticleRecommendation, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ArticleRecommendationMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ArticleRecommendationMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ArticleRecommendation).
func (m *ArticleRecommendationMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ArticleRecommendationMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.cluster != nil {
		fields = append(fields, articlerecommendation.FieldTopicClusterID)
	}
	if m.title != nil {
		fields = append(fields, articlerecommendation.FieldTitle)
	}
	if m.hook != nil {
		fields = append(fields, articlerecommendation.FieldHook)
	}
	if m.outline != nil {
		fields = append(fields, articlerecommendation.FieldOutline)
	}
	if m.differentiation_score != nil {
		fields = append(fields, articlerecommendation.FieldDifferentiationScore)
	}
	if m.effort_level != nil {
		fields = append(fields, articlerecommendation.FieldEffortLevel)
	}
	if m.status != nil {
		fields = append(fields, articlerecommendation.FieldStatus)
	}
	if m.created_at != nil {
		fields = append(fields, articlerecommendation.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ArticleRecommendationMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case articlerecommendation.FieldTopicClusterID:
		return m.TopicClusterID()
	case articlerecommendation.FieldTitle:
		return m.Title()
	case articlerecommendation.FieldHook:
		return m.Hook()
	case articlerecommendation.FieldOutline:
		return m.Outline()
	case articlerecommendation.FieldDifferentiationScore:
		return m.DifferentiationScore()
	case articlerecommendation.FieldEffortLevel:
		return m.EffortLevel()
	case articlerecommendation.FieldStatus:
		return m.Status()
	case articlerecommendation.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ArticleRecommendationMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case articlerecommendation.FieldTopicClusterID:
		return m.OldTopicClusterID(ctx)
	case articlerecommendation.FieldTitle:
		return m.OldTitle(ctx)
	case articlerecommendation.FieldHook:
		return m.OldHook(ctx)
	case articlerecommendation.FieldOutline:
		return m.OldOutline(ctx)
	case articlerecommendation.FieldDifferentiationScore:
		return m.OldDifferentiationScore(ctx)
	case articlerecommendation.FieldEffortLevel:
		return m.OldEffortLevel(ctx)
	case articlerecommendation.FieldStatus:
		return m.OldStatus(ctx)
	case articlerecommendation.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ArticleRecommendation field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleRecommendationMutation) SetField(name string, value ent.Value) error {
	switch name {
	case articlerecommendation.FieldTopicClusterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicClusterID(v)
		return nil
	case articlerecommendation.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case articlerecommendation.FieldHook:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetHook(v)
		return nil
	case articlerecommendation.FieldOutline:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutline(v)
		return nil
	case articlerecommendation.FieldDifferentiationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDifferentiationScore(v)
		return nil
	case articlerecommendation.FieldEffortLevel:
		v, ok := value.(articlerecommendation.EffortLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEffortLevel(v)
		return nil
	case articlerecommendation.FieldStatus:
		v, ok := value.(articlerecommendation.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case articlerecommendation.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ArticleRecommendation field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ArticleRecommendationMutation) AddedFields() []string {
	var fields []string
	if m.adddifferentiation_score != nil {
		fields = append(fields, articlerecommendation.FieldDifferentiationScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ArticleRecommendationMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case articlerecommendation.FieldDifferentiationScore:
		return m.AddedDifferentiationScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ArticleRecommendationMutation) AddField(name string, value ent.Value) error {
	switch name {
	case articlerecommendation.FieldDifferentiationScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDifferentiationScore(v)
		return nil
	}
	return fmt.Errorf("unknown ArticleRecommendation numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ArticleRecommendationMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(articlerecommendation.FieldHook) {
		fields = append(fields, articlerecommendation.FieldHook)
	}
	if m.FieldCleared(articlerecommendation.FieldOutline) {
		fields = append(fields, articlerecommendation.FieldOutline)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ArticleRecommendationMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ArticleRecommendationMutation) ClearField(name string) error {
	switch name {
	case articlerecommendation.FieldHook:
		m.ClearHook()
		return nil
	case articlerecommendation.FieldOutline:
		m.ClearOutline()
		return nil
	}
	return fmt.Errorf("unknown ArticleRecommendation nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ArticleRecommendationMutation) ResetField(name string) error {
	switch name {
	case articlerecommendation.FieldTopicClusterID:
		m.ResetTopicClusterID()
		return nil
	case articlerecommendation.FieldTitle:
		m.ResetTitle()
		return nil
	case articlerecommendation.FieldHook:
		m.ResetHook()
		return nil
	case articlerecommendation.FieldOutline:
		m.ResetOutline()
		return nil
	case articlerecommendation.FieldDifferentiationScore:
		m.ResetDifferentiationScore()
		return nil
	case articlerecommendation.FieldEffortLevel:
		m.ResetEffortLevel()
		return nil
	case articlerecommendation.FieldStatus:
		m.ResetStatus()
		return nil
	case articlerecommendation.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ArticleRecommendation field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ArticleRecommendationMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cluster != nil {
		edges = append(edges, articlerecommendation.EdgeCluster)
	}
	if m.roadmap_entries != nil {
		edges = append(edges, articlerecommendation.EdgeRoadmapEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ArticleRecommendationMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case articlerecommendation.EdgeCluster:
		if id := m.cluster; id != nil {
			return []ent.Value{*id}
		}
	case articlerecommendation.EdgeRoadmapEntries:
		ids := make([]ent.Value, 0, len(m.roadmap_entries))
		for id := range m.roadmap_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ArticleRecommendationMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedroadmap_entries != nil {
		edges = append(edges, articlerecommendation.EdgeRoadmapEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ArticleRecommendationMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case articlerecommendation.EdgeRoadmapEntries:
		ids := make([]ent.Value, 0, len(m.removedroadmap_entries))
		for id := range m.removedroadmap_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ArticleRecommendationMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcluster {
		edges = append(edges, articlerecommendation.EdgeCluster)
	}
	if m.clearedroadmap_entries {
		edges = append(edges, articlerecommendation.EdgeRoadmapEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ArticleRecommendationMutation) EdgeCleared(name string) bool {
	switch name {
	case articlerecommendation.EdgeCluster:
		return m.clearedcluster
	case articlerecommendation.EdgeRoadmapEntries:
		return m.clearedroadmap_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ArticleRecommendationMutation) ClearEdge(name string) error {
	switch name {
	case articlerecommendation.EdgeCluster:
		m.ClearCluster()
		return nil
	}
	return fmt.Errorf("unknown ArticleRecommendation unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ArticleRecommendationMutation) ResetEdge(name string) error {
	switch name {
	case articlerecommendation.EdgeCluster:
		m.ResetCluster()
		return nil
	case articlerecommendation.EdgeRoadmapEntries:
		m.ResetRoadmapEntries()
		return nil
	}
	return fmt.Errorf("unknown ArticleRecommendation edge %s", name)
}

// AuditLogMutation represents an operation that mutates the AuditLog nodes in the graph.
type AuditLogMutation struct {
	config
	op               Op
	typ              string
	id               *int
	action           *string
	agent_name       *string
	step_name        *string
	status           *auditlog.Status
	message          *string
	details          *map[string]interface{}
	error_traceback  *string
	timestamp        *time.Time
	clearedFields    map[string]struct{}
	execution        *string
	clearedexecution bool
	done             bool
	oldValue         func(context.Context) (*AuditLog, error)
	predicates       []predicate.AuditLog
}

var _ ent.Mutation = (*AuditLogMutation)(nil)

// auditlogOption allows management of the mutation configuration using functional options.
type auditlogOption func(*AuditLogMutation)

// newAuditLogMutation creates new mutation for the AuditLog entity.
func newAuditLogMutation(c config, op Op, opts ...auditlogOption) *AuditLogMutation {
	m := &AuditLogMutation{
		config:        c,
		op:            op,
		typ:           TypeAuditLog,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAuditLogID sets the ID field of the mutation.
func withAuditLogID(id int) auditlogOption {
	return func(m *AuditLogMutation) {
		var (
			err   error
			once  sync.Once
			value *AuditLog
		)
		m.oldValue = func(ctx context.Context) (*AuditLog, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().AuditLog.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAuditLog sets the old AuditLog of the mutation.
func withAuditLog(node *AuditLog) auditlogOption {
	return func(m *AuditLogMutation) {
		m.oldValue = func(context.Context) (*AuditLog, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AuditLogMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AuditLogMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AuditLogMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AuditLogMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().AuditLog.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *AuditLogMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *AuditLogMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *AuditLogMutation) ClearExecutionID() {
	m.execution = nil
	m.clearedFields[auditlog.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *AuditLogMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *AuditLogMutation) ResetExecutionID() {
	m.execution = nil
	delete(m.clearedFields, auditlog.FieldExecutionID)
}

// SetAction sets the "action" field.
func (m *AuditLogMutation) SetAction(s string) {
	m.action = &s
}

// Action returns the value of the "action" field in the mutation.
func (m *AuditLogMutation) Action() (r string, exists bool) {
	v := m.action
	if v == nil {
		return
	}
	return *v, true
}

// OldAction returns the old "action" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAction(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAction is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAction requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAction: %w", err)
	}
	return oldValue.Action, nil
}

// ResetAction resets all changes to the "action" field.
func (m *AuditLogMutation) ResetAction() {
	m.action = nil
}

// SetAgentName sets the "agent_name" field.
func (m *AuditLogMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *AuditLogMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ClearAgentName clears the value of the "agent_name" field.
func (m *AuditLogMutation) ClearAgentName() {
	m.agent_name = nil
	m.clearedFields[auditlog.FieldAgentName] = struct{}{}
}

// AgentNameCleared returns if the "agent_name" field was cleared in this mutation.
func (m *AuditLogMutation) AgentNameCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldAgentName]
	return ok
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *AuditLogMutation) ResetAgentName() {
	m.agent_name = nil
	delete(m.clearedFields, auditlog.FieldAgentName)
}

// SetStepName sets the "step_name" field.
func (m *AuditLogMutation) SetStepName(s string) {
	m.step_name = &s
}

// StepName returns the value of the "step_name" field in the mutation.
func (m *AuditLogMutation) StepName() (r string, exists bool) {
	v := m.step_name
	if v == nil {
		return
	}
	return *v, true
}

// OldStepName returns the old "step_name" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldStepName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStepName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStepName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStepName: %w", err)
	}
	return oldValue.StepName, nil
}

// ClearStepName clears the value of the "step_name" field.
func (m *AuditLogMutation) ClearStepName() {
	m.step_name = nil
	m.clearedFields[auditlog.FieldStepName] = struct{}{}
}

// StepNameCleared returns if the "step_name" field was cleared in this mutation.
func (m *AuditLogMutation) StepNameCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldStepName]
	return ok
}

// ResetStepName resets all changes to the "step_name" field.
func (m *AuditLogMutation) ResetStepName() {
	m.step_name = nil
	delete(m.clearedFields, auditlog.FieldStepName)
}

// SetStatus sets the "status" field.
func (m *AuditLogMutation) SetStatus(a auditlog.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AuditLogMutation) Status() (r auditlog.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldStatus(ctx context.Context) (v auditlog.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AuditLogMutation) ResetStatus() {
	m.status = nil
}

// SetMessage sets the "message" field.
func (m *AuditLogMutation) SetMessage(s string) {
	m.message = &s
}

// Message returns the value of the "message" field in the mutation.
func (m *AuditLogMutation) Message() (r string, exists bool) {
	v := m.message
	if v == nil {
		return
	}
	return *v, true
}

// OldMessage returns the old "message" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldMessage(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessage: %w", err)
	}
	return oldValue.Message, nil
}

// ClearMessage clears the value of the "message" field.
func (m *AuditLogMutation) ClearMessage() {
	m.message = nil
	m.clearedFields[auditlog.FieldMessage] = struct{}{}
}

// MessageCleared returns if the "message" field was cleared in this mutation.
func (m *AuditLogMutation) MessageCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldMessage]
	return ok
}

// ResetMessage resets all changes to the "message" field.
func (m *AuditLogMutation) ResetMessage() {
	m.message = nil
	delete(m.clearedFields, auditlog.FieldMessage)
}

// SetDetails sets the "details" field.
func (m *AuditLogMutation) SetDetails(value map[string]interface{}) {
	m.details = &value
}

// Details returns the value of the "details" field in the mutation.
func (m *AuditLogMutation) Details() (r map[string]interface{}, exists bool) {
	v := m.details
	if v == nil {
		return
	}
	return *v, true
}

// OldDetails returns the old "details" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldDetails(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetails is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetails requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetails: %w", err)
	}
	return oldValue.Details, nil
}

// ClearDetails clears the value of the "details" field.
func (m *AuditLogMutation) ClearDetails() {
	m.details = nil
	m.clearedFields[auditlog.FieldDetails] = struct{}{}
}

// DetailsCleared returns if the "details" field was cleared in this mutation.
func (m *AuditLogMutation) DetailsCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldDetails]
	return ok
}

// ResetDetails resets all changes to the "details" field.
func (m *AuditLogMutation) ResetDetails() {
	m.details = nil
	delete(m.clearedFields, auditlog.FieldDetails)
}

// SetErrorTraceback sets the "error_traceback" field.
func (m *AuditLogMutation) SetErrorTraceback(s string) {
	m.error_traceback = &s
}

// ErrorTraceback returns the value of the "error_traceback" field in the mutation.
func (m *AuditLogMutation) ErrorTraceback() (r string, exists bool) {
	v := m.error_traceback
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorTraceback returns the old "error_traceback" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldErrorTraceback(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorTraceback is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorTraceback requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorTraceback: %w", err)
	}
	return oldValue.ErrorTraceback, nil
}

// ClearErrorTraceback clears the value of the "error_traceback" field.
func (m *AuditLogMutation) ClearErrorTraceback() {
	m.error_traceback = nil
	m.clearedFields[auditlog.FieldErrorTraceback] = struct{}{}
}

// ErrorTracebackCleared returns if the "error_traceback" field was cleared in this mutation.
func (m *AuditLogMutation) ErrorTracebackCleared() bool {
	_, ok := m.clearedFields[auditlog.FieldErrorTraceback]
	return ok
}

// ResetErrorTraceback resets all changes to the "error_traceback" field.
func (m *AuditLogMutation) ResetErrorTraceback() {
	m.error_traceback = nil
	delete(m.clearedFields, auditlog.FieldErrorTraceback)
}

// SetTimestamp sets the "timestamp" field.
func (m *AuditLogMutation) SetTimestamp(t time.Time) {
	m.timestamp = &t
}

// Timestamp returns the value of the "timestamp" field in the mutation.
func (m *AuditLogMutation) Timestamp() (r time.Time, exists bool) {
	v := m.timestamp
	if v == nil {
		return
	}
	return *v, true
}

// OldTimestamp returns the old "timestamp" field's value of the AuditLog entity.
// If the AuditLog object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AuditLogMutation) OldTimestamp(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimestamp is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimestamp requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimestamp: %w", err)
	}
	return oldValue.Timestamp, nil
}

// ResetTimestamp resets all changes to the "timestamp" field.
func (m *AuditLogMutation) ResetTimestamp() {
	m.timestamp = nil
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *AuditLogMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[auditlog.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *AuditLogMutation) ExecutionCleared() bool {
	return m.ExecutionIDCleared() || m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *AuditLogMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *AuditLogMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the AuditLogMutation builder.
func (m *AuditLogMutation) Where(ps ...predicate.AuditLog) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AuditLogMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AuditLogMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.AuditLog, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AuditLogMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AuditLogMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (AuditLog).
func (m *AuditLogMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AuditLogMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.execution != nil {
		fields = append(fields, auditlog.FieldExecutionID)
	}
	if m.action != nil {
		fields = append(fields, auditlog.FieldAction)
	}
	if m.agent_name != nil {
		fields = append(fields, auditlog.FieldAgentName)
	}
	if m.step_name != nil {
		fields = append(fields, auditlog.FieldStepName)
	}
	if m.status != nil {
		fields = append(fields, auditlog.FieldStatus)
	}
	if m.message != nil {
		fields = append(fields, auditlog.FieldMessage)
	}
	if m.details != nil {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.error_traceback != nil {
		fields = append(fields, auditlog.FieldErrorTraceback)
	}
	if m.timestamp != nil {
		fields = append(fields, auditlog.FieldTimestamp)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AuditLogMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case auditlog.FieldExecutionID:
		return m.ExecutionID()
	case auditlog.FieldAction:
		return m.Action()
	case auditlog.FieldAgentName:
		return m.AgentName()
	case auditlog.FieldStepName:
		return m.StepName()
	case auditlog.FieldStatus:
		return m.Status()
	case auditlog.FieldMessage:
		return m.Message()
	case auditlog.FieldDetails:
		return m.Details()
	case auditlog.FieldErrorTraceback:
		return m.ErrorTraceback()
	case auditlog.FieldTimestamp:
		return m.Timestamp()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AuditLogMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case auditlog.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case auditlog.FieldAction:
		return m.OldAction(ctx)
	case auditlog.FieldAgentName:
		return m.OldAgentName(ctx)
	case auditlog.FieldStepName:
		return m.OldStepName(ctx)
	case auditlog.FieldStatus:
		return m.OldStatus(ctx)
	case auditlog.FieldMessage:
		return m.OldMessage(ctx)
	case auditlog.FieldDetails:
		return m.OldDetails(ctx)
	case auditlog.FieldErrorTraceback:
		return m.OldErrorTraceback(ctx)
	case auditlog.FieldTimestamp:
		return m.OldTimestamp(ctx)
	}
	return nil, fmt.Errorf("unknown AuditLog field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) SetField(name string, value ent.Value) error {
	switch name {
	case auditlog.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case auditlog.FieldAction:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAction(v)
		return nil
	case auditlog.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case auditlog.FieldStepName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStepName(v)
		return nil
	case auditlog.FieldStatus:
		v, ok := value.(auditlog.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case auditlog.FieldMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessage(v)
		return nil
	case auditlog.FieldDetails:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetails(v)
		return nil
	case auditlog.FieldErrorTraceback:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorTraceback(v)
		return nil
	case auditlog.FieldTimestamp:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimestamp(v)
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AuditLogMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AuditLogMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AuditLogMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown AuditLog numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AuditLogMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(auditlog.FieldExecutionID) {
		fields = append(fields, auditlog.FieldExecutionID)
	}
	if m.FieldCleared(auditlog.FieldAgentName) {
		fields = append(fields, auditlog.FieldAgentName)
	}
	if m.FieldCleared(auditlog.FieldStepName) {
		fields = append(fields, auditlog.FieldStepName)
	}
	if m.FieldCleared(auditlog.FieldMessage) {
		fields = append(fields, auditlog.FieldMessage)
	}
	if m.FieldCleared(auditlog.FieldDetails) {
		fields = append(fields, auditlog.FieldDetails)
	}
	if m.FieldCleared(auditlog.FieldErrorTraceback) {
		fields = append(fields, auditlog.FieldErrorTraceback)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AuditLogMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AuditLogMutation) ClearField(name string) error {
	switch name {
	case auditlog.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	case auditlog.FieldAgentName:
		m.ClearAgentName()
		return nil
	case auditlog.FieldStepName:
		m.ClearStepName()
		return nil
	case auditlog.FieldMessage:
		m.ClearMessage()
		return nil
	case auditlog.FieldDetails:
		m.ClearDetails()
		return nil
	case auditlog.FieldErrorTraceback:
		m.ClearErrorTraceback()
		return nil
	}
	return fmt.Errorf("unknown AuditLog nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AuditLogMutation) ResetField(name string) error {
	switch name {
	case auditlog.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case auditlog.FieldAction:
		m.ResetAction()
		return nil
	case auditlog.FieldAgentName:
		m.ResetAgentName()
		return nil
	case auditlog.FieldStepName:
		m.ResetStepName()
		return nil
	case auditlog.FieldStatus:
		m.ResetStatus()
		return nil
	case auditlog.FieldMessage:
		m.ResetMessage()
		return nil
	case auditlog.FieldDetails:
		m.ResetDetails()
		return nil
	case auditlog.FieldErrorTraceback:
		m.ResetErrorTraceback()
		return nil
	case auditlog.FieldTimestamp:
		m.ResetTimestamp()
		return nil
	}
	return fmt.Errorf("unknown AuditLog field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AuditLogMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, auditlog.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AuditLogMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case auditlog.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AuditLogMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AuditLogMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AuditLogMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, auditlog.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AuditLogMutation) EdgeCleared(name string) bool {
	switch name {
	case auditlog.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AuditLogMutation) ClearEdge(name string) error {
	switch name {
	case auditlog.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown AuditLog unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AuditLogMutation) ResetEdge(name string) error {
	switch name {
	case auditlog.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown AuditLog edge %s", name)
}

// ClientArticleMutation represents an operation that mutates the ClientArticle nodes in the graph.
type ClientArticleMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	domain              *string
	url                 *string
	url_hash            *string
	title               *string
	content_text        *string
	author              *string
	published_date      *time.Time
	keywords            *[]string
	appendkeywords      []string
	topic_id            *int
	addtopic_id         *int
	qdrant_point_id     *string
	is_valid            *bool
	created_at          *time.Time
	clearedFields       map[string]struct{}
	site_profile        *int
	clearedsite_profile bool
	done                bool
	oldValue            func(context.Context) (*ClientArticle, error)
	predicates          []predicate.ClientArticle
}

var _ ent.Mutation = (*ClientArticleMutation)(nil)

// clientarticleOption allows management of the mutation configuration using functional options.
type clientarticleOption func(*ClientArticleMutation)

// newClientArticleMutation creates new mutation for the ClientArticle entity.
func newClientArticleMutation(c config, op Op, opts ...clientarticleOption) *ClientArticleMutation {
	m := &ClientArticleMutation{
		config:        c,
		op:            op,
		typ:           TypeClientArticle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientArticleID sets the ID field of the mutation.
func withClientArticleID(id int) clientarticleOption {
	return func(m *ClientArticleMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientArticle
		)
		m.oldValue = func(ctx context.Context) (*ClientArticle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientArticle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientArticle sets the old ClientArticle of the mutation.
func withClientArticle(node *ClientArticle) clientarticleOption {
	return func(m *ClientArticleMutation) {
		m.oldValue = func(context.Context) (*ClientArticle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientArticleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientArticleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientArticleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientArticleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientArticle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSiteProfileID sets the "site_profile_id" field.
func (m *ClientArticleMutation) SetSiteProfileID(i int) {
	m.site_profile = &i
}

// SiteProfileID returns the value of the "site_profile_id" field in the mutation.
func (m *ClientArticleMutation) SiteProfileID() (r int, exists bool) {
	v := m.site_profile
	if v == nil {
		return
	}
	return *v, true
}

// OldSiteProfileID returns the old "site_profile_id" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldSiteProfileID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSiteProfileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSiteProfileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSiteProfileID: %w", err)
	}
	return oldValue.SiteProfileID, nil
}

// ClearSiteProfileID clears the value of the "site_profile_id" field.
func (m *ClientArticleMutation) ClearSiteProfileID() {
	m.site_profile = nil
	m.clearedFields[clientarticle.FieldSiteProfileID] = struct{}{}
}

// SiteProfileIDCleared returns if the "site_profile_id" field was cleared in this mutation.
func (m *ClientArticleMutation) SiteProfileIDCleared() bool {
	_, ok := m.clearedFields[clientarticle.FieldSiteProfileID]
	return ok
}

// ResetSiteProfileID resets all changes to the "site_profile_id" field.
func (m *ClientArticleMutation) ResetSiteProfileID() {
	m.site_profile = nil
	delete(m.clearedFields, clientarticle.FieldSiteProfileID)
}

// SetDomain sets the "domain" field.
func (m *ClientArticleMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *ClientArticleMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *ClientArticleMutation) ResetDomain() {
	m.domain = nil
}

// SetURL sets the "url" field.
func (m *ClientArticleMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *ClientArticleMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *ClientArticleMutation) ResetURL() {
	m.url = nil
}

// SetURLHash sets the "url_hash" field.
func (m *ClientArticleMutation) SetURLHash(s string) {
	m.url_hash = &s
}

// URLHash returns the value of the "url_hash" field in the mutation.
func (m *ClientArticleMutation) URLHash() (r string, exists bool) {
	v := m.url_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldURLHash returns the old "url_hash" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldURLHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURLHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURLHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURLHash: %w", err)
	}
	return oldValue.URLHash, nil
}

// ResetURLHash resets all changes to the "url_hash" field.
func (m *ClientArticleMutation) ResetURLHash() {
	m.url_hash = nil
}

// SetTitle sets the "title" field.
func (m *ClientArticleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *ClientArticleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *ClientArticleMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[clientarticle.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *ClientArticleMutation) TitleCleared() bool {
	_, ok := m.clearedFields[clientarticle.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *ClientArticleMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, clientarticle.FieldTitle)
}

// SetContentText sets the "content_text" field.
func (m *ClientArticleMutation) SetContentText(s string) {
	m.content_text = &s
}

// ContentText returns the value of the "content_text" field in the mutation.
func (m *ClientArticleMutation) ContentText() (r string, exists bool) {
	v := m.content_text
	if v == nil {
		return
	}
	return *v, true
}

// OldContentText returns the old "content_text" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldContentText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentText: %w", err)
	}
	return oldValue.ContentText, nil
}

// ClearContentText clears the value of the "content_text" field.
func (m *ClientArticleMutation) ClearContentText() {
	m.content_text = nil
	m.clearedFields[clientarticle.FieldContentText] = struct{}{}
}

// ContentTextCleared returns if the "content_text" field was cleared in this mutation.
func (m *ClientArticleMutation) ContentTextCleared() bool {
	_, ok := m.clearedFields[clientarticle.FieldContentText]
	return ok
}

// ResetContentText resets all changes to the "content_text" field.
func (m *ClientArticleMutation) ResetContentText() {
	m.content_text = nil
	delete(m.clearedFields, clientarticle.FieldContentText)
}

// SetAuthor sets the "author" field.
func (m *ClientArticleMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *ClientArticleMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *ClientArticleMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[clientarticle.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *ClientArticleMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[clientarticle.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *ClientArticleMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, clientarticle.FieldAuthor)
}

// SetPublishedDate sets the "published_date" field.
func (m *ClientArticleMutation) SetPublishedDate(t time.Time) {
	m.published_date = &t
}

// PublishedDate returns the value of the "published_date" field in the mutation.
func (m *ClientArticleMutation) PublishedDate() (r time.Time, exists bool) {
	v := m.published_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedDate returns the old "published_date" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldPublishedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedDate: %w", err)
	}
	return oldValue.PublishedDate, nil
}

// ClearPublishedDate clears the value of the "published_date" field.
func (m *ClientArticleMutation) ClearPublishedDate() {
	m.published_date = nil
	m.clearedFields[clientarticle.FieldPublishedDate] = struct{}{}
}

// PublishedDateCleared returns if the "published_date" field was cleared in this mutation.
func (m *ClientArticleMutation) PublishedDateCleared() bool {
	_, ok := m.clearedFields[clientarticle.FieldPublishedDate]
	return ok
}

// ResetPublishedDate resets all changes to the "published_date" field.
func (m *ClientArticleMutation) ResetPublishedDate() {
	m.published_date = nil
	delete(m.clearedFields, clientarticle.FieldPublishedDate)
}

// SetKeywords sets the "keywords" field.
func (m *ClientArticleMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *ClientArticleMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *ClientArticleMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *ClientArticleMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ClearKeywords clears the value of the "keywords" field.
func (m *ClientArticleMutation) ClearKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	m.clearedFields[clientarticle.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *ClientArticleMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[clientarticle.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *ClientArticleMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	delete(m.clearedFields, clientarticle.FieldKeywords)
}

// SetTopicID sets the "topic_id" field.
func (m *ClientArticleMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *ClientArticleMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldTopicID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *ClientArticleMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *ClientArticleMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *ClientArticleMutation) ClearTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
	m.clearedFields[clientarticle.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *ClientArticleMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[clientarticle.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *ClientArticleMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
	delete(m.clearedFields, clientarticle.FieldTopicID)
}

// SetQdrantPointID sets the "qdrant_point_id" field.
func (m *ClientArticleMutation) SetQdrantPointID(s string) {
	m.qdrant_point_id = &s
}

// QdrantPointID returns the value of the "qdrant_point_id" field in the mutation.
func (m *ClientArticleMutation) QdrantPointID() (r string, exists bool) {
	v := m.qdrant_point_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQdrantPointID returns the old "qdrant_point_id" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldQdrantPointID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQdrantPointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQdrantPointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQdrantPointID: %w", err)
	}
	return oldValue.QdrantPointID, nil
}

// ClearQdrantPointID clears the value of the "qdrant_point_id" field.
func (m *ClientArticleMutation) ClearQdrantPointID() {
	m.qdrant_point_id = nil
	m.clearedFields[clientarticle.FieldQdrantPointID] = struct{}{}
}

// QdrantPointIDCleared returns if the "qdrant_point_id" field was cleared in this mutation.
func (m *ClientArticleMutation) QdrantPointIDCleared() bool {
	_, ok := m.clearedFields[clientarticle.FieldQdrantPointID]
	return ok
}

// ResetQdrantPointID resets all changes to the "qdrant_point_id" field.
func (m *ClientArticleMutation) ResetQdrantPointID() {
	m.qdrant_point_id = nil
	delete(m.clearedFields, clientarticle.FieldQdrantPointID)
}

// SetIsValid sets the "is_valid" field.
func (m *ClientArticleMutation) SetIsValid(b bool) {
	m.is_valid = &b
}

// IsValid returns the value of the "is_valid" field in the mutation.
func (m *ClientArticleMutation) IsValid() (r bool, exists bool) {
	v := m.is_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValid returns the old "is_valid" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldIsValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValid: %w", err)
	}
	return oldValue.IsValid, nil
}

// ResetIsValid resets all changes to the "is_valid" field.
func (m *ClientArticleMutation) ResetIsValid() {
	m.is_valid = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClientArticleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClientArticleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClientArticle entity.
// If the ClientArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientArticleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClientArticleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearSiteProfile clears the "site_profile" edge to the SiteProfile entity.
func (m *ClientArticleMutation) ClearSiteProfile() {
	m.clearedsite_profile = true
	m.clearedFields[clientarticle.FieldSiteProfileID] = struct{}{}
}

// SiteProfileCleared reports if the "site_profile" edge to the SiteProfile entity was cleared.
func (m *ClientArticleMutation) SiteProfileCleared() bool {
	return m.SiteProfileIDCleared() || m.clearedsite_profile
}

// SiteProfileIDs returns the "site_profile" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// SiteProfileID instead. It exists only for internal usage by the builders.
func (m *ClientArticleMutation) SiteProfileIDs() (ids []int) {
	if id := m.site_profile; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetSiteProfile resets all changes to the "site_profile" edge.
func (m *ClientArticleMutation) ResetSiteProfile() {
	m.site_profile = nil
	m.clearedsite_profile = false
}

// Where appends a list predicates to the ClientArticleMutation builder.
func (m *ClientArticleMutation) Where(ps ...predicate.ClientArticle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientArticleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientArticleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientArticle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientArticleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientArticleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientArticle).
func (m *ClientArticleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientArticleMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.site_profile != nil {
		fields = append(fields, clientarticle.FieldSiteProfileID)
	}
	if m.domain != nil {
		fields = append(fields, clientarticle.FieldDomain)
	}
	if m.url != nil {
		fields = append(fields, clientarticle.FieldURL)
	}
	if m.url_hash != nil {
		fields = append(fields, clientarticle.FieldURLHash)
	}
	if m.title != nil {
		fields = append(fields, clientarticle.FieldTitle)
	}
	if m.content_text != nil {
		fields = append(fields, clientarticle.FieldContentText)
	}
	if m.author != nil {
		fields = append(fields, clientarticle.FieldAuthor)
	}
	if m.published_date != nil {
		fields = append(fields, clientarticle.FieldPublishedDate)
	}
	if m.keywords != nil {
		fields = append(fields, clientarticle.FieldKeywords)
	}
	if m.topic_id != nil {
		fields = append(fields, clientarticle.FieldTopicID)
	}
	if m.qdrant_point_id != nil {
		fields = append(fields, clientarticle.FieldQdrantPointID)
	}
	if m.is_valid != nil {
		fields = append(fields, clientarticle.FieldIsValid)
	}
	if m.created_at != nil {
		fields = append(fields, clientarticle.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientArticleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clientarticle.FieldSiteProfileID:
		return m.SiteProfileID()
	case clientarticle.FieldDomain:
		return m.Domain()
	case clientarticle.FieldURL:
		return m.URL()
	case clientarticle.FieldURLHash:
		return m.URLHash()
	case clientarticle.FieldTitle:
		return m.Title()
	case clientarticle.FieldContentText:
		return m.ContentText()
	case clientarticle.FieldAuthor:
		return m.Author()
	case clientarticle.FieldPublishedDate:
		return m.PublishedDate()
	case clientarticle.FieldKeywords:
		return m.Keywords()
	case clientarticle.FieldTopicID:
		return m.TopicID()
	case clientarticle.FieldQdrantPointID:
		return m.QdrantPointID()
	case clientarticle.FieldIsValid:
		return m.IsValid()
	case clientarticle.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientArticleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clientarticle.FieldSiteProfileID:
		return m.OldSiteProfileID(ctx)
	case clientarticle.FieldDomain:
		return m.OldDomain(ctx)
	case clientarticle.FieldURL:
		return m.OldURL(ctx)
	case clientarticle.FieldURLHash:
		return m.OldURLHash(ctx)
	case clientarticle.FieldTitle:
		return m.OldTitle(ctx)
	case clientarticle.FieldContentText:
		return m.OldContentText(ctx)
	case clientarticle.FieldAuthor:
		return m.OldAuthor(ctx)
	case clientarticle.FieldPublishedDate:
		return m.OldPublishedDate(ctx)
	case clientarticle.FieldKeywords:
		return m.OldKeywords(ctx)
	case clientarticle.FieldTopicID:
		return m.OldTopicID(ctx)
	case clientarticle.FieldQdrantPointID:
		return m.OldQdrantPointID(ctx)
	case clientarticle.FieldIsValid:
		return m.OldIsValid(ctx)
	case clientarticle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClientArticle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientArticleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clientarticle.FieldSiteProfileID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSiteProfileID(v)
		return nil
	case clientarticle.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case clientarticle.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case clientarticle.FieldURLHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURLHash(v)
		return nil
	case clientarticle.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case clientarticle.FieldContentText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentText(v)
		return nil
	case clientarticle.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case clientarticle.FieldPublishedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedDate(v)
		return nil
	case clientarticle.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case clientarticle.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case clientarticle.FieldQdrantPointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQdrantPointID(v)
		return nil
	case clientarticle.FieldIsValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValid(v)
		return nil
	case clientarticle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClientArticle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientArticleMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_id != nil {
		fields = append(fields, clientarticle.FieldTopicID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientArticleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clientarticle.FieldTopicID:
		return m.AddedTopicID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientArticleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clientarticle.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	}
	return fmt.Errorf("unknown ClientArticle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientArticleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clientarticle.FieldSiteProfileID) {
		fields = append(fields, clientarticle.FieldSiteProfileID)
	}
	if m.FieldCleared(clientarticle.FieldTitle) {
		fields = append(fields, clientarticle.FieldTitle)
	}
	if m.FieldCleared(clientarticle.FieldContentText) {
		fields = append(fields, clientarticle.FieldContentText)
	}
	if m.FieldCleared(clientarticle.FieldAuthor) {
		fields = append(fields, clientarticle.FieldAuthor)
	}
	if m.FieldCleared(clientarticle.FieldPublishedDate) {
		fields = append(fields, clientarticle.FieldPublishedDate)
	}
	if m.FieldCleared(clientarticle.FieldKeywords) {
		fields = append(fields, clientarticle.FieldKeywords)
	}
	if m.FieldCleared(clientarticle.FieldTopicID) {
		fields = append(fields, clientarticle.FieldTopicID)
	}
	if m.FieldCleared(clientarticle.FieldQdrantPointID) {
		fields = append(fields, clientarticle.FieldQdrantPointID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientArticleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientArticleMutation) ClearField(name string) error {
	switch name {
	case clientarticle.FieldSiteProfileID:
		m.ClearSiteProfileID()
		return nil
	case clientarticle.FieldTitle:
		m.ClearTitle()
		return nil
	case clientarticle.FieldContentText:
		m.ClearContentText()
		return nil
	case clientarticle.FieldAuthor:
		m.ClearAuthor()
		return nil
	case clientarticle.FieldPublishedDate:
		m.ClearPublishedDate()
		return nil
	case clientarticle.FieldKeywords:
		m.ClearKeywords()
		return nil
	case clientarticle.FieldTopicID:
		m.ClearTopicID()
		return nil
	case clientarticle.FieldQdrantPointID:
		m.ClearQdrantPointID()
		return nil
	}
	return fmt.Errorf("unknown ClientArticle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientArticleMutation) ResetField(name string) error {
	switch name {
	case clientarticle.FieldSiteProfileID:
		m.ResetSiteProfileID()
		return nil
	case clientarticle.FieldDomain:
		m.ResetDomain()
		return nil
	case clientarticle.FieldURL:
		m.ResetURL()
		return nil
	case clientarticle.FieldURLHash:
		m.ResetURLHash()
		return nil
	case clientarticle.FieldTitle:
		m.ResetTitle()
		return nil
	case clientarticle.FieldContentText:
		m.ResetContentText()
		return nil
	case clientarticle.FieldAuthor:
		m.ResetAuthor()
		return nil
	case clientarticle.FieldPublishedDate:
		m.ResetPublishedDate()
		return nil
	case clientarticle.FieldKeywords:
		m.ResetKeywords()
		return nil
	case clientarticle.FieldTopicID:
		m.ResetTopicID()
		return nil
	case clientarticle.FieldQdrantPointID:
		m.ResetQdrantPointID()
		return nil
	case clientarticle.FieldIsValid:
		m.ResetIsValid()
		return nil
	case clientarticle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClientArticle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientArticleMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.site_profile != nil {
		edges = append(edges, clientarticle.EdgeSiteProfile)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientArticleMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clientarticle.EdgeSiteProfile:
		if id := m.site_profile; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientArticleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientArticleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientArticleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedsite_profile {
		edges = append(edges, clientarticle.EdgeSiteProfile)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientArticleMutation) EdgeCleared(name string) bool {
	switch name {
	case clientarticle.EdgeSiteProfile:
		return m.clearedsite_profile
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientArticleMutation) ClearEdge(name string) error {
	switch name {
	case clientarticle.EdgeSiteProfile:
		m.ClearSiteProfile()
		return nil
	}
	return fmt.Errorf("unknown ClientArticle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientArticleMutation) ResetEdge(name string) error {
	switch name {
	case clientarticle.EdgeSiteProfile:
		m.ResetSiteProfile()
		return nil
	}
	return fmt.Errorf("unknown ClientArticle edge %s", name)
}

// ClientStrengthMutation represents an operation that mutates the ClientStrength nodes in the graph.
type ClientStrengthMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	client_domain       *string
	client_count        *int
	addclient_count     *int
	competitor_count    *int
	addcompetitor_count *int
	coverage_score      *float64
	addcoverage_score   *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	cluster             *int
	clearedcluster      bool
	done                bool
	oldValue            func(context.Context) (*ClientStrength, error)
	predicates          []predicate.ClientStrength
}

var _ ent.Mutation = (*ClientStrengthMutation)(nil)

// clientstrengthOption allows management of the mutation configuration using functional options.
type clientstrengthOption func(*ClientStrengthMutation)

// newClientStrengthMutation creates new mutation for the ClientStrength entity.
func newClientStrengthMutation(c config, op Op, opts ...clientstrengthOption) *ClientStrengthMutation {
	m := &ClientStrengthMutation{
		config:        c,
		op:            op,
		typ:           TypeClientStrength,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClientStrengthID sets the ID field of the mutation.
func withClientStrengthID(id int) clientstrengthOption {
	return func(m *ClientStrengthMutation) {
		var (
			err   error
			once  sync.Once
			value *ClientStrength
		)
		m.oldValue = func(ctx context.Context) (*ClientStrength, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClientStrength.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClientStrength sets the old ClientStrength of the mutation.
func withClientStrength(node *ClientStrength) clientstrengthOption {
	return func(m *ClientStrengthMutation) {
		m.oldValue = func(context.Context) (*ClientStrength, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClientStrengthMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClientStrengthMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClientStrengthMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClientStrengthMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClientStrength.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientDomain sets the "client_domain" field.
func (m *ClientStrengthMutation) SetClientDomain(s string) {
	m.client_domain = &s
}

// ClientDomain returns the value of the "client_domain" field in the mutation.
func (m *ClientStrengthMutation) ClientDomain() (r string, exists bool) {
	v := m.client_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldClientDomain returns the old "client_domain" field's value of the ClientStrength entity.
// If the ClientStrength object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientStrengthMutation) OldClientDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientDomain: %w", err)
	}
	return oldValue.ClientDomain, nil
}

// ResetClientDomain resets all changes to the "client_domain" field.
func (m *ClientStrengthMutation) ResetClientDomain() {
	m.client_domain = nil
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (m *ClientStrengthMutation) SetTopicClusterID(i int) {
	m.cluster = &i
}

// TopicClusterID returns the value of the "topic_cluster_id" field in the mutation.
func (m *ClientStrengthMutation) TopicClusterID() (r int, exists bool) {
	v := m.cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicClusterID returns the old "topic_cluster_id" field's value of the ClientStrength entity.
// If the ClientStrength object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientStrengthMutation) OldTopicClusterID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicClusterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicClusterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicClusterID: %w", err)
	}
	return oldValue.TopicClusterID, nil
}

// ResetTopicClusterID resets all changes to the "topic_cluster_id" field.
func (m *ClientStrengthMutation) ResetTopicClusterID() {
	m.cluster = nil
}

// SetClientCount sets the "client_count" field.
func (m *ClientStrengthMutation) SetClientCount(i int) {
	m.client_count = &i
	m.addclient_count = nil
}

// ClientCount returns the value of the "client_count" field in the mutation.
func (m *ClientStrengthMutation) ClientCount() (r int, exists bool) {
	v := m.client_count
	if v == nil {
		return
	}
	return *v, true
}

// OldClientCount returns the old "client_count" field's value of the ClientStrength entity.
// If the ClientStrength object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientStrengthMutation) OldClientCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientCount: %w", err)
	}
	return oldValue.ClientCount, nil
}

// AddClientCount adds i to the "client_count" field.
func (m *ClientStrengthMutation) AddClientCount(i int) {
	if m.addclient_count != nil {
		*m.addclient_count += i
	} else {
		m.addclient_count = &i
	}
}

// AddedClientCount returns the value that was added to the "client_count" field in this mutation.
func (m *ClientStrengthMutation) AddedClientCount() (r int, exists bool) {
	v := m.addclient_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetClientCount resets all changes to the "client_count" field.
func (m *ClientStrengthMutation) ResetClientCount() {
	m.client_count = nil
	m.addclient_count = nil
}

// SetCompetitorCount sets the "competitor_count" field.
func (m *ClientStrengthMutation) SetCompetitorCount(i int) {
	m.competitor_count = &i
	m.addcompetitor_count = nil
}

// CompetitorCount returns the value of the "competitor_count" field in the mutation.
func (m *ClientStrengthMutation) CompetitorCount() (r int, exists bool) {
	v := m.competitor_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorCount returns the old "competitor_count" field's value of the ClientStrength entity.
// If the ClientStrength object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientStrengthMutation) OldCompetitorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorCount: %w", err)
	}
	return oldValue.CompetitorCount, nil
}

// AddCompetitorCount adds i to the "competitor_count" field.
func (m *ClientStrengthMutation) AddCompetitorCount(i int) {
	if m.addcompetitor_count != nil {
		*m.addcompetitor_count += i
	} else {
		m.addcompetitor_count = &i
	}
}

// AddedCompetitorCount returns the value that was added to the "competitor_count" field in this mutation.
func (m *ClientStrengthMutation) AddedCompetitorCount() (r int, exists bool) {
	v := m.addcompetitor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompetitorCount resets all changes to the "competitor_count" field.
func (m *ClientStrengthMutation) ResetCompetitorCount() {
	m.competitor_count = nil
	m.addcompetitor_count = nil
}

// SetCoverageScore sets the "coverage_score" field.
func (m *ClientStrengthMutation) SetCoverageScore(f float64) {
	m.coverage_score = &f
	m.addcoverage_score = nil
}

// CoverageScore returns the value of the "coverage_score" field in the mutation.
func (m *ClientStrengthMutation) CoverageScore() (r float64, exists bool) {
	v := m.coverage_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverageScore returns the old "coverage_score" field's value of the ClientStrength entity.
// If the ClientStrength object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientStrengthMutation) OldCoverageScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverageScore: %w", err)
	}
	return oldValue.CoverageScore, nil
}

// AddCoverageScore adds f to the "coverage_score" field.
func (m *ClientStrengthMutation) AddCoverageScore(f float64) {
	if m.addcoverage_score != nil {
		*m.addcoverage_score += f
	} else {
		m.addcoverage_score = &f
	}
}

// AddedCoverageScore returns the value that was added to the "coverage_score" field in this mutation.
func (m *ClientStrengthMutation) AddedCoverageScore() (r float64, exists bool) {
	v := m.addcoverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoverageScore resets all changes to the "coverage_score" field.
func (m *ClientStrengthMutation) ResetCoverageScore() {
	m.coverage_score = nil
	m.addcoverage_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ClientStrengthMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClientStrengthMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClientStrength entity.
// If the ClientStrength object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClientStrengthMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClientStrengthMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by id.
func (m *ClientStrengthMutation) SetClusterID(id int) {
	m.cluster = &id
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (m *ClientStrengthMutation) ClearCluster() {
	m.clearedcluster = true
	m.clearedFields[clientstrength.FieldTopicClusterID] = struct{}{}
}

// ClusterCleared reports if the "cluster" edge to the TopicCluster entity was cleared.
func (m *ClientStrengthMutation) ClusterCleared() bool {
	return m.clearedcluster
}

// ClusterID returns the "cluster" edge ID in the mutation.
func (m *ClientStrengthMutation) ClusterID() (id int, exists bool) {
	if m.cluster != nil {
		return *m.cluster, true
	}
	return
}

// ClusterIDs returns the "cluster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClusterID instead. It exists only for internal usage by the builders.
func (m *ClientStrengthMutation) ClusterIDs() (ids []int) {
	if id := m.cluster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCluster resets all changes to the "cluster" edge.
func (m *ClientStrengthMutation) ResetCluster() {
	m.cluster = nil
	m.clearedcluster = false
}

// Where appends a list predicates to the ClientStrengthMutation builder.
func (m *ClientStrengthMutation) Where(ps ...predicate.ClientStrength) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClientStrengthMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClientStrengthMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClientStrength, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClientStrengthMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClientStrengthMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClientStrength).
func (m *ClientStrengthMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClientStrengthMutation) Fields() []string {
	fields := make([]string, 0, 6)
	if m.client_domain != nil {
		fields = append(fields, clientstrength.FieldClientDomain)
	}
	if m.cluster != nil {
		fields = append(fields, clientstrength.FieldTopicClusterID)
	}
	if m.client_count != nil {
		fields = append(fields, clientstrength.FieldClientCount)
	}
	if m.competitor_count != nil {
		fields = append(fields, clientstrength.FieldCompetitorCount)
	}
	if m.coverage_score != nil {
		fields = append(fields, clientstrength.FieldCoverageScore)
	}
	if m.created_at != nil {
		fields = append(fields, clientstrength.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClientStrengthMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clientstrength.FieldClientDomain:
		return m.ClientDomain()
	case clientstrength.FieldTopicClusterID:
		return m.TopicClusterID()
	case clientstrength.FieldClientCount:
		return m.ClientCount()
	case clientstrength.FieldCompetitorCount:
		return m.CompetitorCount()
	case clientstrength.FieldCoverageScore:
		return m.CoverageScore()
	case clientstrength.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClientStrengthMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clientstrength.FieldClientDomain:
		return m.OldClientDomain(ctx)
	case clientstrength.FieldTopicClusterID:
		return m.OldTopicClusterID(ctx)
	case clientstrength.FieldClientCount:
		return m.OldClientCount(ctx)
	case clientstrength.FieldCompetitorCount:
		return m.OldCompetitorCount(ctx)
	case clientstrength.FieldCoverageScore:
		return m.OldCoverageScore(ctx)
	case clientstrength.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClientStrength field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientStrengthMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clientstrength.FieldClientDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientDomain(v)
		return nil
	case clientstrength.FieldTopicClusterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicClusterID(v)
		return nil
	case clientstrength.FieldClientCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientCount(v)
		return nil
	case clientstrength.FieldCompetitorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorCount(v)
		return nil
	case clientstrength.FieldCoverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverageScore(v)
		return nil
	case clientstrength.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClientStrength field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClientStrengthMutation) AddedFields() []string {
	var fields []string
	if m.addclient_count != nil {
		fields = append(fields, clientstrength.FieldClientCount)
	}
	if m.addcompetitor_count != nil {
		fields = append(fields, clientstrength.FieldCompetitorCount)
	}
	if m.addcoverage_score != nil {
		fields = append(fields, clientstrength.FieldCoverageScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClientStrengthMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clientstrength.FieldClientCount:
		return m.AddedClientCount()
	case clientstrength.FieldCompetitorCount:
		return m.AddedCompetitorCount()
	case clientstrength.FieldCoverageScore:
		return m.AddedCoverageScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClientStrengthMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clientstrength.FieldClientCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClientCount(v)
		return nil
	case clientstrength.FieldCompetitorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompetitorCount(v)
		return nil
	case clientstrength.FieldCoverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoverageScore(v)
		return nil
	}
	return fmt.Errorf("unknown ClientStrength numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClientStrengthMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClientStrengthMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClientStrengthMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ClientStrength nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClientStrengthMutation) ResetField(name string) error {
	switch name {
	case clientstrength.FieldClientDomain:
		m.ResetClientDomain()
		return nil
	case clientstrength.FieldTopicClusterID:
		m.ResetTopicClusterID()
		return nil
	case clientstrength.FieldClientCount:
		m.ResetClientCount()
		return nil
	case clientstrength.FieldCompetitorCount:
		m.ResetCompetitorCount()
		return nil
	case clientstrength.FieldCoverageScore:
		m.ResetCoverageScore()
		return nil
	case clientstrength.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClientStrength field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClientStrengthMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cluster != nil {
		edges = append(edges, clientstrength.EdgeCluster)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClientStrengthMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case clientstrength.EdgeCluster:
		if id := m.cluster; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClientStrengthMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClientStrengthMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClientStrengthMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcluster {
		edges = append(edges, clientstrength.EdgeCluster)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClientStrengthMutation) EdgeCleared(name string) bool {
	switch name {
	case clientstrength.EdgeCluster:
		return m.clearedcluster
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClientStrengthMutation) ClearEdge(name string) error {
	switch name {
	case clientstrength.EdgeCluster:
		m.ClearCluster()
		return nil
	}
	return fmt.Errorf("unknown ClientStrength unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClientStrengthMutation) ResetEdge(name string) error {
	switch name {
	case clientstrength.EdgeCluster:
		m.ResetCluster()
		return nil
	}
	return fmt.Errorf("unknown ClientStrength edge %s", name)
}

// CompetitorMutation represents an operation that mutates the Competitor nodes in the graph.
type CompetitorMutation struct {
	config
	op                 Op
	typ                string
	id                 *int
	client_domain      *string
	domain             *string
	source             *string
	relevance_score    *float64
	addrelevance_score *float64
	validated          *bool
	excluded           *bool
	validation_date    *time.Time
	is_valid           *bool
	created_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*Competitor, error)
	predicates         []predicate.Competitor
}

var _ ent.Mutation = (*CompetitorMutation)(nil)

// competitorOption allows management of the mutation configuration using functional options.
type competitorOption func(*CompetitorMutation)

// newCompetitorMutation creates new mutation for the Competitor entity.
func newCompetitorMutation(c config, op Op, opts ...competitorOption) *CompetitorMutation {
	m := &CompetitorMutation{
		config:        c,
		op:            op,
		typ:           TypeCompetitor,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompetitorID sets the ID field of the mutation.
func withCompetitorID(id int) competitorOption {
	return func(m *CompetitorMutation) {
		var (
			err   error
			once  sync.Once
			value *Competitor
		)
		m.oldValue = func(ctx context.Context) (*Competitor, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Competitor.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompetitor sets the old Competitor of the mutation.
func withCompetitor(node *Competitor) competitorOption {
	return func(m *CompetitorMutation) {
		m.oldValue = func(context.Context) (*Competitor, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompetitorMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompetitorMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompetitorMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompetitorMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Competitor.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientDomain sets the "client_domain" field.
func (m *CompetitorMutation) SetClientDomain(s string) {
	m.client_domain = &s
}

// ClientDomain returns the value of the "client_domain" field in the mutation.
func (m *CompetitorMutation) ClientDomain() (r string, exists bool) {
	v := m.client_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldClientDomain returns the old "client_domain" field's value of the Competitor entity.
// If the Competitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorMutation) OldClientDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientDomain: %w", err)
	}
	return oldValue.ClientDomain, nil
}

// ResetClientDomain resets all changes to the "client_domain" field.
func (m *CompetitorMutation) ResetClientDomain() {
	m.client_domain = nil
}

// SetDomain sets the "domain" field.
func (m *CompetitorMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *CompetitorMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the Competitor entity.
// If the Competitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *CompetitorMutation) ResetDomain() {
	m.domain = nil
}

// SetSource sets the "source" field.
func (m *CompetitorMutation) SetSource(s string) {
	m.source = &s
}

// Source returns the value of the "source" field in the mutation.
func (m *CompetitorMutation) Source() (r string, exists bool) {
	v := m.source
	if v == nil {
		return
	}
	return *v, true
}

// OldSource returns the old "source" field's value of the Competitor entity.
// If the Competitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorMutation) OldSource(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSource is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSource requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSource: %w", err)
	}
	return oldValue.Source, nil
}

// ClearSource clears the value of the "source" field.
func (m *CompetitorMutation) ClearSource() {
	m.source = nil
	m.clearedFields[competitor.FieldSource] = struct{}{}
}

// SourceCleared returns if the "source" field was cleared in this mutation.
func (m *CompetitorMutation) SourceCleared() bool {
	_, ok := m.clearedFields[competitor.FieldSource]
	return ok
}

// ResetSource resets all changes to the "source" field.
func (m *CompetitorMutation) ResetSource() {
	m.source = nil
	delete(m.clearedFields, competitor.FieldSource)
}

// SetRelevanceScore sets the "relevance_score" field.
func (m *CompetitorMutation) SetRelevanceScore(f float64) {
	m.relevance_score = &f
	m.addrelevance_score = nil
}

// RelevanceScore returns the value of the "relevance_score" field in the mutation.
func (m *CompetitorMutation) RelevanceScore() (r float64, exists bool) {
	v := m.relevance_score
	if v == nil {
		return
	}
	return *v, true
}

// OldRelevanceScore returns the old "relevance_score" field's value of the Competitor entity.
// If the Competitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorMutation) OldRelevanceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRelevanceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRelevanceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRelevanceScore: %w", err)
	}
	return oldValue.RelevanceScore, nil
}

// AddRelevanceScore adds f to the "relevance_score" field.
func (m *CompetitorMutation) AddRelevanceScore(f float64) {
	if m.addrelevance_score != nil {
		*m.addrelevance_score += f
	} else {
		m.addrelevance_score = &f
	}
}

// AddedRelevanceScore returns the value that was added to the "relevance_score" field in this mutation.
func (m *CompetitorMutation) AddedRelevanceScore() (r float64, exists bool) {
	v := m.addrelevance_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetRelevanceScore resets all changes to the "relevance_score" field.
func (m *CompetitorMutation) ResetRelevanceScore() {
	m.relevance_score = nil
	m.addrelevance_score = nil
}

// SetValidated sets the "validated" field.
func (m *CompetitorMutation) SetValidated(b bool) {
	m.validated = &b
}

// Validated returns the value of the "validated" field in the mutation.
func (m *CompetitorMutation) Validated() (r bool, exists bool) {
	v := m.validated
	if v == nil {
		return
	}
	return *v, true
}

// OldValidated returns the old "validated" field's value of the Competitor entity.
// If the Competitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorMutation) OldValidated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidated: %w", err)
	}
	return oldValue.Validated, nil
}

// ResetValidated resets all changes to the "validated" field.
func (m *CompetitorMutation) ResetValidated() {
	m.validated = nil
}

// SetExcluded sets the "excluded" field.
func (m *CompetitorMutation) SetExcluded(b bool) {
	m.excluded = &b
}

// Excluded returns the value of the "excluded" field in the mutation.
func (m *CompetitorMutation) Excluded() (r bool, exists bool) {
	v := m.excluded
	if v == nil {
		return
	}
	return *v, true
}

// OldExcluded returns the old "excluded" field's value of the Competitor entity.
// If the Competitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorMutation) OldExcluded(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExcluded is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExcluded requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExcluded: %w", err)
	}
	return oldValue.Excluded, nil
}

// ResetExcluded resets all changes to the "excluded" field.
func (m *CompetitorMutation) ResetExcluded() {
	m.excluded = nil
}

// SetValidationDate sets the "validation_date" field.
func (m *CompetitorMutation) SetValidationDate(t time.Time) {
	m.validation_date = &t
}

// ValidationDate returns the value of the "validation_date" field in the mutation.
func (m *CompetitorMutation) ValidationDate() (r time.Time, exists bool) {
	v := m.validation_date
	if v == nil {
		return
	}
	return *v, true
}

// OldValidationDate returns the old "validation_date" field's value of the Competitor entity.
// If the Competitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorMutation) OldValidationDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldValidationDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldValidationDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldValidationDate: %w", err)
	}
	return oldValue.ValidationDate, nil
}

// ClearValidationDate clears the value of the "validation_date" field.
func (m *CompetitorMutation) ClearValidationDate() {
	m.validation_date = nil
	m.clearedFields[competitor.FieldValidationDate] = struct{}{}
}

// ValidationDateCleared returns if the "validation_date" field was cleared in this mutation.
func (m *CompetitorMutation) ValidationDateCleared() bool {
	_, ok := m.clearedFields[competitor.FieldValidationDate]
	return ok
}

// ResetValidationDate resets all changes to the "validation_date" field.
func (m *CompetitorMutation) ResetValidationDate() {
	m.validation_date = nil
	delete(m.clearedFields, competitor.FieldValidationDate)
}

// SetIsValid sets the "is_valid" field.
func (m *CompetitorMutation) SetIsValid(b bool) {
	m.is_valid = &b
}

// IsValid returns the value of the "is_valid" field in the mutation.
func (m *CompetitorMutation) IsValid() (r bool, exists bool) {
	v := m.is_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValid returns the old "is_valid" field's value of the Competitor entity.
// If the Competitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorMutation) OldIsValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValid: %w", err)
	}
	return oldValue.IsValid, nil
}

// ResetIsValid resets all changes to the "is_valid" field.
func (m *CompetitorMutation) ResetIsValid() {
	m.is_valid = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompetitorMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompetitorMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Competitor entity.
// If the Competitor object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompetitorMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CompetitorMutation builder.
func (m *CompetitorMutation) Where(ps ...predicate.Competitor) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompetitorMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompetitorMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Competitor, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompetitorMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompetitorMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Competitor).
func (m *CompetitorMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompetitorMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.client_domain != nil {
		fields = append(fields, competitor.FieldClientDomain)
	}
	if m.domain != nil {
		fields = append(fields, competitor.FieldDomain)
	}
	if m.source != nil {
		fields = append(fields, competitor.FieldSource)
	}
	if m.relevance_score != nil {
		fields = append(fields, competitor.FieldRelevanceScore)
	}
	if m.validated != nil {
		fields = append(fields, competitor.FieldValidated)
	}
	if m.excluded != nil {
		fields = append(fields, competitor.FieldExcluded)
	}
	if m.validation_date != nil {
		fields = append(fields, competitor.FieldValidationDate)
	}
	if m.is_valid != nil {
		fields = append(fields, competitor.FieldIsValid)
	}
	if m.created_at != nil {
		fields = append(fields, competitor.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompetitorMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case competitor.FieldClientDomain:
		return m.ClientDomain()
	case competitor.FieldDomain:
		return m.Domain()
	case competitor.FieldSource:
		return m.Source()
	case competitor.FieldRelevanceScore:
		return m.RelevanceScore()
	case competitor.FieldValidated:
		return m.Validated()
	case competitor.FieldExcluded:
		return m.Excluded()
	case competitor.FieldValidationDate:
		return m.ValidationDate()
	case competitor.FieldIsValid:
		return m.IsValid()
	case competitor.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompetitorMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case competitor.FieldClientDomain:
		return m.OldClientDomain(ctx)
	case competitor.FieldDomain:
		return m.OldDomain(ctx)
	case competitor.FieldSource:
		return m.OldSource(ctx)
	case competitor.FieldRelevanceScore:
		return m.OldRelevanceScore(ctx)
	case competitor.FieldValidated:
		return m.OldValidated(ctx)
	case competitor.FieldExcluded:
		return m.OldExcluded(ctx)
	case competitor.FieldValidationDate:
		return m.OldValidationDate(ctx)
	case competitor.FieldIsValid:
		return m.OldIsValid(ctx)
	case competitor.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Competitor field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompetitorMutation) SetField(name string, value ent.Value) error {
	switch name {
	case competitor.FieldClientDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientDomain(v)
		return nil
	case competitor.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case competitor.FieldSource:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSource(v)
		return nil
	case competitor.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRelevanceScore(v)
		return nil
	case competitor.FieldValidated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidated(v)
		return nil
	case competitor.FieldExcluded:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExcluded(v)
		return nil
	case competitor.FieldValidationDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetValidationDate(v)
		return nil
	case competitor.FieldIsValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValid(v)
		return nil
	case competitor.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Competitor field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompetitorMutation) AddedFields() []string {
	var fields []string
	if m.addrelevance_score != nil {
		fields = append(fields, competitor.FieldRelevanceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompetitorMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case competitor.FieldRelevanceScore:
		return m.AddedRelevanceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompetitorMutation) AddField(name string, value ent.Value) error {
	switch name {
	case competitor.FieldRelevanceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRelevanceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Competitor numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompetitorMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(competitor.FieldSource) {
		fields = append(fields, competitor.FieldSource)
	}
	if m.FieldCleared(competitor.FieldValidationDate) {
		fields = append(fields, competitor.FieldValidationDate)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompetitorMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompetitorMutation) ClearField(name string) error {
	switch name {
	case competitor.FieldSource:
		m.ClearSource()
		return nil
	case competitor.FieldValidationDate:
		m.ClearValidationDate()
		return nil
	}
	return fmt.Errorf("unknown Competitor nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompetitorMutation) ResetField(name string) error {
	switch name {
	case competitor.FieldClientDomain:
		m.ResetClientDomain()
		return nil
	case competitor.FieldDomain:
		m.ResetDomain()
		return nil
	case competitor.FieldSource:
		m.ResetSource()
		return nil
	case competitor.FieldRelevanceScore:
		m.ResetRelevanceScore()
		return nil
	case competitor.FieldValidated:
		m.ResetValidated()
		return nil
	case competitor.FieldExcluded:
		m.ResetExcluded()
		return nil
	case competitor.FieldValidationDate:
		m.ResetValidationDate()
		return nil
	case competitor.FieldIsValid:
		m.ResetIsValid()
		return nil
	case competitor.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Competitor field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompetitorMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompetitorMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompetitorMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompetitorMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompetitorMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompetitorMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompetitorMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Competitor unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompetitorMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Competitor edge %s", name)
}

// CompetitorArticleMutation represents an operation that mutates the CompetitorArticle nodes in the graph.
type CompetitorArticleMutation struct {
	config
	op              Op
	typ             string
	id              *int
	domain          *string
	url             *string
	url_hash        *string
	title           *string
	content_text    *string
	author          *string
	published_date  *time.Time
	keywords        *[]string
	appendkeywords  []string
	topic_id        *int
	addtopic_id     *int
	qdrant_point_id *string
	is_valid        *bool
	created_at      *time.Time
	clearedFields   map[string]struct{}
	done            bool
	oldValue        func(context.Context) (*CompetitorArticle, error)
	predicates      []predicate.CompetitorArticle
}

var _ ent.Mutation = (*CompetitorArticleMutation)(nil)

// competitorarticleOption allows management of the mutation configuration using functional options.
type competitorarticleOption func(*CompetitorArticleMutation)

// newCompetitorArticleMutation creates new mutation for the CompetitorArticle entity.
func newCompetitorArticleMutation(c config, op Op, opts ...competitorarticleOption) *CompetitorArticleMutation {
	m := &CompetitorArticleMutation{
		config:        c,
		op:            op,
		typ:           TypeCompetitorArticle,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCompetitorArticleID sets the ID field of the mutation.
func withCompetitorArticleID(id int) competitorarticleOption {
	return func(m *CompetitorArticleMutation) {
		var (
			err   error
			once  sync.Once
			value *CompetitorArticle
		)
		m.oldValue = func(ctx context.Context) (*CompetitorArticle, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CompetitorArticle.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCompetitorArticle sets the old CompetitorArticle of the mutation.
func withCompetitorArticle(node *CompetitorArticle) competitorarticleOption {
	return func(m *CompetitorArticleMutation) {
		m.oldValue = func(context.Context) (*CompetitorArticle, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CompetitorArticleMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CompetitorArticleMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CompetitorArticleMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CompetitorArticleMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CompetitorArticle.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDomain sets the "domain" field.
func (m *CompetitorArticleMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *CompetitorArticleMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *CompetitorArticleMutation) ResetDomain() {
	m.domain = nil
}

// SetURL sets the "url" field.
func (m *CompetitorArticleMutation) SetURL(s string) {
	m.url = &s
}

// URL returns the value of the "url" field in the mutation.
func (m *CompetitorArticleMutation) URL() (r string, exists bool) {
	v := m.url
	if v == nil {
		return
	}
	return *v, true
}

// OldURL returns the old "url" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldURL(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURL: %w", err)
	}
	return oldValue.URL, nil
}

// ResetURL resets all changes to the "url" field.
func (m *CompetitorArticleMutation) ResetURL() {
	m.url = nil
}

// SetURLHash sets the "url_hash" field.
func (m *CompetitorArticleMutation) SetURLHash(s string) {
	m.url_hash = &s
}

// URLHash returns the value of the "url_hash" field in the mutation.
func (m *CompetitorArticleMutation) URLHash() (r string, exists bool) {
	v := m.url_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldURLHash returns the old "url_hash" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldURLHash(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldURLHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldURLHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldURLHash: %w", err)
	}
	return oldValue.URLHash, nil
}

// ResetURLHash resets all changes to the "url_hash" field.
func (m *CompetitorArticleMutation) ResetURLHash() {
	m.url_hash = nil
}

// SetTitle sets the "title" field.
func (m *CompetitorArticleMutation) SetTitle(s string) {
	m.title = &s
}

// Title returns the value of the "title" field in the mutation.
func (m *CompetitorArticleMutation) Title() (r string, exists bool) {
	v := m.title
	if v == nil {
		return
	}
	return *v, true
}

// OldTitle returns the old "title" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldTitle(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTitle is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTitle requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTitle: %w", err)
	}
	return oldValue.Title, nil
}

// ClearTitle clears the value of the "title" field.
func (m *CompetitorArticleMutation) ClearTitle() {
	m.title = nil
	m.clearedFields[competitorarticle.FieldTitle] = struct{}{}
}

// TitleCleared returns if the "title" field was cleared in this mutation.
func (m *CompetitorArticleMutation) TitleCleared() bool {
	_, ok := m.clearedFields[competitorarticle.FieldTitle]
	return ok
}

// ResetTitle resets all changes to the "title" field.
func (m *CompetitorArticleMutation) ResetTitle() {
	m.title = nil
	delete(m.clearedFields, competitorarticle.FieldTitle)
}

// SetContentText sets the "content_text" field.
func (m *CompetitorArticleMutation) SetContentText(s string) {
	m.content_text = &s
}

// ContentText returns the value of the "content_text" field in the mutation.
func (m *CompetitorArticleMutation) ContentText() (r string, exists bool) {
	v := m.content_text
	if v == nil {
		return
	}
	return *v, true
}

// OldContentText returns the old "content_text" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldContentText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentText: %w", err)
	}
	return oldValue.ContentText, nil
}

// ClearContentText clears the value of the "content_text" field.
func (m *CompetitorArticleMutation) ClearContentText() {
	m.content_text = nil
	m.clearedFields[competitorarticle.FieldContentText] = struct{}{}
}

// ContentTextCleared returns if the "content_text" field was cleared in this mutation.
func (m *CompetitorArticleMutation) ContentTextCleared() bool {
	_, ok := m.clearedFields[competitorarticle.FieldContentText]
	return ok
}

// ResetContentText resets all changes to the "content_text" field.
func (m *CompetitorArticleMutation) ResetContentText() {
	m.content_text = nil
	delete(m.clearedFields, competitorarticle.FieldContentText)
}

// SetAuthor sets the "author" field.
func (m *CompetitorArticleMutation) SetAuthor(s string) {
	m.author = &s
}

// Author returns the value of the "author" field in the mutation.
func (m *CompetitorArticleMutation) Author() (r string, exists bool) {
	v := m.author
	if v == nil {
		return
	}
	return *v, true
}

// OldAuthor returns the old "author" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldAuthor(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAuthor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAuthor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAuthor: %w", err)
	}
	return oldValue.Author, nil
}

// ClearAuthor clears the value of the "author" field.
func (m *CompetitorArticleMutation) ClearAuthor() {
	m.author = nil
	m.clearedFields[competitorarticle.FieldAuthor] = struct{}{}
}

// AuthorCleared returns if the "author" field was cleared in this mutation.
func (m *CompetitorArticleMutation) AuthorCleared() bool {
	_, ok := m.clearedFields[competitorarticle.FieldAuthor]
	return ok
}

// ResetAuthor resets all changes to the "author" field.
func (m *CompetitorArticleMutation) ResetAuthor() {
	m.author = nil
	delete(m.clearedFields, competitorarticle.FieldAuthor)
}

// SetPublishedDate sets the "published_date" field.
func (m *CompetitorArticleMutation) SetPublishedDate(t time.Time) {
	m.published_date = &t
}

// PublishedDate returns the value of the "published_date" field in the mutation.
func (m *CompetitorArticleMutation) PublishedDate() (r time.Time, exists bool) {
	v := m.published_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedDate returns the old "published_date" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldPublishedDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedDate: %w", err)
	}
	return oldValue.PublishedDate, nil
}

// ClearPublishedDate clears the value of the "published_date" field.
func (m *CompetitorArticleMutation) ClearPublishedDate() {
	m.published_date = nil
	m.clearedFields[competitorarticle.FieldPublishedDate] = struct{}{}
}

// PublishedDateCleared returns if the "published_date" field was cleared in this mutation.
func (m *CompetitorArticleMutation) PublishedDateCleared() bool {
	_, ok := m.clearedFields[competitorarticle.FieldPublishedDate]
	return ok
}

// ResetPublishedDate resets all changes to the "published_date" field.
func (m *CompetitorArticleMutation) ResetPublishedDate() {
	m.published_date = nil
	delete(m.clearedFields, competitorarticle.FieldPublishedDate)
}

// SetKeywords sets the "keywords" field.
func (m *CompetitorArticleMutation) SetKeywords(s []string) {
	m.keywords = &s
	m.appendkeywords = nil
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *CompetitorArticleMutation) Keywords() (r []string, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldKeywords(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// AppendKeywords adds s to the "keywords" field.
func (m *CompetitorArticleMutation) AppendKeywords(s []string) {
	m.appendkeywords = append(m.appendkeywords, s...)
}

// AppendedKeywords returns the list of values that were appended to the "keywords" field in this mutation.
func (m *CompetitorArticleMutation) AppendedKeywords() ([]string, bool) {
	if len(m.appendkeywords) == 0 {
		return nil, false
	}
	return m.appendkeywords, true
}

// ClearKeywords clears the value of the "keywords" field.
func (m *CompetitorArticleMutation) ClearKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	m.clearedFields[competitorarticle.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *CompetitorArticleMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[competitorarticle.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *CompetitorArticleMutation) ResetKeywords() {
	m.keywords = nil
	m.appendkeywords = nil
	delete(m.clearedFields, competitorarticle.FieldKeywords)
}

// SetTopicID sets the "topic_id" field.
func (m *CompetitorArticleMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *CompetitorArticleMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldTopicID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *CompetitorArticleMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *CompetitorArticleMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearTopicID clears the value of the "topic_id" field.
func (m *CompetitorArticleMutation) ClearTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
	m.clearedFields[competitorarticle.FieldTopicID] = struct{}{}
}

// TopicIDCleared returns if the "topic_id" field was cleared in this mutation.
func (m *CompetitorArticleMutation) TopicIDCleared() bool {
	_, ok := m.clearedFields[competitorarticle.FieldTopicID]
	return ok
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *CompetitorArticleMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
	delete(m.clearedFields, competitorarticle.FieldTopicID)
}

// SetQdrantPointID sets the "qdrant_point_id" field.
func (m *CompetitorArticleMutation) SetQdrantPointID(s string) {
	m.qdrant_point_id = &s
}

// QdrantPointID returns the value of the "qdrant_point_id" field in the mutation.
func (m *CompetitorArticleMutation) QdrantPointID() (r string, exists bool) {
	v := m.qdrant_point_id
	if v == nil {
		return
	}
	return *v, true
}

// OldQdrantPointID returns the old "qdrant_point_id" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldQdrantPointID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldQdrantPointID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldQdrantPointID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldQdrantPointID: %w", err)
	}
	return oldValue.QdrantPointID, nil
}

// ClearQdrantPointID clears the value of the "qdrant_point_id" field.
func (m *CompetitorArticleMutation) ClearQdrantPointID() {
	m.qdrant_point_id = nil
	m.clearedFields[competitorarticle.FieldQdrantPointID] = struct{}{}
}

// QdrantPointIDCleared returns if the "qdrant_point_id" field was cleared in this mutation.
func (m *CompetitorArticleMutation) QdrantPointIDCleared() bool {
	_, ok := m.clearedFields[competitorarticle.FieldQdrantPointID]
	return ok
}

// ResetQdrantPointID resets all changes to the "qdrant_point_id" field.
func (m *CompetitorArticleMutation) ResetQdrantPointID() {
	m.qdrant_point_id = nil
	delete(m.clearedFields, competitorarticle.FieldQdrantPointID)
}

// SetIsValid sets the "is_valid" field.
func (m *CompetitorArticleMutation) SetIsValid(b bool) {
	m.is_valid = &b
}

// IsValid returns the value of the "is_valid" field in the mutation.
func (m *CompetitorArticleMutation) IsValid() (r bool, exists bool) {
	v := m.is_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValid returns the old "is_valid" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldIsValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValid: %w", err)
	}
	return oldValue.IsValid, nil
}

// ResetIsValid resets all changes to the "is_valid" field.
func (m *CompetitorArticleMutation) ResetIsValid() {
	m.is_valid = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CompetitorArticleMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CompetitorArticleMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CompetitorArticle entity.
// If the CompetitorArticle object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CompetitorArticleMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CompetitorArticleMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the CompetitorArticleMutation builder.
func (m *CompetitorArticleMutation) Where(ps ...predicate.CompetitorArticle) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CompetitorArticleMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CompetitorArticleMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CompetitorArticle, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CompetitorArticleMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CompetitorArticleMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CompetitorArticle).
func (m *CompetitorArticleMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CompetitorArticleMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.domain != nil {
		fields = append(fields, competitorarticle.FieldDomain)
	}
	if m.url != nil {
		fields = append(fields, competitorarticle.FieldURL)
	}
	if m.url_hash != nil {
		fields = append(fields, competitorarticle.FieldURLHash)
	}
	if m.title != nil {
		fields = append(fields, competitorarticle.FieldTitle)
	}
	if m.content_text != nil {
		fields = append(fields, competitorarticle.FieldContentText)
	}
	if m.author != nil {
		fields = append(fields, competitorarticle.FieldAuthor)
	}
	if m.published_date != nil {
		fields = append(fields, competitorarticle.FieldPublishedDate)
	}
	if m.keywords != nil {
		fields = append(fields, competitorarticle.FieldKeywords)
	}
	if m.topic_id != nil {
		fields = append(fields, competitorarticle.FieldTopicID)
	}
	if m.qdrant_point_id != nil {
		fields = append(fields, competitorarticle.FieldQdrantPointID)
	}
	if m.is_valid != nil {
		fields = append(fields, competitorarticle.FieldIsValid)
	}
	if m.created_at != nil {
		fields = append(fields, competitorarticle.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CompetitorArticleMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case competitorarticle.FieldDomain:
		return m.Domain()
	case competitorarticle.FieldURL:
		return m.URL()
	case competitorarticle.FieldURLHash:
		return m.URLHash()
	case competitorarticle.FieldTitle:
		return m.Title()
	case competitorarticle.FieldContentText:
		return m.ContentText()
	case competitorarticle.FieldAuthor:
		return m.Author()
	case competitorarticle.FieldPublishedDate:
		return m.PublishedDate()
	case competitorarticle.FieldKeywords:
		return m.Keywords()
	case competitorarticle.FieldTopicID:
		return m.TopicID()
	case competitorarticle.FieldQdrantPointID:
		return m.QdrantPointID()
	case competitorarticle.FieldIsValid:
		return m.IsValid()
	case competitorarticle.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CompetitorArticleMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case competitorarticle.FieldDomain:
		return m.OldDomain(ctx)
	case competitorarticle.FieldURL:
		return m.OldURL(ctx)
	case competitorarticle.FieldURLHash:
		return m.OldURLHash(ctx)
	case competitorarticle.FieldTitle:
		return m.OldTitle(ctx)
	case competitorarticle.FieldContentText:
		return m.OldContentText(ctx)
	case competitorarticle.FieldAuthor:
		return m.OldAuthor(ctx)
	case competitorarticle.FieldPublishedDate:
		return m.OldPublishedDate(ctx)
	case competitorarticle.FieldKeywords:
		return m.OldKeywords(ctx)
	case competitorarticle.FieldTopicID:
		return m.OldTopicID(ctx)
	case competitorarticle.FieldQdrantPointID:
		return m.OldQdrantPointID(ctx)
	case competitorarticle.FieldIsValid:
		return m.OldIsValid(ctx)
	case competitorarticle.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CompetitorArticle field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompetitorArticleMutation) SetField(name string, value ent.Value) error {
	switch name {
	case competitorarticle.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case competitorarticle.FieldURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURL(v)
		return nil
	case competitorarticle.FieldURLHash:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetURLHash(v)
		return nil
	case competitorarticle.FieldTitle:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTitle(v)
		return nil
	case competitorarticle.FieldContentText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentText(v)
		return nil
	case competitorarticle.FieldAuthor:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAuthor(v)
		return nil
	case competitorarticle.FieldPublishedDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedDate(v)
		return nil
	case competitorarticle.FieldKeywords:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case competitorarticle.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case competitorarticle.FieldQdrantPointID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetQdrantPointID(v)
		return nil
	case competitorarticle.FieldIsValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValid(v)
		return nil
	case competitorarticle.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CompetitorArticle field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CompetitorArticleMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_id != nil {
		fields = append(fields, competitorarticle.FieldTopicID)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CompetitorArticleMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case competitorarticle.FieldTopicID:
		return m.AddedTopicID()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CompetitorArticleMutation) AddField(name string, value ent.Value) error {
	switch name {
	case competitorarticle.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	}
	return fmt.Errorf("unknown CompetitorArticle numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CompetitorArticleMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(competitorarticle.FieldTitle) {
		fields = append(fields, competitorarticle.FieldTitle)
	}
	if m.FieldCleared(competitorarticle.FieldContentText) {
		fields = append(fields, competitorarticle.FieldContentText)
	}
	if m.FieldCleared(competitorarticle.FieldAuthor) {
		fields = append(fields, competitorarticle.FieldAuthor)
	}
	if m.FieldCleared(competitorarticle.FieldPublishedDate) {
		fields = append(fields, competitorarticle.FieldPublishedDate)
	}
	if m.FieldCleared(competitorarticle.FieldKeywords) {
		fields = append(fields, competitorarticle.FieldKeywords)
	}
	if m.FieldCleared(competitorarticle.FieldTopicID) {
		fields = append(fields, competitorarticle.FieldTopicID)
	}
	if m.FieldCleared(competitorarticle.FieldQdrantPointID) {
		fields = append(fields, competitorarticle.FieldQdrantPointID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CompetitorArticleMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CompetitorArticleMutation) ClearField(name string) error {
	switch name {
	case competitorarticle.FieldTitle:
		m.ClearTitle()
		return nil
	case competitorarticle.FieldContentText:
		m.ClearContentText()
		return nil
	case competitorarticle.FieldAuthor:
		m.ClearAuthor()
		return nil
	case competitorarticle.FieldPublishedDate:
		m.ClearPublishedDate()
		return nil
	case competitorarticle.FieldKeywords:
		m.ClearKeywords()
		return nil
	case competitorarticle.FieldTopicID:
		m.ClearTopicID()
		return nil
	case competitorarticle.FieldQdrantPointID:
		m.ClearQdrantPointID()
		return nil
	}
	return fmt.Errorf("unknown CompetitorArticle nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CompetitorArticleMutation) ResetField(name string) error {
	switch name {
	case competitorarticle.FieldDomain:
		m.ResetDomain()
		return nil
	case competitorarticle.FieldURL:
		m.ResetURL()
		return nil
	case competitorarticle.FieldURLHash:
		m.ResetURLHash()
		return nil
	case competitorarticle.FieldTitle:
		m.ResetTitle()
		return nil
	case competitorarticle.FieldContentText:
		m.ResetContentText()
		return nil
	case competitorarticle.FieldAuthor:
		m.ResetAuthor()
		return nil
	case competitorarticle.FieldPublishedDate:
		m.ResetPublishedDate()
		return nil
	case competitorarticle.FieldKeywords:
		m.ResetKeywords()
		return nil
	case competitorarticle.FieldTopicID:
		m.ResetTopicID()
		return nil
	case competitorarticle.FieldQdrantPointID:
		m.ResetQdrantPointID()
		return nil
	case competitorarticle.FieldIsValid:
		m.ResetIsValid()
		return nil
	case competitorarticle.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CompetitorArticle field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CompetitorArticleMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CompetitorArticleMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CompetitorArticleMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CompetitorArticleMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CompetitorArticleMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CompetitorArticleMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CompetitorArticleMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown CompetitorArticle unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CompetitorArticleMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown CompetitorArticle edge %s", name)
}

// ContentRoadmapMutation represents an operation that mutates the ContentRoadmap nodes in the graph.
type ContentRoadmapMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	client_domain         *string
	priority_order        *int
	addpriority_order     *int
	priority_tier         *contentroadmap.PriorityTier
	estimated_effort      *contentroadmap.EstimatedEffort
	created_at            *time.Time
	clearedFields         map[string]struct{}
	gap                   *int
	clearedgap            bool
	recommendation        *int
	clearedrecommendation bool
	done                  bool
	oldValue              func(context.Context) (*ContentRoadmap, error)
	predicates            []predicate.ContentRoadmap
}

var _ ent.Mutation = (*ContentRoadmapMutation)(nil)

// contentroadmapOption allows management of the mutation configuration using functional options.
type contentroadmapOption func(*ContentRoadmapMutation)

// newContentRoadmapMutation creates new mutation for the ContentRoadmap entity.
func newContentRoadmapMutation(c config, op Op, opts ...contentroadmapOption) *ContentRoadmapMutation {
	m := &ContentRoadmapMutation{
		config:        c,
		op:            op,
		typ:           TypeContentRoadmap,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withContentRoadmapID sets the ID field of the mutation.
func withContentRoadmapID(id int) contentroadmapOption {
	return func(m *ContentRoadmapMutation) {
		var (
			err   error
			once  sync.Once
			value *ContentRoadmap
		)
		m.oldValue = func(ctx context.Context) (*ContentRoadmap, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ContentRoadmap.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withContentRoadmap sets the old ContentRoadmap of the mutation.
func withContentRoadmap(node *ContentRoadmap) contentroadmapOption {
	return func(m *ContentRoadmapMutation) {
		m.oldValue = func(context.Context) (*ContentRoadmap, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ContentRoadmapMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ContentRoadmapMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ContentRoadmapMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ContentRoadmapMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ContentRoadmap.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientDomain sets the "client_domain" field.
func (m *ContentRoadmapMutation) SetClientDomain(s string) {
	m.client_domain = &s
}

// ClientDomain returns the value of the "client_domain" field in the mutation.
func (m *ContentRoadmapMutation) ClientDomain() (r string, exists bool) {
	v := m.client_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldClientDomain returns the old "client_domain" field's value of the ContentRoadmap entity.
// If the ContentRoadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentRoadmapMutation) OldClientDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientDomain: %w", err)
	}
	return oldValue.ClientDomain, nil
}

// ResetClientDomain resets all changes to the "client_domain" field.
func (m *ContentRoadmapMutation) ResetClientDomain() {
	m.client_domain = nil
}

// SetGapID sets the "gap_id" field.
func (m *ContentRoadmapMutation) SetGapID(i int) {
	m.gap = &i
}

// GapID returns the value of the "gap_id" field in the mutation.
func (m *ContentRoadmapMutation) GapID() (r int, exists bool) {
	v := m.gap
	if v == nil {
		return
	}
	return *v, true
}

// OldGapID returns the old "gap_id" field's value of the ContentRoadmap entity.
// If the ContentRoadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentRoadmapMutation) OldGapID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGapID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGapID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGapID: %w", err)
	}
	return oldValue.GapID, nil
}

// ResetGapID resets all changes to the "gap_id" field.
func (m *ContentRoadmapMutation) ResetGapID() {
	m.gap = nil
}

// SetRecommendationID sets the "recommendation_id" field.
func (m *ContentRoadmapMutation) SetRecommendationID(i int) {
	m.recommendation = &i
}

// RecommendationID returns the value of the "recommendation_id" field in the mutation.
func (m *ContentRoadmapMutation) RecommendationID() (r int, exists bool) {
	v := m.recommendation
	if v == nil {
		return
	}
	return *v, true
}

// OldRecommendationID returns the old "recommendation_id" field's value of the ContentRoadmap entity.
// If the ContentRoadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentRoadmapMutation) OldRecommendationID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRecommendationID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRecommendationID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRecommendationID: %w", err)
	}
	return oldValue.RecommendationID, nil
}

// ResetRecommendationID resets all changes to the "recommendation_id" field.
func (m *ContentRoadmapMutation) ResetRecommendationID() {
	m.recommendation = nil
}

// SetPriorityOrder sets the "priority_order" field.
func (m *ContentRoadmapMutation) SetPriorityOrder(i int) {
	m.priority_order = &i
	m.addpriority_order = nil
}

// PriorityOrder returns the value of the "priority_order" field in the mutation.
func (m *ContentRoadmapMutation) PriorityOrder() (r int, exists bool) {
	v := m.priority_order
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityOrder returns the old "priority_order" field's value of the ContentRoadmap entity.
// If the ContentRoadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentRoadmapMutation) OldPriorityOrder(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityOrder is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityOrder requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityOrder: %w", err)
	}
	return oldValue.PriorityOrder, nil
}

// AddPriorityOrder adds i to the "priority_order" field.
func (m *ContentRoadmapMutation) AddPriorityOrder(i int) {
	if m.addpriority_order != nil {
		*m.addpriority_order += i
	} else {
		m.addpriority_order = &i
	}
}

// AddedPriorityOrder returns the value that was added to the "priority_order" field in this mutation.
func (m *ContentRoadmapMutation) AddedPriorityOrder() (r int, exists bool) {
	v := m.addpriority_order
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityOrder resets all changes to the "priority_order" field.
func (m *ContentRoadmapMutation) ResetPriorityOrder() {
	m.priority_order = nil
	m.addpriority_order = nil
}

// SetPriorityTier sets the "priority_tier" field.
func (m *ContentRoadmapMutation) SetPriorityTier(ct contentroadmap.PriorityTier) {
	m.priority_tier = &ct
}

// PriorityTier returns the value of the "priority_tier" field in the mutation.
func (m *ContentRoadmapMutation) PriorityTier() (r contentroadmap.PriorityTier, exists bool) {
	v := m.priority_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityTier returns the old "priority_tier" field's value of the ContentRoadmap entity.
// If the ContentRoadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentRoadmapMutation) OldPriorityTier(ctx context.Context) (v contentroadmap.PriorityTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityTier: %w", err)
	}
	return oldValue.PriorityTier, nil
}

// ResetPriorityTier resets all changes to the "priority_tier" field.
func (m *ContentRoadmapMutation) ResetPriorityTier() {
	m.priority_tier = nil
}

// SetEstimatedEffort sets the "estimated_effort" field.
func (m *ContentRoadmapMutation) SetEstimatedEffort(ce contentroadmap.EstimatedEffort) {
	m.estimated_effort = &ce
}

// EstimatedEffort returns the value of the "estimated_effort" field in the mutation.
func (m *ContentRoadmapMutation) EstimatedEffort() (r contentroadmap.EstimatedEffort, exists bool) {
	v := m.estimated_effort
	if v == nil {
		return
	}
	return *v, true
}

// OldEstimatedEffort returns the old "estimated_effort" field's value of the ContentRoadmap entity.
// If the ContentRoadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentRoadmapMutation) OldEstimatedEffort(ctx context.Context) (v contentroadmap.EstimatedEffort, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEstimatedEffort is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEstimatedEffort requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEstimatedEffort: %w", err)
	}
	return oldValue.EstimatedEffort, nil
}

// ResetEstimatedEffort resets all changes to the "estimated_effort" field.
func (m *ContentRoadmapMutation) ResetEstimatedEffort() {
	m.estimated_effort = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *ContentRoadmapMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ContentRoadmapMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ContentRoadmap entity.
// If the ContentRoadmap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ContentRoadmapMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ContentRoadmapMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearGap clears the "gap" edge to the EditorialGap entity.
func (m *ContentRoadmapMutation) ClearGap() {
	m.clearedgap = true
	m.clearedFields[contentroadmap.FieldGapID] = struct{}{}
}

// GapCleared reports if the "gap" edge to the EditorialGap entity was cleared.
func (m *ContentRoadmapMutation) GapCleared() bool {
	return m.clearedgap
}

// GapIDs returns the "gap" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GapID instead. It exists only for internal usage by the builders.
func (m *ContentRoadmapMutation) GapIDs() (ids []int) {
	if id := m.gap; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGap resets all changes to the "gap" edge.
func (m *ContentRoadmapMutation) ResetGap() {
	m.gap = nil
	m.clearedgap = false
}

// ClearRecommendation clears the "recommendation" edge to the ArticleRecommendation entity.
func (m *ContentRoadmapMutation) ClearRecommendation() {
	m.clearedrecommendation = true
	m.clearedFields[contentroadmap.FieldRecommendationID] = struct{}{}
}

// RecommendationCleared reports if the "recommendation" edge to the ArticleRecommendation entity was cleared.
func (m *ContentRoadmapMutation) RecommendationCleared() bool {
	return m.clearedrecommendation
}

// RecommendationIDs returns the "recommendation" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RecommendationID instead. It exists only for internal usage by the builders.
func (m *ContentRoadmapMutation) RecommendationIDs() (ids []int) {
	if id := m.recommendation; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRecommendation resets all changes to the "recommendation" edge.
func (m *ContentRoadmapMutation) ResetRecommendation() {
	m.recommendation = nil
	m.clearedrecommendation = false
}

// Where appends a list predicates to the ContentRoadmapMutation builder.
func (m *ContentRoadmapMutation) Where(ps ...predicate.ContentRoadmap) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ContentRoadmapMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ContentRoadmapMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ContentRoadmap, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ContentRoadmapMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ContentRoadmapMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ContentRoadmap).
func (m *ContentRoadmapMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ContentRoadmapMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.client_domain != nil {
		fields = append(fields, contentroadmap.FieldClientDomain)
	}
	if m.gap != nil {
		fields = append(fields, contentroadmap.FieldGapID)
	}
	if m.recommendation != nil {
		fields = append(fields, contentroadmap.FieldRecommendationID)
	}
	if m.priority_order != nil {
		fields = append(fields, contentroadmap.FieldPriorityOrder)
	}
	if m.priority_tier != nil {
		fields = append(fields, contentroadmap.FieldPriorityTier)
	}
	if m.estimated_effort != nil {
		fields = append(fields, contentroadmap.FieldEstimatedEffort)
	}
	if m.created_at != nil {
		fields = append(fields, contentroadmap.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ContentRoadmapMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case contentroadmap.FieldClientDomain:
		return m.ClientDomain()
	case contentroadmap.FieldGapID:
		return m.GapID()
	case contentroadmap.FieldRecommendationID:
		return m.RecommendationID()
	case contentroadmap.FieldPriorityOrder:
		return m.PriorityOrder()
	case contentroadmap.FieldPriorityTier:
		return m.PriorityTier()
	case contentroadmap.FieldEstimatedEffort:
		return m.EstimatedEffort()
	case contentroadmap.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ContentRoadmapMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case contentroadmap.FieldClientDomain:
		return m.OldClientDomain(ctx)
	case contentroadmap.FieldGapID:
		return m.OldGapID(ctx)
	case contentroadmap.FieldRecommendationID:
		return m.OldRecommendationID(ctx)
	case contentroadmap.FieldPriorityOrder:
		return m.OldPriorityOrder(ctx)
	case contentroadmap.FieldPriorityTier:
		return m.OldPriorityTier(ctx)
	case contentroadmap.FieldEstimatedEffort:
		return m.OldEstimatedEffort(ctx)
	case contentroadmap.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ContentRoadmap field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentRoadmapMutation) SetField(name string, value ent.Value) error {
	switch name {
	case contentroadmap.FieldClientDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientDomain(v)
		return nil
	case contentroadmap.FieldGapID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGapID(v)
		return nil
	case contentroadmap.FieldRecommendationID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRecommendationID(v)
		return nil
	case contentroadmap.FieldPriorityOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityOrder(v)
		return nil
	case contentroadmap.FieldPriorityTier:
		v, ok := value.(contentroadmap.PriorityTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityTier(v)
		return nil
	case contentroadmap.FieldEstimatedEffort:
		v, ok := value.(contentroadmap.EstimatedEffort)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEstimatedEffort(v)
		return nil
	case contentroadmap.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ContentRoadmap field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ContentRoadmapMutation) AddedFields() []string {
	var fields []string
	if m.addpriority_order != nil {
		fields = append(fields, contentroadmap.FieldPriorityOrder)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ContentRoadmapMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case contentroadmap.FieldPriorityOrder:
		return m.AddedPriorityOrder()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ContentRoadmapMutation) AddField(name string, value ent.Value) error {
	switch name {
	case contentroadmap.FieldPriorityOrder:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityOrder(v)
		return nil
	}
	return fmt.Errorf("unknown ContentRoadmap numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ContentRoadmapMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ContentRoadmapMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ContentRoadmapMutation) ClearField(name string) error {
	return fmt.Errorf("unknown ContentRoadmap nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ContentRoadmapMutation) ResetField(name string) error {
	switch name {
	case contentroadmap.FieldClientDomain:
		m.ResetClientDomain()
		return nil
	case contentroadmap.FieldGapID:
		m.ResetGapID()
		return nil
	case contentroadmap.FieldRecommendationID:
		m.ResetRecommendationID()
		return nil
	case contentroadmap.FieldPriorityOrder:
		m.ResetPriorityOrder()
		return nil
	case contentroadmap.FieldPriorityTier:
		m.ResetPriorityTier()
		return nil
	case contentroadmap.FieldEstimatedEffort:
		m.ResetEstimatedEffort()
		return nil
	case contentroadmap.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown ContentRoadmap field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ContentRoadmapMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.gap != nil {
		edges = append(edges, contentroadmap.EdgeGap)
	}
	if m.recommendation != nil {
		edges = append(edges, contentroadmap.EdgeRecommendation)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ContentRoadmapMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case contentroadmap.EdgeGap:
		if id := m.gap; id != nil {
			return []ent.Value{*id}
		}
	case contentroadmap.EdgeRecommendation:
		if id := m.recommendation; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ContentRoadmapMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ContentRoadmapMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ContentRoadmapMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedgap {
		edges = append(edges, contentroadmap.EdgeGap)
	}
	if m.clearedrecommendation {
		edges = append(edges, contentroadmap.EdgeRecommendation)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ContentRoadmapMutation) EdgeCleared(name string) bool {
	switch name {
	case contentroadmap.EdgeGap:
		return m.clearedgap
	case contentroadmap.EdgeRecommendation:
		return m.clearedrecommendation
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ContentRoadmapMutation) ClearEdge(name string) error {
	switch name {
	case contentroadmap.EdgeGap:
		m.ClearGap()
		return nil
	case contentroadmap.EdgeRecommendation:
		m.ClearRecommendation()
		return nil
	}
	return fmt.Errorf("unknown ContentRoadmap unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ContentRoadmapMutation) ResetEdge(name string) error {
	switch name {
	case contentroadmap.EdgeGap:
		m.ResetGap()
		return nil
	case contentroadmap.EdgeRecommendation:
		m.ResetRecommendation()
		return nil
	}
	return fmt.Errorf("unknown ContentRoadmap edge %s", name)
}

// CoverageAnalysisMutation represents an operation that mutates the CoverageAnalysis nodes in the graph.
type CoverageAnalysisMutation struct {
	config
	op                             Op
	typ                            string
	id                             *int
	client_domain                  *string
	client_count                   *int
	addclient_count                *int
	competitor_count               *int
	addcompetitor_count            *int
	distinct_competitor_domains    *int
	adddistinct_competitor_domains *int
	avg_competitor                 *float64
	addavg_competitor              *float64
	coverage_score                 *float64
	addcoverage_score              *float64
	level                          *coverageanalysis.Level
	created_at                     *time.Time
	clearedFields                  map[string]struct{}
	cluster                        *int
	clearedcluster                 bool
	done                           bool
	oldValue                       func(context.Context) (*CoverageAnalysis, error)
	predicates                     []predicate.CoverageAnalysis
}

var _ ent.Mutation = (*CoverageAnalysisMutation)(nil)

// coverageanalysisOption allows management of the mutation configuration using functional options.
type coverageanalysisOption func(*CoverageAnalysisMutation)

// newCoverageAnalysisMutation creates new mutation for the CoverageAnalysis entity.
func newCoverageAnalysisMutation(c config, op Op, opts ...coverageanalysisOption) *CoverageAnalysisMutation {
	m := &CoverageAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeCoverageAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withCoverageAnalysisID sets the ID field of the mutation.
func withCoverageAnalysisID(id int) coverageanalysisOption {
	return func(m *CoverageAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *CoverageAnalysis
		)
		m.oldValue = func(ctx context.Context) (*CoverageAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().CoverageAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withCoverageAnalysis sets the old CoverageAnalysis of the mutation.
func withCoverageAnalysis(node *CoverageAnalysis) coverageanalysisOption {
	return func(m *CoverageAnalysisMutation) {
		m.oldValue = func(context.Context) (*CoverageAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m CoverageAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m CoverageAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *CoverageAnalysisMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *CoverageAnalysisMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().CoverageAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientDomain sets the "client_domain" field.
func (m *CoverageAnalysisMutation) SetClientDomain(s string) {
	m.client_domain = &s
}

// ClientDomain returns the value of the "client_domain" field in the mutation.
func (m *CoverageAnalysisMutation) ClientDomain() (r string, exists bool) {
	v := m.client_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldClientDomain returns the old "client_domain" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldClientDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientDomain: %w", err)
	}
	return oldValue.ClientDomain, nil
}

// ResetClientDomain resets all changes to the "client_domain" field.
func (m *CoverageAnalysisMutation) ResetClientDomain() {
	m.client_domain = nil
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (m *CoverageAnalysisMutation) SetTopicClusterID(i int) {
	m.cluster = &i
}

// TopicClusterID returns the value of the "topic_cluster_id" field in the mutation.
func (m *CoverageAnalysisMutation) TopicClusterID() (r int, exists bool) {
	v := m.cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicClusterID returns the old "topic_cluster_id" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldTopicClusterID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicClusterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicClusterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicClusterID: %w", err)
	}
	return oldValue.TopicClusterID, nil
}

// ResetTopicClusterID resets all changes to the "topic_cluster_id" field.
func (m *CoverageAnalysisMutation) ResetTopicClusterID() {
	m.cluster = nil
}

// SetClientCount sets the "client_count" field.
func (m *CoverageAnalysisMutation) SetClientCount(i int) {
	m.client_count = &i
	m.addclient_count = nil
}

// ClientCount returns the value of the "client_count" field in the mutation.
func (m *CoverageAnalysisMutation) ClientCount() (r int, exists bool) {
	v := m.client_count
	if v == nil {
		return
	}
	return *v, true
}

// OldClientCount returns the old "client_count" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldClientCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientCount: %w", err)
	}
	return oldValue.ClientCount, nil
}

// AddClientCount adds i to the "client_count" field.
func (m *CoverageAnalysisMutation) AddClientCount(i int) {
	if m.addclient_count != nil {
		*m.addclient_count += i
	} else {
		m.addclient_count = &i
	}
}

// AddedClientCount returns the value that was added to the "client_count" field in this mutation.
func (m *CoverageAnalysisMutation) AddedClientCount() (r int, exists bool) {
	v := m.addclient_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetClientCount resets all changes to the "client_count" field.
func (m *CoverageAnalysisMutation) ResetClientCount() {
	m.client_count = nil
	m.addclient_count = nil
}

// SetCompetitorCount sets the "competitor_count" field.
func (m *CoverageAnalysisMutation) SetCompetitorCount(i int) {
	m.competitor_count = &i
	m.addcompetitor_count = nil
}

// CompetitorCount returns the value of the "competitor_count" field in the mutation.
func (m *CoverageAnalysisMutation) CompetitorCount() (r int, exists bool) {
	v := m.competitor_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorCount returns the old "competitor_count" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldCompetitorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorCount: %w", err)
	}
	return oldValue.CompetitorCount, nil
}

// AddCompetitorCount adds i to the "competitor_count" field.
func (m *CoverageAnalysisMutation) AddCompetitorCount(i int) {
	if m.addcompetitor_count != nil {
		*m.addcompetitor_count += i
	} else {
		m.addcompetitor_count = &i
	}
}

// AddedCompetitorCount returns the value that was added to the "competitor_count" field in this mutation.
func (m *CoverageAnalysisMutation) AddedCompetitorCount() (r int, exists bool) {
	v := m.addcompetitor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompetitorCount resets all changes to the "competitor_count" field.
func (m *CoverageAnalysisMutation) ResetCompetitorCount() {
	m.competitor_count = nil
	m.addcompetitor_count = nil
}

// SetDistinctCompetitorDomains sets the "distinct_competitor_domains" field.
func (m *CoverageAnalysisMutation) SetDistinctCompetitorDomains(i int) {
	m.distinct_competitor_domains = &i
	m.adddistinct_competitor_domains = nil
}

// DistinctCompetitorDomains returns the value of the "distinct_competitor_domains" field in the mutation.
func (m *CoverageAnalysisMutation) DistinctCompetitorDomains() (r int, exists bool) {
	v := m.distinct_competitor_domains
	if v == nil {
		return
	}
	return *v, true
}

// OldDistinctCompetitorDomains returns the old "distinct_competitor_domains" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldDistinctCompetitorDomains(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistinctCompetitorDomains is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistinctCompetitorDomains requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistinctCompetitorDomains: %w", err)
	}
	return oldValue.DistinctCompetitorDomains, nil
}

// AddDistinctCompetitorDomains adds i to the "distinct_competitor_domains" field.
func (m *CoverageAnalysisMutation) AddDistinctCompetitorDomains(i int) {
	if m.adddistinct_competitor_domains != nil {
		*m.adddistinct_competitor_domains += i
	} else {
		m.adddistinct_competitor_domains = &i
	}
}

// AddedDistinctCompetitorDomains returns the value that was added to the "distinct_competitor_domains" field in this mutation.
func (m *CoverageAnalysisMutation) AddedDistinctCompetitorDomains() (r int, exists bool) {
	v := m.adddistinct_competitor_domains
	if v == nil {
		return
	}
	return *v, true
}

// ResetDistinctCompetitorDomains resets all changes to the "distinct_competitor_domains" field.
func (m *CoverageAnalysisMutation) ResetDistinctCompetitorDomains() {
	m.distinct_competitor_domains = nil
	m.adddistinct_competitor_domains = nil
}

// SetAvgCompetitor sets the "avg_competitor" field.
func (m *CoverageAnalysisMutation) SetAvgCompetitor(f float64) {
	m.avg_competitor = &f
	m.addavg_competitor = nil
}

// AvgCompetitor returns the value of the "avg_competitor" field in the mutation.
func (m *CoverageAnalysisMutation) AvgCompetitor() (r float64, exists bool) {
	v := m.avg_competitor
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgCompetitor returns the old "avg_competitor" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldAvgCompetitor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgCompetitor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgCompetitor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgCompetitor: %w", err)
	}
	return oldValue.AvgCompetitor, nil
}

// AddAvgCompetitor adds f to the "avg_competitor" field.
func (m *CoverageAnalysisMutation) AddAvgCompetitor(f float64) {
	if m.addavg_competitor != nil {
		*m.addavg_competitor += f
	} else {
		m.addavg_competitor = &f
	}
}

// AddedAvgCompetitor returns the value that was added to the "avg_competitor" field in this mutation.
func (m *CoverageAnalysisMutation) AddedAvgCompetitor() (r float64, exists bool) {
	v := m.addavg_competitor
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgCompetitor resets all changes to the "avg_competitor" field.
func (m *CoverageAnalysisMutation) ResetAvgCompetitor() {
	m.avg_competitor = nil
	m.addavg_competitor = nil
}

// SetCoverageScore sets the "coverage_score" field.
func (m *CoverageAnalysisMutation) SetCoverageScore(f float64) {
	m.coverage_score = &f
	m.addcoverage_score = nil
}

// CoverageScore returns the value of the "coverage_score" field in the mutation.
func (m *CoverageAnalysisMutation) CoverageScore() (r float64, exists bool) {
	v := m.coverage_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverageScore returns the old "coverage_score" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldCoverageScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverageScore: %w", err)
	}
	return oldValue.CoverageScore, nil
}

// AddCoverageScore adds f to the "coverage_score" field.
func (m *CoverageAnalysisMutation) AddCoverageScore(f float64) {
	if m.addcoverage_score != nil {
		*m.addcoverage_score += f
	} else {
		m.addcoverage_score = &f
	}
}

// AddedCoverageScore returns the value that was added to the "coverage_score" field in this mutation.
func (m *CoverageAnalysisMutation) AddedCoverageScore() (r float64, exists bool) {
	v := m.addcoverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoverageScore resets all changes to the "coverage_score" field.
func (m *CoverageAnalysisMutation) ResetCoverageScore() {
	m.coverage_score = nil
	m.addcoverage_score = nil
}

// SetLevel sets the "level" field.
func (m *CoverageAnalysisMutation) SetLevel(c coverageanalysis.Level) {
	m.level = &c
}

// Level returns the value of the "level" field in the mutation.
func (m *CoverageAnalysisMutation) Level() (r coverageanalysis.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldLevel(ctx context.Context) (v coverageanalysis.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *CoverageAnalysisMutation) ResetLevel() {
	m.level = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *CoverageAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *CoverageAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the CoverageAnalysis entity.
// If the CoverageAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *CoverageAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *CoverageAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by id.
func (m *CoverageAnalysisMutation) SetClusterID(id int) {
	m.cluster = &id
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (m *CoverageAnalysisMutation) ClearCluster() {
	m.clearedcluster = true
	m.clearedFields[coverageanalysis.FieldTopicClusterID] = struct{}{}
}

// ClusterCleared reports if the "cluster" edge to the TopicCluster entity was cleared.
func (m *CoverageAnalysisMutation) ClusterCleared() bool {
	return m.clearedcluster
}

// ClusterID returns the "cluster" edge ID in the mutation.
func (m *CoverageAnalysisMutation) ClusterID() (id int, exists bool) {
	if m.cluster != nil {
		return *m.cluster, true
	}
	return
}

// ClusterIDs returns the "cluster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClusterID instead. It exists only for internal usage by the builders.
func (m *CoverageAnalysisMutation) ClusterIDs() (ids []int) {
	if id := m.cluster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCluster resets all changes to the "cluster" edge.
func (m *CoverageAnalysisMutation) ResetCluster() {
	m.cluster = nil
	m.clearedcluster = false
}

// Where appends a list predicates to the CoverageAnalysisMutation builder.
func (m *CoverageAnalysisMutation) Where(ps ...predicate.CoverageAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the CoverageAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *CoverageAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.CoverageAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *CoverageAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *CoverageAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (CoverageAnalysis).
func (m *CoverageAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *CoverageAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.client_domain != nil {
		fields = append(fields, coverageanalysis.FieldClientDomain)
	}
	if m.cluster != nil {
		fields = append(fields, coverageanalysis.FieldTopicClusterID)
	}
	if m.client_count != nil {
		fields = append(fields, coverageanalysis.FieldClientCount)
	}
	if m.competitor_count != nil {
		fields = append(fields, coverageanalysis.FieldCompetitorCount)
	}
	if m.distinct_competitor_domains != nil {
		fields = append(fields, coverageanalysis.FieldDistinctCompetitorDomains)
	}
	if m.avg_competitor != nil {
		fields = append(fields, coverageanalysis.FieldAvgCompetitor)
	}
	if m.coverage_score != nil {
		fields = append(fields, coverageanalysis.FieldCoverageScore)
	}
	if m.level != nil {
		fields = append(fields, coverageanalysis.FieldLevel)
	}
	if m.created_at != nil {
		fields = append(fields, coverageanalysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *CoverageAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case coverageanalysis.FieldClientDomain:
		return m.ClientDomain()
	case coverageanalysis.FieldTopicClusterID:
		return m.TopicClusterID()
	case coverageanalysis.FieldClientCount:
		return m.ClientCount()
	case coverageanalysis.FieldCompetitorCount:
		return m.CompetitorCount()
	case coverageanalysis.FieldDistinctCompetitorDomains:
		return m.DistinctCompetitorDomains()
	case coverageanalysis.FieldAvgCompetitor:
		return m.AvgCompetitor()
	case coverageanalysis.FieldCoverageScore:
		return m.CoverageScore()
	case coverageanalysis.FieldLevel:
		return m.Level()
	case coverageanalysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *CoverageAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case coverageanalysis.FieldClientDomain:
		return m.OldClientDomain(ctx)
	case coverageanalysis.FieldTopicClusterID:
		return m.OldTopicClusterID(ctx)
	case coverageanalysis.FieldClientCount:
		return m.OldClientCount(ctx)
	case coverageanalysis.FieldCompetitorCount:
		return m.OldCompetitorCount(ctx)
	case coverageanalysis.FieldDistinctCompetitorDomains:
		return m.OldDistinctCompetitorDomains(ctx)
	case coverageanalysis.FieldAvgCompetitor:
		return m.OldAvgCompetitor(ctx)
	case coverageanalysis.FieldCoverageScore:
		return m.OldCoverageScore(ctx)
	case coverageanalysis.FieldLevel:
		return m.OldLevel(ctx)
	case coverageanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown CoverageAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoverageAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case coverageanalysis.FieldClientDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientDomain(v)
		return nil
	case coverageanalysis.FieldTopicClusterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicClusterID(v)
		return nil
	case coverageanalysis.FieldClientCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientCount(v)
		return nil
	case coverageanalysis.FieldCompetitorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorCount(v)
		return nil
	case coverageanalysis.FieldDistinctCompetitorDomains:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistinctCompetitorDomains(v)
		return nil
	case coverageanalysis.FieldAvgCompetitor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgCompetitor(v)
		return nil
	case coverageanalysis.FieldCoverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverageScore(v)
		return nil
	case coverageanalysis.FieldLevel:
		v, ok := value.(coverageanalysis.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case coverageanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown CoverageAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *CoverageAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addclient_count != nil {
		fields = append(fields, coverageanalysis.FieldClientCount)
	}
	if m.addcompetitor_count != nil {
		fields = append(fields, coverageanalysis.FieldCompetitorCount)
	}
	if m.adddistinct_competitor_domains != nil {
		fields = append(fields, coverageanalysis.FieldDistinctCompetitorDomains)
	}
	if m.addavg_competitor != nil {
		fields = append(fields, coverageanalysis.FieldAvgCompetitor)
	}
	if m.addcoverage_score != nil {
		fields = append(fields, coverageanalysis.FieldCoverageScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *CoverageAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case coverageanalysis.FieldClientCount:
		return m.AddedClientCount()
	case coverageanalysis.FieldCompetitorCount:
		return m.AddedCompetitorCount()
	case coverageanalysis.FieldDistinctCompetitorDomains:
		return m.AddedDistinctCompetitorDomains()
	case coverageanalysis.FieldAvgCompetitor:
		return m.AddedAvgCompetitor()
	case coverageanalysis.FieldCoverageScore:
		return m.AddedCoverageScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *CoverageAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case coverageanalysis.FieldClientCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClientCount(v)
		return nil
	case coverageanalysis.FieldCompetitorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompetitorCount(v)
		return nil
	case coverageanalysis.FieldDistinctCompetitorDomains:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistinctCompetitorDomains(v)
		return nil
	case coverageanalysis.FieldAvgCompetitor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgCompetitor(v)
		return nil
	case coverageanalysis.FieldCoverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoverageScore(v)
		return nil
	}
	return fmt.Errorf("unknown CoverageAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *CoverageAnalysisMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *CoverageAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *CoverageAnalysisMutation) ClearField(name string) error {
	return fmt.Errorf("unknown CoverageAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *CoverageAnalysisMutation) ResetField(name string) error {
	switch name {
	case coverageanalysis.FieldClientDomain:
		m.ResetClientDomain()
		return nil
	case coverageanalysis.FieldTopicClusterID:
		m.ResetTopicClusterID()
		return nil
	case coverageanalysis.FieldClientCount:
		m.ResetClientCount()
		return nil
	case coverageanalysis.FieldCompetitorCount:
		m.ResetCompetitorCount()
		return nil
	case coverageanalysis.FieldDistinctCompetitorDomains:
		m.ResetDistinctCompetitorDomains()
		return nil
	case coverageanalysis.FieldAvgCompetitor:
		m.ResetAvgCompetitor()
		return nil
	case coverageanalysis.FieldCoverageScore:
		m.ResetCoverageScore()
		return nil
	case coverageanalysis.FieldLevel:
		m.ResetLevel()
		return nil
	case coverageanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown CoverageAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *CoverageAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cluster != nil {
		edges = append(edges, coverageanalysis.EdgeCluster)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *CoverageAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case coverageanalysis.EdgeCluster:
		if id := m.cluster; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *CoverageAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *CoverageAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *CoverageAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcluster {
		edges = append(edges, coverageanalysis.EdgeCluster)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *CoverageAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case coverageanalysis.EdgeCluster:
		return m.clearedcluster
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *CoverageAnalysisMutation) ClearEdge(name string) error {
	switch name {
	case coverageanalysis.EdgeCluster:
		m.ClearCluster()
		return nil
	}
	return fmt.Errorf("unknown CoverageAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *CoverageAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case coverageanalysis.EdgeCluster:
		m.ResetCluster()
		return nil
	}
	return fmt.Errorf("unknown CoverageAnalysis edge %s", name)
}

// EditorialGapMutation represents an operation that mutates the EditorialGap nodes in the graph.
type EditorialGapMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	client_domain          *string
	client_count           *int
	addclient_count        *int
	competitor_count       *int
	addcompetitor_count    *int
	avg_competitor         *float64
	addavg_competitor      *float64
	coverage_score         *float64
	addcoverage_score      *float64
	level                  *editorialgap.Level
	priority_score         *float64
	addpriority_score      *float64
	created_at             *time.Time
	clearedFields          map[string]struct{}
	cluster                *int
	clearedcluster         bool
	roadmap_entries        map[int]struct{}
	removedroadmap_entries map[int]struct{}
	clearedroadmap_entries bool
	done                   bool
	oldValue               func(context.Context) (*EditorialGap, error)
	predicates             []predicate.EditorialGap
}

var _ ent.Mutation = (*EditorialGapMutation)(nil)

// editorialgapOption allows management of the mutation configuration using functional options.
type editorialgapOption func(*EditorialGapMutation)

// newEditorialGapMutation creates new mutation for the EditorialGap entity.
func newEditorialGapMutation(c config, op Op, opts ...editorialgapOption) *EditorialGapMutation {
	m := &EditorialGapMutation{
		config:        c,
		op:            op,
		typ:           TypeEditorialGap,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEditorialGapID sets the ID field of the mutation.
func withEditorialGapID(id int) editorialgapOption {
	return func(m *EditorialGapMutation) {
		var (
			err   error
			once  sync.Once
			value *EditorialGap
		)
		m.oldValue = func(ctx context.Context) (*EditorialGap, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().EditorialGap.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEditorialGap sets the old EditorialGap of the mutation.
func withEditorialGap(node *EditorialGap) editorialgapOption {
	return func(m *EditorialGapMutation) {
		m.oldValue = func(context.Context) (*EditorialGap, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EditorialGapMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EditorialGapMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EditorialGapMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EditorialGapMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().EditorialGap.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetClientDomain sets the "client_domain" field.
func (m *EditorialGapMutation) SetClientDomain(s string) {
	m.client_domain = &s
}

// ClientDomain returns the value of the "client_domain" field in the mutation.
func (m *EditorialGapMutation) ClientDomain() (r string, exists bool) {
	v := m.client_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldClientDomain returns the old "client_domain" field's value of the EditorialGap entity.
// If the EditorialGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialGapMutation) OldClientDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientDomain: %w", err)
	}
	return oldValue.ClientDomain, nil
}

// ResetClientDomain resets all changes to the "client_domain" field.
func (m *EditorialGapMutation) ResetClientDomain() {
	m.client_domain = nil
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (m *EditorialGapMutation) SetTopicClusterID(i int) {
	m.cluster = &i
}

// TopicClusterID returns the value of the "topic_cluster_id" field in the mutation.
func (m *EditorialGapMutation) TopicClusterID() (r int, exists bool) {
	v := m.cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicClusterID returns the old "topic_cluster_id" field's value of the EditorialGap entity.
// If the EditorialGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialGapMutation) OldTopicClusterID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicClusterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicClusterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicClusterID: %w", err)
	}
	return oldValue.TopicClusterID, nil
}

// ResetTopicClusterID resets all changes to the "topic_cluster_id" field.
func (m *EditorialGapMutation) ResetTopicClusterID() {
	m.cluster = nil
}

// SetClientCount sets the "client_count" field.
func (m *EditorialGapMutation) SetClientCount(i int) {
	m.client_count = &i
	m.addclient_count = nil
}

// ClientCount returns the value of the "client_count" field in the mutation.
func (m *EditorialGapMutation) ClientCount() (r int, exists bool) {
	v := m.client_count
	if v == nil {
		return
	}
	return *v, true
}

// OldClientCount returns the old "client_count" field's value of the EditorialGap entity.
// If the EditorialGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialGapMutation) OldClientCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientCount: %w", err)
	}
	return oldValue.ClientCount, nil
}

// AddClientCount adds i to the "client_count" field.
func (m *EditorialGapMutation) AddClientCount(i int) {
	if m.addclient_count != nil {
		*m.addclient_count += i
	} else {
		m.addclient_count = &i
	}
}

// AddedClientCount returns the value that was added to the "client_count" field in this mutation.
func (m *EditorialGapMutation) AddedClientCount() (r int, exists bool) {
	v := m.addclient_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetClientCount resets all changes to the "client_count" field.
func (m *EditorialGapMutation) ResetClientCount() {
	m.client_count = nil
	m.addclient_count = nil
}

// SetCompetitorCount sets the "competitor_count" field.
func (m *EditorialGapMutation) SetCompetitorCount(i int) {
	m.competitor_count = &i
	m.addcompetitor_count = nil
}

// CompetitorCount returns the value of the "competitor_count" field in the mutation.
func (m *EditorialGapMutation) CompetitorCount() (r int, exists bool) {
	v := m.competitor_count
	if v == nil {
		return
	}
	return *v, true
}

// OldCompetitorCount returns the old "competitor_count" field's value of the EditorialGap entity.
// If the EditorialGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialGapMutation) OldCompetitorCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCompetitorCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCompetitorCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCompetitorCount: %w", err)
	}
	return oldValue.CompetitorCount, nil
}

// AddCompetitorCount adds i to the "competitor_count" field.
func (m *EditorialGapMutation) AddCompetitorCount(i int) {
	if m.addcompetitor_count != nil {
		*m.addcompetitor_count += i
	} else {
		m.addcompetitor_count = &i
	}
}

// AddedCompetitorCount returns the value that was added to the "competitor_count" field in this mutation.
func (m *EditorialGapMutation) AddedCompetitorCount() (r int, exists bool) {
	v := m.addcompetitor_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetCompetitorCount resets all changes to the "competitor_count" field.
func (m *EditorialGapMutation) ResetCompetitorCount() {
	m.competitor_count = nil
	m.addcompetitor_count = nil
}

// SetAvgCompetitor sets the "avg_competitor" field.
func (m *EditorialGapMutation) SetAvgCompetitor(f float64) {
	m.avg_competitor = &f
	m.addavg_competitor = nil
}

// AvgCompetitor returns the value of the "avg_competitor" field in the mutation.
func (m *EditorialGapMutation) AvgCompetitor() (r float64, exists bool) {
	v := m.avg_competitor
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgCompetitor returns the old "avg_competitor" field's value of the EditorialGap entity.
// If the EditorialGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialGapMutation) OldAvgCompetitor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgCompetitor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgCompetitor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgCompetitor: %w", err)
	}
	return oldValue.AvgCompetitor, nil
}

// AddAvgCompetitor adds f to the "avg_competitor" field.
func (m *EditorialGapMutation) AddAvgCompetitor(f float64) {
	if m.addavg_competitor != nil {
		*m.addavg_competitor += f
	} else {
		m.addavg_competitor = &f
	}
}

// AddedAvgCompetitor returns the value that was added to the "avg_competitor" field in this mutation.
func (m *EditorialGapMutation) AddedAvgCompetitor() (r float64, exists bool) {
	v := m.addavg_competitor
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgCompetitor resets all changes to the "avg_competitor" field.
func (m *EditorialGapMutation) ResetAvgCompetitor() {
	m.avg_competitor = nil
	m.addavg_competitor = nil
}

// SetCoverageScore sets the "coverage_score" field.
func (m *EditorialGapMutation) SetCoverageScore(f float64) {
	m.coverage_score = &f
	m.addcoverage_score = nil
}

// CoverageScore returns the value of the "coverage_score" field in the mutation.
func (m *EditorialGapMutation) CoverageScore() (r float64, exists bool) {
	v := m.coverage_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCoverageScore returns the old "coverage_score" field's value of the EditorialGap entity.
// If the EditorialGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialGapMutation) OldCoverageScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoverageScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoverageScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoverageScore: %w", err)
	}
	return oldValue.CoverageScore, nil
}

// AddCoverageScore adds f to the "coverage_score" field.
func (m *EditorialGapMutation) AddCoverageScore(f float64) {
	if m.addcoverage_score != nil {
		*m.addcoverage_score += f
	} else {
		m.addcoverage_score = &f
	}
}

// AddedCoverageScore returns the value that was added to the "coverage_score" field in this mutation.
func (m *EditorialGapMutation) AddedCoverageScore() (r float64, exists bool) {
	v := m.addcoverage_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoverageScore resets all changes to the "coverage_score" field.
func (m *EditorialGapMutation) ResetCoverageScore() {
	m.coverage_score = nil
	m.addcoverage_score = nil
}

// SetLevel sets the "level" field.
func (m *EditorialGapMutation) SetLevel(e editorialgap.Level) {
	m.level = &e
}

// Level returns the value of the "level" field in the mutation.
func (m *EditorialGapMutation) Level() (r editorialgap.Level, exists bool) {
	v := m.level
	if v == nil {
		return
	}
	return *v, true
}

// OldLevel returns the old "level" field's value of the EditorialGap entity.
// If the EditorialGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialGapMutation) OldLevel(ctx context.Context) (v editorialgap.Level, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevel: %w", err)
	}
	return oldValue.Level, nil
}

// ResetLevel resets all changes to the "level" field.
func (m *EditorialGapMutation) ResetLevel() {
	m.level = nil
}

// SetPriorityScore sets the "priority_score" field.
func (m *EditorialGapMutation) SetPriorityScore(f float64) {
	m.priority_score = &f
	m.addpriority_score = nil
}

// PriorityScore returns the value of the "priority_score" field in the mutation.
func (m *EditorialGapMutation) PriorityScore() (r float64, exists bool) {
	v := m.priority_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPriorityScore returns the old "priority_score" field's value of the EditorialGap entity.
// If the EditorialGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialGapMutation) OldPriorityScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPriorityScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPriorityScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPriorityScore: %w", err)
	}
	return oldValue.PriorityScore, nil
}

// AddPriorityScore adds f to the "priority_score" field.
func (m *EditorialGapMutation) AddPriorityScore(f float64) {
	if m.addpriority_score != nil {
		*m.addpriority_score += f
	} else {
		m.addpriority_score = &f
	}
}

// AddedPriorityScore returns the value that was added to the "priority_score" field in this mutation.
func (m *EditorialGapMutation) AddedPriorityScore() (r float64, exists bool) {
	v := m.addpriority_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPriorityScore resets all changes to the "priority_score" field.
func (m *EditorialGapMutation) ResetPriorityScore() {
	m.priority_score = nil
	m.addpriority_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EditorialGapMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EditorialGapMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the EditorialGap entity.
// If the EditorialGap object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EditorialGapMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EditorialGapMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by id.
func (m *EditorialGapMutation) SetClusterID(id int) {
	m.cluster = &id
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (m *EditorialGapMutation) ClearCluster() {
	m.clearedcluster = true
	m.clearedFields[editorialgap.FieldTopicClusterID] = struct{}{}
}

// ClusterCleared reports if the "cluster" edge to the TopicCluster entity was cleared.
func (m *EditorialGapMutation) ClusterCleared() bool {
	return m.clearedcluster
}

// ClusterID returns the "cluster" edge ID in the mutation.
func (m *EditorialGapMutation) ClusterID() (id int, exists bool) {
	if m.cluster != nil {
		return *m.cluster, true
	}
	return
}

// ClusterIDs returns the "cluster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClusterID instead. It exists only for internal usage by the builders.
func (m *EditorialGapMutation) ClusterIDs() (ids []int) {
	if id := m.cluster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCluster resets all changes to the "cluster" edge.
func (m *EditorialGapMutation) ResetCluster() {
	m.cluster = nil
	m.clearedcluster = false
}

// AddRoadmapEntryIDs adds the "roadmap_entries" edge to the ContentRoadmap entity by ids.
func (m *EditorialGapMutation) AddRoadmapEntryIDs(ids ...int) {
	if m.roadmap_entries == nil {
		m.roadmap_entries = make(map[int]struct{})
	}
	for i := range ids {
		m.roadmap_entries[ids[i]] = struct{}{}
	}
}

// ClearRoadmapEntries clears the "roadmap_entries" edge to the ContentRoadmap entity.
func (m *EditorialGapMutation) ClearRoadmapEntries() {
	m.clearedroadmap_entries = true
}

// RoadmapEntriesCleared reports if the "roadmap_entries" edge to the ContentRoadmap entity was cleared.
func (m *EditorialGapMutation) RoadmapEntriesCleared() bool {
	return m.clearedroadmap_entries
}

// RemoveRoadmapEntryIDs removes the "roadmap_entries" edge to the ContentRoadmap entity by IDs.
func (m *EditorialGapMutation) RemoveRoadmapEntryIDs(ids ...int) {
	if m.removedroadmap_entries == nil {
		m.removedroadmap_entries = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.roadmap_entries, ids[i])
		m.removedroadmap_entries[ids[i]] = struct{}{}
	}
}

// RemovedRoadmapEntries returns the removed IDs of the "roadmap_entries" edge to the ContentRoadmap entity.
func (m *EditorialGapMutation) RemovedRoadmapEntriesIDs() (ids []int) {
	for id := range m.removedroadmap_entries {
		ids = append(ids, id)
	}
	return
}

// RoadmapEntriesIDs returns the "roadmap_entries" edge IDs in the mutation.
func (m *EditorialGapMutation) RoadmapEntriesIDs() (ids []int) {
	for id := range m.roadmap_entries {
		ids = append(ids, id)
	}
	return
}

// ResetRoadmapEntries resets all changes to the "roadmap_entries" edge.
func (m *EditorialGapMutation) ResetRoadmapEntries() {
	m.roadmap_entries = nil
	m.clearedroadmap_entries = false
	m.removedroadmap_entries = nil
}

// Where appends a list predicates to the EditorialGapMutation builder.
func (m *EditorialGapMutation) Where(ps ...predicate.EditorialGap) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EditorialGapMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EditorialGapMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.EditorialGap, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EditorialGapMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EditorialGapMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (EditorialGap).
func (m *EditorialGapMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EditorialGapMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.client_domain != nil {
		fields = append(fields, editorialgap.FieldClientDomain)
	}
	if m.cluster != nil {
		fields = append(fields, editorialgap.FieldTopicClusterID)
	}
	if m.client_count != nil {
		fields = append(fields, editorialgap.FieldClientCount)
	}
	if m.competitor_count != nil {
		fields = append(fields, editorialgap.FieldCompetitorCount)
	}
	if m.avg_competitor != nil {
		fields = append(fields, editorialgap.FieldAvgCompetitor)
	}
	if m.coverage_score != nil {
		fields = append(fields, editorialgap.FieldCoverageScore)
	}
	if m.level != nil {
		fields = append(fields, editorialgap.FieldLevel)
	}
	if m.priority_score != nil {
		fields = append(fields, editorialgap.FieldPriorityScore)
	}
	if m.created_at != nil {
		fields = append(fields, editorialgap.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EditorialGapMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case editorialgap.FieldClientDomain:
		return m.ClientDomain()
	case editorialgap.FieldTopicClusterID:
		return m.TopicClusterID()
	case editorialgap.FieldClientCount:
		return m.ClientCount()
	case editorialgap.FieldCompetitorCount:
		return m.CompetitorCount()
	case editorialgap.FieldAvgCompetitor:
		return m.AvgCompetitor()
	case editorialgap.FieldCoverageScore:
		return m.CoverageScore()
	case editorialgap.FieldLevel:
		return m.Level()
	case editorialgap.FieldPriorityScore:
		return m.PriorityScore()
	case editorialgap.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EditorialGapMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case editorialgap.FieldClientDomain:
		return m.OldClientDomain(ctx)
	case editorialgap.FieldTopicClusterID:
		return m.OldTopicClusterID(ctx)
	case editorialgap.FieldClientCount:
		return m.OldClientCount(ctx)
	case editorialgap.FieldCompetitorCount:
		return m.OldCompetitorCount(ctx)
	case editorialgap.FieldAvgCompetitor:
		return m.OldAvgCompetitor(ctx)
	case editorialgap.FieldCoverageScore:
		return m.OldCoverageScore(ctx)
	case editorialgap.FieldLevel:
		return m.OldLevel(ctx)
	case editorialgap.FieldPriorityScore:
		return m.OldPriorityScore(ctx)
	case editorialgap.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown EditorialGap field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditorialGapMutation) SetField(name string, value ent.Value) error {
	switch name {
	case editorialgap.FieldClientDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientDomain(v)
		return nil
	case editorialgap.FieldTopicClusterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicClusterID(v)
		return nil
	case editorialgap.FieldClientCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientCount(v)
		return nil
	case editorialgap.FieldCompetitorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCompetitorCount(v)
		return nil
	case editorialgap.FieldAvgCompetitor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgCompetitor(v)
		return nil
	case editorialgap.FieldCoverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoverageScore(v)
		return nil
	case editorialgap.FieldLevel:
		v, ok := value.(editorialgap.Level)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevel(v)
		return nil
	case editorialgap.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPriorityScore(v)
		return nil
	case editorialgap.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown EditorialGap field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EditorialGapMutation) AddedFields() []string {
	var fields []string
	if m.addclient_count != nil {
		fields = append(fields, editorialgap.FieldClientCount)
	}
	if m.addcompetitor_count != nil {
		fields = append(fields, editorialgap.FieldCompetitorCount)
	}
	if m.addavg_competitor != nil {
		fields = append(fields, editorialgap.FieldAvgCompetitor)
	}
	if m.addcoverage_score != nil {
		fields = append(fields, editorialgap.FieldCoverageScore)
	}
	if m.addpriority_score != nil {
		fields = append(fields, editorialgap.FieldPriorityScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EditorialGapMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case editorialgap.FieldClientCount:
		return m.AddedClientCount()
	case editorialgap.FieldCompetitorCount:
		return m.AddedCompetitorCount()
	case editorialgap.FieldAvgCompetitor:
		return m.AddedAvgCompetitor()
	case editorialgap.FieldCoverageScore:
		return m.AddedCoverageScore()
	case editorialgap.FieldPriorityScore:
		return m.AddedPriorityScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EditorialGapMutation) AddField(name string, value ent.Value) error {
	switch name {
	case editorialgap.FieldClientCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClientCount(v)
		return nil
	case editorialgap.FieldCompetitorCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCompetitorCount(v)
		return nil
	case editorialgap.FieldAvgCompetitor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgCompetitor(v)
		return nil
	case editorialgap.FieldCoverageScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoverageScore(v)
		return nil
	case editorialgap.FieldPriorityScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPriorityScore(v)
		return nil
	}
	return fmt.Errorf("unknown EditorialGap numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EditorialGapMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EditorialGapMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EditorialGapMutation) ClearField(name string) error {
	return fmt.Errorf("unknown EditorialGap nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EditorialGapMutation) ResetField(name string) error {
	switch name {
	case editorialgap.FieldClientDomain:
		m.ResetClientDomain()
		return nil
	case editorialgap.FieldTopicClusterID:
		m.ResetTopicClusterID()
		return nil
	case editorialgap.FieldClientCount:
		m.ResetClientCount()
		return nil
	case editorialgap.FieldCompetitorCount:
		m.ResetCompetitorCount()
		return nil
	case editorialgap.FieldAvgCompetitor:
		m.ResetAvgCompetitor()
		return nil
	case editorialgap.FieldCoverageScore:
		m.ResetCoverageScore()
		return nil
	case editorialgap.FieldLevel:
		m.ResetLevel()
		return nil
	case editorialgap.FieldPriorityScore:
		m.ResetPriorityScore()
		return nil
	case editorialgap.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown EditorialGap field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EditorialGapMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.cluster != nil {
		edges = append(edges, editorialgap.EdgeCluster)
	}
	if m.roadmap_entries != nil {
		edges = append(edges, editorialgap.EdgeRoadmapEntries)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EditorialGapMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case editorialgap.EdgeCluster:
		if id := m.cluster; id != nil {
			return []ent.Value{*id}
		}
	case editorialgap.EdgeRoadmapEntries:
		ids := make([]ent.Value, 0, len(m.roadmap_entries))
		for id := range m.roadmap_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EditorialGapMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedroadmap_entries != nil {
		edges = append(edges, editorialgap.EdgeRoadmapEntries)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EditorialGapMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case editorialgap.EdgeRoadmapEntries:
		ids := make([]ent.Value, 0, len(m.removedroadmap_entries))
		for id := range m.removedroadmap_entries {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EditorialGapMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedcluster {
		edges = append(edges, editorialgap.EdgeCluster)
	}
	if m.clearedroadmap_entries {
		edges = append(edges, editorialgap.EdgeRoadmapEntries)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EditorialGapMutation) EdgeCleared(name string) bool {
	switch name {
	case editorialgap.EdgeCluster:
		return m.clearedcluster
	case editorialgap.EdgeRoadmapEntries:
		return m.clearedroadmap_entries
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EditorialGapMutation) ClearEdge(name string) error {
	switch name {
	case editorialgap.EdgeCluster:
		m.ClearCluster()
		return nil
	}
	return fmt.Errorf("unknown EditorialGap unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EditorialGapMutation) ResetEdge(name string) error {
	switch name {
	case editorialgap.EdgeCluster:
		m.ResetCluster()
		return nil
	case editorialgap.EdgeRoadmapEntries:
		m.ResetRoadmapEntries()
		return nil
	}
	return fmt.Errorf("unknown EditorialGap edge %s", name)
}

// EventMutation represents an operation that mutates the Event nodes in the graph.
type EventMutation struct {
	config
	op            Op
	typ           string
	id            *int
	execution_id  *string
	channel       *string
	payload       *map[string]interface{}
	created_at    *time.Time
	clearedFields map[string]struct{}
	done          bool
	oldValue      func(context.Context) (*Event, error)
	predicates    []predicate.Event
}

var _ ent.Mutation = (*EventMutation)(nil)

// eventOption allows management of the mutation configuration using functional options.
type eventOption func(*EventMutation)

// newEventMutation creates new mutation for the Event entity.
func newEventMutation(c config, op Op, opts ...eventOption) *EventMutation {
	m := &EventMutation{
		config:        c,
		op:            op,
		typ:           TypeEvent,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withEventID sets the ID field of the mutation.
func withEventID(id int) eventOption {
	return func(m *EventMutation) {
		var (
			err   error
			once  sync.Once
			value *Event
		)
		m.oldValue = func(ctx context.Context) (*Event, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Event.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withEvent sets the old Event of the mutation.
func withEvent(node *Event) eventOption {
	return func(m *EventMutation) {
		m.oldValue = func(context.Context) (*Event, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m EventMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m EventMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *EventMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *EventMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Event.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *EventMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *EventMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ClearExecutionID clears the value of the "execution_id" field.
func (m *EventMutation) ClearExecutionID() {
	m.execution_id = nil
	m.clearedFields[event.FieldExecutionID] = struct{}{}
}

// ExecutionIDCleared returns if the "execution_id" field was cleared in this mutation.
func (m *EventMutation) ExecutionIDCleared() bool {
	_, ok := m.clearedFields[event.FieldExecutionID]
	return ok
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *EventMutation) ResetExecutionID() {
	m.execution_id = nil
	delete(m.clearedFields, event.FieldExecutionID)
}

// SetChannel sets the "channel" field.
func (m *EventMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *EventMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *EventMutation) ResetChannel() {
	m.channel = nil
}

// SetPayload sets the "payload" field.
func (m *EventMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *EventMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ResetPayload resets all changes to the "payload" field.
func (m *EventMutation) ResetPayload() {
	m.payload = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *EventMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *EventMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Event entity.
// If the Event object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *EventMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *EventMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the EventMutation builder.
func (m *EventMutation) Where(ps ...predicate.Event) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the EventMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *EventMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Event, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *EventMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *EventMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Event).
func (m *EventMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *EventMutation) Fields() []string {
	fields := make([]string, 0, 4)
	if m.execution_id != nil {
		fields = append(fields, event.FieldExecutionID)
	}
	if m.channel != nil {
		fields = append(fields, event.FieldChannel)
	}
	if m.payload != nil {
		fields = append(fields, event.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, event.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *EventMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case event.FieldExecutionID:
		return m.ExecutionID()
	case event.FieldChannel:
		return m.Channel()
	case event.FieldPayload:
		return m.Payload()
	case event.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *EventMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case event.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case event.FieldChannel:
		return m.OldChannel(ctx)
	case event.FieldPayload:
		return m.OldPayload(ctx)
	case event.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Event field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) SetField(name string, value ent.Value) error {
	switch name {
	case event.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case event.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case event.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case event.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *EventMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *EventMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *EventMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown Event numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *EventMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(event.FieldExecutionID) {
		fields = append(fields, event.FieldExecutionID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *EventMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *EventMutation) ClearField(name string) error {
	switch name {
	case event.FieldExecutionID:
		m.ClearExecutionID()
		return nil
	}
	return fmt.Errorf("unknown Event nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *EventMutation) ResetField(name string) error {
	switch name {
	case event.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case event.FieldChannel:
		m.ResetChannel()
		return nil
	case event.FieldPayload:
		m.ResetPayload()
		return nil
	case event.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Event field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *EventMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *EventMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *EventMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *EventMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *EventMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *EventMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *EventMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Event unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *EventMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Event edge %s", name)
}

// PerformanceMetricMutation represents an operation that mutates the PerformanceMetric nodes in the graph.
type PerformanceMetricMutation struct {
	config
	op               Op
	typ              string
	id               *int
	agent_name       *string
	metric_type      *string
	metric_value     *float64
	addmetric_value  *float64
	metric_unit      *string
	additional_data  *map[string]interface{}
	created_at       *time.Time
	clearedFields    map[string]struct{}
	execution        *string
	clearedexecution bool
	done             bool
	oldValue         func(context.Context) (*PerformanceMetric, error)
	predicates       []predicate.PerformanceMetric
}

var _ ent.Mutation = (*PerformanceMetricMutation)(nil)

// performancemetricOption allows management of the mutation configuration using functional options.
type performancemetricOption func(*PerformanceMetricMutation)

// newPerformanceMetricMutation creates new mutation for the PerformanceMetric entity.
func newPerformanceMetricMutation(c config, op Op, opts ...performancemetricOption) *PerformanceMetricMutation {
	m := &PerformanceMetricMutation{
		config:        c,
		op:            op,
		typ:           TypePerformanceMetric,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPerformanceMetricID sets the ID field of the mutation.
func withPerformanceMetricID(id int) performancemetricOption {
	return func(m *PerformanceMetricMutation) {
		var (
			err   error
			once  sync.Once
			value *PerformanceMetric
		)
		m.oldValue = func(ctx context.Context) (*PerformanceMetric, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PerformanceMetric.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPerformanceMetric sets the old PerformanceMetric of the mutation.
func withPerformanceMetric(node *PerformanceMetric) performancemetricOption {
	return func(m *PerformanceMetricMutation) {
		m.oldValue = func(context.Context) (*PerformanceMetric, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PerformanceMetricMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PerformanceMetricMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PerformanceMetricMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PerformanceMetricMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PerformanceMetric.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *PerformanceMetricMutation) SetExecutionID(s string) {
	m.execution = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *PerformanceMetricMutation) ExecutionID() (r string, exists bool) {
	v := m.execution
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the PerformanceMetric entity.
// If the PerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMetricMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *PerformanceMetricMutation) ResetExecutionID() {
	m.execution = nil
}

// SetAgentName sets the "agent_name" field.
func (m *PerformanceMetricMutation) SetAgentName(s string) {
	m.agent_name = &s
}

// AgentName returns the value of the "agent_name" field in the mutation.
func (m *PerformanceMetricMutation) AgentName() (r string, exists bool) {
	v := m.agent_name
	if v == nil {
		return
	}
	return *v, true
}

// OldAgentName returns the old "agent_name" field's value of the PerformanceMetric entity.
// If the PerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMetricMutation) OldAgentName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgentName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgentName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgentName: %w", err)
	}
	return oldValue.AgentName, nil
}

// ClearAgentName clears the value of the "agent_name" field.
func (m *PerformanceMetricMutation) ClearAgentName() {
	m.agent_name = nil
	m.clearedFields[performancemetric.FieldAgentName] = struct{}{}
}

// AgentNameCleared returns if the "agent_name" field was cleared in this mutation.
func (m *PerformanceMetricMutation) AgentNameCleared() bool {
	_, ok := m.clearedFields[performancemetric.FieldAgentName]
	return ok
}

// ResetAgentName resets all changes to the "agent_name" field.
func (m *PerformanceMetricMutation) ResetAgentName() {
	m.agent_name = nil
	delete(m.clearedFields, performancemetric.FieldAgentName)
}

// SetMetricType sets the "metric_type" field.
func (m *PerformanceMetricMutation) SetMetricType(s string) {
	m.metric_type = &s
}

// MetricType returns the value of the "metric_type" field in the mutation.
func (m *PerformanceMetricMutation) MetricType() (r string, exists bool) {
	v := m.metric_type
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricType returns the old "metric_type" field's value of the PerformanceMetric entity.
// If the PerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMetricMutation) OldMetricType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricType: %w", err)
	}
	return oldValue.MetricType, nil
}

// ResetMetricType resets all changes to the "metric_type" field.
func (m *PerformanceMetricMutation) ResetMetricType() {
	m.metric_type = nil
}

// SetMetricValue sets the "metric_value" field.
func (m *PerformanceMetricMutation) SetMetricValue(f float64) {
	m.metric_value = &f
	m.addmetric_value = nil
}

// MetricValue returns the value of the "metric_value" field in the mutation.
func (m *PerformanceMetricMutation) MetricValue() (r float64, exists bool) {
	v := m.metric_value
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricValue returns the old "metric_value" field's value of the PerformanceMetric entity.
// If the PerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMetricMutation) OldMetricValue(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricValue is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricValue requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricValue: %w", err)
	}
	return oldValue.MetricValue, nil
}

// AddMetricValue adds f to the "metric_value" field.
func (m *PerformanceMetricMutation) AddMetricValue(f float64) {
	if m.addmetric_value != nil {
		*m.addmetric_value += f
	} else {
		m.addmetric_value = &f
	}
}

// AddedMetricValue returns the value that was added to the "metric_value" field in this mutation.
func (m *PerformanceMetricMutation) AddedMetricValue() (r float64, exists bool) {
	v := m.addmetric_value
	if v == nil {
		return
	}
	return *v, true
}

// ResetMetricValue resets all changes to the "metric_value" field.
func (m *PerformanceMetricMutation) ResetMetricValue() {
	m.metric_value = nil
	m.addmetric_value = nil
}

// SetMetricUnit sets the "metric_unit" field.
func (m *PerformanceMetricMutation) SetMetricUnit(s string) {
	m.metric_unit = &s
}

// MetricUnit returns the value of the "metric_unit" field in the mutation.
func (m *PerformanceMetricMutation) MetricUnit() (r string, exists bool) {
	v := m.metric_unit
	if v == nil {
		return
	}
	return *v, true
}

// OldMetricUnit returns the old "metric_unit" field's value of the PerformanceMetric entity.
// If the PerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMetricMutation) OldMetricUnit(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMetricUnit is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMetricUnit requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMetricUnit: %w", err)
	}
	return oldValue.MetricUnit, nil
}

// ClearMetricUnit clears the value of the "metric_unit" field.
func (m *PerformanceMetricMutation) ClearMetricUnit() {
	m.metric_unit = nil
	m.clearedFields[performancemetric.FieldMetricUnit] = struct{}{}
}

// MetricUnitCleared returns if the "metric_unit" field was cleared in this mutation.
func (m *PerformanceMetricMutation) MetricUnitCleared() bool {
	_, ok := m.clearedFields[performancemetric.FieldMetricUnit]
	return ok
}

// ResetMetricUnit resets all changes to the "metric_unit" field.
func (m *PerformanceMetricMutation) ResetMetricUnit() {
	m.metric_unit = nil
	delete(m.clearedFields, performancemetric.FieldMetricUnit)
}

// SetAdditionalData sets the "additional_data" field.
func (m *PerformanceMetricMutation) SetAdditionalData(value map[string]interface{}) {
	m.additional_data = &value
}

// AdditionalData returns the value of the "additional_data" field in the mutation.
func (m *PerformanceMetricMutation) AdditionalData() (r map[string]interface{}, exists bool) {
	v := m.additional_data
	if v == nil {
		return
	}
	return *v, true
}

// OldAdditionalData returns the old "additional_data" field's value of the PerformanceMetric entity.
// If the PerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMetricMutation) OldAdditionalData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAdditionalData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAdditionalData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAdditionalData: %w", err)
	}
	return oldValue.AdditionalData, nil
}

// ClearAdditionalData clears the value of the "additional_data" field.
func (m *PerformanceMetricMutation) ClearAdditionalData() {
	m.additional_data = nil
	m.clearedFields[performancemetric.FieldAdditionalData] = struct{}{}
}

// AdditionalDataCleared returns if the "additional_data" field was cleared in this mutation.
func (m *PerformanceMetricMutation) AdditionalDataCleared() bool {
	_, ok := m.clearedFields[performancemetric.FieldAdditionalData]
	return ok
}

// ResetAdditionalData resets all changes to the "additional_data" field.
func (m *PerformanceMetricMutation) ResetAdditionalData() {
	m.additional_data = nil
	delete(m.clearedFields, performancemetric.FieldAdditionalData)
}

// SetCreatedAt sets the "created_at" field.
func (m *PerformanceMetricMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PerformanceMetricMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the PerformanceMetric entity.
// If the PerformanceMetric object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PerformanceMetricMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PerformanceMetricMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearExecution clears the "execution" edge to the WorkflowExecution entity.
func (m *PerformanceMetricMutation) ClearExecution() {
	m.clearedexecution = true
	m.clearedFields[performancemetric.FieldExecutionID] = struct{}{}
}

// ExecutionCleared reports if the "execution" edge to the WorkflowExecution entity was cleared.
func (m *PerformanceMetricMutation) ExecutionCleared() bool {
	return m.clearedexecution
}

// ExecutionIDs returns the "execution" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ExecutionID instead. It exists only for internal usage by the builders.
func (m *PerformanceMetricMutation) ExecutionIDs() (ids []string) {
	if id := m.execution; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetExecution resets all changes to the "execution" edge.
func (m *PerformanceMetricMutation) ResetExecution() {
	m.execution = nil
	m.clearedexecution = false
}

// Where appends a list predicates to the PerformanceMetricMutation builder.
func (m *PerformanceMetricMutation) Where(ps ...predicate.PerformanceMetric) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PerformanceMetricMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PerformanceMetricMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PerformanceMetric, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PerformanceMetricMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PerformanceMetricMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PerformanceMetric).
func (m *PerformanceMetricMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PerformanceMetricMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.execution != nil {
		fields = append(fields, performancemetric.FieldExecutionID)
	}
	if m.agent_name != nil {
		fields = append(fields, performancemetric.FieldAgentName)
	}
	if m.metric_type != nil {
		fields = append(fields, performancemetric.FieldMetricType)
	}
	if m.metric_value != nil {
		fields = append(fields, performancemetric.FieldMetricValue)
	}
	if m.metric_unit != nil {
		fields = append(fields, performancemetric.FieldMetricUnit)
	}
	if m.additional_data != nil {
		fields = append(fields, performancemetric.FieldAdditionalData)
	}
	if m.created_at != nil {
		fields = append(fields, performancemetric.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PerformanceMetricMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case performancemetric.FieldExecutionID:
		return m.ExecutionID()
	case performancemetric.FieldAgentName:
		return m.AgentName()
	case performancemetric.FieldMetricType:
		return m.MetricType()
	case performancemetric.FieldMetricValue:
		return m.MetricValue()
	case performancemetric.FieldMetricUnit:
		return m.MetricUnit()
	case performancemetric.FieldAdditionalData:
		return m.AdditionalData()
	case performancemetric.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PerformanceMetricMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case performancemetric.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case performancemetric.FieldAgentName:
		return m.OldAgentName(ctx)
	case performancemetric.FieldMetricType:
		return m.OldMetricType(ctx)
	case performancemetric.FieldMetricValue:
		return m.OldMetricValue(ctx)
	case performancemetric.FieldMetricUnit:
		return m.OldMetricUnit(ctx)
	case performancemetric.FieldAdditionalData:
		return m.OldAdditionalData(ctx)
	case performancemetric.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PerformanceMetric field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceMetricMutation) SetField(name string, value ent.Value) error {
	switch name {
	case performancemetric.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case performancemetric.FieldAgentName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgentName(v)
		return nil
	case performancemetric.FieldMetricType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricType(v)
		return nil
	case performancemetric.FieldMetricValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricValue(v)
		return nil
	case performancemetric.FieldMetricUnit:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMetricUnit(v)
		return nil
	case performancemetric.FieldAdditionalData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAdditionalData(v)
		return nil
	case performancemetric.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceMetric field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PerformanceMetricMutation) AddedFields() []string {
	var fields []string
	if m.addmetric_value != nil {
		fields = append(fields, performancemetric.FieldMetricValue)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PerformanceMetricMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case performancemetric.FieldMetricValue:
		return m.AddedMetricValue()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PerformanceMetricMutation) AddField(name string, value ent.Value) error {
	switch name {
	case performancemetric.FieldMetricValue:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMetricValue(v)
		return nil
	}
	return fmt.Errorf("unknown PerformanceMetric numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PerformanceMetricMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(performancemetric.FieldAgentName) {
		fields = append(fields, performancemetric.FieldAgentName)
	}
	if m.FieldCleared(performancemetric.FieldMetricUnit) {
		fields = append(fields, performancemetric.FieldMetricUnit)
	}
	if m.FieldCleared(performancemetric.FieldAdditionalData) {
		fields = append(fields, performancemetric.FieldAdditionalData)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PerformanceMetricMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PerformanceMetricMutation) ClearField(name string) error {
	switch name {
	case performancemetric.FieldAgentName:
		m.ClearAgentName()
		return nil
	case performancemetric.FieldMetricUnit:
		m.ClearMetricUnit()
		return nil
	case performancemetric.FieldAdditionalData:
		m.ClearAdditionalData()
		return nil
	}
	return fmt.Errorf("unknown PerformanceMetric nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PerformanceMetricMutation) ResetField(name string) error {
	switch name {
	case performancemetric.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case performancemetric.FieldAgentName:
		m.ResetAgentName()
		return nil
	case performancemetric.FieldMetricType:
		m.ResetMetricType()
		return nil
	case performancemetric.FieldMetricValue:
		m.ResetMetricValue()
		return nil
	case performancemetric.FieldMetricUnit:
		m.ResetMetricUnit()
		return nil
	case performancemetric.FieldAdditionalData:
		m.ResetAdditionalData()
		return nil
	case performancemetric.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown PerformanceMetric field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PerformanceMetricMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.execution != nil {
		edges = append(edges, performancemetric.EdgeExecution)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PerformanceMetricMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case performancemetric.EdgeExecution:
		if id := m.execution; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PerformanceMetricMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PerformanceMetricMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PerformanceMetricMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedexecution {
		edges = append(edges, performancemetric.EdgeExecution)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PerformanceMetricMutation) EdgeCleared(name string) bool {
	switch name {
	case performancemetric.EdgeExecution:
		return m.clearedexecution
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PerformanceMetricMutation) ClearEdge(name string) error {
	switch name {
	case performancemetric.EdgeExecution:
		m.ClearExecution()
		return nil
	}
	return fmt.Errorf("unknown PerformanceMetric unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PerformanceMetricMutation) ResetEdge(name string) error {
	switch name {
	case performancemetric.EdgeExecution:
		m.ResetExecution()
		return nil
	}
	return fmt.Errorf("unknown PerformanceMetric edge %s", name)
}

// SiteProfileMutation represents an operation that mutates the SiteProfile nodes in the graph.
type SiteProfileMutation struct {
	config
	op                     Op
	typ                    string
	id                     *int
	domain                 *string
	analysis_date          *time.Time
	language_level         *siteprofile.LanguageLevel
	editorial_tone         *string
	target_audience        *map[string]interface{}
	activity_domains       *map[string]interface{}
	content_structure      *map[string]interface{}
	keywords               *map[string]interface{}
	style_features         *map[string]interface{}
	pages_analyzed         *int
	addpages_analyzed      *int
	llm_models_used        *[]string
	appendllm_models_used  []string
	is_valid               *bool
	created_at             *time.Time
	clearedFields          map[string]struct{}
	client_articles        map[int]struct{}
	removedclient_articles map[int]struct{}
	clearedclient_articles bool
	done                   bool
	oldValue               func(context.Context) (*SiteProfile, error)
	predicates             []predicate.SiteProfile
}

var _ ent.Mutation = (*SiteProfileMutation)(nil)

// siteprofileOption allows management of the mutation configuration using functional options.
type siteprofileOption func(*SiteProfileMutation)

// newSiteProfileMutation creates new mutation for the SiteProfile entity.
func newSiteProfileMutation(c config, op Op, opts ...siteprofileOption) *SiteProfileMutation {
	m := &SiteProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeSiteProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withSiteProfileID sets the ID field of the mutation.
func withSiteProfileID(id int) siteprofileOption {
	return func(m *SiteProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *SiteProfile
		)
		m.oldValue = func(ctx context.Context) (*SiteProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().SiteProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withSiteProfile sets the old SiteProfile of the mutation.
func withSiteProfile(node *SiteProfile) siteprofileOption {
	return func(m *SiteProfileMutation) {
		m.oldValue = func(context.Context) (*SiteProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m SiteProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m SiteProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *SiteProfileMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *SiteProfileMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().SiteProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetDomain sets the "domain" field.
func (m *SiteProfileMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *SiteProfileMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ResetDomain resets all changes to the "domain" field.
func (m *SiteProfileMutation) ResetDomain() {
	m.domain = nil
}

// SetAnalysisDate sets the "analysis_date" field.
func (m *SiteProfileMutation) SetAnalysisDate(t time.Time) {
	m.analysis_date = &t
}

// AnalysisDate returns the value of the "analysis_date" field in the mutation.
func (m *SiteProfileMutation) AnalysisDate() (r time.Time, exists bool) {
	v := m.analysis_date
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisDate returns the old "analysis_date" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldAnalysisDate(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisDate: %w", err)
	}
	return oldValue.AnalysisDate, nil
}

// ResetAnalysisDate resets all changes to the "analysis_date" field.
func (m *SiteProfileMutation) ResetAnalysisDate() {
	m.analysis_date = nil
}

// SetLanguageLevel sets the "language_level" field.
func (m *SiteProfileMutation) SetLanguageLevel(sl siteprofile.LanguageLevel) {
	m.language_level = &sl
}

// LanguageLevel returns the value of the "language_level" field in the mutation.
func (m *SiteProfileMutation) LanguageLevel() (r siteprofile.LanguageLevel, exists bool) {
	v := m.language_level
	if v == nil {
		return
	}
	return *v, true
}

// OldLanguageLevel returns the old "language_level" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldLanguageLevel(ctx context.Context) (v siteprofile.LanguageLevel, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLanguageLevel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLanguageLevel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLanguageLevel: %w", err)
	}
	return oldValue.LanguageLevel, nil
}

// ResetLanguageLevel resets all changes to the "language_level" field.
func (m *SiteProfileMutation) ResetLanguageLevel() {
	m.language_level = nil
}

// SetEditorialTone sets the "editorial_tone" field.
func (m *SiteProfileMutation) SetEditorialTone(s string) {
	m.editorial_tone = &s
}

// EditorialTone returns the value of the "editorial_tone" field in the mutation.
func (m *SiteProfileMutation) EditorialTone() (r string, exists bool) {
	v := m.editorial_tone
	if v == nil {
		return
	}
	return *v, true
}

// OldEditorialTone returns the old "editorial_tone" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldEditorialTone(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEditorialTone is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEditorialTone requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEditorialTone: %w", err)
	}
	return oldValue.EditorialTone, nil
}

// ClearEditorialTone clears the value of the "editorial_tone" field.
func (m *SiteProfileMutation) ClearEditorialTone() {
	m.editorial_tone = nil
	m.clearedFields[siteprofile.FieldEditorialTone] = struct{}{}
}

// EditorialToneCleared returns if the "editorial_tone" field was cleared in this mutation.
func (m *SiteProfileMutation) EditorialToneCleared() bool {
	_, ok := m.clearedFields[siteprofile.FieldEditorialTone]
	return ok
}

// ResetEditorialTone resets all changes to the "editorial_tone" field.
func (m *SiteProfileMutation) ResetEditorialTone() {
	m.editorial_tone = nil
	delete(m.clearedFields, siteprofile.FieldEditorialTone)
}

// SetTargetAudience sets the "target_audience" field.
func (m *SiteProfileMutation) SetTargetAudience(value map[string]interface{}) {
	m.target_audience = &value
}

// TargetAudience returns the value of the "target_audience" field in the mutation.
func (m *SiteProfileMutation) TargetAudience() (r map[string]interface{}, exists bool) {
	v := m.target_audience
	if v == nil {
		return
	}
	return *v, true
}

// OldTargetAudience returns the old "target_audience" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldTargetAudience(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTargetAudience is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTargetAudience requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTargetAudience: %w", err)
	}
	return oldValue.TargetAudience, nil
}

// ClearTargetAudience clears the value of the "target_audience" field.
func (m *SiteProfileMutation) ClearTargetAudience() {
	m.target_audience = nil
	m.clearedFields[siteprofile.FieldTargetAudience] = struct{}{}
}

// TargetAudienceCleared returns if the "target_audience" field was cleared in this mutation.
func (m *SiteProfileMutation) TargetAudienceCleared() bool {
	_, ok := m.clearedFields[siteprofile.FieldTargetAudience]
	return ok
}

// ResetTargetAudience resets all changes to the "target_audience" field.
func (m *SiteProfileMutation) ResetTargetAudience() {
	m.target_audience = nil
	delete(m.clearedFields, siteprofile.FieldTargetAudience)
}

// SetActivityDomains sets the "activity_domains" field.
func (m *SiteProfileMutation) SetActivityDomains(value map[string]interface{}) {
	m.activity_domains = &value
}

// ActivityDomains returns the value of the "activity_domains" field in the mutation.
func (m *SiteProfileMutation) ActivityDomains() (r map[string]interface{}, exists bool) {
	v := m.activity_domains
	if v == nil {
		return
	}
	return *v, true
}

// OldActivityDomains returns the old "activity_domains" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldActivityDomains(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActivityDomains is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActivityDomains requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActivityDomains: %w", err)
	}
	return oldValue.ActivityDomains, nil
}

// ClearActivityDomains clears the value of the "activity_domains" field.
func (m *SiteProfileMutation) ClearActivityDomains() {
	m.activity_domains = nil
	m.clearedFields[siteprofile.FieldActivityDomains] = struct{}{}
}

// ActivityDomainsCleared returns if the "activity_domains" field was cleared in this mutation.
func (m *SiteProfileMutation) ActivityDomainsCleared() bool {
	_, ok := m.clearedFields[siteprofile.FieldActivityDomains]
	return ok
}

// ResetActivityDomains resets all changes to the "activity_domains" field.
func (m *SiteProfileMutation) ResetActivityDomains() {
	m.activity_domains = nil
	delete(m.clearedFields, siteprofile.FieldActivityDomains)
}

// SetContentStructure sets the "content_structure" field.
func (m *SiteProfileMutation) SetContentStructure(value map[string]interface{}) {
	m.content_structure = &value
}

// ContentStructure returns the value of the "content_structure" field in the mutation.
func (m *SiteProfileMutation) ContentStructure() (r map[string]interface{}, exists bool) {
	v := m.content_structure
	if v == nil {
		return
	}
	return *v, true
}

// OldContentStructure returns the old "content_structure" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldContentStructure(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentStructure is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentStructure requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentStructure: %w", err)
	}
	return oldValue.ContentStructure, nil
}

// ClearContentStructure clears the value of the "content_structure" field.
func (m *SiteProfileMutation) ClearContentStructure() {
	m.content_structure = nil
	m.clearedFields[siteprofile.FieldContentStructure] = struct{}{}
}

// ContentStructureCleared returns if the "content_structure" field was cleared in this mutation.
func (m *SiteProfileMutation) ContentStructureCleared() bool {
	_, ok := m.clearedFields[siteprofile.FieldContentStructure]
	return ok
}

// ResetContentStructure resets all changes to the "content_structure" field.
func (m *SiteProfileMutation) ResetContentStructure() {
	m.content_structure = nil
	delete(m.clearedFields, siteprofile.FieldContentStructure)
}

// SetKeywords sets the "keywords" field.
func (m *SiteProfileMutation) SetKeywords(value map[string]interface{}) {
	m.keywords = &value
}

// Keywords returns the value of the "keywords" field in the mutation.
func (m *SiteProfileMutation) Keywords() (r map[string]interface{}, exists bool) {
	v := m.keywords
	if v == nil {
		return
	}
	return *v, true
}

// OldKeywords returns the old "keywords" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldKeywords(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldKeywords is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldKeywords requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldKeywords: %w", err)
	}
	return oldValue.Keywords, nil
}

// ClearKeywords clears the value of the "keywords" field.
func (m *SiteProfileMutation) ClearKeywords() {
	m.keywords = nil
	m.clearedFields[siteprofile.FieldKeywords] = struct{}{}
}

// KeywordsCleared returns if the "keywords" field was cleared in this mutation.
func (m *SiteProfileMutation) KeywordsCleared() bool {
	_, ok := m.clearedFields[siteprofile.FieldKeywords]
	return ok
}

// ResetKeywords resets all changes to the "keywords" field.
func (m *SiteProfileMutation) ResetKeywords() {
	m.keywords = nil
	delete(m.clearedFields, siteprofile.FieldKeywords)
}

// SetStyleFeatures sets the "style_features" field.
func (m *SiteProfileMutation) SetStyleFeatures(value map[string]interface{}) {
	m.style_features = &value
}

// StyleFeatures returns the value of the "style_features" field in the mutation.
func (m *SiteProfileMutation) StyleFeatures() (r map[string]interface{}, exists bool) {
	v := m.style_features
	if v == nil {
		return
	}
	return *v, true
}

// OldStyleFeatures returns the old "style_features" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldStyleFeatures(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStyleFeatures is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStyleFeatures requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStyleFeatures: %w", err)
	}
	return oldValue.StyleFeatures, nil
}

// ClearStyleFeatures clears the value of the "style_features" field.
func (m *SiteProfileMutation) ClearStyleFeatures() {
	m.style_features = nil
	m.clearedFields[siteprofile.FieldStyleFeatures] = struct{}{}
}

// StyleFeaturesCleared returns if the "style_features" field was cleared in this mutation.
func (m *SiteProfileMutation) StyleFeaturesCleared() bool {
	_, ok := m.clearedFields[siteprofile.FieldStyleFeatures]
	return ok
}

// ResetStyleFeatures resets all changes to the "style_features" field.
func (m *SiteProfileMutation) ResetStyleFeatures() {
	m.style_features = nil
	delete(m.clearedFields, siteprofile.FieldStyleFeatures)
}

// SetPagesAnalyzed sets the "pages_analyzed" field.
func (m *SiteProfileMutation) SetPagesAnalyzed(i int) {
	m.pages_analyzed = &i
	m.addpages_analyzed = nil
}

// PagesAnalyzed returns the value of the "pages_analyzed" field in the mutation.
func (m *SiteProfileMutation) PagesAnalyzed() (r int, exists bool) {
	v := m.pages_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldPagesAnalyzed returns the old "pages_analyzed" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldPagesAnalyzed(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPagesAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPagesAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPagesAnalyzed: %w", err)
	}
	return oldValue.PagesAnalyzed, nil
}

// AddPagesAnalyzed adds i to the "pages_analyzed" field.
func (m *SiteProfileMutation) AddPagesAnalyzed(i int) {
	if m.addpages_analyzed != nil {
		*m.addpages_analyzed += i
	} else {
		m.addpages_analyzed = &i
	}
}

// AddedPagesAnalyzed returns the value that was added to the "pages_analyzed" field in this mutation.
func (m *SiteProfileMutation) AddedPagesAnalyzed() (r int, exists bool) {
	v := m.addpages_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// ResetPagesAnalyzed resets all changes to the "pages_analyzed" field.
func (m *SiteProfileMutation) ResetPagesAnalyzed() {
	m.pages_analyzed = nil
	m.addpages_analyzed = nil
}

// SetLlmModelsUsed sets the "llm_models_used" field.
func (m *SiteProfileMutation) SetLlmModelsUsed(s []string) {
	m.llm_models_used = &s
	m.appendllm_models_used = nil
}

// LlmModelsUsed returns the value of the "llm_models_used" field in the mutation.
func (m *SiteProfileMutation) LlmModelsUsed() (r []string, exists bool) {
	v := m.llm_models_used
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModelsUsed returns the old "llm_models_used" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldLlmModelsUsed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModelsUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModelsUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModelsUsed: %w", err)
	}
	return oldValue.LlmModelsUsed, nil
}

// AppendLlmModelsUsed adds s to the "llm_models_used" field.
func (m *SiteProfileMutation) AppendLlmModelsUsed(s []string) {
	m.appendllm_models_used = append(m.appendllm_models_used, s...)
}

// AppendedLlmModelsUsed returns the list of values that were appended to the "llm_models_used" field in this mutation.
func (m *SiteProfileMutation) AppendedLlmModelsUsed() ([]string, bool) {
	if len(m.appendllm_models_used) == 0 {
		return nil, false
	}
	return m.appendllm_models_used, true
}

// ClearLlmModelsUsed clears the value of the "llm_models_used" field.
func (m *SiteProfileMutation) ClearLlmModelsUsed() {
	m.llm_models_used = nil
	m.appendllm_models_used = nil
	m.clearedFields[siteprofile.FieldLlmModelsUsed] = struct{}{}
}

// LlmModelsUsedCleared returns if the "llm_models_used" field was cleared in this mutation.
func (m *SiteProfileMutation) LlmModelsUsedCleared() bool {
	_, ok := m.clearedFields[siteprofile.FieldLlmModelsUsed]
	return ok
}

// ResetLlmModelsUsed resets all changes to the "llm_models_used" field.
func (m *SiteProfileMutation) ResetLlmModelsUsed() {
	m.llm_models_used = nil
	m.appendllm_models_used = nil
	delete(m.clearedFields, siteprofile.FieldLlmModelsUsed)
}

// SetIsValid sets the "is_valid" field.
func (m *SiteProfileMutation) SetIsValid(b bool) {
	m.is_valid = &b
}

// IsValid returns the value of the "is_valid" field in the mutation.
func (m *SiteProfileMutation) IsValid() (r bool, exists bool) {
	v := m.is_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValid returns the old "is_valid" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldIsValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValid: %w", err)
	}
	return oldValue.IsValid, nil
}

// ResetIsValid resets all changes to the "is_valid" field.
func (m *SiteProfileMutation) ResetIsValid() {
	m.is_valid = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *SiteProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *SiteProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the SiteProfile entity.
// If the SiteProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *SiteProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *SiteProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddClientArticleIDs adds the "client_articles" edge to the ClientArticle entity by ids.
func (m *SiteProfileMutation) AddClientArticleIDs(ids ...int) {
	if m.client_articles == nil {
		m.client_articles = make(map[int]struct{})
	}
	for i := range ids {
		m.client_articles[ids[i]] = struct{}{}
	}
}

// ClearClientArticles clears the "client_articles" edge to the ClientArticle entity.
func (m *SiteProfileMutation) ClearClientArticles() {
	m.clearedclient_articles = true
}

// ClientArticlesCleared reports if the "client_articles" edge to the ClientArticle entity was cleared.
func (m *SiteProfileMutation) ClientArticlesCleared() bool {
	return m.clearedclient_articles
}

// RemoveClientArticleIDs removes the "client_articles" edge to the ClientArticle entity by IDs.
func (m *SiteProfileMutation) RemoveClientArticleIDs(ids ...int) {
	if m.removedclient_articles == nil {
		m.removedclient_articles = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.client_articles, ids[i])
		m.removedclient_articles[ids[i]] = struct{}{}
	}
}

// RemovedClientArticles returns the removed IDs of the "client_articles" edge to the ClientArticle entity.
func (m *SiteProfileMutation) RemovedClientArticlesIDs() (ids []int) {
	for id := range m.removedclient_articles {
		ids = append(ids, id)
	}
	return
}

// ClientArticlesIDs returns the "client_articles" edge IDs in the mutation.
func (m *SiteProfileMutation) ClientArticlesIDs() (ids []int) {
	for id := range m.client_articles {
		ids = append(ids, id)
	}
	return
}

// ResetClientArticles resets all changes to the "client_articles" edge.
func (m *SiteProfileMutation) ResetClientArticles() {
	m.client_articles = nil
	m.clearedclient_articles = false
	m.removedclient_articles = nil
}

// Where appends a list predicates to the SiteProfileMutation builder.
func (m *SiteProfileMutation) Where(ps ...predicate.SiteProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the SiteProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *SiteProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.SiteProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *SiteProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *SiteProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (SiteProfile).
func (m *SiteProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *SiteProfileMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.domain != nil {
		fields = append(fields, siteprofile.FieldDomain)
	}
	if m.analysis_date != nil {
		fields = append(fields, siteprofile.FieldAnalysisDate)
	}
	if m.language_level != nil {
		fields = append(fields, siteprofile.FieldLanguageLevel)
	}
	if m.editorial_tone != nil {
		fields = append(fields, siteprofile.FieldEditorialTone)
	}
	if m.target_audience != nil {
		fields = append(fields, siteprofile.FieldTargetAudience)
	}
	if m.activity_domains != nil {
		fields = append(fields, siteprofile.FieldActivityDomains)
	}
	if m.content_structure != nil {
		fields = append(fields, siteprofile.FieldContentStructure)
	}
	if m.keywords != nil {
		fields = append(fields, siteprofile.FieldKeywords)
	}
	if m.style_features != nil {
		fields = append(fields, siteprofile.FieldStyleFeatures)
	}
	if m.pages_analyzed != nil {
		fields = append(fields, siteprofile.FieldPagesAnalyzed)
	}
	if m.llm_models_used != nil {
		fields = append(fields, siteprofile.FieldLlmModelsUsed)
	}
	if m.is_valid != nil {
		fields = append(fields, siteprofile.FieldIsValid)
	}
	if m.created_at != nil {
		fields = append(fields, siteprofile.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *SiteProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case siteprofile.FieldDomain:
		return m.Domain()
	case siteprofile.FieldAnalysisDate:
		return m.AnalysisDate()
	case siteprofile.FieldLanguageLevel:
		return m.LanguageLevel()
	case siteprofile.FieldEditorialTone:
		return m.EditorialTone()
	case siteprofile.FieldTargetAudience:
		return m.TargetAudience()
	case siteprofile.FieldActivityDomains:
		return m.ActivityDomains()
	case siteprofile.FieldContentStructure:
		return m.ContentStructure()
	case siteprofile.FieldKeywords:
		return m.Keywords()
	case siteprofile.FieldStyleFeatures:
		return m.StyleFeatures()
	case siteprofile.FieldPagesAnalyzed:
		return m.PagesAnalyzed()
	case siteprofile.FieldLlmModelsUsed:
		return m.LlmModelsUsed()
	case siteprofile.FieldIsValid:
		return m.IsValid()
	case siteprofile.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *SiteProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case siteprofile.FieldDomain:
		return m.OldDomain(ctx)
	case siteprofile.FieldAnalysisDate:
		return m.OldAnalysisDate(ctx)
	case siteprofile.FieldLanguageLevel:
		return m.OldLanguageLevel(ctx)
	case siteprofile.FieldEditorialTone:
		return m.OldEditorialTone(ctx)
	case siteprofile.FieldTargetAudience:
		return m.OldTargetAudience(ctx)
	case siteprofile.FieldActivityDomains:
		return m.OldActivityDomains(ctx)
	case siteprofile.FieldContentStructure:
		return m.OldContentStructure(ctx)
	case siteprofile.FieldKeywords:
		return m.OldKeywords(ctx)
	case siteprofile.FieldStyleFeatures:
		return m.OldStyleFeatures(ctx)
	case siteprofile.FieldPagesAnalyzed:
		return m.OldPagesAnalyzed(ctx)
	case siteprofile.FieldLlmModelsUsed:
		return m.OldLlmModelsUsed(ctx)
	case siteprofile.FieldIsValid:
		return m.OldIsValid(ctx)
	case siteprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown SiteProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SiteProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case siteprofile.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case siteprofile.FieldAnalysisDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisDate(v)
		return nil
	case siteprofile.FieldLanguageLevel:
		v, ok := value.(siteprofile.LanguageLevel)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLanguageLevel(v)
		return nil
	case siteprofile.FieldEditorialTone:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEditorialTone(v)
		return nil
	case siteprofile.FieldTargetAudience:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTargetAudience(v)
		return nil
	case siteprofile.FieldActivityDomains:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActivityDomains(v)
		return nil
	case siteprofile.FieldContentStructure:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentStructure(v)
		return nil
	case siteprofile.FieldKeywords:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetKeywords(v)
		return nil
	case siteprofile.FieldStyleFeatures:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStyleFeatures(v)
		return nil
	case siteprofile.FieldPagesAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPagesAnalyzed(v)
		return nil
	case siteprofile.FieldLlmModelsUsed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModelsUsed(v)
		return nil
	case siteprofile.FieldIsValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValid(v)
		return nil
	case siteprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown SiteProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *SiteProfileMutation) AddedFields() []string {
	var fields []string
	if m.addpages_analyzed != nil {
		fields = append(fields, siteprofile.FieldPagesAnalyzed)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *SiteProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case siteprofile.FieldPagesAnalyzed:
		return m.AddedPagesAnalyzed()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *SiteProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case siteprofile.FieldPagesAnalyzed:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPagesAnalyzed(v)
		return nil
	}
	return fmt.Errorf("unknown SiteProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *SiteProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(siteprofile.FieldEditorialTone) {
		fields = append(fields, siteprofile.FieldEditorialTone)
	}
	if m.FieldCleared(siteprofile.FieldTargetAudience) {
		fields = append(fields, siteprofile.FieldTargetAudience)
	}
	if m.FieldCleared(siteprofile.FieldActivityDomains) {
		fields = append(fields, siteprofile.FieldActivityDomains)
	}
	if m.FieldCleared(siteprofile.FieldContentStructure) {
		fields = append(fields, siteprofile.FieldContentStructure)
	}
	if m.FieldCleared(siteprofile.FieldKeywords) {
		fields = append(fields, siteprofile.FieldKeywords)
	}
	if m.FieldCleared(siteprofile.FieldStyleFeatures) {
		fields = append(fields, siteprofile.FieldStyleFeatures)
	}
	if m.FieldCleared(siteprofile.FieldLlmModelsUsed) {
		fields = append(fields, siteprofile.FieldLlmModelsUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *SiteProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *SiteProfileMutation) ClearField(name string) error {
	switch name {
	case siteprofile.FieldEditorialTone:
		m.ClearEditorialTone()
		return nil
	case siteprofile.FieldTargetAudience:
		m.ClearTargetAudience()
		return nil
	case siteprofile.FieldActivityDomains:
		m.ClearActivityDomains()
		return nil
	case siteprofile.FieldContentStructure:
		m.ClearContentStructure()
		return nil
	case siteprofile.FieldKeywords:
		m.ClearKeywords()
		return nil
	case siteprofile.FieldStyleFeatures:
		m.ClearStyleFeatures()
		return nil
	case siteprofile.FieldLlmModelsUsed:
		m.ClearLlmModelsUsed()
		return nil
	}
	return fmt.Errorf("unknown SiteProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *SiteProfileMutation) ResetField(name string) error {
	switch name {
	case siteprofile.FieldDomain:
		m.ResetDomain()
		return nil
	case siteprofile.FieldAnalysisDate:
		m.ResetAnalysisDate()
		return nil
	case siteprofile.FieldLanguageLevel:
		m.ResetLanguageLevel()
		return nil
	case siteprofile.FieldEditorialTone:
		m.ResetEditorialTone()
		return nil
	case siteprofile.FieldTargetAudience:
		m.ResetTargetAudience()
		return nil
	case siteprofile.FieldActivityDomains:
		m.ResetActivityDomains()
		return nil
	case siteprofile.FieldContentStructure:
		m.ResetContentStructure()
		return nil
	case siteprofile.FieldKeywords:
		m.ResetKeywords()
		return nil
	case siteprofile.FieldStyleFeatures:
		m.ResetStyleFeatures()
		return nil
	case siteprofile.FieldPagesAnalyzed:
		m.ResetPagesAnalyzed()
		return nil
	case siteprofile.FieldLlmModelsUsed:
		m.ResetLlmModelsUsed()
		return nil
	case siteprofile.FieldIsValid:
		m.ResetIsValid()
		return nil
	case siteprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown SiteProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *SiteProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.client_articles != nil {
		edges = append(edges, siteprofile.EdgeClientArticles)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *SiteProfileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case siteprofile.EdgeClientArticles:
		ids := make([]ent.Value, 0, len(m.client_articles))
		for id := range m.client_articles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *SiteProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedclient_articles != nil {
		edges = append(edges, siteprofile.EdgeClientArticles)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *SiteProfileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case siteprofile.EdgeClientArticles:
		ids := make([]ent.Value, 0, len(m.removedclient_articles))
		for id := range m.removedclient_articles {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *SiteProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedclient_articles {
		edges = append(edges, siteprofile.EdgeClientArticles)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *SiteProfileMutation) EdgeCleared(name string) bool {
	switch name {
	case siteprofile.EdgeClientArticles:
		return m.clearedclient_articles
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *SiteProfileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown SiteProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *SiteProfileMutation) ResetEdge(name string) error {
	switch name {
	case siteprofile.EdgeClientArticles:
		m.ResetClientArticles()
		return nil
	}
	return fmt.Errorf("unknown SiteProfile edge %s", name)
}

// TopicClusterMutation represents an operation that mutates the TopicCluster nodes in the graph.
type TopicClusterMutation struct {
	config
	op                       Op
	typ                      string
	id                       *int
	topic_id                 *int
	addtopic_id              *int
	label                    *string
	top_terms                *[]map[string]interface{}
	appendtop_terms          []map[string]interface{}
	size                     *int
	addsize                  *int
	document_ids             *map[string]interface{}
	centroid_vector_id       *string
	coherence_score          *float64
	addcoherence_score       *float64
	created_at               *time.Time
	clearedFields            map[string]struct{}
	analysis                 *int
	clearedanalysis          bool
	temporal_metrics         map[int]struct{}
	removedtemporal_metrics  map[int]struct{}
	clearedtemporal_metrics  bool
	trend_analyses           map[int]struct{}
	removedtrend_analyses    map[int]struct{}
	clearedtrend_analyses    bool
	recommendations          map[int]struct{}
	removedrecommendations   map[int]struct{}
	clearedrecommendations   bool
	gaps                     map[int]struct{}
	removedgaps              map[int]struct{}
	clearedgaps              bool
	strengths                map[int]struct{}
	removedstrengths         map[int]struct{}
	clearedstrengths         bool
	coverage_analyses        map[int]struct{}
	removedcoverage_analyses map[int]struct{}
	clearedcoverage_analyses bool
	done                     bool
	oldValue                 func(context.Context) (*TopicCluster, error)
	predicates               []predicate.TopicCluster
}

var _ ent.Mutation = (*TopicClusterMutation)(nil)

// topicclusterOption allows management of the mutation configuration using functional options.
type topicclusterOption func(*TopicClusterMutation)

// newTopicClusterMutation creates new mutation for the TopicCluster entity.
func newTopicClusterMutation(c config, op Op, opts ...topicclusterOption) *TopicClusterMutation {
	m := &TopicClusterMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicCluster,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicClusterID sets the ID field of the mutation.
func withTopicClusterID(id int) topicclusterOption {
	return func(m *TopicClusterMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicCluster
		)
		m.oldValue = func(ctx context.Context) (*TopicCluster, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicCluster.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicCluster sets the old TopicCluster of the mutation.
func withTopicCluster(node *TopicCluster) topicclusterOption {
	return func(m *TopicClusterMutation) {
		m.oldValue = func(context.Context) (*TopicCluster, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicClusterMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicClusterMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicClusterMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicClusterMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicCluster.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnalysisID sets the "analysis_id" field.
func (m *TopicClusterMutation) SetAnalysisID(i int) {
	m.analysis = &i
}

// AnalysisID returns the value of the "analysis_id" field in the mutation.
func (m *TopicClusterMutation) AnalysisID() (r int, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisID returns the old "analysis_id" field's value of the TopicCluster entity.
// If the TopicCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicClusterMutation) OldAnalysisID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisID: %w", err)
	}
	return oldValue.AnalysisID, nil
}

// ResetAnalysisID resets all changes to the "analysis_id" field.
func (m *TopicClusterMutation) ResetAnalysisID() {
	m.analysis = nil
}

// SetTopicID sets the "topic_id" field.
func (m *TopicClusterMutation) SetTopicID(i int) {
	m.topic_id = &i
	m.addtopic_id = nil
}

// TopicID returns the value of the "topic_id" field in the mutation.
func (m *TopicClusterMutation) TopicID() (r int, exists bool) {
	v := m.topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicID returns the old "topic_id" field's value of the TopicCluster entity.
// If the TopicCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicClusterMutation) OldTopicID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicID: %w", err)
	}
	return oldValue.TopicID, nil
}

// AddTopicID adds i to the "topic_id" field.
func (m *TopicClusterMutation) AddTopicID(i int) {
	if m.addtopic_id != nil {
		*m.addtopic_id += i
	} else {
		m.addtopic_id = &i
	}
}

// AddedTopicID returns the value that was added to the "topic_id" field in this mutation.
func (m *TopicClusterMutation) AddedTopicID() (r int, exists bool) {
	v := m.addtopic_id
	if v == nil {
		return
	}
	return *v, true
}

// ResetTopicID resets all changes to the "topic_id" field.
func (m *TopicClusterMutation) ResetTopicID() {
	m.topic_id = nil
	m.addtopic_id = nil
}

// SetLabel sets the "label" field.
func (m *TopicClusterMutation) SetLabel(s string) {
	m.label = &s
}

// Label returns the value of the "label" field in the mutation.
func (m *TopicClusterMutation) Label() (r string, exists bool) {
	v := m.label
	if v == nil {
		return
	}
	return *v, true
}

// OldLabel returns the old "label" field's value of the TopicCluster entity.
// If the TopicCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicClusterMutation) OldLabel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabel: %w", err)
	}
	return oldValue.Label, nil
}

// ResetLabel resets all changes to the "label" field.
func (m *TopicClusterMutation) ResetLabel() {
	m.label = nil
}

// SetTopTerms sets the "top_terms" field.
func (m *TopicClusterMutation) SetTopTerms(value []map[string]interface{}) {
	m.top_terms = &value
	m.appendtop_terms = nil
}

// TopTerms returns the value of the "top_terms" field in the mutation.
func (m *TopicClusterMutation) TopTerms() (r []map[string]interface{}, exists bool) {
	v := m.top_terms
	if v == nil {
		return
	}
	return *v, true
}

// OldTopTerms returns the old "top_terms" field's value of the TopicCluster entity.
// If the TopicCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicClusterMutation) OldTopTerms(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopTerms is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopTerms requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopTerms: %w", err)
	}
	return oldValue.TopTerms, nil
}

// AppendTopTerms adds value to the "top_terms" field.
func (m *TopicClusterMutation) AppendTopTerms(value []map[string]interface{}) {
	m.appendtop_terms = append(m.appendtop_terms, value...)
}

// AppendedTopTerms returns the list of values that were appended to the "top_terms" field in this mutation.
func (m *TopicClusterMutation) AppendedTopTerms() ([]map[string]interface{}, bool) {
	if len(m.appendtop_terms) == 0 {
		return nil, false
	}
	return m.appendtop_terms, true
}

// ClearTopTerms clears the value of the "top_terms" field.
func (m *TopicClusterMutation) ClearTopTerms() {
	m.top_terms = nil
	m.appendtop_terms = nil
	m.clearedFields[topiccluster.FieldTopTerms] = struct{}{}
}

// TopTermsCleared returns if the "top_terms" field was cleared in this mutation.
func (m *TopicClusterMutation) TopTermsCleared() bool {
	_, ok := m.clearedFields[topiccluster.FieldTopTerms]
	return ok
}

// ResetTopTerms resets all changes to the "top_terms" field.
func (m *TopicClusterMutation) ResetTopTerms() {
	m.top_terms = nil
	m.appendtop_terms = nil
	delete(m.clearedFields, topiccluster.FieldTopTerms)
}

// SetSize sets the "size" field.
func (m *TopicClusterMutation) SetSize(i int) {
	m.size = &i
	m.addsize = nil
}

// Size returns the value of the "size" field in the mutation.
func (m *TopicClusterMutation) Size() (r int, exists bool) {
	v := m.size
	if v == nil {
		return
	}
	return *v, true
}

// OldSize returns the old "size" field's value of the TopicCluster entity.
// If the TopicCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicClusterMutation) OldSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSize: %w", err)
	}
	return oldValue.Size, nil
}

// AddSize adds i to the "size" field.
func (m *TopicClusterMutation) AddSize(i int) {
	if m.addsize != nil {
		*m.addsize += i
	} else {
		m.addsize = &i
	}
}

// AddedSize returns the value that was added to the "size" field in this mutation.
func (m *TopicClusterMutation) AddedSize() (r int, exists bool) {
	v := m.addsize
	if v == nil {
		return
	}
	return *v, true
}

// ResetSize resets all changes to the "size" field.
func (m *TopicClusterMutation) ResetSize() {
	m.size = nil
	m.addsize = nil
}

// SetDocumentIds sets the "document_ids" field.
func (m *TopicClusterMutation) SetDocumentIds(value map[string]interface{}) {
	m.document_ids = &value
}

// DocumentIds returns the value of the "document_ids" field in the mutation.
func (m *TopicClusterMutation) DocumentIds() (r map[string]interface{}, exists bool) {
	v := m.document_ids
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentIds returns the old "document_ids" field's value of the TopicCluster entity.
// If the TopicCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicClusterMutation) OldDocumentIds(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentIds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentIds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentIds: %w", err)
	}
	return oldValue.DocumentIds, nil
}

// ResetDocumentIds resets all changes to the "document_ids" field.
func (m *TopicClusterMutation) ResetDocumentIds() {
	m.document_ids = nil
}

// SetCentroidVectorID sets the "centroid_vector_id" field.
func (m *TopicClusterMutation) SetCentroidVectorID(s string) {
	m.centroid_vector_id = &s
}

// CentroidVectorID returns the value of the "centroid_vector_id" field in the mutation.
func (m *TopicClusterMutation) CentroidVectorID() (r string, exists bool) {
	v := m.centroid_vector_id
	if v == nil {
		return
	}
	return *v, true
}

// OldCentroidVectorID returns the old "centroid_vector_id" field's value of the TopicCluster entity.
// If the TopicCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicClusterMutation) OldCentroidVectorID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCentroidVectorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCentroidVectorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCentroidVectorID: %w", err)
	}
	return oldValue.CentroidVectorID, nil
}

// ClearCentroidVectorID clears the value of the "centroid_vector_id" field.
func (m *TopicClusterMutation) ClearCentroidVectorID() {
	m.centroid_vector_id = nil
	m.clearedFields[topiccluster.FieldCentroidVectorID] = struct{}{}
}

// CentroidVectorIDCleared returns if the "centroid_vector_id" field was cleared in this mutation.
func (m *TopicClusterMutation) CentroidVectorIDCleared() bool {
	_, ok := m.clearedFields[topiccluster.FieldCentroidVectorID]
	return ok
}

// ResetCentroidVectorID resets all changes to the "centroid_vector_id" field.
func (m *TopicClusterMutation) ResetCentroidVectorID() {
	m.centroid_vector_id = nil
	delete(m.clearedFields, topiccluster.FieldCentroidVectorID)
}

// SetCoherenceScore sets the "coherence_score" field.
func (m *TopicClusterMutation) SetCoherenceScore(f float64) {
	m.coherence_score = &f
	m.addcoherence_score = nil
}

// CoherenceScore returns the value of the "coherence_score" field in the mutation.
func (m *TopicClusterMutation) CoherenceScore() (r float64, exists bool) {
	v := m.coherence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCoherenceScore returns the old "coherence_score" field's value of the TopicCluster entity.
// If the TopicCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicClusterMutation) OldCoherenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCoherenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCoherenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCoherenceScore: %w", err)
	}
	return oldValue.CoherenceScore, nil
}

// AddCoherenceScore adds f to the "coherence_score" field.
func (m *TopicClusterMutation) AddCoherenceScore(f float64) {
	if m.addcoherence_score != nil {
		*m.addcoherence_score += f
	} else {
		m.addcoherence_score = &f
	}
}

// AddedCoherenceScore returns the value that was added to the "coherence_score" field in this mutation.
func (m *TopicClusterMutation) AddedCoherenceScore() (r float64, exists bool) {
	v := m.addcoherence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCoherenceScore resets all changes to the "coherence_score" field.
func (m *TopicClusterMutation) ResetCoherenceScore() {
	m.coherence_score = nil
	m.addcoherence_score = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicClusterMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicClusterMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TopicCluster entity.
// If the TopicCluster object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicClusterMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicClusterMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAnalysis clears the "analysis" edge to the TrendPipelineExecution entity.
func (m *TopicClusterMutation) ClearAnalysis() {
	m.clearedanalysis = true
	m.clearedFields[topiccluster.FieldAnalysisID] = struct{}{}
}

// AnalysisCleared reports if the "analysis" edge to the TrendPipelineExecution entity was cleared.
func (m *TopicClusterMutation) AnalysisCleared() bool {
	return m.clearedanalysis
}

// AnalysisIDs returns the "analysis" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalysisID instead. It exists only for internal usage by the builders.
func (m *TopicClusterMutation) AnalysisIDs() (ids []int) {
	if id := m.analysis; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalysis resets all changes to the "analysis" edge.
func (m *TopicClusterMutation) ResetAnalysis() {
	m.analysis = nil
	m.clearedanalysis = false
}

// AddTemporalMetricIDs adds the "temporal_metrics" edge to the TopicTemporalMetrics entity by ids.
func (m *TopicClusterMutation) AddTemporalMetricIDs(ids ...int) {
	if m.temporal_metrics == nil {
		m.temporal_metrics = make(map[int]struct{})
	}
	for i := range ids {
		m.temporal_metrics[ids[i]] = struct{}{}
	}
}

// ClearTemporalMetrics clears the "temporal_metrics" edge to the TopicTemporalMetrics entity.
func (m *TopicClusterMutation) ClearTemporalMetrics() {
	m.clearedtemporal_metrics = true
}

// TemporalMetricsCleared reports if the "temporal_metrics" edge to the TopicTemporalMetrics entity was cleared.
func (m *TopicClusterMutation) TemporalMetricsCleared() bool {
	return m.clearedtemporal_metrics
}

// RemoveTemporalMetricIDs removes the "temporal_metrics" edge to the TopicTemporalMetrics entity by IDs.
func (m *TopicClusterMutation) RemoveTemporalMetricIDs(ids ...int) {
	if m.removedtemporal_metrics == nil {
		m.removedtemporal_metrics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.temporal_metrics, ids[i])
		m.removedtemporal_metrics[ids[i]] = struct{}{}
	}
}

// RemovedTemporalMetrics returns the removed IDs of the "temporal_metrics" edge to the TopicTemporalMetrics entity.
func (m *TopicClusterMutation) RemovedTemporalMetricsIDs() (ids []int) {
	for id := range m.removedtemporal_metrics {
		ids = append(ids, id)
	}
	return
}

// TemporalMetricsIDs returns the "temporal_metrics" edge IDs in the mutation.
func (m *TopicClusterMutation) TemporalMetricsIDs() (ids []int) {
	for id := range m.temporal_metrics {
		ids = append(ids, id)
	}
	return
}

// ResetTemporalMetrics resets all changes to the "temporal_metrics" edge.
func (m *TopicClusterMutation) ResetTemporalMetrics() {
	m.temporal_metrics = nil
	m.clearedtemporal_metrics = false
	m.removedtemporal_metrics = nil
}

// AddTrendAnalysisIDs adds the "trend_analyses" edge to the TrendAnalysis entity by ids.
func (m *TopicClusterMutation) AddTrendAnalysisIDs(ids ...int) {
	if m.trend_analyses == nil {
		m.trend_analyses = make(map[int]struct{})
	}
	for i := range ids {
		m.trend_analyses[ids[i]] = struct{}{}
	}
}

// ClearTrendAnalyses clears the "trend_analyses" edge to the TrendAnalysis entity.
func (m *TopicClusterMutation) ClearTrendAnalyses() {
	m.clearedtrend_analyses = true
}

// TrendAnalysesCleared reports if the "trend_analyses" edge to the TrendAnalysis entity was cleared.
func (m *TopicClusterMutation) TrendAnalysesCleared() bool {
	return m.clearedtrend_analyses
}

// RemoveTrendAnalysisIDs removes the "trend_analyses" edge to the TrendAnalysis entity by IDs.
func (m *TopicClusterMutation) RemoveTrendAnalysisIDs(ids ...int) {
	if m.removedtrend_analyses == nil {
		m.removedtrend_analyses = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.trend_analyses, ids[i])
		m.removedtrend_analyses[ids[i]] = struct{}{}
	}
}

// RemovedTrendAnalyses returns the removed IDs of the "trend_analyses" edge to the TrendAnalysis entity.
func (m *TopicClusterMutation) RemovedTrendAnalysesIDs() (ids []int) {
	for id := range m.removedtrend_analyses {
		ids = append(ids, id)
	}
	return
}

// TrendAnalysesIDs returns the "trend_analyses" edge IDs in the mutation.
func (m *TopicClusterMutation) TrendAnalysesIDs() (ids []int) {
	for id := range m.trend_analyses {
		ids = append(ids, id)
	}
	return
}

// ResetTrendAnalyses resets all changes to the "trend_analyses" edge.
func (m *TopicClusterMutation) ResetTrendAnalyses() {
	m.trend_analyses = nil
	m.clearedtrend_analyses = false
	m.removedtrend_analyses = nil
}

// AddRecommendationIDs adds the "recommendations" edge to the ArticleRecommendation entity by ids.
func (m *TopicClusterMutation) AddRecommendationIDs(ids ...int) {
	if m.recommendations == nil {
		m.recommendations = make(map[int]struct{})
	}
	for i := range ids {
		m.recommendations[ids[i]] = struct{}{}
	}
}

// ClearRecommendations clears the "recommendations" edge to the ArticleRecommendation entity.
func (m *TopicClusterMutation) ClearRecommendations() {
	m.clearedrecommendations = true
}

// RecommendationsCleared reports if the "recommendations" edge to the ArticleRecommendation entity was cleared.
func (m *TopicClusterMutation) RecommendationsCleared() bool {
	return m.clearedrecommendations
}

// RemoveRecommendationIDs removes the "recommendations" edge to the ArticleRecommendation entity by IDs.
func (m *TopicClusterMutation) RemoveRecommendationIDs(ids ...int) {
	if m.removedrecommendations == nil {
		m.removedrecommendations = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.recommendations, ids[i])
		m.removedrecommendations[ids[i]] = struct{}{}
	}
}

// RemovedRecommendations returns the removed IDs of the "recommendations" edge to the ArticleRecommendation entity.
func (m *TopicClusterMutation) RemovedRecommendationsIDs() (ids []int) {
	for id := range m.removedrecommendations {
		ids = append(ids, id)
	}
	return
}

// RecommendationsIDs returns the "recommendations" edge IDs in the mutation.
func (m *TopicClusterMutation) RecommendationsIDs() (ids []int) {
	for id := range m.recommendations {
		ids = append(ids, id)
	}
	return
}

// ResetRecommendations resets all changes to the "recommendations" edge.
func (m *TopicClusterMutation) ResetRecommendations() {
	m.recommendations = nil
	m.clearedrecommendations = false
	m.removedrecommendations = nil
}

// AddGapIDs adds the "gaps" edge to the EditorialGap entity by ids.
func (m *TopicClusterMutation) AddGapIDs(ids ...int) {
	if m.gaps == nil {
		m.gaps = make(map[int]struct{})
	}
	for i := range ids {
		m.gaps[ids[i]] = struct{}{}
	}
}

// ClearGaps clears the "gaps" edge to the EditorialGap entity.
func (m *TopicClusterMutation) ClearGaps() {
	m.clearedgaps = true
}

// GapsCleared reports if the "gaps" edge to the EditorialGap entity was cleared.
func (m *TopicClusterMutation) GapsCleared() bool {
	return m.clearedgaps
}

// RemoveGapIDs removes the "gaps" edge to the EditorialGap entity by IDs.
func (m *TopicClusterMutation) RemoveGapIDs(ids ...int) {
	if m.removedgaps == nil {
		m.removedgaps = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.gaps, ids[i])
		m.removedgaps[ids[i]] = struct{}{}
	}
}

// RemovedGaps returns the removed IDs of the "gaps" edge to the EditorialGap entity.
func (m *TopicClusterMutation) RemovedGapsIDs() (ids []int) {
	for id := range m.removedgaps {
		ids = append(ids, id)
	}
	return
}

// GapsIDs returns the "gaps" edge IDs in the mutation.
func (m *TopicClusterMutation) GapsIDs() (ids []int) {
	for id := range m.gaps {
		ids = append(ids, id)
	}
	return
}

// ResetGaps resets all changes to the "gaps" edge.
func (m *TopicClusterMutation) ResetGaps() {
	m.gaps = nil
	m.clearedgaps = false
	m.removedgaps = nil
}

// AddStrengthIDs adds the "strengths" edge to the ClientStrength entity by ids.
func (m *TopicClusterMutation) AddStrengthIDs(ids ...int) {
	if m.strengths == nil {
		m.strengths = make(map[int]struct{})
	}
	for i := range ids {
		m.strengths[ids[i]] = struct{}{}
	}
}

// ClearStrengths clears the "strengths" edge to the ClientStrength entity.
func (m *TopicClusterMutation) ClearStrengths() {
	m.clearedstrengths = true
}

// StrengthsCleared reports if the "strengths" edge to the ClientStrength entity was cleared.
func (m *TopicClusterMutation) StrengthsCleared() bool {
	return m.clearedstrengths
}

// RemoveStrengthIDs removes the "strengths" edge to the ClientStrength entity by IDs.
func (m *TopicClusterMutation) RemoveStrengthIDs(ids ...int) {
	if m.removedstrengths == nil {
		m.removedstrengths = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.strengths, ids[i])
		m.removedstrengths[ids[i]] = struct{}{}
	}
}

// RemovedStrengths returns the removed IDs of the "strengths" edge to the ClientStrength entity.
func (m *TopicClusterMutation) RemovedStrengthsIDs() (ids []int) {
	for id := range m.removedstrengths {
		ids = append(ids, id)
	}
	return
}

// StrengthsIDs returns the "strengths" edge IDs in the mutation.
func (m *TopicClusterMutation) StrengthsIDs() (ids []int) {
	for id := range m.strengths {
		ids = append(ids, id)
	}
	return
}

// ResetStrengths resets all changes to the "strengths" edge.
func (m *TopicClusterMutation) ResetStrengths() {
	m.strengths = nil
	m.clearedstrengths = false
	m.removedstrengths = nil
}

// AddCoverageAnalysisIDs adds the "coverage_analyses" edge to the CoverageAnalysis entity by ids.
func (m *TopicClusterMutation) AddCoverageAnalysisIDs(ids ...int) {
	if m.coverage_analyses == nil {
		m.coverage_analyses = make(map[int]struct{})
	}
	for i := range ids {
		m.coverage_analyses[ids[i]] = struct{}{}
	}
}

// ClearCoverageAnalyses clears the "coverage_analyses" edge to the CoverageAnalysis entity.
func (m *TopicClusterMutation) ClearCoverageAnalyses() {
	m.clearedcoverage_analyses = true
}

// CoverageAnalysesCleared reports if the "coverage_analyses" edge to the CoverageAnalysis entity was cleared.
func (m *TopicClusterMutation) CoverageAnalysesCleared() bool {
	return m.clearedcoverage_analyses
}

// RemoveCoverageAnalysisIDs removes the "coverage_analyses" edge to the CoverageAnalysis entity by IDs.
func (m *TopicClusterMutation) RemoveCoverageAnalysisIDs(ids ...int) {
	if m.removedcoverage_analyses == nil {
		m.removedcoverage_analyses = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.coverage_analyses, ids[i])
		m.removedcoverage_analyses[ids[i]] = struct{}{}
	}
}

// RemovedCoverageAnalyses returns the removed IDs of the "coverage_analyses" edge to the CoverageAnalysis entity.
func (m *TopicClusterMutation) RemovedCoverageAnalysesIDs() (ids []int) {
	for id := range m.removedcoverage_analyses {
		ids = append(ids, id)
	}
	return
}

// CoverageAnalysesIDs returns the "coverage_analyses" edge IDs in the mutation.
func (m *TopicClusterMutation) CoverageAnalysesIDs() (ids []int) {
	for id := range m.coverage_analyses {
		ids = append(ids, id)
	}
	return
}

// ResetCoverageAnalyses resets all changes to the "coverage_analyses" edge.
func (m *TopicClusterMutation) ResetCoverageAnalyses() {
	m.coverage_analyses = nil
	m.clearedcoverage_analyses = false
	m.removedcoverage_analyses = nil
}

// Where appends a list predicates to the TopicClusterMutation builder.
func (m *TopicClusterMutation) Where(ps ...predicate.TopicCluster) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicClusterMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicClusterMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicCluster, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicClusterMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicClusterMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicCluster).
func (m *TopicClusterMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicClusterMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.analysis != nil {
		fields = append(fields, topiccluster.FieldAnalysisID)
	}
	if m.topic_id != nil {
		fields = append(fields, topiccluster.FieldTopicID)
	}
	if m.label != nil {
		fields = append(fields, topiccluster.FieldLabel)
	}
	if m.top_terms != nil {
		fields = append(fields, topiccluster.FieldTopTerms)
	}
	if m.size != nil {
		fields = append(fields, topiccluster.FieldSize)
	}
	if m.document_ids != nil {
		fields = append(fields, topiccluster.FieldDocumentIds)
	}
	if m.centroid_vector_id != nil {
		fields = append(fields, topiccluster.FieldCentroidVectorID)
	}
	if m.coherence_score != nil {
		fields = append(fields, topiccluster.FieldCoherenceScore)
	}
	if m.created_at != nil {
		fields = append(fields, topiccluster.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicClusterMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topiccluster.FieldAnalysisID:
		return m.AnalysisID()
	case topiccluster.FieldTopicID:
		return m.TopicID()
	case topiccluster.FieldLabel:
		return m.Label()
	case topiccluster.FieldTopTerms:
		return m.TopTerms()
	case topiccluster.FieldSize:
		return m.Size()
	case topiccluster.FieldDocumentIds:
		return m.DocumentIds()
	case topiccluster.FieldCentroidVectorID:
		return m.CentroidVectorID()
	case topiccluster.FieldCoherenceScore:
		return m.CoherenceScore()
	case topiccluster.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicClusterMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topiccluster.FieldAnalysisID:
		return m.OldAnalysisID(ctx)
	case topiccluster.FieldTopicID:
		return m.OldTopicID(ctx)
	case topiccluster.FieldLabel:
		return m.OldLabel(ctx)
	case topiccluster.FieldTopTerms:
		return m.OldTopTerms(ctx)
	case topiccluster.FieldSize:
		return m.OldSize(ctx)
	case topiccluster.FieldDocumentIds:
		return m.OldDocumentIds(ctx)
	case topiccluster.FieldCentroidVectorID:
		return m.OldCentroidVectorID(ctx)
	case topiccluster.FieldCoherenceScore:
		return m.OldCoherenceScore(ctx)
	case topiccluster.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicCluster field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicClusterMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topiccluster.FieldAnalysisID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisID(v)
		return nil
	case topiccluster.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicID(v)
		return nil
	case topiccluster.FieldLabel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabel(v)
		return nil
	case topiccluster.FieldTopTerms:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopTerms(v)
		return nil
	case topiccluster.FieldSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSize(v)
		return nil
	case topiccluster.FieldDocumentIds:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentIds(v)
		return nil
	case topiccluster.FieldCentroidVectorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCentroidVectorID(v)
		return nil
	case topiccluster.FieldCoherenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCoherenceScore(v)
		return nil
	case topiccluster.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicCluster field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicClusterMutation) AddedFields() []string {
	var fields []string
	if m.addtopic_id != nil {
		fields = append(fields, topiccluster.FieldTopicID)
	}
	if m.addsize != nil {
		fields = append(fields, topiccluster.FieldSize)
	}
	if m.addcoherence_score != nil {
		fields = append(fields, topiccluster.FieldCoherenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicClusterMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topiccluster.FieldTopicID:
		return m.AddedTopicID()
	case topiccluster.FieldSize:
		return m.AddedSize()
	case topiccluster.FieldCoherenceScore:
		return m.AddedCoherenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicClusterMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topiccluster.FieldTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTopicID(v)
		return nil
	case topiccluster.FieldSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSize(v)
		return nil
	case topiccluster.FieldCoherenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCoherenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown TopicCluster numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicClusterMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topiccluster.FieldTopTerms) {
		fields = append(fields, topiccluster.FieldTopTerms)
	}
	if m.FieldCleared(topiccluster.FieldCentroidVectorID) {
		fields = append(fields, topiccluster.FieldCentroidVectorID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicClusterMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicClusterMutation) ClearField(name string) error {
	switch name {
	case topiccluster.FieldTopTerms:
		m.ClearTopTerms()
		return nil
	case topiccluster.FieldCentroidVectorID:
		m.ClearCentroidVectorID()
		return nil
	}
	return fmt.Errorf("unknown TopicCluster nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicClusterMutation) ResetField(name string) error {
	switch name {
	case topiccluster.FieldAnalysisID:
		m.ResetAnalysisID()
		return nil
	case topiccluster.FieldTopicID:
		m.ResetTopicID()
		return nil
	case topiccluster.FieldLabel:
		m.ResetLabel()
		return nil
	case topiccluster.FieldTopTerms:
		m.ResetTopTerms()
		return nil
	case topiccluster.FieldSize:
		m.ResetSize()
		return nil
	case topiccluster.FieldDocumentIds:
		m.ResetDocumentIds()
		return nil
	case topiccluster.FieldCentroidVectorID:
		m.ResetCentroidVectorID()
		return nil
	case topiccluster.FieldCoherenceScore:
		m.ResetCoherenceScore()
		return nil
	case topiccluster.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicCluster field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicClusterMutation) AddedEdges() []string {
	edges := make([]string, 0, 7)
	if m.analysis != nil {
		edges = append(edges, topiccluster.EdgeAnalysis)
	}
	if m.temporal_metrics != nil {
		edges = append(edges, topiccluster.EdgeTemporalMetrics)
	}
	if m.trend_analyses != nil {
		edges = append(edges, topiccluster.EdgeTrendAnalyses)
	}
	if m.recommendations != nil {
		edges = append(edges, topiccluster.EdgeRecommendations)
	}
	if m.gaps != nil {
		edges = append(edges, topiccluster.EdgeGaps)
	}
	if m.strengths != nil {
		edges = append(edges, topiccluster.EdgeStrengths)
	}
	if m.coverage_analyses != nil {
		edges = append(edges, topiccluster.EdgeCoverageAnalyses)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicClusterMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topiccluster.EdgeAnalysis:
		if id := m.analysis; id != nil {
			return []ent.Value{*id}
		}
	case topiccluster.EdgeTemporalMetrics:
		ids := make([]ent.Value, 0, len(m.temporal_metrics))
		for id := range m.temporal_metrics {
			ids = append(ids, id)
		}
		return ids
	case topiccluster.EdgeTrendAnalyses:
		ids := make([]ent.Value, 0, len(m.trend_analyses))
		for id := range m.trend_analyses {
			ids = append(ids, id)
		}
		return ids
	case topiccluster.EdgeRecommendations:
		ids := make([]ent.Value, 0, len(m.recommendations))
		for id := range m.recommendations {
			ids = append(ids, id)
		}
		return ids
	case topiccluster.EdgeGaps:
		ids := make([]ent.Value, 0, len(m.gaps))
		for id := range m.gaps {
			ids = append(ids, id)
		}
		return ids
	case topiccluster.EdgeStrengths:
		ids := make([]ent.Value, 0, len(m.strengths))
		for id := range m.strengths {
			ids = append(ids, id)
		}
		return ids
	case topiccluster.EdgeCoverageAnalyses:
		ids := make([]ent.Value, 0, len(m.coverage_analyses))
		for id := range m.coverage_analyses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicClusterMutation) RemovedEdges() []string {
	edges := make([]string, 0, 7)
	if m.removedtemporal_metrics != nil {
		edges = append(edges, topiccluster.EdgeTemporalMetrics)
	}
	if m.removedtrend_analyses != nil {
		edges = append(edges, topiccluster.EdgeTrendAnalyses)
	}
	if m.removedrecommendations != nil {
		edges = append(edges, topiccluster.EdgeRecommendations)
	}
	if m.removedgaps != nil {
		edges = append(edges, topiccluster.EdgeGaps)
	}
	if m.removedstrengths != nil {
		edges = append(edges, topiccluster.EdgeStrengths)
	}
	if m.removedcoverage_analyses != nil {
		edges = append(edges, topiccluster.EdgeCoverageAnalyses)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicClusterMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case topiccluster.EdgeTemporalMetrics:
		ids := make([]ent.Value, 0, len(m.removedtemporal_metrics))
		for id := range m.removedtemporal_metrics {
			ids = append(ids, id)
		}
		return ids
	case topiccluster.EdgeTrendAnalyses:
		ids := make([]ent.Value, 0, len(m.removedtrend_analyses))
		for id := range m.removedtrend_analyses {
			ids = append(ids, id)
		}
		return ids
	case topiccluster.EdgeRecommendations:
		ids := make([]ent.Value, 0, len(m.removedrecommendations))
		for id := range m.removedrecommendations {
			ids = append(ids, id)
		}
		return ids
	case topiccluster.EdgeGaps:
		ids := make([]ent.Value, 0, len(m.removedgaps))
		for id := range m.removedgaps {
			ids = append(ids, id)
		}
		return ids
	case topiccluster.EdgeStrengths:
		ids := make([]ent.Value, 0, len(m.removedstrengths))
		for id := range m.removedstrengths {
			ids = append(ids, id)
		}
		return ids
	case topiccluster.EdgeCoverageAnalyses:
		ids := make([]ent.Value, 0, len(m.removedcoverage_analyses))
		for id := range m.removedcoverage_analyses {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicClusterMutation) ClearedEdges() []string {
	edges := make([]string, 0, 7)
	if m.clearedanalysis {
		edges = append(edges, topiccluster.EdgeAnalysis)
	}
	if m.clearedtemporal_metrics {
		edges = append(edges, topiccluster.EdgeTemporalMetrics)
	}
	if m.clearedtrend_analyses {
		edges = append(edges, topiccluster.EdgeTrendAnalyses)
	}
	if m.clearedrecommendations {
		edges = append(edges, topiccluster.EdgeRecommendations)
	}
	if m.clearedgaps {
		edges = append(edges, topiccluster.EdgeGaps)
	}
	if m.clearedstrengths {
		edges = append(edges, topiccluster.EdgeStrengths)
	}
	if m.clearedcoverage_analyses {
		edges = append(edges, topiccluster.EdgeCoverageAnalyses)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicClusterMutation) EdgeCleared(name string) bool {
	switch name {
	case topiccluster.EdgeAnalysis:
		return m.clearedanalysis
	case topiccluster.EdgeTemporalMetrics:
		return m.clearedtemporal_metrics
	case topiccluster.EdgeTrendAnalyses:
		return m.clearedtrend_analyses
	case topiccluster.EdgeRecommendations:
		return m.clearedrecommendations
	case topiccluster.EdgeGaps:
		return m.clearedgaps
	case topiccluster.EdgeStrengths:
		return m.clearedstrengths
	case topiccluster.EdgeCoverageAnalyses:
		return m.clearedcoverage_analyses
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicClusterMutation) ClearEdge(name string) error {
	switch name {
	case topiccluster.EdgeAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown TopicCluster unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicClusterMutation) ResetEdge(name string) error {
	switch name {
	case topiccluster.EdgeAnalysis:
		m.ResetAnalysis()
		return nil
	case topiccluster.EdgeTemporalMetrics:
		m.ResetTemporalMetrics()
		return nil
	case topiccluster.EdgeTrendAnalyses:
		m.ResetTrendAnalyses()
		return nil
	case topiccluster.EdgeRecommendations:
		m.ResetRecommendations()
		return nil
	case topiccluster.EdgeGaps:
		m.ResetGaps()
		return nil
	case topiccluster.EdgeStrengths:
		m.ResetStrengths()
		return nil
	case topiccluster.EdgeCoverageAnalyses:
		m.ResetCoverageAnalyses()
		return nil
	}
	return fmt.Errorf("unknown TopicCluster edge %s", name)
}

// TopicOutlierMutation represents an operation that mutates the TopicOutlier nodes in the graph.
type TopicOutlierMutation struct {
	config
	op                    Op
	typ                   string
	id                    *int
	document_id           *string
	article_id            *int
	addarticle_id         *int
	nearest_topic_id      *int
	addnearest_topic_id   *int
	potential_category    *string
	embedding_distance    *float64
	addembedding_distance *float64
	created_at            *time.Time
	clearedFields         map[string]struct{}
	analysis              *int
	clearedanalysis       bool
	done                  bool
	oldValue              func(context.Context) (*TopicOutlier, error)
	predicates            []predicate.TopicOutlier
}

var _ ent.Mutation = (*TopicOutlierMutation)(nil)

// topicoutlierOption allows management of the mutation configuration using functional options.
type topicoutlierOption func(*TopicOutlierMutation)

// newTopicOutlierMutation creates new mutation for the TopicOutlier entity.
func newTopicOutlierMutation(c config, op Op, opts ...topicoutlierOption) *TopicOutlierMutation {
	m := &TopicOutlierMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicOutlier,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicOutlierID sets the ID field of the mutation.
func withTopicOutlierID(id int) topicoutlierOption {
	return func(m *TopicOutlierMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicOutlier
		)
		m.oldValue = func(ctx context.Context) (*TopicOutlier, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicOutlier.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicOutlier sets the old TopicOutlier of the mutation.
func withTopicOutlier(node *TopicOutlier) topicoutlierOption {
	return func(m *TopicOutlierMutation) {
		m.oldValue = func(context.Context) (*TopicOutlier, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicOutlierMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicOutlierMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicOutlierMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicOutlierMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicOutlier.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetAnalysisID sets the "analysis_id" field.
func (m *TopicOutlierMutation) SetAnalysisID(i int) {
	m.analysis = &i
}

// AnalysisID returns the value of the "analysis_id" field in the mutation.
func (m *TopicOutlierMutation) AnalysisID() (r int, exists bool) {
	v := m.analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldAnalysisID returns the old "analysis_id" field's value of the TopicOutlier entity.
// If the TopicOutlier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicOutlierMutation) OldAnalysisID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAnalysisID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAnalysisID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAnalysisID: %w", err)
	}
	return oldValue.AnalysisID, nil
}

// ResetAnalysisID resets all changes to the "analysis_id" field.
func (m *TopicOutlierMutation) ResetAnalysisID() {
	m.analysis = nil
}

// SetDocumentID sets the "document_id" field.
func (m *TopicOutlierMutation) SetDocumentID(s string) {
	m.document_id = &s
}

// DocumentID returns the value of the "document_id" field in the mutation.
func (m *TopicOutlierMutation) DocumentID() (r string, exists bool) {
	v := m.document_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDocumentID returns the old "document_id" field's value of the TopicOutlier entity.
// If the TopicOutlier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicOutlierMutation) OldDocumentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDocumentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDocumentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDocumentID: %w", err)
	}
	return oldValue.DocumentID, nil
}

// ResetDocumentID resets all changes to the "document_id" field.
func (m *TopicOutlierMutation) ResetDocumentID() {
	m.document_id = nil
}

// SetArticleID sets the "article_id" field.
func (m *TopicOutlierMutation) SetArticleID(i int) {
	m.article_id = &i
	m.addarticle_id = nil
}

// ArticleID returns the value of the "article_id" field in the mutation.
func (m *TopicOutlierMutation) ArticleID() (r int, exists bool) {
	v := m.article_id
	if v == nil {
		return
	}
	return *v, true
}

// OldArticleID returns the old "article_id" field's value of the TopicOutlier entity.
// If the TopicOutlier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicOutlierMutation) OldArticleID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldArticleID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldArticleID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldArticleID: %w", err)
	}
	return oldValue.ArticleID, nil
}

// AddArticleID adds i to the "article_id" field.
func (m *TopicOutlierMutation) AddArticleID(i int) {
	if m.addarticle_id != nil {
		*m.addarticle_id += i
	} else {
		m.addarticle_id = &i
	}
}

// AddedArticleID returns the value that was added to the "article_id" field in this mutation.
func (m *TopicOutlierMutation) AddedArticleID() (r int, exists bool) {
	v := m.addarticle_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearArticleID clears the value of the "article_id" field.
func (m *TopicOutlierMutation) ClearArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
	m.clearedFields[topicoutlier.FieldArticleID] = struct{}{}
}

// ArticleIDCleared returns if the "article_id" field was cleared in this mutation.
func (m *TopicOutlierMutation) ArticleIDCleared() bool {
	_, ok := m.clearedFields[topicoutlier.FieldArticleID]
	return ok
}

// ResetArticleID resets all changes to the "article_id" field.
func (m *TopicOutlierMutation) ResetArticleID() {
	m.article_id = nil
	m.addarticle_id = nil
	delete(m.clearedFields, topicoutlier.FieldArticleID)
}

// SetNearestTopicID sets the "nearest_topic_id" field.
func (m *TopicOutlierMutation) SetNearestTopicID(i int) {
	m.nearest_topic_id = &i
	m.addnearest_topic_id = nil
}

// NearestTopicID returns the value of the "nearest_topic_id" field in the mutation.
func (m *TopicOutlierMutation) NearestTopicID() (r int, exists bool) {
	v := m.nearest_topic_id
	if v == nil {
		return
	}
	return *v, true
}

// OldNearestTopicID returns the old "nearest_topic_id" field's value of the TopicOutlier entity.
// If the TopicOutlier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicOutlierMutation) OldNearestTopicID(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNearestTopicID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNearestTopicID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNearestTopicID: %w", err)
	}
	return oldValue.NearestTopicID, nil
}

// AddNearestTopicID adds i to the "nearest_topic_id" field.
func (m *TopicOutlierMutation) AddNearestTopicID(i int) {
	if m.addnearest_topic_id != nil {
		*m.addnearest_topic_id += i
	} else {
		m.addnearest_topic_id = &i
	}
}

// AddedNearestTopicID returns the value that was added to the "nearest_topic_id" field in this mutation.
func (m *TopicOutlierMutation) AddedNearestTopicID() (r int, exists bool) {
	v := m.addnearest_topic_id
	if v == nil {
		return
	}
	return *v, true
}

// ClearNearestTopicID clears the value of the "nearest_topic_id" field.
func (m *TopicOutlierMutation) ClearNearestTopicID() {
	m.nearest_topic_id = nil
	m.addnearest_topic_id = nil
	m.clearedFields[topicoutlier.FieldNearestTopicID] = struct{}{}
}

// NearestTopicIDCleared returns if the "nearest_topic_id" field was cleared in this mutation.
func (m *TopicOutlierMutation) NearestTopicIDCleared() bool {
	_, ok := m.clearedFields[topicoutlier.FieldNearestTopicID]
	return ok
}

// ResetNearestTopicID resets all changes to the "nearest_topic_id" field.
func (m *TopicOutlierMutation) ResetNearestTopicID() {
	m.nearest_topic_id = nil
	m.addnearest_topic_id = nil
	delete(m.clearedFields, topicoutlier.FieldNearestTopicID)
}

// SetPotentialCategory sets the "potential_category" field.
func (m *TopicOutlierMutation) SetPotentialCategory(s string) {
	m.potential_category = &s
}

// PotentialCategory returns the value of the "potential_category" field in the mutation.
func (m *TopicOutlierMutation) PotentialCategory() (r string, exists bool) {
	v := m.potential_category
	if v == nil {
		return
	}
	return *v, true
}

// OldPotentialCategory returns the old "potential_category" field's value of the TopicOutlier entity.
// If the TopicOutlier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicOutlierMutation) OldPotentialCategory(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPotentialCategory is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPotentialCategory requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPotentialCategory: %w", err)
	}
	return oldValue.PotentialCategory, nil
}

// ClearPotentialCategory clears the value of the "potential_category" field.
func (m *TopicOutlierMutation) ClearPotentialCategory() {
	m.potential_category = nil
	m.clearedFields[topicoutlier.FieldPotentialCategory] = struct{}{}
}

// PotentialCategoryCleared returns if the "potential_category" field was cleared in this mutation.
func (m *TopicOutlierMutation) PotentialCategoryCleared() bool {
	_, ok := m.clearedFields[topicoutlier.FieldPotentialCategory]
	return ok
}

// ResetPotentialCategory resets all changes to the "potential_category" field.
func (m *TopicOutlierMutation) ResetPotentialCategory() {
	m.potential_category = nil
	delete(m.clearedFields, topicoutlier.FieldPotentialCategory)
}

// SetEmbeddingDistance sets the "embedding_distance" field.
func (m *TopicOutlierMutation) SetEmbeddingDistance(f float64) {
	m.embedding_distance = &f
	m.addembedding_distance = nil
}

// EmbeddingDistance returns the value of the "embedding_distance" field in the mutation.
func (m *TopicOutlierMutation) EmbeddingDistance() (r float64, exists bool) {
	v := m.embedding_distance
	if v == nil {
		return
	}
	return *v, true
}

// OldEmbeddingDistance returns the old "embedding_distance" field's value of the TopicOutlier entity.
// If the TopicOutlier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicOutlierMutation) OldEmbeddingDistance(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmbeddingDistance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmbeddingDistance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmbeddingDistance: %w", err)
	}
	return oldValue.EmbeddingDistance, nil
}

// AddEmbeddingDistance adds f to the "embedding_distance" field.
func (m *TopicOutlierMutation) AddEmbeddingDistance(f float64) {
	if m.addembedding_distance != nil {
		*m.addembedding_distance += f
	} else {
		m.addembedding_distance = &f
	}
}

// AddedEmbeddingDistance returns the value that was added to the "embedding_distance" field in this mutation.
func (m *TopicOutlierMutation) AddedEmbeddingDistance() (r float64, exists bool) {
	v := m.addembedding_distance
	if v == nil {
		return
	}
	return *v, true
}

// ResetEmbeddingDistance resets all changes to the "embedding_distance" field.
func (m *TopicOutlierMutation) ResetEmbeddingDistance() {
	m.embedding_distance = nil
	m.addembedding_distance = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicOutlierMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicOutlierMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TopicOutlier entity.
// If the TopicOutlier object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicOutlierMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicOutlierMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearAnalysis clears the "analysis" edge to the TrendPipelineExecution entity.
func (m *TopicOutlierMutation) ClearAnalysis() {
	m.clearedanalysis = true
	m.clearedFields[topicoutlier.FieldAnalysisID] = struct{}{}
}

// AnalysisCleared reports if the "analysis" edge to the TrendPipelineExecution entity was cleared.
func (m *TopicOutlierMutation) AnalysisCleared() bool {
	return m.clearedanalysis
}

// AnalysisIDs returns the "analysis" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// AnalysisID instead. It exists only for internal usage by the builders.
func (m *TopicOutlierMutation) AnalysisIDs() (ids []int) {
	if id := m.analysis; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetAnalysis resets all changes to the "analysis" edge.
func (m *TopicOutlierMutation) ResetAnalysis() {
	m.analysis = nil
	m.clearedanalysis = false
}

// Where appends a list predicates to the TopicOutlierMutation builder.
func (m *TopicOutlierMutation) Where(ps ...predicate.TopicOutlier) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicOutlierMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicOutlierMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicOutlier, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicOutlierMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicOutlierMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicOutlier).
func (m *TopicOutlierMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicOutlierMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.analysis != nil {
		fields = append(fields, topicoutlier.FieldAnalysisID)
	}
	if m.document_id != nil {
		fields = append(fields, topicoutlier.FieldDocumentID)
	}
	if m.article_id != nil {
		fields = append(fields, topicoutlier.FieldArticleID)
	}
	if m.nearest_topic_id != nil {
		fields = append(fields, topicoutlier.FieldNearestTopicID)
	}
	if m.potential_category != nil {
		fields = append(fields, topicoutlier.FieldPotentialCategory)
	}
	if m.embedding_distance != nil {
		fields = append(fields, topicoutlier.FieldEmbeddingDistance)
	}
	if m.created_at != nil {
		fields = append(fields, topicoutlier.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicOutlierMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topicoutlier.FieldAnalysisID:
		return m.AnalysisID()
	case topicoutlier.FieldDocumentID:
		return m.DocumentID()
	case topicoutlier.FieldArticleID:
		return m.ArticleID()
	case topicoutlier.FieldNearestTopicID:
		return m.NearestTopicID()
	case topicoutlier.FieldPotentialCategory:
		return m.PotentialCategory()
	case topicoutlier.FieldEmbeddingDistance:
		return m.EmbeddingDistance()
	case topicoutlier.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicOutlierMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topicoutlier.FieldAnalysisID:
		return m.OldAnalysisID(ctx)
	case topicoutlier.FieldDocumentID:
		return m.OldDocumentID(ctx)
	case topicoutlier.FieldArticleID:
		return m.OldArticleID(ctx)
	case topicoutlier.FieldNearestTopicID:
		return m.OldNearestTopicID(ctx)
	case topicoutlier.FieldPotentialCategory:
		return m.OldPotentialCategory(ctx)
	case topicoutlier.FieldEmbeddingDistance:
		return m.OldEmbeddingDistance(ctx)
	case topicoutlier.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicOutlier field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicOutlierMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topicoutlier.FieldAnalysisID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAnalysisID(v)
		return nil
	case topicoutlier.FieldDocumentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDocumentID(v)
		return nil
	case topicoutlier.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetArticleID(v)
		return nil
	case topicoutlier.FieldNearestTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNearestTopicID(v)
		return nil
	case topicoutlier.FieldPotentialCategory:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPotentialCategory(v)
		return nil
	case topicoutlier.FieldEmbeddingDistance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmbeddingDistance(v)
		return nil
	case topicoutlier.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicOutlier field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicOutlierMutation) AddedFields() []string {
	var fields []string
	if m.addarticle_id != nil {
		fields = append(fields, topicoutlier.FieldArticleID)
	}
	if m.addnearest_topic_id != nil {
		fields = append(fields, topicoutlier.FieldNearestTopicID)
	}
	if m.addembedding_distance != nil {
		fields = append(fields, topicoutlier.FieldEmbeddingDistance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicOutlierMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topicoutlier.FieldArticleID:
		return m.AddedArticleID()
	case topicoutlier.FieldNearestTopicID:
		return m.AddedNearestTopicID()
	case topicoutlier.FieldEmbeddingDistance:
		return m.AddedEmbeddingDistance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicOutlierMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topicoutlier.FieldArticleID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddArticleID(v)
		return nil
	case topicoutlier.FieldNearestTopicID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNearestTopicID(v)
		return nil
	case topicoutlier.FieldEmbeddingDistance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddEmbeddingDistance(v)
		return nil
	}
	return fmt.Errorf("unknown TopicOutlier numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicOutlierMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topicoutlier.FieldArticleID) {
		fields = append(fields, topicoutlier.FieldArticleID)
	}
	if m.FieldCleared(topicoutlier.FieldNearestTopicID) {
		fields = append(fields, topicoutlier.FieldNearestTopicID)
	}
	if m.FieldCleared(topicoutlier.FieldPotentialCategory) {
		fields = append(fields, topicoutlier.FieldPotentialCategory)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicOutlierMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicOutlierMutation) ClearField(name string) error {
	switch name {
	case topicoutlier.FieldArticleID:
		m.ClearArticleID()
		return nil
	case topicoutlier.FieldNearestTopicID:
		m.ClearNearestTopicID()
		return nil
	case topicoutlier.FieldPotentialCategory:
		m.ClearPotentialCategory()
		return nil
	}
	return fmt.Errorf("unknown TopicOutlier nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicOutlierMutation) ResetField(name string) error {
	switch name {
	case topicoutlier.FieldAnalysisID:
		m.ResetAnalysisID()
		return nil
	case topicoutlier.FieldDocumentID:
		m.ResetDocumentID()
		return nil
	case topicoutlier.FieldArticleID:
		m.ResetArticleID()
		return nil
	case topicoutlier.FieldNearestTopicID:
		m.ResetNearestTopicID()
		return nil
	case topicoutlier.FieldPotentialCategory:
		m.ResetPotentialCategory()
		return nil
	case topicoutlier.FieldEmbeddingDistance:
		m.ResetEmbeddingDistance()
		return nil
	case topicoutlier.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicOutlier field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicOutlierMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.analysis != nil {
		edges = append(edges, topicoutlier.EdgeAnalysis)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicOutlierMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topicoutlier.EdgeAnalysis:
		if id := m.analysis; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicOutlierMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicOutlierMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicOutlierMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedanalysis {
		edges = append(edges, topicoutlier.EdgeAnalysis)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicOutlierMutation) EdgeCleared(name string) bool {
	switch name {
	case topicoutlier.EdgeAnalysis:
		return m.clearedanalysis
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicOutlierMutation) ClearEdge(name string) error {
	switch name {
	case topicoutlier.EdgeAnalysis:
		m.ClearAnalysis()
		return nil
	}
	return fmt.Errorf("unknown TopicOutlier unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicOutlierMutation) ResetEdge(name string) error {
	switch name {
	case topicoutlier.EdgeAnalysis:
		m.ResetAnalysis()
		return nil
	}
	return fmt.Errorf("unknown TopicOutlier edge %s", name)
}

// TopicTemporalMetricsMutation represents an operation that mutates the TopicTemporalMetrics nodes in the graph.
type TopicTemporalMetricsMutation struct {
	config
	op                  Op
	typ                 string
	id                  *int
	window_start        *time.Time
	window_end          *time.Time
	volume              *int
	addvolume           *int
	velocity            *float64
	addvelocity         *float64
	velocity_trend      *string
	freshness_ratio     *float64
	addfreshness_ratio  *float64
	source_diversity    *int
	addsource_diversity *int
	cohesion_score      *float64
	addcohesion_score   *float64
	potential_score     *float64
	addpotential_score  *float64
	drift_detected      *bool
	drift_distance      *float64
	adddrift_distance   *float64
	created_at          *time.Time
	clearedFields       map[string]struct{}
	cluster             *int
	clearedcluster      bool
	done                bool
	oldValue            func(context.Context) (*TopicTemporalMetrics, error)
	predicates          []predicate.TopicTemporalMetrics
}

var _ ent.Mutation = (*TopicTemporalMetricsMutation)(nil)

// topictemporalmetricsOption allows management of the mutation configuration using functional options.
type topictemporalmetricsOption func(*TopicTemporalMetricsMutation)

// newTopicTemporalMetricsMutation creates new mutation for the TopicTemporalMetrics entity.
func newTopicTemporalMetricsMutation(c config, op Op, opts ...topictemporalmetricsOption) *TopicTemporalMetricsMutation {
	m := &TopicTemporalMetricsMutation{
		config:        c,
		op:            op,
		typ:           TypeTopicTemporalMetrics,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTopicTemporalMetricsID sets the ID field of the mutation.
func withTopicTemporalMetricsID(id int) topictemporalmetricsOption {
	return func(m *TopicTemporalMetricsMutation) {
		var (
			err   error
			once  sync.Once
			value *TopicTemporalMetrics
		)
		m.oldValue = func(ctx context.Context) (*TopicTemporalMetrics, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TopicTemporalMetrics.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTopicTemporalMetrics sets the old TopicTemporalMetrics of the mutation.
func withTopicTemporalMetrics(node *TopicTemporalMetrics) topictemporalmetricsOption {
	return func(m *TopicTemporalMetricsMutation) {
		m.oldValue = func(context.Context) (*TopicTemporalMetrics, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TopicTemporalMetricsMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TopicTemporalMetricsMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TopicTemporalMetricsMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TopicTemporalMetricsMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TopicTemporalMetrics.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (m *TopicTemporalMetricsMutation) SetTopicClusterID(i int) {
	m.cluster = &i
}

// TopicClusterID returns the value of the "topic_cluster_id" field in the mutation.
func (m *TopicTemporalMetricsMutation) TopicClusterID() (r int, exists bool) {
	v := m.cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicClusterID returns the old "topic_cluster_id" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldTopicClusterID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicClusterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicClusterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicClusterID: %w", err)
	}
	return oldValue.TopicClusterID, nil
}

// ResetTopicClusterID resets all changes to the "topic_cluster_id" field.
func (m *TopicTemporalMetricsMutation) ResetTopicClusterID() {
	m.cluster = nil
}

// SetWindowStart sets the "window_start" field.
func (m *TopicTemporalMetricsMutation) SetWindowStart(t time.Time) {
	m.window_start = &t
}

// WindowStart returns the value of the "window_start" field in the mutation.
func (m *TopicTemporalMetricsMutation) WindowStart() (r time.Time, exists bool) {
	v := m.window_start
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowStart returns the old "window_start" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldWindowStart(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowStart: %w", err)
	}
	return oldValue.WindowStart, nil
}

// ResetWindowStart resets all changes to the "window_start" field.
func (m *TopicTemporalMetricsMutation) ResetWindowStart() {
	m.window_start = nil
}

// SetWindowEnd sets the "window_end" field.
func (m *TopicTemporalMetricsMutation) SetWindowEnd(t time.Time) {
	m.window_end = &t
}

// WindowEnd returns the value of the "window_end" field in the mutation.
func (m *TopicTemporalMetricsMutation) WindowEnd() (r time.Time, exists bool) {
	v := m.window_end
	if v == nil {
		return
	}
	return *v, true
}

// OldWindowEnd returns the old "window_end" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldWindowEnd(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWindowEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWindowEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWindowEnd: %w", err)
	}
	return oldValue.WindowEnd, nil
}

// ResetWindowEnd resets all changes to the "window_end" field.
func (m *TopicTemporalMetricsMutation) ResetWindowEnd() {
	m.window_end = nil
}

// SetVolume sets the "volume" field.
func (m *TopicTemporalMetricsMutation) SetVolume(i int) {
	m.volume = &i
	m.addvolume = nil
}

// Volume returns the value of the "volume" field in the mutation.
func (m *TopicTemporalMetricsMutation) Volume() (r int, exists bool) {
	v := m.volume
	if v == nil {
		return
	}
	return *v, true
}

// OldVolume returns the old "volume" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldVolume(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVolume is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVolume requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVolume: %w", err)
	}
	return oldValue.Volume, nil
}

// AddVolume adds i to the "volume" field.
func (m *TopicTemporalMetricsMutation) AddVolume(i int) {
	if m.addvolume != nil {
		*m.addvolume += i
	} else {
		m.addvolume = &i
	}
}

// AddedVolume returns the value that was added to the "volume" field in this mutation.
func (m *TopicTemporalMetricsMutation) AddedVolume() (r int, exists bool) {
	v := m.addvolume
	if v == nil {
		return
	}
	return *v, true
}

// ResetVolume resets all changes to the "volume" field.
func (m *TopicTemporalMetricsMutation) ResetVolume() {
	m.volume = nil
	m.addvolume = nil
}

// SetVelocity sets the "velocity" field.
func (m *TopicTemporalMetricsMutation) SetVelocity(f float64) {
	m.velocity = &f
	m.addvelocity = nil
}

// Velocity returns the value of the "velocity" field in the mutation.
func (m *TopicTemporalMetricsMutation) Velocity() (r float64, exists bool) {
	v := m.velocity
	if v == nil {
		return
	}
	return *v, true
}

// OldVelocity returns the old "velocity" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldVelocity(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVelocity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVelocity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVelocity: %w", err)
	}
	return oldValue.Velocity, nil
}

// AddVelocity adds f to the "velocity" field.
func (m *TopicTemporalMetricsMutation) AddVelocity(f float64) {
	if m.addvelocity != nil {
		*m.addvelocity += f
	} else {
		m.addvelocity = &f
	}
}

// AddedVelocity returns the value that was added to the "velocity" field in this mutation.
func (m *TopicTemporalMetricsMutation) AddedVelocity() (r float64, exists bool) {
	v := m.addvelocity
	if v == nil {
		return
	}
	return *v, true
}

// ResetVelocity resets all changes to the "velocity" field.
func (m *TopicTemporalMetricsMutation) ResetVelocity() {
	m.velocity = nil
	m.addvelocity = nil
}

// SetVelocityTrend sets the "velocity_trend" field.
func (m *TopicTemporalMetricsMutation) SetVelocityTrend(s string) {
	m.velocity_trend = &s
}

// VelocityTrend returns the value of the "velocity_trend" field in the mutation.
func (m *TopicTemporalMetricsMutation) VelocityTrend() (r string, exists bool) {
	v := m.velocity_trend
	if v == nil {
		return
	}
	return *v, true
}

// OldVelocityTrend returns the old "velocity_trend" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldVelocityTrend(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldVelocityTrend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldVelocityTrend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldVelocityTrend: %w", err)
	}
	return oldValue.VelocityTrend, nil
}

// ClearVelocityTrend clears the value of the "velocity_trend" field.
func (m *TopicTemporalMetricsMutation) ClearVelocityTrend() {
	m.velocity_trend = nil
	m.clearedFields[topictemporalmetrics.FieldVelocityTrend] = struct{}{}
}

// VelocityTrendCleared returns if the "velocity_trend" field was cleared in this mutation.
func (m *TopicTemporalMetricsMutation) VelocityTrendCleared() bool {
	_, ok := m.clearedFields[topictemporalmetrics.FieldVelocityTrend]
	return ok
}

// ResetVelocityTrend resets all changes to the "velocity_trend" field.
func (m *TopicTemporalMetricsMutation) ResetVelocityTrend() {
	m.velocity_trend = nil
	delete(m.clearedFields, topictemporalmetrics.FieldVelocityTrend)
}

// SetFreshnessRatio sets the "freshness_ratio" field.
func (m *TopicTemporalMetricsMutation) SetFreshnessRatio(f float64) {
	m.freshness_ratio = &f
	m.addfreshness_ratio = nil
}

// FreshnessRatio returns the value of the "freshness_ratio" field in the mutation.
func (m *TopicTemporalMetricsMutation) FreshnessRatio() (r float64, exists bool) {
	v := m.freshness_ratio
	if v == nil {
		return
	}
	return *v, true
}

// OldFreshnessRatio returns the old "freshness_ratio" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldFreshnessRatio(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreshnessRatio is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreshnessRatio requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreshnessRatio: %w", err)
	}
	return oldValue.FreshnessRatio, nil
}

// AddFreshnessRatio adds f to the "freshness_ratio" field.
func (m *TopicTemporalMetricsMutation) AddFreshnessRatio(f float64) {
	if m.addfreshness_ratio != nil {
		*m.addfreshness_ratio += f
	} else {
		m.addfreshness_ratio = &f
	}
}

// AddedFreshnessRatio returns the value that was added to the "freshness_ratio" field in this mutation.
func (m *TopicTemporalMetricsMutation) AddedFreshnessRatio() (r float64, exists bool) {
	v := m.addfreshness_ratio
	if v == nil {
		return
	}
	return *v, true
}

// ResetFreshnessRatio resets all changes to the "freshness_ratio" field.
func (m *TopicTemporalMetricsMutation) ResetFreshnessRatio() {
	m.freshness_ratio = nil
	m.addfreshness_ratio = nil
}

// SetSourceDiversity sets the "source_diversity" field.
func (m *TopicTemporalMetricsMutation) SetSourceDiversity(i int) {
	m.source_diversity = &i
	m.addsource_diversity = nil
}

// SourceDiversity returns the value of the "source_diversity" field in the mutation.
func (m *TopicTemporalMetricsMutation) SourceDiversity() (r int, exists bool) {
	v := m.source_diversity
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceDiversity returns the old "source_diversity" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldSourceDiversity(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceDiversity is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceDiversity requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceDiversity: %w", err)
	}
	return oldValue.SourceDiversity, nil
}

// AddSourceDiversity adds i to the "source_diversity" field.
func (m *TopicTemporalMetricsMutation) AddSourceDiversity(i int) {
	if m.addsource_diversity != nil {
		*m.addsource_diversity += i
	} else {
		m.addsource_diversity = &i
	}
}

// AddedSourceDiversity returns the value that was added to the "source_diversity" field in this mutation.
func (m *TopicTemporalMetricsMutation) AddedSourceDiversity() (r int, exists bool) {
	v := m.addsource_diversity
	if v == nil {
		return
	}
	return *v, true
}

// ResetSourceDiversity resets all changes to the "source_diversity" field.
func (m *TopicTemporalMetricsMutation) ResetSourceDiversity() {
	m.source_diversity = nil
	m.addsource_diversity = nil
}

// SetCohesionScore sets the "cohesion_score" field.
func (m *TopicTemporalMetricsMutation) SetCohesionScore(f float64) {
	m.cohesion_score = &f
	m.addcohesion_score = nil
}

// CohesionScore returns the value of the "cohesion_score" field in the mutation.
func (m *TopicTemporalMetricsMutation) CohesionScore() (r float64, exists bool) {
	v := m.cohesion_score
	if v == nil {
		return
	}
	return *v, true
}

// OldCohesionScore returns the old "cohesion_score" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldCohesionScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCohesionScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCohesionScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCohesionScore: %w", err)
	}
	return oldValue.CohesionScore, nil
}

// AddCohesionScore adds f to the "cohesion_score" field.
func (m *TopicTemporalMetricsMutation) AddCohesionScore(f float64) {
	if m.addcohesion_score != nil {
		*m.addcohesion_score += f
	} else {
		m.addcohesion_score = &f
	}
}

// AddedCohesionScore returns the value that was added to the "cohesion_score" field in this mutation.
func (m *TopicTemporalMetricsMutation) AddedCohesionScore() (r float64, exists bool) {
	v := m.addcohesion_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetCohesionScore resets all changes to the "cohesion_score" field.
func (m *TopicTemporalMetricsMutation) ResetCohesionScore() {
	m.cohesion_score = nil
	m.addcohesion_score = nil
}

// SetPotentialScore sets the "potential_score" field.
func (m *TopicTemporalMetricsMutation) SetPotentialScore(f float64) {
	m.potential_score = &f
	m.addpotential_score = nil
}

// PotentialScore returns the value of the "potential_score" field in the mutation.
func (m *TopicTemporalMetricsMutation) PotentialScore() (r float64, exists bool) {
	v := m.potential_score
	if v == nil {
		return
	}
	return *v, true
}

// OldPotentialScore returns the old "potential_score" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldPotentialScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPotentialScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPotentialScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPotentialScore: %w", err)
	}
	return oldValue.PotentialScore, nil
}

// AddPotentialScore adds f to the "potential_score" field.
func (m *TopicTemporalMetricsMutation) AddPotentialScore(f float64) {
	if m.addpotential_score != nil {
		*m.addpotential_score += f
	} else {
		m.addpotential_score = &f
	}
}

// AddedPotentialScore returns the value that was added to the "potential_score" field in this mutation.
func (m *TopicTemporalMetricsMutation) AddedPotentialScore() (r float64, exists bool) {
	v := m.addpotential_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetPotentialScore resets all changes to the "potential_score" field.
func (m *TopicTemporalMetricsMutation) ResetPotentialScore() {
	m.potential_score = nil
	m.addpotential_score = nil
}

// SetDriftDetected sets the "drift_detected" field.
func (m *TopicTemporalMetricsMutation) SetDriftDetected(b bool) {
	m.drift_detected = &b
}

// DriftDetected returns the value of the "drift_detected" field in the mutation.
func (m *TopicTemporalMetricsMutation) DriftDetected() (r bool, exists bool) {
	v := m.drift_detected
	if v == nil {
		return
	}
	return *v, true
}

// OldDriftDetected returns the old "drift_detected" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldDriftDetected(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDriftDetected is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDriftDetected requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDriftDetected: %w", err)
	}
	return oldValue.DriftDetected, nil
}

// ResetDriftDetected resets all changes to the "drift_detected" field.
func (m *TopicTemporalMetricsMutation) ResetDriftDetected() {
	m.drift_detected = nil
}

// SetDriftDistance sets the "drift_distance" field.
func (m *TopicTemporalMetricsMutation) SetDriftDistance(f float64) {
	m.drift_distance = &f
	m.adddrift_distance = nil
}

// DriftDistance returns the value of the "drift_distance" field in the mutation.
func (m *TopicTemporalMetricsMutation) DriftDistance() (r float64, exists bool) {
	v := m.drift_distance
	if v == nil {
		return
	}
	return *v, true
}

// OldDriftDistance returns the old "drift_distance" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldDriftDistance(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDriftDistance is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDriftDistance requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDriftDistance: %w", err)
	}
	return oldValue.DriftDistance, nil
}

// AddDriftDistance adds f to the "drift_distance" field.
func (m *TopicTemporalMetricsMutation) AddDriftDistance(f float64) {
	if m.adddrift_distance != nil {
		*m.adddrift_distance += f
	} else {
		m.adddrift_distance = &f
	}
}

// AddedDriftDistance returns the value that was added to the "drift_distance" field in this mutation.
func (m *TopicTemporalMetricsMutation) AddedDriftDistance() (r float64, exists bool) {
	v := m.adddrift_distance
	if v == nil {
		return
	}
	return *v, true
}

// ClearDriftDistance clears the value of the "drift_distance" field.
func (m *TopicTemporalMetricsMutation) ClearDriftDistance() {
	m.drift_distance = nil
	m.adddrift_distance = nil
	m.clearedFields[topictemporalmetrics.FieldDriftDistance] = struct{}{}
}

// DriftDistanceCleared returns if the "drift_distance" field was cleared in this mutation.
func (m *TopicTemporalMetricsMutation) DriftDistanceCleared() bool {
	_, ok := m.clearedFields[topictemporalmetrics.FieldDriftDistance]
	return ok
}

// ResetDriftDistance resets all changes to the "drift_distance" field.
func (m *TopicTemporalMetricsMutation) ResetDriftDistance() {
	m.drift_distance = nil
	m.adddrift_distance = nil
	delete(m.clearedFields, topictemporalmetrics.FieldDriftDistance)
}

// SetCreatedAt sets the "created_at" field.
func (m *TopicTemporalMetricsMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TopicTemporalMetricsMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TopicTemporalMetrics entity.
// If the TopicTemporalMetrics object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TopicTemporalMetricsMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TopicTemporalMetricsMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by id.
func (m *TopicTemporalMetricsMutation) SetClusterID(id int) {
	m.cluster = &id
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (m *TopicTemporalMetricsMutation) ClearCluster() {
	m.clearedcluster = true
	m.clearedFields[topictemporalmetrics.FieldTopicClusterID] = struct{}{}
}

// ClusterCleared reports if the "cluster" edge to the TopicCluster entity was cleared.
func (m *TopicTemporalMetricsMutation) ClusterCleared() bool {
	return m.clearedcluster
}

// ClusterID returns the "cluster" edge ID in the mutation.
func (m *TopicTemporalMetricsMutation) ClusterID() (id int, exists bool) {
	if m.cluster != nil {
		return *m.cluster, true
	}
	return
}

// ClusterIDs returns the "cluster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClusterID instead. It exists only for internal usage by the builders.
func (m *TopicTemporalMetricsMutation) ClusterIDs() (ids []int) {
	if id := m.cluster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCluster resets all changes to the "cluster" edge.
func (m *TopicTemporalMetricsMutation) ResetCluster() {
	m.cluster = nil
	m.clearedcluster = false
}

// Where appends a list predicates to the TopicTemporalMetricsMutation builder.
func (m *TopicTemporalMetricsMutation) Where(ps ...predicate.TopicTemporalMetrics) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TopicTemporalMetricsMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TopicTemporalMetricsMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TopicTemporalMetrics, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TopicTemporalMetricsMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TopicTemporalMetricsMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TopicTemporalMetrics).
func (m *TopicTemporalMetricsMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TopicTemporalMetricsMutation) Fields() []string {
	fields := make([]string, 0, 13)
	if m.cluster != nil {
		fields = append(fields, topictemporalmetrics.FieldTopicClusterID)
	}
	if m.window_start != nil {
		fields = append(fields, topictemporalmetrics.FieldWindowStart)
	}
	if m.window_end != nil {
		fields = append(fields, topictemporalmetrics.FieldWindowEnd)
	}
	if m.volume != nil {
		fields = append(fields, topictemporalmetrics.FieldVolume)
	}
	if m.velocity != nil {
		fields = append(fields, topictemporalmetrics.FieldVelocity)
	}
	if m.velocity_trend != nil {
		fields = append(fields, topictemporalmetrics.FieldVelocityTrend)
	}
	if m.freshness_ratio != nil {
		fields = append(fields, topictemporalmetrics.FieldFreshnessRatio)
	}
	if m.source_diversity != nil {
		fields = append(fields, topictemporalmetrics.FieldSourceDiversity)
	}
	if m.cohesion_score != nil {
		fields = append(fields, topictemporalmetrics.FieldCohesionScore)
	}
	if m.potential_score != nil {
		fields = append(fields, topictemporalmetrics.FieldPotentialScore)
	}
	if m.drift_detected != nil {
		fields = append(fields, topictemporalmetrics.FieldDriftDetected)
	}
	if m.drift_distance != nil {
		fields = append(fields, topictemporalmetrics.FieldDriftDistance)
	}
	if m.created_at != nil {
		fields = append(fields, topictemporalmetrics.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TopicTemporalMetricsMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case topictemporalmetrics.FieldTopicClusterID:
		return m.TopicClusterID()
	case topictemporalmetrics.FieldWindowStart:
		return m.WindowStart()
	case topictemporalmetrics.FieldWindowEnd:
		return m.WindowEnd()
	case topictemporalmetrics.FieldVolume:
		return m.Volume()
	case topictemporalmetrics.FieldVelocity:
		return m.Velocity()
	case topictemporalmetrics.FieldVelocityTrend:
		return m.VelocityTrend()
	case topictemporalmetrics.FieldFreshnessRatio:
		return m.FreshnessRatio()
	case topictemporalmetrics.FieldSourceDiversity:
		return m.SourceDiversity()
	case topictemporalmetrics.FieldCohesionScore:
		return m.CohesionScore()
	case topictemporalmetrics.FieldPotentialScore:
		return m.PotentialScore()
	case topictemporalmetrics.FieldDriftDetected:
		return m.DriftDetected()
	case topictemporalmetrics.FieldDriftDistance:
		return m.DriftDistance()
	case topictemporalmetrics.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TopicTemporalMetricsMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case topictemporalmetrics.FieldTopicClusterID:
		return m.OldTopicClusterID(ctx)
	case topictemporalmetrics.FieldWindowStart:
		return m.OldWindowStart(ctx)
	case topictemporalmetrics.FieldWindowEnd:
		return m.OldWindowEnd(ctx)
	case topictemporalmetrics.FieldVolume:
		return m.OldVolume(ctx)
	case topictemporalmetrics.FieldVelocity:
		return m.OldVelocity(ctx)
	case topictemporalmetrics.FieldVelocityTrend:
		return m.OldVelocityTrend(ctx)
	case topictemporalmetrics.FieldFreshnessRatio:
		return m.OldFreshnessRatio(ctx)
	case topictemporalmetrics.FieldSourceDiversity:
		return m.OldSourceDiversity(ctx)
	case topictemporalmetrics.FieldCohesionScore:
		return m.OldCohesionScore(ctx)
	case topictemporalmetrics.FieldPotentialScore:
		return m.OldPotentialScore(ctx)
	case topictemporalmetrics.FieldDriftDetected:
		return m.OldDriftDetected(ctx)
	case topictemporalmetrics.FieldDriftDistance:
		return m.OldDriftDistance(ctx)
	case topictemporalmetrics.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TopicTemporalMetrics field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicTemporalMetricsMutation) SetField(name string, value ent.Value) error {
	switch name {
	case topictemporalmetrics.FieldTopicClusterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicClusterID(v)
		return nil
	case topictemporalmetrics.FieldWindowStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowStart(v)
		return nil
	case topictemporalmetrics.FieldWindowEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWindowEnd(v)
		return nil
	case topictemporalmetrics.FieldVolume:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVolume(v)
		return nil
	case topictemporalmetrics.FieldVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVelocity(v)
		return nil
	case topictemporalmetrics.FieldVelocityTrend:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetVelocityTrend(v)
		return nil
	case topictemporalmetrics.FieldFreshnessRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreshnessRatio(v)
		return nil
	case topictemporalmetrics.FieldSourceDiversity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceDiversity(v)
		return nil
	case topictemporalmetrics.FieldCohesionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCohesionScore(v)
		return nil
	case topictemporalmetrics.FieldPotentialScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPotentialScore(v)
		return nil
	case topictemporalmetrics.FieldDriftDetected:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDriftDetected(v)
		return nil
	case topictemporalmetrics.FieldDriftDistance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDriftDistance(v)
		return nil
	case topictemporalmetrics.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TopicTemporalMetrics field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TopicTemporalMetricsMutation) AddedFields() []string {
	var fields []string
	if m.addvolume != nil {
		fields = append(fields, topictemporalmetrics.FieldVolume)
	}
	if m.addvelocity != nil {
		fields = append(fields, topictemporalmetrics.FieldVelocity)
	}
	if m.addfreshness_ratio != nil {
		fields = append(fields, topictemporalmetrics.FieldFreshnessRatio)
	}
	if m.addsource_diversity != nil {
		fields = append(fields, topictemporalmetrics.FieldSourceDiversity)
	}
	if m.addcohesion_score != nil {
		fields = append(fields, topictemporalmetrics.FieldCohesionScore)
	}
	if m.addpotential_score != nil {
		fields = append(fields, topictemporalmetrics.FieldPotentialScore)
	}
	if m.adddrift_distance != nil {
		fields = append(fields, topictemporalmetrics.FieldDriftDistance)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TopicTemporalMetricsMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case topictemporalmetrics.FieldVolume:
		return m.AddedVolume()
	case topictemporalmetrics.FieldVelocity:
		return m.AddedVelocity()
	case topictemporalmetrics.FieldFreshnessRatio:
		return m.AddedFreshnessRatio()
	case topictemporalmetrics.FieldSourceDiversity:
		return m.AddedSourceDiversity()
	case topictemporalmetrics.FieldCohesionScore:
		return m.AddedCohesionScore()
	case topictemporalmetrics.FieldPotentialScore:
		return m.AddedPotentialScore()
	case topictemporalmetrics.FieldDriftDistance:
		return m.AddedDriftDistance()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TopicTemporalMetricsMutation) AddField(name string, value ent.Value) error {
	switch name {
	case topictemporalmetrics.FieldVolume:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVolume(v)
		return nil
	case topictemporalmetrics.FieldVelocity:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddVelocity(v)
		return nil
	case topictemporalmetrics.FieldFreshnessRatio:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFreshnessRatio(v)
		return nil
	case topictemporalmetrics.FieldSourceDiversity:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddSourceDiversity(v)
		return nil
	case topictemporalmetrics.FieldCohesionScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCohesionScore(v)
		return nil
	case topictemporalmetrics.FieldPotentialScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPotentialScore(v)
		return nil
	case topictemporalmetrics.FieldDriftDistance:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDriftDistance(v)
		return nil
	}
	return fmt.Errorf("unknown TopicTemporalMetrics numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TopicTemporalMetricsMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(topictemporalmetrics.FieldVelocityTrend) {
		fields = append(fields, topictemporalmetrics.FieldVelocityTrend)
	}
	if m.FieldCleared(topictemporalmetrics.FieldDriftDistance) {
		fields = append(fields, topictemporalmetrics.FieldDriftDistance)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TopicTemporalMetricsMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TopicTemporalMetricsMutation) ClearField(name string) error {
	switch name {
	case topictemporalmetrics.FieldVelocityTrend:
		m.ClearVelocityTrend()
		return nil
	case topictemporalmetrics.FieldDriftDistance:
		m.ClearDriftDistance()
		return nil
	}
	return fmt.Errorf("unknown TopicTemporalMetrics nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TopicTemporalMetricsMutation) ResetField(name string) error {
	switch name {
	case topictemporalmetrics.FieldTopicClusterID:
		m.ResetTopicClusterID()
		return nil
	case topictemporalmetrics.FieldWindowStart:
		m.ResetWindowStart()
		return nil
	case topictemporalmetrics.FieldWindowEnd:
		m.ResetWindowEnd()
		return nil
	case topictemporalmetrics.FieldVolume:
		m.ResetVolume()
		return nil
	case topictemporalmetrics.FieldVelocity:
		m.ResetVelocity()
		return nil
	case topictemporalmetrics.FieldVelocityTrend:
		m.ResetVelocityTrend()
		return nil
	case topictemporalmetrics.FieldFreshnessRatio:
		m.ResetFreshnessRatio()
		return nil
	case topictemporalmetrics.FieldSourceDiversity:
		m.ResetSourceDiversity()
		return nil
	case topictemporalmetrics.FieldCohesionScore:
		m.ResetCohesionScore()
		return nil
	case topictemporalmetrics.FieldPotentialScore:
		m.ResetPotentialScore()
		return nil
	case topictemporalmetrics.FieldDriftDetected:
		m.ResetDriftDetected()
		return nil
	case topictemporalmetrics.FieldDriftDistance:
		m.ResetDriftDistance()
		return nil
	case topictemporalmetrics.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TopicTemporalMetrics field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TopicTemporalMetricsMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cluster != nil {
		edges = append(edges, topictemporalmetrics.EdgeCluster)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TopicTemporalMetricsMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case topictemporalmetrics.EdgeCluster:
		if id := m.cluster; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TopicTemporalMetricsMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TopicTemporalMetricsMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TopicTemporalMetricsMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcluster {
		edges = append(edges, topictemporalmetrics.EdgeCluster)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TopicTemporalMetricsMutation) EdgeCleared(name string) bool {
	switch name {
	case topictemporalmetrics.EdgeCluster:
		return m.clearedcluster
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TopicTemporalMetricsMutation) ClearEdge(name string) error {
	switch name {
	case topictemporalmetrics.EdgeCluster:
		m.ClearCluster()
		return nil
	}
	return fmt.Errorf("unknown TopicTemporalMetrics unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TopicTemporalMetricsMutation) ResetEdge(name string) error {
	switch name {
	case topictemporalmetrics.EdgeCluster:
		m.ResetCluster()
		return nil
	}
	return fmt.Errorf("unknown TopicTemporalMetrics edge %s", name)
}

// TrendAnalysisMutation represents an operation that mutates the TrendAnalysis nodes in the graph.
type TrendAnalysisMutation struct {
	config
	op                         Op
	typ                        string
	id                         *int
	synthesis                  *string
	saturated_angles           *[]string
	appendsaturated_angles     []string
	opportunities              *[]string
	appendopportunities        []string
	llm_model_used             *string
	processing_time_seconds    *float64
	addprocessing_time_seconds *float64
	created_at                 *time.Time
	clearedFields              map[string]struct{}
	cluster                    *int
	clearedcluster             bool
	done                       bool
	oldValue                   func(context.Context) (*TrendAnalysis, error)
	predicates                 []predicate.TrendAnalysis
}

var _ ent.Mutation = (*TrendAnalysisMutation)(nil)

// trendanalysisOption allows management of the mutation configuration using functional options.
type trendanalysisOption func(*TrendAnalysisMutation)

// newTrendAnalysisMutation creates new mutation for the TrendAnalysis entity.
func newTrendAnalysisMutation(c config, op Op, opts ...trendanalysisOption) *TrendAnalysisMutation {
	m := &TrendAnalysisMutation{
		config:        c,
		op:            op,
		typ:           TypeTrendAnalysis,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrendAnalysisID sets the ID field of the mutation.
func withTrendAnalysisID(id int) trendanalysisOption {
	return func(m *TrendAnalysisMutation) {
		var (
			err   error
			once  sync.Once
			value *TrendAnalysis
		)
		m.oldValue = func(ctx context.Context) (*TrendAnalysis, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrendAnalysis.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrendAnalysis sets the old TrendAnalysis of the mutation.
func withTrendAnalysis(node *TrendAnalysis) trendanalysisOption {
	return func(m *TrendAnalysisMutation) {
		m.oldValue = func(context.Context) (*TrendAnalysis, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrendAnalysisMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrendAnalysisMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrendAnalysisMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrendAnalysisMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrendAnalysis.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTopicClusterID sets the "topic_cluster_id" field.
func (m *TrendAnalysisMutation) SetTopicClusterID(i int) {
	m.cluster = &i
}

// TopicClusterID returns the value of the "topic_cluster_id" field in the mutation.
func (m *TrendAnalysisMutation) TopicClusterID() (r int, exists bool) {
	v := m.cluster
	if v == nil {
		return
	}
	return *v, true
}

// OldTopicClusterID returns the old "topic_cluster_id" field's value of the TrendAnalysis entity.
// If the TrendAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendAnalysisMutation) OldTopicClusterID(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTopicClusterID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTopicClusterID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTopicClusterID: %w", err)
	}
	return oldValue.TopicClusterID, nil
}

// ResetTopicClusterID resets all changes to the "topic_cluster_id" field.
func (m *TrendAnalysisMutation) ResetTopicClusterID() {
	m.cluster = nil
}

// SetSynthesis sets the "synthesis" field.
func (m *TrendAnalysisMutation) SetSynthesis(s string) {
	m.synthesis = &s
}

// Synthesis returns the value of the "synthesis" field in the mutation.
func (m *TrendAnalysisMutation) Synthesis() (r string, exists bool) {
	v := m.synthesis
	if v == nil {
		return
	}
	return *v, true
}

// OldSynthesis returns the old "synthesis" field's value of the TrendAnalysis entity.
// If the TrendAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendAnalysisMutation) OldSynthesis(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSynthesis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSynthesis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSynthesis: %w", err)
	}
	return oldValue.Synthesis, nil
}

// ClearSynthesis clears the value of the "synthesis" field.
func (m *TrendAnalysisMutation) ClearSynthesis() {
	m.synthesis = nil
	m.clearedFields[trendanalysis.FieldSynthesis] = struct{}{}
}

// SynthesisCleared returns if the "synthesis" field was cleared in this mutation.
func (m *TrendAnalysisMutation) SynthesisCleared() bool {
	_, ok := m.clearedFields[trendanalysis.FieldSynthesis]
	return ok
}

// ResetSynthesis resets all changes to the "synthesis" field.
func (m *TrendAnalysisMutation) ResetSynthesis() {
	m.synthesis = nil
	delete(m.clearedFields, trendanalysis.FieldSynthesis)
}

// SetSaturatedAngles sets the "saturated_angles" field.
func (m *TrendAnalysisMutation) SetSaturatedAngles(s []string) {
	m.saturated_angles = &s
	m.appendsaturated_angles = nil
}

// SaturatedAngles returns the value of the "saturated_angles" field in the mutation.
func (m *TrendAnalysisMutation) SaturatedAngles() (r []string, exists bool) {
	v := m.saturated_angles
	if v == nil {
		return
	}
	return *v, true
}

// OldSaturatedAngles returns the old "saturated_angles" field's value of the TrendAnalysis entity.
// If the TrendAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendAnalysisMutation) OldSaturatedAngles(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSaturatedAngles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSaturatedAngles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSaturatedAngles: %w", err)
	}
	return oldValue.SaturatedAngles, nil
}

// AppendSaturatedAngles adds s to the "saturated_angles" field.
func (m *TrendAnalysisMutation) AppendSaturatedAngles(s []string) {
	m.appendsaturated_angles = append(m.appendsaturated_angles, s...)
}

// AppendedSaturatedAngles returns the list of values that were appended to the "saturated_angles" field in this mutation.
func (m *TrendAnalysisMutation) AppendedSaturatedAngles() ([]string, bool) {
	if len(m.appendsaturated_angles) == 0 {
		return nil, false
	}
	return m.appendsaturated_angles, true
}

// ClearSaturatedAngles clears the value of the "saturated_angles" field.
func (m *TrendAnalysisMutation) ClearSaturatedAngles() {
	m.saturated_angles = nil
	m.appendsaturated_angles = nil
	m.clearedFields[trendanalysis.FieldSaturatedAngles] = struct{}{}
}

// SaturatedAnglesCleared returns if the "saturated_angles" field was cleared in this mutation.
func (m *TrendAnalysisMutation) SaturatedAnglesCleared() bool {
	_, ok := m.clearedFields[trendanalysis.FieldSaturatedAngles]
	return ok
}

// ResetSaturatedAngles resets all changes to the "saturated_angles" field.
func (m *TrendAnalysisMutation) ResetSaturatedAngles() {
	m.saturated_angles = nil
	m.appendsaturated_angles = nil
	delete(m.clearedFields, trendanalysis.FieldSaturatedAngles)
}

// SetOpportunities sets the "opportunities" field.
func (m *TrendAnalysisMutation) SetOpportunities(s []string) {
	m.opportunities = &s
	m.appendopportunities = nil
}

// Opportunities returns the value of the "opportunities" field in the mutation.
func (m *TrendAnalysisMutation) Opportunities() (r []string, exists bool) {
	v := m.opportunities
	if v == nil {
		return
	}
	return *v, true
}

// OldOpportunities returns the old "opportunities" field's value of the TrendAnalysis entity.
// If the TrendAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendAnalysisMutation) OldOpportunities(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOpportunities is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOpportunities requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOpportunities: %w", err)
	}
	return oldValue.Opportunities, nil
}

// AppendOpportunities adds s to the "opportunities" field.
func (m *TrendAnalysisMutation) AppendOpportunities(s []string) {
	m.appendopportunities = append(m.appendopportunities, s...)
}

// AppendedOpportunities returns the list of values that were appended to the "opportunities" field in this mutation.
func (m *TrendAnalysisMutation) AppendedOpportunities() ([]string, bool) {
	if len(m.appendopportunities) == 0 {
		return nil, false
	}
	return m.appendopportunities, true
}

// ClearOpportunities clears the value of the "opportunities" field.
func (m *TrendAnalysisMutation) ClearOpportunities() {
	m.opportunities = nil
	m.appendopportunities = nil
	m.clearedFields[trendanalysis.FieldOpportunities] = struct{}{}
}

// OpportunitiesCleared returns if the "opportunities" field was cleared in this mutation.
func (m *TrendAnalysisMutation) OpportunitiesCleared() bool {
	_, ok := m.clearedFields[trendanalysis.FieldOpportunities]
	return ok
}

// ResetOpportunities resets all changes to the "opportunities" field.
func (m *TrendAnalysisMutation) ResetOpportunities() {
	m.opportunities = nil
	m.appendopportunities = nil
	delete(m.clearedFields, trendanalysis.FieldOpportunities)
}

// SetLlmModelUsed sets the "llm_model_used" field.
func (m *TrendAnalysisMutation) SetLlmModelUsed(s string) {
	m.llm_model_used = &s
}

// LlmModelUsed returns the value of the "llm_model_used" field in the mutation.
func (m *TrendAnalysisMutation) LlmModelUsed() (r string, exists bool) {
	v := m.llm_model_used
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModelUsed returns the old "llm_model_used" field's value of the TrendAnalysis entity.
// If the TrendAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendAnalysisMutation) OldLlmModelUsed(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModelUsed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModelUsed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModelUsed: %w", err)
	}
	return oldValue.LlmModelUsed, nil
}

// ClearLlmModelUsed clears the value of the "llm_model_used" field.
func (m *TrendAnalysisMutation) ClearLlmModelUsed() {
	m.llm_model_used = nil
	m.clearedFields[trendanalysis.FieldLlmModelUsed] = struct{}{}
}

// LlmModelUsedCleared returns if the "llm_model_used" field was cleared in this mutation.
func (m *TrendAnalysisMutation) LlmModelUsedCleared() bool {
	_, ok := m.clearedFields[trendanalysis.FieldLlmModelUsed]
	return ok
}

// ResetLlmModelUsed resets all changes to the "llm_model_used" field.
func (m *TrendAnalysisMutation) ResetLlmModelUsed() {
	m.llm_model_used = nil
	delete(m.clearedFields, trendanalysis.FieldLlmModelUsed)
}

// SetProcessingTimeSeconds sets the "processing_time_seconds" field.
func (m *TrendAnalysisMutation) SetProcessingTimeSeconds(f float64) {
	m.processing_time_seconds = &f
	m.addprocessing_time_seconds = nil
}

// ProcessingTimeSeconds returns the value of the "processing_time_seconds" field in the mutation.
func (m *TrendAnalysisMutation) ProcessingTimeSeconds() (r float64, exists bool) {
	v := m.processing_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingTimeSeconds returns the old "processing_time_seconds" field's value of the TrendAnalysis entity.
// If the TrendAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendAnalysisMutation) OldProcessingTimeSeconds(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingTimeSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingTimeSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingTimeSeconds: %w", err)
	}
	return oldValue.ProcessingTimeSeconds, nil
}

// AddProcessingTimeSeconds adds f to the "processing_time_seconds" field.
func (m *TrendAnalysisMutation) AddProcessingTimeSeconds(f float64) {
	if m.addprocessing_time_seconds != nil {
		*m.addprocessing_time_seconds += f
	} else {
		m.addprocessing_time_seconds = &f
	}
}

// AddedProcessingTimeSeconds returns the value that was added to the "processing_time_seconds" field in this mutation.
func (m *TrendAnalysisMutation) AddedProcessingTimeSeconds() (r float64, exists bool) {
	v := m.addprocessing_time_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessingTimeSeconds resets all changes to the "processing_time_seconds" field.
func (m *TrendAnalysisMutation) ResetProcessingTimeSeconds() {
	m.processing_time_seconds = nil
	m.addprocessing_time_seconds = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrendAnalysisMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrendAnalysisMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrendAnalysis entity.
// If the TrendAnalysis object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendAnalysisMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrendAnalysisMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetClusterID sets the "cluster" edge to the TopicCluster entity by id.
func (m *TrendAnalysisMutation) SetClusterID(id int) {
	m.cluster = &id
}

// ClearCluster clears the "cluster" edge to the TopicCluster entity.
func (m *TrendAnalysisMutation) ClearCluster() {
	m.clearedcluster = true
	m.clearedFields[trendanalysis.FieldTopicClusterID] = struct{}{}
}

// ClusterCleared reports if the "cluster" edge to the TopicCluster entity was cleared.
func (m *TrendAnalysisMutation) ClusterCleared() bool {
	return m.clearedcluster
}

// ClusterID returns the "cluster" edge ID in the mutation.
func (m *TrendAnalysisMutation) ClusterID() (id int, exists bool) {
	if m.cluster != nil {
		return *m.cluster, true
	}
	return
}

// ClusterIDs returns the "cluster" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ClusterID instead. It exists only for internal usage by the builders.
func (m *TrendAnalysisMutation) ClusterIDs() (ids []int) {
	if id := m.cluster; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetCluster resets all changes to the "cluster" edge.
func (m *TrendAnalysisMutation) ResetCluster() {
	m.cluster = nil
	m.clearedcluster = false
}

// Where appends a list predicates to the TrendAnalysisMutation builder.
func (m *TrendAnalysisMutation) Where(ps ...predicate.TrendAnalysis) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrendAnalysisMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrendAnalysisMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrendAnalysis, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrendAnalysisMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrendAnalysisMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrendAnalysis).
func (m *TrendAnalysisMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrendAnalysisMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.cluster != nil {
		fields = append(fields, trendanalysis.FieldTopicClusterID)
	}
	if m.synthesis != nil {
		fields = append(fields, trendanalysis.FieldSynthesis)
	}
	if m.saturated_angles != nil {
		fields = append(fields, trendanalysis.FieldSaturatedAngles)
	}
	if m.opportunities != nil {
		fields = append(fields, trendanalysis.FieldOpportunities)
	}
	if m.llm_model_used != nil {
		fields = append(fields, trendanalysis.FieldLlmModelUsed)
	}
	if m.processing_time_seconds != nil {
		fields = append(fields, trendanalysis.FieldProcessingTimeSeconds)
	}
	if m.created_at != nil {
		fields = append(fields, trendanalysis.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrendAnalysisMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trendanalysis.FieldTopicClusterID:
		return m.TopicClusterID()
	case trendanalysis.FieldSynthesis:
		return m.Synthesis()
	case trendanalysis.FieldSaturatedAngles:
		return m.SaturatedAngles()
	case trendanalysis.FieldOpportunities:
		return m.Opportunities()
	case trendanalysis.FieldLlmModelUsed:
		return m.LlmModelUsed()
	case trendanalysis.FieldProcessingTimeSeconds:
		return m.ProcessingTimeSeconds()
	case trendanalysis.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrendAnalysisMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trendanalysis.FieldTopicClusterID:
		return m.OldTopicClusterID(ctx)
	case trendanalysis.FieldSynthesis:
		return m.OldSynthesis(ctx)
	case trendanalysis.FieldSaturatedAngles:
		return m.OldSaturatedAngles(ctx)
	case trendanalysis.FieldOpportunities:
		return m.OldOpportunities(ctx)
	case trendanalysis.FieldLlmModelUsed:
		return m.OldLlmModelUsed(ctx)
	case trendanalysis.FieldProcessingTimeSeconds:
		return m.OldProcessingTimeSeconds(ctx)
	case trendanalysis.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrendAnalysis field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrendAnalysisMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trendanalysis.FieldTopicClusterID:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTopicClusterID(v)
		return nil
	case trendanalysis.FieldSynthesis:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSynthesis(v)
		return nil
	case trendanalysis.FieldSaturatedAngles:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSaturatedAngles(v)
		return nil
	case trendanalysis.FieldOpportunities:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOpportunities(v)
		return nil
	case trendanalysis.FieldLlmModelUsed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModelUsed(v)
		return nil
	case trendanalysis.FieldProcessingTimeSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingTimeSeconds(v)
		return nil
	case trendanalysis.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrendAnalysis field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrendAnalysisMutation) AddedFields() []string {
	var fields []string
	if m.addprocessing_time_seconds != nil {
		fields = append(fields, trendanalysis.FieldProcessingTimeSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrendAnalysisMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trendanalysis.FieldProcessingTimeSeconds:
		return m.AddedProcessingTimeSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrendAnalysisMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trendanalysis.FieldProcessingTimeSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessingTimeSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown TrendAnalysis numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrendAnalysisMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trendanalysis.FieldSynthesis) {
		fields = append(fields, trendanalysis.FieldSynthesis)
	}
	if m.FieldCleared(trendanalysis.FieldSaturatedAngles) {
		fields = append(fields, trendanalysis.FieldSaturatedAngles)
	}
	if m.FieldCleared(trendanalysis.FieldOpportunities) {
		fields = append(fields, trendanalysis.FieldOpportunities)
	}
	if m.FieldCleared(trendanalysis.FieldLlmModelUsed) {
		fields = append(fields, trendanalysis.FieldLlmModelUsed)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrendAnalysisMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrendAnalysisMutation) ClearField(name string) error {
	switch name {
	case trendanalysis.FieldSynthesis:
		m.ClearSynthesis()
		return nil
	case trendanalysis.FieldSaturatedAngles:
		m.ClearSaturatedAngles()
		return nil
	case trendanalysis.FieldOpportunities:
		m.ClearOpportunities()
		return nil
	case trendanalysis.FieldLlmModelUsed:
		m.ClearLlmModelUsed()
		return nil
	}
	return fmt.Errorf("unknown TrendAnalysis nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrendAnalysisMutation) ResetField(name string) error {
	switch name {
	case trendanalysis.FieldTopicClusterID:
		m.ResetTopicClusterID()
		return nil
	case trendanalysis.FieldSynthesis:
		m.ResetSynthesis()
		return nil
	case trendanalysis.FieldSaturatedAngles:
		m.ResetSaturatedAngles()
		return nil
	case trendanalysis.FieldOpportunities:
		m.ResetOpportunities()
		return nil
	case trendanalysis.FieldLlmModelUsed:
		m.ResetLlmModelUsed()
		return nil
	case trendanalysis.FieldProcessingTimeSeconds:
		m.ResetProcessingTimeSeconds()
		return nil
	case trendanalysis.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrendAnalysis field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrendAnalysisMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.cluster != nil {
		edges = append(edges, trendanalysis.EdgeCluster)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrendAnalysisMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trendanalysis.EdgeCluster:
		if id := m.cluster; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrendAnalysisMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrendAnalysisMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrendAnalysisMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedcluster {
		edges = append(edges, trendanalysis.EdgeCluster)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrendAnalysisMutation) EdgeCleared(name string) bool {
	switch name {
	case trendanalysis.EdgeCluster:
		return m.clearedcluster
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrendAnalysisMutation) ClearEdge(name string) error {
	switch name {
	case trendanalysis.EdgeCluster:
		m.ClearCluster()
		return nil
	}
	return fmt.Errorf("unknown TrendAnalysis unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrendAnalysisMutation) ResetEdge(name string) error {
	switch name {
	case trendanalysis.EdgeCluster:
		m.ResetCluster()
		return nil
	}
	return fmt.Errorf("unknown TrendAnalysis edge %s", name)
}

// TrendPipelineExecutionMutation represents an operation that mutates the TrendPipelineExecution nodes in the graph.
type TrendPipelineExecutionMutation struct {
	config
	op                        Op
	typ                       string
	id                        *int
	execution_id              *string
	client_domain             *string
	domains_analyzed          *[]string
	appenddomains_analyzed    []string
	time_window_days          *int
	addtime_window_days       *int
	stage_1_clustering_status *trendpipelineexecution.Stage1ClusteringStatus
	stage_2_temporal_status   *trendpipelineexecution.Stage2TemporalStatus
	stage_3_llm_status        *trendpipelineexecution.Stage3LlmStatus
	stage_4_gap_status        *trendpipelineexecution.Stage4GapStatus
	total_articles            *int
	addtotal_articles         *int
	total_clusters            *int
	addtotal_clusters         *int
	total_outliers            *int
	addtotal_outliers         *int
	total_recommendations     *int
	addtotal_recommendations  *int
	total_gaps                *int
	addtotal_gaps             *int
	outlier_analysis          *map[string]interface{}
	start_time                *time.Time
	end_time                  *time.Time
	duration_seconds          *float64
	addduration_seconds       *float64
	error_message             *string
	is_valid                  *bool
	created_at                *time.Time
	clearedFields             map[string]struct{}
	clusters                  map[int]struct{}
	removedclusters           map[int]struct{}
	clearedclusters           bool
	outliers                  map[int]struct{}
	removedoutliers           map[int]struct{}
	clearedoutliers           bool
	done                      bool
	oldValue                  func(context.Context) (*TrendPipelineExecution, error)
	predicates                []predicate.TrendPipelineExecution
}

var _ ent.Mutation = (*TrendPipelineExecutionMutation)(nil)

// trendpipelineexecutionOption allows management of the mutation configuration using functional options.
type trendpipelineexecutionOption func(*TrendPipelineExecutionMutation)

// newTrendPipelineExecutionMutation creates new mutation for the TrendPipelineExecution entity.
func newTrendPipelineExecutionMutation(c config, op Op, opts ...trendpipelineexecutionOption) *TrendPipelineExecutionMutation {
	m := &TrendPipelineExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeTrendPipelineExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTrendPipelineExecutionID sets the ID field of the mutation.
func withTrendPipelineExecutionID(id int) trendpipelineexecutionOption {
	return func(m *TrendPipelineExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *TrendPipelineExecution
		)
		m.oldValue = func(ctx context.Context) (*TrendPipelineExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TrendPipelineExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTrendPipelineExecution sets the old TrendPipelineExecution of the mutation.
func withTrendPipelineExecution(node *TrendPipelineExecution) trendpipelineexecutionOption {
	return func(m *TrendPipelineExecutionMutation) {
		m.oldValue = func(context.Context) (*TrendPipelineExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TrendPipelineExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TrendPipelineExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TrendPipelineExecutionMutation) ID() (id int, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TrendPipelineExecutionMutation) IDs(ctx context.Context) ([]int, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []int{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TrendPipelineExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExecutionID sets the "execution_id" field.
func (m *TrendPipelineExecutionMutation) SetExecutionID(s string) {
	m.execution_id = &s
}

// ExecutionID returns the value of the "execution_id" field in the mutation.
func (m *TrendPipelineExecutionMutation) ExecutionID() (r string, exists bool) {
	v := m.execution_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExecutionID returns the old "execution_id" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldExecutionID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExecutionID: %w", err)
	}
	return oldValue.ExecutionID, nil
}

// ResetExecutionID resets all changes to the "execution_id" field.
func (m *TrendPipelineExecutionMutation) ResetExecutionID() {
	m.execution_id = nil
}

// SetClientDomain sets the "client_domain" field.
func (m *TrendPipelineExecutionMutation) SetClientDomain(s string) {
	m.client_domain = &s
}

// ClientDomain returns the value of the "client_domain" field in the mutation.
func (m *TrendPipelineExecutionMutation) ClientDomain() (r string, exists bool) {
	v := m.client_domain
	if v == nil {
		return
	}
	return *v, true
}

// OldClientDomain returns the old "client_domain" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldClientDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClientDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClientDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClientDomain: %w", err)
	}
	return oldValue.ClientDomain, nil
}

// ClearClientDomain clears the value of the "client_domain" field.
func (m *TrendPipelineExecutionMutation) ClearClientDomain() {
	m.client_domain = nil
	m.clearedFields[trendpipelineexecution.FieldClientDomain] = struct{}{}
}

// ClientDomainCleared returns if the "client_domain" field was cleared in this mutation.
func (m *TrendPipelineExecutionMutation) ClientDomainCleared() bool {
	_, ok := m.clearedFields[trendpipelineexecution.FieldClientDomain]
	return ok
}

// ResetClientDomain resets all changes to the "client_domain" field.
func (m *TrendPipelineExecutionMutation) ResetClientDomain() {
	m.client_domain = nil
	delete(m.clearedFields, trendpipelineexecution.FieldClientDomain)
}

// SetDomainsAnalyzed sets the "domains_analyzed" field.
func (m *TrendPipelineExecutionMutation) SetDomainsAnalyzed(s []string) {
	m.domains_analyzed = &s
	m.appenddomains_analyzed = nil
}

// DomainsAnalyzed returns the value of the "domains_analyzed" field in the mutation.
func (m *TrendPipelineExecutionMutation) DomainsAnalyzed() (r []string, exists bool) {
	v := m.domains_analyzed
	if v == nil {
		return
	}
	return *v, true
}

// OldDomainsAnalyzed returns the old "domains_analyzed" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldDomainsAnalyzed(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomainsAnalyzed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomainsAnalyzed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomainsAnalyzed: %w", err)
	}
	return oldValue.DomainsAnalyzed, nil
}

// AppendDomainsAnalyzed adds s to the "domains_analyzed" field.
func (m *TrendPipelineExecutionMutation) AppendDomainsAnalyzed(s []string) {
	m.appenddomains_analyzed = append(m.appenddomains_analyzed, s...)
}

// AppendedDomainsAnalyzed returns the list of values that were appended to the "domains_analyzed" field in this mutation.
func (m *TrendPipelineExecutionMutation) AppendedDomainsAnalyzed() ([]string, bool) {
	if len(m.appenddomains_analyzed) == 0 {
		return nil, false
	}
	return m.appenddomains_analyzed, true
}

// ClearDomainsAnalyzed clears the value of the "domains_analyzed" field.
func (m *TrendPipelineExecutionMutation) ClearDomainsAnalyzed() {
	m.domains_analyzed = nil
	m.appenddomains_analyzed = nil
	m.clearedFields[trendpipelineexecution.FieldDomainsAnalyzed] = struct{}{}
}

// DomainsAnalyzedCleared returns if the "domains_analyzed" field was cleared in this mutation.
func (m *TrendPipelineExecutionMutation) DomainsAnalyzedCleared() bool {
	_, ok := m.clearedFields[trendpipelineexecution.FieldDomainsAnalyzed]
	return ok
}

// ResetDomainsAnalyzed resets all changes to the "domains_analyzed" field.
func (m *TrendPipelineExecutionMutation) ResetDomainsAnalyzed() {
	m.domains_analyzed = nil
	m.appenddomains_analyzed = nil
	delete(m.clearedFields, trendpipelineexecution.FieldDomainsAnalyzed)
}

// SetTimeWindowDays sets the "time_window_days" field.
func (m *TrendPipelineExecutionMutation) SetTimeWindowDays(i int) {
	m.time_window_days = &i
	m.addtime_window_days = nil
}

// TimeWindowDays returns the value of the "time_window_days" field in the mutation.
func (m *TrendPipelineExecutionMutation) TimeWindowDays() (r int, exists bool) {
	v := m.time_window_days
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeWindowDays returns the old "time_window_days" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldTimeWindowDays(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeWindowDays is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeWindowDays requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeWindowDays: %w", err)
	}
	return oldValue.TimeWindowDays, nil
}

// AddTimeWindowDays adds i to the "time_window_days" field.
func (m *TrendPipelineExecutionMutation) AddTimeWindowDays(i int) {
	if m.addtime_window_days != nil {
		*m.addtime_window_days += i
	} else {
		m.addtime_window_days = &i
	}
}

// AddedTimeWindowDays returns the value that was added to the "time_window_days" field in this mutation.
func (m *TrendPipelineExecutionMutation) AddedTimeWindowDays() (r int, exists bool) {
	v := m.addtime_window_days
	if v == nil {
		return
	}
	return *v, true
}

// ResetTimeWindowDays resets all changes to the "time_window_days" field.
func (m *TrendPipelineExecutionMutation) ResetTimeWindowDays() {
	m.time_window_days = nil
	m.addtime_window_days = nil
}

// SetStage1ClusteringStatus sets the "stage_1_clustering_status" field.
func (m *TrendPipelineExecutionMutation) SetStage1ClusteringStatus(ts trendpipelineexecution.Stage1ClusteringStatus) {
	m.stage_1_clustering_status = &ts
}

// Stage1ClusteringStatus returns the value of the "stage_1_clustering_status" field in the mutation.
func (m *TrendPipelineExecutionMutation) Stage1ClusteringStatus() (r trendpipelineexecution.Stage1ClusteringStatus, exists bool) {
	v := m.stage_1_clustering_status
	if v == nil {
		return
	}
	return *v, true
}

// OldStage1ClusteringStatus returns the old "stage_1_clustering_status" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldStage1ClusteringStatus(ctx context.Context) (v trendpipelineexecution.Stage1ClusteringStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage1ClusteringStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage1ClusteringStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage1ClusteringStatus: %w", err)
	}
	return oldValue.Stage1ClusteringStatus, nil
}

// ResetStage1ClusteringStatus resets all changes to the "stage_1_clustering_status" field.
func (m *TrendPipelineExecutionMutation) ResetStage1ClusteringStatus() {
	m.stage_1_clustering_status = nil
}

// SetStage2TemporalStatus sets the "stage_2_temporal_status" field.
func (m *TrendPipelineExecutionMutation) SetStage2TemporalStatus(ts trendpipelineexecution.Stage2TemporalStatus) {
	m.stage_2_temporal_status = &ts
}

// Stage2TemporalStatus returns the value of the "stage_2_temporal_status" field in the mutation.
func (m *TrendPipelineExecutionMutation) Stage2TemporalStatus() (r trendpipelineexecution.Stage2TemporalStatus, exists bool) {
	v := m.stage_2_temporal_status
	if v == nil {
		return
	}
	return *v, true
}

// OldStage2TemporalStatus returns the old "stage_2_temporal_status" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldStage2TemporalStatus(ctx context.Context) (v trendpipelineexecution.Stage2TemporalStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage2TemporalStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage2TemporalStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage2TemporalStatus: %w", err)
	}
	return oldValue.Stage2TemporalStatus, nil
}

// ResetStage2TemporalStatus resets all changes to the "stage_2_temporal_status" field.
func (m *TrendPipelineExecutionMutation) ResetStage2TemporalStatus() {
	m.stage_2_temporal_status = nil
}

// SetStage3LlmStatus sets the "stage_3_llm_status" field.
func (m *TrendPipelineExecutionMutation) SetStage3LlmStatus(ts trendpipelineexecution.Stage3LlmStatus) {
	m.stage_3_llm_status = &ts
}

// Stage3LlmStatus returns the value of the "stage_3_llm_status" field in the mutation.
func (m *TrendPipelineExecutionMutation) Stage3LlmStatus() (r trendpipelineexecution.Stage3LlmStatus, exists bool) {
	v := m.stage_3_llm_status
	if v == nil {
		return
	}
	return *v, true
}

// OldStage3LlmStatus returns the old "stage_3_llm_status" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldStage3LlmStatus(ctx context.Context) (v trendpipelineexecution.Stage3LlmStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage3LlmStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage3LlmStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage3LlmStatus: %w", err)
	}
	return oldValue.Stage3LlmStatus, nil
}

// ResetStage3LlmStatus resets all changes to the "stage_3_llm_status" field.
func (m *TrendPipelineExecutionMutation) ResetStage3LlmStatus() {
	m.stage_3_llm_status = nil
}

// SetStage4GapStatus sets the "stage_4_gap_status" field.
func (m *TrendPipelineExecutionMutation) SetStage4GapStatus(ts trendpipelineexecution.Stage4GapStatus) {
	m.stage_4_gap_status = &ts
}

// Stage4GapStatus returns the value of the "stage_4_gap_status" field in the mutation.
func (m *TrendPipelineExecutionMutation) Stage4GapStatus() (r trendpipelineexecution.Stage4GapStatus, exists bool) {
	v := m.stage_4_gap_status
	if v == nil {
		return
	}
	return *v, true
}

// OldStage4GapStatus returns the old "stage_4_gap_status" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldStage4GapStatus(ctx context.Context) (v trendpipelineexecution.Stage4GapStatus, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStage4GapStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStage4GapStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStage4GapStatus: %w", err)
	}
	return oldValue.Stage4GapStatus, nil
}

// ResetStage4GapStatus resets all changes to the "stage_4_gap_status" field.
func (m *TrendPipelineExecutionMutation) ResetStage4GapStatus() {
	m.stage_4_gap_status = nil
}

// SetTotalArticles sets the "total_articles" field.
func (m *TrendPipelineExecutionMutation) SetTotalArticles(i int) {
	m.total_articles = &i
	m.addtotal_articles = nil
}

// TotalArticles returns the value of the "total_articles" field in the mutation.
func (m *TrendPipelineExecutionMutation) TotalArticles() (r int, exists bool) {
	v := m.total_articles
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalArticles returns the old "total_articles" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldTotalArticles(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalArticles is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalArticles requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalArticles: %w", err)
	}
	return oldValue.TotalArticles, nil
}

// AddTotalArticles adds i to the "total_articles" field.
func (m *TrendPipelineExecutionMutation) AddTotalArticles(i int) {
	if m.addtotal_articles != nil {
		*m.addtotal_articles += i
	} else {
		m.addtotal_articles = &i
	}
}

// AddedTotalArticles returns the value that was added to the "total_articles" field in this mutation.
func (m *TrendPipelineExecutionMutation) AddedTotalArticles() (r int, exists bool) {
	v := m.addtotal_articles
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalArticles resets all changes to the "total_articles" field.
func (m *TrendPipelineExecutionMutation) ResetTotalArticles() {
	m.total_articles = nil
	m.addtotal_articles = nil
}

// SetTotalClusters sets the "total_clusters" field.
func (m *TrendPipelineExecutionMutation) SetTotalClusters(i int) {
	m.total_clusters = &i
	m.addtotal_clusters = nil
}

// TotalClusters returns the value of the "total_clusters" field in the mutation.
func (m *TrendPipelineExecutionMutation) TotalClusters() (r int, exists bool) {
	v := m.total_clusters
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalClusters returns the old "total_clusters" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldTotalClusters(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalClusters is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalClusters requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalClusters: %w", err)
	}
	return oldValue.TotalClusters, nil
}

// AddTotalClusters adds i to the "total_clusters" field.
func (m *TrendPipelineExecutionMutation) AddTotalClusters(i int) {
	if m.addtotal_clusters != nil {
		*m.addtotal_clusters += i
	} else {
		m.addtotal_clusters = &i
	}
}

// AddedTotalClusters returns the value that was added to the "total_clusters" field in this mutation.
func (m *TrendPipelineExecutionMutation) AddedTotalClusters() (r int, exists bool) {
	v := m.addtotal_clusters
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalClusters resets all changes to the "total_clusters" field.
func (m *TrendPipelineExecutionMutation) ResetTotalClusters() {
	m.total_clusters = nil
	m.addtotal_clusters = nil
}

// SetTotalOutliers sets the "total_outliers" field.
func (m *TrendPipelineExecutionMutation) SetTotalOutliers(i int) {
	m.total_outliers = &i
	m.addtotal_outliers = nil
}

// TotalOutliers returns the value of the "total_outliers" field in the mutation.
func (m *TrendPipelineExecutionMutation) TotalOutliers() (r int, exists bool) {
	v := m.total_outliers
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalOutliers returns the old "total_outliers" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldTotalOutliers(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalOutliers is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalOutliers requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalOutliers: %w", err)
	}
	return oldValue.TotalOutliers, nil
}

// AddTotalOutliers adds i to the "total_outliers" field.
func (m *TrendPipelineExecutionMutation) AddTotalOutliers(i int) {
	if m.addtotal_outliers != nil {
		*m.addtotal_outliers += i
	} else {
		m.addtotal_outliers = &i
	}
}

// AddedTotalOutliers returns the value that was added to the "total_outliers" field in this mutation.
func (m *TrendPipelineExecutionMutation) AddedTotalOutliers() (r int, exists bool) {
	v := m.addtotal_outliers
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalOutliers resets all changes to the "total_outliers" field.
func (m *TrendPipelineExecutionMutation) ResetTotalOutliers() {
	m.total_outliers = nil
	m.addtotal_outliers = nil
}

// SetTotalRecommendations sets the "total_recommendations" field.
func (m *TrendPipelineExecutionMutation) SetTotalRecommendations(i int) {
	m.total_recommendations = &i
	m.addtotal_recommendations = nil
}

// TotalRecommendations returns the value of the "total_recommendations" field in the mutation.
func (m *TrendPipelineExecutionMutation) TotalRecommendations() (r int, exists bool) {
	v := m.total_recommendations
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalRecommendations returns the old "total_recommendations" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldTotalRecommendations(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalRecommendations is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalRecommendations requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalRecommendations: %w", err)
	}
	return oldValue.TotalRecommendations, nil
}

// AddTotalRecommendations adds i to the "total_recommendations" field.
func (m *TrendPipelineExecutionMutation) AddTotalRecommendations(i int) {
	if m.addtotal_recommendations != nil {
		*m.addtotal_recommendations += i
	} else {
		m.addtotal_recommendations = &i
	}
}

// AddedTotalRecommendations returns the value that was added to the "total_recommendations" field in this mutation.
func (m *TrendPipelineExecutionMutation) AddedTotalRecommendations() (r int, exists bool) {
	v := m.addtotal_recommendations
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalRecommendations resets all changes to the "total_recommendations" field.
func (m *TrendPipelineExecutionMutation) ResetTotalRecommendations() {
	m.total_recommendations = nil
	m.addtotal_recommendations = nil
}

// SetTotalGaps sets the "total_gaps" field.
func (m *TrendPipelineExecutionMutation) SetTotalGaps(i int) {
	m.total_gaps = &i
	m.addtotal_gaps = nil
}

// TotalGaps returns the value of the "total_gaps" field in the mutation.
func (m *TrendPipelineExecutionMutation) TotalGaps() (r int, exists bool) {
	v := m.total_gaps
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalGaps returns the old "total_gaps" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldTotalGaps(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalGaps is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalGaps requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalGaps: %w", err)
	}
	return oldValue.TotalGaps, nil
}

// AddTotalGaps adds i to the "total_gaps" field.
func (m *TrendPipelineExecutionMutation) AddTotalGaps(i int) {
	if m.addtotal_gaps != nil {
		*m.addtotal_gaps += i
	} else {
		m.addtotal_gaps = &i
	}
}

// AddedTotalGaps returns the value that was added to the "total_gaps" field in this mutation.
func (m *TrendPipelineExecutionMutation) AddedTotalGaps() (r int, exists bool) {
	v := m.addtotal_gaps
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalGaps resets all changes to the "total_gaps" field.
func (m *TrendPipelineExecutionMutation) ResetTotalGaps() {
	m.total_gaps = nil
	m.addtotal_gaps = nil
}

// SetOutlierAnalysis sets the "outlier_analysis" field.
func (m *TrendPipelineExecutionMutation) SetOutlierAnalysis(value map[string]interface{}) {
	m.outlier_analysis = &value
}

// OutlierAnalysis returns the value of the "outlier_analysis" field in the mutation.
func (m *TrendPipelineExecutionMutation) OutlierAnalysis() (r map[string]interface{}, exists bool) {
	v := m.outlier_analysis
	if v == nil {
		return
	}
	return *v, true
}

// OldOutlierAnalysis returns the old "outlier_analysis" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldOutlierAnalysis(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutlierAnalysis is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutlierAnalysis requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutlierAnalysis: %w", err)
	}
	return oldValue.OutlierAnalysis, nil
}

// ClearOutlierAnalysis clears the value of the "outlier_analysis" field.
func (m *TrendPipelineExecutionMutation) ClearOutlierAnalysis() {
	m.outlier_analysis = nil
	m.clearedFields[trendpipelineexecution.FieldOutlierAnalysis] = struct{}{}
}

// OutlierAnalysisCleared returns if the "outlier_analysis" field was cleared in this mutation.
func (m *TrendPipelineExecutionMutation) OutlierAnalysisCleared() bool {
	_, ok := m.clearedFields[trendpipelineexecution.FieldOutlierAnalysis]
	return ok
}

// ResetOutlierAnalysis resets all changes to the "outlier_analysis" field.
func (m *TrendPipelineExecutionMutation) ResetOutlierAnalysis() {
	m.outlier_analysis = nil
	delete(m.clearedFields, trendpipelineexecution.FieldOutlierAnalysis)
}

// SetStartTime sets the "start_time" field.
func (m *TrendPipelineExecutionMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *TrendPipelineExecutionMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldStartTime(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *TrendPipelineExecutionMutation) ResetStartTime() {
	m.start_time = nil
}

// SetEndTime sets the "end_time" field.
func (m *TrendPipelineExecutionMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *TrendPipelineExecutionMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *TrendPipelineExecutionMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[trendpipelineexecution.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *TrendPipelineExecutionMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[trendpipelineexecution.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *TrendPipelineExecutionMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, trendpipelineexecution.FieldEndTime)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *TrendPipelineExecutionMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *TrendPipelineExecutionMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *TrendPipelineExecutionMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *TrendPipelineExecutionMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *TrendPipelineExecutionMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[trendpipelineexecution.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *TrendPipelineExecutionMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[trendpipelineexecution.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *TrendPipelineExecutionMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, trendpipelineexecution.FieldDurationSeconds)
}

// SetErrorMessage sets the "error_message" field.
func (m *TrendPipelineExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *TrendPipelineExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *TrendPipelineExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[trendpipelineexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *TrendPipelineExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[trendpipelineexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *TrendPipelineExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, trendpipelineexecution.FieldErrorMessage)
}

// SetIsValid sets the "is_valid" field.
func (m *TrendPipelineExecutionMutation) SetIsValid(b bool) {
	m.is_valid = &b
}

// IsValid returns the value of the "is_valid" field in the mutation.
func (m *TrendPipelineExecutionMutation) IsValid() (r bool, exists bool) {
	v := m.is_valid
	if v == nil {
		return
	}
	return *v, true
}

// OldIsValid returns the old "is_valid" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldIsValid(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsValid is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsValid requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsValid: %w", err)
	}
	return oldValue.IsValid, nil
}

// ResetIsValid resets all changes to the "is_valid" field.
func (m *TrendPipelineExecutionMutation) ResetIsValid() {
	m.is_valid = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TrendPipelineExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TrendPipelineExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TrendPipelineExecution entity.
// If the TrendPipelineExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TrendPipelineExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TrendPipelineExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddClusterIDs adds the "clusters" edge to the TopicCluster entity by ids.
func (m *TrendPipelineExecutionMutation) AddClusterIDs(ids ...int) {
	if m.clusters == nil {
		m.clusters = make(map[int]struct{})
	}
	for i := range ids {
		m.clusters[ids[i]] = struct{}{}
	}
}

// ClearClusters clears the "clusters" edge to the TopicCluster entity.
func (m *TrendPipelineExecutionMutation) ClearClusters() {
	m.clearedclusters = true
}

// ClustersCleared reports if the "clusters" edge to the TopicCluster entity was cleared.
func (m *TrendPipelineExecutionMutation) ClustersCleared() bool {
	return m.clearedclusters
}

// RemoveClusterIDs removes the "clusters" edge to the TopicCluster entity by IDs.
func (m *TrendPipelineExecutionMutation) RemoveClusterIDs(ids ...int) {
	if m.removedclusters == nil {
		m.removedclusters = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.clusters, ids[i])
		m.removedclusters[ids[i]] = struct{}{}
	}
}

// RemovedClusters returns the removed IDs of the "clusters" edge to the TopicCluster entity.
func (m *TrendPipelineExecutionMutation) RemovedClustersIDs() (ids []int) {
	for id := range m.removedclusters {
		ids = append(ids, id)
	}
	return
}

// ClustersIDs returns the "clusters" edge IDs in the mutation.
func (m *TrendPipelineExecutionMutation) ClustersIDs() (ids []int) {
	for id := range m.clusters {
		ids = append(ids, id)
	}
	return
}

// ResetClusters resets all changes to the "clusters" edge.
func (m *TrendPipelineExecutionMutation) ResetClusters() {
	m.clusters = nil
	m.clearedclusters = false
	m.removedclusters = nil
}

// AddOutlierIDs adds the "outliers" edge to the TopicOutlier entity by ids.
func (m *TrendPipelineExecutionMutation) AddOutlierIDs(ids ...int) {
	if m.outliers == nil {
		m.outliers = make(map[int]struct{})
	}
	for i := range ids {
		m.outliers[ids[i]] = struct{}{}
	}
}

// ClearOutliers clears the "outliers" edge to the TopicOutlier entity.
func (m *TrendPipelineExecutionMutation) ClearOutliers() {
	m.clearedoutliers = true
}

// OutliersCleared reports if the "outliers" edge to the TopicOutlier entity was cleared.
func (m *TrendPipelineExecutionMutation) OutliersCleared() bool {
	return m.clearedoutliers
}

// RemoveOutlierIDs removes the "outliers" edge to the TopicOutlier entity by IDs.
func (m *TrendPipelineExecutionMutation) RemoveOutlierIDs(ids ...int) {
	if m.removedoutliers == nil {
		m.removedoutliers = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.outliers, ids[i])
		m.removedoutliers[ids[i]] = struct{}{}
	}
}

// RemovedOutliers returns the removed IDs of the "outliers" edge to the TopicOutlier entity.
func (m *TrendPipelineExecutionMutation) RemovedOutliersIDs() (ids []int) {
	for id := range m.removedoutliers {
		ids = append(ids, id)
	}
	return
}

// OutliersIDs returns the "outliers" edge IDs in the mutation.
func (m *TrendPipelineExecutionMutation) OutliersIDs() (ids []int) {
	for id := range m.outliers {
		ids = append(ids, id)
	}
	return
}

// ResetOutliers resets all changes to the "outliers" edge.
func (m *TrendPipelineExecutionMutation) ResetOutliers() {
	m.outliers = nil
	m.clearedoutliers = false
	m.removedoutliers = nil
}

// Where appends a list predicates to the TrendPipelineExecutionMutation builder.
func (m *TrendPipelineExecutionMutation) Where(ps ...predicate.TrendPipelineExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TrendPipelineExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TrendPipelineExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TrendPipelineExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TrendPipelineExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TrendPipelineExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TrendPipelineExecution).
func (m *TrendPipelineExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TrendPipelineExecutionMutation) Fields() []string {
	fields := make([]string, 0, 20)
	if m.execution_id != nil {
		fields = append(fields, trendpipelineexecution.FieldExecutionID)
	}
	if m.client_domain != nil {
		fields = append(fields, trendpipelineexecution.FieldClientDomain)
	}
	if m.domains_analyzed != nil {
		fields = append(fields, trendpipelineexecution.FieldDomainsAnalyzed)
	}
	if m.time_window_days != nil {
		fields = append(fields, trendpipelineexecution.FieldTimeWindowDays)
	}
	if m.stage_1_clustering_status != nil {
		fields = append(fields, trendpipelineexecution.FieldStage1ClusteringStatus)
	}
	if m.stage_2_temporal_status != nil {
		fields = append(fields, trendpipelineexecution.FieldStage2TemporalStatus)
	}
	if m.stage_3_llm_status != nil {
		fields = append(fields, trendpipelineexecution.FieldStage3LlmStatus)
	}
	if m.stage_4_gap_status != nil {
		fields = append(fields, trendpipelineexecution.FieldStage4GapStatus)
	}
	if m.total_articles != nil {
		fields = append(fields, trendpipelineexecution.FieldTotalArticles)
	}
	if m.total_clusters != nil {
		fields = append(fields, trendpipelineexecution.FieldTotalClusters)
	}
	if m.total_outliers != nil {
		fields = append(fields, trendpipelineexecution.FieldTotalOutliers)
	}
	if m.total_recommendations != nil {
		fields = append(fields, trendpipelineexecution.FieldTotalRecommendations)
	}
	if m.total_gaps != nil {
		fields = append(fields, trendpipelineexecution.FieldTotalGaps)
	}
	if m.outlier_analysis != nil {
		fields = append(fields, trendpipelineexecution.FieldOutlierAnalysis)
	}
	if m.start_time != nil {
		fields = append(fields, trendpipelineexecution.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, trendpipelineexecution.FieldEndTime)
	}
	if m.duration_seconds != nil {
		fields = append(fields, trendpipelineexecution.FieldDurationSeconds)
	}
	if m.error_message != nil {
		fields = append(fields, trendpipelineexecution.FieldErrorMessage)
	}
	if m.is_valid != nil {
		fields = append(fields, trendpipelineexecution.FieldIsValid)
	}
	if m.created_at != nil {
		fields = append(fields, trendpipelineexecution.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TrendPipelineExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case trendpipelineexecution.FieldExecutionID:
		return m.ExecutionID()
	case trendpipelineexecution.FieldClientDomain:
		return m.ClientDomain()
	case trendpipelineexecution.FieldDomainsAnalyzed:
		return m.DomainsAnalyzed()
	case trendpipelineexecution.FieldTimeWindowDays:
		return m.TimeWindowDays()
	case trendpipelineexecution.FieldStage1ClusteringStatus:
		return m.Stage1ClusteringStatus()
	case trendpipelineexecution.FieldStage2TemporalStatus:
		return m.Stage2TemporalStatus()
	case trendpipelineexecution.FieldStage3LlmStatus:
		return m.Stage3LlmStatus()
	case trendpipelineexecution.FieldStage4GapStatus:
		return m.Stage4GapStatus()
	case trendpipelineexecution.FieldTotalArticles:
		return m.TotalArticles()
	case trendpipelineexecution.FieldTotalClusters:
		return m.TotalClusters()
	case trendpipelineexecution.FieldTotalOutliers:
		return m.TotalOutliers()
	case trendpipelineexecution.FieldTotalRecommendations:
		return m.TotalRecommendations()
	case trendpipelineexecution.FieldTotalGaps:
		return m.TotalGaps()
	case trendpipelineexecution.FieldOutlierAnalysis:
		return m.OutlierAnalysis()
	case trendpipelineexecution.FieldStartTime:
		return m.StartTime()
	case trendpipelineexecution.FieldEndTime:
		return m.EndTime()
	case trendpipelineexecution.FieldDurationSeconds:
		return m.DurationSeconds()
	case trendpipelineexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case trendpipelineexecution.FieldIsValid:
		return m.IsValid()
	case trendpipelineexecution.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TrendPipelineExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case trendpipelineexecution.FieldExecutionID:
		return m.OldExecutionID(ctx)
	case trendpipelineexecution.FieldClientDomain:
		return m.OldClientDomain(ctx)
	case trendpipelineexecution.FieldDomainsAnalyzed:
		return m.OldDomainsAnalyzed(ctx)
	case trendpipelineexecution.FieldTimeWindowDays:
		return m.OldTimeWindowDays(ctx)
	case trendpipelineexecution.FieldStage1ClusteringStatus:
		return m.OldStage1ClusteringStatus(ctx)
	case trendpipelineexecution.FieldStage2TemporalStatus:
		return m.OldStage2TemporalStatus(ctx)
	case trendpipelineexecution.FieldStage3LlmStatus:
		return m.OldStage3LlmStatus(ctx)
	case trendpipelineexecution.FieldStage4GapStatus:
		return m.OldStage4GapStatus(ctx)
	case trendpipelineexecution.FieldTotalArticles:
		return m.OldTotalArticles(ctx)
	case trendpipelineexecution.FieldTotalClusters:
		return m.OldTotalClusters(ctx)
	case trendpipelineexecution.FieldTotalOutliers:
		return m.OldTotalOutliers(ctx)
	case trendpipelineexecution.FieldTotalRecommendations:
		return m.OldTotalRecommendations(ctx)
	case trendpipelineexecution.FieldTotalGaps:
		return m.OldTotalGaps(ctx)
	case trendpipelineexecution.FieldOutlierAnalysis:
		return m.OldOutlierAnalysis(ctx)
	case trendpipelineexecution.FieldStartTime:
		return m.OldStartTime(ctx)
	case trendpipelineexecution.FieldEndTime:
		return m.OldEndTime(ctx)
	case trendpipelineexecution.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case trendpipelineexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case trendpipelineexecution.FieldIsValid:
		return m.OldIsValid(ctx)
	case trendpipelineexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TrendPipelineExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrendPipelineExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case trendpipelineexecution.FieldExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExecutionID(v)
		return nil
	case trendpipelineexecution.FieldClientDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClientDomain(v)
		return nil
	case trendpipelineexecution.FieldDomainsAnalyzed:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomainsAnalyzed(v)
		return nil
	case trendpipelineexecution.FieldTimeWindowDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeWindowDays(v)
		return nil
	case trendpipelineexecution.FieldStage1ClusteringStatus:
		v, ok := value.(trendpipelineexecution.Stage1ClusteringStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage1ClusteringStatus(v)
		return nil
	case trendpipelineexecution.FieldStage2TemporalStatus:
		v, ok := value.(trendpipelineexecution.Stage2TemporalStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage2TemporalStatus(v)
		return nil
	case trendpipelineexecution.FieldStage3LlmStatus:
		v, ok := value.(trendpipelineexecution.Stage3LlmStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage3LlmStatus(v)
		return nil
	case trendpipelineexecution.FieldStage4GapStatus:
		v, ok := value.(trendpipelineexecution.Stage4GapStatus)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStage4GapStatus(v)
		return nil
	case trendpipelineexecution.FieldTotalArticles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalArticles(v)
		return nil
	case trendpipelineexecution.FieldTotalClusters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalClusters(v)
		return nil
	case trendpipelineexecution.FieldTotalOutliers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalOutliers(v)
		return nil
	case trendpipelineexecution.FieldTotalRecommendations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalRecommendations(v)
		return nil
	case trendpipelineexecution.FieldTotalGaps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalGaps(v)
		return nil
	case trendpipelineexecution.FieldOutlierAnalysis:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutlierAnalysis(v)
		return nil
	case trendpipelineexecution.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case trendpipelineexecution.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case trendpipelineexecution.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case trendpipelineexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case trendpipelineexecution.FieldIsValid:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsValid(v)
		return nil
	case trendpipelineexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TrendPipelineExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TrendPipelineExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addtime_window_days != nil {
		fields = append(fields, trendpipelineexecution.FieldTimeWindowDays)
	}
	if m.addtotal_articles != nil {
		fields = append(fields, trendpipelineexecution.FieldTotalArticles)
	}
	if m.addtotal_clusters != nil {
		fields = append(fields, trendpipelineexecution.FieldTotalClusters)
	}
	if m.addtotal_outliers != nil {
		fields = append(fields, trendpipelineexecution.FieldTotalOutliers)
	}
	if m.addtotal_recommendations != nil {
		fields = append(fields, trendpipelineexecution.FieldTotalRecommendations)
	}
	if m.addtotal_gaps != nil {
		fields = append(fields, trendpipelineexecution.FieldTotalGaps)
	}
	if m.addduration_seconds != nil {
		fields = append(fields, trendpipelineexecution.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TrendPipelineExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case trendpipelineexecution.FieldTimeWindowDays:
		return m.AddedTimeWindowDays()
	case trendpipelineexecution.FieldTotalArticles:
		return m.AddedTotalArticles()
	case trendpipelineexecution.FieldTotalClusters:
		return m.AddedTotalClusters()
	case trendpipelineexecution.FieldTotalOutliers:
		return m.AddedTotalOutliers()
	case trendpipelineexecution.FieldTotalRecommendations:
		return m.AddedTotalRecommendations()
	case trendpipelineexecution.FieldTotalGaps:
		return m.AddedTotalGaps()
	case trendpipelineexecution.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TrendPipelineExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case trendpipelineexecution.FieldTimeWindowDays:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTimeWindowDays(v)
		return nil
	case trendpipelineexecution.FieldTotalArticles:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalArticles(v)
		return nil
	case trendpipelineexecution.FieldTotalClusters:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalClusters(v)
		return nil
	case trendpipelineexecution.FieldTotalOutliers:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalOutliers(v)
		return nil
	case trendpipelineexecution.FieldTotalRecommendations:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalRecommendations(v)
		return nil
	case trendpipelineexecution.FieldTotalGaps:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalGaps(v)
		return nil
	case trendpipelineexecution.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown TrendPipelineExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TrendPipelineExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(trendpipelineexecution.FieldClientDomain) {
		fields = append(fields, trendpipelineexecution.FieldClientDomain)
	}
	if m.FieldCleared(trendpipelineexecution.FieldDomainsAnalyzed) {
		fields = append(fields, trendpipelineexecution.FieldDomainsAnalyzed)
	}
	if m.FieldCleared(trendpipelineexecution.FieldOutlierAnalysis) {
		fields = append(fields, trendpipelineexecution.FieldOutlierAnalysis)
	}
	if m.FieldCleared(trendpipelineexecution.FieldEndTime) {
		fields = append(fields, trendpipelineexecution.FieldEndTime)
	}
	if m.FieldCleared(trendpipelineexecution.FieldDurationSeconds) {
		fields = append(fields, trendpipelineexecution.FieldDurationSeconds)
	}
	if m.FieldCleared(trendpipelineexecution.FieldErrorMessage) {
		fields = append(fields, trendpipelineexecution.FieldErrorMessage)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TrendPipelineExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TrendPipelineExecutionMutation) ClearField(name string) error {
	switch name {
	case trendpipelineexecution.FieldClientDomain:
		m.ClearClientDomain()
		return nil
	case trendpipelineexecution.FieldDomainsAnalyzed:
		m.ClearDomainsAnalyzed()
		return nil
	case trendpipelineexecution.FieldOutlierAnalysis:
		m.ClearOutlierAnalysis()
		return nil
	case trendpipelineexecution.FieldEndTime:
		m.ClearEndTime()
		return nil
	case trendpipelineexecution.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case trendpipelineexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	}
	return fmt.Errorf("unknown TrendPipelineExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TrendPipelineExecutionMutation) ResetField(name string) error {
	switch name {
	case trendpipelineexecution.FieldExecutionID:
		m.ResetExecutionID()
		return nil
	case trendpipelineexecution.FieldClientDomain:
		m.ResetClientDomain()
		return nil
	case trendpipelineexecution.FieldDomainsAnalyzed:
		m.ResetDomainsAnalyzed()
		return nil
	case trendpipelineexecution.FieldTimeWindowDays:
		m.ResetTimeWindowDays()
		return nil
	case trendpipelineexecution.FieldStage1ClusteringStatus:
		m.ResetStage1ClusteringStatus()
		return nil
	case trendpipelineexecution.FieldStage2TemporalStatus:
		m.ResetStage2TemporalStatus()
		return nil
	case trendpipelineexecution.FieldStage3LlmStatus:
		m.ResetStage3LlmStatus()
		return nil
	case trendpipelineexecution.FieldStage4GapStatus:
		m.ResetStage4GapStatus()
		return nil
	case trendpipelineexecution.FieldTotalArticles:
		m.ResetTotalArticles()
		return nil
	case trendpipelineexecution.FieldTotalClusters:
		m.ResetTotalClusters()
		return nil
	case trendpipelineexecution.FieldTotalOutliers:
		m.ResetTotalOutliers()
		return nil
	case trendpipelineexecution.FieldTotalRecommendations:
		m.ResetTotalRecommendations()
		return nil
	case trendpipelineexecution.FieldTotalGaps:
		m.ResetTotalGaps()
		return nil
	case trendpipelineexecution.FieldOutlierAnalysis:
		m.ResetOutlierAnalysis()
		return nil
	case trendpipelineexecution.FieldStartTime:
		m.ResetStartTime()
		return nil
	case trendpipelineexecution.FieldEndTime:
		m.ResetEndTime()
		return nil
	case trendpipelineexecution.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case trendpipelineexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case trendpipelineexecution.FieldIsValid:
		m.ResetIsValid()
		return nil
	case trendpipelineexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown TrendPipelineExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TrendPipelineExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clusters != nil {
		edges = append(edges, trendpipelineexecution.EdgeClusters)
	}
	if m.outliers != nil {
		edges = append(edges, trendpipelineexecution.EdgeOutliers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TrendPipelineExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case trendpipelineexecution.EdgeClusters:
		ids := make([]ent.Value, 0, len(m.clusters))
		for id := range m.clusters {
			ids = append(ids, id)
		}
		return ids
	case trendpipelineexecution.EdgeOutliers:
		ids := make([]ent.Value, 0, len(m.outliers))
		for id := range m.outliers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TrendPipelineExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedclusters != nil {
		edges = append(edges, trendpipelineexecution.EdgeClusters)
	}
	if m.removedoutliers != nil {
		edges = append(edges, trendpipelineexecution.EdgeOutliers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TrendPipelineExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case trendpipelineexecution.EdgeClusters:
		ids := make([]ent.Value, 0, len(m.removedclusters))
		for id := range m.removedclusters {
			ids = append(ids, id)
		}
		return ids
	case trendpipelineexecution.EdgeOutliers:
		ids := make([]ent.Value, 0, len(m.removedoutliers))
		for id := range m.removedoutliers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TrendPipelineExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedclusters {
		edges = append(edges, trendpipelineexecution.EdgeClusters)
	}
	if m.clearedoutliers {
		edges = append(edges, trendpipelineexecution.EdgeOutliers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TrendPipelineExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case trendpipelineexecution.EdgeClusters:
		return m.clearedclusters
	case trendpipelineexecution.EdgeOutliers:
		return m.clearedoutliers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TrendPipelineExecutionMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown TrendPipelineExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TrendPipelineExecutionMutation) ResetEdge(name string) error {
	switch name {
	case trendpipelineexecution.EdgeClusters:
		m.ResetClusters()
		return nil
	case trendpipelineexecution.EdgeOutliers:
		m.ResetOutliers()
		return nil
	}
	return fmt.Errorf("unknown TrendPipelineExecution edge %s", name)
}

// WorkflowExecutionMutation represents an operation that mutates the WorkflowExecution nodes in the graph.
type WorkflowExecutionMutation struct {
	config
	op                         Op
	typ                        string
	id                         *string
	workflow_type              *workflowexecution.WorkflowType
	domain                     *string
	status                     *workflowexecution.Status
	was_success                *bool
	input_data                 *map[string]interface{}
	output_data                *map[string]interface{}
	error_message              *string
	start_time                 *time.Time
	end_time                   *time.Time
	duration_seconds           *float64
	addduration_seconds        *float64
	created_at                 *time.Time
	updated_at                 *time.Time
	deleted_at                 *time.Time
	clearedFields              map[string]struct{}
	parent                     *string
	clearedparent              bool
	children                   map[string]struct{}
	removedchildren            map[string]struct{}
	clearedchildren            bool
	audit_logs                 map[int]struct{}
	removedaudit_logs          map[int]struct{}
	clearedaudit_logs          bool
	performance_metrics        map[int]struct{}
	removedperformance_metrics map[int]struct{}
	clearedperformance_metrics bool
	done                       bool
	oldValue                   func(context.Context) (*WorkflowExecution, error)
	predicates                 []predicate.WorkflowExecution
}

var _ ent.Mutation = (*WorkflowExecutionMutation)(nil)

// workflowexecutionOption allows management of the mutation configuration using functional options.
type workflowexecutionOption func(*WorkflowExecutionMutation)

// newWorkflowExecutionMutation creates new mutation for the WorkflowExecution entity.
func newWorkflowExecutionMutation(c config, op Op, opts ...workflowexecutionOption) *WorkflowExecutionMutation {
	m := &WorkflowExecutionMutation{
		config:        c,
		op:            op,
		typ:           TypeWorkflowExecution,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withWorkflowExecutionID sets the ID field of the mutation.
func withWorkflowExecutionID(id string) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		var (
			err   error
			once  sync.Once
			value *WorkflowExecution
		)
		m.oldValue = func(ctx context.Context) (*WorkflowExecution, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().WorkflowExecution.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withWorkflowExecution sets the old WorkflowExecution of the mutation.
func withWorkflowExecution(node *WorkflowExecution) workflowexecutionOption {
	return func(m *WorkflowExecutionMutation) {
		m.oldValue = func(context.Context) (*WorkflowExecution, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m WorkflowExecutionMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m WorkflowExecutionMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of WorkflowExecution entities.
func (m *WorkflowExecutionMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *WorkflowExecutionMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *WorkflowExecutionMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().WorkflowExecution.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetWorkflowType sets the "workflow_type" field.
func (m *WorkflowExecutionMutation) SetWorkflowType(wt workflowexecution.WorkflowType) {
	m.workflow_type = &wt
}

// WorkflowType returns the value of the "workflow_type" field in the mutation.
func (m *WorkflowExecutionMutation) WorkflowType() (r workflowexecution.WorkflowType, exists bool) {
	v := m.workflow_type
	if v == nil {
		return
	}
	return *v, true
}

// OldWorkflowType returns the old "workflow_type" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldWorkflowType(ctx context.Context) (v workflowexecution.WorkflowType, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWorkflowType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWorkflowType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWorkflowType: %w", err)
	}
	return oldValue.WorkflowType, nil
}

// ResetWorkflowType resets all changes to the "workflow_type" field.
func (m *WorkflowExecutionMutation) ResetWorkflowType() {
	m.workflow_type = nil
}

// SetDomain sets the "domain" field.
func (m *WorkflowExecutionMutation) SetDomain(s string) {
	m.domain = &s
}

// Domain returns the value of the "domain" field in the mutation.
func (m *WorkflowExecutionMutation) Domain() (r string, exists bool) {
	v := m.domain
	if v == nil {
		return
	}
	return *v, true
}

// OldDomain returns the old "domain" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldDomain(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDomain is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDomain requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDomain: %w", err)
	}
	return oldValue.Domain, nil
}

// ClearDomain clears the value of the "domain" field.
func (m *WorkflowExecutionMutation) ClearDomain() {
	m.domain = nil
	m.clearedFields[workflowexecution.FieldDomain] = struct{}{}
}

// DomainCleared returns if the "domain" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) DomainCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldDomain]
	return ok
}

// ResetDomain resets all changes to the "domain" field.
func (m *WorkflowExecutionMutation) ResetDomain() {
	m.domain = nil
	delete(m.clearedFields, workflowexecution.FieldDomain)
}

// SetStatus sets the "status" field.
func (m *WorkflowExecutionMutation) SetStatus(w workflowexecution.Status) {
	m.status = &w
}

// Status returns the value of the "status" field in the mutation.
func (m *WorkflowExecutionMutation) Status() (r workflowexecution.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStatus(ctx context.Context) (v workflowexecution.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *WorkflowExecutionMutation) ResetStatus() {
	m.status = nil
}

// SetWasSuccess sets the "was_success" field.
func (m *WorkflowExecutionMutation) SetWasSuccess(b bool) {
	m.was_success = &b
}

// WasSuccess returns the value of the "was_success" field in the mutation.
func (m *WorkflowExecutionMutation) WasSuccess() (r bool, exists bool) {
	v := m.was_success
	if v == nil {
		return
	}
	return *v, true
}

// OldWasSuccess returns the old "was_success" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldWasSuccess(ctx context.Context) (v *bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldWasSuccess is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldWasSuccess requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldWasSuccess: %w", err)
	}
	return oldValue.WasSuccess, nil
}

// ClearWasSuccess clears the value of the "was_success" field.
func (m *WorkflowExecutionMutation) ClearWasSuccess() {
	m.was_success = nil
	m.clearedFields[workflowexecution.FieldWasSuccess] = struct{}{}
}

// WasSuccessCleared returns if the "was_success" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) WasSuccessCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldWasSuccess]
	return ok
}

// ResetWasSuccess resets all changes to the "was_success" field.
func (m *WorkflowExecutionMutation) ResetWasSuccess() {
	m.was_success = nil
	delete(m.clearedFields, workflowexecution.FieldWasSuccess)
}

// SetInputData sets the "input_data" field.
func (m *WorkflowExecutionMutation) SetInputData(value map[string]interface{}) {
	m.input_data = &value
}

// InputData returns the value of the "input_data" field in the mutation.
func (m *WorkflowExecutionMutation) InputData() (r map[string]interface{}, exists bool) {
	v := m.input_data
	if v == nil {
		return
	}
	return *v, true
}

// OldInputData returns the old "input_data" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldInputData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldInputData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldInputData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldInputData: %w", err)
	}
	return oldValue.InputData, nil
}

// ClearInputData clears the value of the "input_data" field.
func (m *WorkflowExecutionMutation) ClearInputData() {
	m.input_data = nil
	m.clearedFields[workflowexecution.FieldInputData] = struct{}{}
}

// InputDataCleared returns if the "input_data" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) InputDataCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldInputData]
	return ok
}

// ResetInputData resets all changes to the "input_data" field.
func (m *WorkflowExecutionMutation) ResetInputData() {
	m.input_data = nil
	delete(m.clearedFields, workflowexecution.FieldInputData)
}

// SetOutputData sets the "output_data" field.
func (m *WorkflowExecutionMutation) SetOutputData(value map[string]interface{}) {
	m.output_data = &value
}

// OutputData returns the value of the "output_data" field in the mutation.
func (m *WorkflowExecutionMutation) OutputData() (r map[string]interface{}, exists bool) {
	v := m.output_data
	if v == nil {
		return
	}
	return *v, true
}

// OldOutputData returns the old "output_data" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldOutputData(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOutputData is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOutputData requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOutputData: %w", err)
	}
	return oldValue.OutputData, nil
}

// ClearOutputData clears the value of the "output_data" field.
func (m *WorkflowExecutionMutation) ClearOutputData() {
	m.output_data = nil
	m.clearedFields[workflowexecution.FieldOutputData] = struct{}{}
}

// OutputDataCleared returns if the "output_data" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) OutputDataCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldOutputData]
	return ok
}

// ResetOutputData resets all changes to the "output_data" field.
func (m *WorkflowExecutionMutation) ResetOutputData() {
	m.output_data = nil
	delete(m.clearedFields, workflowexecution.FieldOutputData)
}

// SetErrorMessage sets the "error_message" field.
func (m *WorkflowExecutionMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *WorkflowExecutionMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *WorkflowExecutionMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[workflowexecution.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *WorkflowExecutionMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, workflowexecution.FieldErrorMessage)
}

// SetStartTime sets the "start_time" field.
func (m *WorkflowExecutionMutation) SetStartTime(t time.Time) {
	m.start_time = &t
}

// StartTime returns the value of the "start_time" field in the mutation.
func (m *WorkflowExecutionMutation) StartTime() (r time.Time, exists bool) {
	v := m.start_time
	if v == nil {
		return
	}
	return *v, true
}

// OldStartTime returns the old "start_time" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldStartTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartTime: %w", err)
	}
	return oldValue.StartTime, nil
}

// ClearStartTime clears the value of the "start_time" field.
func (m *WorkflowExecutionMutation) ClearStartTime() {
	m.start_time = nil
	m.clearedFields[workflowexecution.FieldStartTime] = struct{}{}
}

// StartTimeCleared returns if the "start_time" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) StartTimeCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldStartTime]
	return ok
}

// ResetStartTime resets all changes to the "start_time" field.
func (m *WorkflowExecutionMutation) ResetStartTime() {
	m.start_time = nil
	delete(m.clearedFields, workflowexecution.FieldStartTime)
}

// SetEndTime sets the "end_time" field.
func (m *WorkflowExecutionMutation) SetEndTime(t time.Time) {
	m.end_time = &t
}

// EndTime returns the value of the "end_time" field in the mutation.
func (m *WorkflowExecutionMutation) EndTime() (r time.Time, exists bool) {
	v := m.end_time
	if v == nil {
		return
	}
	return *v, true
}

// OldEndTime returns the old "end_time" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldEndTime(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEndTime is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEndTime requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEndTime: %w", err)
	}
	return oldValue.EndTime, nil
}

// ClearEndTime clears the value of the "end_time" field.
func (m *WorkflowExecutionMutation) ClearEndTime() {
	m.end_time = nil
	m.clearedFields[workflowexecution.FieldEndTime] = struct{}{}
}

// EndTimeCleared returns if the "end_time" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) EndTimeCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldEndTime]
	return ok
}

// ResetEndTime resets all changes to the "end_time" field.
func (m *WorkflowExecutionMutation) ResetEndTime() {
	m.end_time = nil
	delete(m.clearedFields, workflowexecution.FieldEndTime)
}

// SetDurationSeconds sets the "duration_seconds" field.
func (m *WorkflowExecutionMutation) SetDurationSeconds(f float64) {
	m.duration_seconds = &f
	m.addduration_seconds = nil
}

// DurationSeconds returns the value of the "duration_seconds" field in the mutation.
func (m *WorkflowExecutionMutation) DurationSeconds() (r float64, exists bool) {
	v := m.duration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// OldDurationSeconds returns the old "duration_seconds" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldDurationSeconds(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDurationSeconds is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDurationSeconds requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDurationSeconds: %w", err)
	}
	return oldValue.DurationSeconds, nil
}

// AddDurationSeconds adds f to the "duration_seconds" field.
func (m *WorkflowExecutionMutation) AddDurationSeconds(f float64) {
	if m.addduration_seconds != nil {
		*m.addduration_seconds += f
	} else {
		m.addduration_seconds = &f
	}
}

// AddedDurationSeconds returns the value that was added to the "duration_seconds" field in this mutation.
func (m *WorkflowExecutionMutation) AddedDurationSeconds() (r float64, exists bool) {
	v := m.addduration_seconds
	if v == nil {
		return
	}
	return *v, true
}

// ClearDurationSeconds clears the value of the "duration_seconds" field.
func (m *WorkflowExecutionMutation) ClearDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	m.clearedFields[workflowexecution.FieldDurationSeconds] = struct{}{}
}

// DurationSecondsCleared returns if the "duration_seconds" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) DurationSecondsCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldDurationSeconds]
	return ok
}

// ResetDurationSeconds resets all changes to the "duration_seconds" field.
func (m *WorkflowExecutionMutation) ResetDurationSeconds() {
	m.duration_seconds = nil
	m.addduration_seconds = nil
	delete(m.clearedFields, workflowexecution.FieldDurationSeconds)
}

// SetParentExecutionID sets the "parent_execution_id" field.
func (m *WorkflowExecutionMutation) SetParentExecutionID(s string) {
	m.parent = &s
}

// ParentExecutionID returns the value of the "parent_execution_id" field in the mutation.
func (m *WorkflowExecutionMutation) ParentExecutionID() (r string, exists bool) {
	v := m.parent
	if v == nil {
		return
	}
	return *v, true
}

// OldParentExecutionID returns the old "parent_execution_id" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldParentExecutionID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParentExecutionID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParentExecutionID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParentExecutionID: %w", err)
	}
	return oldValue.ParentExecutionID, nil
}

// ClearParentExecutionID clears the value of the "parent_execution_id" field.
func (m *WorkflowExecutionMutation) ClearParentExecutionID() {
	m.parent = nil
	m.clearedFields[workflowexecution.FieldParentExecutionID] = struct{}{}
}

// ParentExecutionIDCleared returns if the "parent_execution_id" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) ParentExecutionIDCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldParentExecutionID]
	return ok
}

// ResetParentExecutionID resets all changes to the "parent_execution_id" field.
func (m *WorkflowExecutionMutation) ResetParentExecutionID() {
	m.parent = nil
	delete(m.clearedFields, workflowexecution.FieldParentExecutionID)
}

// SetCreatedAt sets the "created_at" field.
func (m *WorkflowExecutionMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *WorkflowExecutionMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *WorkflowExecutionMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *WorkflowExecutionMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *WorkflowExecutionMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *WorkflowExecutionMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *WorkflowExecutionMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *WorkflowExecutionMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the WorkflowExecution entity.
// If the WorkflowExecution object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *WorkflowExecutionMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *WorkflowExecutionMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[workflowexecution.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *WorkflowExecutionMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[workflowexecution.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *WorkflowExecutionMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, workflowexecution.FieldDeletedAt)
}

// SetParentID sets the "parent" edge to the WorkflowExecution entity by id.
func (m *WorkflowExecutionMutation) SetParentID(id string) {
	m.parent = &id
}

// ClearParent clears the "parent" edge to the WorkflowExecution entity.
func (m *WorkflowExecutionMutation) ClearParent() {
	m.clearedparent = true
	m.clearedFields[workflowexecution.FieldParentExecutionID] = struct{}{}
}

// ParentCleared reports if the "parent" edge to the WorkflowExecution entity was cleared.
func (m *WorkflowExecutionMutation) ParentCleared() bool {
	return m.ParentExecutionIDCleared() || m.clearedparent
}

// ParentID returns the "parent" edge ID in the mutation.
func (m *WorkflowExecutionMutation) ParentID() (id string, exists bool) {
	if m.parent != nil {
		return *m.parent, true
	}
	return
}

// ParentIDs returns the "parent" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// ParentID instead. It exists only for internal usage by the builders.
func (m *WorkflowExecutionMutation) ParentIDs() (ids []string) {
	if id := m.parent; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetParent resets all changes to the "parent" edge.
func (m *WorkflowExecutionMutation) ResetParent() {
	m.parent = nil
	m.clearedparent = false
}

// AddChildIDs adds the "children" edge to the WorkflowExecution entity by ids.
func (m *WorkflowExecutionMutation) AddChildIDs(ids ...string) {
	if m.children == nil {
		m.children = make(map[string]struct{})
	}
	for i := range ids {
		m.children[ids[i]] = struct{}{}
	}
}

// ClearChildren clears the "children" edge to the WorkflowExecution entity.
func (m *WorkflowExecutionMutation) ClearChildren() {
	m.clearedchildren = true
}

// ChildrenCleared reports if the "children" edge to the WorkflowExecution entity was cleared.
func (m *WorkflowExecutionMutation) ChildrenCleared() bool {
	return m.clearedchildren
}

// RemoveChildIDs removes the "children" edge to the WorkflowExecution entity by IDs.
func (m *WorkflowExecutionMutation) RemoveChildIDs(ids ...string) {
	if m.removedchildren == nil {
		m.removedchildren = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.children, ids[i])
		m.removedchildren[ids[i]] = struct{}{}
	}
}

// RemovedChildren returns the removed IDs of the "children" edge to the WorkflowExecution entity.
func (m *WorkflowExecutionMutation) RemovedChildrenIDs() (ids []string) {
	for id := range m.removedchildren {
		ids = append(ids, id)
	}
	return
}

// ChildrenIDs returns the "children" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) ChildrenIDs() (ids []string) {
	for id := range m.children {
		ids = append(ids, id)
	}
	return
}

// ResetChildren resets all changes to the "children" edge.
func (m *WorkflowExecutionMutation) ResetChildren() {
	m.children = nil
	m.clearedchildren = false
	m.removedchildren = nil
}

// AddAuditLogIDs adds the "audit_logs" edge to the AuditLog entity by ids.
func (m *WorkflowExecutionMutation) AddAuditLogIDs(ids ...int) {
	if m.audit_logs == nil {
		m.audit_logs = make(map[int]struct{})
	}
	for i := range ids {
		m.audit_logs[ids[i]] = struct{}{}
	}
}

// ClearAuditLogs clears the "audit_logs" edge to the AuditLog entity.
func (m *WorkflowExecutionMutation) ClearAuditLogs() {
	m.clearedaudit_logs = true
}

// AuditLogsCleared reports if the "audit_logs" edge to the AuditLog entity was cleared.
func (m *WorkflowExecutionMutation) AuditLogsCleared() bool {
	return m.clearedaudit_logs
}

// RemoveAuditLogIDs removes the "audit_logs" edge to the AuditLog entity by IDs.
func (m *WorkflowExecutionMutation) RemoveAuditLogIDs(ids ...int) {
	if m.removedaudit_logs == nil {
		m.removedaudit_logs = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.audit_logs, ids[i])
		m.removedaudit_logs[ids[i]] = struct{}{}
	}
}

// RemovedAuditLogs returns the removed IDs of the "audit_logs" edge to the AuditLog entity.
func (m *WorkflowExecutionMutation) RemovedAuditLogsIDs() (ids []int) {
	for id := range m.removedaudit_logs {
		ids = append(ids, id)
	}
	return
}

// AuditLogsIDs returns the "audit_logs" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) AuditLogsIDs() (ids []int) {
	for id := range m.audit_logs {
		ids = append(ids, id)
	}
	return
}

// ResetAuditLogs resets all changes to the "audit_logs" edge.
func (m *WorkflowExecutionMutation) ResetAuditLogs() {
	m.audit_logs = nil
	m.clearedaudit_logs = false
	m.removedaudit_logs = nil
}

// AddPerformanceMetricIDs adds the "performance_metrics" edge to the PerformanceMetric entity by ids.
func (m *WorkflowExecutionMutation) AddPerformanceMetricIDs(ids ...int) {
	if m.performance_metrics == nil {
		m.performance_metrics = make(map[int]struct{})
	}
	for i := range ids {
		m.performance_metrics[ids[i]] = struct{}{}
	}
}

// ClearPerformanceMetrics clears the "performance_metrics" edge to the PerformanceMetric entity.
func (m *WorkflowExecutionMutation) ClearPerformanceMetrics() {
	m.clearedperformance_metrics = true
}

// PerformanceMetricsCleared reports if the "performance_metrics" edge to the PerformanceMetric entity was cleared.
func (m *WorkflowExecutionMutation) PerformanceMetricsCleared() bool {
	return m.clearedperformance_metrics
}

// RemovePerformanceMetricIDs removes the "performance_metrics" edge to the PerformanceMetric entity by IDs.
func (m *WorkflowExecutionMutation) RemovePerformanceMetricIDs(ids ...int) {
	if m.removedperformance_metrics == nil {
		m.removedperformance_metrics = make(map[int]struct{})
	}
	for i := range ids {
		delete(m.performance_metrics, ids[i])
		m.removedperformance_metrics[ids[i]] = struct{}{}
	}
}

// RemovedPerformanceMetrics returns the removed IDs of the "performance_metrics" edge to the PerformanceMetric entity.
func (m *WorkflowExecutionMutation) RemovedPerformanceMetricsIDs() (ids []int) {
	for id := range m.removedperformance_metrics {
		ids = append(ids, id)
	}
	return
}

// PerformanceMetricsIDs returns the "performance_metrics" edge IDs in the mutation.
func (m *WorkflowExecutionMutation) PerformanceMetricsIDs() (ids []int) {
	for id := range m.performance_metrics {
		ids = append(ids, id)
	}
	return
}

// ResetPerformanceMetrics resets all changes to the "performance_metrics" edge.
func (m *WorkflowExecutionMutation) ResetPerformanceMetrics() {
	m.performance_metrics = nil
	m.clearedperformance_metrics = false
	m.removedperformance_metrics = nil
}

// Where appends a list predicates to the WorkflowExecutionMutation builder.
func (m *WorkflowExecutionMutation) Where(ps ...predicate.WorkflowExecution) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the WorkflowExecutionMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *WorkflowExecutionMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.WorkflowExecution, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *WorkflowExecutionMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *WorkflowExecutionMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (WorkflowExecution).
func (m *WorkflowExecutionMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *WorkflowExecutionMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.workflow_type != nil {
		fields = append(fields, workflowexecution.FieldWorkflowType)
	}
	if m.domain != nil {
		fields = append(fields, workflowexecution.FieldDomain)
	}
	if m.status != nil {
		fields = append(fields, workflowexecution.FieldStatus)
	}
	if m.was_success != nil {
		fields = append(fields, workflowexecution.FieldWasSuccess)
	}
	if m.input_data != nil {
		fields = append(fields, workflowexecution.FieldInputData)
	}
	if m.output_data != nil {
		fields = append(fields, workflowexecution.FieldOutputData)
	}
	if m.error_message != nil {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.start_time != nil {
		fields = append(fields, workflowexecution.FieldStartTime)
	}
	if m.end_time != nil {
		fields = append(fields, workflowexecution.FieldEndTime)
	}
	if m.duration_seconds != nil {
		fields = append(fields, workflowexecution.FieldDurationSeconds)
	}
	if m.parent != nil {
		fields = append(fields, workflowexecution.FieldParentExecutionID)
	}
	if m.created_at != nil {
		fields = append(fields, workflowexecution.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, workflowexecution.FieldUpdatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, workflowexecution.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *WorkflowExecutionMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldWorkflowType:
		return m.WorkflowType()
	case workflowexecution.FieldDomain:
		return m.Domain()
	case workflowexecution.FieldStatus:
		return m.Status()
	case workflowexecution.FieldWasSuccess:
		return m.WasSuccess()
	case workflowexecution.FieldInputData:
		return m.InputData()
	case workflowexecution.FieldOutputData:
		return m.OutputData()
	case workflowexecution.FieldErrorMessage:
		return m.ErrorMessage()
	case workflowexecution.FieldStartTime:
		return m.StartTime()
	case workflowexecution.FieldEndTime:
		return m.EndTime()
	case workflowexecution.FieldDurationSeconds:
		return m.DurationSeconds()
	case workflowexecution.FieldParentExecutionID:
		return m.ParentExecutionID()
	case workflowexecution.FieldCreatedAt:
		return m.CreatedAt()
	case workflowexecution.FieldUpdatedAt:
		return m.UpdatedAt()
	case workflowexecution.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *WorkflowExecutionMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case workflowexecution.FieldWorkflowType:
		return m.OldWorkflowType(ctx)
	case workflowexecution.FieldDomain:
		return m.OldDomain(ctx)
	case workflowexecution.FieldStatus:
		return m.OldStatus(ctx)
	case workflowexecution.FieldWasSuccess:
		return m.OldWasSuccess(ctx)
	case workflowexecution.FieldInputData:
		return m.OldInputData(ctx)
	case workflowexecution.FieldOutputData:
		return m.OldOutputData(ctx)
	case workflowexecution.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case workflowexecution.FieldStartTime:
		return m.OldStartTime(ctx)
	case workflowexecution.FieldEndTime:
		return m.OldEndTime(ctx)
	case workflowexecution.FieldDurationSeconds:
		return m.OldDurationSeconds(ctx)
	case workflowexecution.FieldParentExecutionID:
		return m.OldParentExecutionID(ctx)
	case workflowexecution.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case workflowexecution.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	case workflowexecution.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) SetField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldWorkflowType:
		v, ok := value.(workflowexecution.WorkflowType)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWorkflowType(v)
		return nil
	case workflowexecution.FieldDomain:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDomain(v)
		return nil
	case workflowexecution.FieldStatus:
		v, ok := value.(workflowexecution.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case workflowexecution.FieldWasSuccess:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetWasSuccess(v)
		return nil
	case workflowexecution.FieldInputData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetInputData(v)
		return nil
	case workflowexecution.FieldOutputData:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOutputData(v)
		return nil
	case workflowexecution.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case workflowexecution.FieldStartTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartTime(v)
		return nil
	case workflowexecution.FieldEndTime:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEndTime(v)
		return nil
	case workflowexecution.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDurationSeconds(v)
		return nil
	case workflowexecution.FieldParentExecutionID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParentExecutionID(v)
		return nil
	case workflowexecution.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case workflowexecution.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	case workflowexecution.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *WorkflowExecutionMutation) AddedFields() []string {
	var fields []string
	if m.addduration_seconds != nil {
		fields = append(fields, workflowexecution.FieldDurationSeconds)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *WorkflowExecutionMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case workflowexecution.FieldDurationSeconds:
		return m.AddedDurationSeconds()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *WorkflowExecutionMutation) AddField(name string, value ent.Value) error {
	switch name {
	case workflowexecution.FieldDurationSeconds:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDurationSeconds(v)
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *WorkflowExecutionMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(workflowexecution.FieldDomain) {
		fields = append(fields, workflowexecution.FieldDomain)
	}
	if m.FieldCleared(workflowexecution.FieldWasSuccess) {
		fields = append(fields, workflowexecution.FieldWasSuccess)
	}
	if m.FieldCleared(workflowexecution.FieldInputData) {
		fields = append(fields, workflowexecution.FieldInputData)
	}
	if m.FieldCleared(workflowexecution.FieldOutputData) {
		fields = append(fields, workflowexecution.FieldOutputData)
	}
	if m.FieldCleared(workflowexecution.FieldErrorMessage) {
		fields = append(fields, workflowexecution.FieldErrorMessage)
	}
	if m.FieldCleared(workflowexecution.FieldStartTime) {
		fields = append(fields, workflowexecution.FieldStartTime)
	}
	if m.FieldCleared(workflowexecution.FieldEndTime) {
		fields = append(fields, workflowexecution.FieldEndTime)
	}
	if m.FieldCleared(workflowexecution.FieldDurationSeconds) {
		fields = append(fields, workflowexecution.FieldDurationSeconds)
	}
	if m.FieldCleared(workflowexecution.FieldParentExecutionID) {
		fields = append(fields, workflowexecution.FieldParentExecutionID)
	}
	if m.FieldCleared(workflowexecution.FieldDeletedAt) {
		fields = append(fields, workflowexecution.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *WorkflowExecutionMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearField(name string) error {
	switch name {
	case workflowexecution.FieldDomain:
		m.ClearDomain()
		return nil
	case workflowexecution.FieldWasSuccess:
		m.ClearWasSuccess()
		return nil
	case workflowexecution.FieldInputData:
		m.ClearInputData()
		return nil
	case workflowexecution.FieldOutputData:
		m.ClearOutputData()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case workflowexecution.FieldStartTime:
		m.ClearStartTime()
		return nil
	case workflowexecution.FieldEndTime:
		m.ClearEndTime()
		return nil
	case workflowexecution.FieldDurationSeconds:
		m.ClearDurationSeconds()
		return nil
	case workflowexecution.FieldParentExecutionID:
		m.ClearParentExecutionID()
		return nil
	case workflowexecution.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetField(name string) error {
	switch name {
	case workflowexecution.FieldWorkflowType:
		m.ResetWorkflowType()
		return nil
	case workflowexecution.FieldDomain:
		m.ResetDomain()
		return nil
	case workflowexecution.FieldStatus:
		m.ResetStatus()
		return nil
	case workflowexecution.FieldWasSuccess:
		m.ResetWasSuccess()
		return nil
	case workflowexecution.FieldInputData:
		m.ResetInputData()
		return nil
	case workflowexecution.FieldOutputData:
		m.ResetOutputData()
		return nil
	case workflowexecution.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case workflowexecution.FieldStartTime:
		m.ResetStartTime()
		return nil
	case workflowexecution.FieldEndTime:
		m.ResetEndTime()
		return nil
	case workflowexecution.FieldDurationSeconds:
		m.ResetDurationSeconds()
		return nil
	case workflowexecution.FieldParentExecutionID:
		m.ResetParentExecutionID()
		return nil
	case workflowexecution.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case workflowexecution.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	case workflowexecution.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *WorkflowExecutionMutation) AddedEdges() []string {
	edges := make([]string, 0, 4)
	if m.parent != nil {
		edges = append(edges, workflowexecution.EdgeParent)
	}
	if m.children != nil {
		edges = append(edges, workflowexecution.EdgeChildren)
	}
	if m.audit_logs != nil {
		edges = append(edges, workflowexecution.EdgeAuditLogs)
	}
	if m.performance_metrics != nil {
		edges = append(edges, workflowexecution.EdgePerformanceMetrics)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *WorkflowExecutionMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeParent:
		if id := m.parent; id != nil {
			return []ent.Value{*id}
		}
	case workflowexecution.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.children))
		for id := range m.children {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.audit_logs))
		for id := range m.audit_logs {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgePerformanceMetrics:
		ids := make([]ent.Value, 0, len(m.performance_metrics))
		for id := range m.performance_metrics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *WorkflowExecutionMutation) RemovedEdges() []string {
	edges := make([]string, 0, 4)
	if m.removedchildren != nil {
		edges = append(edges, workflowexecution.EdgeChildren)
	}
	if m.removedaudit_logs != nil {
		edges = append(edges, workflowexecution.EdgeAuditLogs)
	}
	if m.removedperformance_metrics != nil {
		edges = append(edges, workflowexecution.EdgePerformanceMetrics)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *WorkflowExecutionMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case workflowexecution.EdgeChildren:
		ids := make([]ent.Value, 0, len(m.removedchildren))
		for id := range m.removedchildren {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgeAuditLogs:
		ids := make([]ent.Value, 0, len(m.removedaudit_logs))
		for id := range m.removedaudit_logs {
			ids = append(ids, id)
		}
		return ids
	case workflowexecution.EdgePerformanceMetrics:
		ids := make([]ent.Value, 0, len(m.removedperformance_metrics))
		for id := range m.removedperformance_metrics {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *WorkflowExecutionMutation) ClearedEdges() []string {
	edges := make([]string, 0, 4)
	if m.clearedparent {
		edges = append(edges, workflowexecution.EdgeParent)
	}
	if m.clearedchildren {
		edges = append(edges, workflowexecution.EdgeChildren)
	}
	if m.clearedaudit_logs {
		edges = append(edges, workflowexecution.EdgeAuditLogs)
	}
	if m.clearedperformance_metrics {
		edges = append(edges, workflowexecution.EdgePerformanceMetrics)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *WorkflowExecutionMutation) EdgeCleared(name string) bool {
	switch name {
	case workflowexecution.EdgeParent:
		return m.clearedparent
	case workflowexecution.EdgeChildren:
		return m.clearedchildren
	case workflowexecution.EdgeAuditLogs:
		return m.clearedaudit_logs
	case workflowexecution.EdgePerformanceMetrics:
		return m.clearedperformance_metrics
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ClearEdge(name string) error {
	switch name {
	case workflowexecution.EdgeParent:
		m.ClearParent()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *WorkflowExecutionMutation) ResetEdge(name string) error {
	switch name {
	case workflowexecution.EdgeParent:
		m.ResetParent()
		return nil
	case workflowexecution.EdgeChildren:
		m.ResetChildren()
		return nil
	case workflowexecution.EdgeAuditLogs:
		m.ResetAuditLogs()
		return nil
	case workflowexecution.EdgePerformanceMetrics:
		m.ResetPerformanceMetrics()
		return nil
	}
	return fmt.Errorf("unknown WorkflowExecution edge %s", name)
}
