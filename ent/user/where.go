// Code generated by ent, DO NOT EDIT.

package user

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rapport-chat/rapport/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.User {
	return predicate.User(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.User {
	return predicate.User(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldID, id))
}

// BotID applies equality check predicate on the "bot_id" field. It's identical to BotIDEQ.
func BotID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldBotID, v))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldExternalID, v))
}

// ConversationSummary applies equality check predicate on the "conversation_summary" field. It's identical to ConversationSummaryEQ.
func ConversationSummary(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldConversationSummary, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// BotIDEQ applies the EQ predicate on the "bot_id" field.
func BotIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldBotID, v))
}

// BotIDNEQ applies the NEQ predicate on the "bot_id" field.
func BotIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldBotID, v))
}

// BotIDIn applies the In predicate on the "bot_id" field.
func BotIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldBotID, vs...))
}

// BotIDNotIn applies the NotIn predicate on the "bot_id" field.
func BotIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldBotID, vs...))
}

// BotIDGT applies the GT predicate on the "bot_id" field.
func BotIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldBotID, v))
}

// BotIDGTE applies the GTE predicate on the "bot_id" field.
func BotIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldBotID, v))
}

// BotIDLT applies the LT predicate on the "bot_id" field.
func BotIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldBotID, v))
}

// BotIDLTE applies the LTE predicate on the "bot_id" field.
func BotIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldBotID, v))
}

// BotIDContains applies the Contains predicate on the "bot_id" field.
func BotIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldBotID, v))
}

// BotIDHasPrefix applies the HasPrefix predicate on the "bot_id" field.
func BotIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldBotID, v))
}

// BotIDHasSuffix applies the HasSuffix predicate on the "bot_id" field.
func BotIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldBotID, v))
}

// BotIDEqualFold applies the EqualFold predicate on the "bot_id" field.
func BotIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldBotID, v))
}

// BotIDContainsFold applies the ContainsFold predicate on the "bot_id" field.
func BotIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldBotID, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldExternalID, v))
}

// BasicInfoIsNil applies the IsNil predicate on the "basic_info" field.
func BasicInfoIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldBasicInfo))
}

// BasicInfoNotNil applies the NotNil predicate on the "basic_info" field.
func BasicInfoNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldBasicInfo))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v CurrentStage) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v CurrentStage) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...CurrentStage) predicate.User {
	return predicate.User(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...CurrentStage) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// DimensionsIsNil applies the IsNil predicate on the "dimensions" field.
func DimensionsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldDimensions))
}

// DimensionsNotNil applies the NotNil predicate on the "dimensions" field.
func DimensionsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldDimensions))
}

// InferredProfileIsNil applies the IsNil predicate on the "inferred_profile" field.
func InferredProfileIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldInferredProfile))
}

// InferredProfileNotNil applies the NotNil predicate on the "inferred_profile" field.
func InferredProfileNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldInferredProfile))
}

// AssetsIsNil applies the IsNil predicate on the "assets" field.
func AssetsIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldAssets))
}

// AssetsNotNil applies the NotNil predicate on the "assets" field.
func AssetsNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldAssets))
}

// SptInfoIsNil applies the IsNil predicate on the "spt_info" field.
func SptInfoIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldSptInfo))
}

// SptInfoNotNil applies the NotNil predicate on the "spt_info" field.
func SptInfoNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldSptInfo))
}

// ConversationSummaryEQ applies the EQ predicate on the "conversation_summary" field.
func ConversationSummaryEQ(v string) predicate.User {
	return predicate.User(sql.FieldEQ(FieldConversationSummary, v))
}

// ConversationSummaryNEQ applies the NEQ predicate on the "conversation_summary" field.
func ConversationSummaryNEQ(v string) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldConversationSummary, v))
}

// ConversationSummaryIn applies the In predicate on the "conversation_summary" field.
func ConversationSummaryIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldIn(FieldConversationSummary, vs...))
}

// ConversationSummaryNotIn applies the NotIn predicate on the "conversation_summary" field.
func ConversationSummaryNotIn(vs ...string) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldConversationSummary, vs...))
}

// ConversationSummaryGT applies the GT predicate on the "conversation_summary" field.
func ConversationSummaryGT(v string) predicate.User {
	return predicate.User(sql.FieldGT(FieldConversationSummary, v))
}

// ConversationSummaryGTE applies the GTE predicate on the "conversation_summary" field.
func ConversationSummaryGTE(v string) predicate.User {
	return predicate.User(sql.FieldGTE(FieldConversationSummary, v))
}

// ConversationSummaryLT applies the LT predicate on the "conversation_summary" field.
func ConversationSummaryLT(v string) predicate.User {
	return predicate.User(sql.FieldLT(FieldConversationSummary, v))
}

// ConversationSummaryLTE applies the LTE predicate on the "conversation_summary" field.
func ConversationSummaryLTE(v string) predicate.User {
	return predicate.User(sql.FieldLTE(FieldConversationSummary, v))
}

// ConversationSummaryContains applies the Contains predicate on the "conversation_summary" field.
func ConversationSummaryContains(v string) predicate.User {
	return predicate.User(sql.FieldContains(FieldConversationSummary, v))
}

// ConversationSummaryHasPrefix applies the HasPrefix predicate on the "conversation_summary" field.
func ConversationSummaryHasPrefix(v string) predicate.User {
	return predicate.User(sql.FieldHasPrefix(FieldConversationSummary, v))
}

// ConversationSummaryHasSuffix applies the HasSuffix predicate on the "conversation_summary" field.
func ConversationSummaryHasSuffix(v string) predicate.User {
	return predicate.User(sql.FieldHasSuffix(FieldConversationSummary, v))
}

// ConversationSummaryIsNil applies the IsNil predicate on the "conversation_summary" field.
func ConversationSummaryIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldConversationSummary))
}

// ConversationSummaryNotNil applies the NotNil predicate on the "conversation_summary" field.
func ConversationSummaryNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldConversationSummary))
}

// ConversationSummaryEqualFold applies the EqualFold predicate on the "conversation_summary" field.
func ConversationSummaryEqualFold(v string) predicate.User {
	return predicate.User(sql.FieldEqualFold(FieldConversationSummary, v))
}

// ConversationSummaryContainsFold applies the ContainsFold predicate on the "conversation_summary" field.
func ConversationSummaryContainsFold(v string) predicate.User {
	return predicate.User(sql.FieldContainsFold(FieldConversationSummary, v))
}

// UrgentTasksIsNil applies the IsNil predicate on the "urgent_tasks" field.
func UrgentTasksIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldUrgentTasks))
}

// UrgentTasksNotNil applies the NotNil predicate on the "urgent_tasks" field.
func UrgentTasksNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldUrgentTasks))
}

// TaskListIsNil applies the IsNil predicate on the "task_list" field.
func TaskListIsNil() predicate.User {
	return predicate.User(sql.FieldIsNull(FieldTaskList))
}

// TaskListNotNil applies the NotNil predicate on the "task_list" field.
func TaskListNotNil() predicate.User {
	return predicate.User(sql.FieldNotNull(FieldTaskList))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.User {
	return predicate.User(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.User {
	return predicate.User(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.User {
	return predicate.User(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.User {
	return predicate.User(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.User {
	return predicate.User(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasBot applies the HasEdge predicate on the "bot" edge.
func HasBot() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, BotTable, BotColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasBotWith applies the HasEdge predicate on the "bot" edge with a given conditions (other predicates).
func HasBotWith(preds ...predicate.Bot) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newBotStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMessages applies the HasEdge predicate on the "messages" edge.
func HasMessages() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMessagesWith applies the HasEdge predicate on the "messages" edge with a given conditions (other predicates).
func HasMessagesWith(preds ...predicate.Message) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newMessagesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTranscripts applies the HasEdge predicate on the "transcripts" edge.
func HasTranscripts() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TranscriptsTable, TranscriptsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTranscriptsWith applies the HasEdge predicate on the "transcripts" edge with a given conditions (other predicates).
func HasTranscriptsWith(preds ...predicate.Transcript) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newTranscriptsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasDerivedNotes applies the HasEdge predicate on the "derived_notes" edge.
func HasDerivedNotes() predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, DerivedNotesTable, DerivedNotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasDerivedNotesWith applies the HasEdge predicate on the "derived_notes" edge with a given conditions (other predicates).
func HasDerivedNotesWith(preds ...predicate.DerivedNote) predicate.User {
	return predicate.User(func(s *sql.Selector) {
		step := newDerivedNotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.User) predicate.User {
	return predicate.User(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.User) predicate.User {
	return predicate.User(sql.NotPredicates(p))
}
