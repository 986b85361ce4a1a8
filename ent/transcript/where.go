// Code generated by ent, DO NOT EDIT.

package transcript

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/rapport-chat/rapport/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldUserID, v))
}

// TurnIndex applies equality check predicate on the "turn_index" field. It's identical to TurnIndexEQ.
func TurnIndex(v int) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTurnIndex, v))
}

// UserText applies equality check predicate on the "user_text" field. It's identical to UserTextEQ.
func UserText(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldUserText, v))
}

// BotText applies equality check predicate on the "bot_text" field. It's identical to BotTextEQ.
func BotText(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldBotText, v))
}

// Topic applies equality check predicate on the "topic" field. It's identical to TopicEQ.
func Topic(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTopic, v))
}

// Importance applies equality check predicate on the "importance" field. It's identical to ImportanceEQ.
func Importance(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldImportance, v))
}

// ShortContext applies equality check predicate on the "short_context" field. It's identical to ShortContextEQ.
func ShortContext(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldShortContext, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldUserID, v))
}

// TurnIndexEQ applies the EQ predicate on the "turn_index" field.
func TurnIndexEQ(v int) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTurnIndex, v))
}

// TurnIndexNEQ applies the NEQ predicate on the "turn_index" field.
func TurnIndexNEQ(v int) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldTurnIndex, v))
}

// TurnIndexIn applies the In predicate on the "turn_index" field.
func TurnIndexIn(vs ...int) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldTurnIndex, vs...))
}

// TurnIndexNotIn applies the NotIn predicate on the "turn_index" field.
func TurnIndexNotIn(vs ...int) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldTurnIndex, vs...))
}

// TurnIndexGT applies the GT predicate on the "turn_index" field.
func TurnIndexGT(v int) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldTurnIndex, v))
}

// TurnIndexGTE applies the GTE predicate on the "turn_index" field.
func TurnIndexGTE(v int) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldTurnIndex, v))
}

// TurnIndexLT applies the LT predicate on the "turn_index" field.
func TurnIndexLT(v int) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldTurnIndex, v))
}

// TurnIndexLTE applies the LTE predicate on the "turn_index" field.
func TurnIndexLTE(v int) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldTurnIndex, v))
}

// UserTextEQ applies the EQ predicate on the "user_text" field.
func UserTextEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldUserText, v))
}

// UserTextNEQ applies the NEQ predicate on the "user_text" field.
func UserTextNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldUserText, v))
}

// UserTextIn applies the In predicate on the "user_text" field.
func UserTextIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldUserText, vs...))
}

// UserTextNotIn applies the NotIn predicate on the "user_text" field.
func UserTextNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldUserText, vs...))
}

// UserTextGT applies the GT predicate on the "user_text" field.
func UserTextGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldUserText, v))
}

// UserTextGTE applies the GTE predicate on the "user_text" field.
func UserTextGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldUserText, v))
}

// UserTextLT applies the LT predicate on the "user_text" field.
func UserTextLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldUserText, v))
}

// UserTextLTE applies the LTE predicate on the "user_text" field.
func UserTextLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldUserText, v))
}

// UserTextContains applies the Contains predicate on the "user_text" field.
func UserTextContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldUserText, v))
}

// UserTextHasPrefix applies the HasPrefix predicate on the "user_text" field.
func UserTextHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldUserText, v))
}

// UserTextHasSuffix applies the HasSuffix predicate on the "user_text" field.
func UserTextHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldUserText, v))
}

// UserTextEqualFold applies the EqualFold predicate on the "user_text" field.
func UserTextEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldUserText, v))
}

// UserTextContainsFold applies the ContainsFold predicate on the "user_text" field.
func UserTextContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldUserText, v))
}

// BotTextEQ applies the EQ predicate on the "bot_text" field.
func BotTextEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldBotText, v))
}

// BotTextNEQ applies the NEQ predicate on the "bot_text" field.
func BotTextNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldBotText, v))
}

// BotTextIn applies the In predicate on the "bot_text" field.
func BotTextIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldBotText, vs...))
}

// BotTextNotIn applies the NotIn predicate on the "bot_text" field.
func BotTextNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldBotText, vs...))
}

// BotTextGT applies the GT predicate on the "bot_text" field.
func BotTextGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldBotText, v))
}

// BotTextGTE applies the GTE predicate on the "bot_text" field.
func BotTextGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldBotText, v))
}

// BotTextLT applies the LT predicate on the "bot_text" field.
func BotTextLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldBotText, v))
}

// BotTextLTE applies the LTE predicate on the "bot_text" field.
func BotTextLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldBotText, v))
}

// BotTextContains applies the Contains predicate on the "bot_text" field.
func BotTextContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldBotText, v))
}

// BotTextHasPrefix applies the HasPrefix predicate on the "bot_text" field.
func BotTextHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldBotText, v))
}

// BotTextHasSuffix applies the HasSuffix predicate on the "bot_text" field.
func BotTextHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldBotText, v))
}

// BotTextEqualFold applies the EqualFold predicate on the "bot_text" field.
func BotTextEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldBotText, v))
}

// BotTextContainsFold applies the ContainsFold predicate on the "bot_text" field.
func BotTextContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldBotText, v))
}

// EntitiesIsNil applies the IsNil predicate on the "entities" field.
func EntitiesIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldEntities))
}

// EntitiesNotNil applies the NotNil predicate on the "entities" field.
func EntitiesNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldEntities))
}

// TopicEQ applies the EQ predicate on the "topic" field.
func TopicEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldTopic, v))
}

// TopicNEQ applies the NEQ predicate on the "topic" field.
func TopicNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldTopic, v))
}

// TopicIn applies the In predicate on the "topic" field.
func TopicIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldTopic, vs...))
}

// TopicNotIn applies the NotIn predicate on the "topic" field.
func TopicNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldTopic, vs...))
}

// TopicGT applies the GT predicate on the "topic" field.
func TopicGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldTopic, v))
}

// TopicGTE applies the GTE predicate on the "topic" field.
func TopicGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldTopic, v))
}

// TopicLT applies the LT predicate on the "topic" field.
func TopicLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldTopic, v))
}

// TopicLTE applies the LTE predicate on the "topic" field.
func TopicLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldTopic, v))
}

// TopicContains applies the Contains predicate on the "topic" field.
func TopicContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldTopic, v))
}

// TopicHasPrefix applies the HasPrefix predicate on the "topic" field.
func TopicHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldTopic, v))
}

// TopicHasSuffix applies the HasSuffix predicate on the "topic" field.
func TopicHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldTopic, v))
}

// TopicIsNil applies the IsNil predicate on the "topic" field.
func TopicIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldTopic))
}

// TopicNotNil applies the NotNil predicate on the "topic" field.
func TopicNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldTopic))
}

// TopicEqualFold applies the EqualFold predicate on the "topic" field.
func TopicEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldTopic, v))
}

// TopicContainsFold applies the ContainsFold predicate on the "topic" field.
func TopicContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldTopic, v))
}

// ImportanceEQ applies the EQ predicate on the "importance" field.
func ImportanceEQ(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldImportance, v))
}

// ImportanceNEQ applies the NEQ predicate on the "importance" field.
func ImportanceNEQ(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldImportance, v))
}

// ImportanceIn applies the In predicate on the "importance" field.
func ImportanceIn(vs ...float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldImportance, vs...))
}

// ImportanceNotIn applies the NotIn predicate on the "importance" field.
func ImportanceNotIn(vs ...float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldImportance, vs...))
}

// ImportanceGT applies the GT predicate on the "importance" field.
func ImportanceGT(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldImportance, v))
}

// ImportanceGTE applies the GTE predicate on the "importance" field.
func ImportanceGTE(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldImportance, v))
}

// ImportanceLT applies the LT predicate on the "importance" field.
func ImportanceLT(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldImportance, v))
}

// ImportanceLTE applies the LTE predicate on the "importance" field.
func ImportanceLTE(v float64) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldImportance, v))
}

// ShortContextEQ applies the EQ predicate on the "short_context" field.
func ShortContextEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldShortContext, v))
}

// ShortContextNEQ applies the NEQ predicate on the "short_context" field.
func ShortContextNEQ(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldShortContext, v))
}

// ShortContextIn applies the In predicate on the "short_context" field.
func ShortContextIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldShortContext, vs...))
}

// ShortContextNotIn applies the NotIn predicate on the "short_context" field.
func ShortContextNotIn(vs ...string) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldShortContext, vs...))
}

// ShortContextGT applies the GT predicate on the "short_context" field.
func ShortContextGT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldShortContext, v))
}

// ShortContextGTE applies the GTE predicate on the "short_context" field.
func ShortContextGTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldShortContext, v))
}

// ShortContextLT applies the LT predicate on the "short_context" field.
func ShortContextLT(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldShortContext, v))
}

// ShortContextLTE applies the LTE predicate on the "short_context" field.
func ShortContextLTE(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldShortContext, v))
}

// ShortContextContains applies the Contains predicate on the "short_context" field.
func ShortContextContains(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContains(FieldShortContext, v))
}

// ShortContextHasPrefix applies the HasPrefix predicate on the "short_context" field.
func ShortContextHasPrefix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasPrefix(FieldShortContext, v))
}

// ShortContextHasSuffix applies the HasSuffix predicate on the "short_context" field.
func ShortContextHasSuffix(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldHasSuffix(FieldShortContext, v))
}

// ShortContextIsNil applies the IsNil predicate on the "short_context" field.
func ShortContextIsNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldIsNull(FieldShortContext))
}

// ShortContextNotNil applies the NotNil predicate on the "short_context" field.
func ShortContextNotNil() predicate.Transcript {
	return predicate.Transcript(sql.FieldNotNull(FieldShortContext))
}

// ShortContextEqualFold applies the EqualFold predicate on the "short_context" field.
func ShortContextEqualFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldEqualFold(FieldShortContext, v))
}

// ShortContextContainsFold applies the ContainsFold predicate on the "short_context" field.
func ShortContextContainsFold(v string) predicate.Transcript {
	return predicate.Transcript(sql.FieldContainsFold(FieldShortContext, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Transcript {
	return predicate.Transcript(sql.FieldLTE(FieldCreatedAt, v))
}

// HasUser applies the HasEdge predicate on the "user" edge.
func HasUser() predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, UserTable, UserColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasUserWith applies the HasEdge predicate on the "user" edge with a given conditions (other predicates).
func HasUserWith(preds ...predicate.User) predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := newUserStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasNotes applies the HasEdge predicate on the "notes" edge.
func HasNotes() predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, NotesTable, NotesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasNotesWith applies the HasEdge predicate on the "notes" edge with a given conditions (other predicates).
func HasNotesWith(preds ...predicate.DerivedNote) predicate.Transcript {
	return predicate.Transcript(func(s *sql.Selector) {
		step := newNotesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Transcript) predicate.Transcript {
	return predicate.Transcript(sql.NotPredicates(p))
}
