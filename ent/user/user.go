// Code generated by ent, DO NOT EDIT.

package user

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the user type in the database.
	Label = "user"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_id"
	// FieldBotID holds the string denoting the bot_id field in the database.
	FieldBotID = "bot_id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldBasicInfo holds the string denoting the basic_info field in the database.
	FieldBasicInfo = "basic_info"
	// FieldCurrentStage holds the string denoting the current_stage field in the database.
	FieldCurrentStage = "current_stage"
	// FieldDimensions holds the string denoting the dimensions field in the database.
	FieldDimensions = "dimensions"
	// FieldInferredProfile holds the string denoting the inferred_profile field in the database.
	FieldInferredProfile = "inferred_profile"
	// FieldAssets holds the string denoting the assets field in the database.
	FieldAssets = "assets"
	// FieldSptInfo holds the string denoting the spt_info field in the database.
	FieldSptInfo = "spt_info"
	// FieldConversationSummary holds the string denoting the conversation_summary field in the database.
	FieldConversationSummary = "conversation_summary"
	// FieldUrgentTasks holds the string denoting the urgent_tasks field in the database.
	FieldUrgentTasks = "urgent_tasks"
	// FieldTaskList holds the string denoting the task_list field in the database.
	FieldTaskList = "task_list"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeBot holds the string denoting the bot edge name in mutations.
	EdgeBot = "bot"
	// EdgeMessages holds the string denoting the messages edge name in mutations.
	EdgeMessages = "messages"
	// EdgeTranscripts holds the string denoting the transcripts edge name in mutations.
	EdgeTranscripts = "transcripts"
	// EdgeDerivedNotes holds the string denoting the derived_notes edge name in mutations.
	EdgeDerivedNotes = "derived_notes"
	// BotFieldID holds the string denoting the ID field of the Bot.
	BotFieldID = "bot_id"
	// MessageFieldID holds the string denoting the ID field of the Message.
	MessageFieldID = "message_id"
	// TranscriptFieldID holds the string denoting the ID field of the Transcript.
	TranscriptFieldID = "transcript_id"
	// DerivedNoteFieldID holds the string denoting the ID field of the DerivedNote.
	DerivedNoteFieldID = "note_id"
	// Table holds the table name of the user in the database.
	Table = "users"
	// BotTable is the table that holds the bot relation/edge.
	BotTable = "users"
	// BotInverseTable is the table name for the Bot entity.
	// It exists in this package in order to avoid circular dependency with the "bot" package.
	BotInverseTable = "bots"
	// BotColumn is the table column denoting the bot relation/edge.
	BotColumn = "bot_id"
	// MessagesTable is the table that holds the messages relation/edge.
	MessagesTable = "messages"
	// MessagesInverseTable is the table name for the Message entity.
	// It exists in this package in order to avoid circular dependency with the "message" package.
	MessagesInverseTable = "messages"
	// MessagesColumn is the table column denoting the messages relation/edge.
	MessagesColumn = "user_id"
	// TranscriptsTable is the table that holds the transcripts relation/edge.
	TranscriptsTable = "transcripts"
	// TranscriptsInverseTable is the table name for the Transcript entity.
	// It exists in this package in order to avoid circular dependency with the "transcript" package.
	TranscriptsInverseTable = "transcripts"
	// TranscriptsColumn is the table column denoting the transcripts relation/edge.
	TranscriptsColumn = "user_id"
	// DerivedNotesTable is the table that holds the derived_notes relation/edge.
	DerivedNotesTable = "derived_notes"
	// DerivedNotesInverseTable is the table name for the DerivedNote entity.
	// It exists in this package in order to avoid circular dependency with the "derivednote" package.
	DerivedNotesInverseTable = "derived_notes"
	// DerivedNotesColumn is the table column denoting the derived_notes relation/edge.
	DerivedNotesColumn = "user_id"
)

// Columns holds all SQL columns for user fields.
var Columns = []string{
	FieldID,
	FieldBotID,
	FieldExternalID,
	FieldBasicInfo,
	FieldCurrentStage,
	FieldDimensions,
	FieldInferredProfile,
	FieldAssets,
	FieldSptInfo,
	FieldConversationSummary,
	FieldUrgentTasks,
	FieldTaskList,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// CurrentStage defines the type for the "current_stage" enum field.
type CurrentStage string

// CurrentStageInitiating is the default value of the CurrentStage enum.
const DefaultCurrentStage = CurrentStageInitiating

// CurrentStage values.
const (
	CurrentStageInitiating      CurrentStage = "initiating"
	CurrentStageExperimenting   CurrentStage = "experimenting"
	CurrentStageIntensifying    CurrentStage = "intensifying"
	CurrentStageIntegrating     CurrentStage = "integrating"
	CurrentStageBonding         CurrentStage = "bonding"
	CurrentStageDifferentiating CurrentStage = "differentiating"
	CurrentStageCircumscribing  CurrentStage = "circumscribing"
	CurrentStageStagnating      CurrentStage = "stagnating"
	CurrentStageAvoiding        CurrentStage = "avoiding"
	CurrentStageTerminating     CurrentStage = "terminating"
)

func (cs CurrentStage) String() string {
	return string(cs)
}

// CurrentStageValidator is a validator for the "current_stage" field enum values. It is called by the builders before save.
func CurrentStageValidator(cs CurrentStage) error {
	switch cs {
	case CurrentStageInitiating, CurrentStageExperimenting, CurrentStageIntensifying, CurrentStageIntegrating, CurrentStageBonding, CurrentStageDifferentiating, CurrentStageCircumscribing, CurrentStageStagnating, CurrentStageAvoiding, CurrentStageTerminating:
		return nil
	default:
		return fmt.Errorf("user: invalid enum value for current_stage field: %q", cs)
	}
}

// OrderOption defines the ordering options for the User queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByBotID orders the results by the bot_id field.
func ByBotID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBotID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByCurrentStage orders the results by the current_stage field.
func ByCurrentStage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentStage, opts...).ToFunc()
}

// ByConversationSummary orders the results by the conversation_summary field.
func ByConversationSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldConversationSummary, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByBotField orders the results by bot field.
func ByBotField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBotStep(), sql.OrderByField(field, opts...))
	}
}

// ByMessagesCount orders the results by messages count.
func ByMessagesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMessagesStep(), opts...)
	}
}

// ByMessages orders the results by messages terms.
func ByMessages(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMessagesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTranscriptsCount orders the results by transcripts count.
func ByTranscriptsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTranscriptsStep(), opts...)
	}
}

// ByTranscripts orders the results by transcripts terms.
func ByTranscripts(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTranscriptsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByDerivedNotesCount orders the results by derived_notes count.
func ByDerivedNotesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newDerivedNotesStep(), opts...)
	}
}

// ByDerivedNotes orders the results by derived_notes terms.
func ByDerivedNotes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newDerivedNotesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newBotStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BotInverseTable, BotFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, BotTable, BotColumn),
	)
}
func newMessagesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MessagesInverseTable, MessageFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MessagesTable, MessagesColumn),
	)
}
func newTranscriptsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TranscriptsInverseTable, TranscriptFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TranscriptsTable, TranscriptsColumn),
	)
}
func newDerivedNotesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(DerivedNotesInverseTable, DerivedNoteFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, DerivedNotesTable, DerivedNotesColumn),
	)
}
