// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BotsColumns holds the columns for the "bots" table.
	BotsColumns = []*schema.Column{
		{Name: "bot_id", Type: field.TypeString, Unique: true},
		{Name: "name", Type: field.TypeString},
		{Name: "basic_info", Type: field.TypeJSON},
		{Name: "big_five", Type: field.TypeJSON},
		{Name: "persona", Type: field.TypeJSON, Nullable: true},
		{Name: "mood_state", Type: field.TypeJSON, Nullable: true},
		{Name: "urgent_tasks", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BotsTable holds the schema information for the "bots" table.
	BotsTable = &schema.Table{
		Name:       "bots",
		Columns:    BotsColumns,
		PrimaryKey: []*schema.Column{BotsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "bot_name",
				Unique:  false,
				Columns: []*schema.Column{BotsColumns[1]},
			},
		},
	}
	// DerivedNotesColumns holds the columns for the "derived_notes" table.
	DerivedNotesColumns = []*schema.Column{
		{Name: "note_id", Type: field.TypeString, Unique: true},
		{Name: "note_type", Type: field.TypeEnum, Enums: []string{"fact", "preference", "activity", "decision", "other"}, Default: "other"},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "importance", Type: field.TypeFloat64, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "transcript_id", Type: field.TypeString, Nullable: true},
		{Name: "user_id", Type: field.TypeString},
	}
	// DerivedNotesTable holds the schema information for the "derived_notes" table.
	DerivedNotesTable = &schema.Table{
		Name:       "derived_notes",
		Columns:    DerivedNotesColumns,
		PrimaryKey: []*schema.Column{DerivedNotesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "derived_notes_transcripts_notes",
				Columns:    []*schema.Column{DerivedNotesColumns[5]},
				RefColumns: []*schema.Column{TranscriptsColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "derived_notes_users_derived_notes",
				Columns:    []*schema.Column{DerivedNotesColumns[6]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "derivednote_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{DerivedNotesColumns[6], DerivedNotesColumns[4]},
			},
			{
				Name:    "derivednote_user_id_note_type",
				Unique:  false,
				Columns: []*schema.Column{DerivedNotesColumns[6], DerivedNotesColumns[1]},
			},
		},
	}
	// MessagesColumns holds the columns for the "messages" table.
	MessagesColumns = []*schema.Column{
		{Name: "message_id", Type: field.TypeString, Unique: true},
		{Name: "role", Type: field.TypeEnum, Enums: []string{"user", "ai", "system"}},
		{Name: "content", Type: field.TypeString, Size: 2147483647},
		{Name: "metadata", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// MessagesTable holds the schema information for the "messages" table.
	MessagesTable = &schema.Table{
		Name:       "messages",
		Columns:    MessagesColumns,
		PrimaryKey: []*schema.Column{MessagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "messages_users_messages",
				Columns:    []*schema.Column{MessagesColumns[5]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "message_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[5], MessagesColumns[4]},
			},
			{
				Name:    "message_role",
				Unique:  false,
				Columns: []*schema.Column{MessagesColumns[1]},
			},
		},
	}
	// TranscriptsColumns holds the columns for the "transcripts" table.
	TranscriptsColumns = []*schema.Column{
		{Name: "transcript_id", Type: field.TypeString, Unique: true},
		{Name: "turn_index", Type: field.TypeInt},
		{Name: "user_text", Type: field.TypeString, Size: 2147483647},
		{Name: "bot_text", Type: field.TypeString, Size: 2147483647},
		{Name: "entities", Type: field.TypeJSON, Nullable: true},
		{Name: "topic", Type: field.TypeString, Nullable: true},
		{Name: "importance", Type: field.TypeFloat64, Default: 0},
		{Name: "short_context", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeString},
	}
	// TranscriptsTable holds the schema information for the "transcripts" table.
	TranscriptsTable = &schema.Table{
		Name:       "transcripts",
		Columns:    TranscriptsColumns,
		PrimaryKey: []*schema.Column{TranscriptsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "transcripts_users_transcripts",
				Columns:    []*schema.Column{TranscriptsColumns[9]},
				RefColumns: []*schema.Column{UsersColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "transcript_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{TranscriptsColumns[9], TranscriptsColumns[8]},
			},
			{
				Name:    "transcript_user_id_turn_index",
				Unique:  false,
				Columns: []*schema.Column{TranscriptsColumns[9], TranscriptsColumns[1]},
			},
		},
	}
	// UsersColumns holds the columns for the "users" table.
	UsersColumns = []*schema.Column{
		{Name: "user_id", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString},
		{Name: "basic_info", Type: field.TypeJSON, Nullable: true},
		{Name: "current_stage", Type: field.TypeEnum, Enums: []string{"initiating", "experimenting", "intensifying", "integrating", "bonding", "differentiating", "circumscribing", "stagnating", "avoiding", "terminating"}, Default: "initiating"},
		{Name: "dimensions", Type: field.TypeJSON, Nullable: true},
		{Name: "inferred_profile", Type: field.TypeJSON, Nullable: true},
		{Name: "assets", Type: field.TypeJSON, Nullable: true},
		{Name: "spt_info", Type: field.TypeJSON, Nullable: true},
		{Name: "conversation_summary", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "urgent_tasks", Type: field.TypeJSON, Nullable: true},
		{Name: "task_list", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "bot_id", Type: field.TypeString},
	}
	// UsersTable holds the schema information for the "users" table.
	UsersTable = &schema.Table{
		Name:       "users",
		Columns:    UsersColumns,
		PrimaryKey: []*schema.Column{UsersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "users_bots_users",
				Columns:    []*schema.Column{UsersColumns[13]},
				RefColumns: []*schema.Column{BotsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "user_bot_id_external_id",
				Unique:  true,
				Columns: []*schema.Column{UsersColumns[13], UsersColumns[1]},
			},
			{
				Name:    "user_current_stage",
				Unique:  false,
				Columns: []*schema.Column{UsersColumns[3]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BotsTable,
		DerivedNotesTable,
		MessagesTable,
		TranscriptsTable,
		UsersTable,
	}
)

func init() {
	DerivedNotesTable.ForeignKeys[0].RefTable = TranscriptsTable
	DerivedNotesTable.ForeignKeys[1].RefTable = UsersTable
	MessagesTable.ForeignKeys[0].RefTable = UsersTable
	TranscriptsTable.ForeignKeys[0].RefTable = UsersTable
	UsersTable.ForeignKeys[0].RefTable = BotsTable
}
