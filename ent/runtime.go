// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/rapport-chat/rapport/ent/bot"
	"github.com/rapport-chat/rapport/ent/derivednote"
	"github.com/rapport-chat/rapport/ent/message"
	"github.com/rapport-chat/rapport/ent/schema"
	"github.com/rapport-chat/rapport/ent/transcript"
	"github.com/rapport-chat/rapport/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	botFields := schema.Bot{}.Fields()
	_ = botFields
	// botDescCreatedAt is the schema descriptor for created_at field.
	botDescCreatedAt := botFields[7].Descriptor()
	// bot.DefaultCreatedAt holds the default value on creation for the created_at field.
	bot.DefaultCreatedAt = botDescCreatedAt.Default.(func() time.Time)
	// botDescUpdatedAt is the schema descriptor for updated_at field.
	botDescUpdatedAt := botFields[8].Descriptor()
	// bot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	bot.DefaultUpdatedAt = botDescUpdatedAt.Default.(func() time.Time)
	// bot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	bot.UpdateDefaultUpdatedAt = botDescUpdatedAt.UpdateDefault.(func() time.Time)
	derivednoteFields := schema.DerivedNote{}.Fields()
	_ = derivednoteFields
	// derivednoteDescImportance is the schema descriptor for importance field.
	derivednoteDescImportance := derivednoteFields[5].Descriptor()
	// derivednote.DefaultImportance holds the default value on creation for the importance field.
	derivednote.DefaultImportance = derivednoteDescImportance.Default.(float64)
	// derivednoteDescCreatedAt is the schema descriptor for created_at field.
	derivednoteDescCreatedAt := derivednoteFields[6].Descriptor()
	// derivednote.DefaultCreatedAt holds the default value on creation for the created_at field.
	derivednote.DefaultCreatedAt = derivednoteDescCreatedAt.Default.(func() time.Time)
	messageFields := schema.Message{}.Fields()
	_ = messageFields
	// messageDescCreatedAt is the schema descriptor for created_at field.
	messageDescCreatedAt := messageFields[5].Descriptor()
	// message.DefaultCreatedAt holds the default value on creation for the created_at field.
	message.DefaultCreatedAt = messageDescCreatedAt.Default.(func() time.Time)
	transcriptFields := schema.Transcript{}.Fields()
	_ = transcriptFields
	// transcriptDescImportance is the schema descriptor for importance field.
	transcriptDescImportance := transcriptFields[7].Descriptor()
	// transcript.DefaultImportance holds the default value on creation for the importance field.
	transcript.DefaultImportance = transcriptDescImportance.Default.(float64)
	// transcriptDescCreatedAt is the schema descriptor for created_at field.
	transcriptDescCreatedAt := transcriptFields[9].Descriptor()
	// transcript.DefaultCreatedAt holds the default value on creation for the created_at field.
	transcript.DefaultCreatedAt = transcriptDescCreatedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[12].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
	// userDescUpdatedAt is the schema descriptor for updated_at field.
	userDescUpdatedAt := userFields[13].Descriptor()
	// user.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	user.DefaultUpdatedAt = userDescUpdatedAt.Default.(func() time.Time)
	// user.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	user.UpdateDefaultUpdatedAt = userDescUpdatedAt.UpdateDefault.(func() time.Time)
}
