// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Bot is the predicate function for bot builders.
type Bot func(*sql.Selector)

// DerivedNote is the predicate function for derivednote builders.
type DerivedNote func(*sql.Selector)

// Message is the predicate function for message builders.
type Message func(*sql.Selector)

// Transcript is the predicate function for transcript builders.
type Transcript func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
