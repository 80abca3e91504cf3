package model

import "time"

const (
	FieldID         = "id"
	FieldTimezoneID = "timezone_id"
	FieldName       = "name"
	FieldOwner      = "user_id"
	FieldCreatedAt  = "created_at"
)

// SavedTimezone is one entry of an owner's saved list.
type SavedTimezone struct {
	ID         string    `bson:"id"`
	TimezoneID string    `bson:"timezone_id"`
	Name       string    `bson:"name"`
	Owner      string    `bson:"user_id"`
	CreatedAt  time.Time `bson:"created_at"`
}
