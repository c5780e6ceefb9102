// file: models/announcement.go
package models

import (
	"time"
)

// Announcement is immutable once created; expired entries are filtered
// on read, never deleted from the document.
type Announcement struct {
	ID         string    `bson:"id" json:"id"`
	Title      string    `bson:"title" json:"title"`
	Content    string    `bson:"content" json:"content"`
	CreatedBy  string    `bson:"createdBy,omitempty" json:"createdBy,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	ExpiryDate time.Time `bson:"expiryDate" json:"expiryDate"`
}
