package model

import "time"

// WishTTL is the fixed retention window for wishes, anchored on Timestamp.
const WishTTL = 24 * time.Hour

// Wish is a birthday message. Records are immutable after creation and are
// removed by the lifecycle sweeper once Timestamp is older than WishTTL.
type Wish struct {
	ID            string   `bson:"_id" json:"id"`
	From          string   `bson:"from" json:"from"`
	To            string   `bson:"to" json:"to"`
	Message       string   `bson:"message" json:"message"`
	ImageURL      string   `bson:"image_url" json:"image_url,omitempty"`
	JourneyImages []string `bson:"journey_images" json:"journey_images,omitempty"`
	MasterID      string   `bson:"master_id" json:"master_id"`
	Song          *Song    `bson:"song" json:"song,omitempty"` // Pointer to allow null
	Timestamp     int64    `bson:"timestamp" json:"timestamp"` // epoch millis, retention anchor
}

// CreatedAt converts the epoch-millis retention anchor to a time.Time.
func (w *Wish) CreatedAt() time.Time {
	return time.UnixMilli(w.Timestamp)
}
