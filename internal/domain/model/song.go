package model

// Song is a 30-second preview clip the sender picked for their page.
// PreviewURL points at an external catalog, not at our blob store, so the
// sweeper never touches it.
type Song struct {
	Title      string  `bson:"title" json:"title"`
	Artist     string  `bson:"artist" json:"artist"`
	PreviewURL string  `bson:"preview_url" json:"preview_url"`
	StartTime  float64 `bson:"start_time" json:"start_time"`
	Duration   float64 `bson:"duration" json:"duration"`
}
