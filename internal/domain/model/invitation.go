package model

import "time"

// InvitationGrace is how long an invitation outlives its marriage date.
const InvitationGrace = 24 * time.Hour

// Invitation is a wedding announcement. Unlike a Wish it carries an explicit
// ExpiresAt, computed at creation as MarriageDate + InvitationGrace, which is
// the authoritative field for the periodic sweep.
type Invitation struct {
	ID             string    `bson:"_id" json:"id"`
	MaleName       string    `bson:"male_name" json:"male_name"`
	FemaleName     string    `bson:"female_name" json:"female_name"`
	MarriageDate   time.Time `bson:"marriage_date" json:"marriage_date"`
	Place          string    `bson:"place" json:"place"`
	AdditionalInfo string    `bson:"additional_info" json:"additional_info,omitempty"`
	Song           *Song     `bson:"song" json:"song,omitempty"`
	Images         []string  `bson:"images" json:"images,omitempty"`
	ImageIDs       []string  `bson:"image_ids" json:"image_ids,omitempty"`
	PrimaryColor   string    `bson:"primary_color" json:"primary_color"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
	ExpiresAt      time.Time `bson:"expires_at" json:"expires_at"`
}

// Images are stored as one flat list in upload order: groom photo, bride
// photo, then the love-story gallery. The positional views below reconstruct
// the slices the render page expects.

func (i *Invitation) MaleImage() string {
	if len(i.Images) < 1 {
		return ""
	}

	return i.Images[0]
}

func (i *Invitation) FemaleImage() string {
	if len(i.Images) < 2 {
		return ""
	}

	return i.Images[1]
}

func (i *Invitation) LoveImages() []string {
	if len(i.Images) < 3 {
		return nil
	}

	return i.Images[2:]
}
