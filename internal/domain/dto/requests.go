package dto

import "celebra/internal/domain/model"

type CreateWishRequest struct {
	From          string      `json:"from"`
	To            string      `json:"to"`
	Message       string      `json:"message"`
	ImageURL      string      `json:"image_url"`
	JourneyImages []string    `json:"journey_images"`
	MasterID      string      `json:"master_id"`
	Song          *model.Song `json:"song"`
}

type CreateInvitationRequest struct {
	MaleName       string      `json:"male_name"`
	FemaleName     string      `json:"female_name"`
	MarriageDate   string      `json:"marriage_date"` // RFC 3339
	Place          string      `json:"place"`
	AdditionalInfo string      `json:"additional_info"`
	Song           *model.Song `json:"song"`
	Images         []string    `json:"images"`
	ImageIDs       []string    `json:"image_ids"`
	PrimaryColor   string      `json:"primary_color"`
}
