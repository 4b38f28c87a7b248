package dto

type UploadDescriptor struct {
	URL      string `json:"url"`
	Name     string `json:"name"`
	Size     int64  `json:"size"`
	FileType string `json:"type"`
	Uploaded int64  `json:"uploaded"`
}

// InvitationView is the render payload: the stored record plus the
// positional image views the page expects.
type InvitationView struct {
	ID             string   `json:"id"`
	MaleName       string   `json:"male_name"`
	FemaleName     string   `json:"female_name"`
	MarriageDate   string   `json:"marriage_date"`
	Place          string   `json:"place"`
	AdditionalInfo string   `json:"additional_info,omitempty"`
	Song           any      `json:"song,omitempty"`
	MaleImage      string   `json:"male_image,omitempty"`
	FemaleImage    string   `json:"female_image,omitempty"`
	LoveImages     []string `json:"love_images,omitempty"`
	PrimaryColor   string   `json:"primary_color"`
}
