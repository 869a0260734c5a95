package entity

// Expert is an agricultural extension officer farmers can contact.
type Expert struct {
	ID             string   `json:"id"`
	Name           string   `json:"name"`
	Specialization []string `json:"specialization"`
	District       *string  `json:"district"`
	Languages      []string `json:"languages"`
	ContactEmail   *string  `json:"contact_email"`
	ContactPhone   *string  `json:"contact_phone"`
	AvatarURL      *string  `json:"avatar_url"`
	Verified       *bool    `json:"verified"`
}
