package models

// User is an account allowed to log in. The server seeds exactly one at
// startup; there are no registration or management endpoints.
type User struct {
	ID           uint   `gorm:"primary_key" json:"id"`
	Username     string `gorm:"unique" json:"username"`
	PasswordHash string `json:"-"`
}

// Video is the metadata recorded for one uploaded file. Records are immutable
// once appended to the registry.
type Video struct {
	ID        string `gorm:"primary_key" json:"id"`
	Title     string `json:"title"`
	URL       string `json:"url"`
	EmbedCode string `json:"embedCode"`
}
