package db_models

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type Account struct {
	BaseModel
	Name               string
	// Google sign-in only creates accounts with a verified address, so this is never empty.
	Email              string `gorm:"uniqueIndex;not null"`
	PasswordHash       string
	Role               string
	GoogleSubject      string `gorm:"index"`
	Picture            string
	GoogleRefreshToken string `json:"-"`
}

// DriveLinked reports whether uploads to Google Drive are possible.
func (a *Account) DriveLinked() bool {
	return a.GoogleRefreshToken != ""
}
