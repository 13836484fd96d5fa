package auth

// User is the single persisted record in the system. Username and email
// carry unique indexes so concurrent signups racing past the existence
// check still resolve to exactly one row.
type User struct {
	UserID         string `gorm:"primaryKey" json:"user_id"`
	Username       string `gorm:"uniqueIndex;not null" json:"username"`
	Email          string `gorm:"uniqueIndex;not null" json:"email"`
	HashedPassword string `json:"-"`
}

func (User) TableName() string { return "app_auth.users" }
