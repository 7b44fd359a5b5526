package model

import "time"

// UserToken is the server-side record of an issued session token. A session
// is live only while its row exists and Expiry lies in the future; logout
// deletes the row, which revokes the session even if the signed token itself
// has not yet expired.
type UserToken struct {
	TID       uint      `json:"tid" gorm:"primaryKey;column:tid"`
	Token     string    `json:"-" gorm:"size:500;not null;index"`
	UserID    uint      `json:"uid" gorm:"column:uid;not null;index"`
	Expiry    time.Time `json:"expiry" gorm:"not null;index"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
