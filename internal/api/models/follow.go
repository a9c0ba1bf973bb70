package models

import "time"

// Follow is a subscription edge from UserID (follower) to AuthorID.
type Follow struct {
	ID        int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string    `gorm:"type:uuid;not null;uniqueIndex:idx_follow_edge;check:chk_no_self_follow,user_id <> author_id" json:"user_id"`
	AuthorID  string    `gorm:"type:uuid;not null;uniqueIndex:idx_follow_edge" json:"author_id"`
	CreatedAt time.Time `json:"created_at"`

	User   *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"user,omitempty"`
	Author *User `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`
}

func (Follow) TableName() string {
	return "follows"
}
