package models

type Tag struct {
	ID    int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name  string `gorm:"uniqueIndex;size:200;not null" json:"name"`
	Color string `gorm:"uniqueIndex;size:7;not null" json:"color"`
	Slug  string `gorm:"uniqueIndex;size:200;not null" json:"slug"`
}

func (Tag) TableName() string {
	return "tags"
}
