package model

import "time"

type Post struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Title     string    `gorm:"size:200;not null" json:"title"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	AuthorID  uint64    `gorm:"not null;index:idx_author_time" json:"authorId"`
	Author    User      `gorm:"foreignKey:AuthorID" json:"author"`
	Image     string    `gorm:"size:255" json:"image"`
	LikeCount int64     `gorm:"not null;default:0" json:"likeCount"`
	Likes     []uint64  `gorm:"-" json:"likes"`
	CreatedAt time.Time `gorm:"index:idx_created;index:idx_author_time" json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
