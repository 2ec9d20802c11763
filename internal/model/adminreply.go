package model

import "time"

// AdminReply 官方回复，isOfficial 恒为 true
type AdminReply struct {
	ID         uint64    `gorm:"primaryKey" json:"id"`
	Content    string    `gorm:"size:2000;not null" json:"content"`
	AdminID    uint64    `gorm:"not null;index" json:"adminId"`
	Admin      User      `gorm:"foreignKey:AdminID" json:"admin"`
	PostID     uint64    `gorm:"not null;index" json:"postId"`
	IsOfficial bool      `gorm:"not null;default:true" json:"isOfficial"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

func (AdminReply) TableName() string {
	return "admin_replies"
}
