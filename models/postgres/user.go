package postgres

import (
	"time"

	"gorm.io/datatypes"
)

/*
 * 'User' is a registered account. The gravatar key is derived from the email
 * at signup and addresses the avatar image on the external gravatar service.
 */
type User struct {
	ID           int64          `gorm:"primaryKey"`
	Email        string         `gorm:"size:256;not null;uniqueIndex"`
	PasswordHash string         `gorm:"size:60;not null"`
	Gravatar     string         `gorm:"column:avatar_key;size:32;not null"`
	Stats        datatypes.JSON `gorm:"type:jsonb;default:'{}'"`
	CreatedAt    time.Time      `gorm:"default:CURRENT_TIMESTAMP"`

	// Relationships
	Games []Game     `gorm:"foreignKey:CreatorID"`
	Seats []GameUser `gorm:"foreignKey:UserID"`
}

func (User) TableName() string {
	return "users"
}
