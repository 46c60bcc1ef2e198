package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID           string    `gorm:"primaryKey;type:uuid" json:"id"`
	Email        string    `gorm:"uniqueIndex;not null" json:"email"`
	FullName     string    `gorm:"not null" json:"full_name"`
	Password     string    `gorm:"column:password_hash;not null" json:"-"` // Not show in JSON
	Role         string    `gorm:"default:'user';not null" json:"role"`    // "user" or "admin"
	Location     *string   `json:"location,omitempty"`
	Availability *string   `json:"availability,omitempty"`
	IsPublic     bool      `gorm:"not null" json:"is_public"`
	IsActive     bool      `gorm:"not null" json:"is_active"`
	IsBanned     bool      `gorm:"not null;default:false" json:"is_banned"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Associations
	RatingSummary *RatingSummary `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"rating_summary,omitempty"`
	Skills        []UserSkill    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"-"`
}

// BeforeCreate hook to set UUID before creating a User
func (user *User) BeforeCreate(tx *gorm.DB) (err error) {
	if user.ID == "" {
		user.ID = uuid.New().String()
	}
	return
}

func (User) TableName() string {
	return "users"
}

// IsAdmin reports whether the user may use moderation endpoints.
func (user *User) IsAdmin() bool {
	return user.Role == RoleAdmin
}
