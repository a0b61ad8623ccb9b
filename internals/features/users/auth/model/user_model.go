package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Username     string         `gorm:"type:varchar(50);unique;not null" json:"username" validate:"required,min=3,max=50"`
	Email        string         `gorm:"type:varchar(255);unique;not null" json:"email" validate:"required,email"`
	PasswordHash string         `gorm:"type:varchar(250);not null" json:"-"`
	Role         string         `gorm:"type:varchar(20);default:'student'" json:"role" validate:"omitempty,oneof=student teacher admin"`
	IsVerified   bool           `gorm:"default:false" json:"is_verified"`
	IsActive     bool           `gorm:"default:false" json:"is_active"`
	LastLoginAt  *time.Time     `json:"last_login_at,omitempty"`
	CreatedAt    time.Time      `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime" json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
