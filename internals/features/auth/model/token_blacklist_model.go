package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist guarda tokens invalidados no logout até expirarem.
type TokenBlacklist struct {
	ID        uuid.UUID `json:"id" gorm:"type:uuid;primaryKey;column:id"`
	Token     string    `json:"token" gorm:"type:text;not null;index;column:token"`
	ExpiredAt time.Time `json:"expired_at" gorm:"column:expired_at"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at;autoCreateTime"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

func (t *TokenBlacklist) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
