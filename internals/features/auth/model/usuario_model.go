package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UsuarioModel representa a tabela usuarios.
// Cada usuário pertence a exatamente uma ala; o ala_id vai na claim do token
// e delimita tudo o que ele enxerga.
type UsuarioModel struct {
	UsuarioID       uuid.UUID `json:"usuario_id" gorm:"type:uuid;primaryKey;column:usuario_id"`
	UsuarioUsername string    `json:"usuario_username" gorm:"type:varchar(50);not null;uniqueIndex;column:usuario_username"`
	UsuarioSenha    string    `json:"-" gorm:"type:text;not null;column:usuario_senha"` // hash bcrypt
	UsuarioAlaID    uuid.UUID `json:"usuario_ala_id" gorm:"type:uuid;not null;index;column:usuario_ala_id"`

	UsuarioCreatedAt time.Time `json:"usuario_created_at" gorm:"column:usuario_created_at;autoCreateTime"`
	UsuarioUpdatedAt time.Time `json:"usuario_updated_at" gorm:"column:usuario_updated_at;autoUpdateTime"`
}

func (UsuarioModel) TableName() string { return "usuarios" }

func (u *UsuarioModel) BeforeCreate(tx *gorm.DB) error {
	if u.UsuarioID == uuid.Nil {
		u.UsuarioID = uuid.New()
	}
	return nil
}
