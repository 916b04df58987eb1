package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UnidadeModel representa a tabela unidades.
// No máximo uma linha por ala (uniqueIndex em unidade_ala_id).
type UnidadeModel struct {
	UnidadeID    uuid.UUID `json:"unidade_id" gorm:"type:uuid;primaryKey;column:unidade_id"`
	UnidadeAlaID uuid.UUID `json:"unidade_ala_id" gorm:"type:uuid;not null;uniqueIndex;column:unidade_ala_id"`

	UnidadeNome         string `json:"unidade_nome" gorm:"type:text;not null;column:unidade_nome"`
	UnidadeBispo        string `json:"unidade_bispo" gorm:"type:text;column:unidade_bispo"`
	UnidadeConselheiro1 string `json:"unidade_conselheiro1" gorm:"type:text;column:unidade_conselheiro1"`
	UnidadeConselheiro2 string `json:"unidade_conselheiro2" gorm:"type:text;column:unidade_conselheiro2"`
	UnidadeHorario      string `json:"unidade_horario" gorm:"type:text;column:unidade_horario"`
	UnidadeEstaca       string `json:"unidade_estaca" gorm:"type:text;column:unidade_estaca"`

	UnidadeCreatedAt time.Time `json:"unidade_created_at" gorm:"column:unidade_created_at;autoCreateTime"`
	UnidadeUpdatedAt time.Time `json:"unidade_updated_at" gorm:"column:unidade_updated_at;autoUpdateTime"`
}

func (UnidadeModel) TableName() string { return "unidades" }

func (u *UnidadeModel) BeforeCreate(tx *gorm.DB) error {
	if u.UnidadeID == uuid.Nil {
		u.UnidadeID = uuid.New()
	}
	return nil
}
