package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AtaModel representa a tabela atas.
// Cada ata tem exatamente um payload de detalhes, escolhido pelo tipo
// (sacramental ou batismo), sempre na mesma ala do dono.
type AtaModel struct {
	AtaID    uuid.UUID `json:"ata_id" gorm:"type:uuid;primaryKey;column:ata_id"`
	AtaTipo  string    `json:"ata_tipo" gorm:"type:varchar(20);not null;index;column:ata_tipo"`
	AtaData  time.Time `json:"ata_data" gorm:"type:date;not null;index;column:ata_data"`
	AtaAlaID uuid.UUID `json:"ata_ala_id" gorm:"type:uuid;not null;index;column:ata_ala_id"`

	AtaCreatedAt time.Time `json:"ata_created_at" gorm:"column:ata_created_at;autoCreateTime"`
	AtaUpdatedAt time.Time `json:"ata_updated_at" gorm:"column:ata_updated_at;autoUpdateTime"`
}

func (AtaModel) TableName() string { return "atas" }

func (a *AtaModel) BeforeCreate(tx *gorm.DB) error {
	if a.AtaID == uuid.Nil {
		a.AtaID = uuid.New()
	}
	return nil
}
