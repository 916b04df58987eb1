package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BatismoModel representa a tabela batismo (detalhes 1:1 da ata).
type BatismoModel struct {
	BatismoID    uuid.UUID `json:"batismo_id" gorm:"type:uuid;primaryKey;column:batismo_id"`
	BatismoAtaID uuid.UUID `json:"batismo_ata_id" gorm:"type:uuid;not null;uniqueIndex;column:batismo_ata_id"`

	BatismoPresidido   string `json:"batismo_presidido" gorm:"type:text;column:batismo_presidido"`
	BatismoDirigido    string `json:"batismo_dirigido" gorm:"type:text;column:batismo_dirigido"`
	BatismoDedicado    string `json:"batismo_dedicado" gorm:"type:text;column:batismo_dedicado"`
	BatismoTestemunha1 string `json:"batismo_testemunha1" gorm:"type:text;column:batismo_testemunha1"`
	BatismoTestemunha2 string `json:"batismo_testemunha2" gorm:"type:text;column:batismo_testemunha2"`

	BatismoBatizados datatypes.JSON `json:"batismo_batizados" gorm:"column:batismo_batizados"`
}

func (BatismoModel) TableName() string { return "batismo" }

func (b *BatismoModel) BeforeCreate(tx *gorm.DB) error {
	if b.BatismoID == uuid.Nil {
		b.BatismoID = uuid.New()
	}
	return nil
}
