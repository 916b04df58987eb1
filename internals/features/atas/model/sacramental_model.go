package model

import (
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// SacramentalModel representa a tabela sacramental (detalhes 1:1 da ata).
// Os campos de lista são colunas JSON: hinos e oracoes guardam o par
// [abertura, encerramento]; discursantes preserva a ordem dos oradores.
type SacramentalModel struct {
	SacramentalID    uuid.UUID `json:"sacramental_id" gorm:"type:uuid;primaryKey;column:sacramental_id"`
	SacramentalAtaID uuid.UUID `json:"sacramental_ata_id" gorm:"type:uuid;not null;uniqueIndex;column:sacramental_ata_id"`

	SacramentalPresidido     string `json:"sacramental_presidido" gorm:"type:text;column:sacramental_presidido"`
	SacramentalDirigido      string `json:"sacramental_dirigido" gorm:"type:text;column:sacramental_dirigido"`
	SacramentalPianista      string `json:"sacramental_pianista" gorm:"type:text;column:sacramental_pianista"`
	SacramentalRegenteMusica string `json:"sacramental_regente_musica" gorm:"type:text;column:sacramental_regente_musica"`
	SacramentalTema          string `json:"sacramental_tema" gorm:"type:text;column:sacramental_tema"`

	SacramentalHinos        datatypes.JSON `json:"sacramental_hinos" gorm:"column:sacramental_hinos"`
	SacramentalOracoes      datatypes.JSON `json:"sacramental_oracoes" gorm:"column:sacramental_oracoes"`
	SacramentalDiscursantes datatypes.JSON `json:"sacramental_discursantes" gorm:"column:sacramental_discursantes"`
	SacramentalAnuncios     datatypes.JSON `json:"sacramental_anuncios" gorm:"column:sacramental_anuncios"`

	SacramentalHinoSacramental   string `json:"sacramental_hino_sacramental" gorm:"type:text;column:sacramental_hino_sacramental"`
	SacramentalHinoIntermediario string `json:"sacramental_hino_intermediario" gorm:"type:text;column:sacramental_hino_intermediario"`
}

func (SacramentalModel) TableName() string { return "sacramental" }

func (s *SacramentalModel) BeforeCreate(tx *gorm.DB) error {
	if s.SacramentalID == uuid.Nil {
		s.SacramentalID = uuid.New()
	}
	return nil
}
