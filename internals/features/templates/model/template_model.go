package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TemplateModel representa a tabela templates.
// Guarda os textos fixos que preenchem uma ata nova; configurável por ala.
type TemplateModel struct {
	TemplateID    uuid.UUID `json:"template_id" gorm:"type:uuid;primaryKey;column:template_id"`
	TemplateAlaID uuid.UUID `json:"template_ala_id" gorm:"type:uuid;not null;index;column:template_ala_id"`
	TemplateTipo  string    `json:"template_tipo" gorm:"type:varchar(20);not null;index;column:template_tipo"`
	TemplateNome  string    `json:"template_nome" gorm:"type:text;not null;column:template_nome"`

	// Blocos de texto do roteiro da reunião
	TemplateBoasVindas     string `json:"template_boas_vindas" gorm:"type:text;column:template_boas_vindas"`
	TemplateDesobrigacoes  string `json:"template_desobrigacoes" gorm:"type:text;column:template_desobrigacoes"`
	TemplateApoios         string `json:"template_apoios" gorm:"type:text;column:template_apoios"`
	TemplateConfirmacoes   string `json:"template_confirmacoes" gorm:"type:text;column:template_confirmacoes"`
	TemplateNovosMembros   string `json:"template_novos_membros" gorm:"type:text;column:template_novos_membros"`
	TemplateBencaoCriancas string `json:"template_bencao_criancas" gorm:"type:text;column:template_bencao_criancas"`
	TemplateSacramento     string `json:"template_sacramento" gorm:"type:text;column:template_sacramento"`
	TemplateMensagens      string `json:"template_mensagens" gorm:"type:text;column:template_mensagens"`
	TemplateAgradecimentos string `json:"template_agradecimentos" gorm:"type:text;column:template_agradecimentos"`
	TemplateEncerramento   string `json:"template_encerramento" gorm:"type:text;column:template_encerramento"`

	TemplateCreatedAt time.Time `json:"template_created_at" gorm:"column:template_created_at;autoCreateTime"`
	TemplateUpdatedAt time.Time `json:"template_updated_at" gorm:"column:template_updated_at;autoUpdateTime"`
}

func (TemplateModel) TableName() string { return "templates" }

func (t *TemplateModel) BeforeCreate(tx *gorm.DB) error {
	if t.TemplateID == uuid.Nil {
		t.TemplateID = uuid.New()
	}
	return nil
}
