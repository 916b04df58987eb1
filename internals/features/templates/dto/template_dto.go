package dto

import (
	"github.com/google/uuid"

	templateModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/model"
)

type SalvarTemplateRequest struct {
	TemplateTipo string `json:"template_tipo" validate:"required,oneof=sacramental batismo"`
	TemplateNome string `json:"template_nome" validate:"required,max=120"`

	TemplateBoasVindas     string `json:"template_boas_vindas" validate:"omitempty"`
	TemplateDesobrigacoes  string `json:"template_desobrigacoes" validate:"omitempty"`
	TemplateApoios         string `json:"template_apoios" validate:"omitempty"`
	TemplateConfirmacoes   string `json:"template_confirmacoes" validate:"omitempty"`
	TemplateNovosMembros   string `json:"template_novos_membros" validate:"omitempty"`
	TemplateBencaoCriancas string `json:"template_bencao_criancas" validate:"omitempty"`
	TemplateSacramento     string `json:"template_sacramento" validate:"omitempty"`
	TemplateMensagens      string `json:"template_mensagens" validate:"omitempty"`
	TemplateAgradecimentos string `json:"template_agradecimentos" validate:"omitempty"`
	TemplateEncerramento   string `json:"template_encerramento" validate:"omitempty"`
}

func (r *SalvarTemplateRequest) ToModel(alaID uuid.UUID) *templateModel.TemplateModel {
	return &templateModel.TemplateModel{
		TemplateAlaID:          alaID,
		TemplateTipo:           r.TemplateTipo,
		TemplateNome:           r.TemplateNome,
		TemplateBoasVindas:     r.TemplateBoasVindas,
		TemplateDesobrigacoes:  r.TemplateDesobrigacoes,
		TemplateApoios:         r.TemplateApoios,
		TemplateConfirmacoes:   r.TemplateConfirmacoes,
		TemplateNovosMembros:   r.TemplateNovosMembros,
		TemplateBencaoCriancas: r.TemplateBencaoCriancas,
		TemplateSacramento:     r.TemplateSacramento,
		TemplateMensagens:      r.TemplateMensagens,
		TemplateAgradecimentos: r.TemplateAgradecimentos,
		TemplateEncerramento:   r.TemplateEncerramento,
	}
}
