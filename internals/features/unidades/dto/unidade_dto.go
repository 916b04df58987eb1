package dto

import (
	"github.com/google/uuid"

	unidadeModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/model"
)

type SalvarUnidadeRequest struct {
	UnidadeNome         string `json:"unidade_nome" validate:"required,max=120"`
	UnidadeBispo        string `json:"unidade_bispo" validate:"omitempty,max=120"`
	UnidadeConselheiro1 string `json:"unidade_conselheiro1" validate:"omitempty,max=120"`
	UnidadeConselheiro2 string `json:"unidade_conselheiro2" validate:"omitempty,max=120"`
	UnidadeHorario      string `json:"unidade_horario" validate:"omitempty,max=40"`
	UnidadeEstaca       string `json:"unidade_estaca" validate:"omitempty,max=120"`
}

func (r *SalvarUnidadeRequest) ToModel(alaID uuid.UUID) *unidadeModel.UnidadeModel {
	return &unidadeModel.UnidadeModel{
		UnidadeAlaID:        alaID,
		UnidadeNome:         r.UnidadeNome,
		UnidadeBispo:        r.UnidadeBispo,
		UnidadeConselheiro1: r.UnidadeConselheiro1,
		UnidadeConselheiro2: r.UnidadeConselheiro2,
		UnidadeHorario:      r.UnidadeHorario,
		UnidadeEstaca:       r.UnidadeEstaca,
	}
}
