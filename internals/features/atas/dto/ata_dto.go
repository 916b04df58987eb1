// file: internals/features/atas/dto/ata_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	atasModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/model"
	helper "github.com/thales-vaz-sousa/sistema-atas/internals/helpers"
)

/* ==============================
   REQUESTS
============================== */

type SacramentalRequest struct {
	Presidido     string `json:"presidido" validate:"omitempty,max=120"`
	Dirigido      string `json:"dirigido" validate:"omitempty,max=120"`
	Pianista      string `json:"pianista" validate:"omitempty,max=120"`
	RegenteMusica string `json:"regente_musica" validate:"omitempty,max=120"`
	Tema          string `json:"tema" validate:"omitempty,max=200"`

	Anuncios     []string `json:"anuncios" validate:"omitempty,dive,max=500"`
	Discursantes []string `json:"discursantes" validate:"omitempty,dive,max=120"`

	HinoAbertura       string `json:"hino_abertura" validate:"omitempty,max=120"`
	OracaoAbertura     string `json:"oracao_abertura" validate:"omitempty,max=120"`
	HinoSacramental    string `json:"hino_sacramental" validate:"omitempty,max=120"`
	HinoIntermediario  string `json:"hino_intermediario" validate:"omitempty,max=120"`
	HinoEncerramento   string `json:"hino_encerramento" validate:"omitempty,max=120"`
	OracaoEncerramento string `json:"oracao_encerramento" validate:"omitempty,max=120"`
}

type BatismoRequest struct {
	Presidido   string   `json:"presidido" validate:"omitempty,max=120"`
	Dirigido    string   `json:"dirigido" validate:"omitempty,max=120"`
	Dedicado    string   `json:"dedicado" validate:"omitempty,max=120"`
	Testemunha1 string   `json:"testemunha1" validate:"omitempty,max=120"`
	Testemunha2 string   `json:"testemunha2" validate:"omitempty,max=120"`
	Batizados   []string `json:"batizados" validate:"omitempty,dive,max=120"`
}

// SalvarAtaRequest cobre criação e edição. O payload de detalhes
// precisa casar com o tipo informado.
type SalvarAtaRequest struct {
	AtaTipo string `json:"ata_tipo" validate:"required,oneof=sacramental batismo"`
	AtaData string `json:"ata_data" validate:"required,datetime=2006-01-02"`

	Sacramental *SacramentalRequest `json:"sacramental" validate:"omitempty"`
	Batismo     *BatismoRequest     `json:"batismo" validate:"omitempty"`
}

func (r *SalvarAtaRequest) DataParseada() (time.Time, error) {
	return time.Parse("2006-01-02", r.AtaData)
}

func (r *SacramentalRequest) ToModel(ataID uuid.UUID) *atasModel.SacramentalModel {
	return &atasModel.SacramentalModel{
		SacramentalAtaID:             ataID,
		SacramentalPresidido:         r.Presidido,
		SacramentalDirigido:          r.Dirigido,
		SacramentalPianista:          r.Pianista,
		SacramentalRegenteMusica:     r.RegenteMusica,
		SacramentalTema:              r.Tema,
		SacramentalHinos:             CodificarPar(r.HinoAbertura, r.HinoEncerramento),
		SacramentalOracoes:           CodificarPar(r.OracaoAbertura, r.OracaoEncerramento),
		SacramentalDiscursantes:      CodificarLista(r.Discursantes),
		SacramentalAnuncios:          CodificarLista(r.Anuncios),
		SacramentalHinoSacramental:   r.HinoSacramental,
		SacramentalHinoIntermediario: r.HinoIntermediario,
	}
}

func (r *BatismoRequest) ToModel(ataID uuid.UUID) *atasModel.BatismoModel {
	return &atasModel.BatismoModel{
		BatismoAtaID:       ataID,
		BatismoPresidido:   r.Presidido,
		BatismoDirigido:    r.Dirigido,
		BatismoDedicado:    r.Dedicado,
		BatismoTestemunha1: r.Testemunha1,
		BatismoTestemunha2: r.Testemunha2,
		BatismoBatizados:   CodificarLista(r.Batizados),
	}
}

/* ==============================
   RESPONSES (detalhes decodificados)
============================== */

type SacramentalDetalhes struct {
	Presidido     string `json:"presidido"`
	Dirigido      string `json:"dirigido"`
	Pianista      string `json:"pianista"`
	RegenteMusica string `json:"regente_musica"`
	Tema          string `json:"tema"`

	Anuncios     []string `json:"anuncios"`
	Discursantes []string `json:"discursantes"`

	HinoAbertura       string `json:"hino_abertura"`
	OracaoAbertura     string `json:"oracao_abertura"`
	HinoSacramental    string `json:"hino_sacramental"`
	HinoIntermediario  string `json:"hino_intermediario"`
	HinoEncerramento   string `json:"hino_encerramento"`
	OracaoEncerramento string `json:"oracao_encerramento"`
}

func FromSacramentalModel(m *atasModel.SacramentalModel) *SacramentalDetalhes {
	if m == nil {
		return nil
	}
	hinoAbertura, hinoEncerramento := DecodificarPar(m.SacramentalHinos)
	oracaoAbertura, oracaoEncerramento := DecodificarPar(m.SacramentalOracoes)
	return &SacramentalDetalhes{
		Presidido:          m.SacramentalPresidido,
		Dirigido:           m.SacramentalDirigido,
		Pianista:           m.SacramentalPianista,
		RegenteMusica:      m.SacramentalRegenteMusica,
		Tema:               m.SacramentalTema,
		Anuncios:           DecodificarLista(m.SacramentalAnuncios),
		Discursantes:       DecodificarLista(m.SacramentalDiscursantes),
		HinoAbertura:       hinoAbertura,
		OracaoAbertura:     oracaoAbertura,
		HinoSacramental:    m.SacramentalHinoSacramental,
		HinoIntermediario:  m.SacramentalHinoIntermediario,
		HinoEncerramento:   hinoEncerramento,
		OracaoEncerramento: oracaoEncerramento,
	}
}

type BatismoDetalhes struct {
	Presidido   string   `json:"presidido"`
	Dirigido    string   `json:"dirigido"`
	Dedicado    string   `json:"dedicado"`
	Testemunha1 string   `json:"testemunha1"`
	Testemunha2 string   `json:"testemunha2"`
	Batizados   []string `json:"batizados"`
}

func FromBatismoModel(m *atasModel.BatismoModel) *BatismoDetalhes {
	if m == nil {
		return nil
	}
	return &BatismoDetalhes{
		Presidido:   m.BatismoPresidido,
		Dirigido:    m.BatismoDirigido,
		Dedicado:    m.BatismoDedicado,
		Testemunha1: m.BatismoTestemunha1,
		Testemunha2: m.BatismoTestemunha2,
		Batizados:   DecodificarLista(m.BatismoBatizados),
	}
}

type AtaResponse struct {
	AtaID            uuid.UUID `json:"ata_id"`
	AtaTipo          string    `json:"ata_tipo"`
	AtaData          string    `json:"ata_data"`
	AtaDataFormatada string    `json:"ata_data_formatada"`

	// domingo de jejum: a reunião é de testemunhos, sem discursantes
	PrimeiroDomingo bool `json:"primeiro_domingo"`

	Sacramental *SacramentalDetalhes `json:"sacramental,omitempty"`
	Batismo     *BatismoDetalhes     `json:"batismo,omitempty"`
}

func NovaAtaResponse(ata *atasModel.AtaModel) AtaResponse {
	return AtaResponse{
		AtaID:            ata.AtaID,
		AtaTipo:          ata.AtaTipo,
		AtaData:          ata.AtaData.Format("2006-01-02"),
		AtaDataFormatada: helper.FormatarDataBR(ata.AtaData),
		PrimeiroDomingo:  helper.EhPrimeiroDomingo(ata.AtaData),
	}
}

/* ==============================
   LISTAGENS E AGENDA
============================== */

type DiscursanteRecente struct {
	Nome string `json:"nome"`
	Data string `json:"data"`
}

type ProximaReuniaoResponse struct {
	Data            string     `json:"data"`
	DataFormatada   string     `json:"data_formatada"`
	PrimeiroDomingo bool       `json:"primeiro_domingo"`
	AtaExistente    bool       `json:"ata_existente"`
	AtaID           *uuid.UUID `json:"ata_id,omitempty"`
}
