// file: internals/features/atas/service/ata_service.go
package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/thales-vaz-sousa/sistema-atas/internals/constants"
	atasDTO "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/dto"
	atasModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/model"
	helper "github.com/thales-vaz-sousa/sistema-atas/internals/helpers"
)

// Limite da lista de discursantes recentes usada no autocomplete.
const MaxDiscursantesRecentes = 20

var errAtaNaoEncontrada = fiber.NewError(fiber.StatusNotFound,
	"Ata não encontrada ou você não tem permissão para acessá-la.")

/* ==============================
   CRUD
============================== */

// Criar valida tipo e data, insere a ata e o payload de detalhes na mesma
// transação e devolve o registro criado.
func Criar(db *gorm.DB, alaID uuid.UUID, req *atasDTO.SalvarAtaRequest) (*atasModel.AtaModel, error) {
	if !constants.TipoValido(req.AtaTipo) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tipo de ata não reconhecido")
	}
	data, err := req.DataParseada()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Erro: Data inválida")
	}

	ata := &atasModel.AtaModel{
		AtaTipo:  req.AtaTipo,
		AtaData:  data,
		AtaAlaID: alaID,
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ata).Error; err != nil {
			return err
		}
		return criarDetalhes(tx, ata.AtaID, req)
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return nil, fe
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao salvar ata")
	}
	return ata, nil
}

// Atualizar regrava tipo, data e detalhes de uma ata da ala.
// Mudança de tipo troca o payload de detalhes dentro da mesma transação,
// para a ata nunca ficar com dois payloads (ou nenhum).
func Atualizar(db *gorm.DB, alaID, ataID uuid.UUID, req *atasDTO.SalvarAtaRequest) (*atasModel.AtaModel, error) {
	if !constants.TipoValido(req.AtaTipo) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tipo de ata não reconhecido")
	}
	data, err := req.DataParseada()
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Erro: Data inválida")
	}

	var ata atasModel.AtaModel
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("ata_id = ? AND ata_ala_id = ?", ataID, alaID).First(&ata).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errAtaNaoEncontrada
			}
			return err
		}

		if err := tx.Model(&ata).Updates(map[string]interface{}{
			"ata_tipo": req.AtaTipo,
			"ata_data": data,
		}).Error; err != nil {
			return err
		}
		ata.AtaTipo = req.AtaTipo
		ata.AtaData = data

		// troca o payload inteiro: remove os dois e recria o do tipo atual
		if err := tx.Where("sacramental_ata_id = ?", ataID).Delete(&atasModel.SacramentalModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("batismo_ata_id = ?", ataID).Delete(&atasModel.BatismoModel{}).Error; err != nil {
			return err
		}
		return criarDetalhes(tx, ataID, req)
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return nil, fe
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar ata")
	}
	return &ata, nil
}

func criarDetalhes(tx *gorm.DB, ataID uuid.UUID, req *atasDTO.SalvarAtaRequest) error {
	switch req.AtaTipo {
	case constants.TipoSacramental:
		sac := req.Sacramental
		if sac == nil {
			sac = &atasDTO.SacramentalRequest{}
		}
		return tx.Create(sac.ToModel(ataID)).Error
	case constants.TipoBatismo:
		bat := req.Batismo
		if bat == nil {
			bat = &atasDTO.BatismoRequest{}
		}
		return tx.Create(bat.ToModel(ataID)).Error
	}
	return fiber.NewError(fiber.StatusBadRequest, "Tipo de ata não reconhecido")
}

// Buscar carrega uma ata com os detalhes decodificados. O filtro por ala
// está no próprio WHERE: ata de outra ala responde igual a inexistente.
func Buscar(db *gorm.DB, alaID, ataID uuid.UUID) (*atasDTO.AtaResponse, error) {
	ata, sac, bat, err := buscarModelos(db, alaID, ataID)
	if err != nil {
		return nil, err
	}
	resp := atasDTO.NovaAtaResponse(ata)
	resp.Sacramental = atasDTO.FromSacramentalModel(sac)
	resp.Batismo = atasDTO.FromBatismoModel(bat)
	return &resp, nil
}

func buscarModelos(db *gorm.DB, alaID, ataID uuid.UUID) (*atasModel.AtaModel, *atasModel.SacramentalModel, *atasModel.BatismoModel, error) {
	var ata atasModel.AtaModel
	err := db.Where("ata_id = ? AND ata_ala_id = ?", ataID, alaID).First(&ata).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, errAtaNaoEncontrada
		}
		return nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar ata")
	}

	switch ata.AtaTipo {
	case constants.TipoSacramental:
		var sac atasModel.SacramentalModel
		err := db.Where("sacramental_ata_id = ?", ataID).First(&sac).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar detalhes")
		}
		if err == nil {
			return &ata, &sac, nil, nil
		}
	case constants.TipoBatismo:
		var bat atasModel.BatismoModel
		err := db.Where("batismo_ata_id = ?", ataID).First(&bat).Error
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar detalhes")
		}
		if err == nil {
			return &ata, nil, &bat, nil
		}
	}
	return &ata, nil, nil, nil
}

// ListarPorMes devolve as atas da ala no mês (formato "2006-01"),
// da mais recente para a mais antiga.
func ListarPorMes(db *gorm.DB, alaID uuid.UUID, mes string) ([]atasModel.AtaModel, error) {
	inicio, err := time.Parse("2006-01", mes)
	if err != nil {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Mês inválido.")
	}
	fim := inicio.AddDate(0, 1, 0)

	var atas []atasModel.AtaModel
	if err := db.
		Where("ata_ala_id = ? AND ata_data >= ? AND ata_data < ?", alaID, inicio, fim).
		Order("ata_data desc").
		Find(&atas).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar atas")
	}
	return atas, nil
}

// ListarTodas devolve todas as atas da ala, mais recentes primeiro.
func ListarTodas(db *gorm.DB, alaID uuid.UUID) ([]atasModel.AtaModel, error) {
	var atas []atasModel.AtaModel
	if err := db.
		Where("ata_ala_id = ?", alaID).
		Order("ata_data desc").
		Find(&atas).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar atas")
	}
	return atas, nil
}

// Excluir remove os detalhes e depois a ata, na mesma transação.
// Nunca fica detalhe órfão nem ata sem exclusão completa.
func Excluir(db *gorm.DB, alaID, ataID uuid.UUID) error {
	err := db.Transaction(func(tx *gorm.DB) error {
		var ata atasModel.AtaModel
		if err := tx.Where("ata_id = ? AND ata_ala_id = ?", ataID, alaID).First(&ata).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errAtaNaoEncontrada
			}
			return err
		}

		if err := tx.Where("sacramental_ata_id = ?", ataID).Delete(&atasModel.SacramentalModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("batismo_ata_id = ?", ataID).Delete(&atasModel.BatismoModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&ata).Error
	})
	if err != nil {
		if fe, ok := err.(*fiber.Error); ok {
			return fe
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir ata")
	}
	return nil
}

/* ==============================
   DISCURSANTES RECENTES E AGENDA
============================== */

type linhaDiscursantes struct {
	SacramentalDiscursantes datatypes.JSON
	AtaData                 time.Time
}

// DiscursantesRecentes varre as atas sacramentais da ala dentro da janela,
// decodifica as listas de discursantes e consolida por nome (trim),
// ficando com a primeira ocorrência. Como a varredura é por data
// decrescente, vence a data mais recente. Resultado limitado a 20 nomes.
func DiscursantesRecentes(db *gorm.DB, alaID uuid.UUID, janelaDias int, hoje time.Time) ([]atasDTO.DiscursanteRecente, error) {
	corte := hoje.AddDate(0, 0, -janelaDias)

	var linhas []linhaDiscursantes
	if err := db.Table("sacramental").
		Select("sacramental.sacramental_discursantes, atas.ata_data").
		Joins("JOIN atas ON atas.ata_id = sacramental.sacramental_ata_id").
		Where("atas.ata_ala_id = ? AND atas.ata_tipo = ? AND atas.ata_data >= ?",
			alaID, constants.TipoSacramental, corte).
		Order("atas.ata_data DESC").
		Scan(&linhas).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar discursantes")
	}

	vistos := make(map[string]bool)
	recentes := make([]atasDTO.DiscursanteRecente, 0, MaxDiscursantesRecentes)
	for _, linha := range linhas {
		for _, nome := range atasDTO.DecodificarLista(linha.SacramentalDiscursantes) {
			chave := strings.TrimSpace(nome)
			if chave == "" || vistos[chave] {
				continue
			}
			vistos[chave] = true
			recentes = append(recentes, atasDTO.DiscursanteRecente{
				Nome: chave,
				Data: linha.AtaData.Format("2006-01-02"),
			})
			if len(recentes) >= MaxDiscursantesRecentes {
				return recentes, nil
			}
		}
	}
	return recentes, nil
}

// ProximaReuniaoSacramental encontra a data da próxima reunião dominical
// e verifica se a ala já tem ata sacramental para essa data.
func ProximaReuniaoSacramental(db *gorm.DB, alaID uuid.UUID, hoje time.Time, avancarSeDomingo bool) (*atasDTO.ProximaReuniaoResponse, error) {
	domingo := helper.ProximoDomingo(hoje, avancarSeDomingo)
	inicio := time.Date(domingo.Year(), domingo.Month(), domingo.Day(), 0, 0, 0, 0, time.UTC)
	fim := inicio.AddDate(0, 0, 1)

	var existente atasModel.AtaModel
	err := db.
		Where("ata_ala_id = ? AND ata_tipo = ? AND ata_data >= ? AND ata_data < ?",
			alaID, constants.TipoSacramental, inicio, fim).
		First(&existente).Error

	resp := &atasDTO.ProximaReuniaoResponse{
		Data:            domingo.Format("2006-01-02"),
		DataFormatada:   helper.FormatarDataBR(domingo),
		PrimeiroDomingo: helper.EhPrimeiroDomingo(domingo),
	}
	switch {
	case err == nil:
		resp.AtaExistente = true
		id := existente.AtaID
		resp.AtaID = &id
	case errors.Is(err, gorm.ErrRecordNotFound):
		// sem ata ainda, nada a preencher
	default:
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao consultar próxima reunião")
	}
	return resp, nil
}
