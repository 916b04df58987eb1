package service

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thales-vaz-sousa/sistema-atas/internals/constants"
	templateModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/model"
	unidadeModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/model"
)

// Listar devolve os templates da ala, opcionalmente filtrados por tipo.
func Listar(db *gorm.DB, alaID uuid.UUID, tipo string) ([]templateModel.TemplateModel, error) {
	q := db.Where("template_ala_id = ?", alaID)
	if tipo != "" {
		if !constants.TipoValido(tipo) {
			return nil, fiber.NewError(fiber.StatusBadRequest, "Tipo de template não reconhecido")
		}
		q = q.Where("template_tipo = ?", tipo)
	}
	var templates []templateModel.TemplateModel
	if err := q.Order("template_nome asc").Find(&templates).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao listar templates")
	}
	return templates, nil
}

// Buscar carrega um template da ala; a checagem de dono está no próprio WHERE.
func Buscar(db *gorm.DB, alaID, templateID uuid.UUID) (*templateModel.TemplateModel, error) {
	var template templateModel.TemplateModel
	err := db.Where("template_id = ? AND template_ala_id = ?", templateID, alaID).First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Template não encontrado")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar template")
	}
	return &template, nil
}

// BuscarPorTipo devolve o template mais recente do tipo para preencher atas novas.
func BuscarPorTipo(db *gorm.DB, alaID uuid.UUID, tipo string) (*templateModel.TemplateModel, error) {
	var template templateModel.TemplateModel
	err := db.
		Where("template_ala_id = ? AND template_tipo = ?", alaID, tipo).
		Order("template_updated_at desc").
		First(&template).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Nenhum template do tipo "+tipo)
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar template")
	}
	return &template, nil
}

// Criar insere um template novo para a ala.
func Criar(db *gorm.DB, template *templateModel.TemplateModel) error {
	if !constants.TipoValido(template.TemplateTipo) {
		return fiber.NewError(fiber.StatusBadRequest, "Tipo de template não reconhecido")
	}
	if err := db.Create(template).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao criar template")
	}
	return nil
}

// Atualizar regrava um template da ala. Mudar o tipo do último template
// de um tipo é recusado (409): esvaziaria o tipo pela porta dos fundos,
// driblando a mesma regra que Excluir aplica.
func Atualizar(db *gorm.DB, alaID, templateID uuid.UUID, atualizado *templateModel.TemplateModel) (*templateModel.TemplateModel, error) {
	if !constants.TipoValido(atualizado.TemplateTipo) {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Tipo de template não reconhecido")
	}

	var template templateModel.TemplateModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("template_id = ? AND template_ala_id = ?", templateID, alaID).First(&template).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Template não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar template")
		}

		if atualizado.TemplateTipo != template.TemplateTipo {
			var total int64
			if err := tx.Model(&templateModel.TemplateModel{}).
				Where("template_ala_id = ? AND template_tipo = ?", alaID, template.TemplateTipo).
				Count(&total).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Erro ao contar templates")
			}
			if total <= 1 {
				return fiber.NewError(fiber.StatusConflict,
					"Não é possível mudar o tipo do último template do tipo "+template.TemplateTipo)
			}
		}

		atualizado.TemplateID = template.TemplateID
		atualizado.TemplateAlaID = alaID
		if err := tx.Model(&template).Select("*").Omit(
			"template_id", "template_ala_id", "template_created_at",
		).Updates(atualizado).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao atualizar template")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return Buscar(db, alaID, templateID)
}

// Excluir remove um template, recusando quando ele é o último do seu tipo
// na ala. A contagem e a remoção acontecem na mesma transação para a
// recusa nunca deixar exclusão parcial.
func Excluir(db *gorm.DB, alaID, templateID uuid.UUID) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var template templateModel.TemplateModel
		err := tx.Where("template_id = ? AND template_ala_id = ?", templateID, alaID).First(&template).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Template não encontrado")
			}
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao buscar template")
		}

		var total int64
		if err := tx.Model(&templateModel.TemplateModel{}).
			Where("template_ala_id = ? AND template_tipo = ?", alaID, template.TemplateTipo).
			Count(&total).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao contar templates")
		}
		if total <= 1 {
			return fiber.NewError(fiber.StatusConflict,
				"Não é possível excluir o último template do tipo "+template.TemplateTipo)
		}

		if err := tx.Delete(&template).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Erro ao excluir template")
		}
		return nil
	})
}

// GarantirTemplatesPadrao cria o template padrão de cada tipo para as alas
// que ainda não têm nenhum. Garante o piso de "ao menos um por tipo".
func GarantirTemplatesPadrao(db *gorm.DB) error {
	var unidades []unidadeModel.UnidadeModel
	if err := db.Find(&unidades).Error; err != nil {
		return err
	}
	for _, unidade := range unidades {
		for _, tipo := range []string{constants.TipoSacramental, constants.TipoBatismo} {
			var total int64
			if err := db.Model(&templateModel.TemplateModel{}).
				Where("template_ala_id = ? AND template_tipo = ?", unidade.UnidadeAlaID, tipo).
				Count(&total).Error; err != nil {
				return err
			}
			if total > 0 {
				continue
			}
			padrao := TemplatePadrao(unidade.UnidadeAlaID, tipo)
			if err := db.Create(padrao).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// TemplatePadrao monta o template inicial de um tipo com os textos de roteiro.
func TemplatePadrao(alaID uuid.UUID, tipo string) *templateModel.TemplateModel {
	t := &templateModel.TemplateModel{
		TemplateAlaID: alaID,
		TemplateTipo:  tipo,
		TemplateNome:  "Padrão",
	}
	if tipo == constants.TipoBatismo {
		t.TemplateBoasVindas = "Bom dia irmãos e irmãs! Sejam bem-vindos a este serviço batismal. Desejamos que todos sintam o Espírito nesta ocasião especial."
		t.TemplateEncerramento = "Agradecemos a presença de todos neste serviço batismal."
		return t
	}
	t.TemplateBoasVindas = "Bom dia irmãos e irmãs! Gostaríamos de fazer todos muito bem vindos a mais uma Reunião Sacramental. Desejamos que todos se sintam bem entre nós, especialmente aqueles que nos visitam."
	t.TemplateDesobrigacoes = "É proposto dar um voto de agradecimento aos serviços prestados pelo(a) irmã(o) [NOME] que serviu como [CHAMADO]. Todos os que desejam se manifestar, levantem a mão."
	t.TemplateApoios = "O(a) irmã(o) [NOME] está sendo chamado(a) como [CHAMADO]. Todos que forem a favor manifestem-se. Os que forem contrários, manifestem-se."
	t.TemplateConfirmacoes = "O(a) irmã(o) [NOME] foram batizados, gostaríamos de convidá-los(a) para virem até o púlpito para que possamos fazer sua confirmação como membro de A Igreja de Jesus Cristo dos Santos dos Últimos Dias."
	t.TemplateNovosMembros = "O(a) irmã(o) [NOME] foi batizado e confirmado membro da igreja, e gostaríamos do apoio de todos os irmãos de plena aceitação como mais novo membro da ala. Todos a favor, manifestem-se."
	t.TemplateBencaoCriancas = "Gostaríamos de chamar ao púlpito o irmão [NOME] que irá dar a benção de apresentação da(o) [NOME]."
	t.TemplateSacramento = "Passaremos ao Sacramento, que é a parte mais importante de nossa reunião. O Sacramento será abençoado e distribuído a todos."
	t.TemplateMensagens = "Agradecemos a todos pela reverência durante o Sacramento. Passaremos agora à parte dos discursantes. Lembramos aos que assistem à transmissão da reunião que se identifiquem para que possamos contá-los também."
	t.TemplateAgradecimentos = "Agradecemos a presença e participação de todos, especialmente aqueles que contribuíram de alguma forma para que essa reunião acontecesse. Convidamos todos para que estejam aqui no próximo domingo. Desejamos a todos uma ótima semana e que o Espírito do Senhor os acompanhe."
	t.TemplateEncerramento = "Encerraremos com o hino e a última oração."
	return t
}
