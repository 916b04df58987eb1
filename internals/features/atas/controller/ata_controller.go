// file: internals/features/atas/controller/ata_controller.go
package controller

import (
	"fmt"
	"strconv"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thales-vaz-sousa/sistema-atas/internals/configs"
	"github.com/thales-vaz-sousa/sistema-atas/internals/constants"
	atasDTO "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/dto"
	atasModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/model"
	"github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/pdf"
	atasService "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/service"
	templateService "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/service"
	unidadeModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/model"
	helper "github.com/thales-vaz-sousa/sistema-atas/internals/helpers"
)

var validate = validator.New()

type AtaController struct {
	DB *gorm.DB
}

func NewAtaController(db *gorm.DB) *AtaController {
	return &AtaController{DB: db}
}

// Create — POST /api/atas
func (ctrl *AtaController) Create(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req atasDTO.SalvarAtaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	ata, err := atasService.Criar(ctrl.DB, alaID, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Ata criada", atasDTO.NovaAtaResponse(ata))
}

// Update — PUT /api/atas/:id
func (ctrl *AtaController) Update(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ataID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	var req atasDTO.SalvarAtaRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	ata, err := atasService.Atualizar(ctrl.DB, alaID, ataID, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccess(c, "Ata atualizada", atasDTO.NovaAtaResponse(ata))
}

// GetByID — GET /api/atas/:id
func (ctrl *AtaController) GetByID(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ataID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	ata, err := atasService.Buscar(ctrl.DB, alaID, ataID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccess(c, "OK", ata)
}

// GetAll — GET /api/atas?mes=2024-03
// Sem o filtro de mês devolve todas as atas da ala.
func (ctrl *AtaController) GetAll(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var (
		modelos []atasModel.AtaModel
		erro    error
	)
	if mes := c.Query("mes"); mes != "" {
		modelos, erro = atasService.ListarPorMes(ctrl.DB, alaID, mes)
	} else {
		modelos, erro = atasService.ListarTodas(ctrl.DB, alaID)
	}
	if erro != nil {
		return helper.FromFiberError(c, erro)
	}

	atas := make([]atasDTO.AtaResponse, 0, len(modelos))
	for i := range modelos {
		atas = append(atas, atasDTO.NovaAtaResponse(&modelos[i]))
	}
	return helper.JsonSuccess(c, "OK", atas)
}

// Delete — DELETE /api/atas/:id
func (ctrl *AtaController) Delete(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ataID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := atasService.Excluir(ctrl.DB, alaID, ataID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccess(c, "Ata excluída", fiber.Map{"deleted_id": ataID})
}

// GetMeses — GET /api/atas/meses?ano=2024
func (ctrl *AtaController) GetMeses(c *fiber.Ctx) error {
	ano := time.Now().Year()
	if q := c.Query("ano"); q != "" {
		parsed, err := strconv.Atoi(q)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "Ano inválido")
		}
		ano = parsed
	}
	return helper.JsonSuccess(c, "OK", helper.ListarMesesDoAno(ano))
}

// GetDiscursantesRecentes — GET /api/atas/discursantes-recentes
// Lista para o autocomplete: quem discursou na janela configurada.
func (ctrl *AtaController) GetDiscursantesRecentes(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	discursantes, err := atasService.DiscursantesRecentes(
		ctrl.DB, alaID, configs.JanelaDiscursantesDias, time.Now())
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccess(c, "OK", discursantes)
}

// GetProximaReuniao — GET /api/atas/proxima-reuniao
func (ctrl *AtaController) GetProximaReuniao(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	proxima, err := atasService.ProximaReuniaoSacramental(
		ctrl.DB, alaID, time.Now(), configs.ProximoDomingoAvanca)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccess(c, "OK", proxima)
}

/* ==============================
   EXPORTAÇÃO EM PDF
============================== */

// ExportarSimples — GET /api/atas/:id/pdf
func (ctrl *AtaController) ExportarSimples(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ataID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	ata, err := atasService.Buscar(ctrl.DB, alaID, ataID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	conteudo, err := pdf.RenderizarSimples(ata)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return enviarPDF(c, fmt.Sprintf("ata_%s.pdf", ataID), conteudo)
}

// ExportarSacramental — GET /api/atas/:id/pdf-sacramental
// Monta o guia completo com os dados da unidade e o template do tipo.
func (ctrl *AtaController) ExportarSacramental(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ataID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	ata, err := atasService.Buscar(ctrl.DB, alaID, ataID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if ata.AtaTipo != constants.TipoSacramental {
		return helper.JsonError(c, fiber.StatusUnprocessableEntity,
			"Apenas atas sacramentais têm o guia da reunião.")
	}

	unidade := ctrl.unidadeDaAla(alaID)
	template, err := templateService.BuscarPorTipo(ctrl.DB, alaID, constants.TipoSacramental)
	if err != nil {
		// ala ainda sem template salvo: renderiza com o roteiro padrão
		template = templateService.TemplatePadrao(alaID, constants.TipoSacramental)
	}

	conteudo, err := pdf.RenderizarSacramental(ata, unidade, template)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return enviarPDF(c, fmt.Sprintf("ata_sacramental_%s.pdf", ataID), conteudo)
}

// unidadeDaAla busca os dados da unidade; nil quando ainda não configurada,
// o renderizador usa os placeholders.
func (ctrl *AtaController) unidadeDaAla(alaID uuid.UUID) *unidadeModel.UnidadeModel {
	var unidade unidadeModel.UnidadeModel
	if err := ctrl.DB.Where("unidade_ala_id = ?", alaID).First(&unidade).Error; err != nil {
		return nil
	}
	return &unidade
}

func enviarPDF(c *fiber.Ctx, nomeArquivo string, conteudo []byte) error {
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, nomeArquivo))
	return c.Send(conteudo)
}
