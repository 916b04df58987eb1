package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	unidadeDTO "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/dto"
	unidadeModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/model"
	helper "github.com/thales-vaz-sousa/sistema-atas/internals/helpers"
)

var validate = validator.New()

type UnidadeController struct {
	DB *gorm.DB
}

func NewUnidadeController(db *gorm.DB) *UnidadeController {
	return &UnidadeController{DB: db}
}

// GetMinha — GET /api/unidades/minha
// Devolve a unidade da ala do usuário autenticado.
func (ctrl *UnidadeController) GetMinha(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var unidade unidadeModel.UnidadeModel
	if err := ctrl.DB.Where("unidade_ala_id = ?", alaID).First(&unidade).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Unidade ainda não configurada")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar unidade")
	}

	return helper.JsonSuccess(c, "OK", unidade)
}

// Salvar — PUT /api/unidades/minha
// Cria ou atualiza os dados da unidade da ala (upsert por ala_id).
func (ctrl *UnidadeController) Salvar(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req unidadeDTO.SalvarUnidadeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var existente unidadeModel.UnidadeModel
	err = ctrl.DB.Where("unidade_ala_id = ?", alaID).First(&existente).Error
	switch {
	case err == nil:
		updates := map[string]interface{}{
			"unidade_nome":         req.UnidadeNome,
			"unidade_bispo":        req.UnidadeBispo,
			"unidade_conselheiro1": req.UnidadeConselheiro1,
			"unidade_conselheiro2": req.UnidadeConselheiro2,
			"unidade_horario":      req.UnidadeHorario,
			"unidade_estaca":       req.UnidadeEstaca,
		}
		if err := ctrl.DB.Model(&existente).Updates(updates).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao atualizar unidade")
		}
		return helper.JsonSuccess(c, "Unidade atualizada", existente)

	case errors.Is(err, gorm.ErrRecordNotFound):
		nova := req.ToModel(alaID)
		if err := ctrl.DB.Create(nova).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao criar unidade")
		}
		return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Unidade criada", nova)

	default:
		return helper.JsonError(c, fiber.StatusInternalServerError, "Erro ao consultar unidade")
	}
}
