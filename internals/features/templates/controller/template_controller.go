package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	templateDTO "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/dto"
	templateService "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/service"
	helper "github.com/thales-vaz-sousa/sistema-atas/internals/helpers"
)

var validate = validator.New()

type TemplateController struct {
	DB *gorm.DB
}

func NewTemplateController(db *gorm.DB) *TemplateController {
	return &TemplateController{DB: db}
}

// GetAll — GET /api/templates?tipo=sacramental
func (ctrl *TemplateController) GetAll(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	templates, err := templateService.Listar(ctrl.DB, alaID, c.Query("tipo"))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccess(c, "OK", templates)
}

// GetByID — GET /api/templates/:id
func (ctrl *TemplateController) GetByID(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	template, err := templateService.Buscar(ctrl.DB, alaID, templateID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccess(c, "OK", template)
}

// Create — POST /api/templates
func (ctrl *TemplateController) Create(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var req templateDTO.SalvarTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}
	template := req.ToModel(alaID)
	if err := templateService.Criar(ctrl.DB, template); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccessWithCode(c, fiber.StatusCreated, "Template criado", template)
}

// Update — PUT /api/templates/:id
// Mudar o tipo do último template de um tipo é recusado (409).
func (ctrl *TemplateController) Update(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}

	var req templateDTO.SalvarTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	atualizado, err := templateService.Atualizar(ctrl.DB, alaID, templateID, req.ToModel(alaID))
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccess(c, "Template atualizado", atualizado)
}

// Delete — DELETE /api/templates/:id
// Recusa excluir o último template do tipo (409).
func (ctrl *TemplateController) Delete(c *fiber.Ctx) error {
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	templateID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := templateService.Excluir(ctrl.DB, alaID, templateID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccess(c, "Template excluído", fiber.Map{"deleted_id": templateID})
}
