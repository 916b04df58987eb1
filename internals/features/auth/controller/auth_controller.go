package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authDTO "github.com/thales-vaz-sousa/sistema-atas/internals/features/auth/dto"
	authService "github.com/thales-vaz-sousa/sistema-atas/internals/features/auth/service"
	helper "github.com/thales-vaz-sousa/sistema-atas/internals/helpers"
)

var validate = validator.New()

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// Login — POST /auth/login
func (ctrl *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payload inválido")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	usuario, err := authService.Autenticar(ctrl.DB, req.Username, req.Password)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	token, err := authService.GerarAccessToken(usuario)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	return helper.JsonSuccess(c, "Login realizado com sucesso! Bem-vindo, "+usuario.UsuarioUsername+".", authDTO.LoginResponse{
		AccessToken: token,
		Username:    usuario.UsuarioUsername,
		AlaID:       usuario.UsuarioAlaID.String(),
	})
}

// Logout — POST /auth/logout (rota autenticada)
func (ctrl *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, ok := c.Locals("token_string").(string)
	if !ok || tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Token ausente")
	}
	if err := authService.InvalidarToken(ctrl.DB, tokenString); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonSuccess(c, "Você saiu do sistema.", nil)
}
