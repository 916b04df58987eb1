package service

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/thales-vaz-sousa/sistema-atas/internals/configs"
	authModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/auth/model"
)

const accessTTL = 12 * time.Hour

// Autenticar valida as credenciais e devolve o usuário.
// Credencial errada e usuário inexistente produzem a mesma mensagem.
func Autenticar(db *gorm.DB, username, password string) (*authModel.UsuarioModel, error) {
	var usuario authModel.UsuarioModel
	err := db.Where("usuario_username = ?", strings.TrimSpace(username)).First(&usuario).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas. Por favor, tente novamente.")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Erro ao consultar usuário")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(usuario.UsuarioSenha), []byte(password)); err != nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Credenciais inválidas. Por favor, tente novamente.")
	}
	return &usuario, nil
}

// GerarAccessToken emite o JWT com user_id, username e ala_id.
func GerarAccessToken(usuario *authModel.UsuarioModel) (string, error) {
	if configs.JWTSecret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET não configurado")
	}
	now := time.Now()
	claims := jwt.MapClaims{
		"user_id":  usuario.UsuarioID.String(),
		"username": usuario.UsuarioUsername,
		"ala_id":   usuario.UsuarioAlaID.String(),
		"iat":      now.Unix(),
		"exp":      now.Add(accessTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(configs.JWTSecret))
	if err != nil {
		return "", fiber.NewError(fiber.StatusInternalServerError, "Falha ao assinar token")
	}
	return signed, nil
}

// InvalidarToken coloca o token na blacklist até a data de expiração.
func InvalidarToken(db *gorm.DB, tokenString string) error {
	expiredAt := time.Now().Add(accessTTL)
	claims := jwt.MapClaims{}
	parser := jwt.Parser{SkipClaimsValidation: true}
	if _, err := parser.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(configs.JWTSecret), nil
	}); err == nil {
		if exp, ok := claims["exp"].(float64); ok {
			expiredAt = time.Unix(int64(exp), 0)
		}
	}
	entry := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := db.Create(&entry).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Falha ao invalidar token")
	}
	return nil
}

// HashSenha gera o hash bcrypt de uma senha (usado pelos seeds e cadastro).
func HashSenha(senha string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(senha), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
