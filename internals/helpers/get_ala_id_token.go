package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetAlaIDFromToken retorna o ala_id do usuário autenticado.
// O middleware de auth já colocou a claim em Locals.
func GetAlaIDFromToken(c *fiber.Ctx) (uuid.UUID, error) {
	if c.Locals("user_id") == nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Usuário não está logado")
	}
	alaID, ok := c.Locals("ala_id").(string)
	if !ok || alaID == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Ala não encontrada no token")
	}
	id, err := uuid.Parse(alaID)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Ala inválida no token")
	}
	return id, nil
}
