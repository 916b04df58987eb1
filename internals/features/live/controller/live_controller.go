// file: internals/features/live/controller/live_controller.go
package controller

import (
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	atasModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/model"
	"github.com/thales-vaz-sousa/sistema-atas/internals/features/live"
	helper "github.com/thales-vaz-sousa/sistema-atas/internals/helpers"
)

type LiveController struct {
	Hub *live.Hub
	DB  *gorm.DB
}

func NewLiveController(hub *live.Hub, db *gorm.DB) *LiveController {
	return &LiveController{Hub: hub, DB: db}
}

// conexaoWS adapta a conexão websocket ao hub. O websocket não aceita
// escritas concorrentes, daí o mutex por conexão.
type conexaoWS struct {
	mu   sync.Mutex
	conn *websocket.Conn
}

func (c *conexaoWS) EnviarJSON(v interface{}) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(v)
}

// Upgrade — middleware que só deixa passar requisições de upgrade, e só
// para a sala de uma ata da ala do usuário. Ata alheia responde igual a
// inexistente, como nas demais rotas.
func (ctrl *LiveController) Upgrade(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}
	alaID, err := helper.GetAlaIDFromToken(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	ataID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "ID inválido")
	}
	if err := verificarAcessoAta(ctrl.DB, alaID, ataID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return c.Next()
}

// verificarAcessoAta confirma que a ata existe e pertence à ala antes de
// abrir a sala; sem isso a transmissão vazaria edições entre alas.
func verificarAcessoAta(db *gorm.DB, alaID, ataID uuid.UUID) error {
	var total int64
	if err := db.Model(&atasModel.AtaModel{}).
		Where("ata_id = ? AND ata_ala_id = ?", ataID, alaID).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Erro ao verificar ata")
	}
	if total == 0 {
		return fiber.NewError(fiber.StatusNotFound,
			"Ata não encontrada ou você não tem permissão para acessá-la.")
	}
	return nil
}

// Handler — GET /ws/atas/:id
// Laço de leitura da conexão: entra na sala da ata, repassa cada mensagem
// aos demais e sai ao desconectar.
func (ctrl *LiveController) Handler() fiber.Handler {
	return websocket.New(func(conn *websocket.Conn) {
		ataID := conn.Params("id")
		usuario, _ := conn.Locals("username").(string)
		if usuario == "" {
			usuario = "anônimo"
		}

		cliente := &conexaoWS{conn: conn}
		ctrl.Hub.Entrar(ataID, cliente, usuario)
		defer ctrl.Hub.Sair(ataID, cliente)

		for {
			var mensagem map[string]interface{}
			if err := conn.ReadJSON(&mensagem); err != nil {
				if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
					log.Printf("❌ [LIVE] conexão encerrada com erro: %v", err)
				}
				return
			}
			ctrl.Hub.Transmitir(ataID, cliente, mensagem)
		}
	})
}
