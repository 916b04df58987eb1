// file: internals/seeds/runner.go
package seeds

import (
	"errors"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/thales-vaz-sousa/sistema-atas/internals/configs"
	authModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/auth/model"
	authService "github.com/thales-vaz-sousa/sistema-atas/internals/features/auth/service"
	unidadeModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/model"
)

// RunAllSeeds prepara o banco de uma instalação nova.
// Hoje só cria o usuário inicial; novas cargas entram aqui.
func RunAllSeeds(db *gorm.DB) {
	if err := SeedUsuarioInicial(db); err != nil {
		log.Printf("[ERROR] Seed do usuário inicial: %v", err)
	}
}

// SeedUsuarioInicial cria a primeira ala e seu usuário a partir de
// SEED_USERNAME / SEED_PASSWORD. Sem as variáveis, ou com o usuário já
// criado, não faz nada.
func SeedUsuarioInicial(db *gorm.DB) error {
	username := configs.GetEnv("SEED_USERNAME")
	senha := configs.GetEnv("SEED_PASSWORD")
	if username == "" || senha == "" {
		return nil
	}

	var existente authModel.UsuarioModel
	err := db.Where("usuario_username = ?", username).First(&existente).Error
	if err == nil {
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	hash, err := authService.HashSenha(senha)
	if err != nil {
		return err
	}

	alaID := uuid.New()
	return db.Transaction(func(tx *gorm.DB) error {
		unidade := &unidadeModel.UnidadeModel{
			UnidadeAlaID: alaID,
			UnidadeNome:  configs.GetEnv("SEED_ALA_NOME", "Minha Ala"),
		}
		if err := tx.Create(unidade).Error; err != nil {
			return err
		}
		usuario := &authModel.UsuarioModel{
			UsuarioUsername: username,
			UsuarioSenha:    hash,
			UsuarioAlaID:    alaID,
		}
		if err := tx.Create(usuario).Error; err != nil {
			return err
		}
		log.Printf("✅ [SEED] usuário inicial %q criado para a ala %s", username, alaID)
		return nil
	})
}
