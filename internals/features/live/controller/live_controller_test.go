package controller

import (
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/thales-vaz-sousa/sistema-atas/internals/constants"
	atasModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/model"
)

func abrirBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&atasModel.AtaModel{}))
	return db
}

func TestVerificarAcessoAta(t *testing.T) {
	db := abrirBancoTeste(t)
	alaA := uuid.New()
	alaB := uuid.New()

	ata := &atasModel.AtaModel{
		AtaTipo:  constants.TipoSacramental,
		AtaData:  time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC),
		AtaAlaID: alaA,
	}
	require.NoError(t, db.Create(ata).Error)

	// dono entra
	assert.NoError(t, verificarAcessoAta(db, alaA, ata.AtaID))

	// outra ala recebe a mesma resposta de ata inexistente
	err := verificarAcessoAta(db, alaB, ata.AtaID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	// ata que não existe
	err = verificarAcessoAta(db, alaA, uuid.New())
	require.Error(t, err)
	fe, ok = err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}
