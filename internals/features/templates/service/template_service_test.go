package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/thales-vaz-sousa/sistema-atas/internals/constants"
	templateModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/model"
	unidadeModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/model"
)

func abrirBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&unidadeModel.UnidadeModel{},
		&templateModel.TemplateModel{},
	))
	return db
}

func TestExcluirRecusaUltimoTemplateDoTipo(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	unico := TemplatePadrao(alaID, constants.TipoSacramental)
	require.NoError(t, Criar(db, unico))

	err := Excluir(db, alaID, unico.TemplateID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)

	// o registro sobrevive à tentativa
	var total int64
	require.NoError(t, db.Model(&templateModel.TemplateModel{}).
		Where("template_ala_id = ? AND template_tipo = ?", alaID, constants.TipoSacramental).
		Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestAtualizarRecusaMudarTipoDoUltimoTemplate(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	unico := TemplatePadrao(alaID, constants.TipoSacramental)
	require.NoError(t, Criar(db, unico))

	virouBatismo := TemplatePadrao(alaID, constants.TipoBatismo)
	_, err := Atualizar(db, alaID, unico.TemplateID, virouBatismo)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)

	// o tipo original continua com seu único template
	var total int64
	require.NoError(t, db.Model(&templateModel.TemplateModel{}).
		Where("template_ala_id = ? AND template_tipo = ?", alaID, constants.TipoSacramental).
		Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestAtualizarPermiteMudarTipoComReserva(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	primeiro := TemplatePadrao(alaID, constants.TipoSacramental)
	require.NoError(t, Criar(db, primeiro))
	segundo := TemplatePadrao(alaID, constants.TipoSacramental)
	segundo.TemplateNome = "Conferência da Ala"
	require.NoError(t, Criar(db, segundo))

	virouBatismo := TemplatePadrao(alaID, constants.TipoBatismo)
	atualizado, err := Atualizar(db, alaID, segundo.TemplateID, virouBatismo)
	require.NoError(t, err)
	assert.Equal(t, constants.TipoBatismo, atualizado.TemplateTipo)

	var total int64
	require.NoError(t, db.Model(&templateModel.TemplateModel{}).
		Where("template_ala_id = ? AND template_tipo = ?", alaID, constants.TipoSacramental).
		Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestAtualizarSemMudarTipoNaoConsultaPiso(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	unico := TemplatePadrao(alaID, constants.TipoSacramental)
	require.NoError(t, Criar(db, unico))

	editado := TemplatePadrao(alaID, constants.TipoSacramental)
	editado.TemplateNome = "Roteiro Revisado"
	atualizado, err := Atualizar(db, alaID, unico.TemplateID, editado)
	require.NoError(t, err)
	assert.Equal(t, "Roteiro Revisado", atualizado.TemplateNome)
}

func TestAtualizarNaoEnxergaTemplateDeOutraAla(t *testing.T) {
	db := abrirBancoTeste(t)
	alaA := uuid.New()
	alaB := uuid.New()

	daAlaA := TemplatePadrao(alaA, constants.TipoSacramental)
	require.NoError(t, Criar(db, daAlaA))

	_, err := Atualizar(db, alaB, daAlaA.TemplateID, TemplatePadrao(alaB, constants.TipoSacramental))
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestExcluirComMaisDeUmTemplateDoTipo(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	primeiro := TemplatePadrao(alaID, constants.TipoSacramental)
	require.NoError(t, Criar(db, primeiro))
	segundo := TemplatePadrao(alaID, constants.TipoSacramental)
	segundo.TemplateNome = "Conferência da Ala"
	require.NoError(t, Criar(db, segundo))

	require.NoError(t, Excluir(db, alaID, segundo.TemplateID))

	var total int64
	require.NoError(t, db.Model(&templateModel.TemplateModel{}).
		Where("template_ala_id = ? AND template_tipo = ?", alaID, constants.TipoSacramental).
		Count(&total).Error)
	assert.Equal(t, int64(1), total)
}

func TestExcluirContaPisoPorTipo(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	sacramental := TemplatePadrao(alaID, constants.TipoSacramental)
	require.NoError(t, Criar(db, sacramental))
	batismo := TemplatePadrao(alaID, constants.TipoBatismo)
	require.NoError(t, Criar(db, batismo))

	// o template de batismo não conta para o piso do tipo sacramental
	err := Excluir(db, alaID, sacramental.TemplateID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusConflict, fe.Code)
}

func TestExcluirNaoEnxergaTemplateDeOutraAla(t *testing.T) {
	db := abrirBancoTeste(t)
	alaA := uuid.New()
	alaB := uuid.New()

	daAlaA := TemplatePadrao(alaA, constants.TipoSacramental)
	require.NoError(t, Criar(db, daAlaA))

	err := Excluir(db, alaB, daAlaA.TemplateID)
	require.Error(t, err)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestGarantirTemplatesPadrao(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()
	require.NoError(t, db.Create(&unidadeModel.UnidadeModel{
		UnidadeAlaID: alaID,
		UnidadeNome:  "Ala Jardim das Flores",
	}).Error)

	require.NoError(t, GarantirTemplatesPadrao(db))

	for _, tipo := range []string{constants.TipoSacramental, constants.TipoBatismo} {
		var total int64
		require.NoError(t, db.Model(&templateModel.TemplateModel{}).
			Where("template_ala_id = ? AND template_tipo = ?", alaID, tipo).
			Count(&total).Error)
		assert.Equal(t, int64(1), total, "tipo %s", tipo)
	}

	// segunda passada não duplica
	require.NoError(t, GarantirTemplatesPadrao(db))
	var total int64
	require.NoError(t, db.Model(&templateModel.TemplateModel{}).
		Where("template_ala_id = ?", alaID).Count(&total).Error)
	assert.Equal(t, int64(2), total)
}

func TestBuscarPorTipo(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	require.NoError(t, Criar(db, TemplatePadrao(alaID, constants.TipoSacramental)))

	tpl, err := BuscarPorTipo(db, alaID, constants.TipoSacramental)
	require.NoError(t, err)
	assert.Equal(t, constants.TipoSacramental, tpl.TemplateTipo)
	assert.NotEmpty(t, tpl.TemplateBoasVindas)

	_, err = BuscarPorTipo(db, alaID, constants.TipoBatismo)
	require.Error(t, err)
}
