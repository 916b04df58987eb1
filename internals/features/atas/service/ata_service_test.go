package service

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
	atasDTO "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/dto"
	atasModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/model"
)

func abrirBancoTeste(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&atasModel.AtaModel{},
		&atasModel.SacramentalModel{},
		&atasModel.BatismoModel{},
	))
	return db
}

func requisicaoSacramental(data string, discursantes []string) *atasDTO.SalvarAtaRequest {
	return &atasDTO.SalvarAtaRequest{
		AtaTipo: constants.TipoSacramental,
		AtaData: data,
		Sacramental: &atasDTO.SacramentalRequest{
			Presidido:          "Bispo Carlos Andrade",
			Dirigido:           "Marcos Pereira",
			Tema:               "Fé em Jesus Cristo",
			Discursantes:       discursantes,
			Anuncios:           []string{"Atividade da ala no sábado"},
			HinoAbertura:       "Hino 85",
			OracaoAbertura:     "Pedro Souza",
			HinoSacramental:    "Hino 98",
			HinoEncerramento:   "Hino 36",
			OracaoEncerramento: "Laura Castro",
		},
	}
}

func codigoErro(t *testing.T, err error) int {
	t.Helper()
	fe, ok := err.(*fiber.Error)
	require.True(t, ok, "esperava *fiber.Error, veio %T", err)
	return fe.Code
}

func TestCriarEBuscarSacramental(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	ata, err := Criar(db, alaID, requisicaoSacramental("2024-03-03", []string{"Ana", "Bruno"}))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, ata.AtaID)

	resp, err := Buscar(db, alaID, ata.AtaID)
	require.NoError(t, err)
	assert.Equal(t, constants.TipoSacramental, resp.AtaTipo)
	assert.Equal(t, "2024-03-03", resp.AtaData)
	assert.Equal(t, "03/03/2024", resp.AtaDataFormatada)
	assert.True(t, resp.PrimeiroDomingo, "03/03/2024 é o primeiro domingo do mês")
	require.NotNil(t, resp.Sacramental)
	assert.Nil(t, resp.Batismo)
	assert.Equal(t, "Fé em Jesus Cristo", resp.Sacramental.Tema)
	assert.Equal(t, []string{"Ana", "Bruno"}, resp.Sacramental.Discursantes)
	assert.Equal(t, "Hino 85", resp.Sacramental.HinoAbertura)
	assert.Equal(t, "Hino 36", resp.Sacramental.HinoEncerramento)
}

func TestCriarSemDetalhesGravaPayloadVazio(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	ata, err := Criar(db, alaID, &atasDTO.SalvarAtaRequest{
		AtaTipo: constants.TipoBatismo,
		AtaData: "2024-04-06",
	})
	require.NoError(t, err)

	resp, err := Buscar(db, alaID, ata.AtaID)
	require.NoError(t, err)
	require.NotNil(t, resp.Batismo)
	assert.Empty(t, resp.Batismo.Batizados)
	assert.NotNil(t, resp.Batismo.Batizados, "lista vazia, nunca null")
}

func TestCriarRejeitaTipoEDataInvalidos(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	_, err := Criar(db, alaID, &atasDTO.SalvarAtaRequest{AtaTipo: "reuniao", AtaData: "2024-03-03"})
	assert.Equal(t, fiber.StatusBadRequest, codigoErro(t, err))

	_, err = Criar(db, alaID, &atasDTO.SalvarAtaRequest{AtaTipo: constants.TipoSacramental, AtaData: "03/03/2024"})
	assert.Equal(t, fiber.StatusBadRequest, codigoErro(t, err))
}

func TestAtaDeOutraAlaRespondeComoInexistente(t *testing.T) {
	db := abrirBancoTeste(t)
	alaA := uuid.New()
	alaB := uuid.New()

	ata, err := Criar(db, alaA, requisicaoSacramental("2024-03-03", nil))
	require.NoError(t, err)

	_, err = Buscar(db, alaB, ata.AtaID)
	assert.Equal(t, fiber.StatusNotFound, codigoErro(t, err))

	_, err = Atualizar(db, alaB, ata.AtaID, requisicaoSacramental("2024-03-10", nil))
	assert.Equal(t, fiber.StatusNotFound, codigoErro(t, err))

	err = Excluir(db, alaB, ata.AtaID)
	assert.Equal(t, fiber.StatusNotFound, codigoErro(t, err))

	// a ata da ala A segue intacta
	resp, err := Buscar(db, alaA, ata.AtaID)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-03", resp.AtaData)
}

func TestListagemSoMostraAtasDaAla(t *testing.T) {
	db := abrirBancoTeste(t)
	alaA := uuid.New()
	alaB := uuid.New()

	_, err := Criar(db, alaA, requisicaoSacramental("2024-03-03", nil))
	require.NoError(t, err)
	_, err = Criar(db, alaB, requisicaoSacramental("2024-03-10", nil))
	require.NoError(t, err)

	atas, err := ListarTodas(db, alaA)
	require.NoError(t, err)
	require.Len(t, atas, 1)
	assert.Equal(t, alaA, atas[0].AtaAlaID)
}

func TestAtualizarTrocaTipoSemDeixarPayloadOrfao(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	ata, err := Criar(db, alaID, requisicaoSacramental("2024-03-03", []string{"Ana"}))
	require.NoError(t, err)

	_, err = Atualizar(db, alaID, ata.AtaID, &atasDTO.SalvarAtaRequest{
		AtaTipo: constants.TipoBatismo,
		AtaData: "2024-03-03",
		Batismo: &atasDTO.BatismoRequest{Batizados: []string{"Helena"}},
	})
	require.NoError(t, err)

	var totalSacramental, totalBatismo int64
	require.NoError(t, db.Model(&atasModel.SacramentalModel{}).
		Where("sacramental_ata_id = ?", ata.AtaID).Count(&totalSacramental).Error)
	require.NoError(t, db.Model(&atasModel.BatismoModel{}).
		Where("batismo_ata_id = ?", ata.AtaID).Count(&totalBatismo).Error)
	assert.Equal(t, int64(0), totalSacramental)
	assert.Equal(t, int64(1), totalBatismo)

	resp, err := Buscar(db, alaID, ata.AtaID)
	require.NoError(t, err)
	assert.Nil(t, resp.Sacramental)
	require.NotNil(t, resp.Batismo)
	assert.Equal(t, []string{"Helena"}, resp.Batismo.Batizados)
}

func TestExcluirRemoveAtaEDetalhesJuntos(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	ata, err := Criar(db, alaID, requisicaoSacramental("2024-03-03", []string{"Ana"}))
	require.NoError(t, err)

	require.NoError(t, Excluir(db, alaID, ata.AtaID))

	var totalAtas, totalDetalhes int64
	require.NoError(t, db.Model(&atasModel.AtaModel{}).
		Where("ata_id = ?", ata.AtaID).Count(&totalAtas).Error)
	require.NoError(t, db.Model(&atasModel.SacramentalModel{}).
		Where("sacramental_ata_id = ?", ata.AtaID).Count(&totalDetalhes).Error)
	assert.Equal(t, int64(0), totalAtas)
	assert.Equal(t, int64(0), totalDetalhes)
}

func TestListarPorMes(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()

	_, err := Criar(db, alaID, requisicaoSacramental("2024-03-03", nil))
	require.NoError(t, err)
	_, err = Criar(db, alaID, requisicaoSacramental("2024-03-31", nil))
	require.NoError(t, err)
	_, err = Criar(db, alaID, requisicaoSacramental("2024-04-07", nil))
	require.NoError(t, err)

	atas, err := ListarPorMes(db, alaID, "2024-03")
	require.NoError(t, err)
	require.Len(t, atas, 2)
	// mais recente primeiro
	assert.Equal(t, "2024-03-31", atas[0].AtaData.Format("2006-01-02"))
	assert.Equal(t, "2024-03-03", atas[1].AtaData.Format("2006-01-02"))

	_, err = ListarPorMes(db, alaID, "03/2024")
	assert.Equal(t, fiber.StatusBadRequest, codigoErro(t, err))
}

func TestDiscursantesRecentesConsolidaPorNome(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()
	hoje := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	_, err := Criar(db, alaID, requisicaoSacramental("2024-04-21", []string{"Ana", "Bruno"}))
	require.NoError(t, err)
	_, err = Criar(db, alaID, requisicaoSacramental("2024-04-07", []string{" Ana ", "Carla"}))
	require.NoError(t, err)
	// fora da janela de 90 dias
	_, err = Criar(db, alaID, requisicaoSacramental("2023-12-03", []string{"Davi"}))
	require.NoError(t, err)
	// outra ala não aparece
	_, err = Criar(db, uuid.New(), requisicaoSacramental("2024-04-28", []string{"Elisa"}))
	require.NoError(t, err)

	recentes, err := DiscursantesRecentes(db, alaID, 90, hoje)
	require.NoError(t, err)

	nomes := make([]string, 0, len(recentes))
	for _, r := range recentes {
		nomes = append(nomes, r.Nome)
	}
	assert.Equal(t, []string{"Ana", "Bruno", "Carla"}, nomes)

	// "Ana" consolidada na data mais recente, mesmo com espaços na segunda ata
	assert.Equal(t, "2024-04-21", recentes[0].Data)
}

func TestDiscursantesRecentesRespeitaLimite(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()
	hoje := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	nomes := make([]string, 0, MaxDiscursantesRecentes+5)
	for i := 0; i < MaxDiscursantesRecentes+5; i++ {
		nomes = append(nomes, "Membro "+uuid.NewString())
	}
	_, err := Criar(db, alaID, requisicaoSacramental("2024-04-21", nomes))
	require.NoError(t, err)

	recentes, err := DiscursantesRecentes(db, alaID, 90, hoje)
	require.NoError(t, err)
	assert.Len(t, recentes, MaxDiscursantesRecentes)
}

func TestProximaReuniaoSacramental(t *testing.T) {
	db := abrirBancoTeste(t)
	alaID := uuid.New()
	terca := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)

	// sem ata para o domingo seguinte
	resp, err := ProximaReuniaoSacramental(db, alaID, terca, false)
	require.NoError(t, err)
	assert.Equal(t, "2024-03-10", resp.Data)
	assert.Equal(t, "10/03/2024", resp.DataFormatada)
	assert.False(t, resp.PrimeiroDomingo)
	assert.False(t, resp.AtaExistente)
	assert.Nil(t, resp.AtaID)

	// com ata criada para o domingo
	ata, err := Criar(db, alaID, requisicaoSacramental("2024-03-10", nil))
	require.NoError(t, err)

	resp, err = ProximaReuniaoSacramental(db, alaID, terca, false)
	require.NoError(t, err)
	assert.True(t, resp.AtaExistente)
	require.NotNil(t, resp.AtaID)
	assert.Equal(t, ata.AtaID, *resp.AtaID)

	// ata de outra ala no mesmo domingo não conta
	outraAla := uuid.New()
	resp, err = ProximaReuniaoSacramental(db, outraAla, terca, false)
	require.NoError(t, err)
	assert.False(t, resp.AtaExistente)
}
