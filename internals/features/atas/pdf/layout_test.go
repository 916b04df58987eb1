package pdf

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thales-vaz-sousa/sistema-atas/internals/constants"
	"github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/dto"
	templateService "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/service"
	unidadeModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/model"
)

func ataSacramentalTeste(discursantes, anuncios []string) *dto.AtaResponse {
	return &dto.AtaResponse{
		AtaID:            uuid.New(),
		AtaTipo:          constants.TipoSacramental,
		AtaData:          "2024-03-03",
		AtaDataFormatada: "03/03/2024",
		Sacramental: &dto.SacramentalDetalhes{
			Presidido:          "Bispo Carlos Andrade",
			Dirigido:           "Marcos Pereira",
			Pianista:           "Júlia Mendes",
			RegenteMusica:      "Renata Lima",
			Tema:               "Fé em Jesus Cristo",
			Anuncios:           anuncios,
			Discursantes:       discursantes,
			HinoAbertura:       "Hino 85 - Vinde ao Profeta Escutar",
			OracaoAbertura:     "Pedro Souza",
			HinoSacramental:    "Hino 98 - Tão Humilde ao Nascer",
			HinoEncerramento:   "Hino 36 - Que Firme Alicerce",
			OracaoEncerramento: "Laura Castro",
		},
	}
}

func unidadeTeste() *unidadeModel.UnidadeModel {
	return &unidadeModel.UnidadeModel{
		UnidadeAlaID:   uuid.New(),
		UnidadeNome:    "Ala Jardim das Flores",
		UnidadeEstaca:  "Estaca Campinas",
		UnidadeHorario: "09:00",
	}
}

// verificarOrdem garante que os blocos de cada página aparecem em posição
// vertical estritamente crescente e dentro da área útil.
func verificarOrdem(t *testing.T, blocos []bloco) {
	t.Helper()
	ultimoY := map[int]float64{}
	for _, b := range blocos {
		anterior, visto := ultimoY[b.Pagina]
		if visto {
			assert.Greater(t, b.Y, anterior,
				"bloco %q na página %d sobrepõe o anterior (y=%.1f)", b.Nome, b.Pagina, b.Y)
		}
		assert.GreaterOrEqual(t, b.Y, margemTopo, "bloco %q acima da margem", b.Nome)
		assert.LessOrEqual(t, b.Y, alturaPagina-margemBase, "bloco %q abaixo da margem", b.Nome)
		ultimoY[b.Pagina] = b.Y
	}
}

func TestSacramentalBlocosNaoSobrepoem(t *testing.T) {
	alaID := uuid.New()
	tpl := templateService.TemplatePadrao(alaID, constants.TipoSacramental)
	unidade := unidadeTeste()

	casos := []struct {
		nome         string
		discursantes []string
		anuncios     []string
	}{
		{"sem discursantes sem anuncios", nil, nil},
		{"um discursante", []string{"Ana"}, nil},
		{"cinco discursantes", []string{"Ana", "Bruno", "Carla", "Davi", "Elisa"}, nil},
		{"dez anuncios", []string{"Ana", "Bruno"}, anunciosTeste(10)},
		{"tudo cheio", []string{"Ana", "Bruno", "Carla", "Davi", "Elisa"}, anunciosTeste(10)},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			ata := ataSacramentalTeste(caso.discursantes, caso.anuncios)
			d := montarSacramental(ata, unidade, tpl)
			require.NotEmpty(t, d.blocos)
			verificarOrdem(t, d.blocos)
		})
	}
}

func anunciosTeste(n int) []string {
	anuncios := make([]string, 0, n)
	for i := 0; i < n; i++ {
		anuncios = append(anuncios, fmt.Sprintf("Anúncio número %d: atividade da ala no sábado às 15h no salão cultural.", i+1))
	}
	return anuncios
}

func TestSacramentalListasEmpurramBlocosSeguintes(t *testing.T) {
	alaID := uuid.New()
	tpl := templateService.TemplatePadrao(alaID, constants.TipoSacramental)
	unidade := unidadeTeste()

	posicaoBloco := func(d *documento, nome string) bloco {
		for _, b := range d.blocos {
			if b.Nome == nome {
				return b
			}
		}
		t.Fatalf("bloco %q não encontrado", nome)
		return bloco{}
	}

	semAnuncios := montarSacramental(ataSacramentalTeste([]string{"Ana"}, nil), unidade, tpl)
	comAnuncios := montarSacramental(ataSacramentalTeste([]string{"Ana"}, anunciosTeste(6)), unidade, tpl)

	antes := posicaoBloco(semAnuncios, "abertura_hino_oracao")
	depois := posicaoBloco(comAnuncios, "abertura_hino_oracao")

	// a tabela de abertura vem depois dos anúncios; mais anúncios a empurram
	// para baixo na mesma página ou para uma página seguinte
	if depois.Pagina == antes.Pagina {
		assert.Greater(t, depois.Y, antes.Y)
	} else {
		assert.Greater(t, depois.Pagina, antes.Pagina)
	}
}

func TestTempoDiscursantePorPosicao(t *testing.T) {
	esperados := []string{"3-5 min", "5-7 min", "8-10 min", "8-10 min", "8-10 min"}
	for posicao, esperado := range esperados {
		assert.Equal(t, esperado, tempoDiscursante(posicao), "posição %d", posicao)
	}
}

func TestSacramentalRotulosDiscursantes(t *testing.T) {
	alaID := uuid.New()
	tpl := templateService.TemplatePadrao(alaID, constants.TipoSacramental)
	ata := ataSacramentalTeste([]string{"Ana", "Bruno", "Carla"}, nil)

	d := montarSacramental(ata, unidadeTeste(), tpl)

	var tabelaDiscursantes *bloco
	for i := range d.blocos {
		if d.blocos[i].Nome == "discursantes" {
			tabelaDiscursantes = &d.blocos[i]
		}
	}
	require.NotNil(t, tabelaDiscursantes, "tabela de discursantes ausente")
}

func TestGradeTabelaOradores(t *testing.T) {
	// grade fixa 120:350, dentro da área útil da página
	assert.Equal(t, 120.0, larguraColunaOrdemOrador)
	assert.Equal(t, 350.0, larguraColunaNomeOrador)
	assert.LessOrEqual(t, larguraColunaOrdemOrador+larguraColunaNomeOrador, larguraUtil)
}

func TestRenderizarSacramentalGeraDuasPaginas(t *testing.T) {
	alaID := uuid.New()
	tpl := templateService.TemplatePadrao(alaID, constants.TipoSacramental)
	ata := ataSacramentalTeste([]string{"Ana", "Bruno"}, anunciosTeste(2))

	d := montarSacramental(ata, unidadeTeste(), tpl)
	assert.Equal(t, 2, d.pdf.PageNo(), "roteiro completo deve ocupar duas páginas")

	conteudo, err := RenderizarSacramental(ata, unidadeTeste(), tpl)
	require.NoError(t, err)
	assert.NotEmpty(t, conteudo)
	assert.Equal(t, "%PDF", string(conteudo[:4]))
}

func TestRenderizarSacramentalSemDetalhes(t *testing.T) {
	ata := &dto.AtaResponse{AtaTipo: constants.TipoSacramental}
	_, err := RenderizarSacramental(ata, nil, nil)
	assert.Error(t, err)
}

func TestRenderizarSimplesSacramental(t *testing.T) {
	ata := ataSacramentalTeste([]string{"Ana", "Bruno"}, anunciosTeste(3))

	d := montarSimples(ata)
	verificarOrdem(t, d.blocos)

	conteudo, err := RenderizarSimples(ata)
	require.NoError(t, err)
	assert.NotEmpty(t, conteudo)
}

func TestRenderizarSimplesBatismo(t *testing.T) {
	ata := &dto.AtaResponse{
		AtaID:            uuid.New(),
		AtaTipo:          constants.TipoBatismo,
		AtaData:          "2024-04-06",
		AtaDataFormatada: "06/04/2024",
		Batismo: &dto.BatismoDetalhes{
			Presidido:   "Bispo Carlos Andrade",
			Dirigido:    "Marcos Pereira",
			Dedicado:    "João Batista Silva",
			Testemunha1: "Pedro Souza",
			Testemunha2: "Tiago Ramos",
			Batizados:   []string{"Helena Costa", "Miguel Rocha"},
		},
	}

	d := montarSimples(ata)
	verificarOrdem(t, d.blocos)

	conteudo, err := RenderizarSimples(ata)
	require.NoError(t, err)
	assert.NotEmpty(t, conteudo)
}

func TestRenderizarSimplesSemDetalhes(t *testing.T) {
	ata := &dto.AtaResponse{
		AtaID:            uuid.New(),
		AtaTipo:          constants.TipoSacramental,
		AtaDataFormatada: "03/03/2024",
	}
	conteudo, err := RenderizarSimples(ata)
	require.NoError(t, err)
	assert.NotEmpty(t, conteudo)
}
