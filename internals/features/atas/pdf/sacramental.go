// file: internals/features/atas/pdf/sacramental.go
package pdf

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/dto"
	templateModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/templates/model"
	unidadeModel "github.com/thales-vaz-sousa/sistema-atas/internals/features/unidades/model"
)

// RenderizarSacramental gera o guia completo da reunião sacramental:
// roteiro com os textos do template, dados da unidade e os campos da ata.
func RenderizarSacramental(ata *dto.AtaResponse, unidade *unidadeModel.UnidadeModel, tpl *templateModel.TemplateModel) ([]byte, error) {
	if ata == nil || ata.Sacramental == nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Ata sem detalhes de reunião sacramental.")
	}
	d := montarSacramental(ata, unidade, tpl)
	return d.bytes()
}

// Grade da tabela de oradores, em pontos.
const (
	larguraColunaOrdemOrador = 120.0
	larguraColunaNomeOrador  = 350.0
)

// tempoDiscursante devolve a faixa de tempo sugerida pela posição do
// orador: o primeiro fala menos, do terceiro em diante vale a faixa longa.
func tempoDiscursante(posicao int) string {
	switch posicao {
	case 0:
		return "3-5 min"
	case 1:
		return "5-7 min"
	default:
		return "8-10 min"
	}
}

func montarSacramental(ata *dto.AtaResponse, unidade *unidadeModel.UnidadeModel, tpl *templateModel.TemplateModel) *documento {
	det := ata.Sacramental
	d := novoDocumento()

	d.tituloPrincipal("titulo", "ATA REUNIÃO SACRAMENTAL")

	nomeAla, estaca, horario := "", "", ""
	if unidade != nil {
		nomeAla = unidade.UnidadeNome
		estaca = unidade.UnidadeEstaca
		horario = unidade.UnidadeHorario
	}
	quartoLargura := larguraUtil / 4
	d.tabela("cabecalho", [][]string{
		{"ALA", "ESTACA", "HORÁRIO", "DATA"},
		{valorOuPlaceholder(nomeAla), valorOuPlaceholder(estaca), valorOuPlaceholder(horario), ata.AtaDataFormatada},
	}, []float64{quartoLargura, quartoLargura, quartoLargura, quartoLargura}, true)

	if tpl != nil && tpl.TemplateBoasVindas != "" {
		d.paragrafo("boas_vindas", tpl.TemplateBoasVindas, 11)
	}

	d.linhaRotulo("presidido", "Esta reunião está sendo presidida por:", det.Presidido, 230)
	d.linhaRotulo("dirigido", "E dirigida por:", det.Dirigido, 230)
	d.linhaRotulo("pianista", "Pianista:", det.Pianista, 230)
	d.linhaRotulo("regente", "Regente de música:", det.RegenteMusica, 230)
	d.linhaRotulo("tema", "Tema da reunião:", det.Tema, 230)

	d.divisoria("div_abertura")
	d.tituloSecao("sec_abertura", "ABERTURA (6 min)")
	d.linhaTexto("reconhecemos", "Reconhecemos a presença das autoridades e de todos os visitantes.", 0)
	d.subtitulo("anuncios_rotulo", "Temos como anúncios:")
	if len(det.Anuncios) == 0 {
		d.linhaTexto("anuncio_nenhum", naoInformado, 15)
	}
	for i, anuncio := range det.Anuncios {
		d.paragrafo(fmt.Sprintf("anuncio_%d", i+1), "• "+anuncio, 11)
	}

	metadeLargura := larguraUtil / 2
	d.tabela("abertura_hino_oracao", [][]string{
		{"CANTAREMOS O HINO DE ABERTURA", "A PRIMEIRA ORAÇÃO SERÁ FEITA POR"},
		{valorOuPlaceholder(det.HinoAbertura), valorOuPlaceholder(det.OracaoAbertura)},
	}, []float64{metadeLargura, metadeLargura}, true)

	d.divisoria("div_acoes")
	d.tituloSecao("sec_acoes", "AÇÕES (5 min)")
	d.subtitulo("desobrigacoes_rotulo", "DESOBRIGAÇÕES")
	if tpl != nil {
		d.paragrafo("desobrigacoes", tpl.TemplateDesobrigacoes, 11)
	}
	d.subtitulo("apoios_rotulo", "APOIOS")
	if tpl != nil {
		d.paragrafo("apoios", tpl.TemplateApoios, 11)
	}
	d.subtitulo("confirmacoes_rotulo", "CONFIRMAÇÕES BATISMAIS")
	if tpl != nil {
		d.paragrafo("confirmacoes", tpl.TemplateConfirmacoes, 11)
	}
	d.subtitulo("novos_membros_rotulo", "APOIO A NOVOS MEMBROS")
	if tpl != nil {
		d.paragrafo("novos_membros", tpl.TemplateNovosMembros, 11)
	}
	d.subtitulo("bencao_criancas_rotulo", "BÊNÇÃO DE CRIANÇAS")
	if tpl != nil {
		d.paragrafo("bencao_criancas", tpl.TemplateBencaoCriancas, 11)
	}

	d.divisoria("div_sacramento")
	d.tituloSecao("sec_sacramento", "SACRAMENTO (10 min)")
	if tpl != nil && tpl.TemplateSacramento != "" {
		d.paragrafo("sacramento", tpl.TemplateSacramento, 11)
	}
	d.linhaRotulo("hino_sacramental", "HINO SACRAMENTAL (3 min):", det.HinoSacramental, 200)

	d.divisoria("div_mensagens")
	d.tituloSecao("sec_mensagens", "MENSAGENS (35 min)")
	if tpl != nil && tpl.TemplateMensagens != "" {
		d.paragrafo("mensagens", tpl.TemplateMensagens, 11)
	}
	if len(det.Discursantes) > 0 {
		linhas := make([][]string, 0, len(det.Discursantes))
		for i, nome := range det.Discursantes {
			rotulo := fmt.Sprintf("%dº ORADOR (%s)", i+1, tempoDiscursante(i))
			linhas = append(linhas, []string{rotulo, nome})
		}
		d.tabela("discursantes", linhas, []float64{larguraColunaOrdemOrador, larguraColunaNomeOrador}, false)
	} else {
		d.linhaTexto("discursantes_nenhum", "Nenhum discursante designado.", 0)
	}
	if det.HinoIntermediario != "" {
		d.linhaRotulo("hino_intermediario", "HINO INTERMEDIÁRIO:", det.HinoIntermediario, 200)
	}

	d.divisoria("div_encerramento")
	d.tituloSecao("sec_agradecimentos", "AGRADECIMENTOS FINAIS")
	if tpl != nil && tpl.TemplateAgradecimentos != "" {
		d.paragrafo("agradecimentos", tpl.TemplateAgradecimentos, 11)
	}
	d.tituloSecao("sec_encerramento", "ENCERRAMENTO (2 min)")
	if tpl != nil && tpl.TemplateEncerramento != "" {
		d.paragrafo("encerramento", tpl.TemplateEncerramento, 11)
	}
	d.tabela("encerramento_hino_oracao", [][]string{
		{"CANTAREMOS O HINO DE ENCERRAMENTO", "A ÚLTIMA ORAÇÃO SERÁ FEITA POR"},
		{valorOuPlaceholder(det.HinoEncerramento), valorOuPlaceholder(det.OracaoEncerramento)},
	}, []float64{metadeLargura, metadeLargura}, true)

	return d
}
