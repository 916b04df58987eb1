// file: internals/features/atas/pdf/simples.go
package pdf

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/thales-vaz-sousa/sistema-atas/internals/constants"
	"github.com/thales-vaz-sousa/sistema-atas/internals/features/atas/dto"
)

// RenderizarSimples gera o registro compacto da ata, uma linha por campo.
// Serve aos dois tipos de reunião; é o documento de arquivo, sem roteiro.
func RenderizarSimples(ata *dto.AtaResponse) ([]byte, error) {
	if ata == nil {
		return nil, fiber.NewError(fiber.StatusUnprocessableEntity, "Ata sem dados para exportar.")
	}
	d := montarSimples(ata)
	return d.bytes()
}

func montarSimples(ata *dto.AtaResponse) *documento {
	d := novoDocumento()

	titulo := "Ata de Reunião Sacramental - " + ata.AtaDataFormatada
	if ata.AtaTipo == constants.TipoBatismo {
		titulo = "Ata de Serviço Batismal - " + ata.AtaDataFormatada
	}
	d.tituloPrincipal("titulo", titulo)
	d.divisoria("div_titulo")

	switch {
	case ata.AtaTipo == constants.TipoSacramental && ata.Sacramental != nil:
		montarSimplesSacramental(d, ata.Sacramental)
	case ata.AtaTipo == constants.TipoBatismo && ata.Batismo != nil:
		montarSimplesBatismo(d, ata.Batismo)
	default:
		d.linhaTexto("sem_detalhes", "Esta ata ainda não possui detalhes preenchidos.", 0)
	}
	return d
}

func montarSimplesSacramental(d *documento, det *dto.SacramentalDetalhes) {
	d.linhaRotulo("presidido", "Presidida por:", det.Presidido, 180)
	d.linhaRotulo("dirigido", "Dirigida por:", det.Dirigido, 180)
	d.linhaRotulo("pianista", "Pianista:", det.Pianista, 180)
	d.linhaRotulo("regente", "Regente de música:", det.RegenteMusica, 180)
	d.linhaRotulo("tema", "Tema:", det.Tema, 180)

	d.divisoria("div_hinos")
	d.linhaRotulo("hino_abertura", "Hino de abertura:", det.HinoAbertura, 180)
	d.linhaRotulo("oracao_abertura", "Primeira oração:", det.OracaoAbertura, 180)
	d.linhaRotulo("hino_sacramental", "Hino sacramental:", det.HinoSacramental, 180)
	if det.HinoIntermediario != "" {
		d.linhaRotulo("hino_intermediario", "Hino intermediário:", det.HinoIntermediario, 180)
	}
	d.linhaRotulo("hino_encerramento", "Hino de encerramento:", det.HinoEncerramento, 180)
	d.linhaRotulo("oracao_encerramento", "Última oração:", det.OracaoEncerramento, 180)

	d.divisoria("div_discursantes")
	d.subtitulo("discursantes_rotulo", "Discursantes")
	if len(det.Discursantes) == 0 {
		d.linhaTexto("discursante_nenhum", naoInformado, 15)
	}
	for i, nome := range det.Discursantes {
		d.linhaTexto(fmt.Sprintf("discursante_%d", i+1), fmt.Sprintf("%dº - %s", i+1, nome), 15)
	}

	d.divisoria("div_anuncios")
	d.subtitulo("anuncios_rotulo", "Anúncios")
	if len(det.Anuncios) == 0 {
		d.linhaTexto("anuncio_nenhum", naoInformado, 15)
	}
	for i, anuncio := range det.Anuncios {
		d.paragrafo(fmt.Sprintf("anuncio_%d", i+1), "• "+anuncio, 11)
	}
}

func montarSimplesBatismo(d *documento, det *dto.BatismoDetalhes) {
	d.linhaRotulo("presidido", "Presidido por:", det.Presidido, 180)
	d.linhaRotulo("dirigido", "Dirigido por:", det.Dirigido, 180)
	d.linhaRotulo("dedicado", "Dedicado por:", det.Dedicado, 180)
	d.linhaRotulo("testemunha1", "1ª testemunha:", det.Testemunha1, 180)
	d.linhaRotulo("testemunha2", "2ª testemunha:", det.Testemunha2, 180)

	d.divisoria("div_batizados")
	d.subtitulo("batizados_rotulo", "Batizados")
	if len(det.Batizados) == 0 {
		d.linhaTexto("batizado_nenhum", naoInformado, 15)
	}
	for i, nome := range det.Batizados {
		d.linhaTexto(fmt.Sprintf("batizado_%d", i+1), fmt.Sprintf("%d - %s", i+1, nome), 15)
	}
}
