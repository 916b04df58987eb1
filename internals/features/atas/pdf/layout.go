// file: internals/features/atas/pdf/layout.go
package pdf

import (
	"bytes"

	"github.com/go-pdf/fpdf"
)

// Motor de layout dos PDFs de ata: um cursor vertical único por página.
// Cada bloco é desenhado na posição atual do cursor e o avança pela sua
// altura real. Parágrafos são quebrados em linhas antes de medir, e
// listas variáveis empurram o que vem depois. Quando o bloco não cabe
// na área útil, abre-se página nova.

const (
	larguraPagina = 595.28 // A4 em pontos
	alturaPagina  = 841.89

	margemEsquerda = 50.0
	margemDireita  = 50.0
	margemTopo     = 50.0
	margemBase     = 60.0

	larguraUtil = larguraPagina - margemEsquerda - margemDireita

	alturaLinha    = 20.0
	alturaTitulo   = 30.0
	alturaCelula   = 24.0
	alturaDivisor  = 15.0
	entreLinhas    = 14.0
	espacoParagrafo = 8.0

	naoInformado = "Não informado"
)

// Cores baseadas no site da Igreja.
var (
	azulIgreja = [3]int{0, 66, 114}
	azulClaro  = [3]int{230, 242, 255}
	cinzaLinha = [3]int{226, 232, 240}
	preto      = [3]int{0, 0, 0}
	branco     = [3]int{255, 255, 255}
)

// bloco registra onde cada elemento foi desenhado; o rastro permite
// verificar que nenhum par de blocos disputa a mesma posição vertical.
type bloco struct {
	Nome   string
	Pagina int
	Y      float64
}

type documento struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	y      float64
	blocos []bloco
}

func novoDocumento() *documento {
	p := fpdf.New("P", "pt", "A4", "")
	p.SetAutoPageBreak(false, 0)
	d := &documento{
		pdf: p,
		tr:  p.UnicodeTranslatorFromDescriptor(""),
	}
	d.novaPagina()
	return d
}

func (d *documento) novaPagina() {
	d.pdf.AddPage()
	d.y = margemTopo
}

// garantirEspaco abre página nova quando o bloco não cabe na área útil.
func (d *documento) garantirEspaco(altura float64) {
	if d.y+altura > alturaPagina-margemBase {
		d.novaPagina()
	}
}

// registrar anota a posição do bloco e avança o cursor.
func (d *documento) registrar(nome string, altura float64) {
	d.blocos = append(d.blocos, bloco{Nome: nome, Pagina: d.pdf.PageNo(), Y: d.y})
	d.y += altura
}

func (d *documento) setCor(cor [3]int) {
	d.pdf.SetTextColor(cor[0], cor[1], cor[2])
}

func valorOuPlaceholder(valor string) string {
	if valor == "" {
		return naoInformado
	}
	return valor
}

// tituloPrincipal desenha o cabeçalho centralizado da primeira página.
func (d *documento) tituloPrincipal(nome, texto string) {
	d.garantirEspaco(alturaTitulo)
	d.setCor(azulIgreja)
	d.pdf.SetFont("Helvetica", "B", 16)
	traduzido := d.tr(texto)
	largura := d.pdf.GetStringWidth(traduzido)
	d.pdf.Text(margemEsquerda+(larguraUtil-largura)/2, d.y+16, traduzido)
	d.registrar(nome, alturaTitulo)
}

// tituloSecao desenha um cabeçalho de seção em azul.
func (d *documento) tituloSecao(nome, texto string) {
	d.garantirEspaco(alturaTitulo)
	d.setCor(azulIgreja)
	d.pdf.SetFont("Helvetica", "B", 15)
	d.pdf.Text(margemEsquerda, d.y+15, d.tr(texto))
	d.registrar(nome, alturaTitulo)
}

// subtitulo desenha um rótulo de subseção em negrito preto.
func (d *documento) subtitulo(nome, texto string) {
	d.garantirEspaco(alturaLinha)
	d.setCor(preto)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.Text(margemEsquerda, d.y+12, d.tr(texto))
	d.registrar(nome, alturaLinha)
}

// linhaRotulo desenha "rótulo: valor" numa linha; valor vazio vira
// o placeholder, nunca omite a linha.
func (d *documento) linhaRotulo(nome, rotulo, valor string, deslocamentoValor float64) {
	d.garantirEspaco(alturaLinha)
	d.setCor(preto)
	d.pdf.SetFont("Helvetica", "B", 12)
	d.pdf.Text(margemEsquerda, d.y+12, d.tr(rotulo))
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.Text(margemEsquerda+deslocamentoValor, d.y+12, d.tr(valorOuPlaceholder(valor)))
	d.registrar(nome, alturaLinha)
}

// linhaTexto desenha uma linha simples sem rótulo.
func (d *documento) linhaTexto(nome, texto string, recuo float64) {
	d.garantirEspaco(alturaLinha)
	d.setCor(preto)
	d.pdf.SetFont("Helvetica", "", 12)
	d.pdf.Text(margemEsquerda+recuo, d.y+12, d.tr(texto))
	d.registrar(nome, alturaLinha)
}

// paragrafo quebra o texto na largura útil antes de medir a altura;
// a extensão vertical só é conhecida depois da quebra.
func (d *documento) paragrafo(nome, texto string, tamanhoFonte float64) {
	d.setCor(preto)
	d.pdf.SetFont("Helvetica", "", tamanhoFonte)
	linhas := d.pdf.SplitText(d.tr(texto), larguraUtil)
	altura := float64(len(linhas))*entreLinhas + espacoParagrafo
	d.garantirEspaco(altura)
	yLinha := d.y + entreLinhas
	for _, linha := range linhas {
		d.pdf.Text(margemEsquerda, yLinha-3, linha)
		yLinha += entreLinhas
	}
	d.registrar(nome, altura)
}

// divisoria desenha a linha horizontal cinza entre seções.
func (d *documento) divisoria(nome string) {
	d.garantirEspaco(alturaDivisor)
	d.pdf.SetDrawColor(cinzaLinha[0], cinzaLinha[1], cinzaLinha[2])
	d.pdf.SetLineWidth(3)
	yLinha := d.y + alturaDivisor/2
	d.pdf.Line(margemEsquerda, yLinha, larguraPagina-margemDireita, yLinha)
	d.registrar(nome, alturaDivisor)
}

// tabela desenha uma grade de estilo fixo: células de cabeçalho com fundo
// azul escuro e texto branco centralizado em negrito; células de valor com
// fundo azul claro e texto preto. larguras não pode passar da largura útil.
func (d *documento) tabela(nome string, linhas [][]string, larguras []float64, linhaCabecalho bool) {
	altura := float64(len(linhas)) * alturaCelula
	d.garantirEspaco(altura)

	yTopo := d.y
	for i, linha := range linhas {
		x := margemEsquerda
		cabecalho := linhaCabecalho && i == 0
		for j, celula := range linha {
			if cabecalho {
				d.pdf.SetFillColor(azulIgreja[0], azulIgreja[1], azulIgreja[2])
				d.pdf.SetTextColor(branco[0], branco[1], branco[2])
				d.pdf.SetFont("Helvetica", "B", 10)
			} else {
				d.pdf.SetFillColor(azulClaro[0], azulClaro[1], azulClaro[2])
				d.setCor(preto)
				d.pdf.SetFont("Helvetica", "", 10)
			}
			alinhamento := "L"
			if cabecalho {
				alinhamento = "C"
			}
			d.pdf.SetXY(x, yTopo+float64(i)*alturaCelula)
			d.pdf.CellFormat(larguras[j], alturaCelula, d.tr(celula), "1", 0, alinhamento+"M", true, 0, "")
			x += larguras[j]
		}
	}
	d.registrar(nome, altura)
}

// bytes fecha o documento e devolve o PDF gerado.
func (d *documento) bytes() ([]byte, error) {
	var buf bytes.Buffer
	if err := d.pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
