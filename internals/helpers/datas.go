package helper

import (
	"fmt"
	"time"
)

// Nomes dos meses em português (índice 1 = Janeiro).
var MesesPtBR = [13]string{
	"", "Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
	"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
}

// FormatarDataBR devolve a data no formato dd/mm/aaaa.
func FormatarDataBR(t time.Time) string {
	return t.Format("02/01/2006")
}

// NomeMesAno devolve "Março 2024" para exibição no seletor de meses.
func NomeMesAno(t time.Time) string {
	return fmt.Sprintf("%s %d", MesesPtBR[int(t.Month())], t.Year())
}

// MesOption alimenta o seletor de meses da tela inicial.
type MesOption struct {
	Value string `json:"value"`
	Nome  string `json:"nome"`
}

// ListarMesesDoAno gera as doze opções de mês de um ano.
func ListarMesesDoAno(ano int) []MesOption {
	meses := make([]MesOption, 0, 12)
	for m := 1; m <= 12; m++ {
		meses = append(meses, MesOption{
			Value: fmt.Sprintf("%04d-%02d", ano, m),
			Nome:  fmt.Sprintf("%s %d", MesesPtBR[m], ano),
		})
	}
	return meses
}

// ProximoDomingo calcula a data da próxima reunião dominical.
// Se hoje já for domingo: avancarSeDomingo=false retorna o próprio dia,
// avancarSeDomingo=true pula para o domingo seguinte.
func ProximoDomingo(hoje time.Time, avancarSeDomingo bool) time.Time {
	dias := (7 - int(hoje.Weekday())) % 7
	if dias == 0 && avancarSeDomingo {
		dias = 7
	}
	return hoje.AddDate(0, 0, dias)
}

// PrimeiroDomingoDoMes devolve o menor dia do mês que cai num domingo.
func PrimeiroDomingoDoMes(ano int, mes time.Month) int {
	for d := 1; d <= 7; d++ {
		if time.Date(ano, mes, d, 0, 0, 0, 0, time.UTC).Weekday() == time.Sunday {
			return d
		}
	}
	return 1 // inalcançável: toda semana tem um domingo
}

// EhPrimeiroDomingo indica se a data é o primeiro domingo do seu mês.
// Usado para marcar reuniões de testemunho no formulário sacramental.
func EhPrimeiroDomingo(data time.Time) bool {
	return data.Day() == PrimeiroDomingoDoMes(data.Year(), data.Month())
}
