package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestCodificarDecodificarRoundTrip(t *testing.T) {
	casos := []struct {
		nome     string
		entrada  []string
		esperado []string
	}{
		{"lista simples", []string{"Ana", "Bruno"}, []string{"Ana", "Bruno"}},
		{"remove vazios", []string{"Ana", "", "  ", "Bruno"}, []string{"Ana", "Bruno"}},
		{"preserva ordem", []string{"C", "A", "B"}, []string{"C", "A", "B"}},
		{"lista vazia", []string{}, []string{}},
		{"so vazios", []string{"", "   ", "\t"}, []string{}},
		{"preserva espacos internos", []string{" Ana Clara "}, []string{" Ana Clara "}},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			raw := CodificarLista(caso.entrada)
			assert.Equal(t, caso.esperado, DecodificarLista(raw))
		})
	}
}

func TestCodificarListaVaziaNuncaNull(t *testing.T) {
	assert.Equal(t, "[]", string(CodificarLista(nil)))
	assert.Equal(t, "[]", string(CodificarLista([]string{})))
}

func TestDecodificarListaResiliente(t *testing.T) {
	casos := []struct {
		nome string
		raw  string
	}{
		{"json quebrado", `{"nao`},
		{"texto puro", `isso nao eh json`},
		{"objeto", `{"a": 1}`},
		{"numero", `42`},
		{"lista de numeros", `[1, 2, 3]`},
		{"null", `null`},
		{"vazio", ``},
	}

	for _, caso := range casos {
		t.Run(caso.nome, func(t *testing.T) {
			resultado := DecodificarLista(datatypes.JSON(caso.raw))
			assert.NotNil(t, resultado)
			assert.Empty(t, resultado)
		})
	}
}

func TestDecodificarPar(t *testing.T) {
	abertura, encerramento := DecodificarPar(CodificarPar("Hino 85", "Hino 19"))
	assert.Equal(t, "Hino 85", abertura)
	assert.Equal(t, "Hino 19", encerramento)

	// posição ausente vira string vazia, nunca erro
	abertura, encerramento = DecodificarPar(datatypes.JSON(`["Hino 85"]`))
	assert.Equal(t, "Hino 85", abertura)
	assert.Equal(t, "", encerramento)

	abertura, encerramento = DecodificarPar(datatypes.JSON(`[]`))
	assert.Equal(t, "", abertura)
	assert.Equal(t, "", encerramento)

	abertura, encerramento = DecodificarPar(datatypes.JSON(`nao-json`))
	assert.Equal(t, "", abertura)
	assert.Equal(t, "", encerramento)
}

func TestCodificarParSempreDuasPosicoes(t *testing.T) {
	assert.Equal(t, `["",""]`, string(CodificarPar("", "")))
}
