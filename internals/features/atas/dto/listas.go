package dto

import (
	"encoding/json"
	"strings"

	"gorm.io/datatypes"
)

// Codec dos campos de lista persistidos como colunas JSON.
// A decodificação nunca falha: JSON quebrado ou com formato errado vira
// lista vazia, para um campo corrompido não derrubar a leitura da ata.

// NormalizarLista remove entradas vazias ou só com espaços,
// preservando a ordem das demais.
func NormalizarLista(entradas []string) []string {
	resultado := make([]string, 0, len(entradas))
	for _, e := range entradas {
		if strings.TrimSpace(e) == "" {
			continue
		}
		resultado = append(resultado, e)
	}
	return resultado
}

// CodificarLista serializa a lista normalizada como array JSON.
// Lista vazia vira "[]", nunca null.
func CodificarLista(entradas []string) datatypes.JSON {
	normalizada := NormalizarLista(entradas)
	raw, err := json.Marshal(normalizada)
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

// DecodificarLista interpreta a coluna JSON como lista de strings.
func DecodificarLista(raw datatypes.JSON) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var lista []string
	if err := json.Unmarshal(raw, &lista); err != nil {
		return []string{}
	}
	if lista == nil {
		return []string{}
	}
	return lista
}

// CodificarPar serializa o par [abertura, encerramento].
// Sempre grava as duas posições, mesmo vazias.
func CodificarPar(abertura, encerramento string) datatypes.JSON {
	raw, err := json.Marshal([]string{abertura, encerramento})
	if err != nil {
		return datatypes.JSON("[]")
	}
	return datatypes.JSON(raw)
}

// DecodificarPar lê o par posicional: índice 0 = abertura, 1 = encerramento.
// Posição ausente vira string vazia.
func DecodificarPar(raw datatypes.JSON) (abertura, encerramento string) {
	lista := DecodificarLista(raw)
	if len(lista) > 0 {
		abertura = lista[0]
	}
	if len(lista) > 1 {
		encerramento = lista[1]
	}
	return abertura, encerramento
}
