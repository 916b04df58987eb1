package constants

// Tipos de ata reconhecidos pelo sistema.
const (
	TipoSacramental = "sacramental"
	TipoBatismo     = "batismo"
)

func TipoValido(tipo string) bool {
	return tipo == TipoSacramental || tipo == TipoBatismo
}
