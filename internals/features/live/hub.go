// file: internals/features/live/hub.go
package live

import (
	"sort"
	"sync"
)

// Hub de edição ao vivo: cada ata aberta é uma sala, e quem está com ela
// aberta recebe as alterações de campo dos demais. O relay não persiste
// nada; gravar continua sendo papel do endpoint de salvar.

// Cliente é a conexão de um participante. A interface existe para o hub
// ser testável sem abrir websockets de verdade.
type Cliente interface {
	EnviarJSON(v interface{}) error
}

type sala struct {
	clientes map[Cliente]string // conexão -> nome de usuário
}

type Hub struct {
	mu    sync.Mutex
	salas map[string]*sala
}

func NovoHub() *Hub {
	return &Hub{salas: make(map[string]*sala)}
}

// Entrar registra o participante na sala da ata e avisa todo mundo
// (inclusive ele) da lista atualizada de participantes.
func (h *Hub) Entrar(ataID string, cliente Cliente, usuario string) {
	h.mu.Lock()
	s, ok := h.salas[ataID]
	if !ok {
		s = &sala{clientes: make(map[Cliente]string)}
		h.salas[ataID] = s
	}
	s.clientes[cliente] = usuario
	destinos, usuarios := h.fotografarSala(s)
	h.mu.Unlock()

	notificarParticipantes(destinos, usuarios)
}

// Sair remove o participante; a sala esvaziada é descartada.
// Quem ficou recebe a lista atualizada.
func (h *Hub) Sair(ataID string, cliente Cliente) {
	h.mu.Lock()
	s, ok := h.salas[ataID]
	if !ok {
		h.mu.Unlock()
		return
	}
	delete(s.clientes, cliente)
	if len(s.clientes) == 0 {
		delete(h.salas, ataID)
		h.mu.Unlock()
		return
	}
	destinos, usuarios := h.fotografarSala(s)
	h.mu.Unlock()

	notificarParticipantes(destinos, usuarios)
}

// Transmitir repassa a mensagem aos demais participantes da sala.
// O remetente não recebe o próprio eco.
func (h *Hub) Transmitir(ataID string, remetente Cliente, mensagem interface{}) {
	h.mu.Lock()
	var destinos []Cliente
	if s, ok := h.salas[ataID]; ok {
		for cliente := range s.clientes {
			if cliente != remetente {
				destinos = append(destinos, cliente)
			}
		}
	}
	h.mu.Unlock()

	for _, destino := range destinos {
		// conexão com erro será limpa quando o laço de leitura dela cair
		_ = destino.EnviarJSON(mensagem)
	}
}

// Participantes lista os nomes conectados à sala, em ordem estável.
func (h *Hub) Participantes(ataID string) []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	s, ok := h.salas[ataID]
	if !ok {
		return []string{}
	}
	usuarios := make([]string, 0, len(s.clientes))
	for _, usuario := range s.clientes {
		usuarios = append(usuarios, usuario)
	}
	sort.Strings(usuarios)
	return usuarios
}

// Salas conta as salas ativas.
func (h *Hub) Salas() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.salas)
}

// fotografarSala copia destinos e nomes sob o lock, para notificar fora dele.
func (h *Hub) fotografarSala(s *sala) ([]Cliente, []string) {
	destinos := make([]Cliente, 0, len(s.clientes))
	usuarios := make([]string, 0, len(s.clientes))
	for cliente, usuario := range s.clientes {
		destinos = append(destinos, cliente)
		usuarios = append(usuarios, usuario)
	}
	sort.Strings(usuarios)
	return destinos, usuarios
}

func notificarParticipantes(destinos []Cliente, usuarios []string) {
	mensagem := map[string]interface{}{
		"type":     "atualizar_usuarios",
		"usuarios": usuarios,
	}
	for _, destino := range destinos {
		_ = destino.EnviarJSON(mensagem)
	}
}
