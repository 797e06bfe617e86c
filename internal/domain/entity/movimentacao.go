package entity

// Tipos de movimentação.
const (
	TipoEmprestimo = "EMPRESTIMO"
	TipoDevolucao  = "DEVOLUCAO"
)

// Movimentacao registra el ciclo de vida de un préstamo: se inserta con
// DataDevolucao vacía y la devolución actualiza esa misma fila (préstamo y
// devolución son un único registro). Tombo y NomeItem son copias
// desnormalizadas del Bem referenciado; la integridad se valida en los
// usecases, no por foreign key.
type Movimentacao struct {
	ID             string
	Tombo          string
	NomeItem       string
	Pessoa         string
	Contato        string
	Pastoral       string
	Tipo           string // EMPRESTIMO | DEVOLUCAO
	DataEmprestimo string // fecha ISO (YYYY-MM-DD)
	DataDevolucao  string // vacía = préstamo activo
}

// Ativa informa si la movimentação representa un préstamo aún abierto.
func (m Movimentacao) Ativa() bool {
	return m.DataDevolucao == ""
}
