package dto

// RegistrarMovimentacaoRequest entrada para préstamo o devolución.
// Para EMPRESTIMO se inserta un registro nuevo; para DEVOLUCAO se cierra el
// préstamo activo del tombo (DataDevolucao vacía = fecha de hoy).
type RegistrarMovimentacaoRequest struct {
	Tombo          string `json:"tombo" validate:"required"`
	Pessoa         string `json:"pessoa" validate:"required"`
	Contato        string `json:"contato"`
	Pastoral       string `json:"pastoral"`
	Tipo           string `json:"tipo" validate:"required,oneof=EMPRESTIMO DEVOLUCAO"`
	DataEmprestimo string `json:"data_emprestimo"`
	DataDevolucao  string `json:"data_devolucao"`
}

// MovimentacaoResponse salida de una movimentação.
type MovimentacaoResponse struct {
	ID             string `json:"id"`
	Tombo          string `json:"tombo"`
	NomeItem       string `json:"nome_item"`
	Pessoa         string `json:"pessoa"`
	Contato        string `json:"contato"`
	Pastoral       string `json:"pastoral"`
	Tipo           string `json:"tipo"`
	DataEmprestimo string `json:"data_emprestimo"`
	DataDevolucao  string `json:"data_devolucao,omitempty"`
}
