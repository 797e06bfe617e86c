package domain

import "errors"

// Errores de dominio (sin dependencias externas).
//
// Tres familias: ErrEngineIndisponivel es fatal (solo se resuelve
// reiniciando el proceso); ErrPersistencia indica que el commit al byte
// store falló después de una mutación en memoria ya compensada; el resto
// son conflictos de validación recuperables que se reportan al caller.
var (
	ErrEngineIndisponivel = errors.New("falha ao inicializar banco de dados, tente recarregar")
	ErrPersistencia       = errors.New("falha ao salvar no armazenamento durável")

	ErrCredenciaisInvalidas = errors.New("credenciais inválidas ou usuário não encontrado")
	ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")
	ErrEmailJaExiste        = errors.New("usuário com este login/email já existe")
	ErrContaProtegida       = errors.New("não é possível excluir o usuário administrador padrão")
	ErrEmailRecuperacao     = errors.New("e-mail de recuperação incorreto")

	ErrBemNaoEncontrado = errors.New("item não encontrado")
	ErrTomboDuplicado   = errors.New("já existe um item com este número de tombo")
	ErrBemEmprestado    = errors.New("não é possível excluir um item com empréstimo ativo")

	ErrJaEmprestado       = errors.New("este item já está emprestado")
	ErrSemEmprestimoAtivo = errors.New("não há empréstimo ativo para este item")
)
