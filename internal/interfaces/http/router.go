package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/tu-usuario/patrimonio-api/internal/application/auth"
	"github.com/tu-usuario/patrimonio-api/internal/application/usecase"
	"github.com/tu-usuario/patrimonio-api/internal/domain/entity"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	AuthUC         *auth.AuthUseCase
	UsuarioUC      *usecase.UsuarioUseCase
	BemUC          *usecase.BemUseCase
	MovimentacaoUC *usecase.MovimentacaoUseCase
	RelatorioUC    *usecase.RelatorioUseCase
	JWTSecret      string
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Auth (público)
	authGroup := api.Group("/auth")
	authHandler := NewAuthHandler(deps.AuthUC)
	authGroup.Post("/login", authHandler.Login)
	authGroup.Post("/recuperar-senha", authHandler.RecuperarSenha)

	// Rutas protegidas (requieren Bearer Token)
	protected := api.Group("/", AuthMiddleware(deps.JWTSecret))

	// Cambio de senha del usuario autenticado
	protected.Post("/auth/alterar-senha", authHandler.AlterarSenha)

	// Usuarios (solo ADMIN)
	usuarios := protected.Group("/usuarios", RequireRole(entity.PerfilAdmin))
	usuarioHandler := NewUsuarioHandler(deps.UsuarioUC)
	usuarios.Get("/", usuarioHandler.List)
	usuarios.Post("/", usuarioHandler.Create)
	usuarios.Delete("/:id", usuarioHandler.Delete)

	// Bens patrimoniais (protegido)
	bens := protected.Group("/bens")
	bemHandler := NewBemHandler(deps.BemUC)
	bens.Get("/", bemHandler.List)
	bens.Post("/", bemHandler.Create)
	bens.Put("/:id", bemHandler.Update)
	bens.Delete("/:id", bemHandler.Delete)

	// Movimentações (protegido)
	movs := protected.Group("/movimentacoes")
	movHandler := NewMovimentacaoHandler(deps.MovimentacaoUC)
	movs.Get("/", movHandler.List)
	movs.Post("/", movHandler.Registrar)

	// Relatórios (protegido)
	relatorios := protected.Group("/relatorios")
	relatorioHandler := NewRelatorioHandler(deps.RelatorioUC)
	relatorios.Get("/bens", relatorioHandler.Bens)
	relatorios.Get("/movimentacoes", relatorioHandler.Movimentacoes)
}
