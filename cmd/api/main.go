package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/patrimonio-api/internal/application/auth"
	"github.com/tu-usuario/patrimonio-api/internal/application/usecase"
	infrapdf "github.com/tu-usuario/patrimonio-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/patrimonio-api/internal/infrastructure/sqlite"
	httpRouter "github.com/tu-usuario/patrimonio-api/internal/interfaces/http"
	"github.com/tu-usuario/patrimonio-api/pkg/config"
	"github.com/tu-usuario/patrimonio-api/pkg/logger"
	"github.com/tu-usuario/patrimonio-api/pkg/senha"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	if err := os.MkdirAll(cfg.Store.Dir, 0o755); err != nil {
		log.Fatal().Err(err).Str("dir", cfg.Store.Dir).Msg("crear directorio del almacén")
	}

	ctx := context.Background()
	store, err := sqlite.OpenArquivoStore(cfg.Store.ArquivoDurable(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("abrir byte store durable")
	}
	defer store.Close()

	hasher := senha.NewHasher(log)
	engine, err := sqlite.NewEngine(ctx, store, hasher, log)
	if err != nil {
		log.Fatal().Err(err).Msg("inicializar motor de persistencia")
	}
	defer engine.Close()

	usuarioRepo := sqlite.NewUsuarioRepository(engine)
	bemRepo := sqlite.NewBemRepository(engine)
	movRepo := sqlite.NewMovimentacaoRepository(engine)

	authUC := auth.NewAuthUseCase(usuarioRepo, engine, hasher, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, log)
	usuarioUC := usecase.NewUsuarioUseCase(usuarioRepo, engine, hasher)
	bemUC := usecase.NewBemUseCase(bemRepo, movRepo, engine)
	movUC := usecase.NewMovimentacaoUseCase(movRepo, bemRepo, engine)
	relatorioUC := usecase.NewRelatorioUseCase(bemRepo, movRepo, infrapdf.NewMarotoRelatorioGenerator())

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Patrimônio API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		UsuarioUC:      usuarioUC,
		BemUC:          bemUC,
		MovimentacaoUC: movUC,
		RelatorioUC:    relatorioUC,
		JWTSecret:      cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}

	log.Info().Msg("aplicación detenida")
}
