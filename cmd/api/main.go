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

	"github.com/santiyepro/santiye-api/internal/application/auth"
	apphakedis "github.com/santiyepro/santiye-api/internal/application/hakedis"
	"github.com/santiyepro/santiye-api/internal/application/ledger"
	"github.com/santiyepro/santiye-api/internal/application/structure"
	"github.com/santiyepro/santiye-api/internal/application/usecase"
	"github.com/santiyepro/santiye-api/internal/infrastructure/cache"
	infrapdf "github.com/santiyepro/santiye-api/internal/infrastructure/pdf"
	"github.com/santiyepro/santiye-api/internal/infrastructure/postgres"
	httpRouter "github.com/santiyepro/santiye-api/internal/interfaces/http"
	"github.com/santiyepro/santiye-api/pkg/config"
	"github.com/santiyepro/santiye-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("yapılandırma yüklenemedi: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("uygulama başlatılıyor")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("PostgreSQL bağlantısı")
	}
	defer pool.Close()

	// Redis opsiyoneldir; adres verilmemişse rapor önbelleği devre dışı kalır.
	var stokCache usecase.Cache
	if cfg.Redis.Addr != "" {
		redisClient, err := cache.NewRedisClient(ctx, cfg.Redis.Addr)
		if err != nil {
			log.Fatal().Err(err).Msg("Redis bağlantısı")
		}
		defer redisClient.Close()
		stokCache = redisClient
	} else {
		log.Warn().Msg("REDIS_ADDR tanımsız, kritik stok önbelleği kapalı")
		stokCache = cache.NewNopClient()
	}

	userRepo := postgres.NewUserRepository(pool)
	santiyeRepo := postgres.NewSantiyeRepository(pool)
	blokRepo := postgres.NewBlokRepository(pool)
	depoRepo := postgres.NewDepoRepository(pool)
	malzemeRepo := postgres.NewMalzemeRepository(pool)
	hareketRepo := postgres.NewHareketRepository(pool)
	eksiklikRepo := postgres.NewEksiklikRepository(pool)
	personelRepo := postgres.NewPersonelRepository(pool)
	puantajRepo := postgres.NewPuantajRepository(pool)
	sozlesmeRepo := postgres.NewSozlesmeRepository(pool)
	hakedisRepo := postgres.NewHakedisRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	santiyeUC := usecase.NewSantiyeUseCase(santiyeRepo)
	blokUC := usecase.NewBlokUseCase(blokRepo, santiyeRepo)
	depoUC := usecase.NewDepoUseCase(depoRepo, santiyeRepo)
	malzemeUC := usecase.NewMalzemeUseCase(malzemeRepo, depoRepo, stokCache, log)
	eksiklikUC := usecase.NewEksiklikUseCase(eksiklikRepo, blokRepo)
	personelUC := usecase.NewPersonelUseCase(personelRepo, puantajRepo, santiyeRepo)
	sozlesmeUC := usecase.NewSozlesmeUseCase(sozlesmeRepo, santiyeRepo)

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	hakedisUC := apphakedis.NewHakedisUseCase(hakedisRepo, santiyeRepo, pdfGenerator)

	stokDefteriUC := ledger.NewStokDefteriUseCase(txRunner, malzemeRepo, log)
	yapiManager := structure.NewManager(blokRepo, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "Şantiye API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		SantiyeUC:   santiyeUC,
		BlokUC:      blokUC,
		DepoUC:      depoUC,
		MalzemeUC:   malzemeUC,
		EksiklikUC:  eksiklikUC,
		PersonelUC:  personelUC,
		SozlesmeUC:  sozlesmeUC,
		HakedisUC:   hakedisUC,
		StokDefteri: stokDefteriUC,
		Yapi:        yapiManager,
		HareketRepo: hareketRepo,
		JWTSecret:   cfg.JWT.Secret,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("HTTP sunucusu sonlandı")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("kapatma sinyali alındı, sunucu kapatılıyor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("sunucu kapatma")
	}

	log.Info().Msg("uygulama durdu")
}
