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
	appactivity "github.com/jhoicas/Ventas-api/internal/application/activity"
	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/inventory"
	"github.com/jhoicas/Ventas-api/internal/application/invitation"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/application/sales"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/cache"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/mail"
	infrapdf "github.com/jhoicas/Ventas-api/internal/infrastructure/pdf"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/postgres"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/scheduler"
	"github.com/jhoicas/Ventas-api/internal/infrastructure/xmlexport"
	httpRouter "github.com/jhoicas/Ventas-api/internal/interfaces/http"
	"github.com/jhoicas/Ventas-api/pkg/config"
	"github.com/jhoicas/Ventas-api/pkg/logger"
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

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	companyRepo := postgres.NewCompanyRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	locationRepo := postgres.NewLocationRepository(pool)
	productRepo := postgres.NewProductRepository(pool)
	stockRepo := postgres.NewStockRepository(pool)
	saleRepo := postgres.NewSaleRepository(pool)
	invitationRepo := postgres.NewInvitationRepository(pool)
	activityRepo := postgres.NewActivityLogRepository(pool)
	settingsRepo := postgres.NewSettingsRepository(pool)
	reportRepo := postgres.NewReportRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	recorder := appactivity.NewRecorder(activityRepo, log)

	// Caché de reportes: si no hay Redis configurado se consulta directo a la DB.
	var reportCache report.Cache
	var saleInvalidator sales.ReportInvalidator
	var redisCache *cache.RedisReportCache
	if cfg.Redis.Enabled() {
		redisCache, err = cache.NewRedisReportCache(ctx, cfg.Redis)
		if err != nil {
			log.Fatal().Err(err).Msg("conexión a Redis")
		}
		reportCache = redisCache
		saleInvalidator = redisCache
		log.Info().Str("addr", cfg.Redis.Addr).Msg("caché de reportes habilitado")
	}

	// Correo saliente: sin SMTP las invitaciones loguean el enlace y no hay
	// resumen diario de stock bajo.
	var invitationMailer invitation.Mailer
	var gomailSender *mail.GomailSender
	if cfg.SMTP.Enabled() {
		gomailSender = mail.NewGomailSender(cfg.SMTP)
		invitationMailer = gomailSender
	}

	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	xmlExporter := xmlexport.NewEtreeExporter()

	authUC := auth.NewAuthUseCase(userRepo, txRunner, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	productUC := usecase.NewProductUseCase(productRepo, recorder)
	locationUC := usecase.NewLocationUseCase(locationRepo, recorder)
	userUC := usecase.NewUserUseCase(userRepo)
	settingsUC := usecase.NewSettingsUseCase(settingsRepo, recorder)
	inventoryUC := inventory.NewInventoryUseCase(txRunner, stockRepo, productRepo, locationRepo, recorder)
	recordSaleUC := sales.NewRecordSaleUseCase(txRunner, productRepo, locationRepo, recorder, saleInvalidator, log)
	voidSaleUC := sales.NewVoidSaleUseCase(txRunner, saleRepo, recorder, saleInvalidator, log)
	saleQueryUC := sales.NewQueryUseCase(saleRepo)
	receiptPDFUC := sales.NewReceiptPDFUseCase(saleRepo, companyRepo, locationRepo, settingsRepo, pdfGenerator)
	invitationUC := invitation.NewUseCase(invitationRepo, userRepo, companyRepo, invitationMailer, recorder, cfg.App.BaseURL, log)
	activityUC := appactivity.NewQueryUseCase(activityRepo)
	reportUC := report.NewUseCase(reportRepo, companyRepo, reportCache, pdfGenerator, xmlExporter, log)

	// Job diario de alertas de stock bajo. Requiere SMTP configurado.
	var lowStockScheduler *scheduler.LowStockScheduler
	if cfg.Alerts.Enabled && cfg.SMTP.Enabled() {
		lowStockScheduler = scheduler.NewLowStockScheduler(settingsRepo, companyRepo, reportUC, gomailSender, log)
		if err := lowStockScheduler.Start(cfg.Alerts.CronSpec); err != nil {
			log.Fatal().Err(err).Msg("arranque del scheduler de alertas")
		}
	}

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
		Title:    "Ventas POS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:       authUC,
		ProductUC:    productUC,
		LocationUC:   locationUC,
		UserUC:       userUC,
		SettingsUC:   settingsUC,
		InventoryUC:  inventoryUC,
		RecordSale:   recordSaleUC,
		VoidSale:     voidSaleUC,
		SaleQuery:    saleQueryUC,
		ReceiptPDF:   receiptPDFUC,
		InvitationUC: invitationUC,
		ActivityUC:   activityUC,
		ReportUC:     reportUC,
		JWTSecret:    cfg.JWT.Secret,
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
	if lowStockScheduler != nil {
		lowStockScheduler.Stop()
	}
	if redisCache != nil {
		if err := redisCache.Close(); err != nil {
			log.Error().Err(err).Msg("cierre del caché de reportes")
		}
	}

	log.Info().Msg("aplicación detenida")
}
