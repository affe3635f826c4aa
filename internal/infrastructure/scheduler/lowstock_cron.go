// Package scheduler corre el job diario de alertas de stock bajo.
package scheduler

import (
	"context"
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/report"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
	"github.com/robfig/cron/v3"
)

// DigestMailer envía el resumen de stock bajo al correo configurado del comercio.
type DigestMailer interface {
	SendLowStockDigest(to, companyName string, items []dto.LowStockItemDTO) error
}

// LowStockScheduler recorre los comercios con alertas activas y les envía el
// resumen diario de productos bajo el umbral. Comercios sin faltantes no
// reciben correo.
type LowStockScheduler struct {
	cron         *cron.Cron
	settingsRepo repository.SettingsRepository
	companyRepo  repository.CompanyRepository
	reports      *report.UseCase
	mailer       DigestMailer
	log          *logger.Logger
}

// NewLowStockScheduler construye el scheduler sin arrancarlo.
func NewLowStockScheduler(
	settingsRepo repository.SettingsRepository,
	companyRepo repository.CompanyRepository,
	reports *report.UseCase,
	mailer DigestMailer,
	log *logger.Logger,
) *LowStockScheduler {
	return &LowStockScheduler{
		cron:         cron.New(),
		settingsRepo: settingsRepo,
		companyRepo:  companyRepo,
		reports:      reports,
		mailer:       mailer,
		log:          log,
	}
}

// Start registra el job con la expresión cron dada y arranca el scheduler.
func (s *LowStockScheduler) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.runOnce); err != nil {
		return err
	}
	s.cron.Start()
	s.log.Info().Str("spec", spec).Msg("scheduler de alertas de stock iniciado")
	return nil
}

// Stop detiene el scheduler y espera los jobs en curso.
func (s *LowStockScheduler) Stop() {
	ctx := s.cron.Stop()
	select {
	case <-ctx.Done():
	case <-time.After(30 * time.Second):
		s.log.Warn().Msg("timeout esperando jobs del scheduler")
	}
}

func (s *LowStockScheduler) runOnce() {
	ctx := context.Background()
	list, err := s.settingsRepo.ListAlertEnabled()
	if err != nil {
		s.log.Error().Err(err).Msg("no se pudieron listar comercios con alertas")
		return
	}
	for _, settings := range list {
		s.sendDigest(ctx, settings.CompanyID, settings.AlertEmail)
	}
}

func (s *LowStockScheduler) sendDigest(ctx context.Context, companyID, email string) {
	lowStock, err := s.reports.LowStock(ctx, companyID)
	if err != nil {
		s.log.Error().Err(err).Str("company_id", companyID).Msg("fallo el reporte de stock bajo")
		return
	}
	if len(lowStock.Items) == 0 {
		return
	}
	companyName := companyID
	if company, err := s.companyRepo.GetByID(companyID); err == nil && company != nil {
		companyName = company.Name
	}
	if err := s.mailer.SendLowStockDigest(email, companyName, lowStock.Items); err != nil {
		s.log.Error().Err(err).Str("company_id", companyID).Msg("no se pudo enviar el resumen de stock bajo")
		return
	}
	s.log.Info().Str("company_id", companyID).Int("items", len(lowStock.Items)).Msg("resumen de stock bajo enviado")
}
