package usecase

import (
	"time"

	"github.com/jhoicas/Ventas-api/internal/application/activity"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
)

// SettingsUseCase ajustes por comercio (fila única, upsert).
type SettingsUseCase struct {
	repo     repository.SettingsRepository
	activity *activity.Recorder
}

// NewSettingsUseCase construye el caso de uso.
func NewSettingsUseCase(repo repository.SettingsRepository, recorder *activity.Recorder) *SettingsUseCase {
	return &SettingsUseCase{repo: repo, activity: recorder}
}

// Get devuelve los ajustes del comercio; si aún no existen, los valores por defecto.
func (uc *SettingsUseCase) Get(companyID string) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get(companyID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings(companyID)
	}
	return toSettingsResponse(settings), nil
}

// Update aplica cambios parciales y hace upsert.
func (uc *SettingsUseCase) Update(companyID, userID string, in dto.UpdateSettingsRequest) (*dto.SettingsResponse, error) {
	settings, err := uc.repo.Get(companyID)
	if err != nil {
		return nil, err
	}
	if settings == nil {
		settings = entity.DefaultSettings(companyID)
	}
	if in.Currency != nil {
		settings.Currency = *in.Currency
	}
	if in.TaxRate != nil {
		if !validTaxRate(*in.TaxRate) {
			return nil, domain.ErrInvalidInput
		}
		settings.TaxRate = *in.TaxRate
	}
	if in.ReceiptFooter != nil {
		settings.ReceiptFooter = *in.ReceiptFooter
	}
	if in.LowStockAlerts != nil {
		settings.LowStockAlerts = *in.LowStockAlerts
	}
	if in.AlertEmail != nil {
		settings.AlertEmail = *in.AlertEmail
	}
	// Alertas activas exigen destinatario
	if settings.LowStockAlerts && settings.AlertEmail == "" {
		return nil, domain.ErrInvalidInput
	}
	settings.UpdatedAt = time.Now()
	if err := uc.repo.Upsert(settings); err != nil {
		return nil, err
	}
	uc.activity.Record(companyID, userID, entity.ActivityEntityAjustes, companyID,
		entity.ActivityActionActualizar, "ajustes del comercio")
	return toSettingsResponse(settings), nil
}

func toSettingsResponse(s *entity.Settings) *dto.SettingsResponse {
	return &dto.SettingsResponse{
		CompanyID:      s.CompanyID,
		Currency:       s.Currency,
		TaxRate:        s.TaxRate,
		ReceiptFooter:  s.ReceiptFooter,
		LowStockAlerts: s.LowStockAlerts,
		AlertEmail:     s.AlertEmail,
		UpdatedAt:      s.UpdatedAt,
	}
}
