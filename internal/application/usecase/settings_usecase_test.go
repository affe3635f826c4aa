package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/application/usecase"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
)

// fakeSettingsRepo fila única por comercio.
type fakeSettingsRepo struct {
	byCompany map[string]*entity.Settings
}

func newFakeSettingsRepo() *fakeSettingsRepo {
	return &fakeSettingsRepo{byCompany: map[string]*entity.Settings{}}
}

func (f *fakeSettingsRepo) Get(companyID string) (*entity.Settings, error) {
	if s, ok := f.byCompany[companyID]; ok {
		copia := *s
		return &copia, nil
	}
	return nil, nil
}

func (f *fakeSettingsRepo) Upsert(s *entity.Settings) error {
	copia := *s
	f.byCompany[s.CompanyID] = &copia
	return nil
}

func (f *fakeSettingsRepo) ListAlertEnabled() ([]*entity.Settings, error) {
	var out []*entity.Settings
	for _, s := range f.byCompany {
		if s.LowStockAlerts && s.AlertEmail != "" {
			out = append(out, s)
		}
	}
	return out, nil
}

func TestSettingsGet_SinAjustesDevuelveDefaults(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo(), nil)

	resp, err := uc.Get(prodCompanyID)
	require.NoError(t, err)
	assert.Equal(t, "COP", resp.Currency)
	assert.True(t, resp.TaxRate.Equal(decimal.NewFromInt(19)))
	assert.False(t, resp.LowStockAlerts)
}

func TestSettingsUpdate_ParcialYUpsert(t *testing.T) {
	repo := newFakeSettingsRepo()
	uc := usecase.NewSettingsUseCase(repo, nil)

	footer := "Vuelva pronto"
	resp, err := uc.Update(prodCompanyID, prodUserID, dto.UpdateSettingsRequest{
		ReceiptFooter: &footer,
	})
	require.NoError(t, err)
	assert.Equal(t, footer, resp.ReceiptFooter)
	assert.Equal(t, "COP", resp.Currency, "los campos no enviados conservan el default")
	require.NotNil(t, repo.byCompany[prodCompanyID], "el update hace upsert de la fila")
}

func TestSettingsUpdate_AlertasSinCorreo(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo(), nil)

	activar := true
	_, err := uc.Update(prodCompanyID, prodUserID, dto.UpdateSettingsRequest{
		LowStockAlerts: &activar,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput,
		"activar alertas exige un correo destinatario")
}

func TestSettingsUpdate_AlertasConCorreo(t *testing.T) {
	repo := newFakeSettingsRepo()
	uc := usecase.NewSettingsUseCase(repo, nil)

	activar := true
	correo := "alertas@ejemplo.com"
	resp, err := uc.Update(prodCompanyID, prodUserID, dto.UpdateSettingsRequest{
		LowStockAlerts: &activar,
		AlertEmail:     &correo,
	})
	require.NoError(t, err)
	assert.True(t, resp.LowStockAlerts)

	list, err := repo.ListAlertEnabled()
	require.NoError(t, err)
	assert.Len(t, list, 1, "el comercio aparece en la lista del job de alertas")
}

func TestSettingsUpdate_IVAInvalido(t *testing.T) {
	uc := usecase.NewSettingsUseCase(newFakeSettingsRepo(), nil)

	rate := decimal.NewFromInt(13)
	_, err := uc.Update(prodCompanyID, prodUserID, dto.UpdateSettingsRequest{TaxRate: &rate})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
