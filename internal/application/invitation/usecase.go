package invitation

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jhoicas/Ventas-api/internal/application/activity"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	"github.com/jhoicas/Ventas-api/internal/domain/repository"
	"github.com/jhoicas/Ventas-api/pkg/logger"
	"golang.org/x/crypto/bcrypt"
)

// Vigencia de una invitación.
const invitationTTL = 72 * time.Hour

// UseCase invitaciones de usuarios: crear, aceptar, cancelar y listar.
// Se persiste solo el hash SHA-256 del token; el plano va en el correo.
type UseCase struct {
	invitationRepo repository.InvitationRepository
	userRepo       repository.UserRepository
	companyRepo    repository.CompanyRepository
	mailer         Mailer
	activity       *activity.Recorder
	baseURL        string
	log            *logger.Logger
}

// NewUseCase construye el caso de uso. mailer puede ser nil (SMTP deshabilitado);
// en ese caso el enlace se escribe en el log para entornos de desarrollo.
func NewUseCase(
	invitationRepo repository.InvitationRepository,
	userRepo repository.UserRepository,
	companyRepo repository.CompanyRepository,
	mailer Mailer,
	recorder *activity.Recorder,
	baseURL string,
	log *logger.Logger,
) *UseCase {
	return &UseCase{
		invitationRepo: invitationRepo,
		userRepo:       userRepo,
		companyRepo:    companyRepo,
		mailer:         mailer,
		activity:       recorder,
		baseURL:        baseURL,
		log:            log,
	}
}

// Invite crea una invitación pendiente y envía el correo con el enlace.
func (uc *UseCase) Invite(companyID, invitedBy string, in dto.CreateInvitationRequest) (*dto.InvitationResponse, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !entity.ValidRole(in.Role) {
		return nil, domain.ErrInvalidInput
	}
	existing, err := uc.userRepo.GetByEmailAndCompany(email, companyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}
	now := time.Now()
	pending, err := uc.invitationRepo.GetPendingByEmail(companyID, email)
	if err != nil {
		return nil, err
	}
	if pending != nil {
		if !pending.Expired(now) {
			return nil, domain.ErrConflict
		}
		// Una invitación pendiente ya vencida no bloquea el correo: se cancela
		// y se emite una nueva.
		pending.Status = entity.InvitationCancelada
		pending.UpdatedAt = now
		if err := uc.invitationRepo.Update(pending); err != nil {
			return nil, err
		}
	}

	token, err := newToken()
	if err != nil {
		return nil, fmt.Errorf("generating invitation token: %w", err)
	}
	invitation := &entity.Invitation{
		ID:        uuid.New().String(),
		CompanyID: companyID,
		Email:     email,
		Role:      in.Role,
		TokenHash: hashToken(token),
		Status:    entity.InvitationPendiente,
		InvitedBy: invitedBy,
		ExpiresAt: now.Add(invitationTTL),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.invitationRepo.Create(invitation); err != nil {
		return nil, err
	}

	uc.sendMail(invitation, token)
	uc.activity.Record(companyID, invitedBy, entity.ActivityEntityInvitacion, invitation.ID,
		entity.ActivityActionInvitar, fmt.Sprintf("invitación a %s como %s", email, in.Role))
	return toInvitationResponse(invitation), nil
}

// Accept valida el token, crea el usuario con el rol de la invitación y la
// marca como aceptada.
func (uc *UseCase) Accept(in dto.AcceptInvitationRequest) (*dto.UserResponse, error) {
	if in.Token == "" || in.Name == "" || len(in.Password) < 8 {
		return nil, domain.ErrInvalidInput
	}
	invitation, err := uc.invitationRepo.GetByTokenHash(hashToken(in.Token))
	if err != nil {
		return nil, err
	}
	if invitation == nil {
		return nil, domain.ErrNotFound
	}
	if invitation.Status != entity.InvitationPendiente {
		return nil, domain.ErrInvitationUsed
	}
	now := time.Now()
	if invitation.Expired(now) {
		return nil, domain.ErrInvitationExpired
	}
	existing, err := uc.userRepo.GetByEmailAndCompany(invitation.Email, invitation.CompanyID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailAlreadyExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password: %w", err)
	}
	user := &entity.User{
		ID:           uuid.New().String(),
		CompanyID:    invitation.CompanyID,
		Email:        invitation.Email,
		PasswordHash: string(hash),
		Name:         in.Name,
		Role:         invitation.Role,
		Status:       "active",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.userRepo.Create(user); err != nil {
		return nil, err
	}

	invitation.Status = entity.InvitationAceptada
	invitation.AcceptedBy = user.ID
	invitation.UpdatedAt = now
	if err := uc.invitationRepo.Update(invitation); err != nil {
		return nil, err
	}

	uc.activity.Record(invitation.CompanyID, user.ID, entity.ActivityEntityInvitacion, invitation.ID,
		entity.ActivityActionAceptar, fmt.Sprintf("invitación aceptada por %s", invitation.Email))
	return &dto.UserResponse{
		ID:        user.ID,
		CompanyID: user.CompanyID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      user.Role,
		Status:    user.Status,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}, nil
}

// Cancel cancela una invitación pendiente.
func (uc *UseCase) Cancel(id, companyID, userID string) (*dto.InvitationResponse, error) {
	invitation, err := uc.invitationRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if invitation == nil {
		return nil, nil
	}
	if invitation.CompanyID != companyID {
		return nil, domain.ErrForbidden
	}
	if invitation.Status != entity.InvitationPendiente {
		return nil, domain.ErrConflict
	}
	invitation.Status = entity.InvitationCancelada
	invitation.UpdatedAt = time.Now()
	if err := uc.invitationRepo.Update(invitation); err != nil {
		return nil, err
	}
	uc.activity.Record(companyID, userID, entity.ActivityEntityInvitacion, invitation.ID,
		entity.ActivityActionCancelar, fmt.Sprintf("invitación a %s cancelada", invitation.Email))
	return toInvitationResponse(invitation), nil
}

// List lista invitaciones del comercio, opcionalmente por estado.
func (uc *UseCase) List(companyID, status string, limit, offset int) (*dto.InvitationListResponse, error) {
	list, err := uc.invitationRepo.ListByCompany(companyID, status, limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.InvitationResponse, 0, len(list))
	for _, inv := range list {
		items = append(items, *toInvitationResponse(inv))
	}
	return &dto.InvitationListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func (uc *UseCase) sendMail(invitation *entity.Invitation, token string) {
	acceptURL := fmt.Sprintf("%s/invitaciones/aceptar?token=%s", strings.TrimRight(uc.baseURL, "/"), token)
	if uc.mailer == nil {
		if uc.log != nil {
			uc.log.Info().
				Str("email", invitation.Email).
				Str("accept_url", acceptURL).
				Msg("SMTP deshabilitado, enlace de invitación")
		}
		return
	}
	companyName := ""
	if company, err := uc.companyRepo.GetByID(invitation.CompanyID); err == nil && company != nil {
		companyName = company.Name
	}
	if err := uc.mailer.SendInvitation(invitation.Email, companyName, invitation.Role, acceptURL); err != nil && uc.log != nil {
		uc.log.Warn().Err(err).Str("email", invitation.Email).Msg("no se pudo enviar correo de invitación")
	}
}

func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func toInvitationResponse(i *entity.Invitation) *dto.InvitationResponse {
	if i == nil {
		return nil
	}
	return &dto.InvitationResponse{
		ID:        i.ID,
		CompanyID: i.CompanyID,
		Email:     i.Email,
		Role:      i.Role,
		Status:    i.Status,
		InvitedBy: i.InvitedBy,
		ExpiresAt: i.ExpiresAt,
		CreatedAt: i.CreatedAt,
	}
}
