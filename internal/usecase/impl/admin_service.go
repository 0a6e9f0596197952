package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/domain/service"
	"dabeli/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type adminService struct {
	adminRepo    repository.AdminRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	AdminRepo    repository.AdminRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	return &adminService{
		adminRepo:    params.AdminRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login never reveals whether the username exists.
func (srv *adminService) Login(ctx context.Context, username, password string) (*usecase.AdminAuthOutput, error) {
	username = strings.TrimSpace(username)

	admin, err := srv.adminRepo.FindByUsername(ctx, username)
	if err != nil {
		srv.log(ctx).Warn("Admin login failed", slog.String("username", username), slog.Any("error", err))

		return nil, errors.Wrap(err, "admin login failed")
	}

	if !srv.hasher.Check(password, admin.PasswordHash) {
		srv.log(ctx).Warn("Admin login failed", slog.String("username", username), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "admin login failed")
	}

	token, err := srv.tokenService.GenerateToken(admin.ID, entity.RoleAdmin)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate token")
	}

	srv.log(ctx).Info("Admin logged in", slog.String("admin_id", admin.ID.String()))

	return &usecase.AdminAuthOutput{Token: token, Admin: admin}, nil
}

func (srv *adminService) CreateAdmin(ctx context.Context, username, password string) (*entity.Admin, error) {
	var fields domainerrors.FieldCollector
	username = strings.TrimSpace(username)
	fields.Check(username != "", "username", "Username is required")
	fields.Check(len(password) >= entity.MinPasswordLength, "password", "Password must be at least 6 characters")
	if err := fields.Err(); err != nil {
		return nil, err
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	admin := &entity.Admin{Username: username, PasswordHash: hash}
	if err := srv.adminRepo.Create(ctx, admin); err != nil {
		return nil, errors.Wrap(err, "failed to create admin")
	}

	srv.log(ctx).Info("Admin created", slog.String("admin_id", admin.ID.String()), slog.String("username", username))

	return admin, nil
}
