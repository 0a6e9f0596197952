package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"dabeli/config"
	deliverycontext "dabeli/internal/delivery/context"
	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	"dabeli/internal/domain/repository"
	"dabeli/internal/domain/service"
	"dabeli/internal/usecase"
	"dabeli/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ForgotPasswordMessage is returned whether or not the phone is registered.
const ForgotPasswordMessage = "If this phone number is registered, a reset code has been issued"

type passwordResetService struct {
	txManager      repository.TransactionManager
	customerRepo   repository.CustomerRepository
	resetTokenRepo repository.ResetTokenRepository
	hasher         service.PasswordHasher
	codeGenerator  service.CodeGenerator
	tokenTTL       time.Duration
	exposeCode     bool
	logger         *slog.Logger
}

// PasswordResetServiceParams holds dependencies for PasswordResetService, injected by Fx.
type PasswordResetServiceParams struct {
	fx.In

	TxManager      repository.TransactionManager
	CustomerRepo   repository.CustomerRepository
	ResetTokenRepo repository.ResetTokenRepository
	Hasher         service.PasswordHasher
	CodeGenerator  service.CodeGenerator
	Config         *config.Config
	Logger         *slog.Logger
}

// NewPasswordResetService is the constructor for passwordResetService.
func NewPasswordResetService(params PasswordResetServiceParams) usecase.PasswordResetUsecase {
	srv := &passwordResetService{
		txManager:      params.TxManager,
		customerRepo:   params.CustomerRepo,
		resetTokenRepo: params.ResetTokenRepo,
		hasher:         params.Hasher,
		codeGenerator:  params.CodeGenerator,
		tokenTTL:       entity.ResetTokenTTL,
		logger:         params.Logger,
	}

	if params.Config != nil && params.Config.Auth != nil {
		if params.Config.Auth.ResetTokenTTL > 0 {
			srv.tokenTTL = params.Config.Auth.ResetTokenTTL
		}
		srv.exposeCode = params.Config.Auth.ExposeResetCode && !params.Config.IsProduction()
	}

	return srv
}

func (srv *passwordResetService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ForgotPassword replaces the customer's reset code. Unknown phones get the same answer.
func (srv *passwordResetService) ForgotPassword(ctx context.Context, phone string) (*usecase.ForgotPasswordOutput, error) {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return nil, domainerrors.Invalid("phone", "Phone number is required")
	}

	output := &usecase.ForgotPasswordOutput{Message: ForgotPasswordMessage}

	// The code is generated and hashed before the lookup so that known and
	// unknown phones cost the same bcrypt round.
	code, err := srv.codeGenerator.Generate()
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate reset code")
	}

	hash, err := srv.hasher.Hash(code)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	customer, err := srv.customerRepo.FindByPhone(ctx, phone)
	if err != nil {
		if errors.Is(err, domainerrors.ErrCustomerNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown phone")

			return output, nil
		}

		return nil, errors.Wrap(err, "failed to load customer for password reset")
	}

	token := entity.NewResetToken(customer.ID, hash)
	if err := srv.resetTokenRepo.Replace(ctx, token, srv.tokenTTL); err != nil {
		return nil, errors.Wrap(err, "failed to store reset token")
	}

	srv.log(ctx).Info("Password reset code issued",
		slog.String("customer_id", customer.ID.String()),
		slog.Time("expires_at", token.ExpiresAt),
		slog.String("valid_for", util.FormatDuration(srv.tokenTTL)),
	)

	if srv.exposeCode {
		output.ResetCode = code
	}

	return output, nil
}

// ResetPassword redeems a live code. Every mismatch surfaces as ErrInvalidResetToken.
func (srv *passwordResetService) ResetPassword(ctx context.Context, phone, code, newPassword string) error {
	if err := entity.ValidatePassword("newPassword", newPassword); err != nil {
		return err
	}

	customer, err := srv.customerRepo.FindByPhone(ctx, strings.TrimSpace(phone))
	if err != nil {
		if errors.Is(err, domainerrors.ErrCustomerNotFound) {
			return domainerrors.ErrInvalidResetToken
		}

		return errors.Wrap(err, "failed to load customer for password reset")
	}

	token, err := srv.resetTokenRepo.FindLive(ctx, customer.ID)
	if err != nil {
		return errors.Wrap(err, "failed to load reset token")
	}

	if !srv.hasher.Check(strings.TrimSpace(code), token.TokenHash) {
		srv.recordMismatch(ctx, customer.ID, token)

		return domainerrors.ErrInvalidResetToken
	}

	passwordHash, err := srv.hasher.Hash(newPassword)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}

	if err := srv.txManager.Execute(ctx, func(txRepoFactory repository.RepositoryFactory) error {
		if err := txRepoFactory.CustomerRepo().UpdatePassword(ctx, customer.ID, passwordHash); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if err := txRepoFactory.ResetTokenRepo().DeleteByCustomer(ctx, customer.ID); err != nil {
			return errors.Wrap(err, "failed to consume reset token")
		}

		return nil
	}); err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.String("customer_id", customer.ID.String()))

	return nil
}

// recordMismatch counts a wrong code and burns the token once it is exhausted.
// Failures here are logged only: the caller already answers with ErrInvalidResetToken.
func (srv *passwordResetService) recordMismatch(ctx context.Context, customerID uuid.UUID, token *entity.ResetToken) {
	logger := srv.log(ctx).With(slog.String("customer_id", customerID.String()))

	attempts, err := srv.resetTokenRepo.RecordFailedAttempt(ctx, token.ID)
	if err != nil {
		logger.Error("Failed to record password reset attempt", slog.Any("error", err))

		return
	}

	token.Attempts = attempts
	logger.Warn("Password reset code mismatch", slog.Int("attempts", attempts))

	if !token.Exhausted() {
		return
	}

	if err := srv.resetTokenRepo.DeleteByCustomer(ctx, customerID); err != nil {
		logger.Error("Failed to invalidate exhausted reset token", slog.Any("error", err))

		return
	}

	logger.Warn("Password reset token invalidated after too many attempts")
}
