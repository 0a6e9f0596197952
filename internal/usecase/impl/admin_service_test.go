package impl

import (
	"context"
	"testing"

	"dabeli/internal/domain/entity"
	domainerrors "dabeli/internal/domain/errors"
	mockRepo "dabeli/internal/mocks/repository"
	mockSvc "dabeli/internal/mocks/service"
	"dabeli/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type adminServiceFixtures struct {
	service      usecase.AdminUsecase
	adminRepo    *mockRepo.MockAdminRepository
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAdminService(t *testing.T) adminServiceFixtures {
	adminRepo := mockRepo.NewMockAdminRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	return adminServiceFixtures{
		service: NewAdminService(AdminServiceParams{
			AdminRepo:    adminRepo,
			Hasher:       hasher,
			TokenService: tokenService,
			Logger:       testLogger(),
		}),
		adminRepo:    adminRepo,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func TestAdminService_Login_Success(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	admin := &entity.Admin{ID: uuid.New(), Username: "owner", PasswordHash: "hashed"}
	fx.adminRepo.EXPECT().FindByUsername(ctx, "owner").Return(admin, nil)
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true)
	fx.tokenService.EXPECT().GenerateToken(admin.ID, entity.RoleAdmin).Return("jwt", nil)

	out, err := fx.service.Login(ctx, " owner ", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "jwt", out.Token)
	assert.Equal(t, admin, out.Admin)
}

func TestAdminService_Login_GenericFailure(t *testing.T) {
	t.Run("unknown username", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.adminRepo.EXPECT().FindByUsername(ctx, "ghost").Return(nil, domainerrors.ErrInvalidCredentials)

		_, err := fx.service.Login(ctx, "ghost", "secret1")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestAdminService(t)
		ctx := context.Background()

		fx.adminRepo.EXPECT().
			FindByUsername(ctx, "owner").
			Return(&entity.Admin{ID: uuid.New(), PasswordHash: "hashed"}, nil)
		fx.hasher.EXPECT().Check("nope", "hashed").Return(false)

		_, err := fx.service.Login(ctx, "owner", "nope")
		assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAdminService_CreateAdmin(t *testing.T) {
	fx := createTestAdminService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil)
	fx.adminRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(a *entity.Admin) bool {
			return a.Username == "owner" && a.PasswordHash == "hashed"
		})).
		Return(nil)

	admin, err := fx.service.CreateAdmin(ctx, "owner", "secret1")
	require.NoError(t, err)
	assert.Equal(t, "owner", admin.Username)

	_, err = fx.service.CreateAdmin(ctx, "", "123")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
