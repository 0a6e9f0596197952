package usecase

import (
	"context"

	"dabeli/internal/domain/entity"
)

// AdminAuthOutput is returned by a successful staff login.
type AdminAuthOutput struct {
	Token string        `json:"token"`
	Admin *entity.Admin `json:"admin"`
}

// AdminUsecase covers staff accounts.
type AdminUsecase interface {
	Login(ctx context.Context, username, password string) (*AdminAuthOutput, error)

	// CreateAdmin provisions a staff account; used by the admin CLI.
	CreateAdmin(ctx context.Context, username, password string) (*entity.Admin, error)
}
