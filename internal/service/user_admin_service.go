package service

import (
	"context"
	"strings"

	"github.com/creamery-next/internal/cache"
	"github.com/creamery-next/internal/constants"
	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/repository"
)

// UserAdminService 管理端用户管理服务
type UserAdminService struct {
	userRepo repository.UserRepository
}

// NewUserAdminService 创建管理端用户服务
func NewUserAdminService(userRepo repository.UserRepository) *UserAdminService {
	return &UserAdminService{userRepo: userRepo}
}

// List 用户列表
func (s *UserAdminService) List(filter repository.UserListFilter) ([]models.User, int64, error) {
	return s.userRepo.List(filter)
}

// GetByID 用户详情
func (s *UserAdminService) GetByID(id uint) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return user, nil
}

// BatchUpdateStatus 批量启用/禁用用户
// 禁用会顺带提升 TokenVersion，使已签发的 Token 全部失效。
func (s *UserAdminService) BatchUpdateStatus(userIDs []uint, status string) error {
	normalized := strings.ToLower(strings.TrimSpace(status))
	switch normalized {
	case constants.UserStatusActive, constants.UserStatusDisabled:
	default:
		return ErrInvalidUserStatus
	}
	if err := s.userRepo.BatchUpdateStatus(userIDs, normalized); err != nil {
		return err
	}
	for _, id := range userIDs {
		_ = cache.DelUserAuthState(context.Background(), id)
	}
	return nil
}
