package repository

import (
	"errors"

	"github.com/creamery-next/internal/models"

	"gorm.io/gorm"
)

// IceCreamMixinRepository 配料数据访问接口
type IceCreamMixinRepository interface {
	List() ([]models.IceCreamMixin, error)
	ListByIDs(ids []uint) ([]models.IceCreamMixin, error)
	GetByID(id uint) (*models.IceCreamMixin, error)
	Create(mixin *models.IceCreamMixin) error
	Update(mixin *models.IceCreamMixin) error
	Delete(id uint) error
	CountByName(name string, excludeID *uint) (int64, error)
}

// GormIceCreamMixinRepository GORM 实现
type GormIceCreamMixinRepository struct {
	db *gorm.DB
}

// NewIceCreamMixinRepository 创建配料仓库
func NewIceCreamMixinRepository(db *gorm.DB) *GormIceCreamMixinRepository {
	return &GormIceCreamMixinRepository{db: db}
}

// List 配料列表
func (r *GormIceCreamMixinRepository) List() ([]models.IceCreamMixin, error) {
	var mixins []models.IceCreamMixin
	if err := r.db.Order("id ASC").Find(&mixins).Error; err != nil {
		return nil, err
	}
	return mixins, nil
}

// ListByIDs 批量获取配料
func (r *GormIceCreamMixinRepository) ListByIDs(ids []uint) ([]models.IceCreamMixin, error) {
	if len(ids) == 0 {
		return []models.IceCreamMixin{}, nil
	}
	var mixins []models.IceCreamMixin
	if err := r.db.Where("id IN ?", ids).Find(&mixins).Error; err != nil {
		return nil, err
	}
	return mixins, nil
}

// GetByID 根据 ID 获取配料
func (r *GormIceCreamMixinRepository) GetByID(id uint) (*models.IceCreamMixin, error) {
	var mixin models.IceCreamMixin
	if err := r.db.First(&mixin, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &mixin, nil
}

// Create 创建配料
func (r *GormIceCreamMixinRepository) Create(mixin *models.IceCreamMixin) error {
	return r.db.Create(mixin).Error
}

// Update 更新配料
func (r *GormIceCreamMixinRepository) Update(mixin *models.IceCreamMixin) error {
	return r.db.Save(mixin).Error
}

// Delete 删除配料
func (r *GormIceCreamMixinRepository) Delete(id uint) error {
	return r.db.Delete(&models.IceCreamMixin{}, id).Error
}

// CountByName 统计同名配料数量
func (r *GormIceCreamMixinRepository) CountByName(name string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.IceCreamMixin{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
