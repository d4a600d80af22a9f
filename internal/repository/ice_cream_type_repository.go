package repository

import (
	"errors"

	"github.com/creamery-next/internal/models"

	"gorm.io/gorm"
)

// IceCreamTypeRepository 容器类型数据访问接口
type IceCreamTypeRepository interface {
	List() ([]models.IceCreamType, error)
	GetByID(id uint) (*models.IceCreamType, error)
	GetBySlug(slug string) (*models.IceCreamType, error)
	Create(t *models.IceCreamType) error
	Update(t *models.IceCreamType) error
	Delete(id uint) error
	CountBySlug(slug string, excludeID *uint) (int64, error)
}

// GormIceCreamTypeRepository GORM 实现
type GormIceCreamTypeRepository struct {
	db *gorm.DB
}

// NewIceCreamTypeRepository 创建容器类型仓库
func NewIceCreamTypeRepository(db *gorm.DB) *GormIceCreamTypeRepository {
	return &GormIceCreamTypeRepository{db: db}
}

// List 容器类型列表
func (r *GormIceCreamTypeRepository) List() ([]models.IceCreamType, error) {
	var types []models.IceCreamType
	if err := r.db.Order("id ASC").Find(&types).Error; err != nil {
		return nil, err
	}
	return types, nil
}

// GetByID 根据 ID 获取容器类型
func (r *GormIceCreamTypeRepository) GetByID(id uint) (*models.IceCreamType, error) {
	var t models.IceCreamType
	if err := r.db.First(&t, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// GetBySlug 根据 slug 获取容器类型
func (r *GormIceCreamTypeRepository) GetBySlug(slug string) (*models.IceCreamType, error) {
	var t models.IceCreamType
	if err := r.db.Where("slug = ?", slug).First(&t).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

// Create 创建容器类型
func (r *GormIceCreamTypeRepository) Create(t *models.IceCreamType) error {
	return r.db.Create(t).Error
}

// Update 更新容器类型
func (r *GormIceCreamTypeRepository) Update(t *models.IceCreamType) error {
	return r.db.Save(t).Error
}

// Delete 删除容器类型
func (r *GormIceCreamTypeRepository) Delete(id uint) error {
	return r.db.Delete(&models.IceCreamType{}, id).Error
}

// CountBySlug 统计 slug 数量
func (r *GormIceCreamTypeRepository) CountBySlug(slug string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.IceCreamType{}).Where("slug = ?", slug)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
