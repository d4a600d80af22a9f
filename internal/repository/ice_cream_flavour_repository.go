package repository

import (
	"errors"

	"github.com/creamery-next/internal/models"

	"gorm.io/gorm"
)

// IceCreamFlavourRepository 口味数据访问接口
type IceCreamFlavourRepository interface {
	List() ([]models.IceCreamFlavour, error)
	ListByIDs(ids []uint) ([]models.IceCreamFlavour, error)
	GetByID(id uint) (*models.IceCreamFlavour, error)
	Create(flavour *models.IceCreamFlavour) error
	Update(flavour *models.IceCreamFlavour) error
	Delete(id uint) error
	CountByName(name string, excludeID *uint) (int64, error)
}

// GormIceCreamFlavourRepository GORM 实现
type GormIceCreamFlavourRepository struct {
	db *gorm.DB
}

// NewIceCreamFlavourRepository 创建口味仓库
func NewIceCreamFlavourRepository(db *gorm.DB) *GormIceCreamFlavourRepository {
	return &GormIceCreamFlavourRepository{db: db}
}

// List 口味列表
func (r *GormIceCreamFlavourRepository) List() ([]models.IceCreamFlavour, error) {
	var flavours []models.IceCreamFlavour
	if err := r.db.Order("id ASC").Find(&flavours).Error; err != nil {
		return nil, err
	}
	return flavours, nil
}

// ListByIDs 批量获取口味
func (r *GormIceCreamFlavourRepository) ListByIDs(ids []uint) ([]models.IceCreamFlavour, error) {
	if len(ids) == 0 {
		return []models.IceCreamFlavour{}, nil
	}
	var flavours []models.IceCreamFlavour
	if err := r.db.Where("id IN ?", ids).Find(&flavours).Error; err != nil {
		return nil, err
	}
	return flavours, nil
}

// GetByID 根据 ID 获取口味
func (r *GormIceCreamFlavourRepository) GetByID(id uint) (*models.IceCreamFlavour, error) {
	var flavour models.IceCreamFlavour
	if err := r.db.First(&flavour, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &flavour, nil
}

// Create 创建口味
func (r *GormIceCreamFlavourRepository) Create(flavour *models.IceCreamFlavour) error {
	return r.db.Create(flavour).Error
}

// Update 更新口味
func (r *GormIceCreamFlavourRepository) Update(flavour *models.IceCreamFlavour) error {
	return r.db.Save(flavour).Error
}

// Delete 删除口味
func (r *GormIceCreamFlavourRepository) Delete(id uint) error {
	return r.db.Delete(&models.IceCreamFlavour{}, id).Error
}

// CountByName 统计同名口味数量
func (r *GormIceCreamFlavourRepository) CountByName(name string, excludeID *uint) (int64, error) {
	var count int64
	query := r.db.Model(&models.IceCreamFlavour{}).Where("name = ?", name)
	if excludeID != nil {
		query = query.Where("id != ?", *excludeID)
	}
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
