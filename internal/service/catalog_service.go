package service

import (
	"strings"

	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CatalogService 目录服务（容器类型/口味/配料）
type CatalogService struct {
	typeRepo    repository.IceCreamTypeRepository
	flavourRepo repository.IceCreamFlavourRepository
	mixinRepo   repository.IceCreamMixinRepository
}

// NewCatalogService 创建目录服务
func NewCatalogService(typeRepo repository.IceCreamTypeRepository, flavourRepo repository.IceCreamFlavourRepository, mixinRepo repository.IceCreamMixinRepository) *CatalogService {
	return &CatalogService{
		typeRepo:    typeRepo,
		flavourRepo: flavourRepo,
		mixinRepo:   mixinRepo,
	}
}

// ListTypes 容器类型列表
func (s *CatalogService) ListTypes() ([]models.IceCreamType, error) {
	return s.typeRepo.List()
}

// GetTypeBySlug 按 slug 获取容器类型
func (s *CatalogService) GetTypeBySlug(slug string) (*models.IceCreamType, error) {
	t, err := s.typeRepo.GetBySlug(strings.TrimSpace(slug))
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTypeNotFound
	}
	return t, nil
}

// ListFlavours 口味列表
func (s *CatalogService) ListFlavours() ([]models.IceCreamFlavour, error) {
	return s.flavourRepo.List()
}

// ListMixins 配料列表
func (s *CatalogService) ListMixins() ([]models.IceCreamMixin, error) {
	return s.mixinRepo.List()
}

// TypeInput 容器类型创建/更新参数
type TypeInput struct {
	Name      string
	Slug      string
	Image     string
	MaxScoops int
}

// CreateType 创建容器类型
func (s *CatalogService) CreateType(input TypeInput) (*models.IceCreamType, error) {
	name := strings.TrimSpace(input.Name)
	slug := strings.TrimSpace(input.Slug)
	if name == "" || slug == "" || input.MaxScoops < 1 {
		return nil, ErrInvalidInput
	}
	count, err := s.typeRepo.CountBySlug(slug, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrSlugExists
	}
	t := &models.IceCreamType{
		Name:      name,
		Slug:      slug,
		Image:     strings.TrimSpace(input.Image),
		MaxScoops: input.MaxScoops,
	}
	if err := s.typeRepo.Create(t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateType 更新容器类型
func (s *CatalogService) UpdateType(id uint, input TypeInput) (*models.IceCreamType, error) {
	t, err := s.typeRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTypeNotFound
	}
	if name := strings.TrimSpace(input.Name); name != "" {
		t.Name = name
	}
	if slug := strings.TrimSpace(input.Slug); slug != "" && slug != t.Slug {
		count, err := s.typeRepo.CountBySlug(slug, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrSlugExists
		}
		t.Slug = slug
	}
	if image := strings.TrimSpace(input.Image); image != "" {
		t.Image = image
	}
	if input.MaxScoops > 0 {
		t.MaxScoops = input.MaxScoops
	}
	if err := s.typeRepo.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// PricedItemInput 口味/配料创建与更新参数
type PricedItemInput struct {
	Name  string
	Price decimal.Decimal
}

// CreateFlavour 创建口味
func (s *CatalogService) CreateFlavour(input PricedItemInput) (*models.IceCreamFlavour, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	count, err := s.flavourRepo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}
	flavour := &models.IceCreamFlavour{
		Name:  name,
		Price: models.NewMoneyFromDecimal(input.Price),
	}
	if err := s.flavourRepo.Create(flavour); err != nil {
		return nil, err
	}
	return flavour, nil
}

// UpdateFlavour 更新口味
func (s *CatalogService) UpdateFlavour(id uint, input PricedItemInput) (*models.IceCreamFlavour, error) {
	flavour, err := s.flavourRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if flavour == nil {
		return nil, ErrFlavourNotFound
	}
	if name := strings.TrimSpace(input.Name); name != "" && name != flavour.Name {
		count, err := s.flavourRepo.CountByName(name, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrNameExists
		}
		flavour.Name = name
	}
	if !input.Price.IsZero() {
		if input.Price.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInvalidPrice
		}
		flavour.Price = models.NewMoneyFromDecimal(input.Price)
	}
	if err := s.flavourRepo.Update(flavour); err != nil {
		return nil, err
	}
	return flavour, nil
}

// DeleteFlavour 删除口味
func (s *CatalogService) DeleteFlavour(id uint) error {
	flavour, err := s.flavourRepo.GetByID(id)
	if err != nil {
		return err
	}
	if flavour == nil {
		return ErrFlavourNotFound
	}
	return s.flavourRepo.Delete(id)
}

// CreateMixin 创建配料
func (s *CatalogService) CreateMixin(input PricedItemInput) (*models.IceCreamMixin, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrInvalidInput
	}
	if input.Price.LessThanOrEqual(decimal.Zero) {
		return nil, ErrInvalidPrice
	}
	count, err := s.mixinRepo.CountByName(name, nil)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrNameExists
	}
	mixin := &models.IceCreamMixin{
		Name:  name,
		Price: models.NewMoneyFromDecimal(input.Price),
	}
	if err := s.mixinRepo.Create(mixin); err != nil {
		return nil, err
	}
	return mixin, nil
}

// UpdateMixin 更新配料
func (s *CatalogService) UpdateMixin(id uint, input PricedItemInput) (*models.IceCreamMixin, error) {
	mixin, err := s.mixinRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if mixin == nil {
		return nil, ErrMixinNotFound
	}
	if name := strings.TrimSpace(input.Name); name != "" && name != mixin.Name {
		count, err := s.mixinRepo.CountByName(name, &id)
		if err != nil {
			return nil, err
		}
		if count > 0 {
			return nil, ErrNameExists
		}
		mixin.Name = name
	}
	if !input.Price.IsZero() {
		if input.Price.LessThanOrEqual(decimal.Zero) {
			return nil, ErrInvalidPrice
		}
		mixin.Price = models.NewMoneyFromDecimal(input.Price)
	}
	if err := s.mixinRepo.Update(mixin); err != nil {
		return nil, err
	}
	return mixin, nil
}

// DeleteMixin 删除配料
func (s *CatalogService) DeleteMixin(id uint) error {
	mixin, err := s.mixinRepo.GetByID(id)
	if err != nil {
		return err
	}
	if mixin == nil {
		return ErrMixinNotFound
	}
	return s.mixinRepo.Delete(id)
}
