package service

import (
	"strings"

	"github.com/creamery-next/internal/models"
	"github.com/creamery-next/internal/repository"

	"github.com/shopspring/decimal"
)

// CartService 购物车服务
type CartService struct {
	cartRepo    repository.CartRepository
	typeRepo    repository.IceCreamTypeRepository
	flavourRepo repository.IceCreamFlavourRepository
	mixinRepo   repository.IceCreamMixinRepository
}

// NewCartService 创建购物车服务
func NewCartService(cartRepo repository.CartRepository, typeRepo repository.IceCreamTypeRepository, flavourRepo repository.IceCreamFlavourRepository, mixinRepo repository.IceCreamMixinRepository) *CartService {
	return &CartService{
		cartRepo:    cartRepo,
		typeRepo:    typeRepo,
		flavourRepo: flavourRepo,
		mixinRepo:   mixinRepo,
	}
}

// AddItemInput 加购参数
type AddItemInput struct {
	UserID            uint
	TypeSlug          string
	FlavourSelections models.FlavourSelections
	MixinIDs          []uint
}

// CartItemDetail 购物车项明细（含实时计价）
type CartItemDetail struct {
	Item  models.CartItem
	Total models.Money
}

// CartDetail 购物车明细
type CartDetail struct {
	Items []CartItemDetail
	Total models.Money
}

// AddItem 追加购物车项，同配置重复加购不合并
func (s *CartService) AddItem(input AddItemInput) (*models.CartItem, error) {
	slug := strings.TrimSpace(input.TypeSlug)
	if input.UserID == 0 || slug == "" || len(input.FlavourSelections) == 0 {
		return nil, ErrCartItemInvalid
	}
	scoops := 0
	for _, sel := range input.FlavourSelections {
		if sel.FlavourID == 0 || sel.Scoops < 1 {
			return nil, ErrCartItemInvalid
		}
		scoops += sel.Scoops
	}

	iceCreamType, err := s.typeRepo.GetBySlug(slug)
	if err != nil {
		return nil, err
	}
	if iceCreamType == nil {
		return nil, ErrTypeNotFound
	}
	if iceCreamType.MaxScoops > 0 && scoops > iceCreamType.MaxScoops {
		return nil, ErrTooManyScoops
	}

	item := &models.CartItem{
		UserID:            input.UserID,
		TypeSlug:          slug,
		FlavourSelections: input.FlavourSelections,
		MixinIDs:          models.UintArray(input.MixinIDs),
	}
	if err := s.cartRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// RemoveItem 删除购物车项，不存在时静默成功
func (s *CartService) RemoveItem(userID, itemID uint) error {
	return s.cartRepo.DeleteByIDAndUser(itemID, userID)
}

// Clear 清空购物车
func (s *CartService) Clear(userID uint) error {
	return s.cartRepo.ClearByUser(userID)
}

// ListByUser 获取购物车明细并按目录现价计算合计
func (s *CartService) ListByUser(userID uint) (*CartDetail, error) {
	items, err := s.cartRepo.ListByUser(userID)
	if err != nil {
		return nil, err
	}

	flavours, mixins, err := s.catalogSnapshot()
	if err != nil {
		return nil, err
	}

	detail := &CartDetail{Items: make([]CartItemDetail, 0, len(items))}
	total := decimal.Zero
	for _, item := range items {
		itemTotal := priceLineItem(item.FlavourSelections, item.MixinIDs, flavours, mixins)
		total = total.Add(itemTotal)
		detail.Items = append(detail.Items, CartItemDetail{
			Item:  item,
			Total: models.NewMoneyFromDecimal(itemTotal),
		})
	}
	detail.Total = models.NewMoneyFromDecimal(total)
	return detail, nil
}

// ComputeTotal 计算购物车合计金额
func (s *CartService) ComputeTotal(userID uint) (models.Money, error) {
	detail, err := s.ListByUser(userID)
	if err != nil {
		return models.Money{}, err
	}
	return detail.Total, nil
}

func (s *CartService) catalogSnapshot() (map[uint]models.IceCreamFlavour, map[uint]models.IceCreamMixin, error) {
	flavours, err := s.flavourRepo.List()
	if err != nil {
		return nil, nil, err
	}
	mixins, err := s.mixinRepo.List()
	if err != nil {
		return nil, nil, err
	}
	return flavourMap(flavours), mixinMap(mixins), nil
}
