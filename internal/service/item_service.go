package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"fleamart/internal/cache"
	"fleamart/internal/errors"
	"fleamart/internal/model"
	"fleamart/internal/repository"
)

const itemCacheTTL = 5 * time.Minute

// CreateItemInput carries the caller-supplied fields for a new listing.
type CreateItemInput struct {
	Name        string
	Price       decimal.Decimal
	Description string
}

// ItemService enforces ownership and status rules on listings.
type ItemService interface {
	FindAll(ctx context.Context) ([]model.Item, error)
	FindByID(ctx context.Context, id uint) (*model.Item, error)
	Create(ctx context.Context, input CreateItemInput, owner *model.User) (*model.Item, error)
	Purchase(ctx context.Context, id uint, buyer *model.User) error
	Delete(ctx context.Context, id uint, user *model.User) error
}

type itemService struct {
	repo  repository.ItemRepository
	cache *cache.Client
}

// NewItemService creates a new item service.
func NewItemService(repo repository.ItemRepository, cache *cache.Client) ItemService {
	return &itemService{
		repo:  repo,
		cache: cache,
	}
}

func (s *itemService) cacheKey(id uint) string {
	return fmt.Sprintf("item:%d", id)
}

// FindAll lists every item regardless of owner or status.
func (s *itemService) FindAll(ctx context.Context) ([]model.Item, error) {
	return s.repo.List(ctx)
}

// FindByID retrieves an item by ID with caching.
func (s *itemService) FindByID(ctx context.Context, id uint) (*model.Item, error) {
	if data, _ := s.cache.Get(ctx, s.cacheKey(id)); data != nil {
		var cached model.Item
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrItemNotFound
		}
		return nil, err
	}

	if payload, err := json.Marshal(item); err == nil {
		_ = s.cache.Set(ctx, s.cacheKey(id), payload, itemCacheTTL)
	}
	return item, nil
}

// Create persists a new listing owned by the calling user. The creator is
// the owner, so no further authorization applies.
func (s *itemService) Create(ctx context.Context, input CreateItemInput, owner *model.User) (*model.Item, error) {
	item := &model.Item{
		Name:        input.Name,
		Price:       input.Price,
		Description: input.Description,
		Status:      model.ItemStatusOnSale,
		UserID:      owner.ID,
	}

	if err := s.repo.Create(ctx, item); err != nil {
		return nil, fmt.Errorf("create item: %w", err)
	}
	return item, nil
}

// Purchase flips an item to SOLD_OUT on behalf of the buyer. Owners cannot
// purchase their own listings, and an item can only be sold once.
func (s *itemService) Purchase(ctx context.Context, id uint, buyer *model.User) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrItemNotFound
		}
		return err
	}

	if buyer.ID == item.UserID {
		return errors.ErrSelfPurchase
	}
	if item.Status != model.ItemStatusOnSale {
		return errors.ErrItemSoldOut
	}

	item.Status = model.ItemStatusSoldOut
	if err := s.repo.Save(ctx, item); err != nil {
		return fmt.Errorf("save item: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}

// Delete removes a listing. Only the owner may delete it.
func (s *itemService) Delete(ctx context.Context, id uint, user *model.User) error {
	item, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrItemNotFound
		}
		return err
	}

	if user.ID != item.UserID {
		return errors.ErrNotItemOwner
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete item: %w", err)
	}

	_ = s.cache.Delete(ctx, s.cacheKey(id))
	return nil
}
