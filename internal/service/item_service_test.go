package service

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"

	"fleamart/internal/errors"
	"fleamart/internal/model"
)

// MockItemRepository is a mock implementation of ItemRepository.
type MockItemRepository struct {
	mock.Mock
}

func (m *MockItemRepository) Create(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) Save(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *MockItemRepository) FindByID(ctx context.Context, id uint) (*model.Item, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Item), args.Error(1)
}

func (m *MockItemRepository) List(ctx context.Context) ([]model.Item, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Item), args.Error(1)
}

func (m *MockItemRepository) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestItemService_FindAll(t *testing.T) {
	mockRepo := new(MockItemRepository)
	expected := []model.Item{
		{ID: 1, Name: "PC", UserID: 2},
		{ID: 2, Name: "Desk", UserID: 1},
	}
	mockRepo.On("List", mock.Anything).Return(expected, nil)

	service := NewItemService(mockRepo, nil)
	items, err := service.FindAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, expected, items)
	mockRepo.AssertExpectations(t)
}

func TestItemService_FindByID(t *testing.T) {
	tests := []struct {
		name          string
		id            uint
		setupMock     func(*MockItemRepository)
		expectedError error
	}{
		{
			name: "existing item",
			id:   1,
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, uint(1)).Return(&model.Item{ID: 1, Name: "PC"}, nil)
			},
			expectedError: nil,
		},
		{
			name: "missing item",
			id:   99,
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, uint(99)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockItemRepository)
			tt.setupMock(mockRepo)

			service := NewItemService(mockRepo, nil)
			item, err := service.FindByID(context.Background(), tt.id)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				assert.Nil(t, item)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, item)
				assert.Equal(t, tt.id, item.ID)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestItemService_Create(t *testing.T) {
	mockRepo := new(MockItemRepository)
	mockRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Item")).Return(nil)

	owner := &model.User{ID: 2, Username: "bob", Tier: model.UserTierFree}
	service := NewItemService(mockRepo, nil)

	item, err := service.Create(context.Background(), CreateItemInput{
		Name:        "PC",
		Price:       decimal.NewFromInt(50000),
		Description: "a used gaming pc",
	}, owner)

	assert.NoError(t, err)
	assert.NotNil(t, item)
	assert.Equal(t, owner.ID, item.UserID)
	assert.Equal(t, model.ItemStatusOnSale, item.Status)
	assert.True(t, decimal.NewFromInt(50000).Equal(item.Price))
	mockRepo.AssertExpectations(t)
}

func TestItemService_Purchase(t *testing.T) {
	owner := &model.User{ID: 2, Username: "alice", Tier: model.UserTierFree}
	buyer := &model.User{ID: 1, Username: "bob", Tier: model.UserTierPremium}

	tests := []struct {
		name          string
		user          *model.User
		setupMock     func(*MockItemRepository)
		expectedError error
	}{
		{
			name: "purchase by non-owner succeeds",
			user: buyer,
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Item{
					ID:     10,
					Name:   "PC",
					Status: model.ItemStatusOnSale,
					UserID: owner.ID,
				}, nil)
				m.On("Save", mock.Anything, mock.MatchedBy(func(item *model.Item) bool {
					return item.Status == model.ItemStatusSoldOut
				})).Return(nil)
			},
			expectedError: nil,
		},
		{
			name: "self-purchase rejected",
			user: owner,
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Item{
					ID:     10,
					Status: model.ItemStatusOnSale,
					UserID: owner.ID,
				}, nil)
			},
			expectedError: errors.ErrSelfPurchase,
		},
		{
			name: "already sold out",
			user: buyer,
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Item{
					ID:     10,
					Status: model.ItemStatusSoldOut,
					UserID: owner.ID,
				}, nil)
			},
			expectedError: errors.ErrItemSoldOut,
		},
		{
			name: "missing item",
			user: buyer,
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockItemRepository)
			tt.setupMock(mockRepo)

			service := NewItemService(mockRepo, nil)
			err := service.Purchase(context.Background(), 10, tt.user)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				mockRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}

func TestItemService_Delete(t *testing.T) {
	owner := &model.User{ID: 2, Username: "alice"}
	stranger := &model.User{ID: 1, Username: "bob"}

	tests := []struct {
		name          string
		user          *model.User
		setupMock     func(*MockItemRepository)
		expectedError error
	}{
		{
			name: "delete by owner succeeds",
			user: owner,
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Item{
					ID:     10,
					UserID: owner.ID,
				}, nil)
				m.On("Delete", mock.Anything, uint(10)).Return(nil).Once()
			},
			expectedError: nil,
		},
		{
			name: "delete by non-owner rejected",
			user: stranger,
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(&model.Item{
					ID:     10,
					UserID: owner.ID,
				}, nil)
			},
			expectedError: errors.ErrNotItemOwner,
		},
		{
			name: "missing item",
			user: owner,
			setupMock: func(m *MockItemRepository) {
				m.On("FindByID", mock.Anything, uint(10)).Return(nil, gorm.ErrRecordNotFound)
			},
			expectedError: errors.ErrItemNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockRepo := new(MockItemRepository)
			tt.setupMock(mockRepo)

			service := NewItemService(mockRepo, nil)
			err := service.Delete(context.Background(), 10, tt.user)

			if tt.expectedError != nil {
				assert.Error(t, err)
				assert.Equal(t, tt.expectedError, err)
				mockRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
			} else {
				assert.NoError(t, err)
			}

			mockRepo.AssertExpectations(t)
		})
	}
}
