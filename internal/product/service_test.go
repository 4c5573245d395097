package product

import (
	"context"
	"errors"
	"testing"

	"gudangku-be/internal/supplier"
	"gudangku-be/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- Mocks ---

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) List(ctx context.Context) ([]*Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) ListLowStock(ctx context.Context, threshold int) ([]*Product, error) {
	args := m.Called(ctx, threshold)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*Product), args.Error(1)
}

func (m *MockRepository) GetByID(ctx context.Context, id uint) (*Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) Create(ctx context.Context, input NewProductInput, supplierID *uint) (*Product, error) {
	args := m.Called(ctx, input, supplierID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*Product), args.Error(1)
}

func (m *MockRepository) UpdateStock(ctx context.Context, id uint, quantity int) error {
	args := m.Called(ctx, id, quantity)
	return args.Error(0)
}

func (m *MockRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockSupplierRepository struct {
	mock.Mock
}

func (m *MockSupplierRepository) List(ctx context.Context) ([]*supplier.Supplier, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) GetByName(ctx context.Context, name string) (*supplier.Supplier, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Create(ctx context.Context, input supplier.NewSupplierInput) (*supplier.Supplier, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*supplier.Supplier), args.Error(1)
}

func (m *MockSupplierRepository) Count(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// --- Tests ---

func TestService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockSupplierRepository))
		expected := []*Product{{ID: 1, Name: "Widget", SupplierName: utils.StrPtr("Acme")}}
		mockRepo.On("List", ctx).Return(expected, nil)

		res, err := svc.ListProducts(ctx)
		assert.NoError(t, err)
		assert.Equal(t, expected, res)
	})

	t.Run("Error", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockSupplierRepository))
		mockRepo.On("List", ctx).Return(nil, errors.New("db error"))

		_, err := svc.ListProducts(ctx)
		assert.Error(t, err)
	})
}

func TestService_ListLowStock(t *testing.T) {
	ctx := context.Background()

	mockRepo := new(MockRepository)
	svc := NewService(mockRepo, new(MockSupplierRepository))
	expected := []*Product{{ID: 2, Name: "Gadget", Quantity: 3}}
	mockRepo.On("ListLowStock", ctx, 10).Return(expected, nil)

	res, err := svc.ListLowStock(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, expected, res)
}

func TestService_CreateProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Success_NoSupplier", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockSupplierRepo := new(MockSupplierRepository)
		svc := NewService(mockRepo, mockSupplierRepo)

		input := NewProductInput{Name: "Widget", Quantity: 20, Price: 9.99}
		created := &Product{ID: 1, Name: "Widget", Quantity: 20, Price: 9.99}
		mockRepo.On("Create", ctx, input, (*uint)(nil)).Return(created, nil)

		res, err := svc.CreateProduct(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, created, res)
		mockSupplierRepo.AssertNotCalled(t, "GetByName")
	})

	t.Run("Success_WithSupplier", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockSupplierRepo := new(MockSupplierRepository)
		svc := NewService(mockRepo, mockSupplierRepo)

		input := NewProductInput{
			Name:         "Widget",
			Quantity:     20,
			Price:        9.99,
			SupplierName: utils.StrPtr("Acme"),
		}
		acme := &supplier.Supplier{ID: 7, Name: "Acme"}
		created := &Product{ID: 1, Name: "Widget", SupplierID: utils.UintPtr(7)}

		mockSupplierRepo.On("GetByName", ctx, "Acme").Return(acme, nil)
		mockRepo.On("Create", ctx, input, &acme.ID).Return(created, nil)

		res, err := svc.CreateProduct(ctx, input)
		assert.NoError(t, err)
		assert.Equal(t, uint(7), *res.SupplierID)
	})

	t.Run("SupplierNotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		mockSupplierRepo := new(MockSupplierRepository)
		svc := NewService(mockRepo, mockSupplierRepo)

		input := NewProductInput{
			Name:         "Widget",
			Price:        9.99,
			SupplierName: utils.StrPtr("Ghost"),
		}
		mockSupplierRepo.On("GetByName", ctx, "Ghost").
			Return(nil, supplier.ErrSupplierNotFound)

		_, err := svc.CreateProduct(ctx, input)
		assert.ErrorIs(t, err, supplier.ErrSupplierNotFound)
		mockRepo.AssertNotCalled(t, "Create")
	})

	t.Run("EmptyName", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockSupplierRepository))

		_, err := svc.CreateProduct(ctx, NewProductInput{Name: "  ", Price: 1})
		assert.ErrorIs(t, err, ErrNameRequired)
	})

	t.Run("NegativePrice", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockSupplierRepository))

		_, err := svc.CreateProduct(ctx, NewProductInput{Name: "Widget", Price: -1})
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		svc := NewService(new(MockRepository), new(MockSupplierRepository))

		_, err := svc.CreateProduct(ctx, NewProductInput{Name: "Widget", Price: 1, Quantity: -5})
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	})
}

func TestService_UpdateStock(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockSupplierRepository))

		updated := &Product{ID: 1, Name: "Widget", Quantity: 5}
		mockRepo.On("UpdateStock", ctx, uint(1), 5).Return(nil)
		mockRepo.On("GetByID", ctx, uint(1)).Return(updated, nil)

		res, err := svc.UpdateStock(ctx, 1, 5)
		assert.NoError(t, err)
		assert.Equal(t, 5, res.Quantity)
	})

	t.Run("NegativeQuantity", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockSupplierRepository))

		_, err := svc.UpdateStock(ctx, 1, -1)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
		mockRepo.AssertNotCalled(t, "UpdateStock")
	})

	t.Run("NotFound", func(t *testing.T) {
		mockRepo := new(MockRepository)
		svc := NewService(mockRepo, new(MockSupplierRepository))

		mockRepo.On("UpdateStock", ctx, uint(99), 5).Return(ErrProductNotFound)

		_, err := svc.UpdateStock(ctx, 99, 5)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}
