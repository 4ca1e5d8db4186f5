// Package memory implements the dev server storage in process memory.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/iudanet/coffeeshop/internal/models"
	"github.com/iudanet/coffeeshop/internal/server/storage"
	"github.com/iudanet/coffeeshop/pkg/api"
)

// Storage хранит каталог и пользователей в памяти
type Storage struct {
	products []api.Product
	users    map[string]*models.User // по id
	mu       sync.RWMutex
}

var (
	_ storage.ProductStorage = (*Storage)(nil)
	_ storage.UserStorage    = (*Storage)(nil)
)

// New creates a storage seeded with the initial menu
func New() *Storage {
	return NewWithProducts(seedProducts)
}

// NewWithProducts creates a storage with the given catalog
func NewWithProducts(products []api.Product) *Storage {
	return &Storage{
		products: slices.Clone(products),
		users:    make(map[string]*models.User),
	}
}

func (s *Storage) ListProducts(ctx context.Context) ([]api.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.products), nil
}

func (s *Storage) GetProduct(ctx context.Context, id string) (*api.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i := s.index(id)
	if i < 0 {
		return nil, storage.ErrProductNotFound
	}
	p := s.products[i]
	return &p, nil
}

func (s *Storage) CreateProduct(ctx context.Context, in api.ProductInput) (*api.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p := api.Product{
		ID:          api.ProductID(strconv.Itoa(s.nextID())),
		Name:        in.Name,
		Category:    in.Category,
		Image:       in.Image,
		Description: in.Description,
		Price:       in.Price,
	}
	s.products = append(s.products, p)
	return &p, nil
}

func (s *Storage) UpdateProduct(ctx context.Context, id string, patch api.ProductPatch) (*api.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return nil, storage.ErrProductNotFound
	}

	p := &s.products[i]
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}

	out := *p
	return &out, nil
}

func (s *Storage) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.index(id)
	if i < 0 {
		return storage.ErrProductNotFound
	}
	s.products = slices.Delete(s.products, i, i+1)
	return nil
}

func (s *Storage) index(id string) int {
	return slices.IndexFunc(s.products, func(p api.Product) bool { return p.ID.String() == id })
}

// nextID новый id = максимальный числовой id + 1
func (s *Storage) nextID() int {
	maxID := 0
	for _, p := range s.products {
		if n, err := strconv.Atoi(p.ID.String()); err == nil && n > maxID {
			maxID = n
		}
	}
	return maxID + 1
}

func (s *Storage) CreateUser(ctx context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == user.Email {
			return storage.ErrUserAlreadyExists
		}
	}

	if user.ID == "" {
		user.ID = strconv.Itoa(len(s.users) + 1)
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}
	u := *user
	s.users[u.ID] = &u
	return nil
}

func (s *Storage) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, u := range s.users {
		if u.Email == email {
			out := *u
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", storage.ErrUserNotFound, email)
}

func (s *Storage) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[userID]
	if !ok {
		return nil, storage.ErrUserNotFound
	}
	out := *u
	return &out, nil
}
