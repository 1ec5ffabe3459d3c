package handler

import (
	"context"
	"database/sql"
	"sort"
	"strings"
	"sync"

	"github.com/keyvanm/inventory-sales-api/internal/model"
	"github.com/keyvanm/inventory-sales-api/internal/repository"
	"github.com/keyvanm/inventory-sales-api/internal/utils"
)

// fakeUserStore is an in-memory UserStore mirroring the real repository's
// contract, including the duplicate-username sentinel and sql.ErrNoRows on
// lookup misses.
type fakeUserStore struct {
	mu  sync.Mutex
	seq uint64
	m   map[string]model.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{m: make(map[string]model.User)}
}

func (s *fakeUserStore) Create(_ context.Context, username, password string, cost int) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[username]; ok {
		return 0, repository.ErrUsernameExists
	}
	hash, err := utils.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	s.seq++
	s.m[username] = model.User{ID: s.seq, Username: username, PasswordHash: hash}
	return s.seq, nil
}

func (s *fakeUserStore) GetByUsername(_ context.Context, username string) (model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.m[username]
	if !ok {
		return model.User{}, sql.ErrNoRows
	}
	return u, nil
}

// fakeProductStore is an in-memory product table implementing ProductStore,
// StockLedger and InventorySource. DecrementStock reproduces the
// repository's conditional-update semantics under one lock, so the
// check-then-decrement is as atomic here as the row lock makes it in MySQL.
type fakeProductStore struct {
	mu         sync.Mutex
	seq        uint64
	m          map[uint64]model.Product
	decrements int // calls that reached the ledger
}

func newFakeProductStore() *fakeProductStore {
	return &fakeProductStore{m: make(map[uint64]model.Product)}
}

func (s *fakeProductStore) Create(_ context.Context, p model.Product) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seq++
	p.ID = s.seq
	s.m[p.ID] = p
	return p, nil
}

func (s *fakeProductStore) GetByID(_ context.Context, id uint64) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.m[id]
	if !ok {
		return model.Product{}, repository.ErrProductNotFound
	}
	return p, nil
}

func (s *fakeProductStore) List(_ context.Context, skip, limit int, search string) ([]model.Product, error) {
	all, _ := s.All(context.Background())
	if search != "" {
		filtered := all[:0]
		for _, p := range all {
			if strings.Contains(p.Name, search) {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}
	if skip >= len(all) {
		return []model.Product{}, nil
	}
	all = all[skip:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (s *fakeProductStore) All(_ context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, 0, len(s.m))
	for _, p := range s.m {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (s *fakeProductStore) Update(_ context.Context, id uint64, p model.Product) (model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return model.Product{}, repository.ErrProductNotFound
	}
	p.ID = id
	s.m[id] = p
	return p, nil
}

func (s *fakeProductStore) Delete(_ context.Context, id uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.m[id]; !ok {
		return repository.ErrProductNotFound
	}
	delete(s.m, id)
	return nil
}

func (s *fakeProductStore) DecrementStock(_ context.Context, id uint64, qty int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.decrements++
	p, ok := s.m[id]
	if !ok {
		return 0, repository.ErrProductNotFound
	}
	if p.StockQuantity < qty {
		return p.StockQuantity, repository.ErrInsufficientStock
	}
	p.StockQuantity -= qty
	s.m[id] = p
	return p.StockQuantity, nil
}

func (s *fakeProductStore) stockOf(id uint64) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.m[id].StockQuantity
}

func (s *fakeProductStore) ledgerCalls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.decrements
}
