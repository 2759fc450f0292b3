package handler

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/dto"
)

// memArticles реализует ArticleUseCase в памяти, err подменяет ответ любого метода
type memArticles struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.Article
	err    error
}

func newMemArticles() *memArticles {
	return &memArticles{items: make(map[int64]domain.Article)}
}

func (m *memArticles) sorted(filter func(domain.Article) bool) []domain.Article {
	out := make([]domain.Article, 0, len(m.items))
	for _, a := range m.items {
		if filter(a) {
			out = append(out, a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (m *memArticles) Create(_ context.Context, in dto.CreateArticleDTO) (*domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	now := time.Now().UTC()
	a := domain.Article{ID: m.nextID, Title: in.Title, Content: in.Content, CreatedAt: now, UpdatedAt: now}
	if in.Published != nil {
		a.Published = *in.Published
	}
	m.items[a.ID] = a
	return &a, nil
}

func (m *memArticles) FindAll(context.Context) ([]domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(func(domain.Article) bool { return true }), nil
}

func (m *memArticles) FindDrafts(context.Context) ([]domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	return m.sorted(func(a domain.Article) bool { return !a.Published }), nil
}

func (m *memArticles) FindOne(_ context.Context, id int64) (*domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (m *memArticles) Update(_ context.Context, id int64, in dto.UpdateArticleDTO) (*domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	if in.Title != nil {
		a.Title = *in.Title
	}
	if in.Content != nil {
		a.Content = *in.Content
	}
	if in.Published != nil {
		a.Published = *in.Published
	}
	m.items[id] = a
	return &a, nil
}

func (m *memArticles) Remove(_ context.Context, id int64) (*domain.Article, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	a, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	delete(m.items, id)
	return &a, nil
}

type memUsers struct {
	mu     sync.Mutex
	nextID int64
	items  map[int64]domain.User
	err    error
}

func newMemUsers() *memUsers {
	return &memUsers{items: make(map[int64]domain.User)}
}

func (m *memUsers) Create(_ context.Context, in dto.CreateUserDTO) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	m.nextID++
	u := domain.User{ID: m.nextID, Name: in.Name, Email: in.Email, Password: "hashed:" + in.Password}
	m.items[u.ID] = u
	return &u, nil
}

func (m *memUsers) FindAll(context.Context) ([]domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	out := make([]domain.User, 0, len(m.items))
	for _, u := range m.items {
		out = append(out, u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (m *memUsers) FindOne(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (m *memUsers) Update(_ context.Context, id int64, in dto.UpdateUserDTO) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	if in.Name != nil {
		u.Name = *in.Name
	}
	if in.Email != nil {
		u.Email = *in.Email
	}
	if in.Password != nil {
		u.Password = "hashed:" + *in.Password
	}
	m.items[id] = u
	return &u, nil
}

func (m *memUsers) Remove(_ context.Context, id int64) (*domain.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	u, ok := m.items[id]
	if !ok {
		return nil, nil
	}
	delete(m.items, id)
	return &u, nil
}

type stubHealth struct{ err error }

func (s stubHealth) Ping(context.Context) error { return s.err }
