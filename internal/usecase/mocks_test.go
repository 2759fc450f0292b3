package usecase

import (
	"context"

	"github.com/GoArmGo/BlogApp/internal/domain"
	"github.com/GoArmGo/BlogApp/internal/messaging/payloads"
	"github.com/stretchr/testify/mock"
)

type mockArticleStorage struct{ mock.Mock }

func (m *mockArticleStorage) CreateArticle(ctx context.Context, a *domain.Article) error {
	args := m.Called(ctx, a)
	return args.Error(0)
}

func (m *mockArticleStorage) ListArticles(ctx context.Context) ([]domain.Article, error) {
	args := m.Called(ctx)
	articles, _ := args.Get(0).([]domain.Article)
	return articles, args.Error(1)
}

func (m *mockArticleStorage) ListArticlesByPublished(ctx context.Context, published bool) ([]domain.Article, error) {
	args := m.Called(ctx, published)
	articles, _ := args.Get(0).([]domain.Article)
	return articles, args.Error(1)
}

func (m *mockArticleStorage) GetArticleByID(ctx context.Context, id int64) (*domain.Article, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Article)
	return a, args.Error(1)
}

func (m *mockArticleStorage) UpdateArticle(ctx context.Context, id int64, changes map[string]any) (*domain.Article, error) {
	args := m.Called(ctx, id, changes)
	a, _ := args.Get(0).(*domain.Article)
	return a, args.Error(1)
}

func (m *mockArticleStorage) DeleteArticle(ctx context.Context, id int64) (*domain.Article, error) {
	args := m.Called(ctx, id)
	a, _ := args.Get(0).(*domain.Article)
	return a, args.Error(1)
}

type mockUserStorage struct{ mock.Mock }

func (m *mockUserStorage) CreateUser(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserStorage) ListUsers(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	users, _ := args.Get(0).([]domain.User)
	return users, args.Error(1)
}

func (m *mockUserStorage) GetUserByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserStorage) UpdateUser(ctx context.Context, id int64, changes map[string]any) (*domain.User, error) {
	args := m.Called(ctx, id, changes)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *mockUserStorage) DeleteUser(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type recordingPublisher struct {
	events []payloads.ResourceEvent
	err    error
}

func (p *recordingPublisher) PublishResourceEvent(_ context.Context, e payloads.ResourceEvent) error {
	p.events = append(p.events, e)
	return p.err
}

type fakeHasher struct{ err error }

func (h fakeHasher) Hash(password string) (string, error) {
	if h.err != nil {
		return "", h.err
	}
	return "hashed:" + password, nil
}
