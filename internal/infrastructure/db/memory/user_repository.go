package memory

import (
	"context"
	"sort"

	"github.com/shoplabs/shop-api/internal/core/domain"
)

// UserRepository persists user accounts in the shared in-memory store.
// Username uniqueness is enforced here since there is no database constraint
// to rely on.
type UserRepository struct {
	s *Store
}

func NewUserRepository(s *Store) *UserRepository {
	return &UserRepository{s: s}
}

func (r *UserRepository) List(_ context.Context) ([]domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	users := make([]domain.User, 0, len(r.s.users))
	for _, u := range r.s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	return users, nil
}

func (r *UserRepository) GetByID(_ context.Context, id int) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return &u, nil
}

func (r *UserRepository) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *UserRepository) Create(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, u := range r.s.users {
		if u.Username == user.Username {
			return domain.ErrUserExists
		}
	}

	user.ID = r.s.nextUserID
	r.s.nextUserID++
	r.s.users[user.ID] = *user
	return nil
}

func (r *UserRepository) Update(_ context.Context, user *domain.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	for _, u := range r.s.users {
		if u.Username == user.Username && u.ID != user.ID {
			return domain.ErrUserExists
		}
	}
	r.s.users[user.ID] = *user
	return nil
}
