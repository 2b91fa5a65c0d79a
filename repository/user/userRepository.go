// repository/user/userRepository.go
package user

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/sharma2rachit/zenith-rental/model"
	"github.com/sharma2rachit/zenith-rental/util/hash"
)

var (
	ErrNotFound  = errors.New("user not found")
	ErrDuplicate = errors.New("email already registered")
)

type Repo interface {
	Create(ctx context.Context, u *model.User) error
	ByEmail(ctx context.Context, email string) (*model.User, error)
	ByID(ctx context.Context, id int64) (*model.User, error)
}

// repo is an in-memory mock user store. There is no real identity backend
// behind the storefront; accounts live for the lifetime of the process.
type repo struct {
	mu     sync.RWMutex
	nextID int64
	users  []model.User
}

// New returns the mock user store, pre-seeded with a demo customer
// (john@example.com / password123) and an admin account
// (admin@zenithrental.com / admin123).
func New() Repo {
	r := &repo{nextID: 1}
	r.seed("John", "Doe", "john@example.com", "+1234567890", "user", "password123")
	r.seed("Rachit", "Sharma", "admin@zenithrental.com", "", "admin", "admin123")
	return r
}

func (r *repo) seed(first, last, email, phone, role, password string) {
	h, err := hash.HashPassword(password)
	if err != nil {
		return
	}
	r.users = append(r.users, model.User{
		ID:           r.nextID,
		FirstName:    first,
		LastName:     last,
		Email:        email,
		Phone:        phone,
		Role:         role,
		PasswordHash: h,
		CreatedAt:    time.Now().UTC(),
	})
	r.nextID++
}

func (r *repo) Create(ctx context.Context, u *model.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if strings.EqualFold(existing.Email, u.Email) {
			return ErrDuplicate
		}
	}
	u.ID = r.nextID
	u.CreatedAt = time.Now().UTC()
	r.nextID++
	r.users = append(r.users, *u)
	return nil
}

func (r *repo) ByEmail(ctx context.Context, email string) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if strings.EqualFold(r.users[i].Email, email) {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}

func (r *repo) ByID(ctx context.Context, id int64) (*model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.users {
		if r.users[i].ID == id {
			u := r.users[i]
			return &u, nil
		}
	}
	return nil, ErrNotFound
}
