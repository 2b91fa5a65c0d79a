package vehiclesvc

import (
	"context"

	"github.com/sharma2rachit/zenith-rental/model"
	repo "github.com/sharma2rachit/zenith-rental/repository/vehicle"
)

type Filter = repo.Filter

type Service interface {
	Search(ctx context.Context, f Filter) ([]model.Vehicle, error)
	Detail(ctx context.Context, id int64) (*model.Vehicle, error)
}

type service struct{ r repo.Repo }

func New(r repo.Repo) Service { return &service{r: r} }

func (s *service) Search(ctx context.Context, f Filter) ([]model.Vehicle, error) {
	return s.r.List(ctx, f)
}

func (s *service) Detail(ctx context.Context, id int64) (*model.Vehicle, error) {
	return s.r.Get(ctx, id)
}
