// repository/vehicle/vehicleRepository.go
package vehicle

import (
	"context"
	"errors"
	"sort"
	"strings"

	"github.com/sharma2rachit/zenith-rental/model"
)

var ErrNotFound = errors.New("vehicle not found")

// Filter narrows a catalog listing. Zero values mean "no constraint";
// MaxPrice == 0 disables the upper price bound.
type Filter struct {
	Location      string
	Categories    []string
	MinPrice      float64
	MaxPrice      float64
	Transmission  string
	Fuel          string
	AvailableOnly bool
	SortBy        string // price | price-desc | rating | name
}

type Repo interface {
	Get(ctx context.Context, id int64) (*model.Vehicle, error)
	List(ctx context.Context, f Filter) ([]model.Vehicle, error)
}

type repo struct{ fleet []model.Vehicle }

// New returns the read-only vehicle catalog.
func New() Repo { return &repo{fleet: seedFleet()} }

func (r *repo) Get(ctx context.Context, id int64) (*model.Vehicle, error) {
	for i := range r.fleet {
		if r.fleet[i].ID == id {
			v := r.fleet[i]
			return &v, nil
		}
	}
	return nil, ErrNotFound
}

func (r *repo) List(ctx context.Context, f Filter) ([]model.Vehicle, error) {
	out := make([]model.Vehicle, 0, len(r.fleet))
	for _, v := range r.fleet {
		if !matches(v, f) {
			continue
		}
		out = append(out, v)
	}
	sortFleet(out, f.SortBy)
	return out, nil
}

func matches(v model.Vehicle, f Filter) bool {
	if f.Location != "" && !strings.Contains(strings.ToLower(v.Location), strings.ToLower(f.Location)) {
		return false
	}
	if len(f.Categories) > 0 {
		found := false
		for _, c := range f.Categories {
			if strings.EqualFold(v.Category, c) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	if v.DailyPrice < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && v.DailyPrice > f.MaxPrice {
		return false
	}
	if f.Transmission != "" && !strings.EqualFold(v.Specs.Transmission, f.Transmission) {
		return false
	}
	if f.Fuel != "" && !strings.EqualFold(v.Specs.Fuel, f.Fuel) {
		return false
	}
	if f.AvailableOnly && !v.Available {
		return false
	}
	return true
}

func sortFleet(fleet []model.Vehicle, key string) {
	switch key {
	case "price":
		sort.SliceStable(fleet, func(i, j int) bool { return fleet[i].DailyPrice < fleet[j].DailyPrice })
	case "price-desc":
		sort.SliceStable(fleet, func(i, j int) bool { return fleet[i].DailyPrice > fleet[j].DailyPrice })
	case "rating":
		sort.SliceStable(fleet, func(i, j int) bool { return fleet[i].Rating > fleet[j].Rating })
	case "name":
		sort.SliceStable(fleet, func(i, j int) bool { return fleet[i].Name < fleet[j].Name })
	}
}
