package vehicle

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	vehiclerepo "github.com/sharma2rachit/zenith-rental/repository/vehicle"
	vehiclesvc "github.com/sharma2rachit/zenith-rental/service/vehicle"
)

type Controller struct {
	Svc vehiclesvc.Service
	Log *slog.Logger
}

// GET /v1/vehicles
// @Summary      Search vehicles
// @Description  List catalog vehicles with optional filters and sorting
// @Tags         vehicles
// @Produce      json
// @Param        location      query  string  false  "location substring"
// @Param        category      query  string  false  "comma-separated categories"
// @Param        min_price     query  number  false  "minimum daily price"
// @Param        max_price     query  number  false  "maximum daily price"
// @Param        transmission  query  string  false  "transmission"
// @Param        fuel          query  string  false  "fuel type"
// @Param        available     query  bool    false  "only available vehicles"
// @Param        sort          query  string  false  "price | price-desc | rating | name"
// @Success      200  {object}  map[string]any
// @Router       /v1/vehicles [get]
func (h *Controller) List(c echo.Context) error {
	f := vehiclesvc.Filter{
		Location:     c.QueryParam("location"),
		Transmission: c.QueryParam("transmission"),
		Fuel:         c.QueryParam("fuel"),
		SortBy:       c.QueryParam("sort"),
	}
	if cats := c.QueryParam("category"); cats != "" {
		for _, cat := range strings.Split(cats, ",") {
			if cat = strings.TrimSpace(cat); cat != "" {
				f.Categories = append(f.Categories, cat)
			}
		}
	}
	if v := c.QueryParam("min_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MinPrice = p
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			f.MaxPrice = p
		}
	}
	if v := c.QueryParam("available"); v != "" {
		f.AvailableOnly = v == "true" || v == "1"
	}

	out, err := h.Svc.Search(c.Request().Context(), f)
	if err != nil {
		h.Log.Error("vehicle search", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": out, "count": len(out)})
}

// GET /v1/vehicles/:id
// @Summary      Vehicle detail
// @Tags         vehicles
// @Produce      json
// @Param        id  path  int  true  "vehicle id"
// @Success      200  {object}  map[string]any
// @Failure      404  {object}  map[string]any
// @Router       /v1/vehicles/{id} [get]
func (h *Controller) Detail(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid id"})
	}

	v, err := h.Svc.Detail(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, vehiclerepo.ErrNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "vehicle not found"})
		}
		h.Log.Error("vehicle detail", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
	return c.JSON(http.StatusOK, echo.Map{"data": v})
}
