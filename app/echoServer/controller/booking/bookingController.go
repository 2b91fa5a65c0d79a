package booking

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/sharma2rachit/zenith-rental/model"
	bs "github.com/sharma2rachit/zenith-rental/service/booking"
)

type Controller struct {
	Svc bs.Service
	Log *slog.Logger
}

func sessionID(c echo.Context) string {
	sid, _ := c.Get("session_id").(string)
	return sid
}

// respondErr maps engine error codes onto HTTP statuses. Every error surfaces
// as a human-readable message; nothing here is fatal to the caller's flow.
func (h *Controller) respondErr(c echo.Context, op string, err error) error {
	switch bs.Code(err) {
	case bs.ErrMissingVehicle:
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"message": "no vehicle selected"})
	case bs.ErrAuthRequired:
		return c.JSON(http.StatusUnauthorized, echo.Map{"message": "sign in to confirm your booking"})
	case bs.ErrNotFound:
		return c.JSON(http.StatusNotFound, echo.Map{"message": "booking not found"})
	case bs.ErrInvalidTransition:
		return c.JSON(http.StatusConflict, echo.Map{"message": "booking is no longer modifiable"})
	case bs.ErrPaymentDeclined:
		return c.JSON(http.StatusPaymentRequired, echo.Map{"message": "payment was declined"})
	default:
		h.Log.Error(op, "err", err, "req_id", c.Response().Header().Get(echo.HeaderXRequestID))
		return c.JSON(http.StatusInternalServerError, echo.Map{"message": "internal error"})
	}
}

// ----- draft -----

// GET /v1/draft
func (h *Controller) Draft(c echo.Context) error {
	d := h.Svc.Draft(c.Request().Context(), sessionID(c))
	return c.JSON(http.StatusOK, echo.Map{"data": d})
}

// DELETE /v1/draft
func (h *Controller) ResetDraft(c echo.Context) error {
	h.Svc.ResetDraft(c.Request().Context(), sessionID(c))
	return c.JSON(http.StatusOK, echo.Map{"message": "draft reset"})
}

// PUT /v1/draft/search
func (h *Controller) UpdateSearch(c echo.Context) error {
	var req SearchParamsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	d := h.Svc.UpdateSearchParams(c.Request().Context(), sessionID(c), req.toUpdate())
	return c.JSON(http.StatusOK, echo.Map{"data": d})
}

// PUT /v1/draft/vehicle
func (h *Controller) SelectVehicle(c echo.Context) error {
	var req SelectVehicleReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	d, err := h.Svc.SelectVehicle(c.Request().Context(), sessionID(c), req.VehicleID)
	if err != nil {
		if bs.Code(err) == bs.ErrNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"message": "vehicle not found"})
		}
		return h.respondErr(c, "select vehicle", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": d})
}

// PUT /v1/draft/customer
func (h *Controller) UpdateCustomer(c echo.Context) error {
	var req CustomerDetailsReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	d := h.Svc.UpdateCustomerDetails(c.Request().Context(), sessionID(c), req.toUpdate())
	return c.JSON(http.StatusOK, echo.Map{"data": d})
}

// PUT /v1/draft/extras
func (h *Controller) UpdateExtras(c echo.Context) error {
	var req ExtrasReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	d := h.Svc.UpdateExtras(c.Request().Context(), sessionID(c), req.Extras)
	return c.JSON(http.StatusOK, echo.Map{"data": d})
}

// GET /v1/draft/quote
func (h *Controller) Quote(c echo.Context) error {
	d, err := h.Svc.Quote(c.Request().Context(), sessionID(c))
	if err != nil {
		return h.respondErr(c, "quote", err)
	}
	return c.JSON(http.StatusOK, echo.Map{
		"rental_days": d.RentalDays,
		"total_price": d.TotalPrice,
		"extras":      d.Extras,
	})
}

// ----- lifecycle -----

// POST /v1/bookings
// @Summary      Finalize booking
// @Description  Turns the session draft into a confirmed booking record
// @Tags         bookings
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        payload  body  FinalizeReq  true  "Payment details"
// @Success      201  {object}  map[string]any
// @Failure      401  {object}  map[string]any
// @Failure      402  {object}  map[string]any
// @Failure      422  {object}  map[string]any "no vehicle selected"
// @Router       /v1/bookings [post]
func (h *Controller) Finalize(c echo.Context) error {
	var req FinalizeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "validation error", "errors": err.Error()})
	}
	method := model.PaymentMethod(req.PaymentMethod)
	if method == model.PayCard && req.Card == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "card details required"})
	}

	var card *bs.CardDetails
	if req.Card != nil {
		card = &bs.CardDetails{
			Number:         req.Card.Number,
			ExpiryDate:     req.Card.ExpiryDate,
			CVV:            req.Card.CVV,
			CardholderName: req.Card.CardholderName,
		}
	}

	rec, err := h.Svc.Finalize(c.Request().Context(), sessionID(c), method, card)
	if err != nil {
		return h.respondErr(c, "finalize", err)
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"message": "booking confirmed",
		"data":    rec,
	})
}

// GET /v1/bookings
func (h *Controller) MyBookings(c echo.Context) error {
	uid, _ := c.Get("user_id").(int64)
	rows, err := h.Svc.ListForUser(c.Request().Context(), uid)
	if err != nil {
		return h.respondErr(c, "list bookings", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// owned loads a record and enforces that the caller owns it. Admins may
// touch any booking.
func (h *Controller) owned(c echo.Context, id string) (*model.BookingRecord, error) {
	rec, err := h.Svc.Get(c.Request().Context(), id)
	if err != nil {
		return nil, err
	}
	uid, _ := c.Get("user_id").(int64)
	role, _ := c.Get("role").(string)
	if rec.UserID != uid && role != "admin" {
		return nil, echo.NewHTTPError(http.StatusForbidden, "forbidden")
	}
	return rec, nil
}

// GET /v1/bookings/:id
func (h *Controller) Detail(c echo.Context) error {
	rec, err := h.owned(c, c.Param("id"))
	if err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he
		}
		return h.respondErr(c, "booking detail", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rec})
}

// POST /v1/bookings/:id/cancel
func (h *Controller) Cancel(c echo.Context) error {
	if _, err := h.owned(c, c.Param("id")); err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he
		}
		return h.respondErr(c, "cancel", err)
	}
	rec, err := h.Svc.Cancel(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondErr(c, "cancel", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking cancelled", "data": rec})
}

// PATCH /v1/bookings/:id
func (h *Controller) Modify(c echo.Context) error {
	var req ModifyBookingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"message": "invalid JSON"})
	}
	if _, err := h.owned(c, c.Param("id")); err != nil {
		if he, ok := err.(*echo.HTTPError); ok {
			return he
		}
		return h.respondErr(c, "modify", err)
	}
	rec, err := h.Svc.Modify(c.Request().Context(), c.Param("id"), bs.ModifyReq{
		Search: req.SearchParams.toUpdate(),
		Extras: req.Extras,
	})
	if err != nil {
		return h.respondErr(c, "modify", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking updated", "data": rec})
}

// ----- admin -----

// GET /v1/admin/bookings
func (h *Controller) AllBookings(c echo.Context) error {
	rows, err := h.Svc.ListAll(c.Request().Context())
	if err != nil {
		return h.respondErr(c, "list all bookings", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": rows})
}

// GET /v1/admin/summary
func (h *Controller) Summary(c echo.Context) error {
	sum, err := h.Svc.Summary(c.Request().Context())
	if err != nil {
		return h.respondErr(c, "summary", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"data": sum})
}

// POST /v1/admin/bookings/:id/complete
func (h *Controller) Complete(c echo.Context) error {
	rec, err := h.Svc.Complete(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.respondErr(c, "complete", err)
	}
	return c.JSON(http.StatusOK, echo.Map{"message": "booking completed", "data": rec})
}
