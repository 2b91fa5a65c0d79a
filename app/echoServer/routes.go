package echoServer

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/sharma2rachit/zenith-rental/app/echoServer/controller/auth"
	"github.com/sharma2rachit/zenith-rental/app/echoServer/controller/booking"
	"github.com/sharma2rachit/zenith-rental/app/echoServer/controller/vehicle"
	"github.com/sharma2rachit/zenith-rental/app/echoServer/jwtx"
)

type C struct {
	Auth    *auth.Controller
	Vehicle *vehicle.Controller
	Booking *booking.Controller

	JWTSecret string
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/v1")
	pub.POST("/users/register", c.Auth.Register)
	pub.POST("/users/login", c.Auth.Login)

	// Catalog browsing needs no account
	pub.GET("/vehicles", c.Vehicle.List)
	pub.GET("/vehicles/:id", c.Vehicle.Detail)

	// Draft endpoints are public too: the flow only demands identity at payment
	pub.GET("/draft", c.Booking.Draft)
	pub.DELETE("/draft", c.Booking.ResetDraft)
	pub.PUT("/draft/search", c.Booking.UpdateSearch)
	pub.PUT("/draft/vehicle", c.Booking.SelectVehicle)
	pub.PUT("/draft/customer", c.Booking.UpdateCustomer)
	pub.PUT("/draft/extras", c.Booking.UpdateExtras)
	pub.GET("/draft/quote", c.Booking.Quote)

	// Auth
	authed := e.Group("/v1")
	authed.Use(echojwt.WithConfig(echojwt.Config{
		SigningKey:    []byte(c.JWTSecret),
		NewClaimsFunc: func(c echo.Context) jwt.Claims { return jwt.MapClaims{} },
	}))
	authed.Use(userContext())

	authed.POST("/bookings", c.Booking.Finalize)
	authed.GET("/bookings", c.Booking.MyBookings)
	authed.GET("/bookings/:id", c.Booking.Detail)
	authed.POST("/bookings/:id/cancel", c.Booking.Cancel)
	authed.PATCH("/bookings/:id", c.Booking.Modify)

	// Admin
	admin := authed.Group("/admin", requireAdmin())
	admin.GET("/bookings", c.Booking.AllBookings)
	admin.GET("/summary", c.Booking.Summary)
	admin.POST("/bookings/:id/complete", c.Booking.Complete)
}

// userContext extracts the subject out of the verified token, exposes it to
// controllers via "user_id"/"role" and stamps it onto the request context for
// the booking engine's identity check.
func userContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			uid, err := jwtx.UserIDFromContext(c)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, echo.Map{"message": "unauthorized"})
			}
			c.Set("user_id", uid)
			if role, err := jwtx.RoleFromContext(c); err == nil {
				c.Set("role", role)
			}

			req := c.Request()
			c.SetRequest(req.WithContext(jwtx.WithUserID(req.Context(), uid)))
			return next(c)
		}
	}
}

func requireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if role != "admin" {
				return c.JSON(http.StatusForbidden, echo.Map{"message": "forbidden"})
			}
			return next(c)
		}
	}
}
