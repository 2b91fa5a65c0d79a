// Package main zenith-rental API.
//
// @title           Zenith Rental API
// @version         1.0
// @description     car rental storefront (catalog, booking drafts, bookings, users).
// @contact.name    Rachit Sharma
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description  Use:  Bearer <JWT>
package main

import (
	"log/slog"
	"os"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/sharma2rachit/zenith-rental/app/echoServer"
	authctrl "github.com/sharma2rachit/zenith-rental/app/echoServer/controller/auth"
	bookingctrl "github.com/sharma2rachit/zenith-rental/app/echoServer/controller/booking"
	vehiclectrl "github.com/sharma2rachit/zenith-rental/app/echoServer/controller/vehicle"
	"github.com/sharma2rachit/zenith-rental/app/echoServer/jwtx"
	"github.com/sharma2rachit/zenith-rental/app/echoServer/validation"
	"github.com/sharma2rachit/zenith-rental/config"
	bookingrepo "github.com/sharma2rachit/zenith-rental/repository/booking"
	"github.com/sharma2rachit/zenith-rental/repository/payment"
	userrepo "github.com/sharma2rachit/zenith-rental/repository/user"
	vehiclerepo "github.com/sharma2rachit/zenith-rental/repository/vehicle"
	authsvc "github.com/sharma2rachit/zenith-rental/service/auth"
	bookingsvc "github.com/sharma2rachit/zenith-rental/service/booking"
	vehiclesvc "github.com/sharma2rachit/zenith-rental/service/vehicle"
	"github.com/sharma2rachit/zenith-rental/util/database"
)

func main() {

	cfg := config.Load()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(log)

	// booking record store (embedded)
	db, err := database.New(cfg.DataDir)
	if err != nil {
		log.Error("store open failed", "err", err, "dir", cfg.DataDir)
		os.Exit(1)
	}
	defer db.Close()

	// repos
	vr := vehiclerepo.New()
	br := bookingrepo.New(db)
	ur := userrepo.New()
	pp := payment.NewMock()

	// services
	as := authsvc.New(ur, cfg.JWTSecret)
	vs := vehiclesvc.New(vr)
	bsvc := bookingsvc.New(br, vr, pp, jwtx.Identity{})

	// controllers
	authC := &authctrl.Controller{Svc: as, Log: log}
	vehicleC := &vehiclectrl.Controller{Svc: vs, Log: log}
	bookingC := &bookingctrl.Controller{Svc: bsvc, Log: log}

	// echo
	e := echo.New()
	e.HideBanner = true
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]any{
			"status":  "ok",
			"message": "Service is healthy and connected",
		})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Auth:    authC,
		Vehicle: vehicleC,
		Booking: bookingC,

		JWTSecret: cfg.JWTSecret,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	log.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
