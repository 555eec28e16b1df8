// Package main library catalog API.
//
// @title           Library Catalog API
// @version         1.0
// @description     Book catalog with borrow/return tracking.
// @BasePath        /
// @schemes         http
// @securityDefinitions.apikey AdminKey
// @in header
// @name x-admin-key
package main

import (
	"bookcatalog/app/echoServer"
	bookctrl "bookcatalog/app/echoServer/controller/book"
	loanctrl "bookcatalog/app/echoServer/controller/loan"
	"bookcatalog/app/echoServer/validation"
	"bookcatalog/config"
	bookrepo "bookcatalog/repository/book"
	loanrepo "bookcatalog/repository/loan"
	booksvc "bookcatalog/service/book"
	loansvc "bookcatalog/service/loan"
	"bookcatalog/util/adminkey"
	"bookcatalog/util/database"
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
)

func main() {

	cfg := config.Load()
	ctx := context.Background()

	// logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// DB
	db, err := database.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Error("db connect failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := db.EnsureSchema(ctx); err != nil {
		log.Error("schema bootstrap failed", "err", err)
		os.Exit(1)
	}

	// guard
	if cfg.AdminKey == config.DefaultAdminKey {
		log.Warn("ADMIN_KEY not set, using insecure default")
	}
	guard := adminkey.New(cfg.AdminKey)

	// repos
	br := bookrepo.New(db.Pool)
	lr := loanrepo.New(db.Pool)

	// services
	bs := booksvc.New(br)
	ls := loansvc.New(lr)

	// controllers
	v := validator.New()
	bookC := &bookctrl.Controller{Svc: bs, V: v, Log: log}
	loanC := &loanctrl.Controller{Svc: ls, Log: log}

	// echo
	e := echo.New()
	echoServer.RegisterMiddlewares(e)
	e.Validator = validation.New()

	e.File("/", "web/index.html")

	e.GET("/api/health", func(c echo.Context) error {
		if err := db.Ping(c.Request().Context()); err != nil {
			return c.JSON(http.StatusInternalServerError, echo.Map{"ok": false, "error": err.Error()})
		}
		return c.JSON(http.StatusOK, echo.Map{"ok": true, "db": "postgres"})
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	echoServer.Register(e, echoServer.C{
		Book:  bookC,
		Loan:  loanC,
		Guard: guard,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	slog.Info("starting server", "port", port, "env", cfg.Env)

	e.Logger.Fatal(e.Start(":" + port))
}
