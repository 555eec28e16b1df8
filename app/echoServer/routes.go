package echoServer

import (
	bookctrl "bookcatalog/app/echoServer/controller/book"
	loanctrl "bookcatalog/app/echoServer/controller/loan"
	"bookcatalog/util/adminkey"

	"github.com/labstack/echo/v4"
)

type C struct {
	Book  *bookctrl.Controller
	Loan  *loanctrl.Controller
	Guard *adminkey.Guard
}

func Register(e *echo.Echo, c C) {
	// Public
	pub := e.Group("/api")
	pub.GET("/books", c.Book.List)

	// Admin key required
	admin := e.Group("/api", AdminKey(c.Guard))
	admin.POST("/books", c.Book.Create)
	admin.PUT("/books/:id", c.Book.Update)
	admin.DELETE("/books/:id", c.Book.Delete)
	admin.POST("/borrow/:id", c.Loan.Borrow)
	admin.POST("/return/:id", c.Loan.Return)
}
