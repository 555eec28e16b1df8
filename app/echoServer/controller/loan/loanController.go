package loan

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"bookcatalog/model"
	loansvc "bookcatalog/service/loan"
)

type Controller struct {
	Svc loansvc.Service
	Log *slog.Logger
}

// POST /api/borrow/:id  (admin)
func (h *Controller) Borrow(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var req BorrowReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid json"})
	}
	b, err := h.Svc.Borrow(c.Request().Context(), id, req.Borrower)
	if err != nil {
		if loansvc.Code(err) == loansvc.ErrConflict {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "not found or already borrowed"})
		}
		h.Log.Error("borrow", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, model.NewBookResponse(*b))
}

// POST /api/return/:id  (admin)
func (h *Controller) Return(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	b, err := h.Svc.Return(c.Request().Context(), id)
	if err != nil {
		if loansvc.Code(err) == loansvc.ErrConflict {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "not found or not borrowed"})
		}
		h.Log.Error("return", "err", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusOK, model.NewBookResponse(*b))
}
