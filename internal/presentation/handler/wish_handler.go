package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"celebra/internal/application/usecase/abstraction"
	"celebra/internal/domain/dto"
	"celebra/internal/presentation"
)

type WishHandler struct {
	creator abstraction.Creator
	getter  abstraction.Getter
	deleter abstraction.Deleter
}

func NewWishHandler(creator abstraction.Creator, getter abstraction.Getter,
	deleter abstraction.Deleter,
) *WishHandler {
	return &WishHandler{
		creator: creator,
		getter:  getter,
		deleter: deleter,
	}
}

// HandleCreate handles POST /wishes requests.
func (h *WishHandler) HandleCreate(c echo.Context) error {
	var req dto.CreateWishRequest
	if err := c.Bind(&req); err != nil {
		c.Response().Header().Set(presentation.ReasonTag, "invalid request body")

		return c.NoContent(http.StatusBadRequest)
	}

	wish, err := h.creator.CreateWish(c.Request().Context(), req)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusBadRequest)
	}

	return c.JSON(http.StatusCreated, wish)
}

// HandleGet handles GET /wishes/:id requests.
func (h *WishHandler) HandleGet(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing wish id")

		return c.NoContent(http.StatusBadRequest)
	}

	wish, err := h.getter.GetWish(c.Request().Context(), id)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(http.StatusNotFound)
	}

	return c.JSON(http.StatusOK, wish)
}

// HandleDelete handles DELETE /wishes/:id requests.
func (h *WishHandler) HandleDelete(c echo.Context) error {
	id := c.Param(presentation.IDParam)
	if id == "" {
		c.Response().Header().Set(presentation.ReasonTag, "missing wish id")

		return c.NoContent(http.StatusBadRequest)
	}

	status, err := h.deleter.DeleteWish(c.Request().Context(), id)
	if err != nil {
		c.Response().Header().Set(presentation.ReasonTag, err.Error())

		return c.NoContent(status)
	}

	return c.NoContent(http.StatusOK)
}
