package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/stockchat/api/http/presenter"
	"github.com/artem13815/stockchat/pkg/item"
)

// ItemsHandler exposes catalog administration over the stock item store.
type ItemsHandler struct {
	uc item.UseCase
}

func NewItemsHandler(uc item.UseCase) *ItemsHandler { return &ItemsHandler{uc: uc} }

// List returns all items, or the substring matches for ?q=term.
// @Summary List stock items
// @Tags    items
// @Produce json
// @Param   q query string false "Case-insensitive substring to match against name, description, category and keywords"
// @Success 200 {array} item.StockItem
// @Failure 500 {object} presenter.ErrorResponse
// @Router  /items [get]
func (h *ItemsHandler) List(c *fiber.Ctx) error {
	var (
		items []item.StockItem
		err   error
	)
	if q := c.Query("q"); q != "" {
		items, err = h.uc.Search(c.Context(), q)
	} else {
		items, err = h.uc.List(c.Context())
	}
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list items")
	}
	return presenter.JSON(c, http.StatusOK, items)
}

// Get returns one item by code.
// @Summary Get a stock item
// @Tags    items
// @Produce json
// @Param   code path string true "Item code"
// @Success 200 {object} item.StockItem
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /items/{code} [get]
func (h *ItemsHandler) Get(c *fiber.Ctx) error {
	it, err := h.uc.GetByCode(c.Context(), c.Params("code"))
	if err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "item not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to get item")
	}
	return presenter.JSON(c, http.StatusOK, it)
}

// Create adds a new item.
// @Summary Add a stock item
// @Tags    items
// @Accept  json
// @Produce json
// @Param   input body item.StockItem true "Item; code must be unique"
// @Success 201 {object} item.StockItem
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 409 {object} presenter.ErrorResponse
// @Router  /items [post]
func (h *ItemsHandler) Create(c *fiber.Ctx) error {
	var it item.StockItem
	if err := c.BodyParser(&it); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	created, err := h.uc.Add(c.Context(), it)
	if err != nil {
		var vErr item.ErrValidation
		switch {
		case errors.As(err, &vErr):
			return presenter.Error(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, item.ErrDuplicateCode):
			return presenter.Error(c, http.StatusConflict, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to add item")
	}
	return presenter.JSON(c, http.StatusCreated, created)
}

// Update patches item fields. Absent fields keep their stored value; the
// code itself cannot change.
// @Summary Update a stock item
// @Tags    items
// @Accept  json
// @Produce json
// @Param   code path string true "Item code"
// @Param   input body item.Update true "Fields to replace"
// @Success 200 {object} item.StockItem
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /items/{code} [patch]
func (h *ItemsHandler) Update(c *fiber.Ctx) error {
	var upd item.Update
	if err := c.BodyParser(&upd); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	it, err := h.uc.Update(c.Context(), c.Params("code"), upd)
	if err != nil {
		var vErr item.ErrValidation
		switch {
		case errors.As(err, &vErr):
			return presenter.Error(c, http.StatusBadRequest, vErr.Error())
		case errors.Is(err, item.ErrNotFound):
			return presenter.Error(c, http.StatusNotFound, "item not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to update item")
	}
	return presenter.JSON(c, http.StatusOK, it)
}

// Delete removes an item by code.
// @Summary Delete a stock item
// @Tags    items
// @Param   code path string true "Item code"
// @Success 204 {object} nil
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /items/{code} [delete]
func (h *ItemsHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.Context(), c.Params("code")); err != nil {
		if errors.Is(err, item.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "item not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete item")
	}
	return c.SendStatus(http.StatusNoContent)
}
