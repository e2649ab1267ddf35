package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

// CartHandler serves the cart routes. Every route identifies the cart by
// the client-generated X-Cart-Token header.
type CartHandler struct {
	cartUC usecase.CartUC
	logger logger.Logger
}

func NewCartHandler(cartUC usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUC: cartUC, logger: logger}
}

type addToCartRequest struct {
	ProductID string `json:"product_id"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type setCurrencyRequest struct {
	Currency string `json:"currency"`
}

// getCart
//
//	@Summary	Get the current cart
//	@Tags		cart
//	@Produce	json
//	@Param		X-Cart-Token	header		string	true	"Cart token"
//	@Success	200				{object}	CartResponse
//	@Failure	400				{object}	ErrorResponse
//	@Router		/cart [get]
func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	token, err := cartToken(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUC.GetCart(r.Context(), token)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// addToCart
//
//	@Summary	Add a product to the cart
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		X-Cart-Token	header		string				true	"Cart token"
//	@Param		body			body		addToCartRequest	true	"Product to add"
//	@Success	200				{object}	CartResponse
//	@Failure	404				{object}	ErrorResponse
//	@Router		/cart/items [post]
func (c *CartHandler) addToCart(w http.ResponseWriter, r *http.Request) {
	token, err := cartToken(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req addToCartRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.ProductID == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	view, err := c.cartUC.AddToCart(r.Context(), token, req.ProductID)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// updateQuantity
//
//	@Summary	Set a cart line's quantity
//	@Description	Zero or negative quantity removes the line
//	@Tags		cart
//	@Accept		json
//	@Produce	json
//	@Param		X-Cart-Token	header		string					true	"Cart token"
//	@Param		productID		path		string					true	"Product id"
//	@Param		body			body		updateQuantityRequest	true	"New quantity"
//	@Success	200				{object}	CartResponse
//	@Failure	400				{object}	ErrorResponse
//	@Router		/cart/items/{productID} [put]
func (c *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	token, err := cartToken(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req updateQuantityRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUC.UpdateQuantity(r.Context(), token, chi.URLParam(r, "productID"), req.Quantity)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// removeFromCart
//
//	@Summary	Remove a product from the cart
//	@Tags		cart
//	@Produce	json
//	@Param		X-Cart-Token	header		string	true	"Cart token"
//	@Param		productID		path		string	true	"Product id"
//	@Success	200				{object}	CartResponse
//	@Failure	400				{object}	ErrorResponse
//	@Router		/cart/items/{productID} [delete]
func (c *CartHandler) removeFromCart(w http.ResponseWriter, r *http.Request) {
	token, err := cartToken(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	view, err := c.cartUC.RemoveFromCart(r.Context(), token, chi.URLParam(r, "productID"))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewCartResponse(view))
}

// clearCart
//
//	@Summary	Empty the cart
//	@Tags		cart
//	@Param		X-Cart-Token	header	string	true	"Cart token"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Router		/cart [delete]
func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	token, err := cartToken(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.cartUC.ClearCart(r.Context(), token); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getCurrency
//
//	@Summary	Get the stored display currency
//	@Tags		cart
//	@Produce	json
//	@Param		X-Cart-Token	header		string	true	"Cart token"
//	@Success	200				{object}	map[string]string
//	@Router		/cart/currency [get]
func (c *CartHandler) getCurrency(w http.ResponseWriter, r *http.Request) {
	token, err := cartToken(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	currency, err := c.cartUC.GetCurrency(r.Context(), token)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, map[string]string{"currency": string(currency)})
}

// setCurrency
//
//	@Summary	Set the display currency
//	@Tags		cart
//	@Accept		json
//	@Param		X-Cart-Token	header	string				true	"Cart token"
//	@Param		body			body	setCurrencyRequest	true	"Currency (UGX or KES)"
//	@Success	204
//	@Failure	400	{object}	ErrorResponse
//	@Router		/cart/currency [put]
func (c *CartHandler) setCurrency(w http.ResponseWriter, r *http.Request) {
	token, err := cartToken(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req setCurrencyRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	currency, err := domain.ParseCurrency(req.Currency)
	if err != nil {
		WriteError(w, err)
		return
	}

	if err := c.cartUC.SetCurrency(r.Context(), token, currency); err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
