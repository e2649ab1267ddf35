package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

type OrderHandler struct {
	orderUC usecase.OrderUC
	logger  logger.Logger
}

func NewOrderHandler(orderUC usecase.OrderUC, logger logger.Logger) *OrderHandler {
	return &OrderHandler{orderUC: orderUC, logger: logger}
}

type checkoutRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	Country       string `json:"country"`
	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
}

// checkout
//
//	@Summary		Submit an order
//	@Description	Freezes the cart into a pending order; phone must be a Ugandan number (+256XXXXXXXXX)
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Cart-Token	header		string			true	"Cart token"
//	@Param			body			body		checkoutRequest	true	"Checkout details"
//	@Success		201				{object}	OrderResponse
//	@Failure		400				{object}	ErrorResponse
//	@Router			/orders [post]
func (o *OrderHandler) checkout(w http.ResponseWriter, r *http.Request) {
	token, err := cartToken(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var req checkoutRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	order, err := o.orderUC.Checkout(r.Context(), &usecase.CheckoutReq{
		CartToken:     token,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		City:          req.City,
		Country:       req.Country,
		Notes:         req.Notes,
		PaymentMethod: req.PaymentMethod,
	})
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, NewOrderResponse(order))
}

// getOrder
//
//	@Summary	Get an order
//	@Tags		orders
//	@Produce	json
//	@Param		id	path		string	true	"Order id"
//	@Success	200	{object}	OrderResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/orders/{id} [get]
func (o *OrderHandler) getOrder(w http.ResponseWriter, r *http.Request) {
	order, err := o.orderUC.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderResponse(order))
}

// trackOrders
//
//	@Summary	List a customer's orders by email
//	@Tags		orders
//	@Produce	json
//	@Param		email	query		string	true	"Customer email"
//	@Success	200		{array}		OrderResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/orders [get]
func (o *OrderHandler) trackOrders(w http.ResponseWriter, r *http.Request) {
	email := r.URL.Query().Get("email")
	if email == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	orders, err := o.orderUC.ListOrdersByEmail(r.Context(), email)
	if err != nil {
		o.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderListResponse(orders))
}
