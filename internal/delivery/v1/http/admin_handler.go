package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/momozvault/go-backend/internal/domain"
	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

// AdminHandler groups the authenticated back-office endpoints: catalog
// management, order management, reviews and sales analytics.
type AdminHandler struct {
	authUC    usecase.AuthUC
	catalogUC usecase.CatalogUC
	orderUC   usecase.OrderUC
	reviewUC  usecase.ReviewUC
	logger    logger.Logger
}

func NewAdminHandler(
	authUC usecase.AuthUC,
	catalogUC usecase.CatalogUC,
	orderUC usecase.OrderUC,
	reviewUC usecase.ReviewUC,
	logger logger.Logger,
) *AdminHandler {
	return &AdminHandler{
		authUC:    authUC,
		catalogUC: catalogUC,
		orderUC:   orderUC,
		reviewUC:  reviewUC,
		logger:    logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

type changeStatusRequest struct {
	Status string `json:"status"`
}

// login
//
//	@Summary	Admin login
//	@Tags		admin
//	@Accept		json
//	@Produce	json
//	@Param		credentials	body		loginRequest	true	"Credentials"
//	@Success	200			{object}	loginResponse
//	@Failure	401			{object}	ErrorResponse
//	@Router		/admin/login [post]
func (a *AdminHandler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	res, err := a.authUC.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		a.logger.Warnf("Admin login rejected. email: %s", req.Email)
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, loginResponse{Token: res.Token, ExpiresAt: res.ExpiresAt})
}

// createProduct
//
//	@Summary	Create a product
//	@Tags		admin
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		name		formData	string	true	"Name"
//	@Param		description	formData	string	false	"Description"
//	@Param		category	formData	string	true	"Category"
//	@Param		origin		formData	string	false	"Origin"
//	@Param		price_ugx	formData	string	true	"Price in UGX"
//	@Param		price_kes	formData	string	true	"Price in KES"
//	@Param		stock		formData	int		false	"Stock"
//	@Param		featured	formData	bool	false	"Featured"
//	@Param		image_url	formData	string	false	"External image URL"
//	@Param		image		formData	file	false	"Image file"
//	@Success	201			{object}	ProductResponse
//	@Failure	400			{object}	ErrorResponse
//	@Router		/admin/products [post]
func (a *AdminHandler) createProduct(w http.ResponseWriter, r *http.Request) {
	req, err := a.parseProductForm(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := a.catalogUC.CreateProduct(r.Context(), req)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	a.logger.Infof("Product %s created by %s", product.ID, adminEmail(r.Context()))
	WriteSuccess(w, http.StatusCreated, NewProductResponse(product))
}

// updateProduct
//
//	@Summary	Update a product
//	@Tags		admin
//	@Accept		multipart/form-data
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Product id"
//	@Success	200	{object}	ProductResponse
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/products/{id} [put]
func (a *AdminHandler) updateProduct(w http.ResponseWriter, r *http.Request) {
	req, err := a.parseProductForm(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	product, err := a.catalogUC.UpdateProduct(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewProductResponse(product))
}

// deleteProduct
//
//	@Summary	Delete a product
//	@Tags		admin
//	@Security	BearerAuth
//	@Param		id	path	string	true	"Product id"
//	@Success	204
//	@Failure	404	{object}	ErrorResponse
//	@Router		/admin/products/{id} [delete]
func (a *AdminHandler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := a.catalogUC.DeleteProduct(r.Context(), id); err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	a.logger.Infof("Product %s deleted by %s", id, adminEmail(r.Context()))
	w.WriteHeader(http.StatusNoContent)
}

// listOrders
//
//	@Summary	List orders
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		status	query	string	false	"Filter by status"
//	@Success	200		{array}	OrderResponse
//	@Router		/admin/orders [get]
func (a *AdminHandler) listOrders(w http.ResponseWriter, r *http.Request) {
	var status *domain.OrderStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		parsed, err := domain.ParseOrderStatus(raw)
		if err != nil {
			WriteError(w, err)
			return
		}
		status = &parsed
	}

	orders, err := a.orderUC.ListOrders(r.Context(), status)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderListResponse(orders))
}

// changeOrderStatus
//
//	@Summary		Move an order through its lifecycle
//	@Description	Only forward transitions are allowed; anything else answers 409
//	@Tags			admin
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			id		path		string				true	"Order id"
//	@Param			body	body		changeStatusRequest	true	"Target status"
//	@Success		200		{object}	OrderResponse
//	@Failure		409		{object}	ErrorResponse
//	@Router			/admin/orders/{id}/status [patch]
func (a *AdminHandler) changeOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req changeStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		WriteError(w, err)
		return
	}

	next, err := domain.ParseOrderStatus(req.Status)
	if err != nil {
		WriteError(w, err)
		return
	}

	order, err := a.orderUC.ChangeStatus(r.Context(), chi.URLParam(r, "id"), next)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	a.logger.Infof("Order %s moved to %s by %s", order.ID, next, adminEmail(r.Context()))
	WriteSuccess(w, http.StatusOK, NewOrderResponse(order))
}

// listAllReviews
//
//	@Summary	List reviews for moderation
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{array}	ReviewResponse
//	@Router		/admin/reviews [get]
func (a *AdminHandler) listAllReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := a.reviewUC.ListReviews(r.Context())
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewReviewListResponse(reviews))
}

// salesSummary
//
//	@Summary	Sales analytics over a trailing window
//	@Tags		admin
//	@Produce	json
//	@Security	BearerAuth
//	@Param		days	query		int	false	"Window size in days (default 30)"
//	@Success	200		{object}	SalesSummaryResponse
//	@Router		/admin/analytics/sales [get]
func (a *AdminHandler) salesSummary(w http.ResponseWriter, r *http.Request) {
	days := 30
	if raw := r.URL.Query().Get("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 || parsed > 365 {
			WriteError(w, e.ErrStatusBadRequest)
			return
		}
		days = parsed
	}

	since := time.Now().UTC().AddDate(0, 0, -days)
	summary, err := a.orderUC.SalesSummary(r.Context(), since)
	if err != nil {
		a.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewSalesSummaryResponse(summary))
}

func (a *AdminHandler) parseProductForm(r *http.Request) (*usecase.SaveProductReq, error) {
	if err := ensureMultipartForm(r, 32<<20); err != nil {
		return nil, err
	}

	form := r.MultipartForm

	name := formValue(form, "name")
	category := formValue(form, "category")
	if name == "" || category == "" {
		return nil, e.ErrMissingFields
	}

	priceUGX, err := parsePrice(formValue(form, "price_ugx"))
	if err != nil {
		return nil, err
	}
	priceKES, err := parsePrice(formValue(form, "price_kes"))
	if err != nil {
		return nil, err
	}

	stock := 0
	if raw := formValue(form, "stock"); raw != "" {
		stock, err = strconv.Atoi(raw)
		if err != nil || stock < 0 {
			return nil, e.ErrStatusBadRequest
		}
	}

	featured, _ := strconv.ParseBool(formValue(form, "featured"))

	image, err := parseImage(form.File["image"])
	if err != nil {
		return nil, err
	}

	return &usecase.SaveProductReq{
		Name:        name,
		Description: formValue(form, "description"),
		Category:    category,
		Origin:      formValue(form, "origin"),
		PriceUGX:    priceUGX,
		PriceKES:    priceKES,
		Stock:       stock,
		Featured:    featured,
		ImageURL:    formValue(form, "image_url"),
		Image:       image,
	}, nil
}
