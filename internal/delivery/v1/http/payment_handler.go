package http

import (
	"crypto/subtle"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/momozvault/go-backend/internal/usecase"
	"github.com/momozvault/go-backend/pkg/e"
	"github.com/momozvault/go-backend/pkg/logger"
)

// PaymentHandler drives the Flutterwave handoff: link creation, the
// webhook, and redirect-side verification.
type PaymentHandler struct {
	paymentUC     usecase.PaymentUC
	webhookSecret string
	logger        logger.Logger
}

func NewPaymentHandler(paymentUC usecase.PaymentUC, webhookSecret string, logger logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUC:     paymentUC,
		webhookSecret: webhookSecret,
		logger:        logger,
	}
}

type paymentLinkResponse struct {
	TxRef string `json:"tx_ref"`
	Link  string `json:"link"`
}

type webhookEvent struct {
	Event string `json:"event"`
	Data  struct {
		ID    int64  `json:"id"`
		TxRef string `json:"tx_ref"`
	} `json:"data"`
}

// initializePayment
//
//	@Summary		Create a hosted payment link
//	@Description	Only pending orders can enter payment
//	@Tags			payments
//	@Produce		json
//	@Param			id	path		string	true	"Order id"
//	@Success		200	{object}	paymentLinkResponse
//	@Failure		409	{object}	ErrorResponse
//	@Failure		502	{object}	ErrorResponse
//	@Router			/orders/{id}/pay [post]
func (p *PaymentHandler) initializePayment(w http.ResponseWriter, r *http.Request) {
	link, err := p.paymentUC.InitializePayment(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, paymentLinkResponse{TxRef: link.TxRef, Link: link.Link})
}

// webhook
//
//	@Summary		Flutterwave webhook
//	@Description	Authenticated by the verif-hash header; completed charges are re-verified against the API before the order is marked paid
//	@Tags			payments
//	@Accept			json
//	@Success		200
//	@Failure		401	{object}	ErrorResponse
//	@Router			/payments/webhook [post]
func (p *PaymentHandler) webhook(w http.ResponseWriter, r *http.Request) {
	hash := r.Header.Get("verif-hash")
	if subtle.ConstantTimeCompare([]byte(hash), []byte(p.webhookSecret)) != 1 {
		p.logger.Warnf("Webhook with bad verif-hash rejected")
		WriteError(w, e.ErrInvalidToken)
		return
	}

	var event webhookEvent
	if err := decodeJSON(r, &event); err != nil {
		WriteError(w, err)
		return
	}

	if event.Event != "charge.completed" {
		// Not an event we act on; acknowledge so Flutterwave stops retrying.
		w.WriteHeader(http.StatusOK)
		return
	}

	transactionID := strconv.FormatInt(event.Data.ID, 10)
	if _, err := p.paymentUC.ConfirmPayment(r.Context(), event.Data.TxRef, transactionID); err != nil {
		p.logger.Warnf("Webhook confirmation failed. tx_ref: %s: %s", event.Data.TxRef, err.Error())
		WriteError(w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// verifyPayment
//
//	@Summary		Verify a payment after redirect
//	@Description	Called by the storefront when the customer returns from the hosted payment page
//	@Tags			payments
//	@Produce		json
//	@Param			tx_ref			query		string	true	"Transaction reference"
//	@Param			transaction_id	query		string	true	"Flutterwave transaction id"
//	@Success		200				{object}	OrderResponse
//	@Failure		502				{object}	ErrorResponse
//	@Router			/payments/verify [get]
func (p *PaymentHandler) verifyPayment(w http.ResponseWriter, r *http.Request) {
	txRef := r.URL.Query().Get("tx_ref")
	transactionID := r.URL.Query().Get("transaction_id")
	if txRef == "" || transactionID == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	order, err := p.paymentUC.ConfirmPayment(r.Context(), txRef, transactionID)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, NewOrderResponse(order))
}
