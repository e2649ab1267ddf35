package e

import "fmt"

var (
	// Internal transaction errors
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// 400 Bad Request
	ErrStatusBadRequest     = fmt.Errorf("bad request")
	ErrExpectedMultipart    = fmt.Errorf("expected multipart/form-data")
	ErrMissingFields        = fmt.Errorf("missing required fields")
	ErrInvalidPrice         = fmt.Errorf("invalid price")
	ErrUnsupportedMediaType = fmt.Errorf("unsupported media type")
	ErrFileTooLarge         = fmt.Errorf("file too large")
	ErrInvalidCurrency      = fmt.Errorf("invalid currency")
	ErrCheckoutValidation   = fmt.Errorf("invalid checkout details")
	ErrReviewValidation     = fmt.Errorf("name, email and message are required")
	ErrEmptyCart            = fmt.Errorf("cart is empty")

	// 401 Unauthorized
	ErrInvalidCredentials = fmt.Errorf("invalid email or password")
	ErrInvalidToken       = fmt.Errorf("invalid or missing token")

	// 404 Not Found
	ErrProductNotFound = fmt.Errorf("product not found")
	ErrOrderNotFound   = fmt.Errorf("order not found")

	// 409 Conflict
	ErrIllegalTransition = fmt.Errorf("illegal order status transition")

	// 502 Bad Gateway
	ErrPaymentGateway = fmt.Errorf("payment gateway failure")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap wraps err with a message prefix.
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
