package http

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/momozvault/go-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePrice(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  int64
		ok    bool
	}{
		{name: "plain amount", input: "85000", want: 85_000, ok: true},
		{name: "trailing zero decimals", input: "85000.00", want: 85_000, ok: true},
		{name: "empty", input: "", ok: false},
		{name: "whitespace", input: "   ", ok: false},
		{name: "zero", input: "0", ok: false},
		{name: "negative", input: "-500", ok: false},
		{name: "fractional", input: "85000.50", ok: false},
		{name: "not a number", input: "eighty", ok: false},
		{name: "absurd", input: "9000000000", ok: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePrice(tc.input)
			if !tc.ok {
				assert.ErrorIs(t, err, e.ErrInvalidPrice)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestToHTTPResponse(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{e.ErrStatusBadRequest, http.StatusBadRequest},
		{e.ErrCheckoutValidation, http.StatusBadRequest},
		{e.ErrEmptyCart, http.StatusBadRequest},
		{e.ErrInvalidCurrency, http.StatusBadRequest},
		{e.ErrInvalidCredentials, http.StatusUnauthorized},
		{e.ErrInvalidToken, http.StatusUnauthorized},
		{e.ErrProductNotFound, http.StatusNotFound},
		{e.ErrOrderNotFound, http.StatusNotFound},
		{e.ErrIllegalTransition, http.StatusConflict},
		{e.ErrPaymentGateway, http.StatusBadGateway},
		{fmt.Errorf("pool exhausted"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		code, msg := ToHTTPResponse(tc.err)
		assert.Equal(t, tc.code, code, msg)
		assert.NotEmpty(t, msg)
	}
}

func TestToHTTPResponse_WrappedError(t *testing.T) {
	wrapped := e.Wrap("OrderRepo.GetByID", e.ErrOrderNotFound)

	code, msg := ToHTTPResponse(wrapped)

	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, e.ErrOrderNotFound.Error(), msg)
}

func TestCartToken(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	r.Header.Set("X-Cart-Token", "  visitor-42  ")

	token, err := cartToken(r)

	require.NoError(t, err)
	assert.Equal(t, "visitor-42", token)
}

func TestCartToken_Missing(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)

	_, err := cartToken(r)

	assert.ErrorIs(t, err, e.ErrStatusBadRequest)
}

func uploadFileHeader(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	part, err := mw.CreateFormFile("image", name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	r := httptest.NewRequest(http.MethodPost, "/admin/products", &body)
	r.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, r.ParseMultipartForm(32<<20))

	return r.MultipartForm.File["image"][0]
}

func TestReadFile(t *testing.T) {
	content := []byte("GIF89a perfume bottle")
	fh := uploadFileHeader(t, "bottle.gif", content)

	data, mimeType, err := readFile(fh, 1<<10)

	require.NoError(t, err)
	assert.Equal(t, content, data)
	assert.Contains(t, mimeType, "image/gif")
}

func TestReadFile_TooLarge(t *testing.T) {
	fh := uploadFileHeader(t, "huge.bin", bytes.Repeat([]byte{0xAB}, 64))

	_, _, err := readFile(fh, 16)

	assert.ErrorIs(t, err, e.ErrFileTooLarge)
}
