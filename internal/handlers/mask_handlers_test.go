package handlers

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDigits(t *testing.T) {
	router := setupRouter(t, nil)

	w := postJSON(t, router, "/v1/sanitize/digits", map[string]string{"value": "(21) 98765-4321"})

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode[MaskResponse](t, w)
	assert.Equal(t, "21987654321", resp.Digits)
	assert.Empty(t, resp.Masked)
}

func TestMaskCPF(t *testing.T) {
	tests := []struct {
		value      string
		wantDigits string
		wantMasked string
	}{
		{"", "", ""},
		{"123", "123", "123"},
		{"1234", "1234", "123.4"},
		{"1234567", "1234567", "123.456.7"},
		{"12345678901", "12345678901", "123.456.789-01"},
		{"123.456.789-0123", "1234567890123", "123.456.789-01"},
	}

	router := setupRouter(t, nil)
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			w := postJSON(t, router, "/v1/mask/cpf", map[string]string{"value": tt.value})

			assert.Equal(t, http.StatusOK, w.Code)
			resp := decode[MaskResponse](t, w)
			assert.Equal(t, tt.wantDigits, resp.Digits)
			assert.Equal(t, tt.wantMasked, resp.Masked)
		})
	}
}

func TestMaskPhone(t *testing.T) {
	tests := []struct {
		value      string
		wantMasked string
	}{
		{"", "("},
		{"21", "(21"},
		{"213333", "(21) 3333"},
		{"2133334444", "(21) 3333-4444"},
		{"21987654321", "(21) 98765-4321"},
	}

	router := setupRouter(t, nil)
	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			w := postJSON(t, router, "/v1/mask/phone", map[string]string{"value": tt.value})

			assert.Equal(t, http.StatusOK, w.Code)
			assert.Equal(t, tt.wantMasked, decode[MaskResponse](t, w).Masked)
		})
	}
}

func TestMask_BadRequest(t *testing.T) {
	router := setupRouter(t, nil)

	for _, path := range []string{"/v1/sanitize/digits", "/v1/mask/cpf", "/v1/mask/phone"} {
		t.Run(path+" missing value", func(t *testing.T) {
			w := postJSON(t, router, path, `{}`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, "campo value é obrigatório", decode[ErrorResponse](t, w).Error)
		})
		t.Run(path+" malformed JSON", func(t *testing.T) {
			w := postJSON(t, router, path, `{"value":`)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}
