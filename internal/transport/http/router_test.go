package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/matchday-api/internal/config"
	"github.com/matchday-api/internal/infrastructure/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopMailer struct{}

func (noopMailer) SendVerificationCode(to, code, userName string) error { return nil }
func (noopMailer) SendPasswordReset(to, resetURL, userName string) error { return nil }

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		AppPort:             "0",
		AppEnv:              "test",
		DataDir:             dir,
		AdminAccessToken:    "test-admin",
		PublicAppURL:        "http://localhost:3000",
		OTPExpiryMinutes:    10,
		ResetTokenExpiryHrs: 1,
		AllowedOrigins:      []string{"*"},
	}
	deps := &Deps{
		Users:  filestore.NewUserStore(dir),
		Codes:  filestore.NewCodeStore(dir),
		Resets: filestore.NewResetStore(dir),
		Orders: filestore.NewOrderStore(dir),
		Mailer: noopMailer{},
	}
	return NewRouter(cfg, deps)
}

func doJSON(t *testing.T, h http.Handler, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	var out map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	}
	return rec.Code, out
}

func TestRegister_ThenDuplicate(t *testing.T) {
	h := newTestRouter(t)

	status, body := doJSON(t, h, http.MethodPost, "/api/auth/register", map[string]string{
		"fullName": "A", "email": "a@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status)
	assert.NotEmpty(t, body["id"])
	assert.Equal(t, "a@x.com", body["email"])

	status, body = doJSON(t, h, http.MethodPost, "/api/auth/register", map[string]string{
		"fullName": "A", "email": "a@x.com", "password": "secret1",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Contains(t, body["message"], "already exists")
}

func TestRegister_Validation(t *testing.T) {
	h := newTestRouter(t)

	status, _ := doJSON(t, h, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "a@x.com",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, h, http.MethodPost, "/api/auth/register", map[string]string{
		"email": "a@x.com", "password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestLoginOTPFlow_CodeIsSingleUse(t *testing.T) {
	h := newTestRouter(t)

	status, _ := doJSON(t, h, http.MethodPost, "/api/auth/register", map[string]string{
		"fullName": "Ada", "email": "ada@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status)

	status, _ = doJSON(t, h, http.MethodPost, "/api/auth/login-otp", map[string]string{
		"email": "ada@x.com", "password": "wrong",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body := doJSON(t, h, http.MethodPost, "/api/auth/login-otp", map[string]string{
		"email": "ada@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["requiresOtp"])
	code, _ := body["code"].(string)
	require.Len(t, code, 6)

	status, body = doJSON(t, h, http.MethodPost, "/api/auth/verify-login-otp", map[string]string{
		"email": "ada@x.com", "code": code,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["verified"])
	assert.Equal(t, "ada@x.com", body["email"])

	// Same code again: already consumed.
	status, _ = doJSON(t, h, http.MethodPost, "/api/auth/verify-login-otp", map[string]string{
		"email": "ada@x.com", "code": code,
	})
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestForgotAndResetPasswordFlow(t *testing.T) {
	h := newTestRouter(t)

	// Unknown account: generic message, no token leaked.
	status, body := doJSON(t, h, http.MethodPost, "/api/auth/forgot-password", map[string]string{
		"email": "ghost@x.com",
	})
	require.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, body["message"])
	_, hasToken := body["token"]
	assert.False(t, hasToken)

	status, _ = doJSON(t, h, http.MethodPost, "/api/auth/register", map[string]string{
		"fullName": "Ada", "email": "ada@x.com", "password": "oldpass1",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body = doJSON(t, h, http.MethodPost, "/api/auth/forgot-password", map[string]string{
		"email": "ada@x.com",
	})
	require.Equal(t, http.StatusOK, status)
	token, _ := body["token"].(string)
	require.NotEmpty(t, token)

	status, _ = doJSON(t, h, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"token": "bogus", "password": "newpass1",
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, h, http.MethodPost, "/api/auth/reset-password", map[string]string{
		"token": token, "password": "newpass1",
	})
	require.Equal(t, http.StatusOK, status)

	// Old password no longer works, the new one does.
	status, _ = doJSON(t, h, http.MethodPost, "/api/auth/login-otp", map[string]string{
		"email": "ada@x.com", "password": "oldpass1",
	})
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, h, http.MethodPost, "/api/auth/login-otp", map[string]string{
		"email": "ada@x.com", "password": "newpass1",
	})
	assert.Equal(t, http.StatusOK, status)
}

func TestSendVerification_EchoesCodeOutsideProduction(t *testing.T) {
	h := newTestRouter(t)

	status, _ := doJSON(t, h, http.MethodPost, "/api/auth/send-verification", map[string]string{
		"email": "ghost@x.com",
	})
	assert.Equal(t, http.StatusNotFound, status)

	status, _ = doJSON(t, h, http.MethodPost, "/api/auth/register", map[string]string{
		"fullName": "Ada", "email": "ada@x.com", "password": "secret1",
	})
	require.Equal(t, http.StatusCreated, status)

	status, body := doJSON(t, h, http.MethodPost, "/api/auth/send-verification", map[string]string{
		"email": "ada@x.com",
	})
	require.Equal(t, http.StatusOK, status)
	code, _ := body["code"].(string)
	require.Len(t, code, 6)

	status, body = doJSON(t, h, http.MethodPost, "/api/auth/verify-code", map[string]string{
		"email": "ada@x.com", "code": code,
	})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["verified"])
}

func TestOrders_PlaceAndAdminList(t *testing.T) {
	h := newTestRouter(t)

	status, _ := doJSON(t, h, http.MethodPost, "/api/orders", map[string]interface{}{
		"user": map[string]string{"email": "buyer@x.com"},
	})
	assert.Equal(t, http.StatusBadRequest, status)

	payload := map[string]interface{}{
		"user": map[string]string{"id": "u1", "fullName": "Buyer", "email": "buyer@x.com"},
		"items": []map[string]interface{}{
			{"id": "kit-aurora-home", "name": "Aurora FC Home", "size": "M", "price": 89.99, "quantity": 1},
		},
		"totals":   map[string]float64{"subtotal": 89.99, "shipping": 5, "total": 94.99},
		"shipping": map[string]string{"fullName": "Buyer", "email": "buyer@x.com", "city": "Lisbon", "country": "PT", "paymentMethod": "card"},
		"placedAt": "2026-09-01T10:00:00Z",
	}
	status, body := doJSON(t, h, http.MethodPost, "/api/orders", payload)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["ok"])
	orderID, _ := body["orderId"].(string)
	require.NotEmpty(t, orderID)
	assert.Equal(t, "local", body["source"])
	assert.Equal(t, "/api/orders?token=test-admin", body["adminReviewUrl"])
	_, hasSheetURL := body["sheetUrl"]
	assert.False(t, hasSheetURL)

	status, _ = doJSON(t, h, http.MethodGet, "/api/orders", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = doJSON(t, h, http.MethodGet, "/api/orders?token=wrong", nil)
	assert.Equal(t, http.StatusUnauthorized, status)

	status, body = doJSON(t, h, http.MethodGet, "/api/orders?token=test-admin", nil)
	require.Equal(t, http.StatusOK, status)
	orders, _ := body["orders"].([]interface{})
	require.Len(t, orders, 1)
	first, _ := orders[0].(map[string]interface{})
	assert.Equal(t, orderID, first["id"])
}

func TestProducts_ListAndGet(t *testing.T) {
	h := newTestRouter(t)

	status, body := doJSON(t, h, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, status)
	products, _ := body["products"].([]interface{})
	require.NotEmpty(t, products)

	first, _ := products[0].(map[string]interface{})
	id, _ := first["id"].(string)
	require.NotEmpty(t, id)

	status, body = doJSON(t, h, http.MethodGet, "/api/products/"+id, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, id, body["id"])

	status, _ = doJSON(t, h, http.MethodGet, "/api/products/no-such-kit", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestProductImage_NotConfigured(t *testing.T) {
	h := newTestRouter(t)

	status, body := doJSON(t, h, http.MethodGet, "/api/products", nil)
	require.Equal(t, http.StatusOK, status)
	products, _ := body["products"].([]interface{})
	first, _ := products[0].(map[string]interface{})
	id, _ := first["id"].(string)

	status, _ = doJSON(t, h, http.MethodGet, "/api/products/"+id+"/image", nil)
	assert.Equal(t, http.StatusNotFound, status)

	req := httptest.NewRequest(http.MethodPost, "/api/products/"+id+"/image?token=test-admin", bytes.NewReader([]byte("png-bytes")))
	req.Header.Set("Content-Type", "image/png")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthCheck(t *testing.T) {
	h := newTestRouter(t)

	status, body := doJSON(t, h, http.MethodGet, "/api/health-check/ping", nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "pong", body["message"])
	assert.Equal(t, "local", body["orders"])

	status, _ = doJSON(t, h, http.MethodGet, "/api/health-check/nope", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}
