package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"oneMinuteShop/business/orders"
	"oneMinuteShop/business/product"
	"oneMinuteShop/business/tenant"
	"oneMinuteShop/internal/middleware"
	"oneMinuteShop/internal/repository/memory"
	"oneMinuteShop/internal/rest"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *echo.Echo {
	t.Helper()

	store := memory.NewStore()
	tenants := memory.NewTenantRepository(store)
	resolver := tenant.NewResolver(tenants, nil)
	guard := tenant.NewGuard(resolver)

	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Use(middleware.Metrics())

	SetupDiagnosticRoutes(e, rest.NewDiagnosticHandler(store, time.Second))
	SetupTenantRoutes(e, rest.NewTenantHandler(tenant.NewTenantService(tenants), time.Second))
	SetupProductRoutes(e, rest.NewProductHandler(
		product.NewProductService(memory.NewProductRepository(store), resolver, guard), time.Second))
	SetOrdersRoutes(e, rest.NewOrdersHandler(
		orders.NewOrdersService(memory.NewOrdersRepository(store), resolver), time.Second))

	return e
}

func call(t *testing.T, e *echo.Echo, method, path, body string) (int, []byte) {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec.Code, rec.Body.Bytes()
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(raw, &v), string(raw))
	return v
}

type record = map[string]any

func TestStorefrontFlow(t *testing.T) {
	e := newTestServer(t)

	code, body := call(t, e, http.MethodPost, "/tenants", `{"subdomain":"acme","name":"Acme"}`)
	require.Equal(t, http.StatusOK, code, string(body))
	acme := decode[record](t, body)
	acmeID := acme["id"].(string)
	assert.NotEmpty(t, acmeID)
	assert.Equal(t, map[string]any{}, acme["payment_details"])
	assert.Equal(t, acme["created_at"], acme["updated_at"])
	assert.True(t, strings.HasSuffix(acme["created_at"].(string), "Z"))

	code, body = call(t, e, http.MethodPost, "/products", `{"tenant_id":"acme","name":"Widget","price":9.99,"inventory":5}`)
	require.Equal(t, http.StatusOK, code, string(body))
	widget := decode[record](t, body)
	widgetID := widget["id"].(string)
	assert.Equal(t, acmeID, widget["tenant_id"])
	assert.Equal(t, true, widget["is_active"])
	assert.Equal(t, []any{}, widget["image_urls"])

	code, body = call(t, e, http.MethodGet, "/products?tenant_id="+acmeID, "")
	require.Equal(t, http.StatusOK, code)
	list := decode[[]record](t, body)
	require.Len(t, list, 1)
	assert.Equal(t, widgetID, list[0]["id"])

	code, body = call(t, e, http.MethodDelete, "/products/"+widgetID+"?tenant_id=acme", "")
	require.Equal(t, http.StatusOK, code, string(body))
	assert.JSONEq(t, `{"deleted":true}`, string(body))

	code, _ = call(t, e, http.MethodDelete, "/products/"+widgetID+"?tenant_id=acme", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestTenantRoutes(t *testing.T) {
	e := newTestServer(t)

	code, _ := call(t, e, http.MethodPost, "/tenants", `{"subdomain":"acme","name":"Acme","payment_details":{"upi_id":"acme@upi"}}`)
	require.Equal(t, http.StatusOK, code)

	code, body := call(t, e, http.MethodPost, "/tenants", `{"subdomain":"acme","name":"Acme Again"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, "subdomain already exists", decode[rest.ResponseError](t, body).Detail)

	code, _ = call(t, e, http.MethodPost, "/tenants", `{"subdomain":"Bad_Sub","name":"Bad"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, e, http.MethodPost, "/tenants", `{"subdomain":"nameless"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = call(t, e, http.MethodGet, "/tenants/by-subdomain/acme", "")
	require.Equal(t, http.StatusOK, code)
	got := decode[record](t, body)
	assert.Equal(t, "acme@upi", got["payment_details"].(map[string]any)["upi_id"])

	code, _ = call(t, e, http.MethodGet, "/tenants/by-subdomain/nope", "")
	assert.Equal(t, http.StatusNotFound, code)
}

func TestProductRoutes_Errors(t *testing.T) {
	e := newTestServer(t)

	call(t, e, http.MethodPost, "/tenants", `{"subdomain":"acme","name":"Acme"}`)
	call(t, e, http.MethodPost, "/tenants", `{"subdomain":"other","name":"Other"}`)

	_, body := call(t, e, http.MethodPost, "/products", `{"tenant_id":"acme","name":"Widget","price":9.99,"inventory":5}`)
	widgetID := decode[record](t, body)["id"].(string)

	tests := []struct {
		name   string
		method string
		path   string
		body   string
		want   int
	}{
		{"create unknown tenant", http.MethodPost, "/products", `{"tenant_id":"ghost","name":"X","price":1,"inventory":1}`, http.StatusBadRequest},
		{"create negative price", http.MethodPost, "/products", `{"tenant_id":"acme","name":"X","price":-1,"inventory":1}`, http.StatusBadRequest},
		{"create missing inventory", http.MethodPost, "/products", `{"tenant_id":"acme","name":"X","price":1}`, http.StatusBadRequest},
		{"list unknown tenant", http.MethodGet, "/products?tenant_id=ghost", "", http.StatusBadRequest},
		{"list without tenant", http.MethodGet, "/products", "", http.StatusBadRequest},
		{"list bad only_active", http.MethodGet, "/products?tenant_id=acme&only_active=maybe", "", http.StatusBadRequest},
		{"update malformed id", http.MethodPut, "/products/not-an-id", `{"tenant_id":"acme","name":"X","price":1,"inventory":1}`, http.StatusBadRequest},
		{"update missing", http.MethodPut, "/products/" + uuid.NewString(), `{"tenant_id":"acme","name":"X","price":1,"inventory":1}`, http.StatusNotFound},
		{"update other tenant", http.MethodPut, "/products/" + widgetID, `{"tenant_id":"other","name":"X","price":1,"inventory":1}`, http.StatusForbidden},
		{"update unknown tenant", http.MethodPut, "/products/" + widgetID, `{"tenant_id":"ghost","name":"X","price":1,"inventory":1}`, http.StatusForbidden},
		{"delete without tenant", http.MethodDelete, "/products/" + widgetID, "", http.StatusBadRequest},
		{"delete other tenant", http.MethodDelete, "/products/" + widgetID + "?tenant_id=other", "", http.StatusForbidden},
		{"delete malformed id", http.MethodDelete, "/products/123?tenant_id=acme", "", http.StatusBadRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, body := call(t, e, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.want, code, string(body))
			assert.NotEmpty(t, decode[rest.ResponseError](t, body).Message)
		})
	}

	code, body := call(t, e, http.MethodPut, "/products/"+widgetID, `{"tenant_id":"acme","name":"Widget v2","price":12,"inventory":3,"is_active":false}`)
	require.Equal(t, http.StatusOK, code, string(body))
	updated := decode[record](t, body)
	assert.Equal(t, "Widget v2", updated["name"])
	assert.Equal(t, false, updated["is_active"])

	code, body = call(t, e, http.MethodGet, "/products?tenant_id=acme", "")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, decode[[]record](t, body))

	code, body = call(t, e, http.MethodGet, "/products?tenant_id=acme&only_active=false", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]record](t, body), 1)
}

func TestOrderRoutes(t *testing.T) {
	e := newTestServer(t)

	call(t, e, http.MethodPost, "/tenants", `{"subdomain":"acme","name":"Acme"}`)

	code, body := call(t, e, http.MethodPost, "/orders", `{
		"tenant_id":"acme",
		"customer_name":"Budi",
		"customer_email":"budi@example.com",
		"shipping_address":{"city":"Bandung"},
		"order_total":20
	}`)
	require.Equal(t, http.StatusOK, code, string(body))
	order := decode[record](t, body)
	orderID := order["id"].(string)
	assert.Equal(t, "pending_payment", order["status"])
	assert.Nil(t, order["transaction_id"])

	code, _ = call(t, e, http.MethodPost, "/orders", `{"tenant_id":"ghost","customer_name":"A","customer_email":"a@b.c","shipping_address":{},"order_total":1}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, body = call(t, e, http.MethodGet, "/orders?tenant_id=acme", "")
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, decode[[]record](t, body), 1)

	code, body = call(t, e, http.MethodPatch, "/orders/"+orderID, `{}`)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, order["updated_at"], decode[record](t, body)["updated_at"])

	code, body = call(t, e, http.MethodPatch, "/orders/"+orderID, `{"status":"shipped","transaction_id":null}`)
	require.Equal(t, http.StatusOK, code)
	patched := decode[record](t, body)
	assert.Equal(t, "shipped", patched["status"])
	assert.Nil(t, patched["transaction_id"])

	code, _ = call(t, e, http.MethodPatch, "/orders/bad-id", `{"status":"shipped"}`)
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = call(t, e, http.MethodPatch, "/orders/"+uuid.NewString(), `{"status":"shipped"}`)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestDiagnosticRoutes(t *testing.T) {
	e := newTestServer(t)

	code, body := call(t, e, http.MethodGet, "/", "")
	require.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"message":"1MinuteShop Backend Running"}`, string(body))

	code, body = call(t, e, http.MethodGet, "/test", "")
	require.Equal(t, http.StatusOK, code)
	assert.Contains(t, string(body), "Connected and Working")
	assert.Contains(t, string(body), "product")

	code, body = call(t, e, http.MethodGet, "/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, code)
	assert.NotEmpty(t, decode[rest.ResponseError](t, body).Message)
}
