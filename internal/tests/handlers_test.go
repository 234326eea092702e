package tests

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	httpapi "loycal/internal/api/http"
	"loycal/internal/domain"
	"loycal/internal/mocks"
	"loycal/internal/reporting"
)

func newTestServer(t *testing.T, orders *mocks.OrderServiceInterface, catalog *mocks.CatalogServiceInterface, reports *mocks.ReportStore) *httptest.Server {
	t.Helper()
	handler := httpapi.NewHandler(orders, catalog, reports)
	server := httptest.NewServer(httpapi.NewRouter(handler, ""))
	t.Cleanup(server.Close)
	return server
}

func TestCreateOrderEndpoint(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))

	created := &domain.Order{
		ID:           "o1",
		RestaurantID: "r1",
		Total:        32.00,
		Status:       domain.OrderPending,
	}
	orders.On("Create", mock.Anything, mock.Anything).Return(created, nil).Once()

	body := []byte(`{"restaurant_id":"r1","items":[{"menu_item_id":"mi-burger","quantity":2}]}`)
	resp, err := http.Post(server.URL+"/pos/orders", "application/json", bytes.NewReader(body))
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)

	var got domain.Order
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "o1", got.ID)
	assert.Equal(t, 32.00, got.Total)
}

func TestCreateOrderEndpoint_BadRequests(t *testing.T) {
	t.Run("malformed_json", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))

		resp, err := http.Post(server.URL+"/pos/orders", "application/json", bytes.NewReader([]byte("{not json")))
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown_restaurant", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))

		orders.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.ErrRestaurantNotFound).Once()

		resp, err := http.Post(server.URL+"/pos/orders", "application/json",
			bytes.NewReader([]byte(`{"restaurant_id":"ghost","items":[{"menu_item_id":"x","quantity":1}]}`)))
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("invalid_items", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))

		orders.On("Create", mock.Anything, mock.Anything).
			Return(nil, domain.ErrInvalidOrderItems).Once()

		resp, err := http.Post(server.URL+"/pos/orders", "application/json",
			bytes.NewReader([]byte(`{"restaurant_id":"r1","items":[]}`)))
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPayOrderEndpoint(t *testing.T) {
	doPay := func(t *testing.T, orders *mocks.OrderServiceInterface, body string) *http.Response {
		server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))
		req, err := http.NewRequest(http.MethodPut, server.URL+"/pos/orders/o1/pay", bytes.NewReader([]byte(body)))
		assert.NoError(t, err)
		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		return resp
	}

	t.Run("success", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		orders.On("Pay", mock.Anything, "o1", "card").
			Return(&domain.Order{ID: "o1", Status: domain.OrderPaid, PaymentMethod: "card"}, nil).Once()

		resp := doPay(t, orders, `{"payment_method":"card"}`)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got domain.Order
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.Equal(t, domain.OrderPaid, got.Status)
	})

	t.Run("missing_payment_method", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		resp := doPay(t, orders, `{}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		orders.AssertNotCalled(t, "Pay")
	})

	t.Run("already_paid", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		orders.On("Pay", mock.Anything, "o1", "card").Return(nil, domain.ErrAlreadyPaid).Once()

		resp := doPay(t, orders, `{"payment_method":"card"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("order_not_found", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		orders.On("Pay", mock.Anything, "o1", "card").Return(nil, domain.ErrOrderNotFound).Once()

		resp := doPay(t, orders, `{"payment_method":"card"}`)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateOrderStatusEndpoint(t *testing.T) {
	t.Run("cancel", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))

		orders.On("Transition", mock.Anything, "o1", domain.OrderCancelled).
			Return(&domain.Order{ID: "o1", Status: domain.OrderCancelled}, nil).Once()

		req, _ := http.NewRequest(http.MethodPut, server.URL+"/pos/orders/o1/status",
			bytes.NewReader([]byte(`{"status":"cancelled"}`)))
		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("illegal_target", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))

		orders.On("Transition", mock.Anything, "o1", domain.OrderPending).
			Return(nil, domain.ErrIllegalTransition).Once()

		req, _ := http.NewRequest(http.MethodPut, server.URL+"/pos/orders/o1/status",
			bytes.NewReader([]byte(`{"status":"pending"}`)))
		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestDeleteOrderEndpoint(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))

		orders.On("Delete", mock.Anything, "o1").Return(nil).Once()

		req, _ := http.NewRequest(http.MethodDelete, server.URL+"/pos/orders/o1", nil)
		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, http.StatusOK, resp.StatusCode)
		var got map[string]bool
		assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
		assert.True(t, got["success"])
	})

	t.Run("paid_order_is_immutable", func(t *testing.T) {
		orders := mocks.NewOrderServiceInterface(t)
		server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))

		orders.On("Delete", mock.Anything, "o1").Return(domain.ErrPaidOrderImmutable).Once()

		req, _ := http.NewRequest(http.MethodDelete, server.URL+"/pos/orders/o1", nil)
		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestListAndDetailRoutesDoNotCollide(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))

	orders.On("List", mock.Anything, "r1").Return([]domain.Order(nil), nil).Once()
	orders.On("Get", mock.Anything, "o1").
		Return(&domain.Order{ID: "o1", RestaurantID: "r1"}, nil).Once()

	resp, err := http.Get(server.URL + "/pos/orders/r1")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	// nil slices render as an empty array, not null
	var listed []domain.Order
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&listed))
	assert.NotNil(t, listed)
	assert.Empty(t, listed)

	resp, err = http.Get(server.URL + "/pos/orders/detail/o1")
	assert.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestReceiptEndpoint(t *testing.T) {
	orders := mocks.NewOrderServiceInterface(t)
	server := newTestServer(t, orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))

	orders.On("Receipt", mock.Anything, "o1").Return([]byte("png-bytes"), nil).Once()

	resp, err := http.Get(server.URL + "/pos/orders/o1/receipt")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/png", resp.Header.Get("Content-Type"))
}

func TestAnalyticsSummaryEndpoint(t *testing.T) {
	reports := mocks.NewReportStore(t)
	server := newTestServer(t, mocks.NewOrderServiceInterface(t), mocks.NewCatalogServiceInterface(t), reports)

	reports.On("Summary", "r1").Return(&reporting.Summary{
		RestaurantID: "r1",
		Revenue:      128.50,
		OrdersPaid:   4,
	}, nil).Once()

	resp, err := http.Get(server.URL + "/pos/analytics/r1/summary")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got reporting.Summary
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 128.50, got.Revenue)
	assert.Equal(t, 4, got.OrdersPaid)
}

func TestMembershipEndpoint(t *testing.T) {
	catalog := mocks.NewCatalogServiceInterface(t)
	server := newTestServer(t, mocks.NewOrderServiceInterface(t), catalog, mocks.NewReportStore(t))

	catalog.On("GetMembership", mock.Anything, "u1", "r1").
		Return(&domain.Membership{UserID: "u1", RestaurantID: "r1", Points: 42}, nil).Once()

	resp, err := http.Get(server.URL + "/pos/loyalty/r1/members/u1")
	assert.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var got domain.Membership
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, 42, got.Points)
}

func TestBearerAuth(t *testing.T) {
	const secret = "test-secret"

	orders := mocks.NewOrderServiceInterface(t)
	handler := httpapi.NewHandler(orders, mocks.NewCatalogServiceInterface(t), mocks.NewReportStore(t))
	server := httptest.NewServer(httpapi.NewRouter(handler, secret))
	defer server.Close()

	t.Run("health_is_open", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/health")
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("missing_token_is_rejected", func(t *testing.T) {
		resp, err := http.Get(server.URL + "/pos/orders/r1")
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("garbage_token_is_rejected", func(t *testing.T) {
		req, _ := http.NewRequest(http.MethodGet, server.URL+"/pos/orders/r1", nil)
		req.Header.Set("Authorization", "Bearer not-a-jwt")
		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})

	t.Run("valid_token_passes", func(t *testing.T) {
		orders.On("List", mock.Anything, "r1").Return([]domain.Order{}, nil).Once()

		token, err := httpapi.MintToken(secret, "staff-1", time.Hour)
		assert.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, server.URL+"/pos/orders/r1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("token_signed_with_wrong_secret_is_rejected", func(t *testing.T) {
		token, err := httpapi.MintToken("other-secret", "staff-1", time.Hour)
		assert.NoError(t, err)

		req, _ := http.NewRequest(http.MethodGet, server.URL+"/pos/orders/r1", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		assert.NoError(t, err)
		defer resp.Body.Close()
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	})
}
