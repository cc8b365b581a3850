package directory_test

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"freightline/internal/adapters/out/directory"
	"freightline/internal/core/domain/model/kernel"
	"freightline/internal/core/domain/model/order"
	"freightline/internal/core/ports"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testCredentials() directory.Credentials {
	return directory.Credentials{
		UserID:      uuid.NewString(),
		AccountType: "carrier",
	}
}

func orderJSON(id string, status string) map[string]any {
	return map[string]any{
		"id":           id,
		"order_number": "ORD-1A2B3C4D",
		"status":       status,
		"shipper_id":   uuid.NewString(),
		"origin":       "Rotterdam",
		"destination":  "Hamburg",
		"weight":       50,
		"items": []map[string]any{
			{"name": "Pallet", "quantity": 2, "unit_weight": 10},
		},
		"customer": map[string]any{
			"name":  "Ada Fisher",
			"email": "ada@example.com",
			"phone": "+31 10 555 0101",
		},
		"created_at": "2025-03-01T09:00:00Z",
		"updated_at": "2025-03-01T09:00:00Z",
	}
}

func TestClient_ListMine_NormalizesStatusCasing(t *testing.T) {
	id := uuid.NewString()
	creds := testCredentials()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		assert.Equal(t, "carrier", r.URL.Query().Get("role"))
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		assert.Equal(t, "10", r.URL.Query().Get("page_size"))
		assert.Equal(t, creds.UserID, r.Header.Get("X-User-Id"))
		assert.Equal(t, creds.AccountType, r.Header.Get("X-Account-Type"))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"orders": []map[string]any{orderJSON(id, "IN_TRANSIT")},
			"total":  11,
			"page":   2,
			"pages":  2,
		})
	}))
	defer srv.Close()

	client := directory.NewClient(srv.URL, creds, testLogger())

	page, err := client.ListMine(t.Context(), order.RoleCarrier, 2, 10)

	require.NoError(t, err)
	assert.Equal(t, 11, page.Total)
	assert.Equal(t, 2, page.Page)
	assert.Equal(t, 2, page.Pages)
	require.Len(t, page.Items, 1)
	assert.Equal(t, order.InTransit, page.Items[0].Status())
	assert.Equal(t, "ORD-1A2B3C4D", page.Items[0].OrderNumber())
}

func TestClient_GetByID_MapsNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "order not found", "code": "not_found"})
	}))
	defer srv.Close()

	client := directory.NewClient(srv.URL, testCredentials(), testLogger())

	_, err := client.GetByID(t.Context(), kernel.NewUUID())

	require.ErrorIs(t, err, ports.ErrOrderNotFound)
}

func TestClient_Accept_MapsConflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		w.WriteHeader(http.StatusConflict)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "order already taken", "code": "conflict"})
	}))
	defer srv.Close()

	client := directory.NewClient(srv.URL, testCredentials(), testLogger())

	_, err := client.Accept(t.Context(), kernel.NewUUID())

	require.ErrorIs(t, err, ports.ErrOrderAlreadyTaken)
}

func TestClient_UpdateStatus_SendsBodyAndReturnsConfirmed(t *testing.T) {
	id := kernel.NewUUID()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/v1/orders/"+id.String()+"/status", r.URL.Path)

		var body map[string]string
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "cancelled", body["status"])
		assert.Equal(t, "shipment no longer needed", body["reason"])

		payload := orderJSON(id.String(), "cancelled")
		payload["cancellation_reason"] = body["reason"]
		payload["cancelled_at"] = "2025-03-02T12:00:00Z"
		_ = json.NewEncoder(w).Encode(payload)
	}))
	defer srv.Close()

	client := directory.NewClient(srv.URL, testCredentials(), testLogger())

	confirmed, err := client.UpdateStatus(t.Context(), id, order.Cancelled, "shipment no longer needed")

	require.NoError(t, err)
	assert.Equal(t, order.Cancelled, confirmed.Status())
	assert.Equal(t, "shipment no longer needed", confirmed.CancellationReason())
	require.NotNil(t, confirmed.Timeline().CancelledAt)
}

func TestClient_ServerFailureBecomesServiceError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]any{"error": "database gone", "code": "internal"})
	}))
	defer srv.Close()

	client := directory.NewClient(srv.URL, testCredentials(), testLogger())

	_, err := client.ListAvailable(t.Context(), 1, 10)

	var svcErr *directory.ServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, http.StatusInternalServerError, svcErr.StatusCode)
	assert.Equal(t, "internal", svcErr.Code)
	assert.Equal(t, "database gone", svcErr.Message)
}

func TestClient_Create_PostsDraft(t *testing.T) {
	var received map[string]any

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/orders", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(orderJSON(uuid.NewString(), "pending"))
	}))
	defer srv.Close()

	client := directory.NewClient(srv.URL, testCredentials(), testLogger())

	item, err := order.NewItem("Pallet", 2, 10)
	require.NoError(t, err)
	customer, err := order.NewCustomer("Ada Fisher", "ada@example.com", "+31 10 555 0101")
	require.NoError(t, err)

	created, err := client.Create(t.Context(), ports.OrderDraft{
		Origin:      "Rotterdam",
		Destination: "Hamburg",
		Weight:      50,
		Items:       []order.Item{item},
		Customer:    customer,
		Notes:       "fragile",
	})

	require.NoError(t, err)
	assert.Equal(t, order.Pending, created.Status())
	assert.Equal(t, "Rotterdam", received["origin"])
	assert.Equal(t, "fragile", received["notes"])
}
