package webhook

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/dailybudgetmart/backend/internal/models"
	"github.com/dailybudgetmart/backend/internal/repo"
)

func newTestRepo(t *testing.T) *repo.GormRepo {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.Tenant{}, &models.Webhook{}))
	return &repo.GormRepo{DB: db}
}

func seedHook(t *testing.T, r *repo.GormRepo, tenantID, url string, active bool) {
	t.Helper()
	require.NoError(t, r.CreateWebhook(context.Background(), &models.Webhook{
		TenantID: tenantID,
		URL:      url,
		Events:   []string{"order.created"},
		Active:   active,
	}))
}

func TestDispatcher_DeliversToActiveHooksOnly(t *testing.T) {
	r := newTestRepo(t)
	tenant := &models.Tenant{Name: "Acme"}
	require.NoError(t, r.CreateTenant(context.Background(), tenant))

	var mu sync.Mutex
	var received []map[string]interface{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		body, _ := io.ReadAll(req.Body)
		var payload map[string]interface{}
		require.NoError(t, json.Unmarshal(body, &payload))
		mu.Lock()
		received = append(received, payload)
		mu.Unlock()
	}))
	defer srv.Close()

	inactive := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		t.Error("inactive webhook must not be called")
	}))
	defer inactive.Close()

	seedHook(t, r, tenant.ID, srv.URL, true)
	seedHook(t, r, tenant.ID, inactive.URL, false)

	d := NewDispatcher(r)
	d.Notify(tenant.ID, "order.created", map[string]interface{}{
		"order_id": "abc",
		"total":    42.5,
		"coupon":   "SAVE10",
	})
	d.Flush()

	mu.Lock()
	defer mu.Unlock()
	require.Len(t, received, 1)
	assert.Equal(t, "order.created", received[0]["event"])

	data, ok := received[0]["data"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "abc", data["order_id"])
	assert.Equal(t, 42.5, data["total"])
	assert.Equal(t, "SAVE10", data["coupon"])
}

func TestDispatcher_SwallowsDeliveryFailures(t *testing.T) {
	r := newTestRepo(t)
	tenant := &models.Tenant{Name: "Acme"}
	require.NoError(t, r.CreateTenant(context.Background(), tenant))

	var mu sync.Mutex
	delivered := 0
	ok := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		mu.Lock()
		delivered++
		mu.Unlock()
	}))
	defer ok.Close()

	failing := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	// Unreachable endpoint: the server is already closed.
	dead := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {}))
	dead.Close()

	seedHook(t, r, tenant.ID, failing.URL, true)
	seedHook(t, r, tenant.ID, dead.URL, true)
	seedHook(t, r, tenant.ID, ok.URL, true)
	defer failing.Close()

	d := NewDispatcher(r)
	d.Notify(tenant.ID, "order.created", map[string]interface{}{"order_id": "abc"})
	d.Flush()

	// Failures elsewhere never block the healthy endpoint.
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, delivered)
}

func TestDispatcher_NilReceiverIsNoop(t *testing.T) {
	var d *Dispatcher
	d.Notify("tenant", "order.created", nil)
	d.Flush()
}
