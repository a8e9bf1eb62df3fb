package webhook

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/dailybudgetmart/backend/internal/repo"
	"github.com/dailybudgetmart/backend/pkg/logging"
)

const deliverTimeout = 2 * time.Second

// Dispatcher delivers domain events to the active webhooks of a tenant.
// Delivery is strictly best-effort: no retry, no ordering guarantee, and
// every failure (network, timeout, non-2xx) is swallowed after a log line.
type Dispatcher struct {
	Repo   *repo.GormRepo
	Client *http.Client

	wg sync.WaitGroup
}

func NewDispatcher(r *repo.GormRepo) *Dispatcher {
	return &Dispatcher{
		Repo:   r,
		Client: &http.Client{Timeout: deliverTimeout},
	}
}

// Notify fans the event out off the caller's path; the HTTP response that
// triggered it never waits on delivery. Safe to call on a nil Dispatcher.
func (d *Dispatcher) Notify(tenantID, event string, payload map[string]interface{}) {
	if d == nil {
		return
	}
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()
		d.dispatch(context.Background(), tenantID, event, payload)
	}()
}

// Flush blocks until in-flight deliveries finish. Used on shutdown and in
// tests; normal request handling never calls it.
func (d *Dispatcher) Flush() {
	if d == nil {
		return
	}
	d.wg.Wait()
}

func (d *Dispatcher) dispatch(ctx context.Context, tenantID, event string, payload map[string]interface{}) {
	l := logging.FromContext(ctx).With("svc", "webhook.dispatch", "tenant_id", tenantID, "event", event)

	hooks, err := d.Repo.ActiveWebhooks(ctx, tenantID)
	if err != nil {
		l.Warn("webhook lookup failed", "error", err)
		return
	}
	if len(hooks) == 0 {
		return
	}

	body, err := json.Marshal(map[string]interface{}{
		"event": event,
		"data":  payload,
	})
	if err != nil {
		l.Warn("webhook payload marshal failed", "error", err)
		return
	}

	for _, hook := range hooks {
		if err := d.deliver(ctx, hook.URL, body); err != nil {
			l.Warn("webhook delivery failed", "url", hook.URL, "error", err)
		}
	}
}

func (d *Dispatcher) deliver(ctx context.Context, url string, body []byte) error {
	ctx, cancel := context.WithTimeout(ctx, deliverTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := d.Client.Do(req)
	if err != nil {
		return err
	}
	resp.Body.Close()
	return nil
}
