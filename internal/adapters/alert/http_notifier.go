package alert

import (
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/phishinv/phish-investigator/internal/domain"
)

// HTTPNotifier delivers alert hand-offs as one-way GET requests to the
// external fragment renderer
//
// Delivery is fire-and-forget: each hand-off runs on its own goroutine with
// a bounded client, failures are logged and dropped, and nothing is retried.
type HTTPNotifier struct {
	endpoint string
	client   *http.Client
}

// NewHTTPNotifier creates a notifier targeting the fragment endpoint,
// e.g. "http://127.0.0.1:8001/fragment"
func NewHTTPNotifier(endpoint string) *HTTPNotifier {
	return &HTTPNotifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

// Notify hands off the alert without waiting for the outcome
func (n *HTTPNotifier) Notify(alert domain.Alert) {
	go n.deliver(alert)
}

func (n *HTTPNotifier) deliver(alert domain.Alert) {
	params := url.Values{}
	params.Set("url", alert.URL)
	params.Set("score", strconv.Itoa(alert.Score))
	params.Set("decision", alert.Decision)

	resp, err := n.client.Get(n.endpoint + "?" + params.Encode())
	if err != nil {
		log.Printf("Alert hand-off failed for %s: %v", alert.URL, err)
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		log.Printf("Alert hand-off for %s returned status %d", alert.URL, resp.StatusCode)
	}
}
