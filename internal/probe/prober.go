package probe

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/hamed0406/ewsmon/internal/config"
	"github.com/hamed0406/ewsmon/internal/domain"
	"github.com/hamed0406/ewsmon/internal/payload"
)

// Outcome is the structured result of one probe. Probe never returns an
// error: every failure mode is folded into the outcome.
type Outcome struct {
	OK         bool
	HTTPStatus *int
	DurationMS *float64
	Error      string
}

// bodySnipLimit bounds how much of an upstream error body is kept for
// diagnostics.
const bodySnipLimit = 800

// CredentialsFunc selects the credential set for an environment.
type CredentialsFunc func(domain.Environment) config.Credentials

type Prober struct {
	client *http.Client
	creds  CredentialsFunc
}

func New(timeout time.Duration, creds CredentialsFunc) *Prober {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Prober{
		client: &http.Client{Timeout: timeout},
		creds:  creds,
	}
}

// Probe performs one timed POST against the target. Success is strictly
// HTTP 200; anything else, including transport failures, is a failed
// probe with a descriptive error.
func (p *Prober) Probe(ctx context.Context, t domain.Target) Outcome {
	env := t.Environment()
	c := p.creds(env)

	req, ok := payload.Build(t, c)
	if !ok {
		return Outcome{Error: fmt.Sprintf("payload not implemented for api_type=%s", t.APIType)}
	}
	if c.Key == "" || c.Password == "" {
		// Skip the network call entirely rather than burn a noisy 401.
		return Outcome{Error: fmt.Sprintf("missing credentials for %s", env)}
	}

	start := time.Now()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, t.URL, strings.NewReader(req.Body))
	if err != nil {
		ms := sinceMS(start)
		return Outcome{DurationMS: &ms, Error: fmt.Sprintf("[%s] bad request: %v", env, err)}
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	httpReq.SetBasicAuth(c.Key, c.Password)

	resp, err := p.client.Do(httpReq)
	ms := sinceMS(start)
	if err != nil {
		return Outcome{DurationMS: &ms, Error: fmt.Sprintf("[%s] %s: %v", env, classify(err), err)}
	}
	defer resp.Body.Close()

	status := resp.StatusCode
	if status == http.StatusOK {
		return Outcome{OK: true, HTTPStatus: &status, DurationMS: &ms}
	}

	snip := readSnip(resp.Body)
	ct := resp.Header.Get("Content-Type")
	return Outcome{
		HTTPStatus: &status,
		DurationMS: &ms,
		Error:      fmt.Sprintf("[%s] http %d ct=%s body_snip=%s", env, status, ct, snip),
	}
}

func sinceMS(start time.Time) float64 {
	return float64(time.Since(start)) / float64(time.Millisecond)
}

// classify buckets a transport error for the stored error text.
func classify(err error) string {
	var certErr *tls.CertificateVerificationError
	if errors.As(err, &certErr) {
		return "tls"
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return "timeout"
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return "timeout"
	}
	var opErr *net.OpError
	if errors.As(err, &opErr) {
		return "connection"
	}
	return "transport"
}

// readSnip reads a bounded prefix of an error response body, flattening
// newlines so the snippet stays one log/db field.
func readSnip(r io.Reader) string {
	b, _ := io.ReadAll(io.LimitReader(r, bodySnipLimit))
	s := strings.ReplaceAll(string(b), "\r", "")
	return strings.ReplaceAll(s, "\n", `\n`)
}
