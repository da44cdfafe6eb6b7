// Package testkit provides test doubles for stockpilot's outgoing HTTP
// calls: a route-matching http.RoundTripper that replaces the network with
// canned JSON responses.
//
//	mt := testkit.NewMockTransport()
//	mt.Stub("GET", "/api/v1/products", 200, []models.Product{...})
//	http.DefaultClient.Transport = mt
//	defer http.ResetTransport()
package testkit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
)

// MockTransport implements http.RoundTripper. It matches outgoing requests
// against registered stubs and returns synthetic responses instead of making
// real network calls.
type MockTransport struct {
	mu    sync.Mutex
	stubs []*stub

	// FailUnmatched makes unmatched requests return an error instead of 404.
	FailUnmatched bool
}

type stub struct {
	method    string
	path      string // matched against URL path, prefix match
	status    int
	body      []byte
	err       error
	callCount int
}

// NewMockTransport returns an empty transport; register routes with Stub.
func NewMockTransport() *MockTransport {
	return &MockTransport{}
}

// Stub registers a canned response. body is marshalled to JSON; pass nil for
// an empty body, or a []byte / string to send raw bytes.
func (mt *MockTransport) Stub(method, path string, status int, body interface{}) *MockTransport {
	raw := marshalBody(body)
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, &stub{method: strings.ToUpper(method), path: path, status: status, body: raw})
	return mt
}

// StubError makes matching requests fail at the transport level, simulating
// a network failure (request never returns from the backend).
func (mt *MockTransport) StubError(method, path string, err error) *MockTransport {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	mt.stubs = append(mt.stubs, &stub{method: strings.ToUpper(method), path: path, err: err})
	return mt
}

// RoundTrip intercepts the outgoing request and returns a synthetic response.
// Stubs are matched in registration order; the first match wins.
func (mt *MockTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	mt.mu.Lock()
	defer mt.mu.Unlock()

	for _, s := range mt.stubs {
		if s.method != req.Method {
			continue
		}
		if !strings.HasPrefix(req.URL.Path, s.path) {
			continue
		}
		s.callCount++
		if s.err != nil {
			return nil, s.err
		}
		header := make(http.Header)
		header.Set("Content-Type", "application/json")
		return &http.Response{
			StatusCode: s.status,
			Status:     fmt.Sprintf("%d %s", s.status, http.StatusText(s.status)),
			Header:     header,
			Body:       io.NopCloser(bytes.NewReader(s.body)),
			Request:    req,
		}, nil
	}

	if mt.FailUnmatched {
		return nil, fmt.Errorf("testkit: unexpected outgoing HTTP call %s %s — no matching stub", req.Method, req.URL)
	}

	return &http.Response{
		StatusCode: http.StatusNotFound,
		Header:     make(http.Header),
		Body:       io.NopCloser(strings.NewReader(`{"detail":"no stub configured"}`)),
		Request:    req,
	}, nil
}

// Calls reports how many times the stub matching method+path was hit.
func (mt *MockTransport) Calls(method, path string) int {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	for _, s := range mt.stubs {
		if s.method == strings.ToUpper(method) && s.path == path {
			return s.callCount
		}
	}
	return 0
}

// UncalledStubs returns a description of every stub that was never hit.
// Assert it is empty at the end of a scenario.
func (mt *MockTransport) UncalledStubs() []string {
	mt.mu.Lock()
	defer mt.mu.Unlock()
	var out []string
	for _, s := range mt.stubs {
		if s.callCount == 0 {
			out = append(out, s.method+" "+s.path)
		}
	}
	return out
}

func marshalBody(body interface{}) []byte {
	switch v := body.(type) {
	case nil:
		return nil
	case []byte:
		return v
	case string:
		return []byte(v)
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			panic(fmt.Sprintf("testkit: marshal stub body: %v", err))
		}
		return raw
	}
}
