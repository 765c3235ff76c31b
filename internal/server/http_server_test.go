package server

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"testing"
	"time"
)

type failingListener struct{ addr net.Addr }

func (l failingListener) Accept() (net.Conn, error) { return nil, errors.New("listener closed") }
func (l failingListener) Close() error              { return nil }
func (l failingListener) Addr() net.Addr            { return l.addr }

func TestNetHTTPServerServesInjectedListener(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/greeting", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "hi")
	})
	s := netHTTPServer{srv: &http.Server{Handler: mux}, listener: ln}

	done := make(chan error, 1)
	go func() { done <- s.ListenAndServe() }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/api/greeting")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	if string(body) != "hi" {
		t.Fatalf("expected greeting body, got %q", body)
	}

	if err := s.Shutdown(context.Background()); err != nil {
		t.Fatalf("shutdown: %v", err)
	}
	select {
	case err := <-done:
		if !errors.Is(err, http.ErrServerClosed) {
			t.Fatalf("expected ErrServerClosed, got %v", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("serve did not return after shutdown")
	}
}

func TestNetHTTPServerListenerErrorSurfaces(t *testing.T) {
	s := netHTTPServer{
		srv:      &http.Server{Handler: http.NewServeMux()},
		listener: failingListener{addr: &net.TCPAddr{IP: net.IPv4(127, 0, 0, 1)}},
	}
	if err := s.ListenAndServe(); err == nil || errors.Is(err, http.ErrServerClosed) {
		t.Fatalf("expected accept failure, got %v", err)
	}
}

func TestNetHTTPServerAddrAndHandler(t *testing.T) {
	handler := http.NewServeMux()
	s := netHTTPServer{srv: &http.Server{Addr: ":3000", Handler: handler}}

	if s.Addr() != ":3000" || s.Handler() != handler {
		t.Fatalf("expected accessors to expose the wrapped server")
	}
}
