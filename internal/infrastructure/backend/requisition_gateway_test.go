package backend

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"requisiciones_api/internal/domain/submission"
	"requisiciones_api/internal/pkg/logger"

	"github.com/bytedance/sonic"
)

func TestRequisitionGateway_Mock(t *testing.T) {
	g, err := NewRequisitionGateway("", "", time.Second, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	g.now = func() time.Time { return time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC) }

	first, err := g.CreateRequisition(context.Background(), submission.CreationPayload{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, _ := g.CreateRequisition(context.Background(), submission.CreationPayload{})
	if first.Folio != "REQ-2024-0001" || second.Folio != "REQ-2024-0002" {
		t.Fatalf("unexpected folios %q %q", first.Folio, second.Folio)
	}
	if first.ID == "" {
		t.Fatalf("expected id")
	}
}

func TestRequisitionGateway_MissingURL(t *testing.T) {
	if _, err := NewRequisitionGateway("  ", "", time.Second, false); err != ErrMissingBackendURL {
		t.Fatalf("expected ErrMissingBackendURL, got %v", err)
	}
}

func TestRequisitionGateway_CreateRequisition(t *testing.T) {
	var body map[string]any
	var auth, reqID string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/requisiciones" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		reqID = r.Header.Get("X-Request-ID")
		raw, _ := io.ReadAll(r.Body)
		_ = sonic.Unmarshal(raw, &body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 42, "folio": "REQ-2024-0042"}`))
	}))
	defer srv.Close()

	g, err := NewRequisitionGateway(srv.URL+"/api/", "secret", time.Second, false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	ctx := logger.WithRequestID(context.Background(), "rid-1")
	created, err := g.CreateRequisition(ctx, submission.CreationPayload{Folio: "BORRADOR-1", Status: submission.SubmittedStatusLabel, DeliveryLocations: "[]"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "42" || created.Folio != "REQ-2024-0042" {
		t.Fatalf("unexpected result %+v", created)
	}
	if auth != "Bearer secret" || reqID != "rid-1" {
		t.Fatalf("unexpected headers auth=%q request_id=%q", auth, reqID)
	}
	if body["estatus"] != "En Autorización" || body["lugar_entrega"] != "[]" {
		t.Fatalf("unexpected body %v", body)
	}
}

func TestRequisitionGateway_Errors(t *testing.T) {
	t.Run("rejected", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, `{"message":"folio duplicado"}`, http.StatusConflict)
		}))
		defer srv.Close()

		g, _ := NewRequisitionGateway(srv.URL, "", time.Second, false)
		_, err := g.CreateRequisition(context.Background(), submission.CreationPayload{})
		if err == nil || !strings.Contains(err.Error(), "409") {
			t.Fatalf("expected status error, got %v", err)
		}
	})

	t.Run("missing folio", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"id":"1"}`))
		}))
		defer srv.Close()

		g, _ := NewRequisitionGateway(srv.URL, "", time.Second, false)
		if _, err := g.CreateRequisition(context.Background(), submission.CreationPayload{}); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("nil gateway", func(t *testing.T) {
		var g *RequisitionGateway
		if _, err := g.CreateRequisition(context.Background(), submission.CreationPayload{}); err != ErrBackendGatewayNotConfigured {
			t.Fatalf("expected ErrBackendGatewayNotConfigured, got %v", err)
		}
	})
}
