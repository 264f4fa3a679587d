package rendering

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"requisiciones_api/internal/domain/documents"
	"requisiciones_api/internal/domain/entities"

	"github.com/bytedance/sonic"
)

func orderPayload() documents.OrderPayload {
	return documents.OrderPayload{
		Folio:     "REQ-1",
		Area:      "Sistemas",
		Requester: "Ana",
		Lines: []documents.OrderLine{
			{CUCOP: "21101001", Description: "Hojas | carta", Quantity: "2", Price: "$10.00", Amount: "$20.00"},
		},
		Subtotal: "$20.00",
		Tax:      "$3.20",
		Total:    "$23.20",
	}
}

func TestHTTPRenderer_Render(t *testing.T) {
	var got renderRequest
	var gotFolio string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/documentos/generar" || r.Method != http.MethodPost {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		body, _ := io.ReadAll(r.Body)
		if err := sonic.Unmarshal(body, &got); err != nil {
			t.Errorf("invalid body: %v", err)
		}
		if m, ok := got.Data.(map[string]any); ok {
			gotFolio, _ = m["folio"].(string)
		}
		w.Header().Set("Content-Type", "application/pdf")
		_, _ = w.Write([]byte("%PDF-1.7"))
	}))
	defer srv.Close()

	r, err := NewHTTPRenderer(srv.URL+"/", time.Second)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc, err := r.Render(context.Background(), entities.DocumentKindOrder, orderPayload(), "FOCON01_Pedido_REQ-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Template != "focon01" || got.FileName != "FOCON01_Pedido_REQ-1" || gotFolio != "REQ-1" {
		t.Fatalf("unexpected request %+v folio=%q", got, gotFolio)
	}
	if doc.ContentType != "application/pdf" || string(doc.Content) != "%PDF-1.7" {
		t.Fatalf("unexpected document %+v", doc)
	}
}

func TestHTTPRenderer_Errors(t *testing.T) {
	t.Run("missing url", func(t *testing.T) {
		if _, err := NewHTTPRenderer(" ", time.Second); err != ErrMissingRendererURL {
			t.Fatalf("expected ErrMissingRendererURL, got %v", err)
		}
	})

	t.Run("non 2xx", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "template not found", http.StatusNotFound)
		}))
		defer srv.Close()

		r, _ := NewHTTPRenderer(srv.URL, time.Second)
		_, err := r.Render(context.Background(), entities.DocumentKindOrder, orderPayload(), "x")
		if err == nil || !strings.Contains(err.Error(), "404") {
			t.Fatalf("expected status error, got %v", err)
		}
	})

	t.Run("empty body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer srv.Close()

		r, _ := NewHTTPRenderer(srv.URL, time.Second)
		if _, err := r.Render(context.Background(), entities.DocumentKindOrder, orderPayload(), "x"); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("timeout", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			time.Sleep(200 * time.Millisecond)
			_, _ = w.Write([]byte("late"))
		}))
		defer srv.Close()

		r, _ := NewHTTPRenderer(srv.URL, 20*time.Millisecond)
		if _, err := r.Render(context.Background(), entities.DocumentKindOrder, orderPayload(), "x"); err == nil {
			t.Fatalf("expected timeout error")
		}
	})
}

func TestLocalRenderer_Render(t *testing.T) {
	doc, err := NewLocalRenderer().Render(context.Background(), entities.DocumentKindOrder, orderPayload(), "FOCON01_Pedido_REQ-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if doc.ContentType != HTMLContentType {
		t.Fatalf("unexpected content type %q", doc.ContentType)
	}
	html := string(doc.Content)
	for _, want := range []string{
		"<title>FOCON01_Pedido_REQ-1</title>",
		"FO-CON-01",
		"<table>",
		"<td>21101001</td>",
		"$23.20",
	} {
		if !strings.Contains(html, want) {
			t.Fatalf("expected %q in output:\n%s", want, html)
		}
	}
}

func TestLocalRenderer_RejectsNonObject(t *testing.T) {
	if _, err := NewLocalRenderer().Render(context.Background(), entities.DocumentKindOrder, []string{"a"}, "x"); err == nil {
		t.Fatalf("expected error")
	}
}
