package http

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"oficina/internal/core/langpack"
	phttp "oficina/internal/platform/net/http"
	nlusvc "oficina/internal/services/api/nlu/service"
	querysvc "oficina/internal/services/query/service"
	respondsvc "oficina/internal/services/respond/service"
)

func newTestRouter(t *testing.T) *chi.Mux {
	t.Helper()
	p, err := langpack.Load()
	if err != nil {
		t.Fatalf("load pack: %v", err)
	}
	parser := querysvc.New(p)
	responder := respondsvc.New(p, parser)

	mux := chi.NewMux()
	Register(phttp.AdaptChi(mux), nlusvc.New(parser, responder))
	return mux
}

func post(t *testing.T, mux *chi.Mux, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest("POST", path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestParseEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	rec := post(t, mux, "/parse", `{"text":"quanto custa a troca de óleo?"}`)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Status string `json:"status"`
		Data   struct {
			Intent     string  `json:"intent"`
			Confidence float64 `json:"confidence"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Data.Intent != "price_inquiry" {
		t.Fatalf("intent = %q", env.Data.Intent)
	}
	if env.Data.Confidence <= 0.3 {
		t.Fatalf("confidence = %v", env.Data.Confidence)
	}
}

func TestRespondEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	rec := post(t, mux, "/respond", `{"text":"bom dia"}`)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data struct {
			Kind    string `json:"kind"`
			Message string `json:"message"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Data.Kind != "greeting" || env.Data.Message == "" {
		t.Fatalf("data = %+v", env.Data)
	}
}

func TestEnrichEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	rec := post(t, mux, "/enrich", `{"text":"qual o status da OS 1234?"}`)
	if rec.Code != 200 {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	var env struct {
		Data struct {
			OriginalText string `json:"originalText"`
			NLP          struct {
				Intent   string `json:"intent"`
				Entities struct {
					CaseNumber string `json:"case_number"`
				} `json:"entities"`
			} `json:"nlp"`
			Contexto struct {
				Kind   string `json:"kind"`
				Action string `json:"action"`
			} `json:"contexto"`
		} `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if env.Data.NLP.Intent != "work_order_status" {
		t.Fatalf("intent = %q", env.Data.NLP.Intent)
	}
	if env.Data.NLP.Entities.CaseNumber != "1234" {
		t.Fatalf("case_number = %q", env.Data.NLP.Entities.CaseNumber)
	}
	if env.Data.Contexto.Action != "find_work_order" {
		t.Fatalf("contexto = %+v", env.Data.Contexto)
	}
}

func TestValidation_EmptyText(t *testing.T) {
	mux := newTestRouter(t)

	rec := post(t, mux, "/parse", `{"text":""}`)
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestValidation_MalformedJSON(t *testing.T) {
	mux := newTestRouter(t)

	rec := post(t, mux, "/parse", `{"text":`)
	if rec.Code != 400 {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}
