package httpkit

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strings"
	"testing"
)

func bodyReq(t *testing.T, method string, body io.Reader) *http.Request {
	t.Helper()
	req, err := http.NewRequest(method, "http://core.test/api/installations", body)
	if err != nil {
		t.Fatalf("bodyReq: %v", err)
	}
	return req
}

// serve executes a Handler and returns status code and body
func serve(h Handler, r *http.Request) (int, string) {
	rec := httptest.NewRecorder()
	h(rec, r)
	res := rec.Result()
	defer func() { _ = res.Body.Close() }()

	b, _ := io.ReadAll(res.Body)
	return rec.Code, string(b)
}

func TestAliases_SimpleConstructors(t *testing.T) {
	cases := []struct {
		name string
		resp Response
	}{
		{"OK", OK("installations")},
		{"Created", Created(map[string]int64{"installationId": 8421001})},
		{"NoContent", NoContent()},
		{"Data", Data([]string{"push", "pull_request"})},
		{"Error", Error(errors.New("summary generation failed"))},
	}
	for _, c := range cases {
		if reflect.ValueOf(c.resp).IsZero() {
			t.Fatalf("%s returned a zero Response", c.name)
		}
	}
}

func TestHandle_PassThrough(t *testing.T) {
	h := Handle(func(_ *http.Request) Response {
		return Created("summary queued")
	})
	code, body := serve(h, bodyReq(t, http.MethodGet, nil))
	if code != http.StatusCreated {
		t.Fatalf("expected status %d, got %d", http.StatusCreated, code)
	}
	if !strings.Contains(body, "summary queued") {
		t.Fatalf("expected body to mention the queued summary, got %q", body)
	}
}

func TestCall_PlainValue_OKWrap(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return map[string]string{"status": "healthy"}, nil
	})
	code, body := serve(h, bodyReq(t, http.MethodGet, nil))
	if code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", code)
	}
	if !strings.Contains(body, `"status":"healthy"`) {
		t.Fatalf("expected healthy status in body, got %q", body)
	}
}

func TestCall_ResponsePassthrough(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return Created("refresh started"), nil
	})
	code, body := serve(h, bodyReq(t, http.MethodPost, nil))
	if code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", code)
	}
	if !strings.Contains(body, "refresh started") {
		t.Fatalf("expected body to carry the passthrough payload, got %q", body)
	}
}

func TestCall_ErrorPath(t *testing.T) {
	h := Call(func(_ *http.Request) (any, error) {
		return nil, errors.New("installation lookup failed")
	})
	code, body := serve(h, bodyReq(t, http.MethodGet, nil))
	if code < 400 {
		t.Fatalf("expected error status >=400, got %d", code)
	}
	if !strings.Contains(body, "API_ERROR") {
		t.Fatalf("expected classified error body, got %q", body)
	}
}

func TestJSON_SuccessPlainValue(t *testing.T) {
	type generateReq struct {
		InstallationID int64  `json:"installationId"`
		Period         string `json:"period"`
	}
	payload := generateReq{InstallationID: 8421001, Period: "week"}

	buf := &bytes.Buffer{}
	if err := json.NewEncoder(buf).Encode(payload); err != nil {
		t.Fatalf("encode: %v", err)
	}

	h := JSON[generateReq](func(r *http.Request, got generateReq) (any, error) {
		if !reflect.DeepEqual(got, payload) {
			t.Fatalf("decoded mismatch: got %#v want %#v", got, payload)
		}
		return map[string]any{"queued": true, "ua": r.UserAgent()}, nil
	})

	req := bodyReq(t, http.MethodPost, buf)
	req.Header.Set("User-Agent", "gitpulse-dashboard/2.3")
	code, body := serve(h, req)
	if code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", code)
	}
	if !strings.Contains(body, `"queued":true`) {
		t.Fatalf("expected queued=true in body, got %q", body)
	}
}

func TestJSON_ResponsePassthrough(t *testing.T) {
	type refreshReq struct {
		Force bool `json:"force"`
	}
	h := JSON[refreshReq](func(_ *http.Request, _ refreshReq) (any, error) {
		return Created("cache rebuilt"), nil
	})

	code, body := serve(h, bodyReq(t, http.MethodPost, strings.NewReader(`{"force":true}`)))
	if code != http.StatusCreated {
		t.Fatalf("expected 201 Created, got %d", code)
	}
	if !strings.Contains(body, "cache rebuilt") {
		t.Fatalf("expected passthrough body, got %q", body)
	}
}

func TestJSON_DecodeErrors(t *testing.T) {
	type generateReq struct {
		Period string `json:"period"`
	}

	cases := []struct {
		name     string
		body     string
		wantCode string
	}{
		{"malformed json", `{`, "VALIDATION_ERROR"},
		{"unknown field rejected", `{"period":"week","scope":"org"}`, ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			h := JSON[generateReq](func(_ *http.Request, _ generateReq) (any, error) {
				t.Fatal("handler must not run on decode errors")
				return nil, nil
			})
			code, body := serve(h, bodyReq(t, http.MethodPost, strings.NewReader(c.body)))
			if code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", code)
			}
			if c.wantCode != "" && !strings.Contains(body, c.wantCode) {
				t.Fatalf("expected %s in body, got %q", c.wantCode, body)
			}
			if len(body) == 0 {
				t.Fatal("expected non-empty error body")
			}
		})
	}
}

func TestJSON_HandlerError(t *testing.T) {
	type generateReq struct {
		Period string `json:"period"`
	}
	h := JSON[generateReq](func(_ *http.Request, _ generateReq) (any, error) {
		return nil, errors.New("summarizer unavailable")
	})
	code, body := serve(h, bodyReq(t, http.MethodPost, strings.NewReader(`{"period":"month"}`)))
	if code < 400 {
		t.Fatalf("expected error status >=400, got %d", code)
	}
	if len(body) == 0 {
		t.Fatal("expected non-empty error body")
	}
}
