package internal

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_WriteHeader(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusFound)

	if rw.Status() != http.StatusFound {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusFound)
	}
	if w.Code != http.StatusFound {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusFound)
	}
	if !rw.Written() {
		t.Error("Written() = false, want true")
	}
}

func TestResponseWriter_WriteHeader_OnlyOnce(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	rw.WriteHeader(http.StatusFound)
	rw.WriteHeader(http.StatusInternalServerError) // ignored

	if rw.Status() != http.StatusFound {
		t.Errorf("Status() = %d, want %d", rw.Status(), http.StatusFound)
	}
	if w.Code != http.StatusFound {
		t.Errorf("underlying status = %d, want %d", w.Code, http.StatusFound)
	}
}

func TestResponseWriter_Write(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	data := []byte(`{"login":"x"}`)
	n, err := rw.Write(data)
	if err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if n != len(data) {
		t.Errorf("Write() n = %d, want %d", n, len(data))
	}
	if rw.Size() != int64(len(data)) {
		t.Errorf("Size() = %d, want %d", rw.Size(), len(data))
	}
	if rw.Status() != http.StatusOK {
		t.Errorf("Status() = %d, want implicit %d", rw.Status(), http.StatusOK)
	}
	if w.Body.String() != string(data) {
		t.Errorf("body = %q, want %q", w.Body.String(), data)
	}
}

func TestResponseWriter_OnBeforeWrite(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	var calls []string
	rw.OnBeforeWrite(func() { calls = append(calls, "first") })
	rw.OnBeforeWrite(func() {
		calls = append(calls, "second")
		rw.Header().Set("X-Hook", "ran")
	})

	rw.WriteHeader(http.StatusOK)
	_, _ = rw.Write([]byte("body"))

	if len(calls) != 2 || calls[0] != "first" || calls[1] != "second" {
		t.Errorf("hooks = %v, want [first second] exactly once", calls)
	}
	if w.Header().Get("X-Hook") != "ran" {
		t.Error("hook header not applied before write")
	}
}

func TestResponseWriter_Unwrap(t *testing.T) {
	w := httptest.NewRecorder()
	rw := NewResponseWriter(w)

	if rw.Unwrap() != w {
		t.Error("Unwrap() did not return the underlying writer")
	}
}
