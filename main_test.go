package main

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestCORSMiddleware(t *testing.T) {
	dummyHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := CORSMiddleware(dummyHandler)

	req := httptest.NewRequest("OPTIONS", "/", nil)
	req.Header.Set("Origin", "http://example.com")
	rr := httptest.NewRecorder()

	middleware.ServeHTTP(rr, req)

	if val := rr.Header().Get("Access-Control-Allow-Origin"); val != "http://example.com" {
		t.Errorf("Expected Access-Control-Allow-Origin to be http://example.com, got %s", val)
	}

	if val := rr.Header().Get("Access-Control-Allow-Methods"); val != "POST, GET, OPTIONS, PUT, DELETE" {
		t.Errorf("Unexpected Access-Control-Allow-Methods: %s", val)
	}
}

func TestCORSMiddlewareWithoutOrigin(t *testing.T) {
	dummyHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := CORSMiddleware(dummyHandler)

	req := httptest.NewRequest("GET", "/", nil)
	rr := httptest.NewRecorder()

	middleware.ServeHTTP(rr, req)

	if val := rr.Header().Get("Access-Control-Allow-Origin"); val != "*" {
		t.Errorf("Expected wildcard Access-Control-Allow-Origin, got %s", val)
	}

	if rr.Code != http.StatusOK {
		t.Errorf("Expected status OK, got %v", rr.Code)
	}
}
