// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/MKhiriev/shintya-qr/internal/config"
	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/service"
	"github.com/MKhiriev/shintya-qr/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestAdapter(t *testing.T, serverURL string) GateAdapter {
	t.Helper()
	a, err := NewHTTPGateAdapter(config.Adapter{HTTPAddress: serverURL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// ── NewHTTPGateAdapter ──────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "localhost:8080", want: "http://localhost:8080"},
		{raw: " https://gate.example.com/ ", want: "https://gate.example.com"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPGateAdapter_InvalidAddress(t *testing.T) {
	a, err := NewHTTPGateAdapter(config.Adapter{}, logger.Nop())
	require.Error(t, err)
	assert.Nil(t, a)
}

// ── Admit ───────────────────────────────────────────────────────────────────

func TestAdmit_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/gate/admit", r.URL.Path)

		var req models.EnvelopeRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "ENV==", req.Envelope)

		writeJSON(t, w, http.StatusOK, models.Admission{ScanID: "s-1", Identity: "user@example.com", Locker: "L-12"})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Admit(context.Background(), "ENV==")

	require.NoError(t, err)
	assert.Equal(t, "s-1", got.ScanID)
	assert.Equal(t, "L-12", got.Locker)
}

func TestAdmit_RejectionsMapToSentinels(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		kind    envelope.Kind
		wantErr error
	}{
		{name: "expired", status: http.StatusUnprocessableEntity, kind: envelope.KindTimestampExpired, wantErr: envelope.ErrTimestampExpired},
		{name: "bad base64", status: http.StatusBadRequest, kind: envelope.KindInvalidBase64, wantErr: envelope.ErrInvalidBase64},
		{name: "missing field", status: http.StatusUnprocessableEntity, kind: envelope.KindMissingField, wantErr: envelope.ErrMissingField},
		{name: "unknown identity", status: http.StatusForbidden, kind: service.KindUnknownIdentity, wantErr: service.ErrUnknownIdentity},
		{name: "replay", status: http.StatusConflict, kind: service.KindReplayed, wantErr: service.ErrEnvelopeReplayed},
		{name: "unknown code falls back to status", status: http.StatusConflict, kind: "SOMETHING_NEW", wantErr: ErrConflict},
		{name: "internal", status: http.StatusInternalServerError, kind: envelope.KindUnknown, wantErr: ErrInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				writeJSON(t, w, tt.status, models.ErrorResponse{Error: string(tt.kind), Message: "rejected"})
			}))
			defer srv.Close()

			_, err := newTestAdapter(t, srv.URL).Admit(context.Background(), "ENV")

			require.ErrorIs(t, err, tt.wantErr)
			assert.Contains(t, err.Error(), "rejected")
		})
	}
}

func TestAdmit_PlainTextError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream down"))
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Admit(context.Background(), "ENV")

	require.ErrorIs(t, err, ErrBadGateway)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestAdmit_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	_, err := newTestAdapter(t, url).Admit(context.Background(), "ENV")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "admit request")
}

// ── Issue / Version ─────────────────────────────────────────────────────────

func TestIssue_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/envelope/issue", r.URL.Path)

		var req models.IssueRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, envelope.FieldUserID, req.Field)
		assert.Equal(t, "USR-001", req.Identity)

		writeJSON(t, w, http.StatusOK, models.IssuedEnvelope{Envelope: "SEALED", Field: req.Field, Identity: req.Identity})
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Issue(context.Background(), envelope.FieldUserID, "USR-001")

	require.NoError(t, err)
	assert.Equal(t, "SEALED", got.Envelope)
}

func TestIssue_Unregistered(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusForbidden, models.ErrorResponse{Error: string(service.KindUnknownIdentity), Message: "unknown identity"})
	}))
	defer srv.Close()

	_, err := newTestAdapter(t, srv.URL).Issue(context.Background(), "", "nobody@example.com")

	require.ErrorIs(t, err, service.ErrUnknownIdentity)
}

func TestVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/version", r.URL.Path)
		w.Header().Set("Content-Type", "text/plain")
		_, _ = w.Write([]byte("1.0.0 (XOR + Caesar + Base64)\n"))
	}))
	defer srv.Close()

	got, err := newTestAdapter(t, srv.URL).Version(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.0.0 (XOR + Caesar + Base64)", got)
}
