// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/shintya-qr/internal/config"
	"github.com/MKhiriev/shintya-qr/internal/logger"
	"github.com/MKhiriev/shintya-qr/internal/utils"
	"github.com/MKhiriev/shintya-qr/models"
)

type httpGateAdapter struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPGateAdapter constructs the REST implementation of [GateAdapter].
// cfg.HTTPAddress may be "host:port" or a full base URL.
func NewHTTPGateAdapter(cfg config.Adapter, logger *logger.Logger) (GateAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	return &httpGateAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Admit POSTs env to /api/gate/admit. A rejection comes back as the
// envelope or service sentinel the gate reported.
func (h *httpGateAdapter) Admit(ctx context.Context, env string) (models.Admission, error) {
	var admission models.Admission
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.EnvelopeRequest{Envelope: env}).
		SetResult(&admission).
		Post("/api/gate/admit")
	if err != nil {
		return models.Admission{}, fmt.Errorf("admit request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Int("status", resp.StatusCode()).Msg("gate rejected envelope")
		return models.Admission{}, err
	}

	return admission, nil
}

// Issue POSTs to /api/envelope/issue.
func (h *httpGateAdapter) Issue(ctx context.Context, field, identity string) (models.IssuedEnvelope, error) {
	var issued models.IssuedEnvelope
	resp, err := h.client.R().
		SetContext(ctx).
		SetBody(models.IssueRequest{Field: field, Identity: identity}).
		SetResult(&issued).
		Post("/api/envelope/issue")
	if err != nil {
		return models.IssuedEnvelope{}, fmt.Errorf("issue request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.IssuedEnvelope{}, err
	}

	return issued, nil
}

func (h *httpGateAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}
