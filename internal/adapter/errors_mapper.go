// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/shintya-qr/internal/envelope"
	"github.com/MKhiriev/shintya-qr/internal/service"
	"github.com/MKhiriev/shintya-qr/models"
	"github.com/go-resty/resty/v2"
)

// mapHTTPError returns nil for 2xx responses. Otherwise the "error" code of
// the body selects the sentinel; unknown codes fall back to the status.
func mapHTTPError(resp *resty.Response) error {
	if resp.StatusCode() >= http.StatusOK && resp.StatusCode() < http.StatusMultipleChoices {
		return nil
	}

	body := strings.TrimSpace(string(resp.Body()))

	var errResp models.ErrorResponse
	if json.Unmarshal(resp.Body(), &errResp) == nil && errResp.Error != "" {
		if sentinel := service.ErrorForKind(envelope.Kind(errResp.Error)); sentinel != nil {
			return fmt.Errorf("%w: %s", sentinel, errResp.Message)
		}
		body = errResp.Message
	}

	switch resp.StatusCode() {
	case http.StatusBadRequest:
		return fmt.Errorf("%w: %s", ErrBadRequest, body)
	case http.StatusForbidden:
		return fmt.Errorf("%w: %s", ErrForbidden, body)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, body)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", ErrConflict, body)
	case http.StatusBadGateway:
		return fmt.Errorf("%w: %s", ErrBadGateway, body)
	case http.StatusInternalServerError:
		return fmt.Errorf("%w: %s", ErrInternalServerError, body)
	default:
		if body == "" {
			body = http.StatusText(resp.StatusCode())
		}
		return fmt.Errorf("http %d: %s", resp.StatusCode(), body)
	}
}
