// Package handlers implements the HTTP proxy endpoints for sellerdash.
// Each handler builds a typed SP-API call and returns the upstream
// payload, mapping failed envelopes to gateway errors.
package handlers

import (
	"encoding/json"
	"fmt"

	"github.com/danielgtaylor/huma/v2"

	"github.com/sellerdash/sellerdash/internal/spapi"
)

// ProxyOutput wraps a successful SP-API envelope.
type ProxyOutput struct {
	Body ProxyBody
}

// ProxyBody carries the raw upstream payload.
type ProxyBody struct {
	Data json.RawMessage `json:"data,omitempty" doc:"Raw SP-API response payload"`
}

// proxyResult converts an executor envelope into a handler response.
// Failed envelopes become 502s carrying the upstream status and body so
// the dashboard can show the real SP-API diagnostic.
func proxyResult(env *spapi.ResponseEnvelope, err error) (*ProxyOutput, error) {
	if err != nil {
		return nil, huma.Error500InternalServerError("executing SP-API call: " + err.Error())
	}

	if !env.Success {
		if env.StatusCode == 0 {
			return nil, huma.Error502BadGateway("SP-API unreachable: " + env.Error)
		}
		return nil, huma.Error502BadGateway(fmt.Sprintf(
			"SP-API error (status %d): %s", env.StatusCode, env.Error,
		))
	}

	out := &ProxyOutput{}
	out.Body.Data = env.Data
	return out, nil
}
