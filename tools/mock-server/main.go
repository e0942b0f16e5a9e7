// Package main implements a mock Selling Partner API server for local
// development. It serves canned responses from JSON fixtures to simulate
// the Orders API and the LWA token endpoint without requiring real
// Amazon credentials.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

type ordersFixture struct {
	Orders []json.RawMessage `json:"Orders"`
}

type orderStub struct {
	AmazonOrderID string `json:"AmazonOrderId"`
	PurchaseDate  string `json:"PurchaseDate"`
}

func main() {
	port := flag.Int("port", 8089, "port to listen on")
	fixtureFile := flag.String("fixture", "tools/mock-server/testdata/orders_response.json", "path to orders fixture")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))

	fixture, err := loadFixture(*fixtureFile)
	if err != nil {
		logger.Error("failed to load fixture", "path", *fixtureFile, "error", err)
		os.Exit(1)
	}
	logger.Info("loaded fixture", "orders", len(fixture.Orders))

	mux := http.NewServeMux()
	mux.HandleFunc("POST /auth/o2/token", tokenHandler(logger))
	mux.HandleFunc("GET /orders/v0/orders", listOrdersHandler(logger, fixture))
	mux.HandleFunc("GET /orders/v0/orders/{orderId}", getOrderHandler(logger, fixture))

	addr := fmt.Sprintf(":%d", *port)
	logger.Info("starting mock SP-API server", "addr", addr)

	srv := &http.Server{
		Addr:         addr,
		Handler:      requestLogger(logger, mux),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}
	if err := srv.ListenAndServe(); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func loadFixture(path string) (*ordersFixture, error) {
	data, err := os.ReadFile(path) //nolint:gosec // fixture path from trusted CLI flag
	if err != nil {
		return nil, fmt.Errorf("reading fixture: %w", err)
	}
	var fixture ordersFixture
	if err := json.Unmarshal(data, &fixture); err != nil {
		return nil, fmt.Errorf("parsing fixture: %w", err)
	}
	return &fixture, nil
}

func requestLogger(logger *slog.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.Debug("request", "method", r.Method, "path", r.URL.Path, "query", r.URL.RawQuery)
		next.ServeHTTP(w, r)
	})
}

func tokenHandler(logger *slog.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.FormValue("grant_type") != "refresh_token" {
			logger.Warn("token request with bad grant type")
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "unsupported_grant_type",
				"error_description": "only refresh_token grants are supported",
			})
			return
		}
		if r.FormValue("refresh_token") == "" || r.FormValue("client_id") == "" {
			logger.Warn("token request missing credentials")
			writeJSON(w, http.StatusBadRequest, map[string]string{
				"error":             "invalid_grant",
				"error_description": "refresh_token and client_id are required",
			})
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"access_token": "Atza|mock-" + strconv.FormatInt(int64(os.Getpid()), 16),
			"expires_in":   3600,
			"token_type":   "bearer",
		})
		logger.Info("issued mock token")
	}
}

func listOrdersHandler(logger *slog.Logger, fixture *ordersFixture) http.HandlerFunc {
	// Pre-parse purchase dates for filtering.
	type indexedOrder struct {
		raw       json.RawMessage
		id        string
		purchased time.Time
	}
	orders := make([]indexedOrder, 0, len(fixture.Orders))
	for _, raw := range fixture.Orders {
		var s orderStub
		//nolint:errcheck,gosec // fixture data is trusted; stub extraction is best-effort
		json.Unmarshal(raw, &s)
		purchased, _ := time.Parse(time.RFC3339, s.PurchaseDate)
		orders = append(orders, indexedOrder{raw: raw, id: s.AmazonOrderID, purchased: purchased})
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-amz-access-token") == "" {
			writeSPAPIError(w, http.StatusForbidden, "Unauthorized", "Access token missing")
			return
		}

		var createdAfter time.Time
		if v := r.URL.Query().Get("CreatedAfter"); v != "" {
			if parsed, err := time.Parse(time.RFC3339, v); err == nil {
				createdAfter = parsed
			}
		}

		maxResults := 100
		if v := r.URL.Query().Get("MaxResultsPerPage"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				maxResults = n
			}
		}
		offset := 0
		if v := r.URL.Query().Get("NextToken"); v != "" {
			if n, err := strconv.Atoi(strings.TrimPrefix(v, "mock-page-")); err == nil && n >= 0 {
				offset = n
			}
		}

		var matched []json.RawMessage
		for _, o := range orders {
			if createdAfter.IsZero() || o.purchased.After(createdAfter) {
				matched = append(matched, o.raw)
			}
		}

		total := len(matched)
		if offset >= total {
			matched = nil
		} else {
			end := min(offset+maxResults, total)
			matched = matched[offset:end]
		}

		nextToken := ""
		if offset+maxResults < total {
			nextToken = "mock-page-" + strconv.Itoa(offset+maxResults)
		}

		if matched == nil {
			matched = []json.RawMessage{}
		}

		payload := map[string]any{"Orders": matched}
		if nextToken != "" {
			payload["NextToken"] = nextToken
		}
		writeJSON(w, http.StatusOK, map[string]any{"payload": payload})
		logger.Info("list orders", "matched", total, "returned", len(matched), "offset", offset)
	}
}

func getOrderHandler(logger *slog.Logger, fixture *ordersFixture) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-amz-access-token") == "" {
			writeSPAPIError(w, http.StatusForbidden, "Unauthorized", "Access token missing")
			return
		}

		orderID := r.PathValue("orderId")
		for _, raw := range fixture.Orders {
			var s orderStub
			//nolint:errcheck,gosec // fixture data is trusted
			json.Unmarshal(raw, &s)
			if s.AmazonOrderID == orderID {
				writeJSON(w, http.StatusOK, map[string]any{"payload": raw})
				logger.Info("get order", "order_id", orderID)
				return
			}
		}

		writeSPAPIError(w, http.StatusNotFound, "NotFound", "Order "+orderID+" not found")
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	//nolint:errcheck,gosec // best-effort write to HTTP response in mock server
	json.NewEncoder(w).Encode(body)
}

// writeSPAPIError mimics the SP-API error envelope.
func writeSPAPIError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, map[string]any{
		"errors": []map[string]string{{"code": code, "message": message}},
	})
}
