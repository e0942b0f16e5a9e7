// Package main generates the OpenAPI 3.1 spec files from the registered
// API routes, for checking into docs/ and serving from CI artifacts.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"

	"github.com/sellerdash/sellerdash/internal/api/handlers"
)

func main() {
	output := flag.String("output", "docs/api", "output directory for generated spec files")
	flag.Parse()

	if err := os.MkdirAll(*output, 0o750); err != nil {
		log.Fatalf("creating output directory: %v", err)
	}

	// Handlers are registered with nil dependencies; only the route
	// metadata is needed to build the spec.
	api := humaecho.New(echo.New(), huma.DefaultConfig("sellerdash API", "dev"))
	handlers.RegisterOrdersRoutes(api, handlers.NewOrdersHandler(nil))
	handlers.RegisterInventoryRoutes(api, handlers.NewInventoryHandler(nil))
	handlers.RegisterReportsRoutes(api, handlers.NewReportsHandler(nil))
	handlers.RegisterFinancesRoutes(api, handlers.NewFinancesHandler(nil))
	handlers.RegisterShipmentsRoutes(api, handlers.NewShipmentsHandler(nil))
	handlers.RegisterLimitsRoutes(api, handlers.NewLimitsHandler(nil))

	spec := api.OpenAPI()

	jsonBytes, err := json.MarshalIndent(spec, "", "  ")
	if err != nil {
		log.Fatalf("marshaling spec JSON: %v", err)
	}
	if err := os.WriteFile(filepath.Join(*output, "openapi.json"), jsonBytes, 0o600); err != nil {
		log.Fatalf("writing openapi.json: %v", err)
	}

	yamlBytes, err := spec.YAML()
	if err != nil {
		log.Fatalf("marshaling spec YAML: %v", err)
	}
	if err := os.WriteFile(filepath.Join(*output, "openapi.yaml"), yamlBytes, 0o600); err != nil {
		log.Fatalf("writing openapi.yaml: %v", err)
	}

	fmt.Printf("OpenAPI spec generated in %s/\n", *output)
}
