// Package openapi serves the interactive API docs. Huma publishes the
// live OpenAPI 3.1 document at /openapi.json; this package puts a
// Swagger UI in front of it.
package openapi

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

const (
	pageTitle = "sellerdash API"
	specURL   = "/openapi.json"
	docsPath  = "/swagger/index.html"
)

const pageTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>%s</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: %q,
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`

// RegisterRoutes mounts the docs UI on the Echo instance. /docs and the
// /swagger variants all land on the same page.
func RegisterRoutes(e *echo.Echo) {
	page := fmt.Sprintf(pageTemplate, pageTitle, specURL)

	e.GET(docsPath, func(c echo.Context) error {
		return c.HTML(http.StatusOK, page)
	})
	for _, alias := range []string{"/docs", "/swagger", "/swagger/"} {
		e.GET(alias, redirectToDocs)
	}
}

func redirectToDocs(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, docsPath)
}
