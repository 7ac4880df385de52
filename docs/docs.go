// Package docs embeds the OpenAPI description of the HTTP API and the page
// that renders it with Swagger UI.
package docs

import (
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed openapi.yaml swagger-ui.html
var files embed.FS

// OpenAPIYAML returns the OpenAPI document as written.
func OpenAPIYAML() []byte {
	return mustRead("openapi.yaml")
}

// SwaggerUI returns the HTML page that loads the document from /api-docs.json.
func SwaggerUI() []byte {
	return mustRead("swagger-ui.html")
}

// OpenAPIJSON returns the OpenAPI document converted to JSON. The conversion
// runs once.
var OpenAPIJSON = sync.OnceValues(func() ([]byte, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(OpenAPIYAML(), &doc); err != nil {
		return nil, fmt.Errorf("error parsing openapi document: %w", err)
	}

	data, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("error encoding openapi document: %w", err)
	}

	return data, nil
})

func mustRead(name string) []byte {
	data, err := files.ReadFile(name)
	if err != nil {
		panic(err) // embedded at build time
	}

	return data
}
