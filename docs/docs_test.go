package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAPIJSON(t *testing.T) {
	data, err := OpenAPIJSON()
	require.NoError(t, err)

	var doc struct {
		OpenAPI string                    `json:"openapi"`
		Paths   map[string]map[string]any `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(data, &doc))

	assert.Equal(t, "3.0.3", doc.OpenAPI)
	assert.Contains(t, doc.Paths, "/api/match-requests/{id}")
	assert.Contains(t, doc.Paths["/api/match-requests/{id}"], "put")
	assert.Contains(t, doc.Paths["/api/match-requests/{id}"], "delete")
}

func TestOpenAPIJSON_IsCached(t *testing.T) {
	first, err := OpenAPIJSON()
	require.NoError(t, err)
	second, err := OpenAPIJSON()
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestSwaggerUI_LoadsJSONDocument(t *testing.T) {
	assert.Contains(t, string(SwaggerUI()), "/api-docs.json")
	assert.NotEmpty(t, OpenAPIYAML())
}
