package http

import (
	"net/http"

	"github.com/MKhiriev/mentor-match/docs"
)

func (h *Handler) getAPIDocsJSON(w http.ResponseWriter, r *http.Request) {
	data, err := docs.OpenAPIJSON()
	if err != nil {
		writeError(w, r, "*Handler.getAPIDocsJSON", err)
		return
	}

	writeRaw(w, "application/json", data)
}

func (h *Handler) getAPIDocsYAML(w http.ResponseWriter, r *http.Request) {
	writeRaw(w, "application/yaml", docs.OpenAPIYAML())
}

func (h *Handler) getSwaggerUI(w http.ResponseWriter, r *http.Request) {
	writeRaw(w, "text/html; charset=utf-8", docs.SwaggerUI())
}

func writeRaw(w http.ResponseWriter, contentType string, data []byte) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
