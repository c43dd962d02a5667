package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
)

func designDocument() *figma.FileResponse {
	return &figma.FileResponse{
		Name: "API Design",
		Document: figma.Node{
			ID:   "0:0",
			Type: "DOCUMENT",
			Children: []figma.Node{{
				ID:   "0:1",
				Type: "CANVAS",
				Children: []figma.Node{{
					ID:                  "1:2",
					Name:                "Card",
					Type:                "FRAME",
					AbsoluteBoundingBox: &figma.Rectangle{Width: 320, Height: 200},
					Children: []figma.Node{{
						ID:         "1:3",
						Name:       "Title",
						Type:       "TEXT",
						Characters: "Hello",
						Style:      &figma.TypeStyle{FontSize: 24},
					}},
				}},
			}},
		},
	}
}

func generateBody(t *testing.T, extra map[string]interface{}) []byte {
	t.Helper()
	payload := map[string]interface{}{"document": designDocument()}
	for k, v := range extra {
		payload[k] = v
	}
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	return body
}

func TestHandleHealth(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHandler("1.2.3")
	if assert.NoError(t, h.HandleHealth(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
		assert.Contains(t, rec.Body.String(), `"version":"1.2.3"`)
	}
}

func TestHandleGenerate(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(generateBody(t, nil)))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHandler("test")
	require.NoError(t, h.HandleGenerate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	_, err := uuid.Parse(resp.RequestID)
	assert.NoError(t, err, "requestId should be a uuid")
	assert.Equal(t, "API Design", resp.File)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Artifacts, 1)

	art := resp.Artifacts[0]
	assert.Equal(t, "1:2", art.ID)
	assert.Equal(t, "Card", art.Name)
	assert.Contains(t, art.Markup, "const Card = (")
	assert.Contains(t, art.Markup, "<h2>Hello</h2>")
	assert.Contains(t, art.TypeDescription, "export interface CardProps")
	assert.NotEmpty(t, art.Accessibility.ComplianceTier)
}

func TestHandleGeneratePartialOptions(t *testing.T) {
	body := generateBody(t, map[string]interface{}{
		"options": map[string]interface{}{"framework": "vue"},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHandler("test")
	require.NoError(t, h.HandleGenerate(c))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Artifacts, 1)

	// Framework overridden, the rest keeps its default (typescript on).
	assert.Contains(t, resp.Artifacts[0].Markup, "<template>")
	assert.Contains(t, resp.Artifacts[0].Markup, `<script lang="ts">`)
}

func TestHandleGenerateMissingDocument(t *testing.T) {
	e := NewServer("test")
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
	assert.Contains(t, rec.Body.String(), "document is required")
}

func TestHandleGenerateInvalidJSON(t *testing.T) {
	e := NewServer("test")
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{not json`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "BAD_REQUEST")
}

func TestHandleGenerateInvalidOptions(t *testing.T) {
	body := generateBody(t, map[string]interface{}{
		"options": map[string]interface{}{"framework": "vue", "styling": "styled-components"},
	})

	e := NewServer("test")
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
	assert.Contains(t, rec.Body.String(), "requires the react framework")
}

func TestHandleGenerateCustomCode(t *testing.T) {
	body := generateBody(t, map[string]interface{}{
		"customCode": map[string]interface{}{"markup": "<footer>custom</footer>"},
	})

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHandler("test")
	require.NoError(t, h.HandleGenerate(c))

	var resp generateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Artifacts, 1)
	assert.Contains(t, resp.Artifacts[0].Markup, "CUSTOM MARKUP START")
	assert.Contains(t, resp.Artifacts[0].Markup, "<footer>custom</footer>")
}

func TestHandleOptions(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/options", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := NewHandler("test")
	if assert.NoError(t, h.HandleOptions(c)) {
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"framework":"react"`)
		assert.Contains(t, rec.Body.String(), `"styling":"tailwind"`)
	}
}

func TestServerUnknownRoute(t *testing.T) {
	e := NewServer("test")
	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "HTTP_ERROR")
}
