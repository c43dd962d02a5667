package api

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/generator"
)

// Handler handles generation API requests. The server never talks to the
// Figma API itself: callers post a pre-fetched document tree and receive
// the generated artifacts back.
type Handler struct {
	version string
}

// NewHandler creates a new API handler.
func NewHandler(version string) *Handler {
	return &Handler{version: version}
}

// generateRequest is the POST /api/generate body. Options may be partial;
// omitted fields keep their defaults.
type generateRequest struct {
	Document   *figma.FileResponse  `json:"document"`
	Options    generator.Options    `json:"options"`
	CustomCode generator.CustomCode `json:"customCode"`
}

// generateResponse is the artifacts envelope. The request ID ties a
// response to server logs; it has no meaning beyond that.
type generateResponse struct {
	RequestID string                `json:"requestId"`
	File      string                `json:"file"`
	Count     int                   `json:"count"`
	Artifacts []*generator.Artifact `json:"artifacts"`
}

// HandleGenerate runs the generation engine over a posted document tree.
func (h *Handler) HandleGenerate(c echo.Context) error {
	req := generateRequest{Options: generator.DefaultOptions()}
	if err := c.Bind(&req); err != nil {
		return NewBadRequestError("invalid JSON body", err)
	}
	if req.Document == nil {
		return NewBadRequestError("document is required", nil)
	}

	engine, err := generator.NewEngine(req.Options)
	if err != nil {
		return NewValidationError(err.Error())
	}

	artifacts, err := engine.Generate(req.Document, req.CustomCode)
	if err != nil {
		return NewInternalError("generation failed", err)
	}

	return c.JSON(http.StatusOK, generateResponse{
		RequestID: uuid.New().String(),
		File:      req.Document.Name,
		Count:     len(artifacts),
		Artifacts: artifacts,
	})
}

// HandleHealth returns server health status.
func (h *Handler) HandleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "ok",
		"version": h.version,
	})
}

// HandleOptions returns the generation defaults, so clients can present
// them without hardcoding.
func (h *Handler) HandleOptions(c echo.Context) error {
	return c.JSON(http.StatusOK, generator.DefaultOptions())
}
