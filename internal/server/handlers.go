package server

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kidwise/kidwise/internal/catalog"
	"github.com/kidwise/kidwise/internal/content"
)

// Handler serves the content API. It talks only to the catalogue and the
// content service; the generation stack stays behind them.
type Handler struct {
	svc *content.Service
}

// NewHandler creates the API handler.
func NewHandler(svc *content.Service) *Handler {
	return &Handler{svc: svc}
}

// GET /healthcheck
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GET /api/concepts
func (h *Handler) ListConcepts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"categories": catalog.ByCategory()})
}

// GET /api/concepts/:id
func (h *Handler) GetConcept(c *gin.Context) {
	full, err := h.svc.GetConcept(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, content.ErrConceptNotFound) {
			respondError(c, http.StatusNotFound, "concept_not_found", "no concept with that id")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	c.JSON(http.StatusOK, full)
}

// GET /api/concepts/:id/related?count=n
func (h *Handler) RelatedConcepts(c *gin.Context) {
	count := 3
	if raw := c.Query("count"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			respondError(c, http.StatusBadRequest, "bad_count", "count must be a positive integer")
			return
		}
		count = n
	}

	if _, ok := catalog.Lookup(c.Param("id")); !ok {
		respondError(c, http.StatusNotFound, "concept_not_found", "no concept with that id")
		return
	}

	related := catalog.Related(c.Param("id"), count)
	c.JSON(http.StatusOK, gin.H{"related": related})
}

type explainRequest struct {
	Question string `json:"question"`
}

// POST /api/explain
func (h *Handler) Explain(c *gin.Context) {
	var req explainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "bad_request", "body must be JSON with a question field")
		return
	}

	answer, err := h.svc.AnswerQuestion(c.Request.Context(), req.Question)
	if err != nil {
		if errors.Is(err, content.ErrEmptyQuestion) {
			respondError(c, http.StatusBadRequest, "empty_question", "question must not be blank")
			return
		}
		respondError(c, http.StatusInternalServerError, "internal", err.Error())
		return
	}
	c.JSON(http.StatusOK, answer)
}
