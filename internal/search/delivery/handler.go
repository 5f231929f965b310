package delivery

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"discal-backend/internal/apperr"
	"discal-backend/internal/search/usecase"
)

type SearchHandler struct {
	searchUsecase usecase.SearchUsecase
}

func NewSearchHandler(searchUsecase usecase.SearchUsecase) *SearchHandler {
	return &SearchHandler{searchUsecase: searchUsecase}
}

type searchRequest struct {
	Query       string `json:"query" binding:"required"`
	Limit       int    `json:"limit"`
	ContentType string `json:"content_type"`
}

type searchResponse struct {
	Query   string          `json:"query"`
	Results []usecase.Match `json:"results"`
	Total   int             `json:"total"`
}

// Search answers 200 with an empty result list even when the vector store is
// down; the failure is logged server-side.
func (h *SearchHandler) Search(c *gin.Context) {
	var req searchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result := h.searchUsecase.SearchSimilar(c.Request.Context(), req.Query, req.Limit, req.ContentType)

	c.JSON(http.StatusOK, searchResponse{
		Query:   req.Query,
		Results: result.Matches,
		Total:   len(result.Matches),
	})
}

func (h *SearchHandler) CollectionInfo(c *gin.Context) {
	info, err := h.searchUsecase.CollectionInfo(c.Request.Context())
	if err != nil {
		c.JSON(apperr.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, info)
}
