package api

import (
	"net/http"
	"strconv"

	"github.com/abr-content-api/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ContentHandler handles article and edition endpoints
type ContentHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewContentHandler creates a new ContentHandler
func NewContentHandler(services *service.Services, log zerolog.Logger) *ContentHandler {
	return &ContentHandler{
		services: services,
		log:      log.With().Str("handler", "content").Logger(),
	}
}

// GetFeaturedArticles handles GET /v1/articles/featured
func (h *ContentHandler) GetFeaturedArticles(c *gin.Context) {
	articles, err := h.services.Content.FeaturedArticles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetMagazineArticles handles GET /v1/magazine/articles
func (h *ContentHandler) GetMagazineArticles(c *gin.Context) {
	articles, err := h.services.Content.MagazineArticles(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

// GetArticleBySlug handles GET /v1/articles/:slug
// Returns the full joined article row for the article page
func (h *ContentHandler) GetArticleBySlug(c *gin.Context) {
	slug := c.Param("slug")
	if slug == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slug is required"})
		return
	}

	article, err := h.services.Content.ArticleBySlug(c.Request.Context(), slug)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

// GetMonocleEditions handles GET /v1/monocle/editions
func (h *ContentHandler) GetMonocleEditions(c *gin.Context) {
	editions, err := h.services.Edition.MonocleEditions(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"editions": editions})
}

// GetEditionArticles handles GET /v1/monocle/editions/:edition_id
// Edition metadata and the article list are fetched in parallel and
// jointly awaited; either failure fails the request.
func (h *ContentHandler) GetEditionArticles(c *gin.Context) {
	editionID, err := strconv.ParseInt(c.Param("edition_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "edition_id must be an integer"})
		return
	}

	edition, articles, err := h.services.Edition.EditionWithArticles(c.Request.Context(), editionID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"edition":  edition,
		"articles": articles,
	})
}
