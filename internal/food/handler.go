package food

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog *Catalog
}

func NewHandler(catalog *Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// --------------------------------------------------
// Catalog search
// --------------------------------------------------
func (h *Handler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "query parameter 'q' is required"})
		return
	}

	results := h.catalog.Search(query)
	if results == nil {
		results = []Record{}
	}

	c.JSON(http.StatusOK, gin.H{"foods": results})
}

// --------------------------------------------------
// Single catalog entry
// --------------------------------------------------
func (h *Handler) Get(c *gin.Context) {
	rec := h.catalog.FindByID(c.Param("id"))
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}
	c.JSON(http.StatusOK, rec)
}

// --------------------------------------------------
// Same-category suggestions
// --------------------------------------------------
func (h *Handler) Similar(c *gin.Context) {
	rec := h.catalog.FindByID(c.Param("id"))
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	similar := h.catalog.SimilarFoods(rec.Category, rec.ID, limit)
	if similar == nil {
		similar = []Record{}
	}

	c.JSON(http.StatusOK, gin.H{"foods": similar})
}

// --------------------------------------------------
// Better alternatives for foods to limit
// --------------------------------------------------
func (h *Handler) Alternatives(c *gin.Context) {
	rec := h.catalog.FindByID(c.Param("id"))
	if rec == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "food not found"})
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))
	alternatives := h.catalog.BetterAlternatives(*rec, limit)
	if alternatives == nil {
		alternatives = []Record{}
	}

	c.JSON(http.StatusOK, gin.H{"foods": alternatives})
}
