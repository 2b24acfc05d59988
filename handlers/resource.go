package handlers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/mycolab-catalog/repositories"
)

// CreateRequest is a validated payload that builds a new record.
type CreateRequest[M any] interface {
	ToModel() M
}

// UpdateRequest is a partial payload merged onto an existing record.
type UpdateRequest[M any] interface {
	Apply(record *M)
}

// Resource exposes the five CRUD handlers for one catalog entity.
type Resource[M any, C CreateRequest[M], U UpdateRequest[M]] struct {
	repo   *repositories.CatalogRepository[M]
	name   string // display name, e.g. "Culture type"
	plural string // display plural, e.g. "culture types"
}

// NewResource creates the handler group for one entity. name and plural are
// the user-facing display forms used in error and confirmation messages.
func NewResource[M any, C CreateRequest[M], U UpdateRequest[M]](
	repo *repositories.CatalogRepository[M], name, plural string,
) *Resource[M, C, U] {
	return &Resource[M, C, U]{repo: repo, name: name, plural: plural}
}

// Register wires the five routes onto the given group.
func (h *Resource[M, C, U]) Register(g *gin.RouterGroup) {
	g.GET("", h.List)
	g.POST("", h.Create)
	g.GET("/:id", h.Get)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
}

// List returns all records, newest first.
func (h *Resource[M, C, U]) List(c *gin.Context) {
	records, err := h.repo.FindAll()
	if err != nil {
		log.Printf("Error fetching %s: %v", h.plural, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + h.plural})
		return
	}
	c.JSON(http.StatusOK, records)
}

// Get returns a single record by id.
func (h *Resource[M, C, U]) Get(c *gin.Context) {
	record, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.name + " not found"})
			return
		}
		log.Printf("Error fetching %s: %v", h.lower(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch " + h.lower()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// Create validates the payload and inserts a new record.
func (h *Resource[M, C, U]) Create(c *gin.Context) {
	var req C
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation error",
			"details": validationDetails(err),
		})
		return
	}

	record, err := h.repo.Create(req.ToModel())
	if err != nil {
		log.Printf("Error creating %s: %v", h.lower(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create " + h.lower()})
		return
	}
	c.JSON(http.StatusCreated, record)
}

// Update merges the supplied fields onto an existing record. Fields absent
// from the payload are left untouched.
func (h *Resource[M, C, U]) Update(c *gin.Context) {
	var req U
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Validation error",
			"details": validationDetails(err),
		})
		return
	}

	record, err := h.repo.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.name + " not found"})
			return
		}
		log.Printf("Error updating %s: %v", h.lower(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + h.lower()})
		return
	}

	req.Apply(&record)

	record, err = h.repo.Save(record)
	if err != nil {
		log.Printf("Error updating %s: %v", h.lower(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update " + h.lower()})
		return
	}
	c.JSON(http.StatusOK, record)
}

// Delete removes a record permanently.
func (h *Resource[M, C, U]) Delete(c *gin.Context) {
	err := h.repo.Delete(c.Param("id"))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": h.name + " not found"})
			return
		}
		log.Printf("Error deleting %s: %v", h.lower(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete " + h.lower()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.name + " deleted successfully"})
}

func (h *Resource[M, C, U]) lower() string {
	return strings.ToLower(h.name)
}
