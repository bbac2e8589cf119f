package controllers

import (
	"net/http"
	"strings"

	"tourism-backend/models"
	"tourism-backend/services"
	"tourism-backend/utils"

	"github.com/gin-gonic/gin"
)

type LookupController struct {
	Svc *services.LookupService
}

func NewLookupController(svc *services.LookupService) *LookupController {
	return &LookupController{Svc: svc}
}

// ---------------- States ----------------

func (lc *LookupController) GetStates(c *gin.Context) {
	states, err := lc.Svc.GetStates()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, states)
}

func (lc *LookupController) CreateState(c *gin.Context) {
	var state models.State
	if err := c.ShouldBindJSON(&state); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}
	state.Name = strings.TrimSpace(state.Name)
	if state.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "State name is required"})
		return
	}
	if state.Slug == "" {
		state.Slug = utils.Slugify(state.Name)
	}

	if err := lc.Svc.CreateState(&state); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, state)
}

func (lc *LookupController) UpdateState(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}
	if err := lc.Svc.UpdateState(id, updates); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "State updated successfully"})
}

func (lc *LookupController) DeleteState(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := lc.Svc.DeleteState(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "State deleted successfully"})
}

// ---------------- Categories ----------------

func (lc *LookupController) GetCategories(c *gin.Context) {
	categories, err := lc.Svc.GetCategories()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}

func (lc *LookupController) CreateCategory(c *gin.Context) {
	var category models.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Invalid request payload", "details": err.Error()})
		return
	}
	category.Name = strings.TrimSpace(category.Name)
	if category.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"status": "error", "message": "Category name is required"})
		return
	}

	if err := lc.Svc.CreateCategory(&category); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, category)
}

func (lc *LookupController) DeleteCategory(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	if err := lc.Svc.DeleteCategory(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "message": "Category deleted successfully"})
}
