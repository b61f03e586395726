package controllers

import (
	"net/http"
	"strconv"

	"school_equipment_lending/app"
	"school_equipment_lending/db"
	"school_equipment_lending/lending"
	"school_equipment_lending/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type EquipmentController struct{ *Srv }

func NewEquipmentController(s *Srv) *EquipmentController { return &EquipmentController{Srv: s} }

// GET /api/equipment?q=&category=&page=&size=
func (ec *EquipmentController) ListEquipment(c *gin.Context) {
	q := db.EquipmentQuery{
		Q:        c.Query("q"),
		Category: c.Query("category"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))

	res, err := ec.Repo.ListEquipment(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/equipment/:id
func (ec *EquipmentController) GetEquipment(c *gin.Context) {
	eq, err := ec.Repo.FindEquipmentByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

// POST /api/equipment (admin)
func (ec *EquipmentController) CreateEquipment(c *gin.Context) {
	var in struct {
		Name        string            `json:"name" binding:"required"`
		Category    lending.Category  `json:"category" binding:"required"`
		Description string            `json:"description"`
		Condition   lending.Condition `json:"condition" binding:"required"`
		Quantity    int               `json:"quantity" binding:"required,min=1"`
		Available   *int              `json:"available"`
		Location    string            `json:"location"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	// Omitting available means the whole stock is loanable.
	available := in.Quantity
	if in.Available != nil {
		available = *in.Available
	}

	eq := &models.Equipment{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Category:    in.Category,
		Description: in.Description,
		Condition:   in.Condition,
		Quantity:    in.Quantity,
		Available:   available,
		Location:    in.Location,
	}
	if err := ec.Repo.CreateEquipment(c.Request.Context(), app.ActorFrom(c), eq); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, eq)
}

// PUT /api/equipment/:id (admin)
func (ec *EquipmentController) UpdateEquipment(c *gin.Context) {
	var patch db.EquipmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	eq, err := ec.Repo.UpdateEquipment(c.Request.Context(), app.ActorFrom(c), c.Param("id"), patch)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, eq)
}

// DELETE /api/equipment/:id (admin)
func (ec *EquipmentController) DeleteEquipment(c *gin.Context) {
	if err := ec.Repo.DeleteEquipment(c.Request.Context(), app.ActorFrom(c), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}
