package controllers

import (
	"net/http"
	"strconv"
	"time"

	"school_equipment_lending/app"
	"school_equipment_lending/db"
	"school_equipment_lending/lending"
	"school_equipment_lending/models"

	"github.com/gin-gonic/gin"
)

type BorrowController struct{ *Srv }

func NewBorrowController(s *Srv) *BorrowController { return &BorrowController{Srv: s} }

// POST /api/requests
func (bc *BorrowController) CreateRequest(c *gin.Context) {
	var in struct {
		EquipmentID string    `json:"equipmentId" binding:"required"`
		Quantity    int       `json:"quantity" binding:"required,min=1"`
		BorrowFrom  time.Time `json:"borrowFrom" binding:"required"`
		BorrowTo    time.Time `json:"borrowTo" binding:"required"`
		Notes       string    `json:"notes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	req, err := bc.Repo.CreateRequest(c.Request.Context(), db.CreateRequestInput{
		RequesterID: c.GetString("userID"),
		EquipmentID: in.EquipmentID,
		Quantity:    in.Quantity,
		BorrowFrom:  in.BorrowFrom,
		BorrowTo:    in.BorrowTo,
		Notes:       in.Notes,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

// GET /api/requests/mine?status=&page=&size=
func (bc *BorrowController) ListMyRequests(c *gin.Context) {
	q := db.RequestQuery{
		RequesterID: c.GetString("userID"),
		Status:      c.Query("status"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))

	res, err := bc.Repo.ListRequests(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/requests?requesterId=&equipmentId=&status=&page=&size= (admin)
func (bc *BorrowController) ListRequests(c *gin.Context) {
	q := db.RequestQuery{
		RequesterID: c.Query("requesterId"),
		EquipmentID: c.Query("equipmentId"),
		Status:      c.Query("status"),
	}
	q.Page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	q.Size, _ = strconv.Atoi(c.DefaultQuery("size", "20"))

	res, err := bc.Repo.ListRequests(c.Request.Context(), q)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GET /api/requests/:id (owner or admin)
func (bc *BorrowController) GetRequest(c *gin.Context) {
	req, err := bc.Repo.FindRequestByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}
	if req.RequesterID != c.GetString("userID") && c.GetString("role") != models.RoleAdmin {
		c.JSON(http.StatusForbidden, app.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /api/requests/:id/approve (admin)
func (bc *BorrowController) Approve(c *gin.Context) {
	var in struct {
		Notes string `json:"notes"`
	}
	_ = c.ShouldBindJSON(&in)

	req, err := bc.Repo.Approve(c.Request.Context(), c.Param("id"), app.ActorFrom(c), in.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /api/requests/:id/reject (admin)
func (bc *BorrowController) Reject(c *gin.Context) {
	var in struct {
		Reason string `json:"reason" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	req, err := bc.Repo.Reject(c.Request.Context(), c.Param("id"), app.ActorFrom(c), in.Reason)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// POST /api/requests/:id/return (admin)
func (bc *BorrowController) MarkReturned(c *gin.Context) {
	var in struct {
		Condition lending.Condition `json:"condition" binding:"required"`
		Notes     string            `json:"notes"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	req, err := bc.Repo.MarkReturned(c.Request.Context(), c.Param("id"), app.ActorFrom(c), in.Condition, in.Notes)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, req)
}

// GET /api/audit?requestId=&page=&size= (admin)
func (bc *BorrowController) ListAuditLogs(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("size", "50"))

	res, err := bc.Repo.ListAuditLogs(c.Request.Context(), app.ActorFrom(c), c.Query("requestId"), page, size)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
