package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"stafflane-system/internal/database/models"
	"stafflane-system/internal/logger"
)

type AddTrainingRequest struct {
	CourseName   string `json:"course_name" binding:"required"`
	TrainingDate string `json:"training_date" binding:"required"`
}

func (h *HRHandler) ListTraining(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := employeeIDParam(c)
	if !ok {
		return
	}

	records, err := h.store.ListTraining(ctx, id)
	if err != nil {
		logger.ErrorLog(ctx, "failed to list training history", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if records == nil {
		records = []models.TrainingRecord{}
	}

	c.JSON(http.StatusOK, records)
}

func (h *HRHandler) AddTraining(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var req AddTrainingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid training fields"})
		return
	}
	if _, err := time.Parse("2006-01-02", req.TrainingDate); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "training_date must be in YYYY-MM-DD format"})
		return
	}

	record := models.TrainingRecord{
		CourseName:   req.CourseName,
		TrainingDate: req.TrainingDate,
		EmployeeID:   id,
	}

	if err := h.store.AddTraining(ctx, &record); err != nil {
		logger.ErrorLog(ctx, "failed to add training record", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	c.JSON(http.StatusCreated, record)
}
