package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/shopspring/decimal"

	"stafflane-system/internal/database/models"
	"stafflane-system/internal/hr/store"
	"stafflane-system/internal/logger"
	"stafflane-system/internal/storage"
)

const (
	EMPLOYEE_LIST_CACHE_KEY = "employees:list"
	CACHE_TTL_SHORT         = 5 * time.Minute
)

// Store is the persistence surface the handlers need. The GORM store
// implements it; tests substitute stubs.
type Store interface {
	ListEmployees(ctx context.Context) ([]models.Employee, error)
	CreateEmployee(ctx context.Context, employee *models.Employee) error
	UpdateEmployee(ctx context.Context, id int64, update store.EmployeeUpdate) (models.Employee, error)
	DeleteEmployee(ctx context.Context, id int64) error
	ListTraining(ctx context.Context, employeeID int64) ([]models.TrainingRecord, error)
	AddTraining(ctx context.Context, record *models.TrainingRecord) error
}

type HRHandler struct {
	store   Store
	redis   *redis.Client
	uploads *storage.Uploads
}

func NewHRHandler(st Store, redisClient *redis.Client, uploads *storage.Uploads) *HRHandler {
	return &HRHandler{
		store:   st,
		redis:   redisClient,
		uploads: uploads,
	}
}

type CreateEmployeeRequest struct {
	FirstName string `form:"first_name" binding:"required"`
	LastName  string `form:"last_name" binding:"required"`
	Email     string `form:"email" binding:"required,email"`
	Position  string `form:"position" binding:"required"`
	Salary    string `form:"salary" binding:"required"`
}

type UpdateEmployeeRequest struct {
	FirstName string           `json:"first_name" binding:"required"`
	LastName  string           `json:"last_name" binding:"required"`
	Email     string           `json:"email" binding:"required,email"`
	Position  string           `json:"position" binding:"required"`
	Salary    *decimal.Decimal `json:"salary" binding:"required"`
}

// --- Cache helpers ---

func (h *HRHandler) cachedEmployeeList(ctx context.Context) []byte {
	if h.redis == nil {
		return nil
	}
	data, err := h.redis.Get(ctx, EMPLOYEE_LIST_CACHE_KEY).Bytes()
	if err != nil {
		return nil
	}
	return data
}

func (h *HRHandler) cacheEmployeeList(ctx context.Context, employees []models.Employee) {
	if h.redis == nil {
		return
	}
	data, err := json.Marshal(employees)
	if err != nil {
		return
	}
	_ = h.redis.Set(ctx, EMPLOYEE_LIST_CACHE_KEY, data, CACHE_TTL_SHORT)
}

func (h *HRHandler) InvalidateEmployeeCaches(ctx context.Context) {
	if h.redis == nil {
		return
	}
	_ = h.redis.Del(ctx, EMPLOYEE_LIST_CACHE_KEY)
}

// --- Employees ---

func (h *HRHandler) ListEmployees(c *gin.Context) {
	ctx := c.Request.Context()

	if data := h.cachedEmployeeList(ctx); data != nil {
		c.Data(http.StatusOK, "application/json; charset=utf-8", data)
		return
	}

	employees, err := h.store.ListEmployees(ctx)
	if err != nil {
		logger.ErrorLog(ctx, "failed to list employees", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}
	if employees == nil {
		employees = []models.Employee{}
	}

	h.cacheEmployeeList(ctx, employees)
	c.JSON(http.StatusOK, employees)
}

func (h *HRHandler) CreateEmployee(c *gin.Context) {
	ctx := c.Request.Context()

	var req CreateEmployeeRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid employee fields"})
		return
	}

	salary, err := decimal.NewFromString(req.Salary)
	if err != nil || salary.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "salary must be a non-negative number"})
		return
	}

	var profilePicture *string
	if file, err := c.FormFile("image"); err == nil {
		filename, err := h.uploads.Save(file)
		if err != nil {
			logger.ErrorLog(ctx, "failed to store uploaded image", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to store image"})
			return
		}
		profilePicture = &filename
	}

	employee := models.Employee{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Position:       req.Position,
		Salary:         salary,
		ProfilePicture: profilePicture,
	}

	if err := h.store.CreateEmployee(ctx, &employee); err != nil {
		logger.ErrorLog(ctx, "failed to create employee", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	h.InvalidateEmployeeCaches(ctx)
	c.JSON(http.StatusCreated, employee)
}

func (h *HRHandler) UpdateEmployee(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := employeeIDParam(c)
	if !ok {
		return
	}

	var req UpdateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing or invalid employee fields"})
		return
	}
	if req.Salary.IsNegative() {
		c.JSON(http.StatusBadRequest, gin.H{"error": "salary must be a non-negative number"})
		return
	}

	employee, err := h.store.UpdateEmployee(ctx, id, store.EmployeeUpdate{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Position:  req.Position,
		Salary:    *req.Salary,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmployeeNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "employee not found"})
			return
		}
		logger.ErrorLog(ctx, "failed to update employee", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	h.InvalidateEmployeeCaches(ctx)
	c.JSON(http.StatusOK, employee)
}

func (h *HRHandler) DeleteEmployee(c *gin.Context) {
	ctx := c.Request.Context()

	id, ok := employeeIDParam(c)
	if !ok {
		return
	}

	if err := h.store.DeleteEmployee(ctx, id); err != nil {
		logger.ErrorLog(ctx, "failed to delete employee", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "database error"})
		return
	}

	h.InvalidateEmployeeCaches(ctx)
	c.JSON(http.StatusOK, gin.H{"message": "Deleted successfully"})
}

func employeeIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid employee id"})
		return 0, false
	}
	return id, true
}
