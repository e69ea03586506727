package http

import (
	stderrors "errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/board"
	"github.com/TharukaFdo/Internal-Job-Board-Codespa/internal/errors"
)

type JobHandler struct {
	service *board.Service
	logger  *zap.Logger
}

func NewJobHandler(service *board.Service, logger *zap.Logger) *JobHandler {
	return &JobHandler{
		service: service,
		logger:  logger,
	}
}

func (h *JobHandler) Register(router *gin.RouterGroup) {
	jobs := router.Group("/jobs")
	jobs.GET("", h.List)
	jobs.POST("", h.Create)
}

func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.service.List(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusOK, jobs)
}

func (h *JobHandler) Create(c *gin.Context) {
	var input board.CreateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		// A malformed or missing body behaves like absent fields and fails
		// the same validation as an empty form.
		input = board.CreateInput{}
	}

	job, err := h.service.Create(c.Request.Context(), input)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.JSON(http.StatusCreated, job)
}

// renderError maps the service error taxonomy onto the wire: validation
// failures are the caller's to fix, everything else renders as a generic
// server error with the cause kept in the logs.
func (h *JobHandler) renderError(c *gin.Context, err error) {
	var domainErr *errors.DomainError
	if stderrors.As(err, &domainErr) {
		switch domainErr.Type {
		case errors.ErrTypeInvalidInput:
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": domainErr.Message})
		case errors.ErrTypeNotFound:
			c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"message": domainErr.Message})
		default:
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": domainErr.Message})
		}
		return
	}

	h.logger.Error("unhandled error", zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
