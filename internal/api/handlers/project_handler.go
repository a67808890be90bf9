package handlers

import (
	"errors"
	"net/http"

	"github.com/devshare/devshare-go/internal/application"
	"github.com/devshare/devshare-go/internal/domain/project"
	"github.com/devshare/devshare-go/pkg/response"
	"github.com/devshare/devshare-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type ProjectHandler struct {
	svc *application.ProjectService
}

func NewProjectHandler(svc *application.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// CreateProject godoc
// @Summary Publish a project or save a draft
// @Tags projects
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param input body project.CreateProjectDTO true "Project payload"
// @Success 200 {object} map[string]string "Slug of the stored project"
// @Failure 403 {object} response.ErrorResponse "Publish validation failed"
// @Failure 500 {object} response.ErrorResponse
// @Router /project/create [post]
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
		return
	}

	var input project.CreateProjectDTO
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	id, err := h.svc.CreateProject(uid, input)
	if err != nil {
		if application.IsValidationErr(err) {
			c.JSON(http.StatusForbidden, response.Validation(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"id": id})
}

// POST /project/getall
func (h *ProjectHandler) GetAllProjects(c *gin.Context) {
	var input project.ListInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	projects, err := h.svc.GetAllProjects(input.Page)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// GET /project/trending
func (h *ProjectHandler) TrendingProjects(c *gin.Context) {
	projects, err := h.svc.TrendingProjects()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// SearchProjects godoc
// @Summary Search published projects by tag, title or author
// @Tags projects
// @Accept json
// @Produce json
// @Param input body project.SearchInput true "Exactly one of tag, query or author"
// @Success 200 {object} map[string][]project.PreviewDTO
// @Failure 403 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /project/search [post]
func (h *ProjectHandler) SearchProjects(c *gin.Context) {
	var input project.SearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	projects, err := h.svc.SearchProjects(input)
	if err != nil {
		if application.IsValidationErr(err) {
			c.JSON(http.StatusForbidden, response.Validation(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// POST /project/all-latest-count
func (h *ProjectHandler) AllLatestProjectsCount(c *gin.Context) {
	count, err := h.svc.AllLatestProjectsCount()
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, project.CountDTO{TotalDocs: count})
}

// POST /project/search-count
func (h *ProjectHandler) SearchProjectsCount(c *gin.Context) {
	var input project.SearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	count, err := h.svc.SearchProjectsCount(input)
	if err != nil {
		if application.IsValidationErr(err) {
			c.JSON(http.StatusForbidden, response.Validation(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, project.CountDTO{TotalDocs: count})
}

// GetProject godoc
// @Summary Fetch one project by slug
// @Description Increments the project read counter as part of the fetch.
// @Tags projects
// @Accept json
// @Produce json
// @Param input body project.GetInput true "Project slug"
// @Success 200 {object} map[string]project.DetailDTO
// @Failure 404 {object} response.ErrorResponse
// @Failure 500 {object} response.ErrorResponse
// @Router /project/get [post]
func (h *ProjectHandler) GetProject(c *gin.Context) {
	var input project.GetInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	p, err := h.svc.GetProject(input.ProjectID)
	if err != nil {
		if errors.Is(err, application.ErrProjectNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"project": p})
}

// POST /project/user-written
func (h *ProjectHandler) UserWrittenProjects(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
		return
	}

	var input project.UserWrittenInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	projects, err := h.svc.UserWrittenProjects(uid, input)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"projects": projects})
}
