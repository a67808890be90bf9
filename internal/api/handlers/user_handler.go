package handlers

import (
	"errors"
	"net/http"

	"github.com/devshare/devshare-go/internal/application"
	"github.com/devshare/devshare-go/internal/domain/user"
	"github.com/devshare/devshare-go/pkg/response"
	"github.com/devshare/devshare-go/pkg/utils"
	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	svc *application.UserService
}

func NewUserHandler(svc *application.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

// Register godoc
// @Summary User registration
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.CreateUserInput true "User registration info"
// @Success 201 {object} response.MessageResponse
// @Failure 400 {object} response.ErrorResponse "Invalid input"
// @Failure 409 {object} response.ErrorResponse "Username already taken"
// @Failure 500 {object} response.ErrorResponse
// @Router /register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var input user.CreateUserInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	if _, err := h.svc.RegisterUser(input); err != nil {
		if errors.Is(err, application.ErrUsernameTaken) {
			c.JSON(http.StatusConflict, response.Conflict(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, response.MessageResponse{Message: "User registered successfully"})
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param input body user.LoginInput true "Credentials"
// @Success 200 {object} response.TokenResponse
// @Failure 401 {object} response.ErrorResponse "Invalid username or password"
// @Router /login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var input user.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	u, token, err := h.svc.LoginUser(input.Username, input.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Invalid username or password"))
		return
	}

	c.JSON(http.StatusOK, response.TokenResponse{
		Token:      token,
		UID:        u.UID,
		Username:   u.Username,
		FullName:   u.FullName,
		ProfileImg: u.ProfileImg,
	})
}

// POST /user/search
func (h *UserHandler) SearchUsers(c *gin.Context) {
	var input user.SearchInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	users, err := h.svc.SearchUsers(input.Query)
	if err != nil {
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// POST /user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	var input user.ProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	profile, err := h.svc.GetProfile(input.Username)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.NotFound(err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, profile)
}

// POST /user/update-profile-img
func (h *UserHandler) UpdateProfileImg(c *gin.Context) {
	uid, err := utils.GetUserIDFromContext(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, response.Unauthorized("Unauthorized"))
		return
	}

	var input user.UpdateProfileImgInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, response.Validation("Invalid input"))
		return
	}

	if err := h.svc.UpdateProfileImg(uid, input.URL); err != nil {
		c.JSON(http.StatusInternalServerError, response.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"profile_img": input.URL})
}
