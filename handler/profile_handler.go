package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/eduquery/eduquery-be/middleware"
	"github.com/eduquery/eduquery-be/service"
	"github.com/eduquery/eduquery-be/types"
)

type ProfileHandler struct {
	userService service.UserService
}

func NewProfileHandler(userService service.UserService) *ProfileHandler {
	return &ProfileHandler{
		userService: userService,
	}
}

func (h *ProfileHandler) HandleGetProfile(c *gin.Context) {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Unauthorized",
		})
		return
	}

	user, err := h.userService.GetUser(c, requester.UserID)
	if err != nil {
		c.JSON(http.StatusNotFound, types.DataResponse{
			Status:  false,
			Message: "User not found",
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status: true,
		Data: types.ProfileResponse{
			Username: user.Username,
			Email:    user.Email,
			Class:    user.Class,
			Board:    user.Board,
			Group:    user.Group,
		},
	})
}

func (h *ProfileHandler) HandleUpdateProfile(c *gin.Context) {
	requester, ok := middleware.RequesterFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, types.DataResponse{
			Status:  false,
			Message: "Unauthorized",
		})
		return
	}

	var req types.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, types.DataResponse{
			Status:  false,
			Message: "Invalid request body",
		})
		return
	}

	if err := h.userService.UpdateProfile(c, requester.UserID, req); err != nil {
		c.JSON(http.StatusInternalServerError, types.DataResponse{
			Status:  false,
			Message: err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, types.DataResponse{
		Status:  true,
		Message: "Profile updated",
	})
}
