package handlers

import (
	"trackify_backend/internal/models"
	"trackify_backend/internal/services"
	"trackify_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type UserHandler struct {
	*BaseHandler
	userService services.UserService
}

func NewUserHandler(base *BaseHandler, userService services.UserService) *UserHandler {
	return &UserHandler{
		BaseHandler: base,
		userService: userService,
	}
}

// Me returns the authenticated user's own profile.
func (h *UserHandler) Me(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	user, err := h.userService.GetByID(h.GetDB(c), actor.ID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, user.Sanitized())
}

func (h *UserHandler) List(c *gin.Context) {
	var (
		users []models.User
		err   error
	)

	if role := c.Query("role"); role != "" {
		users, err = h.userService.ListByRole(h.GetDB(c), models.UserRole(role))
	} else {
		users, err = h.userService.ListAll(h.GetDB(c))
	}
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, users)
}

func (h *UserHandler) Get(c *gin.Context) {
	user, err := h.userService.GetByID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, user.Sanitized())
}

func (h *UserHandler) Create(c *gin.Context) {
	var req dto.AdminCreateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.AdminCreate(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Created(c, user.Sanitized())
}

func (h *UserHandler) Update(c *gin.Context) {
	var req dto.UpdateUserRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.userService.AdminUpdate(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, user.Sanitized())
}

func (h *UserHandler) Delete(c *gin.Context) {
	actor, ok := h.GetActor(c)
	if !ok {
		return
	}

	if err := h.userService.AdminDelete(h.GetDB(c), actor.ID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.OK(c, gin.H{"message": "User deleted"})
}
