package controllers

import (
	"net/http"

	"blogapi/models"
	"blogapi/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{
		userService: services.NewUserService(db),
	}
}

// CreateUser godoc
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body models.CreateUserRequest true "New user"
// @Success 201 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Router /user [post]
func (uc *UserController) CreateUser(c *gin.Context) {
	var req models.CreateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := uc.userService.CreateUser(c.Request.Context(), &req); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusCreated, "User created successfully!")
}

// GetUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} models.UserSummary
// @Router /users [get]
func (uc *UserController) GetUsers(c *gin.Context) {
	users, err := uc.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	out := make([]models.UserSummary, 0, len(users))
	for i := range users {
		out = append(out, users[i].Summary())
	}
	c.JSON(http.StatusOK, out)
}

// GetUser godoc
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} models.MessageResponse
// @Router /user/{id} [get]
func (uc *UserController) GetUser(c *gin.Context) {
	id, ok := pathID(c, "User")
	if !ok {
		return
	}

	user, err := uc.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user.Response())
}

// UpdateUser godoc
// @Summary Update a user
// @Description Fields left out of the body keep their current value.
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body models.UpdateUserRequest true "Fields to change"
// @Success 200 {object} models.MessageResponse
// @Failure 400 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /user/{id} [put]
func (uc *UserController) UpdateUser(c *gin.Context) {
	id, ok := pathID(c, "User")
	if !ok {
		return
	}

	var req models.UpdateUserRequest
	if !bindJSON(c, &req) {
		return
	}

	if _, err := uc.userService.UpdateUser(c.Request.Context(), id, &req); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "User updated successfully!")
}

// DeleteUser godoc
// @Summary Delete a user with their posts and related comments
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} models.MessageResponse
// @Failure 404 {object} models.MessageResponse
// @Router /user/{id} [delete]
func (uc *UserController) DeleteUser(c *gin.Context) {
	id, ok := pathID(c, "User")
	if !ok {
		return
	}

	if err := uc.userService.DeleteUser(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	respondMessage(c, http.StatusOK, "User deleted successfully!")
}
