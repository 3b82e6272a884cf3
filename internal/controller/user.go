package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/planora/backend/internal/dto"
	"github.com/planora/backend/internal/service"
)

type UserController interface {
	List(c echo.Context) error
	Get(c echo.Context) error
	Create(c echo.Context) error
	Update(c echo.Context) error
	Delete(c echo.Context) error
}

type userController struct {
	userService service.UserService
}

func newUserController(userService service.UserService) UserController {
	return &userController{
		userService: userService,
	}
}

func (u *userController) List(c echo.Context) error {
	users, err := u.userService.ListUsers()
	if err != nil {
		return respondError(c, err, "User not found")
	}
	return respond(c, http.StatusOK, users)
}

func (u *userController) Get(c echo.Context) error {
	user, err := u.userService.GetUser(c.Param("id"))
	if err != nil {
		return respondError(c, err, "User not found")
	}
	return respond(c, http.StatusOK, user)
}

func (u *userController) Create(c echo.Context) error {
	var payload dto.UserPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	user, err := u.userService.CreateUser(payload)
	if err != nil {
		return respondError(c, err, "User not found")
	}
	return respond(c, http.StatusCreated, user)
}

func (u *userController) Update(c echo.Context) error {
	var payload dto.UserPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	user, err := u.userService.UpdateUser(c.Param("id"), payload)
	if err != nil {
		return respondError(c, err, "User not found")
	}
	return respond(c, http.StatusOK, user)
}

func (u *userController) Delete(c echo.Context) error {
	user, err := u.userService.DeleteUser(c.Param("id"))
	if err != nil {
		return respondError(c, err, "User not found")
	}
	return respond(c, http.StatusOK, user)
}
