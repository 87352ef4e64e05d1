package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

// UserHandler handles HTTP requests for user accounts and sessions.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// Login handles PUT /userLogin/:email.
//
// @Summary      Issue an access token
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  tokenResponse
// @Failure      400    {object}  map[string]string
// @Router       /userLogin/{email} [put]
func (h *UserHandler) Login(c echo.Context) error {
	var req emailParam
	if err := bindPath(c, &req); err != nil {
		return err
	}

	token, err := h.service.Login(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, tokenResponse{Token: token.Token, ExpiresAt: token.ExpiresAt})
}

// SaveProfile handles PUT /user/:email.
//
// @Summary      Create or update a user profile
// @Description  Upserts by email. New users default to the Buyer role. Returns a fresh token.
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        email  path      string           true  "User email"
// @Param        body   body      saveUserRequest  true  "Profile"
// @Success      200    {object}  saveUserResponse
// @Failure      400    {object}  map[string]string
// @Failure      500    {object}  map[string]string
// @Router       /user/{email} [put]
func (h *UserHandler) SaveProfile(c echo.Context) error {
	var req saveUserRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	out, err := h.service.SaveProfile(c.Request().Context(), toUserProfile(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, saveUserResponse{
		Result:    out.Result,
		Token:     out.Token.Token,
		ExpiresAt: out.Token.ExpiresAt,
	})
}

// Get handles GET /user/:email.
//
// @Summary      Get a user by email
// @Tags         users
// @Produce      json
// @Param        email  path      string  true  "User email"
// @Success      200    {object}  domain.User
// @Failure      404    {object}  map[string]string
// @Router       /user/{email} [get]
func (h *UserHandler) Get(c echo.Context) error {
	var req emailParam
	if err := bindPath(c, &req); err != nil {
		return err
	}

	user, err := h.service.Get(c.Request().Context(), req.Email)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// UpdateRole handles PUT /updateRole/:email/:role.
//
// @Summary      Assign a role
// @Description  Callers may switch themselves between Buyer and Seller. Granting Admin or changing another user requires Admin.
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Target email"
// @Param        role   path      string  true  "Buyer, Seller or Admin"
// @Success      200    {object}  domain.WriteResult
// @Failure      400    {object}  map[string]string
// @Failure      401    {object}  map[string]string
// @Failure      403    {object}  map[string]string
// @Router       /updateRole/{email}/{role} [put]
func (h *UserHandler) UpdateRole(c echo.Context) error {
	requester, err := principalEmail(c)
	if err != nil {
		return err
	}

	var req updateRoleRequest
	if err := bindPath(c, &req); err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}

	res, err := h.service.UpdateRole(c.Request().Context(), ports.UpdateRoleInput{
		Requester: requester,
		Email:     req.Email,
		Role:      role,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// ListBuyers handles GET /allBuyers.
//
// @Summary      List buyers
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /allBuyers [get]
func (h *UserHandler) ListBuyers(c echo.Context) error {
	return h.listByRole(c, domain.RoleBuyer)
}

// ListSellers handles GET /allSellers.
//
// @Summary      List sellers
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.User
// @Failure      403  {object}  map[string]string
// @Router       /allSellers [get]
func (h *UserHandler) ListSellers(c echo.Context) error {
	return h.listByRole(c, domain.RoleSeller)
}

func (h *UserHandler) listByRole(c echo.Context, role domain.Role) error {
	users, err := h.service.ListByRole(c.Request().Context(), role)
	if err != nil {
		return err
	}
	if users == nil {
		users = []domain.User{}
	}
	return c.JSON(http.StatusOK, users)
}

// Delete handles DELETE /deleteUser/:id.
//
// @Summary      Delete a user
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ObjectID"
// @Success      200  {object}  domain.WriteResult
// @Failure      400  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /deleteUser/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	var req idParam
	if err := bindPath(c, &req); err != nil {
		return err
	}

	res, err := h.service.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}
