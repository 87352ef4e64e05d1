package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/utilize/marketplace-api/internal/core/domain"
	"github.com/utilize/marketplace-api/internal/core/ports"
)

// HeaderIdempotencyKey lets clients retry POST /purchase safely.
const HeaderIdempotencyKey = "Idempotency-Key"

// OrderHandler handles purchases and wishlists.
type OrderHandler struct {
	purchases ports.PurchaseService
	wishlist  ports.WishlistService
}

func NewOrderHandler(purchases ports.PurchaseService, wishlist ports.WishlistService) *OrderHandler {
	return &OrderHandler{purchases: purchases, wishlist: wishlist}
}

// CreatePurchase handles POST /purchase.
//
// @Summary      Place a purchase order
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        Idempotency-Key  header    string           false  "Idempotency key to prevent duplicate orders"
// @Param        body             body      purchaseRequest  true   "Purchase"
// @Success      201              {object}  successResponse
// @Success      200              {object}  successResponse  "replayed"
// @Failure      400              {object}  map[string]string
// @Failure      401              {object}  map[string]string
// @Failure      403              {object}  map[string]string
// @Failure      409              {object}  map[string]string
// @Router       /purchase [post]
func (h *OrderHandler) CreatePurchase(c echo.Context) error {
	email, err := principalEmail(c)
	if err != nil {
		return err
	}

	var req purchaseRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	key := ports.IdempotencyKey{Owner: email, Key: c.Request().Header.Get(HeaderIdempotencyKey)}
	out, err := h.purchases.Create(c.Request().Context(), toPurchase(req, email), key)
	if err != nil {
		return err
	}

	status := http.StatusCreated
	if out.AlreadyExisted {
		status = http.StatusOK
	}
	return c.JSON(status, successResponse{Success: true, Result: out.Result, Replay: out.AlreadyExisted})
}

// MyOrders handles GET /myOrder?email=.
//
// @Summary      List purchases by buyer
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        email  query     string  false  "Buyer email, defaults to the caller"
// @Success      200    {array}   domain.Purchase
// @Failure      401    {object}  map[string]string
// @Router       /myOrder [get]
func (h *OrderHandler) MyOrders(c echo.Context) error {
	email, err := principalEmail(c)
	if err != nil {
		return err
	}

	var req myOrdersQuery
	if err := bindQuery(c, &req); err != nil {
		return err
	}
	if req.Email != "" {
		email = req.Email
	}

	orders, err := h.purchases.ListByBuyer(c.Request().Context(), email)
	if err != nil {
		return err
	}
	if orders == nil {
		orders = []domain.Purchase{}
	}
	return c.JSON(http.StatusOK, orders)
}

// DeletePurchase handles DELETE /purchase/:id.
//
// @Summary      Cancel a purchase
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Purchase ObjectID"
// @Success      200  {object}  domain.WriteResult
// @Failure      400  {object}  map[string]string
// @Router       /purchase/{id} [delete]
func (h *OrderHandler) DeletePurchase(c echo.Context) error {
	var req idParam
	if err := bindPath(c, &req); err != nil {
		return err
	}

	res, err := h.purchases.Delete(c.Request().Context(), req.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, res)
}

// AddWish handles POST /add_wish.
//
// @Summary      Add a product to a wishlist
// @Tags         orders
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      wishRequest  true  "Wishlist item"
// @Success      201   {object}  successResponse
// @Failure      400   {object}  map[string]string
// @Router       /add_wish [post]
func (h *OrderHandler) AddWish(c echo.Context) error {
	email, err := principalEmail(c)
	if err != nil {
		return err
	}

	var req wishRequest
	if err := bindBody(c, &req); err != nil {
		return err
	}

	res, err := h.wishlist.Add(c.Request().Context(), toWishlistItem(req, email))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, successResponse{Success: true, Result: res})
}

// Wishlist handles GET /wishlist/:user.
//
// @Summary      List a user's wishlist
// @Tags         orders
// @Produce      json
// @Security     BearerAuth
// @Param        user  path      string  true  "User email"
// @Success      200   {array}   domain.WishlistItem
// @Router       /wishlist/{user} [get]
func (h *OrderHandler) Wishlist(c echo.Context) error {
	var req wishlistParam
	if err := bindPath(c, &req); err != nil {
		return err
	}

	items, err := h.wishlist.ListByUser(c.Request().Context(), req.User)
	if err != nil {
		return err
	}
	if items == nil {
		items = []domain.WishlistItem{}
	}
	return c.JSON(http.StatusOK, items)
}
