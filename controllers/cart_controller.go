package controllers

import (
	"context"

	"as-production-store/cart"
	"as-production-store/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// SessionHeader carries the opaque cart session token. The server issues
// one on the first cart request and echoes it on every response; the
// storefront sends it back on subsequent requests.
const SessionHeader = "X-Cart-Session"

// ProductFinder is the catalog lookup the cart needs; satisfied by
// repositories.ProductRepository.
type ProductFinder interface {
	FindActiveByID(ctx context.Context, id string) (*models.Product, error)
}

// EnquirySettingsSource supplies the admin-managed enquiry configuration;
// satisfied by repositories.SettingsRepository. Lookup errors are treated
// as "no settings", so the composer falls back to its defaults.
type EnquirySettingsSource interface {
	GetEnquirySettings(ctx context.Context) (*models.EnquirySettings, error)
}

type CartController struct {
	carts    *cart.Store
	products ProductFinder
	settings EnquirySettingsSource
}

func NewCartController(carts *cart.Store, products ProductFinder, settings EnquirySettingsSource) *CartController {
	return &CartController{carts: carts, products: products, settings: settings}
}

func (ctrl *CartController) session(c *gin.Context) string {
	token := ctrl.carts.EnsureToken(c.GetHeader(SessionHeader))
	c.Header(SessionHeader, token)
	return token
}

func cartPayload(snap cart.Snapshot) gin.H {
	return gin.H{
		"items":           snap.Items,
		"count":           snap.Count,
		"total":           snap.Total,
		"total_formatted": cart.FormatINR(snap.Total),
	}
}

// @Summary Get cart
// @Description Get the session's cart with derived count and total
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Success 200 {object} models.Response
// @Router /cart [get]
func (ctrl *CartController) GetCart(c *gin.Context) {
	token := ctrl.session(c)
	c.JSON(200, gin.H{"success": true, "message": "Cart retrieved", "data": cartPayload(ctrl.carts.Snapshot(token))})
}

// @Summary Add product to cart
// @Description Add a product; adding an already-present product increments its quantity
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Param request body models.AddCartItemRequest true "Product to add"
// @Success 200 {object} models.Response
// @Failure 404 {object} models.ErrorResponse
// @Router /cart/items [post]
func (ctrl *CartController) AddItem(c *gin.Context) {
	token := ctrl.session(c)

	var req models.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "product_id is required"})
		return
	}

	product, err := ctrl.products.FindActiveByID(c.Request.Context(), req.ProductID)
	if err != nil {
		c.JSON(404, gin.H{"success": false, "message": "Product not found"})
		return
	}

	ctrl.carts.Add(token, cart.Product{
		ID:        product.ID,
		Name:      product.Name,
		Price:     decimal.NewFromFloat(product.Price),
		Category:  product.Category,
		ImageURLs: product.ImageURLs,
		ShowPrice: product.ShowPrice,
	})

	c.JSON(200, gin.H{"success": true, "message": "Product added to cart", "data": cartPayload(ctrl.carts.Snapshot(token))})
}

// @Summary Update cart item quantity
// @Description Set a line item's quantity; zero or less removes it. Unknown ids are a no-op
// @Tags Cart
// @Accept json
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Param id path string true "Product ID"
// @Param request body models.UpdateCartItemRequest true "New quantity"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [patch]
func (ctrl *CartController) UpdateItem(c *gin.Context) {
	token := ctrl.session(c)

	var req models.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(400, gin.H{"success": false, "message": "quantity is required"})
		return
	}

	ctrl.carts.SetQuantity(token, c.Param("id"), req.Quantity)

	c.JSON(200, gin.H{"success": true, "message": "Cart updated", "data": cartPayload(ctrl.carts.Snapshot(token))})
}

// @Summary Remove cart item
// @Description Remove a line item; unknown ids are a no-op
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Param id path string true "Product ID"
// @Success 200 {object} models.Response
// @Router /cart/items/{id} [delete]
func (ctrl *CartController) RemoveItem(c *gin.Context) {
	token := ctrl.session(c)
	ctrl.carts.Remove(token, c.Param("id"))

	c.JSON(200, gin.H{"success": true, "message": "Item removed", "data": cartPayload(ctrl.carts.Snapshot(token))})
}

// @Summary Clear cart
// @Description Empty the session's cart unconditionally
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Success 200 {object} models.Response
// @Router /cart [delete]
func (ctrl *CartController) ClearCart(c *gin.Context) {
	token := ctrl.session(c)
	ctrl.carts.Clear(token)

	c.JSON(200, gin.H{"success": true, "message": "Cart cleared", "data": cartPayload(ctrl.carts.Snapshot(token))})
}

// @Summary Compose WhatsApp enquiry
// @Description Build the enquiry message and wa.me deep link from the cart and stored settings
// @Tags Cart
// @Produce json
// @Param X-Cart-Session header string false "Cart session token"
// @Success 200 {object} models.Response
// @Failure 400 {object} models.ErrorResponse
// @Router /cart/enquiry [post]
func (ctrl *CartController) ComposeEnquiry(c *gin.Context) {
	token := ctrl.session(c)

	snap := ctrl.carts.Snapshot(token)
	if len(snap.Items) == 0 {
		c.JSON(400, gin.H{"success": false, "message": "Cart is empty"})
		return
	}

	var settings *cart.Settings
	if stored, err := ctrl.settings.GetEnquirySettings(c.Request.Context()); err == nil {
		settings = &cart.Settings{
			WhatsAppNumber: stored.WhatsAppNumber,
			PrefilledText:  stored.PrefilledText,
		}
	}

	enquiry := cart.Compose(snap.Items, settings)

	c.JSON(200, gin.H{"success": true, "message": "Enquiry composed", "data": enquiry})
}
