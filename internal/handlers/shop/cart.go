package shop

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"lumira_back_end/internal/apperrors"
	"lumira_back_end/internal/cart"
	"lumira_back_end/internal/database"
	"lumira_back_end/internal/models"
)

// loadCart charge le panier de la session invitée courante.
func loadCart(c *gin.Context) (string, *cart.Store, *cart.Cart, bool) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Session manquante"})
		return "", nil, nil, false
	}

	store := cart.NewStore(database.RedisClient)
	ct, err := store.Load(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur lecture panier"})
		return "", nil, nil, false
	}
	return sessionID, store, ct, true
}

// 🔵 GET /api/cart
func GetCart(c *gin.Context) {
	_, _, ct, ok := loadCart(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": ct.Items(), "total": ct.Total()}})
}

// 🟢 POST /api/cart/add
// Le nom, le prix et l'image du produit sont figés dans la ligne de panier ;
// une modification ultérieure du produit ne les rafraîchit pas.
func AddToCart(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}
	if input.Quantity <= 0 {
		input.Quantity = 1
	}

	productID, err := gocql.ParseUUID(input.ProductID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID produit invalide"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	var name, image string
	var price float64
	if err := session.Query(`SELECT name, price, image FROM products WHERE product_id = ?`, productID).
		Scan(&name, &price, &image); err != nil {
		c.JSON(apperrors.NotFound("Produit").Envelope())
		return
	}

	sessionID, store, ct, ok := loadCart(c)
	if !ok {
		return
	}

	ct.Add(models.CartItem{
		ProductID: input.ProductID,
		Name:      name,
		Price:     price,
		ImageURL:  image,
	}, input.Quantity)

	if err := store.Save(c.Request.Context(), sessionID, ct); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": ct.Items(), "total": ct.Total()}})
}

// 🟡 PUT /api/cart/quantity — quantité ≤ 0 supprime la ligne.
func UpdateQuantity(c *gin.Context) {
	var input struct {
		ProductID string `json:"productId" binding:"required"`
		Quantity  int    `json:"quantity"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}

	sessionID, store, ct, ok := loadCart(c)
	if !ok {
		return
	}

	ct.SetQuantity(input.ProductID, input.Quantity)

	if err := store.Save(c.Request.Context(), sessionID, ct); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": ct.Items(), "total": ct.Total()}})
}

// ❌ DELETE /api/cart/:productId
func RemoveFromCart(c *gin.Context) {
	sessionID, store, ct, ok := loadCart(c)
	if !ok {
		return
	}

	ct.Remove(c.Param("productId"))

	if err := store.Save(c.Request.Context(), sessionID, ct); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"items": ct.Items(), "total": ct.Total()}})
}

// 🧹 DELETE /api/cart
func ClearCart(c *gin.Context) {
	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Session manquante"})
		return
	}

	store := cart.NewStore(database.RedisClient)
	if err := store.Delete(c.Request.Context(), sessionID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Panier vidé avec succès"})
}
