package admin

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"lumira_back_end/internal/apperrors"
	"lumira_back_end/internal/database"
	"lumira_back_end/internal/models"
)

// GetDashboardStats retourne les statistiques du dashboard admin,
// recalculées depuis les données vivantes à chaque affichage (pas de cache).
func GetDashboardStats(c *gin.Context) {
	ordersSession, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	var orders []models.Order
	iter := ordersSession.Query(`SELECT status, total FROM orders`).Iter()
	var status string
	var total float64
	for iter.Scan(&status, &total) {
		orders = append(orders, models.Order{Status: status, Total: total})
	}
	if err := iter.Close(); err != nil {
		log.Printf("❌ Erreur lecture stats commandes: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur lecture commandes"})
		return
	}

	productsSession, err := database.GetProductsSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	totalProducts := 0
	prodIter := productsSession.Query(`SELECT product_id FROM products`).Iter()
	// destination typée obligatoire : gocql ne désérialise pas un uuid
	// vers interface{}
	var id gocql.UUID
	for prodIter.Scan(&id) {
		totalProducts++
	}
	if err := prodIter.Close(); err != nil {
		log.Printf("❌ Erreur lecture stats produits: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur lecture produits"})
		return
	}

	stats := ComputeStats(totalProducts, orders)

	c.JSON(http.StatusOK, gin.H{
		"success":      true,
		"data":         stats,
		"generated_at": time.Now(),
	})
}
