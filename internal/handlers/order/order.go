package order

import (
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"lumira_back_end/internal/apperrors"
	cartpkg "lumira_back_end/internal/cart"
	"lumira_back_end/internal/database"
	"lumira_back_end/internal/models"
	"lumira_back_end/internal/utils"
)

const orderColumns = `order_id, customer_name, phone, city, address, items, total, status, created_at`

// DeliveryInfo est le formulaire de livraison du checkout (paiement à la
// livraison, pas d'e-mail client).
type DeliveryInfo struct {
	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	City         string `json:"city"`
	Address      string `json:"address"`
}

// ValidateDelivery vérifie les quatre champs requis et nomme le premier
// champ manquant, pour que le formulaire sache quoi signaler.
func ValidateDelivery(info DeliveryInfo) error {
	fields := []struct{ name, value string }{
		{"customerName", info.CustomerName},
		{"phone", info.Phone},
		{"city", info.City},
		{"address", info.Address},
	}
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			return apperrors.Validation(f.name)
		}
	}
	return nil
}

// BuildOrder assemble une commande depuis un panier non vide : copie
// profonde des lignes, total figé au moment de l'achat, statut pending.
func BuildOrder(ct *cartpkg.Cart, info DeliveryInfo) (models.Order, error) {
	if err := ValidateDelivery(info); err != nil {
		return models.Order{}, err
	}
	if ct.IsEmpty() {
		return models.Order{}, apperrors.Validationf("Le panier est vide")
	}

	return models.Order{
		ID:           gocql.TimeUUID(),
		CustomerName: info.CustomerName,
		Phone:        info.Phone,
		City:         info.City,
		Address:      info.Address,
		Items:        ct.Items(), // copie, pas une référence
		Total:        ct.Total(),
		Status:       models.StatusPending,
		CreatedAt:    time.Now(),
	}, nil
}

// 🟢 POST /api/orders — checkout de la session courante.
// Le panier n'est vidé qu'après persistance réussie.
func CreateOrder(c *gin.Context) {
	var info DeliveryInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Données invalides"})
		return
	}

	sessionID := c.GetString("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Session manquante"})
		return
	}

	store := cartpkg.NewStore(database.RedisClient)
	ct, err := store.Load(c.Request.Context(), sessionID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur lecture panier"})
		return
	}

	order, err := BuildOrder(ct, info)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	itemsJSON, err := json.Marshal(order.Items)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur encodage commande"})
		return
	}

	query := `INSERT INTO orders (` + orderColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := session.Query(query, order.ID, order.CustomerName, order.Phone, order.City, order.Address,
		string(itemsJSON), order.Total, order.Status, order.CreatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur création commande: " + err.Error()})
		return
	}

	// La commande est persistée : on vide le panier et on prévient la boutique.
	if err := store.Delete(c.Request.Context(), sessionID); err != nil {
		// la commande existe, l'échec du vidage n'est pas bloquant
		c.Header("X-Cart-Clear-Failed", "true")
	}
	go utils.SendNewOrderEmail(order)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": order})
}

// MatchOrder applique les filtres de la liste admin : statut exact (après
// normalisation) et recherche insensible à la casse sur le nom du client,
// le téléphone ou l'identifiant.
func MatchOrder(o models.Order, status, search string) bool {
	if status != "" && o.Status != status {
		return false
	}
	if search == "" {
		return true
	}
	needle := strings.ToLower(search)
	return strings.Contains(strings.ToLower(o.CustomerName), needle) ||
		strings.Contains(strings.ToLower(o.Phone), needle) ||
		strings.Contains(strings.ToLower(o.ID.String()), needle)
}

// 🔵 GET /api/admin/orders?status=&q=
func ListOrders(c *gin.Context) {
	status := models.NormalizeStatus(c.Query("status"))
	search := c.Query("q")

	session, err := database.GetOrdersSession()
	if err != nil {
		e := apperrors.StoreUnavailable(err)
		c.JSON(e.Code, gin.H{"success": false, "error": e.Message, "data": []models.Order{}})
		return
	}

	iter := session.Query(`SELECT ` + orderColumns + ` FROM orders`).Iter()
	all, err := scanOrders(iter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur lecture commandes: " + err.Error(), "data": []models.Order{}})
		return
	}

	orders := make([]models.Order, 0, len(all))
	for _, o := range all {
		if MatchOrder(o, status, search) {
			orders = append(orders, o)
		}
	}

	// plus récentes d'abord
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})

	c.JSON(http.StatusOK, gin.H{"success": true, "data": orders})
}

// 🔵 GET /api/admin/orders/:id
func GetOrder(c *gin.Context) {
	orderID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID commande invalide"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	o, err := fetchOrder(session, orderID)
	if err != nil {
		c.JSON(apperrors.NotFound("Commande").Envelope())
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": o})
}

// 🟡 PUT /api/admin/orders/:id/status
// Écrasement inconditionnel dans l'énumération canonique : pas de graphe de
// transitions. Le chiffre d'affaires n'est jamais patché ici — il est
// recalculé depuis les commandes à chaque lecture du dashboard.
func UpdateOrderStatus(c *gin.Context) {
	orderID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID commande invalide"})
		return
	}

	var req struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if !models.IsValidStatus(req.Status) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Statut inconnu: " + req.Status})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	o, err := fetchOrder(session, orderID)
	if err != nil {
		c.JSON(apperrors.NotFound("Commande").Envelope())
		return
	}

	if err := session.Query(`UPDATE orders SET status = ? WHERE order_id = ?`, req.Status, orderID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur mise à jour statut: " + err.Error()})
		return
	}

	o.Status = req.Status
	c.JSON(http.StatusOK, gin.H{"success": true, "data": o})
}

// ❌ DELETE /api/admin/orders/:id — outil administratif, hors du cycle de
// vie normal d'une commande.
func DeleteOrder(c *gin.Context) {
	orderID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID commande invalide"})
		return
	}

	session, err := database.GetOrdersSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	if _, err := fetchOrder(session, orderID); err != nil {
		c.JSON(apperrors.NotFound("Commande").Envelope())
		return
	}

	if err := session.Query(`DELETE FROM orders WHERE order_id = ?`, orderID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur suppression commande: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Commande supprimée"})
}

func fetchOrder(session *gocql.Session, orderID gocql.UUID) (models.Order, error) {
	var o models.Order
	var itemsJSON string
	err := session.Query(`SELECT `+orderColumns+` FROM orders WHERE order_id = ?`, orderID).
		Scan(&o.ID, &o.CustomerName, &o.Phone, &o.City, &o.Address, &itemsJSON, &o.Total, &o.Status, &o.CreatedAt)
	if err != nil {
		return models.Order{}, err
	}
	decodeOrder(&o, itemsJSON)
	return o, nil
}

func scanOrders(iter *gocql.Iter) ([]models.Order, error) {
	var orders []models.Order
	var o models.Order
	var itemsJSON string
	for iter.Scan(&o.ID, &o.CustomerName, &o.Phone, &o.City, &o.Address, &itemsJSON, &o.Total, &o.Status, &o.CreatedAt) {
		decodeOrder(&o, itemsJSON)
		orders = append(orders, o)
		o = models.Order{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return orders, nil
}

func decodeOrder(o *models.Order, itemsJSON string) {
	if itemsJSON != "" {
		_ = json.Unmarshal([]byte(itemsJSON), &o.Items)
	}
	o.Status = models.NormalizeStatus(o.Status)
}
