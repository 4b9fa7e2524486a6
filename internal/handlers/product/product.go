package product

import (
	"context"
	"encoding/json"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"lumira_back_end/internal/apperrors"
	"lumira_back_end/internal/database"
	"lumira_back_end/internal/models"
	"lumira_back_end/internal/services"
	"lumira_back_end/internal/taxonomy"
)

const productColumns = `product_id, name, category, price, image, images, rating, description, created_at, updated_at`

// productInput est le corps de création/mise à jour. Tous les champs sont
// optionnels pour permettre la mise à jour partielle ; ValidateProductInput
// impose ceux requis à la création.
type productInput struct {
	Name        *string   `json:"name"`
	Category    *string   `json:"category"`
	Price       *float64  `json:"price"`
	Image       *string   `json:"image"`
	Images      *[]string `json:"images"`
	Rating      *float64  `json:"rating"`
	Description *string   `json:"description"`
}

// ValidateProductInput vérifie les champs présents. En création (create=true)
// le nom, un prix et au moins une image sont obligatoires.
func ValidateProductInput(in productInput, create bool) error {
	if create && (in.Name == nil || *in.Name == "") {
		return apperrors.Validation("name")
	}
	if in.Name != nil && *in.Name == "" {
		return apperrors.Validation("name")
	}
	if create && in.Price == nil {
		return apperrors.Validation("price")
	}
	if in.Price != nil && *in.Price < 0 {
		return apperrors.Validationf("Le prix doit être positif ou nul")
	}
	if create {
		hasImage := (in.Image != nil && *in.Image != "") || (in.Images != nil && len(*in.Images) > 0)
		if !hasImage {
			return apperrors.Validationf("Au moins une image est requise")
		}
	}
	return nil
}

// 🟢 POST /api/admin/products
func CreateProduct(c *gin.Context) {
	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := ValidateProductInput(in, true); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	now := time.Now()
	p := models.Product{
		ID:        gocql.TimeUUID(),
		Name:      *in.Name,
		Price:     *in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if in.Category != nil {
		// toujours la clé canonique en base, jamais le libellé français
		p.Category = taxonomy.Canonical(*in.Category)
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.Image != nil && *in.Image != "" {
		p.Image = *in.Image
	} else {
		p.Image = p.Images[0]
	}
	if len(p.Images) == 0 {
		p.Images = []string{p.Image}
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.Description != nil {
		p.Description = *in.Description
	}

	query := `INSERT INTO products (` + productColumns + `) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	if err := session.Query(query, p.ID, p.Name, p.Category, p.Price, p.Image, p.Images, p.Rating, p.Description, p.CreatedAt, p.UpdatedAt).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur création produit: " + err.Error()})
		return
	}

	invalidateProductCache()
	go services.IndexProduct(p)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": p})
}

// 🔵 GET /api/products?category=
func GetAllProducts(c *gin.Context) {
	ctx := context.Background()
	category := c.Query("category")

	// Cache Redis pour la liste complète uniquement
	cacheKey := "products:all"
	if taxonomy.IsAll(category) {
		if val, err := database.RedisClient.Get(ctx, cacheKey).Result(); err == nil && val != "" {
			var cached []models.Product
			if err := json.Unmarshal([]byte(val), &cached); err == nil {
				c.JSON(http.StatusOK, gin.H{"success": true, "data": cached})
				return
			}
		}
	}

	session, err := database.GetProductsSession()
	if err != nil {
		e := apperrors.StoreUnavailable(err)
		c.JSON(e.Code, gin.H{"success": false, "error": e.Message, "data": []models.Product{}})
		return
	}

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).Iter()
	products, err := scanProducts(iter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur lecture produits: " + err.Error(), "data": []models.Product{}})
		return
	}

	products = FilterByCategory(products, category)

	// plus récents d'abord
	sort.Slice(products, func(i, j int) bool {
		return products[i].CreatedAt.After(products[j].CreatedAt)
	})

	if taxonomy.IsAll(category) {
		if data, err := json.Marshal(products); err == nil {
			database.RedisClient.Set(ctx, cacheKey, data, time.Hour)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

// FilterByCategory restreint une liste à une catégorie, quelle que soit la
// représentation du filtre (clé de stockage, libellé français ou slug) — et
// défensivement quelle que soit l'orthographe stockée sur le produit.
func FilterByCategory(products []models.Product, category string) []models.Product {
	if taxonomy.IsAll(category) {
		return products
	}
	want := taxonomy.Canonical(category)

	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if taxonomy.Canonical(p.Category) == want {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

// 🔵 GET /api/products/:id
func GetProduct(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID produit invalide"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	var p models.Product
	if err := session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, productID).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Image, &p.Images, &p.Rating, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		c.JSON(apperrors.NotFound("Produit").Envelope())
		return
	}

	// la fiche produit sert des URLs signées, la liste garde les URLs durables
	services.SignProductImages(c.Request.Context(), &p)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

// 🟡 PUT /api/admin/products/:id
func UpdateProduct(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID produit invalide"})
		return
	}

	var in productInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	if err := ValidateProductInput(in, false); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	var p models.Product
	if err := session.Query(`SELECT `+productColumns+` FROM products WHERE product_id = ?`, productID).
		Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Image, &p.Images, &p.Rating, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		c.JSON(apperrors.NotFound("Produit").Envelope())
		return
	}

	if in.Name != nil {
		p.Name = *in.Name
	}
	if in.Category != nil {
		p.Category = taxonomy.Canonical(*in.Category)
	}
	if in.Price != nil {
		p.Price = *in.Price
	}
	if in.Image != nil {
		p.Image = *in.Image
	}
	if in.Images != nil {
		p.Images = *in.Images
	}
	if in.Rating != nil {
		p.Rating = *in.Rating
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	p.UpdatedAt = time.Now()

	query := `UPDATE products SET name = ?, category = ?, price = ?, image = ?, images = ?, rating = ?, description = ?, updated_at = ? WHERE product_id = ?`
	if err := session.Query(query, p.Name, p.Category, p.Price, p.Image, p.Images, p.Rating, p.Description, p.UpdatedAt, p.ID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur mise à jour produit: " + err.Error()})
		return
	}

	invalidateProductCache()
	go services.IndexProduct(p)

	c.JSON(http.StatusOK, gin.H{"success": true, "data": p})
}

// ❌ DELETE /api/admin/products/:id
// Une seconde suppression répond "introuvable" : les appelants doivent la
// traiter comme déjà satisfaite.
func DeleteProduct(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID produit invalide"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	var name string
	if err := session.Query(`SELECT name FROM products WHERE product_id = ?`, productID).Scan(&name); err != nil {
		c.JSON(apperrors.NotFound("Produit").Envelope())
		return
	}

	if err := session.Query(`DELETE FROM products WHERE product_id = ?`, productID).Exec(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur suppression produit: " + err.Error()})
		return
	}

	invalidateProductCache()
	go services.RemoveProductFromIndex(productID.String())

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Produit supprimé"})
}

// 🔎 GET /api/products/search?q=
func SearchProducts(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "paramètre 'q' manquant"})
		return
	}

	// 1️⃣ Elasticsearch en priorité
	results, err := services.SearchProducts(query)
	if err == nil && len(results) > 0 {
		c.JSON(http.StatusOK, gin.H{"success": true, "data": results})
		return
	}

	// 2️⃣ Repli ScyllaDB : scan complet filtré en mémoire
	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	iter := session.Query(`SELECT ` + productColumns + ` FROM products`).Iter()
	all, err := scanProducts(iter)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur recherche: " + err.Error()})
		return
	}

	var products []models.Product
	for _, p := range all {
		if containsIgnoreCase(p.Name, query) || containsIgnoreCase(p.Description, query) {
			products = append(products, p)
		}
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": products})
}

func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func scanProducts(iter *gocql.Iter) ([]models.Product, error) {
	var products []models.Product
	var p models.Product
	for iter.Scan(&p.ID, &p.Name, &p.Category, &p.Price, &p.Image, &p.Images, &p.Rating, &p.Description, &p.CreatedAt, &p.UpdatedAt) {
		products = append(products, p)
		p = models.Product{}
	}
	if err := iter.Close(); err != nil {
		return nil, err
	}
	return products, nil
}

func invalidateProductCache() {
	database.RedisClient.Del(context.Background(), "products:all")
}
