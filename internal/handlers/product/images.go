package product

import (
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gocql/gocql"

	"lumira_back_end/internal/apperrors"
	"lumira_back_end/internal/database"
	"lumira_back_end/internal/images"
	"lumira_back_end/internal/services"
)

// =========================
// 🟢 UPLOAD D'IMAGES (LOT)
// =========================
// Reçoit un lot multipart (sélecteur, drag-drop ou collage — tous passent
// par ici). Chaque fichier est validé et envoyé séquentiellement ; les refus
// sont agrégés dans un seul message sans annuler les uploads réussis.
func UploadImages(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Formulaire multipart invalide"})
		return
	}

	fileHeaders := form.File["files"]
	if len(fileHeaders) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Aucun fichier fourni"})
		return
	}

	var files []services.UploadFile
	for _, header := range fileHeaders {
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Impossible de lire '" + header.Filename + "'"})
			return
		}
		data, err := io.ReadAll(f)
		f.Close()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Impossible de lire '" + header.Filename + "'"})
			return
		}
		files = append(files, services.UploadFile{
			Name:        header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Data:        data,
		})
	}

	pipeline := services.NewIntakePipeline(services.MinIOStorage{})
	result := pipeline.ProcessBatch(c.Request.Context(), files)

	if len(result.URLs) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": result.ErrorMessage()})
		return
	}

	resp := gin.H{"success": true, "urls": result.URLs}
	if msg := result.ErrorMessage(); msg != "" {
		resp["error"] = msg
	}
	c.JSON(http.StatusOK, resp)
}

// galleryOf retrouve l'index de l'image principale dans la galerie.
func galleryOf(image string, gallery []string) int {
	for i, url := range gallery {
		if url == image {
			return i
		}
	}
	return images.NoMain
}

// 🟡 POST /api/admin/products/:id/images — ajoute une URL à la galerie.
// La première image ajoutée devient l'image principale.
func AddProductImage(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID produit invalide"})
		return
	}

	var req struct {
		URL string `json:"url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	var image string
	var gallery []string
	if err := session.Query(`SELECT image, images FROM products WHERE product_id = ?`, productID).Scan(&image, &gallery); err != nil {
		c.JSON(apperrors.NotFound("Produit").Envelope())
		return
	}

	main := galleryOf(image, gallery)
	gallery, main = images.Append(gallery, main, req.URL)
	image = gallery[main]

	if err := persistGallery(session, productID, image, gallery); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur mise à jour galerie: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"image": image, "images": gallery}})
}

// ❌ DELETE /api/admin/products/:id/images/:index — retire une image.
// Si l'image principale est retirée, la première restante la remplace ;
// retirer une image placée avant décale l'index pour préserver le choix.
func RemoveProductImage(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID produit invalide"})
		return
	}
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Index d'image invalide"})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	var image string
	var gallery []string
	if err := session.Query(`SELECT image, images FROM products WHERE product_id = ?`, productID).Scan(&image, &gallery); err != nil {
		c.JSON(apperrors.NotFound("Produit").Envelope())
		return
	}
	if index < 0 || index >= len(gallery) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Index d'image hors limites"})
		return
	}

	main := galleryOf(image, gallery)
	gallery, main = images.RemoveAt(gallery, main, index)
	if main == images.NoMain {
		image = ""
	} else {
		image = gallery[main]
	}

	if err := persistGallery(session, productID, image, gallery); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur mise à jour galerie: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"image": image, "images": gallery}})
}

// 🟡 PUT /api/admin/products/:id/images/main — désigne l'image principale.
func SetMainImage(c *gin.Context) {
	productID, err := gocql.ParseUUID(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "ID produit invalide"})
		return
	}

	var req struct {
		Index int `json:"index"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}

	session, err := database.GetProductsSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	var image string
	var gallery []string
	if err := session.Query(`SELECT image, images FROM products WHERE product_id = ?`, productID).Scan(&image, &gallery); err != nil {
		c.JSON(apperrors.NotFound("Produit").Envelope())
		return
	}
	if req.Index < 0 || req.Index >= len(gallery) {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Index d'image hors limites"})
		return
	}

	image = gallery[req.Index]
	if err := persistGallery(session, productID, image, gallery); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur mise à jour galerie: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{"image": image, "images": gallery}})
}

func persistGallery(session *gocql.Session, productID gocql.UUID, image string, gallery []string) error {
	err := session.Query(`UPDATE products SET image = ?, images = ?, updated_at = ? WHERE product_id = ?`,
		image, gallery, time.Now(), productID).Exec()
	if err == nil {
		invalidateProductCache()
	}
	return err
}
