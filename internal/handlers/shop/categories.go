package shop

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumira_back_end/internal/taxonomy"
)

// 🔵 GET /api/categories
// La navigation et les filtres consomment la même table de correspondance
// que le reste du système : clé de stockage, libellé français, slug.
func GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": taxonomy.Categories()})
}
