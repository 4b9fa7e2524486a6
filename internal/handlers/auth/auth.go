package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lumira_back_end/internal/apperrors"
	"lumira_back_end/internal/database"
	"lumira_back_end/internal/models"
	"lumira_back_end/internal/utils"
)

// 🟢 POST /api/admin/login
// Les identifiants vivent dans la table users (hash Argon2id), jamais en dur
// dans le code.
func Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Email et mot de passe requis"})
		return
	}

	session, err := database.GetUsersSession()
	if err != nil {
		c.JSON(apperrors.StoreUnavailable(err).Envelope())
		return
	}

	var user models.AdminUser
	if err := session.Query(`SELECT user_id, email, password_hash, role FROM users WHERE email = ?`, input.Email).
		Scan(&user.ID, &user.Email, &user.PasswordHash, &user.Role); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Identifiants invalides"})
		return
	}

	ok, err := utils.VerifyPassword(input.Password, user.PasswordHash)
	if err != nil || !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Identifiants invalides"})
		return
	}

	token, err := utils.GenerateJWT(user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Erreur génération token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"data": gin.H{
			"token": token,
			"email": user.Email,
			"role":  user.Role,
		},
	})
}
