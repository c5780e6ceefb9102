// file: controllers/auth_controller.go
package controllers

import (
	"net/http"
	"strings"

	"hatch/database"
	"hatch/models"
	"hatch/utils"

	"github.com/gin-gonic/gin"
)

func Signup(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Email and password required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !strings.Contains(email, "@") {
		utils.Error(c, http.StatusBadRequest, "Invalid email")
		return
	}

	var existing models.User
	if err := database.DB.Where("email = ?", email).First(&existing).Error; err == nil {
		utils.Error(c, http.StatusConflict, "User already exists")
		return
	}

	newUser := models.User{
		Email:    email,
		Password: req.Password,
	}
	if err := database.DB.Create(&newUser).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Server error: "+err.Error())
		return
	}

	token, err := utils.GenerateToken(newUser.ID, newUser.Email)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Token generation failed")
		return
	}

	utils.Created(c, "Signup successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":    newUser.ID,
			"email": newUser.Email,
		},
	})
}

func Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.Error(c, http.StatusBadRequest, "Email and password required")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	if err := database.DB.Where("email = ?", email).First(&user).Error; err != nil {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}
	if !user.CheckPassword(req.Password) {
		utils.Error(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := utils.GenerateToken(user.ID, user.Email)
	if err != nil {
		utils.Error(c, http.StatusInternalServerError, "Token generation failed")
		return
	}

	utils.Success(c, "Login successful", gin.H{
		"token": token,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
		},
	})
}
