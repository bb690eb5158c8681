package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/kostify/middlewares"
	"github.com/yeremiapane/kostify/models"
	"github.com/yeremiapane/kostify/utils"
	"gorm.io/gorm"
)

const trialPeriod = 14 * 24 * time.Hour

var errInvalidCredentials = errors.New("invalid credentials")

type UserController struct {
	DB     *gorm.DB
	Tokens *utils.TokenService
}

func NewUserController(db *gorm.DB, tokens *utils.TokenService) *UserController {
	return &UserController{DB: db, Tokens: tokens}
}

type registerRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	FullName string `json:"full_name" binding:"required"`
	Phone    string `json:"phone" binding:"required"`
	Role     string `json:"role" binding:"omitempty,oneof=owner"`
}

// Register creates an owner account on a 14 day trial and logs it in.
// Pengelola accounts are only created by their owner.
func (uc *UserController) Register(c *gin.Context) {
	var req registerRequest
	if !bindJSON(c, &req) {
		return
	}

	db := uc.DB.WithContext(c.Request.Context())
	taken, err := emailTaken(db, req.Email)
	if err != nil {
		respondStoreError(c, err, "user")
		return
	}
	if taken {
		utils.RespondError(c, http.StatusConflict, ErrEmailTaken)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		respondStoreError(c, err, "user")
		return
	}

	trialEnd := time.Now().UTC().Add(trialPeriod)
	user := models.User{
		Email:              req.Email,
		Password:           hashed,
		FullName:           req.FullName,
		Phone:              req.Phone,
		Role:               models.RoleOwner,
		IsOwner:            true,
		SubscriptionStatus: models.SubscriptionTrial,
		TrialEndDate:       &trialEnd,
	}
	if err := db.Create(&user).Error; err != nil {
		respondStoreError(c, err, "user")
		return
	}

	token, err := uc.Tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		respondStoreError(c, err, "token")
		return
	}

	utils.InfoLogger.Printf("New user registered: %s (role=%s)", user.Email, user.Role)
	utils.RespondJSON(c, http.StatusCreated, "User registered", gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (uc *UserController) Login(c *gin.Context) {
	var req loginRequest
	if !bindJSON(c, &req) {
		return
	}

	var user models.User
	err := uc.DB.WithContext(c.Request.Context()).Where("email = ?", req.Email).First(&user).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		respondStoreError(c, err, "user")
		return
	}
	// an unknown email still pays for a bcrypt comparison
	if !utils.CheckPassword(req.Password, user.Password) || err != nil {
		utils.RespondError(c, http.StatusUnauthorized, errInvalidCredentials)
		return
	}

	token, err := uc.Tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		respondStoreError(c, err, "token")
		return
	}

	user.Password = ""
	utils.InfoLogger.Printf("Login successful for user: %s", user.Email)
	utils.RespondJSON(c, http.StatusOK, "Login successful", gin.H{
		"access_token": token,
		"token_type":   "bearer",
		"user":         user,
	})
}

// Me returns the authenticated user.
func (uc *UserController) Me(c *gin.Context) {
	utils.RespondJSON(c, http.StatusOK, "Current user", middlewares.CurrentUser(c))
}

func emailTaken(db *gorm.DB, email string) (bool, error) {
	var count int64
	if err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}
