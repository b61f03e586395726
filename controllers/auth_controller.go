package controllers

import (
	"errors"
	"net/http"
	"time"

	"school_equipment_lending/app"
	"school_equipment_lending/auth"
	"school_equipment_lending/lending"
	"school_equipment_lending/models"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type AuthController struct{ *Srv }

func NewAuthController(s *Srv) *AuthController { return &AuthController{Srv: s} }

// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var in struct {
		Name     string `json:"name" binding:"required"`
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required,min=8"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	if _, err := ac.Repo.FindUserByEmail(c.Request.Context(), in.Email); err == nil {
		c.JSON(http.StatusConflict, app.H{"error": "email already registered"})
		return
	} else {
		var nf *lending.NotFoundError
		if !errors.As(err, &nf) {
			writeError(c, err)
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		writeError(c, err)
		return
	}

	// Self-service accounts start as students; staff and admin roles are
	// granted by an admin afterwards.
	u := &models.User{
		ID:           uuid.NewString(),
		Name:         in.Name,
		Email:        in.Email,
		PasswordHash: string(hash),
		Role:         models.RoleStudent,
	}
	if err := ac.Repo.CreateUser(c.Request.Context(), u); err != nil {
		writeError(c, err)
		return
	}

	token, err := auth.GenerateToken(ac.Cfg.JWTSecret, u.ID, u.Name, u.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, app.H{"user": u, "token": token})
}

// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var in struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}

	u, err := ac.Repo.FindUserByEmail(c.Request.Context(), in.Email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "invalid email or password"})
		return
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(in.Password)) != nil {
		c.JSON(http.StatusUnauthorized, app.H{"error": "invalid email or password"})
		return
	}

	_ = ac.Repo.TouchUserLogin(c.Request.Context(), u.ID) // best effort

	token, err := auth.GenerateToken(ac.Cfg.JWTSecret, u.ID, u.Name, u.Role)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"user": u, "token": token})
}

// POST /api/auth/logout
func (ac *AuthController) Logout(c *gin.Context) {
	jti := c.GetString("jti")
	exp, _ := c.Get("tokenExp")
	expiresAt, _ := exp.(time.Time)
	if jti != "" {
		if err := ac.Tokens.Revoke(c.Request.Context(), jti, expiresAt); err != nil {
			writeError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	u, err := ac.Repo.FindUserByID(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"user": u})
}
