package controllers

import (
	"net/http"
	"strings"
	"time"

	dbpkg "formforge/db"
	"formforge/models"
	"formforge/tools"

	"github.com/gin-gonic/gin"
)

type RegisterRequest struct {
	Email        string `json:"email" form:"email"`
	Password     string `json:"password" form:"password"`
	Name         string `json:"name" form:"name"`
	Organization string `json:"organization" form:"organization"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"password" form:"password"`
}

type SessionResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	user := models.User{
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		Password:     req.Password,
		Name:         strings.TrimSpace(req.Name),
		Organization: strings.TrimSpace(req.Organization),
	}
	if missing := user.MissingFields(); missing != "" {
		RespondError(c, "missing field "+missing, http.StatusBadRequest)
		return
	}
	if !tools.ValidateEmail(user.Email) {
		RespondError(c, "invalid email", http.StatusBadRequest)
		return
	}
	if tools.CheckPassword(req.Password) != "" {
		RespondError(c, "password must have at least 8 characters", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	var existing models.User
	if err := db.Where("email = ?", user.Email).First(&existing).Error; err == nil {
		RespondError(c, "email already registered", http.StatusBadRequest)
		return
	}

	user.Password = tools.EncryptPassword(user.Email, req.Password)
	if err := db.Create(&user).Error; err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}

	token, err := issueSessionToken(user)
	if err != nil {
		RespondError(c, "failed to sign token", http.StatusInternalServerError)
		return
	}
	setAuthCookie(c, token)

	user.Password = ""
	RespondCreated(c, SessionResponse{Token: token, User: user})
}

func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		RespondError(c, err.Error(), http.StatusBadRequest)
		return
	}
	if req.Email == "" || req.Password == "" {
		RespondError(c, "email and password are required", http.StatusBadRequest)
		return
	}

	db := dbpkg.DBInstance(c)
	if db == nil {
		RespondError(c, "db not configured in context", http.StatusInternalServerError)
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	var user models.User
	if err := db.Where("email = ?", email).First(&user).Error; err != nil {
		RespondError(c, "invalid credentials", http.StatusUnauthorized)
		return
	}

	if user.Password != tools.EncryptPassword(user.Email, req.Password) {
		RespondError(c, "invalid credentials", http.StatusUnauthorized)
		return
	}

	token, err := issueSessionToken(user)
	if err != nil {
		RespondError(c, "failed to sign token", http.StatusInternalServerError)
		return
	}
	setAuthCookie(c, token)

	user.Password = ""
	RespondSuccess(c, SessionResponse{Token: token, User: user})
}

func Logout(c *gin.Context) {
	c.SetCookie(AuthCookieName, "", -1, "/", "", false, true)
	RespondSuccess(c, gin.H{"success": true})
}

func Profile(c *gin.Context) {
	user, ok := GetUserLogged(c)
	if !ok {
		RespondError(c, "not authenticated", http.StatusUnauthorized)
		return
	}
	user.Password = ""
	RespondSuccess(c, gin.H{"user": user})
}

func issueSessionToken(user models.User) (string, error) {
	validDays := getenvInt("FORMFORGE_TOKEN_VALID_DAYS", 7)
	return signHS256JWT(getJWTSecret(), map[string]any{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   time.Now().Add(time.Duration(validDays) * 24 * time.Hour).Unix(),
	})
}

func setAuthCookie(c *gin.Context, token string) {
	maxAge := getenvInt("FORMFORGE_TOKEN_VALID_DAYS", 7) * 24 * 60 * 60
	c.SetCookie(AuthCookieName, token, maxAge, "/", "", false, true)
}
