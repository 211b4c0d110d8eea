package auth

import (
	"net/http"
	"os"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"

	"github.com/Digeee/ZENCAFE/models"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether s passes the basic format check used across
// login, checkout and the contact form.
func ValidEmail(s string) bool {
	return emailPattern.MatchString(s)
}

// BootstrapAdminEmails returns the configured list of emails that are
// unconditionally promoted to admin on every upsert.
func BootstrapAdminEmails() []string {
	raw := os.Getenv("ADMIN_EMAILS")
	if raw == "" {
		return nil
	}
	var out []string
	for _, e := range strings.Split(raw, ",") {
		if e = strings.TrimSpace(strings.ToLower(e)); e != "" {
			out = append(out, e)
		}
	}
	return out
}

func isBootstrapAdmin(email string) bool {
	email = strings.ToLower(email)
	for _, e := range BootstrapAdminEmails() {
		if e == email {
			return true
		}
	}
	return false
}

// IssueToken signs a session JWT for the user.
func IssueToken(userID string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(7 * 24 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}

type LoginRequest struct {
	Email           string `json:"email" binding:"required"`
	FirstName       string `json:"firstName"`
	LastName        string `json:"lastName"`
	ProfileImageURL string `json:"profileImageUrl"`
}

// UpsertUser fetches or creates the user for a verified identity and
// refreshes the profile fields. Emails on the bootstrap-admin list are
// promoted on every call.
func UpsertUser(db *gorm.DB, req LoginRequest) (models.User, error) {
	var user models.User
	err := db.Where("email = ?", req.Email).First(&user).Error

	switch {
	case err == gorm.ErrRecordNotFound:
		user = models.User{
			Email:           req.Email,
			FirstName:       req.FirstName,
			LastName:        req.LastName,
			ProfileImageURL: req.ProfileImageURL,
			IsAdmin:         isBootstrapAdmin(req.Email),
		}
		if err := db.Create(&user).Error; err != nil {
			return models.User{}, err
		}
	case err == nil:
		updates := map[string]interface{}{
			"first_name":        req.FirstName,
			"last_name":         req.LastName,
			"profile_image_url": req.ProfileImageURL,
		}
		if isBootstrapAdmin(req.Email) {
			updates["is_admin"] = true
		}
		if err := db.Model(&user).Updates(updates).Error; err != nil {
			return models.User{}, err
		}
	default:
		return models.User{}, err
	}

	return user, nil
}

// POST /api/auth/login
//
// The upstream identity provider is out of scope here: the handler trusts
// the claims it is given and issues a first-party session token.
func LoginHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if !ValidEmail(req.Email) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid email address"})
			return
		}

		user, err := UpsertUser(db, req)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to upsert user"})
			return
		}

		token, err := IssueToken(user.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Token generation failed"})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
	}
}
