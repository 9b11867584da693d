package handlers

import (
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/dvalarezo/hojavida/internal/auth"
	"github.com/dvalarezo/hojavida/internal/httpx"
	"github.com/dvalarezo/hojavida/internal/models"
	"github.com/dvalarezo/hojavida/internal/view"
)

type LoginHandler struct {
	DB *gorm.DB
}

func NewLoginHandler(db *gorm.DB) *LoginHandler { return &LoginHandler{DB: db} }

func (h *LoginHandler) Form(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.AdminIDFromContext(r.Context()); ok {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	_ = view.Render(w, r, "login.html", nil)
}

func (h *LoginHandler) Login(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	if ct := r.Header.Get("Content-Type"); strings.HasPrefix(ct, "application/json") {
		httpx.JSONError(w, http.StatusUnsupportedMediaType, "form_login_only", nil)
		return
	}
	var account models.AdminAccount
	err := h.DB.Where("username = ?", username).First(&account).Error
	// Run the comparison even on a miss so both paths cost the same.
	hash := account.PasswordHash
	if err != nil {
		hash = []byte("$2a$10$invalidinvalidinvalidinvalidinvalidinvalidinvalidinval")
	}
	if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil || err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		_ = view.Render(w, r, "login.html", map[string]any{"Error": "invalid_credentials"})
		return
	}
	auth.CreateSession(w, account.ID)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

func (h *LoginHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSession(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
