package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/dvalarezo/hojavida/internal/httpx"
	"github.com/dvalarezo/hojavida/internal/middleware"
	"github.com/dvalarezo/hojavida/internal/models"
)

// Helpers shared by the per-entity child handlers.

// deleteChild removes one child record by ?id=N. Child deletes never cascade
// anywhere, so a plain delete is enough for every entity kind.
func deleteChild(db *gorm.DB, w http.ResponseWriter, r *http.Request, model any) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := recordID(r)
	if id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	res := db.Where("id = ?", id).Delete(model)
	if res.Error != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "delete_failed", nil)
		return
	}
	if res.RowsAffected == 0 {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
		return
	}
	middleware.Flash(w, r, "deleted")
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

// requireProfile verifies the owning profile exists before attaching a child.
func requireProfile(db *gorm.DB, id uint) error {
	var count int64
	if err := db.Model(&models.Profile{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
