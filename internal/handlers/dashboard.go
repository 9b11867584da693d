package handlers

import (
	"net/http"

	"gorm.io/gorm"

	"github.com/dvalarezo/hojavida/internal/httpx"
	"github.com/dvalarezo/hojavida/internal/models"
	"github.com/dvalarezo/hojavida/internal/view"
)

// DashboardHandler renders the back-office landing screen: record counts per
// entity plus the most recently touched profiles.
type DashboardHandler struct {
	DB *gorm.DB
}

func NewDashboardHandler(db *gorm.DB) *DashboardHandler { return &DashboardHandler{DB: db} }

func (h *DashboardHandler) Show(w http.ResponseWriter, r *http.Request) {
	counts := map[string]int64{}
	tables := map[string]any{
		"profiles":          &models.Profile{},
		"experiences":       &models.WorkExperience{},
		"courses":           &models.Course{},
		"awards":            &models.Award{},
		"academic_products": &models.AcademicProduct{},
		"work_products":     &models.WorkProduct{},
		"garage_items":      &models.GarageSaleItem{},
	}
	for name, model := range tables {
		var n int64
		if err := h.DB.Model(model).Count(&n).Error; err != nil {
			httpx.JSONError(w, http.StatusInternalServerError, "dashboard_unavailable", nil)
			return
		}
		counts[name] = n
	}
	var recent []models.Profile
	if err := h.DB.Order("updated_at DESC").Limit(5).Find(&recent).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "dashboard_unavailable", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"counts": counts, "recent": recent})
		return
	}
	if err := view.Render(w, r, "admin/dashboard.html", map[string]any{
		"Counts": counts,
		"Recent": recent,
	}); err != nil {
		_, _ = w.Write([]byte("template render error:" + err.Error()))
	}
}
