package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dvalarezo/hojavida/internal/httpx"
	"github.com/dvalarezo/hojavida/internal/models"
	"github.com/dvalarezo/hojavida/internal/validation"
)

type AwardHandler struct {
	DB *gorm.DB
}

func NewAwardHandler(db *gorm.DB) *AwardHandler { return &AwardHandler{DB: db} }

type awardForm struct {
	ProfileID       uint   `json:"profile_id"`
	Type            string `json:"type"`
	Date            string `json:"date"`
	Description     string `json:"description"`
	Entity          string `json:"entity"`
	ContactName     string `json:"contact_name"`
	ContactPhone    string `json:"contact_phone"`
	Visible         bool   `json:"visible"`
	CertificatePath string `json:"certificate_path"`
}

func (f *awardForm) bind(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(f)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	f.ProfileID = profileIDParam(r)
	f.Type = r.FormValue("type")
	f.Date = r.FormValue("date")
	f.Description = r.FormValue("description")
	f.Entity = r.FormValue("entity")
	f.ContactName = r.FormValue("contact_name")
	f.ContactPhone = r.FormValue("contact_phone")
	f.Visible = formBool(r, "visible")
	f.CertificatePath = r.FormValue("certificate_path")
	return nil
}

func (f *awardForm) apply(a *models.Award) {
	if f.ProfileID != 0 {
		a.ProfileID = f.ProfileID
	}
	a.Type = models.AwardType(f.Type)
	a.Date = parseDate(f.Date)
	a.Description = f.Description
	a.Entity = f.Entity
	a.ContactName = f.ContactName
	a.ContactPhone = f.ContactPhone
	a.Visible = f.Visible
	if f.CertificatePath != "" {
		a.CertificatePath = f.CertificatePath
	}
}

func (h *AwardHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.DB.Order("date DESC")
	if pid := profileIDParam(r); pid != 0 {
		q = q.Where("profile_id = ?", pid)
	}
	var items []models.Award
	if err := q.Find(&items).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_awards", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *AwardHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f awardForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	var a models.Award
	f.apply(&a)
	v := a.Validate(time.Now())
	if a.ProfileID == 0 {
		v.Merge(validation.Violations{"profile_id": "required"})
	} else if err := requireProfile(h.DB, a.ProfileID); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_profile", nil)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Create(&a).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "award_create_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, a)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *AwardHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := recordID(r)
	if id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var a models.Award
	if err := h.DB.First(&a, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var f awardForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	f.apply(&a)
	if v := a.Validate(time.Now()); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Save(&a).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "award_update_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, a)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *AwardHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteChild(h.DB, w, r, &models.Award{})
}
