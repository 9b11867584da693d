package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/dvalarezo/hojavida/internal/httpx"
	"github.com/dvalarezo/hojavida/internal/middleware"
	"github.com/dvalarezo/hojavida/internal/models"
	"github.com/dvalarezo/hojavida/internal/view"
)

// ProfileHandler is the back-office CRUD for résumé subjects. Every write
// goes through models.Profile.Validate before touching the database; a failed
// validation never produces a partial write.
type ProfileHandler struct {
	DB *gorm.DB
}

func NewProfileHandler(db *gorm.DB) *ProfileHandler { return &ProfileHandler{DB: db} }

// profileForm is the explicit admin form for a profile record.
type profileForm struct {
	Tagline       string `json:"tagline"`
	Active        bool   `json:"active"`
	GivenNames    string `json:"given_names"`
	FamilyNames   string `json:"family_names"`
	Nationality   string `json:"nationality"`
	BirthDate     string `json:"birth_date"` // 2006-01-02
	Cedula        string `json:"cedula"`
	Sex           string `json:"sex"`
	Marital       string `json:"marital_status"`
	DriverLicense string `json:"driver_license"`
	Landline      string `json:"landline"`
	Mobile        string `json:"mobile"`
	HomeAddress   string `json:"home_address"`
	WorkAddress   string `json:"work_address"`
	Website       string `json:"website"`
	PhotoPath     string `json:"photo_path"`
}

func (f *profileForm) bind(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(f)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	f.Tagline = r.FormValue("tagline")
	f.Active = formBool(r, "active")
	f.GivenNames = r.FormValue("given_names")
	f.FamilyNames = r.FormValue("family_names")
	f.Nationality = r.FormValue("nationality")
	f.BirthDate = r.FormValue("birth_date")
	f.Cedula = r.FormValue("cedula")
	f.Sex = r.FormValue("sex")
	f.Marital = r.FormValue("marital_status")
	f.DriverLicense = r.FormValue("driver_license")
	f.Landline = r.FormValue("landline")
	f.Mobile = r.FormValue("mobile")
	f.HomeAddress = r.FormValue("home_address")
	f.WorkAddress = r.FormValue("work_address")
	f.Website = r.FormValue("website")
	f.PhotoPath = r.FormValue("photo_path")
	return nil
}

func (f *profileForm) apply(p *models.Profile) {
	p.Tagline = f.Tagline
	p.Active = f.Active
	p.GivenNames = f.GivenNames
	p.FamilyNames = f.FamilyNames
	if f.Nationality != "" {
		p.Nationality = f.Nationality
	} else if p.Nationality == "" {
		p.Nationality = "Ecuatoriana"
	}
	p.BirthDate = parseDate(f.BirthDate)
	p.Cedula = strings.TrimSpace(f.Cedula)
	p.Sex = models.Sex(f.Sex)
	p.Marital = models.MaritalStatus(f.Marital)
	p.DriverLicense = f.DriverLicense
	p.Landline = f.Landline
	p.Mobile = f.Mobile
	p.HomeAddress = f.HomeAddress
	p.WorkAddress = f.WorkAddress
	p.Website = f.Website
	if f.PhotoPath != "" {
		p.PhotoPath = f.PhotoPath
	}
}

// List: GET /admin/profiles. Serves the JSON list or the admin HTML screen.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	var profiles []models.Profile
	if err := h.DB.Order("updated_at DESC").Find(&profiles).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_profiles", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"items": profiles, "total": len(profiles)})
		return
	}
	if err := view.Render(w, r, "admin/profiles.html", map[string]any{"Profiles": profiles}); err != nil {
		_, _ = w.Write([]byte("template render error:" + err.Error()))
	}
}

// Create: POST /admin/profiles
func (h *ProfileHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f profileForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	var p models.Profile
	f.apply(&p)
	if v := p.Validate(time.Now()); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Create(&p).Error; err != nil {
		if isDuplicateErr(err) {
			httpx.JSONError(w, http.StatusConflict, "cedula_already_exists", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "profile_create_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, p)
		return
	}
	middleware.Flash(w, r, "saved")
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

// Update: POST/PUT /admin/profiles/update?id=N
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := recordID(r)
	if id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var p models.Profile
	if err := h.DB.First(&p, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var f profileForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	f.apply(&p)
	if v := p.Validate(time.Now()); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	// Save refreshes UpdatedAt, which also makes this profile the default
	// active one.
	if err := h.DB.Save(&p).Error; err != nil {
		if isDuplicateErr(err) {
			httpx.JSONError(w, http.StatusConflict, "cedula_already_exists", nil)
			return
		}
		httpx.JSONError(w, http.StatusInternalServerError, "profile_update_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, p)
		return
	}
	middleware.Flash(w, r, "saved")
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

// Delete: POST/DELETE /admin/profiles/delete?id=N. Removing a profile takes
// all of its child records with it.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodDelete {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := recordID(r)
	if id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var p models.Profile
	if err := h.DB.First(&p, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	// Cascade through the association list so sqlite without FK enforcement
	// behaves the same as postgres.
	if err := h.DB.Select(clause.Associations).Delete(&p).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "delete_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, map[string]any{"deleted": id})
		return
	}
	middleware.Flash(w, r, "deleted")
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}
