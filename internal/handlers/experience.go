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

type ExperienceHandler struct {
	DB *gorm.DB
}

func NewExperienceHandler(db *gorm.DB) *ExperienceHandler { return &ExperienceHandler{DB: db} }

type experienceForm struct {
	ProfileID       uint   `json:"profile_id"`
	Role            string `json:"role"`
	Company         string `json:"company"`
	Location        string `json:"location"`
	CompanyEmail    string `json:"company_email"`
	CompanyWebsite  string `json:"company_website"`
	ContactName     string `json:"contact_name"`
	ContactPhone    string `json:"contact_phone"`
	StartDate       string `json:"start_date"`
	EndDate         string `json:"end_date"` // empty = ongoing
	Duties          string `json:"duties"`
	Visible         bool   `json:"visible"`
	CertificatePath string `json:"certificate_path"`
}

func (f *experienceForm) bind(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(f)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	f.ProfileID = profileIDParam(r)
	f.Role = r.FormValue("role")
	f.Company = r.FormValue("company")
	f.Location = r.FormValue("location")
	f.CompanyEmail = r.FormValue("company_email")
	f.CompanyWebsite = r.FormValue("company_website")
	f.ContactName = r.FormValue("contact_name")
	f.ContactPhone = r.FormValue("contact_phone")
	f.StartDate = r.FormValue("start_date")
	f.EndDate = r.FormValue("end_date")
	f.Duties = r.FormValue("duties")
	f.Visible = formBool(r, "visible")
	f.CertificatePath = r.FormValue("certificate_path")
	return nil
}

func (f *experienceForm) apply(e *models.WorkExperience) {
	if f.ProfileID != 0 {
		e.ProfileID = f.ProfileID
	}
	e.Role = f.Role
	e.Company = f.Company
	e.Location = f.Location
	e.CompanyEmail = f.CompanyEmail
	e.CompanyWebsite = f.CompanyWebsite
	e.ContactName = f.ContactName
	e.ContactPhone = f.ContactPhone
	e.StartDate = parseDate(f.StartDate)
	e.EndDate = parseDatePtr(f.EndDate)
	e.Duties = f.Duties
	e.Visible = f.Visible
	if f.CertificatePath != "" {
		e.CertificatePath = f.CertificatePath
	}
}

// List: GET /admin/experiences?profile_id=N
func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.DB.Order("start_date DESC")
	if pid := profileIDParam(r); pid != 0 {
		q = q.Where("profile_id = ?", pid)
	}
	var items []models.WorkExperience
	if err := q.Find(&items).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_experiences", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

// Create: POST /admin/experiences
func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f experienceForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	var e models.WorkExperience
	f.apply(&e)
	v := e.Validate(time.Now())
	if e.ProfileID == 0 {
		v.Merge(validation.Violations{"profile_id": "required"})
	} else if err := requireProfile(h.DB, e.ProfileID); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_profile", nil)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Create(&e).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "experience_create_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, e)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

// Update: POST/PUT /admin/experiences/update?id=N
func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := recordID(r)
	if id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var e models.WorkExperience
	if err := h.DB.First(&e, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var f experienceForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	f.apply(&e)
	if v := e.Validate(time.Now()); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Save(&e).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "experience_update_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, e)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

// Delete: POST/DELETE /admin/experiences/delete?id=N
func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteChild(h.DB, w, r, &models.WorkExperience{})
}

