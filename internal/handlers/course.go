package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/dvalarezo/hojavida/internal/httpx"
	"github.com/dvalarezo/hojavida/internal/models"
	"github.com/dvalarezo/hojavida/internal/validation"
)

type CourseHandler struct {
	DB *gorm.DB
}

func NewCourseHandler(db *gorm.DB) *CourseHandler { return &CourseHandler{DB: db} }

type courseForm struct {
	ProfileID        uint   `json:"profile_id"`
	Name             string `json:"name"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	TotalHours       int    `json:"total_hours"`
	Description      string `json:"description"`
	Institution      string `json:"institution"`
	ContactName      string `json:"contact_name"`
	ContactPhone     string `json:"contact_phone"`
	InstitutionEmail string `json:"institution_email"`
	Visible          bool   `json:"visible"`
	CertificatePath  string `json:"certificate_path"`
}

func (f *courseForm) bind(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(f)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	f.ProfileID = profileIDParam(r)
	f.Name = r.FormValue("name")
	f.StartDate = r.FormValue("start_date")
	f.EndDate = r.FormValue("end_date")
	f.TotalHours, _ = strconv.Atoi(r.FormValue("total_hours"))
	f.Description = r.FormValue("description")
	f.Institution = r.FormValue("institution")
	f.ContactName = r.FormValue("contact_name")
	f.ContactPhone = r.FormValue("contact_phone")
	f.InstitutionEmail = r.FormValue("institution_email")
	f.Visible = formBool(r, "visible")
	f.CertificatePath = r.FormValue("certificate_path")
	return nil
}

func (f *courseForm) apply(c *models.Course) {
	if f.ProfileID != 0 {
		c.ProfileID = f.ProfileID
	}
	c.Name = f.Name
	c.StartDate = parseDate(f.StartDate)
	c.EndDate = parseDate(f.EndDate)
	c.TotalHours = f.TotalHours
	c.Description = f.Description
	c.Institution = f.Institution
	c.ContactName = f.ContactName
	c.ContactPhone = f.ContactPhone
	c.InstitutionEmail = f.InstitutionEmail
	c.Visible = f.Visible
	if f.CertificatePath != "" {
		c.CertificatePath = f.CertificatePath
	}
}

func (h *CourseHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.DB.Order("start_date DESC")
	if pid := profileIDParam(r); pid != 0 {
		q = q.Where("profile_id = ?", pid)
	}
	var items []models.Course
	if err := q.Find(&items).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_courses", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *CourseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f courseForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	var c models.Course
	f.apply(&c)
	v := c.Validate(time.Now())
	if c.ProfileID == 0 {
		v.Merge(validation.Violations{"profile_id": "required"})
	} else if err := requireProfile(h.DB, c.ProfileID); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_profile", nil)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Create(&c).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "course_create_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, c)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *CourseHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := recordID(r)
	if id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var c models.Course
	if err := h.DB.First(&c, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var f courseForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	f.apply(&c)
	if v := c.Validate(time.Now()); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Save(&c).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "course_update_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, c)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *CourseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteChild(h.DB, w, r, &models.Course{})
}
