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

// AcademicProductHandler and WorkProductHandler manage the two deliverable
// kinds. They stay separate because the records diverge: academic products
// have a classifier and no date, work products have a date and a link.

type AcademicProductHandler struct {
	DB *gorm.DB
}

func NewAcademicProductHandler(db *gorm.DB) *AcademicProductHandler {
	return &AcademicProductHandler{DB: db}
}

type academicProductForm struct {
	ProfileID   uint   `json:"profile_id"`
	Name        string `json:"name"`
	Classifier  string `json:"classifier"`
	Description string `json:"description"`
	ImagePath   string `json:"image_path"`
	Visible     bool   `json:"visible"`
}

func (f *academicProductForm) bind(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(f)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	f.ProfileID = profileIDParam(r)
	f.Name = r.FormValue("name")
	f.Classifier = r.FormValue("classifier")
	f.Description = r.FormValue("description")
	f.ImagePath = r.FormValue("image_path")
	f.Visible = formBool(r, "visible")
	return nil
}

func (f *academicProductForm) apply(p *models.AcademicProduct) {
	if f.ProfileID != 0 {
		p.ProfileID = f.ProfileID
	}
	p.Name = f.Name
	p.Classifier = models.AcademicClassifier(f.Classifier)
	p.Description = f.Description
	p.Visible = f.Visible
	if f.ImagePath != "" {
		p.ImagePath = f.ImagePath
	}
}

func (h *AcademicProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.DB.Order("created_at DESC")
	if pid := profileIDParam(r); pid != 0 {
		q = q.Where("profile_id = ?", pid)
	}
	var items []models.AcademicProduct
	if err := q.Find(&items).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_academic_products", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *AcademicProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f academicProductForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	var p models.AcademicProduct
	f.apply(&p)
	v := p.Validate(time.Now())
	if p.ProfileID == 0 {
		v.Merge(validation.Violations{"profile_id": "required"})
	} else if err := requireProfile(h.DB, p.ProfileID); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_profile", nil)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Create(&p).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "academic_product_create_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, p)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *AcademicProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := recordID(r)
	if id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var p models.AcademicProduct
	if err := h.DB.First(&p, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var f academicProductForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	f.apply(&p)
	if v := p.Validate(time.Now()); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Save(&p).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "academic_product_update_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, p)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *AcademicProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteChild(h.DB, w, r, &models.AcademicProduct{})
}

type WorkProductHandler struct {
	DB *gorm.DB
}

func NewWorkProductHandler(db *gorm.DB) *WorkProductHandler {
	return &WorkProductHandler{DB: db}
}

type workProductForm struct {
	ProfileID   uint   `json:"profile_id"`
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
	Link        string `json:"link"`
	Visible     bool   `json:"visible"`
}

func (f *workProductForm) bind(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(f)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	f.ProfileID = profileIDParam(r)
	f.Name = r.FormValue("name")
	f.Date = r.FormValue("date")
	f.Description = r.FormValue("description")
	f.Link = r.FormValue("link")
	f.Visible = formBool(r, "visible")
	return nil
}

func (f *workProductForm) apply(p *models.WorkProduct) {
	if f.ProfileID != 0 {
		p.ProfileID = f.ProfileID
	}
	p.Name = f.Name
	p.Date = parseDate(f.Date)
	p.Description = f.Description
	p.Link = f.Link
	p.Visible = f.Visible
}

func (h *WorkProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.DB.Order("date DESC")
	if pid := profileIDParam(r); pid != 0 {
		q = q.Where("profile_id = ?", pid)
	}
	var items []models.WorkProduct
	if err := q.Find(&items).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_work_products", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *WorkProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f workProductForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	var p models.WorkProduct
	f.apply(&p)
	v := p.Validate(time.Now())
	if p.ProfileID == 0 {
		v.Merge(validation.Violations{"profile_id": "required"})
	} else if err := requireProfile(h.DB, p.ProfileID); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_profile", nil)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Create(&p).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "work_product_create_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, p)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *WorkProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := recordID(r)
	if id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var p models.WorkProduct
	if err := h.DB.First(&p, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var f workProductForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	f.apply(&p)
	if v := p.Validate(time.Now()); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	if err := h.DB.Save(&p).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "work_product_update_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, p)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *WorkProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteChild(h.DB, w, r, &models.WorkProduct{})
}
