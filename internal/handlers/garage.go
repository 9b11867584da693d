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

type GarageItemHandler struct {
	DB *gorm.DB
}

func NewGarageItemHandler(db *gorm.DB) *GarageItemHandler { return &GarageItemHandler{DB: db} }

type garageItemForm struct {
	ProfileID   uint    `json:"profile_id"`
	Name        string  `json:"name"`
	Condition   string  `json:"condition"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	ImagePath   string  `json:"image_path"`
	Visible     bool    `json:"visible"`
}

func (f *garageItemForm) bind(r *http.Request) error {
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/json") {
		return json.NewDecoder(r.Body).Decode(f)
	}
	if err := r.ParseForm(); err != nil {
		return err
	}
	f.ProfileID = profileIDParam(r)
	f.Name = r.FormValue("name")
	f.Condition = r.FormValue("condition")
	f.Description = r.FormValue("description")
	f.Price, _ = strconv.ParseFloat(r.FormValue("price"), 64)
	f.ImagePath = r.FormValue("image_path")
	f.Visible = formBool(r, "visible")
	return nil
}

func (f *garageItemForm) apply(g *models.GarageSaleItem) {
	if f.ProfileID != 0 {
		g.ProfileID = f.ProfileID
	}
	g.Name = f.Name
	g.Condition = models.ItemCondition(f.Condition)
	g.Description = f.Description
	g.Price = f.Price
	g.Visible = f.Visible
	if f.ImagePath != "" {
		g.ImagePath = f.ImagePath
	}
}

func (h *GarageItemHandler) List(w http.ResponseWriter, r *http.Request) {
	q := h.DB.Order("created_at DESC")
	if pid := profileIDParam(r); pid != 0 {
		q = q.Where("profile_id = ?", pid)
	}
	var items []models.GarageSaleItem
	if err := q.Find(&items).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "failed_to_list_garage_items", nil)
		return
	}
	httpx.JSON(w, http.StatusOK, map[string]any{"items": items, "total": len(items)})
}

func (h *GarageItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	var f garageItemForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	var g models.GarageSaleItem
	f.apply(&g)
	g.RoundPrice()
	v := g.Validate(time.Now())
	if g.ProfileID == 0 {
		v.Merge(validation.Violations{"profile_id": "required"})
	} else if err := requireProfile(h.DB, g.ProfileID); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_profile", nil)
		return
	}
	if !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	// Publication date is stamped once, at creation.
	g.PublishedOn = time.Now()
	if err := h.DB.Create(&g).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "garage_item_create_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusCreated, g)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *GarageItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPut && r.Method != http.MethodPatch {
		httpx.JSONError(w, http.StatusMethodNotAllowed, "method_not_allowed", nil)
		return
	}
	id := recordID(r)
	if id <= 0 {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_id", nil)
		return
	}
	var g models.GarageSaleItem
	if err := h.DB.First(&g, id).Error; err != nil {
		httpx.JSONError(w, http.StatusNotFound, "not_found", nil)
		return
	}
	var f garageItemForm
	if err := f.bind(r); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "invalid_payload", nil)
		return
	}
	f.apply(&g)
	g.RoundPrice()
	if v := g.Validate(time.Now()); !v.Empty() {
		httpx.JSONError(w, http.StatusBadRequest, "validation_failed", v)
		return
	}
	// PublishedOn carries the <-:create tag, so Save leaves it untouched.
	if err := h.DB.Save(&g).Error; err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "garage_item_update_failed", nil)
		return
	}
	if httpx.WantsJSON(r) {
		httpx.JSON(w, http.StatusOK, g)
		return
	}
	http.Redirect(w, r, "/admin/profiles", http.StatusSeeOther)
}

func (h *GarageItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	deleteChild(h.DB, w, r, &models.GarageSaleItem{})
}
