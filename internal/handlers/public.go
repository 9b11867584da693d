package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/dvalarezo/hojavida/internal/models"
	"github.com/dvalarezo/hojavida/internal/pdf"
	"github.com/dvalarezo/hojavida/internal/services"
	"github.com/dvalarezo/hojavida/internal/view"
)

// PublicHandler serves the read-only pages: the profile front page, the
// garage-sale listing and the CV download. Everything is resolved through the
// shared services.Resume so page and report always agree.
type PublicHandler struct {
	Svc *services.Resume
}

func NewPublicHandler(svc *services.Resume) *PublicHandler { return &PublicHandler{Svc: svc} }

// Home: GET /. Renders the default active profile, or the "nothing published
// yet" page when no profile is active.
func (h *PublicHandler) Home(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.DefaultActiveProfile()
	if err == services.ErrNoActiveProfile {
		h.renderEmptyState(w, r)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderProfile(w, r, p)
}

// Profile: GET /{cedula}/. Renders the named profile or the not-found page.
func (h *PublicHandler) Profile(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.ActiveProfileByCedula(r.PathValue("cedula"))
	if err == services.ErrProfileNotFound {
		h.renderNotFound(w, r)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	h.renderProfile(w, r, p)
}

// PDF: GET /{cedula}/pdf/. Serves the CV document download.
func (h *PublicHandler) PDF(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.ActiveProfileByCedula(r.PathValue("cedula"))
	if err == services.ErrProfileNotFound {
		h.renderNotFound(w, r)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	v, err := h.Svc.View(p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	data, err := pdf.Resume(v, time.Now())
	if err != nil {
		h.fail(w, r, err)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", pdf.Filename(p.GivenNames, p.FamilyNames)))
	_, _ = w.Write(data)
}

// Garage: GET /{cedula}/garage/. Serves the garage-sale listing for that
// profile.
func (h *PublicHandler) Garage(w http.ResponseWriter, r *http.Request) {
	p, err := h.Svc.ActiveProfileByCedula(r.PathValue("cedula"))
	if err == services.ErrProfileNotFound {
		h.renderNotFound(w, r)
		return
	}
	if err != nil {
		h.fail(w, r, err)
		return
	}
	items, err := h.Svc.VisibleGarageItems(p.ID)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	if err := view.Render(w, r, "garage.html", map[string]any{
		"Profile": p,
		"Items":   items,
	}); err != nil {
		h.fail(w, r, err)
	}
}

func (h *PublicHandler) renderProfile(w http.ResponseWriter, r *http.Request, p *models.Profile) {
	v, err := h.Svc.View(p)
	if err != nil {
		h.fail(w, r, err)
		return
	}
	today := time.Now()
	if err := view.Render(w, r, "profile.html", map[string]any{
		"Profile":          v.Profile,
		"Age":              v.Profile.AgeAt(today),
		"Experiences":      v.Experiences,
		"Courses":          v.Courses,
		"Awards":           v.Awards,
		"AcademicProducts": v.AcademicProducts,
		"WorkProducts":     v.WorkProducts,
		"Today":            today,
	}); err != nil {
		h.fail(w, r, err)
	}
}

func (h *PublicHandler) fail(w http.ResponseWriter, r *http.Request, err error) {
	log.Printf("public page error: %v", err)
	w.WriteHeader(http.StatusInternalServerError)
	_, _ = w.Write([]byte("error interno"))
}

func (h *PublicHandler) renderEmptyState(w http.ResponseWriter, r *http.Request) {
	// Deliberately a 200: nothing is wrong, nothing is published yet.
	if err := view.Render(w, r, "no_profile.html", nil); err != nil {
		h.fail(w, r, err)
	}
}

func (h *PublicHandler) renderNotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	if err := view.Render(w, r, "not_found.html", nil); err != nil {
		log.Printf("render not_found: %v", err)
	}
}
