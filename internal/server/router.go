package server

import (
	"context"
	"net/http"

	"gorm.io/gorm"

	"github.com/dvalarezo/hojavida/internal/auth"
	"github.com/dvalarezo/hojavida/internal/handlers"
	"github.com/dvalarezo/hojavida/internal/httpx"
	"github.com/dvalarezo/hojavida/internal/middleware"
	"github.com/dvalarezo/hojavida/internal/models"
	"github.com/dvalarezo/hojavida/internal/services"
)

// New constructs the root http.Handler with all routes and middlewares applied.
// mediaDir is where uploaded photos and certificates are stored and served from.
func New(db *gorm.DB, mediaDir string) http.Handler {
	mux := http.NewServeMux()

	// RequireAuth re-checks that the admin account behind a session still exists.
	auth.SetVerifier(func(_ context.Context, id uint) bool {
		var count int64
		if err := db.Model(&models.AdminAccount{}).Where("id = ?", id).Limit(1).Count(&count).Error; err != nil {
			return false
		}
		return count > 0
	})

	// --- Health endpoints ---
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, _ *http.Request) {
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		if err := db.Exec("SELECT 1").Error; err != nil {
			httpx.JSONError(w, http.StatusServiceUnavailable, "degraded", nil)
			return
		}
		httpx.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	// --- Session endpoints ---
	lh := handlers.NewLoginHandler(db)
	mux.Handle("GET /login", auth.Middleware(http.HandlerFunc(lh.Form)))
	mux.Handle("POST /login", http.HandlerFunc(lh.Login))
	mux.HandleFunc("GET /logout", lh.Logout)
	mux.HandleFunc("POST /logout", lh.Logout)

	// --- Back office ---
	protected := func(h http.HandlerFunc) http.Handler {
		return auth.Middleware(auth.RequireAuth(h))
	}

	dash := handlers.NewDashboardHandler(db)
	mux.Handle("GET /admin", protected(dash.Show))
	mux.Handle("GET /admin/{$}", protected(dash.Show))

	ph := handlers.NewProfileHandler(db)
	mux.Handle("GET /admin/profiles", protected(ph.List))
	mux.Handle("POST /admin/profiles", protected(ph.Create))
	mux.Handle("/admin/profiles/update", protected(ph.Update))
	mux.Handle("/admin/profiles/delete", protected(ph.Delete))

	eh := handlers.NewExperienceHandler(db)
	mux.Handle("GET /admin/experiences", protected(eh.List))
	mux.Handle("POST /admin/experiences", protected(eh.Create))
	mux.Handle("/admin/experiences/update", protected(eh.Update))
	mux.Handle("/admin/experiences/delete", protected(eh.Delete))

	ch := handlers.NewCourseHandler(db)
	mux.Handle("GET /admin/courses", protected(ch.List))
	mux.Handle("POST /admin/courses", protected(ch.Create))
	mux.Handle("/admin/courses/update", protected(ch.Update))
	mux.Handle("/admin/courses/delete", protected(ch.Delete))

	ah := handlers.NewAwardHandler(db)
	mux.Handle("GET /admin/awards", protected(ah.List))
	mux.Handle("POST /admin/awards", protected(ah.Create))
	mux.Handle("/admin/awards/update", protected(ah.Update))
	mux.Handle("/admin/awards/delete", protected(ah.Delete))

	aph := handlers.NewAcademicProductHandler(db)
	mux.Handle("GET /admin/academic-products", protected(aph.List))
	mux.Handle("POST /admin/academic-products", protected(aph.Create))
	mux.Handle("/admin/academic-products/update", protected(aph.Update))
	mux.Handle("/admin/academic-products/delete", protected(aph.Delete))

	wph := handlers.NewWorkProductHandler(db)
	mux.Handle("GET /admin/work-products", protected(wph.List))
	mux.Handle("POST /admin/work-products", protected(wph.Create))
	mux.Handle("/admin/work-products/update", protected(wph.Update))
	mux.Handle("/admin/work-products/delete", protected(wph.Delete))

	gh := handlers.NewGarageItemHandler(db)
	mux.Handle("GET /admin/garage-items", protected(gh.List))
	mux.Handle("POST /admin/garage-items", protected(gh.Create))
	mux.Handle("/admin/garage-items/update", protected(gh.Update))
	mux.Handle("/admin/garage-items/delete", protected(gh.Delete))

	uh := handlers.NewUploadHandler(mediaDir)
	mux.Handle("POST /admin/uploads", protected(uh.Upload))

	// --- Static and uploaded assets ---
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.Dir("static"))))
	mux.Handle("GET /media/", http.StripPrefix("/media/", http.FileServer(http.Dir(mediaDir))))

	// --- Public site ---
	// Literal patterns above win over the cedula wildcard, so /login, /admin
	// and friends are never shadowed.
	pub := handlers.NewPublicHandler(services.NewResume(db))
	mux.HandleFunc("GET /{$}", pub.Home)
	mux.HandleFunc("GET /{cedula}", pub.Profile)
	mux.HandleFunc("GET /{cedula}/{$}", pub.Profile)
	mux.HandleFunc("GET /{cedula}/pdf", pub.PDF)
	mux.HandleFunc("GET /{cedula}/pdf/{$}", pub.PDF)
	mux.HandleFunc("GET /{cedula}/garage", pub.Garage)
	mux.HandleFunc("GET /{cedula}/garage/{$}", pub.Garage)

	return middleware.Prefs(mux)
}
