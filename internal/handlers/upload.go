package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/disintegration/imaging"

	"github.com/dvalarezo/hojavida/internal/httpx"
)

const maxUploadBytes = 5 << 20 // 5MB

// UploadHandler stores profile photos, certificates and item pictures under
// the media directory. Images are re-encoded through the imaging pipeline so
// nothing a browser sent ends up on disk verbatim; PDFs are copied as-is.
type UploadHandler struct {
	MediaDir string
}

func NewUploadHandler(mediaDir string) *UploadHandler { return &UploadHandler{MediaDir: mediaDir} }

var uploadFolders = map[string]bool{
	"photos":       true,
	"certificates": true,
	"items":        true,
}

// Upload: POST /admin/uploads (multipart, field "file", optional "folder").
func (h *UploadHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "file_too_large", nil)
		return
	}
	folder := r.FormValue("folder")
	if folder == "" {
		folder = "photos"
	}
	if !uploadFolders[folder] {
		httpx.JSONError(w, http.StatusBadRequest, "unknown_folder", nil)
		return
	}
	file, header, err := r.FormFile("file")
	if err != nil {
		httpx.JSONError(w, http.StatusBadRequest, "file_missing", nil)
		return
	}
	defer file.Close()

	dir := filepath.Join(h.MediaDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		httpx.JSONError(w, http.StatusInternalServerError, "storage_unavailable", nil)
		return
	}

	ext := strings.ToLower(filepath.Ext(header.Filename))
	now := time.Now().UTC()
	stamp := fmt.Sprintf("%s-%06d", now.Format("20060102T150405"), now.Nanosecond()/1000)
	var rel string
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
		rel, err = h.saveImage(file, folder, stamp)
	case ".pdf":
		if folder != "certificates" {
			httpx.JSONError(w, http.StatusBadRequest, "unsupported_file_type", nil)
			return
		}
		rel, err = h.savePDF(file, folder, stamp)
	default:
		httpx.JSONError(w, http.StatusBadRequest, "unsupported_file_type", nil)
		return
	}
	if err != nil {
		log.Printf("upload: save failed: %v", err)
		httpx.JSONError(w, http.StatusInternalServerError, "save_failed", nil)
		return
	}
	httpx.JSON(w, http.StatusCreated, map[string]any{"path": "/media/" + rel})
}

// saveImage decodes, bounds to 1200px on the long edge and re-encodes as JPEG.
func (h *UploadHandler) saveImage(file io.Reader, folder, stamp string) (string, error) {
	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	b := img.Bounds()
	if b.Dx() > 1200 || b.Dy() > 1200 {
		img = imaging.Fit(img, 1200, 1200, imaging.Lanczos)
	}
	rel := filepath.Join(folder, stamp+".jpg")
	if err := imaging.Save(img, filepath.Join(h.MediaDir, rel), imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("encode image: %w", err)
	}
	return filepath.ToSlash(rel), nil
}

func (h *UploadHandler) savePDF(file io.Reader, folder, stamp string) (string, error) {
	var head [5]byte
	if _, err := io.ReadFull(file, head[:]); err != nil || string(head[:]) != "%PDF-" {
		return "", fmt.Errorf("not a pdf")
	}
	rel := filepath.Join(folder, stamp+".pdf")
	out, err := os.Create(filepath.Join(h.MediaDir, rel))
	if err != nil {
		return "", err
	}
	defer out.Close()
	if _, err := out.Write(head[:]); err != nil {
		return "", err
	}
	if _, err := io.Copy(out, file); err != nil {
		return "", err
	}
	return filepath.ToSlash(rel), nil
}
