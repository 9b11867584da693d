package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/dvalarezo/hojavida/internal/models"
)

// Sentinel signals for the two public empty states. They are distinct on
// purpose: a cédula that resolves nothing is a 404, while having no active
// profile at all renders a dedicated "nothing published yet" page.
var (
	ErrProfileNotFound = errors.New("no active profile matches that cédula")
	ErrNoActiveProfile = errors.New("no active profile exists")
)

// Resume is the single filter/order implementation shared by the public pages
// and the PDF generator, so the two can never drift apart.
type Resume struct {
	DB *gorm.DB
}

func NewResume(db *gorm.DB) *Resume { return &Resume{DB: db} }

// ActiveProfileByCedula resolves a profile that matches the cédula AND is
// active. Inactive profiles are invisible to the public even when the cédula
// matches.
func (s *Resume) ActiveProfileByCedula(cedula string) (*models.Profile, error) {
	var p models.Profile
	err := s.DB.Where("cedula = ? AND active = ?", cedula, true).First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProfileNotFound
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// DefaultActiveProfile returns the most recently updated active profile.
func (s *Resume) DefaultActiveProfile() (*models.Profile, error) {
	var p models.Profile
	err := s.DB.Where("active = ?", true).Order("updated_at DESC").First(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNoActiveProfile
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// visible scopes a child query to one profile's publicly visible records.
func (s *Resume) visible(profileID uint) *gorm.DB {
	return s.DB.Where("profile_id = ? AND visible = ?", profileID, true)
}

// Canonical orderings: date-carrying records by their primary date descending,
// the rest by creation time descending.

func (s *Resume) VisibleExperiences(profileID uint) ([]models.WorkExperience, error) {
	var out []models.WorkExperience
	err := s.visible(profileID).Order("start_date DESC").Find(&out).Error
	return out, err
}

func (s *Resume) VisibleCourses(profileID uint) ([]models.Course, error) {
	var out []models.Course
	err := s.visible(profileID).Order("start_date DESC").Find(&out).Error
	return out, err
}

func (s *Resume) VisibleAwards(profileID uint) ([]models.Award, error) {
	var out []models.Award
	err := s.visible(profileID).Order("date DESC").Find(&out).Error
	return out, err
}

func (s *Resume) VisibleWorkProducts(profileID uint) ([]models.WorkProduct, error) {
	var out []models.WorkProduct
	err := s.visible(profileID).Order("date DESC").Find(&out).Error
	return out, err
}

func (s *Resume) VisibleAcademicProducts(profileID uint) ([]models.AcademicProduct, error) {
	var out []models.AcademicProduct
	err := s.visible(profileID).Order("created_at DESC").Find(&out).Error
	return out, err
}

func (s *Resume) VisibleGarageItems(profileID uint) ([]models.GarageSaleItem, error) {
	var out []models.GarageSaleItem
	err := s.visible(profileID).Order("created_at DESC").Find(&out).Error
	return out, err
}

// View is the assembled view-model consumed by the public templates and the
// report generator.
type View struct {
	Profile          *models.Profile
	Experiences      []models.WorkExperience
	Courses          []models.Course
	Awards           []models.Award
	AcademicProducts []models.AcademicProduct
	WorkProducts     []models.WorkProduct
}

// View loads every visible child collection for the profile.
func (s *Resume) View(p *models.Profile) (*View, error) {
	v := &View{Profile: p}
	var err error
	if v.Experiences, err = s.VisibleExperiences(p.ID); err != nil {
		return nil, err
	}
	if v.Courses, err = s.VisibleCourses(p.ID); err != nil {
		return nil, err
	}
	if v.Awards, err = s.VisibleAwards(p.ID); err != nil {
		return nil, err
	}
	if v.AcademicProducts, err = s.VisibleAcademicProducts(p.ID); err != nil {
		return nil, err
	}
	if v.WorkProducts, err = s.VisibleWorkProducts(p.ID); err != nil {
		return nil, err
	}
	return v, nil
}
