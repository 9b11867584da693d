package i18n

import "strings"

// Tiny message catalogue for UI chrome. Spanish is the default; stored résumé
// content is not translated.

var messages = map[string]map[string]string{
	"es": {
		"required":             "Requerido",
		"too_long":             "Demasiado largo",
		"future_date":          "La fecha no puede ser futura",
		"under_minimum_age":    "Debe tener al menos 15 años de edad",
		"over_maximum_age":     "La edad no puede superar los 75 años",
		"end_before_start":     "La fecha de fin no puede ser anterior a la fecha de inicio",
		"invalid_phone":        "Número de teléfono inválido",
		"invalid_email":        "Correo electrónico inválido",
		"invalid_url":          "Dirección web inválida",
		"invalid_choice":       "Opción inválida",
		"out_of_range":         "Valor fuera de rango",
		"must_be_positive":     "Debe ser mayor que cero",
		"cedula_already_exists": "Ya existe un perfil con ese número de cédula",
		"no_profile_title":     "Aún no hay perfil publicado",
		"not_found_title":      "Perfil no encontrado",
		"login":                "Iniciar sesión",
		"logout":               "Cerrar sesión",
		"invalid_credentials":  "Usuario o contraseña incorrectos",
		"saved":                "Guardado",
		"deleted":              "Eliminado",
		"section_personal":     "Datos Personales",
		"section_experience":   "Experiencia Laboral",
		"section_courses":      "Cursos y Capacitaciones",
		"section_awards":       "Reconocimientos",
		"section_academic_products": "Productos Académicos",
		"section_work_products": "Productos Laborales",
		"field_birth_date":     "Fecha de nacimiento",
		"field_age":            "Edad",
		"field_nationality":    "Nacionalidad",
		"field_marital_status": "Estado civil",
		"field_phone":          "Teléfono",
		"field_address":        "Dirección",
		"field_website":        "Sitio web",
		"years":                "años",
		"hours":                "horas",
		"download_pdf":         "Descargar CV en PDF",
		"garage_sale":          "Venta de garaje",
		"garage_title":         "Venta de Garaje",
		"garage_empty":         "No hay artículos publicados por el momento",
		"published_on":         "Publicado el",
		"condition":            "Estado",
		"back_to_profile":      "Volver al perfil",
		"no_profile_body":      "Vuelva pronto, el contenido está en preparación",
		"dashboard":            "Panel de administración",
	},
	"en": {
		"required":             "Required",
		"too_long":             "Too long",
		"future_date":          "Date cannot be in the future",
		"under_minimum_age":    "Must be at least 15 years old",
		"over_maximum_age":     "Age cannot exceed 75 years",
		"end_before_start":     "End date cannot precede start date",
		"invalid_phone":        "Invalid phone number",
		"invalid_email":        "Invalid email address",
		"invalid_url":          "Invalid URL",
		"invalid_choice":       "Invalid choice",
		"out_of_range":         "Value out of range",
		"must_be_positive":     "Must be greater than zero",
		"cedula_already_exists": "A profile with that cédula already exists",
		"no_profile_title":     "Nothing published yet",
		"not_found_title":      "Profile not found",
		"login":                "Log in",
		"logout":               "Log out",
		"invalid_credentials":  "Wrong user or password",
		"saved":                "Saved",
		"deleted":              "Deleted",
		"section_personal":     "Personal Details",
		"section_experience":   "Work Experience",
		"section_courses":      "Courses and Training",
		"section_awards":       "Awards",
		"section_academic_products": "Academic Products",
		"section_work_products": "Professional Products",
		"field_birth_date":     "Date of birth",
		"field_age":            "Age",
		"field_nationality":    "Nationality",
		"field_marital_status": "Marital status",
		"field_phone":          "Phone",
		"field_address":        "Address",
		"field_website":        "Website",
		"years":                "years",
		"hours":                "hours",
		"download_pdf":         "Download CV as PDF",
		"garage_sale":          "Garage sale",
		"garage_title":         "Garage Sale",
		"garage_empty":         "No items published at the moment",
		"published_on":         "Published on",
		"condition":            "Condition",
		"back_to_profile":      "Back to profile",
		"no_profile_body":      "Check back soon, content is on its way",
		"dashboard":            "Admin dashboard",
	},
}

// T translates a code for the given language, falling back to Spanish and
// finally to the code itself.
func T(lang, code string) string {
	if m, ok := messages[lang]; ok {
		if s, ok := m[code]; ok {
			return s
		}
	}
	if s, ok := messages["es"][code]; ok {
		return s
	}
	return code
}

// DetectLanguage picks a supported language from an Accept-Language header.
func DetectLanguage(header string) string {
	for _, part := range strings.Split(header, ",") {
		tag := strings.ToLower(strings.TrimSpace(strings.SplitN(part, ";", 2)[0]))
		if strings.HasPrefix(tag, "en") {
			return "en"
		}
		if strings.HasPrefix(tag, "es") {
			return "es"
		}
	}
	return "es"
}
