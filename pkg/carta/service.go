package carta

import (
	"fmt"
	"sort"
	"strings"
	"time"
)

// RequiredFields must be bound before a letter can be generated.
var RequiredFields = []string{
	"Nombre_Cliente",
	"Direccion_Oficina",
	"CP",
	"Ciudad_Oficina",
}

// conditionalDependents lists the variables that are only meaningful when
// their gating conditional is answered Yes.
var conditionalDependents = map[string][]string{
	"incorreccion":     {"Anio_incorreccion", "Epigrafe", "detalle_limitacion"},
	"experto":          {"nombre_experto", "experto_valoracion"},
	"activo_impuesto":  {"ejercicio_recuperacion_inicio", "ejercicio_recuperacion_fin"},
	"operacion_fiscal": {"detalle_operacion_fiscal"},
	"unidad_decision":  {"nombre_unidad", "nombre_mayor_sociedad", "localizacion_mer"},
}

// Service orchestrates letter generation for one template: extraction,
// binding validation and artifact naming. It holds no mutable state beyond
// the engine, so one Service may serve concurrent requests.
type Service struct {
	templatePath string
	engine       *Engine
}

// NewService creates a service for the given template path.
func NewService(templatePath string) *Service {
	return &Service{
		templatePath: templatePath,
		engine:       New(),
	}
}

// ExtractVariables returns the variable and conditional names referenced
// by the template.
func (s *Service) ExtractVariables() (variables, conditionals []string, err error) {
	tmpl, err := s.engine.OpenFile(s.templatePath)
	if err != nil {
		return nil, nil, err
	}
	return tmpl.Extract()
}

// RequiredVariables computes which variables actually need a value given
// the current conditional answers: dependents of a No-answered (or
// unanswered) conditional are dropped from the full list.
func (s *Service) RequiredVariables(allVariables []string, conditionals Conditionals) []string {
	skip := make(map[string]struct{})
	for cond, dependents := range conditionalDependents {
		if !conditionals.IsYes(cond) {
			for _, name := range dependents {
				skip[name] = struct{}{}
			}
		}
	}

	var required []string
	for _, name := range allVariables {
		if _, gone := skip[name]; !gone {
			required = append(required, name)
		}
	}
	sort.Strings(required)
	return required
}

// GenerateLetter validates the bindings, generates the letter and returns
// the artifact bytes along with a download filename. Missing required
// fields produce a ValidationError; unbound non-required variables are
// filled with the empty string so they vanish from the output.
func (s *Service) GenerateLetter(variables Variables, conditionals Conditionals, allVariables []string) ([]byte, string, error) {
	var issues []ValidationIssue
	for _, field := range RequiredFields {
		if variables[field] == "" {
			issues = append(issues, ValidationIssue{Field: field, Message: "required field is empty"})
		}
	}
	if len(issues) > 0 {
		return nil, "", &ValidationError{Issues: issues}
	}

	merged := make(Variables, len(variables)+len(conditionals)+len(allVariables))
	for _, name := range allVariables {
		merged[name] = ""
	}
	for name, value := range variables {
		merged[name] = value
	}
	// Conditional answers double as substitutable variables so a template
	// can print the literal answer.
	for name, value := range conditionals {
		merged[name] = value
	}

	tmpl, err := s.engine.OpenFile(s.templatePath)
	if err != nil {
		return nil, "", err
	}

	out, err := tmpl.GenerateBytes(merged, conditionals)
	if err != nil {
		return nil, "", err
	}

	return out, letterFilename(variables["Nombre_Cliente"], time.Now()), nil
}

// letterFilename builds the download name for a generated letter.
func letterFilename(client string, now time.Time) string {
	return fmt.Sprintf("Carta_Manifestacion_%s_%s.docx",
		strings.ReplaceAll(client, " ", "_"), now.Format("20060102"))
}
