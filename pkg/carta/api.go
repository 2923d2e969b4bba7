// Package carta is the template substitution engine behind the
// representation-letter tool: it scans DOCX templates for placeholder
// syntax, resolves variable and conditional bindings, rewrites the text
// while preserving visual formatting, and re-normalizes numbered lists.
//
// Basic usage:
//
//	tmpl, err := carta.OpenTemplateFile("plantilla.docx")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer tmpl.Close()
//
//	vars, conds, err := tmpl.Extract()
//	// ... collect bindings for vars and conds ...
//
//	out, err := tmpl.Generate(carta.Variables{"Nombre_Cliente": "ACME"},
//		carta.Conditionals{"experto": carta.Yes})
//
// Template syntax:
//
//	{{ name }}                                  scalar variable
//	{{ name | int }}                            numeric rendering
//	{{ name | int - 1 }}                        numeric decrement
//	{{lista_alto_directores: description}}      multi-line list
//	{% if name == 'sí' %} ... {% endif %}       conditional (inline or
//	                                            paragraph-level block)
package carta

import (
	"io"
)

// Engine ties a configuration and a template cache together. Zero-config
// callers can use the package-level OpenTemplate/OpenTemplateFile instead.
type Engine struct {
	config *Config
	cache  *TemplateCache
}

// New creates an engine with the global configuration.
func New() *Engine {
	return &Engine{
		config: GetGlobalConfig(),
		cache:  NewTemplateCache(),
	}
}

// NewWithConfig creates an engine with a custom configuration.
func NewWithConfig(config *Config) *Engine {
	return &Engine{
		config: config,
		cache: NewTemplateCacheWithConfig(CacheConfig{
			MaxSize: config.CacheMaxSize,
			TTL:     config.CacheTTL,
		}),
	}
}

// OpenFile loads a template from a path, consulting the cache when
// enabled.
func (e *Engine) OpenFile(path string) (*Template, error) {
	if e.config.CacheMaxSize > 0 && e.cache != nil {
		if tmpl, ok := e.cache.Get(path); ok {
			return tmpl, nil
		}
	}

	tmpl, err := OpenTemplateFile(path)
	if err != nil {
		return nil, err
	}

	if e.config.CacheMaxSize > 0 && e.cache != nil {
		e.cache.Set(path, tmpl)
	}
	return tmpl, nil
}

// Open loads a template from a reader. Reader-based templates are not
// cached: there is no stable key for them.
func (e *Engine) Open(r io.Reader) (*Template, error) {
	return OpenTemplate(r)
}

// Config returns the engine's configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// ClearCache removes all templates from the cache.
func (e *Engine) ClearCache() {
	if e.cache != nil {
		e.cache.Clear()
	}
}
