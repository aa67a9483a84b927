package tmpl

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strconv"
	"strings"

	"github.com/LianHaeming/workoutplanner/models"
)

// Templates holds all page templates, keyed by page name.
type Templates struct {
	pages map[string]*template.Template
}

// ExecuteTemplate renders a page template by name.
func (t *Templates) ExecuteTemplate(w io.Writer, name string, data any) error {
	tmpl, ok := t.pages[name]
	if !ok {
		return fmt.Errorf("template %q not found", name)
	}
	// Partials are rendered by their "<base>-inner" define, pages via layout
	if strings.HasPrefix(name, "partials/") {
		inner := strings.TrimSuffix(path.Base(name), ".html") + "-inner"
		if tmpl.Lookup(inner) != nil {
			return tmpl.ExecuteTemplate(w, inner, data)
		}
		return tmpl.Execute(w, data)
	}
	return tmpl.ExecuteTemplate(w, "layout", data)
}

// Load parses all templates from fsys. Each page template gets its own clone
// of the shared templates (layout + partials) so {{define "content"}} doesn't
// collide.
func Load(fsys fs.FS, assetVer string) (*Templates, error) {
	funcMap := FuncMap(assetVer)

	base, err := template.New("base").Funcs(funcMap).ParseFS(fsys, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	partialFiles, err := fs.Glob(fsys, "partials/*.html")
	if err != nil {
		return nil, fmt.Errorf("glob partials: %w", err)
	}
	if len(partialFiles) > 0 {
		if _, err := base.ParseFS(fsys, partialFiles...); err != nil {
			return nil, fmt.Errorf("parse partials: %w", err)
		}
	}

	pageFiles, err := fs.Glob(fsys, "*.html")
	if err != nil {
		return nil, fmt.Errorf("glob pages: %w", err)
	}

	pages := map[string]*template.Template{}
	for _, f := range pageFiles {
		if f == "layout.html" {
			continue
		}
		clone, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone base for %s: %w", f, err)
		}
		if _, err := clone.ParseFS(fsys, f); err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		pages[f] = clone
	}

	// Partials can also be rendered on their own for in-place refreshes.
	for _, f := range partialFiles {
		t, err := template.New(path.Base(f)).Funcs(funcMap).ParseFS(fsys, f)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", f, err)
		}
		pages[f] = t
	}

	return &Templates{pages: pages}, nil
}

// FuncMap returns the helpers available to every template.
func FuncMap(assetVer string) template.FuncMap {
	return template.FuncMap{
		// Cache-busting version string for static assets
		"assetVer": func() string { return assetVer },

		"pctInt": func(num, denom int) int {
			if denom == 0 {
				return 0
			}
			return num * 100 / denom
		},

		"firstChar": func(s string) string {
			if len(s) == 0 {
				return "?"
			}
			return strings.ToUpper(string([]rune(s)[0]))
		},

		// Colors
		"categoryColor": models.CategoryColor,
		"categoryTint": func(c string) template.CSS {
			return template.CSS(hexToRGBA(models.CategoryColor(c), 0.15))
		},

		"fieldValue":    fieldValue,
		"fieldLabel":    fieldLabel,
		"formatMinutes": formatMinutes,
	}
}

func hexToRGBA(hex string, alpha float64) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return fmt.Sprintf("rgba(156, 163, 175, %.2f)", alpha)
	}
	r, _ := strconv.ParseInt(hex[0:2], 16, 64)
	g, _ := strconv.ParseInt(hex[2:4], 16, 64)
	b, _ := strconv.ParseInt(hex[4:6], 16, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, alpha)
}

func fieldValue(e models.ExerciseEntry, f models.Field) int {
	switch f {
	case models.FieldSets:
		return e.Sets
	case models.FieldReps:
		return e.Reps
	case models.FieldDuration:
		return e.Duration
	}
	return 0
}

func fieldLabel(f models.Field) string {
	switch f {
	case models.FieldSets:
		return "Sets"
	case models.FieldReps:
		return "Reps"
	case models.FieldDuration:
		return "Minutes"
	}
	return string(f)
}

func formatMinutes(minutes int) string {
	hours := minutes / 60
	rest := minutes % 60
	if hours > 0 {
		return fmt.Sprintf("%dh %dm", hours, rest)
	}
	return fmt.Sprintf("%d min", minutes)
}
