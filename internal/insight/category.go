package insight

import (
	"context"

	"github.com/kndri/selah-journaling/internal/config"
)

const (
	ShapeCircle   = "Circle"
	ShapeSquare   = "Square"
	ShapeTriangle = "Triangle"
	ShapeStar     = "Star"

	FallbackColor = "Gray"
)

type category struct {
	color string
	shape string
}

// categoryTable is the fixed 5-theme x 4-sub-theme taxonomy. Every
// sub-theme of a theme shares the theme's color; the shape varies per
// sub-theme.
var categoryTable = map[string]map[string]category{
	"Faith": {
		"Trust":     {"Purple", ShapeCircle},
		"Doubt":     {"Purple", ShapeTriangle},
		"Prayer":    {"Purple", ShapeStar},
		"Surrender": {"Purple", ShapeSquare},
	},
	"Gratitude": {
		"Joy":         {"Orange", ShapeStar},
		"Contentment": {"Orange", ShapeCircle},
		"Provision":   {"Orange", ShapeSquare},
		"Praise":      {"Orange", ShapeTriangle},
	},
	"Relationships": {
		"Family":     {"Red", ShapeCircle},
		"Friendship": {"Red", ShapeSquare},
		"Conflict":   {"Red", ShapeTriangle},
		"Love":       {"Red", ShapeStar},
	},
	"Struggle": {
		"Anxiety":    {"Blue", ShapeTriangle},
		"Grief":      {"Blue", ShapeCircle},
		"Temptation": {"Blue", ShapeSquare},
		"Loneliness": {"Blue", ShapeStar},
	},
	"Growth": {
		"Discipline": {"Green", ShapeSquare},
		"Purpose":    {"Green", ShapeStar},
		"Change":     {"Green", ShapeTriangle},
		"Wisdom":     {"Green", ShapeCircle},
	},
}

var themeColors = map[string]string{
	"Faith":         "Purple",
	"Gratitude":     "Orange",
	"Relationships": "Red",
	"Struggle":      "Blue",
	"Growth":        "Green",
}

// MapCategory derives the display (color, shape) pair for a theme and
// sub-theme. Unknown values never fail: an unknown theme maps to
// (Gray, Circle) and an unknown sub-theme under a known theme keeps the
// theme's color with a Circle. Both cases are logged.
func MapCategory(ctx context.Context, theme, subTheme string) (string, string) {
	log := config.WithContext(ctx)

	subs, ok := categoryTable[theme]
	if !ok {
		log.WithField("theme", theme).Warn("Unrecognized theme, using fallback category")
		return FallbackColor, ShapeCircle
	}

	cat, ok := subs[subTheme]
	if !ok {
		log.WithField("theme", theme).WithField("sub_theme", subTheme).
			Warn("Unrecognized sub-theme, using theme color with fallback shape")
		return themeColors[theme], ShapeCircle
	}

	return cat.color, cat.shape
}

// Themes lists the recognized themes; SubThemes the recognized sub-themes
// of one theme. Both back the prompt so the model is constrained to the
// same taxonomy the mapper understands.
func Themes() []string {
	return []string{"Faith", "Gratitude", "Relationships", "Struggle", "Growth"}
}

func SubThemes(theme string) []string {
	switch theme {
	case "Faith":
		return []string{"Trust", "Doubt", "Prayer", "Surrender"}
	case "Gratitude":
		return []string{"Joy", "Contentment", "Provision", "Praise"}
	case "Relationships":
		return []string{"Family", "Friendship", "Conflict", "Love"}
	case "Struggle":
		return []string{"Anxiety", "Grief", "Temptation", "Loneliness"}
	case "Growth":
		return []string{"Discipline", "Purpose", "Change", "Wisdom"}
	default:
		return nil
	}
}
