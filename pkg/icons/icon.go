// Package icons describes the icons the explorer shows next to an action
// and renders them for the terminal or as HTML markup.
package icons

import "strings"

// Kind tells which family an icon belongs to
type Kind string

const (
	// KindMethod is an HTTP method badge (GET, POST, ...)
	KindMethod Kind = "method"

	// KindEntity wraps a plugin asset image
	KindEntity Kind = "entity"

	// KindDatabase is the fixed database glyph
	KindDatabase Kind = "database"
)

// DefaultEntitySize is the default render size, in pixels, of entity icons
const DefaultEntitySize = 16

// Icon is a renderable icon description
type Icon struct {
	Kind   Kind   `json:"kind"`
	Method string `json:"method,omitempty"`
	Src    string `json:"src,omitempty"`
	Size   int    `json:"size,omitempty"`
}

// MethodIcon returns the badge for an HTTP method
func MethodIcon(method string) Icon {
	return Icon{Kind: KindMethod, Method: strings.ToUpper(strings.TrimSpace(method))}
}

// EntityIcon wraps an asset URL at the given size
func EntityIcon(src string, size int) Icon {
	if size <= 0 {
		size = DefaultEntitySize
	}
	return Icon{Kind: KindEntity, Src: src, Size: size}
}

// DBQueryIcon returns the fixed database icon
func DBQueryIcon() Icon {
	return Icon{Kind: KindDatabase}
}

// String returns a plain-text rendition
func (i Icon) String() string {
	switch i.Kind {
	case KindMethod:
		return i.Method
	case KindEntity:
		return "[" + i.Src + "]"
	case KindDatabase:
		return "DB"
	default:
		return ""
	}
}
