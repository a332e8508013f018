package icons

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
)

// Markup renders the icon as an HTML fragment
func (i Icon) Markup() (string, error) {
	doc := etree.NewDocument()
	span := doc.CreateElement("span")

	switch i.Kind {
	case KindMethod:
		span.CreateAttr("class", "t--apiMethodIcon t--method-"+strings.ToLower(i.Method))
		span.CreateAttr("data-method", i.Method)
		span.SetText(i.Method)
	case KindEntity:
		span.CreateAttr("class", "t--entityIcon")
		span.CreateAttr("style", fmt.Sprintf("height:%dpx;width:%dpx", i.Size, i.Size))
		img := span.CreateElement("img")
		img.CreateAttr("alt", "entityIcon")
		img.CreateAttr("src", i.Src)
	case KindDatabase:
		span.CreateAttr("class", "t--entityIcon t--dbQueryIcon")
		span.SetText("DB")
	default:
		return "", fmt.Errorf("unknown icon kind %q", i.Kind)
	}

	return doc.WriteToString()
}
