package types

import (
	"strings"

	"github.com/arthur-debert/actionkit/pkg/errors"
)

// ActionKind classifies the connector category behind an action. It is
// assigned when the action is created and never changes.
type ActionKind string

const (
	// ActionKindAPI is a REST or GraphQL call
	ActionKindAPI ActionKind = "API"

	// ActionKindSaaS is a call through a SaaS connector
	ActionKindSaaS ActionKind = "SAAS"

	// ActionKindDB is a database query
	ActionKindDB ActionKind = "DB"

	// ActionKindRemote is a query served by a remote plugin
	ActionKindRemote ActionKind = "REMOTE"

	// ActionKindAI is a query against an AI provider
	ActionKindAI ActionKind = "AI"

	// ActionKindInternal is a query served by a built-in plugin
	ActionKindInternal ActionKind = "INTERNAL"
)

// AllActionKinds returns every member of the closed kind set in a stable order
func AllActionKinds() []ActionKind {
	return []ActionKind{
		ActionKindAPI,
		ActionKindSaaS,
		ActionKindDB,
		ActionKindRemote,
		ActionKindAI,
		ActionKindInternal,
	}
}

// IsValid reports whether k belongs to the closed kind set
func (k ActionKind) IsValid() bool {
	for _, kind := range AllActionKinds() {
		if k == kind {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer
func (k ActionKind) String() string {
	return string(k)
}

// ParseActionKind parses a kind tag case-insensitively
func ParseActionKind(s string) (ActionKind, error) {
	kind := ActionKind(strings.ToUpper(strings.TrimSpace(s)))
	if !kind.IsValid() {
		return "", errors.Newf(errors.ErrInvalidKind, "unknown action kind %q", s).
			WithDetail("kind", s)
	}
	return kind, nil
}
