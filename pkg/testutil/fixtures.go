package testutil

import (
	"testing"

	"github.com/arthur-debert/actionkit/pkg/types"
	"gopkg.in/yaml.v3"
)

// Action builds an action record
func Action(id, name, pageID string, kind types.ActionKind) types.ActionRecord {
	return types.ActionRecord{ID: id, Name: name, PageID: pageID, Kind: kind}
}

// ActionsYAML renders records in the YAML actions file layout
func ActionsYAML(t *testing.T, records ...types.ActionRecord) string {
	t.Helper()
	out, err := yaml.Marshal(map[string][]types.ActionRecord{"actions": records})
	if err != nil {
		t.Fatalf("Failed to marshal actions: %v", err)
	}
	return string(out)
}
