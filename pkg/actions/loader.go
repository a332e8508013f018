package actions

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/actionkit/pkg/errors"
	"github.com/arthur-debert/actionkit/pkg/logging"
	"github.com/arthur-debert/actionkit/pkg/types"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

// actionsFile is the layout of YAML and TOML action files
type actionsFile struct {
	Actions []types.ActionRecord `yaml:"actions" toml:"actions"`
}

// LoadFile reads action records from path. The format follows the file
// extension: .yaml/.yml and .toml hold an "actions" list, .json is an
// application export.
func LoadFile(fs afero.Fs, path string) ([]types.ActionRecord, error) {
	logger := logging.GetLogger("actions")

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrActionsLoad, "cannot read actions file %s", path)
	}

	var records []types.ActionRecord
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		records, err = parseYAML(data)
	case ".toml":
		records, err = parseTOML(data)
	case ".json":
		var imp *Import
		imp, err = ImportExport(data, ImportOptions{})
		if imp != nil {
			records = imp.Actions
		}
	default:
		return nil, errors.Newf(errors.ErrActionsFormat, "unsupported actions file extension %q", ext).
			WithDetail("path", path)
	}
	if err != nil {
		return nil, err
	}

	for i := range records {
		if records[i].Kind != "" {
			kind, kerr := types.ParseActionKind(string(records[i].Kind))
			if kerr != nil {
				return nil, errors.Wrapf(kerr, errors.ErrActionsParse, "action %q in %s", records[i].ID, path)
			}
			records[i].Kind = kind
		}
	}

	logger.Debug().Str("path", path).Int("actions", len(records)).Msg("Loaded actions")
	return records, nil
}

func parseYAML(data []byte) ([]types.ActionRecord, error) {
	var file actionsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.ErrActionsParse, "cannot parse YAML actions")
	}
	return file.Actions, nil
}

func parseTOML(data []byte) ([]types.ActionRecord, error) {
	var file actionsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrap(err, errors.ErrActionsParse, "cannot parse TOML actions")
	}
	return file.Actions, nil
}
