package catalog

import (
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/standards-cli/internal/model"
)

// Catalog file names expected under the catalog directory.
const (
	standardsFile    = "standards.yaml"
	rulesFile        = "rules.yaml"
	descriptionsFile = "descriptions.yaml"
)

// LoadDir reads standards.yaml, rules.yaml, and descriptions.yaml from dir
// and returns an indexed Catalog. Rules and descriptions files are
// optional; the standards file is required.
func LoadDir(dir string) (*Catalog, error) {
	standards, err := LoadStandards(filepath.Join(dir, standardsFile))
	if err != nil {
		return nil, err
	}

	rules, err := LoadRules(filepath.Join(dir, rulesFile))
	if err != nil && !os.IsNotExist(eris.Cause(err)) {
		return nil, err
	}

	descriptions, err := LoadDescriptions(filepath.Join(dir, descriptionsFile))
	if err != nil && !os.IsNotExist(eris.Cause(err)) {
		return nil, err
	}

	return New(standards, rules, descriptions), nil
}

// LoadStandards reads a YAML array of model.StandardItem from the given path.
func LoadStandards(path string) ([]model.StandardItem, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: read standards")
	}

	var standards []model.StandardItem
	if err := yaml.Unmarshal(data, &standards); err != nil {
		return nil, eris.Wrap(err, "catalog: unmarshal standards")
	}

	return standards, nil
}

// LoadRules reads a YAML array of model.Rule from the given path.
func LoadRules(path string) ([]model.Rule, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: read rules")
	}

	var rules []model.Rule
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, eris.Wrap(err, "catalog: unmarshal rules")
	}

	return rules, nil
}

// LoadDescriptions reads a YAML array of model.SemanticDescription from the
// given path.
func LoadDescriptions(path string) ([]model.SemanticDescription, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrap(err, "catalog: read descriptions")
	}

	var descriptions []model.SemanticDescription
	if err := yaml.Unmarshal(data, &descriptions); err != nil {
		return nil, eris.Wrap(err, "catalog: unmarshal descriptions")
	}

	return descriptions, nil
}
