package capability

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"veristack/core/planning"
)

// fileEntry is the on-disk shape of one capability catalog entry. The
// catalog file format is intentionally flat — operators declare which
// action types are admissible and at what default risk, nothing more.
type fileEntry struct {
	ActionType  string `yaml:"action_type"`
	Description string `yaml:"description"`
	DefaultRisk string `yaml:"default_risk"`
}

type catalogFile struct {
	Capabilities []fileEntry `yaml:"capabilities"`
}

var riskByName = map[string]planning.PlanRiskLevel{
	"LOW":      planning.RiskLow,
	"MEDIUM":   planning.RiskMedium,
	"HIGH":     planning.RiskHigh,
	"CRITICAL": planning.RiskCritical,
}

// LoadFromFile reads a YAML capability catalog and registers every entry.
// The capability catalog is operator-editable configuration; the
// decision-table enums and procedures it feeds (planning.ActionType,
// planning.PlanRiskLevel, DecidePlanAcceptance) remain frozen Go code —
// only which action types are admissible, and at what default risk, is
// loaded from YAML.
func LoadFromFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read capability catalog %s: %w", path, err)
	}

	var parsed catalogFile
	if err := yaml.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parse capability catalog %s: %w", path, err)
	}

	for _, fe := range parsed.Capabilities {
		risk, ok := riskByName[fe.DefaultRisk]
		if !ok {
			return fmt.Errorf("capability catalog %s: unknown default_risk %q for action_type %q", path, fe.DefaultRisk, fe.ActionType)
		}
		Register(Entry{
			ActionType:  planning.ActionType(fe.ActionType),
			Description: fe.Description,
			DefaultRisk: risk,
		})
	}
	return nil
}
