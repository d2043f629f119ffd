// Package catalog defines the static model-recommendation catalog: the
// record types, the JSON loaders and the read-only store that holds the
// per-session snapshot.
package catalog

// Purpose classifies what a model is recommended for. Values outside
// the known set are carried through as opaque strings; they only ever
// satisfy a purpose filter by exact equality.
type Purpose string

const (
	PurposeGeneral Purpose = "general"
	PurposeCoding  Purpose = "coding"
)

// Arch identifies a CPU architecture in a hardware hint.
type Arch string

const (
	ArchARM64   Arch = "arm64"
	ArchX8664   Arch = "x86_64"
	ArchUnknown Arch = "unknown"
)

// HardwareHint states the minimum hardware a model is known to run
// comfortably on. Zero values mean "no requirement stated".
type HardwareHint struct {
	Arch     Arch    `json:"arch,omitempty" yaml:"arch,omitempty"`
	MinRAMGB float64 `json:"min_ram_gb,omitempty" yaml:"min_ram_gb,omitempty"`
	MinCores int     `json:"min_cores,omitempty" yaml:"min_cores,omitempty"`
}

// ModelRecord is one catalog entry. Records are immutable once loaded;
// a record without a hardware hint is still eligible for ranking, it
// just collects no hardware-match score.
type ModelRecord struct {
	ID             string            `json:"id" yaml:"id"`
	ModelName      string            `json:"model_name" yaml:"model_name"`
	DisplayName    string            `json:"display_name,omitempty" yaml:"display_name,omitempty"`
	Provider       string            `json:"provider,omitempty" yaml:"provider,omitempty"`
	Purpose        Purpose           `json:"purpose,omitempty" yaml:"purpose,omitempty"`
	SupportsTools  bool              `json:"supports_tools" yaml:"supports_tools"`
	RecommendedFor []string          `json:"recommended_for,omitempty" yaml:"recommended_for,omitempty"`
	HardwareHint   *HardwareHint     `json:"hardware_profile_hint,omitempty" yaml:"hardware_profile_hint,omitempty"`
	Notes          string            `json:"notes,omitempty" yaml:"notes,omitempty"`
	Links          map[string]string `json:"links,omitempty" yaml:"links,omitempty"`
}

// DisplayLabel returns the name to show for the record, falling back to
// the raw model name when no display name is set.
func (r ModelRecord) DisplayLabel() string {
	if r.DisplayName != "" {
		return r.DisplayName
	}
	return r.ModelName
}
