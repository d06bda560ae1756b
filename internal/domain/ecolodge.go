package domain

type EcoLodgeCategory string

const (
	EcoJungle   EcoLodgeCategory = "jungle"
	EcoBeach    EcoLodgeCategory = "beach"
	EcoMountain EcoLodgeCategory = "mountain"
	EcoCenote   EcoLodgeCategory = "cenote"
	EcoFarm     EcoLodgeCategory = "farm"
)

var EcoLodgeCategories = []EcoLodgeCategory{EcoJungle, EcoBeach, EcoMountain, EcoCenote, EcoFarm}

// EcoLodgeAtmospheres lists the atmosphere tags each lodge category satisfies.
var EcoLodgeAtmospheres = map[EcoLodgeCategory][]Atmosphere{
	EcoJungle:   {"adventure", "nature", "secluded"},
	EcoBeach:    {"relaxing", "romantic", "nature"},
	EcoMountain: {"adventure", "nature", "cozy"},
	EcoCenote:   {"adventure", "nature", "relaxing"},
	EcoFarm:     {"family", "rustic", "nature"},
}

type EcoLodge struct {
	BusinessEntity `yaml:",inline"`
	Category       EcoLodgeCategory `json:"category" yaml:"category"`
	Certifications []string         `json:"certifications,omitempty" yaml:"certifications,omitempty"`
	OffGrid        bool             `json:"offGrid" yaml:"offGrid"`
}
