package models

// CatalogOptions holds the option lists the edit screens seed their
// dropdowns from. They are injected at startup instead of living as
// module-level constants so the calculation engine stays independent of UI
// defaults.
type CatalogOptions struct {
	Types      []string  `json:"types"`
	States     []string  `json:"states"`
	Finishes   []string  `json:"finishes"`
	Units      []string  `json:"units"`
	Categories []string  `json:"categories"`
	TaxRates   []float64 `json:"taxRates"`
	Currencies []string  `json:"currencies"`
}

// DefaultCatalogOptions returns the standard option lists of the business.
func DefaultCatalogOptions() CatalogOptions {
	return CatalogOptions{
		Types: []string{
			"DÉBIT", "TRANCHE", "CARREAUX", "PLINTHE", "DOUBLE NEZ",
			"SERVICE", "BLOC", "ESCALIER", "ESCALIER ML", "MASSIF",
			"FONTAINE", "VASQUE", "CHEMINÉE", "AROSASSE", "GALÉ",
			"DIVERS", "VOYAGE",
		},
		States: []string{
			"BRUT", "POLI", "ADOUCI", "BOUCHARDÉ", "FLAMMÉ", "VIEILLI",
		},
		Finishes: []string{
			"FINITION BORD POLI", "FINITION BORD ADOUCI", "FINITION CHANFREIN",
		},
		Units:      []string{"M2", "ML", "TON", "M3", "PIÉCE", "F"},
		Categories: []string{"MARBRE", "GRANIT", "TRAVERTIN", "PIERRE"},
		TaxRates:   []float64{0, 20},
		Currencies: []string{"DHs", "€"},
	}
}
