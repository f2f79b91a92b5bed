package personas

import "github.com/namesmith/namesmith/internal/types"

// defaultNiches are the built-in mode key → target-niche context strings.
var defaultNiches = map[string]string{
	"brandable": "short, brandable startup names with broad appeal",
	"saas":      "B2B SaaS products: dashboards, APIs, workflow and developer tools",
	"ecommerce": "direct-to-consumer e-commerce brands and storefronts",
	"ai":        "AI/ML products, agents, and model-adjacent tooling",
	"fintech":   "consumer and SMB fintech: payments, lending, investing",
}

// defaultPresets are the built-in buyer personas.
var defaultPresets = []types.Persona{
	{
		ID:          "startup-founder",
		Name:        "Startup Founder",
		Description: "Early-stage founder hunting a memorable .com for a venture-scale product",
		Weights: types.PersonaWeights{
			Brandability:  0.35,
			Pronunciation: 0.2,
			Spelling:      0.2,
			NativeMeaning: 0.1,
			BuyerIntent:   0.15,
		},
		Constraints:       types.Constraints{MaxLen: 10, NoHyphens: true, NoNumbers: true},
		BannedSubstrings:  []string{"cheap", "deal"},
		PreferredSuffixes: []string{"ly", "io", "hub"},
	},
	{
		ID:          "ecom-seller",
		Name:        "E-commerce Seller",
		Description: "DTC operator who wants a name that says what the store sells",
		Weights: types.PersonaWeights{
			Brandability:  0.2,
			Pronunciation: 0.15,
			Spelling:      0.25,
			NativeMeaning: 0.25,
			BuyerIntent:   0.15,
		},
		Constraints:       types.Constraints{MaxLen: 14, NoNumbers: true},
		PreferredPrefixes: []string{"shop", "get"},
	},
	{
		ID:          "ai-builder",
		Name:        "AI Builder",
		Description: "Indie hacker shipping AI tools; wants modern, techy names",
		Weights: types.PersonaWeights{
			Brandability:  0.3,
			Pronunciation: 0.15,
			Spelling:      0.15,
			NativeMeaning: 0.15,
			BuyerIntent:   0.25,
		},
		Constraints:       types.Constraints{MaxLen: 12, NoHyphens: true},
		PreferredSuffixes: []string{"ai", "gen", "lab"},
		Notes:             "names that pair naturally with an .ai fallback score higher",
	},
	{
		ID:          "fintech-operator",
		Name:        "Fintech Operator",
		Description: "Fintech team that needs a trustworthy, compliance-friendly name",
		Weights: types.PersonaWeights{
			Brandability:  0.25,
			Pronunciation: 0.2,
			Spelling:      0.25,
			NativeMeaning: 0.2,
			BuyerIntent:   0.1,
		},
		Constraints:      types.Constraints{MaxLen: 12, NoHyphens: true, NoNumbers: true},
		BannedSubstrings: []string{"crypto", "coin", "loan"},
	},
}

// DefaultRegistry returns a registry preloaded with the built-in presets and
// niche contexts.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	for _, p := range defaultPresets {
		// Built-ins are statically valid.
		_ = r.AddPersona(p)
	}
	for mode, context := range defaultNiches {
		r.AddNiche(mode, context)
	}
	return r
}
