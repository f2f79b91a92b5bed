// Package generation provides candidate name generation: template expansion,
// constraint filtering, and deduplication.
package generation

import (
	"github.com/namesmith/namesmith/internal/types"
)

// templateSlots maps each known template id to the ordered pack slots it
// concatenates. Anything absent from this table expands to zero candidates.
var templateSlots = map[types.TemplateID][]types.PackLabel{
	types.TemplateAB:       {types.PackA, types.PackB},
	types.TemplateBA:       {types.PackB, types.PackA},
	types.TemplateAC:       {types.PackA, types.PackC},
	types.TemplateCA:       {types.PackC, types.PackA},
	types.TemplateBC:       {types.PackB, types.PackC},
	types.TemplatePreA:     {types.PackPrefix, types.PackA},
	types.TemplateASuf:     {types.PackA, types.PackSuffix},
	types.TemplatePreAB:    {types.PackPrefix, types.PackA, types.PackB},
	types.TemplateABSuf:    {types.PackA, types.PackB, types.PackSuffix},
	types.TemplatePreABSuf: {types.PackPrefix, types.PackA, types.PackB, types.PackSuffix},
}

// DefaultTemplates is used when the caller omits the template list.
var DefaultTemplates = []types.TemplateID{types.TemplateAB}

// Expand applies each template to the word packs and returns one raw candidate
// per tuple of the Cartesian product of the referenced packs. Unknown template
// ids are silently skipped. Candidates are emitted in stable order: templates
// in the order given, tuples in pack order.
func Expand(packs types.WordPacks, templates []types.TemplateID) []types.Candidate {
	if len(templates) == 0 {
		templates = DefaultTemplates
	}

	var candidates []types.Candidate
	for _, tmpl := range templates {
		slots, known := templateSlots[tmpl]
		if !known {
			continue
		}

		lists := make([][]string, len(slots))
		for i, slot := range slots {
			lists[i] = packValues(packs, slot)
		}

		tuple := make([]string, len(slots))
		expandSlot(tmpl, slots, lists, tuple, 0, &candidates)
	}
	return candidates
}

// expandSlot recursively walks the Cartesian product of lists, emitting one
// candidate per complete tuple.
func expandSlot(tmpl types.TemplateID, slots []types.PackLabel, lists [][]string, tuple []string, depth int, out *[]types.Candidate) {
	if depth == len(lists) {
		domain := ""
		sources := make([]types.SourcePart, len(slots))
		for i, value := range tuple {
			domain += value
			sources[i] = types.SourcePart{Pack: slots[i], Value: value}
		}
		*out = append(*out, types.Candidate{
			Domain:   domain,
			Template: tmpl,
			Sources:  sources,
		})
		return
	}
	for _, value := range lists[depth] {
		tuple[depth] = value
		expandSlot(tmpl, slots, lists, tuple, depth+1, out)
	}
}

// packValues returns the fragment list for a pack slot.
func packValues(packs types.WordPacks, slot types.PackLabel) []string {
	switch slot {
	case types.PackA:
		return packs.A
	case types.PackB:
		return packs.B
	case types.PackC:
		return packs.C
	case types.PackPrefix:
		return packs.Prefixes
	case types.PackSuffix:
		return packs.Suffixes
	}
	return nil
}
