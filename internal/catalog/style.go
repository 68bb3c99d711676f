package catalog

import "math/rand"

// Style is one randomly drawn stylistic configuration for a generation
// request. It shapes phrasing only, never structure.
type Style struct {
	Tone  string
	Verbs []string
}

// Tones are the tone descriptors one of which is injected into every
// report prompt.
var Tones = []string{
	"steady and methodical, projecting reliable execution",
	"concise and results-oriented, leading with outcomes",
	"proactive and forward-looking, stressing momentum",
	"rigorous and detail-conscious, emphasizing controlled progress",
}

// VerbSets are the preferred-verb vocabularies; one set is drawn per
// generation to vary phrasing between reports.
var VerbSets = [][]string{
	{"advance", "coordinate", "implement", "consolidate"},
	{"drive", "align", "finalize", "deliver"},
	{"push forward", "follow through", "secure", "close out"},
	{"organize", "execute", "verify", "land"},
}

// PickStyle draws one tone and one verb set uniformly at random.
// The randomness source is injected so callers can fix the draw in tests;
// draws are independent, with no seeding or persistence across calls.
func PickStyle(rng *rand.Rand) Style {
	return Style{
		Tone:  Tones[rng.Intn(len(Tones))],
		Verbs: VerbSets[rng.Intn(len(VerbSets))],
	}
}
