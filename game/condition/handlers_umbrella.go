package condition

// umbrellaHandlers are recognizer-only entries for clause families the
// cascade knows about but has no resolver for. They sit below every
// resolving handler, so anything they catch is a recognized shape whose
// specific wording is not yet implemented. A nil resolve marks the match
// as a fallback.
func umbrellaHandlers() []handler {
	return []handler{
		{name: "umbrella-source", pattern: re(`if (?:it|it's|this (?:creature|permanent|card|spell|artifact|enchantment|land)) .+`)},
		{name: "umbrella-enchanted", pattern: re(`if enchanted .+`)},
		{name: "umbrella-equipped", pattern: re(`if equipped .+`)},
		{name: "umbrella-defending-player", pattern: re(`if (?:the )?defending player .+`)},
		{name: "umbrella-that-player", pattern: re(`if that (?:player|creature|permanent|spell|card) .+`)},
		{name: "umbrella-top-of-library", pattern: re(`if the top .+`)},
		{name: "umbrella-you-control", pattern: re(`if you control .+`)},
		{name: "umbrella-opponent", pattern: re(`if (?:an|each|that) opponent .+`)},
		{name: "umbrella-there-are", pattern: re(`if there (?:is|are) .+`)},
		{name: "umbrella-counters", pattern: re(`if .+ counters? on .+`)},
	}
}
