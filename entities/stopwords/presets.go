//  textkit: higher-level text analysis for Go
//
//  Copyright © 2026 The textkit authors. All rights reserved.
//  Licensed under the Apache License, Version 2.0.
//

package stopwords

const (
	EnglishPreset = "en"
	SpanishPreset = "es"
	GermanPreset  = "de"
	FrenchPreset  = "fr"
	NoPreset      = "none"
)

var Presets = map[string][]string{
	EnglishPreset: {
		"a", "about", "above", "after", "again", "all", "am", "an", "and",
		"any", "are", "as", "at", "be", "because", "been", "before", "being",
		"below", "between", "both", "but", "by", "can", "did", "do", "does",
		"doing", "down", "during", "each", "few", "for", "from", "further",
		"had", "has", "have", "having", "he", "her", "here", "hers", "him",
		"his", "how", "i", "if", "in", "into", "is", "it", "its", "itself",
		"just", "me", "more", "most", "my", "myself", "no", "nor", "not",
		"now", "of", "off", "on", "once", "only", "or", "other", "our",
		"ours", "out", "over", "own", "s", "same", "she", "should", "so",
		"some", "such", "t", "than", "that", "the", "their", "theirs",
		"them", "themselves", "then", "there", "these", "they", "this",
		"those", "through", "to", "too", "under", "until", "up", "very",
		"was", "we", "were", "what", "when", "where", "which", "while",
		"who", "whom", "why", "will", "with", "you", "your", "yours",
		"yourself", "yourselves",
	},
	SpanishPreset: {
		"a", "al", "algo", "como", "con", "cuando", "de", "del", "donde",
		"el", "ella", "ellas", "ellos", "en", "entre", "era", "es", "esa",
		"ese", "eso", "esta", "este", "esto", "fue", "ha", "hay", "la",
		"las", "le", "les", "lo", "los", "mas", "me", "mi", "muy", "no",
		"nos", "o", "para", "pero", "por", "que", "se", "si", "sin",
		"sobre", "su", "sus", "te", "tiene", "un", "una", "uno", "y", "ya",
	},
	GermanPreset: {
		"aber", "als", "am", "an", "auch", "auf", "aus", "bei", "bin",
		"bis", "da", "damit", "das", "dass", "dem", "den", "der", "des",
		"die", "doch", "du", "durch", "ein", "eine", "einem", "einen",
		"einer", "er", "es", "für", "hat", "ich", "im", "in", "ist", "ja",
		"kann", "mit", "nach", "nicht", "noch", "nur", "oder", "sich",
		"sie", "sind", "so", "um", "und", "von", "vor", "war", "was",
		"wie", "wir", "zu", "zum", "zur",
	},
	FrenchPreset: {
		"a", "au", "aux", "avec", "ce", "ces", "dans", "de", "des", "du",
		"elle", "en", "et", "eux", "il", "ils", "je", "la", "le", "les",
		"leur", "lui", "mais", "me", "même", "mes", "moi", "mon", "ne",
		"nos", "notre", "nous", "on", "ou", "où", "par", "pas", "pour",
		"qu", "que", "qui", "sa", "se", "ses", "son", "sur", "ta", "te",
		"tes", "toi", "ton", "tu", "un", "une", "vos", "votre", "vous", "y",
	},
	NoPreset: {},
}
