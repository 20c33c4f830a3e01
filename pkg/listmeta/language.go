package listmeta

import "strings"

// DefaultLanguage is returned when no programming language is
// recognized in the URL or content.
const DefaultLanguage = "General"

// languageEntry names a programming language and the keywords that
// indicate it. The table is ordered; ties in keyword counts resolve to
// the earlier entry.
type languageEntry struct {
	name     string
	keywords []string
}

var languageTable = []languageEntry{
	{"javascript", []string{"javascript", "js", "node", "nodejs", "npm", "react", "vue", "angular"}},
	{"python", []string{"python", "django", "flask", "pip", "pandas", "numpy"}},
	{"java", []string{"java", "spring", "maven", "gradle", "jvm"}},
	{"go", []string{"golang", "go "}},
	{"rust", []string{"rust", "cargo", "crate"}},
	{"php", []string{"php", "laravel", "composer", "symfony"}},
	{"ruby", []string{"ruby", "rails", "gem", "bundler"}},
	{"csharp", []string{"csharp", "c#", "dotnet", ".net"}},
	{"cpp", []string{"cpp", "c++"}},
	{"swift", []string{"swift", "ios", "xcode"}},
	{"kotlin", []string{"kotlin", "android"}},
	{"typescript", []string{"typescript", "ts"}},
}

// displayNames overrides naive Title-casing where it would misrender
// the conventional name.
var displayNames = map[string]string{
	"javascript": "JavaScript",
	"typescript": "TypeScript",
	"csharp":     "C#",
	"cpp":        "C++",
	"php":        "PHP",
}

func displayLanguage(name string) string {
	if display, ok := displayNames[name]; ok {
		return display
	}
	return strings.ToUpper(name[:1]) + name[1:]
}

// Language detects the dominant programming language of a list. A
// language name appearing in the URL wins outright; otherwise the
// entry with the most keyword occurrences in the content wins, and
// content with no keyword hits yields DefaultLanguage.
func Language(content, pageURL string) string {
	lowerURL := strings.ToLower(pageURL)
	for _, entry := range languageTable {
		if strings.Contains(lowerURL, entry.name) {
			return displayLanguage(entry.name)
		}
	}

	lowerContent := strings.ToLower(content)
	best := ""
	bestCount := 0
	for _, entry := range languageTable {
		count := 0
		for _, kw := range entry.keywords {
			count += strings.Count(lowerContent, kw)
		}
		if count > bestCount {
			best = entry.name
			bestCount = count
		}
	}
	if best == "" {
		return DefaultLanguage
	}
	return displayLanguage(best)
}
