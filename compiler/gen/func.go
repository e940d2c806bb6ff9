package gen

import (
	"strings"
	"unicode"

	"github.com/go-openapi/inflect"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var rules = ruleset()

// ruleset returns the inflection rules used for entity names. Rules match
// lower-case words; see plural.
func ruleset() *inflect.Ruleset {
	rules := inflect.NewDefaultRuleset()
	for _, w := range []string{"data", "metadata", "info"} {
		rules.AddUncountable(w)
	}
	for _, w := range [][2]string{
		{"criterion", "criteria"},
		{"leaf", "leaves"},
		{"campus", "campuses"},
		{"virus", "viruses"},
	} {
		rules.AddIrregular(w[0], w[1])
	}
	return rules
}

// words splits s into its words. Underscores, dashes and spaces separate
// words, and an upper-case letter starts a new word if it follows a lower-case
// letter or ends a run of capitals followed by a lower-case letter:
//
//	words("createdAt") // [created At]
//	words("HTTPLog")   // [HTTP Log]
//	words("UserIDs")   // [User IDs]
//	words("read_only") // [read only]
func words(s string) []string {
	var (
		ws    []string
		rs    = []rune(s)
		start int
	)
	flush := func(end int) {
		if end > start {
			ws = append(ws, string(rs[start:end]))
		}
	}
	for i, r := range rs {
		switch {
		case r == '_' || r == '-' || r == ' ':
			flush(i)
			start = i + 1
		case i > start && unicode.IsUpper(r):
			prev := rs[i-1]
			if unicode.IsLower(prev) ||
				start != i-1 && i+1 < len(rs) && unicode.IsLower(rs[i+1]) && unicode.IsLetter(prev) {
				flush(i)
				start = i
			}
		}
	}
	flush(len(rs))
	return ws
}

// plural returns the plural form of the given name. Only the last word is
// inflected and its casing is kept: "UserProfile" -> "UserProfiles",
// "UserID" -> "UserIDs".
func plural(name string) string {
	ws := words(name)
	if len(ws) == 0 {
		return name
	}
	last := ws[len(ws)-1]
	return name[:strings.LastIndex(name, last)] + pluralWord(last)
}

func pluralWord(w string) string {
	lower := strings.ToLower(w)
	p := rules.Pluralize(lower)
	switch {
	case w == lower:
		return p
	case len(w) > 1 && w == strings.ToUpper(w):
		if strings.HasPrefix(p, lower) {
			return w + p[len(lower):]
		}
		return strings.ToUpper(p)
	default:
		return upperFirst(p)
	}
}

// upperFirst capitalizes the first letter of w and keeps the rest as is.
func upperFirst(w string) string {
	// A Caser is stateful, so a new one is created for each call.
	return cases.Title(language.Und, cases.NoLower).String(w)
}

// titleCase returns the upper camel-case form of s: "createdAt" -> "CreatedAt",
// "read_only" -> "ReadOnly".
func titleCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// camel returns the lower camel-case form of s: "UserProfile" -> "userProfile",
// "HTTPLog" -> "httpLog".
func camel(s string) string {
	ws := words(s)
	if len(ws) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString(strings.ToLower(ws[0]))
	for _, w := range ws[1:] {
		b.WriteString(upperFirst(w))
	}
	return b.String()
}

// kebab returns the dashed file name form of s: "UserProfile" -> "user-profile",
// "APIKey" -> "api-key".
func kebab(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "-")
}

// quote wraps s in single quotes as a TypeScript string literal.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `\'`) + "'"
}
