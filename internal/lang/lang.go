// Package lang guesses source languages from file names and content and
// describes the languages the editor knows about.
package lang

import (
	"path/filepath"
	"regexp"
	"slices"
	"strings"
)

// Plaintext is returned when no rule matches.
const Plaintext = "plaintext"

// Language is a selectable language.
type Language struct {
	ID   string
	Name string
}

var languages = []Language{
	{"bat", "Batch"},
	{"c", "C"},
	{"cpp", "C++"},
	{"csharp", "C#"},
	{"css", "CSS"},
	{"dart", "Dart"},
	{"dockerfile", "Dockerfile"},
	{"go", "Go"},
	{"graphql", "GraphQL"},
	{"html", "HTML"},
	{"ini", "Ini"},
	{"java", "Java"},
	{"javascript", "JavaScript"},
	{"json", "JSON"},
	{"kotlin", "Kotlin"},
	{"less", "Less"},
	{"lua", "Lua"},
	{"markdown", "Markdown"},
	{"perl", "Perl"},
	{"php", "PHP"},
	{"plaintext", "Plain Text"},
	{"powershell", "PowerShell"},
	{"python", "Python"},
	{"r", "R"},
	{"ruby", "Ruby"},
	{"rust", "Rust"},
	{"sass", "Sass"},
	{"scala", "Scala"},
	{"scss", "SCSS"},
	{"shell", "Shell Script"},
	{"sql", "SQL"},
	{"swift", "Swift"},
	{"typescript", "TypeScript"},
	{"xml", "XML"},
	{"yaml", "YAML"},
}

var byID = func() map[string]Language {
	slices.SortFunc(languages, func(a, b Language) int { return compareFold(a.Name, b.Name) })
	m := make(map[string]Language, len(languages))
	for _, l := range languages {
		m[l.ID] = l
	}
	return m
}()

// All returns every known language sorted by display name.
func All() []Language {
	out := make([]Language, len(languages))
	copy(out, languages)
	return out
}

// Known reports whether id is a language from All.
func Known(id string) bool {
	_, ok := byID[id]
	return ok
}

// DisplayName returns the human name for id. Unknown ids are capitalized.
func DisplayName(id string) string {
	if l, ok := byID[id]; ok {
		return l.Name
	}
	if id == "" {
		return ""
	}
	return strings.ToUpper(id[:1]) + id[1:]
}

var extensions = map[string]string{
	"js":    "javascript",
	"ts":    "typescript",
	"jsx":   "javascript",
	"tsx":   "typescript",
	"py":    "python",
	"java":  "java",
	"c":     "c",
	"cpp":   "cpp",
	"cs":    "csharp",
	"php":   "php",
	"rb":    "ruby",
	"go":    "go",
	"rs":    "rust",
	"kt":    "kotlin",
	"swift": "swift",
	"html":  "html",
	"css":   "css",
	"scss":  "scss",
	"sass":  "sass",
	"less":  "less",
	"xml":   "xml",
	"json":  "json",
	"yaml":  "yaml",
	"yml":   "yaml",
	"md":    "markdown",
	"sql":   "sql",
	"sh":    "shell",
	"bash":  "shell",
	"zsh":   "shell",
}

// FromFilename maps the text after the last dot of the base name to a
// language. A name without a dot is looked up whole, so "go" maps to go.
func FromFilename(name string) string {
	base := filepath.Base(name)
	ext := base
	if i := strings.LastIndexByte(base, '.'); i >= 0 {
		ext = base[i+1:]
	}
	if id, ok := extensions[strings.ToLower(ext)]; ok {
		return id
	}
	return Plaintext
}

type rule struct {
	re   *regexp.Regexp
	lang string
}

// Ordered; the first match wins. Broad rules such as javascript sit early on
// purpose and shadow some later ones.
var rules = []rule{
	{regexp.MustCompile(`(?i)<!DOCTYPE|<html|<head|<body|<div|<span`), "html"},
	{regexp.MustCompile(`(?i)^<\?xml|<\w+.*xmlns`), "xml"},
	{regexp.MustCompile(`(?m)\{[\s\S]*"[\w-]+"[\s\S]*:`), "json"},
	{regexp.MustCompile(`(?m)---\s*\n|^[\w-]+:\s*[\w\s-]+$`), "yaml"},

	{regexp.MustCompile(`(?i)\{\s*[\w-]+\s*:\s*[^}]+\s*\}|@media|@import`), "css"},
	{regexp.MustCompile(`(?i)\$[\w-]+\s*:|@mixin|@include|@extend`), "scss"},

	{regexp.MustCompile(`(?i)\b(function|const|let|var|=>|class|import|export|require)\b`), "javascript"},
	{regexp.MustCompile(`(?i)\b(interface|type|namespace|declare|as\s+\w+)\b|\w+:\s*\w+(\[\]|<\w+>)?`), "typescript"},
	{regexp.MustCompile(`(?i)React\.|jsx|tsx|useState|useEffect|<\w+.*>`), "javascript"},

	{regexp.MustCompile(`(?i)\b(def|class|import|from|if __name__|print\(|range\()\b`), "python"},
	{regexp.MustCompile(`(?i)^\s*(#!.*python|# -\*- coding:)`), "python"},

	{regexp.MustCompile(`(?i)\b(public|private|protected)\s+(static\s+)?(void|int|String|class)\b`), "java"},
	{regexp.MustCompile(`(?i)\b(#include|int main\(|printf\(|malloc\()\b`), "c"},
	{regexp.MustCompile(`(?i)\b(std::|iostream|vector|using namespace)\b`), "cpp"},
	{regexp.MustCompile(`(?i)\b(using System|namespace|public static void Main)\b`), "csharp"},

	{regexp.MustCompile(`(?i)\b(func|package|import|var|:=|fmt\.)\b`), "go"},
	{regexp.MustCompile(`(?i)\b(fn|let mut|impl|trait|match|Result<)\b`), "rust"},
	{regexp.MustCompile(`(?i)\b(<\?php|echo|function|\$\w+)`), "php"},
	{regexp.MustCompile(`(?i)\b(def|end|class|module|puts|require)\b`), "ruby"},
	{regexp.MustCompile(`(?i)\b(SELECT|FROM|WHERE|INSERT|UPDATE|DELETE)\b`), "sql"},
	{regexp.MustCompile(`^#!`), "shell"},

	{regexp.MustCompile(`(?m)^#{1,6}\s|^\*\*|^-\s|\[.*\]\(.*\)|` + "```"), "markdown"},
}

// FromContent runs the heuristic table over text.
func FromContent(text string) string {
	if strings.TrimSpace(text) == "" {
		return Plaintext
	}
	for _, r := range rules {
		if r.re.MatchString(text) {
			return r.lang
		}
	}
	return Plaintext
}

// Detector adapts the package functions to the session engine.
type Detector struct{}

func (Detector) FromContent(text string) string  { return FromContent(text) }
func (Detector) FromFilename(name string) string { return FromFilename(name) }
