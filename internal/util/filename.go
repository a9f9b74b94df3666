package util

import (
	"regexp"
	"strings"
)

// languageExt maps pre block languages to file extensions.
var languageExt = map[string]string{
	"bash":       "sh",
	"c":          "c",
	"c++":        "cpp",
	"cpp":        "cpp",
	"css":        "css",
	"dart":       "dart",
	"dockerfile": "dockerfile",
	"go":         "go",
	"graphql":    "graphql",
	"html":       "html",
	"java":       "java",
	"javascript": "js",
	"js":         "js",
	"json":       "json",
	"kotlin":     "kt",
	"markdown":   "md",
	"php":        "php",
	"python":     "py",
	"ruby":       "rb",
	"rust":       "rs",
	"shell":      "sh",
	"sql":        "sql",
	"swift":      "swift",
	"toml":       "toml",
	"typescript": "ts",
	"xml":        "xml",
	"yaml":       "yaml",
}

var filenamePattern = regexp.MustCompile(`[A-Za-z0-9_\-.]+\.[A-Za-z0-9]+`)

// LanguageExt returns the file extension for a pre block language, "txt"
// when the language is unknown or empty.
func LanguageExt(language string) string {
	if ext, ok := languageExt[strings.ToLower(strings.TrimSpace(language))]; ok {
		return ext
	}
	return "txt"
}

// CodeFileName names the file a pre block is sent as. A file name mentioned
// on the first line of the code wins when it carries the language's
// extension (e.g. "// main.go"); any other name found there gets the
// extension appended ("fmt.Println" becomes "fmt.Println.go"). Without a
// usable name the file is "code.<ext>".
func CodeFileName(code, language string) string {
	ext := LanguageExt(language)
	first, _, _ := strings.Cut(strings.TrimSpace(code), "\n")
	name := filenamePattern.FindString(first)
	if name == "" || len(name) > 32 {
		return "code." + ext
	}
	if strings.HasSuffix(name, "."+ext) {
		return name
	}
	return name + "." + ext
}
