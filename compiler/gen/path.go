package gen

import (
	"path"
	"strings"
)

// NormalizeRelative makes sure a project-relative path starts with "./"
// or "../". Paths already starting with "." are returned unchanged.
func NormalizeRelative(p string) string {
	if strings.HasPrefix(p, ".") {
		return p
	}
	return "./" + p
}

// JoinRelative joins the given elements with forward slashes, regardless of
// the host separator, and normalizes the result as a relative path.
func JoinRelative(elem ...string) string {
	parts := make([]string, len(elem))
	for i, e := range elem {
		parts[i] = toSlash(e)
	}
	return NormalizeRelative(path.Join(parts...))
}

// RelativePackage returns the module specifier a file under source uses to
// import target. Targets that do not start with "." are bare package names
// and are returned as is. Otherwise, the result is the relative path from
// source to target followed by the module suffix of the config.
//
//	RelativePackage("entities/generated", "./src/index", cfg) // "../../src/index"
//	RelativePackage("entities", "airent", cfg)                // "airent"
func RelativePackage(source, target string, cfg *Config) string {
	if !strings.HasPrefix(target, ".") {
		return target
	}
	return NormalizeRelative(relativePath(source, target)) + cfg.ModuleSuffix()
}

// relativePath returns the slash-separated path of target relative to
// source. Both paths are treated as lexical, project-relative paths.
func relativePath(source, target string) string {
	source, target = path.Clean(toSlash(source)), path.Clean(toSlash(target))
	if source == target {
		return "./" + path.Base(target)
	}
	from, to := segments(source), segments(target)
	i := 0
	for i < len(from) && i < len(to) && from[i] == to[i] {
		i++
	}
	rel := make([]string, 0, len(from)-i+len(to)-i)
	for range from[i:] {
		rel = append(rel, "..")
	}
	rel = append(rel, to[i:]...)
	return strings.Join(rel, "/")
}

// segments splits a cleaned path into its elements. The current
// directory "." has no elements.
func segments(p string) []string {
	if p == "." {
		return nil
	}
	return strings.Split(p, "/")
}

func toSlash(p string) string {
	return strings.ReplaceAll(p, `\`, "/")
}
