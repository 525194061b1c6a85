package gamepath

import (
	"strings"
	"unicode"
)

// IsActionPath reports whether a path is resolved through its action key rather than
// the structural patterns.
func IsActionPath(path string) bool {
	return strings.HasSuffix(path, ".pap") || strings.HasSuffix(path, ".tmb")
}

// ActionKey extracts the lowercase animation key from an action timeline path
// (chara/action/<key>.tmb) or a base player animation path
// (chara/human/c0101/animation/a0001/<folder>/<key>.pap). It returns "" for other paths.
func ActionKey(path string) string {
	caps, ok := actionTimeline.Match(path)
	if !ok {
		caps, ok = actionAnimation.Match(path)
	}
	if !ok {
		return ""
	}

	key := caps.Get("key")
	if key == "" || strings.IndexFunc(key, unicode.IsSpace) >= 0 {
		return ""
	}
	return strings.ToLower(key)
}
