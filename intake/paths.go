package intake

import (
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// FirstPath extracts the first file path from a line of terminal input.
//
// Dropping files onto a terminal pastes their paths, quoted or backslash-escaped
// depending on the emulator, and some emulators paste file:// URIs instead.
func FirstPath(line string) (string, bool) {
	paths := SplitPaths(line)
	if len(paths) == 0 {
		return "", false
	}
	return paths[0], true
}

// SplitPaths tokenizes pasted input using shell quoting rules and normalizes
// each token into a filesystem path.
func SplitPaths(line string) []string {
	var (
		tokens  []string
		current strings.Builder
		quote   rune
		escaped bool
		inToken bool
	)

	flush := func() {
		if inToken {
			tokens = append(tokens, current.String())
		}
		current.Reset()
		inToken = false
	}

	for _, r := range line {
		switch {
		case escaped:
			current.WriteRune(r)
			escaped = false
		case r == '\\' && quote != '\'':
			escaped = true
			inToken = true
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inToken = true
		case r == ' ' || r == '\t' || r == '\n' || r == '\r':
			flush()
		default:
			current.WriteRune(r)
			inToken = true
		}
	}
	flush()

	paths := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		if p := normalizePath(tok); p != "" {
			paths = append(paths, p)
		}
	}
	return paths
}

func normalizePath(token string) string {
	token = strings.TrimSpace(token)
	if token == "" {
		return ""
	}

	if strings.HasPrefix(token, "file://") {
		u, err := url.Parse(token)
		if err != nil || u.Path == "" {
			return ""
		}
		return filepath.FromSlash(u.Path)
	}

	if token == "~" || strings.HasPrefix(token, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(token, "~"))
		}
	}
	return token
}
