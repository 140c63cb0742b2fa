package storage

import (
	"path/filepath"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"
)

const (
	maxBaseLen = 150
	maxExtLen  = 20
)

// SanitizeFilename reduces a client supplied name to [A-Za-z0-9_.-] with no
// leading or trailing dots or underscores. Non-ASCII letters are decomposed and
// their accents dropped; anything left unrepresentable is removed. The result may
// be empty.
func SanitizeFilename(name string) string {
	name = norm.NFKD.String(name)

	var ascii strings.Builder
	for _, r := range name {
		if r > unicode.MaxASCII {
			continue
		}
		if r == '/' || r == '\\' {
			r = ' '
		}
		ascii.WriteRune(r)
	}

	joined := strings.Join(strings.Fields(ascii.String()), "_")

	var out strings.Builder
	for _, r := range joined {
		if r == '_' || r == '.' || r == '-' ||
			(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			out.WriteRune(r)
		}
	}

	return strings.Trim(out.String(), "._")
}

// StoredName returns the name to store an upload under. A base name that
// sanitizes to nothing is replaced by a generated one so the extension survives.
func StoredName(original string) string {
	ext := filepath.Ext(original)
	base := SanitizeFilename(strings.TrimSuffix(original, ext))
	ext = SanitizeFilename(ext)

	if len(base) > maxBaseLen {
		base = base[:maxBaseLen]
	}
	if len(ext) > maxExtLen {
		ext = ext[:maxExtLen]
	}
	if base == "" {
		base = "file_" + shortID()
	}
	if ext == "" {
		return base
	}
	return base + "." + ext
}

// WithSuffix inserts a short random suffix before the extension: a.txt -> a_1a2b3c4d.txt
func WithSuffix(name string) string {
	ext := filepath.Ext(name)
	base := strings.TrimSuffix(name, ext)
	return base + "_" + shortID() + ext
}

func shortID() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
}
