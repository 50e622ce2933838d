package person

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	maxSlugBaseLength = 32
	slugSuffixLength  = 6
	fallbackSlugBase  = "person"
)

// Slugify turns a display name into a lower-case ASCII slug base.
// Accents are folded ("Zoë" -> "zoe"); anything else non-alphanumeric becomes a single '-'.
func Slugify(name string) string {
	folded, _, err := transform.String(transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), name)
	if err != nil {
		folded = name
	}

	var builder strings.Builder
	builder.Grow(len(folded))
	dash := false
	for _, r := range strings.ToLower(folded) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			builder.WriteRune(r)
			dash = false
			continue
		}
		if !dash && builder.Len() > 0 {
			builder.WriteByte('-')
			dash = true
		}
	}

	slug := strings.Trim(builder.String(), "-")
	if len(slug) > maxSlugBaseLength {
		slug = strings.TrimRight(slug[:maxSlugBaseLength], "-")
	}
	if slug == "" {
		return fallbackSlugBase
	}
	return slug
}

func newSlug(name string) (string, error) {
	suffix, err := randomSuffix(slugSuffixLength)
	if err != nil {
		return "", err
	}
	return Slugify(name) + "-" + suffix, nil
}

func randomSuffix(length int) (string, error) {
	const alphabet = "abcdefghijkmnpqrstuvwxyz23456789"
	max := big.NewInt(int64(len(alphabet)))

	var builder strings.Builder
	builder.Grow(length)

	for i := 0; i < length; i++ {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", err
		}
		builder.WriteByte(alphabet[n.Int64()])
	}

	return builder.String(), nil
}
