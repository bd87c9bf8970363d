package menu

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"strings"
	"unicode"
)

const (
	slugSuffixMax   = 1000
	slugAttempts    = 10
	slugSeparator   = '-'
	slugSuffixWidth = 3
)

// Slugify lower-cases value and collapses every run of non-alphanumeric
// characters into a single hyphen.
func Slugify(value string) string {
	var builder strings.Builder
	builder.Grow(len(value))

	pendingSeparator := false
	for _, r := range strings.ToLower(value) {
		if r < unicode.MaxASCII && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			if pendingSeparator && builder.Len() > 0 {
				builder.WriteRune(slugSeparator)
			}
			pendingSeparator = false
			builder.WriteRune(r)
			continue
		}
		pendingSeparator = true
	}

	return builder.String()
}

func newMenuSlug(name, city string) (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(slugSuffixMax))
	if err != nil {
		return "", err
	}
	suffix := fmt.Sprintf("%0*d", slugSuffixWidth, n.Int64())
	return Slugify(name + " " + city + " " + suffix), nil
}

func generateUniqueSlug(ctx context.Context, repo Repository, name, city, previous string) (string, error) {
	for i := 0; i < slugAttempts; i++ {
		slug, err := newMenuSlug(name, city)
		if err != nil {
			return "", err
		}
		if slug == previous {
			continue
		}
		taken, err := repo.IsSlugTaken(ctx, slug)
		if err != nil {
			return "", err
		}
		if !taken {
			return slug, nil
		}
	}
	return "", ErrSlugGenerationFailed
}
