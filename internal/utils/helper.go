package utils

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	nonAlnumRegex  = regexp.MustCompile(`[^a-z0-9]+`)
	multiDashRegex = regexp.MustCompile(`-+`)

	// Decompose, strip the combining marks, recompose: "ế" -> "e".
	diacriticFolder = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
)

// Slugify turns a product name into a URL-safe slug, folding Vietnamese
// diacritics so "Nón Lá Huế" becomes "non-la-hue".
func Slugify(input string) string {
	folded, _, err := transform.String(diacriticFolder, input)
	if err != nil {
		folded = input
	}
	// đ/Đ carry no combining mark and survive NFD untouched.
	folded = strings.NewReplacer("đ", "d", "Đ", "D").Replace(folded)

	slug := strings.ToLower(strings.TrimSpace(folded))
	slug = nonAlnumRegex.ReplaceAllString(slug, "-")
	slug = multiDashRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}

func StrPtr(s string) *string {
	return &s
}

func ToUint(id string) (uint, error) {
	n, err := strconv.ParseUint(id, 10, 64)
	return uint(n), err
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func PtrInt(i *int) int {
	if i == nil {
		return 0
	}
	return *i
}

// FormatVND renders an integer đồng amount with thousand separators,
// e.g. 850000 -> "850.000₫".
func FormatVND(amount int) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}

	s := strconv.Itoa(amount)
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(s[i : i+3])
	}

	out := b.String() + "₫"
	if neg {
		out = "-" + out
	}
	return out
}

// VariantLabel joins the chosen color/size into a short display label,
// e.g. "Đỏ / M". Empty when neither is chosen.
func VariantLabel(color, size *string) string {
	switch {
	case color != nil && size != nil:
		return fmt.Sprintf("%s / %s", *color, *size)
	case color != nil:
		return *color
	case size != nil:
		return *size
	default:
		return ""
	}
}
