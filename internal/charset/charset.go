package charset

import (
	"strings"

	"github.com/pkg/errors"
)

// Known base set names.
const (
	Recommended  = "recommended"
	Alphanumeric = "alphanumeric"
	Alpha        = "alpha"
	Numeric      = "numeric"
	Custom       = "custom"
)

// Letter case options for the alpha and alphanumeric base sets.
const (
	CaseLower = "lower"
	CaseUpper = "upper"
	CaseMixed = "mixed"
)

const (
	// recommendedChars is a curated set of 28 characters that avoids visually
	// confusable pairs such as 0/O, 1/I and 8/B.
	recommendedChars = "2345679ACDEFGHJKLMNPRSTUVXYZ"

	digits       = "0123456789"
	lowerLetters = "abcdefghijklmnopqrstuvwxyz"
	upperLetters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Build resolves the final alphabet. The base set is selected by name, every
// character listed in omit is then removed and every character listed in add
// is appended as-is. Added characters are not deduplicated against the base
// set, so a duplicated character ends up more likely to be drawn.
func Build(name, caseOption, omit, add, custom string) ([]byte, error) {
	var alphaSet string

	switch caseOption {
	case CaseLower:
		alphaSet = lowerLetters
	case CaseMixed:
		alphaSet = lowerLetters + upperLetters
	case CaseUpper:
		alphaSet = upperLetters
	default:
		return nil, errors.Wrapf(ErrInvalidCase, "%q", caseOption)
	}

	var set string

	switch name {
	case Recommended:
		set = recommendedChars
	case Numeric:
		set = digits
	case Alpha:
		set = alphaSet
	case Alphanumeric:
		set = digits + alphaSet
	case Custom:
		if custom == "" {
			return nil, ErrEmptyCustomSet
		}

		if err := checkPrintable(custom, "custom"); err != nil {
			return nil, err
		}

		if dup := firstDuplicate(custom); dup != 0 {
			return nil, errors.Wrapf(ErrDuplicateChars, "%q", string(dup))
		}

		set = custom
	default:
		return nil, errors.Wrapf(ErrInvalidCharset, "%q", name)
	}

	if omit != "" {
		if err := checkPrintable(omit, "omit"); err != nil {
			return nil, err
		}

		var b strings.Builder

		for i := 0; i < len(set); i++ {
			if !strings.Contains(omit, string(set[i])) {
				b.WriteByte(set[i])
			}
		}

		set = b.String()
	}

	if add != "" {
		if err := checkPrintable(add, "add"); err != nil {
			return nil, err
		}

		set += add
	}

	if set == "" {
		return nil, ErrEmptySet
	}

	return []byte(set), nil
}

// checkPrintable rejects any rune outside the printable ASCII class
// (graphic characters, space and the \t\n\v\f\r whitespace characters).
func checkPrintable(s, setName string) error {
	var invalid []string

	for _, r := range s {
		if !isPrintable(r) {
			invalid = append(invalid, string(r))
		}
	}

	if len(invalid) > 0 {
		return errors.Wrapf(ErrNonPrintableChars, "%s set: %s", setName, strings.Join(invalid, ", "))
	}

	return nil
}

func isPrintable(r rune) bool {
	if r >= 0x20 && r <= 0x7e {
		return true
	}

	switch r {
	case '\t', '\n', '\v', '\f', '\r':
		return true
	}

	return false
}

// firstDuplicate returns the first byte that occurs more than once in s,
// or 0 when all bytes are distinct.
func firstDuplicate(s string) byte {
	var seen [256]bool

	for i := 0; i < len(s); i++ {
		if seen[s[i]] {
			return s[i]
		}

		seen[s[i]] = true
	}

	return 0
}
