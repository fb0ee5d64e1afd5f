package generator

import (
	"math/big"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/codeminter/codeminter/internal/randchars"
)

// Spec describes one generation request. Prefix and suffix are applied
// outside the randomized core and take no part in the capacity calculation,
// but uniqueness is checked on the full wrapped code.
type Spec struct {
	Count  int `validate:"required,min=1"`
	Length int `validate:"required,min=1"`
	Prefix string
	Suffix string
}

// Observer is called after every successful insertion into the code set.
// elapsed is the wall-clock time since sampling began.
type Observer func(current, total int, elapsed time.Duration)

var validate = validator.New()

// Generate returns exactly spec.Count unique codes drawn from alphabet.
// The returned order is the set's iteration order, not generation order.
func Generate(alphabet []byte, spec Spec, obs Observer) ([]string, error) {
	if err := validate.Struct(spec); err != nil {
		return nil, errors.Wrap(err, "invalid code specification")
	}

	if len(alphabet) == 0 {
		return nil, ErrEmptyAlphabet
	}

	if err := checkCapacity(alphabet, spec); err != nil {
		return nil, err
	}

	set := make(map[string]struct{}, spec.Count)
	start := time.Now()

	for len(set) < spec.Count {
		code := spec.Prefix + randchars.Draw(spec.Length, alphabet) + spec.Suffix

		if _, ok := set[code]; ok {
			continue
		}

		set[code] = struct{}{}

		if obs != nil {
			obs(len(set), spec.Count, time.Since(start))
		}
	}

	codes := make([]string, 0, spec.Count)
	for code := range set {
		codes = append(codes, code)
	}

	return codes, nil
}

// checkCapacity fails when count > len(alphabet)^length. This is a hard
// combinatorial bound, not a birthday-collision estimate: a passing request
// whose count is close to the bound can still take a long time to sample.
// The alphabet length counts duplicates, mirroring how the set was built.
func checkCapacity(alphabet []byte, spec Spec) error {
	combinations := new(big.Int).Exp(
		big.NewInt(int64(len(alphabet))),
		big.NewInt(int64(spec.Length)),
		nil,
	)

	if big.NewInt(int64(spec.Count)).Cmp(combinations) > 0 {
		return errors.Wrapf(ErrCapacityExceeded,
			"cannot generate %d codes of length %d from a character set of %d characters",
			spec.Count, spec.Length, len(alphabet))
	}

	return nil
}
