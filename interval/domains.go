package interval

import (
	"math"

	"github.com/galactic-lattice/galactic/errors"
	"github.com/galactic-lattice/galactic/internal/coerce"
)

// Float is the imprecise number type over the real line. Its unbounded
// interval is [-inf:inf].
var Float = New(Domain[float64]{
	Name:    "ImpreciseFloat",
	Convert: toFloat,
	Lower:   math.Inf(-1),
	Upper:   math.Inf(1),
})

// Integer is the imprecise number type over int. Its unbounded interval is
// [-math.MaxInt:math.MaxInt].
var Integer = New(Domain[int]{
	Name:    "ImpreciseInteger",
	Convert: toInt,
	Lower:   -math.MaxInt,
	Upper:   math.MaxInt,
})

func toFloat(v any) (float64, error) {
	f, err := coerce.Float(v)
	if err != nil {
		return 0, errors.Wrap(err, "float bound")
	}
	return f, nil
}

func toInt(v any) (int, error) {
	i, err := coerce.Int(v)
	if err != nil {
		return 0, errors.Wrap(err, "int bound")
	}
	return i, nil
}
