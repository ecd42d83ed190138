package league

import (
	"fmt"
	"strconv"
	"strings"
)

// BallsPerOver is the number of legal deliveries in one over.
const BallsPerOver = 6

// Overs is a quantity in cricket notation: complete overs plus balls of the
// over in progress. "133.1" is 133 overs and one ball.
type Overs struct {
	Complete int
	Balls    int
}

// ParseOvers reads "O.B" notation. A missing ".B" means zero balls.
func ParseOvers(s string) (Overs, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Overs{}, fmt.Errorf("%w: empty", ErrBadOvers)
	}
	whole, part, hasBalls := strings.Cut(s, ".")
	o, err := strconv.Atoi(whole)
	if err != nil || o < 0 {
		return Overs{}, fmt.Errorf("%w: %q", ErrBadOvers, s)
	}
	b := 0
	if hasBalls {
		b, err = strconv.Atoi(part)
		if err != nil || len(part) != 1 || b < 0 || b >= BallsPerOver {
			return Overs{}, fmt.Errorf("%w: %q has balls outside 0-5", ErrBadOvers, s)
		}
	}
	return Overs{Complete: o, Balls: b}, nil
}

// MustParseOvers is ParseOvers for literals known to be valid.
func MustParseOvers(s string) Overs {
	o, err := ParseOvers(s)
	if err != nil {
		panic(err)
	}
	return o
}

// OversToFloat converts notation straight to fractional overs.
func OversToFloat(s string) (float64, error) {
	o, err := ParseOvers(s)
	if err != nil {
		return 0, err
	}
	return o.Float(), nil
}

// OversFromBalls builds notation from a ball count.
func OversFromBalls(balls int) Overs {
	return Overs{Complete: balls / BallsPerOver, Balls: balls % BallsPerOver}
}

// Float returns fractional overs, O + B/6.
func (o Overs) Float() float64 {
	return float64(o.Complete) + float64(o.Balls)/BallsPerOver
}

// TotalBalls returns the quantity in deliveries.
func (o Overs) TotalBalls() int {
	return o.Complete*BallsPerOver + o.Balls
}

func (o Overs) IsZero() bool {
	return o.Complete == 0 && o.Balls == 0
}

func (o Overs) String() string {
	if o.Balls == 0 {
		return strconv.Itoa(o.Complete)
	}
	return fmt.Sprintf("%d.%d", o.Complete, o.Balls)
}

func (o Overs) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

func (o *Overs) UnmarshalText(text []byte) error {
	parsed, err := ParseOvers(string(text))
	if err != nil {
		return err
	}
	*o = parsed
	return nil
}
