package composite

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/samber/lo"
)

// Operator selects how a top pixel is combined with the bottom pixel under it.
type Operator uint8

const (
	// Blend uses the pixel type's own blend, a straight alpha source-over.
	Blend Operator = iota

	// Porter-Duff operators
	Clear
	Copy
	Dest
	SrcOver
	DestOver
	SrcIn
	DestIn
	SrcOut
	DestOut
	SrcAtop
	DestAtop
	Xor
)

var operatorNames = [...]string{
	Blend:    "blend",
	Clear:    "clear",
	Copy:     "copy",
	Dest:     "dest",
	SrcOver:  "src-over",
	DestOver: "dest-over",
	SrcIn:    "src-in",
	DestIn:   "dest-in",
	SrcOut:   "src-out",
	DestOut:  "dest-out",
	SrcAtop:  "src-atop",
	DestAtop: "dest-atop",
	Xor:      "xor",
}

var nameFolder = strings.NewReplacer("-", "", "_", "", " ", "")

// Operators lists every operator in declaration order.
func Operators() []Operator {
	return lo.Map(operatorNames[:], func(_ string, i int) Operator {
		return Operator(i)
	})
}

// ParseOperator looks an operator up by name, ignoring case, dashes and
// underscores: "src-over", "SrcOver" and "src_over" are all SrcOver.
func ParseOperator(name string) (Operator, error) {
	key := foldName(name)
	for i, n := range operatorNames {
		if foldName(n) == key {
			return Operator(i), nil
		}
	}
	return 0, errors.Errorf("unknown composite operator %q", name)
}

func foldName(s string) string {
	return nameFolder.Replace(strings.ToLower(s))
}

func (o Operator) String() string {
	if o.valid() {
		return operatorNames[o]
	}
	return fmt.Sprintf("Operator(%d)", uint8(o))
}

func (o Operator) valid() bool {
	return int(o) < len(operatorNames)
}

// factors returns the fractions of source and destination kept by a
// Porter-Duff operator, given both alphas normalized to [0, 1].
func (o Operator) factors(as, ad float64) (fs, fd float64) {
	switch o {
	case Clear:
		return 0, 0
	case Copy:
		return 1, 0
	case Dest:
		return 0, 1
	case SrcOver:
		return 1, 1 - as
	case DestOver:
		return 1 - ad, 1
	case SrcIn:
		return ad, 0
	case DestIn:
		return 0, as
	case SrcOut:
		return 1 - ad, 0
	case DestOut:
		return 0, 1 - as
	case SrcAtop:
		return ad, 1 - as
	case DestAtop:
		return 1 - ad, as
	case Xor:
		return 1 - ad, 1 - as
	}
	panic(fmt.Sprintf("composite: %s is not a Porter-Duff operator", o))
}
