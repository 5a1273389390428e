package display

import (
	"math"
	"strconv"
	"strings"
)

// exact enough to tell a true midpoint from its float64 neighbours
const extraDigits = 30

// ToFixed formats v with the given number of decimals, rounding half away from
// zero on the exact binary value (0.25 -> "0.3", 62.5 -> "63").
func ToFixed(v float64, digits int) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}

	neg := v < 0
	if neg {
		v = -v
	}

	exact := strconv.FormatFloat(v, 'f', digits+extraDigits, 64)
	dot := strings.IndexByte(exact, '.')
	kept := exact[:dot] + exact[dot+1:dot+1+digits]
	roundUp := exact[dot+1+digits] >= '5'

	num := []byte(kept)
	if roundUp {
		i := len(num) - 1
		for ; i >= 0; i-- {
			if num[i] == '9' {
				num[i] = '0'
				continue
			}
			num[i]++
			break
		}
		if i < 0 {
			num = append([]byte{'1'}, num...)
		}
	}

	s := string(num)
	if digits > 0 {
		s = s[:len(s)-digits] + "." + s[len(s)-digits:]
	}
	if neg {
		s = "-" + s
	}
	return s
}
