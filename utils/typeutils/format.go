package typeutils

import (
	"fmt"
	"math"
	"strconv"

	"github.com/goccy/go-json"
)

// FormatValue renders a cursor or identifier value for use in a URL path or
// query parameter. Integral floats print without an exponent since
// json-decoded ids land as float64.
func FormatValue(value any) string {
	switch v := value.(type) {
	case float64:
		if v == math.Trunc(v) && math.Abs(v) < math.MaxInt64 {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	case json.Number:
		return v.String()
	default:
		return fmt.Sprint(value)
	}
}
