package surface

import "strconv"

// parseHexColor converts "#rrggbb" to RGB components. Anything that
// doesn't parse falls back to black rather than failing a render over a
// bad accent value.
func parseHexColor(s string) (r, g, b uint8) {
	if len(s) != 7 || s[0] != '#' {
		return 0, 0, 0
	}

	rv, err1 := strconv.ParseUint(s[1:3], 16, 8)
	gv, err2 := strconv.ParseUint(s[3:5], 16, 8)
	bv, err3 := strconv.ParseUint(s[5:7], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}

	return uint8(rv), uint8(gv), uint8(bv)
}
