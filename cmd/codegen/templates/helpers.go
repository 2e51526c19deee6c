package templates

import (
	"strconv"
	"strings"
)

// numbered expands a prefix into "prefix0, prefix1, ..." for n entries,
// the shape Go wants for type parameter and argument lists.
func numbered(prefix string, n int) string {
	parts := make([]string, n)
	for i := range parts {
		parts[i] = prefix + strconv.Itoa(i)
	}
	return strings.Join(parts, ", ")
}
