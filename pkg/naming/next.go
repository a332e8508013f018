package naming

import (
	"strconv"

	"github.com/arthur-debert/actionkit/pkg/errors"
	mapset "github.com/deckarep/golang-set/v2"
)

// NextEntityName returns base followed by the smallest positive integer
// that makes it absent from existing. A positive limit caps the suffix.
func NextEntityName(base string, existing mapset.Set[string], limit int) (string, error) {
	for i := 1; limit <= 0 || i <= limit; i++ {
		candidate := base + strconv.Itoa(i)
		if existing == nil || !existing.Contains(candidate) {
			return candidate, nil
		}
	}
	return "", errors.Newf(errors.ErrNameExhausted, "no free name for %q with a suffix up to %d", base, limit).
		WithDetails(map[string]interface{}{"base": base, "limit": limit})
}
