package validators

import (
	"fmt"
	"net/url"
	"time"

	pkgerrors "github.com/aisolutions-bi/dashboard-backend/pkg/errors"
)

const dateLayout = "2006-01-02"

// DateParam parses an optional YYYY-MM-DD query parameter. A missing or
// empty parameter yields the zero time.
func DateParam(values url.Values, name string) (time.Time, error) {
	raw := values.Get(name)
	if raw == "" {
		return time.Time{}, nil
	}
	parsed, err := time.Parse(dateLayout, raw)
	if err != nil {
		return time.Time{}, pkgerrors.New(
			pkgerrors.CodeValidation,
			fmt.Sprintf("invalid %q date, expected YYYY-MM-DD", name),
		).WithDetails(map[string]string{name: raw})
	}
	return parsed, nil
}

// DateRangeParams parses the optional from/to window of a panel request.
func DateRangeParams(values url.Values) (from, to time.Time, err error) {
	if from, err = DateParam(values, "from"); err != nil {
		return
	}
	to, err = DateParam(values, "to")
	return
}
