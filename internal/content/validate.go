package content

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks a feed for strict mode. Every field must be populated, urls
// must parse, and each subject key needs a non-empty support entry.
//
// The renderer never calls Validate: a missing subject entry renders as an
// empty body unless a host opts into strict checking.
func Validate(feed Feed) error {
	var errs []error
	if err := validate.Struct(feed); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("validate content feed: %w", err)
		}
		for _, fieldErr := range fieldErrs {
			errs = append(errs, fmt.Errorf("%s: failed %q", fieldErr.Namespace(), fieldErr.Tag()))
		}
	}
	for _, key := range SubjectKeys() {
		if strings.TrimSpace(feed.Primary.SubjectSupport[key]) == "" {
			errs = append(errs, fmt.Errorf("Feed.Primary.SubjectSupport[%s]: missing entry", key))
		}
	}
	return errors.Join(errs...)
}
