package serverutils

import (
	"errors"
	"fmt"
	"strings"

	"course-portal-be/internal/pkg/apperr"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks the request DTO against its validate tags and folds
// failures into one Validation error naming the offending fields.
func ValidateStruct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return apperr.Validation("invalid request payload")
	}

	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, strings.ToLower(fe.Field()))
	}
	return apperr.Validation(fmt.Sprintf("invalid or missing fields: %s", strings.Join(fields, ", ")))
}
