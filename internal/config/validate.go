package config

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/Kaucasus/coeconverter/internal/coe"
	"github.com/Kaucasus/coeconverter/internal/color"
	"github.com/Kaucasus/coeconverter/internal/decode"
)

// validate is shared by every Config. Name validators defer to the same
// parsers Options uses, so both accept exactly the same spellings.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())

	// report yaml keys instead of Go field names
	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("yaml"), ",")
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})

	_ = validate.RegisterValidation("colormode", parsedBy(color.ParseMode))
	_ = validate.RegisterValidation("alphapolicy", parsedBy(color.ParseAlpha))
	_ = validate.RegisterValidation("representation", parsedBy(coe.ParseRepresentation))
	_ = validate.RegisterValidation("style", parsedBy(coe.ParseStyle))
	_ = validate.RegisterValidation("addresspolicy", parsedBy(coe.ParseAddressPolicy))
	_ = validate.RegisterValidation("interpolation", parsedBy(decode.ParseInterpolation))
}

// parsedBy adapts a name parser into a field validator.
func parsedBy[T any](parse func(string) (T, error)) validator.Func {
	return func(fl validator.FieldLevel) bool {
		_, err := parse(fl.Field().String())
		return err == nil
	}
}
