package core

import (
	"reflect"
	"regexp"
	"strings"

	en_locale "github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

var (
	// Validate is the shared validator instance. Input DTOs validate
	// themselves against it.
	Validate   *validator.Validate
	Translator ut.Translator

	// custom validation tags & texts
	componentTag   = "component"
	componentText  = "only lowercase alphanumeric characters and underscores are allowed"
	componentRegex = regexp.MustCompile(`^[a-z0-9_]+$`)

	requiredTag  = "required"
	requiredText = "this field is required"
)

func init() {
	en := en_locale.New()
	uni := ut.New(en, en)
	Translator, _ = uni.GetTranslator("en")
	Validate = validator.New()
	InitValidators(Validate, Translator)
}

// TranslateError converts a validator error into a ValidationError carrying
// translated per-field messages. Any other error passes through unchanged.
func TranslateError(err error) error {
	if err == nil {
		return nil
	}
	vErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	flds := make([]FieldError, 0, len(vErrs))
	for _, vErr := range vErrs {
		flds = append(flds, FieldError{Field: vErr.Field(), Error: vErr.Translate(Translator)})
	}
	return NewValidationError(err, flds...)
}

// InitValidators instantiates the validator for use.
func InitValidators(validate *validator.Validate, translator ut.Translator) {
	_ = en_translations.RegisterDefaultTranslations(validate, translator)

	// Use JSON tag names for errors instead of Go struct names.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// register custom validators
	_ = validate.RegisterValidation(componentTag, componentValidation)
	RegisterCustomTranslation(validate, translator, componentTag, componentText)

	RegisterCustomTranslation(validate, translator, requiredTag, requiredText, true)
}

// RegisterCustomTranslation registers a custom translation for the specified validation tag.
func RegisterCustomTranslation(validate *validator.Validate, translator ut.Translator, tag, text string, override ...bool) {
	var ovrd bool
	if len(override) > 0 {
		ovrd = override[0]
	}
	_ = validate.RegisterTranslation(
		tag, translator,
		func(t ut.Translator) error { return t.Add(tag, text, ovrd) },
		func(t ut.Translator, fe validator.FieldError) string {
			s, _ := t.T(tag, fe.Field())
			return s
		},
	)
}

// Custom Global Validators

// componentValidation only allows lowercase alphanumeric characters and
// underscores; grading components double as column-ish identifiers and stay
// normalized.
func componentValidation(fl validator.FieldLevel) bool {
	return componentRegex.MatchString(fl.Field().String())
}
