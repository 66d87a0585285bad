package validator

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/locales/es"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	esTranslations "github.com/go-playground/validator/v10/translations/es"
)

var ErrInvalidDate = errors.New("invalid date")

// DateLayouts are the accepted appointment date formats
var DateLayouts = []string{time.RFC3339, "2006-01-02"}

// ParseISODate parses an RFC 3339 timestamp or a plain YYYY-MM-DD date
func ParseISODate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	for _, layout := range DateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, ErrInvalidDate
}

type CustomValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

// NewValidator builds a validator whose messages are in Spanish and whose
// field names are the JSON names clients send.
func NewValidator() *CustomValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	spanish := es.New()
	translator, _ := ut.New(spanish, spanish).GetTranslator("es")

	// Registration only fails on malformed built-in templates
	_ = esTranslations.RegisterDefaultTranslations(v, translator)

	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := ParseISODate(fl.Field().String())
		return err == nil
	})
	_ = v.RegisterTranslation("isodate", translator,
		func(trans ut.Translator) error {
			return trans.Add("isodate", "{0} debe ser una fecha válida (AAAA-MM-DD o RFC 3339)", true)
		},
		func(trans ut.Translator, fe validator.FieldError) string {
			msg, _ := trans.T("isodate", fe.Field())
			return msg
		},
	)

	return &CustomValidator{
		validator:  v,
		translator: translator,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	errors := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !asValidationErrors(err, &validationErrors) {
		return errors
	}

	for _, e := range validationErrors {
		field := e.Field()
		msg := e.Translate(cv.translator)
		if msg == "" || msg == e.Error() {
			msg = field + " no es válido"
		}
		errors[field] = msg
	}

	return errors
}

func asValidationErrors(err error, target *validator.ValidationErrors) bool {
	if err == nil {
		return false
	}
	return errors.As(err, target)
}
