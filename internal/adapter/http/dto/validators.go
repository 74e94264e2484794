package dto

import (
	"html"
	"reflect"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// maxPixKeyLen fits the longest key kind in use: a 77-char email.
const maxPixKeyLen = 77

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("pix_key", validatePixKey)
	}
}

// validatePixKey accepts any non-blank key without whitespace or control
// characters. Key kinds (email, phone, CPF, random) are not distinguished.
func validatePixKey(fl validator.FieldLevel) bool {
	return IsValidPixKey(fl.Field().String())
}

// IsValidPixKey reports whether s can be used as a PIX key.
func IsValidPixKey(s string) bool {
	if s == "" || utf8.RuneCountInString(s) > maxPixKeyLen {
		return false
	}
	for _, r := range s {
		if unicode.IsSpace(r) || unicode.IsControl(r) {
			return false
		}
	}
	return true
}

// SanitizeStruct trims whitespace and HTML-escapes every exported string
// field (including *string and []string) of a struct pointer. Fields tagged
// `sanitize:"-"` are left exactly as received.
func SanitizeStruct(v interface{}) {
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return
	}
	sanitizeFields(rv.Elem())
}

func sanitizeFields(rv reflect.Value) {
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if !f.CanSet() || rv.Type().Field(i).Tag.Get("sanitize") == "-" {
			continue
		}
		switch f.Kind() {
		case reflect.String:
			f.SetString(sanitize(f.String()))
		case reflect.Ptr:
			if f.IsNil() {
				continue
			}
			elem := f.Elem()
			if elem.Kind() == reflect.String {
				elem.SetString(sanitize(elem.String()))
			}
		case reflect.Slice:
			if f.Type().Elem().Kind() != reflect.String {
				continue
			}
			for j := 0; j < f.Len(); j++ {
				f.Index(j).SetString(sanitize(f.Index(j).String()))
			}
		}
	}
}

func sanitize(s string) string {
	return html.EscapeString(strings.TrimSpace(s))
}
