// Package validation checks entities before they are written and reports
// failures as dotted field paths with one human readable message each.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"quote_desk/internal/domain/entities"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single failing rule. Path is the sequence of JSON keys from
// the root of the validated value, slice indexes included. Each Go field is
// named by its json tag rather than its Go name, so Service.BasePrice shows
// up as "base_price" and the second line's quantity of a quote as
// ["services", "1", "quantity"]. Fields tagged json:"-" are skipped.
type FieldError struct {
	Path    []string
	Message string
}

// Key joins the path with dots ("services.0.quantity").
func (e FieldError) Key() string {
	return strings.Join(e.Path, ".")
}

// Errors is returned by every validator when at least one rule fails.
type Errors []FieldError

func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, fe := range e {
		parts = append(parts, fe.Key()+": "+fe.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func Category(c entities.Category) error {
	return check(c)
}

func Customer(c entities.Customer) error {
	return check(c)
}

func Service(s entities.Service) error {
	return check(s)
}

func ServiceSheet(s entities.ServiceSheet) error {
	var extra Errors
	if s.IsDefault && s.CustomerID != nil {
		extra = append(extra, FieldError{Path: []string{"customer_id"}, Message: "the default sheet cannot belong to a customer"})
	}
	return check(s, extra...)
}

func Quote(q entities.Quote) error {
	return check(q)
}

func Settlement(s entities.Settlement) error {
	return check(s)
}

// check runs the struct rules and appends extra predicate failures. Anything
// the validator reports that is not a list of field failures is returned
// untouched.
func check(v any, extra ...FieldError) error {
	err := validate.Struct(v)
	if err == nil {
		if len(extra) == 0 {
			return nil
		}
		return Errors(extra)
	}

	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}

	out := make(Errors, 0, len(ves)+len(extra))
	for _, fe := range ves {
		out = append(out, FieldError{Path: splitNamespace(fe.Namespace()), Message: message(fe)})
	}
	return append(out, extra...)
}

// splitNamespace turns "Quote.services[0].quantity" into
// ["services", "0", "quantity"].
func splitNamespace(ns string) []string {
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		ns = ns[i+1:]
	}
	var path []string
	for _, seg := range strings.Split(ns, ".") {
		for {
			open := strings.IndexByte(seg, '[')
			if open < 0 {
				break
			}
			end := strings.IndexByte(seg, ']')
			if end < open {
				break
			}
			if open > 0 {
				path = append(path, seg[:open])
			}
			path = append(path, seg[open+1:end])
			seg = seg[end+1:]
		}
		if seg != "" {
			path = append(path, seg)
		}
	}
	return path
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return "invalid email"
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be greater than or equal to %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s is too long (max %s)", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, strings.ReplaceAll(fe.Param(), " ", ", "))
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
