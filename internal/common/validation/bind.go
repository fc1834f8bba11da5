package validation

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"game-admin/internal/common/errors"
	"game-admin/internal/signature"
)

// Bind copies request parameters into the fields of dst tagged `param:"name"`
// and validates the result. Supported field kinds are string, *string, int,
// int64, *int64, bool and []string (comma separated). Absent, null and
// empty string parameters leave the field untouched, so optional pointer
// fields stay nil.
func Bind(req signature.Request, dst interface{}) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("bind target must be a pointer to a struct, got %T", dst)
	}
	rv = rv.Elem()
	rt := rv.Type()

	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		name := strings.SplitN(field.Tag.Get("param"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}

		raw := req[name]
		if raw == nil || raw == "" {
			continue
		}
		if err := assign(rv.Field(i), raw); err != nil {
			return errors.ValidationError(fmt.Sprintf("field '%s' %s", name, err.Error())).
				WithReason(ReasonInvalidParam).
				WithContext("field", name)
		}
	}

	return Struct(dst)
}

func assign(fv reflect.Value, raw interface{}) error {
	switch fv.Kind() {
	case reflect.String:
		s, _ := signature.FormatValue(raw)
		fv.SetString(s)

	case reflect.Int, reflect.Int64:
		n, err := toInt64(raw)
		if err != nil {
			return err
		}
		fv.SetInt(n)

	case reflect.Bool:
		b, err := toBool(raw)
		if err != nil {
			return err
		}
		fv.SetBool(b)

	case reflect.Slice:
		if fv.Type().Elem().Kind() != reflect.String {
			return fmt.Errorf("has an unsupported type")
		}
		s, _ := signature.FormatValue(raw)
		fv.Set(reflect.ValueOf(SplitList(s)))

	case reflect.Ptr:
		elem := reflect.New(fv.Type().Elem())
		if err := assign(elem.Elem(), raw); err != nil {
			return err
		}
		fv.Set(elem)

	default:
		return fmt.Errorf("has an unsupported type")
	}
	return nil
}

func toInt64(raw interface{}) (int64, error) {
	switch v := raw.(type) {
	case json.Number:
		if n, err := v.Int64(); err == nil {
			return n, nil
		}
		return 0, fmt.Errorf("must be an integer")
	case string:
		if v == "" {
			return 0, nil
		}
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 64)
		if err != nil {
			return 0, fmt.Errorf("must be an integer")
		}
		return n, nil
	case int:
		return int64(v), nil
	case int64:
		return v, nil
	case float64:
		if v != float64(int64(v)) {
			return 0, fmt.Errorf("must be an integer")
		}
		return int64(v), nil
	default:
		return 0, fmt.Errorf("must be an integer")
	}
}

func toBool(raw interface{}) (bool, error) {
	switch v := raw.(type) {
	case bool:
		return v, nil
	case string:
		if v == "" {
			return false, nil
		}
		return strconv.ParseBool(v)
	case json.Number:
		return v.String() != "0", nil
	default:
		return false, fmt.Errorf("must be a boolean")
	}
}

// SplitList splits a comma separated list, trimming blanks and dropping
// empty items. It never returns nil.
func SplitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
