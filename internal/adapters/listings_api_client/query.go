package listings_api_client

import (
	"admin-console/internal/core/domain"
	"fmt"
	"net/url"
	"reflect"
	"strconv"
	"strings"
)

// EncodeQuery строит строку запроса из параметров в порядке их добавления.
// Параметры со значением nil или пустой строкой (после приведения и обрезки пробелов) пропускаются.
func EncodeQuery(params domain.Params) string {
	var b strings.Builder
	for _, p := range params {
		value, ok := stringifyParam(p.Value)
		if !ok {
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}
	return b.String()
}

func withQuery(path string, params domain.Params) string {
	qs := EncodeQuery(params)
	if qs == "" {
		return path
	}
	return path + "?" + qs
}

func stringifyParam(v any) (string, bool) {
	var s string
	switch val := v.(type) {
	case nil:
		return "", false
	case string:
		s = val
	case *string:
		if val == nil {
			return "", false
		}
		s = *val
	case bool:
		s = strconv.FormatBool(val)
	case *bool:
		if val == nil {
			return "", false
		}
		s = strconv.FormatBool(*val)
	case int:
		s = strconv.Itoa(val)
	case *int:
		if val == nil {
			return "", false
		}
		s = strconv.Itoa(*val)
	case int64:
		s = strconv.FormatInt(val, 10)
	case float64:
		s = strconv.FormatFloat(val, 'f', -1, 64)
	default:
		rv := reflect.ValueOf(v)
		if rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return "", false
			}
			rv = rv.Elem()
		}
		s = fmt.Sprint(rv.Interface())
	}
	if strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
