package resttr

import (
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/containerd/errdefs"
	"github.com/google/uuid"
)

const (
	HeaderOpcRequestID     = "opc-request-id"
	HeaderOpcRetryToken    = "opc-retry-token"
	HeaderOpcWorkRequestID = "opc-work-request-id"
	HeaderOpcNextPage      = "opc-next-page"
	HeaderIfMatch          = "if-match"
	HeaderETag             = "etag"
)

func MissingParam(name string) error {
	return fmt.Errorf("%w: missing the required parameter '%s'", errdefs.ErrInvalidArgument, name)
}

func RequireParam(name, value string) error {
	if strings.TrimSpace(value) == "" {
		return MissingParam(name)
	}
	return nil
}

// RequireBody rejects a nil details pointer.
func RequireBody[T any](name string, body *T) error {
	if body == nil {
		return MissingParam(name)
	}
	return nil
}

// ValidateEnum accepts an empty value; optional enums are simply not sent.
func ValidateEnum(name, value string, allowed ...string) error {
	if value == "" || slices.Contains(allowed, value) {
		return nil
	}
	return fmt.Errorf("%w: invalid value for '%s', must be one of %s",
		errdefs.ErrInvalidArgument, name, strings.Join(allowed, ", "))
}

// AddQuery adds an optional query parameter, skipping zero values.
func AddQuery(query url.Values, name string, value any) {
	switch v := value.(type) {
	case string:
		if v != "" {
			query.Add(name, v)
		}
	case int:
		if v != 0 {
			query.Add(name, strconv.Itoa(v))
		}
	case *bool:
		if v != nil {
			query.Add(name, strconv.FormatBool(*v))
		}
	case bool:
		if v {
			query.Add(name, "true")
		}
	case []string:
		for _, item := range v {
			query.Add(name, item)
		}
	case time.Time:
		if !v.IsZero() {
			query.Add(name, v.UTC().Format(time.RFC3339Nano))
		}
	default:
		if value != nil {
			query.Add(name, fmt.Sprint(value))
		}
	}
}

func SetHeader(header http.Header, name, value string) {
	if value != "" {
		header.Set(name, value)
	}
}

// RetryToken returns token or a fresh one so retried POSTs stay idempotent.
func RetryToken(token string) string {
	if token != "" {
		return token
	}
	return uuid.NewString()
}

func expandPath(path string, params map[string]string) (string, error) {
	var b strings.Builder
	for {
		start := strings.IndexByte(path, '{')
		if start < 0 {
			b.WriteString(path)
			return b.String(), nil
		}
		end := strings.IndexByte(path[start:], '}')
		if end < 0 {
			return "", fmt.Errorf("%w: unterminated path parameter in %q", errdefs.ErrInvalidArgument, path)
		}
		end += start

		name := path[start+1 : end]
		value, ok := params[name]
		if !ok || value == "" {
			return "", fmt.Errorf("%w: missing the required parameter '%s'", errdefs.ErrInvalidArgument, name)
		}

		b.WriteString(path[:start])
		b.WriteString(url.PathEscape(value))
		path = path[end+1:]
	}
}
