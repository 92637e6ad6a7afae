package logger

import (
	"fmt"
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Field records a document field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Value records a checked value under the key "value".
func Value(v string) slog.Attr {
	return slog.String("value", v)
}

// NumberFormat records a number format under the key "format".
// If f is nil, it returns an empty Attr.
func NumberFormat(f fmt.Stringer) slog.Attr {
	if f == nil {
		return slog.Attr{}
	}
	return slog.String("format", f.String())
}

// Valid records a classification result under the key "valid".
func Valid(ok bool) slog.Attr {
	return slog.Bool("valid", ok)
}
