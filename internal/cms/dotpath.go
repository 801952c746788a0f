package cms

import (
	"strings"

	pkgerrors "github.com/J-deep17/New-Dipak-Steel-Furniture-sub000/pkg/errors"
)

// SetPath writes value into doc at the dot-separated path, creating
// intermediate objects as needed. Traversing through a non-object value is an
// error rather than a silent overwrite.
func SetPath(doc map[string]any, path string, value any) error {
	if doc == nil {
		return pkgerrors.New(pkgerrors.CodeInternal, "document is nil")
	}
	segments, err := splitPath(path)
	if err != nil {
		return err
	}

	current := doc
	for i, segment := range segments[:len(segments)-1] {
		next, exists := current[segment]
		if !exists {
			child := map[string]any{}
			current[segment] = child
			current = child
			continue
		}
		child, ok := next.(map[string]any)
		if !ok {
			return pkgerrors.New(pkgerrors.CodeValidation,
				"path segment "+strings.Join(segments[:i+1], ".")+" is not an object")
		}
		current = child
	}

	current[segments[len(segments)-1]] = value
	return nil
}

// GetPath reads the value at the dot-separated path. The second return is
// false when any segment is missing or a non-object intermediate is hit.
func GetPath(doc map[string]any, path string) (any, bool) {
	segments, err := splitPath(path)
	if err != nil {
		return nil, false
	}

	current := doc
	for _, segment := range segments[:len(segments)-1] {
		next, exists := current[segment]
		if !exists {
			return nil, false
		}
		child, ok := next.(map[string]any)
		if !ok {
			return nil, false
		}
		current = child
	}

	value, exists := current[segments[len(segments)-1]]
	return value, exists
}

func splitPath(path string) ([]string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "path is required")
	}
	segments := strings.Split(trimmed, ".")
	for _, segment := range segments {
		if segment == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "path contains an empty segment")
		}
	}
	return segments, nil
}
