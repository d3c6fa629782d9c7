package productform

import (
	"encoding/json"
	"io"
	"strconv"
	"strings"

	pkgerrors "github.com/angelmondragon/storefront/pkg/errors"
)

// Form is the schema-validated record produced by the product form. The
// categories, variants and sizes fields arrive as comma-separated text, the
// way the form collects them.
type Form struct {
	Name        string  `json:"name" validate:"required"`
	Price       float64 `json:"price" validate:"gte=0"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
	Categories  string  `json:"categories"`
	Variants    string  `json:"variants"`
	Sizes       string  `json:"sizes"`
	Stock       int     `json:"stock" validate:"gte=0"`
}

// Decode reads a strict JSON form payload and validates it. Failures come
// back as validation errors with per-field details.
func Decode(r io.Reader) (*Form, error) {
	var form Form
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&form); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid form payload").
			WithDetails(map[string]any{"error": err.Error()})
	}
	if err := validate.Struct(&form); err != nil {
		return nil, formatValidationErrors(err)
	}
	return &form, nil
}

// splitList turns comma-separated form text into trimmed entries, dropping
// empties.
func splitList(value string) []string {
	out := []string{}
	for _, part := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// splitIDList parses comma-separated category ids.
func splitIDList(value string) ([]int, error) {
	entries := splitList(value)
	out := make([]int, 0, len(entries))
	for _, entry := range entries {
		id, err := strconv.Atoi(entry)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "categories must be numeric ids").
				WithDetails(map[string]string{"categories": "contains " + strconv.Quote(entry)})
		}
		out = append(out, id)
	}
	return out, nil
}
