package entity

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// BuildReceiptJSONSchema returns a JSON-Schema (draft 2020-12 subset) as a
// generic map describing the serialized Receipt. Callers validate their
// marshaled output against it before handing records downstream.
func BuildReceiptJSONSchema() map[string]any {
	moneyItem := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":  map[string]any{"type": "string", "minLength": 1},
			"price": decimalProp(),
		},
		"required": []string{"name", "price"},
	}
	itemProp := map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties": map[string]any{
			"name":      map[string]any{"type": "string", "minLength": 1},
			"price":     decimalProp(),
			"modifiers": map[string]any{"type": "array", "items": moneyItem},
		},
		"required": []string{"name", "price"},
	}

	props := map[string]any{
		"amount":                     decimalProp(),
		"subtotal":                   decimalProp(),
		"tax":                        decimalProp(),
		"tip":                        decimalProp(),
		"total":                      decimalProp(),
		"date":                       map[string]any{"type": "string", "pattern": `^\d{4}-\d{2}-\d{2}$`},
		"time":                       map[string]any{"type": "string", "pattern": `^\d{1,2}:\d{2} (AM|PM)$`},
		"restaurant_name":            map[string]any{"type": "string", "minLength": 1},
		"restaurant_location_number": map[string]any{"type": "string"},
		"restaurant_address":         map[string]any{"type": "string"},
		"restaurant_phone":           map[string]any{"type": "string"},
		"restaurant_website":         map[string]any{"type": "string"},
		"server_name":                map[string]any{"type": "string"},
		"customer_name":              map[string]any{"type": "string"},
		"check_number":               map[string]any{"type": "string"},
		"table_number":               map[string]any{"type": "string"},
		"items":                      map[string]any{"type": "array", "maxItems": 10, "items": itemProp},
		"confidence_scores": map[string]any{
			"type": "object",
			"additionalProperties": map[string]any{
				"type": "number", "minimum": 0.0, "maximum": 1.0,
			},
		},
	}

	return map[string]any{
		"type":                 "object",
		"additionalProperties": false,
		"properties":           props,
	}
}

func decimalProp() map[string]any {
	// money is non-negative with exactly two decimals at the boundary
	return map[string]any{"type": "string", "pattern": `^\d+\.\d{2}$`}
}

// ValidateJSONAgainstSchema validates "data" against "schemaMap".
func ValidateJSONAgainstSchema(schemaMap map[string]any, data []byte) error {
	b, err := json.Marshal(schemaMap)
	if err != nil {
		return fmt.Errorf("marshal schema: %w", err)
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(b)); err != nil {
		return fmt.Errorf("add schema: %w", err)
	}
	schema, err := compiler.Compile("schema.json")
	if err != nil {
		return fmt.Errorf("compile schema: %w", err)
	}
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshal data: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("json does not match schema: %w", err)
	}
	return nil
}
