package orders

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Per-type order detail shapes. The orders table stores whichever one
// matches OrderType as its order_details JSON column; ParseDetails is the
// single place that decides whether a payload is acceptable.

type RegularDetails struct {
	Quantity int    `json:"quantity"`
	Note     string `json:"note,omitempty"`
}

type CustomDetails struct {
	Description  string `json:"description"`
	ReferenceURL string `json:"reference_url,omitempty"`
	Budget       string `json:"budget,omitempty"`
	Deadline     string `json:"deadline,omitempty"`
}

type BulkDetails struct {
	Organization    string `json:"organization"`
	Quantity        int    `json:"quantity"`
	ItemDescription string `json:"item_description,omitempty"`
	Deadline        string `json:"deadline,omitempty"`
}

var ErrUnknownType = errors.New("unknown order type")

// ParseDetails validates raw against the shape required by orderType and
// returns the canonical JSON to persist.
func ParseDetails(orderType string, raw json.RawMessage) (json.RawMessage, error) {
	if len(raw) == 0 {
		return nil, fmt.Errorf("order_details is required")
	}

	switch orderType {
	case TypeRegular:
		var d RegularDetails
		if err := decodeStrict(raw, &d); err != nil {
			return nil, err
		}
		if d.Quantity < 1 {
			return nil, fmt.Errorf("quantity must be at least 1")
		}
		return json.Marshal(d)

	case TypeCustom:
		var d CustomDetails
		if err := decodeStrict(raw, &d); err != nil {
			return nil, err
		}
		if strings.TrimSpace(d.Description) == "" {
			return nil, fmt.Errorf("description is required for custom orders")
		}
		return json.Marshal(d)

	case TypeBulk:
		var d BulkDetails
		if err := decodeStrict(raw, &d); err != nil {
			return nil, err
		}
		if strings.TrimSpace(d.Organization) == "" {
			return nil, fmt.Errorf("organization is required for bulk orders")
		}
		if d.Quantity < 1 {
			return nil, fmt.Errorf("quantity must be at least 1")
		}
		return json.Marshal(d)
	}

	return nil, ErrUnknownType
}

func decodeStrict(raw json.RawMessage, out any) error {
	dec := json.NewDecoder(strings.NewReader(string(raw)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(out); err != nil {
		return fmt.Errorf("invalid order_details: %w", err)
	}
	return nil
}
