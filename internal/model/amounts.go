package model

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// AssetAmount is one entry of an asset -> amount JSON object.
type AssetAmount struct {
	Asset  string
	Amount Uint
}

// AssetAmounts is an asset -> amount JSON object decoded in document order.
type AssetAmounts []AssetAmount

// UnmarshalJSON decodes an object while keeping the key order of the document.
func (a *AssetAmounts) UnmarshalJSON(data []byte) error {
	out := AssetAmounts{}
	err := decodeOrderedObject(data, func(key string, value json.RawMessage) error {
		var amount Uint
		if err := json.Unmarshal(value, &amount); err != nil {
			return fmt.Errorf("asset %s: %w", key, err)
		}
		out = append(out, AssetAmount{Asset: key, Amount: amount})
		return nil
	})
	if err != nil {
		return err
	}
	*a = out
	return nil
}

// ChainAmounts is one entry of a chain -> asset -> amount JSON object.
type ChainAmounts struct {
	Chain   string
	Amounts AssetAmounts
}

// NestedAmounts is a chain -> asset -> amount JSON object decoded in document order.
type NestedAmounts []ChainAmounts

// UnmarshalJSON decodes a two-level object while keeping key order on both levels.
func (n *NestedAmounts) UnmarshalJSON(data []byte) error {
	out := NestedAmounts{}
	err := decodeOrderedObject(data, func(key string, value json.RawMessage) error {
		var amounts AssetAmounts
		if err := json.Unmarshal(value, &amounts); err != nil {
			return fmt.Errorf("chain %s: %w", key, err)
		}
		out = append(out, ChainAmounts{Chain: key, Amounts: amounts})
		return nil
	})
	if err != nil {
		return err
	}
	*n = out
	return nil
}

func decodeOrderedObject(data []byte, visit func(key string, value json.RawMessage) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("decode object: %w", err)
	}
	if tok == nil {
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("decode object: unexpected token %v", tok)
	}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("decode object key: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("decode object: unexpected key %v", keyTok)
		}
		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("decode object value %s: %w", key, err)
		}
		if err := visit(key, value); err != nil {
			return err
		}
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("decode object end: %w", err)
	}
	return nil
}
