// Package abi turns solc ABI JSON into a validated models.ABI.
package abi

import (
	"encoding/json"
	"fmt"
	"gsc-contract/models"
	"gsc-contract/util/log"
	"strings"

	simplejson "github.com/bitly/go-simplejson"
)

const fallbackType = "fallback"

// Normalize parses the JSON array emitted by solc's `--abi` output.
//
// Shape problems (missing type, missing inputs on a non-fallback entry,
// a parameter without name or type) reject the whole ABI; no partial
// result is ever returned. Unrecognized `type` and `stateMutability`
// values are kept as EntryTypeUnknown / StateMutabilityUnknown.
func Normalize(jsonStr string) (*models.ABI, error) {
	// simplejson stops after the first value, trailing data must be caught here.
	if !json.Valid([]byte(jsonStr)) {
		return nil, fmt.Errorf("%w: not a single valid json document", ErrMalformedJSON)
	}

	root, err := simplejson.NewJson([]byte(jsonStr))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedJSON, err)
	}

	items, err := root.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: root is not an array", ErrMalformedJSON)
	}

	abi := &models.ABI{Entries: make([]*models.Entry, 0, len(items))}

	for i := range items {
		entry, err := parseEntry(root.GetIndex(i))
		if err != nil {
			return nil, fmt.Errorf("abi entry %d: %w", i, err)
		}

		abi.Entries = append(abi.Entries, entry)
	}

	log.Debugf("Normalized abi with %d entries", abi.Len())

	return abi, nil
}

func parseEntry(item *simplejson.Json) (*models.Entry, error) {
	if _, err := item.Map(); err != nil {
		return nil, fmt.Errorf("%w: entry is not an object", ErrMalformedJSON)
	}

	entry := &models.Entry{
		Anonymous: optBool(item, "anonymous"),
		Constant:  optBool(item, "constant"),
		Payable:   optBool(item, "payable"),
	}

	if name, ok := optString(item, "name"); ok {
		entry.Name = &name
	}

	typ, ok := optString(item, "type")
	if !ok {
		return nil, ErrMissingType
	}

	inputs, hasInputs := lookup(item, "inputs")
	if !strings.EqualFold(typ, fallbackType) && !hasInputs {
		return nil, ErrMissingInputs
	}

	// inputs are optional for the fallback function only.
	if hasInputs {
		params, err := parseParams(inputs, ErrInvalidInputParam)
		if err != nil {
			return nil, fmt.Errorf("inputs: %w", err)
		}
		entry.Inputs = params
	}

	if outputs, ok := lookup(item, "outputs"); ok {
		params, err := parseParams(outputs, ErrInvalidOutputParam)
		if err != nil {
			return nil, fmt.Errorf("outputs: %w", err)
		}
		entry.Outputs = params
	}

	entry.Type = models.ParseEntryType(typ)

	if sm, ok := optString(item, "stateMutability"); ok {
		mutability := models.ParseStateMutability(sm)
		entry.StateMutability = &mutability
	}

	return entry, nil
}

func parseParams(list *simplejson.Json, invalid error) ([]*models.Param, error) {
	items, err := list.Array()
	if err != nil {
		return nil, fmt.Errorf("%w: parameter list is not an array", ErrMalformedJSON)
	}

	params := make([]*models.Param, 0, len(items))

	for i := range items {
		item := list.GetIndex(i)

		name, okName := optString(item, "name")
		typ, okType := optString(item, "type")
		if !okName || !okType {
			return nil, fmt.Errorf("param %d: %w", i, invalid)
		}

		params = append(params, &models.Param{
			Indexed: false,
			Name:    name,
			Type:    typ,
		})
	}

	return params, nil
}

// lookup returns the value under key, treating JSON null as absent.
func lookup(j *simplejson.Json, key string) (*simplejson.Json, bool) {
	v, ok := j.CheckGet(key)
	if !ok || v.Interface() == nil {
		return nil, false
	}

	return v, true
}

func optBool(j *simplejson.Json, key string) bool {
	v, ok := lookup(j, key)
	if !ok {
		return false
	}

	b, err := v.Bool()
	return err == nil && b
}

func optString(j *simplejson.Json, key string) (string, bool) {
	v, ok := lookup(j, key)
	if !ok {
		return "", false
	}

	s, err := v.String()
	if err != nil {
		return "", false
	}

	return s, true
}
