package models

import (
	"fmt"
	"gsc-contract/util/hashutil"
	"strings"
)

// EntryType is the kind of an ABI member.
type EntryType int

// ABI entry kinds.
const (
	EntryTypeUnknown EntryType = iota
	EntryTypeConstructor
	EntryTypeFunction
	EntryTypeEvent
	EntryTypeFallback
)

var entryTypeNames = map[EntryType]string{
	EntryTypeUnknown:     "Unknown",
	EntryTypeConstructor: "Constructor",
	EntryTypeFunction:    "Function",
	EntryTypeEvent:       "Event",
	EntryTypeFallback:    "Fallback",
}

// ParseEntryType maps the solc `type` value to EntryType.
// Anything other than the four lower-case kinds gives EntryTypeUnknown.
func ParseEntryType(s string) EntryType {
	switch s {
	case "constructor":
		return EntryTypeConstructor
	case "function":
		return EntryTypeFunction
	case "event":
		return EntryTypeEvent
	case "fallback":
		return EntryTypeFallback
	default:
		return EntryTypeUnknown
	}
}

func (t EntryType) String() string {
	if name, ok := entryTypeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("EntryType(%d)", int(t))
}

// MarshalText implements encoding.TextMarshaler.
func (t EntryType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// StateMutabilityType is the declared side-effect class of a function.
type StateMutabilityType int

// State mutability values.
const (
	StateMutabilityUnknown StateMutabilityType = iota
	StateMutabilityPure
	StateMutabilityView
	StateMutabilityNonpayable
	StateMutabilityPayable
)

var stateMutabilityNames = map[StateMutabilityType]string{
	StateMutabilityUnknown:    "Unknown",
	StateMutabilityPure:       "Pure",
	StateMutabilityView:       "View",
	StateMutabilityNonpayable: "Nonpayable",
	StateMutabilityPayable:    "Payable",
}

// ParseStateMutability maps the solc `stateMutability` value to StateMutabilityType.
func ParseStateMutability(s string) StateMutabilityType {
	switch s {
	case "pure":
		return StateMutabilityPure
	case "view":
		return StateMutabilityView
	case "nonpayable":
		return StateMutabilityNonpayable
	case "payable":
		return StateMutabilityPayable
	default:
		return StateMutabilityUnknown
	}
}

func (m StateMutabilityType) String() string {
	if name, ok := stateMutabilityNames[m]; ok {
		return name
	}
	return fmt.Sprintf("StateMutabilityType(%d)", int(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m StateMutabilityType) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// ABI is the validated interface description of a contract.
// Entries keep the declaration order of the source.
type ABI struct {
	Entries []*Entry `json:"entries"`
}

// Entry is one constructor, function, event or fallback of a contract.
type Entry struct {
	Anonymous bool      `json:"anonymous"`
	Constant  bool      `json:"constant"`
	Name      *string   `json:"name,omitempty"`
	Inputs    []*Param  `json:"inputs"`
	Outputs   []*Param  `json:"outputs"`
	Type      EntryType `json:"type"`
	Payable   bool      `json:"payable"`

	// StateMutability is nil when the source did not declare one.
	StateMutability *StateMutabilityType `json:"stateMutability,omitempty"`
}

// Param is a named, typed argument or return slot.
type Param struct {
	Indexed bool   `json:"indexed"`
	Name    string `json:"name"`
	Type    string `json:"type"`
}

// Len returns the number of entries.
func (abi *ABI) Len() int {
	if abi == nil {
		return 0
	}
	return len(abi.Entries)
}

// Filter returns entries of the given kind, in declaration order.
func (abi *ABI) Filter(t EntryType) []*Entry {
	if abi == nil {
		return nil
	}

	var entries []*Entry
	for _, e := range abi.Entries {
		if e.Type == t {
			entries = append(entries, e)
		}
	}

	return entries
}

// GetName returns the entry name, or "" if absent.
func (e *Entry) GetName() string {
	if e.Name == nil {
		return ""
	}
	return *e.Name
}

// Signature returns the canonical `name(type1,type2)` form of the entry.
// E.g., transfer(address,uint256)
func (e *Entry) Signature() string {
	types := make([]string, len(e.Inputs))
	for i, p := range e.Inputs {
		types[i] = p.Type
	}

	return e.GetName() + "(" + strings.Join(types, ",") + ")"
}

// Selector returns the first 4 bytes of the Keccak256 of the signature.
// Only functions have a selector, nil is returned for other kinds.
func (e *Entry) Selector() []byte {
	if e.Type != EntryTypeFunction {
		return nil
	}

	return hashutil.Keccak256([]byte(e.Signature()))[:4]
}

// Topic returns the full Keccak256 of the signature for non-anonymous events.
func (e *Entry) Topic() []byte {
	if e.Type != EntryTypeEvent || e.Anonymous {
		return nil
	}

	return hashutil.Keccak256([]byte(e.Signature()))
}
