// Package entities contains domain entities used across the application.
package entities

import (
	"errors"
	"strings"
)

var (
	ErrNerveTypeEmpty   = errors.New("nerve type is empty")
	ErrNerveTypeInvalid = errors.New("nerve type must be sensory, motor, or both")
)

// NerveType is the functional category of a cranial nerve.
type NerveType string

const (
	NerveSensory NerveType = "sensory" // carries sensory fibers only
	NerveMotor   NerveType = "motor"   // carries motor fibers only
	NerveBoth    NerveType = "both"    // mixed sensory and motor
)

// NerveTypes lists every nerve type in display order.
var NerveTypes = []NerveType{NerveSensory, NerveMotor, NerveBoth}

// ParseNerveType converts raw dataset text into a NerveType.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseNerveType(s string) (NerveType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sensory":
		return NerveSensory, nil
	case "motor":
		return NerveMotor, nil
	case "both":
		return NerveBoth, nil
	case "":
		return "", ErrNerveTypeEmpty
	default:
		return "", ErrNerveTypeInvalid
	}
}

// Label returns the human-readable label of the nerve type.
func (t NerveType) Label() string {
	switch t {
	case NerveSensory:
		return "Sensory"
	case NerveMotor:
		return "Motor"
	case NerveBoth:
		return "Both"
	default:
		return string(t)
	}
}

// Entry is one normalized row of the cranial nerve study guide.
type Entry struct {
	Name           string    `json:"name"`               // nerve name, never empty
	Type           NerveType `json:"type"`               // sensory, motor or both
	Function       string    `json:"function"`           // primary fact, never empty
	SwallowingRole string    `json:"role_in_swallowing"` // empty when the nerve plays no role
	Order          int       `json:"order"`              // 1-based row in the source file
}

// HasSwallowingRole reports whether the entry can appear in a swallowing-role round.
func (e Entry) HasSwallowingRole() bool {
	return strings.TrimSpace(e.SwallowingRole) != ""
}
