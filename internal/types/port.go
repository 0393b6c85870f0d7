// Package types defines the Quantum port resource representations shared across the application.
package types

import (
	"fmt"
	"strings"
)

// PortState is the administrative/operational state of a port.
// Values not listed below are provider specific and are carried verbatim.
type PortState string

const (
	PortStateActive PortState = "ACTIVE"
	PortStateDown   PortState = "DOWN"
	PortStateBuild  PortState = "BUILD"
	PortStateError  PortState = "ERROR"
)

// KnownPortStates lists the states accepted from user input.
var KnownPortStates = []PortState{PortStateActive, PortStateDown, PortStateBuild, PortStateError}

// ParsePortState parses a user supplied state, ignoring case.
func ParsePortState(s string) (PortState, error) {
	state := PortState(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range KnownPortStates {
		if state == known {
			return state, nil
		}
	}
	return "", fmt.Errorf("invalid port state %q: must be one of ACTIVE, DOWN, BUILD, ERROR", s)
}

// Reference is the identifier-only representation of a port.
type Reference struct {
	ID string `json:"id"`
}

// Port is a port with its state.
type Port struct {
	ID    string    `json:"id"`
	State PortState `json:"state,omitempty"`
}

// PortDetails is the extended representation returned by the detail endpoint.
type PortDetails struct {
	ID         string      `json:"id"`
	Name       string      `json:"name,omitempty"`
	State      PortState   `json:"state,omitempty"`
	Attachment *Attachment `json:"attachment,omitempty"`
}

// Attachment is the interface (VIF) bound to a port.
type Attachment struct {
	ID string `json:"id"`
}
