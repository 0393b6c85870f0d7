// Package vif derives Quantum attachment identifiers from local network interfaces.
package vif

import (
	"fmt"
	"strings"

	"quantum-portctl/internal/port"
)

// Resolver looks up the attachment identifier of a local interface.
// The interface alias carries the VIF id when the hypervisor set one; otherwise the MAC
// address identifies the interface.
type Resolver struct {
	networkMgr port.NetworkManager
}

// NewResolver creates a resolver backed by the given network manager.
func NewResolver(networkMgr port.NetworkManager) *Resolver {
	return &Resolver{networkMgr: networkMgr}
}

// AttachmentID returns the attachment identifier for the named interface.
func (r *Resolver) AttachmentID(interfaceName string) (string, error) {
	link, err := r.networkMgr.GetLinkByName(interfaceName)
	if err != nil {
		return "", fmt.Errorf("failed to resolve attachment for %s: %w", interfaceName, err)
	}

	attrs := link.Attrs()
	if alias := strings.TrimSpace(attrs.Alias); alias != "" {
		return alias, nil
	}
	if len(attrs.HardwareAddr) > 0 {
		return attrs.HardwareAddr.String(), nil
	}
	return "", fmt.Errorf("interface %s has neither an alias nor a hardware address", interfaceName)
}
