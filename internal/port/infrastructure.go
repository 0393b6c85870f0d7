// Package port defines the primary ports (interfaces) for the application.
// This follows the Ports and Adapters (Hexagonal Architecture) pattern.
package port

import (
	"github.com/vishvananda/netlink"
)

// Authenticator is a port for the identity service.
// It supplies the token the authentication filter attaches to outgoing requests.
type Authenticator interface {
	// Authenticate obtains a fresh token
	Authenticate() error

	// Token returns the current token
	Token() string
}

// NetworkManager is a port for local network interface lookups.
// This interface abstracts netlink operations.
type NetworkManager interface {
	// GetLinkByName returns a network link by interface name
	GetLinkByName(interfaceName string) (netlink.Link, error)
}
