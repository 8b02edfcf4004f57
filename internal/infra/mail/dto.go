package mail

import (
	"fmt"
	netmail "net/mail"
	"strings"
)

// ProviderError is returned when a provider answers with a non-success status.
type ProviderError struct {
	Provider   string
	StatusCode int
	Body       string
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Provider, e.StatusCode, e.Body)
}

// splitAddress turns "Name <addr>" into its parts. Anything that does not
// parse is used verbatim as the address.
func splitAddress(s string) (name, address string) {
	parsed, err := netmail.ParseAddress(s)
	if err != nil {
		return "", s
	}
	return parsed.Name, parsed.Address
}

func domainOf(address string) string {
	_, addr := splitAddress(address)
	if i := strings.LastIndex(addr, "@"); i >= 0 && i < len(addr)-1 {
		return addr[i+1:]
	}
	return "localhost"
}
