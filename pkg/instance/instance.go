package instance

import (
	"os"
	"strings"
)

// ID names the running process in logs: the platform dyno name, then the host name,
// then "local".
func ID() string {
	for _, key := range []string{"DYNO", "HOSTNAME"} {
		if id := strings.TrimSpace(os.Getenv(key)); id != "" {
			return id
		}
	}
	return "local"
}
