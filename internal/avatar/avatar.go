// Package avatar generates placeholder avatar references for accounts that
// sign up without one.
package avatar

import (
	"fmt"
	"net/url"
)

// DefaultSize is the rendered avatar size in pixels.
const DefaultSize = 64

// URLFor returns a deterministic placeholder avatar URL for a display name,
// served by the ui-avatars API. The name is only ever embedded in the URL;
// nothing is fetched here.
func URLFor(name string, size int) string {
	if name == "" {
		name = "User"
	}
	if size <= 0 {
		size = DefaultSize
	}
	return fmt.Sprintf("https://ui-avatars.com/api/?name=%s&size=%d&format=png&rounded=true",
		url.QueryEscape(name), size)
}
