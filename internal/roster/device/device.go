// Package device turns raw User-Agent strings into the short device labels
// shown next to staff presence in the console.
package device

import (
	"strings"

	"github.com/mssola/useragent"
)

// Summarize extracts a human-readable device display name from a User-Agent
// string, in the form "Browser on OS" (e.g. "Chrome on macOS").
func Summarize(userAgentString string) string {
	if userAgentString == "" {
		return "Unknown Device"
	}

	ua := useragent.New(userAgentString)

	browser, _ := ua.Browser()
	os := ua.OS()

	if ua.Mobile() {
		platform := ua.Platform()
		if platform != "" {
			return strings.TrimSpace(browser + " on " + platform)
		}
	}

	if browser == "" {
		browser = "Unknown Browser"
	}
	if os == "" {
		os = "Unknown OS"
	}

	return strings.TrimSpace(browser + " on " + os)
}
