package gemini

import "time"

const (
	// DefaultModel answers single-shot extraction prompts quickly and cheaply.
	DefaultModel = "gemini-2.5-flash"

	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	generateContentPath = "%s/models/%s:generateContent?key=%s"
)

// Content roles. The instruction travels in Request.SystemInstruction and
// carries no role.
const (
	RoleUser  = "user"
	RoleModel = "model"
)
