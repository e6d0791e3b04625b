// Package providers registers every built-in AI provider with the core
// factory. Import for side effects.
package providers

import (
	_ "github.com/sentra-id/cekfakta/src/ai/gemini"
	_ "github.com/sentra-id/cekfakta/src/ai/openai"
)
