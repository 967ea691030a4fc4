package backend

import (
	"encoding/json"
	"fmt"
	"strings"

	"go.trai.ch/stacky/internal/core/domain"
)

const selfHostedSystemPrompt = "You are a web development expert. Generate project configurations and necessary CLI commands " +
	"based on user preferences for installing and setting up a project. Omit any CLI commands for starting development services. " +
	"Return ONLY a valid JSON object with 'config' and 'commands' keys, without any prose or markdown formatting. " +
	"Every entry in 'commands' must be an object with string fields 'name' and 'command', one shell statement each. " +
	"Never use interactive prompts or destructive commands."

const hostedSystemPrompt = "You are a web development expert. Generate project configurations and necessary CLI commands " +
	"based on user preferences. Return ONLY valid JSON without any markdown formatting. " +
	"If any of the CLI commands start with npx, then append it with --yes"

// UserMessage builds the request for prefs, adding framework reference text and
// Docker instructions when present.
func UserMessage(prefs domain.Preferences, docs string) string {
	encoded, err := json.Marshal(prefs)
	if err != nil {
		encoded = []byte("{}")
	}

	var b strings.Builder
	b.WriteString("Generate a configuration JSON with 'config' and 'commands' arrays for: ")
	b.Write(encoded)

	if docs = strings.TrimSpace(docs); docs != "" {
		b.WriteString("\n\nFollow this framework reference when choosing commands:\n")
		b.WriteString(docs)
	}

	if docker := prefs.Docker(); docker != nil {
		fmt.Fprintf(&b, "\n\nThe project will be containerized with the base image %s", docker.BaseImage)
		if docker.Port != "" {
			fmt.Fprintf(&b, " and will listen on port %s", docker.Port)
		}
		b.WriteString(". Do not generate Dockerfile or docker-compose commands; those files are created separately.")
	}

	return b.String()
}
