// Package wizard collects scaffolding preferences interactively or from a file.
package wizard

import (
	"strings"

	"github.com/charmbracelet/huh"
	"go.trai.ch/stacky/internal/core/domain"
	"go.trai.ch/zerr"
)

const none = "none"

// Answers holds the values bound to the preference form.
type Answers struct {
	MetaFramework   string
	Language        string
	PackageManager  string
	CSSFramework    string
	StateManagement string
	Testing         string
	Tooling         []string
	API             bool
	APIClient       string
	Docker          bool
	DockerBaseImage string
	DockerPort      string
	Deployment      string
}

// DefaultAnswers returns the values preselected in the form.
func DefaultAnswers() *Answers {
	return &Answers{
		MetaFramework:   none,
		Language:        "typescript",
		PackageManager:  "npm",
		CSSFramework:    none,
		StateManagement: none,
		Testing:         none,
		APIClient:       "react-query",
		DockerBaseImage: domain.DefaultDockerBaseImage,
		DockerPort:      domain.DefaultDockerPort,
		Deployment:      none,
	}
}

// Preferences converts the answers into a preference record. apiClient is only
// present when API integration was requested, dockerConfig only with docker.
func (a *Answers) Preferences() domain.Preferences {
	tooling := a.Tooling
	if tooling == nil {
		tooling = []string{}
	}

	prefs := domain.Preferences{
		"metaFramework":   a.MetaFramework,
		"language":        a.Language,
		"packageManager":  a.PackageManager,
		"cssFramework":    a.CSSFramework,
		"stateManagement": a.StateManagement,
		"testing":         a.Testing,
		"tooling":         tooling,
		"api":             a.API,
		"docker":          a.Docker,
		"deployment":      a.Deployment,
	}
	if a.API {
		prefs["apiClient"] = a.APIClient
	}
	if a.Docker {
		cfg := map[string]any{"baseImage": strings.TrimSpace(a.DockerBaseImage)}
		if port, err := domain.ParsePort(a.DockerPort); err == nil && port != "" {
			cfg["port"] = port
		}
		prefs["dockerConfig"] = cfg
	}
	return prefs
}

// Form builds the preference form bound to a.
func (a *Answers) Form() *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which framework would you like to use?").
				Options(
					huh.NewOption("None (Vanilla React)", none),
					huh.NewOption("Next.js (Recommended for web apps)", "next"),
					huh.NewOption("React Router (Recommended for SPAs)", "react-router"),
					huh.NewOption("Expo (Recommended for mobile apps)", "expo"),
					huh.NewOption("Create React App (Deprecated)", "cra"),
				).
				Value(&a.MetaFramework),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which language would you like to use?").
				Options(huh.NewOptions("typescript", "javascript")...).
				Value(&a.Language),
			huh.NewSelect[string]().
				Title("Which package manager would you like to use?").
				Options(huh.NewOptions("npm", "yarn", "pnpm")...).
				Value(&a.PackageManager),
			huh.NewSelect[string]().
				Title("Which CSS framework would you like to use?").
				Options(huh.NewOptions(none, "tailwind", "sass/scss", "styled-components", "css modules")...).
				Value(&a.CSSFramework),
			huh.NewSelect[string]().
				Title("Would you like to add state management?").
				Options(
					huh.NewOption("None", none),
					huh.NewOption("Redux (Complex state with middleware)", "redux"),
					huh.NewOption("Zustand (Simple state management)", "zustand"),
					huh.NewOption("Jotai (Atomic state management)", "jotai"),
				).
				Value(&a.StateManagement),
			huh.NewSelect[string]().
				Title("Which testing framework would you like to use?").
				Options(
					huh.NewOption("None", none),
					huh.NewOption("Jest (Unit & Integration)", "jest"),
					huh.NewOption("Vitest (Fast alternative to Jest)", "vitest"),
					huh.NewOption("Playwright (E2E testing)", "playwright"),
					huh.NewOption("Cypress (E2E testing)", "cypress"),
				).
				Value(&a.Testing),
			huh.NewMultiSelect[string]().
				Title("Select additional development tools:").
				Options(
					huh.NewOption("ESLint", "eslint"),
					huh.NewOption("Prettier", "prettier"),
					huh.NewOption("Husky (Git Hooks)", "husky"),
					huh.NewOption("Commitlint", "commitlint"),
				).
				Value(&a.Tooling),
			huh.NewConfirm().
				Title("Would you like to add API integration setup?").
				Value(&a.API),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which API client would you like to use?").
				Options(
					huh.NewOption("React Query/TanStack (Recommended)", "react-query"),
					huh.NewOption("SWR (Lightweight alternative)", "swr"),
					huh.NewOption("Axios (HTTP client only)", "axios"),
					huh.NewOption("Fetch (Browser native)", "fetch"),
				).
				Value(&a.APIClient),
		).WithHideFunc(func() bool { return !a.API }),
		huh.NewGroup(
			huh.NewConfirm().
				Title("Would you like to add Docker configuration?").
				Value(&a.Docker),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Which Node.js base image would you like to use?").
				Validate(ValidateBaseImage).
				Value(&a.DockerBaseImage),
			huh.NewInput().
				Title("Which port should the Docker container expose?").
				Validate(ValidatePort).
				Value(&a.DockerPort),
		).WithHideFunc(func() bool { return !a.Docker }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Would you like to add CI/CD configuration?").
				Options(
					huh.NewOption("None", none),
					huh.NewOption("GitHub Actions", "github-actions"),
					huh.NewOption("GitLab CI", "gitlab-ci"),
					huh.NewOption("Circle CI", "circle-ci"),
				).
				Value(&a.Deployment),
		),
	)
}

var errBaseImageRequired = zerr.New("base image is required")

// ValidateBaseImage rejects a blank base image.
func ValidateBaseImage(input string) error {
	if strings.TrimSpace(input) == "" {
		return errBaseImageRequired
	}
	return nil
}

// ValidatePort accepts an empty value or a port in 1..65535.
func ValidatePort(input string) error {
	_, err := domain.ParsePort(input)
	return err
}
