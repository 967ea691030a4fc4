package domain

import "go.trai.ch/zerr"

var (
	// ErrPlanFetchFailed is returned when no usable plan could be obtained after all retry attempts.
	ErrPlanFetchFailed = zerr.New("failed to fetch scaffolding plan")

	// ErrBackendRequestFailed is returned when a request to the model backend fails.
	ErrBackendRequestFailed = zerr.New("backend request failed")

	// ErrBackendResponseInvalid is returned when the backend response cannot be decoded.
	ErrBackendResponseInvalid = zerr.New("backend returned an invalid response")

	// ErrPlanShapeInvalid is returned when a decoded plan does not have the expected shape.
	ErrPlanShapeInvalid = zerr.New("plan has an invalid shape")

	// ErrMissingAPIKey is returned when the hosted backend is selected without an API key.
	ErrMissingAPIKey = zerr.New("DEEPSEEK_API_KEY is required when USE_OLLAMA is false")

	// ErrNoRunningModels is returned by the sanity check when the model server has nothing loaded.
	ErrNoRunningModels = zerr.New("no running models on this host")

	// ErrBackendVersionUnsupported is returned when the model server is older than required.
	ErrBackendVersionUnsupported = zerr.New("model server version is not supported")

	// ErrSanityCheckFailed is returned when the backend sanity check fails.
	ErrSanityCheckFailed = zerr.New("sanity check failed")

	// ErrCacheWriteFailed is returned when the response cache cannot be persisted.
	ErrCacheWriteFailed = zerr.New("failed to write response cache")

	// ErrCacheMarshalFailed is returned when the response cache cannot be serialized.
	ErrCacheMarshalFailed = zerr.New("failed to marshal response cache")

	// ErrMissingCommands is returned when one or more plan commands are not available.
	ErrMissingCommands = zerr.New("required commands are not available in this environment")

	// ErrCommandFailed is returned when a plan command exits with a nonzero status.
	ErrCommandFailed = zerr.New("command failed")

	// ErrDirectoryChangeFailed is returned when a cd target does not exist.
	ErrDirectoryChangeFailed = zerr.New("failed to change directory")

	// ErrProjectDirCreateFailed is returned when the project directory cannot be created.
	ErrProjectDirCreateFailed = zerr.New("failed to create project directory")

	// ErrArtifactWriteFailed is returned when a generated Docker file cannot be written.
	ErrArtifactWriteFailed = zerr.New("failed to write docker artifact")

	// ErrConfigReadFailed is returned when a configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigInvalid is returned when the loaded settings fail validation.
	ErrConfigInvalid = zerr.New("invalid configuration")

	// ErrPreferencesReadFailed is returned when a preferences file cannot be read.
	ErrPreferencesReadFailed = zerr.New("failed to read preferences file")

	// ErrPreferencesParseFailed is returned when a preferences file cannot be parsed.
	ErrPreferencesParseFailed = zerr.New("failed to parse preferences file")

	// ErrNotInteractive is returned when a prompt is required but stdin is not a terminal.
	ErrNotInteractive = zerr.New("interactive prompt requires a terminal, pass --preferences and --yes instead")

	// ErrDocsNotFound is returned when no reference documentation exists for a framework.
	ErrDocsNotFound = zerr.New("framework docs not found")

	// ErrDocsFetchFailed is returned when remote reference documentation cannot be fetched.
	ErrDocsFetchFailed = zerr.New("failed to fetch framework docs")

	// ErrInvalidPort is returned when a docker port is outside 1-65535.
	ErrInvalidPort = zerr.New("please enter a valid port number (1-65535)")
)
