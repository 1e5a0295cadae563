package cmake

import "strings"

// Environment variables read by the resolver.
const (
	EnvGenerator   = "CMAKE_GENERATOR"
	EnvBuildType   = "CMAKE_BUILD_TYPE"
	EnvPrefixPath  = "CMAKE_PREFIX_PATH"
	EnvCXXStandard = "CMAKE_CXX_STANDARD"
	EnvExtraArgs   = "OIIO_EXTRA_CPP_ARGS"
	EnvBuildTmpDir = "OIIO_CXX_BUILD_TMP_DIR"
)

// A read-only snapshot of environment variables.
type Env map[string]string

// Parses "key=value" entries into an [Env].
//
// Later entries override earlier ones. Entries without "=" are skipped.
func ParseEnv(entries []string) Env {
	env := make(Env, len(entries))
	for _, entry := range entries {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	return env
}

// Returns the value of key, or def when the key is unset or empty.
func (e Env) Get(key, def string) string {
	if v := e[key]; v != "" {
		return v
	}
	return def
}
