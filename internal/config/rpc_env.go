package config

import (
	"regexp"
)

// envVarPattern matches ${VAR_NAME} patterns in TOML values
var envVarPattern = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// DetectEnvVar checks if a raw TOML value is a simple ${VAR_NAME} reference.
// Returns the variable name and true if the value is a pure env var reference.
func DetectEnvVar(rawValue string) (string, bool) {
	matches := envVarPattern.FindStringSubmatch(rawValue)
	if len(matches) == 2 {
		return matches[1], true
	}
	return "", false
}

// DescribeSecret returns a display-safe description of a secret setting.
// Env var references are shown by name, literal values are redacted.
func DescribeSecret(rawValue string, resolved string) string {
	set := "unset"
	if resolved != "" {
		set = "set"
	}
	if name, ok := DetectEnvVar(rawValue); ok {
		return "$" + name + " (" + set + ")"
	}
	if rawValue == "" {
		return "(none)"
	}
	return "<literal> (" + set + ")"
}
