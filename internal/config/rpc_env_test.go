package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectEnvVar(t *testing.T) {
	tests := []struct {
		name       string
		rawValue   string
		wantEnvVar string
		wantIsVar  bool
	}{
		{
			name:       "simple env var",
			rawValue:   "${DEV_PK}",
			wantEnvVar: "DEV_PK",
			wantIsVar:  true,
		},
		{
			name:       "env var with underscores",
			rawValue:   "${GNOSIS_RAFFLE_ADDRESS}",
			wantEnvVar: "GNOSIS_RAFFLE_ADDRESS",
			wantIsVar:  true,
		},
		{
			name:       "hardcoded URL",
			rawValue:   "https://rpc.gnosischain.com",
			wantEnvVar: "",
			wantIsVar:  false,
		},
		{
			name:       "env var with path suffix",
			rawValue:   "${MY_VAR}/path",
			wantEnvVar: "",
			wantIsVar:  false,
		},
		{
			name:       "empty string",
			rawValue:   "",
			wantEnvVar: "",
			wantIsVar:  false,
		},
		{
			name:       "bare dollar var",
			rawValue:   "$DEV_PK",
			wantEnvVar: "",
			wantIsVar:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			envVar, isVar := DetectEnvVar(tt.rawValue)
			assert.Equal(t, tt.wantEnvVar, envVar)
			assert.Equal(t, tt.wantIsVar, isVar)
		})
	}
}

func TestDescribeSecret(t *testing.T) {
	assert.Equal(t, "$DEV_PK (set)", DescribeSecret("${DEV_PK}", "0xabc"))
	assert.Equal(t, "$DEV_PK (unset)", DescribeSecret("${DEV_PK}", ""))
	assert.Equal(t, "<literal> (set)", DescribeSecret("0xabc", "0xabc"))
	assert.Equal(t, "(none)", DescribeSecret("", ""))
}
