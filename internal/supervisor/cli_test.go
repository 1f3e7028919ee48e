package supervisor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseArgs_Defaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
}

func TestParseArgs_LimitAndDelay(t *testing.T) {
	cfg, err := ParseArgs([]string{"-n", "5", "-w", "2"})
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Limit)
	assert.Equal(t, 2*time.Second, cfg.Delay)
}

func TestParseArgs_PrintFlag(t *testing.T) {
	cfg, err := ParseArgs([]string{"-p"})
	require.NoError(t, err)
	assert.True(t, cfg.PrintGraph)
}

func TestParseArgs_RejectsRepeatedOption(t *testing.T) {
	_, err := ParseArgs([]string{"-n", "1", "-n", "2"})
	assert.Error(t, err)
}

func TestParseArgs_RejectsUnknownOption(t *testing.T) {
	_, err := ParseArgs([]string{"--bogus"})
	assert.Error(t, err)
}

func TestParseArgs_RejectsExtraPositional(t *testing.T) {
	_, err := ParseArgs([]string{"extra"})
	assert.Error(t, err)
}

func TestParseArgs_RejectsNegativeLimit(t *testing.T) {
	_, err := ParseArgs([]string{"-n", "-1"})
	assert.Error(t, err)
}
