package escrowcfg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultIsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestValidateRejectsZeroRescueDelay(t *testing.T) {
	cfg := Default()
	cfg.RescueDelayMs = 0
	require.Error(t, cfg.Validate())
}

func TestParseArgsOverridesDefaults(t *testing.T) {
	cfg, err := ParseArgs([]string{"--min-safety-deposit=42", "--rescue-delay-ms=99"})
	require.NoError(t, err)
	require.Equal(t, uint64(42), cfg.MinSafetyDeposit)
	require.Equal(t, uint64(99), cfg.RescueDelayMs)
}

func TestParseArgsWithoutFlagsKeepsDefaults(t *testing.T) {
	cfg, err := ParseArgs(nil)
	require.NoError(t, err)
	require.Equal(t, Default().MinSafetyDeposit, cfg.MinSafetyDeposit)
	require.Equal(t, Default().RescueDelayMs, cfg.RescueDelayMs)
}

func TestParseArgsRejectsZeroRescueDelay(t *testing.T) {
	_, err := ParseArgs([]string{"--rescue-delay-ms=0"})
	require.Error(t, err)
}
