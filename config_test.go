package rowalign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config[string]
		wantErr string
	}{
		{name: "Valid", cfg: Config[string]{Size: 1, MaxBufferSize: 1}},
		{name: "ZeroSize", cfg: Config[string]{Size: 0, MaxBufferSize: 1}, wantErr: "invalid argument: size must be >= 1, got 0"},
		{name: "ZeroBuffer", cfg: Config[string]{Size: 2, MaxBufferSize: 0}, wantErr: "invalid argument: max buffer size must be >= 1, got 0"},
		{name: "NegativeDelta", cfg: Config[string]{Size: 2, MaxBufferSize: 2, MaxIndexValueDelta: -1}, wantErr: "invalid argument: max index value delta must be >= 0, got -1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.EqualError(t, err, tt.wantErr)
			assert.ErrorIs(t, err, ErrInvalidArgument)

			eng, err := New(tt.cfg)
			assert.Nil(t, eng)
			assert.ErrorIs(t, err, ErrInvalidArgument)
		})
	}
}

func TestNew_Options(t *testing.T) {
	eng, err := New(Config[string]{Size: 2, MaxBufferSize: 3}, nil, WithLogger(nil), WithMetricsCollector(nil))
	require.NoError(t, err)

	assert.Equal(t, 2, eng.Size())
	assert.IsType(t, NoopMetricsCollector{}, eng.metrics)
	assert.NotNil(t, eng.logger)
}
