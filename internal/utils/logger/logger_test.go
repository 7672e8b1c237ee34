package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"signhub/internal/app/server/config"
	"signhub/internal/utils/logger/slogpretty"
)

func TestNewLogger_Profiles(t *testing.T) {
	cases := map[string]struct {
		env    string
		debug  bool
		pretty bool
	}{
		"local":   {env: config.EnvLocal, debug: true, pretty: true},
		"dev":     {env: config.EnvDev, debug: true},
		"prod":    {env: config.EnvProd},
		"unknown": {env: "staging"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			log := newLogger(tc.env, &buf)

			_, pretty := log.Handler().(*slogpretty.PrettyHandler)
			assert.Equal(t, tc.pretty, pretty)

			log.Debug("probe")
			assert.Equal(t, tc.debug, buf.Len() > 0, "debug output")
		})
	}
}

func TestNewLogger_JSONLines(t *testing.T) {
	var buf bytes.Buffer
	log := newLogger(config.EnvProd, &buf)

	log.With(slog.String("component", "api")).Info("request served", "status", 201)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "INFO", line["level"])
	assert.Equal(t, "request served", line["msg"])
	assert.Equal(t, "api", line["component"])
	assert.EqualValues(t, 201, line["status"])
}

func TestNew(t *testing.T) {
	require.NotNil(t, New(config.EnvLocal))
}

func TestDiscard(t *testing.T) {
	log := Discard()
	require.NotNil(t, log)
	log.Error("dropped")
}
