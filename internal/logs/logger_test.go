package logs

import (
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	t.Parallel()

	cases := map[string]logrus.Level{
		"trace":   logrus.TraceLevel,
		"debug":   logrus.DebugLevel,
		"info":    logrus.InfoLevel,
		"warn":    logrus.WarnLevel,
		"warning": logrus.WarnLevel,
		"error":   logrus.ErrorLevel,
		"fatal":   logrus.FatalLevel,
		"":        logrus.InfoLevel,
		"bogus":   logrus.InfoLevel,
	}
	for in, want := range cases {
		require.Equal(t, want, parseLevel(in), "level %q", in)
	}
}

func TestBuild_JSONFormatter(t *testing.T) {
	t.Parallel()

	l := build(Options{Level: "debug", Format: "json"})
	require.Equal(t, logrus.DebugLevel, l.GetLevel())
	require.IsType(t, &logrus.JSONFormatter{}, l.Formatter)
}

func TestInit_OnlyOnce(t *testing.T) {
	Init(Options{Level: "info"})
	first := Logger
	require.Equal(t, logrus.InfoLevel, first.GetLevel())

	Init(Options{Level: "trace", Format: "json"})
	require.Same(t, first, Logger)
	require.Equal(t, logrus.InfoLevel, Logger.GetLevel())
}
