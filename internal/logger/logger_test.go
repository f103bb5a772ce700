package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestResolveLevel(t *testing.T) {
	testCases := []struct {
		name     string
		debug    bool
		level    string
		expected logrus.Level
	}{
		{name: "silent by default", expected: logrus.PanicLevel},
		{name: "debug env wins", debug: true, level: "error", expected: logrus.DebugLevel},
		{name: "explicit level", level: "warn", expected: logrus.WarnLevel},
		{name: "garbage level", level: "loud", expected: logrus.PanicLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, resolveLevel(tc.debug, tc.level))
		})
	}
}

func TestConfigureWritesToGivenOutput(t *testing.T) {
	t.Setenv("DEBUG", "")
	var buf bytes.Buffer
	Configure(&buf, "debug")
	t.Cleanup(func() { Configure(&bytes.Buffer{}, "") })

	DebugLog("recognizing %s", "receipt.png")
	WithFields(logrus.Fields{"engine": "tesseract"}).Info("engine ready")

	out := buf.String()
	assert.Contains(t, out, "recognizing receipt.png")
	assert.Contains(t, out, "engine=tesseract")
}

func TestSilentLoggerWritesNothing(t *testing.T) {
	t.Setenv("DEBUG", "")
	var buf bytes.Buffer
	Configure(&buf, "")
	t.Cleanup(func() { Configure(&bytes.Buffer{}, "") })

	DebugLog("hidden")
	WarnLog("hidden too")

	assert.Empty(t, buf.String())
	assert.Equal(t, logrus.PanicLevel, Level())
}
