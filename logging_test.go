package starfield

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultLogger_Levels(t *testing.T) {
	var out, errOut bytes.Buffer
	l := NewLoggerTo(&out, &errOut, "sf", false)

	l.Debugf("hidden %d", 1)
	l.Infof("hello %s", "world")
	l.Warnf("careful")
	l.Errorf("broken")

	assert.NotContains(t, out.String(), "hidden")
	assert.Contains(t, out.String(), "[sf] INFO: hello world")
	assert.Contains(t, errOut.String(), "[sf] WARN: careful")
	assert.Contains(t, errOut.String(), "[sf] ERROR: broken")

	l.SetDebug(true)
	assert.True(t, l.DebugEnabled())
	l.Debugf("shown %d", 2)
	assert.Contains(t, out.String(), "[sf] DEBUG: shown 2")
}

func TestDefaultLogger_NoPrefix(t *testing.T) {
	var out bytes.Buffer
	l := NewLoggerTo(&out, &out, "", false)
	l.Infof("plain")
	assert.Contains(t, out.String(), "INFO: plain")
	assert.NotContains(t, out.String(), "[")
}

func TestApp_Logger(t *testing.T) {
	var nilApp *App
	assert.NotNil(t, nilApp.Logger())

	app := NewAppBuilder().Build()
	assert.IsType(t, nopLogger{}, app.Logger())

	app = NewAppBuilder().UseModule(LoggingModule{Prefix: "x", Debug: true}).Build()
	l, ok := app.Logger().(*DefaultLogger)
	assert.True(t, ok)
	assert.True(t, l.DebugEnabled())
}

type capturingLogger struct {
	nopLogger
	warnings []string
}

func (l *capturingLogger) Warnf(format string, args ...any) {
	l.warnings = append(l.warnings, fmt.Sprintf(format, args...))
}

func TestApp_LoggerAcceptsCustomResource(t *testing.T) {
	custom := &capturingLogger{}
	app := NewAppBuilder().Build()
	app.Commands().AddResources(custom)

	assert.Same(t, custom, app.Logger())
	app.Commands().Logger().Warnf("low %s", "memory")
	assert.Equal(t, []string{"low memory"}, custom.warnings)
}
