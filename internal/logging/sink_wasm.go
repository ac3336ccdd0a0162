//go:build wasip1

package logging

import (
	"github.com/extism/go-pdk"
	"github.com/sirupsen/logrus"
)

// HostSink writes to the host's log channel.
type HostSink struct{}

func (HostSink) Log(level logrus.Level, line string) {
	pdk.Log(hostLevel(level), line)
}

func hostLevel(level logrus.Level) pdk.LogLevel {
	switch level {
	case logrus.PanicLevel, logrus.FatalLevel, logrus.ErrorLevel:
		return pdk.LogError
	case logrus.WarnLevel:
		return pdk.LogWarn
	case logrus.InfoLevel:
		return pdk.LogInfo
	default:
		return pdk.LogDebug
	}
}
