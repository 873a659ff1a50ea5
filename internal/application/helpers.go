package application

import (
	"math"
	"math/rand"
)

func gameModeLabel(mode string) string {
	if mode == classicGameMode {
		return soloDuoLabel
	}
	return aramLabel
}

// durationMinutes rounds half away from zero.
func durationMinutes(seconds int64) int64 {
	return int64(math.Round(float64(seconds) / secondsPerMinute))
}

func randomPhrase(phrases []string) string {
	if len(phrases) == 0 {
		return ""
	}
	return phrases[rand.Intn(len(phrases))]
}

// argsLogger prepends fixed key/value pairs to every record.
type argsLogger struct {
	Logger
	args []interface{}
}

func withArgs(l Logger, args ...interface{}) Logger {
	return &argsLogger{Logger: l, args: args}
}

func (l *argsLogger) with(v []interface{}) []interface{} {
	out := make([]interface{}, 0, len(l.args)+len(v))
	return append(append(out, l.args...), v...)
}

func (l *argsLogger) Error(msg string, v ...interface{}) { l.Logger.Error(msg, l.with(v)...) }
func (l *argsLogger) Warn(msg string, v ...interface{})  { l.Logger.Warn(msg, l.with(v)...) }
func (l *argsLogger) Info(msg string, v ...interface{})  { l.Logger.Info(msg, l.with(v)...) }
func (l *argsLogger) Debug(msg string, v ...interface{}) { l.Logger.Debug(msg, l.with(v)...) }
