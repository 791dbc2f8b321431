package providers

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"marinecast/internal/structures"
)

type TypeEnum uint8

const (
	TypeApp TypeEnum = iota
	TypeGet
	TypePost
	TypeFetch
)

type Logger interface {
	Errorf(t TypeEnum, format string, args ...interface{})
	Warnf(t TypeEnum, format string, args ...interface{})
	Debugf(t TypeEnum, format string, args ...interface{})
	Infof(t TypeEnum, format string, args ...interface{})
	Fatalf(t TypeEnum, format string, args ...interface{})
	Close()
}

func GetLogTypeByRequestType(method string) TypeEnum {
	if method == "POST" {
		return TypePost
	}
	return TypeGet
}

// LogProvider routes log lines to per-concern files: application lifecycle,
// HTTP access, and upstream fetch activity.
type LogProvider struct {
	app    zerolog.Logger
	access zerolog.Logger
	fetch  zerolog.Logger
	files  []*os.File
}

func NewLogProvider(conf *structures.Config) (Logger, error) {
	level, err := zerolog.ParseLevel(strings.ToLower(conf.Logger.Level))
	if err != nil {
		level = zerolog.InfoLevel
	}

	mode := os.FileMode(conf.Logger.Mode)
	names := []string{"app.log", "access.log", "fetch.log"}
	files := make([]*os.File, 0, len(names))
	loggers := make([]zerolog.Logger, 0, len(names))

	for _, name := range names {
		f, err := os.OpenFile(filepath.Join(conf.Logger.Dir, name), os.O_CREATE|os.O_WRONLY|os.O_APPEND, mode)
		if err != nil {
			for _, opened := range files {
				opened.Close()
			}
			return nil, err
		}
		files = append(files, f)
		loggers = append(loggers, zerolog.New(f).Level(level).With().Timestamp().Logger())
	}

	return &LogProvider{
		app:    loggers[0],
		access: loggers[1],
		fetch:  loggers[2],
		files:  files,
	}, nil
}

func (l *LogProvider) target(t TypeEnum) *zerolog.Logger {
	switch t {
	case TypeGet, TypePost:
		return &l.access
	case TypeFetch:
		return &l.fetch
	default:
		return &l.app
	}
}

func (l *LogProvider) Errorf(t TypeEnum, format string, args ...interface{}) {
	l.target(t).Error().Msgf(format, args...)
}

func (l *LogProvider) Warnf(t TypeEnum, format string, args ...interface{}) {
	l.target(t).Warn().Msgf(format, args...)
}

func (l *LogProvider) Debugf(t TypeEnum, format string, args ...interface{}) {
	l.target(t).Debug().Msgf(format, args...)
}

func (l *LogProvider) Infof(t TypeEnum, format string, args ...interface{}) {
	l.target(t).Info().Msgf(format, args...)
}

func (l *LogProvider) Fatalf(t TypeEnum, format string, args ...interface{}) {
	l.target(t).Fatal().Msgf(format, args...)
}

func (l *LogProvider) Close() {
	for _, f := range l.files {
		f.Close()
	}
}
