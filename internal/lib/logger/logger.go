// Package logger собирает slog.Logger для сервиса в зависимости от окружения.
package logger

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// Окружения запуска.
const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"
)

// FileOptions параметры ротации файла логов.
type FileOptions struct {
	Path       string
	MaxSizeMB  int
	MaxAgeDays int
	MaxBackups int
}

// New создаёт логгер: local пишет текстом с уровнем debug, dev пишет JSON с debug,
// prod и неизвестные окружения пишут JSON с info.
// Если задан путь к файлу, логи дублируются в файл с ротацией.
// Возвращаемый io.Closer закрывает файл и безопасен при отсутствии файла.
func New(env string, file FileOptions) (*slog.Logger, io.Closer) {
	var w io.Writer = os.Stdout
	var closer io.Closer = nopCloser{}

	if file.Path != "" {
		lj := &lumberjack.Logger{
			Filename:   file.Path,
			MaxSize:    file.MaxSizeMB,
			MaxAge:     file.MaxAgeDays,
			MaxBackups: file.MaxBackups,
		}
		w = io.MultiWriter(os.Stdout, lj)
		closer = lj
	}

	return slog.New(newHandler(env, w)), closer
}

func newHandler(env string, w io.Writer) slog.Handler {
	switch env {
	case EnvLocal:
		return slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	case EnvDev:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug})
	default:
		return slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
