package logger

import (
	"os"
	"time"

	"github.com/sirupsen/logrus"
)

// New создает JSON-логгер сервиса диспетчеризации
func New(logLevel string) *logrus.Logger {
	log := logrus.New()

	log.SetFormatter(&logrus.JSONFormatter{
		TimestampFormat: time.RFC3339Nano,
		FieldMap: logrus.FieldMap{
			logrus.FieldKeyMsg: "message",
		},
	})
	log.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(logLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	// на debug пишем место вызова: полезно при разборе тиков симуляции
	log.SetReportCaller(level >= logrus.DebugLevel)
	return log
}
