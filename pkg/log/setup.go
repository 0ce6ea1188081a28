package log

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// Configure ajusta o logrus global para a aplicação. Em produção os logs saem
// em JSON, em desenvolvimento em texto. Nível inválido cai para info e o erro
// é devolvido para quem chamou decidir se avisa.
func Configure(out io.Writer, level string) (logrus.Level, error) {
	if out != nil {
		logrus.SetOutput(out)
	}

	if IsDevelopment() {
		logrus.SetFormatter(&logrus.TextFormatter{
			FullTimestamp:   true,
			TimestampFormat: time.RFC3339,
		})
	} else {
		logrus.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339})
	}

	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		parsed = logrus.InfoLevel
	}
	logrus.SetLevel(parsed)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}

	return parsed, err
}

// SetupTestLogger configura um logger simplificado para testes
func SetupTestLogger() {
	logrus.SetFormatter(&logrus.TextFormatter{PadLevelText: true})
	logrus.SetLevel(logrus.DebugLevel)
	logrus.SetReportCaller(false)

	L = &logger{entry: logrus.NewEntry(logrus.StandardLogger())}
}
