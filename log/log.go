package log

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

// InitLog tees log output to stdout and logPath so the server and the
// one-shot check command share one trail.
func InitLog(logPath string) {
	if logPath == "" {
		logPath = "./scout.log"
	}

	file, err := os.OpenFile(logPath, os.O_WRONLY|os.O_APPEND|os.O_CREATE, 0666)
	if err != nil {
		logrus.Fatal(err)
	}
	logrus.SetOutput(io.MultiWriter(os.Stdout, file))
}
