package main

import (
	"github.com/sirupsen/logrus"

	"github.com/obadiaha/safe-trade-scout-v2/cmd"
)

func main() {
	defer func() {
		if panicResp := recover(); panicResp != nil {
			logrus.Errorf("got an panic err: %v", panicResp)
		}
	}()
	cmd.Execute()
}
