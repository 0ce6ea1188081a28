package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	logrus.SetOutput(os.Stderr)

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
