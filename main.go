package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/sandy14795/Intelligent-AI-Teeko-player/internal/teeko/cmd"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	logrus.SetLevel(logrus.InfoLevel)

	if err := teeko(); err != nil {
		logrus.Fatal(err)
	}
}

func teeko() error {
	root := cmd.Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
