package main

import (
	"context"
	"os"

	"github.com/realworld-conformance/hurl2bruno/internal/cmd"
	"go.followtheprocess.codes/msg"
)

func main() {
	command, err := cmd.Build(context.Background())
	if err != nil {
		msg.Error("%v", err)
		os.Exit(1)
	}

	if err := command.Execute(); err != nil {
		msg.Error("%v", err)
		os.Exit(1)
	}
}
