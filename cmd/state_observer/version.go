package main

import (
	"fmt"
	"os"

	"github.com/selectdb/state_observer/pkg/version"
)

func printVersion() {
	fmt.Println(version.GetVersion())
	os.Exit(0)
}

func getVersion() string {
	return version.GetVersion()
}
