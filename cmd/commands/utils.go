package commands

import (
	"fmt"
	"os"

	"celebra/pkg/logger"
)

func ExitOnError(err error) {
	logger.Error("celebra error", "err", err.Error())
	os.Exit(1)
}

func HandleHelp(_ []string) {
	fmt.Println("usage: celebra <command>") //nolint
	fmt.Println("commands:")                //nolint
	fmt.Println("  run <config path>  start the service")
	fmt.Println("  version            print the version")
	fmt.Println("  help               print this help")
}
