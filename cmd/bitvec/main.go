package main

import (
	"fmt"
	"os"

	"github.com/NethermindEth/bitvec/utils"
)

func main() {
	if err := NewCmd(newZapLogger).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}

func newZapLogger(level utils.LogLevel, colour bool) (utils.SimpleLogger, error) {
	log, err := utils.NewZapLogger(level, colour)
	if err != nil {
		return nil, err
	}
	return log, nil
}
