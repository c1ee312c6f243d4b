package main

import (
	"os"

	"luxride/internal/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		utils.Log.WithError(err).Error("command failed")
		os.Exit(1)
	}
}
