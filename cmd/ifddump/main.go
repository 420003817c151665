package main

import (
	"errors"
	"os"

	"greg-hacke/go-ifd/exif"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		if errors.Is(err, exif.ErrNotFound) {
			os.Exit(exitNotFound)
		}
		os.Exit(exitUserError)
	}
}
