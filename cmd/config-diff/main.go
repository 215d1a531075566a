// Command config-diff compares two configuration files and reports their
// structural difference as Markdown or JSON (spec.md §6).
package main

import (
	"os"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := Execute(); err != nil {
		logrus.WithError(err).Error("config-diff failed")
		os.Exit(2)
	}
}
