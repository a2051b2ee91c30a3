package main

import (
	"os"

	"github.com/Benchkram/errz"
	"github.com/puppetlabs/dateto/cmd"
	"github.com/puppetlabs/dateto/config"
)

func main() {
	errz.Fatal(config.Load(), "Failed to load dateto's config")

	os.Exit(cmd.Execute())
}
