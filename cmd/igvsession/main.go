// Copyright © 2018 One Concern

package main

import (
	"github.com/oneconcern/igvsession/cmd/igvsession/cmd"
)

func main() {
	cmd.Execute()
}
