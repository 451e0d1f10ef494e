// Command roam walks entry collections as small terminal worlds
package main

import (
	"context"
	"os"

	"github.com/lixenwraith/roam/core"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()

	if err := NewRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
