package main

import (
	"errors"
	"fmt"
	"os"

	"searchbox/internal/matcher"
)

func main() {
	if err := Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		if errors.Is(err, matcher.ErrInvalidQuery) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}
