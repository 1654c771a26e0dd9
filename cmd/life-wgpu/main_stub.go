//go:build !wgpu

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The WebGPU build of golife requires the wgpu build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags wgpu ./cmd/life-wgpu` or build with `-tags wgpu`.")
	os.Exit(2)
}
