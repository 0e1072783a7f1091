// Atlaspack packs sprite images into texture atlases.
//
// Build:
//
//	go build -o atlaspack ./cmd/atlaspack
//
// Cross-compile:
//
//	GOOS=windows GOARCH=amd64 go build -o atlaspack.exe ./cmd/atlaspack
//	GOOS=darwin  GOARCH=arm64 go build -o atlaspack-darwin ./cmd/atlaspack
//
// Version information is injected at build time:
//
//	go build -ldflags "-X main.version=v1.0.0 -X main.commit=$(git rev-parse --short HEAD) -X main.date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/atlaspack
package main

import (
	"os"

	"github.com/piwi3910/atlaspack/internal/cli"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cli.SetVersion(version, commit, date)
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
