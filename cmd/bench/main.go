// Bench compares weapon builds headlessly.
// Usage: bench [--plain] <build> [<build> ...]
// A build is "weapon:pick,pick,..." where a pick is a card id or +count,
// +damage, +range, +cooldown.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/1siamBot/stackfire/engine/weapons"
)

func main() {
	cfg, err := LoadConfig(nil)
	if err != nil {
		log.Fatal(err)
	}
	cat, err := weapons.LoadCatalog()
	if err != nil {
		log.Fatal(err)
	}

	var builds []weapons.Build
	for _, arg := range os.Args[1:] {
		if arg == "--plain" {
			cfg.Plain = true
			continue
		}
		b, err := cat.ParseBuild(arg)
		if err != nil {
			log.Fatal(err)
		}
		builds = append(builds, b)
	}
	if len(builds) == 0 {
		fmt.Fprintf(os.Stderr, "Usage: bench [--plain] <build> [<build> ...]\n")
		os.Exit(1)
	}

	results, err := RunAll(builds, cfg)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Print(Render(results, cfg.Plain))
}
