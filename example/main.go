// Example program demonstrating the go-pushdelta library API.
//
// Run from the repo root:
//
//	go run ./example/
//
// Pass a path to inspect another repository:
//
//	go run ./example/ ../some-repo
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/MyCarrier-DevOps/go-pushdelta/pkg/sdk"
)

func main() {
	path := "."
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	result, err := sdk.Detect(sdk.Options{
		Path:    path,
		Explain: true,
	})
	if err != nil {
		log.Fatalf("detection failed: %v", err)
	}

	printDelta(result)
}

func printDelta(result *sdk.Result) {
	fmt.Println("=== Unpublished commits ===")
	for _, c := range result.Delta.Commits {
		fmt.Printf("%s %s\n", c.ShortSha(), c.Subject())
	}
	fmt.Println()

	fmt.Println("=== Variables ===")
	for _, kv := range result.Environ() {
		fmt.Println(kv)
	}
	fmt.Println()

	fmt.Print(result.ExplainResult.FormattedOutput)
}
