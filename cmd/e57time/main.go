// Command e57time converts timestamps between UTC, Julian Date, and GPS
// time.
package main

import "github.com/opene57/e57time/internal/cli"

func main() {
	cli.Execute()
}
