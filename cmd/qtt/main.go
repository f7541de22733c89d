// Command qtt plans A→B→C→A mission cycles over a weighted state machine,
// from inline edges, from a planning document, or as an HTTP service.
package main

import "os"

func main() {
	os.Exit(Execute())
}
