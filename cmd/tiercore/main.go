// Command tiercore verifies core stability of tiered coalition structures
// described in YAML scenario files.
package main

func main() {
	Execute()
}
