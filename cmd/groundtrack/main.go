// Command groundtrack propagates a TLE with SGP4 and reports the resulting
// states in an Earth-fixed (or any other supported) reference frame.
package main

func main() {
	Execute()
}
