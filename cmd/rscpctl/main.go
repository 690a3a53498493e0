// rscpctl queries E3/DC storage controllers over their local RSCP interface.
package main

import "os"

func main() {
	if err := Execute(); err != nil {
		os.Exit(1)
	}
}
