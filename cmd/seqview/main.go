// Command seqview prints bounded and predicate-terminated views of line
// streams and ordered key/value stores.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
