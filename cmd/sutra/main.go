// sutra maps free-form English onto annotated Sanskrit tokens, preferring
// multi-word phrase matches for compression and falling back to a reversible
// character transliteration so no input word is ever dropped.
package main

import (
	"os"

	"github.com/corey/sutra/cmd/sutra/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
