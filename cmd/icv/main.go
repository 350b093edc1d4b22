// icv - Visual load index for UI colour palettes
//
// icv scores how much eye strain a four colour UI palette is likely to cause
// and corrects palettes toward accessible contrast.
package main

import (
	"github.com/jmylchreest/icv/internal/cli"
)

func main() {
	cli.Execute()
}
