package feed

import (
	"bytes"
	"fmt"

	"github.com/mmcdole/gofeed"
)

// Verify re-parses generated feed XML with the same parser the RSS ecosystem
// uses and returns the item count. A feed it rejects would also be rejected
// by podcast directory crawlers.
func Verify(data []byte) (int, error) {
	parsed, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		return 0, fmt.Errorf("generated feed does not parse: %w", err)
	}
	return len(parsed.Items), nil
}
