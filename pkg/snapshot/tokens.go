// File: pkg/snapshot/tokens.go
package snapshot

import (
	"fmt"

	tiktoken "github.com/pkoukk/tiktoken-go"
)

// tokenEncoding is the BPE encoding used for the snapshot token count.
const tokenEncoding = "cl100k_base"

// CountTokens returns the number of tokens the snapshot occupies under the
// cl100k_base encoding, a rough measure of how much LLM context it consumes.
func CountTokens(text string) (int, error) {
	encoding, err := tiktoken.GetEncoding(tokenEncoding)
	if err != nil {
		return 0, fmt.Errorf("failed to load %s encoding: %w", tokenEncoding, err)
	}
	return len(encoding.EncodeOrdinary(text)), nil
}
