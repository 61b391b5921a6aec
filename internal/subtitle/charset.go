package subtitle

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/gogs/chardet"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/transform"
)

var utf8BOM = []byte{0xef, 0xbb, 0xbf}

// toUTF8 returns data as UTF-8 along with the charset it was decoded from.
// Valid UTF-8 is passed through untouched.
func toUTF8(data []byte) ([]byte, string, error) {
	data = bytes.TrimPrefix(data, utf8BOM)
	if len(data) == 0 || utf8.Valid(data) {
		return data, "UTF-8", nil
	}

	result, err := chardet.NewTextDetector().DetectBest(data)
	if err != nil {
		return nil, "", fmt.Errorf("detect charset: %w", err)
	}

	encoding, err := ianaindex.MIB.Encoding(result.Charset)
	if err != nil {
		return nil, "", fmt.Errorf("unsupported charset %s: %w", result.Charset, err)
	}
	if encoding == nil {
		return nil, "", fmt.Errorf("unsupported charset %s", result.Charset)
	}

	transformed, err := io.ReadAll(
		transform.NewReader(bytes.NewReader(data), encoding.NewDecoder()),
	)
	if err != nil {
		return nil, "", fmt.Errorf("decode %s: %w", result.Charset, err)
	}
	return bytes.TrimPrefix(transformed, utf8BOM), result.Charset, nil
}
