package wirehttp

import (
	"encoding/base64"
	"io"
	"mime/quotedprintable"
	"strings"
)

// DecoderFunc turns a raw body stream into a decoded one.
type DecoderFunc func(io.Reader) io.Reader

func identityDecoder(r io.Reader) io.Reader { return r }

// Registry of content-transfer-encoding decoders, keyed by lower-cased
// encoding name. Like the rest of the package this is single-threaded state;
// register decoders before issuing requests.
var decoders = map[string]DecoderFunc{
	"base64": func(r io.Reader) io.Reader {
		return base64.NewDecoder(base64.StdEncoding, r)
	},
	"quoted-printable": func(r io.Reader) io.Reader {
		return quotedprintable.NewReader(r)
	},
	"7bit":     identityDecoder,
	"8bit":     identityDecoder,
	"binary":   identityDecoder,
	"identity": identityDecoder,
}

// RegisterDecoder installs (or replaces) the decoder for an encoding name.
func RegisterDecoder(name string, fn DecoderFunc) {
	decoders[strings.ToLower(name)] = fn
}

func decodeBody(r io.Reader, encoding string) (io.Reader, error) {
	fn, ok := decoders[strings.ToLower(strings.TrimSpace(encoding))]
	if !ok {
		return nil, Newf(ErrUnknownEncoding, "no decoder for %q", encoding)
	}
	return fn(r), nil
}
