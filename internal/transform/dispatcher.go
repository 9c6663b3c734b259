// Package transform executes catalog operations on text. Every transform is a
// pure function from string to string; failures are reported as *Error and
// never produce partial output.
package transform

import (
	"fmt"
	"sort"
	"sync"

	"github.com/zjrosen/xroot/internal/log"
	"github.com/zjrosen/xroot/internal/operation"
)

// Func is a single text transform.
type Func func(input string) (string, error)

// Options tune the parameterised ciphers.
type Options struct {
	CaesarShift int
	XORKey      string
}

// DefaultOptions returns the stock cipher parameters.
func DefaultOptions() Options {
	return Options{CaesarShift: 3, XORKey: "XrooT"}
}

// Dispatcher maps operation IDs to transforms. It is immutable after New and
// safe for concurrent use.
type Dispatcher struct {
	catalog *operation.Catalog
	funcs   map[string]Func
}

func builtins(opts Options) map[string]Func {
	return map[string]Func{
		operation.ToBase64:     toBase64,
		operation.FromBase64:   fromBase64,
		operation.URLEncode:    urlEncode,
		operation.URLDecode:    urlDecode,
		operation.ToHex:        toHex,
		operation.FromHex:      fromHex,
		operation.HTMLEncode:   htmlEncode,
		operation.HTMLDecode:   htmlDecode,
		operation.MD5:          pseudoMD5,
		operation.SHA256:       pseudoSHA256,
		operation.CRC32:        crc32Checksum,
		operation.CaesarCipher: caesar(opts.CaesarShift),
		operation.ROT13:        rot13,
		operation.XORCipher:    xorCipher(opts.XORKey),
		operation.Reverse:      reverse,
		operation.ToUpper:      toUpper,
		operation.ToLower:      toLower,
		operation.RemoveSpaces: removeSpaces,
		operation.JSONPretty:   jsonPretty,
		operation.JSONMinify:   jsonMinify,
	}
}

// New builds a dispatcher for catalog. Every catalog ID must have a built-in
// transform and every built-in must appear in the catalog.
func New(catalog *operation.Catalog, opts Options) (*Dispatcher, error) {
	if opts.XORKey == "" {
		return nil, fmt.Errorf("xor key must not be empty")
	}
	return newDispatcher(catalog, builtins(opts))
}

func newDispatcher(catalog *operation.Catalog, funcs map[string]Func) (*Dispatcher, error) {
	var missing []string
	for _, d := range catalog.List() {
		if _, ok := funcs[d.ID]; !ok {
			missing = append(missing, d.ID)
		}
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("operations without a transform: %v", missing)
	}
	if len(funcs) != catalog.Len() {
		var extra []string
		for id := range funcs {
			if _, ok := catalog.Lookup(id); !ok {
				extra = append(extra, id)
			}
		}
		sort.Strings(extra)
		return nil, fmt.Errorf("transforms without a catalog entry: %v", extra)
	}
	return &Dispatcher{catalog: catalog, funcs: funcs}, nil
}

var defaultDispatcher = sync.OnceValue(func() *Dispatcher {
	d, err := New(operation.Default(), DefaultOptions())
	if err != nil {
		panic(fmt.Sprintf("transform: default registry out of sync with catalog: %v", err))
	}
	return d
})

// Default returns the process-wide dispatcher over the built-in catalog.
func Default() *Dispatcher {
	return defaultDispatcher()
}

// Catalog returns the catalog the dispatcher serves.
func (d *Dispatcher) Catalog() *operation.Catalog {
	return d.catalog
}

// Execute runs operation id over input. On failure the output is "".
func (d *Dispatcher) Execute(id, input string) (string, error) {
	fn, ok := d.funcs[id]
	if !ok {
		err := &Error{Kind: KindUnknownOperation, Op: id, Msg: "Unknown operation"}
		log.Error(log.CatTransform, "unknown operation", "op", id)
		return "", err
	}

	out, err := fn(input)
	if err != nil {
		if te, ok := err.(*Error); ok && te.Op == "" {
			te.Op = id
		}
		log.Debug(log.CatTransform, "transform failed", "op", id, "kind", KindOf(err), "error", err)
		return "", err
	}
	log.Debug(log.CatTransform, "transform ok", "op", id, "in", len(input), "out", len(out))
	return out, nil
}
