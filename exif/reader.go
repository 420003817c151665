// File: exif/reader.go

package exif

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"greg-hacke/go-ifd/tags"
	"greg-hacke/go-ifd/tiff"
)

// DefaultMaxDepth bounds directory recursion. Real files nest four or
// five levels; anything past ten is hostile or broken input.
const DefaultMaxDepth = 10

// maxChainedIFDs bounds the IFD0 -> IFD1 -> ... next-IFD chain
const maxChainedIFDs = 10

// Options configures a parse session
type Options struct {
	// MaxDepth overrides DefaultMaxDepth when > 0
	MaxDepth int
	// Logger receives traversal tracing; defaults to a discard logger
	Logger *log.Logger
}

// Result is the outcome of one parse: the tag store plus all contained
// diagnostics. A parse always returns a (possibly partial) tag set;
// only an unreadable root header fails outright.
type Result struct {
	*Store
	Diagnostics []error
	ByteOrder   binary.ByteOrder
}

// Reader walks one TIFF-structured metadata segment. Owned by a single
// parse session; never shared across goroutines.
type Reader struct {
	data     []byte
	order    binary.ByteOrder
	base     uint32
	store    *Store
	diags    []error
	maxDepth int
	log      *log.Logger
	handlers []Handler

	// cameraMake holds the IFD0 Make tag once decoded, for maker
	// note dispatch
	cameraMake string
}

// Parse decodes the TIFF segment in data and returns the stored tags.
// data must start with the TIFF byte-order header; stored offsets are
// resolved relative to the start of data.
func Parse(data []byte, opts Options) (*Result, error) {
	maxDepth := opts.MaxDepth
	if maxDepth <= 0 {
		maxDepth = DefaultMaxDepth
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Reader{
		data:     data,
		store:    NewStore(),
		maxDepth: maxDepth,
		log:      logger,
		handlers: defaultHandlers(),
	}

	order, ifdOffset, err := parseHeader(data)
	if err != nil {
		return nil, err
	}
	r.order = order

	// Walk the chained main IFDs (IFD0, IFD1 thumbnail, ...)
	offset := ifdOffset
	seen := map[uint32]bool{}
	for n := 0; offset != 0 && n < maxChainedIFDs; n++ {
		if seen[offset] {
			r.diag(fmt.Errorf("%w: IFD%d chain revisits offset %#x", ErrCyclicReference, n, offset))
			break
		}
		seen[offset] = true

		ctx := rootContext(offset)
		if n > 0 {
			ctx.Group1 = fmt.Sprintf("IFD%d", n)
		}

		next, err := r.walkIFD(offset, ctx, r.order, r.base)
		if err != nil {
			if n == 0 {
				// Unreadable root directory header: the one hard failure
				return nil, err
			}
			r.diag(err)
			break
		}
		offset = next
	}

	return &Result{
		Store:       r.store,
		Diagnostics: r.diags,
		ByteOrder:   r.order,
	}, nil
}

// parseHeader validates the TIFF byte-order mark and magic and returns
// the first IFD offset
func parseHeader(data []byte) (binary.ByteOrder, uint32, error) {
	if len(data) < 8 {
		return nil, 0, fmt.Errorf("TIFF header too short (%d bytes)", len(data))
	}

	var order binary.ByteOrder
	switch {
	case data[0] == 'I' && data[1] == 'I':
		order = binary.LittleEndian
	case data[0] == 'M' && data[1] == 'M':
		order = binary.BigEndian
	default:
		return nil, 0, fmt.Errorf("invalid TIFF byte order mark %#02x%02x", data[0], data[1])
	}

	if order.Uint16(data[2:4]) != 42 {
		return nil, 0, fmt.Errorf("invalid TIFF magic")
	}

	return order, order.Uint32(data[4:8]), nil
}

// walkIFD decodes one directory under ctx and processes its entries.
// Returns the chained next-IFD offset. Errors are returned only for an
// undecodable directory header; entry-level problems become
// diagnostics.
func (r *Reader) walkIFD(offset uint32, ctx Context, order binary.ByteOrder, base uint32) (uint32, error) {
	dir, diags, err := tiff.DecodeDirectory(r.data, offset, order, base)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ctx.Group1, err)
	}
	for _, d := range diags {
		r.diag(fmt.Errorf("%s: %w", ctx.Group1, d))
	}

	r.log.Debug("directory", "group1", ctx.Group1, "namespace", ctx.Namespace,
		"offset", fmt.Sprintf("%#x", offset), "entries", len(dir.Entries))

	for _, entry := range dir.Entries {
		if h := r.handlerFor(entry.Tag, ctx); h != nil {
			if err := h.Decode(r, entry, ctx); err != nil {
				r.diag(fmt.Errorf("%s: tag %#04x: %w", ctx.Group1, entry.Tag, err))
			}
			continue
		}

		value, err := tiff.Value(r.data, entry, order)
		if err != nil {
			r.diag(fmt.Errorf("%s: tag %#04x: %w", ctx.Group1, entry.Tag, err))
			continue
		}
		r.storeTag(entry.Tag, value, ctx)
	}

	return dir.NextIFD, nil
}

// descend enters a subdirectory with the session's default byte order
// and offset base
func (r *Reader) descend(offset uint32, ctx Context) error {
	return r.descendWith(offset, ctx, r.order, r.base)
}

// descendWith enters a subdirectory, applying the depth and cycle
// guards. Guard failures abort only this subtree: they are recorded as
// diagnostics and the caller's sibling entries continue.
func (r *Reader) descendWith(offset uint32, ctx Context, order binary.ByteOrder, base uint32) error {
	if ctx.Depth > r.maxDepth {
		r.diag(fmt.Errorf("%w: %s at offset %#x (depth %d)", ErrTooDeep, ctx.Group1, offset, ctx.Depth))
		return nil
	}
	if ctx.parent != nil && ctx.parent.visited(offset) {
		r.diag(fmt.Errorf("%w: %s revisits offset %#x", ErrCyclicReference, ctx.Group1, offset))
		return nil
	}

	if _, err := r.walkIFD(offset, ctx, order, base); err != nil {
		r.diag(err)
	}
	return nil
}

// storeTag records a decoded leaf value under the current context
func (r *Reader) storeTag(id uint16, value interface{}, ctx Context) {
	def, known := tags.Lookup(ctx.Namespace, id)
	name := def.Name
	if !known || name == "" {
		name = fmt.Sprintf("Tag_%04X", id)
	}

	group1 := group1ForTag(id, ctx)
	r.store.Put(id, ctx.Namespace, group1, name, value)

	r.log.Debug("stored", "tag", fmt.Sprintf("%#04x", id),
		"name", name, "namespace", ctx.Namespace, "group1", group1)

	// The Make tag drives maker note dispatch later in the walk
	if ctx.Namespace == "EXIF" && id == 0x010F {
		if s, ok := value.(string); ok {
			r.cameraMake = s
		}
	}
}

// diag records a contained failure; nothing here aborts the parse
func (r *Reader) diag(err error) {
	r.diags = append(r.diags, err)
	r.log.Warn("diagnostic", "err", err)
}
