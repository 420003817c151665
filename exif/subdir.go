// File: exif/subdir.go

package exif

import (
	"fmt"

	"greg-hacke/go-ifd/maker"
	"greg-hacke/go-ifd/tags"
	"greg-hacke/go-ifd/tiff"
)

// Handler decodes one kind of subdirectory reached through a pointer
// tag. Handlers are consulted in registration order; the first one
// claiming the tag wins.
type Handler interface {
	CanHandle(tag uint16, ctx Context) bool
	Decode(r *Reader, entry tiff.Entry, ctx Context) error
}

// defaultHandlers builds the standard subdirectory set from the EXIF
// table's SubIFD declarations: ExifIFD, GPS, Interop, and maker notes.
// Pointer tags only dispatch from the EXIF namespace; the same tag id
// inside a maker directory is an ordinary manufacturer tag.
func defaultHandlers() []Handler {
	var handlers []Handler
	for _, p := range tags.PointerTags("EXIF") {
		switch p.SubIFD {
		case "MakerNotes":
			handlers = append(handlers, makerNotesHandler{})
		case "GPS":
			handlers = append(handlers, &ifdPointerHandler{tag: p.ID, namespace: "GPS", group1: p.SubIFD})
		default:
			// ExifIFD, InteropIFD: nested standard directories keep the
			// EXIF namespace
			handlers = append(handlers, &ifdPointerHandler{tag: p.ID, namespace: "EXIF", group1: p.SubIFD})
		}
	}
	return handlers
}

// handlerFor returns the first handler claiming the tag, or nil
func (r *Reader) handlerFor(tag uint16, ctx Context) Handler {
	for _, h := range r.handlers {
		if h.CanHandle(tag, ctx) {
			return h
		}
	}
	return nil
}

// ifdPointerHandler decodes a standard-layout nested IFD behind a
// Long pointer tag
type ifdPointerHandler struct {
	tag       uint16
	namespace string
	group1    string
}

func (h *ifdPointerHandler) CanHandle(tag uint16, ctx Context) bool {
	return tag == h.tag && ctx.Namespace == "EXIF"
}

func (h *ifdPointerHandler) Decode(r *Reader, entry tiff.Entry, ctx Context) error {
	offset, err := pointerTarget(entry)
	if err != nil {
		return err
	}
	child := ctx.child(h.namespace, h.group1, offset)
	return r.descend(offset, child)
}

// makerNotesHandler dispatches tag 0x927C to a manufacturer layout.
// The manufacturer namespace is fixed at dispatch time and carried by
// the child context for the whole descent; nested maker subdirectories
// cannot clobber it with a generic label.
type makerNotesHandler struct{}

func (makerNotesHandler) CanHandle(tag uint16, ctx Context) bool {
	return tag == 0x927C && ctx.Namespace == "EXIF"
}

func (makerNotesHandler) Decode(r *Reader, entry tiff.Entry, ctx Context) error {
	if entry.Inline {
		// Too small to hold a note structure; keep the bytes opaque
		return storeOpaqueNote(r, entry, ctx)
	}

	layout, ok := maker.Identify(r.data, entry.Offset, entry.Count, r.base, r.cameraMake, r.order)
	if !ok {
		// Unrecognized manufacturer: store the raw note, never fail
		return storeOpaqueNote(r, entry, ctx)
	}

	order := layout.Order
	if order == nil {
		order = r.order
	}

	r.log.Debug("maker notes", "namespace", layout.Namespace,
		"ifd", fmt.Sprintf("%#x", layout.IFDOffset), "base", fmt.Sprintf("%#x", layout.Base))

	child := ctx.child(layout.Namespace, layout.Group1, layout.IFDOffset)
	return r.descendWith(layout.IFDOffset, child, order, layout.Base)
}

// storeOpaqueNote keeps an undecodable maker note as raw bytes under
// the generic MakerNotes namespace
func storeOpaqueNote(r *Reader, entry tiff.Entry, ctx Context) error {
	value, err := tiff.Value(r.data, entry, r.order)
	if err != nil {
		return err
	}
	r.store.Put(entry.Tag, "MakerNotes", "MakerNotes", "MakerNote", value)
	return nil
}

// pointerTarget extracts the subdirectory offset from a pointer entry
func pointerTarget(entry tiff.Entry) (uint32, error) {
	switch entry.Format {
	case tiff.FormatLong, tiff.FormatIFD:
		if entry.Count != 1 {
			return 0, fmt.Errorf("%w: pointer tag with count %d", tiff.ErrMalformed, entry.Count)
		}
		return entry.ValueOffset, nil
	default:
		return 0, fmt.Errorf("%w: pointer tag with format %s", tiff.ErrMalformed, entry.Format)
	}
}
