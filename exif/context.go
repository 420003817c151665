// File: exif/context.go

package exif

// Context is the immutable per-frame traversal descriptor. Namespace
// governs ownership and priority; Group1 is the human-facing directory
// label. The two are independent: a tag decoded in the ExifIFD carries
// group1 "ExifIFD" but still belongs to the "EXIF" namespace, so it
// outranks a same-named maker note tag.
type Context struct {
	Namespace string
	Group1    string
	Depth     int

	// offset is the absolute directory offset this frame decodes.
	// parent links the frames of the current descent, forming the
	// visited-offset chain for per-branch cycle detection.
	offset uint32
	parent *Context
}

// rootContext opens the descent at the primary image directory
func rootContext(offset uint32) Context {
	return Context{Namespace: "EXIF", Group1: "IFD0", offset: offset}
}

// child derives the frame for a nested directory. The parent chain is
// shared structurally, never mutated, so sibling subtrees cannot
// interfere with each other's cycle detection.
func (c Context) child(namespace, group1 string, offset uint32) Context {
	parent := c
	return Context{
		Namespace: namespace,
		Group1:    group1,
		Depth:     c.Depth + 1,
		offset:    offset,
		parent:    &parent,
	}
}

// visited reports whether offset appears in this frame or any ancestor
func (c Context) visited(offset uint32) bool {
	for f := &c; f != nil; f = f.parent {
		if f.offset == offset {
			return true
		}
	}
	return false
}

// group1ForTag applies the fixed group overrides: a handful of tags
// belong to a specific directory context no matter where they were
// decoded. Prevents maker note processing from stealing ExifIFD tags
// such as ColorSpace.
func group1ForTag(tag uint16, ctx Context) string {
	switch tag {
	case 0x9000, 0xA000, 0xA001, 0xA002, 0xA003, 0xA005:
		if ctx.Namespace == "EXIF" {
			return "ExifIFD"
		}
	case 0x8825:
		if ctx.Namespace == "EXIF" || ctx.Namespace == "GPS" {
			return "GPS"
		}
	}
	return ctx.Group1
}
