// File: maker/canon.go

package maker

// Canon maker notes have no header: the note is a bare IFD in the
// container's byte order, with value offsets relative to the container
// base. Some models append an 8-byte footer carrying a TIFF signature
// and the note's original offset; it sits past the IFD and needs no
// trimming here because the cursor never reads beyond the entry table.
func canonLayout(noteOffset, base uint32) Layout {
	return Layout{
		Namespace: string(Canon),
		Group1:    string(Canon),
		IFDOffset: noteOffset,
		Base:      base,
	}
}
