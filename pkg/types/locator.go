package types

// Locator is an opaque address the dynamic loader can resolve to loadable
// code: an archive file or a directory of loadable material. Once added to a
// loader it is owned by the loader's registry and never removed.
type Locator struct {
	// URL is the file-URL form of the address, e.g.
	// file:///opt/app/lib/codec.jar. Directory locators carry a trailing
	// slash so consumers can tell them apart from archives.
	URL string

	// Path is the filesystem path the URL was built from, after any
	// platform normalization. This is the form appended to the ambient
	// search-path string.
	Path string
}

// String returns the URL form.
func (l Locator) String() string {
	return l.URL
}
