// Package identify assigns file type tags to paths. Hooks select files by
// these tags through types, types_or and exclude_types.
package identify

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Tags is a set of file type tags.
type Tags map[string]struct{}

// Has reports whether tag is in the set.
func (t Tags) Has(tag string) bool {
	_, ok := t[tag]
	return ok
}

// Sorted returns the tags in lexical order.
func (t Tags) Sorted() []string {
	out := make([]string, 0, len(t))
	for tag := range t {
		out = append(out, tag)
	}
	sort.Strings(out)
	return out
}

func (t Tags) add(tags ...string) {
	for _, tag := range tags {
		t[tag] = struct{}{}
	}
}

// Type tags.
const (
	TagFile          = "file"
	TagDirectory     = "directory"
	TagSymlink       = "symlink"
	TagExecutable    = "executable"
	TagNonExecutable = "non-executable"
	TagText          = "text"
	TagBinary        = "binary"
)

// sniffLen is how much of a file is read when deciding text or binary.
const sniffLen = 8 * 1024

var known = func() map[string]struct{} {
	set := map[string]struct{}{}
	for _, t := range []string{TagFile, TagDirectory, TagSymlink, TagExecutable, TagNonExecutable, TagText, TagBinary} {
		set[t] = struct{}{}
	}
	for _, group := range []map[string][]string{extensions, names, interpreters} {
		for _, tags := range group {
			for _, t := range tags {
				set[t] = struct{}{}
			}
		}
	}
	return set
}()

// IsKnownTag reports whether tag can ever be assigned to a path.
func IsKnownTag(tag string) bool {
	_, ok := known[tag]
	return ok
}

// KnownTags returns the full tag vocabulary in lexical order.
func KnownTags() []string {
	out := make([]string, 0, len(known))
	for t := range known {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// TagsForName returns the tags implied by a file name alone.
func TagsForName(path string) Tags {
	tags := Tags{}
	base := filepath.Base(path)
	if t, ok := names[base]; ok {
		tags.add(t...)
		return tags
	}
	ext := strings.TrimPrefix(filepath.Ext(base), ".")
	if t, ok := extensions[strings.ToLower(ext)]; ok {
		tags.add(t...)
	}
	return tags
}

// Identify returns the tags for a path on disk.
func Identify(path string) (Tags, error) {
	info, err := os.Lstat(path)
	if err != nil {
		return nil, err
	}

	tags := Tags{}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		tags.add(TagSymlink)
		return tags, nil
	case info.IsDir():
		tags.add(TagDirectory)
		return tags, nil
	case !info.Mode().IsRegular():
		return tags, nil
	}

	tags.add(TagFile)
	executable := info.Mode().Perm()&0o111 != 0
	if executable {
		tags.add(TagExecutable)
	} else {
		tags.add(TagNonExecutable)
	}

	byName := TagsForName(path)
	for t := range byName {
		tags.add(t)
	}

	if !byName.Has(TagText) && !byName.Has(TagBinary) {
		head, err := readHead(path)
		if err != nil {
			return nil, err
		}
		if IsText(head) {
			tags.add(TagText)
			if executable {
				tags.add(shebangTags(head)...)
			}
		} else {
			tags.add(TagBinary)
		}
	}
	return tags, nil
}

// IsText reports whether the sniffed bytes look like text. A NUL byte marks
// binary content.
func IsText(head []byte) bool {
	return bytes.IndexByte(head, 0) < 0
}

func readHead(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	buf := make([]byte, sniffLen)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return nil, err
	}
	return buf[:n], nil
}

func shebangTags(head []byte) []string {
	if !bytes.HasPrefix(head, []byte("#!")) {
		return nil
	}
	line := string(head[2:])
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	interp := filepath.Base(fields[0])
	if interp == "env" {
		// Skip env flags such as -S.
		for _, f := range fields[1:] {
			if !strings.HasPrefix(f, "-") {
				interp = f
				break
			}
		}
	}
	return interpreters[interp]
}
