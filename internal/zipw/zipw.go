// Package zipw implements spec.md §4.5's minimal, pure-code, STORE-method
// ZIP writer: no compression, no ZIP64, exactly the fields XLSX packages
// need. adnsv-go-xl's ZipStorage (zfs.go) wraps stdlib archive/zip instead;
// spec.md §1 calls out the ZIP writer as its own component that must be
// pure code, so this package replaces that approach rather than adapting
// it — see DESIGN.md's "Dropped teacher/pack dependencies".
package zipw

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"time"
)

const (
	localHeaderSig  = 0x04034b50
	centralDirSig   = 0x02014b50
	endOfCentralSig = 0x06054b50

	versionNeeded = 20
	methodStore   = 0
)

// Entry is one file to place in the archive.
type Entry struct {
	Path    string
	Data    []byte
	ModTime time.Time // zero value means "now"
}

type centralRecord struct {
	name       string
	crc        uint32
	size       uint32
	dosTime    uint16
	dosDate    uint16
	localOffset uint32
}

// Writer accumulates entries and renders them into a ZIP byte stream.
// Entries are written in the order Add is called; spec.md §4.5 requires
// [Content_Types].xml first by convention, which ooxml.Assemble enforces by
// returning it as the first part; book.go calls Add in that order.
type Writer struct {
	buf      bytes.Buffer
	central  []centralRecord
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer { return &Writer{} }

// Add appends one entry's local file header and payload, recording what
// the central directory will need once Bytes is called.
func (w *Writer) Add(e Entry) {
	modTime := e.ModTime
	if modTime.IsZero() {
		modTime = time.Now()
	}
	dosDate, dosTime := toDOSDateTime(modTime)
	crc := crc32.ChecksumIEEE(e.Data)
	size := uint32(len(e.Data))
	name := normalizePath(e.Path)

	offset := uint32(w.buf.Len())

	var hdr [30]byte
	binary.LittleEndian.PutUint32(hdr[0:4], localHeaderSig)
	binary.LittleEndian.PutUint16(hdr[4:6], versionNeeded)
	binary.LittleEndian.PutUint16(hdr[6:8], 0) // flags
	binary.LittleEndian.PutUint16(hdr[8:10], methodStore)
	binary.LittleEndian.PutUint16(hdr[10:12], dosTime)
	binary.LittleEndian.PutUint16(hdr[12:14], dosDate)
	binary.LittleEndian.PutUint32(hdr[14:18], crc)
	binary.LittleEndian.PutUint32(hdr[18:22], size) // compressed size == size (STORE)
	binary.LittleEndian.PutUint32(hdr[22:26], size)
	binary.LittleEndian.PutUint16(hdr[26:28], uint16(len(name)))
	binary.LittleEndian.PutUint16(hdr[28:30], 0) // extra length

	w.buf.Write(hdr[:])
	w.buf.WriteString(name)
	w.buf.Write(e.Data)

	w.central = append(w.central, centralRecord{
		name:       name,
		crc:        crc,
		size:       size,
		dosTime:    dosTime,
		dosDate:    dosDate,
		localOffset: offset,
	})
}

// Bytes finalizes the archive: local entries (already buffered by Add),
// followed by the central directory, followed by the end-of-central-
// directory record, exactly as spec.md §4.5 specifies.
func (w *Writer) Bytes() []byte {
	out := bytes.Buffer{}
	out.Write(w.buf.Bytes())

	centralStart := uint32(out.Len())
	for _, c := range w.central {
		var hdr [46]byte
		binary.LittleEndian.PutUint32(hdr[0:4], centralDirSig)
		binary.LittleEndian.PutUint16(hdr[4:6], versionNeeded) // version made by
		binary.LittleEndian.PutUint16(hdr[6:8], versionNeeded) // version needed
		binary.LittleEndian.PutUint16(hdr[8:10], 0)            // flags
		binary.LittleEndian.PutUint16(hdr[10:12], methodStore)
		binary.LittleEndian.PutUint16(hdr[12:14], c.dosTime)
		binary.LittleEndian.PutUint16(hdr[14:16], c.dosDate)
		binary.LittleEndian.PutUint32(hdr[16:20], c.crc)
		binary.LittleEndian.PutUint32(hdr[20:24], c.size)
		binary.LittleEndian.PutUint32(hdr[24:28], c.size)
		binary.LittleEndian.PutUint16(hdr[28:30], uint16(len(c.name)))
		binary.LittleEndian.PutUint16(hdr[30:32], 0) // extra length
		binary.LittleEndian.PutUint16(hdr[32:34], 0) // comment length
		binary.LittleEndian.PutUint16(hdr[34:36], 0) // disk number start
		binary.LittleEndian.PutUint16(hdr[36:38], 0) // internal attrs
		binary.LittleEndian.PutUint32(hdr[38:42], 0) // external attrs
		binary.LittleEndian.PutUint32(hdr[42:46], c.localOffset)

		out.Write(hdr[:])
		out.WriteString(c.name)
	}
	centralSize := uint32(out.Len()) - centralStart

	var eocd [22]byte
	binary.LittleEndian.PutUint32(eocd[0:4], endOfCentralSig)
	binary.LittleEndian.PutUint16(eocd[4:6], 0)                      // disk number
	binary.LittleEndian.PutUint16(eocd[6:8], 0)                      // disk with central dir
	binary.LittleEndian.PutUint16(eocd[8:10], uint16(len(w.central))) // entries on this disk
	binary.LittleEndian.PutUint16(eocd[10:12], uint16(len(w.central)))
	binary.LittleEndian.PutUint32(eocd[12:16], centralSize)
	binary.LittleEndian.PutUint32(eocd[16:20], centralStart)
	binary.LittleEndian.PutUint16(eocd[20:22], 0) // comment length
	out.Write(eocd[:])

	return out.Bytes()
}

// normalizePath forces forward slashes and strips a leading slash, per
// spec.md §4.5's "filenames use forward slashes" invariant.
func normalizePath(p string) string {
	b := []byte(p)
	for i, c := range b {
		if c == '\\' {
			b[i] = '/'
		}
	}
	s := string(b)
	for len(s) > 0 && s[0] == '/' {
		s = s[1:]
	}
	return s
}

// toDOSDateTime converts t to MS-DOS date/time fields as local time, the
// format ZIP local headers require.
func toDOSDateTime(t time.Time) (date, dtime uint16) {
	t = t.Local()
	date = uint16((t.Year()-1980)<<9 | int(t.Month())<<5 | t.Day())
	dtime = uint16(t.Hour()<<11 | t.Minute()<<5 | t.Second()/2)
	return date, dtime
}
