package dictomaton

import (
	"bytes"
	"encoding/binary"
	"encoding/gob"
	"errors"
	"os"
	"syscall"
)

// gobPacked is the exported mirror of packedArrays used purely as a gob
// wire format; packedArrays itself stays unexported so that Dictionary's
// fields cannot be mutated from outside the package, matching the
// "immutable after finalization" invariant of spec.md 3/5.
type gobPacked struct {
	StateOffsets []int
	TransChars   []Char
	TransTo      []int
	FinalStates  []bool
}

type gobPerfectHash struct {
	Packed       gobPacked
	TransNumbers []int
	StartIsFinal bool
	N            int
}

// GobEncode implements gob.GobEncoder, following the reference's pattern of
// hand-rolled Marshal/Unmarshal methods around gob.NewEncoder (model.go,
// vocab.go) rather than relying on gob's automatic struct encoding, which
// cannot see across the unexported packedArrays embedding.
func (d *Dictionary) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(gobPacked{
		StateOffsets: d.stateOffsets,
		TransChars:   d.transChars,
		TransTo:      d.transTo,
		FinalStates:  d.finalStates,
	})
	return buf.Bytes(), err
}

// GobDecode implements gob.GobDecoder.
func (d *Dictionary) GobDecode(data []byte) error {
	var g gobPacked
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return err
	}
	d.packedArrays = packedArrays{
		stateOffsets: g.StateOffsets,
		transChars:   g.TransChars,
		transTo:      g.TransTo,
		finalStates:  g.FinalStates,
	}
	return nil
}

// GobEncode implements gob.GobEncoder for the perfect-hash variant.
func (d *PerfectHashDictionary) GobEncode() ([]byte, error) {
	var buf bytes.Buffer
	err := gob.NewEncoder(&buf).Encode(gobPerfectHash{
		Packed: gobPacked{
			StateOffsets: d.stateOffsets,
			TransChars:   d.transChars,
			TransTo:      d.transTo,
			FinalStates:  d.finalStates,
		},
		TransNumbers: d.transNumbers,
		StartIsFinal: d.startIsFinal,
		N:            d.n,
	})
	return buf.Bytes(), err
}

// GobDecode implements gob.GobDecoder for the perfect-hash variant.
func (d *PerfectHashDictionary) GobDecode(data []byte) error {
	var g gobPerfectHash
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&g); err != nil {
		return err
	}
	d.packedArrays = packedArrays{
		stateOffsets: g.Packed.StateOffsets,
		transChars:   g.Packed.TransChars,
		transTo:      g.Packed.TransTo,
		finalStates:  g.Packed.FinalStates,
	}
	d.transNumbers = g.TransNumbers
	d.startIsFinal = g.StartIsFinal
	d.n = g.N
	return nil
}

const dictMagic = "#madfa01"

// WriteBinary serializes d to a magic-prefixed, length-prefixed gob blob,
// the same layout the reference's Model.WriteBinary uses (magic, varint
// header length, header), so that OpenMappedDictionary can read it back
// straight off an mmap'd file instead of a separately-read byte slice.
func (d *Dictionary) WriteBinary(path string) error {
	return writeBinary(path, dictMagic, gobPacked{
		StateOffsets: d.stateOffsets,
		TransChars:   d.transChars,
		TransTo:      d.transTo,
		FinalStates:  d.finalStates,
	})
}

func writeBinary(path, magic string, g gobPacked) (err error) {
	w, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()

	if _, err = w.Write([]byte(magic)); err != nil {
		return err
	}
	var header bytes.Buffer
	if err = gob.NewEncoder(&header).Encode(g); err != nil {
		return err
	}
	lenBytes := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(lenBytes, uint64(header.Len()))
	if _, err = w.Write(lenBytes[:n]); err != nil {
		return err
	}
	_, err = w.Write(header.Bytes())
	return err
}

// ReadBinary loads a Dictionary previously written with WriteBinary.
func ReadBinary(path string) (*Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	g, err := parseBinary(data, dictMagic)
	if err != nil {
		return nil, err
	}
	return &Dictionary{packedArrays: packedArrays{
		stateOffsets: g.StateOffsets,
		transChars:   g.TransChars,
		transTo:      g.TransTo,
		finalStates:  g.FinalStates,
	}}, nil
}

func parseBinary(raw []byte, magic string) (gobPacked, error) {
	var g gobPacked
	if len(raw) < len(magic) || string(raw[:len(magic)]) != magic {
		return g, errors.New("dictomaton: not a packed dictionary file")
	}
	read := len(magic)
	headerLen, n := binary.Uvarint(raw[read:])
	if n <= 0 {
		return g, errors.New("dictomaton: error reading header length")
	}
	read += n
	if read+int(headerLen) > len(raw) {
		return g, errors.New("dictomaton: truncated header")
	}
	if err := gob.NewDecoder(bytes.NewReader(raw[read : read+int(headerLen)])).Decode(&g); err != nil {
		return g, err
	}
	return g, nil
}

// MappedDictionary is a Dictionary backed by a memory-mapped file, avoiding
// the os.ReadFile copy ReadBinary does for large dictionaries. It must be
// closed with Close once no longer needed, matching the reference's
// MappedFile/FromBinary pair in model.go.
type MappedDictionary struct {
	Dictionary
	file *os.File
	data []byte
}

// OpenMappedDictionary memory-maps the file at path, written previously
// with Dictionary.WriteBinary, and decodes its header in place.
func OpenMappedDictionary(path string) (*MappedDictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	stat, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	data, err := syscall.Mmap(int(f.Fd()), 0, int(stat.Size()), syscall.PROT_READ, syscall.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}
	g, err := parseBinary(data, dictMagic)
	if err != nil {
		syscall.Munmap(data)
		f.Close()
		return nil, err
	}
	return &MappedDictionary{
		Dictionary: Dictionary{packedArrays: packedArrays{
			stateOffsets: g.StateOffsets,
			transChars:   g.TransChars,
			transTo:      g.TransTo,
			finalStates:  g.FinalStates,
		}},
		file: f,
		data: data,
	}, nil
}

// Close unmaps the backing file and closes it.
func (m *MappedDictionary) Close() error {
	err1 := syscall.Munmap(m.data)
	err2 := m.file.Close()
	if err1 != nil {
		return err1
	}
	return err2
}
