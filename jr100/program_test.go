package jr100

import (
	"encoding/binary"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func u32le(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func buildProgV1(name string, start, flag uint32, payload []byte) []byte {
	var b []byte
	b = append(b, []byte(progMagic)...)
	b = append(b, u32le(1)...)
	b = append(b, u32le(uint32(len(name)))...)
	b = append(b, []byte(name)...)
	b = append(b, u32le(start)...)
	b = append(b, u32le(uint32(len(payload)))...)
	b = append(b, u32le(flag)...)
	b = append(b, payload...)
	return b
}

func TestLoadProgramV1BinaryPayload(t *testing.T) {
	mem := &memStub{}
	data := buildProgV1("demo", 0x3000, 1, []byte{0x01, 0x02, 0x03})
	info, err := LoadProgramBytes(mem, data, "demo.prg")
	assert.NoError(t, err)
	assert.Equal(t, "demo", info.Name)
	assert.False(t, info.BasicArea)
	assert.Equal(t, byte(0x01), mem.Load8(0x3000))
	assert.Equal(t, byte(0x03), mem.Load8(0x3002))
}

func TestLoadProgramV1BasicFinalizesPointerTable(t *testing.T) {
	mem := &memStub{}
	payload := []byte{0x10, 0x20, 0x30}
	data := buildProgV1("basic", 0x0246, 0, payload)
	info, err := LoadProgramBytes(mem, data, "basic.prg")
	assert.NoError(t, err)
	assert.True(t, info.BasicArea)

	last := uint16(0x0246 + len(payload) - 1)
	assert.Equal(t, byte(0xDF), mem.Load8(last+1))
	assert.Equal(t, byte(0xDF), mem.Load8(last+2))
	assert.Equal(t, byte(0xDF), mem.Load8(last+3))
	for i := 0; i < 4; i++ {
		assert.Equal(t, last+uint16(i), mem.Load16(pointerTableBase+uint16(i*2)))
	}
}

func appendSection(buf []byte, id string, payload []byte) []byte {
	buf = append(buf, []byte(id)...)
	buf = append(buf, u32le(uint32(len(payload)))...)
	buf = append(buf, payload...)
	return buf
}

func TestLoadProgramV2RoundTripWithDuplicateSectionDedup(t *testing.T) {
	mem := &memStub{}

	var body []byte
	body = appendSection(body, "PNAM", append(u32le(4), []byte("game")...))
	body = appendSection(body, "PNAM", append(u32le(7), []byte("ignored")...)) // duplicate, ignored
	body = appendSection(body, "CMNT", append(u32le(5), []byte("hello")...))
	body = appendSection(body, "CMNT", append(u32le(5), []byte("later")...)) // duplicate, ignored

	binPayload := []byte{0xAA, 0xBB}
	var pbinBody []byte
	pbinBody = append(pbinBody, u32le(0x4000)...)
	pbinBody = append(pbinBody, u32le(uint32(len(binPayload)))...)
	pbinBody = append(pbinBody, binPayload...)
	pbinBody = append(pbinBody, u32le(3)...)
	pbinBody = append(pbinBody, []byte("cmt")...)
	body = appendSection(body, "PBIN", pbinBody)

	var data []byte
	data = append(data, []byte(progMagic)...)
	data = append(data, u32le(2)...)
	data = append(data, body...)

	info, err := LoadProgramBytes(mem, data, "v2.prg")
	assert.NoError(t, err)
	assert.Equal(t, "game", info.Name)
	assert.Equal(t, "hello", info.Comment)
	assert.Equal(t, byte(0xAA), mem.Load8(0x4000))
	assert.Equal(t, byte(0xBB), mem.Load8(0x4001))
	assert.Len(t, info.Regions, 1)
	assert.Equal(t, "cmt", info.Regions[0].Comment)
}

func TestLoadBasicTextEscapesAndUppercasesContent(t *testing.T) {
	mem := &memStub{}
	source := "10 print \\41\\42\n20 goto 10\n"
	_, err := LoadBasicText(mem, source)
	assert.NoError(t, err)

	addr := uint16(basicLoadAddress)
	assert.Equal(t, uint16(10), mem.Load16(addr))
	content := mem.data[addr+2:]
	assert.Equal(t, byte('P'), content[0])
	assert.Contains(t, string(content[:8]), "PRINT")
	assert.Equal(t, byte('A'), content[6])
	assert.Equal(t, byte('B'), content[7])
}

func TestLoadBasicTextRejectsOverlongLineAfterWriting(t *testing.T) {
	mem := &memStub{}
	long := make([]byte, 0, 100)
	for i := 0; i < 90; i++ {
		long = append(long, 'a')
	}
	source := "10 " + string(long)
	_, err := LoadBasicText(mem, source)
	assert.Error(t, err)
	// the line's bytes were already written before the length check failed
	assert.Equal(t, uint16(10), mem.Load16(basicLoadAddress))
}

func TestResolveROMPathPrefersExplicitArg(t *testing.T) {
	// The env var names a file that exists; a missing explicit path must
	// still win over it and fail.
	t.Setenv("JR100EMU_ROM", os.Args[0])
	_, err := ResolveROMPath("/nonexistent/path/to/rom.prg")
	assert.Error(t, err)
}
