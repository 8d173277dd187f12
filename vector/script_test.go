package vector

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/alu8/alu"
)

func TestScript(t *testing.T) {
	assert := assert.New(t)

	src := `
vector("add_basic", ADD, 0x01, 0x02, 0x03)
vector("sub_zero", SUB, 5, 5, 0, carry=True, zero=True)
vector(name="cmp_overflow", opcode=CMP, a=0x80, b=0x01, result=0,
       carry=True, zero=True, overflow=True)

for a in [0x00, 0x7F, 0xFF]:
    result, carry, zero, overflow, negative = evaluate(INC_A, a, 0)
    vector("inc_%X" % a, INC_A, a, 0, result,
           carry=carry, zero=zero, overflow=overflow, negative=negative)

vector("opcodes", OPCODES[-1], len(OPCODES), 0, 0)
`

	vectors, err := Script("test.star", src)
	assert.NoError(err)
	if !assert.Equal(7, len(vectors)) {
		return
	}

	assert.Equal(Vector{Name: "add_basic", Source: "test.star", Opcode: "00000", A: 1, B: 2, Result: 3}, vectors[0])
	assert.Equal(alu.Flags{Carry: true, Zero: true}, vectors[1].Flags)
	assert.Equal(alu.Flags{Carry: true, Zero: true, Overflow: true}, vectors[2].Flags)
	assert.Equal("10000", vectors[2].Opcode)

	assert.Equal("inc_0", vectors[3].Name)
	assert.Equal(1, vectors[3].Result)
	assert.Equal("inc_7F", vectors[4].Name)
	assert.Equal(0x80, vectors[4].Result)
	assert.Equal(alu.Flags{Overflow: true, Negative: true}, vectors[4].Flags)
	assert.Equal("inc_FF", vectors[5].Name)
	assert.Equal(0, vectors[5].Result)
	assert.Equal(alu.Flags{Carry: true, Zero: true}, vectors[5].Flags)

	assert.Equal("10010", vectors[6].Opcode)
	assert.Equal(alu.OP_COUNT, vectors[6].A)
}

func TestScript_Errors(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		src  string
	}){
		{"syntax", "vector(\n"},
		{"type", `vector("x", ADD, "one", 2, 3)`},
		{"missing", `vector("x", ADD, 1)`},
		{"unknown", `vector("x", ADD, 1, 2, 3, parity=True)`},
		{"evaluate", `evaluate("11111", 1, 2)`},
		{"empty", `x = 1`},
	}

	for _, entry := range table {
		vectors, err := Script(entry.name+".star", entry.src)
		assert.ErrorIs(err, ErrScript{}, entry.name)
		assert.Nil(vectors, entry.name)
	}

	_, err := Script("unknown.star", `evaluate("11111", 1, 2)`)
	assert.ErrorIs(err, alu.ErrUnknownOpcode(""))

	_, err = Script("empty.star", `x = 1`)
	assert.True(errors.Is(err, ErrVectorEmpty))
}
