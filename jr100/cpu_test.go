package jr100

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestADDAImmediateSetsHalfCarry(t *testing.T) {
	cpu, _ := newCPUWithProgram([]byte{opLDAA_IMM, 0x0F, opADDA_IMM, 0x01}, 0x1000)
	cpu.Execute(2)
	cpu.Execute(2)
	assert.Equal(t, byte(0x10), cpu.AccA)
	assert.True(t, cpu.H, "0x0F+0x01 carries out of bit 3")
	assert.False(t, cpu.Z)
}

func TestABASetsHalfCarryAndCarry(t *testing.T) {
	cpu, _ := newCPUWithProgram([]byte{
		opLDAA_IMM, 0xFF,
		opLDAB_IMM, 0x01,
		opABA,
	}, 0x1000)
	cpu.Execute(2)
	cpu.Execute(2)
	cpu.Execute(2)
	assert.Equal(t, byte(0x00), cpu.AccA)
	assert.True(t, cpu.Z)
	assert.True(t, cpu.H)
	assert.True(t, cpu.C)
}

func TestRTIRestoresFullRegisterFrame(t *testing.T) {
	cpu, mem := newCPUWithProgram([]byte{opRTI}, 0x1000)
	cpu.SP = 0x00F0 // simulates "already inside an interrupt handler"
	mem.Store8(0x00F1, 0x2F)    // CCR: H,N,Z,V,C set; upper bits reconstructed anyway
	mem.Store8(0x00F2, 0x42)    // AccB
	mem.Store8(0x00F3, 0x43)    // AccA
	mem.Store16(0x00F4, 0x1234) // X
	mem.Store16(0x00F6, 0x5678) // PC

	_, err := cpu.Execute(10)
	assert.NoError(t, err)
	assert.Equal(t, byte(0x43), cpu.AccA)
	assert.Equal(t, byte(0x42), cpu.AccB)
	assert.Equal(t, uint16(0x1234), cpu.X)
	assert.Equal(t, uint16(0x5678), cpu.PC)
	assert.Equal(t, uint16(0x00F7), cpu.SP)
	assert.True(t, cpu.H)
	assert.True(t, cpu.C)
}

func TestORABExtReproducesAddBBug(t *testing.T) {
	cpu, mem := newCPUWithProgram([]byte{
		opLDAB_IMM, 0x01,
		opORAB_EXT, 0x20, 0x00,
	}, 0x1000)
	mem.Store8(0x2000, 0x01)

	cpu.Execute(2)
	cpu.Execute(4)
	// A genuine ORAB would give 0x01|0x01 = 0x01; the buggy silicon adds
	// instead, giving 0x02.
	assert.Equal(t, byte(0x02), cpu.AccB)
}

func TestUnknownOpcodeReportsPCAndByte(t *testing.T) {
	cpu, _ := newCPUWithProgram([]byte{0x00}, 0x1000)
	_, err := cpu.Execute(2)
	var unknown *UnknownOpcodeError
	assert.ErrorAs(t, err, &unknown)
	assert.Equal(t, uint16(0x1000), unknown.PC)
	assert.Equal(t, byte(0x00), unknown.Opcode)
}

func TestBGEBranchesOnNEqualsV(t *testing.T) {
	cpu, _ := newCPUWithProgram([]byte{
		opLDAA_IMM, 0x00,
		opBGE, 0x02,
		opNOP,
		opNOP,
		opLDAB_IMM, 0x99,
	}, 0x1000)
	cpu.Execute(2)
	cpu.Execute(4)
	assert.Equal(t, uint16(0x1006), cpu.PC)
}

func TestBSRPushesReturnAddressAndJumps(t *testing.T) {
	cpu, mem := newCPUWithProgram([]byte{
		opBSR, 0x05,
	}, 0x1000)
	cpu.SP = 0x00FF

	cpu.Execute(8)
	assert.Equal(t, uint16(0x1007), cpu.PC)
	assert.Equal(t, uint16(0x00FD), cpu.SP)
	assert.Equal(t, uint16(0x1002), mem.Load16(0x00FE))
}

func TestRegistersStayWithinRangeAcrossExecution(t *testing.T) {
	cpu, _ := newCPUWithProgram([]byte{
		opLDAA_IMM, 0xFF,
		opINCA,
		opLDX_IMM, 0xFF, 0xFF,
		opINX,
	}, 0x1000)
	cpu.Execute(20)
	assert.True(t, cpu.AccA <= 0xFF)
	assert.True(t, cpu.X <= 0xFFFF)
}
