package jr100

// Per-opcode execution bodies. Each follows the same shape as the
// reference's _opcode_* methods: fetch operand(s)/compute an address if
// needed, call the shared ALU helper, store back if the opcode writes.

// --- addressing-mode read/write helpers ---

func (c *CPU) addrDirect() uint16   { return c.calcDirectAddress(c.fetchOperand8()) }
func (c *CPU) addrIndexed() uint16  { return c.calcIndexedAddress(c.fetchOperand8()) }
func (c *CPU) addrExtended() uint16 { return c.fetchOperand16() }

func (c *CPU) readDirect() byte   { return c.load8(c.addrDirect()) }
func (c *CPU) readIndexed() byte  { return c.load8(c.addrIndexed()) }
func (c *CPU) readExtended() byte { return c.load8(c.addrExtended()) }

func (c *CPU) readDirect16() uint16   { return c.load16(c.addrDirect()) }
func (c *CPU) readIndexed16() uint16  { return c.load16(c.addrIndexed()) }
func (c *CPU) readExtended16() uint16 { return c.load16(c.addrExtended()) }

// --- ABA/SBA/CBA ---

func opABAExec(c *CPU) { c.AccA = c.add8(c.AccA, c.AccB) }
func opSBAExec(c *CPU) { c.AccA = c.sub8(c.AccA, c.AccB) }
func opCBAExec(c *CPU) { c.cmp8(c.AccA, c.AccB) }

// --- ADDA/ADDB ---

func opADDAImmExec(c *CPU) { c.AccA = c.add8(c.AccA, c.fetchOperand8()) }
func opADDADirExec(c *CPU) { c.AccA = c.add8(c.AccA, c.readDirect()) }
func opADDAIndExec(c *CPU) { c.AccA = c.add8(c.AccA, c.readIndexed()) }
func opADDAExtExec(c *CPU) { c.AccA = c.add8(c.AccA, c.readExtended()) }
func opADDBImmExec(c *CPU) { c.AccB = c.add8(c.AccB, c.fetchOperand8()) }
func opADDBDirExec(c *CPU) { c.AccB = c.add8(c.AccB, c.readDirect()) }
func opADDBIndExec(c *CPU) { c.AccB = c.add8(c.AccB, c.readIndexed()) }
func opADDBExtExec(c *CPU) { c.AccB = c.add8(c.AccB, c.readExtended()) }

// --- ADCA/ADCB ---

func opADCAImmExec(c *CPU) { c.AccA = c.adc8(c.AccA, c.fetchOperand8()) }
func opADCADirExec(c *CPU) { c.AccA = c.adc8(c.AccA, c.readDirect()) }
func opADCAIndExec(c *CPU) { c.AccA = c.adc8(c.AccA, c.readIndexed()) }
func opADCAExtExec(c *CPU) { c.AccA = c.adc8(c.AccA, c.readExtended()) }
func opADCBImmExec(c *CPU) { c.AccB = c.adc8(c.AccB, c.fetchOperand8()) }
func opADCBDirExec(c *CPU) { c.AccB = c.adc8(c.AccB, c.readDirect()) }
func opADCBIndExec(c *CPU) { c.AccB = c.adc8(c.AccB, c.readIndexed()) }
func opADCBExtExec(c *CPU) { c.AccB = c.adc8(c.AccB, c.readExtended()) }

// --- ANDA/ANDB ---

func opANDAImmExec(c *CPU) { c.AccA = c.and8(c.AccA, c.fetchOperand8()) }
func opANDADirExec(c *CPU) { c.AccA = c.and8(c.AccA, c.readDirect()) }
func opANDAIndExec(c *CPU) { c.AccA = c.and8(c.AccA, c.readIndexed()) }
func opANDAExtExec(c *CPU) { c.AccA = c.and8(c.AccA, c.readExtended()) }
func opANDBImmExec(c *CPU) { c.AccB = c.and8(c.AccB, c.fetchOperand8()) }
func opANDBDirExec(c *CPU) { c.AccB = c.and8(c.AccB, c.readDirect()) }
func opANDBIndExec(c *CPU) { c.AccB = c.and8(c.AccB, c.readIndexed()) }
func opANDBExtExec(c *CPU) { c.AccB = c.and8(c.AccB, c.readExtended()) }

// --- BITA/BITB (flags only) ---

func opBITAImmExec(c *CPU) { c.bit8(c.AccA, c.fetchOperand8()) }
func opBITADirExec(c *CPU) { c.bit8(c.AccA, c.readDirect()) }
func opBITAIndExec(c *CPU) { c.bit8(c.AccA, c.readIndexed()) }
func opBITAExtExec(c *CPU) { c.bit8(c.AccA, c.readExtended()) }
func opBITBImmExec(c *CPU) { c.bit8(c.AccB, c.fetchOperand8()) }
func opBITBDirExec(c *CPU) { c.bit8(c.AccB, c.readDirect()) }
func opBITBIndExec(c *CPU) { c.bit8(c.AccB, c.readIndexed()) }
func opBITBExtExec(c *CPU) { c.bit8(c.AccB, c.readExtended()) }

// --- CLRA/CLRB ---

func opCLRAExec(c *CPU) { c.AccA = c.clr() }
func opCLRBExec(c *CPU) { c.AccB = c.clr() }

// --- CMPA/CMPB (flags only) ---

func opCMPAImmExec(c *CPU) { c.cmp8(c.AccA, c.fetchOperand8()) }
func opCMPADirExec(c *CPU) { c.cmp8(c.AccA, c.readDirect()) }
func opCMPAIndExec(c *CPU) { c.cmp8(c.AccA, c.readIndexed()) }
func opCMPAExtExec(c *CPU) { c.cmp8(c.AccA, c.readExtended()) }
func opCMPBImmExec(c *CPU) { c.cmp8(c.AccB, c.fetchOperand8()) }
func opCMPBDirExec(c *CPU) { c.cmp8(c.AccB, c.readDirect()) }
func opCMPBIndExec(c *CPU) { c.cmp8(c.AccB, c.readIndexed()) }
func opCMPBExtExec(c *CPU) { c.cmp8(c.AccB, c.readExtended()) }

// --- COMA/COMB ---

func opCOMAExec(c *CPU) { c.AccA = c.com(c.AccA) }
func opCOMBExec(c *CPU) { c.AccB = c.com(c.AccB) }

// --- DAA ---

func opDAAExec(c *CPU) {
	original := c.AccA
	temp := uint16(original)
	if temp&0x0F >= 0x0A || c.H {
		temp += 0x06
	}
	if temp&0xF0 >= 0xA0 {
		temp += 0x60
	}
	result := byte(temp)
	cn := result&0x80 != 0
	c.N = cn
	c.Z = result == 0
	signedOriginal := int8(original)
	c.V = (signedOriginal > 0 && cn) || (signedOriginal < 0 && !cn)
	c.C = (original&0xF0 >= 0xA0) || c.C
	c.AccA = result
}

// --- DECA/DECB/INCA/INCB ---

func opDECAExec(c *CPU) { c.AccA = c.dec(c.AccA) }
func opDECBExec(c *CPU) { c.AccB = c.dec(c.AccB) }
func opINCAExec(c *CPU) { c.AccA = c.inc(c.AccA) }
func opINCBExec(c *CPU) { c.AccB = c.inc(c.AccB) }

// --- EORA/EORB ---

func opEORAImmExec(c *CPU) { c.AccA = c.eor8(c.AccA, c.fetchOperand8()) }
func opEORADirExec(c *CPU) { c.AccA = c.eor8(c.AccA, c.readDirect()) }
func opEORAIndExec(c *CPU) { c.AccA = c.eor8(c.AccA, c.readIndexed()) }
func opEORAExtExec(c *CPU) { c.AccA = c.eor8(c.AccA, c.readExtended()) }
func opEORBImmExec(c *CPU) { c.AccB = c.eor8(c.AccB, c.fetchOperand8()) }
func opEORBDirExec(c *CPU) { c.AccB = c.eor8(c.AccB, c.readDirect()) }
func opEORBIndExec(c *CPU) { c.AccB = c.eor8(c.AccB, c.readIndexed()) }
func opEORBExtExec(c *CPU) { c.AccB = c.eor8(c.AccB, c.readExtended()) }

// --- LDAA/LDAB ---

func opLDAAImmExec(c *CPU) { c.AccA = c.lda(c.fetchOperand8()) }
func opLDAADirExec(c *CPU) { c.AccA = c.lda(c.readDirect()) }
func opLDAAIndExec(c *CPU) { c.AccA = c.lda(c.readIndexed()) }
func opLDAAExtExec(c *CPU) { c.AccA = c.lda(c.readExtended()) }
func opLDABImmExec(c *CPU) { c.AccB = c.lda(c.fetchOperand8()) }
func opLDABDirExec(c *CPU) { c.AccB = c.lda(c.readDirect()) }
func opLDABIndExec(c *CPU) { c.AccB = c.lda(c.readIndexed()) }
func opLDABExtExec(c *CPU) { c.AccB = c.lda(c.readExtended()) }

// --- LSRA/LSRB/NEGA/NEGB ---

func opLSRAExec(c *CPU) { c.AccA = c.lsr(c.AccA) }
func opLSRBExec(c *CPU) { c.AccB = c.lsr(c.AccB) }
func opNEGAExec(c *CPU) { c.AccA = c.neg(c.AccA) }
func opNEGBExec(c *CPU) { c.AccB = c.neg(c.AccB) }

// --- ORAA/ORAB ---

func opORAAImmExec(c *CPU) { c.AccA = c.ora(c.AccA, c.fetchOperand8()) }
func opORAADirExec(c *CPU) { c.AccA = c.ora(c.AccA, c.readDirect()) }
func opORAAIndExec(c *CPU) { c.AccA = c.ora(c.AccA, c.readIndexed()) }
func opORAAExtExec(c *CPU) { c.AccA = c.ora(c.AccA, c.readExtended()) }
func opORABImmExec(c *CPU) { c.AccB = c.ora(c.AccB, c.fetchOperand8()) }
func opORABDirExec(c *CPU) { c.AccB = c.ora(c.AccB, c.readDirect()) }
func opORABIndExec(c *CPU) { c.AccB = c.ora(c.AccB, c.readIndexed()) }

// opORABExtBuggyExec reproduces the MB8861 silicon bug the 0xFA opcode
// slot triggers: it performs ADDB EXT, not ORAB EXT.
func opORABExtBuggyExec(c *CPU) {
	value := c.readExtended()
	c.AccB = c.add8(c.AccB, value)
}

// --- STAA/STAB ---

func opSTAADirExec(c *CPU) { c.sta(c.addrDirect(), c.AccA) }
func opSTAAIndExec(c *CPU) { c.sta(c.addrIndexed(), c.AccA) }
func opSTAAExtExec(c *CPU) { c.sta(c.addrExtended(), c.AccA) }
func opSTABDirExec(c *CPU) { c.sta(c.addrDirect(), c.AccB) }
func opSTABIndExec(c *CPU) { c.sta(c.addrIndexed(), c.AccB) }
func opSTABExtExec(c *CPU) { c.sta(c.addrExtended(), c.AccB) }

// --- SUBA/SUBB ---

func opSUBAImmExec(c *CPU) { c.AccA = c.sub8(c.AccA, c.fetchOperand8()) }
func opSUBADirExec(c *CPU) { c.AccA = c.sub8(c.AccA, c.readDirect()) }
func opSUBAIndExec(c *CPU) { c.AccA = c.sub8(c.AccA, c.readIndexed()) }
func opSUBAExtExec(c *CPU) { c.AccA = c.sub8(c.AccA, c.readExtended()) }
func opSUBBImmExec(c *CPU) { c.AccB = c.sub8(c.AccB, c.fetchOperand8()) }
func opSUBBDirExec(c *CPU) { c.AccB = c.sub8(c.AccB, c.readDirect()) }
func opSUBBIndExec(c *CPU) { c.AccB = c.sub8(c.AccB, c.readIndexed()) }
func opSUBBExtExec(c *CPU) { c.AccB = c.sub8(c.AccB, c.readExtended()) }

// --- SBCA/SBCB ---

func opSBCAImmExec(c *CPU) { c.AccA = c.sbc8(c.AccA, c.fetchOperand8()) }
func opSBCADirExec(c *CPU) { c.AccA = c.sbc8(c.AccA, c.readDirect()) }
func opSBCAIndExec(c *CPU) { c.AccA = c.sbc8(c.AccA, c.readIndexed()) }
func opSBCAExtExec(c *CPU) { c.AccA = c.sbc8(c.AccA, c.readExtended()) }
func opSBCBImmExec(c *CPU) { c.AccB = c.sbc8(c.AccB, c.fetchOperand8()) }
func opSBCBDirExec(c *CPU) { c.AccB = c.sbc8(c.AccB, c.readDirect()) }
func opSBCBIndExec(c *CPU) { c.AccB = c.sbc8(c.AccB, c.readIndexed()) }
func opSBCBExtExec(c *CPU) { c.AccB = c.sbc8(c.AccB, c.readExtended()) }

// --- TAB/TBA/TSTA/TSTB ---

func opTABExec(c *CPU) { c.AccB = c.lda(c.AccA) }
func opTBAExec(c *CPU) { c.AccA = c.lda(c.AccB) }
func opTSTAExec(c *CPU) { c.tst(c.AccA) }
func opTSTBExec(c *CPU) { c.tst(c.AccB) }

// --- CPX ---

func opCPXImmExec(c *CPU) { c.cpx(c.fetchOperand16()) }
func opCPXDirExec(c *CPU) { c.cpx(c.readDirect16()) }
func opCPXIndExec(c *CPU) { c.cpx(c.readIndexed16()) }
func opCPXExtExec(c *CPU) { c.cpx(c.readExtended16()) }

// --- DEX/DES/INX/INS ---

func opDEXExec(c *CPU) { c.dex() }
func opDESExec(c *CPU) { c.des() }
func opINXExec(c *CPU) { c.inx() }
func opINSExec(c *CPU) { c.ins() }

// --- LDX/LDS ---

func opLDXImmExec(c *CPU) { c.ldx(c.fetchOperand16()) }
func opLDXDirExec(c *CPU) { c.ldx(c.readDirect16()) }
func opLDXIndExec(c *CPU) { c.ldx(c.readIndexed16()) }
func opLDXExtExec(c *CPU) { c.ldx(c.readExtended16()) }
func opLDSImmExec(c *CPU) { c.lds(c.fetchOperand16()) }
func opLDSDirExec(c *CPU) { c.lds(c.readDirect16()) }
func opLDSIndExec(c *CPU) { c.lds(c.readIndexed16()) }
func opLDSExtExec(c *CPU) { c.lds(c.readExtended16()) }

// --- STX/STS ---

func opSTXDirExec(c *CPU) { c.stx(c.addrDirect()) }
func opSTXIndExec(c *CPU) { c.stx(c.addrIndexed()) }
func opSTXExtExec(c *CPU) { c.stx(c.addrExtended()) }
func opSTSDirExec(c *CPU) { c.sts(c.addrDirect()) }
func opSTSIndExec(c *CPU) { c.sts(c.addrIndexed()) }
func opSTSExtExec(c *CPU) { c.sts(c.addrExtended()) }

// --- TXS/TSX/NOP ---

func opTXSExec(c *CPU) { c.SP = c.X - 1 }
func opTSXExec(c *CPU) { c.X = c.SP + 1 }
func opNOPExec(c *CPU) {}

// --- ADX ---

func opADXImmExec(c *CPU) { c.X = c.add16(c.X, uint16(c.fetchOperand8())) }
func opADXExtExec(c *CPU) { c.X = c.add16(c.X, c.readExtended16()) }

// --- Branches ---

func opBRAExec(c *CPU) { c.branch(c.fetchOperand8(), true) }
func opBCCExec(c *CPU) { c.branch(c.fetchOperand8(), !c.C) }
func opBCSExec(c *CPU) { c.branch(c.fetchOperand8(), c.C) }
func opBEQExec(c *CPU) { c.branch(c.fetchOperand8(), c.Z) }
func opBGEExec(c *CPU) { c.branch(c.fetchOperand8(), !(c.N != c.V)) }
func opBGTExec(c *CPU) { c.branch(c.fetchOperand8(), !(c.Z || (c.N != c.V))) }
func opBHIExec(c *CPU) { c.branch(c.fetchOperand8(), !(c.C || c.Z)) }
func opBLEExec(c *CPU) { c.branch(c.fetchOperand8(), c.Z || (c.N != c.V)) }
func opBLSExec(c *CPU) { c.branch(c.fetchOperand8(), c.C || c.Z) }
func opBLTExec(c *CPU) { c.branch(c.fetchOperand8(), c.N != c.V) }
func opBMIExec(c *CPU) { c.branch(c.fetchOperand8(), c.N) }
func opBNEExec(c *CPU) { c.branch(c.fetchOperand8(), !c.Z) }
func opBVCExec(c *CPU) { c.branch(c.fetchOperand8(), !c.V) }
func opBVSExec(c *CPU) { c.branch(c.fetchOperand8(), c.V) }
func opBPLExec(c *CPU) { c.branch(c.fetchOperand8(), !c.N) }

func opBSRExec(c *CPU) {
	offset := c.fetchOperand8()
	c.SP -= 2
	c.store16(c.SP+1, c.PC)
	c.branch(offset, true)
}

// --- JMP/JSR ---

func opJMPIndExec(c *CPU) { c.PC = c.load16(c.addrIndexed()) }
func opJMPExtExec(c *CPU) { c.PC = c.fetchOperand16() }

func opJSRIndExec(c *CPU) {
	target := c.addrIndexed()
	c.SP -= 2
	c.store16(c.SP+1, c.PC)
	c.PC = target
}

func opJSRExtExec(c *CPU) {
	target := c.fetchOperand16()
	c.SP -= 2
	c.store16(c.SP+1, c.PC)
	c.PC = target
}

// --- NIM/OIM/XIM/TMM (memory bit-manipulation) ---

func opNIMIndExec(c *CPU) {
	value := c.fetchOperand8()
	address := c.addrIndexed()
	current := c.load8(address)
	c.store8(address, c.nim(value, current))
}

func opOIMIndExec(c *CPU) {
	value := c.fetchOperand8()
	address := c.addrIndexed()
	current := c.load8(address)
	c.store8(address, c.oim(value, current))
}

func opXIMIndExec(c *CPU) {
	value := c.fetchOperand8()
	address := c.addrIndexed()
	current := c.load8(address)
	c.store8(address, c.xim(value, current))
}

func opTMMIndExec(c *CPU) {
	value := c.fetchOperand8()
	address := c.addrIndexed()
	current := c.load8(address)
	c.tmm(value, current)
}
