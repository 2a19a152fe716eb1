package regs

import (
	"memalias/internal/bitfield"
)

var (
	s  = bitfield.S
	l  = bitfield.L
	b1 = bitfield.OneBits
	b2 = bitfield.TwoBits
)

// Intel PXA2xx (XScale) registers.
var pxaRegs = Table{
	// OS timer
	0x40a00000: Name("OSMR0"),
	0x40a00004: Name("OSMR1"),
	0x40a00008: Name("OSMR2"),
	0x40a0000c: Name("OSMR3"),
	0x40a00010: Name("OSCR"),
	0x40a00014: WithFields("OSSR", s(0, "M0"), s(1, "M1"), s(2, "M2"), s(3, "M3")),
	0x40a00018: WithFields("OWER", s(0, "WME")),
	0x40a0001c: WithFields("OIER", s(0, "E0"), s(1, "E1"), s(2, "E2"), s(3, "E3")),

	// Interrupt controller
	0x40d00000: WithFields("ICIP", b1("IP", 0)...),
	0x40d00004: WithFields("ICMR", b1("IM", 0)...),
	0x40d00008: WithFields("ICLR", b1("IL", 0)...),
	0x40d0000c: WithFields("ICFP", b1("FP", 0)...),
	0x40d00010: WithFields("ICPR", b1("IS", 0)...),
	0x40d00014: WithFields("ICCR", s(0, "DIM")),

	// GPIO
	0x40e00000: WithFields("GPLR0", b1("PL", 0)...),
	0x40e00004: WithFields("GPLR1", b1("PL", 32)...),
	0x40e00008: WithFields("GPLR2", b1("PL", 64)...),
	0x40e0000c: WithFields("GPDR0", b1("PD", 0)...),
	0x40e00010: WithFields("GPDR1", b1("PD", 32)...),
	0x40e00014: WithFields("GPDR2", b1("PD", 64)...),
	0x40e00018: WithFields("GPSR0", b1("PS", 0)...),
	0x40e0001c: WithFields("GPSR1", b1("PS", 32)...),
	0x40e00020: WithFields("GPSR2", b1("PS", 64)...),
	0x40e00024: WithFields("GPCR0", b1("PC", 0)...),
	0x40e00028: WithFields("GPCR1", b1("PC", 32)...),
	0x40e0002c: WithFields("GPCR2", b1("PC", 64)...),
	0x40e00030: WithFields("GRER0", b1("RE", 0)...),
	0x40e00034: WithFields("GRER1", b1("RE", 32)...),
	0x40e00038: WithFields("GRER2", b1("RE", 64)...),
	0x40e0003c: WithFields("GFER0", b1("FE", 0)...),
	0x40e00040: WithFields("GFER1", b1("FE", 32)...),
	0x40e00044: WithFields("GFER2", b1("FE", 64)...),
	0x40e00048: WithFields("GEDR0", b1("ED", 0)...),
	0x40e0004c: WithFields("GEDR1", b1("ED", 32)...),
	0x40e00050: WithFields("GEDR2", b1("ED", 64)...),
	0x40e00054: WithFields("GAFR0_L", b2("AF", 0)...),
	0x40e00058: WithFields("GAFR0_U", b2("AF", 16)...),
	0x40e0005c: WithFields("GAFR1_L", b2("AF", 32)...),
	0x40e00060: WithFields("GAFR1_U", b2("AF", 48)...),
	0x40e00064: WithFields("GAFR2_L", b2("AF", 64)...),
	0x40e00068: WithFields("GAFR2_U", b2("AF", 80)...),

	// Power manager
	0x40f00000: WithFields("PMCR", s(0, "IDAE")),
	0x40f00004: WithFields("PSSR", s(0, "SSS"), s(1, "BFS"), s(2, "VFS"), s(4, "PH"), s(5, "RDH")),
	0x40f00008: Name("PSPR"),
	0x40f0000c: WithFields("PWER", b1("WE", 0)...),
	0x40f00010: WithFields("PRER", b1("RE", 0)...),
	0x40f00014: WithFields("PFER", b1("FE", 0)...),
	0x40f00018: WithFields("PEDR", b1("ED", 0)...),

	// Clock manager
	0x41300000: WithFields("CCCR", l("4-0", "L"), l("6-5", "M"), l("9-7", "N")),
	0x41300004: WithFields("CKEN",
		s(0, "PWM0"), s(1, "PWM1"), s(2, "AC97"), s(3, "SSP"),
		s(5, "STUART"), s(6, "FFUART"), s(7, "BTUART"), s(8, "I2S"),
		s(11, "USB"), s(12, "MMC"), s(13, "FICP"), s(14, "I2C"), s(16, "LCD")),
	0x41300008: WithFields("OSCC", s(0, "OOK"), s(1, "OON")),

	// Full function UART
	0x40100000: Name("FFRBR"),
	0x40100004: WithFields("FFIER",
		s(0, "RAVIE"), s(1, "TIE"), s(2, "RLSE"), s(3, "MIE"),
		s(4, "RTOIE"), s(5, "NRZE"), s(6, "UUE"), s(7, "DMAE")),
	0x40100008: WithFields("FFIIR", s(0, "nIP"), l("2-1", "IID"), s(3, "TOD"), l("7-6", "FIFOES")),
	0x4010000c: WithFields("FFLCR",
		l("1-0", "WLS"), s(2, "STB"), s(3, "PEN"), s(4, "EPS"),
		s(5, "STKYP"), s(6, "SB"), s(7, "DLAB")),
	0x40100010: WithFields("FFMCR", s(0, "DTR"), s(1, "RTS"), s(2, "OUT1"), s(3, "OUT2"), s(4, "LOOP")),
	0x40100014: WithFields("FFLSR",
		s(0, "DR"), s(1, "OE"), s(2, "PE"), s(3, "FE"),
		s(4, "BI"), s(5, "TDRQ"), s(6, "TEMT"), s(7, "FIFOE")),
}
