package regs

import (
	"memalias/internal/bitfield"
)

var s3cIRQs = []bitfield.Spec{
	s(0, "EINT0"), s(1, "EINT1"), s(2, "EINT2"), s(3, "EINT3"),
	s(4, "EINT4_7"), s(5, "EINT8_23"), s(6, "CAM"), s(7, "nBATT_FLT"),
	s(8, "TICK"), s(9, "WDT_AC97"), s(10, "TIMER0"), s(11, "TIMER1"),
	s(12, "TIMER2"), s(13, "TIMER3"), s(14, "TIMER4"), s(15, "UART2"),
	s(16, "LCD"), s(17, "DMA0"), s(18, "DMA1"), s(19, "DMA2"),
	s(20, "DMA3"), s(21, "SDI"), s(22, "SPI0"), s(23, "UART1"),
	s(24, "NFCON"), s(25, "USBD"), s(26, "USBH"), s(27, "IIC"),
	s(28, "UART0"), s(29, "SPI1"), s(30, "RTC"), s(31, "ADC"),
}

// Samsung S3C24xx registers.
var s3cRegs = Table{
	// Interrupt controller
	0x4a000000: WithFields("SRCPND", s3cIRQs...),
	0x4a000004: WithFields("INTMOD", s3cIRQs...),
	0x4a000008: WithFields("INTMSK", s3cIRQs...),
	0x4a00000c: Name("PRIORITY"),
	0x4a000010: WithFields("INTPND", s3cIRQs...),
	0x4a000014: Name("INTOFFSET"),
	0x4a000018: Name("SUBSRCPND"),
	0x4a00001c: Name("INTSUBMSK"),

	// Clock and power management
	0x4c000000: WithFields("LOCKTIME", l("15-0", "M_LTIME"), l("31-16", "U_LTIME")),
	0x4c000004: WithFields("MPLLCON", l("19-12", "MDIV"), l("9-4", "PDIV"), l("1-0", "SDIV")),
	0x4c000008: WithFields("UPLLCON", l("19-12", "MDIV"), l("9-4", "PDIV"), l("1-0", "SDIV")),
	0x4c00000c: WithFields("CLKCON",
		s(2, "IDLE"), s(3, "SLEEP"), s(4, "NAND"), s(5, "LCDC"),
		s(6, "USBH"), s(7, "USBD"), s(8, "PWMTIMER"), s(9, "SDI"),
		s(10, "UART0"), s(11, "UART1"), s(12, "UART2"), s(13, "GPIO"),
		s(14, "RTC"), s(15, "ADC"), s(16, "IIC"), s(17, "IIS"),
		s(18, "SPI"), s(19, "CAMERA"), s(20, "AC97")),
	0x4c000010: WithFields("CLKSLOW", l("2-0", "SLOW_VAL"), s(4, "SLOW_BIT"), s(5, "MPLL_OFF"), s(7, "UCLK_ON")),
	0x4c000014: WithFields("CLKDIVN", s(0, "PDIVN"), l("2-1", "HDIVN")),

	// GPIO
	0x56000000: WithFields("GPACON", b1("GPA", 0)...),
	0x56000004: WithFields("GPADAT", b1("GPA", 0)...),
	0x56000010: WithFields("GPBCON", b2("GPB", 0)...),
	0x56000014: WithFields("GPBDAT", b1("GPB", 0)...),
	0x56000018: WithFields("GPBUP", b1("GPB", 0)...),
	0x56000020: WithFields("GPCCON", b2("GPC", 0)...),
	0x56000024: WithFields("GPCDAT", b1("GPC", 0)...),
	0x56000028: WithFields("GPCUP", b1("GPC", 0)...),
	0x56000030: WithFields("GPDCON", b2("GPD", 0)...),
	0x56000034: WithFields("GPDDAT", b1("GPD", 0)...),
	0x56000038: WithFields("GPDUP", b1("GPD", 0)...),
	0x56000040: WithFields("GPECON", b2("GPE", 0)...),
	0x56000044: WithFields("GPEDAT", b1("GPE", 0)...),
	0x56000048: WithFields("GPEUP", b1("GPE", 0)...),
	0x56000050: WithFields("GPFCON", b2("GPF", 0)...),
	0x56000054: WithFields("GPFDAT", b1("GPF", 0)...),
	0x56000058: WithFields("GPFUP", b1("GPF", 0)...),
	0x56000060: WithFields("GPGCON", b2("GPG", 0)...),
	0x56000064: WithFields("GPGDAT", b1("GPG", 0)...),
	0x56000068: WithFields("GPGUP", b1("GPG", 0)...),
	0x56000070: WithFields("GPHCON", b2("GPH", 0)...),
	0x56000074: WithFields("GPHDAT", b1("GPH", 0)...),
	0x56000078: WithFields("GPHUP", b1("GPH", 0)...),
	0x560000a4: WithFields("EINTMASK", b1("EINT", 0)...),
	0x560000a8: WithFields("EINTPEND", b1("EINT", 0)...),
}

// Builtin returns the register tables compiled into the binary, keyed the way
// haret announces machines.
func Builtin() map[string]Table {
	return map[string]Table{
		ArchPrefix + "PXA":     pxaRegs,
		ArchPrefix + "S3C2410": s3cRegs,
		ArchPrefix + "S3C2440": s3cRegs,
		ArchPrefix + "S3C2442": s3cRegs,
	}
}
