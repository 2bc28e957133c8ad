// Package chip8 classifies CHIP-8 opcodes.
//
// The base instruction set is identified through the retrogolib CHIP-8
// opcode table, which matches every 16-bit opcode against a list of
// mask/value pairs grouped by the leading nibble. The SUPER-CHIP and XO-CHIP
// extensions that the table does not describe are recognized separately.
//
// The classification is used by the interpreter to name instructions in
// trace logs and error reports and to detect programs that park themselves
// in a jump-to-self loop.
package chip8
