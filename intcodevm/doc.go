// Package intcodevm implements the Intcode virtual machine.
//
//
// A program is a flat sequence of signed 64-bit words. Each instruction is
// one opcode word followed by zero to three operand words:
//
//   [ ...m3 m2 m1 oo ] op1 op2 op3
//
//   oo = Opcode, the low two decimal digits of the word
//   m1 = Parameter mode of op1 (hundreds digit)
//   m2 = Parameter mode of op2 (thousands digit)
//   m3 = Parameter mode of op3 (ten-thousands digit)
//
//   +------------------------------------+
//   | Parameter modes                    |
//   +---+-----------+--------------------+
//   | 0 | position  | mem[op]            |
//   | 1 | immediate | op                 |
//   | 2 | relative  | mem[RB + op]       |
//   +---+-----------+--------------------+
//
// Absent mode digits are 0. Destination operands are never immediate.
//
//   +----+--------------------+-------------------+
//   | oo | Name               | Operands          |
//   +----+--------------------+-------------------+
//   |  1 | ADD                | a, b, dest        |
//   |  2 | MUL                | a, b, dest        |
//   |  3 | IN                 | dest              |
//   |  4 | OUT                | a                 |
//   |  5 | JNZ (jump-if-true) | cond, target      |
//   |  6 | JZ (jump-if-false) | cond, target      |
//   |  7 | LT                 | a, b, dest        |
//   |  8 | EQ                 | a, b, dest        |
//   |  9 | ARB (adjust RB)    | a                 |
//   | 99 | HALT               |                   |
//   +----+--------------------+-------------------+
//
// The machine has two registers: IP, the address of the next instruction,
// and RB, the relative base. After any instruction that does not jump, IP
// advances past the instruction and its operands.
//
//
// SUSPENDING FOR INPUT
//
// Input is drawn from a FIFO queue filled by the host with AddInputs. When an
// IN instruction finds the queue empty, Run returns a Result in
// PendingInputState without touching IP or RB. The host may then queue more
// input and call Run again; execution resumes at the very same IN
// instruction. This lets one goroutine drive any number of machines in
// lockstep, e.g. a ring of amplifiers feeding each other's inputs.
//
// Outputs are collected per call: each Result holds only the words written
// by OUT during that call to Run.
//
package intcodevm
