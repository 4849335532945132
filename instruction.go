package ralph

import "fmt"

// Instruction is a VM opcode that pushes a constant onto the operand stack.
type Instruction byte

const (
	// TrueConst pushes the boolean true.
	TrueConst Instruction = 3

	// FalseConst pushes the boolean false.
	FalseConst Instruction = 4

	I256Const0  Instruction = 5
	I256Const1  Instruction = 6
	I256Const2  Instruction = 7
	I256Const3  Instruction = 8
	I256Const4  Instruction = 9
	I256Const5  Instruction = 10
	I256ConstN1 Instruction = 11
	U256Const0  Instruction = 12
	U256Const1  Instruction = 13
	U256Const2  Instruction = 14
	U256Const3  Instruction = 15
	U256Const4  Instruction = 16
	U256Const5  Instruction = 17

	// I256Const pushes a compact signed integer that follows the opcode.
	I256Const Instruction = 18

	// U256Const pushes a compact unsigned integer that follows the opcode.
	U256Const Instruction = 19

	// BytesConst pushes a length-prefixed byte vector.
	BytesConst Instruction = 20

	// AddressConst pushes a decoded address.
	AddressConst Instruction = 21
)

var instructionNames = map[Instruction]string{
	TrueConst:    "TrueConst",
	FalseConst:   "FalseConst",
	I256Const0:   "I256Const0",
	I256Const1:   "I256Const1",
	I256Const2:   "I256Const2",
	I256Const3:   "I256Const3",
	I256Const4:   "I256Const4",
	I256Const5:   "I256Const5",
	I256ConstN1:  "I256ConstN1",
	U256Const0:   "U256Const0",
	U256Const1:   "U256Const1",
	U256Const2:   "U256Const2",
	U256Const3:   "U256Const3",
	U256Const4:   "U256Const4",
	U256Const5:   "U256Const5",
	I256Const:    "I256Const",
	U256Const:    "U256Const",
	BytesConst:   "BytesConst",
	AddressConst: "AddressConst",
}

// String returns the opcode mnemonic.
func (i Instruction) String() string {
	if name, ok := instructionNames[i]; ok {
		return name
	}
	return fmt.Sprintf("Instruction(%d)", byte(i))
}

// Byte returns the opcode as it appears in bytecode.
func (i Instruction) Byte() byte {
	return byte(i)
}
