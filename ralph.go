// Package ralph builds loadable contract bytecode from compiler templates.
//
// The contract compiler emits one hex template per method. Templates may
// contain placeholders of the form {name:Type} which are filled in at
// deployment time with contract IDs, constants and other values known only
// to the caller. This package encodes those values in the VM's binary
// format and assembles the final bytecode.
//
// # Basic Usage
//
//	compiled := &ralph.TemplateContract{
//	    FieldLength:     1,
//	    MethodsByteCode: []string{"0100{subContractId:ByteVec}01"},
//	}
//
//	bytecode, err := ralph.BuildContractByteCode(compiled, ralph.TemplateVariables{
//	    "subContractId": ralph.Text(subContractID),
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Template Types
//
// Each placeholder declares one of five types. The substituted bytes are the
// VM instruction that pushes the value:
//
//   - Bool: TrueConst or FalseConst
//   - I256: I256Const followed by a compact signed integer
//   - U256: U256Const followed by a compact unsigned integer
//   - ByteVec: BytesConst followed by a length-prefixed byte vector (hex input)
//   - Address: AddressConst followed by the decoded address (base58 input)
//
// # Compact Integers
//
// Integers are written big-endian in 1, 2, 4 or 5-33 bytes. The top two bits
// of the first byte select the size class, so a decoder needs no external
// length. Signed values use the same classes with one bit reserved for the
// sign. See EncodeU256, EncodeI256, DecodeU256 and DecodeI256.
//
// # Contract Layout
//
// BuildContractByteCode writes the field count, the method count, the
// cumulative byte offset of the end of each method, and then the method
// bodies, all counts as compact signed integers.
//
// All functions are pure and safe for concurrent use.
package ralph
